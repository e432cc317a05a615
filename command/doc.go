// Package command provides the shared accumulation and assembly
// primitives behind the tool builders.
//
// An Accumulator collects option tokens and trailing positional entries
// in call order, recording the first configuration error instead of
// applying a violating option. Assemble concatenates the executable
// path, an optional mode flag, the option tokens, and the trailing
// entries into the final argument vector without reordering,
// deduplication, or escaping. A Policy carries the working-directory,
// environment, and timeout settings handed to the process launcher.
package command
