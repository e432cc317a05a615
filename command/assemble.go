package command

// Assemble concatenates the argument vector in the tool-defined order:
// executable path, mode flag (skipped when empty), general options in
// insertion order, trailing entries in insertion order. It is a pure,
// order-preserving concatenation.
func Assemble(binary, modeFlag string, opts, trailing []string) []string {
	argv := make([]string, 0, 2+len(opts)+len(trailing))
	argv = append(argv, binary)
	if modeFlag != "" {
		argv = append(argv, modeFlag)
	}
	argv = append(argv, opts...)
	argv = append(argv, trailing...)
	return argv
}
