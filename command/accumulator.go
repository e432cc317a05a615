package command

// Accumulator collects command-line tokens in insertion order. General
// options and trailing positional entries are kept separate because the
// wrapped tools require positional entries after all flags.
//
// A violating setter calls Fail instead of Append, leaving prior state
// untouched; the first recorded error is what the terminal operations
// return. The zero value is ready to use.
type Accumulator struct {
	opts     []string
	trailing []string
	err      error
}

// Append adds general option tokens, in call order.
func (a *Accumulator) Append(tokens ...string) {
	a.opts = append(a.opts, tokens...)
}

// AppendTrailing adds positional entry tokens, in call order.
func (a *Accumulator) AppendTrailing(tokens ...string) {
	a.trailing = append(a.trailing, tokens...)
}

// Fail records a configuration error. Only the first error is kept.
func (a *Accumulator) Fail(err error) {
	if a.err == nil {
		a.err = err
	}
}

// Err returns the first recorded configuration error, if any.
func (a *Accumulator) Err() error {
	return a.err
}

// Options returns the accumulated general option tokens.
func (a *Accumulator) Options() []string {
	return a.opts
}

// Trailing returns the accumulated trailing entry tokens.
func (a *Accumulator) Trailing() []string {
	return a.trailing
}
