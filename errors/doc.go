// Package errors provides the error taxonomy for tool invocations.
//
// Three kinds of failure are distinguishable: configuration errors
// (bad or missing option values, detected before any process is
// spawned), launch errors (the OS failed to create the process), and
// timeout errors (the deadline elapsed and the child was terminated).
//
// # Usage
//
//	if err := b.Run(ctx); errors.IsTimeout(err) {
//	    // the child was already killed by the watchdog
//	}
package errors
