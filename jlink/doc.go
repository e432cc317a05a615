// Package jlink builds and runs invocations of the jlink module linker.
//
// The Builder accumulates typed options in call order and hands the
// assembled argument vector to the process launcher. Setters validate
// eagerly; a violating call records a configuration error and appends
// nothing, and the first recorded error is returned by Args, Start, and
// Run. A builder is reusable: each Start or Run re-assembles from the
// same accumulated state and yields an independent process handle.
//
//	res, err := jlink.New().
//	    AddModules([]string{"java.base"}).
//	    Output("image").
//	    Compress(2).
//	    Run(ctx)
package jlink
