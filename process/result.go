package process

import "time"

// Result holds the outcome of a completed subprocess.
type Result struct {
	// Stdout is the captured standard output. Only populated by Run.
	Stdout []byte
	// Stderr is the captured standard error. Only populated by Run.
	Stderr []byte
	// ExitCode is the process exit code. -1 if the process was killed.
	ExitCode int
	// Duration is how long the process ran.
	Duration time.Duration
	// TimedOut reports whether the watchdog terminated the process.
	TimedOut bool
}
