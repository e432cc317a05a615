// Package process spawns the wrapped tool executables and supervises
// them against a wall-clock deadline.
//
// Start launches a process and returns a caller-owned Handle without
// waiting for completion. When a positive timeout is configured, a
// watchdog goroutine races the child's natural exit against the
// deadline and terminates the process group (SIGTERM, then SIGKILL
// after a grace period) if the deadline elapses first. A zero timeout
// means the process runs unsupervised.
//
// Run is the blocking convenience: it captures stdout/stderr and waits
// for completion, honoring context cancellation with the same
// escalation.
package process
