package process

import (
	"io"
	"time"
)

// DefaultGracePeriod is how long the watchdog waits after SIGTERM
// before escalating to SIGKILL when no grace period is configured.
const DefaultGracePeriod = 5 * time.Second

// Command configures a subprocess to execute.
type Command struct {
	// Tool is the logical name of the wrapped tool ("jlink", "jar").
	// It appears in errors and log fields.
	Tool string
	// Binary is the resolved executable path.
	Binary string
	// Args are the command-line arguments, already assembled in order.
	Args []string
	// Dir is the working directory. If empty, inherits the caller's.
	Dir string
	// Env is the environment overlay (keys unique).
	Env map[string]string
	// ReplaceEnv selects the overlay policy: false merges Env on top of
	// the inherited environment, true makes Env the entire environment.
	ReplaceEnv bool
	// Stdin provides input to the process. May be nil.
	Stdin io.Reader
	// Stdout receives the child's standard output. If nil, Start
	// connects the child to the null device and Run captures into the
	// Result.
	Stdout io.Writer
	// Stderr receives the child's standard error, same defaults as Stdout.
	Stderr io.Writer
	// Timeout is the wall-clock limit. Zero means the watchdog is never
	// armed and the process runs unsupervised.
	Timeout time.Duration
	// GracePeriod is how long to wait after SIGTERM before SIGKILL.
	// Defaults to DefaultGracePeriod if zero.
	GracePeriod time.Duration
}

func (c Command) gracePeriod() time.Duration {
	if c.GracePeriod > 0 {
		return c.GracePeriod
	}
	return DefaultGracePeriod
}
