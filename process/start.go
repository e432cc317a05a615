package process

import (
	"os/exec"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/DaRealTurtyWurty/Railroad-sub001/errors"
	"github.com/DaRealTurtyWurty/Railroad-sub001/logger"
)

// Start spawns the configured process and returns a live Handle without
// waiting for completion. The watchdog is armed only when cmd.Timeout
// is positive. Spawn failure yields a launch error wrapping the OS
// error; it is never retried.
func Start(cmd Command) (*Handle, error) {
	if cmd.Binary == "" {
		return nil, errors.MissingOption(cmd.Tool, "binary")
	}

	c := exec.Command(cmd.Binary, cmd.Args...) //nolint:gosec // dynamic args are the purpose of this package
	c.Dir = cmd.Dir
	c.Env = buildEnv(cmd.Env, cmd.ReplaceEnv)
	c.Stdin = cmd.Stdin
	c.Stdout = cmd.Stdout
	c.Stderr = cmd.Stderr

	// Process group so termination covers the entire tree
	c.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	h := &Handle{
		id:      uuid.NewString(),
		tool:    cmd.Tool,
		cmd:     c,
		timeout: cmd.Timeout,
		done:    make(chan struct{}),
	}

	if err := c.Start(); err != nil {
		return nil, errors.Launch(cmd.Tool, err)
	}
	h.started = time.Now()

	log := logger.Get("process")
	log.Debug("spawned", logger.Fields(
		logger.FieldTool, cmd.Tool,
		logger.FieldInvocationID, h.id,
		logger.FieldBinary, cmd.Binary,
		logger.FieldArgs, cmd.Args,
		logger.FieldPid, h.Pid(),
		logger.FieldTimeout, cmd.Timeout.Milliseconds(),
	))

	go h.reap()

	// Arm before handing the handle back so a timeout outcome is never
	// observable without the termination request having been issued.
	if cmd.Timeout > 0 {
		h.state.Store(stateArmed)
		go h.watch(cmd.Timeout, cmd.gracePeriod())
	}

	return h, nil
}
