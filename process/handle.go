package process

import (
	"fmt"
	"os/exec"
	"sync/atomic"
	"time"

	"github.com/DaRealTurtyWurty/Railroad-sub001/errors"
	"github.com/DaRealTurtyWurty/Railroad-sub001/logger"
)

// Watchdog states. Transitions: unarmed stays unarmed for zero
// timeouts; armed moves exactly once to completed or timedOut.
const (
	stateUnarmed int32 = iota
	stateArmed
	stateCompleted
	stateTimedOut
)

// Handle represents a live spawned process. It is owned by the caller;
// the watchdog holds it only for signalling during the timeout race.
type Handle struct {
	id      string
	tool    string
	cmd     *exec.Cmd
	started time.Time
	timeout time.Duration

	state   atomic.Int32
	done    chan struct{}
	ended   time.Time
	waitErr error
}

// ID returns the invocation id assigned at spawn.
func (h *Handle) ID() string { return h.id }

// Tool returns the logical tool name.
func (h *Handle) Tool() string { return h.tool }

// Pid returns the OS process id.
func (h *Handle) Pid() int { return h.cmd.Process.Pid }

// Done returns a channel closed when the process has been reaped.
func (h *Handle) Done() <-chan struct{} { return h.done }

// TimedOut reports whether the watchdog terminated the process.
func (h *Handle) TimedOut() bool { return h.state.Load() == stateTimedOut }

// Wait blocks until the process has been reaped and returns its result.
// It is safe to call from multiple goroutines; each call observes the
// same outcome. A watchdog-terminated process yields a timeout error;
// a non-zero natural exit yields an error wrapping the exit status.
func (h *Handle) Wait() (*Result, error) {
	<-h.done

	result := &Result{
		ExitCode: h.cmd.ProcessState.ExitCode(),
		Duration: h.ended.Sub(h.started),
		TimedOut: h.TimedOut(),
	}

	if result.TimedOut {
		return result, errors.Timeout(h.tool, h.timeout)
	}
	if h.waitErr != nil {
		return result, fmt.Errorf("process %s: exit code %d: %w", h.tool, result.ExitCode, h.waitErr)
	}
	return result, nil
}

// reap waits for the process exactly once and publishes the outcome.
// Closing done is the synchronization point for Wait and the watchdog.
func (h *Handle) reap() {
	h.waitErr = h.cmd.Wait()
	h.ended = time.Now()
	close(h.done)
}

// watch races the child's natural exit against the deadline. Runs on
// its own goroutine; the state was set to armed before spawn returned.
func (h *Handle) watch(timeout, grace time.Duration) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-h.done:
		h.state.CompareAndSwap(stateArmed, stateCompleted)
	case <-timer.C:
		// The process may have exited concurrently with the deadline;
		// a reaped process must not be signalled.
		select {
		case <-h.done:
			h.state.CompareAndSwap(stateArmed, stateCompleted)
			return
		default:
		}
		if h.state.CompareAndSwap(stateArmed, stateTimedOut) {
			h.terminate(grace)
		}
	}
}

// terminate requests termination of the process group, escalating to
// SIGKILL when the group does not exit within the grace period.
func (h *Handle) terminate(grace time.Duration) {
	log := logger.Get("process")
	log.Warn("terminating process group", logger.Fields(
		logger.FieldTool, h.tool,
		logger.FieldInvocationID, h.id,
		logger.FieldPid, h.Pid(),
		logger.FieldTimeout, h.timeout.Milliseconds(),
	))

	if err := terminateGroup(h.Pid()); err != nil {
		log.Debug("terminate request failed", logger.ErrorFields("terminate", err))
	}

	select {
	case <-h.done:
	case <-time.After(grace):
		log.Warn("grace period elapsed, killing", logger.Fields(
			logger.FieldTool, h.tool,
			logger.FieldInvocationID, h.id,
			logger.FieldPid, h.Pid(),
			logger.FieldGracePeriod, grace.Milliseconds(),
		))
		if err := killGroup(h.Pid()); err != nil {
			log.Debug("kill request failed", logger.ErrorFields("kill", err))
		}
	}
}
