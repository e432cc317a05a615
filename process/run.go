package process

import (
	"bytes"
	"context"
	"fmt"

	"github.com/DaRealTurtyWurty/Railroad-sub001/observability"
)

// Run executes a subprocess and waits for it to complete, capturing
// stdout and stderr unless the Command supplies its own writers. If the
// context is canceled, SIGTERM is sent first, then SIGKILL after the
// grace period. The configured Timeout is still enforced by the
// watchdog independently of the context.
func Run(ctx context.Context, cmd Command) (*Result, error) {
	var stdout, stderr bytes.Buffer
	if cmd.Stdout == nil {
		cmd.Stdout = &stdout
	}
	if cmd.Stderr == nil {
		cmd.Stderr = &stderr
	}

	ctx, span := observability.StartInvocationSpan(ctx, cmd.Tool)
	defer span.End()

	h, err := Start(cmd)
	if err != nil {
		observability.RecordInvocationError(ctx, cmd.Tool, err)
		return nil, err
	}

	select {
	case <-h.Done():
	case <-ctx.Done():
		// Take the race slot away from the watchdog so the process is
		// signalled exactly once, whichever path gets there first.
		if h.state.CompareAndSwap(stateArmed, stateCompleted) ||
			h.state.CompareAndSwap(stateUnarmed, stateCompleted) {
			h.terminate(cmd.gracePeriod())
		}
		<-h.Done()
	}

	result, waitErr := h.Wait()
	result.Stdout = stdout.Bytes()
	result.Stderr = stderr.Bytes()

	observability.RecordInvocation(ctx, cmd.Tool, result.Duration, result.ExitCode, result.TimedOut)

	switch {
	case result.TimedOut:
		observability.RecordInvocationError(ctx, cmd.Tool, waitErr)
		return result, waitErr
	case ctx.Err() != nil:
		// Context cancellation is the expected way to kill a process
		err := fmt.Errorf("process %s: killed by context: %w", cmd.Tool, ctx.Err())
		observability.RecordInvocationError(ctx, cmd.Tool, err)
		return result, err
	case waitErr != nil:
		observability.RecordInvocationError(ctx, cmd.Tool, waitErr)
		return result, waitErr
	}
	return result, nil
}
