package logger

import "time"

// Standard field key constants for structured logging.
const (
	FieldComponent    = "component"
	FieldTool         = "tool"
	FieldBinary       = "binary"
	FieldArgs         = "args"
	FieldPid          = "pid"
	FieldExitCode     = "exit_code"
	FieldInvocationID = "invocation_id"
	FieldTimeout      = "timeout_ms"
	FieldGracePeriod  = "grace_ms"
	FieldDir          = "dir"
	FieldDuration     = "duration_ms"
	FieldSignal       = "signal"
	FieldError        = "error"
	FieldOperation    = "operation"
)

// Fields builds a map[string]interface{} from alternating key-value pairs.
//
//	logger.Info("done", logger.Fields(logger.FieldTool, "jar", logger.FieldExitCode, 0))
func Fields(kvs ...interface{}) map[string]interface{} {
	m := make(map[string]interface{}, len(kvs)/2)
	for i := 0; i < len(kvs)-1; i += 2 {
		if key, ok := kvs[i].(string); ok {
			m[key] = kvs[i+1]
		}
	}
	return m
}

// ErrorFields creates fields for an operation that failed.
func ErrorFields(op string, err error) map[string]interface{} {
	return map[string]interface{}{
		FieldOperation: op,
		FieldError:     err.Error(),
	}
}

// DurationFields creates fields for a timed operation.
func DurationFields(op string, d time.Duration) map[string]interface{} {
	return map[string]interface{}{
		FieldOperation: op,
		FieldDuration:  d.Milliseconds(),
	}
}
