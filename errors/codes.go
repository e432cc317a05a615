package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Configuration errors (detected before spawn, recoverable by fixing the builder)
const (
	// ErrCodeInvalidOption indicates an option value outside the tool's documented domain.
	ErrCodeInvalidOption ErrorCode = "INVALID_OPTION"
	// ErrCodeMissingOption indicates a required option value was absent or nil.
	ErrCodeMissingOption ErrorCode = "MISSING_OPTION"
	// ErrCodeMissingMode indicates no operation mode was selected before run.
	ErrCodeMissingMode ErrorCode = "MISSING_MODE"
	// ErrCodeMissingIndexTarget indicates generate-index was selected without a target archive.
	ErrCodeMissingIndexTarget ErrorCode = "MISSING_INDEX_TARGET"
)

// Launch errors (the OS failed to create the process)
const (
	// ErrCodeLaunchFailed indicates process creation failed.
	ErrCodeLaunchFailed ErrorCode = "LAUNCH_FAILED"
)

// Timeout errors (detected after spawn)
const (
	// ErrCodeToolTimeout indicates the deadline elapsed before natural completion.
	ErrCodeToolTimeout ErrorCode = "TOOL_TIMEOUT"
)

var configurationCodes = map[ErrorCode]bool{
	ErrCodeInvalidOption:      true,
	ErrCodeMissingOption:      true,
	ErrCodeMissingMode:        true,
	ErrCodeMissingIndexTarget: true,
}

// IsConfigurationCode reports whether a code belongs to the configuration kind.
func IsConfigurationCode(code ErrorCode) bool {
	return configurationCodes[code]
}
