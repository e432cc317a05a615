package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestToolError_New_Success(t *testing.T) {
	err := New(ErrCodeMissingMode, "jar", "no operation mode selected")
	if err.Code != ErrCodeMissingMode {
		t.Errorf("expected code %s, got %s", ErrCodeMissingMode, err.Code)
	}
	if err.Tool != "jar" {
		t.Errorf("expected tool 'jar', got %q", err.Tool)
	}
	if err.Message != "no operation mode selected" {
		t.Errorf("unexpected message %q", err.Message)
	}
}

func TestToolError_InvalidOption_Details(t *testing.T) {
	err := InvalidOption("jlink", "--compress", 3, "must be between 0 and 2")
	if err.Code != ErrCodeInvalidOption {
		t.Errorf("expected INVALID_OPTION, got %s", err.Code)
	}
	if err.Details["option"] != "--compress" {
		t.Errorf("expected option=--compress, got %v", err.Details["option"])
	}
	if err.Details["value"] != 3 {
		t.Errorf("expected value=3, got %v", err.Details["value"])
	}
	if !strings.Contains(err.Error(), "--compress") {
		t.Errorf("error string should name the option: %s", err.Error())
	}
}

func TestToolError_Launch_WrapsCause(t *testing.T) {
	cause := fmt.Errorf("exec: %q: executable file not found", "jlink")
	err := Launch("jlink", cause)
	if !stderrors.Is(err, cause) {
		t.Error("Launch error should wrap its cause")
	}
	if !strings.Contains(err.Error(), "cause:") {
		t.Errorf("error string should include the cause: %s", err.Error())
	}
}

func TestToolError_Timeout_CarriesBound(t *testing.T) {
	err := Timeout("jar", 250*time.Millisecond)
	if err.Tool != "jar" {
		t.Errorf("expected tool 'jar', got %q", err.Tool)
	}
	if err.Details["timeout_ms"] != int64(250) {
		t.Errorf("expected timeout_ms=250, got %v", err.Details["timeout_ms"])
	}
}

func TestToolError_KindPredicates(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		config  bool
		launch  bool
		timeout bool
	}{
		{"invalid option", InvalidOption("jlink", "--compress", 9, "out of range"), true, false, false},
		{"missing mode", MissingMode("jar"), true, false, false},
		{"missing index target", MissingIndexTarget("jar"), true, false, false},
		{"launch", Launch("jar", stderrors.New("boom")), false, true, false},
		{"timeout", Timeout("jlink", time.Second), false, false, true},
		{"plain error", stderrors.New("nope"), false, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsConfiguration(tt.err); got != tt.config {
				t.Errorf("IsConfiguration = %v, want %v", got, tt.config)
			}
			if got := IsLaunch(tt.err); got != tt.launch {
				t.Errorf("IsLaunch = %v, want %v", got, tt.launch)
			}
			if got := IsTimeout(tt.err); got != tt.timeout {
				t.Errorf("IsTimeout = %v, want %v", got, tt.timeout)
			}
		})
	}
}

func TestToolError_PredicatesThroughWrapping(t *testing.T) {
	err := fmt.Errorf("running jar: %w", Timeout("jar", time.Second))
	if !IsTimeout(err) {
		t.Error("IsTimeout should see through fmt.Errorf wrapping")
	}
	if IsConfiguration(err) {
		t.Error("wrapped timeout is not a configuration error")
	}
}

func TestToolError_WithDetail(t *testing.T) {
	err := MissingMode("jar").WithDetail("hint", "call CreateArchive first")
	if err.Details["hint"] != "call CreateArchive first" {
		t.Errorf("expected hint detail, got %v", err.Details)
	}
}
