package logger

import (
	"os"
	"testing"
	"time"
)

func TestNewDefault(t *testing.T) {
	l := NewDefault("test-svc")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
	if l.service != "test-svc" {
		t.Errorf("expected service 'test-svc', got %q", l.service)
	}
}

func TestNew(t *testing.T) {
	cfg := &Config{
		Level:  "debug",
		Format: "json",
		Output: "stdout",
	}
	l := New(cfg, "jdktools")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
	if l.service != "jdktools" {
		t.Errorf("expected service 'jdktools', got %q", l.service)
	}
}

func TestNewInvalidLevel(t *testing.T) {
	cfg := &Config{
		Level:  "invalid-level",
		Format: "json",
	}
	l := New(cfg, "test")
	if l == nil {
		t.Fatal("expected logger to be created even with invalid level")
	}
}

func TestNewFromEnv(t *testing.T) {
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("LOG_FORMAT", "json")
	defer os.Unsetenv("LOG_LEVEL")
	defer os.Unsetenv("LOG_FORMAT")

	l := NewFromEnv("env-svc")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
}

func TestWithComponent(t *testing.T) {
	l := NewDefault("test")
	cl := l.WithComponent("process")
	if cl == nil {
		t.Fatal("expected non-nil logger")
	}
	if cl.service != "test" {
		t.Errorf("service should be preserved, got %q", cl.service)
	}
}

func TestRegistryGetUnregistered(t *testing.T) {
	l := Get("watchdog")
	if l == nil {
		t.Fatal("Get should fall back to the global logger")
	}
}

func TestRegistryRegisterAndGet(t *testing.T) {
	custom := NewDefault("custom")
	Register("launcher", custom)
	if got := Get("launcher"); got != custom {
		t.Error("Get should return the registered logger")
	}
}

func TestFields(t *testing.T) {
	m := Fields(FieldTool, "jar", FieldExitCode, 0)
	if m[FieldTool] != "jar" {
		t.Errorf("expected tool=jar, got %v", m[FieldTool])
	}
	if m[FieldExitCode] != 0 {
		t.Errorf("expected exit_code=0, got %v", m[FieldExitCode])
	}
}

func TestFieldsOddArguments(t *testing.T) {
	m := Fields(FieldTool, "jlink", FieldPid)
	if len(m) != 1 {
		t.Errorf("trailing key without value should be dropped, got %v", m)
	}
}

func TestDurationFields(t *testing.T) {
	m := DurationFields("run", 1500*time.Millisecond)
	if m[FieldDuration] != int64(1500) {
		t.Errorf("expected duration_ms=1500, got %v", m[FieldDuration])
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := Config{Level: "verbose", Format: "json"}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for invalid level")
	}
	cfg = Config{Level: "info", Format: "xml"}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for invalid format")
	}
	cfg = Config{Level: "info", Format: "json"}
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
