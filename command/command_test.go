package command_test

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/DaRealTurtyWurty/Railroad-sub001/command"
	"github.com/DaRealTurtyWurty/Railroad-sub001/config"
)

func TestAccumulatorPreservesOrder(t *testing.T) {
	var a command.Accumulator
	a.Append("--file", "out.jar")
	a.Append("--main-class", "App")
	a.AppendTrailing("App.class")
	a.Append("--verbose")
	a.AppendTrailing("lib/Other.class")

	wantOpts := []string{"--file", "out.jar", "--main-class", "App", "--verbose"}
	if !reflect.DeepEqual(a.Options(), wantOpts) {
		t.Errorf("options = %v, want %v", a.Options(), wantOpts)
	}
	wantTrailing := []string{"App.class", "lib/Other.class"}
	if !reflect.DeepEqual(a.Trailing(), wantTrailing) {
		t.Errorf("trailing = %v, want %v", a.Trailing(), wantTrailing)
	}
}

func TestAccumulatorFirstErrorWins(t *testing.T) {
	var a command.Accumulator
	first := errors.New("first")
	a.Fail(first)
	a.Fail(errors.New("second"))
	if a.Err() != first {
		t.Errorf("expected first error to be kept, got %v", a.Err())
	}
}

func TestAssembleOrder(t *testing.T) {
	argv := command.Assemble("jar", "--create",
		[]string{"--file", "out.jar", "--main-class", "App"},
		[]string{"App.class"})
	want := []string{"jar", "--create", "--file", "out.jar", "--main-class", "App", "App.class"}
	if !reflect.DeepEqual(argv, want) {
		t.Errorf("argv = %v, want %v", argv, want)
	}
}

func TestAssembleNoMode(t *testing.T) {
	argv := command.Assemble("jlink", "", []string{"--output", "image"}, nil)
	want := []string{"jlink", "--output", "image"}
	if !reflect.DeepEqual(argv, want) {
		t.Errorf("argv = %v, want %v", argv, want)
	}
}

func TestAssembleDoesNotAliasInput(t *testing.T) {
	opts := []string{"--verbose"}
	argv := command.Assemble("jar", "--list", opts, nil)
	argv[1] = "mutated"
	if opts[0] != "--verbose" {
		t.Error("Assemble must not alias its inputs")
	}
}

func TestPolicySetEnvKeepsKeysUnique(t *testing.T) {
	var p command.Policy
	p.SetEnv("JAVA_OPTS", "-Xmx1g")
	p.SetEnv("JAVA_OPTS", "-Xmx2g")
	if len(p.Env) != 1 || p.Env["JAVA_OPTS"] != "-Xmx2g" {
		t.Errorf("expected single key with last value, got %v", p.Env)
	}
}

func TestPolicyApplyDefaults(t *testing.T) {
	p := command.Policy{Timeout: time.Minute}
	p.ApplyDefaults(config.ExecConfig{
		Timeout:     time.Hour,
		GracePeriod: 2 * time.Second,
		EnvPolicy:   "replace",
	})
	if p.Timeout != time.Minute {
		t.Error("explicit timeout must not be overridden")
	}
	if p.GracePeriod != 2*time.Second {
		t.Error("unset grace period should take the config default")
	}
	if !p.ReplaceEnv {
		t.Error("replace policy should carry over")
	}
}

func TestPolicyCommand(t *testing.T) {
	p := command.Policy{Dir: "/work", Timeout: time.Second}
	cmd := p.Command("jar", []string{"jar", "--list", "--file", "out.jar"})
	if cmd.Binary != "jar" {
		t.Errorf("expected binary 'jar', got %q", cmd.Binary)
	}
	want := []string{"--list", "--file", "out.jar"}
	if !reflect.DeepEqual(cmd.Args, want) {
		t.Errorf("args = %v, want %v", cmd.Args, want)
	}
	if cmd.Dir != "/work" || cmd.Timeout != time.Second {
		t.Error("policy fields should carry into the command")
	}
}
