package command

import (
	"io"
	"time"

	"github.com/DaRealTurtyWurty/Railroad-sub001/config"
	"github.com/DaRealTurtyWurty/Railroad-sub001/process"
)

// Policy is the execution policy accumulated alongside the options:
// working directory, environment overlay and its merge/replace switch,
// timeout, and grace period. The zero value inherits the caller's
// directory and environment and runs unsupervised.
type Policy struct {
	Dir         string
	Env         map[string]string
	ReplaceEnv  bool
	Timeout     time.Duration
	GracePeriod time.Duration
	Stdin       io.Reader
	Stdout      io.Writer
	Stderr      io.Writer
}

// SetEnv records one overlay variable, keeping keys unique.
func (p *Policy) SetEnv(key, value string) {
	if p.Env == nil {
		p.Env = make(map[string]string)
	}
	p.Env[key] = value
}

// ApplyDefaults fills unset timeout and grace period from exec config.
func (p *Policy) ApplyDefaults(cfg config.ExecConfig) {
	if p.Timeout == 0 {
		p.Timeout = cfg.Timeout
	}
	if p.GracePeriod == 0 {
		p.GracePeriod = cfg.GracePeriod
	}
	if cfg.EnvPolicy == "replace" {
		p.ReplaceEnv = true
	}
}

// Command binds an assembled argument vector to this policy. The argv
// head is the executable path, the tail its arguments.
func (p Policy) Command(tool string, argv []string) process.Command {
	var binary string
	var args []string
	if len(argv) > 0 {
		binary = argv[0]
		args = argv[1:]
	}
	return process.Command{
		Tool:        tool,
		Binary:      binary,
		Args:        args,
		Dir:         p.Dir,
		Env:         p.Env,
		ReplaceEnv:  p.ReplaceEnv,
		Stdin:       p.Stdin,
		Stdout:      p.Stdout,
		Stderr:      p.Stderr,
		Timeout:     p.Timeout,
		GracePeriod: p.GracePeriod,
	}
}
