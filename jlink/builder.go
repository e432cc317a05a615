package jlink

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/DaRealTurtyWurty/Railroad-sub001/command"
	"github.com/DaRealTurtyWurty/Railroad-sub001/config"
	"github.com/DaRealTurtyWurty/Railroad-sub001/jdk"
	"github.com/DaRealTurtyWurty/Railroad-sub001/process"
	"github.com/DaRealTurtyWurty/Railroad-sub001/validation"
)

const toolName = "jlink"

// Compression level domain documented by jlink.
const (
	MinCompressionLevel = 0
	MaxCompressionLevel = 2
)

// Builder accumulates a jlink invocation.
type Builder struct {
	acc    command.Accumulator
	policy command.Policy
	binary string
	tools  config.ToolsConfig
}

// New creates an empty Builder. The executable is resolved from
// JAVA_HOME or PATH at run time unless Binary is set.
func New() *Builder {
	return &Builder{}
}

// NewWithConfig creates a Builder carrying tool locations and execution
// defaults from configuration.
func NewWithConfig(cfg config.Config) *Builder {
	b := &Builder{tools: cfg.Tools}
	b.policy.ApplyDefaults(cfg.Exec)
	return b
}

// Binary overrides executable resolution with an explicit path.
func (b *Builder) Binary(path string) *Builder {
	b.binary = path
	return b
}

// --- Options ---

// AddModules emits --add-modules with a comma-joined module list. The
// slice must be non-nil; empty means "no root modules" and is allowed.
func (b *Builder) AddModules(modules []string) *Builder {
	if err := validation.New(toolName).NotNil("--add-modules", modules).Err(); err != nil {
		b.acc.Fail(err)
		return b
	}
	b.acc.Append("--add-modules", strings.Join(modules, ","))
	return b
}

// LimitModules emits --limit-modules with a comma-joined module list.
func (b *Builder) LimitModules(modules []string) *Builder {
	if err := validation.New(toolName).NotNil("--limit-modules", modules).Err(); err != nil {
		b.acc.Fail(err)
		return b
	}
	b.acc.Append("--limit-modules", strings.Join(modules, ","))
	return b
}

// ModulePath emits --module-path with entries joined by the platform
// path-list separator.
func (b *Builder) ModulePath(paths []string) *Builder {
	if err := validation.New(toolName).NotNil("--module-path", paths).Err(); err != nil {
		b.acc.Fail(err)
		return b
	}
	b.acc.Append("--module-path", strings.Join(paths, string(filepath.ListSeparator)))
	return b
}

// Output emits --output with the cleaned destination directory, so path
// and string spellings of the same location produce an identical token.
func (b *Builder) Output(dir string) *Builder {
	if err := validation.New(toolName).Required("--output", dir).Err(); err != nil {
		b.acc.Fail(err)
		return b
	}
	b.acc.Append("--output", filepath.Clean(dir))
	return b
}

// Launcher emits --launcher name=module[/mainClass].
func (b *Builder) Launcher(name, module, mainClass string) *Builder {
	if err := validation.New(toolName).
		Required("--launcher name", name).
		Required("--launcher module", module).
		Err(); err != nil {
		b.acc.Fail(err)
		return b
	}
	target := module
	if mainClass != "" {
		target = module + "/" + mainClass
	}
	b.acc.Append("--launcher", name+"="+target)
	return b
}

// Compress emits --compress=<level>. Levels outside 0-2 fail with a
// configuration error and append nothing.
func (b *Builder) Compress(level int) *Builder {
	if err := validation.New(toolName).
		Range("--compress", level, MinCompressionLevel, MaxCompressionLevel).
		Err(); err != nil {
		b.acc.Fail(err)
		return b
	}
	b.acc.Append(fmt.Sprintf("--compress=%d", level))
	return b
}

// CompressFilter emits --compress=<level>:filter=<pattern>.
func (b *Builder) CompressFilter(level int, pattern string) *Builder {
	if err := validation.New(toolName).
		Range("--compress", level, MinCompressionLevel, MaxCompressionLevel).
		Required("--compress filter", pattern).
		Err(); err != nil {
		b.acc.Fail(err)
		return b
	}
	b.acc.Append(fmt.Sprintf("--compress=%d:filter=%s", level, pattern))
	return b
}

// StripDebug emits --strip-debug.
func (b *Builder) StripDebug() *Builder {
	b.acc.Append("--strip-debug")
	return b
}

// NoHeaderFiles emits --no-header-files.
func (b *Builder) NoHeaderFiles() *Builder {
	b.acc.Append("--no-header-files")
	return b
}

// NoManPages emits --no-man-pages.
func (b *Builder) NoManPages() *Builder {
	b.acc.Append("--no-man-pages")
	return b
}

// BindServices emits --bind-services.
func (b *Builder) BindServices() *Builder {
	b.acc.Append("--bind-services")
	return b
}

// IgnoreSigningInformation emits --ignore-signing-information.
func (b *Builder) IgnoreSigningInformation() *Builder {
	b.acc.Append("--ignore-signing-information")
	return b
}

// Verbose emits --verbose.
func (b *Builder) Verbose() *Builder {
	b.acc.Append("--verbose")
	return b
}

// SaveOpts emits --save-opts with the destination file.
func (b *Builder) SaveOpts(path string) *Builder {
	if err := validation.New(toolName).Required("--save-opts", path).Err(); err != nil {
		b.acc.Fail(err)
		return b
	}
	b.acc.Append("--save-opts", path)
	return b
}

// AddOptions appends raw tokens verbatim, for flags without a typed setter.
func (b *Builder) AddOptions(tokens ...string) *Builder {
	b.acc.Append(tokens...)
	return b
}

// --- Execution policy ---

// Dir sets the working directory for the invocation.
func (b *Builder) Dir(dir string) *Builder {
	b.policy.Dir = dir
	return b
}

// Env records one environment overlay variable.
func (b *Builder) Env(key, value string) *Builder {
	b.policy.SetEnv(key, value)
	return b
}

// ReplaceEnv makes the overlay the child's entire environment instead
// of merging it with the inherited one.
func (b *Builder) ReplaceEnv(replace bool) *Builder {
	b.policy.ReplaceEnv = replace
	return b
}

// Timeout sets the wall-clock limit. Zero means unsupervised.
func (b *Builder) Timeout(d time.Duration) *Builder {
	b.policy.Timeout = d
	return b
}

// GracePeriod sets the SIGTERM to SIGKILL escalation delay.
func (b *Builder) GracePeriod(d time.Duration) *Builder {
	b.policy.GracePeriod = d
	return b
}

// Stdout directs the child's standard output to w.
func (b *Builder) Stdout(w io.Writer) *Builder {
	b.policy.Stdout = w
	return b
}

// Stderr directs the child's standard error to w.
func (b *Builder) Stderr(w io.Writer) *Builder {
	b.policy.Stderr = w
	return b
}

// --- Terminal operations ---

// Err returns the first configuration error recorded by a setter.
func (b *Builder) Err() error {
	return b.acc.Err()
}

// Args validates the accumulated state and returns the full argument
// vector, executable path first.
func (b *Builder) Args() ([]string, error) {
	if err := b.acc.Err(); err != nil {
		return nil, err
	}
	binary, err := b.resolveBinary()
	if err != nil {
		return nil, err
	}
	return command.Assemble(binary, "", b.acc.Options(), b.acc.Trailing()), nil
}

// Start assembles the command and spawns the process, returning a live
// handle without waiting for completion.
func (b *Builder) Start() (*process.Handle, error) {
	argv, err := b.Args()
	if err != nil {
		return nil, err
	}
	return process.Start(b.policy.Command(toolName, argv))
}

// Run assembles the command and executes it to completion, capturing
// output unless writers were configured.
func (b *Builder) Run(ctx context.Context) (*process.Result, error) {
	argv, err := b.Args()
	if err != nil {
		return nil, err
	}
	return process.Run(ctx, b.policy.Command(toolName, argv))
}

func (b *Builder) resolveBinary() (string, error) {
	if b.binary != "" {
		return b.binary, nil
	}
	return jdk.Resolve(jdk.Jlink, b.tools)
}
