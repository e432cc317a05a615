package jar

import (
	"context"
	"io"
	"path/filepath"
	"time"

	"github.com/DaRealTurtyWurty/Railroad-sub001/command"
	"github.com/DaRealTurtyWurty/Railroad-sub001/config"
	"github.com/DaRealTurtyWurty/Railroad-sub001/jdk"
	"github.com/DaRealTurtyWurty/Railroad-sub001/process"
	"github.com/DaRealTurtyWurty/Railroad-sub001/validation"
)

const toolName = "jar"

// Builder accumulates a jar invocation.
type Builder struct {
	acc    command.Accumulator
	policy command.Policy
	mode   mode
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

// --- Operation modes (mutually exclusive, selection is unconditional) ---

// Create selects archive creation.
func (b *Builder) Create() *Builder {
	b.mode = mode{kind: modeCreate}
	return b
}

// List selects listing the archive's table of contents.
func (b *Builder) List() *Builder {
	b.mode = mode{kind: modeList}
	return b
}

// Update selects updating an existing archive.
func (b *Builder) Update() *Builder {
	b.mode = mode{kind: modeUpdate}
	return b
}

// Extract selects extracting the archive.
func (b *Builder) Extract() *Builder {
	b.mode = mode{kind: modeExtract}
	return b
}

// DescribeModule selects printing the module descriptor.
func (b *Builder) DescribeModule() *Builder {
	b.mode = mode{kind: modeDescribeModule}
	return b
}

// Validate selects validating the archive.
func (b *Builder) Validate() *Builder {
	b.mode = mode{kind: modeValidate}
	return b
}

// GenerateIndex selects generating an index for the target archive.
// The target is part of the mode token: --generate-index=<target>.
func (b *Builder) GenerateIndex(target string) *Builder {
	b.mode = mode{kind: modeGenerateIndex, target: target}
	return b
}

// --- Options ---

// ArchiveFile emits --file with the archive path.
func (b *Builder) ArchiveFile(path string) *Builder {
	if err := validation.New(toolName).Required("--file", path).Err(); err != nil {
		b.acc.Fail(err)
		return b
	}
	b.acc.Append("--file", filepath.Clean(path))
	return b
}

// MainClass emits --main-class with the application entry point.
func (b *Builder) MainClass(name string) *Builder {
	if err := validation.New(toolName).Required("--main-class", name).Err(); err != nil {
		b.acc.Fail(err)
		return b
	}
	b.acc.Append("--main-class", name)
	return b
}

// Manifest emits --manifest with the manifest file to include.
func (b *Builder) Manifest(path string) *Builder {
	if err := validation.New(toolName).Required("--manifest", path).Err(); err != nil {
		b.acc.Fail(err)
		return b
	}
	b.acc.Append("--manifest", filepath.Clean(path))
	return b
}

// NoManifest emits --no-manifest.
func (b *Builder) NoManifest() *Builder {
	b.acc.Append("--no-manifest")
	return b
}

// ModuleVersion emits --module-version.
func (b *Builder) ModuleVersion(version string) *Builder {
	if err := validation.New(toolName).Required("--module-version", version).Err(); err != nil {
		b.acc.Fail(err)
		return b
	}
	b.acc.Append("--module-version", version)
	return b
}

// Date emits --date with the timestamp used for archive entries, in
// ISO-8601 as jar documents it.
func (b *Builder) Date(t time.Time) *Builder {
	b.acc.Append("--date", t.Format(time.RFC3339))
	return b
}

// NoCompress emits --no-compress.
func (b *Builder) NoCompress() *Builder {
	b.acc.Append("--no-compress")
	return b
}

// Verbose emits --verbose.
func (b *Builder) Verbose() *Builder {
	b.acc.Append("--verbose")
	return b
}

// AddOptions appends raw tokens verbatim, for flags without a typed setter.
func (b *Builder) AddOptions(tokens ...string) *Builder {
	b.acc.Append(tokens...)
	return b
}

// --- Trailing entries (always after all flags) ---

// AddFile appends a file or class entry to the trailing sequence.
func (b *Builder) AddFile(path string) *Builder {
	if err := validation.New(toolName).Required("file entry", path).Err(); err != nil {
		b.acc.Fail(err)
		return b
	}
	b.acc.AppendTrailing(path)
	return b
}

// AddFiles appends several entries in order. The slice must be non-nil;
// empty is allowed.
func (b *Builder) AddFiles(paths []string) *Builder {
	if err := validation.New(toolName).NotNil("file entries", paths).Err(); err != nil {
		b.acc.Fail(err)
		return b
	}
	for _, p := range paths {
		b.AddFile(p)
	}
	return b
}

// ChangeDir appends a -C <dir> <entry> directory-change marker so the
// entry is taken relative to dir.
func (b *Builder) ChangeDir(dir, entry string) *Builder {
	if err := validation.New(toolName).
		Required("-C directory", dir).
		Required("-C entry", entry).
		Err(); err != nil {
		b.acc.Fail(err)
		return b
	}
	b.acc.AppendTrailing("-C", dir, entry)
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
// vector: executable path, mode flag, options in call order, trailing
// entries in call order.
func (b *Builder) Args() ([]string, error) {
	if err := b.acc.Err(); err != nil {
		return nil, err
	}
	modeFlag, err := b.mode.flag()
	if err != nil {
		return nil, err
	}
	binary, err := b.resolveBinary()
	if err != nil {
		return nil, err
	}
	return command.Assemble(binary, modeFlag, b.acc.Options(), b.acc.Trailing()), nil
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
	return jdk.Resolve(jdk.Jar, b.tools)
}
