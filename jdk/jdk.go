package jdk

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/DaRealTurtyWurty/Railroad-sub001/config"
)

// Tool identifies a wrapped JDK tool.
type Tool int

const (
	// Jlink is the module linker.
	Jlink Tool = iota
	// Jar is the archiver.
	Jar
)

// String returns the tool's executable base name.
func (t Tool) String() string {
	switch t {
	case Jlink:
		return "jlink"
	case Jar:
		return "jar"
	default:
		return fmt.Sprintf("Tool(%d)", int(t))
	}
}

// Executable returns the platform-specific executable name for a tool.
func Executable(t Tool, goos string) string {
	if goos == "windows" {
		return t.String() + ".exe"
	}
	return t.String()
}

// Resolve returns the executable path for a tool. Order of precedence:
// explicit per-tool override in cfg, then <java_home>/bin (cfg override
// ahead of the JAVA_HOME environment variable), then PATH lookup.
func Resolve(t Tool, cfg config.ToolsConfig) (string, error) {
	if override := toolOverride(t, cfg); override != "" {
		if _, err := os.Stat(override); err != nil {
			return "", fmt.Errorf("resolving %s: configured path %s: %w", t, override, err)
		}
		return override, nil
	}

	name := Executable(t, runtime.GOOS)

	javaHome := cfg.JavaHome
	if javaHome == "" {
		javaHome = os.Getenv("JAVA_HOME")
	}
	if javaHome != "" {
		candidate := filepath.Join(javaHome, "bin", name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	path, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", t, err)
	}
	return path, nil
}

func toolOverride(t Tool, cfg config.ToolsConfig) string {
	switch t {
	case Jlink:
		return cfg.Jlink
	case Jar:
		return cfg.Jar
	default:
		return ""
	}
}
