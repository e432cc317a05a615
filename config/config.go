package config

import (
	"fmt"
	"time"

	"github.com/DaRealTurtyWurty/Railroad-sub001/logger"
	"github.com/DaRealTurtyWurty/Railroad-sub001/validation"
)

// Config is the root configuration for the tool façade.
type Config struct {
	Name        string        `yaml:"name" mapstructure:"name"`
	Environment string        `yaml:"environment" mapstructure:"environment" validate:"omitempty,oneof=development staging production"`
	Debug       bool          `yaml:"debug" mapstructure:"debug"`
	Logging     logger.Config `yaml:"logging" mapstructure:"logging"`
	Tools       ToolsConfig   `yaml:"tools" mapstructure:"tools"`
	Exec        ExecConfig    `yaml:"exec" mapstructure:"exec"`
}

// ToolsConfig locates the wrapped executables. Empty fields fall back to
// JAVA_HOME and then PATH lookup.
type ToolsConfig struct {
	// JavaHome overrides the JAVA_HOME environment variable.
	JavaHome string `yaml:"java_home" mapstructure:"java_home"`
	// Jlink is an explicit path to the jlink executable.
	Jlink string `yaml:"jlink" mapstructure:"jlink"`
	// Jar is an explicit path to the jar executable.
	Jar string `yaml:"jar" mapstructure:"jar"`
}

// ExecConfig carries execution defaults applied by builders when unset.
type ExecConfig struct {
	// Timeout is the default wall-clock limit. Zero means unsupervised.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout" validate:"min=0"`
	// GracePeriod is how long to wait after SIGTERM before SIGKILL.
	GracePeriod time.Duration `yaml:"grace_period" mapstructure:"grace_period" validate:"min=0"`
	// EnvPolicy selects whether env overlays merge with or replace the
	// inherited environment.
	EnvPolicy string `yaml:"env_policy" mapstructure:"env_policy" validate:"omitempty,oneof=merge replace"`
}

// ApplyDefaults applies default values to the configuration.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "railroad"
	}
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Environment == "development" {
		c.Debug = true
	}
	if c.Exec.GracePeriod == 0 {
		c.Exec.GracePeriod = 5 * time.Second
	}
	if c.Exec.EnvPolicy == "" {
		c.Exec.EnvPolicy = "merge"
	}
	if c.Logging.ServiceName == "" {
		c.Logging.ServiceName = c.Name
	}
	c.Logging.ApplyDefaults()
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := validation.Validate(c); err != nil {
		return err
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("config.logging: %w", err)
	}
	return nil
}
