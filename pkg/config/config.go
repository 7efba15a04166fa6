package config

import (
	"github.com/proposaltools/proposalcheck/pkg/models"
)

// Config represents the application configuration
type Config struct {
	Checks   ChecksConfig   `yaml:"checks"`
	Resolver ResolverConfig `yaml:"resolver"`
	Output   OutputConfig   `yaml:"output"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ChecksConfig holds check-related settings
type ChecksConfig struct {
	// OutputDir is the base folder for per-check artifacts
	OutputDir string `yaml:"output_dir"`
}

// ResolverConfig holds path resolution settings
type ResolverConfig struct {
	// Exclude lists directory patterns skipped while indexing the checkout
	Exclude []string `yaml:"exclude"`
}

// OutputConfig holds output-related settings
type OutputConfig struct {
	Format   string `yaml:"format"`   // "human" or "json"
	Progress bool   `yaml:"progress"` // Show a progress bar
	Color    bool   `yaml:"color"`    // Colorize console output
	Quiet    bool   `yaml:"quiet"`    // Suppress non-error output
}

// LoggingConfig holds logging-related settings
type LoggingConfig struct {
	Enabled bool   `yaml:"enabled"`
	Format  string `yaml:"format"` // "json" or "text"
	Level   string `yaml:"level"`  // "debug", "info", "warn", "error"
	File    string `yaml:"file"`   // Log file path (empty = disabled)
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Checks: ChecksConfig{
			OutputDir: "checks",
		},
		Resolver: ResolverConfig{
			Exclude: []string{
				".git/",
				"node_modules/",
			},
		},
		Output: OutputConfig{
			Format:   "human",
			Progress: true,
			Color:    true,
			Quiet:    false,
		},
		Logging: LoggingConfig{
			Enabled: true,
			Format:  "json",
			Level:   "info",
			File:    "",
		},
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Checks.OutputDir == "" {
		return &models.ValidationError{
			Field:   "checks.output_dir",
			Message: "must not be empty",
		}
	}

	validFormats := map[string]bool{"human": true, "json": true}
	if !validFormats[c.Output.Format] {
		return &models.ValidationError{
			Field:   "output.format",
			Message: "must be 'human' or 'json'",
		}
	}

	validLogFormats := map[string]bool{"json": true, "text": true}
	if !validLogFormats[c.Logging.Format] {
		return &models.ValidationError{
			Field:   "logging.format",
			Message: "must be 'json' or 'text'",
		}
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.Logging.Level] {
		return &models.ValidationError{
			Field:   "logging.level",
			Message: "must be 'debug', 'info', 'warn', or 'error'",
		}
	}

	return nil
}
