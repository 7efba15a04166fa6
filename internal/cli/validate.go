package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/proposaltools/proposalcheck/pkg/config"
	"github.com/proposaltools/proposalcheck/pkg/logging"
	"github.com/proposaltools/proposalcheck/pkg/output"
)

// validateDiffFlags validates the diff command flags
func validateDiffFlags() error {
	// Validate repository path
	repoInfo, err := os.Stat(diffFlags.Repo)
	if os.IsNotExist(err) {
		return fmt.Errorf("repository path does not exist: %s", diffFlags.Repo)
	} else if err != nil {
		return fmt.Errorf("failed to access repository path: %w", err)
	} else if !repoInfo.IsDir() {
		return fmt.Errorf("repository path is not a directory: %s", diffFlags.Repo)
	}

	// Validate source bundle
	if _, err := os.Stat(diffFlags.Sources); os.IsNotExist(err) {
		return fmt.Errorf("source bundle does not exist: %s", diffFlags.Sources)
	}

	// Validate output format
	if diffFlags.Output != "" {
		validFormats := map[string]bool{"human": true, "json": true}
		if !validFormats[diffFlags.Output] {
			return fmt.Errorf("invalid output format: %s (valid: human, json)", diffFlags.Output)
		}
	}

	return nil
}

// loadConfig loads configuration from file or returns default
func loadConfig() (*config.Config, error) {
	if globalFlags.ConfigFile != "" {
		return config.LoadFromFile(globalFlags.ConfigFile)
	}
	return config.LoadDefault()
}

// applyFlagsToConfig overrides config values with command-line flags
func applyFlagsToConfig(cfg *config.Config) {
	// Output format
	if diffFlags.Output != "" {
		cfg.Output.Format = diffFlags.Output
	}

	// Artifact base folder
	if diffFlags.OutputDir != "" {
		cfg.Checks.OutputDir = diffFlags.OutputDir
	}

	// Disable progress in quiet mode
	if globalFlags.Quiet {
		cfg.Output.Progress = false
		cfg.Output.Quiet = true
	}

	// Verbose mode raises log detail
	if globalFlags.Verbose {
		cfg.Logging.Level = "debug"
	}
}

// createLogger creates a logger based on configuration
func createLogger(cfg *config.Config) (logging.Logger, error) {
	if !cfg.Logging.Enabled || cfg.Logging.File == "" {
		return logging.NewNullLogger(), nil
	}

	var format logging.Format
	switch cfg.Logging.Format {
	case "json":
		format = logging.FormatJSON
	default:
		format = logging.FormatText
	}

	return logging.NewFileLogger(logging.FileLoggerConfig{
		Path:   cfg.Logging.File,
		Format: format,
		Level:  logging.ParseLevel(cfg.Logging.Level),
	})
}

// createPresenter creates a presenter based on configuration
func createPresenter(cfg *config.Config) output.Presenter {
	if !cfg.Output.Color {
		color.NoColor = true
	}

	writer := io.Writer(os.Stdout)
	if cfg.Output.Quiet {
		writer = io.Discard
	}

	var presenter output.Presenter
	switch cfg.Output.Format {
	case "json":
		presenter = output.NewJSONPresenter(writer)
	default:
		presenter = output.NewHumanPresenter(writer)
	}

	// JSON output must stay parseable, so no bar in front of it
	if cfg.Output.Progress && !cfg.Output.Quiet && cfg.Output.Format != "json" {
		presenter = output.NewProgressPresenter(presenter)
	}

	return presenter
}
