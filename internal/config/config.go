// SPDX-License-Identifier: MPL-2.0

// Package config handles the tool's own configuration using Viper.
// This is gitscope's configuration, not git's: it controls output defaults
// for the CLI and is entirely separate from the git configuration files
// whose locations the tool resolves.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gitscope-cli/internal/issue"
	"gitscope-cli/pkg/platform"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "gitscope"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "toml"
)

type (
	// Config is the tool configuration.
	Config struct {
		// OutputFormat selects the default output format: "text" or "json".
		OutputFormat string `mapstructure:"output_format" toml:"output_format"`

		// DefaultGitDir is the git directory assumed for the local scope
		// when --git-dir is not given.
		DefaultGitDir string `mapstructure:"default_git_dir" toml:"default_git_dir"`

		UI UIConfig `mapstructure:"ui" toml:"ui"`
	}

	// UIConfig groups terminal-presentation settings.
	UIConfig struct {
		// ColorScheme selects the glamour style: "auto", "dark" or "light".
		ColorScheme string `mapstructure:"color_scheme" toml:"color_scheme"`

		// Verbose enables verbose output by default.
		Verbose bool `mapstructure:"verbose" toml:"verbose"`
	}
)

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		OutputFormat:  "text",
		DefaultGitDir: ".git",
		UI: UIConfig{
			ColorScheme: "auto",
			Verbose:     false,
		},
	}
}

// ConfigDir returns the gitscope configuration directory using
// platform-specific conventions: Windows uses %APPDATA%, macOS uses
// ~/Library/Application Support, and Linux/others use $XDG_CONFIG_HOME
// (defaulting to ~/.config).
func ConfigDir() (string, error) {
	// Allow tests to override the config directory
	if configDirOverride != "" {
		return configDirOverride, nil
	}

	var configDir string

	switch runtime.GOOS {
	case platform.Windows:
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case platform.Darwin:
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default: // Linux and others
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// Load reads the configuration, falling back to defaults when no file
// exists. The second return value is the resolved file path, or "" when
// defaults were used.
func Load() (*Config, string, error) {
	v := viper.New()
	v.SetConfigType(ConfigFileExt)

	defaults := DefaultConfig()
	v.SetDefault("output_format", defaults.OutputFormat)
	v.SetDefault("default_git_dir", defaults.DefaultGitDir)
	v.SetDefault("ui.color_scheme", defaults.UI.ColorScheme)
	v.SetDefault("ui.verbose", defaults.UI.Verbose)

	resolvedPath := ""

	// A custom config file set via --config is used exclusively.
	if configFileOverride != "" {
		if !fileExists(configFileOverride) {
			return nil, "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(configFileOverride).
				WithSuggestion("Verify the file path is correct").
				WithSuggestion("Run 'gitscope config init' to create a default configuration").
				Wrap(fmt.Errorf("config file not found: %s", configFileOverride)).
				BuildError()
		}
		v.SetConfigFile(configFileOverride)
		if err := v.ReadInConfig(); err != nil {
			return nil, "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(configFileOverride).
				WithSuggestion("Check that the file contains valid TOML").
				Wrap(err).
				BuildError()
		}
		resolvedPath = configFileOverride
	} else {
		cfgDir, err := ConfigDir()
		if err != nil {
			return nil, "", err
		}

		cfgPath := filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExt)
		if fileExists(cfgPath) {
			v.SetConfigFile(cfgPath)
			if err := v.ReadInConfig(); err != nil {
				return nil, "", issue.NewErrorContext().
					WithOperation("load configuration").
					WithResource(cfgPath).
					WithSuggestion("Check that the file contains valid TOML").
					WithSuggestion("Remove the file to fall back to defaults").
					Wrap(err).
					BuildError()
			}
			resolvedPath = cfgPath
		}
		// No config file found: defaults apply, not an error.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, "", issue.NewErrorContext().
			WithOperation("validate configuration").
			WithResource(resolvedPath).
			WithSuggestion("Fix the offending value or run 'gitscope config init' to reset").
			Wrap(err).
			BuildError()
	}

	return &cfg, resolvedPath, nil
}

// validate checks constraints the TOML shape cannot express.
func validate(cfg *Config) error {
	switch cfg.OutputFormat {
	case "text", "json":
	default:
		return fmt.Errorf("output_format must be %q or %q, got %q", "text", "json", cfg.OutputFormat)
	}

	switch cfg.UI.ColorScheme {
	case "auto", "dark", "light":
	default:
		return fmt.Errorf("ui.color_scheme must be one of auto, dark, light, got %q", cfg.UI.ColorScheme)
	}

	return nil
}

// CreateDefault writes a default config file if none exists yet.
func CreateDefault() error {
	cfgDir, err := ConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	cfgPath := filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExt)

	if _, err := os.Stat(cfgPath); err == nil {
		return nil // File exists
	}

	return write(cfgPath, DefaultConfig())
}

// Save writes the configuration to the standard location.
func Save(cfg *Config) error {
	cfgDir, err := ConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	return write(filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExt), cfg)
}

func write(path string, cfg *Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// fileExists checks if a file exists and is not a directory.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}
