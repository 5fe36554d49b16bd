package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ariel-frischer/claude-notify/internal/notify"
	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix is the prefix of environment overrides
	EnvPrefix = "CLAUDE_NOTIFY_"

	// ProjectConfigPath is the project config location relative to the working directory
	ProjectConfigPath = ".claude/notify.json"
)

// Configuration represents the claude-notify configuration
type Configuration struct {
	Backend             string `koanf:"backend" json:"backend" validate:"oneof=native rich system"`
	IconPath            string `koanf:"icon_path" json:"icon_path" validate:"required"`
	NotifierPath        string `koanf:"notifier_path" json:"notifier_path" validate:"required_if=Backend native"`
	TerminalNotifierCmd string `koanf:"terminal_notifier_cmd" json:"terminal_notifier_cmd" validate:"required_if=Backend rich"`
	ActivateBundle      string `koanf:"activate_bundle" json:"activate_bundle"`
	CompanionCmd        string `koanf:"companion_cmd" json:"companion_cmd"`
	CompanionEnabled    bool   `koanf:"companion_enabled" json:"companion_enabled"`
	LogFile             string `koanf:"log_file" json:"log_file"`
	LogLevel            string `koanf:"log_level" json:"log_level" validate:"oneof=debug info warn error"`

	// Sources lists the config files that were merged, lowest priority first.
	Sources []string `koanf:"-" json:"-"`
}

// UserConfigPath returns the user-level config file path (~/.claude/notify.json)
func UserConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(homeDir, ".claude", "notify.json"), nil
}

// Load loads configuration from user, project, and environment sources
// Priority: Environment variables > Project config > User config > Defaults
func Load(projectConfigPath string) (*Configuration, error) {
	k := koanf.New(".")

	for key, value := range GetDefaults() {
		k.Set(key, value)
	}

	var sources []string

	if userPath, err := UserConfigPath(); err == nil {
		loaded, err := loadFile(k, userPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load user config: %w", err)
		}
		if loaded {
			sources = append(sources, userPath)
		}
	}

	if projectConfigPath != "" {
		loaded, err := loadFile(k, projectConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load project config: %w", err)
		}
		if loaded {
			sources = append(sources, projectConfigPath)
		}
	}

	// Environment variables (highest priority)
	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	cfg.IconPath = expandHomePath(cfg.IconPath)
	cfg.NotifierPath = expandHomePath(cfg.NotifierPath)
	cfg.LogFile = expandHomePath(cfg.LogFile)
	cfg.Sources = sources

	return &cfg, nil
}

// Default returns the built-in configuration with paths expanded. It is the
// fallback when Load fails during a hook run.
func Default() *Configuration {
	d := notify.DefaultConfig()
	return &Configuration{
		Backend:             string(d.Backend),
		IconPath:            expandHomePath(d.IconPath),
		NotifierPath:        expandHomePath(d.NotifierPath),
		TerminalNotifierCmd: d.TerminalNotifierCmd,
		ActivateBundle:      d.ActivateBundle,
		CompanionCmd:        d.CompanionCmd,
		CompanionEnabled:    d.CompanionEnabled,
		LogLevel:            "info",
	}
}

// Notify returns the backend settings for the notify package
func (c *Configuration) Notify() notify.Config {
	return notify.Config{
		Backend:             notify.Backend(c.Backend),
		IconPath:            c.IconPath,
		NotifierPath:        c.NotifierPath,
		TerminalNotifierCmd: c.TerminalNotifierCmd,
		ActivateBundle:      c.ActivateBundle,
		CompanionCmd:        c.CompanionCmd,
		CompanionEnabled:    c.CompanionEnabled,
	}
}

// loadFile merges path into k. Missing and blank files are skipped and
// reported as not loaded.
func loadFile(k *koanf.Koanf, path string) (bool, error) {
	if !fileExists(path) {
		return false, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return false, nil
	}
	if err := ValidateJSONSyntax(path); err != nil {
		return false, err
	}
	if err := k.Load(file.Provider(path), json.Parser()); err != nil {
		return false, err
	}
	return true, nil
}

// fileExists reports whether path names an existing regular file
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// envTransform converts environment variable names to config keys
// Example: CLAUDE_NOTIFY_LOG_LEVEL -> log_level
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
}

// expandHomePath expands ~ to the user's home directory
func expandHomePath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(homeDir, strings.TrimPrefix(path[1:], "/"))
		}
	}
	return path
}
