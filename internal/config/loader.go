package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "TESTIMONIALHERO_"

// ConfigPaths defines the config file search paths in priority order
var ConfigPaths = []string{
	"./.testimonialhero.yaml",               // Project-specific config (highest priority)
	"~/.config/testimonialhero/config.yaml", // User config
	"/etc/testimonialhero/config.yaml",      // System config (lowest priority)
}

// Loader handles configuration loading with priority merging
type Loader struct {
	configPaths []string
	warnings    []string
}

// NewLoader creates a new config loader
func NewLoader() *Loader {
	return &Loader{
		configPaths: ConfigPaths,
	}
}

// Warnings returns problems with optional config files that were skipped
func (l *Loader) Warnings() []string {
	return l.warnings
}

// LoadConfig loads configuration from multiple sources with priority order:
// 1. Command line flags (handled by caller)
// 2. Environment variables
// 3. ./.testimonialhero.yaml
// 4. ~/.config/testimonialhero/config.yaml
// 5. /etc/testimonialhero/config.yaml
// 6. Built-in defaults
func (l *Loader) LoadConfig(customPath string) (*Config, error) {
	config := DefaultConfig()
	l.warnings = nil

	if customPath != "" {
		if err := validateConfigPath(customPath); err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		if err := l.loadFromFile(config, customPath); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", customPath, err)
		}
	} else {
		// Lowest priority first so later files win
		for i := len(l.configPaths) - 1; i >= 0; i-- {
			expandedPath := expandPath(l.configPaths[i])
			if !fileExists(expandedPath) {
				continue
			}
			if err := l.loadFromFile(config, expandedPath); err != nil {
				l.warnings = append(l.warnings, fmt.Sprintf("failed to load config from %s: %v", expandedPath, err))
			}
		}
	}

	if err := l.applyEnvOverrides(config); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// loadFromFile decodes a YAML file on top of config. Keys absent from the
// file keep their current values.
func (l *Loader) loadFromFile(config *Config, path string) error {
	// #nosec G304 - path is validated by validateConfigPath() or comes from ConfigPaths
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	merged := *config
	if err := yaml.Unmarshal(data, &merged); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}
	*config = merged

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config
func (l *Loader) applyEnvOverrides(config *Config) error {
	envMappings := map[string]func(string) error{
		// UI Config
		"UI_THEME":      func(v string) error { config.UI.Theme = v; return nil },
		"UI_COLOR_MODE": func(v string) error { config.UI.ColorMode = v; return nil },
		"UI_NO_EMOJI":   func(v string) error { return parseBool(v, &config.UI.NoEmoji) },
		"UI_ALT_SCREEN": func(v string) error { return parseBool(v, &config.UI.AltScreen) },

		// Testimonials Config
		"TESTIMONIALS_SOURCE": func(v string) error { config.Testimonials.Source = v; return nil },
		"TESTIMONIALS_PATH":   func(v string) error { config.Testimonials.Path = v; return nil },
		"TESTIMONIALS_WATCH":  func(v string) error { return parseBool(v, &config.Testimonials.Watch) },
		"TESTIMONIALS_REFERENCE_DATE": func(v string) error {
			config.Testimonials.ReferenceDate = v
			return nil
		},

		// Links Config
		"LINKS_HOST":      func(v string) error { config.Links.Host = v; return nil },
		"LINKS_DEMO_SLUG": func(v string) error { config.Links.DemoSlug = v; return nil },

		// Logging Config
		"LOGGING_LEVEL": func(v string) error { config.Logging.Level = strings.ToLower(v); return nil },
		"LOGGING_FILE":  func(v string) error { config.Logging.File = v; return nil },
	}

	for suffix, setter := range envMappings {
		envVar := EnvPrefix + suffix
		if value := os.Getenv(envVar); value != "" {
			if err := setter(value); err != nil {
				return fmt.Errorf("invalid value for %s: %w", envVar, err)
			}
		}
	}

	return nil
}

// GetConfigPaths returns the list of configuration file paths that will be searched
func GetConfigPaths() []string {
	paths := make([]string, 0, len(ConfigPaths))
	for _, path := range ConfigPaths {
		paths = append(paths, expandPath(path))
	}
	return paths
}

// FindConfigFile finds the first existing config file in the search paths
func FindConfigFile() (string, bool) {
	for _, path := range ConfigPaths {
		expandedPath := expandPath(path)
		if fileExists(expandedPath) {
			return expandedPath, true
		}
	}
	return "", false
}

// Helper functions

// validateConfigPath validates that a config path is safe to read
func validateConfigPath(path string) error {
	cleanPath := filepath.Clean(path)

	if slices.Contains(strings.Split(filepath.ToSlash(cleanPath), "/"), "..") {
		return fmt.Errorf("path traversal not allowed")
	}

	ext := strings.ToLower(filepath.Ext(cleanPath))
	if ext != ".yaml" && ext != ".yml" {
		return fmt.Errorf("config file must have .yaml or .yml extension")
	}

	absPath, err := filepath.Abs(cleanPath)
	if err != nil {
		return fmt.Errorf("failed to resolve absolute path: %w", err)
	}

	if strings.HasPrefix(absPath, "/etc/passwd") ||
		strings.HasPrefix(absPath, "/etc/shadow") ||
		strings.HasPrefix(absPath, "/proc/") ||
		strings.HasPrefix(absPath, "/sys/") {
		return fmt.Errorf("access to system files not allowed")
	}

	return nil
}

// expandPath expands ~ to home directory
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

// fileExists checks if a file exists
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ExpandPath expands a leading ~/ in user supplied paths
func ExpandPath(path string) string {
	return expandPath(path)
}

func parseBool(s string, dst *bool) error {
	val, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	*dst = val
	return nil
}
