package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewLoader(t *testing.T) {
	loader := NewLoader()
	if loader == nil {
		t.Fatal("NewLoader returned nil")
	}
	if len(loader.configPaths) != 3 {
		t.Errorf("Expected 3 config paths, got %d", len(loader.configPaths))
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	loader := &Loader{configPaths: []string{filepath.Join(t.TempDir(), "absent.yaml")}}

	cfg, err := loader.LoadConfig("")
	if err != nil {
		t.Fatalf("Failed to load default config: %v", err)
	}

	if cfg.UI.Theme != "default" {
		t.Errorf("Expected default theme, got %s", cfg.UI.Theme)
	}
	if cfg.Testimonials.Source != SourceMock {
		t.Errorf("Expected mock source, got %s", cfg.Testimonials.Source)
	}
	if len(loader.Warnings()) != 0 {
		t.Errorf("Expected no warnings, got %v", loader.Warnings())
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "test-config.yaml")

	configContent := `version: "1.0"
ui:
  theme: "minimal"
  no_emoji: true
testimonials:
  source: "file"
  path: "fixtures/testimonials.yaml"
links:
  host: "reviews.example.com"
logging:
  level: "debug"
  file: "/tmp/testimonialhero.log"
`

	if err := os.WriteFile(configPath, []byte(configContent), 0o600); err != nil {
		t.Fatalf("Failed to write test config file: %v", err)
	}

	loader := NewLoader()
	cfg, err := loader.LoadConfig(configPath)
	if err != nil {
		t.Fatalf("Failed to load config from file: %v", err)
	}

	if cfg.UI.Theme != "minimal" {
		t.Errorf("Expected theme minimal, got %s", cfg.UI.Theme)
	}
	if !cfg.UI.NoEmoji {
		t.Error("Expected no_emoji to be true")
	}
	if !cfg.UI.AltScreen {
		t.Error("Keys absent from the file must keep their defaults")
	}
	if cfg.Testimonials.Path != "fixtures/testimonials.yaml" {
		t.Errorf("Unexpected fixture path %s", cfg.Testimonials.Path)
	}
	if cfg.Links.Host != "reviews.example.com" {
		t.Errorf("Expected host reviews.example.com, got %s", cfg.Links.Host)
	}
	if cfg.Links.DemoSlug != "demo123" {
		t.Errorf("Expected default demo slug, got %s", cfg.Links.DemoSlug)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Expected log level debug, got %s", cfg.Logging.Level)
	}
}

func TestLoadConfigSearchPathPriority(t *testing.T) {
	dir := t.TempDir()
	high := filepath.Join(dir, "high.yaml")
	low := filepath.Join(dir, "low.yaml")

	if err := os.WriteFile(low, []byte("ui:\n  theme: minimal\nlinks:\n  demo_slug: low\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(high, []byte("ui:\n  theme: high-contrast\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	loader := &Loader{configPaths: []string{high, low}}
	cfg, err := loader.LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.UI.Theme != "high-contrast" {
		t.Errorf("Expected higher priority file to win, got theme %s", cfg.UI.Theme)
	}
	if cfg.Links.DemoSlug != "low" {
		t.Errorf("Expected lower priority value to survive, got %s", cfg.Links.DemoSlug)
	}
}

func TestLoadConfigBrokenSearchPathWarns(t *testing.T) {
	broken := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(broken, []byte("ui: [\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	loader := &Loader{configPaths: []string{broken}}
	if _, err := loader.LoadConfig(""); err != nil {
		t.Fatalf("Broken optional file should not fail loading: %v", err)
	}
	if len(loader.Warnings()) != 1 {
		t.Errorf("Expected one warning, got %v", loader.Warnings())
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "invalid-config.yaml")

	invalidConfigContent := `version: "1.0"
ui:
  theme: "minimal
  no_emoji: true
`

	if err := os.WriteFile(configPath, []byte(invalidConfigContent), 0o600); err != nil {
		t.Fatalf("Failed to write test config file: %v", err)
	}

	if _, err := NewLoader().LoadConfig(configPath); err == nil {
		t.Error("Expected error loading invalid YAML config, but got none")
	}
}

func TestLoadConfigValidationFailure(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(configPath, []byte("testimonials:\n  source: file\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := NewLoader().LoadConfig(configPath)
	if err == nil || !strings.Contains(err.Error(), "validation failed") {
		t.Errorf("Expected validation failure, got %v", err)
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	envVars := map[string]string{
		"TESTIMONIALHERO_UI_THEME":                    "high-contrast",
		"TESTIMONIALHERO_UI_NO_EMOJI":                 "true",
		"TESTIMONIALHERO_UI_ALT_SCREEN":               "false",
		"TESTIMONIALHERO_TESTIMONIALS_SOURCE":         "file",
		"TESTIMONIALHERO_TESTIMONIALS_PATH":           "t.yaml",
		"TESTIMONIALHERO_TESTIMONIALS_REFERENCE_DATE": "2025-03-01",
		"TESTIMONIALHERO_LINKS_HOST":                  "example.org",
		"TESTIMONIALHERO_LOGGING_LEVEL":               "WARN",
	}
	for key, value := range envVars {
		t.Setenv(key, value)
	}

	loader := NewLoader()
	cfg := DefaultConfig()

	if err := loader.applyEnvOverrides(cfg); err != nil {
		t.Fatalf("Failed to apply env overrides: %v", err)
	}

	if cfg.UI.Theme != "high-contrast" {
		t.Errorf("Expected theme high-contrast, got %s", cfg.UI.Theme)
	}
	if !cfg.UI.NoEmoji {
		t.Error("Expected no_emoji to be true")
	}
	if cfg.UI.AltScreen {
		t.Error("Expected alt screen to be disabled")
	}
	if cfg.Testimonials.Source != SourceFile || cfg.Testimonials.Path != "t.yaml" {
		t.Errorf("Unexpected testimonials config %+v", cfg.Testimonials)
	}
	if cfg.Testimonials.ReferenceDate != "2025-03-01" {
		t.Errorf("Expected reference date 2025-03-01, got %s", cfg.Testimonials.ReferenceDate)
	}
	if cfg.Links.Host != "example.org" {
		t.Errorf("Expected host example.org, got %s", cfg.Links.Host)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Expected log level to be lowercased, got %s", cfg.Logging.Level)
	}
}

func TestApplyEnvOverridesInvalidValues(t *testing.T) {
	tests := []struct {
		name   string
		envVar string
		value  string
	}{
		{"invalid no emoji", "TESTIMONIALHERO_UI_NO_EMOJI", "not-a-bool"},
		{"invalid watch", "TESTIMONIALHERO_TESTIMONIALS_WATCH", "sometimes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.envVar, tt.value)

			if err := NewLoader().applyEnvOverrides(DefaultConfig()); err == nil {
				t.Error("Expected error for invalid env var value, but got none")
			}
		})
	}
}

func TestParseBool(t *testing.T) {
	var value bool

	if err := parseBool("true", &value); err != nil || !value {
		t.Errorf("Failed to parse true: %v", err)
	}
	if err := parseBool("false", &value); err != nil || value {
		t.Errorf("Failed to parse false: %v", err)
	}
	if err := parseBool("not-a-bool", &value); err == nil {
		t.Error("Expected error for invalid bool, but got none")
	}
}

func TestFileExists(t *testing.T) {
	if fileExists("/path/that/does/not/exist") {
		t.Error("Expected file to not exist, but fileExists returned true")
	}

	tempFile := filepath.Join(t.TempDir(), "test-file")
	if err := os.WriteFile(tempFile, []byte("test"), 0o600); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}

	if !fileExists(tempFile) {
		t.Error("Expected file to exist, but fileExists returned false")
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	if got := ExpandPath("~/logs/th.log"); got != filepath.Join(home, "logs/th.log") {
		t.Errorf("Unexpected expansion %s", got)
	}
	if got := ExpandPath("/abs/path"); got != "/abs/path" {
		t.Errorf("Absolute paths must be unchanged, got %s", got)
	}
}

func TestValidateConfigPath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid yaml file",
			path:    "config.yaml",
			wantErr: false,
		},
		{
			name:    "valid yml file",
			path:    "config.yml",
			wantErr: false,
		},
		{
			name:    "path traversal attempt",
			path:    "../../../etc/passwd",
			wantErr: true,
			errMsg:  "path traversal not allowed",
		},
		{
			name:    "double dot inside a name",
			path:    "configs/team..v2.yaml",
			wantErr: false,
		},
		{
			name:    "non-yaml file",
			path:    "config.txt",
			wantErr: true,
			errMsg:  "config file must have .yaml or .yml extension",
		},
		{
			name:    "system file access",
			path:    "/etc/passwd.yaml",
			wantErr: true,
			errMsg:  "access to system files not allowed",
		},
		{
			name:    "proc filesystem access",
			path:    "/proc/version.yaml",
			wantErr: true,
			errMsg:  "access to system files not allowed",
		},
		{
			name:    "relative path with valid extension",
			path:    "./configs/app.yaml",
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateConfigPath(tt.path)
			if tt.wantErr {
				if err == nil {
					t.Error("Expected error but got none")
				} else if tt.errMsg != "" && !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("Expected error message to contain '%s', got '%s'", tt.errMsg, err.Error())
				}
			} else if err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}
