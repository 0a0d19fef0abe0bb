package config

import (
	"fmt"
	"strings"
	"time"
)

// Config holds the complete application configuration
type Config struct {
	Version      string             `yaml:"version" json:"version"`
	UI           UIConfig           `yaml:"ui" json:"ui"`
	Testimonials TestimonialsConfig `yaml:"testimonials" json:"testimonials"`
	Links        LinksConfig        `yaml:"links" json:"links"`
	Logging      LoggingConfig      `yaml:"logging" json:"logging"`
}

// UIConfig configures the terminal interface
type UIConfig struct {
	Theme     string `yaml:"theme" json:"theme"`           // default|high-contrast|minimal
	ColorMode string `yaml:"color_mode" json:"color_mode"` // auto|always|never
	NoEmoji   bool   `yaml:"no_emoji" json:"no_emoji"`     // ASCII fallbacks instead of emoji
	AltScreen bool   `yaml:"alt_screen" json:"alt_screen"` // run in the alternate screen buffer
}

// TestimonialsConfig selects where dashboard testimonials come from
type TestimonialsConfig struct {
	Source string `yaml:"source" json:"source"` // mock|file
	Path   string `yaml:"path" json:"path"`     // fixture file for source=file
	Watch  bool   `yaml:"watch" json:"watch"`   // reload the fixture when it changes
	// ReferenceDate is the day "This Month" is counted against, as
	// YYYY-MM-DD. Empty uses the wall clock.
	ReferenceDate string `yaml:"reference_date" json:"reference_date"`
}

// ReferenceDateLayout is the layout of testimonials.reference_date
const ReferenceDateLayout = "2006-01-02"

// DefaultReferenceDate falls in the month of the sample testimonials
const DefaultReferenceDate = "2024-01-20"

// LinksConfig configures the generated share links
type LinksConfig struct {
	Host     string `yaml:"host" json:"host"`
	DemoSlug string `yaml:"demo_slug" json:"demo_slug"`
}

// LoggingConfig configures the structured log. The TUI owns the terminal, so
// logs only go to a file.
type LoggingConfig struct {
	Level string `yaml:"level" json:"level"` // debug|info|warn|error
	File  string `yaml:"file" json:"file"`   // empty disables logging
}

// Testimonial source kinds
const (
	SourceMock = "mock"
	SourceFile = "file"
)

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Version: "1.0",
		UI: UIConfig{
			Theme:     "default",
			ColorMode: "auto",
			NoEmoji:   false,
			AltScreen: true,
		},
		Testimonials: TestimonialsConfig{
			Source: SourceMock,
			Path:   "",
			Watch:  false,

			ReferenceDate: DefaultReferenceDate,
		},
		Links: LinksConfig{
			Host:     "testimonialhero.app",
			DemoSlug: "demo123",
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  "",
		},
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.validateUIConfig(); err != nil {
		return err
	}
	if err := c.validateTestimonialsConfig(); err != nil {
		return err
	}
	if err := c.validateLinksConfig(); err != nil {
		return err
	}
	if err := c.validateLoggingConfig(); err != nil {
		return err
	}
	return nil
}

// validateUIConfig validates UI-related configuration
func (c *Config) validateUIConfig() error {
	if c.UI.Theme != "" {
		validThemes := map[string]bool{
			"default":       true,
			"high-contrast": true,
			"minimal":       true,
		}
		if !validThemes[c.UI.Theme] {
			return fmt.Errorf("invalid theme: %s (must be one of: default, high-contrast, minimal)", c.UI.Theme)
		}
	}
	if c.UI.ColorMode != "" {
		validColorModes := map[string]bool{
			"auto":   true,
			"always": true,
			"never":  true,
		}
		if !validColorModes[c.UI.ColorMode] {
			return fmt.Errorf("invalid color mode: %s (must be one of: auto, always, never)", c.UI.ColorMode)
		}
	}
	return nil
}

// validateTestimonialsConfig validates the testimonial source
func (c *Config) validateTestimonialsConfig() error {
	switch c.Testimonials.Source {
	case "", SourceMock:
	case SourceFile:
		if strings.TrimSpace(c.Testimonials.Path) == "" {
			return fmt.Errorf("testimonials.path is required when source is file")
		}
	default:
		return fmt.Errorf("invalid testimonial source: %s (must be one of: mock, file)", c.Testimonials.Source)
	}
	if c.Testimonials.Watch && c.Testimonials.Source != SourceFile {
		return fmt.Errorf("testimonials.watch requires source file")
	}
	if c.Testimonials.ReferenceDate != "" {
		if _, err := time.Parse(ReferenceDateLayout, c.Testimonials.ReferenceDate); err != nil {
			return fmt.Errorf("invalid testimonials.reference_date: %s (use YYYY-MM-DD)", c.Testimonials.ReferenceDate)
		}
	}
	return nil
}

// validateLinksConfig validates link generation settings
func (c *Config) validateLinksConfig() error {
	if strings.TrimSpace(c.Links.Host) == "" {
		return fmt.Errorf("links.host must not be empty")
	}
	if strings.Contains(c.Links.Host, "://") {
		return fmt.Errorf("links.host must not include a scheme")
	}
	if strings.TrimSpace(c.Links.DemoSlug) == "" {
		return fmt.Errorf("links.demo_slug must not be empty")
	}
	return nil
}

// validateLoggingConfig validates logging configuration
func (c *Config) validateLoggingConfig() error {
	if c.Logging.Level != "" {
		validLevels := map[string]bool{
			"debug": true,
			"info":  true,
			"warn":  true,
			"error": true,
		}
		if !validLevels[c.Logging.Level] {
			return fmt.Errorf("invalid log level: %s (must be one of: debug, info, warn, error)", c.Logging.Level)
		}
	}
	return nil
}
