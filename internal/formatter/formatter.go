// Package formatter renders testimonial listings for the command line.
package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/yildizm/testimonialhero/internal/testimonial"
)

// Report is the input of every formatter
type Report struct {
	Testimonials []testimonial.Testimonial
	Stats        testimonial.Stats
	GeneratedAt  time.Time
}

// NewReport summarises records relative to now
func NewReport(records []testimonial.Testimonial, now time.Time) *Report {
	return &Report{
		Testimonials: records,
		Stats:        testimonial.Summarize(records, now),
		GeneratedAt:  now,
	}
}

// Formatter defines the interface for output formatting
type Formatter interface {
	Format(report *Report) ([]byte, error)
}

// Formats lists the accepted output format names
var Formats = []string{"text", "json", "markdown", "csv"}

// New returns the formatter for the given format name
func New(format string, color bool) (Formatter, error) {
	switch strings.ToLower(format) {
	case "", "text":
		return NewTerminal(color), nil
	case "json":
		return NewJSON(), nil
	case "markdown", "md":
		return NewMarkdown(), nil
	case "csv":
		return NewCSV(), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s (must be one of: %s)", format, strings.Join(Formats, ", "))
	}
}
