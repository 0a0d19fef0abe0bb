package formatter

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/yildizm/testimonialhero/internal/emoji"
	"github.com/yildizm/testimonialhero/internal/testimonial"
)

func mockReport(t *testing.T) *Report {
	t.Helper()
	records, err := testimonial.Mock().List()
	if err != nil {
		t.Fatalf("Mock source failed: %v", err)
	}
	return NewReport(records, time.Date(2024, time.January, 20, 10, 0, 0, 0, time.UTC))
}

func TestNewFormatter(t *testing.T) {
	for _, name := range []string{"", "text", "json", "markdown", "md", "CSV"} {
		if _, err := New(name, false); err != nil {
			t.Errorf("Expected formatter for %q, got error %v", name, err)
		}
	}
	if _, err := New("xml", false); err == nil {
		t.Error("Expected error for unsupported format")
	}
}

func TestNewReportStats(t *testing.T) {
	report := mockReport(t)

	if report.Stats.Total != 2 {
		t.Errorf("Expected 2 testimonials, got %d", report.Stats.Total)
	}
	if report.Stats.AverageRating != 5 {
		t.Errorf("Expected average rating 5, got %f", report.Stats.AverageRating)
	}
	if report.Stats.ThisMonth != 2 {
		t.Errorf("Expected 2 testimonials this month, got %d", report.Stats.ThisMonth)
	}
}

func TestFormattersIncludeEveryTestimonial(t *testing.T) {
	emoji.SetEmojiDisabled(true)
	t.Cleanup(func() { emoji.SetEmojiDisabled(false) })

	report := mockReport(t)

	for _, name := range Formats {
		t.Run(name, func(t *testing.T) {
			f, err := New(name, false)
			if err != nil {
				t.Fatalf("New(%s) failed: %v", name, err)
			}
			out, err := f.Format(report)
			if err != nil {
				t.Fatalf("Format failed: %v", err)
			}
			text := string(out)
			for _, want := range []string{"Sarah Johnson", "TechStart Inc.", "Mike Chen", "Design Studio", "2024-01-15"} {
				if !strings.Contains(text, want) {
					t.Errorf("Expected %s output to contain %q", name, want)
				}
			}
		})
	}
}

func TestTerminalFormatterOverview(t *testing.T) {
	emoji.SetEmojiDisabled(true)
	t.Cleanup(func() { emoji.SetEmojiDisabled(false) })

	out, err := NewTerminal(false).Format(mockReport(t))
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	text := string(out)

	if !strings.Contains(text, "Total Testimonials") || !strings.Contains(text, "5.0") {
		t.Errorf("Expected overview with average rating, got:\n%s", text)
	}
	if !strings.Contains(text, "*****") {
		t.Errorf("Expected star fallback for rating 5, got:\n%s", text)
	}
}

func TestTerminalFormatterEmpty(t *testing.T) {
	out, err := NewTerminal(false).Format(NewReport(nil, time.Now()))
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if !strings.Contains(string(out), "none") {
		t.Errorf("Expected empty marker, got:\n%s", out)
	}
}

func TestJSONFormatter(t *testing.T) {
	out, err := NewJSON().Format(mockReport(t))
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	var decoded JSONOutput
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if decoded.Summary.Total != 2 {
		t.Errorf("Expected total 2, got %d", decoded.Summary.Total)
	}
	if len(decoded.Testimonials) != 2 {
		t.Fatalf("Expected 2 testimonials, got %d", len(decoded.Testimonials))
	}
	first := decoded.Testimonials[0]
	if first.Date != "2024-01-15" {
		t.Errorf("Expected date 2024-01-15, got %s", first.Date)
	}
	want := "\"" + first.Quote + "\" - Sarah Johnson, TechStart Inc."
	if first.CopyText != want {
		t.Errorf("Expected copy text %q, got %q", want, first.CopyText)
	}
}

func TestCSVFormatter(t *testing.T) {
	report := NewReport([]testimonial.Testimonial{{
		ID:      7,
		Name:    "Ada, Countess",
		Company: "Engines",
		Quote:   "line one\nline two",
		Rating:  4,
		Date:    time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
	}}, time.Now())

	out, err := NewCSV().Format(report)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	rows, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	if err != nil {
		t.Fatalf("Output is not valid CSV: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("Expected header and one row, got %d rows", len(rows))
	}
	row := rows[1]
	if row[0] != "7" || row[1] != "Ada, Countess" || row[3] != "4" || row[4] != "2024-03-01" {
		t.Errorf("Unexpected CSV row %v", row)
	}
	if row[5] != "line one line two" {
		t.Errorf("Expected quote on one line, got %q", row[5])
	}
}

func TestMarkdownEscapesPipes(t *testing.T) {
	report := NewReport([]testimonial.Testimonial{{
		ID: 1, Name: "A|B", Company: "C", Quote: "q", Rating: 3,
	}}, time.Now())

	out, err := NewMarkdown().Format(report)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if !strings.Contains(string(out), `A\|B`) {
		t.Errorf("Expected escaped pipe, got:\n%s", out)
	}
}
