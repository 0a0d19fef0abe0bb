package formatter

import (
	"fmt"
	"strings"

	"github.com/yildizm/testimonialhero/internal/testimonial"
)

// markdownFormatter formats output as Markdown
type markdownFormatter struct{}

// NewMarkdown creates a new Markdown formatter
func NewMarkdown() Formatter {
	return &markdownFormatter{}
}

func (f *markdownFormatter) Format(report *Report) ([]byte, error) {
	var b strings.Builder

	b.WriteString("# Testimonials\n\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", report.GeneratedAt.Format("2006-01-02 15:04:05"))

	f.writeSummaryTable(&b, report)
	f.writeTestimonialTable(&b, report.Testimonials)
	f.writeQuotes(&b, report.Testimonials)

	b.WriteString("---\n")
	b.WriteString("*Collected with TestimonialHero*\n")

	return []byte(b.String()), nil
}

func (f *markdownFormatter) writeSummaryTable(b *strings.Builder, report *Report) {
	b.WriteString("## Summary\n\n")
	b.WriteString("| Metric | Value |\n")
	b.WriteString("|--------|-------|\n")
	fmt.Fprintf(b, "| Total Testimonials | %d |\n", report.Stats.Total)
	fmt.Fprintf(b, "| Average Rating | %s |\n", formatRating(report.Stats.AverageRating))
	fmt.Fprintf(b, "| This Month | %d |\n\n", report.Stats.ThisMonth)
}

func (f *markdownFormatter) writeTestimonialTable(b *strings.Builder, records []testimonial.Testimonial) {
	if len(records) == 0 {
		return
	}

	b.WriteString("## Ratings\n\n")
	b.WriteString("| Name | Company | Rating | Date |\n")
	b.WriteString("|------|---------|--------|------|\n")
	for i := range records {
		t := &records[i]
		fmt.Fprintf(b, "| %s | %s | %d/5 | %s |\n",
			escapeMarkdownCell(t.Name),
			escapeMarkdownCell(t.Company),
			t.Rating,
			t.Date.Format(testimonial.DateLayout))
	}
	b.WriteString("\n")
}

// writeQuotes writes each quote as a blockquote with attribution
func (f *markdownFormatter) writeQuotes(b *strings.Builder, records []testimonial.Testimonial) {
	if len(records) == 0 {
		return
	}

	b.WriteString("## Quotes\n\n")
	for i := range records {
		t := &records[i]
		fmt.Fprintf(b, "> %s\n>\n> *%s, %s*\n\n", singleLine(t.Quote), t.Name, t.Company)
	}
}
