package formatter

import (
	"fmt"
	"strings"

	"github.com/yildizm/go-termfmt"

	"github.com/yildizm/testimonialhero/internal/emoji"
	"github.com/yildizm/testimonialhero/internal/testimonial"
)

// terminalFormatter formats output as plain text for terminal display using go-termfmt
type terminalFormatter struct {
	opts *termfmt.TerminalOptions
}

// NewTerminal creates a new terminal formatter with optional color support
func NewTerminal(color bool) Formatter {
	opts := termfmt.DefaultOptions()
	opts.Color = color
	opts.Emoji = !emoji.IsEmojiDisabled()
	return &terminalFormatter{opts: opts}
}

func (f *terminalFormatter) Format(report *Report) ([]byte, error) {
	var b strings.Builder

	f.writeHeader(&b)
	f.writeStatistics(&b, report)
	f.writeTestimonials(&b, report.Testimonials)

	return []byte(b.String()), nil
}

// writeHeader writes a boxed title
func (f *terminalFormatter) writeHeader(b *strings.Builder) {
	header := "Testimonials"
	headerLen := len(header)

	b.WriteString("╔" + strings.Repeat("═", headerLen+2) + "╗\n")
	b.WriteString("║ " + header + " ║\n")
	b.WriteString("╚" + strings.Repeat("═", headerLen+2) + "╝\n\n")
}

// writeStatistics writes the overview numbers as a tree
func (f *terminalFormatter) writeStatistics(b *strings.Builder, report *Report) {
	b.WriteString(emoji.GetEmoji("chart") + " Overview\n")

	items := []termfmt.TreeItem{
		{Label: "Total Testimonials", Value: fmt.Sprintf("%d", report.Stats.Total)},
		{Label: "Average Rating", Value: formatRating(report.Stats.AverageRating)},
		{Label: "This Month", Value: fmt.Sprintf("%d", report.Stats.ThisMonth), Last: true},
	}

	b.WriteString(termfmt.TreeViewWithOptions(items, f.opts) + "\n\n")
}

// writeTestimonials writes one tree node per record with its quote and rating
func (f *terminalFormatter) writeTestimonials(b *strings.Builder, records []testimonial.Testimonial) {
	b.WriteString(emoji.GetEmoji("quote") + " Testimonials\n")
	if len(records) == 0 {
		b.WriteString("└─ none\n")
		return
	}

	items := make([]termfmt.TreeItem, 0, len(records))
	for i := range records {
		t := &records[i]
		bar := termfmt.CreateConfidenceBar(ratingFraction(t.Rating), f.opts)
		items = append(items, termfmt.TreeItem{
			Label: fmt.Sprintf("%s, %s", t.Name, t.Company),
			Value: t.Date.Format(testimonial.DateLayout),
			Children: []termfmt.TreeItem{
				{Label: fmt.Sprintf("%s %s %d/5", bar, emoji.Stars(t.Rating), t.Rating), Value: ""},
				{Label: fmt.Sprintf("\"%s\"", singleLine(t.Quote)), Value: "", Last: true},
			},
			Last: i == len(records)-1,
		})
	}

	b.WriteString(termfmt.TreeViewWithOptions(items, f.opts) + "\n")
}
