package formatter

import (
	"encoding/json"
	"time"

	"github.com/yildizm/testimonialhero/internal/testimonial"
)

// jsonFormatter formats output as JSON
type jsonFormatter struct{}

// NewJSON creates a new JSON formatter
func NewJSON() Formatter {
	return &jsonFormatter{}
}

// JSONOutput is the document written by the JSON formatter
type JSONOutput struct {
	GeneratedAt  time.Time           `json:"generated_at"`
	Summary      SummaryOutput       `json:"summary"`
	Testimonials []TestimonialOutput `json:"testimonials"`
}

// SummaryOutput represents the overview numbers
type SummaryOutput struct {
	Total         int     `json:"total"`
	AverageRating float64 `json:"average_rating"`
	ThisMonth     int     `json:"this_month"`
}

// TestimonialOutput is one record with its date in DateLayout
type TestimonialOutput struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Company  string `json:"company"`
	Quote    string `json:"quote"`
	Rating   int    `json:"rating"`
	Date     string `json:"date"`
	CopyText string `json:"copy_text"`
}

func (f *jsonFormatter) Format(report *Report) ([]byte, error) {
	output := &JSONOutput{
		GeneratedAt: report.GeneratedAt,
		Summary: SummaryOutput{
			Total:         report.Stats.Total,
			AverageRating: report.Stats.AverageRating,
			ThisMonth:     report.Stats.ThisMonth,
		},
		Testimonials: make([]TestimonialOutput, 0, len(report.Testimonials)),
	}

	for i := range report.Testimonials {
		t := &report.Testimonials[i]
		output.Testimonials = append(output.Testimonials, TestimonialOutput{
			ID:       t.ID,
			Name:     t.Name,
			Company:  t.Company,
			Quote:    t.Quote,
			Rating:   t.Rating,
			Date:     t.Date.Format(testimonial.DateLayout),
			CopyText: t.CopyText(),
		})
	}

	return json.MarshalIndent(output, "", "  ")
}
