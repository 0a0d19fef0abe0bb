package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/yildizm/testimonialhero/internal/testimonial"
)

// csvFormatter formats testimonials as CSV
type csvFormatter struct{}

// NewCSV creates a new CSV formatter
func NewCSV() Formatter {
	return &csvFormatter{}
}

func (f *csvFormatter) Format(report *Report) ([]byte, error) {
	var b bytes.Buffer
	writer := csv.NewWriter(&b)

	headers := []string{"ID", "Name", "Company", "Rating", "Date", "Quote"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for i := range report.Testimonials {
		t := &report.Testimonials[i]
		record := []string{
			strconv.Itoa(t.ID),
			t.Name,
			t.Company,
			strconv.Itoa(t.Rating),
			t.Date.Format(testimonial.DateLayout),
			singleLine(t.Quote),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return b.Bytes(), nil
}
