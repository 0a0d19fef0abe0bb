package testimonial

import (
	"fmt"
	"time"
)

// Stats summarises a set of testimonials for the dashboard overview
type Stats struct {
	Total         int
	AverageRating float64
	ThisMonth     int
}

// Summarize computes Stats relative to now
func Summarize(records []Testimonial, now time.Time) Stats {
	stats := Stats{Total: len(records)}
	if len(records) == 0 {
		return stats
	}

	sum := 0
	year, month, _ := now.Date()
	for i := range records {
		sum += records[i].Rating
		y, m, _ := records[i].Date.Date()
		if y == year && m == month {
			stats.ThisMonth++
		}
	}
	stats.AverageRating = float64(sum) / float64(len(records))
	return stats
}

// ClockAt returns a clock fixed at noon UTC on date (YYYY-MM-DD). An empty
// date returns the wall clock.
func ClockAt(date string) (func() time.Time, error) {
	if date == "" {
		return time.Now, nil
	}
	day, err := time.Parse(DateLayout, date)
	if err != nil {
		return nil, fmt.Errorf("invalid reference date %q: %w", date, err)
	}
	at := day.Add(12 * time.Hour)
	return func() time.Time { return at }, nil
}
