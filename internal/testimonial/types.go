// Package testimonial provides the read-only testimonial records shown by the
// demo and dashboard screens, and the links derived for sharing them.
package testimonial

import (
	"fmt"
	"time"
)

// DateLayout is the layout used for testimonial dates
const DateLayout = "2006-01-02"

// Testimonial is a quote-and-rating record attributed to a client
type Testimonial struct {
	ID      int       `json:"id"`
	Name    string    `json:"name"`
	Company string    `json:"company"`
	Quote   string    `json:"quote"`
	Rating  int       `json:"rating"`
	Date    time.Time `json:"date"`
}

// Validate checks the record invariants
func (t *Testimonial) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("testimonial %d: name is required", t.ID)
	}
	if t.Quote == "" {
		return fmt.Errorf("testimonial %d: quote is required", t.ID)
	}
	if t.Rating < 1 || t.Rating > 5 {
		return fmt.Errorf("testimonial %d: rating %d out of range 1..5", t.ID, t.Rating)
	}
	return nil
}

// Initials returns the first letter of every word of the name
func (t *Testimonial) Initials() string {
	var out []rune
	start := true
	for _, r := range t.Name {
		if r == ' ' {
			start = true
			continue
		}
		if start {
			out = append(out, r)
			start = false
		}
	}
	return string(out)
}

// CopyText is the text placed on the clipboard by "Copy Text"
func (t *Testimonial) CopyText() string {
	return fmt.Sprintf("\"%s\" - %s, %s", t.Quote, t.Name, t.Company)
}

func mustDate(s string) time.Time {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		panic(err)
	}
	return d
}
