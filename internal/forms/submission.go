// Package forms holds the screen-local state of the testimonial form and the
// dashboard panels. None of it is shared with the session.
package forms

import (
	"github.com/google/uuid"

	"github.com/yildizm/testimonialhero/internal/notify"
)

// Rating bounds for a testimonial
const (
	MinRating     = 1
	MaxRating     = 5
	DefaultRating = 5
)

// ErrMissingInformation rejects a submission without name or quote
var ErrMissingInformation = &notify.Rejection{
	Reason:      "missing information",
	Title:       "Missing Information",
	Description: "Please fill in your name and testimonial.",
}

// SubmittedNotification confirms an accepted testimonial
var SubmittedNotification = notify.Info("Thank You!", "Your testimonial has been submitted successfully.")

// Submission is the testimonial form. Company and Email are optional.
type Submission struct {
	Name    string
	Company string
	Email   string
	Quote   string
	Rating  int

	// Submitted switches the form to its thank-you panel
	Submitted bool
	Reference string
}

// NewSubmission returns an empty form with the default rating
func NewSubmission() Submission {
	return Submission{Rating: DefaultRating}
}

// SetRating returns s with the rating clamped to MinRating..MaxRating
func (s Submission) SetRating(rating int) Submission {
	s.Rating = clampRating(rating)
	return s
}

// Submit accepts the form when name and quote are present. A rejected
// submission is returned unchanged.
func (s Submission) Submit() (Submission, error) {
	if s.Name == "" || s.Quote == "" {
		return s, ErrMissingInformation
	}
	s.Submitted = true
	s.Reference = uuid.NewString()
	return s, nil
}

func clampRating(rating int) int {
	switch {
	case rating < MinRating:
		return MinRating
	case rating > MaxRating:
		return MaxRating
	default:
		return rating
	}
}
