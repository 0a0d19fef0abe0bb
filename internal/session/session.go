// Package session holds the view router: which screen is active and the email
// the user entered to get started. Navigation is a pure function over Session
// values; Router owns the live Session for one run of the UI.
package session

import (
	"errors"
	"strings"

	"github.com/yildizm/testimonialhero/internal/notify"
)

// View is one of the four screens
type View int

const (
	ViewLanding View = iota
	ViewDemo
	ViewForm
	ViewDashboard
)

var viewNames = [...]string{"landing", "demo", "form", "dashboard"}

func (v View) String() string {
	if v.Valid() {
		return viewNames[v]
	}
	return "unknown"
}

// Valid reports whether v is one of the known screens
func (v View) Valid() bool {
	return v >= ViewLanding && v <= ViewDashboard
}

// Session is the cross-screen state
type Session struct {
	CurrentView View
	UserEmail   string
}

// New returns the initial session
func New() Session {
	return Session{CurrentView: ViewLanding}
}

// Validation failures for the email-gated transitions
var (
	ErrEmailRequired = &notify.Rejection{
		Reason:      "email required",
		Title:       "Email Required",
		Description: "Please enter your email to get started.",
	}
	ErrInvalidEmail = &notify.Rejection{
		Reason:      "invalid email",
		Title:       "Invalid Email",
		Description: "Please enter a valid email address.",
	}
)

// ErrUnavailable is returned for a trigger the current screen does not offer
var ErrUnavailable = errors.New("action not available from current view")

// ValidateEmail accepts any non-empty string containing '@'. The input is
// never trimmed or normalised.
func ValidateEmail(email string) error {
	if email == "" {
		return ErrEmailRequired
	}
	if !strings.Contains(email, "@") {
		return ErrInvalidEmail
	}
	return nil
}
