package forms

import (
	"fmt"
	"strings"

	"github.com/yildizm/testimonialhero/internal/notify"
)

// ErrInvalidClientEmail rejects a testimonial request without a usable address
var ErrInvalidClientEmail = &notify.Rejection{
	Reason:      "invalid client email",
	Title:       "Invalid Email",
	Description: "Please enter a valid client email address.",
}

// RequestForm is the "send email request" panel of the dashboard
type RequestForm struct {
	ClientEmail string
}

// Send validates the client address and returns the cleared form together
// with the confirmation to show. Nothing is actually sent.
func (f RequestForm) Send() (RequestForm, notify.Notification, error) {
	if f.ClientEmail == "" || !strings.Contains(f.ClientEmail, "@") {
		return f, notify.Notification{}, ErrInvalidClientEmail
	}
	sent := notify.Info("Request Sent!", fmt.Sprintf("Testimonial request sent to %s", f.ClientEmail))
	return RequestForm{}, sent, nil
}

// Settings is the branding panel of the dashboard
type Settings struct {
	CompanyName   string
	LogoURL       string
	CustomMessage string
}

// SavedNotification confirms that the settings were kept
var SavedNotification = notify.Info("Settings Saved", "Your branding will be used for this session.")

// Tab is a dashboard section
type Tab int

const (
	TabOverview Tab = iota
	TabCollect
	TabTestimonials
	TabSettings
)

// Tabs lists the dashboard sections in sidebar order
var Tabs = []Tab{TabOverview, TabCollect, TabTestimonials, TabSettings}

func (t Tab) String() string {
	switch t {
	case TabOverview:
		return "Overview"
	case TabCollect:
		return "Collect"
	case TabTestimonials:
		return "Testimonials"
	case TabSettings:
		return "Settings"
	default:
		return "Unknown"
	}
}
