// Package notify is the ephemeral notification surface shared by all screens.
package notify

import "errors"

// Severity controls how a notification is rendered
type Severity int

const (
	SeverityNormal Severity = iota
	SeverityDestructive
)

func (s Severity) String() string {
	if s == SeverityDestructive {
		return "destructive"
	}
	return "normal"
}

// Notification is a dismissible on-screen message
type Notification struct {
	Title       string
	Description string
	Severity    Severity
}

// Notifier receives notifications produced by user actions
type Notifier interface {
	Notify(n Notification)
}

// Info builds a normal notification
func Info(title, description string) Notification {
	return Notification{Title: title, Description: description}
}

// Rejection is a user-input validation failure. It carries the text of the
// notification shown to the user; Error returns the short reason.
type Rejection struct {
	Reason      string
	Title       string
	Description string
}

func (r *Rejection) Error() string {
	return r.Reason
}

// Notification converts the rejection into a destructive notification
func (r *Rejection) Notification() Notification {
	return Notification{
		Title:       r.Title,
		Description: r.Description,
		Severity:    SeverityDestructive,
	}
}

// FromError returns the notification carried by a Rejection anywhere in
// err's chain.
func FromError(err error) (Notification, bool) {
	var rej *Rejection
	if errors.As(err, &rej) {
		return rej.Notification(), true
	}
	return Notification{}, false
}

// Recorder keeps every notification it receives, in order
type Recorder struct {
	Notifications []Notification
}

// Notify records n
func (r *Recorder) Notify(n Notification) {
	r.Notifications = append(r.Notifications, n)
}

// Last returns the most recent notification
func (r *Recorder) Last() (Notification, bool) {
	if len(r.Notifications) == 0 {
		return Notification{}, false
	}
	return r.Notifications[len(r.Notifications)-1], true
}
