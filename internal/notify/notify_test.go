package notify

import (
	"errors"
	"fmt"
	"testing"
)

func TestFromError(t *testing.T) {
	rej := &Rejection{Reason: "invalid email", Title: "Invalid Email", Description: "Please enter a valid email address."}
	wrapped := fmt.Errorf("get started: %w", rej)

	n, ok := FromError(wrapped)
	if !ok {
		t.Fatal("expected wrapped rejection to be found")
	}
	if n.Title != "Invalid Email" {
		t.Errorf("Expected title Invalid Email, got %s", n.Title)
	}
	if n.Severity != SeverityDestructive {
		t.Errorf("Expected destructive severity, got %s", n.Severity)
	}
	if wrapped.Error() != "get started: invalid email" {
		t.Errorf("Unexpected error text %q", wrapped.Error())
	}

	if _, ok := FromError(errors.New("boom")); ok {
		t.Error("plain errors must not map to notifications")
	}
	if _, ok := FromError(nil); ok {
		t.Error("nil must not map to a notification")
	}
}

func TestCenterReplacesAndDismisses(t *testing.T) {
	c := NewCenter()
	if _, ok := c.Current(); ok {
		t.Fatal("new center should be empty")
	}

	c.Notify(Info("Copied!", "Link copied to clipboard"))
	c.Notify(Info("Request Sent!", "Testimonial request sent to x@y.z"))

	n, ok := c.Current()
	if !ok || n.Title != "Request Sent!" {
		t.Errorf("Expected newest notification to be visible, got %+v", n)
	}
	if c.Count() != 2 {
		t.Errorf("Expected count 2, got %d", c.Count())
	}

	c.Dismiss()
	if _, ok := c.Current(); ok {
		t.Error("Expected no notification after dismiss")
	}
}

func TestRecorderLast(t *testing.T) {
	var r Recorder
	if _, ok := r.Last(); ok {
		t.Fatal("empty recorder should have no last notification")
	}
	r.Notify(Info("a", "b"))
	r.Notify(Notification{Title: "c", Severity: SeverityDestructive})
	last, _ := r.Last()
	if last.Title != "c" || len(r.Notifications) != 2 {
		t.Errorf("Unexpected recorder state: %+v", r.Notifications)
	}
}
