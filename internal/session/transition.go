package session

import "fmt"

// Trigger identifies a navigation request
type Trigger int

const (
	TriggerSeeDemo Trigger = iota
	TriggerGetStarted
	TriggerGoToForm
	TriggerBack
)

var triggerNames = [...]string{"see-demo", "get-started", "go-to-form", "back"}

func (t Trigger) String() string {
	if t >= TriggerSeeDemo && t <= TriggerBack {
		return triggerNames[t]
	}
	return fmt.Sprintf("trigger(%d)", int(t))
}

// Action is a trigger plus its payload. Only GetStarted reads Email.
type Action struct {
	Trigger Trigger
	Email   string
}

// SeeDemo requests the demo screen
func SeeDemo() Action { return Action{Trigger: TriggerSeeDemo} }

// GoToForm requests the testimonial form
func GoToForm() Action { return Action{Trigger: TriggerGoToForm} }

// Back returns to the landing screen
func Back() Action { return Action{Trigger: TriggerBack} }

// GetStarted requests the dashboard for email
func GetStarted(email string) Action {
	return Action{Trigger: TriggerGetStarted, Email: email}
}

// edge is a row of the transition table
type edge struct {
	from    View
	trigger Trigger
}

var transitions = map[edge]View{
	{ViewLanding, TriggerSeeDemo}:    ViewDemo,
	{ViewLanding, TriggerGetStarted}: ViewDashboard,
	{ViewDemo, TriggerBack}:          ViewLanding,
	{ViewDemo, TriggerGoToForm}:      ViewForm,
	{ViewDemo, TriggerGetStarted}:    ViewDashboard,
	{ViewForm, TriggerBack}:          ViewLanding,
	{ViewDashboard, TriggerBack}:     ViewLanding,
}

// Available reports whether a trigger is offered from view
func Available(view View, trigger Trigger) bool {
	_, ok := transitions[edge{view, trigger}]
	return ok
}

// Transition applies a to s. On any error the returned Session equals s.
func Transition(s Session, a Action) (Session, error) {
	to, ok := transitions[edge{s.CurrentView, a.Trigger}]
	if !ok {
		return s, fmt.Errorf("%s from %s: %w", a.Trigger, s.CurrentView, ErrUnavailable)
	}

	next := s
	if a.Trigger == TriggerGetStarted {
		if err := ValidateEmail(a.Email); err != nil {
			return s, err
		}
		next.UserEmail = a.Email
	}
	next.CurrentView = to
	return next, nil
}
