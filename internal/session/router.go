package session

import (
	"errors"

	"go.uber.org/zap"

	"github.com/yildizm/testimonialhero/internal/notify"
)

// Router owns the live Session. It is driven from a single event loop and is
// not safe for concurrent use.
type Router struct {
	session  Session
	notifier notify.Notifier
	logger   *zap.Logger
}

// NewRouter creates a router at the landing screen
func NewRouter(notifier notify.Notifier, logger *zap.Logger) *Router {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Router{
		session:  New(),
		notifier: notifier,
		logger:   logger,
	}
}

// Session returns the current session
func (r *Router) Session() Session {
	return r.session
}

// View returns the active screen
func (r *Router) View() View {
	return r.session.CurrentView
}

// Dispatch applies a to the current session. A validation failure is shown
// through the notifier and leaves the session untouched.
func (r *Router) Dispatch(a Action) (Session, error) {
	from := r.session.CurrentView
	next, err := Transition(r.session, a)
	if err != nil {
		if n, ok := notify.FromError(err); ok {
			r.logger.Info("navigation rejected",
				zap.Stringer("view", from),
				zap.Stringer("trigger", a.Trigger),
				zap.Error(err))
			if r.notifier != nil {
				r.notifier.Notify(n)
			}
		} else if errors.Is(err, ErrUnavailable) {
			r.logger.Debug("navigation ignored", zap.Error(err))
		}
		return r.session, err
	}

	r.session = next
	r.logger.Debug("navigated",
		zap.Stringer("from", from),
		zap.Stringer("to", next.CurrentView),
		zap.Stringer("trigger", a.Trigger))
	return next, nil
}

// SeeDemo dispatches TriggerSeeDemo
func (r *Router) SeeDemo() error {
	_, err := r.Dispatch(SeeDemo())
	return err
}

// GoToForm dispatches TriggerGoToForm
func (r *Router) GoToForm() error {
	_, err := r.Dispatch(GoToForm())
	return err
}

// Back dispatches TriggerBack
func (r *Router) Back() error {
	_, err := r.Dispatch(Back())
	return err
}

// GetStarted dispatches TriggerGetStarted with email
func (r *Router) GetStarted(email string) error {
	_, err := r.Dispatch(GetStarted(email))
	return err
}
