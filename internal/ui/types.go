package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/yildizm/testimonialhero/internal/clipboard"
	"github.com/yildizm/testimonialhero/internal/logger"
	"github.com/yildizm/testimonialhero/internal/notify"
	"github.com/yildizm/testimonialhero/internal/session"
	"github.com/yildizm/testimonialhero/internal/testimonial"
)

// Deps are the collaborators shared by every screen
type Deps struct {
	Router    *session.Router
	Notices   *notify.Center
	Clipboard clipboard.Writer
	Source    testimonial.Source
	Links     testimonial.Links
	Logger    *zap.Logger
	Now       func() time.Time
}

// NewDeps wires a router to a fresh notification center. Nil collaborators
// get working defaults.
func NewDeps(clip clipboard.Writer, source testimonial.Source, links testimonial.Links, log *zap.Logger) *Deps {
	if log == nil {
		log = zap.NewNop()
	}
	if clip == nil {
		clip = clipboard.NewSystem()
	}
	if source == nil {
		source = testimonial.Mock()
	}
	notices := notify.NewCenter()
	return &Deps{
		Router:    session.NewRouter(notices, logger.Component(log, "router")),
		Notices:   notices,
		Clipboard: clip,
		Source:    source,
		Links:     links,
		Logger:    log,
		Now:       time.Now,
	}
}

// copyText places text on the clipboard and confirms it. A clipboard failure
// is only logged; the confirmation is shown either way.
func (d *Deps) copyText(text, description string) {
	if err := d.Clipboard.WriteText(text); err != nil {
		d.Logger.Warn("clipboard write failed", zap.Error(err))
	}
	d.Notices.Notify(notify.Info("Copied!", description))
}

// reject shows the notification carried by err, if any
func (d *Deps) reject(err error) {
	if n, ok := notify.FromError(err); ok {
		d.Notices.Notify(n)
	}
}

// screen is one of the four views. Screens are rebuilt whenever the router
// changes view, so their fields are the screen-local state.
type screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	View(width int) string
	Help() string
}
