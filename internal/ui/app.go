package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/yildizm/testimonialhero/internal/emoji"
	"github.com/yildizm/testimonialhero/internal/notify"
	"github.com/yildizm/testimonialhero/internal/session"
	"github.com/yildizm/testimonialhero/internal/testimonial"
)

// App is the root model. It shows the screen matching the router's view and
// rebuilds it whenever the view changes.
type App struct {
	deps     *Deps
	styles   *Styles
	markdown *markdownRenderer

	view     session.View
	screen   screen
	width    int
	height   int
	showHelp bool
	quitting bool
}

// NewApp creates the root model on the router's current view
func NewApp(deps *Deps) *App {
	a := &App{
		deps:     deps,
		styles:   GetStyles(),
		markdown: newMarkdownRenderer(),
		view:     deps.Router.View(),
	}
	a.screen = a.newScreen(a.view)
	return a
}

func (a *App) newScreen(v session.View) screen {
	switch v {
	case session.ViewDemo:
		return newDemoScreen(a.deps, a.styles)
	case session.ViewForm:
		return newFormScreen(a.deps, a.styles)
	case session.ViewDashboard:
		return newDashboardScreen(a.deps, a.styles)
	default:
		return newLandingScreen(a.deps, a.styles, a.markdown)
	}
}

// Session returns the router's current session
func (a *App) Session() session.Session {
	return a.deps.Router.Session()
}

// Init initializes the active screen
func (a *App) Init() tea.Cmd {
	return a.screen.Init()
}

// Update handles messages and navigation
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil
	case tea.KeyMsg:
		if done, cmd := a.handleKeyPress(msg); done {
			return a, cmd
		}
	case FixtureReloadedMsg:
		a.handleFixtureReloaded(msg)
	}

	cmd := a.screen.Update(msg)
	return a, tea.Batch(cmd, a.syncView())
}

// handleKeyPress handles the keys every screen shares. It reports whether the
// key was consumed.
func (a *App) handleKeyPress(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		a.quitting = true
		return true, tea.Quit
	case "ctrl+x":
		a.deps.Notices.Dismiss()
		return true, nil
	case "f1":
		a.showHelp = !a.showHelp
		return true, nil
	case "esc":
		_ = a.deps.Router.Back()
		return true, a.syncView()
	}
	return false, nil
}

func (a *App) handleFixtureReloaded(msg FixtureReloadedMsg) {
	if msg.Err != nil {
		a.deps.Logger.Warn("testimonial fixture reload failed", zap.Error(msg.Err))
		a.deps.Notices.Notify(notify.Notification{
			Title:       "Reload Failed",
			Description: "Keeping the previous testimonials.",
			Severity:    notify.SeverityDestructive,
		})
		return
	}
	a.deps.Logger.Info("testimonial fixture reloaded")
}

// syncView swaps in a fresh screen after the router changed view
func (a *App) syncView() tea.Cmd {
	v := a.deps.Router.View()
	if v == a.view {
		return nil
	}
	a.view = v
	a.screen = a.newScreen(v)
	return a.screen.Init()
}

// View renders the active screen with the notification and key help
func (a *App) View() string {
	if a.quitting {
		return a.styles.Success.Render("Thanks for trying TestimonialHero! " + emoji.GetEmoji("sparkles") + "\n")
	}

	width := a.width
	if width <= 0 {
		width = 80
	}

	parts := []string{}
	if toast := renderToast(a.styles, a.deps.Notices, contentWidth(width)); toast != "" {
		parts = append(parts, toast)
	}
	if a.showHelp {
		parts = append(parts, a.markdown.Render(keyHelp, contentWidth(width)), "", a.styles.Muted.Render("f1: close help"))
	} else {
		parts = append(parts, a.screen.View(width), "", a.styles.Muted.Render(a.screen.Help()+" • f1: help"))
	}

	return lipgloss.NewStyle().Padding(0, 1).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// RunOptions controls the program started by Run
type RunOptions struct {
	AltScreen bool
	// Fixture, when set, is watched and reloaded while the program runs
	Fixture *testimonial.FileSource
}

// Run starts the interactive TUI and blocks until it exits
func Run(deps *Deps, opts RunOptions) error {
	app := NewApp(deps)

	var programOpts []tea.ProgramOption
	if opts.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	p := tea.NewProgram(app, programOpts...)

	if opts.Fixture != nil {
		w, err := watchFixture(opts.Fixture, p.Send)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := w.Close(); cerr != nil {
				deps.Logger.Warn("failed to close fixture watcher", zap.Error(cerr))
			}
		}()
	}

	_, err := p.Run()
	return err
}

// watchFixture reports every reload of fixture to send as a FixtureReloadedMsg
func watchFixture(fixture *testimonial.FileSource, send func(tea.Msg)) (*testimonial.Watcher, error) {
	w, err := testimonial.Watch(fixture, func(err error) {
		send(FixtureReloadedMsg{Err: err})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to watch fixture: %w", err)
	}
	return w, nil
}
