package ui

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/yildizm/testimonialhero/internal/clipboard"
	"github.com/yildizm/testimonialhero/internal/notify"
	"github.com/yildizm/testimonialhero/internal/session"
	"github.com/yildizm/testimonialhero/internal/testimonial"
)

func newTestApp(t *testing.T) (*App, *clipboard.Recorder) {
	t.Helper()
	clip := &clipboard.Recorder{}
	deps := NewDeps(clip, testimonial.Mock(), testimonial.DefaultLinks(), nil)
	deps.Now = func() time.Time { return time.Date(2024, time.January, 20, 9, 0, 0, 0, time.UTC) }
	app := NewApp(deps)
	app.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return app, clip
}

func typeText(a *App, text string) {
	for _, r := range text {
		a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func press(a *App, k tea.KeyType, times int) {
	for i := 0; i < times; i++ {
		a.Update(tea.KeyMsg{Type: k})
	}
}

func lastNotice(t *testing.T, a *App) notify.Notification {
	t.Helper()
	n, ok := a.deps.Notices.Current()
	require.True(t, ok, "expected a visible notification")
	return n
}

func enterDashboard(t *testing.T, a *App, email string) {
	t.Helper()
	typeText(a, email)
	press(a, tea.KeyEnter, 1)
	require.Equal(t, session.ViewDashboard, a.Session().CurrentView)
}

func TestLandingGetStarted(t *testing.T) {
	app, _ := newTestApp(t)

	enterDashboard(t, app, "a@b.com")

	assert.Equal(t, "a@b.com", app.Session().UserEmail)
	_, ok := app.screen.(*dashboardScreen)
	assert.True(t, ok, "dashboard screen should be active")
}

func TestLandingRejectsEmail(t *testing.T) {
	tests := []struct {
		name  string
		input string
		title string
	}{
		{"empty", "", "Email Required"},
		{"missing at", "abc", "Invalid Email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _ := newTestApp(t)

			typeText(app, tt.input)
			press(app, tea.KeyEnter, 1)

			assert.Equal(t, session.ViewLanding, app.Session().CurrentView)
			assert.Empty(t, app.Session().UserEmail)
			n := lastNotice(t, app)
			assert.Equal(t, tt.title, n.Title)
			assert.Equal(t, notify.SeverityDestructive, n.Severity)
		})
	}
}

func TestLandingKeepsLongEmailIntact(t *testing.T) {
	app, _ := newTestApp(t)
	email := strings.Repeat("a", 300) + "@b.com"

	enterDashboard(t, app, email)

	assert.Equal(t, email, app.Session().UserEmail)
}

func TestFormKeepsLongTextIntact(t *testing.T) {
	app, _ := newTestApp(t)
	require.NoError(t, app.deps.Router.SeeDemo())
	require.NoError(t, app.deps.Router.GoToForm())
	app.Update(nil)
	form := app.screen.(*formScreen)

	name := strings.Repeat("n", 200)
	quote := strings.Repeat("q", 2500)
	press(app, tea.KeyTab, 1)
	typeText(app, name)
	press(app, tea.KeyTab, 3)
	typeText(app, quote)
	press(app, tea.KeyCtrlS, 1)

	require.True(t, form.submission.Submitted)
	assert.Equal(t, name, form.submission.Name)
	assert.Equal(t, quote, form.submission.Quote)
}

func TestLandingSeeItInAction(t *testing.T) {
	app, _ := newTestApp(t)

	press(app, tea.KeyShiftTab, 1)
	press(app, tea.KeyEnter, 1)

	assert.Equal(t, session.ViewDemo, app.Session().CurrentView)
}

func TestEscapeOnLandingIsIgnored(t *testing.T) {
	app, _ := newTestApp(t)

	press(app, tea.KeyEsc, 1)

	assert.Equal(t, session.ViewLanding, app.Session().CurrentView)
	_, ok := app.deps.Notices.Current()
	assert.False(t, ok, "unavailable actions must not notify")
}

func TestDemoNavigation(t *testing.T) {
	app, _ := newTestApp(t)
	require.NoError(t, app.deps.Router.SeeDemo())
	app.Update(nil)

	// Share Your Feedback has initial focus
	press(app, tea.KeyEnter, 1)
	assert.Equal(t, session.ViewForm, app.Session().CurrentView)

	press(app, tea.KeyEsc, 1)
	assert.Equal(t, session.ViewLanding, app.Session().CurrentView)
}

func TestDemoCopyActions(t *testing.T) {
	app, clip := newTestApp(t)
	press(app, tea.KeyShiftTab, 1)
	press(app, tea.KeyEnter, 1)
	require.Equal(t, session.ViewDemo, app.Session().CurrentView)

	press(app, tea.KeyTab, 1)
	press(app, tea.KeyEnter, 1)
	assert.Equal(t, "https://testimonialhero.app/submit/demo123", clip.Last())
	n := lastNotice(t, app)
	assert.Equal(t, "Copied!", n.Title)
	assert.Equal(t, "Link copied to clipboard", n.Description)

	press(app, tea.KeyTab, 1)
	press(app, tea.KeyEnter, 1)
	assert.Equal(t, "Downloaded!", lastNotice(t, app).Title)

	press(app, tea.KeyTab, 1)
	press(app, tea.KeyEnter, 1)
	assert.Equal(t, testimonial.DefaultLinks().EmbedCode(), clip.Last())
	assert.Equal(t, "Embed code copied to clipboard", lastNotice(t, app).Description)
}

func TestDemoGetStarted(t *testing.T) {
	app, _ := newTestApp(t)
	require.NoError(t, app.deps.Router.SeeDemo())
	app.Update(nil)

	press(app, tea.KeyTab, 4)
	typeText(app, "x@y")
	press(app, tea.KeyEnter, 1)

	assert.Equal(t, session.Session{CurrentView: session.ViewDashboard, UserEmail: "x@y"}, app.Session())
}

func TestFormSubmission(t *testing.T) {
	app, _ := newTestApp(t)
	require.NoError(t, app.deps.Router.SeeDemo())
	require.NoError(t, app.deps.Router.GoToForm())
	app.Update(nil)

	form, ok := app.screen.(*formScreen)
	require.True(t, ok)

	typeText(app, "3")
	assert.Equal(t, 3, form.submission.Rating)

	press(app, tea.KeyCtrlS, 1)
	assert.Equal(t, "Missing Information", lastNotice(t, app).Title)
	assert.False(t, form.submission.Submitted)

	press(app, tea.KeyTab, 1)
	typeText(app, "Ann")
	press(app, tea.KeyTab, 3)
	typeText(app, "Great work")
	press(app, tea.KeyCtrlS, 1)

	require.True(t, form.submission.Submitted)
	assert.Equal(t, "Ann", form.submission.Name)
	assert.Equal(t, "Great work", form.submission.Quote)
	assert.Equal(t, 3, form.submission.Rating)
	assert.NotEmpty(t, form.submission.Reference)
	assert.Equal(t, "Thank You!", lastNotice(t, app).Title)
	assert.Contains(t, app.View(), "Back to TestimonialHero")

	press(app, tea.KeyEnter, 1)
	assert.Equal(t, session.ViewLanding, app.Session().CurrentView)
}

func TestFormStateResetsOnReentry(t *testing.T) {
	app, _ := newTestApp(t)
	require.NoError(t, app.deps.Router.SeeDemo())
	require.NoError(t, app.deps.Router.GoToForm())
	app.Update(nil)
	typeText(app, "2")

	press(app, tea.KeyEsc, 1)
	require.NoError(t, app.deps.Router.SeeDemo())
	require.NoError(t, app.deps.Router.GoToForm())
	app.Update(nil)

	form := app.screen.(*formScreen)
	assert.Equal(t, 5, form.submission.Rating)
}

func TestDashboardCopyLink(t *testing.T) {
	app, clip := newTestApp(t)
	enterDashboard(t, app, "a@b.com")

	// overview ring: back, four tabs, request, copy-link
	press(app, tea.KeyTab, 5)
	press(app, tea.KeyEnter, 1)

	assert.Equal(t, "https://testimonialhero.app/submit/a123", clip.Last())
	assert.Equal(t, "Copied!", lastNotice(t, app).Title)
}

func TestDashboardOverview(t *testing.T) {
	app, _ := newTestApp(t)
	enterDashboard(t, app, "a@b.com")

	out := app.View()
	assert.Contains(t, out, "Total Testimonials")
	assert.Contains(t, out, "5.0")
	assert.Contains(t, out, "a@b.com")
}

func TestDashboardThisMonthUsesDefaultClock(t *testing.T) {
	today := testimonial.Testimonial{ID: 1, Name: "Ada", Quote: "Great.", Rating: 4, Date: time.Now()}
	old := testimonial.Testimonial{ID: 2, Name: "Bob", Quote: "Fine.", Rating: 2, Date: time.Now().AddDate(-1, 0, 0)}
	app := NewApp(NewDeps(&clipboard.Recorder{}, testimonial.NewStatic(today, old), testimonial.DefaultLinks(), nil))
	app.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	enterDashboard(t, app, "a@b.com")

	dash, ok := app.screen.(*dashboardScreen)
	require.True(t, ok)
	stats := dash.stats()
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.ThisMonth)
	assert.InDelta(t, 3.0, stats.AverageRating, 0.001)
}

func TestDashboardRequestTestimonial(t *testing.T) {
	app, _ := newTestApp(t)
	enterDashboard(t, app, "a@b.com")
	dash := app.screen.(*dashboardScreen)

	// Request Testimonial quick action switches to collect
	press(app, tea.KeyTab, 4)
	press(app, tea.KeyEnter, 1)
	require.Equal(t, "Collect", dash.tab.String())

	// collect ring: back, four tabs, copy-link, client-email, send
	for !dash.focus.Is(dashClientEmail) {
		press(app, tea.KeyTab, 1)
	}
	typeText(app, "nope")
	press(app, tea.KeyEnter, 1)
	n := lastNotice(t, app)
	assert.Equal(t, "Invalid Email", n.Title)
	assert.Equal(t, "Please enter a valid client email address.", n.Description)
	assert.Equal(t, "nope", dash.clientEmail.Value())

	typeText(app, "@client.com")
	press(app, tea.KeyEnter, 1)
	n = lastNotice(t, app)
	assert.Equal(t, "Request Sent!", n.Title)
	assert.Equal(t, "Testimonial request sent to nope@client.com", n.Description)
	assert.Empty(t, dash.clientEmail.Value())
	assert.Equal(t, session.ViewDashboard, app.Session().CurrentView)
}

func TestDashboardTestimonialActions(t *testing.T) {
	app, clip := newTestApp(t)
	enterDashboard(t, app, "a@b.com")

	typeText(app, "3")
	dash := app.screen.(*dashboardScreen)
	require.Equal(t, "Testimonials", dash.tab.String())

	press(app, tea.KeyTab, 4)
	press(app, tea.KeyEnter, 1)
	assert.Equal(t, "Testimonial card for Sarah Johnson saved as PNG", lastNotice(t, app).Description)

	press(app, tea.KeyTab, 1)
	press(app, tea.KeyEnter, 1)
	want := "\"Absolutely amazing work! The team delivered exactly what we needed and exceeded our expectations.\" - Sarah Johnson, TechStart Inc."
	assert.Equal(t, want, clip.Last())
}

func TestDashboardSettings(t *testing.T) {
	app, _ := newTestApp(t)
	enterDashboard(t, app, "a@b.com")
	typeText(app, "4")
	dash := app.screen.(*dashboardScreen)

	for !dash.focus.Is(dashCompany) {
		press(app, tea.KeyTab, 1)
	}
	typeText(app, "Acme")
	for !dash.focus.Is(dashSave) {
		press(app, tea.KeyTab, 1)
	}
	press(app, tea.KeyEnter, 1)

	assert.Equal(t, "Acme", dash.settings.CompanyName)
	assert.Equal(t, "Settings Saved", lastNotice(t, app).Title)
}

func TestDashboardBackKeepsEmail(t *testing.T) {
	app, _ := newTestApp(t)
	enterDashboard(t, app, "a@b.com")

	press(app, tea.KeyEsc, 1)

	assert.Equal(t, session.Session{CurrentView: session.ViewLanding, UserEmail: "a@b.com"}, app.Session())
}

func TestRouterLogsUnderComponentName(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	app := NewApp(NewDeps(&clipboard.Recorder{}, testimonial.Mock(), testimonial.DefaultLinks(), zap.New(core)))
	app.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	enterDashboard(t, app, "a@b.com")

	navigated := logs.FilterMessage("navigated").All()
	require.NotEmpty(t, navigated)
	assert.Equal(t, "router", navigated[0].LoggerName)
}

func TestDismissNotification(t *testing.T) {
	app, _ := newTestApp(t)
	press(app, tea.KeyEnter, 1)
	require.True(t, strings.Contains(app.View(), "Email Required"))

	press(app, tea.KeyCtrlX, 1)

	_, ok := app.deps.Notices.Current()
	assert.False(t, ok)
	assert.NotContains(t, app.View(), "Email Required")
}

func TestFixtureReloadFailureNotifies(t *testing.T) {
	app, _ := newTestApp(t)

	app.Update(FixtureReloadedMsg{Err: errors.New("bad yaml")})

	n := lastNotice(t, app)
	assert.Equal(t, "Reload Failed", n.Title)
	assert.Equal(t, notify.SeverityDestructive, n.Severity)
}

func TestWatchFixtureWrapsError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "testimonials.yaml")
	require.NoError(t, os.WriteFile(path, []byte("testimonials: []\n"), 0o600))
	fixture, err := testimonial.LoadFile(path)
	require.NoError(t, err)
	require.NoError(t, os.RemoveAll(dir))

	w, err := watchFixture(fixture, func(tea.Msg) {})

	require.Error(t, err)
	assert.Nil(t, w)
	assert.Contains(t, err.Error(), "failed to watch fixture")
}

func TestCtrlCQuits(t *testing.T) {
	app, _ := newTestApp(t)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestLandingView(t *testing.T) {
	app, _ := newTestApp(t)

	out := app.View()
	assert.Contains(t, out, "Testimonials in 60 Seconds")
	assert.Contains(t, out, "Start for Free")
	assert.Contains(t, out, "Sarah Chen")
}

func TestHelpToggle(t *testing.T) {
	app, _ := newTestApp(t)

	press(app, tea.KeyF1, 1)
	assert.Contains(t, app.View(), "dismiss the notification")

	press(app, tea.KeyF1, 1)
	assert.Contains(t, app.View(), "Start for Free")
}
