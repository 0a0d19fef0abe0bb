package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/yildizm/testimonialhero/internal/emoji"
	"github.com/yildizm/testimonialhero/internal/forms"
	"github.com/yildizm/testimonialhero/internal/notify"
	"github.com/yildizm/testimonialhero/internal/testimonial"
)

// Dashboard controls. Per-testimonial controls are suffixed with the index.
const (
	dashBack        = "back"
	dashTabPrefix   = "tab:"
	dashRequest     = "request"
	dashCopyLink    = "copy-link"
	dashClientEmail = "client-email"
	dashSend        = "send"
	dashDownload    = "download:"
	dashCopyText    = "copy-text:"
	dashCompany     = "company"
	dashLogo        = "logo"
	dashMessage     = "message"
	dashSave        = "save"
)

type dashboardScreen struct {
	deps   *Deps
	styles *Styles
	focus  focusRing

	tab      forms.Tab
	email    string
	records  []testimonial.Testimonial
	request  forms.RequestForm
	settings forms.Settings

	clientEmail textinput.Model
	companyName textinput.Model
	logoURL     textinput.Model
	message     textarea.Model
}

func newDashboardScreen(deps *Deps, styles *Styles) *dashboardScreen {
	s := &dashboardScreen{
		deps:        deps,
		styles:      styles,
		tab:         forms.TabOverview,
		email:       deps.Router.Session().UserEmail,
		clientEmail: newInput("client@example.com"),
		companyName: newInput("Your Company Name"),
		logoURL:     newInput("https://yoursite.com/logo.png"),
		message:     newTextArea("Custom message to include in testimonial requests...", 3),
	}
	s.loadRecords()
	s.focus = newFocusRing(s.controls()...)
	s.focus.Focus(tabControl(forms.TabOverview))
	return s
}

func tabControl(t forms.Tab) string {
	return dashTabPrefix + strconv.Itoa(int(t))
}

func (s *dashboardScreen) loadRecords() {
	records, err := s.deps.Source.List()
	if err != nil {
		s.deps.Logger.Error("failed to list testimonials", zap.Error(err))
		return
	}
	s.records = records
}

// controls lists the focusable controls of the active tab
func (s *dashboardScreen) controls() []string {
	ids := []string{dashBack}
	for _, t := range forms.Tabs {
		ids = append(ids, tabControl(t))
	}

	switch s.tab {
	case forms.TabOverview:
		ids = append(ids, dashRequest, dashCopyLink)
	case forms.TabCollect:
		ids = append(ids, dashCopyLink, dashClientEmail, dashSend)
	case forms.TabTestimonials:
		for i := range s.records {
			ids = append(ids, dashDownload+strconv.Itoa(i), dashCopyText+strconv.Itoa(i))
		}
	case forms.TabSettings:
		ids = append(ids, dashCompany, dashLogo, dashMessage, dashSave)
	}
	return ids
}

func (s *dashboardScreen) selectTab(t forms.Tab) {
	s.tab = t
	s.focus.Reset(s.controls()...)
	s.syncFocus()
}

func (s *dashboardScreen) personalLink() string {
	return testimonial.WithScheme(s.deps.Links.Personal(s.email))
}

func (s *dashboardScreen) Init() tea.Cmd {
	return textinput.Blink
}

func (s *dashboardScreen) syncFocus() {
	inputs := map[string]*textinput.Model{
		dashClientEmail: &s.clientEmail,
		dashCompany:     &s.companyName,
		dashLogo:        &s.logoURL,
	}
	for id, in := range inputs {
		if s.focus.Is(id) {
			in.Focus()
		} else {
			in.Blur()
		}
	}
	if s.focus.Is(dashMessage) {
		s.message.Focus()
	} else {
		s.message.Blur()
	}
}

func (s *dashboardScreen) typing() bool {
	switch s.focus.Current() {
	case dashClientEmail, dashCompany, dashLogo, dashMessage:
		return true
	}
	return false
}

func (s *dashboardScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case FixtureReloadedMsg:
		if msg.Err == nil {
			s.loadRecords()
			s.focus.Reset(s.controls()...)
		}
		return nil
	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s.updateFocused(msg)
}

func (s *dashboardScreen) handleKey(key tea.KeyMsg) tea.Cmd {
	if s.focus.handleMove(key) {
		s.syncFocus()
		return nil
	}

	k := key.String()
	if !s.typing() {
		switch k {
		case "1", "2", "3", "4":
			s.selectTab(forms.Tabs[int(k[0]-'1')])
			return nil
		case "left":
			s.selectTab(forms.Tabs[(int(s.tab)+len(forms.Tabs)-1)%len(forms.Tabs)])
			return nil
		case "right":
			s.selectTab(forms.Tabs[(int(s.tab)+1)%len(forms.Tabs)])
			return nil
		}
	}

	if k == "enter" && !s.focus.Is(dashMessage) {
		s.activate()
		return nil
	}
	return s.updateFocused(key)
}

func (s *dashboardScreen) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch s.focus.Current() {
	case dashClientEmail:
		s.clientEmail, cmd = s.clientEmail.Update(msg)
	case dashCompany:
		s.companyName, cmd = s.companyName.Update(msg)
	case dashLogo:
		s.logoURL, cmd = s.logoURL.Update(msg)
	case dashMessage:
		s.message, cmd = s.message.Update(msg)
	}
	return cmd
}

func (s *dashboardScreen) activate() {
	id := s.focus.Current()
	switch {
	case id == dashBack:
		_ = s.deps.Router.Back()
	case strings.HasPrefix(id, dashTabPrefix):
		n, _ := strconv.Atoi(strings.TrimPrefix(id, dashTabPrefix))
		s.selectTab(forms.Tab(n))
	case id == dashRequest:
		s.selectTab(forms.TabCollect)
	case id == dashCopyLink:
		s.deps.copyText(s.personalLink(), "Link copied to clipboard")
	case id == dashClientEmail || id == dashSend:
		s.sendRequest()
	case strings.HasPrefix(id, dashDownload):
		if t, ok := s.record(strings.TrimPrefix(id, dashDownload)); ok {
			s.deps.Notices.Notify(notify.Info("Downloaded!",
				fmt.Sprintf("Testimonial card for %s saved as PNG", t.Name)))
		}
	case strings.HasPrefix(id, dashCopyText):
		if t, ok := s.record(strings.TrimPrefix(id, dashCopyText)); ok {
			s.deps.copyText(t.CopyText(), "Link copied to clipboard")
		}
	case id == dashCompany || id == dashLogo || id == dashSave:
		s.saveSettings()
	}
}

func (s *dashboardScreen) record(index string) (*testimonial.Testimonial, bool) {
	i, err := strconv.Atoi(index)
	if err != nil || i < 0 || i >= len(s.records) {
		return nil, false
	}
	return &s.records[i], true
}

func (s *dashboardScreen) sendRequest() {
	s.request.ClientEmail = s.clientEmail.Value()
	cleared, sent, err := s.request.Send()
	if err != nil {
		s.deps.reject(err)
		return
	}
	s.deps.Logger.Info("testimonial request recorded", zap.String("client", s.request.ClientEmail))
	s.request = cleared
	s.clientEmail.Reset()
	s.deps.Notices.Notify(sent)
}

func (s *dashboardScreen) saveSettings() {
	s.settings = forms.Settings{
		CompanyName:   s.companyName.Value(),
		LogoURL:       s.logoURL.Value(),
		CustomMessage: s.message.Value(),
	}
	s.deps.Logger.Debug("settings saved", zap.String("company", s.settings.CompanyName))
	s.deps.Notices.Notify(forms.SavedNotification)
}

func (s *dashboardScreen) View(width int) string {
	w := contentWidth(width)
	st := s.styles

	header := st.brandBar(w,
		st.button(emoji.GetEmoji("back")+" Back", s.focus.Is(dashBack)),
		st.Muted.Render(s.email))

	var body string
	switch s.tab {
	case forms.TabOverview:
		body = s.overviewView(w)
	case forms.TabCollect:
		body = s.collectView(w)
	case forms.TabTestimonials:
		body = s.testimonialsView(w)
	case forms.TabSettings:
		body = s.settingsView(w)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, "", s.tabBar(), "", body)
}

func (s *dashboardScreen) tabBar() string {
	icons := map[forms.Tab]string{
		forms.TabOverview:     "chart",
		forms.TabCollect:      "mail",
		forms.TabTestimonials: "users",
		forms.TabSettings:     "settings",
	}
	st := s.styles
	tabs := make([]string, 0, len(forms.Tabs))
	for i, t := range forms.Tabs {
		label := fmt.Sprintf("%d %s %s", i+1, emoji.GetEmoji(icons[t]), t)
		style := st.Tab
		if t == s.tab {
			style = st.TabActive
		}
		if s.focus.Is(tabControl(t)) {
			label = "[" + label + "]"
		}
		tabs = append(tabs, style.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// stats are the overview figures, counted against the injected clock
func (s *dashboardScreen) stats() testimonial.Stats {
	return testimonial.Summarize(s.records, s.deps.Now())
}

func (s *dashboardScreen) overviewView(width int) string {
	st := s.styles
	stats := s.stats()

	statCard := func(label, value string, style lipgloss.Style) string {
		return st.Card.Width(width/3 - 1).Render(lipgloss.JoinVertical(lipgloss.Left,
			st.Muted.Render(label), style.Bold(true).Render(value)))
	}

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		statCard("Total Testimonials", strconv.Itoa(stats.Total), st.Hero),
		statCard("Average Rating", fmt.Sprintf("%.1f", stats.AverageRating), st.Stars),
		statCard("This Month", strconv.Itoa(stats.ThisMonth), st.Success),
	)

	actions := lipgloss.JoinVertical(lipgloss.Left,
		st.Subheader.Render("Quick Actions"),
		lipgloss.JoinHorizontal(lipgloss.Center,
			st.button(emoji.GetEmoji("mail")+" Request Testimonial", s.focus.Is(dashRequest)), " ",
			st.button(emoji.GetEmoji("copy")+" Copy Your Link", s.focus.Is(dashCopyLink))),
	)

	return lipgloss.JoinVertical(lipgloss.Left, st.Title.Render("Dashboard Overview"), cards, "", actions)
}

func (s *dashboardScreen) collectView(width int) string {
	st := s.styles

	link := st.Card.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left,
		st.Subheader.Render("Your Testimonial Collection Link"),
		lipgloss.JoinHorizontal(lipgloss.Center,
			st.Code.Render(s.personalLink()), " ",
			st.button(emoji.GetEmoji("copy"), s.focus.Is(dashCopyLink))),
		st.Muted.Render("Share this link with clients to collect testimonials"),
	))

	request := st.Card.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left,
		st.Subheader.Render("Send Email Request"),
		lipgloss.JoinHorizontal(lipgloss.Bottom,
			st.field("Client Email Address", s.clientEmail.View(), s.focus.Is(dashClientEmail)), " ",
			st.button(emoji.GetEmoji("mail")+" Send Request", s.focus.Is(dashSend))),
		"",
		st.Body.Bold(true).Render("Email Preview:"),
		st.Muted.Render("Subject: We'd love your feedback!"),
		st.Muted.Render("Hi there,"),
		st.Muted.Width(width-6).Render("We hope you're thrilled with our work! Would you mind taking 2 minutes to share your experience?"),
		st.Brand.Render("→ Share Your Feedback (links to your form)"),
	))

	return lipgloss.JoinVertical(lipgloss.Left, st.Title.Render("Collect Testimonials"), link, request)
}

func (s *dashboardScreen) testimonialsView(width int) string {
	st := s.styles
	parts := []string{st.Title.Render("Your Testimonials")}
	if len(s.records) == 0 {
		parts = append(parts, st.Muted.Render("No testimonials yet."))
	}

	for i := range s.records {
		t := &s.records[i]
		idx := strconv.Itoa(i)
		card := lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.JoinHorizontal(lipgloss.Top,
				st.Brand.Render("("+t.Initials()+")"), " ",
				lipgloss.JoinVertical(lipgloss.Left, st.Body.Bold(true).Render(t.Name), st.Muted.Render(t.Company)),
				"  ", st.stars(t.Rating)),
			st.Quote.Width(width-6).Render(fmt.Sprintf("\"%s\"", t.Quote)),
			st.Muted.Render(t.Date.Format(testimonial.DateLayout)),
			lipgloss.JoinHorizontal(lipgloss.Center,
				st.button(emoji.GetEmoji("download")+" Download Card", s.focus.Is(dashDownload+idx)), " ",
				st.button(emoji.GetEmoji("copy")+" Copy Text", s.focus.Is(dashCopyText+idx))),
		)
		parts = append(parts, st.Card.Width(width).Render(card))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (s *dashboardScreen) settingsView(width int) string {
	st := s.styles
	form := st.Card.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left,
		st.Subheader.Render("Branding"),
		st.field("Company Name", s.companyName.View(), s.focus.Is(dashCompany)),
		st.field("Logo URL", s.logoURL.View(), s.focus.Is(dashLogo)),
		st.field("Custom Message (Optional)", s.message.View(), s.focus.Is(dashMessage)),
		"",
		st.button("Save Settings", s.focus.Is(dashSave)),
	))
	return lipgloss.JoinVertical(lipgloss.Left, st.Title.Render("Settings"), form)
}

func (s *dashboardScreen) Help() string {
	if s.typing() {
		return "tab: next • enter: confirm • esc: back • ctrl+c: quit"
	}
	return "tab: next • 1-4 or ←/→: switch tab • enter: select • esc: back • ctrl+c: quit"
}
