package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/yildizm/testimonialhero/internal/emoji"
	"github.com/yildizm/testimonialhero/internal/testimonial"
)

const featuresMarkdown = `## Why TestimonialHero

* **Instant Setup**: Share your custom link immediately. No technical setup required.
* **Client-Friendly**: Beautiful forms that clients actually want to fill out.
* **Ready to Share**: Download cards or embed testimonials anywhere instantly.
`

// Landing controls
const (
	landingSeeDemo   = "see-demo"
	landingSeeAction = "see-action"
	landingEmail     = "email"
	landingStart     = "start"
)

type landingScreen struct {
	deps     *Deps
	styles   *Styles
	markdown *markdownRenderer
	focus    focusRing
	email    textinput.Model
}

func newLandingScreen(deps *Deps, styles *Styles, md *markdownRenderer) *landingScreen {
	s := &landingScreen{
		deps:     deps,
		styles:   styles,
		markdown: md,
		focus:    newFocusRing(landingSeeDemo, landingSeeAction, landingEmail, landingStart),
		email:    newInput("Enter your email"),
	}
	s.focus.Focus(landingEmail)
	s.syncFocus()
	return s
}

func (s *landingScreen) Init() tea.Cmd {
	return textinput.Blink
}

func (s *landingScreen) syncFocus() {
	if s.focus.Is(landingEmail) {
		s.email.Focus()
	} else {
		s.email.Blur()
	}
}

func (s *landingScreen) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		s.email, cmd = s.email.Update(msg)
		return cmd
	}

	if s.focus.handleMove(key) {
		s.syncFocus()
		return nil
	}

	if key.String() == "enter" {
		s.activate()
		return nil
	}

	if s.focus.Is(landingEmail) {
		var cmd tea.Cmd
		s.email, cmd = s.email.Update(msg)
		return cmd
	}
	return nil
}

func (s *landingScreen) activate() {
	switch s.focus.Current() {
	case landingSeeDemo, landingSeeAction:
		_ = s.deps.Router.SeeDemo()
	case landingEmail, landingStart:
		_ = s.deps.Router.GetStarted(s.email.Value())
	}
}

func (s *landingScreen) View(width int) string {
	w := contentWidth(width)
	st := s.styles

	header := st.brandBar(w, "", st.button("See Demo", s.focus.Is(landingSeeDemo)))

	hero := lipgloss.JoinVertical(lipgloss.Center,
		st.Title.Render("Get Stunning Client"),
		st.Hero.Render("Testimonials in 60 Seconds"),
		"",
		st.Muted.Width(min(w, 70)).Align(lipgloss.Center).Render(
			"No login, no setup, no code. Just one link to collect and share client praise. "+
				"Perfect for freelancers and small agencies."),
	)

	cta := lipgloss.JoinVertical(lipgloss.Center,
		st.button(emoji.GetEmoji("rocket")+" See It In Action", s.focus.Is(landingSeeAction)),
		"",
		lipgloss.JoinHorizontal(lipgloss.Center,
			st.field("Email", s.email.View(), s.focus.Is(landingEmail)),
			"  ",
			st.button("Start for Free", s.focus.Is(landingStart)),
		),
	)

	features := s.markdown.Render(featuresMarkdown, w)

	return lipgloss.JoinVertical(lipgloss.Center,
		header,
		"",
		hero,
		"",
		cta,
		"",
		features,
		"",
		s.socialProof(w),
	)
}

func (s *landingScreen) socialProof(width int) string {
	st := s.styles
	proofs := testimonial.SocialProofs()

	cardWidth := width
	if width >= 90 {
		cardWidth = width/len(proofs) - 2
	}

	cards := make([]string, 0, len(proofs))
	for _, p := range proofs {
		body := lipgloss.JoinVertical(lipgloss.Left,
			st.stars(5),
			st.Quote.Width(cardWidth-6).Render(fmt.Sprintf("\"%s\"", p.Quote)),
			st.Body.Bold(true).Render(p.Name),
			st.Muted.Render(p.Role),
		)
		cards = append(cards, st.Card.Width(cardWidth).Render(body))
	}

	var row string
	if width >= 90 {
		row = lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	} else {
		row = lipgloss.JoinVertical(lipgloss.Left, cards...)
	}
	return lipgloss.JoinVertical(lipgloss.Center, st.Subheader.Render("Join 500+ Happy Users"), row)
}

func (s *landingScreen) Help() string {
	return "tab: next • enter: select • ctrl+x: dismiss • ctrl+c: quit"
}
