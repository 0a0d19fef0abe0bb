package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/yildizm/testimonialhero/internal/emoji"
	"github.com/yildizm/testimonialhero/internal/notify"
	"github.com/yildizm/testimonialhero/internal/testimonial"
)

// Demo controls, in screen order
const (
	demoBack      = "back"
	demoFeedback  = "share-feedback"
	demoCopyLink  = "copy-link"
	demoDownload  = "download"
	demoCopyEmbed = "copy-embed"
	demoEmail     = "email"
	demoStart     = "start"
)

type demoScreen struct {
	deps   *Deps
	styles *Styles
	focus  focusRing
	email  textinput.Model
	sample testimonial.Testimonial
}

func newDemoScreen(deps *Deps, styles *Styles) *demoScreen {
	s := &demoScreen{
		deps:   deps,
		styles: styles,
		focus: newFocusRing(demoBack, demoFeedback, demoCopyLink, demoDownload,
			demoCopyEmbed, demoEmail, demoStart),
		email:  newInput("Enter your email"),
		sample: testimonial.Sample(),
	}
	s.focus.Focus(demoFeedback)
	return s
}

func (s *demoScreen) Init() tea.Cmd {
	return textinput.Blink
}

func (s *demoScreen) syncFocus() {
	if s.focus.Is(demoEmail) {
		s.email.Focus()
	} else {
		s.email.Blur()
	}
}

func (s *demoScreen) Update(msg tea.Msg) tea.Cmd {
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

	if s.focus.Is(demoEmail) {
		var cmd tea.Cmd
		s.email, cmd = s.email.Update(msg)
		return cmd
	}
	return nil
}

func (s *demoScreen) activate() {
	links := s.deps.Links
	switch s.focus.Current() {
	case demoBack:
		_ = s.deps.Router.Back()
	case demoFeedback:
		_ = s.deps.Router.GoToForm()
	case demoCopyLink:
		s.deps.copyText(testimonial.WithScheme(links.DemoForm()), "Link copied to clipboard")
	case demoDownload:
		s.deps.Notices.Notify(notify.Info("Downloaded!", "Testimonial card saved as PNG"))
	case demoCopyEmbed:
		s.deps.copyText(links.EmbedCode(), "Embed code copied to clipboard")
	case demoEmail, demoStart:
		_ = s.deps.Router.GetStarted(s.email.Value())
	}
}

func (s *demoScreen) View(width int) string {
	w := contentWidth(width)
	st := s.styles
	links := s.deps.Links

	header := st.brandBar(w,
		st.button(emoji.GetEmoji("back")+" Back", s.focus.Is(demoBack)),
		st.Muted.Render("Live Demo"))

	intro := lipgloss.JoinVertical(lipgloss.Center,
		st.Title.Render("See TestimonialHero in Action"),
		st.Muted.Render("This is exactly what you and your clients will experience"),
	)

	clientMail := st.Card.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left,
		st.Subheader.Render("1. What Your Client Receives"),
		st.Muted.Render("From: you@yourcompany.com"),
		st.Muted.Render("Subject: We'd love your feedback!"),
		"",
		st.Body.Render("Hi John,"),
		st.Body.Width(w-6).Render("I hope you're thrilled with the website we created for your business! "+
			"Would you mind taking 2 minutes to share your experience?"),
		st.button("Share Your Feedback", s.focus.Is(demoFeedback)),
	))

	linkCard := st.Card.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left,
		st.Subheader.Render("Your Testimonial Collection Link:"),
		lipgloss.JoinHorizontal(lipgloss.Center,
			st.Code.Render(links.DemoForm()), " ",
			st.button(emoji.GetEmoji("copy"), s.focus.Is(demoCopyLink))),
		st.Muted.Render("Share this link via email, text, or any way you prefer"),
	))

	sample := s.sampleCard(w)

	actions := lipgloss.JoinVertical(lipgloss.Left,
		st.button(emoji.GetEmoji("download")+" Download as PNG", s.focus.Is(demoDownload)),
		st.Subheader.Render("Embed Code (Copy & Paste):"),
		lipgloss.JoinHorizontal(lipgloss.Center,
			st.Code.Width(min(w-12, 80)).Render(links.EmbedCode()), " ",
			st.button(emoji.GetEmoji("copy"), s.focus.Is(demoCopyEmbed))),
	)

	cta := st.Card.Width(w).Align(lipgloss.Center).Render(lipgloss.JoinVertical(lipgloss.Center,
		st.Hero.Render("Ready to Start Collecting Testimonials?"),
		st.Muted.Render("Join hundreds of freelancers and agencies already using TestimonialHero"),
		lipgloss.JoinHorizontal(lipgloss.Center,
			st.field("Email", s.email.View(), s.focus.Is(demoEmail)),
			"  ",
			st.button("Start Free Now", s.focus.Is(demoStart)),
		),
		st.Muted.Render("No credit card required • Setup in under 60 seconds"),
	))

	return lipgloss.JoinVertical(lipgloss.Left,
		header, "", intro, "", clientMail, linkCard,
		st.Subheader.Render("2. What You Get Back"), sample, actions, "", cta)
}

func (s *demoScreen) sampleCard(width int) string {
	st := s.styles
	t := s.sample
	return st.Card.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top,
			st.Brand.Render("("+t.Initials()+")"), " ",
			lipgloss.JoinVertical(lipgloss.Left, st.Body.Bold(true).Render(t.Name), st.Muted.Render(t.Company)),
			"  ", st.stars(t.Rating)),
		"",
		st.Quote.Width(width-6).Render(fmt.Sprintf("\"%s\"", t.Quote)),
		"",
		st.Muted.Render("Testimonial collected via TestimonialHero"),
	))
}

func (s *demoScreen) Help() string {
	return "tab: next • enter: select • esc: back • ctrl+x: dismiss • ctrl+c: quit"
}
