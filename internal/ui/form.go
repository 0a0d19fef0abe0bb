package ui

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/yildizm/testimonialhero/internal/emoji"
	"github.com/yildizm/testimonialhero/internal/forms"
)

// Form controls, in screen order
const (
	formBack    = "back"
	formRating  = "rating"
	formName    = "name"
	formCompany = "company"
	formEmail   = "email"
	formQuote   = "quote"
	formSubmit  = "submit"
	formHome    = "home"
)

type formScreen struct {
	deps   *Deps
	styles *Styles
	focus  focusRing

	submission forms.Submission
	name       textinput.Model
	company    textinput.Model
	email      textinput.Model
	quote      textarea.Model
}

func newFormScreen(deps *Deps, styles *Styles) *formScreen {
	s := &formScreen{
		deps:       deps,
		styles:     styles,
		focus:      newFocusRing(formBack, formRating, formName, formCompany, formEmail, formQuote, formSubmit),
		submission: forms.NewSubmission(),
		name:       newInput("John Smith"),
		company:    newInput("Your Company Name"),
		email:      newInput("john@company.com"),
		quote: newTextArea("Tell us about your experience working with us. "+
			"What did you like most? How did we help your business?", 6),
	}
	s.focus.Focus(formRating)
	return s
}

func (s *formScreen) Init() tea.Cmd {
	return textinput.Blink
}

func (s *formScreen) syncFocus() {
	inputs := map[string]*textinput.Model{formName: &s.name, formCompany: &s.company, formEmail: &s.email}
	for id, in := range inputs {
		if s.focus.Is(id) {
			in.Focus()
		} else {
			in.Blur()
		}
	}
	if s.focus.Is(formQuote) {
		s.quote.Focus()
	} else {
		s.quote.Blur()
	}
}

func (s *formScreen) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return s.updateFocused(msg)
	}

	if s.focus.handleMove(key) {
		s.syncFocus()
		return nil
	}

	if s.submission.Submitted {
		if key.String() == "enter" {
			_ = s.deps.Router.Back()
		}
		return nil
	}

	switch key.String() {
	case "ctrl+s":
		s.submit()
		return nil
	case "enter":
		// enter writes a newline inside the testimonial text
		if !s.focus.Is(formQuote) {
			s.activate()
			return nil
		}
	}

	if s.focus.Is(formRating) {
		s.updateRating(key)
		return nil
	}
	return s.updateFocused(msg)
}

func (s *formScreen) updateRating(key tea.KeyMsg) {
	switch k := key.String(); k {
	case "left", "h", "-":
		s.submission = s.submission.SetRating(s.submission.Rating - 1)
	case "right", "l", "+":
		s.submission = s.submission.SetRating(s.submission.Rating + 1)
	case "1", "2", "3", "4", "5":
		s.submission = s.submission.SetRating(int(k[0] - '0'))
	}
}

func (s *formScreen) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch s.focus.Current() {
	case formName:
		s.name, cmd = s.name.Update(msg)
	case formCompany:
		s.company, cmd = s.company.Update(msg)
	case formEmail:
		s.email, cmd = s.email.Update(msg)
	case formQuote:
		s.quote, cmd = s.quote.Update(msg)
	}
	return cmd
}

func (s *formScreen) activate() {
	switch s.focus.Current() {
	case formBack:
		_ = s.deps.Router.Back()
	case formName, formCompany, formEmail, formSubmit:
		s.submit()
	}
}

// submit copies the inputs into the submission and validates it
func (s *formScreen) submit() {
	draft := s.submission
	draft.Name = s.name.Value()
	draft.Company = s.company.Value()
	draft.Email = s.email.Value()
	draft.Quote = s.quote.Value()

	accepted, err := draft.Submit()
	s.submission = accepted
	if err != nil {
		s.deps.Logger.Info("testimonial rejected", zap.Error(err))
		s.deps.reject(err)
		return
	}

	s.deps.Logger.Info("testimonial submitted",
		zap.String("reference", accepted.Reference),
		zap.Int("rating", accepted.Rating))
	s.deps.Notices.Notify(forms.SubmittedNotification)
	s.focus = newFocusRing(formHome)
	s.syncFocus()
}

func (s *formScreen) View(width int) string {
	w := contentWidth(width)
	if s.submission.Submitted {
		return s.thankYouView(w)
	}

	st := s.styles
	header := st.brandBar(w, "", st.button(emoji.GetEmoji("back")+" Back", s.focus.Is(formBack)))

	intro := lipgloss.JoinVertical(lipgloss.Center,
		st.Title.Render("Share Your Experience"),
		st.Muted.Width(min(w, 70)).Align(lipgloss.Center).Render(
			"Your feedback means the world to us and helps other potential clients make informed decisions."),
	)

	ratingBox := st.Input
	if s.focus.Is(formRating) {
		ratingBox = st.InputFocused
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		st.Subheader.Render("How would you rate your experience?"),
		ratingBox.Render(st.ratingPicker(s.submission.Rating)),
		st.field("Your Name *", s.name.View(), s.focus.Is(formName)),
		st.field("Company (Optional)", s.company.View(), s.focus.Is(formCompany)),
		st.field("Email (Optional)", s.email.View(), s.focus.Is(formEmail)),
		st.field("Your Testimonial *", s.quote.View(), s.focus.Is(formQuote)),
		st.Muted.Render("Feel free to mention specific results, what stood out, or how we exceeded your expectations."),
		"",
		st.button(emoji.GetEmoji("mail")+" Submit Testimonial", s.focus.Is(formSubmit)),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		header, "", intro, "",
		st.Card.Width(w).Render(body),
		st.Muted.Render("Your information is secure and will only be used for testimonial purposes"),
	)
}

func (s *formScreen) thankYouView(width int) string {
	st := s.styles
	panel := lipgloss.JoinVertical(lipgloss.Center,
		st.Success.Render(emoji.GetEmoji("success")+" Thank You!"),
		"",
		st.Body.Width(min(width, 50)).Align(lipgloss.Center).Render(
			"Your testimonial has been sent successfully. We really appreciate your feedback!"),
		"",
		st.button(emoji.GetEmoji("back")+" Back to TestimonialHero", s.focus.Is(formHome)),
	)
	return st.Card.Render(panel)
}

func (s *formScreen) Help() string {
	if s.submission.Submitted {
		return "enter: back to start • ctrl+c: quit"
	}
	return "tab: next • ←/→ or 1-5: rating • ctrl+s: submit • esc: back • ctrl+c: quit"
}
