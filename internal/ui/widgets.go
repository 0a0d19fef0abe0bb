package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/yildizm/testimonialhero/internal/emoji"
)

const (
	minContentWidth = 40
	maxContentWidth = 100
)

// contentWidth clamps the terminal width to a readable column
func contentWidth(width int) int {
	if width <= 0 {
		return 80
	}
	return max(minContentWidth, min(width-4, maxContentWidth))
}

// newInput returns a single-line field. Input is never truncated.
func newInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "> "
	ti.CharLimit = 0
	ti.Width = 40
	return ti
}

func newTextArea(placeholder string, height int) textarea.Model {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.SetHeight(height)
	ta.SetWidth(60)
	return ta
}

func (s *Styles) button(label string, focused bool) string {
	if focused {
		return s.ButtonFocused.Render(label)
	}
	return s.Button.Render(label)
}

func (s *Styles) field(label, body string, focused bool) string {
	box := s.Input
	if focused {
		box = s.InputFocused
	}
	return lipgloss.JoinVertical(lipgloss.Left, s.Subheader.Render(label), box.Render(body))
}

// brandBar renders the product header with optional trailing controls
func (s *Styles) brandBar(width int, left string, right ...string) string {
	brand := s.Brand.Render(emoji.GetEmoji("star") + " TestimonialHero")
	if left != "" {
		brand = lipgloss.JoinHorizontal(lipgloss.Center, left, "  ", brand)
	}
	tail := strings.Join(right, " ")
	gap := width - lipgloss.Width(brand) - lipgloss.Width(tail)
	if gap < 1 {
		gap = 1
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, brand, strings.Repeat(" ", gap), tail)
}

func (s *Styles) stars(rating int) string {
	return s.Stars.Render(emoji.Stars(rating))
}

// ratingPicker renders five stars with the unselected ones muted
func (s *Styles) ratingPicker(rating int) string {
	filled := s.Stars.Render(strings.Repeat("★", rating))
	empty := s.Muted.Render(strings.Repeat("☆", 5-rating))
	return filled + empty
}
