package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/yildizm/testimonialhero/internal/emoji"
	"github.com/yildizm/testimonialhero/internal/notify"
)

// renderToast draws the visible notification, or "" when there is none
func renderToast(styles *Styles, center *notify.Center, width int) string {
	n, ok := center.Current()
	if !ok {
		return ""
	}

	style := styles.Toast
	icon := emoji.GetEmoji("success")
	if n.Severity == notify.SeverityDestructive {
		style = styles.ToastDestructive
		icon = emoji.GetEmoji("error")
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		styles.Body.Bold(true).Render(icon+" "+n.Title),
		styles.Muted.Render(n.Description),
		styles.Muted.Faint(true).Render("ctrl+x to dismiss"),
	)
	return style.MaxWidth(width).Render(body)
}
