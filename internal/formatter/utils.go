package formatter

import (
	"fmt"
	"strings"
)

// formatRating renders an average rating with one decimal
func formatRating(avg float64) string {
	return fmt.Sprintf("%.1f", avg)
}

// ratingFraction maps a 1..5 rating onto 0..1 for bar rendering
func ratingFraction(rating int) float64 {
	if rating <= 0 {
		return 0
	}
	if rating >= 5 {
		return 1
	}
	return float64(rating) / 5
}

// singleLine collapses line breaks so a quote fits one table cell
func singleLine(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "\r", " ")
}

// escapeMarkdownCell keeps pipes from breaking a markdown table row
func escapeMarkdownCell(s string) string {
	return strings.ReplaceAll(singleLine(s), "|", "\\|")
}
