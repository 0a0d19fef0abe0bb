package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

const keyHelp = `# Keys

| Key | Action |
|---|---|
| tab / shift+tab | move focus |
| enter | activate the focused control |
| esc | back to the landing page |
| ctrl+s | submit the testimonial form |
| 1-5, left/right | pick a rating |
| 1-4 | switch dashboard tab |
| ctrl+x | dismiss the notification |
| ctrl+c | quit |
`

// markdownRenderer renders static copy with glamour, caching per width
type markdownRenderer struct {
	width    int
	cache    map[string]string
	renderer *glamour.TermRenderer
}

func newMarkdownRenderer() *markdownRenderer {
	return &markdownRenderer{cache: make(map[string]string)}
}

// Render returns md styled for width. If glamour fails the source text is
// returned unchanged.
func (r *markdownRenderer) Render(md string, width int) string {
	if width != r.width || r.renderer == nil {
		r.width = width
		r.cache = make(map[string]string)
		r.renderer = nil

		style := glamour.WithAutoStyle()
		if IsColorDisabled() {
			style = glamour.WithStylePath("notty")
		}
		renderer, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(width))
		if err != nil {
			return md
		}
		r.renderer = renderer
	}

	if out, ok := r.cache[md]; ok {
		return out
	}
	out, err := r.renderer.Render(md)
	if err != nil {
		return md
	}
	out = strings.Trim(out, "\n")
	r.cache[md] = out
	return out
}
