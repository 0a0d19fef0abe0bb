package testimonial

import (
	"fmt"
	"strings"
)

// Links derives the shareable URLs for the product
type Links struct {
	Host     string
	DemoSlug string
}

// DefaultLinks returns the production host and demo slug
func DefaultLinks() Links {
	return Links{Host: "testimonialhero.app", DemoSlug: "demo123"}
}

// DemoForm is the demo collection link, without scheme
func (l Links) DemoForm() string {
	return fmt.Sprintf("%s/submit/%s", l.Host, l.DemoSlug)
}

// EmbedCode is the iframe snippet for the demo widget
func (l Links) EmbedCode() string {
	return fmt.Sprintf(`<iframe src="https://%s/embed/%s" width="400" height="300" frameborder="0"></iframe>`, l.Host, l.DemoSlug)
}

// Personal is the collection link of the user identified by email, without
// scheme. The slug is the part before the first '@' followed by "123".
func (l Links) Personal(email string) string {
	local, _, _ := strings.Cut(email, "@")
	return fmt.Sprintf("%s/submit/%s123", l.Host, local)
}

// WithScheme prefixes a link with https://
func WithScheme(link string) string {
	return "https://" + link
}
