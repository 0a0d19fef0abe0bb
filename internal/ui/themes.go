package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme represents a color theme for the TUI
type Theme struct {
	Name string

	// Brand colors
	Primary   lipgloss.AdaptiveColor
	Secondary lipgloss.AdaptiveColor
	Accent    lipgloss.AdaptiveColor

	// Semantic colors
	Success lipgloss.AdaptiveColor
	Error   lipgloss.AdaptiveColor
	Star    lipgloss.AdaptiveColor

	// UI colors
	Border     lipgloss.AdaptiveColor
	Foreground lipgloss.AdaptiveColor
	Muted      lipgloss.AdaptiveColor
	Selected   lipgloss.AdaptiveColor
	Surface    lipgloss.AdaptiveColor
}

// buildTheme creates a theme from [light, dark] pairs
func buildTheme(name string, primary, secondary, accent, success, errorColor, star, border, foreground, muted, selected, surface [2]string) Theme {
	return Theme{
		Name:       name,
		Primary:    lipgloss.AdaptiveColor{Light: primary[0], Dark: primary[1]},
		Secondary:  lipgloss.AdaptiveColor{Light: secondary[0], Dark: secondary[1]},
		Accent:     lipgloss.AdaptiveColor{Light: accent[0], Dark: accent[1]},
		Success:    lipgloss.AdaptiveColor{Light: success[0], Dark: success[1]},
		Error:      lipgloss.AdaptiveColor{Light: errorColor[0], Dark: errorColor[1]},
		Star:       lipgloss.AdaptiveColor{Light: star[0], Dark: star[1]},
		Border:     lipgloss.AdaptiveColor{Light: border[0], Dark: border[1]},
		Foreground: lipgloss.AdaptiveColor{Light: foreground[0], Dark: foreground[1]},
		Muted:      lipgloss.AdaptiveColor{Light: muted[0], Dark: muted[1]},
		Selected:   lipgloss.AdaptiveColor{Light: selected[0], Dark: selected[1]},
		Surface:    lipgloss.AdaptiveColor{Light: surface[0], Dark: surface[1]},
	}
}

// Available themes
var (
	DefaultTheme = buildTheme("default",
		[2]string{"#2563EB", "#60A5FA"}, [2]string{"#4B5563", "#9CA3AF"}, [2]string{"#4F46E5", "#818CF8"},
		[2]string{"#16A34A", "#4ADE80"}, [2]string{"#DC2626", "#F87171"}, [2]string{"#EAB308", "#FACC15"},
		[2]string{"#BFDBFE", "#1E3A8A"}, [2]string{"#111827", "#F9FAFB"}, [2]string{"#6B7280", "#9CA3AF"},
		[2]string{"#DBEAFE", "#1E40AF"}, [2]string{"#EFF6FF", "#172554"})

	HighContrastTheme = buildTheme("high-contrast",
		[2]string{"#000000", "#FFFFFF"}, [2]string{"#333333", "#DDDDDD"}, [2]string{"#000080", "#8080FF"},
		[2]string{"#006600", "#00FF00"}, [2]string{"#CC0000", "#FF4444"}, [2]string{"#996600", "#FFFF00"},
		[2]string{"#000000", "#FFFFFF"}, [2]string{"#000000", "#FFFFFF"}, [2]string{"#444444", "#BBBBBB"},
		[2]string{"#FFFF00", "#444444"}, [2]string{"#FFFFFF", "#000000"})

	MinimalTheme = buildTheme("minimal",
		[2]string{"#2D3748", "#E2E8F0"}, [2]string{"#718096", "#A0AEC0"}, [2]string{"#4A5568", "#CBD5E0"},
		[2]string{"#2F855A", "#68D391"}, [2]string{"#C53030", "#FC8181"}, [2]string{"#B7791F", "#F6E05E"},
		[2]string{"#E2E8F0", "#2D3748"}, [2]string{"#2D3748", "#F7FAFC"}, [2]string{"#A0AEC0", "#718096"},
		[2]string{"#EDF2F7", "#2D3748"}, [2]string{"#F7FAFC", "#1A202C"})
)

// Current active theme
var currentTheme = DefaultTheme

// GetTheme returns the current active theme
func GetTheme() Theme {
	return currentTheme
}

// SetTheme sets the active theme
func SetTheme(theme *Theme) {
	currentTheme = *theme
}

// SetThemeByName sets the theme by name
func SetThemeByName(name string) bool {
	switch name {
	case "default", "":
		SetTheme(&DefaultTheme)
		return true
	case "high-contrast":
		SetTheme(&HighContrastTheme)
		return true
	case "minimal":
		SetTheme(&MinimalTheme)
		return true
	default:
		return false
	}
}

var colorDisabled bool

// SetColorDisabled forces plain output regardless of NO_COLOR
func SetColorDisabled(disabled bool) {
	colorDisabled = disabled
}

// ApplyColorMode configures lipgloss for a ui.color_mode value. Borders and
// layout are kept when color is off.
func ApplyColorMode(mode string, noColor bool) {
	SetColorDisabled(noColor || mode == "never")
	switch {
	case IsColorDisabled():
		lipgloss.SetColorProfile(termenv.Ascii)
	case mode == "always":
		lipgloss.SetColorProfile(termenv.TrueColor)
	default:
		lipgloss.SetColorProfile(termenv.EnvColorProfile())
	}
}

// IsColorDisabled checks if colors should be disabled
func IsColorDisabled() bool {
	return colorDisabled || os.Getenv("NO_COLOR") != ""
}

// GetAvailableThemes returns list of available theme names
func GetAvailableThemes() []string {
	return []string{"default", "high-contrast", "minimal"}
}

// GetStyles builds the shared styles from the current theme
func GetStyles() *Styles {
	theme := GetTheme()

	return &Styles{
		Theme: theme,

		Brand: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		Title: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true).
			MarginBottom(1),

		Hero: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		Subheader: lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Bold(true),

		Body: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Quote: lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Italic(true),

		Stars: lipgloss.NewStyle().
			Foreground(theme.Star),

		Code: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Background(theme.Surface).
			Padding(0, 1),

		Button: lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		ButtonFocused: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Background(theme.Selected).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Primary).
			Padding(0, 1).
			Bold(true),

		Tab: lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Padding(0, 2),

		TabActive: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Background(theme.Selected).
			Padding(0, 2).
			Bold(true),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(1, 2),

		Input: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		InputFocused: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(theme.Primary).
			Padding(0, 1),

		Toast: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Success).
			Padding(0, 1),

		ToastDestructive: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(theme.Error).
			Foreground(theme.Error).
			Padding(0, 1),

		Success: lipgloss.NewStyle().
			Foreground(theme.Success).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error).
			Bold(true),
	}
}

// Styles contains all the styled components
type Styles struct {
	Theme Theme

	// Text
	Brand     lipgloss.Style
	Title     lipgloss.Style
	Hero      lipgloss.Style
	Subheader lipgloss.Style
	Body      lipgloss.Style
	Muted     lipgloss.Style
	Quote     lipgloss.Style
	Stars     lipgloss.Style
	Code      lipgloss.Style

	// Controls
	Button        lipgloss.Style
	ButtonFocused lipgloss.Style
	Tab           lipgloss.Style
	TabActive     lipgloss.Style
	Input         lipgloss.Style
	InputFocused  lipgloss.Style

	// Layout
	Card lipgloss.Style

	// Notifications
	Toast            lipgloss.Style
	ToastDestructive lipgloss.Style
	Success          lipgloss.Style
	Error            lipgloss.Style
}
