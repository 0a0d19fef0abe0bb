package config

// SampleConfig returns a fully documented configuration file
func SampleConfig() string {
	return `# TestimonialHero configuration
version: "1.0"

ui:
  # Color theme: default, high-contrast, minimal
  theme: default
  # Color output: auto, always, never
  color_mode: auto
  # Use ASCII fallbacks instead of emoji (useful for Windows terminals)
  no_emoji: false
  # Run the interface in the alternate screen buffer
  alt_screen: true

testimonials:
  # Where dashboard testimonials come from: mock, file
  source: mock
  # YAML fixture used when source is file
  path: ""
  # Reload the fixture whenever it changes on disk
  watch: false
  # Day the "This Month" count is taken against (YYYY-MM-DD); empty uses today
  reference_date: "2024-01-20"

links:
  # Host used for collection links and embed code
  host: testimonialhero.app
  # Slug of the demo collection form
  demo_slug: demo123

logging:
  # Level: debug, info, warn, error
  level: info
  # Log file; empty disables logging
  file: ""
`
}

// MinimalSampleConfig returns a compact configuration file
func MinimalSampleConfig() string {
	return `version: "1.0"
ui:
  theme: default
testimonials:
  source: mock
`
}
