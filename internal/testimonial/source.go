package testimonial

// Source supplies the testimonials displayed by the dashboard. A real backend
// would implement it; this repository ships a static set and a YAML file.
type Source interface {
	List() ([]Testimonial, error)
}

// Static is a fixed in-memory source
type Static struct {
	records []Testimonial
}

// NewStatic creates a source serving records in order
func NewStatic(records ...Testimonial) *Static {
	cp := make([]Testimonial, len(records))
	copy(cp, records)
	return &Static{records: cp}
}

// List returns a copy of the records
func (s *Static) List() ([]Testimonial, error) {
	out := make([]Testimonial, len(s.records))
	copy(out, s.records)
	return out, nil
}

// Mock returns the sample records shown on a fresh dashboard
func Mock() *Static {
	return NewStatic(
		Testimonial{
			ID:      1,
			Name:    "Sarah Johnson",
			Company: "TechStart Inc.",
			Quote:   "Absolutely amazing work! The team delivered exactly what we needed and exceeded our expectations.",
			Rating:  5,
			Date:    mustDate("2024-01-15"),
		},
		Testimonial{
			ID:      2,
			Name:    "Mike Chen",
			Company: "Design Studio",
			Quote:   "Professional, fast, and incredible attention to detail. Our new website is performing amazingly.",
			Rating:  5,
			Date:    mustDate("2024-01-12"),
		},
	)
}

// Sample is the testimonial card used on the demo screen
func Sample() Testimonial {
	return Testimonial{
		Name:    "John Davis",
		Company: "CEO, Davis Consulting",
		Quote: "Working with this team was absolutely incredible. They delivered exactly what we needed, " +
			"on time and within budget. The attention to detail was outstanding, and our new website has " +
			"already increased our leads by 40%. I couldn't recommend them more highly!",
		Rating: 5,
	}
}

// SocialProof is a short endorsement shown on the landing screen
type SocialProof struct {
	Quote string
	Name  string
	Role  string
}

// SocialProofs returns the landing screen endorsements
func SocialProofs() []SocialProof {
	return []SocialProof{
		{
			Quote: "TestimonialHero made collecting client feedback effortless. I got 5 testimonials in my first week!",
			Name:  "Sarah Chen",
			Role:  "Freelance Designer",
		},
		{
			Quote: "The testimonial cards look so professional. My clients love how easy the process is.",
			Name:  "Mike Rodriguez",
			Role:  "Marketing Agency Owner",
		},
		{
			Quote: "Finally, a testimonial tool that just works. No complex setup, instant results.",
			Name:  "Emma Thompson",
			Role:  "Consultant",
		},
	}
}
