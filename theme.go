package foodlink

// Theme defines semantic color mappings using ANSI color indices (0-15).
// The user's terminal theme determines the actual RGB values, so the app
// automatically matches any color scheme.
type Theme struct {
	UserMsg   int // User message accent
	Assistant int // Assistant message accent
	Error     int // Error messages, closed badges
	Success   int // Open badges, pickup available
	Warning   int // Requirements
	Muted     int // Status bar, placeholders
	Accent    int // Headings, links
	Tag       int // Offering and distribution tags
}

// DefaultTheme returns the default ANSI color mapping.
func DefaultTheme() Theme {
	return Theme{
		UserMsg:   4,
		Assistant: 6,
		Error:     1,
		Success:   2,
		Warning:   3,
		Muted:     8,
		Accent:    5,
		Tag:       12,
	}
}
