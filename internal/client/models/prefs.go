package models

// FontSize is one of three ordered display scale levels.
type FontSize string

const (
	FontSizeSmall  FontSize = "small"
	FontSizeNormal FontSize = "normal"
	FontSizeLarge  FontSize = "large"
)

// Valid reports whether f is one of the known levels.
func (f FontSize) Valid() bool {
	switch f {
	case FontSizeSmall, FontSizeNormal, FontSizeLarge:
		return true
	}
	return false
}

// Factor returns the multiplier applied to a base font size.
func (f FontSize) Factor() float64 {
	switch f {
	case FontSizeSmall:
		return 0.9
	case FontSizeLarge:
		return 1.15
	default:
		return 1.0
	}
}

// Preferences are the display settings persisted independently of the
// session.
type Preferences struct {
	DarkMode bool     `json:"darkMode"`
	FontSize FontSize `json:"fontSize"`
}

// DefaultPreferences are the first-run values: dark theme, normal scale.
func DefaultPreferences() Preferences {
	return Preferences{DarkMode: true, FontSize: FontSizeNormal}
}

// Scale applies the preference's font factor to a base size.
func (p Preferences) Scale(base float64) float64 {
	return base * p.FontSize.Factor()
}
