package theme

import "github.com/asiatravel/volumeview/pkg/graphics"

// Brightness indicates whether a theme is light or dark.
type Brightness int

const (
	// BrightnessLight is a light theme.
	BrightnessLight Brightness = iota
	// BrightnessDark is a dark theme.
	BrightnessDark
)

// ColorScheme is the palette widgets resolve their defaults from.
type ColorScheme struct {
	Primary         graphics.Color
	Secondary       graphics.Color
	Accent          graphics.Color
	Surface         graphics.Color
	SurfaceVariant  graphics.Color
	OnSurface       graphics.Color
	Outline         graphics.Color
	TrackBackground graphics.Color
	Background      graphics.Color
	OnBackground    graphics.Color
}

// LightColorScheme returns the default light palette.
func LightColorScheme() ColorScheme {
	return ColorScheme{
		Primary:         graphics.ColorBlue,
		Secondary:       graphics.ColorLightGray,
		Accent:          graphics.ColorGreen,
		Surface:         graphics.ColorWhite,
		SurfaceVariant:  graphics.RGB(0xEE, 0xEE, 0xEE),
		OnSurface:       graphics.ColorBlack,
		Outline:         graphics.ColorLightGray,
		TrackBackground: graphics.ColorGray,
		Background:      graphics.ColorWhite,
		OnBackground:    graphics.ColorBlack,
	}
}

// DarkColorScheme returns the default dark palette.
func DarkColorScheme() ColorScheme {
	return ColorScheme{
		Primary:         graphics.RGB(0x44, 0x8A, 0xFF),
		Secondary:       graphics.ColorDarkGray,
		Accent:          graphics.RGB(0x69, 0xF0, 0xAE),
		Surface:         graphics.RGB(0x12, 0x12, 0x12),
		SurfaceVariant:  graphics.RGB(0x2C, 0x2C, 0x2C),
		OnSurface:       graphics.ColorWhite,
		Outline:         graphics.ColorDarkGray,
		TrackBackground: graphics.RGB(0x3A, 0x3A, 0x3A),
		Background:      graphics.ColorBlack,
		OnBackground:    graphics.ColorWhite,
	}
}

// Named resolves a resource-style color name against the scheme.
// The second result is false for unknown names.
func (c ColorScheme) Named(name string) (graphics.Color, bool) {
	switch name {
	case "colorPrimary", "primary":
		return c.Primary, true
	case "colorSecondary", "secondary":
		return c.Secondary, true
	case "colorAccent", "accent":
		return c.Accent, true
	case "colorSurface", "surface":
		return c.Surface, true
	case "colorGray", "trackBackground":
		return c.TrackBackground, true
	case "colorBackground", "background":
		return c.Background, true
	case "colorOutline", "outline":
		return c.Outline, true
	default:
		return 0, false
	}
}
