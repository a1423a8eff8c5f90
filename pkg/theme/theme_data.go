// Package theme provides the palette and per-widget defaults.
package theme

// ThemeData contains all theme configuration for an application.
type ThemeData struct {
	// ColorScheme defines the color palette.
	ColorScheme ColorScheme

	// Brightness indicates if this is a light or dark theme.
	Brightness Brightness

	// VolumeTheme overrides the VolumeView defaults; derived from ColorScheme if nil.
	VolumeTheme *VolumeThemeData
}

// DefaultLightTheme returns the default light theme.
func DefaultLightTheme() *ThemeData {
	return &ThemeData{
		ColorScheme: LightColorScheme(),
		Brightness:  BrightnessLight,
	}
}

// DefaultDarkTheme returns the default dark theme.
func DefaultDarkTheme() *ThemeData {
	return &ThemeData{
		ColorScheme: DarkColorScheme(),
		Brightness:  BrightnessDark,
	}
}

// CopyWith returns a new ThemeData with the specified fields overridden.
func (t *ThemeData) CopyWith(colorScheme *ColorScheme, brightness *Brightness) *ThemeData {
	result := &ThemeData{
		ColorScheme: t.ColorScheme,
		Brightness:  t.Brightness,
		VolumeTheme: t.VolumeTheme,
	}
	if colorScheme != nil {
		result.ColorScheme = *colorScheme
	}
	if brightness != nil {
		result.Brightness = *brightness
	}
	return result
}

// VolumeThemeOf returns the volume view theme, deriving from ColorScheme if not set.
// A nil receiver yields the light defaults.
func (t *ThemeData) VolumeThemeOf() VolumeThemeData {
	if t == nil {
		return DefaultVolumeTheme(LightColorScheme())
	}
	if t.VolumeTheme != nil {
		return *t.VolumeTheme
	}
	return DefaultVolumeTheme(t.ColorScheme)
}
