package theme

import "github.com/asiatravel/volumeview/pkg/graphics"

// VolumeThemeData defines default styling for VolumeView widgets.
// Lengths are in device-independent units.
type VolumeThemeData struct {
	// HandleColor is the fill of the draggable circle.
	HandleColor graphics.Color
	// FilledTrackColor is the segment left of the handle.
	FilledTrackColor graphics.Color
	// UnfilledTrackColor is the segment right of the handle.
	UnfilledTrackColor graphics.Color
	// TrackBackgroundColor fills the rounded track behind both segments.
	TrackBackgroundColor graphics.Color
	// HandleRadius is the default handle radius.
	HandleRadius float64
	// Width is the preferred width when the parent leaves it open.
	Width float64
	// Height is the preferred height when the parent leaves it open.
	Height float64
}

// DefaultVolumeTheme returns VolumeThemeData derived from a ColorScheme.
//
// Handle, fill and unfilled colors keep the widget's classic green, blue and
// light gray regardless of scheme; only the track background is themed.
func DefaultVolumeTheme(colors ColorScheme) VolumeThemeData {
	return VolumeThemeData{
		HandleColor:          graphics.ColorGreen,
		FilledTrackColor:     graphics.ColorBlue,
		UnfilledTrackColor:   graphics.ColorLightGray,
		TrackBackgroundColor: colors.TrackBackground,
		HandleRadius:         10,
		Width:                220,
		Height:               50,
	}
}
