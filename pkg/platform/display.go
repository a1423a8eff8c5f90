// Package platform describes the host display the widgets are drawn on.
package platform

// baselineDensity is the density at which one device-independent unit equals one pixel.
const baselineDensity = 1.0

// DisplayMetrics carries the host display's density factor.
type DisplayMetrics struct {
	// Density is the number of physical pixels per device-independent unit.
	Density float64
}

// DefaultDisplayMetrics returns metrics for a baseline-density display.
func DefaultDisplayMetrics() DisplayMetrics {
	return DisplayMetrics{Density: baselineDensity}
}

// ToPixels converts device-independent units to fractional pixels.
// A non-positive density is treated as the baseline.
func (m DisplayMetrics) ToPixels(dp float64) float64 {
	d := m.Density
	if d <= 0 {
		d = baselineDensity
	}
	return dp * d
}

// DpToPx converts device-independent units to whole pixels, truncating.
func (m DisplayMetrics) DpToPx(dp float64) int {
	return int(m.ToPixels(dp))
}
