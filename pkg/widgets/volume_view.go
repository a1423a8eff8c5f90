package widgets

import (
	"math"

	"github.com/asiatravel/volumeview/pkg/errors"
	"github.com/asiatravel/volumeview/pkg/gestures"
	"github.com/asiatravel/volumeview/pkg/graphics"
	"github.com/asiatravel/volumeview/pkg/layout"
	"github.com/asiatravel/volumeview/pkg/platform"
	"github.com/asiatravel/volumeview/pkg/theme"
)

// VolumeView is a horizontal slider drawn as a rounded track with a
// circular handle. The segment left of the handle uses FilledColor and the
// segment right of it UnfilledColor.
//
// Zero-valued fields fall back to the theme's VolumeThemeData, so a fully
// transparent color (graphics.ColorTransparent) cannot be set and is
// replaced by the theme default. A non-positive, NaN or infinite
// HandleRadius also uses the default. Lengths are in pixels; use
// platform.DisplayMetrics to convert from device-independent units.
type VolumeView struct {
	// HandleColor is the fill of the draggable circle.
	HandleColor graphics.Color
	// FilledColor is the track segment left of the handle.
	FilledColor graphics.Color
	// UnfilledColor is the track segment right of the handle.
	UnfilledColor graphics.Color
	// HandleRadius is the handle radius in pixels.
	HandleRadius float64
	// StartValue is the initial handle position in pixels.
	StartValue float64
	// ReleaseEndsDrag returns the view to idle when the pointer lifts.
	// By default the drag persists until the next touch.
	ReleaseEndsDrag bool
}

// CreateRenderObject resolves defaults against the theme and display and
// returns the render object hosts lay out, paint and feed pointers to.
// A nil theme uses the light defaults.
func (v VolumeView) CreateRenderObject(td *theme.ThemeData, metrics platform.DisplayMetrics) *RenderVolumeView {
	volumeTheme := td.VolumeThemeOf()

	handleColor := v.HandleColor
	if handleColor == 0 {
		handleColor = volumeTheme.HandleColor
	}
	filledColor := v.FilledColor
	if filledColor == 0 {
		filledColor = volumeTheme.FilledTrackColor
	}
	unfilledColor := v.UnfilledColor
	if unfilledColor == 0 {
		unfilledColor = volumeTheme.UnfilledTrackColor
	}
	radius := v.HandleRadius
	if !(radius > 0) || math.IsInf(radius, 0) {
		radius = float64(metrics.DpToPx(volumeTheme.HandleRadius))
	}

	trackPaint := graphics.DefaultPaint()
	trackPaint.Color = volumeTheme.TrackBackgroundColor

	handlePaint := graphics.DefaultPaint()
	handlePaint.Color = handleColor

	filledPaint := graphics.DefaultPaint()
	filledPaint.Color = filledColor
	filledPaint.StrokeWidth = radius / 2

	unfilledPaint := filledPaint
	unfilledPaint.Color = unfilledColor

	transitions := &stickyTransitions
	if v.ReleaseEndsDrag {
		transitions = &releasingTransitions
	}

	r := &RenderVolumeView{
		handleRadius: radius,
		preferred: graphics.Size{
			Width:  float64(metrics.DpToPx(volumeTheme.Width)),
			Height: float64(metrics.DpToPx(volumeTheme.Height)),
		},
		transitions:   transitions,
		trackPaint:    trackPaint,
		handlePaint:   handlePaint,
		filledPaint:   filledPaint,
		unfilledPaint: unfilledPaint,
		value:         startValue(v.StartValue),
	}
	r.SetSelf(r)
	return r
}

// startValue converts a configured start position to a handle value.
// Values far outside any plausible width saturate instead of wrapping and
// NaN starts at 0. Layout does not clamp it; the first pointer event does.
func startValue(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	return int(min(max(v, math.MinInt32), math.MaxInt32))
}

// RenderVolumeView holds the layout and interaction state of a VolumeView.
//
// It is driven from a single UI thread: layout, paint and pointer callbacks
// must not run concurrently.
type RenderVolumeView struct {
	layout.RenderBoxBase

	handleRadius float64
	preferred    graphics.Size
	transitions  *transitionTable

	trackPaint    graphics.Paint
	handlePaint   graphics.Paint
	filledPaint   graphics.Paint
	unfilledPaint graphics.Paint

	value        int
	maxValue     int
	trackBounds  graphics.Rect
	lastPointerX float64
	mode         DragMode
}

// Value returns the handle position in pixels from the left edge.
func (r *RenderVolumeView) Value() int {
	return r.value
}

// MaxValue returns the rightmost reachable handle position.
func (r *RenderVolumeView) MaxValue() int {
	return r.maxValue
}

// Mode returns the current drag mode.
func (r *RenderVolumeView) Mode() DragMode {
	return r.mode
}

// HandleRadius returns the resolved handle radius in pixels.
func (r *RenderVolumeView) HandleRadius() float64 {
	return r.handleRadius
}

// TrackBounds returns the rectangle the rounded track is drawn into.
func (r *RenderVolumeView) TrackBounds() graphics.Rect {
	return r.trackBounds
}

// PreferredSize returns the size used on axes the parent leaves open.
func (r *RenderVolumeView) PreferredSize() graphics.Size {
	return r.preferred
}

// PerformLayout takes the exact extent on tight axes and the preferred
// extent, clamped to the bounds, on the others.
func (r *RenderVolumeView) PerformLayout() {
	r.SetSize(r.Constraints().Constrain(r.preferred))
}

// OnSizeChanged recomputes the reachable range and the track rectangle.
//
// The current value is not reclamped: a value beyond a shrunken range stays
// until the next pointer event pulls it back in. A view narrower than one
// handle diameter gets a range of zero and a pinned handle.
func (r *RenderVolumeView) OnSizeChanged(_, newSize graphics.Size) {
	width := math.Trunc(newSize.Width)
	r.maxValue = max(0, int(width-2*r.handleRadius))
	r.trackBounds = graphics.RectFromLTWH(0, 0, width, math.Trunc(newSize.Height))
}

// HandlePointer applies a pointer event in local coordinates.
func (r *RenderVolumeView) HandlePointer(event gestures.PointerEvent) {
	defer errors.Recover("widgets.RenderVolumeView.HandlePointer")

	x := event.Position.X
	switch event.Phase {
	case gestures.PointerPhaseDown:
		down := ResolveTouchDown(x, r.value, r.handleRadius, r.maxValue)
		r.value = down.Value
		r.lastPointerX = down.Anchor
		if down.Jumped {
			r.MarkNeedsPaint()
		}
	case gestures.PointerPhaseMove:
		if r.mode == DragModeDragging {
			r.value = ResolveDrag(r.value, r.lastPointerX, x, r.maxValue)
			r.MarkNeedsPaint()
			r.lastPointerX = x
		}
	}
	r.mode = r.transitions.next(r.mode, event.Phase)
}

// Paint draws the track, the filled segment, the handle and the unfilled
// segment, in that order. It reads state only.
func (r *RenderVolumeView) Paint(ctx *layout.PaintContext) {
	defer errors.Recover("widgets.RenderVolumeView.Paint")

	canvas := ctx.Canvas
	height := int(r.trackBounds.Height())
	corner := float64(height / 5)
	centerY := float64(height / 2)
	value := float64(r.value)
	radius := r.handleRadius

	canvas.DrawRRect(graphics.RRectFromRectAndRadius(r.trackBounds, graphics.CircularRadius(corner)), r.trackPaint)
	canvas.DrawLine(graphics.Offset{X: 0, Y: centerY}, graphics.Offset{X: value, Y: centerY}, r.filledPaint)
	canvas.DrawCircle(graphics.Offset{X: value + radius, Y: centerY}, radius, r.handlePaint)
	canvas.DrawLine(graphics.Offset{X: value + 2*radius, Y: centerY}, graphics.Offset{X: r.trackBounds.Right, Y: centerY}, r.unfilledPaint)
}

// DebugProperties reports the interaction state for inspectors.
func (r *RenderVolumeView) DebugProperties() map[string]any {
	return map[string]any{
		"value":        r.value,
		"maxValue":     r.maxValue,
		"mode":         r.mode.String(),
		"handleRadius": r.handleRadius,
	}
}
