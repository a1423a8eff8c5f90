package widgets_test

import (
	"github.com/asiatravel/volumeview/pkg/gestures"
	"github.com/asiatravel/volumeview/pkg/graphics"
)

func moveEvent(x float64) gestures.PointerEvent {
	return gestures.PointerEvent{Position: graphics.Offset{X: x, Y: 1}, Phase: gestures.PointerPhaseMove}
}
