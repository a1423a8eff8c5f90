// Package gestures defines the pointer events hosts deliver to render objects.
package gestures

import (
	"fmt"

	"github.com/asiatravel/volumeview/pkg/graphics"
)

// PointerPhase identifies where a pointer event sits in its gesture.
type PointerPhase int

const (
	// PointerPhaseDown is the first contact.
	PointerPhaseDown PointerPhase = iota
	// PointerPhaseMove is a position change while in contact.
	PointerPhaseMove
	// PointerPhaseUp is the pointer leaving the surface.
	PointerPhaseUp
	// PointerPhaseCancel is sent when the host aborts the gesture.
	PointerPhaseCancel
)

// String returns a human-readable representation of the phase.
func (p PointerPhase) String() string {
	switch p {
	case PointerPhaseDown:
		return "down"
	case PointerPhaseMove:
		return "move"
	case PointerPhaseUp:
		return "up"
	case PointerPhaseCancel:
		return "cancel"
	default:
		return fmt.Sprintf("PointerPhase(%d)", int(p))
	}
}

// PointerEvent is a single pointer sample in the receiver's local coordinates.
type PointerEvent struct {
	PointerID int64
	Position  graphics.Offset
	Phase     PointerPhase
}

// Translated returns a copy of the event shifted by -offset, converting a
// parent-space position into a child's local space.
func (e PointerEvent) Translated(offset graphics.Offset) PointerEvent {
	e.Position = graphics.Offset{X: e.Position.X - offset.X, Y: e.Position.Y - offset.Y}
	return e
}
