package widgets

import (
	"fmt"
	"math"

	"github.com/asiatravel/volumeview/pkg/gestures"
)

// DragMode is the interaction state of a VolumeView.
type DragMode int

const (
	// DragModeIdle ignores pointer moves. It is the initial state.
	DragModeIdle DragMode = iota
	// DragModeDragging repositions the handle on every pointer move.
	DragModeDragging
)

// String returns a human-readable representation of the mode.
func (m DragMode) String() string {
	switch m {
	case DragModeIdle:
		return "idle"
	case DragModeDragging:
		return "dragging"
	default:
		return fmt.Sprintf("DragMode(%d)", int(m))
	}
}

// TouchDown is the outcome of a pointer-down on a VolumeView.
type TouchDown struct {
	// Value is the handle position after the touch.
	Value int
	// Anchor is the pointer x that the next move delta is measured from.
	Anchor float64
	// Jumped reports whether the handle was moved to the touch point.
	Jumped bool
}

// ResolveTouchDown decides whether a touch at x grabs the handle or jumps it.
//
// A touch inside [value, value+2*handleRadius) grabs the handle where it is.
// Any other touch jumps the handle: x below one handle diameter snaps to 0,
// x past maxValue snaps to maxValue, anything else lands at x. The drag mode
// the touch enters comes from the transition table, not from this function.
func ResolveTouchDown(x float64, value int, handleRadius float64, maxValue int) TouchDown {
	v := float64(value)
	if x >= v && x < v+2*handleRadius {
		return TouchDown{Value: value, Anchor: x}
	}
	switch {
	case x < 2*handleRadius:
		x = 0
	case x > float64(maxValue):
		x = float64(maxValue)
	}
	return TouchDown{Value: int(x), Anchor: x, Jumped: true}
}

// ResolveDrag applies the pointer movement from anchor to x to value.
// The result is truncated toward zero and clamped to [0, maxValue]. The sum
// is clamped before the integer conversion so far-off pointers saturate
// instead of wrapping. A NaN position leaves the value in place.
func ResolveDrag(value int, anchor, x float64, maxValue int) int {
	next := float64(value) + x - anchor
	if math.IsNaN(next) {
		return clampValue(value, maxValue)
	}
	next = min(max(next, 0), float64(max(maxValue, 0)))
	return clampValue(int(next), maxValue)
}

func clampValue(v, maxValue int) int {
	return min(max(v, 0), max(maxValue, 0))
}

// transitionTable maps the current mode and an incoming pointer phase to
// the next mode.
type transitionTable [2][4]DragMode

func (t *transitionTable) next(mode DragMode, phase gestures.PointerPhase) DragMode {
	if mode < 0 || int(mode) >= len(t) || phase < 0 || int(phase) >= len(t[mode]) {
		return mode
	}
	return t[mode][phase]
}

// stickyTransitions never leaves dragging: once a touch lands, moves keep
// steering the handle until the next touch re-enters the same state.
var stickyTransitions = transitionTable{
	DragModeIdle: {
		gestures.PointerPhaseDown:   DragModeDragging,
		gestures.PointerPhaseMove:   DragModeIdle,
		gestures.PointerPhaseUp:     DragModeIdle,
		gestures.PointerPhaseCancel: DragModeIdle,
	},
	DragModeDragging: {
		gestures.PointerPhaseDown:   DragModeDragging,
		gestures.PointerPhaseMove:   DragModeDragging,
		gestures.PointerPhaseUp:     DragModeDragging,
		gestures.PointerPhaseCancel: DragModeDragging,
	},
}

// releasingTransitions ends the drag when the pointer lifts or is cancelled.
var releasingTransitions = func() transitionTable {
	t := stickyTransitions
	t[DragModeDragging][gestures.PointerPhaseUp] = DragModeIdle
	t[DragModeDragging][gestures.PointerPhaseCancel] = DragModeIdle
	return t
}()
