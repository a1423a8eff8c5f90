package gestures

import "github.com/asiatravel/volumeview/pkg/graphics"

// PointerTracker converts polled pointer state into phase events for hosts
// that sample input once per tick instead of receiving callbacks.
//
// It follows a single pointer. Each press after a release gets a new
// PointerID.
type PointerTracker struct {
	active bool
	id     int64
	last   graphics.Offset
}

// Active reports whether a pointer is currently down.
func (t *PointerTracker) Active() bool {
	return t.active
}

// Sample feeds the current pressed state and position. It returns the event
// the change implies, if any: a press starts a Down, movement while pressed
// is a Move and a release is an Up at pos.
func (t *PointerTracker) Sample(pressed bool, pos graphics.Offset) (PointerEvent, bool) {
	switch {
	case pressed && !t.active:
		t.active = true
		t.id++
		t.last = pos
		return t.event(PointerPhaseDown), true
	case pressed && pos != t.last:
		t.last = pos
		return t.event(PointerPhaseMove), true
	case !pressed && t.active:
		t.active = false
		t.last = pos
		return t.event(PointerPhaseUp), true
	}
	return PointerEvent{}, false
}

// Cancel aborts the active pointer, for example when the host loses focus.
func (t *PointerTracker) Cancel() (PointerEvent, bool) {
	if !t.active {
		return PointerEvent{}, false
	}
	t.active = false
	return t.event(PointerPhaseCancel), true
}

func (t *PointerTracker) event(phase PointerPhase) PointerEvent {
	return PointerEvent{PointerID: t.id, Position: t.last, Phase: phase}
}
