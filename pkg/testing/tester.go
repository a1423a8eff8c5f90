package testing

import (
	"testing"

	"github.com/asiatravel/volumeview/pkg/engine"
	"github.com/asiatravel/volumeview/pkg/gestures"
	"github.com/asiatravel/volumeview/pkg/graphics"
	"github.com/asiatravel/volumeview/pkg/layout"
)

// DefaultPointerY is the vertical coordinate used by the x-only pointer helpers.
const DefaultPointerY = 1

// ViewTester hosts a render object the way a real host would, through an
// engine.Runner, and reads back the runner's recorded picture so tests can
// assert on the exact drawing operations.
type ViewTester struct {
	t             testing.TB
	runner        *engine.Runner
	constraints   layout.Constraints
	nextPointerID int64
	activePointer int64
	lastOps       []DisplayOp
}

// NewViewTester attaches root to a new runner.
func NewViewTester(t testing.TB, root layout.RenderObject) *ViewTester {
	t.Helper()
	return &ViewTester{
		t:      t,
		runner: engine.NewRunner(root),
	}
}

// Runner returns the underlying engine runner.
func (vt *ViewTester) Runner() *engine.Runner {
	return vt.runner
}

// Pump lays out under constraints and paints if a redraw is pending.
// It returns the ops painted by this frame, or nil when nothing was painted.
func (vt *ViewTester) Pump(constraints layout.Constraints) []DisplayOp {
	vt.t.Helper()
	vt.constraints = constraints
	return vt.frame()
}

// PumpSize is Pump with tight constraints.
func (vt *ViewTester) PumpSize(width, height float64) []DisplayOp {
	vt.t.Helper()
	return vt.Pump(layout.Tight(graphics.Size{Width: width, Height: height}))
}

// Frame re-runs a frame with the last constraints.
func (vt *ViewTester) Frame() []DisplayOp {
	vt.t.Helper()
	return vt.frame()
}

func (vt *ViewTester) frame() []DisplayOp {
	size := vt.runner.Layout(vt.constraints)
	if !vt.runner.Frame(vt.constraints, discardCanvas{size: size}) {
		return nil
	}
	return vt.readPicture()
}

// PaintOps paints the root regardless of pending redraws and returns the ops.
func (vt *ViewTester) PaintOps() []DisplayOp {
	vt.runner.Paint(discardCanvas{size: vt.runner.Root().Size()})
	return vt.readPicture()
}

func (vt *ViewTester) readPicture() []DisplayOp {
	vt.lastOps = engine.SerializeDisplayList(vt.runner.LastPicture())
	return vt.lastOps
}

// LastOps returns the ops from the most recent paint.
func (vt *ViewTester) LastOps() []DisplayOp {
	return vt.lastOps
}

// Redraws returns the number of redraw requests made so far.
func (vt *ViewTester) Redraws() int {
	return vt.runner.Owner().PaintRequests()
}

// NeedsPaint reports whether a redraw is pending.
func (vt *ViewTester) NeedsPaint() bool {
	return vt.runner.NeedsPaint()
}

// SendPointer dispatches a raw event and reports whether it was handled.
func (vt *ViewTester) SendPointer(event gestures.PointerEvent) bool {
	return vt.runner.HandlePointer(event)
}

// PointerDown starts a new pointer at x. It reports whether a handler
// received it.
func (vt *ViewTester) PointerDown(x float64) bool {
	vt.nextPointerID++
	vt.activePointer = vt.nextPointerID
	return vt.send(x, gestures.PointerPhaseDown)
}

// PointerMove moves the active pointer to x.
func (vt *ViewTester) PointerMove(x float64) bool {
	return vt.send(x, gestures.PointerPhaseMove)
}

// PointerUp lifts the active pointer at x.
func (vt *ViewTester) PointerUp(x float64) bool {
	return vt.send(x, gestures.PointerPhaseUp)
}

// Drag presses at from, moves through each of path, and lifts at the last
// position.
func (vt *ViewTester) Drag(from float64, path ...float64) {
	vt.t.Helper()
	if !vt.PointerDown(from) {
		vt.t.Fatalf("Drag: pointer down at x=%v was not handled", from)
	}
	last := from
	for _, x := range path {
		vt.PointerMove(x)
		last = x
	}
	vt.PointerUp(last)
}

func (vt *ViewTester) send(x float64, phase gestures.PointerPhase) bool {
	return vt.runner.HandlePointer(gestures.PointerEvent{
		PointerID: vt.activePointer,
		Position:  graphics.Offset{X: x, Y: DefaultPointerY},
		Phase:     phase,
	})
}
