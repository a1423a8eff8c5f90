package engine_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asiatravel/volumeview/pkg/engine"
	"github.com/asiatravel/volumeview/pkg/errors"
	"github.com/asiatravel/volumeview/pkg/gestures"
	"github.com/asiatravel/volumeview/pkg/graphics"
	"github.com/asiatravel/volumeview/pkg/layout"
)

// probe records the pointer events it receives and counts paints.
type probe struct {
	layout.RenderBoxBase
	preferred graphics.Size
	events    []gestures.PointerEvent
	paints    int
	panicOn   bool
}

func newProbe(w, h float64) *probe {
	p := &probe{preferred: graphics.Size{Width: w, Height: h}}
	p.SetSelf(p)
	return p
}

func (p *probe) PerformLayout() {
	p.SetSize(p.Constraints().Constrain(p.preferred))
}

func (p *probe) Paint(ctx *layout.PaintContext) {
	if p.panicOn {
		panic("paint failed")
	}
	p.paints++
	size := p.Size()
	ctx.Canvas.DrawCircle(graphics.Offset{X: size.Width / 2, Y: size.Height / 2}, 2, graphics.DefaultPaint())
}

func (p *probe) HandlePointer(event gestures.PointerEvent) {
	p.events = append(p.events, event)
}

// passive hit tests but does not handle pointers.
type passive struct {
	layout.RenderBoxBase
}

func (p *passive) PerformLayout()                 { p.SetSize(graphics.Size{Width: 10, Height: 10}) }
func (p *passive) Paint(ctx *layout.PaintContext) {}

type nopCanvas struct{ size graphics.Size }

func (c nopCanvas) DrawRRect(graphics.RRect, graphics.Paint)                  {}
func (c nopCanvas) DrawCircle(graphics.Offset, float64, graphics.Paint)       {}
func (c nopCanvas) DrawLine(graphics.Offset, graphics.Offset, graphics.Paint) {}
func (c nopCanvas) Size() graphics.Size                                       { return c.size }

// circleCounter counts circles replayed onto it.
type circleCounter struct {
	nopCanvas
	circles int
}

func (c *circleCounter) DrawCircle(graphics.Offset, float64, graphics.Paint) { c.circles++ }

type capturingHandler struct {
	panics []*errors.PanicError
}

func (h *capturingHandler) HandleError(*errors.ViewError)      {}
func (h *capturingHandler) HandlePanic(err *errors.PanicError) { h.panics = append(h.panics, err) }

func event(id int64, x, y float64, phase gestures.PointerPhase) gestures.PointerEvent {
	return gestures.PointerEvent{PointerID: id, Position: graphics.Offset{X: x, Y: y}, Phase: phase}
}

func TestRunner_FramePaintsOnlyWhenDirty(t *testing.T) {
	root := newProbe(100, 40)
	runner := engine.NewRunner(root)
	loose := layout.Loose(graphics.Size{Width: 500, Height: 500})

	assert.True(t, runner.NeedsPaint())
	assert.True(t, runner.Frame(loose, nopCanvas{}))
	assert.Equal(t, graphics.Size{Width: 100, Height: 40}, root.Size())
	assert.Equal(t, 1, root.paints)
	assert.Equal(t, 1, runner.Frames())

	assert.False(t, runner.Frame(loose, nopCanvas{}))
	assert.Equal(t, 1, root.paints)

	root.MarkNeedsPaint()
	assert.True(t, runner.Frame(loose, nopCanvas{}))
	assert.Equal(t, 2, runner.Frames())
}

func TestRunner_RelayoutOnNewConstraints(t *testing.T) {
	root := newProbe(100, 40)
	runner := engine.NewRunner(root)

	size := runner.Layout(layout.Tight(graphics.Size{Width: 60, Height: 20}))
	assert.Equal(t, graphics.Size{Width: 60, Height: 20}, size)
	size = runner.Layout(layout.Loose(graphics.Size{Width: 80, Height: 80}))
	assert.Equal(t, graphics.Size{Width: 80, Height: 40}, size)
}

func TestRunner_PointerCapture(t *testing.T) {
	root := newProbe(100, 40)
	runner := engine.NewRunner(root)
	runner.Layout(layout.Unbounded())

	require.True(t, runner.HandlePointer(event(1, 10, 10, gestures.PointerPhaseDown)))
	assert.True(t, runner.HandlePointer(event(1, 500, -20, gestures.PointerPhaseMove)))
	assert.True(t, runner.HandlePointer(event(1, 500, -20, gestures.PointerPhaseUp)))
	assert.False(t, runner.HandlePointer(event(1, 20, 10, gestures.PointerPhaseMove)))

	require.Len(t, root.events, 3)
	assert.Equal(t, 500.0, root.events[1].Position.X)
	assert.Equal(t, gestures.PointerPhaseUp, root.events[2].Phase)
}

func TestRunner_CancelReleasesCapture(t *testing.T) {
	root := newProbe(100, 40)
	runner := engine.NewRunner(root)
	runner.Layout(layout.Unbounded())

	runner.HandlePointer(event(3, 10, 10, gestures.PointerPhaseDown))
	assert.True(t, runner.HandlePointer(event(3, 10, 10, gestures.PointerPhaseCancel)))
	assert.False(t, runner.HandlePointer(event(3, 15, 10, gestures.PointerPhaseMove)))
}

func TestRunner_DownOutsideIsDropped(t *testing.T) {
	root := newProbe(100, 40)
	runner := engine.NewRunner(root)
	runner.Layout(layout.Unbounded())

	assert.False(t, runner.HandlePointer(event(1, 150, 10, gestures.PointerPhaseDown)))
	assert.False(t, runner.HandlePointer(event(1, 50, 10, gestures.PointerPhaseMove)))
	assert.Empty(t, root.events)
}

func TestRunner_OriginTranslatesPointers(t *testing.T) {
	root := newProbe(100, 40)
	runner := engine.NewRunner(root, engine.WithOrigin(graphics.Offset{X: 30, Y: 5}))
	runner.Layout(layout.Unbounded())

	assert.False(t, runner.HandlePointer(event(1, 10, 10, gestures.PointerPhaseDown)))
	require.True(t, runner.HandlePointer(event(2, 40, 10, gestures.PointerPhaseDown)))
	require.Len(t, root.events, 1)
	assert.Equal(t, graphics.Offset{X: 10, Y: 5}, root.events[0].Position)
}

func TestRunner_NonHandlerRootIgnoresPointers(t *testing.T) {
	root := &passive{}
	root.SetSelf(root)
	runner := engine.NewRunner(root)
	runner.Layout(layout.Unbounded())

	assert.False(t, runner.HandlePointer(event(1, 5, 5, gestures.PointerPhaseDown)))
}

func TestRunner_PaintPanicIsReported(t *testing.T) {
	handler := &capturingHandler{}
	errors.SetHandler(handler)
	t.Cleanup(func() { errors.SetHandler(nil) })

	root := newProbe(10, 10)
	root.panicOn = true
	runner := engine.NewRunner(root)
	runner.Layout(layout.Unbounded())

	assert.NotPanics(t, func() { runner.Paint(nopCanvas{}) })
	require.Len(t, handler.panics, 1)
	assert.Equal(t, "engine.Runner.Paint", handler.panics[0].Op)
	assert.Equal(t, "paint failed", handler.panics[0].Value)
}

func TestRunner_DebugLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	root := newProbe(100, 40)
	runner := engine.NewRunner(root, engine.WithLogger(logger))

	runner.Frame(layout.Unbounded(), nopCanvas{})
	runner.HandlePointer(event(1, 10, 10, gestures.PointerPhaseDown))

	out := buf.String()
	assert.Contains(t, out, "frame painted")
	assert.Contains(t, out, "phase=down")
}

func TestRunner_SharedFrameTrace(t *testing.T) {
	buf := engine.NewFrameTraceBuffer(8, 0)
	root := newProbe(10, 10)
	runner := engine.NewRunner(root, engine.WithFrameTrace(buf))
	runner.Frame(layout.Unbounded(), nopCanvas{})

	assert.Same(t, buf, runner.Trace())
	assert.Equal(t, 1, buf.Len())
	require.NotNil(t, runner.Snapshot())
	assert.Equal(t, 1, runner.Snapshot().Frames)
}

func TestRunner_PaintRecordsPicture(t *testing.T) {
	runner := engine.NewRunner(newProbe(100, 40))
	assert.Nil(t, runner.LastPicture())

	canvas := &circleCounter{}
	require.True(t, runner.Frame(layout.Unbounded(), canvas))
	assert.Equal(t, 1, canvas.circles, "recording is replayed onto the host canvas")

	picture := runner.LastPicture()
	require.NotNil(t, picture)
	assert.Equal(t, 1, picture.Len())
	assert.Equal(t, 1, runner.Snapshot().PaintOps)

	ops := engine.SerializeDisplayList(picture)
	require.Len(t, ops, 1)
	assert.Equal(t, "drawCircle", ops[0].Op)
	assert.Equal(t, 50.0, ops[0].Params["cx"])
	assert.Equal(t, 20.0, ops[0].Params["cy"])
}
