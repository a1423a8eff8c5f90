// Package engine drives a render object for a host: it lays the root out,
// paints it when a redraw was requested, and routes pointer events through
// hit testing.
//
// A Runner is not safe for concurrent use. Hosts call it from their single
// UI loop, the same way the render objects expect to be driven.
package engine

import (
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/asiatravel/volumeview/pkg/errors"
	"github.com/asiatravel/volumeview/pkg/gestures"
	"github.com/asiatravel/volumeview/pkg/graphics"
	"github.com/asiatravel/volumeview/pkg/layout"
)

// Runner hosts a single root render object.
type Runner struct {
	root            layout.RenderObject
	owner           *layout.PipelineOwner
	origin          graphics.Offset
	logger          *slog.Logger
	pointerHandlers map[int64][]layout.PointerHandler
	frames          int

	trace        *FrameTraceBuffer
	layoutTime   time.Duration
	redrawsSeen  int
	recorder     graphics.PictureRecorder
	lastPicture  atomic.Pointer[graphics.DisplayList]
	lastSnapshot atomic.Pointer[RootSnapshot]
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger used for frame and pointer diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// WithOrigin places the root at origin in host coordinates. Pointer
// positions are translated into the root's local space before dispatch.
func WithOrigin(origin graphics.Offset) Option {
	return func(r *Runner) {
		r.origin = origin
	}
}

// WithFrameTrace records frame timings into buf instead of a private buffer.
func WithFrameTrace(buf *FrameTraceBuffer) Option {
	return func(r *Runner) {
		r.trace = buf
	}
}

// NewRunner attaches root to a fresh pipeline owner.
func NewRunner(root layout.RenderObject, opts ...Option) *Runner {
	r := &Runner{
		root:            root,
		owner:           &layout.PipelineOwner{},
		logger:          slog.Default(),
		pointerHandlers: make(map[int64][]layout.PointerHandler),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.trace == nil {
		r.trace = NewFrameTraceBuffer(0, 0)
	}
	root.SetOwner(r.owner)
	r.publish()
	return r
}

// Root returns the hosted render object.
func (r *Runner) Root() layout.RenderObject {
	return r.root
}

// Owner returns the pipeline owner that collects redraw requests.
func (r *Runner) Owner() *layout.PipelineOwner {
	return r.owner
}

// Origin returns where the root sits in host coordinates.
func (r *Runner) Origin() graphics.Offset {
	return r.origin
}

// Frames returns the number of frames painted so far.
func (r *Runner) Frames() int {
	return r.frames
}

// Trace returns the buffer frame timings are recorded into.
func (r *Runner) Trace() *FrameTraceBuffer {
	return r.trace
}

// Snapshot returns the root state as of the last paint or pointer event.
// It may be called from any goroutine.
func (r *Runner) Snapshot() *RootSnapshot {
	return r.lastSnapshot.Load()
}

// LastPicture returns the display list of the most recent paint, or nil
// before the first one. Display lists are immutable, so it may be called
// from any goroutine.
func (r *Runner) LastPicture() *graphics.DisplayList {
	return r.lastPicture.Load()
}

// Layout lays the root out under constraints and returns its size.
func (r *Runner) Layout(constraints layout.Constraints) graphics.Size {
	start := time.Now()
	r.root.Layout(constraints)
	r.owner.FlushLayout()
	r.layoutTime = time.Since(start)
	return r.root.Size()
}

// NeedsPaint reports whether a redraw was requested since the last paint.
func (r *Runner) NeedsPaint() bool {
	return r.owner.NeedsPaint()
}

// Paint draws the root onto canvas unconditionally and clears pending
// redraw requests. The root paints into a recorder first; the recording is
// replayed onto canvas and kept as LastPicture.
func (r *Runner) Paint(canvas graphics.Canvas) {
	defer errors.Recover("engine.Runner.Paint")
	start := time.Now()
	recording := r.recorder.BeginRecording(canvas.Size())
	r.root.Paint(&layout.PaintContext{Canvas: recording})
	picture := r.recorder.EndRecording()
	picture.Paint(canvas)
	r.lastPicture.Store(picture)
	r.owner.FlushPaint()
	paintTime := time.Since(start)

	r.frames++
	requests := r.owner.PaintRequests()
	r.trace.Record(FrameSample{
		Frame:     r.frames,
		Timestamp: start.UnixMilli(),
		FrameMs:   millis(r.layoutTime + paintTime),
		Phases:    FramePhaseTimings{LayoutMs: millis(r.layoutTime), PaintMs: millis(paintTime)},
		Redraws:   requests - r.redrawsSeen,
	}, r.layoutTime+paintTime)
	r.redrawsSeen = requests
	r.publish()
	r.logger.Debug("frame painted", "frame", r.frames, "size", r.root.Size(), "ops", picture.Len(), "paint", paintTime)
}

// Frame lays out under constraints and paints only when a redraw is
// pending. It reports whether it painted.
func (r *Runner) Frame(constraints layout.Constraints, canvas graphics.Canvas) bool {
	r.Layout(constraints)
	if !r.NeedsPaint() {
		return false
	}
	r.Paint(canvas)
	return true
}

// HandlePointer routes a host-space pointer event to the render objects
// under it. Down events hit test and capture the handlers; later events
// for the same pointer go to the captured handlers even when the pointer
// has left the bounds. It reports whether any handler received the event.
func (r *Runner) HandlePointer(event gestures.PointerEvent) bool {
	local := event.Translated(r.origin)

	var handlers []layout.PointerHandler
	if local.Phase == gestures.PointerPhaseDown {
		result := &layout.HitTestResult{}
		if r.root.HitTest(local.Position, result) {
			handlers = collectPointerHandlers(result.Entries)
		}
		if len(handlers) > 0 {
			r.pointerHandlers[local.PointerID] = handlers
		}
	} else {
		handlers = r.pointerHandlers[local.PointerID]
	}
	if local.Phase == gestures.PointerPhaseUp || local.Phase == gestures.PointerPhaseCancel {
		delete(r.pointerHandlers, local.PointerID)
	}

	if len(handlers) == 0 {
		return false
	}
	r.logger.Debug("pointer", "id", local.PointerID, "phase", local.Phase.String(), "x", local.Position.X, "y", local.Position.Y)
	for _, handler := range handlers {
		handler.HandlePointer(local)
	}
	r.publish()
	return true
}

func collectPointerHandlers(entries []layout.RenderObject) []layout.PointerHandler {
	handlers := make([]layout.PointerHandler, 0, len(entries))
	seen := make(map[layout.PointerHandler]struct{})
	for _, entry := range entries {
		handler, ok := entry.(layout.PointerHandler)
		if !ok {
			continue
		}
		if _, dup := seen[handler]; dup {
			continue
		}
		seen[handler] = struct{}{}
		handlers = append(handlers, handler)
	}
	return handlers
}
