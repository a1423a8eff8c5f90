package layout

import (
	"github.com/asiatravel/volumeview/pkg/graphics"
)

// RenderObject handles layout, painting, and hit testing.
type RenderObject interface {
	Layout(constraints Constraints)
	Size() graphics.Size
	Paint(ctx *PaintContext)
	HitTest(position graphics.Offset, result *HitTestResult) bool
	MarkNeedsLayout()
	MarkNeedsPaint()
	SetOwner(owner *PipelineOwner)
}

// SizeChangedListener is implemented by render objects that derive state
// from their size. OnSizeChanged runs during layout, after the new size is
// stored and before the next paint.
type SizeChangedListener interface {
	OnSizeChanged(oldSize, newSize graphics.Size)
}

// RenderBoxBase provides base behavior for render boxes.
//
// Embedders must call SetSelf with the outer object so that dirty marks and
// size notifications reach the concrete type.
type RenderBoxBase struct {
	size           graphics.Size
	owner          *PipelineOwner
	self           RenderObject
	needsLayout    bool
	needsPaint     bool
	constraints    Constraints
	hasConstraints bool
}

// SetSelf records the embedding render object.
func (r *RenderBoxBase) SetSelf(self RenderObject) {
	r.self = self
	r.needsLayout = true
	r.needsPaint = true
}

// SetOwner attaches the render box to a pipeline owner.
func (r *RenderBoxBase) SetOwner(owner *PipelineOwner) {
	r.owner = owner
	if owner == nil || r.self == nil {
		return
	}
	if r.needsLayout {
		owner.ScheduleLayout(r.self)
	}
	if r.needsPaint {
		owner.SchedulePaint(r.self)
	}
}

// Owner returns the pipeline owner, or nil when detached.
func (r *RenderBoxBase) Owner() *PipelineOwner {
	return r.owner
}

// Size returns the current size of the render box.
func (r *RenderBoxBase) Size() graphics.Size {
	return r.size
}

// Constraints returns the constraints from the last layout pass.
func (r *RenderBoxBase) Constraints() Constraints {
	return r.constraints
}

// SetSize updates the render box size.
// A change marks paint dirty and notifies a SizeChangedListener.
func (r *RenderBoxBase) SetSize(size graphics.Size) {
	if r.size == size {
		return
	}
	old := r.size
	r.size = size
	r.MarkNeedsPaint()
	if listener, ok := r.self.(SizeChangedListener); ok {
		listener.OnSizeChanged(old, size)
	}
}

// Layout stores the constraints and delegates to PerformLayout.
// Layout is skipped when the box is clean and the constraints are unchanged.
func (r *RenderBoxBase) Layout(constraints Constraints) {
	if !r.needsLayout && r.hasConstraints && r.constraints == constraints {
		return
	}
	r.constraints = constraints
	r.hasConstraints = true
	r.needsLayout = false
	if performer, ok := r.self.(interface{ PerformLayout() }); ok {
		performer.PerformLayout()
	}
}

// MarkNeedsLayout marks this render box as needing layout.
func (r *RenderBoxBase) MarkNeedsLayout() {
	if r.needsLayout {
		return
	}
	r.needsLayout = true
	if r.owner != nil && r.self != nil {
		r.owner.ScheduleLayout(r.self)
	}
}

// MarkNeedsPaint marks this render box as needing paint and requests a
// redraw from the owner. Repeated requests before a flush coalesce.
func (r *RenderBoxBase) MarkNeedsPaint() {
	r.needsPaint = true
	if r.owner != nil && r.self != nil {
		r.owner.SchedulePaint(r.self)
	}
}

// NeedsLayout reports whether layout is pending.
func (r *RenderBoxBase) NeedsLayout() bool {
	return r.needsLayout
}

// NeedsPaint reports whether paint is pending.
func (r *RenderBoxBase) NeedsPaint() bool {
	return r.needsPaint
}

func (r *RenderBoxBase) clearNeedsPaint() {
	r.needsPaint = false
}

// HitTest adds the box to result when position falls inside its bounds.
func (r *RenderBoxBase) HitTest(position graphics.Offset, result *HitTestResult) bool {
	if !graphics.RectFromLTWH(0, 0, r.size.Width, r.size.Height).Contains(position) {
		return false
	}
	if r.self != nil {
		result.Add(r.self)
	}
	return true
}
