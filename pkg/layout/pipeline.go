package layout

// PipelineOwner tracks render objects that need layout or paint.
//
// SchedulePaint is the redraw request: hosts poll NeedsPaint once per frame
// and call FlushPaint after painting. The owner never paints on its own, so
// requests made between frames coalesce into one draw.
type PipelineOwner struct {
	dirtyLayout    []RenderObject
	dirtyLayoutSet map[RenderObject]bool
	dirtyPaint     []RenderObject
	dirtyPaintSet  map[RenderObject]bool
	paintRequests  int
}

// ScheduleLayout marks a render object as needing layout.
func (p *PipelineOwner) ScheduleLayout(object RenderObject) {
	if p.dirtyLayoutSet == nil {
		p.dirtyLayoutSet = make(map[RenderObject]bool)
	}
	if p.dirtyLayoutSet[object] {
		return
	}
	p.dirtyLayoutSet[object] = true
	p.dirtyLayout = append(p.dirtyLayout, object)
}

// SchedulePaint marks a render object as needing paint.
func (p *PipelineOwner) SchedulePaint(object RenderObject) {
	p.paintRequests++
	if p.dirtyPaintSet == nil {
		p.dirtyPaintSet = make(map[RenderObject]bool)
	}
	if p.dirtyPaintSet[object] {
		return
	}
	p.dirtyPaintSet[object] = true
	p.dirtyPaint = append(p.dirtyPaint, object)
}

// NeedsLayout reports if any render objects need layout.
func (p *PipelineOwner) NeedsLayout() bool {
	return len(p.dirtyLayout) > 0
}

// NeedsPaint reports if any render objects need paint.
func (p *PipelineOwner) NeedsPaint() bool {
	return len(p.dirtyPaint) > 0
}

// PaintRequests returns the number of SchedulePaint calls since creation,
// including ones that coalesced.
func (p *PipelineOwner) PaintRequests() int {
	return p.paintRequests
}

// FlushLayout clears the dirty layout list and returns it in schedule order.
func (p *PipelineOwner) FlushLayout() []RenderObject {
	dirty := p.dirtyLayout
	p.dirtyLayout = nil
	p.dirtyLayoutSet = nil
	return dirty
}

// FlushPaint clears the dirty paint list and returns the objects that still
// needed paint, in schedule order. Their dirty flags are reset.
func (p *PipelineOwner) FlushPaint() []RenderObject {
	dirty := p.dirtyPaint
	p.dirtyPaint = nil
	p.dirtyPaintSet = nil

	result := make([]RenderObject, 0, len(dirty))
	for _, node := range dirty {
		if np, ok := node.(interface{ NeedsPaint() bool }); ok && !np.NeedsPaint() {
			continue
		}
		if c, ok := node.(interface{ clearNeedsPaint() }); ok {
			c.clearNeedsPaint()
		}
		result = append(result, node)
	}
	return result
}
