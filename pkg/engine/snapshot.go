package engine

import (
	"encoding/json"
	"math"
	"reflect"

	"github.com/asiatravel/volumeview/pkg/layout"
)

// DebugPropertiesProvider is implemented by render objects that expose
// their state for inspection.
type DebugPropertiesProvider interface {
	DebugProperties() map[string]any
}

// RootSnapshot is an immutable copy of the root's state, safe to hand to
// other goroutines.
type RootSnapshot struct {
	Type        string           `json:"type"`
	Size        SafeSize         `json:"size"`
	Constraints *SafeConstraints `json:"constraints,omitempty"`
	NeedsPaint  bool             `json:"needsPaint"`
	Frames      int              `json:"frames"`
	PaintOps    int              `json:"paintOps"`
	Properties  map[string]any   `json:"properties,omitempty"`
}

// SafeFloat encodes Inf and NaN, which unbounded constraints produce, as
// JSON strings.
type SafeFloat float64

func (f SafeFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	switch {
	case math.IsInf(v, 1):
		return []byte(`"Infinity"`), nil
	case math.IsInf(v, -1):
		return []byte(`"-Infinity"`), nil
	case math.IsNaN(v):
		return []byte(`"NaN"`), nil
	}
	return json.Marshal(v)
}

// SafeSize is a JSON-safe graphics.Size.
type SafeSize struct {
	Width  SafeFloat `json:"width"`
	Height SafeFloat `json:"height"`
}

// SafeConstraints is a JSON-safe layout.Constraints.
type SafeConstraints struct {
	MinWidth  SafeFloat `json:"minWidth"`
	MaxWidth  SafeFloat `json:"maxWidth"`
	MinHeight SafeFloat `json:"minHeight"`
	MaxHeight SafeFloat `json:"maxHeight"`
}

func (r *Runner) publish() {
	size := r.root.Size()
	snap := &RootSnapshot{
		Type:       reflect.TypeOf(r.root).String(),
		Size:       SafeSize{Width: SafeFloat(size.Width), Height: SafeFloat(size.Height)},
		NeedsPaint: r.owner.NeedsPaint(),
		Frames:     r.frames,
	}
	if c, ok := r.root.(interface{ Constraints() layout.Constraints }); ok {
		cons := c.Constraints()
		snap.Constraints = &SafeConstraints{
			MinWidth:  SafeFloat(cons.MinWidth),
			MaxWidth:  SafeFloat(cons.MaxWidth),
			MinHeight: SafeFloat(cons.MinHeight),
			MaxHeight: SafeFloat(cons.MaxHeight),
		}
	}
	if picture := r.lastPicture.Load(); picture != nil {
		snap.PaintOps = picture.Len()
	}
	if p, ok := r.root.(DebugPropertiesProvider); ok {
		snap.Properties = p.DebugProperties()
	}
	r.lastSnapshot.Store(snap)
}
