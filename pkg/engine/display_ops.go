package engine

import (
	"fmt"
	"math"

	"github.com/asiatravel/volumeview/pkg/graphics"
)

// DisplayOp is a canvas drawing operation in a form that compares and
// encodes cleanly: two-decimal coordinates and ARGB hex colors.
type DisplayOp struct {
	Op     string         `json:"op"`
	Params map[string]any `json:"params,omitempty"`
}

// SerializeDisplayList replays dl and returns its operations in order.
// A nil list yields no operations.
func SerializeDisplayList(dl *graphics.DisplayList) []DisplayOp {
	if dl == nil {
		return nil
	}
	canvas := &serializingCanvas{size: dl.Size()}
	dl.Paint(canvas)
	return canvas.ops
}

// serializingCanvas implements graphics.Canvas and records ops as DisplayOp.
type serializingCanvas struct {
	ops  []DisplayOp
	size graphics.Size
}

func (c *serializingCanvas) DrawRRect(rrect graphics.RRect, paint graphics.Paint) {
	c.ops = append(c.ops, DisplayOp{
		Op: "drawRRect",
		Params: params(
			"rect", serializeRect(rrect.Rect),
			"radius", serializeRadius(rrect),
			"color", serializeColor(paint.Color),
		),
	})
}

func (c *serializingCanvas) DrawCircle(center graphics.Offset, radius float64, paint graphics.Paint) {
	c.ops = append(c.ops, DisplayOp{
		Op: "drawCircle",
		Params: params(
			"cx", round2(center.X),
			"cy", round2(center.Y),
			"radius", round2(radius),
			"color", serializeColor(paint.Color),
		),
	})
}

func (c *serializingCanvas) DrawLine(start, end graphics.Offset, paint graphics.Paint) {
	c.ops = append(c.ops, DisplayOp{
		Op: "drawLine",
		Params: params(
			"x1", round2(start.X), "y1", round2(start.Y),
			"x2", round2(end.X), "y2", round2(end.Y),
			"strokeWidth", round2(paint.StrokeWidth),
			"cap", paint.StrokeCap.String(),
			"color", serializeColor(paint.Color),
		),
	})
}

func (c *serializingCanvas) Size() graphics.Size {
	return c.size
}

func serializeRect(r graphics.Rect) map[string]any {
	return params(
		"left", round2(r.Left),
		"top", round2(r.Top),
		"right", round2(r.Right),
		"bottom", round2(r.Bottom),
	)
}

func serializeRadius(rr graphics.RRect) map[string]any {
	if rr.TopLeft == rr.TopRight && rr.TopRight == rr.BottomRight && rr.BottomRight == rr.BottomLeft {
		return params("x", round2(rr.TopLeft.X), "y", round2(rr.TopLeft.Y))
	}
	return params(
		"topLeft", params("x", round2(rr.TopLeft.X), "y", round2(rr.TopLeft.Y)),
		"topRight", params("x", round2(rr.TopRight.X), "y", round2(rr.TopRight.Y)),
		"bottomRight", params("x", round2(rr.BottomRight.X), "y", round2(rr.BottomRight.Y)),
		"bottomLeft", params("x", round2(rr.BottomLeft.X), "y", round2(rr.BottomLeft.Y)),
	)
}

func serializeColor(c graphics.Color) string {
	return fmt.Sprintf("0x%08X", uint32(c))
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// params builds a map from alternating key-value pairs.
func params(kvs ...any) map[string]any {
	m := make(map[string]any, len(kvs)/2)
	for i := 0; i+1 < len(kvs); i += 2 {
		m[kvs[i].(string)] = kvs[i+1]
	}
	return m
}
