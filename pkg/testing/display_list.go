package testing

import (
	"github.com/asiatravel/volumeview/pkg/engine"
	"github.com/asiatravel/volumeview/pkg/graphics"
)

// DisplayOp is a serialized canvas drawing operation.
type DisplayOp = engine.DisplayOp

// OpNames returns the Op field of each entry, in order.
func OpNames(ops []DisplayOp) []string {
	names := make([]string, len(ops))
	for i, op := range ops {
		names[i] = op.Op
	}
	return names
}

// discardCanvas is the host surface for tester frames. The runner records
// every paint, so the ops are read back from its picture instead.
type discardCanvas struct{ size graphics.Size }

func (c discardCanvas) DrawRRect(graphics.RRect, graphics.Paint)                  {}
func (c discardCanvas) DrawCircle(graphics.Offset, float64, graphics.Paint)       {}
func (c discardCanvas) DrawLine(graphics.Offset, graphics.Offset, graphics.Paint) {}
func (c discardCanvas) Size() graphics.Size                                       { return c.size }
