package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/asiatravel/volumeview/pkg/graphics"
)

// ebitenCanvas draws graphics.Canvas operations onto an ebiten image,
// offset by origin.
type ebitenCanvas struct {
	dst    *ebiten.Image
	origin graphics.Offset
	size   graphics.Size
}

// DrawRRect fills a rounded rectangle from a cross of rectangles and four
// corner discs. Translucent paints darken where the pieces overlap.
func (c *ebitenCanvas) DrawRRect(rrect graphics.RRect, paint graphics.Paint) {
	r := rrect.Rect
	if r.IsEmpty() {
		return
	}
	radius := min(rrect.TopLeft.X, rrect.TopLeft.Y, r.Width()/2, r.Height()/2)
	x := float32(c.origin.X + r.Left)
	y := float32(c.origin.Y + r.Top)
	w, h, rad := float32(r.Width()), float32(r.Height()), float32(radius)
	clr := paint.Color.NRGBA()

	if rad <= 0 {
		vector.DrawFilledRect(c.dst, x, y, w, h, clr, paint.AntiAlias)
		return
	}
	vector.DrawFilledRect(c.dst, x+rad, y, w-2*rad, h, clr, paint.AntiAlias)
	vector.DrawFilledRect(c.dst, x, y+rad, rad, h-2*rad, clr, paint.AntiAlias)
	vector.DrawFilledRect(c.dst, x+w-rad, y+rad, rad, h-2*rad, clr, paint.AntiAlias)
	vector.DrawFilledCircle(c.dst, x+rad, y+rad, rad, clr, paint.AntiAlias)
	vector.DrawFilledCircle(c.dst, x+w-rad, y+rad, rad, clr, paint.AntiAlias)
	vector.DrawFilledCircle(c.dst, x+rad, y+h-rad, rad, clr, paint.AntiAlias)
	vector.DrawFilledCircle(c.dst, x+w-rad, y+h-rad, rad, clr, paint.AntiAlias)
}

func (c *ebitenCanvas) DrawCircle(center graphics.Offset, radius float64, paint graphics.Paint) {
	if radius <= 0 {
		return
	}
	vector.DrawFilledCircle(c.dst,
		float32(c.origin.X+center.X), float32(c.origin.Y+center.Y),
		float32(radius), paint.Color.NRGBA(), paint.AntiAlias)
}

// DrawLine strokes with butt caps; other caps are not supported by the
// vector package's line helper.
func (c *ebitenCanvas) DrawLine(start, end graphics.Offset, paint graphics.Paint) {
	if paint.StrokeWidth <= 0 || start == end {
		return
	}
	vector.StrokeLine(c.dst,
		float32(c.origin.X+start.X), float32(c.origin.Y+start.Y),
		float32(c.origin.X+end.X), float32(c.origin.Y+end.Y),
		float32(paint.StrokeWidth), paint.Color.NRGBA(), paint.AntiAlias)
}

func (c *ebitenCanvas) Size() graphics.Size {
	return c.size
}
