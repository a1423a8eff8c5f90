package graphics

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// kappa is the cubic Bézier control distance for a quarter circle of radius 1.
const kappa = 0.5522847498

// RasterCanvas paints onto an in-memory RGBA image.
//
// Shapes are scan-converted with golang.org/x/image/vector, which always
// anti-aliases; Paint.AntiAlias is ignored.
type RasterCanvas struct {
	dst *image.RGBA
	z   *vector.Rasterizer
}

// NewRasterCanvas allocates a transparent canvas of the given pixel size.
func NewRasterCanvas(width, height int) *RasterCanvas {
	return NewRasterCanvasFor(image.NewRGBA(image.Rect(0, 0, width, height)))
}

// NewRasterCanvasFor paints onto an existing image.
func NewRasterCanvasFor(dst *image.RGBA) *RasterCanvas {
	b := dst.Bounds()
	return &RasterCanvas{
		dst: dst,
		z:   vector.NewRasterizer(b.Dx(), b.Dy()),
	}
}

// Image returns the backing image.
func (c *RasterCanvas) Image() *image.RGBA {
	return c.dst
}

// Fill paints every pixel with color.
func (c *RasterCanvas) Fill(color Color) {
	draw.Draw(c.dst, c.dst.Bounds(), image.NewUniform(color.NRGBA()), image.Point{}, draw.Src)
}

func (c *RasterCanvas) DrawRRect(rrect RRect, paint Paint) {
	r := rrect.Rect
	if r.IsEmpty() {
		return
	}
	c.begin()
	maxX := r.Width() / 2
	maxY := r.Height() / 2
	tl := clampRadius(rrect.TopLeft, maxX, maxY)
	tr := clampRadius(rrect.TopRight, maxX, maxY)
	br := clampRadius(rrect.BottomRight, maxX, maxY)
	bl := clampRadius(rrect.BottomLeft, maxX, maxY)

	c.moveTo(r.Left+tl.X, r.Top)
	c.lineTo(r.Right-tr.X, r.Top)
	c.cornerTo(r.Right-tr.X, r.Top, r.Right, r.Top+tr.Y, tr, cornerTopRight)
	c.lineTo(r.Right, r.Bottom-br.Y)
	c.cornerTo(r.Right, r.Bottom-br.Y, r.Right-br.X, r.Bottom, br, cornerBottomRight)
	c.lineTo(r.Left+bl.X, r.Bottom)
	c.cornerTo(r.Left+bl.X, r.Bottom, r.Left, r.Bottom-bl.Y, bl, cornerBottomLeft)
	c.lineTo(r.Left, r.Top+tl.Y)
	c.cornerTo(r.Left, r.Top+tl.Y, r.Left+tl.X, r.Top, tl, cornerTopLeft)
	c.z.ClosePath()
	c.flush(paint.Color)
}

func (c *RasterCanvas) DrawCircle(center Offset, radius float64, paint Paint) {
	if radius <= 0 {
		return
	}
	c.begin()
	c.circle(center, radius)
	c.flush(paint.Color)
}

func (c *RasterCanvas) DrawLine(start, end Offset, paint Paint) {
	dx := end.X - start.X
	dy := end.Y - start.Y
	length := math.Hypot(dx, dy)
	half := paint.StrokeWidth / 2
	if length == 0 || half <= 0 {
		return
	}
	ux, uy := dx/length, dy/length
	if paint.StrokeCap == CapSquare {
		start = Offset{X: start.X - ux*half, Y: start.Y - uy*half}
		end = Offset{X: end.X + ux*half, Y: end.Y + uy*half}
	}
	nx, ny := -uy*half, ux*half

	c.begin()
	c.moveTo(start.X+nx, start.Y+ny)
	c.lineTo(end.X+nx, end.Y+ny)
	c.lineTo(end.X-nx, end.Y-ny)
	c.lineTo(start.X-nx, start.Y-ny)
	c.z.ClosePath()
	if paint.StrokeCap == CapRound {
		c.circle(start, half)
		c.circle(end, half)
	}
	c.flush(paint.Color)
}

func (c *RasterCanvas) Size() Size {
	b := c.dst.Bounds()
	return Size{Width: float64(b.Dx()), Height: float64(b.Dy())}
}

func (c *RasterCanvas) begin() {
	b := c.dst.Bounds()
	c.z.Reset(b.Dx(), b.Dy())
	c.z.DrawOp = draw.Over
}

func (c *RasterCanvas) flush(color Color) {
	c.z.Draw(c.dst, c.dst.Bounds(), image.NewUniform(color.NRGBA()), image.Point{})
}

func (c *RasterCanvas) moveTo(x, y float64) {
	c.z.MoveTo(float32(x), float32(y))
}

func (c *RasterCanvas) lineTo(x, y float64) {
	c.z.LineTo(float32(x), float32(y))
}

func (c *RasterCanvas) circle(center Offset, r float64) {
	k := r * kappa
	cx, cy := center.X, center.Y
	c.moveTo(cx+r, cy)
	c.z.CubeTo(float32(cx+r), float32(cy+k), float32(cx+k), float32(cy+r), float32(cx), float32(cy+r))
	c.z.CubeTo(float32(cx-k), float32(cy+r), float32(cx-r), float32(cy+k), float32(cx-r), float32(cy))
	c.z.CubeTo(float32(cx-r), float32(cy-k), float32(cx-k), float32(cy-r), float32(cx), float32(cy-r))
	c.z.CubeTo(float32(cx+k), float32(cy-r), float32(cx+r), float32(cy-k), float32(cx+r), float32(cy))
	c.z.ClosePath()
}

type corner int

const (
	cornerTopLeft corner = iota
	cornerTopRight
	cornerBottomRight
	cornerBottomLeft
)

// cornerTo draws a quarter ellipse from (x0,y0) to (x1,y1) bulging toward the
// rectangle's corner.
func (c *RasterCanvas) cornerTo(x0, y0, x1, y1 float64, radius Radius, which corner) {
	if radius.X <= 0 || radius.Y <= 0 {
		c.lineTo(x1, y1)
		return
	}
	kx := radius.X * kappa
	ky := radius.Y * kappa
	var c1x, c1y, c2x, c2y float64
	switch which {
	case cornerTopRight:
		c1x, c1y = x0+kx, y0
		c2x, c2y = x1, y1-ky
	case cornerBottomRight:
		c1x, c1y = x0, y0+ky
		c2x, c2y = x1+kx, y1
	case cornerBottomLeft:
		c1x, c1y = x0-kx, y0
		c2x, c2y = x1, y1+ky
	default:
		c1x, c1y = x0, y0-ky
		c2x, c2y = x1-kx, y1
	}
	c.z.CubeTo(float32(c1x), float32(c1y), float32(c2x), float32(c2y), float32(x1), float32(y1))
}

func clampRadius(r Radius, maxX, maxY float64) Radius {
	return Radius{X: max(0, min(r.X, maxX)), Y: max(0, min(r.Y, maxY))}
}
