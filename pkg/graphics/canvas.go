package graphics

// Canvas records or renders drawing commands.
//
// The set is deliberately small: a host only needs to supply the primitives
// widgets in this module paint with.
type Canvas interface {
	// DrawRRect draws a rounded rectangle with the provided paint.
	DrawRRect(rrect RRect, paint Paint)

	// DrawCircle draws a circle with the provided paint.
	DrawCircle(center Offset, radius float64, paint Paint)

	// DrawLine draws a line segment with the provided paint.
	DrawLine(start, end Offset, paint Paint)

	// Size returns the size of the canvas in pixels.
	Size() Size
}
