package layout

import (
	"fmt"
	"math"

	"github.com/asiatravel/volumeview/pkg/graphics"
)

// Constraints bound the size a render box may choose.
//
// An axis whose minimum equals its maximum is tight: the parent dictates the
// exact extent. Any other axis lets the child pick a size up to the maximum.
type Constraints struct {
	MinWidth  float64
	MaxWidth  float64
	MinHeight float64
	MaxHeight float64
}

// Tight returns constraints that only allow the given size.
func Tight(size graphics.Size) Constraints {
	return Constraints{
		MinWidth:  size.Width,
		MaxWidth:  size.Width,
		MinHeight: size.Height,
		MaxHeight: size.Height,
	}
}

// Loose returns constraints that allow any size up to the given size.
func Loose(size graphics.Size) Constraints {
	return Constraints{
		MaxWidth:  size.Width,
		MaxHeight: size.Height,
	}
}

// Unbounded returns constraints with no maximum on either axis.
func Unbounded() Constraints {
	return Constraints{
		MaxWidth:  math.Inf(1),
		MaxHeight: math.Inf(1),
	}
}

// HasTightWidth reports whether the width is fixed by the parent.
func (c Constraints) HasTightWidth() bool {
	return c.MinWidth >= c.MaxWidth
}

// HasTightHeight reports whether the height is fixed by the parent.
func (c Constraints) HasTightHeight() bool {
	return c.MinHeight >= c.MaxHeight
}

// IsTight reports whether both axes are tight.
func (c Constraints) IsTight() bool {
	return c.HasTightWidth() && c.HasTightHeight()
}

// ConstrainWidth clamps a width into [MinWidth, MaxWidth].
func (c Constraints) ConstrainWidth(width float64) float64 {
	return min(max(width, c.MinWidth), c.MaxWidth)
}

// ConstrainHeight clamps a height into [MinHeight, MaxHeight].
func (c Constraints) ConstrainHeight(height float64) float64 {
	return min(max(height, c.MinHeight), c.MaxHeight)
}

// Constrain clamps size to the constraints.
func (c Constraints) Constrain(size graphics.Size) graphics.Size {
	return graphics.Size{
		Width:  c.ConstrainWidth(size.Width),
		Height: c.ConstrainHeight(size.Height),
	}
}

// String implements fmt.Stringer.
func (c Constraints) String() string {
	return fmt.Sprintf("Constraints(w=%g..%g, h=%g..%g)", c.MinWidth, c.MaxWidth, c.MinHeight, c.MaxHeight)
}
