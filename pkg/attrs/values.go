package attrs

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/asiatravel/volumeview/pkg/errors"
	"github.com/asiatravel/volumeview/pkg/graphics"
	"github.com/asiatravel/volumeview/pkg/platform"
	"github.com/asiatravel/volumeview/pkg/theme"
)

// namedColors are the color names accepted without a leading '#'.
var namedColors = map[string]graphics.Color{
	"black":     graphics.ColorBlack,
	"white":     graphics.ColorWhite,
	"red":       graphics.ColorRed,
	"green":     graphics.ColorGreen,
	"blue":      graphics.ColorBlue,
	"gray":      graphics.ColorGray,
	"grey":      graphics.ColorGray,
	"ltgray":    graphics.ColorLightGray,
	"lightgray": graphics.ColorLightGray,
	"lightgrey": graphics.ColorLightGray,
	"dkgray":    graphics.ColorDarkGray,
	"darkgray":  graphics.ColorDarkGray,
	"darkgrey":  graphics.ColorDarkGray,
	"yellow":    graphics.Color(0xFFFFFF00),
	"cyan":      graphics.Color(0xFF00FFFF),
	"magenta":   graphics.Color(0xFFFF00FF),
}

const colorRefPrefix = "@color/"

// ColorValue is a literal color or a reference into the theme's color
// scheme, written as "@color/name".
type ColorValue struct {
	Literal graphics.Color
	Ref     string
}

// ParseColor parses "#RGB", "#RRGGBB", "#AARRGGBB", a color name or a
// "@color/" reference.
func ParseColor(s string) (ColorValue, error) {
	s = strings.TrimSpace(s)
	if ref, ok := strings.CutPrefix(s, colorRefPrefix); ok {
		if ref == "" {
			return ColorValue{}, fmt.Errorf("empty color reference")
		}
		return ColorValue{Ref: ref}, nil
	}
	if strings.HasPrefix(s, "#") {
		c, err := graphics.ColorFromHex(s)
		if err != nil {
			return ColorValue{}, err
		}
		return ColorValue{Literal: c}, nil
	}
	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return ColorValue{Literal: c}, nil
	}
	return ColorValue{}, &errors.ValueError{Expected: "color", Got: s}
}

// Resolve returns the literal color or looks the reference up in scheme.
func (c ColorValue) Resolve(scheme theme.ColorScheme) (graphics.Color, error) {
	if c.Ref == "" {
		return c.Literal, nil
	}
	color, ok := scheme.Named(c.Ref)
	if !ok {
		return 0, fmt.Errorf("unknown color resource %q", c.Ref)
	}
	return color, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *ColorValue) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := ParseColor(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*c = parsed
	return nil
}

// Unit is the unit a Dimension was written in.
type Unit int

const (
	// UnitDP is device-independent pixels. Bare numbers use it.
	UnitDP Unit = iota
	// UnitPX is physical pixels.
	UnitPX
)

func (u Unit) String() string {
	if u == UnitPX {
		return "px"
	}
	return "dp"
}

// Dimension is a length with a unit, such as "10dp" or "12px".
type Dimension struct {
	Value float64
	Unit  Unit
}

// ParseDimension parses "<number>[dp|dip|px]". A bare number is in dp.
func ParseDimension(s string) (Dimension, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	unit := UnitDP
	switch {
	case strings.HasSuffix(s, "dip"):
		s = strings.TrimSuffix(s, "dip")
	case strings.HasSuffix(s, "dp"):
		s = strings.TrimSuffix(s, "dp")
	case strings.HasSuffix(s, "px"):
		s = strings.TrimSuffix(s, "px")
		unit = UnitPX
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return Dimension{}, &errors.ValueError{Expected: "dimension", Got: s}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Dimension{}, &errors.ValueError{Expected: "finite dimension", Got: s}
	}
	if v < 0 {
		return Dimension{}, fmt.Errorf("negative dimension %v", v)
	}
	return Dimension{Value: v, Unit: unit}, nil
}

// Pixels converts the dimension to fractional pixels.
func (d Dimension) Pixels(metrics platform.DisplayMetrics) float64 {
	if d.Unit == UnitPX {
		return d.Value
	}
	return metrics.ToPixels(d.Value)
}

func (d Dimension) String() string {
	return strconv.FormatFloat(d.Value, 'f', -1, 64) + d.Unit.String()
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Dimension) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := ParseDimension(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*d = parsed
	return nil
}
