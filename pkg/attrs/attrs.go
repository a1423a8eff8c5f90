// Package attrs loads declarative VolumeView attribute bundles from YAML.
//
// A bundle mirrors the attributes a layout file would set on the widget:
//
//	version: v1
//	ball_color: "#FF5722"
//	left_color: blue
//	right_color: "@color/colorGray"
//	ball_radius: 12dp
//	start_value: 40dp
//	release_ends_drag: true
//
// Every key is optional. Unset keys leave the widget on its theme defaults.
package attrs

import (
	stderrors "errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/asiatravel/volumeview/pkg/errors"
	"github.com/asiatravel/volumeview/pkg/graphics"
	"github.com/asiatravel/volumeview/pkg/platform"
	"github.com/asiatravel/volumeview/pkg/theme"
	"github.com/asiatravel/volumeview/pkg/widgets"
)

// Attributes is a parsed attribute bundle.
type Attributes struct {
	Version         string      `yaml:"version,omitempty"`
	BallColor       *ColorValue `yaml:"ball_color,omitempty"`
	LeftColor       *ColorValue `yaml:"left_color,omitempty"`
	RightColor      *ColorValue `yaml:"right_color,omitempty"`
	BallRadius      *Dimension  `yaml:"ball_radius,omitempty"`
	StartValue      *Dimension  `yaml:"start_value,omitempty"`
	ReleaseEndsDrag bool        `yaml:"release_ends_drag,omitempty"`
}

// Load reads and parses the bundle at path.
func Load(path string) (*Attributes, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, newError("attrs.Load", errors.KindConfig, "", fmt.Errorf("failed to read %s: %w", path, err))
	}
	return Parse(data)
}

// LoadOptional is Load, but a missing file yields empty attributes.
func LoadOptional(path string) (*Attributes, error) {
	attrs, err := Load(path)
	if err != nil && stderrors.Is(err, os.ErrNotExist) {
		return &Attributes{}, nil
	}
	return attrs, err
}

// Parse decodes a YAML bundle and validates its version. Unknown keys are
// rejected so that typos do not silently fall back to defaults.
func Parse(data []byte) (*Attributes, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, newError("attrs.Parse", errors.KindParsing, "", err)
	}
	attrs := &Attributes{}
	if len(doc.Content) == 0 {
		return attrs, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, newError("attrs.Parse", errors.KindParsing, "", fmt.Errorf("line %d: expected a mapping of attributes", root.Line))
	}
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i].Value, root.Content[i+1]
		field := attrs.field(key)
		if field == nil {
			return nil, newError("attrs.Parse", errors.KindConfig, key, fmt.Errorf("line %d: unknown attribute", root.Content[i].Line))
		}
		if err := value.Decode(field); err != nil {
			return nil, newError("attrs.Parse", errors.KindParsing, key, err)
		}
	}
	if err := checkVersion(attrs.Version); err != nil {
		return nil, newError("attrs.Parse", errors.KindConfig, "version", err)
	}
	return attrs, nil
}

// field returns a pointer to the field decoded from key, or nil.
func (a *Attributes) field(key string) any {
	switch key {
	case "version":
		return &a.Version
	case "ball_color":
		return &a.BallColor
	case "left_color":
		return &a.LeftColor
	case "right_color":
		return &a.RightColor
	case "ball_radius":
		return &a.BallRadius
	case "start_value":
		return &a.StartValue
	case "release_ends_drag":
		return &a.ReleaseEndsDrag
	default:
		return nil
	}
}

// VolumeView resolves the bundle into widget configuration. Dimensions are
// converted with metrics and color references are looked up in td, which
// may be nil for the light defaults.
func (a *Attributes) VolumeView(td *theme.ThemeData, metrics platform.DisplayMetrics) (widgets.VolumeView, error) {
	if td == nil {
		td = theme.DefaultLightTheme()
	}
	view := widgets.VolumeView{ReleaseEndsDrag: a.ReleaseEndsDrag}

	scheme := td.ColorScheme
	for _, c := range []struct {
		key   string
		value *ColorValue
		dst   *graphics.Color
	}{
		{"ball_color", a.BallColor, &view.HandleColor},
		{"left_color", a.LeftColor, &view.FilledColor},
		{"right_color", a.RightColor, &view.UnfilledColor},
	} {
		if c.value == nil {
			continue
		}
		color, err := c.value.Resolve(scheme)
		if err != nil {
			return widgets.VolumeView{}, newError("attrs.VolumeView", errors.KindConfig, c.key, err)
		}
		// The widget reads a zero color as "use the theme default".
		if color == graphics.ColorTransparent {
			err := &errors.ValueError{Expected: "non-zero color", Got: color.Hex()}
			return widgets.VolumeView{}, newError("attrs.VolumeView", errors.KindConfig, c.key, err)
		}
		*c.dst = color
	}

	if a.BallRadius != nil {
		view.HandleRadius = a.BallRadius.Pixels(metrics)
	}
	if a.StartValue != nil {
		view.StartValue = a.StartValue.Pixels(metrics)
	}
	return view, nil
}

func newError(op string, kind errors.ErrorKind, attr string, err error) *errors.ViewError {
	return &errors.ViewError{
		Op:        op,
		Kind:      kind,
		Attr:      attr,
		Err:       err,
		Timestamp: time.Now(),
	}
}
