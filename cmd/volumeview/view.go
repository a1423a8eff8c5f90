package main

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/asiatravel/volumeview/pkg/attrs"
	"github.com/asiatravel/volumeview/pkg/errors"
	"github.com/asiatravel/volumeview/pkg/platform"
	"github.com/asiatravel/volumeview/pkg/theme"
	"github.com/asiatravel/volumeview/pkg/widgets"
)

const (
	appName       = "volumeview"
	attrsFileName = "attrs.yaml"
)

// ViewFlags select the attribute bundle, theme and display density.
type ViewFlags struct {
	Attrs   string  `help:"Attribute bundle (YAML). Defaults to the XDG config file if present." type:"path"`
	Density float64 `default:"1" help:"Pixels per device-independent unit."`
	Dark    bool    `help:"Use the dark theme."`
}

// defaultAttrsPath is where a bundle is looked for when --attrs is unset.
func defaultAttrsPath() string {
	return filepath.Join(xdg.ConfigHome, appName, attrsFileName)
}

// findAttrs returns the bundle to load. An explicit path must exist. Without
// one, the XDG search result is used, or the default path as an optional
// bundle that may be absent.
func findAttrs(explicit string) (path string, optional bool) {
	if explicit != "" {
		return explicit, false
	}
	path, err := xdg.SearchConfigFile(filepath.Join(appName, attrsFileName))
	if err != nil {
		return defaultAttrsPath(), true
	}
	return path, false
}

// loadAttrs loads the bundle at path. Bundle errors are also reported to the
// error handler so the failing attribute reaches the log with its kind.
func loadAttrs(path string, optional bool) (*attrs.Attributes, error) {
	load := attrs.Load
	if optional {
		load = attrs.LoadOptional
	}
	a, err := load(path)
	if err != nil {
		reportViewError(err)
		return nil, err
	}
	return a, nil
}

func reportViewError(err error) {
	var viewErr *errors.ViewError
	if stderrors.As(err, &viewErr) {
		errors.Report(viewErr)
	}
}

func (f ViewFlags) metrics() platform.DisplayMetrics {
	return platform.DisplayMetrics{Density: f.Density}
}

func (f ViewFlags) theme() *theme.ThemeData {
	if f.Dark {
		return theme.DefaultDarkTheme()
	}
	return theme.DefaultLightTheme()
}

// build loads the bundle, if any, and creates the render object.
func (f ViewFlags) build() (*widgets.RenderVolumeView, error) {
	if f.Density <= 0 {
		return nil, stderrors.New("density must be positive")
	}
	td := f.theme()
	path, optional := findAttrs(f.Attrs)
	a, err := loadAttrs(path, optional)
	if err != nil {
		return nil, err
	}
	config, err := a.VolumeView(td, f.metrics())
	if err != nil {
		reportViewError(err)
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	slog.Debug("resolved attributes", "path", path, "optional", optional)
	return config.CreateRenderObject(td, f.metrics()), nil
}
