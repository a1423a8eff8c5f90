package main

import (
	"fmt"

	"github.com/asiatravel/volumeview/pkg/platform"
	"github.com/asiatravel/volumeview/pkg/theme"
)

// AttrsCmd groups attribute bundle subcommands.
type AttrsCmd struct {
	Check AttrsCheckCmd `cmd:"" help:"Validate an attribute bundle and print the resolved values."`
	Path  AttrsPathCmd  `cmd:"" help:"Print the default attribute bundle location."`
}

// AttrsCheckCmd validates an attribute bundle.
type AttrsCheckCmd struct {
	File    string  `arg:"" optional:"" help:"Bundle to check. Defaults to the XDG config file." type:"path"`
	Density float64 `default:"1" help:"Pixels per device-independent unit."`
}

// Run executes the check command.
func (c *AttrsCheckCmd) Run(_ *Globals) error {
	path := c.File
	if path == "" {
		path = defaultAttrsPath()
	}
	a, err := loadAttrs(path, false)
	if err != nil {
		return err
	}
	td := theme.DefaultLightTheme()
	view, err := a.VolumeView(td, platform.DisplayMetrics{Density: c.Density})
	if err != nil {
		reportViewError(err)
		return err
	}
	resolved := view.CreateRenderObject(td, platform.DisplayMetrics{Density: c.Density})
	fmt.Printf("%s: ok\n", path)
	fmt.Printf("  handle radius: %gpx\n", resolved.HandleRadius())
	fmt.Printf("  start value:   %dpx\n", resolved.Value())
	fmt.Printf("  preferred:     %gx%gpx\n", resolved.PreferredSize().Width, resolved.PreferredSize().Height)
	fmt.Printf("  release ends drag: %t\n", view.ReleaseEndsDrag)
	return nil
}

// AttrsPathCmd prints the default bundle path.
type AttrsPathCmd struct{}

// Run executes the path command.
//
//nolint:unparam // error return required by Kong interface
func (c *AttrsPathCmd) Run(_ *Globals) error {
	fmt.Println(defaultAttrsPath())
	return nil
}
