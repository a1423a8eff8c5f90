package main

import (
	"fmt"
	"image/png"
	"log/slog"
	"math"
	"os"

	"github.com/asiatravel/volumeview/pkg/engine"
	"github.com/asiatravel/volumeview/pkg/gestures"
	"github.com/asiatravel/volumeview/pkg/graphics"
	"github.com/asiatravel/volumeview/pkg/layout"
)

// RenderCmd rasterizes the widget to PNG.
type RenderCmd struct {
	ViewFlags `embed:""`

	Width  float64   `help:"Exact width in pixels. 0 uses the preferred width."`
	Height float64   `help:"Exact height in pixels. 0 uses the preferred height."`
	Tap    []float64 `help:"Touch at x and release. Repeatable; the last touch stays down for --drag."`
	Drag   []float64 `help:"Move the last touch to x. Repeatable."`
	Output string    `short:"o" default:"volumeview.png" help:"Output PNG path." type:"path"`
}

// Run executes the render command.
func (c *RenderCmd) Run(_ *Globals) error {
	view, err := c.build()
	if err != nil {
		return err
	}
	runner := engine.NewRunner(view, engine.WithLogger(slog.Default()))
	size := runner.Layout(renderConstraints(c.Width, c.Height))

	y := size.Height / 2
	send := func(id int64, x float64, phase gestures.PointerPhase) {
		runner.HandlePointer(gestures.PointerEvent{
			PointerID: id,
			Position:  graphics.Offset{X: x, Y: y},
			Phase:     phase,
		})
	}
	if len(c.Drag) > 0 && len(c.Tap) == 0 {
		slog.Warn("--drag without --tap has no effect")
	}
	for i, x := range c.Tap {
		id := int64(i + 1)
		send(id, x, gestures.PointerPhaseDown)
		if i < len(c.Tap)-1 {
			send(id, x, gestures.PointerPhaseUp)
			continue
		}
		last := x
		for _, dx := range c.Drag {
			send(id, dx, gestures.PointerPhaseMove)
			last = dx
		}
		send(id, last, gestures.PointerPhaseUp)
	}

	canvas := graphics.NewRasterCanvas(int(math.Ceil(size.Width)), int(math.Ceil(size.Height)))
	runner.Paint(canvas)
	if err := writePNG(c.Output, canvas); err != nil {
		return err
	}
	slog.Info("rendered", "path", c.Output, "width", size.Width, "height", size.Height,
		"value", view.Value(), "max", view.MaxValue())
	return nil
}

// renderConstraints makes positive dimensions exact and leaves the rest
// open so the preferred size applies.
func renderConstraints(width, height float64) layout.Constraints {
	c := layout.Unbounded()
	if width > 0 {
		c.MinWidth, c.MaxWidth = width, width
	}
	if height > 0 {
		c.MinHeight, c.MaxHeight = height, height
	}
	return c
}

func writePNG(path string, canvas *graphics.RasterCanvas) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := png.Encode(f, canvas.Image()); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
