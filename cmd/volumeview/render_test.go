package main

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asiatravel/volumeview/pkg/graphics"
	"github.com/asiatravel/volumeview/pkg/layout"
)

func decodePNG(t *testing.T, path string) *pngImage {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	return &pngImage{img.Bounds().Dx(), img.Bounds().Dy(), func(x, y int) color.NRGBA {
		return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
	}}
}

type pngImage struct {
	w, h int
	at   func(x, y int) color.NRGBA
}

func TestRenderCmd_TapAndDrag(t *testing.T) {
	isolateConfig(t)
	out := filepath.Join(t.TempDir(), "out.png")
	cmd := &RenderCmd{
		ViewFlags: ViewFlags{Density: 1},
		Tap:       []float64{100},
		Drag:      []float64{130},
		Output:    out,
	}
	require.NoError(t, cmd.Run(&Globals{}))

	img := decodePNG(t, out)
	assert.Equal(t, 220, img.w)
	assert.Equal(t, 50, img.h)
	assert.Equal(t, graphics.ColorGreen.NRGBA(), img.at(140, 25), "handle centre")
	assert.Equal(t, graphics.ColorBlue.NRGBA(), img.at(60, 25), "filled segment")
	assert.Equal(t, graphics.ColorLightGray.NRGBA(), img.at(200, 25), "unfilled segment")
	assert.Equal(t, graphics.ColorGray.NRGBA(), img.at(60, 5), "track background")
}

func TestRenderCmd_ExactSizeAndDensity(t *testing.T) {
	isolateConfig(t)
	out := filepath.Join(t.TempDir(), "out.png")
	cmd := &RenderCmd{
		ViewFlags: ViewFlags{Density: 2},
		Width:     300,
		Output:    out,
	}
	require.NoError(t, cmd.Run(&Globals{}))

	img := decodePNG(t, out)
	assert.Equal(t, 300, img.w)
	assert.Equal(t, 100, img.h)
	// Handle of radius 20 at value 0.
	assert.Equal(t, graphics.ColorGreen.NRGBA(), img.at(20, 50))
}

func TestRenderCmd_BadOutput(t *testing.T) {
	isolateConfig(t)
	cmd := &RenderCmd{
		ViewFlags: ViewFlags{Density: 1},
		Output:    filepath.Join(t.TempDir(), "missing", "out.png"),
	}
	assert.Error(t, cmd.Run(&Globals{}))
}

func TestRenderConstraints(t *testing.T) {
	c := renderConstraints(0, 0)
	assert.Equal(t, layout.Unbounded(), c)

	c = renderConstraints(120, 0)
	assert.True(t, c.HasTightWidth())
	assert.False(t, c.HasTightHeight())
	assert.Equal(t, graphics.Size{Width: 120, Height: 50}, c.Constrain(graphics.Size{Width: 220, Height: 50}))
}
