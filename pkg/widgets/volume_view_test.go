package widgets_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asiatravel/volumeview/pkg/graphics"
	"github.com/asiatravel/volumeview/pkg/layout"
	"github.com/asiatravel/volumeview/pkg/platform"
	vvtest "github.com/asiatravel/volumeview/pkg/testing"
	"github.com/asiatravel/volumeview/pkg/theme"
	"github.com/asiatravel/volumeview/pkg/widgets"
)

func newVolume(t *testing.T, v widgets.VolumeView) (*widgets.RenderVolumeView, *vvtest.ViewTester) {
	t.Helper()
	view := v.CreateRenderObject(theme.DefaultLightTheme(), platform.DefaultDisplayMetrics())
	return view, vvtest.NewViewTester(t, view)
}

func TestVolumeView_Defaults(t *testing.T) {
	view, tester := newVolume(t, widgets.VolumeView{})
	tester.PumpSize(220, 50)

	assert.Equal(t, 10.0, view.HandleRadius())
	assert.Equal(t, 0, view.Value())
	assert.Equal(t, widgets.DragModeIdle, view.Mode())
	assert.Equal(t, 200, view.MaxValue())
	assert.Equal(t, graphics.RectFromLTWH(0, 0, 220, 50), view.TrackBounds())
}

func TestVolumeView_LayoutRange(t *testing.T) {
	view, tester := newVolume(t, widgets.VolumeView{})
	for _, w := range []float64{20, 21, 50, 220, 1080} {
		tester.PumpSize(w, 50)
		assert.Equal(t, int(w)-20, view.MaxValue(), "width %v", w)
		assert.GreaterOrEqual(t, view.MaxValue(), 0)
	}
}

func TestVolumeView_Measure(t *testing.T) {
	tests := []struct {
		name        string
		density     float64
		constraints layout.Constraints
		want        graphics.Size
	}{
		{"flexible uses preferred", 1, layout.Loose(graphics.Size{Width: 1000, Height: 1000}), graphics.Size{Width: 220, Height: 50}},
		{"density scales preferred", 2, layout.Loose(graphics.Size{Width: 1000, Height: 1000}), graphics.Size{Width: 440, Height: 100}},
		{"exact is honored", 1, layout.Tight(graphics.Size{Width: 300, Height: 80}), graphics.Size{Width: 300, Height: 80}},
		{"exact width, flexible height", 1, layout.Constraints{MinWidth: 150, MaxWidth: 150, MaxHeight: 400}, graphics.Size{Width: 150, Height: 50}},
		{"preferred clamped to bound", 1, layout.Loose(graphics.Size{Width: 100, Height: 30}), graphics.Size{Width: 100, Height: 30}},
		{"unbounded", 1.5, layout.Unbounded(), graphics.Size{Width: 330, Height: 75}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := widgets.VolumeView{}.CreateRenderObject(nil, platform.DisplayMetrics{Density: tt.density})
			tester := vvtest.NewViewTester(t, view)
			tester.Pump(tt.constraints)
			assert.Equal(t, tt.want, view.Size())
		})
	}
}

func TestVolumeView_DensityScalesRadius(t *testing.T) {
	view := widgets.VolumeView{}.CreateRenderObject(nil, platform.DisplayMetrics{Density: 2.75})
	assert.Equal(t, 27.0, view.HandleRadius())
}

func TestVolumeView_TapJumpsThenDragClamps(t *testing.T) {
	view, tester := newVolume(t, widgets.VolumeView{})
	tester.PumpSize(220, 50)
	before := tester.Redraws()

	require.True(t, tester.PointerDown(100))
	assert.Equal(t, 100, view.Value())
	assert.Equal(t, widgets.DragModeDragging, view.Mode())
	assert.Greater(t, tester.Redraws(), before)
	assert.True(t, tester.NeedsPaint())

	tester.PointerMove(250)
	assert.Equal(t, 200, view.Value())
}

func TestVolumeView_GrabDoesNotMove(t *testing.T) {
	view, tester := newVolume(t, widgets.VolumeView{})
	tester.PumpSize(220, 50)
	before := tester.Redraws()

	tester.PointerDown(5)
	assert.Equal(t, 0, view.Value())
	assert.Equal(t, widgets.DragModeDragging, view.Mode())
	assert.Equal(t, before, tester.Redraws())
	assert.False(t, tester.NeedsPaint())

	tester.PointerMove(45)
	assert.Equal(t, 40, view.Value())
}

func TestVolumeView_IncrementalDeltaAfterClamp(t *testing.T) {
	view, tester := newVolume(t, widgets.VolumeView{})
	tester.PumpSize(220, 50)

	tester.PointerDown(190)
	tester.PointerMove(300)
	assert.Equal(t, 200, view.Value())
	// Moving back follows the pointer delta, not the distance from the
	// overshoot point to the handle.
	tester.PointerMove(290)
	assert.Equal(t, 190, view.Value())
}

func TestVolumeView_FarPointerSaturates(t *testing.T) {
	view, tester := newVolume(t, widgets.VolumeView{})
	tester.PumpSize(220, 50)

	tester.PointerDown(100)
	tester.PointerMove(1e20)
	assert.Equal(t, 200, view.Value())
	tester.PointerMove(-1e20)
	assert.Equal(t, 0, view.Value())
}

func TestVolumeView_NonFiniteConfigFallsBack(t *testing.T) {
	view, tester := newVolume(t, widgets.VolumeView{HandleRadius: math.NaN(), StartValue: math.Inf(1)})
	tester.PumpSize(220, 50)
	assert.Equal(t, 10.0, view.HandleRadius())
	assert.Equal(t, math.MaxInt32, view.Value())

	tester.PointerDown(10)
	tester.PointerMove(15)
	assert.Equal(t, 15, view.Value())

	view, tester = newVolume(t, widgets.VolumeView{HandleRadius: math.Inf(1), StartValue: math.NaN()})
	tester.PumpSize(220, 50)
	assert.Equal(t, 10.0, view.HandleRadius())
	assert.Equal(t, 0, view.Value())
}

func TestVolumeView_MovesStayInRange(t *testing.T) {
	view, tester := newVolume(t, widgets.VolumeView{})
	tester.PumpSize(220, 50)
	rng := rand.New(rand.NewSource(7))

	for gesture := 0; gesture < 50; gesture++ {
		tester.PointerDown(rng.Float64() * 220)
		require.GreaterOrEqual(t, view.Value(), 0)
		require.LessOrEqual(t, view.Value(), view.MaxValue())
		for step := 0; step < 20; step++ {
			tester.PointerMove(rng.Float64()*600 - 200)
			require.GreaterOrEqual(t, view.Value(), 0)
			require.LessOrEqual(t, view.Value(), view.MaxValue())
		}
	}
}

func TestVolumeView_MoveBeforeDownIsIgnored(t *testing.T) {
	view, tester := newVolume(t, widgets.VolumeView{StartValue: 50})
	tester.PumpSize(220, 50)

	view.HandlePointer(moveEvent(150))
	assert.Equal(t, 50, view.Value())
	assert.Equal(t, widgets.DragModeIdle, view.Mode())
}

func TestVolumeView_DragPersistsAfterRelease(t *testing.T) {
	view, tester := newVolume(t, widgets.VolumeView{})
	tester.PumpSize(220, 50)

	tester.Drag(100, 120)
	assert.Equal(t, 120, view.Value())
	assert.Equal(t, widgets.DragModeDragging, view.Mode())

	// A stray move delivered straight to the view still steers it.
	view.HandlePointer(moveEvent(130))
	assert.Equal(t, 130, view.Value())
}

func TestVolumeView_ReleaseEndsDrag(t *testing.T) {
	view, tester := newVolume(t, widgets.VolumeView{ReleaseEndsDrag: true})
	tester.PumpSize(220, 50)

	tester.Drag(100, 120)
	assert.Equal(t, 120, view.Value())
	assert.Equal(t, widgets.DragModeIdle, view.Mode())

	view.HandlePointer(moveEvent(130))
	assert.Equal(t, 120, view.Value())
}

func TestVolumeView_MinimumWidthPinsHandle(t *testing.T) {
	view, tester := newVolume(t, widgets.VolumeView{})
	tester.PumpSize(20, 50)
	require.Equal(t, 0, view.MaxValue())

	tester.PointerDown(15)
	tester.PointerMove(200)
	assert.Equal(t, 0, view.Value())
	tester.PointerDown(19.5)
	tester.PointerMove(-50)
	assert.Equal(t, 0, view.Value())
}

func TestVolumeView_UndersizedRangeIsZero(t *testing.T) {
	view, tester := newVolume(t, widgets.VolumeView{})
	tester.PumpSize(12, 50)
	assert.Equal(t, 0, view.MaxValue())

	tester.PointerDown(11)
	assert.Equal(t, 0, view.Value())
}

func TestVolumeView_ShrinkKeepsStaleValue(t *testing.T) {
	view, tester := newVolume(t, widgets.VolumeView{})
	tester.PumpSize(220, 50)
	tester.PointerDown(200)
	require.Equal(t, 200, view.Value())

	tester.PumpSize(100, 50)
	assert.Equal(t, 80, view.MaxValue())
	assert.Equal(t, 200, view.Value())

	tester.PointerMove(199)
	assert.Equal(t, 80, view.Value())
}

func TestVolumeView_PaintOrderAndGeometry(t *testing.T) {
	_, tester := newVolume(t, widgets.VolumeView{})
	tester.PumpSize(220, 50)
	tester.PointerDown(100)

	ops := tester.Frame()
	require.NotNil(t, ops)
	want := []vvtest.DisplayOp{
		{Op: "drawRRect", Params: map[string]any{
			"rect":   map[string]any{"left": 0.0, "top": 0.0, "right": 220.0, "bottom": 50.0},
			"radius": map[string]any{"x": 10.0, "y": 10.0},
			"color":  "0xFF888888",
		}},
		{Op: "drawLine", Params: map[string]any{
			"x1": 0.0, "y1": 25.0, "x2": 100.0, "y2": 25.0,
			"strokeWidth": 5.0, "cap": "butt", "color": "0xFF0000FF",
		}},
		{Op: "drawCircle", Params: map[string]any{
			"cx": 110.0, "cy": 25.0, "radius": 10.0, "color": "0xFF00FF00",
		}},
		{Op: "drawLine", Params: map[string]any{
			"x1": 120.0, "y1": 25.0, "x2": 220.0, "y2": 25.0,
			"strokeWidth": 5.0, "cap": "butt", "color": "0xFFCCCCCC",
		}},
	}
	assert.Equal(t, want, ops)
}

func TestVolumeView_PaintUsesIntegerHeightMath(t *testing.T) {
	_, tester := newVolume(t, widgets.VolumeView{})
	ops := tester.PumpSize(220, 33)
	require.Len(t, ops, 4)
	assert.Equal(t, map[string]any{"x": 6.0, "y": 6.0}, ops[0].Params["radius"])
	assert.Equal(t, 16.0, ops[2].Params["cy"])
}

func TestVolumeView_PaintIsIdempotent(t *testing.T) {
	_, tester := newVolume(t, widgets.VolumeView{})
	tester.PumpSize(220, 50)
	tester.Drag(60, 90, 75)

	first := tester.PaintOps()
	second := tester.PaintOps()
	assert.Equal(t, first, second)
}

func TestVolumeView_CustomColorsKeepTrackGray(t *testing.T) {
	red := graphics.RGB(0xE5, 0x39, 0x35)
	_, tester := newVolume(t, widgets.VolumeView{
		HandleColor:   red,
		FilledColor:   graphics.ColorBlack,
		UnfilledColor: graphics.ColorWhite,
		HandleRadius:  8,
		StartValue:    30,
	})
	ops := tester.PumpSize(200, 40)
	require.Len(t, ops, 4)
	assert.Equal(t, "0xFF888888", ops[0].Params["color"])
	assert.Equal(t, "0xFF000000", ops[1].Params["color"])
	assert.Equal(t, 4.0, ops[1].Params["strokeWidth"])
	assert.Equal(t, "0xFFE53935", ops[2].Params["color"])
	assert.Equal(t, 38.0, ops[2].Params["cx"])
	assert.Equal(t, "0xFFFFFFFF", ops[3].Params["color"])
	assert.Equal(t, 46.0, ops[3].Params["x1"])
}

func TestVolumeView_ThemeTrackColor(t *testing.T) {
	view := widgets.VolumeView{}.CreateRenderObject(theme.DefaultDarkTheme(), platform.DefaultDisplayMetrics())
	tester := vvtest.NewViewTester(t, view)
	ops := tester.PumpSize(220, 50)
	require.NotEmpty(t, ops)
	assert.Equal(t, "0xFF3A3A3A", ops[0].Params["color"])
}

func TestVolumeView_DebugProperties(t *testing.T) {
	view, tester := newVolume(t, widgets.VolumeView{})
	tester.PumpSize(220, 50)
	tester.PointerDown(100)

	assert.Equal(t, map[string]any{
		"value":        100,
		"maxValue":     200,
		"mode":         "dragging",
		"handleRadius": 10.0,
	}, view.DebugProperties())
	assert.Equal(t, 100, tester.Runner().Snapshot().Properties["value"])
}
