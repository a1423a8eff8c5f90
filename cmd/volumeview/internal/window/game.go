// Package window hosts a VolumeView in a desktop or mobile window using
// ebiten. Mouse and touch input are polled every tick and fed to the widget
// as pointer events.
package window

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/asiatravel/volumeview/pkg/engine"
	"github.com/asiatravel/volumeview/pkg/gestures"
	"github.com/asiatravel/volumeview/pkg/graphics"
	"github.com/asiatravel/volumeview/pkg/layout"
	"github.com/asiatravel/volumeview/pkg/widgets"
)

// Options configures the window.
type Options struct {
	Title      string
	Width      int
	Height     int
	Padding    float64
	Background graphics.Color
	Logger     *slog.Logger
}

// Game implements ebiten.Game around an engine.Runner.
type Game struct {
	view    *widgets.RenderVolumeView
	runner  *engine.Runner
	opts    Options
	tracker gestures.PointerTracker
	touchID ebiten.TouchID
	touched bool
	screen  graphics.Size
}

// NewGame hosts view, padded from the window's top-left corner.
func NewGame(view *widgets.RenderVolumeView, opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	origin := graphics.Offset{X: opts.Padding, Y: opts.Padding}
	return &Game{
		view:   view,
		runner: engine.NewRunner(view, engine.WithLogger(logger), engine.WithOrigin(origin)),
		opts:   opts,
	}
}

// Runner returns the runner driving the hosted view.
func (g *Game) Runner() *engine.Runner {
	return g.runner
}

// Run opens the window for game and blocks until it is closed.
func Run(game *Game) error {
	ebiten.SetWindowSize(game.opts.Width, game.opts.Height)
	ebiten.SetWindowTitle(game.opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(game)
}

// Update polls input. Touch takes priority over the mouse.
func (g *Game) Update() error {
	pressed, x, y := g.pointerState()
	if !ebiten.IsFocused() {
		if ev, ok := g.tracker.Cancel(); ok {
			g.runner.HandlePointer(ev)
		}
		return nil
	}
	if ev, ok := g.tracker.Sample(pressed, graphics.Offset{X: float64(x), Y: float64(y)}); ok {
		g.runner.HandlePointer(ev)
	}
	return nil
}

func (g *Game) pointerState() (pressed bool, x, y int) {
	if g.touched {
		if inpututil.IsTouchJustReleased(g.touchID) {
			g.touched = false
			x, y = inpututil.TouchPositionInPreviousTick(g.touchID)
			return false, x, y
		}
		x, y = ebiten.TouchPosition(g.touchID)
		return true, x, y
	}
	if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 {
		g.touchID = ids[0]
		g.touched = true
		x, y = ebiten.TouchPosition(g.touchID)
		return true, x, y
	}
	x, y = ebiten.CursorPosition()
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft), x, y
}

// Draw lays the widget out in the padded window and paints it. ebiten
// clears the screen every frame, so the widget repaints unconditionally.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.opts.Background.NRGBA())
	pad := 2 * g.opts.Padding
	constraints := layout.Loose(graphics.Size{
		Width:  max(g.screen.Width-pad, 0),
		Height: max(g.screen.Height-pad, 0),
	})
	size := g.runner.Layout(constraints)
	g.runner.Paint(&ebitenCanvas{dst: screen, origin: g.runner.Origin(), size: size})
}

// Layout uses the outside size as the logical screen so that one widget
// pixel is one device-independent window pixel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.screen = graphics.Size{Width: float64(outsideWidth), Height: float64(outsideHeight)}
	return outsideWidth, outsideHeight
}
