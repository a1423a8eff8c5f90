// Command volumeview renders and hosts the VolumeView slider.
//
// Subcommands rasterize it to PNG, run it in the terminal, open it in a
// window, or validate attribute bundles.
package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/gin-gonic/gin"

	"github.com/asiatravel/volumeview/pkg/errors"
)

// Globals are flags shared by every subcommand.
type Globals struct {
	Debug bool `help:"Enable debug logging."`
}

// CLI defines the volumeview command structure.
type CLI struct {
	Globals

	Render RenderCmd `cmd:"" help:"Render the widget to a PNG file, optionally after simulated touches."`
	TUI    TUICmd    `cmd:"" name:"tui" help:"Host the widget in the terminal with mouse input."`
	Window WindowCmd `cmd:"" help:"Open the widget in a window with mouse and touch input."`
	Attrs  AttrsCmd  `cmd:"" help:"Inspect attribute bundles."`
}

func main() {
	cli := &CLI{} //nolint:exhaustruct // Kong fills in command fields
	ctx := kong.Parse(cli,
		kong.Name("volumeview"),
		kong.Description("A draggable volume slider widget."),
		kong.UsageOnError(),
	)
	setupLogging(os.Stderr, cli.Debug)

	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}

// setupLogging installs a text logger on w and routes recovered widget
// panics and errors through it.
func setupLogging(w *os.File, debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	if !debug {
		gin.SetMode(gin.ReleaseMode)
	}
	errors.SetHandler(&errors.LogHandler{Logger: logger, Verbose: debug})
}
