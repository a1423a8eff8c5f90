package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/asiatravel/volumeview/cmd/volumeview/internal/term"
	"github.com/asiatravel/volumeview/cmd/volumeview/internal/window"
	"github.com/asiatravel/volumeview/pkg/engine"
	"github.com/asiatravel/volumeview/pkg/errors"
	"github.com/asiatravel/volumeview/pkg/graphics"
)

// TUICmd hosts the widget in the terminal.
type TUICmd struct {
	ViewFlags `embed:""`

	DebugFlags `embed:""`

	CellWidth  float64 `default:"4" help:"Widget pixels per terminal column."`
	CellHeight float64 `default:"10" help:"Widget pixels per terminal row."`
	LogFile    string  `help:"Write logs here while the terminal is in use." type:"path"`
}

// Run executes the tui command.
func (c *TUICmd) Run(g *Globals) error {
	logger, closeLog, err := tuiLogger(c.LogFile, g.Debug)
	if err != nil {
		return err
	}
	defer closeLog()
	errors.SetHandler(&errors.LogHandler{Logger: logger, Verbose: g.Debug})

	view, err := c.build()
	if err != nil {
		return err
	}
	model := term.New(view, term.Options{
		CellWidth:  c.CellWidth,
		CellHeight: c.CellHeight,
		Title:      "volumeview",
		Logger:     logger,
	})
	stop, err := c.serve(model.Runner(), logger)
	if err != nil {
		return err
	}
	defer stop()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithReportFocus())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// tuiLogger keeps log output off the terminal the program draws on.
func tuiLogger(path string, debug bool) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return logger, func() { f.Close() }, nil
}

// WindowCmd opens the widget in a window.
type WindowCmd struct {
	ViewFlags `embed:""`

	DebugFlags `embed:""`

	Width   int     `default:"480" help:"Window width."`
	Height  int     `default:"160" help:"Window height."`
	Padding float64 `default:"24" help:"Space around the widget."`
}

// Run executes the window command.
func (c *WindowCmd) Run(_ *Globals) error {
	view, err := c.build()
	if err != nil {
		return err
	}
	background := graphics.ColorWhite
	if c.Dark {
		background = graphics.RGB(0x12, 0x12, 0x12)
	}
	game := window.NewGame(view, window.Options{
		Title:      "volumeview",
		Width:      c.Width,
		Height:     c.Height,
		Padding:    c.Padding,
		Background: background,
		Logger:     slog.Default(),
	})
	stop, err := c.serve(game.Runner(), slog.Default())
	if err != nil {
		return err
	}
	defer stop()
	return window.Run(game)
}

// DebugFlags enable the HTTP inspector for interactive hosts.
type DebugFlags struct {
	DebugAddr string `help:"Serve widget state and frame timings over HTTP on this address, e.g. localhost:9999."`
}

// serve starts the inspector when --debug-addr is set. The returned func
// shuts it down.
func (f DebugFlags) serve(runner *engine.Runner, logger *slog.Logger) (func(), error) {
	if f.DebugAddr == "" {
		return func() {}, nil
	}
	srv := engine.NewDebugServer(runner, logger)
	if _, err := srv.Start(f.DebugAddr); err != nil {
		return nil, err
	}
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := srv.Close(ctx); err != nil {
			logger.Warn("debug server shutdown", "error", err)
		}
	}, nil
}
