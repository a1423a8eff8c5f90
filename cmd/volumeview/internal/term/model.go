// Package term hosts a VolumeView in the terminal with bubbletea.
//
// The widget is rasterized at pixel resolution and downsampled into
// half-block cells. Mouse events are mapped from cell coordinates back to
// the pixel centre of the cell under the cursor.
package term

import (
	"fmt"
	"log/slog"
	"math"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/asiatravel/volumeview/pkg/engine"
	"github.com/asiatravel/volumeview/pkg/gestures"
	"github.com/asiatravel/volumeview/pkg/graphics"
	"github.com/asiatravel/volumeview/pkg/layout"
	"github.com/asiatravel/volumeview/pkg/widgets"
)

// headerRows is the number of terminal rows above the widget.
const headerRows = 1

// footerRows is the number of terminal rows below the widget.
const footerRows = 1

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Options configures the terminal host.
type Options struct {
	// CellWidth is the number of widget pixels per terminal column.
	CellWidth float64
	// CellHeight is the number of widget pixels per terminal row.
	CellHeight float64
	// Title is shown above the widget.
	Title string
	// Logger receives runner diagnostics. Nil uses slog.Default().
	Logger *slog.Logger
}

// DefaultOptions returns options that fit the preferred widget size in
// about 55×5 cells.
func DefaultOptions() Options {
	return Options{CellWidth: 4, CellHeight: 10, Title: "volumeview"}
}

// Model is the bubbletea model hosting one VolumeView.
type Model struct {
	view    *widgets.RenderVolumeView
	runner  *engine.Runner
	tracker gestures.PointerTracker
	opts    Options

	width, height int
	picture       string
}

// New hosts view. Zero cell sizes fall back to DefaultOptions.
func New(view *widgets.RenderVolumeView, opts Options) Model {
	defaults := DefaultOptions()
	if opts.CellWidth <= 0 {
		opts.CellWidth = defaults.CellWidth
	}
	if opts.CellHeight <= 0 {
		opts.CellHeight = defaults.CellHeight
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	runner := engine.NewRunner(view,
		engine.WithLogger(logger),
		engine.WithOrigin(graphics.Offset{Y: headerRows * opts.CellHeight}),
	)
	m := Model{view: view, runner: runner, opts: opts}
	m.repaint()
	return m
}

// Runner returns the runner driving the hosted view.
func (m Model) Runner() *engine.Runner {
	return m.runner
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.MouseMsg:
		m.handleMouse(msg)
	case tea.BlurMsg:
		if ev, ok := m.tracker.Cancel(); ok {
			m.runner.HandlePointer(ev)
		}
	}
	m.repaint()
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	status := fmt.Sprintf("value %d/%d  %s  q quits", m.view.Value(), m.view.MaxValue(), m.view.Mode())
	return titleStyle.Render(m.opts.Title) + "\n" + m.picture + "\n" + statusStyle.Render(status)
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	var pressed bool
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		pressed = true
	case tea.MouseActionMotion:
		if !m.tracker.Active() {
			return
		}
		pressed = true
	case tea.MouseActionRelease:
		pressed = false
	default:
		return
	}
	if ev, ok := m.tracker.Sample(pressed, m.cellCenter(msg.X, msg.Y)); ok {
		m.runner.HandlePointer(ev)
	}
}

// cellCenter maps a terminal cell to the pixel at its centre, in host
// coordinates.
func (m *Model) cellCenter(col, row int) graphics.Offset {
	return graphics.Offset{
		X: (float64(col) + 0.5) * m.opts.CellWidth,
		Y: (float64(row) + 0.5) * m.opts.CellHeight,
	}
}

func (m *Model) constraints() layout.Constraints {
	if m.width <= 0 || m.height <= 0 {
		return layout.Unbounded()
	}
	rows := max(m.height-headerRows-footerRows, 1)
	return layout.Loose(graphics.Size{
		Width:  float64(m.width) * m.opts.CellWidth,
		Height: float64(rows) * m.opts.CellHeight,
	})
}

func (m *Model) repaint() {
	size := m.runner.Layout(m.constraints())
	if !m.runner.NeedsPaint() && m.picture != "" {
		return
	}
	w, h := int(math.Ceil(size.Width)), int(math.Ceil(size.Height))
	if w <= 0 || h <= 0 {
		m.picture = ""
		return
	}
	canvas := graphics.NewRasterCanvas(w, h)
	m.runner.Paint(canvas)
	m.picture = renderCells(canvas.Image(), m.opts.CellWidth, m.opts.CellHeight)
}
