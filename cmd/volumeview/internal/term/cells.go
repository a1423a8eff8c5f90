package term

import (
	"image"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	upperHalf = "▀"
	lowerHalf = "▄"
)

// renderCells downsamples img into terminal cells of cellW×cellH pixels.
// Each cell shows two vertical samples using a half block: the upper half
// in the foreground color and the lower half in the background color.
func renderCells(img *image.RGBA, cellW, cellH float64) string {
	b := img.Bounds()
	cols := int(math.Ceil(float64(b.Dx()) / cellW))
	rows := int(math.Ceil(float64(b.Dy()) / cellH))

	var sb strings.Builder
	for row := 0; row < rows; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < cols; col++ {
			x := b.Min.X + int((float64(col)+0.5)*cellW)
			top, topOK := sample(img, x, b.Min.Y+int((float64(row)+0.25)*cellH))
			bottom, bottomOK := sample(img, x, b.Min.Y+int((float64(row)+0.75)*cellH))
			sb.WriteString(cell(top, topOK, bottom, bottomOK))
		}
	}
	return sb.String()
}

func sample(img *image.RGBA, x, y int) (colorful.Color, bool) {
	if !image.Pt(x, y).In(img.Bounds()) {
		return colorful.Color{}, false
	}
	return colorful.MakeColor(img.At(x, y))
}

func cell(top colorful.Color, topOK bool, bottom colorful.Color, bottomOK bool) string {
	switch {
	case topOK && bottomOK:
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color(top.Hex())).
			Background(lipgloss.Color(bottom.Hex())).
			Render(upperHalf)
	case topOK:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(top.Hex())).Render(upperHalf)
	case bottomOK:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(bottom.Hex())).Render(lowerHalf)
	default:
		return " "
	}
}
