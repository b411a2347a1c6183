package plotting

import (
	"bytes"
	"fmt"
	"io"
	"os"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/adaptive-insight-hyue/extremeplot/src/styling"
)

// Figure owns one Axes and the output dimensions. Dimensions are given
// in inches and converted to pixels at the theme resolution.
type Figure struct {
	width  int // pixels
	height int
	dpi    float64
	ax     *Axes
}

// NewFigure creates a figure of the given size in inches at the current
// theme resolution. Non-positive dimensions fall back to the theme
// figure size.
func NewFigure(widthIn, heightIn float64) *Figure {
	th := styling.Current()
	dpi := th.Figure.DPI
	if dpi <= 0 {
		dpi = 96
	}
	if widthIn <= 0 || heightIn <= 0 {
		widthIn, heightIn = th.Figure.Width, th.Figure.Height
	}
	return &Figure{
		width:  int(widthIn*dpi + 0.5),
		height: int(heightIn*dpi + 0.5),
		dpi:    dpi,
		ax:     NewAxes(),
	}
}

// Axes returns the figure's axes.
func (f *Figure) Axes() *Axes { return f.ax }

// Size returns the output dimensions in pixels.
func (f *Figure) Size() (width, height int) { return f.width, f.height }

// Render draws the figure as PNG to w.
func (f *Figure) Render(w io.Writer) error {
	ch := f.ax.chart(f.width, f.height, f.dpi)
	if f.ax.legend {
		ch.Elements = append(ch.Elements, chart.Legend(&ch, legendStyle(f.ax.theme)))
	}
	if err := ch.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render figure: %w", err)
	}
	return nil
}

// SavePNG renders the figure and writes it to path.
func (f *Figure) SavePNG(path string) error {
	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
