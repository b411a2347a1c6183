package plotting

import (
	"fmt"

	chart "github.com/wcharczuk/go-chart/v2"
)

// scatterSeries draws standalone circular markers with a filled body
// (DotColor) and a contrasting edge stroke (StrokeColor/StrokeWidth),
// which the stock continuous series cannot do.
type scatterSeries struct {
	Name    string
	Style   chart.Style
	YAxis   chart.YAxisType
	XValues []float64
	YValues []float64
}

func (ss scatterSeries) GetName() string           { return ss.Name }
func (ss scatterSeries) GetStyle() chart.Style     { return ss.Style }
func (ss scatterSeries) GetYAxis() chart.YAxisType { return ss.YAxis }

func (ss scatterSeries) Validate() error {
	if len(ss.XValues) == 0 {
		return fmt.Errorf("scatter series %q: no x values", ss.Name)
	}
	if len(ss.YValues) != len(ss.XValues) {
		return fmt.Errorf("scatter series %q: %d y values, want %d",
			ss.Name, len(ss.YValues), len(ss.XValues))
	}
	return nil
}

func (ss scatterSeries) Len() int { return len(ss.XValues) }

func (ss scatterSeries) GetValues(index int) (float64, float64) {
	return ss.XValues[index], ss.YValues[index]
}

func (ss scatterSeries) Render(r chart.Renderer, canvasBox chart.Box, xrange, yrange chart.Range, defaults chart.Style) {
	style := ss.Style.InheritFrom(defaults)
	radius := style.DotWidth
	if radius <= 0 {
		radius = 3
	}
	r.SetFillColor(style.DotColor)
	r.SetStrokeColor(style.StrokeColor)
	r.SetStrokeWidth(style.StrokeWidth)
	for i := range ss.XValues {
		x := canvasBox.Left + xrange.Translate(ss.XValues[i])
		y := canvasBox.Bottom - yrange.Translate(ss.YValues[i])
		r.Circle(radius, x, y)
		r.FillStroke()
	}
}
