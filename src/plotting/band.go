package plotting

import (
	"fmt"

	chart "github.com/wcharczuk/go-chart/v2"
)

// bandSeries fills the area between two curves sharing x values. The
// go-chart fill style only reaches down to the axis floor, so the band
// is drawn directly as a closed polygon: along the upper bound, back
// along the lower bound.
type bandSeries struct {
	Name    string
	Style   chart.Style // FillColor is the band color
	YAxis   chart.YAxisType
	XValues []float64
	Lower   []float64
	Upper   []float64
}

func (bs bandSeries) GetName() string           { return bs.Name }
func (bs bandSeries) GetStyle() chart.Style     { return bs.Style }
func (bs bandSeries) GetYAxis() chart.YAxisType { return bs.YAxis }

func (bs bandSeries) Validate() error {
	if len(bs.XValues) == 0 {
		return fmt.Errorf("band series %q: no x values", bs.Name)
	}
	if len(bs.Lower) != len(bs.XValues) || len(bs.Upper) != len(bs.XValues) {
		return fmt.Errorf("band series %q: bounds length %d/%d, want %d",
			bs.Name, len(bs.Lower), len(bs.Upper), len(bs.XValues))
	}
	return nil
}

// Len and GetValues expose both bounds so axis autoscaling covers the
// full band.
func (bs bandSeries) Len() int { return 2 * len(bs.XValues) }

func (bs bandSeries) GetValues(index int) (float64, float64) {
	n := len(bs.XValues)
	if index < n {
		return bs.XValues[index], bs.Lower[index]
	}
	return bs.XValues[index-n], bs.Upper[index-n]
}

func (bs bandSeries) Render(r chart.Renderer, canvasBox chart.Box, xrange, yrange chart.Range, defaults chart.Style) {
	style := bs.Style.InheritFrom(defaults)
	if len(bs.XValues) < 2 || style.FillColor.IsZero() {
		return
	}
	r.SetFillColor(style.FillColor)
	r.MoveTo(canvasBox.Left+xrange.Translate(bs.XValues[0]), canvasBox.Bottom-yrange.Translate(bs.Upper[0]))
	for i := 1; i < len(bs.XValues); i++ {
		r.LineTo(canvasBox.Left+xrange.Translate(bs.XValues[i]), canvasBox.Bottom-yrange.Translate(bs.Upper[i]))
	}
	for i := len(bs.XValues) - 1; i >= 0; i-- {
		r.LineTo(canvasBox.Left+xrange.Translate(bs.XValues[i]), canvasBox.Bottom-yrange.Translate(bs.Lower[i]))
	}
	r.Close()
	r.Fill()
}
