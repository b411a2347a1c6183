package plotting

import (
	"fmt"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/adaptive-insight-hyue/extremeplot/src/styling"
)

type limit struct{ min, max float64 }

// Axes accumulates the drawable state of a single chart: axis scaling,
// grid, labels, limits and the series to draw. Series render in append
// order, so earlier series sit below later ones.
type Axes struct {
	theme styling.Theme

	logX    bool
	grid    bool
	xFormat string
	xLabel  string
	yLabel  string
	xLim    *limit
	yLim    *limit
	legend  bool

	series []chart.Series

	// x extent across all added series, used to anchor the log range
	// and its decade ticks when no explicit limits are set.
	xMin, xMax float64
	hasX       bool
}

// NewAxes returns empty axes styled by the current theme.
func NewAxes() *Axes {
	return &Axes{theme: styling.Current()}
}

// Theme returns the theme captured when the axes were created.
func (ax *Axes) Theme() styling.Theme { return ax.theme }

// LogX switches the horizontal axis to logarithmic scaling.
func (ax *Axes) LogX() { ax.logX = true }

// Grid toggles grid lines at major and minor ticks on both axes.
func (ax *Axes) Grid(on bool) { ax.grid = on }

// XTickFormat sets a fmt verb (e.g. "%.0f") for horizontal tick labels.
func (ax *Axes) XTickFormat(format string) { ax.xFormat = format }

// SetXLabel sets the horizontal axis label.
func (ax *Axes) SetXLabel(s string) { ax.xLabel = s }

// SetYLabel sets the vertical axis label.
func (ax *Axes) SetYLabel(s string) { ax.yLabel = s }

// XLabel returns the horizontal axis label.
func (ax *Axes) XLabel() string { return ax.xLabel }

// YLabel returns the vertical axis label.
func (ax *Axes) YLabel() string { return ax.yLabel }

// SetXLim fixes the horizontal axis range.
func (ax *Axes) SetXLim(min, max float64) { ax.xLim = &limit{min, max} }

// SetYLim fixes the vertical axis range.
func (ax *Axes) SetYLim(min, max float64) { ax.yLim = &limit{min, max} }

// Legend toggles the legend box.
func (ax *Axes) Legend(on bool) { ax.legend = on }

// Series returns the series added so far, in draw order.
func (ax *Axes) Series() []chart.Series { return ax.series }

func (ax *Axes) addSeries(s chart.Series, xs []float64) {
	for _, x := range xs {
		if !ax.hasX {
			ax.xMin, ax.xMax = x, x
			ax.hasX = true
			continue
		}
		if x < ax.xMin {
			ax.xMin = x
		}
		if x > ax.xMax {
			ax.xMax = x
		}
	}
	ax.series = append(ax.series, s)
}

func (ax *Axes) xExtent() (float64, float64) {
	if ax.xLim != nil {
		return ax.xLim.min, ax.xLim.max
	}
	return ax.xMin, ax.xMax
}

func (ax *Axes) xValueFormatter() chart.ValueFormatter {
	if ax.xFormat == "" {
		return nil
	}
	verb := ax.xFormat
	return func(v interface{}) string {
		switch tv := v.(type) {
		case float64:
			return fmt.Sprintf(verb, tv)
		case float32:
			return fmt.Sprintf(verb, float64(tv))
		default:
			return fmt.Sprint(v)
		}
	}
}

func (ax *Axes) formatXTick(v float64) string {
	verb := ax.xFormat
	if verb == "" {
		verb = "%v"
	}
	return fmt.Sprintf(verb, v)
}

func (ax *Axes) gridStyle() chart.Style {
	if !ax.grid {
		return chart.Style{Hidden: true}
	}
	g := ax.theme.Grid
	col := g.Color
	if g.Alpha < 1 {
		col = col.WithAlpha(uint8(g.Alpha*255 + 0.5))
	}
	return chart.Style{
		StrokeColor:     col.Draw(),
		StrokeWidth:     g.Width,
		StrokeDashArray: g.Dash,
	}
}

func (ax *Axes) axisStyle(tick styling.TickStyle) chart.Style {
	return chart.Style{
		StrokeColor: ax.theme.Axes.EdgeColor.Draw(),
		StrokeWidth: ax.theme.Axes.LineWidth,
		FontSize:    ax.theme.Font.Size,
		FontColor:   tick.Color.Draw(),
	}
}

func (ax *Axes) labelStyle() chart.Style {
	return chart.Style{
		FontSize:  ax.theme.Axes.LabelSize,
		FontColor: ax.theme.Font.Color.Draw(),
	}
}

// chart assembles the go-chart representation of these axes.
func (ax *Axes) chart(width, height int, dpi float64) chart.Chart {
	grid := ax.gridStyle()

	xaxis := chart.XAxis{
		Name:           ax.xLabel,
		NameStyle:      ax.labelStyle(),
		Style:          ax.axisStyle(ax.theme.XTick),
		TickStyle:      chart.Style{FontSize: ax.theme.Font.Size, FontColor: ax.theme.XTick.Color.Draw()},
		ValueFormatter: ax.xValueFormatter(),
		GridMajorStyle: grid,
		GridMinorStyle: grid,
	}
	if ax.logX {
		min, max := ax.xExtent()
		xaxis.Range = &chart.LogarithmicRange{Min: min, Max: max}
		xaxis.Ticks = logTicks(min, max, ax.formatXTick)
		if ax.grid {
			xaxis.GridLines = logGridLines(min, max)
		}
	} else if ax.xLim != nil {
		xaxis.Range = &chart.ContinuousRange{Min: ax.xLim.min, Max: ax.xLim.max}
	}

	yaxis := chart.YAxis{
		Name:           ax.yLabel,
		NameStyle:      ax.labelStyle(),
		Style:          ax.axisStyle(ax.theme.YTick),
		TickStyle:      chart.Style{FontSize: ax.theme.Font.Size, FontColor: ax.theme.YTick.Color.Draw()},
		GridMajorStyle: grid,
		GridMinorStyle: grid,
	}
	if ax.yLim != nil {
		yaxis.Range = &chart.ContinuousRange{Min: ax.yLim.min, Max: ax.yLim.max}
	}

	return chart.Chart{
		Width:      width,
		Height:     height,
		DPI:        dpi,
		Background: chart.Style{Padding: chart.Box{Top: 16, Left: 12, Right: 16, Bottom: 12}},
		XAxis:      xaxis,
		YAxis:      yaxis,
		Series:     ax.series,
	}
}

func legendStyle(th styling.Theme) chart.Style {
	st := chart.Style{
		FontSize:  th.Font.Size,
		FontColor: th.Font.Color.Draw(),
	}
	if th.Legend.Frame {
		st.StrokeColor = th.Legend.EdgeColor.Draw()
		st.StrokeWidth = th.Axes.LineWidth
	} else {
		st.StrokeColor = chart.ColorTransparent
		st.FillColor = chart.ColorTransparent
	}
	return st
}
