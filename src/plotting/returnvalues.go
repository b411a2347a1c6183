package plotting

import (
	"errors"
	"fmt"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/adaptive-insight-hyue/extremeplot/src/logging"
	"github.com/adaptive-insight-hyue/extremeplot/src/styling"
	"github.com/adaptive-insight-hyue/extremeplot/src/table"
)

const (
	// Default figure size in inches (width over the golden ratio).
	defaultFigWidth  = 8.0
	defaultFigHeight = 4.944

	// Marker radius in pixels for observed extreme values.
	markerRadius = 2.5
)

// Confidence elements use a fixed light blue; the central curve falls
// back to this coral when the theme cycle is too short.
var (
	confidenceColor    = styling.Color{R: 0x51, G: 0x99, B: 0xFF, A: 0xFF} // #5199FF
	fallbackCurveColor = styling.Color{R: 0xF8, G: 0x5C, B: 0x50, A: 0xFF} // #F85C50
)

var dashPattern = []float64{5, 4}

type config struct {
	widthIn  float64
	heightIn float64
	theme    *styling.Theme
}

// Option adjusts a single plotting call.
type Option func(*config)

// WithFigSize sets the created figure's size in inches. Ignored when
// drawing on existing axes.
func WithFigSize(widthIn, heightIn float64) Option {
	return func(c *config) {
		c.widthIn = widthIn
		c.heightIn = heightIn
	}
}

// WithTheme overrides the process theme for the duration of the call.
func WithTheme(t styling.Theme) Option {
	return func(c *config) { c.theme = &t }
}

// ReturnValues draws observed extreme-value points against the modeled
// return-value curve and its confidence band on a semilogarithmic axis.
//
// observed carries the extreme-value magnitudes in its first column
// (whose name becomes the vertical axis label, verbatim) and a
// "return period" column. modeled is indexed by return period and
// carries "return value", "lower ci" and "upper ci" columns.
//
// When ax is nil a new figure and axes are created and the figure is
// returned; otherwise drawing happens in place on ax and the figure
// return is nil, signalling that the caller owns the figure.
func ReturnValues(observed, modeled *table.Table, ax *Axes, opts ...Option) (*Figure, *Axes, error) {
	cfg := config{widthIn: defaultFigWidth, heightIn: defaultFigHeight}
	for _, o := range opts {
		o(&cfg)
	}

	magnitudes, err := observed.Column(observed.PrimaryName())
	if err != nil {
		return nil, nil, fmt.Errorf("observed table: %w", err)
	}
	periods, err := observed.Column("return period")
	if err != nil {
		return nil, nil, fmt.Errorf("observed table: %w", err)
	}
	central, err := modeled.Column("return value")
	if err != nil {
		return nil, nil, fmt.Errorf("modeled table: %w", err)
	}
	lowerCI, err := modeled.Column("lower ci")
	if err != nil {
		return nil, nil, fmt.Errorf("modeled table: %w", err)
	}
	upperCI, err := modeled.Column("upper ci")
	if err != nil {
		return nil, nil, fmt.Errorf("modeled table: %w", err)
	}
	if modeled.Index() == nil {
		return nil, nil, errors.New("modeled table: missing return period index")
	}

	theme := styling.Current()
	if cfg.theme != nil {
		theme = *cfg.theme
	}
	restore := styling.Apply(theme)
	defer restore()

	var fig *Figure
	if ax == nil {
		logging.Debugf("creating new figure and axes")
		fig = NewFigure(cfg.widthIn, cfg.heightIn)
		ax = fig.Axes()
	} else {
		logging.Debugf("plotting to existing axes")
	}

	th := styling.Current()
	curveColor := fallbackCurveColor
	if len(th.Cycle) > 1 {
		curveColor = th.Cycle[1]
	}

	logging.Debugf("configuring axes")
	ax.LogX()
	ax.Grid(true)
	ax.XTickFormat("%.0f")

	// Input tables stay caller-owned; series hold copies.
	index := clone(modeled.Index())
	lower := clone(lowerCI)
	upper := clone(upperCI)

	logging.Debugf("plotting confidence band")
	ax.addSeries(bandSeries{
		Name:    "confidence band",
		Style:   chart.Style{FillColor: confidenceColor.WithAlpha(64).Draw()},
		XValues: index,
		Lower:   lower,
		Upper:   upper,
	}, index)

	logging.Debugf("plotting confidence bounds")
	for _, bound := range []struct {
		name   string
		values []float64
	}{
		{"lower ci", lower},
		{"upper ci", upper},
	} {
		ax.addSeries(chart.ContinuousSeries{
			Name:    bound.name,
			XValues: index,
			YValues: bound.values,
			Style: chart.Style{
				StrokeColor:     confidenceColor.Draw(),
				StrokeWidth:     1,
				StrokeDashArray: dashPattern,
			},
		}, index)
	}

	logging.Debugf("plotting return value curve")
	ax.addSeries(chart.ContinuousSeries{
		Name:    "return value",
		XValues: index,
		YValues: clone(central),
		Style: chart.Style{
			StrokeColor: curveColor.Draw(),
			StrokeWidth: 2,
		},
	}, index)

	logging.Debugf("plotting observed extreme values")
	obsPeriods := clone(periods)
	ax.addSeries(scatterSeries{
		Name:    "observed",
		XValues: obsPeriods,
		YValues: clone(magnitudes),
		Style: chart.Style{
			DotColor:    chart.ColorBlack,
			DotWidth:    markerRadius,
			StrokeColor: chart.ColorWhite,
			StrokeWidth: 1,
		},
	}, obsPeriods)

	logging.Debugf("labeling axes")
	ax.SetXLabel("Return period")
	ax.SetYLabel(observed.PrimaryName())

	return fig, ax, nil
}

func clone(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)
	return out
}
