package plotting

import (
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
)

// logTicks returns one tick per decade inside [min, max], labelled with
// format. Degenerate spans fall back to endpoint ticks so the axis
// always has the two ticks the renderer needs.
func logTicks(min, max float64, format func(float64) string) []chart.Tick {
	if max < min {
		min, max = max, min
	}
	if min <= 0 {
		min = 1
	}
	if max < min {
		max = min
	}
	lo := int(math.Ceil(math.Log10(min) - 1e-9))
	hi := int(math.Floor(math.Log10(max) + 1e-9))
	var ticks []chart.Tick
	for d := lo; d <= hi; d++ {
		v := math.Pow(10, float64(d))
		ticks = append(ticks, chart.Tick{Value: v, Label: format(v)})
	}
	if len(ticks) >= 2 {
		return ticks
	}
	out := make([]chart.Tick, 0, 3)
	if len(ticks) == 0 || min < ticks[0].Value {
		out = append(out, chart.Tick{Value: min, Label: format(min)})
	}
	out = append(out, ticks...)
	if max > out[len(out)-1].Value {
		out = append(out, chart.Tick{Value: max, Label: format(max)})
	}
	if len(out) < 2 {
		out = append(out, chart.Tick{Value: max, Label: format(max)})
	}
	return out
}

// logGridLines returns major lines at each decade and minor lines at
// the 2..9 mantissas, clipped to [min, max].
func logGridLines(min, max float64) []chart.GridLine {
	if max < min {
		min, max = max, min
	}
	if min <= 0 {
		min = 1
	}
	lo := int(math.Floor(math.Log10(min)))
	hi := int(math.Ceil(math.Log10(max)))
	var lines []chart.GridLine
	for d := lo; d <= hi; d++ {
		base := math.Pow(10, float64(d))
		if base >= min && base <= max {
			lines = append(lines, chart.GridLine{Value: base})
		}
		for m := 2; m <= 9; m++ {
			v := base * float64(m)
			if v > min && v < max {
				lines = append(lines, chart.GridLine{IsMinor: true, Value: v})
			}
		}
	}
	return lines
}
