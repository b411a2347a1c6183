package styling

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"

	toml "github.com/pelletier/go-toml/v2"
)

// Theme is the shared set of rendering defaults applied to every chart
// in the package, so individual charts never re-specify typography,
// tick or grid options.
type Theme struct {
	Font   FontStyle   `toml:"font"`
	Axes   AxesStyle   `toml:"axes"`
	Cycle  []Color     `toml:"cycle"`
	XTick  TickStyle   `toml:"xtick"`
	YTick  TickStyle   `toml:"ytick"`
	Grid   GridStyle   `toml:"grid"`
	Legend LegendStyle `toml:"legend"`
	Figure FigureStyle `toml:"figure"`
}

// FontStyle sets global label and tick text appearance.
type FontStyle struct {
	Family string  `toml:"family"`
	Size   float64 `toml:"size"`
	Color  Color   `toml:"color"`
}

// AxesStyle sets axes border and label rendering.
type AxesStyle struct {
	EdgeColor   Color   `toml:"edge_color"`
	LineWidth   float64 `toml:"line_width"`
	Grid        bool    `toml:"grid"`
	LabelSize   float64 `toml:"label_size"`
	LabelWeight string  `toml:"label_weight"`
}

// TickStyle sets tick mark appearance on one axis. Near/Far are
// bottom/top for the x axis and left/right for the y axis.
type TickStyle struct {
	MajorSize  float64 `toml:"major_size"`
	MinorSize  float64 `toml:"minor_size"`
	MajorWidth float64 `toml:"major_width"`
	MinorWidth float64 `toml:"minor_width"`
	Color      Color   `toml:"color"`
	MajorNear  bool    `toml:"major_near"`
	MajorFar   bool    `toml:"major_far"`
	MinorNear  bool    `toml:"minor_near"`
	MinorFar   bool    `toml:"minor_far"`
}

// GridStyle sets the background grid appearance.
type GridStyle struct {
	Color Color     `toml:"color"`
	Dash  []float64 `toml:"dash"`
	Width float64   `toml:"width"`
	Alpha float64   `toml:"alpha"`
}

// LegendStyle sets the legend box appearance.
type LegendStyle struct {
	Frame     bool  `toml:"frame"`
	EdgeColor Color `toml:"edge_color"`
}

// FigureStyle sets fallback figure dimensions.
type FigureStyle struct {
	Width  float64 `toml:"width"`  // inches
	Height float64 `toml:"height"` // inches
	DPI    float64 `toml:"dpi"`
}

var themeColor = mustColor("#454545")

// Default returns the package theme: muted dark-gray frame, dotted
// grid, a four-color cycle and a 8x5in/96dpi fallback figure.
func Default() Theme {
	tick := TickStyle{
		MajorSize:  2,
		MinorSize:  1,
		MajorWidth: 0.8,
		MinorWidth: 0.6,
		Color:      themeColor,
		MajorNear:  true,
		MajorFar:   true,
		MinorNear:  true,
		MinorFar:   true,
	}
	return Theme{
		Font: FontStyle{Family: "arial", Size: 10, Color: themeColor},
		Axes: AxesStyle{
			EdgeColor:   themeColor,
			LineWidth:   0.8,
			Grid:        true,
			LabelSize:   10,
			LabelWeight: "normal",
		},
		Cycle: []Color{
			mustColor("#1771F1"),
			mustColor("#F85C50"),
			mustColor("#35D073"),
			mustColor("#FFC11E"),
		},
		XTick: tick,
		YTick: tick,
		Grid: GridStyle{
			Color: themeColor,
			Dash:  []float64{1, 3}, // dotted
			Width: 0.4,
			Alpha: 1.0,
		},
		Legend: LegendStyle{Frame: false, EdgeColor: themeColor},
		Figure: FigureStyle{Width: 8, Height: 5, DPI: 96},
	}
}

var current atomic.Pointer[Theme]

func init() {
	d := Default()
	current.Store(&d)
}

// Current returns the process-wide theme.
func Current() Theme { return *current.Load() }

// Apply overrides the process-wide theme and returns a restore func
// that reinstates the previous theme. Restore is idempotent and meant
// for defer, so the override is scoped to the calling operation even
// when it fails part-way.
func Apply(t Theme) (restore func()) {
	prev := current.Load()
	next := t
	current.Store(&next)
	var once sync.Once
	return func() {
		once.Do(func() { current.Store(prev) })
	}
}

// Load reads TOML theme overrides merged over Default.
func Load(r io.Reader) (Theme, error) {
	t := Default()
	if err := toml.NewDecoder(r).Decode(&t); err != nil {
		return Theme{}, fmt.Errorf("decode theme: %w", err)
	}
	return t, nil
}

// LoadFile reads TOML theme overrides from a file.
func LoadFile(path string) (Theme, error) {
	f, err := os.Open(path)
	if err != nil {
		return Theme{}, fmt.Errorf("open theme: %w", err)
	}
	defer f.Close()
	return Load(f)
}
