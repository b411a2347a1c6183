package plotting

import (
	"os"
	"path/filepath"
	"testing"
)

// TestWriteScreenshots renders an example return-value chart as a PNG
// for documentation. Headless and skipped unless EVAPLOT_SCREENSHOT_DIR
// is set.
func TestWriteScreenshots(t *testing.T) {
	outDir := os.Getenv("EVAPLOT_SCREENSHOT_DIR")
	if outDir == "" {
		t.Skip("EVAPLOT_SCREENSHOT_DIR not set")
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		t.Fatalf("create out dir: %v", err)
	}

	fig, ax, err := ReturnValues(makeObserved(t, "water level"), makeModeled(t), nil)
	if err != nil {
		t.Fatalf("plot: %v", err)
	}
	ax.SetXLim(1, 100)
	ax.SetYLim(1, 4)

	outPath := filepath.Join(outDir, "return_values.png")
	if err := fig.SavePNG(outPath); err != nil {
		t.Fatalf("save: %v", err)
	}
}
