package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/adaptive-insight-hyue/extremeplot/src/plotting"
)

func TestReadObserved(t *testing.T) {
	tb, err := readObserved(filepath.Join("testdata", "observed.csv"))
	if err != nil {
		t.Fatalf("read observed: %v", err)
	}
	if got := tb.PrimaryName(); got != "water level" {
		t.Fatalf("primary column: got %q", got)
	}
	periods, err := tb.Column("return period")
	if err != nil {
		t.Fatalf("return period column: %v", err)
	}
	if len(periods) != 10 || periods[0] != 1.11 || periods[9] != 20.0 {
		t.Fatalf("return periods: got %v", periods)
	}
}

func TestReadModeled(t *testing.T) {
	tb, err := readModeled(filepath.Join("testdata", "modeled.csv"))
	if err != nil {
		t.Fatalf("read modeled: %v", err)
	}
	idx := tb.Index()
	if len(idx) != 13 || idx[0] != 1.0 || idx[12] != 100.0 {
		t.Fatalf("index: got %v", idx)
	}
	for _, name := range []string{"return value", "lower ci", "upper ci"} {
		if _, err := tb.Column(name); err != nil {
			t.Fatalf("column %q: %v", name, err)
		}
	}
	lower, _ := tb.Column("lower ci")
	central, _ := tb.Column("return value")
	upper, _ := tb.Column("upper ci")
	for i := range central {
		if lower[i] > central[i] || central[i] > upper[i] {
			t.Fatalf("row %d: bounds do not bracket the estimate", i)
		}
	}
}

func TestReadCSV_Errors(t *testing.T) {
	if _, _, err := readCSV(filepath.Join("testdata", "missing.csv")); err == nil {
		t.Fatalf("want error for missing file")
	}
	bad := filepath.Join(t.TempDir(), "bad.csv")
	if err := os.WriteFile(bad, []byte("a,b\n1,notanumber\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, _, err := readCSV(bad); err == nil {
		t.Fatalf("want parse error")
	}
	headerOnly := filepath.Join(t.TempDir(), "header.csv")
	if err := os.WriteFile(headerOnly, []byte("a,b\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, _, err := readCSV(headerOnly); err == nil {
		t.Fatalf("want error for header-only file")
	}
}

func TestEndToEndRender(t *testing.T) {
	observed, err := readObserved(filepath.Join("testdata", "observed.csv"))
	if err != nil {
		t.Fatalf("read observed: %v", err)
	}
	modeled, err := readModeled(filepath.Join("testdata", "modeled.csv"))
	if err != nil {
		t.Fatalf("read modeled: %v", err)
	}
	fig, ax, err := plotting.ReturnValues(observed, modeled, nil)
	if err != nil {
		t.Fatalf("plot: %v", err)
	}
	if got := ax.YLabel(); got != "water level" {
		t.Fatalf("y label: got %q", got)
	}
	out := filepath.Join(t.TempDir(), "return_values.png")
	if err := fig.SavePNG(out); err != nil {
		t.Fatalf("save: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !bytes.HasPrefix(data, []byte{0x89, 'P', 'N', 'G'}) {
		t.Fatalf("output is not a PNG (%d bytes)", len(data))
	}
}
