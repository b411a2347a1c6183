package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/adaptive-insight-hyue/extremeplot/src/logging"
	"github.com/adaptive-insight-hyue/extremeplot/src/plotting"
	"github.com/adaptive-insight-hyue/extremeplot/src/styling"
	"github.com/adaptive-insight-hyue/extremeplot/src/table"
)

func main() {
	var observedPath, modeledPath, outPath, themePath, logLevel string
	flag.StringVar(&observedPath, "observed", "observed.csv", "CSV of observed extremes: <magnitude>,return period")
	flag.StringVar(&modeledPath, "modeled", "modeled.csv", "CSV of modeled values: return period,return value,lower ci,upper ci")
	flag.StringVar(&outPath, "out", "return_values.png", "Output PNG path")
	flag.StringVar(&themePath, "theme", "", "Optional TOML theme override file")
	flag.StringVar(&logLevel, "loglevel", "warn", "Log level (debug|info|warn|error)")
	flag.Parse()

	logging.SetLevel(logLevel)

	if themePath != "" {
		th, err := styling.LoadFile(themePath)
		if err != nil {
			fatal(err)
		}
		styling.Apply(th)
	}

	observed, err := readObserved(observedPath)
	if err != nil {
		fatal(err)
	}
	modeled, err := readModeled(modeledPath)
	if err != nil {
		fatal(err)
	}

	fig, _, err := plotting.ReturnValues(observed, modeled, nil)
	if err != nil {
		fatal(err)
	}
	if err := fig.SavePNG(outPath); err != nil {
		fatal(err)
	}
	fmt.Printf("wrote %s\n", outPath)
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}

// readCSV parses a header row plus float64 data columns.
func readCSV(path string) ([]string, [][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(records) < 2 {
		return nil, nil, fmt.Errorf("read %s: need a header and at least one data row", path)
	}
	header := records[0]
	cols := make([][]float64, len(header))
	for i := range cols {
		cols[i] = make([]float64, 0, len(records)-1)
	}
	for rowNum, rec := range records[1:] {
		for i, field := range rec {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, nil, fmt.Errorf("read %s row %d: %w", path, rowNum+2, err)
			}
			cols[i] = append(cols[i], v)
		}
	}
	return header, cols, nil
}

// readObserved loads a table whose first column holds the extreme-value
// magnitudes (its header names the chart's vertical axis).
func readObserved(path string) (*table.Table, error) {
	header, cols, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	columns := make([]table.Column, len(header))
	for i, name := range header {
		columns[i] = table.Column{Name: name, Values: cols[i]}
	}
	return table.New(columns...)
}

// readModeled loads a table indexed by its first CSV column (the return
// periods), with the remaining columns kept by name.
func readModeled(path string) (*table.Table, error) {
	header, cols, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	if len(header) < 2 {
		return nil, fmt.Errorf("read %s: need an index column plus value columns", path)
	}
	columns := make([]table.Column, 0, len(header)-1)
	for i, name := range header[1:] {
		columns = append(columns, table.Column{Name: name, Values: cols[i+1]})
	}
	tb, err := table.New(columns...)
	if err != nil {
		return nil, err
	}
	return tb.WithIndex(cols[0])
}
