package table

import (
	"errors"
	"fmt"
)

// ErrColumnMissing is returned when a named column is not present in a table.
var ErrColumnMissing = errors.New("column missing")

// Column is a named vector of float64 values.
type Column struct {
	Name   string
	Values []float64
}

// Table is an ordered set of equal-length named columns with an optional
// float64 index. Tables are built once by the caller and treated as
// read-only afterwards; plotting code copies what it needs and never
// retains the backing slices.
type Table struct {
	names []string
	cols  map[string][]float64
	index []float64
	n     int
}

// New builds a table from the given columns. Column order is preserved;
// the first column is the primary column.
func New(cols ...Column) (*Table, error) {
	if len(cols) == 0 {
		return nil, errors.New("table: need at least one column")
	}
	t := &Table{
		names: make([]string, 0, len(cols)),
		cols:  make(map[string][]float64, len(cols)),
		n:     len(cols[0].Values),
	}
	for _, c := range cols {
		if _, dup := t.cols[c.Name]; dup {
			return nil, fmt.Errorf("table: duplicate column %q", c.Name)
		}
		if len(c.Values) != t.n {
			return nil, fmt.Errorf("table: column %q has %d rows, want %d", c.Name, len(c.Values), t.n)
		}
		t.names = append(t.names, c.Name)
		t.cols[c.Name] = c.Values
	}
	return t, nil
}

// WithIndex attaches an index vector (one entry per row) and returns the
// same table for chaining.
func (t *Table) WithIndex(index []float64) (*Table, error) {
	if len(index) != t.n {
		return nil, fmt.Errorf("table: index has %d rows, want %d", len(index), t.n)
	}
	t.index = index
	return t, nil
}

// Index returns the index vector, or nil when none was set.
func (t *Table) Index() []float64 { return t.index }

// Column returns the values of the named column. The returned slice is
// the backing storage and must not be modified.
func (t *Table) Column(name string) ([]float64, error) {
	v, ok := t.cols[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrColumnMissing, name)
	}
	return v, nil
}

// PrimaryName returns the name of the first column.
func (t *Table) PrimaryName() string { return t.names[0] }

// Names returns the column names in definition order.
func (t *Table) Names() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// Len returns the number of rows.
func (t *Table) Len() int { return t.n }
