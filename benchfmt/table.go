// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchfmt reads benchmark measurement files.
//
// A measurement file is a plain-text table of whitespace-separated
// numbers with one row per measurement. There is no header and no
// metadata; the meaning of each column is up to the tool consuming
// the table.
package benchfmt

import "fmt"

// A Table is a dense two-dimensional table of measurements.
//
// Values holds the cells in row-major order, so the cell at row i,
// column j is Values[i*Cols+j].
type Table struct {
	Rows, Cols int
	Values     []float64
}

// NewTable returns a Table with the given shape backed by values.
// It panics if len(values) != rows*cols.
func NewTable(rows, cols int, values []float64) *Table {
	if rows*cols != len(values) {
		panic(fmt.Sprintf("%d values cannot form a %dx%d table", len(values), rows, cols))
	}
	return &Table{rows, cols, values}
}

// Row returns row i of t. The returned slice aliases t.Values.
func (t *Table) Row(i int) []float64 {
	return t.Values[i*t.Cols : (i+1)*t.Cols : (i+1)*t.Cols]
}

// Column returns a copy of column j of t.
func (t *Table) Column(j int) []float64 {
	col := make([]float64, t.Rows)
	for i := range col {
		col[i] = t.Values[i*t.Cols+j]
	}
	return col
}

// Reshape returns a table with the same values as t, in the same
// order, laid out with cols columns.
//
// If the number of values in t is not a multiple of cols, Reshape
// returns a *ShapeError. Values are never dropped or padded.
func (t *Table) Reshape(cols int) (*Table, error) {
	if cols <= 0 || len(t.Values)%cols != 0 {
		return nil, &ShapeError{Count: len(t.Values), Cols: cols}
	}
	return NewTable(len(t.Values)/cols, cols, t.Values), nil
}

// A ShapeError reports that a set of values cannot be arranged into
// rows of a requested width.
type ShapeError struct {
	Count int // number of values
	Cols  int // requested row width
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("cannot reshape %d values into rows of %d", e.Count, e.Cols)
}
