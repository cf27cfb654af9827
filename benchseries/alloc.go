// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchseries

import (
	"fmt"
	"math"

	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"
	"gonum.org/v1/plot/plotter"

	"github.com/oclkit/benchplot/benchfmt"
	"github.com/oclkit/benchplot/benchmath"
	"github.com/oclkit/benchplot/benchunit"
)

// A Curve is the allocation-time series of one file: the mean time
// to allocate each buffer size, in file row order.
type Curve struct {
	Label  string
	Points []Point
}

// A Point is one row of an allocation-time table.
type Point struct {
	Bytes  float64 // buffer size as read
	SizeMB float64 // Bytes in megabytes
	Time   benchmath.Summary
}

// NewCurve builds the Curve for an allocation-time table. Column 0 of
// t is a size in bytes and every further column is one timing trial
// in seconds. Each point's time is the mean of its row's trials; if
// confidence is non-zero, the summary also carries a confidence
// interval at that level.
func NewCurve(label string, t *benchfmt.Table, confidence float64) (*Curve, error) {
	if t.Cols < 2 {
		return nil, fmt.Errorf("%s: need a size column and at least one timing column, have %d column(s)", label, t.Cols)
	}

	// Unpivot the trials so each row of the long table is one
	// (row, size, time) observation, then aggregate by row.
	n := t.Rows * (t.Cols - 1)
	rows, sizes, times := make([]int, 0, n), make([]float64, 0, n), make([]float64, 0, n)
	for i := 0; i < t.Rows; i++ {
		r := t.Row(i)
		if math.IsNaN(r[0]) {
			return nil, fmt.Errorf("%s: row %d: size is NaN", label, i+1)
		}
		for _, v := range r[1:] {
			rows = append(rows, i)
			sizes = append(sizes, r[0])
			times = append(times, v)
		}
	}
	long := new(table.Builder).Add("row", rows).Add("size", sizes).Add("time", times).Done()
	agg := table.Flatten(ggstat.Agg("row")(ggstat.AggUnique("size"), summarize(confidence, "time")).F(long))

	c := &Curve{Label: label, Points: make([]Point, agg.Len())}
	for i, size := range agg.MustColumn("size").([]float64) {
		c.Points[i] = Point{Bytes: size, SizeMB: benchunit.BytesToMB(size)}
	}
	for i, s := range summaryCol(agg, "time") {
		c.Points[i].Time = s
	}
	return c, nil
}

// Len, XY and YError implement plotter.XYer and plotter.YErrorer.

func (c *Curve) Len() int {
	return len(c.Points)
}

func (c *Curve) XY(i int) (x, y float64) {
	return c.Points[i].SizeMB, c.Points[i].Time.Center
}

func (c *Curve) YError(i int) (low, high float64) {
	t := c.Points[i].Time
	return t.Center - t.Lo, t.Hi - t.Center
}

var (
	_ plotter.XYer     = (*Curve)(nil)
	_ plotter.YErrorer = (*Curve)(nil)
)

// HasCI reports whether any point of c has a confidence interval.
func (c *Curve) HasCI() bool {
	for _, p := range c.Points {
		if p.Time.HasCI() {
			return true
		}
	}
	return false
}

// checkLog returns an error if c has values that can't be placed on
// logarithmic axes.
func (c *Curve) checkLog(withCI bool) error {
	for _, p := range c.Points {
		switch {
		case !(p.SizeMB > 0):
			return fmt.Errorf("%s: size %v cannot be drawn on a log axis", c.Label, p.Bytes)
		case !(p.Time.Center > 0):
			return fmt.Errorf("%s: mean time %v at %v MB cannot be drawn on a log axis", c.Label, p.Time.Center, p.SizeMB)
		case withCI && p.Time.HasCI() && !(p.Time.Lo > 0):
			return fmt.Errorf("%s: confidence interval at %v MB reaches %v and cannot be drawn on a log axis", c.Label, p.SizeMB, p.Time.Lo)
		}
	}
	return nil
}
