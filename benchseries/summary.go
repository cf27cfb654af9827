// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchseries

import (
	"io"

	"github.com/oclkit/benchplot/benchmath"
	"github.com/oclkit/benchplot/benchunit"
	"github.com/oclkit/benchplot/internal/texttab"
)

// formatValue formats v, measured in unit, with an SI or binary
// prefix on the unit's base unit. For example, 1.5 "us" is "1.500µs".
func formatValue(v float64, unit string) string {
	v, unit = benchunit.Tidy(v, unit)
	return benchunit.Scale(v, benchunit.ClassOf(unit)) + unit
}

// ciCell formats the confidence interval of s as "± N%", or "" if s
// has none.
func ciCell(s benchmath.Summary) string {
	if !s.HasCI() {
		return ""
	}
	return "± " + s.PctRangeString()
}

// WriteCurveSummary writes a text table of every point of curves to w.
func WriteCurveSummary(w io.Writer, curves []*Curve) error {
	tab := new(texttab.Table)
	tab.Row().Cell("file").Cell("size", texttab.Right).Cell("time", texttab.Right).Cell("")
	for _, c := range curves {
		for _, p := range c.Points {
			tab.Row().
				Cell(c.Label).
				Cell(formatValue(p.Bytes, benchunit.Bytes), texttab.Right).
				Cell(formatValue(p.Time.Center, benchunit.Seconds), texttab.Right).
				Cell(ciCell(p.Time))
		}
	}
	return tab.Format(w)
}

// WriteLatencySummary writes a text table of the phase means of
// groups to w.
func WriteLatencySummary(w io.Writer, groups []*LatencyGroup) error {
	tab := new(texttab.Table)
	tab.Row().Cell("file")
	for _, s := range latencySeries {
		tab.Cell(s.name, texttab.Right).Cell("")
	}
	for _, g := range groups {
		tab.Row().Cell(g.Label)
		for _, s := range g.Phases() {
			tab.Cell(formatValue(s.Center, "us"), texttab.Right).Cell(ciCell(s))
		}
	}
	return tab.Format(w)
}
