// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchseries turns measurement tables into plotted series.
//
// Each input file becomes one series: a Curve of per-size mean times
// for allocation benchmarks, or a LatencyGroup of mean wait, execution
// and wall times for launch-latency benchmarks. Series keep the order
// in which their files were given, which is the order they appear in
// chart legends and bar groups.
package benchseries

import (
	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"

	"github.com/oclkit/benchplot/benchmath"
)

// summarize returns an aggregate function that summarizes each of
// cols as a normally distributed sample at the given confidence. The
// resulting columns are named "summary <col>" and hold
// benchmath.Summary values.
func summarize(confidence float64, cols ...string) ggstat.Aggregator {
	return func(input table.Grouping, b *table.Builder) {
		for _, col := range cols {
			sums := make([]benchmath.Summary, 0, len(input.Tables()))
			for _, gid := range input.Tables() {
				xs := input.Table(gid).MustColumn(col).([]float64)
				s := benchmath.NewSample(xs, &benchmath.DefaultThresholds)
				sums = append(sums, benchmath.AssumeNormal.Summary(s, confidence))
			}
			b.Add("summary "+col, sums)
		}
	}
}

// summaryCol returns the summaries produced by summarize for col.
func summaryCol(t *table.Table, col string) []benchmath.Summary {
	return t.MustColumn("summary " + col).([]benchmath.Summary)
}
