// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchseries

import (
	"fmt"

	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"

	"github.com/oclkit/benchplot/benchfmt"
	"github.com/oclkit/benchplot/benchmath"
)

// LatencyPhases is the number of columns in a launch-latency table.
const LatencyPhases = 3

// A LatencyGroup is the launch-latency series of one file: the mean
// of each phase over every launch in the file, in microseconds.
type LatencyGroup struct {
	Label string
	Wait  benchmath.Summary // queued until submitted
	Exec  benchmath.Summary // start to end of execution
	Wall  benchmath.Summary // queued until end of execution
}

// Phases returns the wait, exec and wall summaries of g in that order.
func (g *LatencyGroup) Phases() [LatencyPhases]benchmath.Summary {
	return [LatencyPhases]benchmath.Summary{g.Wait, g.Exec, g.Wall}
}

// NewLatencyGroups builds one LatencyGroup per table. labels[i] is the
// label of tables[i].
//
// The values of each table are taken in order as (wait, exec, wall)
// triples regardless of how they were laid out in rows. A table whose
// value count is not a multiple of 3 is an error.
func NewLatencyGroups(labels []string, tables []*benchfmt.Table, confidence float64) ([]*LatencyGroup, error) {
	if len(labels) != len(tables) {
		panic(fmt.Sprintf("%d labels for %d tables", len(labels), len(tables)))
	}

	// Stack every file into one long table keyed by file index.
	// The index, not the label, keys the group because labels
	// need not be unique.
	var files []int
	var cols [LatencyPhases][]float64
	for i, t := range tables {
		triples, err := t.Reshape(LatencyPhases)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", labels[i], err)
		}
		if triples.Rows == 0 {
			return nil, fmt.Errorf("%s: no launches", labels[i])
		}
		for r := 0; r < triples.Rows; r++ {
			files = append(files, i)
		}
		for j := range cols {
			cols[j] = append(cols[j], triples.Column(j)...)
		}
	}
	if len(files) == 0 {
		return nil, nil
	}

	long := new(table.Builder).
		Add("file", files).
		Add("wait", cols[0]).
		Add("exec", cols[1]).
		Add("wall", cols[2]).
		Done()
	agg := table.Flatten(ggstat.Agg("file")(summarize(confidence, "wait", "exec", "wall")).F(long))

	waits, execs, walls := summaryCol(agg, "wait"), summaryCol(agg, "exec"), summaryCol(agg, "wall")
	groups := make([]*LatencyGroup, agg.Len())
	for i, file := range agg.MustColumn("file").([]int) {
		groups[i] = &LatencyGroup{Label: labels[file], Wait: waits[i], Exec: execs[i], Wall: walls[i]}
	}
	return groups, nil
}
