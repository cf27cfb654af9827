// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Latencyplot plots kernel launch latencies as grouped bars.
//
// Usage:
//
//	latencyplot [-dir directory] [-o file] [-ci level] [-summary]
//
// Every *.txt file in the directory is one bar group, labeled with
// the file's name up to the first dot. A file holds a sequence of
// (wait, exec, wall) triples in microseconds, in any line layout, so
// its number of values must be a multiple of 3. Each group shows the
// mean wait, execution and wall time over the file's launches.
//
// By default the chart is opened in the system image viewer and
// latencyplot waits for the viewer to exit. The -o flag writes it to
// a file instead.
package main

import (
	"context"
	"io"

	"github.com/oclkit/benchplot/benchfmt"
	"github.com/oclkit/benchplot/benchseries"
	"github.com/oclkit/benchplot/internal/logging"
	"github.com/oclkit/benchplot/internal/plotcmd"
)

const doc = "Plots the mean wait, execution and wall time of the launches in each *.txt file."

func main() {
	plotcmd.Main("latencyplot", latencyplot)
}

func latencyplot(ctx context.Context, stdout, stderr io.Writer, args []string) error {
	cfg, err := plotcmd.Parse("latencyplot", doc, stderr, args)
	if err != nil {
		return err
	}
	log := logging.WithTool("latencyplot")

	var labels []string
	var tables []*benchfmt.Table
	err = cfg.ReadFiles(log, func(label string, t *benchfmt.Table) error {
		labels = append(labels, label)
		tables = append(tables, t)
		return nil
	})
	if err != nil {
		return err
	}

	groups, err := benchseries.NewLatencyGroups(labels, tables, cfg.Confidence)
	if err != nil {
		return err
	}
	p, err := benchseries.LatencyChart(groups, cfg.ChartOptions())
	if err != nil {
		return err
	}
	if cfg.Summary {
		if err := benchseries.WriteLatencySummary(stdout, groups); err != nil {
			return err
		}
	}
	return cfg.Output(ctx, log, p)
}
