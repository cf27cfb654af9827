// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Allocplot plots buffer allocation time against buffer size.
//
// Usage:
//
//	allocplot [-dir directory] [-o file] [-ci level] [-summary]
//
// Every *.txt file in the directory is one curve, labeled with the
// file's name up to the first dot. Each line of a file is one buffer
// size: the size in bytes followed by one or more allocation times in
// seconds. The curve plots the mean time of each line against its
// size in megabytes, on logarithmic axes.
//
// By default the chart is opened in the system image viewer and
// allocplot waits for the viewer to exit. The -o flag writes it to a
// file instead.
package main

import (
	"context"
	"io"

	"github.com/oclkit/benchplot/benchfmt"
	"github.com/oclkit/benchplot/benchseries"
	"github.com/oclkit/benchplot/internal/logging"
	"github.com/oclkit/benchplot/internal/plotcmd"
)

const doc = "Plots the mean allocation time of each buffer size, one curve per *.txt file."

func main() {
	plotcmd.Main("allocplot", allocplot)
}

func allocplot(ctx context.Context, stdout, stderr io.Writer, args []string) error {
	cfg, err := plotcmd.Parse("allocplot", doc, stderr, args)
	if err != nil {
		return err
	}
	log := logging.WithTool("allocplot")

	var curves []*benchseries.Curve
	err = cfg.ReadFiles(log, func(label string, t *benchfmt.Table) error {
		c, err := benchseries.NewCurve(label, t, cfg.Confidence)
		if err != nil {
			return err
		}
		curves = append(curves, c)
		return nil
	})
	if err != nil {
		return err
	}

	p, err := benchseries.AllocationChart(curves, cfg.ChartOptions())
	if err != nil {
		return err
	}
	if cfg.Summary {
		if err := benchseries.WriteCurveSummary(stdout, curves); err != nil {
			return err
		}
	}
	return cfg.Output(ctx, log, p)
}
