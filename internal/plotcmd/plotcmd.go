// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plotcmd holds the command-line plumbing shared by the
// plotting commands: flags, input discovery, and chart output.
package plotcmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/oclkit/benchplot/benchfmt"
	"github.com/oclkit/benchplot/benchseries"
	"github.com/oclkit/benchplot/internal/logging"
)

// InputExt is the extension of measurement files.
const InputExt = ".txt"

// ErrUsage is returned when the command line is invalid. The usage
// message has already been printed.
var ErrUsage = errors.New("invalid usage")

// Config is the configuration of a plotting command.
type Config struct {
	Dir        string  // directory searched for measurement files
	Out        string  // output image path; empty to display
	Width      float64 // chart width in inches
	Height     float64 // chart height in inches
	Confidence float64 // confidence level of error bars; 0 for none
	Summary    bool    // print the aggregates to stdout
	Verbose    bool
	LogJSON    bool
}

func (c *Config) addFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.Dir, "dir", ".", "read *"+InputExt+" files from `directory`")
	fs.StringVar(&c.Out, "o", "", "write the chart to `file` instead of displaying it; the extension selects the format (png, svg, pdf, eps, jpg, tif)")
	fs.Float64Var(&c.Width, "width", float64(benchseries.DefaultWidth/vg.Inch), "chart width in `inches`")
	fs.Float64Var(&c.Height, "height", float64(benchseries.DefaultHeight/vg.Inch), "chart height in `inches`")
	fs.Float64Var(&c.Confidence, "ci", 0, "draw confidence intervals at `level` (for example, 0.95); 0 disables them")
	fs.BoolVar(&c.Summary, "summary", false, "print a table of the plotted values")
	fs.BoolVar(&c.Verbose, "v", false, "log debug messages")
	fs.BoolVar(&c.LogJSON, "log-json", false, "log JSON records instead of text")
}

// Parse parses the command line of the command named name and
// initializes logging to stderr. It returns flag.ErrHelp if help was
// requested and an error wrapping ErrUsage if args are invalid.
func Parse(name, doc string, stderr io.Writer, args []string) (*Config, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: %s [options]\n\n%s\n\noptions:\n", name, doc)
		fs.PrintDefaults()
	}

	c := new(Config)
	c.addFlags(fs)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}

	var bad error
	switch {
	case fs.NArg() > 0:
		bad = fmt.Errorf("unexpected argument %q", fs.Arg(0))
	case c.Confidence < 0 || c.Confidence >= 1:
		bad = fmt.Errorf("-ci %v not in [0, 1)", c.Confidence)
	case !(c.Width > 0) || !(c.Height > 0):
		bad = fmt.Errorf("chart size %vx%v must be positive", c.Width, c.Height)
	}
	if bad != nil {
		fmt.Fprintf(stderr, "%s: %s\n", name, bad)
		fs.Usage()
		return nil, fmt.Errorf("%w: %v", ErrUsage, bad)
	}

	logging.InitTo(stderr, c.Verbose, c.LogJSON)
	return c, nil
}

// ChartOptions returns the chart options selected by c.
func (c *Config) ChartOptions() benchseries.ChartOptions {
	return benchseries.ChartOptions{ErrorBars: c.Confidence > 0}
}

// ReadFiles reads every measurement file in c.Dir, in file name
// order, and calls f with each file's label and table. It stops at
// the first error, whether from reading a file or from f.
// It is an error for c.Dir to contain no measurement files.
func (c *Config) ReadFiles(log zerolog.Logger, f func(label string, t *benchfmt.Table) error) error {
	paths, err := benchfmt.Glob(c.Dir, InputExt)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no *%s files in %s", InputExt, c.Dir)
	}

	files := benchfmt.Files{Paths: paths}
	for files.Scan() {
		t := files.Table()
		log.Debug().Str("file", files.Path()).Int("rows", t.Rows).Int("cols", t.Cols).Msg("read table")
		if err := f(files.Label(), t); err != nil {
			return err
		}
	}
	return files.Err()
}

// Output writes p to c.Out, or displays it if c.Out is empty.
func (c *Config) Output(ctx context.Context, log zerolog.Logger, p *plot.Plot) error {
	w, h := vg.Length(c.Width)*vg.Inch, vg.Length(c.Height)*vg.Inch
	if c.Out != "" {
		if err := benchseries.Save(p, c.Out, w, h); err != nil {
			return err
		}
		log.Info().Str("path", c.Out).Msg("wrote chart")
		return nil
	}

	path, err := benchseries.Show(ctx, p, w, h)
	if err != nil {
		return err
	}
	log.Debug().Str("path", path).Msg("displayed chart")
	return nil
}

// A RunFunc runs a plotting command with the given arguments.
type RunFunc func(ctx context.Context, stdout, stderr io.Writer, args []string) error

// Main runs the command named name with the process's arguments and
// exits. The command's context is cancelled on interrupt.
func Main(name string, run RunFunc) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Stdout, os.Stderr, os.Args[1:])
	stop()

	switch {
	case err == nil:
		return
	case errors.Is(err, flag.ErrHelp), errors.Is(err, ErrUsage):
		os.Exit(2)
	}
	log := logging.WithTool(name)
	log.Error().Err(err).Msg("failed")
	os.Exit(1)
}
