// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchseries

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ChartOptions configures chart construction.
type ChartOptions struct {
	// Title is drawn above the chart if non-empty.
	Title string

	// ErrorBars draws the confidence interval of every point or
	// bar whose summary has one.
	ErrorBars bool

	// BarWidth is the width of a single latency bar in X data
	// units, where neighboring groups are one unit apart. It must
	// be at most 1/3 so groups do not overlap. If zero,
	// DefaultBarWidth is used.
	BarWidth float64
}

// DefaultBarWidth is the width of a single latency bar.
const DefaultBarWidth = 0.2

// Axis labels.
const (
	SizeLabel    = "Size (MB)"
	TimeLabel    = "Time (s)"
	LatencyLabel = "Time (us)"
)

// ErrNoSeries is returned when a chart is requested with nothing to draw.
var ErrNoSeries = errors.New("no series to plot")

const pointRad = 2

// AllocationChart plots one log-log line-and-marker series per curve,
// labeled with the curve's label. The legend sits in the lower right.
//
// Sizes, mean times and, with opts.ErrorBars, the lower confidence
// bounds must all be positive.
func AllocationChart(curves []*Curve, opts ChartOptions) (*plot.Plot, error) {
	if len(curves) == 0 {
		return nil, ErrNoSeries
	}
	for _, c := range curves {
		if err := c.checkLog(opts.ErrorBars); err != nil {
			return nil, err
		}
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = SizeLabel
	p.Y.Label.Text = TimeLabel
	p.X.Scale = plot.LogScale{}
	p.Y.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Legend.Top = false
	p.Legend.Left = false

	for i, c := range curves {
		clr := plotutil.Color(i)
		line, points, err := plotter.NewLinePoints(c)
		if err != nil {
			return nil, err
		}
		line.Color = clr
		points.Color = clr
		points.Shape = draw.CircleGlyph{}
		points.Radius = vg.Points(pointRad)
		p.Add(line, points)
		p.Legend.Add(c.Label, line, points)

		if opts.ErrorBars && c.HasCI() {
			bars, err := plotter.NewYErrorBars(c)
			if err != nil {
				return nil, err
			}
			bars.Color = clr
			p.Add(bars)
		}
	}
	widenLog(&p.X)
	widenLog(&p.Y)
	return p, nil
}

// widenLog gives a log axis whose data has a single value a range of
// one factor of 2 either side. The default padding of ±1 would reach
// zero or below for values up to 1.
func widenLog(a *plot.Axis) {
	if a.Min == a.Max {
		a.Min /= 2
		a.Max *= 2
	}
}

// Latency bar colors, by phase.
var (
	WaitColor = color.RGBA{0x00, 0xb8, 0xa9, 0xff}
	ExecColor = color.RGBA{0xf6, 0x41, 0x6c, 0xff}
	WallColor = color.RGBA{0xff, 0xde, 0x7d, 0xff}
)

var latencySeries = [LatencyPhases]struct {
	name string
	clr  color.Color
}{
	{"Wait", WaitColor},
	{"Execution", ExecColor},
	{"Wall", WallColor},
}

// LatencyChart draws a grouped bar chart with one group per
// LatencyGroup, labeled with the group's label. Each group has a
// wait, an execution and a wall bar, side by side, with the execution
// bar centered on the group's tick. The legend sits in the upper
// right.
func LatencyChart(groups []*LatencyGroup, opts ChartOptions) (*plot.Plot, error) {
	if len(groups) == 0 {
		return nil, ErrNoSeries
	}
	w := opts.BarWidth
	if w == 0 {
		w = DefaultBarWidth
	}
	if !(w > 0 && w*LatencyPhases <= 1) {
		return nil, fmt.Errorf("bar width %v must be in (0, 1/%d]", w, LatencyPhases)
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.Y.Label.Text = LatencyLabel
	p.Legend.Top = true
	p.Legend.Left = false

	labels := make([]string, len(groups))
	for i, g := range groups {
		labels[i] = g.Label
	}

	for k, bars := range newPhaseBars(groups, w) {
		p.Add(bars)
		p.Legend.Add(latencySeries[k].name, bars)

		if !opts.ErrorBars {
			continue
		}
		errs := &offsetErrorBars{Offset: bars.Offset, CapWidth: w / 3, LineStyle: plotter.DefaultLineStyle}
		for i, g := range groups {
			if sum := g.Phases()[k]; sum.HasCI() {
				errs.add(float64(i), sum.Lo, sum.Hi)
			}
		}
		if len(errs.X) > 0 {
			p.Add(errs)
		}
	}
	p.NominalX(labels...)

	// Bars grow from zero.
	if p.Y.Min > 0 {
		p.Y.Min = 0
	}
	return p, nil
}

// newPhaseBars returns the wait, exec and wall bar series of groups,
// each bar w wide, offset so the execution bar is centered on its
// group's X position.
func newPhaseBars(groups []*LatencyGroup, w float64) [LatencyPhases]*phaseBars {
	var series [LatencyPhases]*phaseBars
	for k, s := range latencySeries {
		b := &phaseBars{Values: make([]float64, len(groups)), Offset: float64(k-1) * w, Width: w, Color: s.clr}
		for i, g := range groups {
			b.Values[i] = g.Phases()[k].Center
		}
		series[k] = b
	}
	return series
}

// phaseBars draws one bar per group at X positions 0, 1, 2, ....
// Width and Offset are in data units, so bars keep their share of the
// group pitch at any canvas size.
type phaseBars struct {
	Values []float64
	Offset float64
	Width  float64
	Color  color.Color
}

// span returns the X extent of bar i.
func (b *phaseBars) span(i int) (lo, hi float64) {
	x := float64(i) + b.Offset
	return x - b.Width/2, x + b.Width/2
}

// Plot implements the plot.Plotter interface.
func (b *phaseBars) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	for i, v := range b.Values {
		lo, hi := b.span(i)
		x0, x1 := trX(lo), trX(hi)
		y0, y1 := trY(0), trY(v)
		pts := []vg.Point{{X: x0, Y: y0}, {X: x0, Y: y1}, {X: x1, Y: y1}, {X: x1, Y: y0}}
		c.FillPolygon(b.Color, c.ClipPolygonXY(pts))
	}
}

// DataRange implements the plot.DataRanger interface.
func (b *phaseBars) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, _ = b.span(0)
	_, xmax = b.span(len(b.Values) - 1)
	for _, v := range b.Values {
		ymin, ymax = math.Min(ymin, v), math.Max(ymax, v)
	}
	return xmin, xmax, ymin, ymax
}

// Thumbnail implements the plot.Thumbnailer interface.
func (b *phaseBars) Thumbnail(c *draw.Canvas) {
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
	}
	c.FillPolygon(b.Color, c.ClipPolygonY(pts))
}

// offsetErrorBars draws vertical error bars shifted horizontally by
// Offset data units, so they line up with phaseBars.
type offsetErrorBars struct {
	X, Lo, Hi []float64
	Offset    float64
	CapWidth  float64
	draw.LineStyle
}

func (e *offsetErrorBars) add(x, lo, hi float64) {
	e.X = append(e.X, x)
	e.Lo = append(e.Lo, lo)
	e.Hi = append(e.Hi, hi)
}

// Plot implements the plot.Plotter interface.
func (e *offsetErrorBars) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	for i, x := range e.X {
		x += e.Offset
		cx := trX(x)
		if !c.ContainsX(cx) {
			continue
		}
		l, r := trX(x-e.CapWidth/2), trX(x+e.CapWidth/2)
		lo, hi := trY(e.Lo[i]), trY(e.Hi[i])
		lines := c.ClipLinesY(
			[]vg.Point{{X: cx, Y: lo}, {X: cx, Y: hi}},
			[]vg.Point{{X: l, Y: lo}, {X: r, Y: lo}},
			[]vg.Point{{X: l, Y: hi}, {X: r, Y: hi}},
		)
		c.StrokeLines(e.LineStyle, lines...)
	}
}

// DataRange implements the plot.DataRanger interface.
func (e *offsetErrorBars) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, ymin = math.Inf(1), math.Inf(1)
	xmax, ymax = math.Inf(-1), math.Inf(-1)
	for i, x := range e.X {
		x += e.Offset
		xmin, xmax = math.Min(xmin, x), math.Max(xmax, x)
		ymin, ymax = math.Min(ymin, e.Lo[i]), math.Max(ymax, e.Hi[i])
	}
	return xmin, xmax, ymin, ymax
}
