// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchmath

import (
	"fmt"
	"math"
	"testing"
)

func TestSummaryNormal(t *testing.T) {
	// This is a thin wrapper around sample.MeanCI, so just do a
	// smoke test.
	a := AssumeNormal
	sample := NewSample([]float64{-8, 2, 3, 4, 5, 6}, &DefaultThresholds)
	checkSummary(t, a.Summary(sample, 0.95),
		Summary{Center: 2, Lo: -3.351092806089359, Hi: 7.351092806089359, Confidence: 0.95})

	// Without a confidence level there is no interval.
	checkSummary(t, a.Summary(sample, 0),
		Summary{Center: 2, Lo: 2, Hi: 2})

	if got := a.SummaryLabel(); got != "mean" {
		t.Errorf("SummaryLabel() = %q, want mean", got)
	}
}

func TestSummaryNormalSmall(t *testing.T) {
	a := AssumeNormal
	sample := NewSample([]float64{1.5}, &DefaultThresholds)
	checkSummary(t, a.Summary(sample, 0.95),
		Summary{Center: 1.5, Lo: 1.5, Hi: 1.5},
		"need >= 2 samples for confidence interval at level 0.95")

	thr := Thresholds{MinCISamples: 5}
	sample = NewSample([]float64{1, 2, 3}, &thr)
	checkSummary(t, a.Summary(sample, 0.9),
		Summary{Center: 2, Lo: 2, Hi: 2},
		"need >= 5 samples for confidence interval at level 0.9")

	got := a.Summary(NewSample(nil, &DefaultThresholds), 0.95)
	if !math.IsNaN(got.Center) || len(got.Warnings) != 1 {
		t.Errorf("empty sample: got %v", got)
	}
}

func aeq(x, y float64) bool {
	if x < 0 && y < 0 {
		x, y = -x, -y
	}
	// Check that x and y are equal to 8 digits.
	const factor = 1 - 1e-7
	return x*factor <= y && y*factor <= x
}

func checkSummary(t *testing.T, got, want Summary, warnings ...string) {
	t.Helper()
	for _, w := range warnings {
		want.Warnings = append(want.Warnings, fmt.Errorf("%s", w))
	}
	if !aeq(got.Center, want.Center) || !aeq(got.Lo, want.Lo) || !aeq(got.Hi, want.Hi) || got.Confidence != want.Confidence || !errorsEq(got.Warnings, want.Warnings) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func errorsEq(a, b []error) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Error() != b[i].Error() {
			return false
		}
	}
	return true
}
