// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchmath

import (
	"fmt"
	"math"
)

// AssumeNormal is an assumption that a sample is normally distributed.
// The summary statistic is the sample mean and its confidence
// interval comes from Student's t-distribution.
var AssumeNormal = assumeNormal{}

type assumeNormal struct{}

var _ Assumption = assumeNormal{}

func (assumeNormal) SummaryLabel() string {
	return "mean"
}

func (assumeNormal) Summary(s *Sample, confidence float64) Summary {
	if len(s.Values) == 0 {
		nan := math.NaN()
		return Summary{Center: nan, Lo: nan, Hi: nan, Warnings: []error{fmt.Errorf("empty sample")}}
	}

	sample := s.sample()
	if confidence == 0 {
		mean := sample.Mean()
		return Summary{Center: mean, Lo: mean, Hi: mean}
	}

	min := DefaultThresholds.MinCISamples
	if s.Thresholds != nil {
		min = s.Thresholds.MinCISamples
	}
	if len(s.Values) < min {
		mean := sample.Mean()
		return Summary{
			Center:   mean,
			Lo:       mean,
			Hi:       mean,
			Warnings: []error{fmt.Errorf("need >= %d samples for confidence interval at level %v", min, confidence)},
		}
	}

	mean, lo, hi := sample.MeanCI(confidence)
	return Summary{
		Center:     mean,
		Lo:         lo,
		Hi:         hi,
		Confidence: confidence,
	}
}
