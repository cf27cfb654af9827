// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchunit

// Base units.
const (
	Seconds = "s"
	Bytes   = "B"
)

// BytesPerMB is the number of bytes in the "MB" used by the
// measurement tools: a binary megabyte.
const BytesPerMB = 1024 * 1024

// BytesToMB converts a size in bytes to megabytes. The conversion is
// a plain division, so powers of 1024 convert exactly.
func BytesToMB(b float64) float64 {
	return b / 1024 / 1024
}

// tidyFactors maps pre-scaled units to their base unit and the
// factor that converts a value into it.
var tidyFactors = map[string]struct {
	unit   string
	factor float64
}{
	"ns": {Seconds, 1e-9},
	"us": {Seconds, 1e-6},
	"µs": {Seconds, 1e-6},
	"ms": {Seconds, 1e-3},
	"KB": {Bytes, 1024},
	"MB": {Bytes, BytesPerMB},
	"GB": {Bytes, 1024 * BytesPerMB},
}

// Tidy normalizes a value with a (possibly pre-scaled) unit into base units.
// For example, if unit is "us" or "MB", it will re-scale the value to
// "s" or "B" units, respectively. It returns the re-scaled value and
// its new unit. If the value is already in base units, or the unit is
// unknown, it does nothing.
func Tidy(value float64, unit string) (tidiedValue float64, tidiedUnit string) {
	if t, ok := tidyFactors[unit]; ok {
		return value * t.factor, t.unit
	}
	return value, unit
}
