// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchunit

import (
	"fmt"
	"math"
	"strconv"
)

// A Scaler represents a scaling factor for a number and
// its scientific representation.
type Scaler struct {
	Prec   int     // Digits after the decimal point
	Factor float64 // Unscaled value of 1 Prefix (e.g., 1 k => 1000)
	Prefix string  // Unit prefix ("k", "M", "Ki", etc)
}

// Format formats val and appends the unit prefix according to the given scale.
// For example, if the Scaler has class Decimal, Format(123456789)
// returns "123.4M".
//
// Values with units should be tidied first (see Tidy), or the result
// can carry nonsense units such as "kµs".
func (s Scaler) Format(val float64) string {
	buf := make([]byte, 0, 20)
	buf = strconv.AppendFloat(buf, val/s.Factor, 'f', s.Prec, 64)
	buf = append(buf, s.Prefix...)
	return string(buf)
}

// NoOpScaler is a Scaler that formats numbers with the smallest
// number of digits necessary to capture the exact value, and no
// prefix.
var NoOpScaler = Scaler{-1, 1, ""}

type factor struct {
	factor float64
	prefix string
	// Smallest values printed as 100.0, 10.00 and 1.000.
	t100, t10, t1 float64
}

var (
	siFactors  = mkSIFactors()
	iecFactors = mkIECFactors()
)

// sigfigs[i] is the threshold for printing i+sigfigsBase digits
// after the decimal point below the smallest prefix.
var sigfigs, sigfigsBase = mkSigfigs()

func mkSIFactors() []factor {
	// Parse the printed thresholds so they agree exactly with how
	// AppendFloat rounds.
	var factors []factor
	exp := 12
	for _, p := range []string{"T", "G", "M", "k", "", "m", "µ", "n"} {
		parse := func(mant string) float64 {
			v, _ := strconv.ParseFloat(fmt.Sprintf("%se%d", mant, exp), 64)
			return v
		}
		factors = append(factors, factor{math.Pow(10, float64(exp)), p, parse("99.995"), parse("9.9995"), parse(".99995")})
		exp -= 3
	}
	return factors
}

func mkIECFactors() []factor {
	// There are no fractional binary prefixes, so these bottom
	// out at "" and print small values with more precision.
	//
	// Values in [1000, 1024) of one prefix are printed with that
	// prefix (e.g., 1020 Ki rather than 0.996 Mi).
	var factors []factor
	exp := 40
	for _, p := range []string{"Ti", "Gi", "Mi", "Ki", ""} {
		// Scaling by a power of two is exact, so these match
		// the rounding of the unscaled thresholds.
		factors = append(factors, factor{math.Ldexp(1, exp), p, math.Ldexp(99.995, exp), math.Ldexp(9.9995, exp), math.Ldexp(.99995, exp)})
		exp -= 10
	}
	return factors
}

func mkSigfigs() ([]float64, int) {
	// Print up to 10 digits after the decimal place.
	var sigfigs []float64
	for exp := -1; exp > -9; exp-- {
		thresh, _ := strconv.ParseFloat(fmt.Sprintf("9.9995e%d", exp), 64)
		sigfigs = append(sigfigs, thresh)
	}
	return sigfigs, 3
}

// Scale formats val using at least three significant digits,
// appending an SI or binary prefix. See Scaler.Format for details.
func Scale(val float64, cls Class) string {
	return CommonScale([]float64{val}, cls).Format(val)
}

// CommonScale returns a common Scaler to apply to all values in vals.
// This scale will show at least three significant digits for every
// value.
func CommonScale(vals []float64, cls Class) Scaler {
	// The non-zero value closest to zero picks the scale.
	var min float64
	for _, v := range vals {
		v = math.Abs(v)
		if v != 0 && (min == 0 || v < min) {
			min = v
		}
	}
	if min == 0 {
		return Scaler{3, 1, ""}
	}

	var factors []factor
	switch cls {
	default:
		panic(fmt.Sprintf("bad Class %v", cls))
	case Decimal:
		factors = siFactors
	case Binary:
		factors = iecFactors
	}

	for _, f := range factors {
		switch {
		case min >= f.t100:
			return Scaler{1, f.factor, f.prefix}
		case min >= f.t10:
			return Scaler{2, f.factor, f.prefix}
		case min >= f.t1:
			return Scaler{3, f.factor, f.prefix}
		}
	}

	// Below the smallest prefix. Add precision instead.
	f := factors[len(factors)-1]
	val := min / f.factor
	for i, thresh := range sigfigs {
		if val >= thresh || i == len(sigfigs)-1 {
			return Scaler{i + sigfigsBase, f.factor, f.prefix}
		}
	}

	panic("not reachable")
}
