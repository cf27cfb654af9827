// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchunit manipulates benchmark units and formats numbers
// in those units.
package benchunit

import (
	"fmt"
	"strings"
)

// A Class specifies what class of unit prefixes are in use.
type Class int

const (
	// Decimal indicates values of a given unit should be scaled
	// by powers of 1000, using SI prefixes such as "k" and "M".
	Decimal Class = iota
	// Binary indicates values of a given unit should be scaled by
	// powers of 1024, using IEC prefixes such as "Ki" and "Mi".
	Binary
)

func (c Class) String() string {
	switch c {
	case Decimal:
		return "Decimal"
	case Binary:
		return "Binary"
	}
	return fmt.Sprintf("Class(%d)", int(c))
}

// ClassOf returns the Class of unit. If the numerator of unit is a
// measure of bytes, this is Binary. Otherwise, it is Decimal.
func ClassOf(unit string) Class {
	num, _, _ := strings.Cut(unit, "/")
	switch num {
	case "B", "MB", "bytes":
		return Binary
	}
	return Decimal
}
