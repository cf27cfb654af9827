// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchunit

import "testing"

func TestClassOf(t *testing.T) {
	test := func(unit string, cls Class) {
		t.Helper()
		got := ClassOf(unit)
		if got != cls {
			t.Errorf("for %s, want %s, got %s", unit, cls, got)
		}
	}
	test("s", Decimal)
	test("us", Decimal)
	test("s/B", Decimal)

	test("B", Binary)
	test("MB", Binary)
	test("bytes", Binary)
	test("B/s", Binary)
}

func TestClassString(t *testing.T) {
	if got := Class(7).String(); got != "Class(7)" {
		t.Errorf("got %s, want Class(7)", got)
	}
}
