// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchseries

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/oclkit/benchplot/benchfmt"
)

func TestFormatValue(t *testing.T) {
	for _, test := range []struct {
		v    float64
		unit string
		want string
	}{
		{1048576, "B", "1.000MiB"},
		{0.2, "s", "200.0ms"},
		{2, "us", "2.000µs"},
		{1500, "us", "1.500ms"},
	} {
		if got := formatValue(test.v, test.unit); got != test.want {
			t.Errorf("formatValue(%v, %q) = %q, want %q", test.v, test.unit, got, test.want)
		}
	}
}

func TestWriteCurveSummary(t *testing.T) {
	c, err := NewCurve("a", parseTable(t, "1048576 0.1 0.3\n2097152 0.2 0.4\n"), 0)
	if err != nil {
		t.Fatal(err)
	}
	var buf strings.Builder
	if err := WriteCurveSummary(&buf, []*Curve{c}); err != nil {
		t.Fatal(err)
	}
	want := "" +
		"file      size     time\n" +
		"a     1.000MiB  200.0ms\n" +
		"a     2.000MiB  300.0ms\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestWriteLatencySummary(t *testing.T) {
	groups, err := NewLatencyGroups([]string{"b"}, []*benchfmt.Table{parseTable(t, "1 2 3\n3 4 5\n")}, 0)
	if err != nil {
		t.Fatal(err)
	}
	var buf strings.Builder
	if err := WriteLatencySummary(&buf, groups); err != nil {
		t.Fatal(err)
	}
	want := "" +
		"file     Wait    Execution       Wall\n" +
		"b     2.000µs      3.000µs    4.000µs\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestWriteSummaryCI(t *testing.T) {
	c, err := NewCurve("a", parseTable(t, "1048576 10 11 12\n"), 0.95)
	if err != nil {
		t.Fatal(err)
	}
	var buf strings.Builder
	if err := WriteCurveSummary(&buf, []*Curve{c}); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("want 2 lines, got %q", lines)
	}
	// t(0.975, 2) * 1/sqrt(3) / 11 = 23%
	if !strings.HasSuffix(lines[1], "± 23%") {
		t.Errorf("want ± 23%% interval, got %q", lines[1])
	}
}
