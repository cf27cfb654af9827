// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchseries

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/oclkit/benchplot/benchfmt"
)

func groupMeans(groups []*LatencyGroup) map[string][3]float64 {
	m := make(map[string][3]float64)
	for _, g := range groups {
		var v [3]float64
		for i, s := range g.Phases() {
			v[i] = s.Center
		}
		m[g.Label] = v
	}
	return m
}

func groupLabels(groups []*LatencyGroup) []string {
	var labels []string
	for _, g := range groups {
		labels = append(labels, g.Label)
	}
	return labels
}

func TestNewLatencyGroups(t *testing.T) {
	labels := []string{"b", "a", "c"}
	tables := []*benchfmt.Table{
		parseTable(t, "1 2 3\n3 4 5\n"),
		// Triples need not align with rows.
		parseTable(t, "1 2\n3 4\n5 6\n"),
		parseTable(t, "7 8 9 10 11 12\n"),
	}
	groups, err := NewLatencyGroups(labels, tables, 0)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(labels, groupLabels(groups)); diff != "" {
		t.Errorf("labels (-want +got):\n%s", diff)
	}
	want := map[string][3]float64{
		"b": {2, 3, 4},
		"a": {2.5, 3.5, 4.5},
		"c": {8.5, 9.5, 10.5},
	}
	if diff := cmp.Diff(want, groupMeans(groups)); diff != "" {
		t.Errorf("means (-want +got):\n%s", diff)
	}
}

func TestNewLatencyGroupsDuplicateLabels(t *testing.T) {
	groups, err := NewLatencyGroups(
		[]string{"x", "x"},
		[]*benchfmt.Table{parseTable(t, "1 1 1\n"), parseTable(t, "2 2 2\n")},
		0)
	if err != nil {
		t.Fatal(err)
	}
	if len(groups) != 2 {
		t.Fatalf("want 2 groups, got %d", len(groups))
	}
	if groups[0].Wait.Center != 1 || groups[1].Wait.Center != 2 {
		t.Errorf("want wait means 1, 2, got %v, %v", groups[0].Wait.Center, groups[1].Wait.Center)
	}
}

func TestNewLatencyGroupsShape(t *testing.T) {
	_, err := NewLatencyGroups(
		[]string{"ok", "bad"},
		[]*benchfmt.Table{parseTable(t, "1 2 3\n"), parseTable(t, "1 2\n3 4\n")},
		0)
	var se *benchfmt.ShapeError
	if !errors.As(err, &se) {
		t.Fatalf("want ShapeError, got %v", err)
	}
	if se.Count != 4 || se.Cols != LatencyPhases {
		t.Errorf("want 4 values into %d, got %+v", LatencyPhases, se)
	}
	if want := "bad: cannot reshape 4 values into rows of 3"; err.Error() != want {
		t.Errorf("want error %q, got %q", want, err)
	}
}

func TestNewLatencyGroupsEmpty(t *testing.T) {
	groups, err := NewLatencyGroups(nil, nil, 0.95)
	if err != nil || groups != nil {
		t.Errorf("want nil, nil; got %v, %v", groups, err)
	}
}

func TestNewLatencyGroupsCI(t *testing.T) {
	groups, err := NewLatencyGroups(
		[]string{"b"},
		[]*benchfmt.Table{parseTable(t, "1 2 3\n3 4 5\n2 3 4\n")},
		0.95)
	if err != nil {
		t.Fatal(err)
	}
	for i, s := range groups[0].Phases() {
		if !s.HasCI() || s.Confidence != 0.95 {
			t.Errorf("phase %d: want interval at 0.95, got %+v", i, s)
		}
		if !(s.Lo < s.Center && s.Center < s.Hi) {
			t.Errorf("phase %d: want Lo < Center < Hi, got %+v", i, s)
		}
	}
}
