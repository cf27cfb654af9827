// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/oclkit/benchplot/benchfmt"
	"github.com/oclkit/benchplot/internal/logging"
	"github.com/oclkit/benchplot/internal/plotcmd"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0666); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	defer logging.InitTo(os.Stderr, false, false)
	var out, errOut bytes.Buffer
	err = latencyplot(context.Background(), &out, &errOut, args)
	return out.String(), errOut.String(), err
}

func TestLatencyplot(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"b.txt":     "1 2 3\n3 4 5\n",
		"a.old.txt": "1 2\n3 4\n5 6\n",
	})
	out := filepath.Join(t.TempDir(), "latency.svg")

	stdout, stderr, err := run(t, "-dir", dir, "-o", out, "-summary", "-v")
	if err != nil {
		t.Fatalf("unexpected error: %s\n%s", err, stderr)
	}
	want := "" +
		"file     Wait    Execution       Wall\n" +
		"a     2.500µs      3.500µs    4.500µs\n" +
		"b     2.000µs      3.000µs    4.000µs\n"
	if stdout != want {
		t.Errorf("want summary:\n%s\ngot:\n%s", want, stdout)
	}
	if !bytes.Contains([]byte(stderr), []byte("read table")) {
		t.Errorf("want debug log of each table, got %q", stderr)
	}
	if fi, err := os.Stat(out); err != nil || fi.Size() == 0 {
		t.Errorf("want chart at %s, got %v", out, err)
	}
}

func TestLatencyplotErrors(t *testing.T) {
	out := filepath.Join(t.TempDir(), "latency.png")

	dir := writeFiles(t, map[string]string{
		"a.txt": "1 2 3\n",
		"b.txt": "1 2\n3 4\n",
	})
	_, _, err := run(t, "-dir", dir, "-o", out)
	var se *benchfmt.ShapeError
	if !errors.As(err, &se) {
		t.Fatalf("want ShapeError, got %v", err)
	}
	if err.Error() != "b: cannot reshape 4 values into rows of 3" {
		t.Errorf("unexpected error %q", err)
	}
	if _, err := os.Stat(out); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("want no chart written on error, got %v", err)
	}

	if _, _, err := run(t, "-dir", dir, "extra"); !errors.Is(err, plotcmd.ErrUsage) {
		t.Errorf("want usage error, got %v", err)
	}
}
