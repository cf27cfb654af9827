// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchfmt

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Glob returns the paths of the regular files in dir whose names end
// in ext, sorted by file name. Subdirectories are not searched.
func Glob(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if !e.Type().IsRegular() && e.Type()&os.ModeSymlink == 0 {
			continue
		}
		if !strings.HasSuffix(e.Name(), ext) {
			continue
		}
		if e.Type()&os.ModeSymlink != 0 {
			// Follow links, but only to regular files.
			fi, err := os.Stat(filepath.Join(dir, e.Name()))
			if err != nil || !fi.Mode().IsRegular() {
				continue
			}
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	paths := make([]string, len(names))
	for i, name := range names {
		paths[i] = filepath.Join(dir, name)
	}
	return paths, nil
}

// Label returns the display label for the file at path: its base name
// up to the first ".". For example, "data/gtx480.old.txt" is labeled
// "gtx480".
func Label(path string) string {
	base := filepath.Base(path)
	if i := strings.Index(base, "."); i >= 0 {
		return base[:i]
	}
	return base
}

// A Files reads measurement tables from a sequence of input files.
//
// Files are opened one at a time, in the order of Paths, and each is
// read in full before the next is opened. Scan stops at the first
// file that cannot be opened or parsed.
type Files struct {
	// Paths is the list of file names to read in.
	Paths []string

	next  int
	path  string
	table *Table
	err   error
}

// Scan advances to the next file in the sequence and reports whether
// a table was read. The caller should use the Table method to get the
// table. If Scan reaches the end of the file sequence, or if an error
// occurs, it returns false. In this case, the caller should use the
// Err method to check for errors.
func (f *Files) Scan() bool {
	if f.err != nil || f.next >= len(f.Paths) {
		f.table = nil
		return false
	}

	f.path = f.Paths[f.next]
	f.next++

	file, err := os.Open(f.path)
	if err != nil {
		f.err, f.table = err, nil
		return false
	}
	defer file.Close()

	f.table, f.err = ReadTable(file, f.path)
	return f.err == nil
}

// Table returns the table that was just read by Scan.
func (f *Files) Table() *Table {
	return f.table
}

// Path returns the path of the file that was just read by Scan.
func (f *Files) Path() string {
	return f.path
}

// Label returns the display label of the file that was just read by
// Scan. See Label.
func (f *Files) Label() string {
	return Label(f.path)
}

// Err returns the error that stopped Scan, if any.
// If Scan stopped because it read each file to completion,
// or if Scan has not yet returned false, Err returns nil.
func (f *Files) Err() error {
	return f.err
}
