// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchfmt

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"
)

// A SyntaxError represents a syntax error on a particular line of a
// measurement file.
type SyntaxError struct {
	FileName string
	Line     int
	Msg      string
}

func (e *SyntaxError) Pos() (fileName string, line int) {
	return e.FileName, e.Line
}

func (s *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: %s", s.FileName, s.Line, s.Msg)
}

// commentPrefix starts a comment that runs to the end of the line.
const commentPrefix = '#'

// ReadTable reads a whitespace-separated numeric table from r.
// fileName is used in error messages; it is purely diagnostic.
//
// Every non-blank line is one row. Anything following a '#' is
// ignored. All rows must have the same number of fields as the first
// row, and every field must parse as a floating-point number.
// A table with no rows is an error.
func ReadTable(r io.Reader, fileName string) (*Table, error) {
	if fileName == "" {
		fileName = "<unknown>"
	}

	var (
		values []float64
		rows   int
		cols   = -1
		line   int
	)
	s := bufio.NewScanner(r)
	// A file may hold all its values on one line.
	s.Buffer(nil, math.MaxInt)
	for s.Scan() {
		line++
		text := s.Bytes()
		if i := bytes.IndexByte(text, commentPrefix); i >= 0 {
			text = text[:i]
		}
		fields := bytes.Fields(text)
		if len(fields) == 0 {
			continue
		}
		if cols == -1 {
			cols = len(fields)
		} else if len(fields) != cols {
			return nil, &SyntaxError{fileName, line, fmt.Sprintf("row has %d columns, want %d", len(fields), cols)}
		}
		for _, f := range fields {
			v, err := strconv.ParseFloat(string(f), 64)
			if err != nil {
				return nil, &SyntaxError{fileName, line, fmt.Sprintf("parsing %q: %s", f, err.(*strconv.NumError).Err)}
			}
			values = append(values, v)
		}
		rows++
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("%s:%d: %w", fileName, line+1, err)
	}
	if rows == 0 {
		return nil, &SyntaxError{fileName, line, "empty table"}
	}
	return NewTable(rows, cols, values), nil
}
