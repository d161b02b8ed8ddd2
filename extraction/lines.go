/*
 * lines.go, part of goconformers.
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */
package extraction

import (
	"bufio"
	"io"
	"strings"
)

//LineSource yields lines of text, without their line terminators.
//Next returns false when there are no more lines.
type LineSource interface {
	Next() (string, bool)
}

//maxLine is the longest line a Scanner-based LineSource will read.
const maxLine = 1 << 20

type scannerSource struct {
	s *bufio.Scanner
}

//Lines returns a LineSource reading from r. Both "\n" and "\r\n" terminate lines.
//Reading errors are returned by the Err method of the returned value, and
//Parse reports them.
func Lines(r io.Reader) LineSource {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), maxLine)
	return &scannerSource{s: s}
}

func (S *scannerSource) Next() (string, bool) {
	if !S.s.Scan() {
		return "", false
	}
	return strings.TrimSuffix(S.s.Text(), "\r"), true
}

//Err returns the first non-EOF error found while reading.
func (S *scannerSource) Err() error { return S.s.Err() }

type sliceSource struct {
	lines []string
	pos   int
}

func (S *sliceSource) Next() (string, bool) {
	if S.pos >= len(S.lines) {
		return "", false
	}
	S.pos++
	return S.lines[S.pos-1], true
}

//FromSlice returns a LineSource yielding the given lines.
func FromSlice(lines []string) LineSource {
	return &sliceSource{lines: lines}
}

//FromString returns a LineSource yielding the lines in s.
func FromString(s string) LineSource {
	return Lines(strings.NewReader(s))
}
