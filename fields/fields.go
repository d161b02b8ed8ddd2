/*
 * fields.go, part of goconformers.
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
//Package fields contains the values extracted from calculation outputs.
//A Value is a small tagged variant: a number, an integer, a string,
//a boolean, a vector of numbers or a (possibly nested, possibly mixed)
//list of values. A Record maps genres to values for one conformer.
package fields

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

//Kind identifies what a Value holds.
type Kind uint8

const (
	Invalid Kind = iota
	Float
	Int
	String
	Bool
	Floats
	List
)

var kindNames = [...]string{"invalid", "float", "int", "string", "bool", "floats", "list"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

//Value is a single field of a conformer record. The zero Value is Invalid.
type Value struct {
	kind Kind
	f    float64
	i    int
	s    string
	b    bool
	fs   []float64
	l    []Value
}

//F returns a Float value.
func F(f float64) Value { return Value{kind: Float, f: f} }

//I returns an Int value.
func I(i int) Value { return Value{kind: Int, i: i} }

//S returns a String value.
func S(s string) Value { return Value{kind: String, s: s} }

//B returns a Bool value.
func B(b bool) Value { return Value{kind: Bool, b: b} }

//Fs returns a Floats value holding a copy of v.
func Fs(v ...float64) Value {
	c := make([]float64, len(v))
	copy(c, v)
	return Value{kind: Floats, fs: c}
}

//L returns a List value with the given elements.
func L(v ...Value) Value {
	c := make([]Value, len(v))
	copy(c, v)
	return Value{kind: List, l: c}
}

//Ints returns a List of Int values.
func Ints(v ...int) Value {
	l := make([]Value, len(v))
	for i, x := range v {
		l[i] = I(x)
	}
	return Value{kind: List, l: l}
}

//Strs returns a List of String values.
func Strs(v ...string) Value {
	l := make([]Value, len(v))
	for i, x := range v {
		l[i] = S(x)
	}
	return Value{kind: List, l: l}
}

//Rows returns a List of Floats, one per row. Used for coordinates.
func Rows(rows [][]float64) Value {
	l := make([]Value, len(rows))
	for i, r := range rows {
		l[i] = Fs(r...)
	}
	return Value{kind: List, l: l}
}

func (v Value) Kind() Kind { return v.kind }

//Valid is false for the zero Value.
func (v Value) Valid() bool { return v.kind != Invalid }

//IsSeq returns true for Floats and List values.
func (v Value) IsSeq() bool { return v.kind == Floats || v.kind == List }

//Number returns the value as a float64, if it is a Float or an Int.
func (v Value) Number() (float64, bool) {
	switch v.kind {
	case Float:
		return v.f, true
	case Int:
		return float64(v.i), true
	}
	return 0, false
}

//Int returns the value as an int. Floats with no fractional part are accepted.
func (v Value) Int() (int, bool) {
	switch v.kind {
	case Int:
		return v.i, true
	case Float:
		if v.f == math.Trunc(v.f) && !math.IsInf(v.f, 0) {
			return int(v.f), true
		}
	}
	return 0, false
}

func (v Value) Str() (string, bool) {
	if v.kind != String {
		return "", false
	}
	return v.s, true
}

func (v Value) Bool() (bool, bool) {
	if v.kind != Bool {
		return false, false
	}
	return v.b, true
}

//Floats returns a copy of the values of a one-dimensional numeric sequence.
//A List whose elements are all numbers is accepted too.
func (v Value) Floats() ([]float64, bool) {
	switch v.kind {
	case Floats:
		c := make([]float64, len(v.fs))
		copy(c, v.fs)
		return c, true
	case List:
		ret := make([]float64, len(v.l))
		for i, e := range v.l {
			f, ok := e.Number()
			if !ok {
				return nil, false
			}
			ret[i] = f
		}
		return ret, true
	}
	return nil, false
}

//Elems returns the elements of a sequence as Values, nil for scalars.
func (v Value) Elems() []Value {
	switch v.kind {
	case Floats:
		ret := make([]Value, len(v.fs))
		for i, f := range v.fs {
			ret[i] = F(f)
		}
		return ret
	case List:
		return v.l
	}
	return nil
}

//Len returns the length of a sequence, or -1 for scalars.
func (v Value) Len() int {
	switch v.kind {
	case Floats:
		return len(v.fs)
	case List:
		return len(v.l)
	}
	return -1
}

//Depth returns the nesting depth. Scalars have depth 0, Floats 1,
//and a List one more than its deepest element.
func (v Value) Depth() int {
	switch v.kind {
	case Floats:
		return 1
	case List:
		d := 0
		for _, e := range v.l {
			if ed := e.Depth(); ed > d {
				d = ed
			}
		}
		return d + 1
	}
	return 0
}

//Leaf returns the kind of the scalars stored in v. Mixed lists
//with numbers and integers report Float. Otherwise-mixed
//lists, and empty sequences, report Invalid.
func (v Value) Leaf() Kind {
	switch v.kind {
	case Floats:
		return Float
	case List:
		k := Invalid
		for _, e := range v.l {
			ek := e.Leaf()
			switch {
			case ek == Invalid:
				continue
			case k == Invalid:
				k = ek
			case k == ek:
			case (k == Int && ek == Float) || (k == Float && ek == Int):
				k = Float
			default:
				return Invalid
			}
		}
		return k
	}
	return v.kind
}

//Clone returns a deep copy of v.
func (v Value) Clone() Value {
	switch v.kind {
	case Floats:
		return Fs(v.fs...)
	case List:
		l := make([]Value, len(v.l))
		for i, e := range v.l {
			l[i] = e.Clone()
		}
		return Value{kind: List, l: l}
	}
	return v
}

//Equal reports whether v and o hold the same data. A Floats value
//equals a List of the same numbers.
func (v Value) Equal(o Value) bool {
	if v.IsSeq() && o.IsSeq() {
		if v.Len() != o.Len() {
			return false
		}
		a, b := v.Elems(), o.Elems()
		for i := range a {
			if !a[i].Equal(b[i]) {
				return false
			}
		}
		return true
	}
	if v.kind != o.kind {
		x, ok1 := v.Number()
		y, ok2 := o.Number()
		return ok1 && ok2 && x == y
	}
	switch v.kind {
	case Float:
		return v.f == o.f
	case Int:
		return v.i == o.i
	case String:
		return v.s == o.s
	case Bool:
		return v.b == o.b
	}
	return true
}

func (v Value) String() string {
	switch v.kind {
	case Float:
		return fmt.Sprintf("%g", v.f)
	case Int:
		return fmt.Sprintf("%d", v.i)
	case String:
		return fmt.Sprintf("%q", v.s)
	case Bool:
		return fmt.Sprintf("%t", v.b)
	case Floats:
		return fmt.Sprintf("%v", v.fs)
	case List:
		s := make([]string, len(v.l))
		for i, e := range v.l {
			s[i] = e.String()
		}
		return "[" + strings.Join(s, " ") + "]"
	}
	return "<invalid>"
}

//Record holds the data of one conformer, indexed by genre.
type Record map[string]Value

//Merge copies every field of o into r, overwriting existing genres.
func (r Record) Merge(o Record) {
	for k, v := range o {
		r[k] = v.Clone()
	}
}

//Clone returns a deep copy of the record.
func (r Record) Clone() Record {
	ret := make(Record, len(r))
	for k, v := range r {
		ret[k] = v.Clone()
	}
	return ret
}

//Has returns true if the record holds all the given genres.
func (r Record) Has(genres ...string) bool {
	for _, g := range genres {
		if _, ok := r[g]; !ok {
			return false
		}
	}
	return true
}

//Genres returns the genres in the record, sorted.
func (r Record) Genres() []string {
	ret := make([]string, 0, len(r))
	for k := range r {
		ret = append(ret, k)
	}
	sort.Strings(ret)
	return ret
}
