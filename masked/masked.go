/*
 * masked.go, part of goconformers.
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
//Package masked implements small n-dimensional arrays with an optional
//boolean mask, and the reconciliation of jagged per-conformer sequences
//into such arrays.
//
//A true in the mask marks a position that holds filler and not real data.
//Arrays that were built from rectangular data carry no mask at all.
package masked

import (
	"fmt"

	"github.com/rmera/goconformers/errs"
)

//Array is a row-major n-dimensional array of T.
type Array[T any] struct {
	shape []int
	data  []T
	mask  []bool
}

func size(shape []int) int {
	n := 1
	for _, s := range shape {
		n *= s
	}
	return n
}

//New returns an array with the given shape, data and mask. Data is not copied.
//mask can be nil, meaning nothing is masked.
func New[T any](shape []int, data []T, mask []bool) (*Array[T], error) {
	n := size(shape)
	if len(shape) == 0 {
		return nil, errs.New(errs.ErrValue, "arrays need at least one dimension")
	}
	if len(data) != n {
		return nil, errs.New(errs.ErrLength, "shape %v needs %d values, got %d", shape, n, len(data))
	}
	if mask != nil && len(mask) != n {
		return nil, errs.New(errs.ErrLength, "shape %v needs a mask of %d values, got %d", shape, n, len(mask))
	}
	ret := &Array[T]{shape: append([]int(nil), shape...), data: data}
	if anyTrue(mask) {
		ret.mask = mask
	}
	return ret, nil
}

//Zeros returns an unmasked array of the given shape, filled with the zero value of T.
func Zeros[T any](shape ...int) *Array[T] {
	if len(shape) == 0 {
		shape = []int{0}
	}
	return &Array[T]{shape: append([]int(nil), shape...), data: make([]T, size(shape))}
}

//Vector returns an unmasked 1-D array holding a copy of v.
func Vector[T any](v []T) *Array[T] {
	d := make([]T, len(v))
	copy(d, v)
	return &Array[T]{shape: []int{len(v)}, data: d}
}

//Matrix returns a 2-D array from rows of equal length.
func Matrix[T any](rows [][]T) (*Array[T], error) {
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	d := make([]T, 0, len(rows)*cols)
	for i, r := range rows {
		if len(r) != cols {
			return nil, errs.New(errs.ErrInconsistentData, "row %d has %d values, expected %d", i, len(r), cols)
		}
		d = append(d, r...)
	}
	return &Array[T]{shape: []int{len(rows), cols}, data: d}, nil
}

func anyTrue(b []bool) bool {
	for _, v := range b {
		if v {
			return true
		}
	}
	return false
}

//Shape returns a copy of the shape of the array.
func (A *Array[T]) Shape() []int { return append([]int(nil), A.shape...) }

//Ndim returns the number of dimensions.
func (A *Array[T]) Ndim() int { return len(A.shape) }

//Len returns the size of the first dimension.
func (A *Array[T]) Len() int { return A.shape[0] }

//Size returns the total number of elements.
func (A *Array[T]) Size() int { return len(A.data) }

//Data returns a copy of the flat, row-major data, filler included.
func (A *Array[T]) Data() []T { return append([]T(nil), A.data...) }

//Mask returns a copy of the flat mask, or nil if nothing is masked.
func (A *Array[T]) Mask() []bool {
	if A.mask == nil {
		return nil
	}
	return append([]bool(nil), A.mask...)
}

//IsMasked returns true if any position holds filler.
func (A *Array[T]) IsMasked() bool { return A.mask != nil }

func (A *Array[T]) offset(idx []int) int {
	if len(idx) != len(A.shape) {
		panic(fmt.Sprintf("masked: %d indexes for a %d-dimensional array", len(idx), len(A.shape)))
	}
	off := 0
	for i, v := range idx {
		if v < 0 || v >= A.shape[i] {
			panic(fmt.Sprintf("masked: index %d out of range for dimension %d of size %d", v, i, A.shape[i]))
		}
		off = off*A.shape[i] + v
	}
	return off
}

//At returns the element at the given position. It panics if the position
//is out of range, like a slice would.
func (A *Array[T]) At(idx ...int) T { return A.data[A.offset(idx)] }

//MaskedAt returns true if the element at the given position is filler.
func (A *Array[T]) MaskedAt(idx ...int) bool {
	if A.mask == nil {
		return false
	}
	return A.mask[A.offset(idx)]
}

func (A *Array[T]) rowSize() int {
	return size(A.shape[1:])
}

//Take returns a new array with the given rows (first-axis entries), in order.
func (A *Array[T]) Take(rows []int) *Array[T] {
	rs := A.rowSize()
	shape := A.Shape()
	shape[0] = len(rows)
	ret := &Array[T]{shape: shape, data: make([]T, 0, len(rows)*rs)}
	var mask []bool
	if A.mask != nil {
		mask = make([]bool, 0, len(rows)*rs)
	}
	for _, r := range rows {
		ret.data = append(ret.data, A.data[r*rs:(r+1)*rs]...)
		if mask != nil {
			mask = append(mask, A.mask[r*rs:(r+1)*rs]...)
		}
	}
	if anyTrue(mask) {
		ret.mask = mask
	}
	return ret
}

//Row returns the i-th entry of the first axis as an array with one dimension less.
//Rows of 1-D arrays are returned as 1-element arrays.
func (A *Array[T]) Row(i int) *Array[T] {
	if len(A.shape) == 1 {
		return A.Take([]int{i})
	}
	rs := A.rowSize()
	ret := &Array[T]{shape: append([]int(nil), A.shape[1:]...), data: append([]T(nil), A.data[i*rs:(i+1)*rs]...)}
	if A.mask != nil {
		m := append([]bool(nil), A.mask[i*rs:(i+1)*rs]...)
		if anyTrue(m) {
			ret.mask = m
		}
	}
	return ret
}

//Rows returns the array as a slice of flat rows, one per first-axis entry,
//filler included.
func (A *Array[T]) Rows() [][]T {
	rs := A.rowSize()
	ret := make([][]T, A.shape[0])
	for i := range ret {
		ret[i] = append([]T(nil), A.data[i*rs:(i+1)*rs]...)
	}
	return ret
}

//Compressed returns the real (unmasked) values of row i, flattened.
func (A *Array[T]) Compressed(i int) []T {
	rs := A.rowSize()
	ret := make([]T, 0, rs)
	for j := i * rs; j < (i+1)*rs; j++ {
		if A.mask == nil || !A.mask[j] {
			ret = append(ret, A.data[j])
		}
	}
	return ret
}

//Copy returns a deep copy of the array.
func (A *Array[T]) Copy() *Array[T] {
	return &Array[T]{shape: A.Shape(), data: A.Data(), mask: A.Mask()}
}

//Map applies f to every element, returning a new array with the same mask.
func Map[T, U any](A *Array[T], f func(T) U) *Array[U] {
	ret := &Array[U]{shape: A.Shape(), data: make([]U, len(A.data)), mask: A.Mask()}
	for i, v := range A.data {
		ret.data[i] = f(v)
	}
	return ret
}

func (A *Array[T]) String() string {
	if A.mask == nil {
		return fmt.Sprintf("shape %v %v", A.shape, A.data)
	}
	return fmt.Sprintf("shape %v %v mask %v", A.shape, A.data, A.mask)
}
