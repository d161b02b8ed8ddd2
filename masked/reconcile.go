/*
 * reconcile.go, part of goconformers.
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
package masked

import (
	"log/slog"

	"github.com/rmera/goconformers/errs"
	"github.com/rmera/goconformers/fields"
)

var logger = slog.Default()

//SetLogger sets the logger used for non-fatal notices.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.Default()
	}
	logger = l
}

//BestShape returns the smallest rectangular shape that can hold every
//value given: the number of values, followed by the length of the
//longest sequence found at each nesting depth.
func BestShape(vals []fields.Value) []int {
	shape := []int{len(vals)}
	level := vals
	for {
		longest := -1
		var next []fields.Value
		for _, v := range level {
			if !v.IsSeq() {
				continue
			}
			if v.Len() > longest {
				longest = v.Len()
			}
			next = append(next, v.Elems()...)
		}
		if longest < 0 {
			return shape
		}
		shape = append(shape, longest)
		level = next
	}
}

//Lengths returns the length of each value given, -1 for scalars.
func Lengths(vals []fields.Value) []int {
	ret := make([]int, len(vals))
	for i, v := range vals {
		ret[i] = v.Len()
	}
	return ret
}

//IsJagged returns true if the values cannot be stored in an array
//without filler.
func IsJagged(vals []fields.Value) bool {
	shape := BestShape(vals)
	for _, v := range vals {
		if !fits(v, shape[1:]) {
			return true
		}
	}
	return false
}

func fits(v fields.Value, shape []int) bool {
	if len(shape) == 0 {
		return !v.IsSeq()
	}
	if v.Len() != shape[0] {
		return false
	}
	for _, e := range v.Elems() {
		if !fits(e, shape[1:]) {
			return false
		}
	}
	return true
}

//FromValues builds an array from per-conformer values, using conv to turn each
//scalar into a T. Values are left-aligned in the shape returned by BestShape,
//remaining positions are set to fill and masked. Values that are already
//rectangular produce an array with no mask. An error is returned if conv fails
//or if a scalar is found where a sequence is expected.
func FromValues[T any](vals []fields.Value, conv func(fields.Value) (T, bool), fill T) (*Array[T], error) {
	shape := BestShape(vals)
	n := size(shape)
	data := make([]T, n)
	mask := make([]bool, n)
	for i := range data {
		data[i] = fill
		mask[i] = true
	}
	strides := make([]int, len(shape))
	s := 1
	for i := len(shape) - 1; i >= 0; i-- {
		strides[i] = s
		s *= shape[i]
	}
	var place func(v fields.Value, depth, off int) error
	place = func(v fields.Value, depth, off int) error {
		if depth == len(shape) {
			if v.IsSeq() {
				return errs.New(errs.ErrInconsistentData, "sequence found where a scalar was expected")
			}
			t, ok := conv(v)
			if !ok {
				return errs.New(errs.ErrType, "cannot convert %v (%s)", v, v.Kind())
			}
			data[off] = t
			mask[off] = false
			return nil
		}
		if !v.IsSeq() {
			return errs.New(errs.ErrInconsistentData, "scalar %v found at depth %d of a %d-dimensional array", v, depth, len(shape))
		}
		for j, e := range v.Elems() {
			if err := place(e, depth+1, off+j*strides[depth]); err != nil {
				return err
			}
		}
		return nil
	}
	for i, v := range vals {
		if err := place(v, 1, i*strides[0]); err != nil {
			return nil, errs.Decorate(err, "masked/FromValues")
		}
	}
	return New(shape, data, mask)
}

//Reconcile builds an array from the values of one genre. If the values are
//jagged, the array is built with filler and a notice is logged when allow is
//true, otherwise an ErrInconsistentData error naming the genre and the
//conflicting lengths is returned.
func Reconcile[T any](genre string, vals []fields.Value, conv func(fields.Value) (T, bool), fill T, allow bool) (*Array[T], error) {
	if IsJagged(vals) {
		if !allow {
			return nil, errs.New(errs.ErrInconsistentData, "%s values have inconsistent sizes: %v", genre, Lengths(vals))
		}
		logger.Info("reconciling jagged values with a mask", "genre", genre, "lengths", Lengths(vals))
	}
	ret, err := FromValues(vals, conv, fill)
	if err != nil {
		return nil, errs.Decorate(err, genre)
	}
	return ret, nil
}

//Float converts numeric scalars to float64.
func Float(v fields.Value) (float64, bool) { return v.Number() }

//Int converts integral scalars to int.
func Int(v fields.Value) (int, bool) { return v.Int() }

//String converts string scalars. Other scalars are formatted.
func String(v fields.Value) (string, bool) {
	if s, ok := v.Str(); ok {
		return s, true
	}
	if v.IsSeq() || !v.Valid() {
		return "", false
	}
	return v.String(), true
}

//Bool converts boolean scalars.
func Bool(v fields.Value) (bool, bool) { return v.Bool() }
