/*
 * contract.go, part of goconformers.
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
package arrays

import (
	"log/slog"

	"github.com/rmera/goconformers/errs"
	"github.com/rmera/goconformers/fields"
	"github.com/rmera/goconformers/masked"
)

var logger = slog.Default()

//SetLogger sets the logger used for non-fatal notices.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.Default()
	}
	logger = l
}

//Contract describes how the per-conformer values of one field of an array
//are validated and turned into a typed array.
type Contract[T any] struct {
	Name string
	//Conv coerces each scalar to T.
	Conv func(fields.Value) (T, bool)
	//Fill is used for the positions that jagged values leave empty.
	Fill T
	//CheckAgainst names the field whose shape must match the shape of this one,
	//up to CheckDepth dimensions. Empty means no check.
	CheckAgainst string
	CheckDepth   int
	//Sanitizer, if not nil, transforms each value before anything else is done.
	Sanitizer func(fields.Value) (fields.Value, error)
	//Collapsible fields are stored once, if all conformers have the same value.
	Collapsible bool
	//Strict collapsible fields don't accept non-identical values.
	Strict bool
}

func sameShape(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func upTo(shape []int, from, to int) []int {
	if from > len(shape) {
		from = len(shape)
	}
	if to > len(shape) {
		to = len(shape)
	}
	return shape[from:to]
}

//Apply validates vals, one per conformer, and returns them as an array.
//ref is the shape of the field named in CheckAgainst. If allow is true,
//shape mismatches are tolerated and jagged values are reconciled with a mask.
func (C Contract[T]) Apply(vals []fields.Value, ref []int, allow bool) (*masked.Array[T], error) {
	errid := "Contract/Apply"
	if C.Sanitizer != nil {
		clean := make([]fields.Value, len(vals))
		for i, v := range vals {
			s, err := C.Sanitizer(v)
			if err != nil {
				return nil, errs.Decorate(err, C.Name)
			}
			clean[i] = s
		}
		vals = clean
	}
	if C.CheckAgainst != "" && ref != nil {
		best := masked.BestShape(vals)
		first := 0
		if C.Collapsible && best[0] == 1 {
			first = 1
		}
		depth := C.CheckDepth
		if depth <= 0 {
			depth = 1
		}
		if !sameShape(upTo(best, first, depth), upTo(ref, first, depth)) {
			if !allow {
				return nil, errs.New(errs.ErrInconsistentData, "%s: %s and %s must have the same shape up to %d dimensions, arrays of shape %v and %v were given", errid, C.Name, C.CheckAgainst, depth, best, ref)
			}
			logger.Info("shape mismatch tolerated", "field", C.Name, "against", C.CheckAgainst, "shape", best, "reference", ref)
		}
	}
	arr, err := masked.Reconcile(C.Name, vals, C.Conv, C.Fill, allow)
	if err != nil {
		return nil, errs.Decorate(err, errid)
	}
	if !C.Collapsible || arr.Len() == 0 {
		return arr, nil
	}
	if allRowsEqual(arr) {
		return arr.Take([]int{0}), nil
	}
	if C.Strict && !allow {
		return nil, errs.New(errs.ErrInconsistentData, "%s: non-uniform values given for %s", errid, C.Name)
	}
	return arr, nil
}

func allRowsEqual[T any](arr *masked.Array[T]) bool {
	rows := arr.Rows()
	mask := arr.Mask()
	rs := 0
	if len(rows) > 0 {
		rs = len(rows[0])
	}
	for i := 1; i < len(rows); i++ {
		for j := range rows[i] {
			if any(rows[i][j]) != any(rows[0][j]) {
				return false
			}
			if mask != nil && mask[i*rs+j] != mask[j] {
				return false
			}
		}
	}
	return true
}
