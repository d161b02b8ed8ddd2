/*
 * windows.go, part of goconformers.
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
//Package geometry compares the geometries of conformers, using windows
//of conformers close in energy, and handles packed symmetric matrices.
package geometry

import (
	"sort"

	"github.com/rmera/goconformers/errs"
)

//Strategy produces windows of indices from a series of energies.
//Comparisons between conformers only happen inside a window.
type Strategy func(energies []float64, size float64) ([][]int, error)

//FixedWindows returns all the windows of size consecutive indices in a series
//of n elements: [0 1 ... size-1], [1 2 ... size], and so on.
func FixedWindows(n, size int) ([][]int, error) {
	if size <= 0 {
		return nil, errs.New(errs.ErrValue, "geometry/FixedWindows: size must be a positive integer, but %d given", size)
	}
	var ret [][]int
	for start := 0; start+size <= n; start++ {
		w := make([]int, size)
		for i := range w {
			w[i] = start + i
		}
		ret = append(ret, w)
	}
	return ret, nil
}

//StretchingWindows implements a sliding window of variable size, where values in each
//window are at most size bigger than the lowest value in the window. Windows hold
//indices of values, in ascending order of values.
//With a soft bound, windows reaching the end of the values, or a gap larger than size,
//shrink, producing subsequences of the first window touching the border. With
//hardBound, the window moves to the other side of the border immediately.
//Windows of only one element ("hermits") are returned only if keepHermits is true.
func StretchingWindows(values []float64, size float64, keepHermits, hardBound bool) ([][]int, error) {
	if size <= 0 {
		return nil, errs.New(errs.ErrValue, "geometry/StretchingWindows: size of the energy window must be a positive number, %g given", size)
	}
	order := make([]int, len(values))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool { return values[order[i]] < values[order[j]] })
	ordered := make([]float64, len(values))
	for i, o := range order {
		ordered[i] = values[o]
	}
	stops := make([]int, len(ordered))
	for i, v := range ordered {
		//number of values lower or equal to v+size
		stops[i] = sort.Search(len(ordered), func(k int) bool { return ordered[k] > v+size })
	}
	var ret [][]int
	for start, stop := range stops {
		if hardBound && start > 0 && stops[start-1] == stop {
			continue
		}
		if !keepHermits && stop-start == 1 {
			continue
		}
		ret = append(ret, append([]int(nil), order[start:stop]...))
	}
	return ret, nil
}

//Stretching is a Strategy using StretchingWindows with a soft bound and no hermits.
func Stretching(energies []float64, size float64) ([][]int, error) {
	return StretchingWindows(energies, size, false, false)
}

//PyramidWindows returns windows of shrinking size, from the full series of n
//elements to the last element only. size is ignored, it is there so the
//function can be used as a Strategy.
func PyramidWindows(energies []float64, size float64) ([][]int, error) {
	n := len(energies)
	ret := make([][]int, n)
	for i := range ret {
		w := make([]int, 0, n-i)
		for j := i; j < n; j++ {
			w = append(w, j)
		}
		ret[i] = w
	}
	return ret, nil
}
