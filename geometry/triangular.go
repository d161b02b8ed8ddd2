/*
 * triangular.go, part of goconformers.
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
package geometry

import (
	"math"

	"github.com/rmera/goconformers/errs"
)

//IsTriangular returns true if n is a triangular number, i.e. n = m(m+1)/2
//for some whole m. That is the case only if 8n+1 is a perfect square.
func IsTriangular(n int) bool {
	if n < 0 {
		return false
	}
	check := math.Sqrt(float64(8*n + 1))
	return check == math.Trunc(check)
}

//TriangularBase returns m, such that n is the mth triangular number.
func TriangularBase(n int) (int, error) {
	if !IsTriangular(n) {
		return 0, errs.New(errs.ErrValue, "%d is not a triangular number", n)
	}
	return int((math.Sqrt(float64(8*n+1)) - 1) / 2), nil
}

//Triangular returns the mth triangular number.
func Triangular(m int) (int, error) {
	if m < 0 {
		return 0, errs.New(errs.ErrValue, "m should be a non-negative number, %d given", m)
	}
	return m * (m + 1) / 2, nil
}

//Unpack builds a symmetric matrix from the values of its lower triangle,
//diagonal included, given row by row: [a00 a10 a11 a20 a21 a22 ...].
func Unpack(values []float64) ([][]float64, error) {
	m, err := TriangularBase(len(values))
	if err != nil {
		return nil, errs.Decorate(err, "geometry/Unpack")
	}
	ret := make([][]float64, m)
	for i := range ret {
		ret[i] = make([]float64, m)
	}
	k := 0
	for i := 0; i < m; i++ {
		for j := 0; j <= i; j++ {
			ret[i][j] = values[k]
			ret[j][i] = values[k]
			k++
		}
	}
	return ret, nil
}

//UnpackAll unpacks the values of each conformer.
func UnpackAll(values [][]float64) ([][][]float64, error) {
	ret := make([][][]float64, len(values))
	for i, v := range values {
		u, err := Unpack(v)
		if err != nil {
			return nil, errs.Decorate(err, "geometry/UnpackAll")
		}
		ret[i] = u
	}
	return ret, nil
}

//Pack is the inverse of Unpack. Only the lower triangle of matrix is read.
func Pack(matrix [][]float64) []float64 {
	m := len(matrix)
	ret := make([]float64, 0, m*(m+1)/2)
	for i := 0; i < m; i++ {
		ret = append(ret, matrix[i][:i+1]...)
	}
	return ret
}

//DropDiagonals returns the rows of a square matrix without their diagonal element.
func DropDiagonals(matrix [][]float64) [][]float64 {
	ret := make([][]float64, len(matrix))
	for i, row := range matrix {
		r := make([]float64, 0, len(row))
		for j, v := range row {
			if j != i {
				r = append(r, v)
			}
		}
		ret[i] = r
	}
	return ret
}
