/*
 * gonum.go, part of goconformers.
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
//gonum.go contains what is needed for handling the gonum/mat types and facilities.

//All the *Vec functions will operate/produce row vectors, which are the
//cartesian coordinates of one atom.

package v3

import (
	"fmt"
	"strings"

	"github.com/rmera/goconformers/errs"
	"gonum.org/v1/gonum/mat"
)

//Matrix is a set of vectors in 3D space.
//Within the package it is understood that a "vector" is a row vector, i.e. the
//cartesian coordinates of a point in 3D space.
type Matrix struct {
	*mat.Dense
}

//NewMatrix generates and returns a Matrix with 3 columns from data.
func NewMatrix(data []float64) (*Matrix, error) {
	const cols int = 3
	l := len(data)
	rows := l / cols
	if l%cols != 0 || l == 0 {
		return nil, errs.New(errs.ErrLength, "v3/NewMatrix: input slice length %d not divisible by %d", l, cols)
	}
	return &Matrix{mat.NewDense(rows, cols, data)}, nil
}

//FromRows builds a Matrix from a slice of 3-element rows.
func FromRows(rows [][]float64) (*Matrix, error) {
	d := make([]float64, 0, 3*len(rows))
	for i, r := range rows {
		if len(r) != 3 {
			return nil, errs.New(errs.ErrLength, "v3/FromRows: row %d has %d coordinates", i, len(r))
		}
		d = append(d, r...)
	}
	return NewMatrix(d)
}

//Zeros returns a zero-filled Matrix with vecs vectors and 3 in the other dimension.
func Zeros(vecs int) *Matrix {
	const cols int = 3
	return &Matrix{mat.NewDense(vecs, cols, nil)}
}

//NVecs returns the number of vectors (rows) in the matrix.
func (F *Matrix) NVecs() int {
	r, c := F.Dims()
	if c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return r
}

//SomeVecs puts the vectors of A listed in clist in the receiver, which must have
//len(clist) vectors.
func (F *Matrix) SomeVecs(A *Matrix, clist []int) {
	if F.NVecs() != len(clist) {
		panic(ErrShape)
	}
	for i, v := range clist {
		F.SetRow(i, A.RawRowView(v))
	}
}

//Rows returns a copy of the matrix as a slice of rows.
func (F *Matrix) Rows() [][]float64 {
	ret := make([][]float64, F.NVecs())
	for i := range ret {
		ret[i] = mat.Row(nil, i, F.Dense)
	}
	return ret
}

//Centroid returns the geometric center of the vectors in the matrix.
func (F *Matrix) Centroid() []float64 {
	n := F.NVecs()
	ret := make([]float64, 3)
	for i := 0; i < n; i++ {
		for j := 0; j < 3; j++ {
			ret[j] += F.At(i, j)
		}
	}
	for j := range ret {
		ret[j] /= float64(n)
	}
	return ret
}

//SubRow puts in the receiver the result of subtracting row from each vector of A.
func (F *Matrix) SubRow(A *Matrix, row []float64) {
	if len(row) != 3 {
		panic(ErrShape)
	}
	n := A.NVecs()
	for i := 0; i < n; i++ {
		for j := 0; j < 3; j++ {
			F.Set(i, j, A.At(i, j)-row[j])
		}
	}
}

func (F *Matrix) String() string {
	rows := F.Rows()
	s := make([]string, len(rows))
	for i, r := range rows {
		s[i] = fmt.Sprintf("%8.4f %8.4f %8.4f", r[0], r[1], r[2])
	}
	return strings.Join(s, "\n")
}

//PanicMsg is a message used for panics, even though it does satisfy the error interface.
//for errors use errs.Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNotXx3Matrix = PanicMsg("goConformers/v3: A v3.Matrix should have 3 columns")
	ErrShape        = PanicMsg("goConformers/v3: Dimension mismatch")
)
