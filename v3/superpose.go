/*
 * superpose.go, part of goconformers.
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
package v3

import (
	"math"

	"github.com/rmera/goconformers/errs"
	"gonum.org/v1/gonum/mat"
)

//Center returns a copy of A translated so its centroid lies on the origin.
func Center(A *Matrix) *Matrix {
	ret := Zeros(A.NVecs())
	ret.SubRow(A, A.Centroid())
	return ret
}

//Rotator returns the rotation matrix that, multiplied from the right,
//minimizes the RMSD of test with respect to templa, using the Kabsch algorithm.
//Both sets of points must be centered on the origin and have the same number of vectors.
//Improper rotations are corrected, so the result always keeps the handedness of test.
func Rotator(test, templa *Matrix) (*Matrix, error) {
	errid := "v3/Rotator"
	if test.NVecs() != templa.NVecs() {
		return nil, errs.New(errs.ErrLength, "%s: %d vectors in test, %d in template", errid, test.NVecs(), templa.NVecs())
	}
	var cov mat.Dense
	cov.Mul(test.T(), templa)
	var svd mat.SVD
	if ok := svd.Factorize(&cov, mat.SVDFull); !ok {
		return nil, errs.New(errs.ErrValue, "%s: singular value decomposition failed", errid)
	}
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)
	sign := 1.0
	if mat.Det(&u)*mat.Det(&v) < 0 {
		sign = -1
	}
	swap := mat.NewDiagDense(3, []float64{1, 1, sign})
	var us mat.Dense
	us.Mul(&u, swap)
	rot := Zeros(3)
	rot.Mul(&us, v.T())
	return rot, nil
}

//Kabsch returns a copy of test, rotated to best match templa.
//Both sets of points are expected to be centered on the origin.
func Kabsch(test, templa *Matrix) (*Matrix, error) {
	rot, err := Rotator(test, templa)
	if err != nil {
		return nil, errs.Decorate(err, "v3/Kabsch")
	}
	ret := Zeros(test.NVecs())
	ret.Mul(test.Dense, rot.Dense)
	return ret, nil
}

//RMSD returns the RSMD (root of the mean square deviation) for the sets of cartesian
//coordinates in test and template. No superposition is performed.
func RMSD(test, template *Matrix) (float64, error) {
	tmr, _ := template.Dims()
	tsr, _ := test.Dims()
	if tmr != tsr || tmr == 0 {
		return 0, errs.New(errs.ErrLength, "v3/RMSD: ill formed matrices for RMSD calculation: %d and %d vectors", tsr, tmr)
	}
	var diff mat.Dense
	diff.Sub(template.Dense, test.Dense)
	sq := mat.Norm(&diff, 2) //Frobenius norm
	return math.Sqrt(sq * sq / float64(tmr)), nil
}

//SuperRMSD centers both sets of points, rotates test onto templa and
//returns the RMSD of the superimposed structures.
func SuperRMSD(test, templa *Matrix) (float64, error) {
	ctest, ctempla := Center(test), Center(templa)
	rotated, err := Kabsch(ctest, ctempla)
	if err != nil {
		return 0, errs.Decorate(err, "v3/SuperRMSD")
	}
	return RMSD(rotated, ctempla)
}
