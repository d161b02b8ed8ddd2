/*
 * v3_test.go, part of goconformers.
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
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

var water = [][]float64{
	{0.000, 0.000, 0.117},
	{0.000, 0.757, -0.467},
	{0.000, -0.757, -0.467},
	{0.500, 0.100, 0.300},
}

//rotates around z by angle radians and translates by t.
func moved(rows [][]float64, angle float64, t []float64) [][]float64 {
	c, s := math.Cos(angle), math.Sin(angle)
	ret := make([][]float64, len(rows))
	for i, r := range rows {
		ret[i] = []float64{c*r[0] - s*r[1] + t[0], s*r[0] + c*r[1] + t[1], r[2] + t[2]}
	}
	return ret
}

func TestNewMatrix(Te *testing.T) {
	_, err := NewMatrix([]float64{1, 2})
	assert.Error(Te, err)
	A, err := FromRows(water)
	require.NoError(Te, err)
	assert.Equal(Te, 4, A.NVecs())
	assert.Equal(Te, water[1], A.Rows()[1])
	B := Zeros(2)
	B.SomeVecs(A, []int{3, 0})
	assert.Equal(Te, water[3], B.Rows()[0])
	fmt.Println(A)
}

func TestCenter(Te *testing.T) {
	A, _ := FromRows(water)
	c := Center(A).Centroid()
	assert.InDeltaSlice(Te, []float64{0, 0, 0}, c, 1e-12)
}

func TestSuperRMSD(Te *testing.T) {
	A, _ := FromRows(water)
	B, _ := FromRows(moved(water, 1.1, []float64{3, -2, 1}))
	plain, err := RMSD(A, B)
	require.NoError(Te, err)
	assert.Greater(Te, plain, 1.0)
	super, err := SuperRMSD(B, A)
	require.NoError(Te, err)
	assert.InDelta(Te, 0, super, 1e-9)
	_, err = RMSD(A, Zeros(2))
	assert.Error(Te, err)
}

func TestRotatorIsProper(Te *testing.T) {
	A, _ := FromRows(water)
	B, _ := FromRows(moved(water, -0.4, []float64{0, 0, 0}))
	rot, err := Rotator(Center(B), Center(A))
	require.NoError(Te, err)
	assert.InDelta(Te, 1, mat.Det(rot), 1e-9)
}
