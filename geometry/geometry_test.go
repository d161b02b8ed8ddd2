/*
 * geometry_test.go, part of goconformers.
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
	"testing"

	"github.com/rmera/goconformers/errs"
	"github.com/rmera/goconformers/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriangular(Te *testing.T) {
	assert.True(Te, IsTriangular(0))
	assert.True(Te, IsTriangular(1))
	assert.True(Te, IsTriangular(10))
	assert.False(Te, IsTriangular(7))
	assert.False(Te, IsTriangular(-3))
	b, err := TriangularBase(10)
	require.NoError(Te, err)
	assert.Equal(Te, 4, b)
	_, err = TriangularBase(7)
	assert.ErrorIs(Te, err, errs.ErrValue)
	t, err := Triangular(4)
	require.NoError(Te, err)
	assert.Equal(Te, 10, t)
	_, err = Triangular(-3)
	assert.Error(Te, err)
}

func TestUnpack(Te *testing.T) {
	in := []float64{0, 2, 0, 6, 4, 0}
	got, err := UnpackAll([][]float64{in})
	require.NoError(Te, err)
	assert.Equal(Te, [][][]float64{{{0, 2, 6}, {2, 0, 4}, {6, 4, 0}}}, got)
	assert.Equal(Te, in, Pack(got[0]))
	assert.Equal(Te, [][]float64{{2, 6}, {2, 4}, {6, 4}}, DropDiagonals(got[0]))
	_, err = Unpack([]float64{1, 2})
	assert.Error(Te, err)
}

func TestFixedWindows(Te *testing.T) {
	w, err := FixedWindows(5, 3)
	require.NoError(Te, err)
	assert.Equal(Te, [][]int{{0, 1, 2}, {1, 2, 3}, {2, 3, 4}}, w)
	w, err = FixedWindows(2, 3)
	require.NoError(Te, err)
	assert.Empty(Te, w)
	_, err = FixedWindows(2, 0)
	assert.ErrorIs(Te, err, errs.ErrValue)
}

func TestStretchingWindows(Te *testing.T) {
	cases := []struct {
		in      []float64
		hermits bool
		hard    bool
		out     [][]int
	}{
		{nil, false, true, nil},
		{[]float64{1}, false, true, nil},
		{[]float64{0, 1, 2, 3}, false, true, [][]int{{0, 1, 2}, {1, 2, 3}}},
		{[]float64{1, 2, 10, 20, 21}, false, true, [][]int{{0, 1}, {3, 4}}},
		{[]float64{1}, true, true, [][]int{{0}}},
		{[]float64{1, 2, 10, 20, 21}, true, true, [][]int{{0, 1}, {2}, {3, 4}}},
		{[]float64{0, 1, 2, 3}, false, false, [][]int{{0, 1, 2}, {1, 2, 3}, {2, 3}}},
		{[]float64{1, 2, 3, 20, 21}, false, false, [][]int{{0, 1, 2}, {1, 2}, {3, 4}}},
		{[]float64{3, 1, 2}, false, true, [][]int{{1, 2, 0}}},
	}
	for _, c := range cases {
		got, err := StretchingWindows(c.in, 2, c.hermits, c.hard)
		require.NoError(Te, err)
		assert.Equal(Te, c.out, got, "%v", c.in)
	}
	_, err := StretchingWindows([]float64{1, 1}, 0, false, false)
	assert.Error(Te, err)
}

func TestPyramidWindows(Te *testing.T) {
	w, _ := PyramidWindows(make([]float64, 3), 0)
	assert.Equal(Te, [][]int{{0, 1, 2}, {1, 2}, {2}}, w)
}

func rotz(rows [][]float64, angle float64) [][]float64 {
	c, s := math.Cos(angle), math.Sin(angle)
	ret := make([][]float64, len(rows))
	for i, r := range rows {
		ret[i] = []float64{c*r[0] - s*r[1] + 1, s*r[0] + c*r[1], r[2] - 2}
	}
	return ret
}

func TestRMSDSieve(Te *testing.T) {
	base := [][]float64{{0, 0, 0}, {1.5, 0, 0}, {0, 1.2, 0.3}, {0.4, 0.2, 1.1}}
	other := [][]float64{{0, 0, 0}, {1.5, 0, 0}, {0, -1.2, 0.3}, {3.4, 2.2, -1.1}}
	var geoms []*v3.Matrix
	for _, rows := range [][][]float64{base, rotz(base, 0.7), other, rotz(other, 2)} {
		m, err := v3.FromRows(rows)
		require.NoError(Te, err)
		geoms = append(geoms, m)
	}
	windows, _ := PyramidWindows(make([]float64, 4), 0)
	kept, err := RMSDSieve(geoms, windows, 0.1)
	require.NoError(Te, err)
	assert.Equal(Te, []bool{true, false, true, false}, kept)
	//windows too small to see the duplicates
	windows, _ = FixedWindows(4, 1)
	kept, err = RMSDSieve(geoms, windows, 0.1)
	require.NoError(Te, err)
	assert.Equal(Te, []bool{true, true, true, true}, kept)
	_, err = RMSDSieve(geoms, [][]int{{0, 9}}, 0.1)
	assert.ErrorIs(Te, err, errs.ErrIndex)
}

func TestDropAtoms(Te *testing.T) {
	geom, err := v3.FromRows([][]float64{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}})
	require.NoError(Te, err)
	got, err := DropAtoms(geom, []int{6, 1, 8}, 1)
	require.NoError(Te, err)
	assert.Equal(Te, [][]float64{{0, 0, 0}, {2, 0, 0}}, got.Rows())
	got, err = TakeAtoms(geom, []int{6, 1, 8}, 1)
	require.NoError(Te, err)
	assert.Equal(Te, [][]float64{{1, 0, 0}}, got.Rows())
	//the original is not touched
	assert.Equal(Te, 3, geom.NVecs())
	_, err = DropAtoms(geom, []int{1}, 1)
	assert.ErrorIs(Te, err, errs.ErrLength)
	_, err = TakeAtoms(geom, []int{6, 6, 8}, 1)
	assert.ErrorIs(Te, err, errs.ErrLength)
}
