/*
 * fields_test.go, part of goconformers.
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
package fields

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueShapes(Te *testing.T) {
	cases := []struct {
		name  string
		v     Value
		depth int
		ln    int
		leaf  Kind
	}{
		{"float", F(1.5), 0, -1, Float},
		{"string", S("C2H6"), 0, -1, String},
		{"floats", Fs(1, 2, 3), 1, 3, Float},
		{"ints", Ints(1, 6, 8), 1, 3, Int},
		{"rows", Rows([][]float64{{0, 0, 0}, {1, 1}}), 2, 2, Float},
		{"mixed numbers", L(I(1), F(2.5)), 1, 2, Float},
		{"mixed", L(I(1), S("a")), 1, 2, Invalid},
		{"empty", L(), 1, 0, Invalid},
	}
	for _, c := range cases {
		assert.Equal(Te, c.depth, c.v.Depth(), c.name)
		assert.Equal(Te, c.ln, c.v.Len(), c.name)
		assert.Equal(Te, c.leaf, c.v.Leaf(), c.name)
	}
}

func TestValueAccessors(Te *testing.T) {
	f, ok := I(3).Number()
	assert.True(Te, ok)
	assert.Equal(Te, 3.0, f)
	i, ok := F(4).Int()
	assert.True(Te, ok)
	assert.Equal(Te, 4, i)
	_, ok = F(4.5).Int()
	assert.False(Te, ok)
	_, ok = S("x").Number()
	assert.False(Te, ok)
	fs, ok := Ints(1, 2).Floats()
	require.True(Te, ok)
	assert.Equal(Te, []float64{1, 2}, fs)
	_, ok = Strs("a").Floats()
	assert.False(Te, ok)
	assert.False(Te, Value{}.Valid())
}

func TestEqualAndClone(Te *testing.T) {
	a := Rows([][]float64{{1, 2}, {3, 4}})
	b := a.Clone()
	assert.True(Te, a.Equal(b))
	assert.True(Te, Fs(1, 2).Equal(L(F(1), I(2))))
	assert.False(Te, Fs(1, 2).Equal(Fs(1)))
	raw := []float64{1, 2}
	v := Fs(raw...)
	raw[0] = 10
	got, _ := v.Floats()
	assert.Equal(Te, 1.0, got[0])
}

func TestRecordMerge(Te *testing.T) {
	r := Record{"scf": F(-10), "charge": I(0)}
	r.Merge(Record{"scf": F(-11), "gib": F(-9)})
	assert.Equal(Te, []string{"charge", "gib", "scf"}, r.Genres())
	assert.True(Te, r["scf"].Equal(F(-11)))
	assert.True(Te, r.Has("charge", "gib"))
	assert.False(Te, r.Has("freq"))
	c := r.Clone()
	c["scf"] = F(0)
	assert.True(Te, r["scf"].Equal(F(-11)))
}
