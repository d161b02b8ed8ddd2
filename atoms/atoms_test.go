/*
 * atoms_test.go, part of goconformers.
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
package atoms

import (
	"testing"

	"github.com/rmera/goconformers/errs"
	"github.com/rmera/goconformers/fields"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSymbolNumber(Te *testing.T) {
	s, err := Symbol(6)
	require.NoError(Te, err)
	assert.Equal(Te, "C", s)
	for _, in := range []string{"cl", "CL", "Cl", " cl ", "17"} {
		n, err := Number(in)
		require.NoError(Te, err, in)
		assert.Equal(Te, 17, n, in)
	}
	_, err = Number("Xx")
	assert.ErrorIs(Te, err, errs.ErrInvalidElement)
	_, err = Symbol(200)
	assert.ErrorIs(Te, err, errs.ErrInvalidElement)
	s, _ = Symbol(118)
	assert.Equal(Te, "Og", s)
}

func TestValidate(Te *testing.T) {
	got, err := Validate(fields.L(fields.S("c"), fields.I(1), fields.F(8)))
	require.NoError(Te, err)
	assert.Equal(Te, []int{C, H, O}, got)
	got, err = Validate(fields.S("N"))
	require.NoError(Te, err)
	assert.Equal(Te, []int{N}, got)
	_, err = Validate(fields.L(fields.F(1.5)))
	assert.ErrorIs(Te, err, errs.ErrValue)
	_, err = Validate(fields.L(fields.I(0)))
	assert.ErrorIs(Te, err, errs.ErrInvalidElement)
	_, err = Validate(fields.L(fields.B(true)))
	assert.ErrorIs(Te, err, errs.ErrType)
	m, err := Mass(H)
	require.NoError(Te, err)
	assert.Equal(Te, 1.0, m)
}
