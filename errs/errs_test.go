/*
 * errs_test.go, part of goconformers.
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
package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecorate(Te *testing.T) {
	err := New(ErrLength, "expected %d values, got %d", 3, 2)
	assert.True(Te, err.Critical())
	wrapped := Decorate(Decorate(err, "Conformers/SetKept"), "Caller")
	assert.ErrorIs(Te, wrapped, ErrLength)
	assert.Equal(Te, "Caller: Conformers/SetKept: wrong length: expected 3 values, got 2", wrapped.Error())
	fmt.Println(wrapped)
}

func TestDecorateForeign(Te *testing.T) {
	base := errors.New("boom")
	err := Decorate(base, "Somewhere")
	assert.ErrorIs(Te, err, base)
	assert.Nil(Te, Decorate(nil, "x"))
	assert.False(Te, Notice(ErrValue, "meh").Critical())
	assert.True(Te, Is(fmt.Errorf("ctx: %w", New(ErrKey, "k")), ErrKey))
}
