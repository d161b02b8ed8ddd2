/*
 * atomicdata.go, part of goconformers.
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

//Package atoms converts between the symbols and the atomic numbers
//of chemical elements, and holds some atomic data.
package atoms

import (
	"strconv"
	"strings"

	"github.com/rmera/goconformers/errs"
	"github.com/rmera/goconformers/fields"
)

const table = "H He Li Be B C N O F Ne Na Mg Al Si P S Cl Ar K Ca Sc Ti V Cr Mn Fe Co Ni Cu " +
	"Zn Ga Ge As Se Br Kr Rb Sr Y Zr Nb Mo Tc Ru Rh Pd Ag Cd In Sn Sb Te I Xe Cs Ba " +
	"La Ce Pr Nd Pm Sm Eu Gd Tb Dy Ho Er Tm Yb Lu Hf Ta W Re Os Ir Pt Au Hg Tl Pb " +
	"Bi Po At Rn Fr Ra Ac Th Pa U Np Pu Am Cm Bk Cf Es Fm Md No Lr Rf Db Sg Bh Hs Mt " +
	"Ds Rg Cn Nh Fl Mc Lv Ts Og"

var (
	symbols = strings.Fields(table)
	numbers = func() map[string]int {
		m := make(map[string]int, len(symbols))
		for i, s := range symbols {
			m[s] = i + 1
		}
		return m
	}()
)

//Atomic numbers of some common elements.
const (
	H = 1
	C = 6
	N = 7
	O = 8
)

//A map for assigning mass to elements.
//Note that just common "bio-elements" are present
var symbolMass = map[string]float64{
	"H":  1.0,
	"C":  12.01,
	"O":  16.00,
	"N":  14.01,
	"P":  30.97,
	"S":  32.06,
	"Se": 78.96,
	"K":  39.1,
	"Ca": 40.08,
	"Mg": 24.30,
	"Cl": 35.45,
	"Na": 22.99,
	"Cu": 63.55,
	"Zn": 65.38,
	"Co": 58.93,
	"Fe": 55.84,
	"Mn": 54.94,
	"Cr": 51.996,
	"Si": 28.08,
	"Be": 9.012,
	"F":  18.998,
	"Br": 79.904,
	"I":  126.90,
}

func capitalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

//Symbol returns the symbol of the element with atomic number n.
func Symbol(n int) (string, error) {
	if n < 1 || n > len(symbols) {
		return "", errs.New(errs.ErrInvalidElement, "unknown element: %d", n)
	}
	return symbols[n-1], nil
}

//Number returns the atomic number of the element with the given symbol.
//The case of the letters doesn't matter, and strings with an atomic
//number are also accepted.
func Number(symbol string) (int, error) {
	if n, ok := numbers[capitalize(symbol)]; ok {
		return n, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(symbol))
	if err != nil {
		return 0, errs.New(errs.ErrInvalidElement, "unknown element: %q", symbol)
	}
	if _, err := Symbol(n); err != nil {
		return 0, err
	}
	return n, nil
}

//Mass returns the atomic mass of the element with atomic number n.
//Only common elements are available.
func Mass(n int) (float64, error) {
	s, err := Symbol(n)
	if err != nil {
		return 0, err
	}
	m, ok := symbolMass[s]
	if !ok {
		return 0, errs.New(errs.ErrInvalidElement, "no mass available for %s", s)
	}
	return m, nil
}

//Validate turns a field holding a list of atoms (symbols or atomic numbers,
//or a single one of them) into a slice of atomic numbers.
func Validate(v fields.Value) ([]int, error) {
	elems := v.Elems()
	if !v.IsSeq() {
		elems = []fields.Value{v}
	}
	ret := make([]int, len(elems))
	for i, e := range elems {
		var err error
		switch e.Kind() {
		case fields.Int, fields.Float:
			n, ok := e.Int()
			if !ok {
				return nil, errs.New(errs.ErrValue, "atomic number should be a whole number, %v given", e)
			}
			_, err = Symbol(n)
			ret[i] = n
		case fields.String:
			s, _ := e.Str()
			ret[i], err = Number(s)
		default:
			return nil, errs.New(errs.ErrType, "expected a symbol or an atomic number, got %s", e.Kind())
		}
		if err != nil {
			return nil, errs.Decorate(err, "atoms/Validate")
		}
	}
	return ret, nil
}
