/*
 * geometry.go, part of goconformers.
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
package arrays

import (
	"strings"

	"github.com/rmera/goconformers/atoms"
	"github.com/rmera/goconformers/errs"
	"github.com/rmera/goconformers/fields"
	"github.com/rmera/goconformers/masked"
	"github.com/rmera/goconformers/v3"
)

//AtomsGenre returns the genre holding the atoms for a geometry genre,
//i.e. last_read_atoms for last_read_geom.
func AtomsGenre(geomGenre string) string {
	return strings.Replace(geomGenre, "geom", "atoms", 1)
}

func sanitizeAtoms(v fields.Value) (fields.Value, error) {
	nums, err := atoms.Validate(v)
	if err != nil {
		return fields.Value{}, err
	}
	return fields.Ints(nums...), nil
}

//Geometry holds the cartesian coordinates, in A, of each atom of each conformer,
//shape (conformers, atoms, 3), and the atomic numbers of the atoms. If all conformers
//have the same atoms, these are stored only once.
type Geometry struct {
	floatValues
	atoms *masked.Array[int]
}

//NewGeometry builds a Geometry array. It needs the atoms genre that goes with
//the geometry genre (see AtomsGenre).
func NewGeometry(in Input) (Array, error) {
	errid := "NewGeometry"
	t, err := newTyped(in, floatContract())
	if err != nil {
		return nil, errs.Decorate(err, errid)
	}
	ag := AtomsGenre(in.Genre)
	c := Contract[int]{
		Name:         ag,
		Conv:         masked.Int,
		CheckAgainst: in.Genre,
		CheckDepth:   2,
		Sanitizer:    sanitizeAtoms,
		Collapsible:  true,
		Strict:       true,
	}
	at, err := c.Apply(in.Aux[ag], t.values.Shape(), in.AllowDataInconsistency)
	if err != nil {
		return nil, errs.Decorate(err, errid)
	}
	if at.Len() == 1 && len(in.Filenames) > 1 {
		logger.Debug("atoms collapsed to a single row", "genre", ag, "conformers", len(in.Filenames))
	}
	return &Geometry{floatValues: floatValues{t}, atoms: at}, nil
}

//Atoms returns the atomic numbers of the atoms, one row per conformer,
//or a single row if all conformers have the same atoms.
func (G *Geometry) Atoms() *masked.Array[int] { return G.atoms.Copy() }

//AtomsOf returns the atomic numbers of the atoms of the i-th conformer.
func (G *Geometry) AtomsOf(i int) []int {
	if G.atoms.Len() == 1 {
		return G.atoms.Compressed(0)
	}
	return G.atoms.Compressed(i)
}

//Coordinates returns the geometry of the i-th conformer, one row per atom.
func (G *Geometry) Coordinates(i int) [][]float64 {
	flat := G.values.Compressed(i)
	ret := make([][]float64, 0, len(flat)/3)
	for j := 0; j+3 <= len(flat); j += 3 {
		ret = append(ret, flat[j:j+3])
	}
	return ret
}

//Matrices returns the geometry of each conformer as a v3.Matrix.
func (G *Geometry) Matrices() ([]*v3.Matrix, error) {
	ret := make([]*v3.Matrix, G.Len())
	for i := range ret {
		m, err := v3.FromRows(G.Coordinates(i))
		if err != nil {
			return nil, errs.Decorate(err, "Geometry/Matrices")
		}
		ret[i] = m
	}
	return ret, nil
}
