/*
 * sieve.go, part of goconformers.
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
	"github.com/rmera/goconformers/errs"
	"github.com/rmera/goconformers/v3"
)

//RMSDSieve compares the geometries of conformers, and marks as duplicates
//those that are closer than threshold (in RMSD) to another conformer.
//In each window, the first conformer not yet discarded is the reference,
//and every other conformer in the window that is not different enough from it
//is discarded. The returned slice holds true for each conformer that is kept.
//All conformers must have the same atoms in the same order.
func RMSDSieve(geoms []*v3.Matrix, windows [][]int, threshold float64) ([]bool, error) {
	errid := "geometry/RMSDSieve"
	blade := make([]bool, len(geoms))
	centered := make([]*v3.Matrix, len(geoms))
	for i, g := range geoms {
		blade[i] = true
		centered[i] = v3.Center(g)
	}
	for _, window := range windows {
		reduced := make([]int, 0, len(window))
		for _, idx := range window {
			if idx < 0 || idx >= len(geoms) {
				return nil, errs.New(errs.ErrIndex, "%s: window index %d for %d conformers", errid, idx, len(geoms))
			}
			if blade[idx] {
				reduced = append(reduced, idx)
			}
		}
		if len(reduced) <= 1 {
			continue
		}
		head := centered[reduced[0]]
		for _, idx := range reduced[1:] {
			rotated, err := v3.Kabsch(centered[idx], head)
			if err != nil {
				return nil, errs.Decorate(err, errid)
			}
			rmsd, err := v3.RMSD(rotated, head)
			if err != nil {
				return nil, errs.Decorate(err, errid)
			}
			blade[idx] = rmsd > threshold
		}
	}
	return blade, nil
}

//DropAtoms returns the vectors of geom that belong to atoms other than the element drop.
func DropAtoms(geom *v3.Matrix, atoms []int, drop int) (*v3.Matrix, error) {
	return selectAtoms(geom, atoms, func(a int) bool { return a != drop })
}

//TakeAtoms returns the vectors of geom that belong to atoms of the element wanted.
func TakeAtoms(geom *v3.Matrix, atoms []int, wanted int) (*v3.Matrix, error) {
	return selectAtoms(geom, atoms, func(a int) bool { return a == wanted })
}

func selectAtoms(geom *v3.Matrix, atoms []int, keep func(int) bool) (*v3.Matrix, error) {
	if geom.NVecs() != len(atoms) {
		return nil, errs.New(errs.ErrLength, "geometry: %d coordinates rows for %d atoms", geom.NVecs(), len(atoms))
	}
	clist := make([]int, 0, len(atoms))
	for i, a := range atoms {
		if keep(a) {
			clist = append(clist, i)
		}
	}
	if len(clist) == 0 {
		return nil, errs.New(errs.ErrLength, "geometry: no atoms left out of %d", len(atoms))
	}
	ret := v3.Zeros(len(clist))
	ret.SomeVecs(geom, clist)
	return ret, nil
}
