/*
 * rmsd.go, part of goconformers.
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
package conformers

import (
	"slices"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/rmera/goconformers/arrays"
	"github.com/rmera/goconformers/atoms"
	"github.com/rmera/goconformers/errs"
	"github.com/rmera/goconformers/geometry"
	"github.com/rmera/goconformers/v3"
)

//RMSDOptions modifies the behavior of TrimRMSD.
type RMSDOptions struct {
	GeometryGenre  string            //"last_read_geom" if empty
	EnergyGenre    string            //"scf" if empty
	IgnoreHydrogen bool              //drop hydrogen atoms before comparing
	Strategy       geometry.Strategy //geometry.Stretching if nil
}

//DefaultRMSDOptions returns the options TrimRMSD is usually called with.
func DefaultRMSDOptions() RMSDOptions {
	return RMSDOptions{GeometryGenre: "last_read_geom", EnergyGenre: "scf", IgnoreHydrogen: true, Strategy: geometry.Stretching}
}

//TrimRMSD marks as not kept the conformers that are identical to another,
//lower energy, conformer. Two conformers are identical if the RMSD between
//their geometries, after superposition, is not larger than threshold.
//Conformers are only compared inside windows given by the strategy, which
//receives the energies in kcal/mol and windowSize. With the default strategy,
//conformers with an energy difference larger than windowSize are always different.
//The energy and geometry genres must be present for the same conformers.
func (C *Conformers) TrimRMSD(threshold, windowSize float64, opts RMSDOptions) error {
	errid := "Conformers/TrimRMSD"
	if opts.GeometryGenre == "" {
		opts.GeometryGenre = "last_read_geom"
	}
	if opts.EnergyGenre == "" {
		opts.EnergyGenre = "scf"
	}
	if opts.Strategy == nil {
		opts.Strategy = geometry.Stretching
	}
	earr, err := C.Arrayed(opts.EnergyGenre)
	if err != nil {
		return errs.Decorate(err, errid)
	}
	garr, err := C.Arrayed(opts.GeometryGenre)
	if err != nil {
		return errs.Decorate(err, errid)
	}
	energy, ok := earr.(*arrays.Energies)
	if !ok {
		return errs.New(errs.ErrType, "%s: %s is not an energy genre", errid, opts.EnergyGenre)
	}
	geom, ok := garr.(*arrays.Geometry)
	if !ok {
		return errs.New(errs.ErrType, "%s: %s is not a geometry genre", errid, opts.GeometryGenre)
	}
	if !slices.Equal(energy.Filenames(), geom.Filenames()) {
		return errs.New(errs.ErrInconsistentData, "%s: different conformers in %s (%d) and %s (%d) genres. Trim incomplete entries first", errid, opts.EnergyGenre, energy.Len(), opts.GeometryGenre, geom.Len())
	}
	if geom.Len() == 0 {
		return nil
	}
	if opts.IgnoreHydrogen && geom.Atoms().Len() > 1 {
		return errs.New(errs.ErrValue, "%s: can't ignore hydrogen atoms if the conformers don't have the same atoms in the same order", errid)
	}
	mats := make([]*v3.Matrix, geom.Len())
	for i := range mats {
		if mats[i], err = v3.FromRows(geom.Coordinates(i)); err != nil {
			return errs.Decorate(err, errid)
		}
		if opts.IgnoreHydrogen {
			if mats[i], err = geometry.DropAtoms(mats[i], geom.AtomsOf(i), atoms.H); err != nil {
				return errs.Decorate(err, errid)
			}
		}
	}
	windows, err := opts.Strategy(energy.AsKcalPerMol(), windowSize)
	if err != nil {
		return errs.Decorate(err, errid)
	}
	wanted, err := geometry.RMSDSieve(mats, windows, threshold)
	if err != nil {
		return errs.Decorate(err, errid)
	}
	blade := roaring.New()
	for i, n := range geom.Filenames() {
		if wanted[i] {
			blade.Add(uint32(C.indices[n]))
		}
	}
	before := C.kept.GetCardinality()
	C.kept.And(blade)
	logger.Debug("conformers trimmed", "trim", "rmsd", "threshold", threshold, "dropped", before-C.kept.GetCardinality())
	return nil
}
