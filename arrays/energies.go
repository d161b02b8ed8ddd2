/*
 * energies.go, part of goconformers.
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
	"math"

	"github.com/rmera/goconformers/errs"
	"github.com/rmera/goconformers/masked"
	"github.com/rmera/goconformers/spectral"
)

//Energies holds one energy per conformer, in Hartree, and the temperature used
//to obtain populations from them.
type Energies struct {
	floatValues
	t float64
}

//NewEnergies builds an Energies array. Values must be scalars.
func NewEnergies(in Input) (Array, error) {
	t, err := newTyped(in, floatContract())
	if err != nil {
		return nil, errs.Decorate(err, "NewEnergies")
	}
	if t.values.Ndim() != 1 {
		return nil, errs.New(errs.ErrInconsistentData, "NewEnergies: %s must hold one value per conformer, got shape %v", in.Genre, t.values.Shape())
	}
	temp := in.Temperature
	if temp == 0 {
		temp = spectral.Temperature
	}
	if temp < 0 {
		return nil, errs.New(errs.ErrValue, "NewEnergies: temperature cannot be negative, %g given", temp)
	}
	return &Energies{floatValues: floatValues{t}, t: temp}, nil
}

//T returns the temperature, in K.
func (E *Energies) T() float64 { return E.t }

func (E *Energies) raw() []float64 { return E.values.Data() }

//AsKcalPerMol returns the energies converted to kcal/mol.
func (E *Energies) AsKcalPerMol() []float64 {
	ret := E.raw()
	for i := range ret {
		ret[i] *= spectral.H2Kcal
	}
	return ret
}

//Deltas returns the energy of each conformer relative to the lowest one, in kcal/mol.
func (E *Energies) Deltas() []float64 {
	return spectral.Deltas(E.AsKcalPerMol())
}

//MinFactors returns the Boltzmann factors of the conformers, relative to the lowest one.
func (E *Energies) MinFactors() []float64 {
	return spectral.MinFactors(E.AsKcalPerMol(), E.t)
}

//Populations returns the Boltzmann populations of the conformers at the array's temperature.
func (E *Energies) Populations() []float64 {
	return spectral.Populations(E.raw(), E.t)
}

//CalculatePopulations returns the Boltzmann populations at temperature t.
func (E *Energies) CalculatePopulations(t float64) []float64 {
	return spectral.Populations(E.raw(), t)
}

//Attribute returns "values", "as_kcal_per_mol", "deltas", "min_factors" or "populations".
func (E *Energies) Attribute(name string) (*masked.Array[float64], error) {
	switch name {
	case "", "values":
		return E.Values(), nil
	case "as_kcal_per_mol":
		return masked.Vector(E.AsKcalPerMol()), nil
	case "deltas":
		return masked.Vector(E.Deltas()), nil
	case "min_factors":
		return masked.Vector(E.MinFactors()), nil
	case "populations":
		return masked.Vector(E.Populations()), nil
	}
	return nil, errs.New(errs.ErrKey, "Energies have no %q attribute", name)
}

//Bands holds band positions: frequencies (freq, cm^-1), wavelengths (wavelen, nm)
//or excitation energies (ex_en, eV), one row per conformer.
type Bands struct {
	floatValues
}

//NewBands builds a Bands array.
func NewBands(in Input) (Array, error) {
	t, err := newTyped(in, floatContract())
	if err != nil {
		return nil, errs.Decorate(err, "NewBands")
	}
	return &Bands{floatValues{t}}, nil
}

//convertBands converts band positions, leaving filler alone.
func convertBands(A *masked.Array[float64], from, to string) (*masked.Array[float64], error) {
	data := A.Data()
	conv, err := spectral.ConvertBand(data, from, to)
	if err != nil {
		return nil, err
	}
	mask := A.Mask()
	for i := range conv {
		if (mask != nil && mask[i]) || math.IsInf(conv[i], 0) {
			conv[i] = 0
		}
	}
	return masked.New(A.Shape(), conv, mask)
}

//Freq returns the bands as frequencies, in cm^-1.
func (B *Bands) Freq() (*masked.Array[float64], error) {
	return convertBands(B.values, B.genre, "freq")
}

//Wavelen returns the bands as wavelengths, in nm.
func (B *Bands) Wavelen() (*masked.Array[float64], error) {
	return convertBands(B.values, B.genre, "wavelen")
}

//ExEn returns the bands as excitation energies, in eV.
func (B *Bands) ExEn() (*masked.Array[float64], error) {
	return convertBands(B.values, B.genre, "ex_en")
}

//Imaginary returns the number of imaginary frequencies (negative values) of each
//conformer. It is only meaningful for frequencies.
func (B *Bands) Imaginary() []int {
	ret := make([]int, B.Len())
	for i := range ret {
		ret[i] = spectral.CountImaginary1D(B.values.Compressed(i))
	}
	return ret
}

//FindImaginary returns the number of imaginary frequencies of each conformer
//that has at least one, by conformer name.
func (B *Bands) FindImaginary() map[string]int {
	ret := make(map[string]int)
	for i, n := range B.Imaginary() {
		if n > 0 {
			ret[B.filenames[i]] = n
		}
	}
	return ret
}
