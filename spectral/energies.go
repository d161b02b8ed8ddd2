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
//Package spectral calculates spectra from the spectral activities of conformers,
//and averages them using the Boltzmann populations of the conformers.
//All the functions here are pure: they only depend on their arguments.
package spectral

import (
	"log/slog"
	"math"

	"gonum.org/v1/gonum/floats"
)

var logger = slog.Default()

//SetLogger sets the logger used by the package.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.Default()
	}
	logger = l
}

//Deltas returns the difference between each energy and the lowest one.
//An empty slice is returned for empty input.
func Deltas(energies []float64) []float64 {
	if len(energies) == 0 {
		return []float64{}
	}
	ret := make([]float64, len(energies))
	copy(ret, energies)
	floats.AddConst(-floats.Min(energies), ret)
	return ret
}

//MinFactors returns the Boltzmann factor of each conformer with respect to
//the lowest energy conformer, at temperature t (K). energies are in kcal/mol.
func MinFactors(energies []float64, t float64) []float64 {
	ret := Deltas(energies)
	kt := t * Boltzmann
	for i, d := range ret {
		ret[i] = math.Exp(-d / kt)
	}
	return ret
}

//KcalPopulations returns the Boltzmann distribution of conformers with
//the given energies (kcal/mol) at temperature t (K).
func KcalPopulations(energies []float64, t float64) []float64 {
	ret := MinFactors(energies, t)
	if len(ret) == 0 {
		return ret
	}
	floats.Scale(1/floats.Sum(ret), ret)
	return ret
}

//Populations returns the Boltzmann distribution of conformers with
//the given energies (Hartree) at temperature t (K).
func Populations(energies []float64, t float64) []float64 {
	kcal := make([]float64, len(energies))
	floats.ScaleTo(kcal, H2Kcal, energies)
	return KcalPopulations(kcal, t)
}
