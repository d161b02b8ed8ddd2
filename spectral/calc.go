/*
 * calc.go, part of goconformers.
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
package spectral

import (
	"math"

	"github.com/rmera/goconformers/errs"
	"gonum.org/v1/gonum/floats"
)

//Abscissa returns the points start, start+step, ... up to, but not including, stop.
//At least two points are required.
func Abscissa(start, stop, step float64) ([]float64, error) {
	if step == 0 || math.IsNaN(step) {
		return nil, errs.New(errs.ErrValue, "step must be a non-zero number")
	}
	n := int(math.Ceil((stop - start) / step))
	if n <= 1 {
		return nil, errs.New(errs.ErrValue, "not enough data points between start = %g and stop = %g with step = %g", start, stop, step)
	}
	ret := make([]float64, n)
	for i := range ret {
		ret[i] = start + float64(i)*step
	}
	return ret, nil
}

//CalculateSpectra applies fit to each conformer's intensities and frequencies,
//returning a spectrum per conformer, evaluated at abscissa. An empty result
//is returned if there are no intensities.
func CalculateSpectra(intensities, frequencies [][]float64, abscissa []float64, width float64, fit FittingFunc) ([][]float64, error) {
	errid := "spectral/CalculateSpectra"
	if len(intensities) != len(frequencies) {
		return nil, errs.New(errs.ErrValue, "%s: intensities and frequencies must be of same shape, got %d and %d conformers", errid, len(intensities), len(frequencies))
	}
	if len(intensities) == 0 {
		return [][]float64{}, nil
	}
	ret := make([][]float64, len(intensities))
	for i := range intensities {
		s, err := fit(intensities[i], frequencies[i], abscissa, width)
		if err != nil {
			return nil, errs.Decorate(err, errid)
		}
		ret[i] = s
	}
	return ret, nil
}

func normalized(weights []float64) []float64 {
	w := append([]float64(nil), weights...)
	sum := floats.Sum(w)
	if math.Abs(sum-1) > 1e-8+1e-5 {
		floats.Scale(1/sum, w)
	}
	return w
}

//Average returns the weighted average of the rows of values. Weights are
//normalized if they don't add up to 1. There must be exactly one weight per row.
//All the rows must have the same length. Values of more than two dimensions,
//(N, A, B...), are averaged with each row flattened in row-major order. The
//result then has the A*B... elements of one flattened row.
func Average(values [][]float64, weights []float64) ([]float64, error) {
	errid := "spectral/Average"
	if len(values) != len(weights) {
		return nil, errs.New(errs.ErrValue, "%s: exactly one population value for each conformer must be provided, got %d for %d", errid, len(weights), len(values))
	}
	if len(values) == 0 {
		return []float64{}, nil
	}
	w := normalized(weights)
	ret := make([]float64, len(values[0]))
	for i, row := range values {
		if len(row) != len(ret) {
			return nil, errs.New(errs.ErrValue, "%s: row %d has %d values, expected %d", errid, i, len(row), len(ret))
		}
		floats.AddScaled(ret, w[i], row)
	}
	return ret, nil
}

//AverageFlat returns the weighted average of values, one per conformer.
func AverageFlat(values, weights []float64) (float64, error) {
	if len(values) != len(weights) {
		return 0, errs.New(errs.ErrValue, "spectral/AverageFlat: exactly one population value for each conformer must be provided, got %d for %d", len(weights), len(values))
	}
	if len(values) == 0 {
		return 0, nil
	}
	return floats.Dot(values, normalized(weights)), nil
}

//CountImaginary returns the number of imaginary (negative) frequencies of each conformer.
func CountImaginary(frequencies [][]float64) []int {
	ret := make([]int, len(frequencies))
	for i, f := range frequencies {
		ret[i] = CountImaginary1D(f)
	}
	return ret
}

//CountImaginary1D returns the number of negative values in frequencies.
func CountImaginary1D(frequencies []float64) int {
	n := 0
	for _, v := range frequencies {
		if v < 0 {
			n++
		}
	}
	return n
}

//FindImaginary returns the indexes of the conformers with at least one
//imaginary frequency.
func FindImaginary(frequencies [][]float64) []int {
	ret := []int{}
	for i, n := range CountImaginary(frequencies) {
		if n > 0 {
			ret = append(ret, i)
		}
	}
	return ret
}
