/*
 * kernels.go, part of goconformers.
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
)

//FittingFunc distributes the intensity of each band over the abscissa,
//using a line shape of the given half width.
type FittingFunc func(intensities, frequencies, abscissa []float64, width float64) ([]float64, error)

func checkKernel(intensities, frequencies []float64, width float64) error {
	if width <= 0 {
		return errs.New(errs.ErrValue, "peak width must be a positive value, %g given", width)
	}
	if len(intensities) != len(frequencies) {
		return errs.New(errs.ErrValue, "intensities and frequencies must be of same shape, got %d and %d", len(intensities), len(frequencies))
	}
	return nil
}

//Gaussian fits a gaussian line shape with half width at half maximum width
//to each band, and returns the sum of them at each abscissa point.
func Gaussian(intensities, frequencies, abscissa []float64, width float64) ([]float64, error) {
	if err := checkKernel(intensities, frequencies, width); err != nil {
		return nil, errs.Decorate(err, "spectral/Gaussian")
	}
	ret := make([]float64, len(abscissa))
	sigma := width / math.Sqrt2
	denominator := sigma * math.Sqrt(2*math.Pi)
	for i, x := range abscissa {
		var s float64
		for j, in := range intensities {
			d := (x - frequencies[j]) / sigma
			s += in * math.Exp(-0.5*d*d)
		}
		ret[i] = s / denominator
	}
	return ret, nil
}

//Lorentzian fits a lorentzian line shape with half width at half maximum width
//to each band, and returns the sum of them at each abscissa point.
func Lorentzian(intensities, frequencies, abscissa []float64, width float64) ([]float64, error) {
	if err := checkKernel(intensities, frequencies, width); err != nil {
		return nil, errs.Decorate(err, "spectral/Lorentzian")
	}
	ret := make([]float64, len(abscissa))
	w2 := width * width
	woverpi := width / math.Pi
	for i, x := range abscissa {
		var s float64
		for j, in := range intensities {
			d := frequencies[j] - x
			s += in / (d*d + w2)
		}
		ret[i] = woverpi * s
	}
	return ret, nil
}

var fittings = map[string]FittingFunc{
	"gaussian":   Gaussian,
	"lorentzian": Lorentzian,
}

//Fitting returns the fitting function with the given name,
//"gaussian" or "lorentzian".
func Fitting(name string) (FittingFunc, error) {
	f, ok := fittings[name]
	if !ok {
		return nil, errs.New(errs.ErrKey, "unknown fitting function %q, use gaussian or lorentzian", name)
	}
	return f, nil
}
