/*
 * spectra.go, part of goconformers.
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
	"github.com/rmera/goconformers/errs"
)

//Parameters describe how a spectrum is calculated. For vibrational and scattering
//spectra all values are in cm^-1, for electronic spectra the width is in eV and
//start, stop and step are in nm.
type Parameters struct {
	Width   float64 `toml:"width"`
	Start   float64 `toml:"start"`
	Stop    float64 `toml:"stop"`
	Step    float64 `toml:"step"`
	Fitting string  `toml:"fitting"`
}

//Validate checks that the parameters can produce a spectrum.
func (P Parameters) Validate() error {
	if P.Width <= 0 {
		return errs.New(errs.ErrValue, "width must be a positive value, %g given", P.Width)
	}
	if _, err := Fitting(P.Fitting); err != nil {
		return err
	}
	_, err := Abscissa(P.Start, P.Stop, P.Step)
	return err
}

//StandardParameters returns the default parameters for each kind of spectra.
func StandardParameters() map[string]Parameters {
	vib := Parameters{Width: 6, Start: 800, Stop: 2900, Step: 2, Fitting: "lorentzian"}
	el := Parameters{Width: 0.35, Start: 150, Stop: 800, Step: 1, Fitting: "gaussian"}
	return map[string]Parameters{
		"ir":    vib,
		"vcd":   vib,
		"raman": vib,
		"roa":   vib,
		"uv":    el,
		"ecd":   el,
	}
}

//Units of the values of a spectrum, by spectra name.
var Units = map[string]map[string]string{
	"ir":    {"y": "Epsilon"},
	"uv":    {"y": "Epsilon"},
	"vcd":   {"y": "Delta Epsilon"},
	"ecd":   {"y": "Delta Epsilon"},
	"raman": {"y": "I(R)+I(L)"},
	"roa":   {"y": "I(R)-I(L)"},
}

func init() {
	vib := map[string]string{"width": "cm-1", "start": "cm-1", "stop": "cm-1", "step": "cm-1", "x": "Frequency / cm^(-1)"}
	el := map[string]string{"width": "eV", "start": "nm", "stop": "nm", "step": "nm", "x": "Wavelength / nm"}
	for name, u := range Units {
		src := vib
		if SpectraType(name) == "electronic" {
			src = el
		}
		for k, v := range src {
			u[k] = v
		}
	}
}

//SingleSpectrum is one spectrum, usually the average of the spectra of several conformers.
type SingleSpectrum struct {
	Genre      string
	Values     []float64
	Abscissa   []float64
	Width      float64
	Fitting    string
	Scaling    float64
	Offset     float64
	Filenames  []string
	AveragedBy string
}

//X returns the abscissa, shifted by the offset.
func (S *SingleSpectrum) X() []float64 {
	ret := make([]float64, len(S.Abscissa))
	for i, v := range S.Abscissa {
		ret[i] = v + S.Offset
	}
	return ret
}

//Y returns the values, multiplied by the scaling factor.
func (S *SingleSpectrum) Y() []float64 {
	ret := make([]float64, len(S.Values))
	for i, v := range S.Values {
		ret[i] = v * S.Scaling
	}
	return ret
}

//SpectraType returns "vibrational", "scattering" or "electronic".
func (S *SingleSpectrum) SpectraType() string { return SpectraType(S.Genre) }

//ScaleTo sets the scaling factor of S so it best matches ref.
func (S *SingleSpectrum) ScaleTo(ref *SingleSpectrum) {
	S.Scaling = FindScaling(ref.Y(), S.Values)
}

//ShiftTo sets the offset of S so it best matches ref.
func (S *SingleSpectrum) ShiftTo(ref *SingleSpectrum) error {
	off, err := FindOffset(ref.X(), ref.Y(), S.Abscissa, S.Values, true)
	if err != nil {
		return errs.Decorate(err, "SingleSpectrum/ShiftTo")
	}
	S.Offset = off
	return nil
}

//Spectra holds the spectra of several conformers, all on the same abscissa.
type Spectra struct {
	SingleSpectrum
	Rows [][]float64 //one spectrum per conformer
}

//NewSpectra returns a Spectra with one row of values per filename.
func NewSpectra(genre string, filenames []string, values [][]float64, abscissa []float64, width float64, fitting string) (*Spectra, error) {
	if len(values) != len(filenames) {
		return nil, errs.New(errs.ErrInconsistentData, "NewSpectra: %d spectra for %d conformers", len(values), len(filenames))
	}
	for i, v := range values {
		if len(v) != len(abscissa) {
			return nil, errs.New(errs.ErrInconsistentData, "NewSpectra: spectrum of %s has %d points, abscissa has %d", filenames[i], len(v), len(abscissa))
		}
	}
	return &Spectra{
		SingleSpectrum: SingleSpectrum{
			Genre:     genre,
			Abscissa:  abscissa,
			Width:     width,
			Fitting:   fitting,
			Scaling:   1,
			Filenames: filenames,
		},
		Rows: values,
	}, nil
}

//Len returns the number of conformers.
func (S *Spectra) Len() int { return len(S.Filenames) }

//Y returns the values of each conformer, multiplied by the scaling factor.
func (S *Spectra) Y() [][]float64 {
	ret := make([][]float64, len(S.Rows))
	for i, r := range S.Rows {
		ret[i] = make([]float64, len(r))
		for j, v := range r {
			ret[i][j] = v * S.Scaling
		}
	}
	return ret
}

//Average returns the spectra averaged with the given populations. energiesGenre is
//recorded as the origin of the populations.
func (S *Spectra) Average(populations []float64, energiesGenre string) (*SingleSpectrum, error) {
	av, err := Average(S.Rows, populations)
	if err != nil {
		return nil, errs.Decorate(err, "Spectra/Average")
	}
	if len(av) == 0 {
		av = make([]float64, len(S.Abscissa))
	}
	logger.Debug("spectrum averaged", "genre", S.Genre, "by", energiesGenre)
	return &SingleSpectrum{
		Genre:      S.Genre,
		Values:     av,
		Abscissa:   S.Abscissa,
		Width:      S.Width,
		Fitting:    S.Fitting,
		Scaling:    S.Scaling,
		Offset:     S.Offset,
		Filenames:  S.Filenames,
		AveragedBy: energiesGenre,
	}, nil
}

func (S *Spectra) mean() []float64 {
	w := make([]float64, len(S.Rows))
	for i := range w {
		w[i] = 1
	}
	av, _ := Average(S.Rows, w)
	if len(av) == 0 {
		av = make([]float64, len(S.Abscissa))
	}
	return av
}

//ScaleTo sets the scaling factor of the spectra so their average, weighted by
//populations, best matches ref. With nil populations a plain mean is used.
func (S *Spectra) ScaleTo(ref *SingleSpectrum, populations []float64) error {
	av := S.mean()
	if populations != nil {
		a, err := S.Average(populations, "")
		if err != nil {
			return errs.Decorate(err, "Spectra/ScaleTo")
		}
		av = a.Values
	} else {
		logger.Warn("finding scaling factor with no populations given, results may be inaccurate", "genre", S.Genre)
	}
	S.Scaling = FindScaling(ref.Y(), av)
	return nil
}

//ShiftTo sets the offset of the spectra so their average, weighted by populations,
//best matches ref. With nil populations a plain mean is used.
func (S *Spectra) ShiftTo(ref *SingleSpectrum, populations []float64) error {
	av := S.mean()
	if populations != nil {
		a, err := S.Average(populations, "")
		if err != nil {
			return errs.Decorate(err, "Spectra/ShiftTo")
		}
		av = a.Values
	} else {
		logger.Warn("finding offset with no populations given, results may be inaccurate", "genre", S.Genre)
	}
	off, err := FindOffset(ref.X(), ref.Y(), S.Abscissa, av, true)
	if err != nil {
		return errs.Decorate(err, "Spectra/ShiftTo")
	}
	S.Offset = off
	return nil
}
