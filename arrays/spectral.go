/*
 * spectral.go, part of goconformers.
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
	"github.com/rmera/goconformers/errs"
	"github.com/rmera/goconformers/masked"
	"github.com/rmera/goconformers/spectral"
)

//bandData is a float array with a companion array of band positions of the same shape.
type bandData struct {
	floatValues
	bandGenre string
	bands     *masked.Array[float64]
}

func newBandData(in Input, bandGenre string) (bandData, error) {
	t, err := newTyped(in, floatContract())
	if err != nil {
		return bandData{}, err
	}
	c := Contract[float64]{
		Name:         bandGenre,
		Conv:         masked.Float,
		CheckAgainst: in.Genre,
		CheckDepth:   2,
	}
	bands, err := c.Apply(in.Aux[bandGenre], t.values.Shape(), in.AllowDataInconsistency)
	if err != nil {
		return bandData{}, err
	}
	return bandData{floatValues: floatValues{t}, bandGenre: bandGenre, bands: bands}, nil
}

//VibrationalData holds per-mode values of vibrational calculations and the
//frequencies of the modes.
type VibrationalData struct {
	bandData
}

//NewVibrationalData builds a VibrationalData array. It needs the freq genre.
func NewVibrationalData(in Input) (Array, error) {
	b, err := newBandData(in, "freq")
	if err != nil {
		return nil, errs.Decorate(err, "NewVibrationalData")
	}
	return &VibrationalData{b}, nil
}

//Freq returns the frequencies, in cm^-1, of each mode.
func (V *VibrationalData) Freq() *masked.Array[float64] { return V.bands.Copy() }

//ScatteringData holds per-mode values of scattering calculations, the frequencies of
//the modes, the temperature and the wavelength of the incident light.
type ScatteringData struct {
	bandData
	t     float64
	laser float64
}

//NewScatteringData builds a ScatteringData array. It needs the freq genre.
func NewScatteringData(in Input) (Array, error) {
	b, err := newBandData(in, "freq")
	if err != nil {
		return nil, errs.Decorate(err, "NewScatteringData")
	}
	t, laser := in.Temperature, in.Laser
	if t == 0 {
		t = spectral.Temperature
	}
	if laser == 0 {
		laser = spectral.Laser
	}
	return &ScatteringData{bandData: b, t: t, laser: laser}, nil
}

//Freq returns the frequencies, in cm^-1, of each mode.
func (S *ScatteringData) Freq() *masked.Array[float64] { return S.bands.Copy() }

//T returns the temperature, in K.
func (S *ScatteringData) T() float64 { return S.t }

//Laser returns the wavelength of the incident light, in nm.
func (S *ScatteringData) Laser() float64 { return S.laser }

//ElectronicData holds per-transition values of excited states calculations and the
//wavelengths of the transitions.
type ElectronicData struct {
	bandData
}

//NewElectronicData builds an ElectronicData array. It needs the wavelen genre.
func NewElectronicData(in Input) (Array, error) {
	b, err := newBandData(in, "wavelen")
	if err != nil {
		return nil, errs.Decorate(err, "NewElectronicData")
	}
	return &ElectronicData{b}, nil
}

//Wavelen returns the wavelengths, in nm, of each transition.
func (E *ElectronicData) Wavelen() *masked.Array[float64] { return E.bands.Copy() }

//Freq returns the wavelengths of the transitions converted to cm^-1.
func (E *ElectronicData) Freq() *masked.Array[float64] {
	f, err := convertBands(E.bands, "wavelen", "freq")
	if err != nil {
		panic(err.Error()) //wavelen to freq is always supported
	}
	return f
}

//intensities converts the activities of each conformer with the converter for genre.
func intensities(genre string, values, bands *masked.Array[float64]) ([][]float64, error) {
	conv, err := spectral.Intensities(genre)
	if err != nil {
		return nil, err
	}
	if values.Len() == 0 {
		return [][]float64{}, nil
	}
	v, b := values.Rows(), bands.Rows()
	ret := make([][]float64, len(v))
	for i := range v {
		ret[i] = conv(v[i], b[i])
	}
	return ret, nil
}

func spectraName(genre string) (string, error) {
	name := spectral.SpectraName(genre)
	if name == "" {
		return "", errs.New(errs.ErrUnknownGenre, "genre %s is not a spectral activity", genre)
	}
	return name, nil
}

//calculate builds the spectra of the given activities. frequencies and width must
//be in cm^-1, abscissa can be in any unit, as long as xfreq is the same abscissa in cm^-1.
func calculate(genre string, filenames []string, ints, frequencies [][]float64, abscissa, xfreq []float64, width float64, p spectral.Parameters) (*spectral.Spectra, error) {
	name, err := spectraName(genre)
	if err != nil {
		return nil, err
	}
	fit, err := spectral.Fitting(p.Fitting)
	if err != nil {
		return nil, err
	}
	values, err := spectral.CalculateSpectra(ints, frequencies, xfreq, width, fit)
	if err != nil {
		return nil, err
	}
	logger.Debug("spectra calculated", "genre", genre, "spectra", name, "conformers", len(filenames), "points", len(abscissa))
	return spectral.NewSpectra(name, filenames, values, abscissa, p.Width, p.Fitting)
}

//VibrationalActivities holds the activities from which IR and VCD spectra are calculated.
type VibrationalActivities struct {
	VibrationalData
}

//NewVibrationalActivities builds a VibrationalActivities array. It needs the freq genre.
func NewVibrationalActivities(in Input) (Array, error) {
	b, err := newBandData(in, "freq")
	if err != nil {
		return nil, errs.Decorate(err, "NewVibrationalActivities")
	}
	return &VibrationalActivities{VibrationalData{b}}, nil
}

//Intensities returns the signal intensities of each mode of each conformer.
func (V *VibrationalActivities) Intensities() ([][]float64, error) {
	return intensities(V.genre, V.values, V.bands)
}

//SpectraName returns the name of the spectra calculated from the activities.
func (V *VibrationalActivities) SpectraName() string { return spectral.SpectraName(V.genre) }

//SpectraType returns "vibrational".
func (V *VibrationalActivities) SpectraType() string { return "vibrational" }

//CalculateSpectra returns the spectrum of each conformer. All parameters are in cm^-1.
func (V *VibrationalActivities) CalculateSpectra(p spectral.Parameters) (*spectral.Spectra, error) {
	errid := "VibrationalActivities/CalculateSpectra"
	x, err := spectral.Abscissa(p.Start, p.Stop, p.Step)
	if err != nil {
		return nil, errs.Decorate(err, errid)
	}
	ints, err := V.Intensities()
	if err != nil {
		return nil, errs.Decorate(err, errid)
	}
	ret, err := calculate(V.genre, V.filenames, ints, V.bands.Rows(), x, x, p.Width, p)
	if err != nil {
		return nil, errs.Decorate(err, errid)
	}
	return ret, nil
}

//ScatteringActivities holds the activities from which Raman and ROA spectra are calculated.
type ScatteringActivities struct {
	ScatteringData
}

//NewScatteringActivities builds a ScatteringActivities array. It needs the freq genre.
func NewScatteringActivities(in Input) (Array, error) {
	s, err := NewScatteringData(in)
	if err != nil {
		return nil, errs.Decorate(err, "NewScatteringActivities")
	}
	return &ScatteringActivities{*s.(*ScatteringData)}, nil
}

//Intensities returns the signal intensities of each mode of each conformer.
func (S *ScatteringActivities) Intensities() ([][]float64, error) {
	return intensities(S.genre, S.values, S.bands)
}

//SpectraName returns the name of the spectra calculated from the activities.
func (S *ScatteringActivities) SpectraName() string { return spectral.SpectraName(S.genre) }

//SpectraType returns "scattering".
func (S *ScatteringActivities) SpectraType() string { return "scattering" }

//CalculateSpectra returns the spectrum of each conformer. All parameters are in cm^-1.
func (S *ScatteringActivities) CalculateSpectra(p spectral.Parameters) (*spectral.Spectra, error) {
	errid := "ScatteringActivities/CalculateSpectra"
	x, err := spectral.Abscissa(p.Start, p.Stop, p.Step)
	if err != nil {
		return nil, errs.Decorate(err, errid)
	}
	ints, err := S.Intensities()
	if err != nil {
		return nil, errs.Decorate(err, errid)
	}
	ret, err := calculate(S.genre, S.filenames, ints, S.bands.Rows(), x, x, p.Width, p)
	if err != nil {
		return nil, errs.Decorate(err, errid)
	}
	return ret, nil
}

//ElectronicActivities holds the activities from which UV and ECD spectra are calculated.
type ElectronicActivities struct {
	ElectronicData
}

//NewElectronicActivities builds an ElectronicActivities array. It needs the wavelen genre.
func NewElectronicActivities(in Input) (Array, error) {
	b, err := newBandData(in, "wavelen")
	if err != nil {
		return nil, errs.Decorate(err, "NewElectronicActivities")
	}
	return &ElectronicActivities{ElectronicData{b}}, nil
}

//Intensities returns the signal intensities of each transition of each conformer.
func (E *ElectronicActivities) Intensities() ([][]float64, error) {
	return intensities(E.genre, E.values, E.bands)
}

//SpectraName returns the name of the spectra calculated from the activities.
func (E *ElectronicActivities) SpectraName() string { return spectral.SpectraName(E.genre) }

//SpectraType returns "electronic".
func (E *ElectronicActivities) SpectraType() string { return "electronic" }

//CalculateSpectra returns the spectrum of each conformer. The width is in eV,
//start, stop and step are in nm. The spectra are fitted in cm^-1, but their
//abscissa is given in nm.
func (E *ElectronicActivities) CalculateSpectra(p spectral.Parameters) (*spectral.Spectra, error) {
	errid := "ElectronicActivities/CalculateSpectra"
	x, err := spectral.Abscissa(p.Start, p.Stop, p.Step)
	if err != nil {
		return nil, errs.Decorate(err, errid)
	}
	for _, v := range x {
		if v <= 0 {
			return nil, errs.New(errs.ErrValue, "%s: wavelengths must be positive, abscissa starts at %g", errid, p.Start)
		}
	}
	xfreq, err := spectral.ConvertBand(x, "wavelen", "freq")
	if err != nil {
		return nil, errs.Decorate(err, errid)
	}
	width, err := spectral.ConvertBand([]float64{p.Width}, "ex_en", "freq")
	if err != nil {
		return nil, errs.Decorate(err, errid)
	}
	ints, err := E.Intensities()
	if err != nil {
		return nil, errs.Decorate(err, errid)
	}
	ret, err := calculate(E.genre, E.filenames, ints, E.Freq().Rows(), x, xfreq, width[0], p)
	if err != nil {
		return nil, errs.Decorate(err, errid)
	}
	return ret, nil
}
