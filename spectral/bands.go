/*
 * bands.go, part of goconformers.
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

type bandConverter func(float64) float64

var bandConverters = map[string]map[string]bandConverter{
	"freq": {
		"wavelen": func(v float64) float64 { return NmWn / v },
		"ex_en":   func(v float64) float64 { return v / EV2Wn },
	},
	"wavelen": {
		"freq":  func(v float64) float64 { return NmWn / v },
		"ex_en": func(v float64) float64 { return EVNm / v },
	},
	"ex_en": {
		"freq":    func(v float64) float64 { return v * EV2Wn },
		"wavelen": func(v float64) float64 { return EVNm / v },
	},
}

//ConvertBand converts band positions between frequencies (freq, cm^-1),
//wavelengths (wavelen, nm) and excitation energies (ex_en, eV).
//A new slice is always returned.
func ConvertBand(values []float64, from, to string) ([]float64, error) {
	ret := append([]float64(nil), values...)
	if from == to {
		return ret, nil
	}
	conv, ok := bandConverters[from][to]
	if !ok {
		return nil, errs.New(errs.ErrValue, "unsupported conversion: from %q to %q, genres available for conversion are freq, wavelen and ex_en", from, to)
	}
	for i, v := range ret {
		ret[i] = conv(v)
	}
	return ret, nil
}

//IntensityConverter turns the spectral activities of one conformer into signal
//intensities. bands holds frequencies (cm^-1) for vibrational and scattering
//genres, and wavelengths (nm) for electronic ones.
type IntensityConverter func(values, bands []float64) []float64

func scaledBy(factor float64) IntensityConverter {
	return func(values, bands []float64) []float64 {
		ret := make([]float64, len(values))
		for i, v := range values {
			ret[i] = v * bands[i] * factor
		}
		return ret
	}
}

//DipToIR converts dipole strengths to IR intensities.
var DipToIR = scaledBy(dipFactor)

//RotToVCD converts rotatory strengths to VCD intensities.
var RotToVCD = scaledBy(rotFactor)

//RotToECD converts rotatory strengths to ECD intensities.
var RotToECD = scaledBy(rotFactor)

//DipToUV converts dipole strengths to UV intensities.
var DipToUV = scaledBy(dipFactor)

//OscToUV converts oscillator strengths to UV intensities. Bands are ignored.
func OscToUV(values, _ []float64) []float64 {
	ret := make([]float64, len(values))
	for i, v := range values {
		ret[i] = v * oscFactor
	}
	return ret
}

//AsIs returns a copy of the values. Used for genres that are already intensities.
func AsIs(values, _ []float64) []float64 {
	return append([]float64(nil), values...)
}

var intensityConverters = map[string]IntensityConverter{
	"dip":        DipToIR,
	"rot":        RotToVCD,
	"iri":        AsIs,
	"ramanactiv": AsIs,
	"ramact":     AsIs,
	"raman1":     AsIs,
	"raman2":     AsIs,
	"raman3":     AsIs,
	"roa1":       AsIs,
	"roa2":       AsIs,
	"roa3":       AsIs,
	"vosc":       OscToUV,
	"losc":       OscToUV,
	"vrot":       RotToECD,
	"lrot":       RotToECD,
	"vdip":       DipToUV,
	"ldip":       DipToUV,
}

//Intensities returns the converter for the given activity genre.
func Intensities(genre string) (IntensityConverter, error) {
	c, ok := intensityConverters[genre]
	if !ok {
		return nil, errs.New(errs.ErrUnknownGenre, "genre %s does not provide conversion to intensities", genre)
	}
	return c, nil
}

var spectraNames = map[string]string{
	"rot":        "vcd",
	"dip":        "ir",
	"iri":        "ir",
	"ramact":     "raman",
	"ramanactiv": "raman",
	"raman1":     "raman",
	"raman2":     "raman",
	"raman3":     "raman",
	"roa1":       "roa",
	"roa2":       "roa",
	"roa3":       "roa",
	"vrot":       "ecd",
	"lrot":       "ecd",
	"vosc":       "uv",
	"losc":       "uv",
	"vdip":       "uv",
	"ldip":       "uv",
}

//SpectraName returns the name of the spectra ("ir", "vcd", "uv", "ecd",
//"raman" or "roa") calculated from the given activity genre, or an empty
//string if the genre is not a spectral activity.
func SpectraName(genre string) string {
	return spectraNames[genre]
}

var spectraTypes = map[string]string{
	"ir":    "vibrational",
	"vcd":   "vibrational",
	"raman": "scattering",
	"roa":   "scattering",
	"uv":    "electronic",
	"ecd":   "electronic",
}

//SpectraType returns "vibrational", "scattering" or "electronic" for a spectra name.
func SpectraType(name string) string {
	return spectraTypes[name]
}

//DefaultActivities maps each spectra name to the activity genre used by default to calculate it.
var DefaultActivities = map[string]string{
	"ir":    "dip",
	"vcd":   "rot",
	"uv":    "vosc",
	"ecd":   "vrot",
	"raman": "raman1",
	"roa":   "roa1",
}
