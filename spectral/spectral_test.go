/*
 * spectral_test.go, part of goconformers.
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
	"fmt"
	"math"
	"testing"

	"github.com/rmera/goconformers/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func TestPopulations(Te *testing.T) {
	pop := Populations([]float64{0, 0.001, 0.002}, Temperature)
	fmt.Println(pop)
	assert.InDeltaSlice(Te, []float64{0.68166002, 0.23637423, 0.08196575}, pop, 1e-7)
	assert.InDelta(Te, 1, floats.Sum(pop), 1e-12)
	assert.Equal(Te, []float64{1}, Populations([]float64{-1234.5}, Temperature))
	assert.Empty(Te, Populations(nil, Temperature))
	many := Populations([]float64{-10.1, -10.2, -10.15, -10.2}, 350)
	assert.InDelta(Te, 1, floats.Sum(many), 1e-12)
	assert.Equal(Te, []float64{0, 1, 2}, Deltas([]float64{3, 4, 5}))
}

func TestKernelsPreconditions(Te *testing.T) {
	for _, fit := range []FittingFunc{Gaussian, Lorentzian} {
		_, err := fit([]float64{1}, []float64{1}, []float64{1, 2}, 0)
		assert.ErrorIs(Te, err, errs.ErrValue)
		_, err = fit([]float64{1}, []float64{1}, []float64{1, 2}, -1)
		assert.ErrorIs(Te, err, errs.ErrValue)
		_, err = fit([]float64{1, 2}, []float64{1}, []float64{1, 2}, 1)
		assert.ErrorIs(Te, err, errs.ErrValue)
		got, err := fit([]float64{1, 2}, []float64{1, 5}, nil, 1)
		require.NoError(Te, err)
		assert.Empty(Te, got)
		got, err = fit(nil, nil, []float64{1, 2, 3}, 1)
		require.NoError(Te, err)
		assert.Equal(Te, []float64{0, 0, 0}, got)
	}
}

func TestKernelShapes(Te *testing.T) {
	x, err := Abscissa(-50, 50.05, 0.1)
	require.NoError(Te, err)
	g, err := Gaussian([]float64{2}, []float64{0}, x, 1)
	require.NoError(Te, err)
	//normalized: the area is the intensity
	assert.InDelta(Te, 2, floats.Sum(g)*0.1, 1e-3)
	assert.Equal(Te, floats.MaxIdx(g), floats.MinIdx(absDiff(x, 0)))
	l, err := Lorentzian([]float64{1}, []float64{0}, []float64{0, 1}, 1)
	require.NoError(Te, err)
	assert.InDelta(Te, 1/math.Pi, l[0], 1e-12)
	assert.InDelta(Te, 0.5/math.Pi, l[1], 1e-12)
	f, err := Fitting("gaussian")
	require.NoError(Te, err)
	assert.NotNil(Te, f)
	_, err = Fitting("voigt")
	assert.ErrorIs(Te, err, errs.ErrKey)
}

func absDiff(x []float64, c float64) []float64 {
	ret := make([]float64, len(x))
	for i, v := range x {
		ret[i] = math.Abs(v - c)
	}
	return ret
}

func TestAbscissa(Te *testing.T) {
	x, err := Abscissa(800, 2900, 2)
	require.NoError(Te, err)
	assert.Len(Te, x, 1050)
	assert.Equal(Te, 2898.0, x[len(x)-1])
	_, err = Abscissa(10, 11, 1)
	assert.ErrorIs(Te, err, errs.ErrValue)
	_, err = Abscissa(10, 1, 1)
	assert.Error(Te, err)
}

func TestCalculateSpectra(Te *testing.T) {
	x := []float64{0, 1, 2}
	s, err := CalculateSpectra([][]float64{{1}, {2}}, [][]float64{{1}, {1}}, x, 1, Lorentzian)
	require.NoError(Te, err)
	require.Len(Te, s, 2)
	assert.InDeltaSlice(Te, []float64{2 * s[0][0], 2 * s[0][1], 2 * s[0][2]}, s[1], 1e-12)
	empty, err := CalculateSpectra(nil, nil, x, 1, Lorentzian)
	require.NoError(Te, err)
	assert.Empty(Te, empty)
	_, err = CalculateSpectra([][]float64{{1}}, [][]float64{{1}}, x, 0, Gaussian)
	assert.ErrorIs(Te, err, errs.ErrValue)
}

func TestAverage(Te *testing.T) {
	av, err := Average([][]float64{{1, 2}, {3, 4}}, []float64{1, 1})
	require.NoError(Te, err)
	assert.InDeltaSlice(Te, []float64{2, 3}, av, 1e-12)
	av, err = Average([][]float64{{1, 2}, {3, 4}}, []float64{0.25, 0.75})
	require.NoError(Te, err)
	assert.InDeltaSlice(Te, []float64{2.5, 3.5}, av, 1e-12)
	_, err = Average([][]float64{{1, 2}}, []float64{0.5, 0.5})
	assert.ErrorIs(Te, err, errs.ErrValue)
	f, err := AverageFlat([]float64{1, 3}, []float64{3, 1})
	require.NoError(Te, err)
	assert.InDelta(Te, 1.5, f, 1e-12)
	av, err = Average(nil, nil)
	require.NoError(Te, err)
	assert.Empty(Te, av)
	//two conformers with 2x2 values each, flattened
	av, err = Average([][]float64{{1, 2, 3, 4}, {5, 6, 7, 8}}, []float64{0.25, 0.75})
	require.NoError(Te, err)
	assert.InDeltaSlice(Te, []float64{4, 5, 6, 7}, av, 1e-12)
	_, err = Average([][]float64{{1, 2, 3, 4}, {5, 6}}, []float64{0.5, 0.5})
	assert.ErrorIs(Te, err, errs.ErrValue)
}

func TestImaginary(Te *testing.T) {
	freqs := [][]float64{{-20, 100, 200}, {10, 20, 30}, {-1, -2, 5}}
	assert.Equal(Te, []int{1, 0, 2}, CountImaginary(freqs))
	assert.Equal(Te, []int{0, 2}, FindImaginary(freqs))
	assert.Equal(Te, 1, CountImaginary1D(freqs[0]))
	assert.Empty(Te, FindImaginary(nil))
}

func TestConversions(Te *testing.T) {
	w, err := ConvertBand([]float64{1000, 2000}, "freq", "wavelen")
	require.NoError(Te, err)
	assert.InDeltaSlice(Te, []float64{10000, 5000}, w, 1e-9)
	e, err := ConvertBand([]float64{1239.8}, "wavelen", "ex_en")
	require.NoError(Te, err)
	assert.InDelta(Te, 1, e[0], 1e-12)
	back, err := ConvertBand(e, "ex_en", "freq")
	require.NoError(Te, err)
	assert.InDelta(Te, EV2Wn, back[0], 1e-9)
	_, err = ConvertBand(e, "freq", "mass")
	assert.ErrorIs(Te, err, errs.ErrValue)
	conv, err := Intensities("dip")
	require.NoError(Te, err)
	assert.InDeltaSlice(Te, []float64{2 * 100 * 0.010886}, conv([]float64{2}, []float64{100}), 1e-12)
	conv, _ = Intensities("vosc")
	assert.InDeltaSlice(Te, []float64{2.315351857e08}, conv([]float64{1}, []float64{300}), 1e-3)
	_, err = Intensities("scf")
	assert.ErrorIs(Te, err, errs.ErrUnknownGenre)
	assert.Equal(Te, "ecd", SpectraName("lrot"))
	assert.Equal(Te, "", SpectraName("freq"))
	assert.Equal(Te, "scattering", SpectraType("roa"))
}

func TestOffsetAndScaling(Te *testing.T) {
	x, _ := Abscissa(0, 100, 1)
	peak := func(at float64) []float64 {
		y, _ := Gaussian([]float64{1}, []float64{at}, x, 3)
		return y
	}
	assert.Equal(Te, 10, IdxOffset(peak(50), peak(40)))
	assert.Equal(Te, -5, IdxOffset(peak(40), peak(45)))
	off, err := FindOffset(x, peak(50), x, peak(40), true)
	require.NoError(Te, err)
	assert.InDelta(Te, 10, off, 1e-9)
	//different steps
	x2, _ := Abscissa(0, 100, 2)
	y2, _ := Gaussian([]float64{1}, []float64{40}, x2, 3)
	off, err = FindOffset(x, peak(50), x2, y2, true)
	require.NoError(Te, err)
	assert.InDelta(Te, 10, off, 1.0)
	assert.InDelta(Te, 2, FindScaling([]float64{2, -4}, []float64{1, 2}), 1e-12)
	assert.Equal(Te, 1.0, FindScaling([]float64{0}, []float64{0}))
}

func TestSpectraAverage(Te *testing.T) {
	x := []float64{0, 1, 2}
	sp, err := NewSpectra("ir", []string{"a", "b"}, [][]float64{{1, 1, 1}, {3, 3, 3}}, x, 6, "lorentzian")
	require.NoError(Te, err)
	av, err := sp.Average([]float64{0.5, 0.5}, "gib")
	require.NoError(Te, err)
	assert.Equal(Te, "gib", av.AveragedBy)
	assert.InDeltaSlice(Te, []float64{2, 2, 2}, av.Values, 1e-12)
	av.Offset = 10
	av.Scaling = 2
	assert.Equal(Te, []float64{10, 11, 12}, av.X())
	assert.Equal(Te, []float64{4, 4, 4}, av.Y())
	_, err = NewSpectra("ir", []string{"a"}, [][]float64{{1, 1}}, x, 6, "lorentzian")
	assert.ErrorIs(Te, err, errs.ErrInconsistentData)
	ref := &SingleSpectrum{Genre: "ir", Values: []float64{4, 4, 4}, Abscissa: x, Scaling: 1}
	require.NoError(Te, sp.ScaleTo(ref, []float64{0.5, 0.5}))
	assert.InDelta(Te, 2, sp.Scaling, 1e-12)
	assert.Equal(Te, "vibrational", sp.SpectraType())
	assert.Equal(Te, "cm-1", Units["ir"]["width"])
	assert.Equal(Te, "nm", Units["uv"]["start"])
}

func TestStandardParameters(Te *testing.T) {
	std := StandardParameters()
	for name, p := range std {
		assert.NoError(Te, p.Validate(), name)
	}
	assert.Equal(Te, "gaussian", std["ecd"].Fitting)
	assert.Equal(Te, 6.0, std["ir"].Width)
	bad := std["ir"]
	bad.Width = 0
	assert.Error(Te, bad.Validate())
}
