/*
 * arrays_test.go, part of goconformers.
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
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/rmera/goconformers/errs"
	"github.com/rmera/goconformers/fields"
	"github.com/rmera/goconformers/spectral"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func src(name string, r fields.Record) Source { return Source{Name: name, Record: r} }

func TestBuildBasic(Te *testing.T) {
	R := NewRegistry()
	sources := []Source{
		src("a", fields.Record{"zpecorr": fields.F(0.1), "charge": fields.I(0)}),
		src("b", fields.Record{"charge": fields.I(1)}),
		src("c", fields.Record{"zpecorr": fields.F(0.3), "charge": fields.F(-1)}),
	}
	arr, err := R.Build("zpecorr", sources)
	require.NoError(Te, err)
	fl, ok := arr.(*FloatArray)
	require.True(Te, ok)
	assert.Equal(Te, []string{"a", "c"}, fl.Filenames())
	assert.Equal(Te, []float64{0.1, 0.3}, fl.Values().Data())
	assert.Equal(Te, "Zero-point Correction", fl.FullName())
	assert.Equal(Te, "Hartree", fl.Units())
	arr, err = R.Build("charge", sources)
	require.NoError(Te, err)
	assert.Equal(Te, []int{0, 1, -1}, arr.(*IntegerArray).Values().Data())
	arr, err = R.Build("filenames", sources)
	require.NoError(Te, err)
	assert.Equal(Te, []string{"a", "b", "c"}, arr.(*FilenamesArray).Values().Data())
}

func TestBuildDoesNotAlias(Te *testing.T) {
	rec := fields.Record{"freq": fields.Fs(100, 200)}
	arr, err := NewRegistry().Build("freq", []Source{src("a", rec)})
	require.NoError(Te, err)
	rec["freq"] = fields.Fs(1, 2)
	assert.Equal(Te, []float64{100, 200}, arr.(*Bands).Values().Data())
}

func TestBuildEmpty(Te *testing.T) {
	R := NewRegistry()
	arr, err := R.Build("scf", []Source{src("a", fields.Record{"zpe": fields.F(1)})})
	require.NoError(Te, err)
	en, ok := arr.(*Energies)
	require.True(Te, ok)
	assert.Equal(Te, 0, en.Len())
	assert.Empty(Te, en.Populations())
	arr, err = R.Build("dip", nil)
	require.NoError(Te, err)
	va := arr.(*VibrationalActivities)
	sp, err := va.CalculateSpectra(spectral.StandardParameters()["ir"])
	require.NoError(Te, err)
	assert.Equal(Te, 0, sp.Len())
}

func TestBuildErrors(Te *testing.T) {
	R := NewRegistry()
	_, err := R.Build("nonsense", nil)
	assert.ErrorIs(Te, err, errs.ErrUnknownGenre)
	sources := []Source{
		src("a", fields.Record{"dip": fields.Fs(1, 2), "freq": fields.Fs(10, 20)}),
		src("b", fields.Record{"dip": fields.Fs(1, 2)}),
	}
	_, err = R.Build("dip", sources)
	require.ErrorIs(Te, err, errs.ErrMissingGenre)
	fmt.Println(err)
	assert.True(Te, strings.Contains(err.Error(), "freq"))
	assert.True(Te, strings.Contains(err.Error(), "dip"))
	assert.True(Te, strings.Contains(err.Error(), "VibrationalActivities"))
}

func TestJagged(Te *testing.T) {
	sources := []Source{
		src("a", fields.Record{"freq": fields.Fs(1, 2)}),
		src("b", fields.Record{"freq": fields.Fs(3)}),
	}
	R := NewRegistry()
	_, err := R.Build("freq", sources)
	assert.ErrorIs(Te, err, errs.ErrInconsistentData)
	arr, err := R.Build("freq", sources, AllowDataInconsistency(true))
	require.NoError(Te, err)
	v := arr.(*Bands).Values()
	assert.Equal(Te, []int{2, 2}, v.Shape())
	assert.Equal(Te, []float64{1, 2, 3, 0}, v.Data())
	assert.Equal(Te, []bool{false, false, false, true}, v.Mask())
	//companion arrays must match the values
	sources = []Source{
		src("a", fields.Record{"mass": fields.Fs(1, 2), "freq": fields.Fs(10, 20, 30)}),
	}
	_, err = R.Build("mass", sources)
	assert.ErrorIs(Te, err, errs.ErrInconsistentData)
}

func TestEnergies(Te *testing.T) {
	sources := []Source{
		src("a", fields.Record{"scf": fields.F(0)}),
		src("b", fields.Record{"scf": fields.F(0.001)}),
		src("c", fields.Record{"scf": fields.F(0.002)}),
	}
	arr, err := NewRegistry().Build("scf", sources)
	require.NoError(Te, err)
	en := arr.(*Energies)
	assert.Equal(Te, spectral.Temperature, en.T())
	assert.InDeltaSlice(Te, []float64{0.68166002, 0.23637423, 0.08196575}, en.Populations(), 1e-7)
	assert.InDeltaSlice(Te, []float64{0, 0.6275095, 1.255019}, en.Deltas(), 1e-9)
	assert.InDelta(Te, 1, floats.Sum(en.CalculatePopulations(500)), 1e-12)
	kcal, err := en.Attribute("as_kcal_per_mol")
	require.NoError(Te, err)
	assert.InDelta(Te, 1.255019, kcal.At(2), 1e-9)
	_, err = en.Attribute("nope")
	assert.ErrorIs(Te, err, errs.ErrKey)
	arr, err = NewRegistry().Build("scf", sources, WithTemperature(100))
	require.NoError(Te, err)
	assert.Equal(Te, 100.0, arr.(*Energies).T())
}

func TestBands(Te *testing.T) {
	sources := []Source{
		src("a", fields.Record{"freq": fields.Fs(-20, 100, 200)}),
		src("b", fields.Record{"freq": fields.Fs(10, 20, 30)}),
	}
	arr, err := NewRegistry().Build("freq", sources)
	require.NoError(Te, err)
	b := arr.(*Bands)
	assert.Equal(Te, []int{1, 0}, b.Imaginary())
	assert.Equal(Te, map[string]int{"a": 1}, b.FindImaginary())
	w, err := b.Wavelen()
	require.NoError(Te, err)
	assert.InDelta(Te, 1e5, w.At(0, 1), 1e-9)
	arr, err = NewRegistry().Build("wavelen", []Source{src("a", fields.Record{"wavelen": fields.Fs(500)})})
	require.NoError(Te, err)
	f, err := arr.(*Bands).Freq()
	require.NoError(Te, err)
	assert.InDelta(Te, 20000, f.At(0, 0), 1e-9)
}

func TestVibrationalSpectra(Te *testing.T) {
	sources := []Source{
		src("a", fields.Record{"dip": fields.Fs(2), "freq": fields.Fs(1000)}),
		src("b", fields.Record{"dip": fields.Fs(4), "freq": fields.Fs(1100)}),
	}
	arr, err := NewRegistry().Build("dip", sources)
	require.NoError(Te, err)
	va := arr.(*VibrationalActivities)
	assert.Equal(Te, "ir", va.SpectraName())
	assert.Equal(Te, "vibrational", va.SpectraType())
	ints, err := va.Intensities()
	require.NoError(Te, err)
	assert.InDeltaSlice(Te, []float64{2 * 1000 * 0.010886}, ints[0], 1e-9)
	p := spectral.Parameters{Width: 6, Start: 800, Stop: 1200, Step: 1, Fitting: "lorentzian"}
	sp, err := va.CalculateSpectra(p)
	require.NoError(Te, err)
	assert.Equal(Te, "ir", sp.Genre)
	assert.Equal(Te, 2, sp.Len())
	assert.Len(Te, sp.Abscissa, 400)
	assert.Equal(Te, 200, floats.MaxIdx(sp.Rows[0]))
	assert.Equal(Te, 300, floats.MaxIdx(sp.Rows[1]))
	p.Fitting = "voigt"
	_, err = va.CalculateSpectra(p)
	assert.ErrorIs(Te, err, errs.ErrKey)
}

func TestScattering(Te *testing.T) {
	sources := []Source{src("a", fields.Record{"raman1": fields.Fs(5, 1), "freq": fields.Fs(900, 1500)})}
	arr, err := NewRegistry().Build("raman1", sources, WithLaser(785))
	require.NoError(Te, err)
	sa := arr.(*ScatteringActivities)
	assert.Equal(Te, 785.0, sa.Laser())
	assert.Equal(Te, spectral.Temperature, sa.T())
	assert.Equal(Te, "raman", sa.SpectraName())
	sp, err := sa.CalculateSpectra(spectral.StandardParameters()["raman"])
	require.NoError(Te, err)
	assert.Equal(Te, 50, floats.MaxIdx(sp.Rows[0]))
}

func TestElectronicSpectra(Te *testing.T) {
	sources := []Source{src("a", fields.Record{"vosc": fields.Fs(1), "wavelen": fields.Fs(200)})}
	arr, err := NewRegistry().Build("vosc", sources)
	require.NoError(Te, err)
	ea := arr.(*ElectronicActivities)
	assert.Equal(Te, "uv", ea.SpectraName())
	assert.InDelta(Te, 50000, ea.Freq().At(0, 0), 1e-9)
	p := spectral.Parameters{Width: 0.35, Start: 150, Stop: 300, Step: 1, Fitting: "gaussian"}
	sp, err := ea.CalculateSpectra(p)
	require.NoError(Te, err)
	assert.Equal(Te, 150.0, sp.Abscissa[0])
	assert.Equal(Te, 50, floats.MaxIdx(sp.Rows[0]))
	assert.Equal(Te, 0.35, sp.Width)
}

func TestTransitions(Te *testing.T) {
	tr := func(g, e int, c float64) fields.Value { return fields.L(fields.I(g), fields.I(e), fields.F(c)) }
	sources := []Source{
		src("a", fields.Record{"transitions": fields.L(
			fields.L(tr(1, 2, 0.5), tr(3, 4, -0.6)),
			fields.L(tr(5, 6, 0.7)),
		)}),
		src("b", fields.Record{"transitions": fields.L(fields.L(tr(1, 2, 0.1)))}),
	}
	arr, err := NewRegistry().Build("transitions", sources)
	require.NoError(Te, err)
	T := arr.(*Transitions)
	assert.Equal(Te, []int{2, 2, 2}, T.Values().Shape())
	assert.InDelta(Te, 0.72, T.Contribution().At(0, 0, 1), 1e-12)
	idx := T.IndicesHighest()
	assert.Equal(Te, []int{1, 0, 0, 0}, idx.Data())
	assert.Equal(Te, []bool{false, false, false, true}, idx.Mask())
	g, e, v, c := T.HighestContribution()
	assert.Equal(Te, 3, g.At(0, 0))
	assert.Equal(Te, 6, e.At(0, 1))
	assert.Equal(Te, -0.6, v.At(0, 0))
	assert.InDelta(Te, 0.02, c.At(1, 0), 1e-12)
	assert.True(Te, c.MaskedAt(1, 1))
}

func TestGeometry(Te *testing.T) {
	coords := fields.Rows([][]float64{{0, 0, 0}, {0, 0, 0.96}})
	sources := []Source{
		src("a", fields.Record{"last_read_geom": coords, "last_read_atoms": fields.Strs("H", "O")}),
		src("b", fields.Record{"last_read_geom": coords, "last_read_atoms": fields.Ints(1, 8)}),
	}
	R := NewRegistry()
	arr, err := R.Build("last_read_geom", sources)
	require.NoError(Te, err)
	G := arr.(*Geometry)
	assert.Equal(Te, "Geometry", G.FullName())
	assert.Equal(Te, []int{1, 2}, G.Atoms().Shape())
	assert.Equal(Te, []int{1, 8}, G.AtomsOf(1))
	m, err := G.Matrices()
	require.NoError(Te, err)
	assert.Equal(Te, 2, m[1].NVecs())
	//different atoms
	sources[1].Record["last_read_atoms"] = fields.Ints(8, 1)
	_, err = R.Build("last_read_geom", sources)
	assert.ErrorIs(Te, err, errs.ErrInconsistentData)
	arr, err = R.Build("last_read_geom", sources, AllowDataInconsistency(true))
	require.NoError(Te, err)
	assert.Equal(Te, []int{8, 1}, arr.(*Geometry).AtomsOf(1))
	//wrong number of atoms
	sources[1].Record["last_read_atoms"] = fields.Ints(1, 8, 8)
	_, err = R.Build("last_read_geom", sources)
	assert.ErrorIs(Te, err, errs.ErrInconsistentData)
	//invalid element
	sources[1].Record["last_read_atoms"] = fields.Strs("H", "Xx")
	_, err = R.Build("last_read_geom", sources)
	assert.ErrorIs(Te, err, errs.ErrInvalidElement)
	//missing atoms
	delete(sources[1].Record, "last_read_atoms")
	_, err = R.Build("last_read_geom", sources)
	assert.ErrorIs(Te, err, errs.ErrMissingGenre)
}

func TestCollapsibleContract(Te *testing.T) {
	c := Contract[int]{Name: "x", Conv: func(v fields.Value) (int, bool) { return v.Int() }, Collapsible: true, Strict: true}
	arr, err := c.Apply([]fields.Value{fields.Ints(1, 2), fields.Ints(1, 2), fields.Ints(1, 2)}, nil, false)
	require.NoError(Te, err)
	assert.Equal(Te, []int{1, 2}, arr.Shape())
	_, err = c.Apply([]fields.Value{fields.Ints(1, 2), fields.Ints(2, 1)}, nil, false)
	assert.ErrorIs(Te, err, errs.ErrInconsistentData)
	c.Strict = false
	arr, err = c.Apply([]fields.Value{fields.Ints(1, 2), fields.Ints(2, 1)}, nil, false)
	require.NoError(Te, err)
	assert.Equal(Te, []int{2, 2}, arr.Shape())
}

func TestDefaultRegistry(Te *testing.T) {
	defer ResetDefault()
	Default().Register(Constructor{Type: "FloatArray", New: NewFloatArray}, "custom")
	_, err := Default().Lookup("custom")
	require.NoError(Te, err)
	ResetDefault()
	_, err = Default().Lookup("custom")
	assert.ErrorIs(Te, err, errs.ErrUnknownGenre)
	assert.Contains(Te, Default().Genres(), "scf")
	assert.Equal(Te, "nonsense", FullName("nonsense"))
	assert.Equal(Te, "last_read_atoms", AtomsGenre("last_read_geom"))
}

func TestRegisterWhileBuilding(Te *testing.T) {
	R := NewRegistry()
	sources := []Source{src("a", fields.Record{"scf": fields.F(-1)}), src("b", fields.Record{"scf": fields.F(-2)})}
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			R.Register(Constructor{Type: "FloatArray", New: NewFloatArray}, fmt.Sprintf("custom%d", i))
		}()
		go func() {
			defer wg.Done()
			arr, err := R.Build("scf", sources)
			assert.NoError(Te, err)
			assert.Equal(Te, 2, arr.Len())
		}()
	}
	wg.Wait()
	assert.Contains(Te, R.Genres(), "custom3")
}
