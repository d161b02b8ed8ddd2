/*
 * align.go, part of goconformers.
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
	"gonum.org/v1/gonum/interp"
	"gonum.org/v1/gonum/stat"
)

func zscore(a []float64) []float64 {
	mean, std := stat.PopMeanStdDev(a, nil)
	ret := make([]float64, len(a))
	for i, v := range a {
		ret[i] = v - mean
		if std > 0 {
			ret[i] /= std
		}
	}
	return ret
}

//IdxOffset returns the shift, in number of points, that best aligns b with a,
//according to the cross-correlation of both standardized series.
//A positive value means that b should be moved towards higher indexes.
func IdxOffset(a, b []float64) int {
	za, zb := zscore(a), zscore(b)
	n, m := len(za), len(zb)
	best, bestk := math.Inf(-1), 0
	for k := -(m - 1); k < n; k++ {
		//overlap of a[i+k] and b[i]
		lo, hi := 0, m
		if k < 0 {
			lo = -k
		}
		if n-k < hi {
			hi = n - k
		}
		if lo >= hi {
			continue
		}
		c := floats.Dot(za[lo+k:hi+k], zb[lo:hi])
		if c > best {
			best, bestk = c, k
		}
	}
	return bestk
}

func arange(start, stop, step float64) []float64 {
	n := int(math.Ceil((stop - start) / step))
	if n < 0 {
		n = 0
	}
	ret := make([]float64, n)
	for i := range ret {
		ret[i] = start + float64(i)*step
	}
	return ret
}

func resample(x, y, newx []float64) ([]float64, error) {
	xs, ys := append([]float64(nil), x...), append([]float64(nil), y...)
	if len(xs) > 1 && xs[0] > xs[len(xs)-1] {
		floats.Reverse(xs)
		floats.Reverse(ys)
	}
	var pl interp.PiecewiseLinear
	if err := pl.Fit(xs, ys); err != nil {
		return nil, errs.New(errs.ErrValue, "cannot interpolate spectrum: %v", err)
	}
	ret := make([]float64, len(newx))
	for i, v := range newx {
		ret[i] = pl.Predict(v)
	}
	return ret, nil
}

//UnifyAbscissa interpolates one of two spectra so both have the same step
//on their abscissas. With upscale, the spectrum with the larger step is
//interpolated, otherwise the one with the smaller step is. Both abscissas
//are assumed to have a steady step.
func UnifyAbscissa(ax, ay, bx, by []float64, upscale bool) (nax, nay, nbx, nby []float64, err error) {
	if len(ax) < 2 || len(bx) < 2 || len(ax) != len(ay) || len(bx) != len(by) {
		return nil, nil, nil, nil, errs.New(errs.ErrValue, "spectral/UnifyAbscissa: spectra need at least two points and one value per point")
	}
	ad, bd := ax[1]-ax[0], bx[1]-bx[0]
	if ad == bd {
		return ax, ay, bx, by, nil
	}
	if (math.Abs(ad) < math.Abs(bd)) != upscale {
		nbx, nby, nax, nay, err = UnifyAbscissa(bx, by, ax, ay, upscale)
		return nax, nay, nbx, nby, err
	}
	step := math.Abs(ad)
	if bd < 0 {
		step = -step
	}
	nbx = arange(bx[0], bx[len(bx)-1], step)
	nby, err = resample(bx, by, nbx)
	if err != nil {
		return nil, nil, nil, nil, errs.Decorate(err, "spectral/UnifyAbscissa")
	}
	return ax, ay, nbx, nby, nil
}

//FindOffset returns the shift of the b spectrum's abscissa that best aligns
//it with the a spectrum.
func FindOffset(ax, ay, bx, by []float64, upscale bool) (float64, error) {
	ax, ay, bx, by, err := UnifyAbscissa(ax, ay, bx, by, upscale)
	if err != nil {
		return 0, errs.Decorate(err, "spectral/FindOffset")
	}
	shift := IdxOffset(ay, by)
	if shift < 0 {
		return ax[0] - bx[-shift], nil
	}
	return ax[shift] - bx[0], nil
}

//FindScaling returns the factor by which b should be multiplied to best match a:
//the ratio of their mean absolute values. 1 is returned if it cannot be determined.
func FindScaling(a, b []float64) float64 {
	meanAbs := func(x []float64) float64 {
		if len(x) == 0 {
			return math.NaN()
		}
		return floats.Norm(x, 1) / float64(len(x))
	}
	s := meanAbs(a) / meanAbs(b)
	if math.IsNaN(s) {
		return 1
	}
	return s
}
