/*
 * transitions.go, part of goconformers.
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
	"github.com/rmera/goconformers/fields"
	"github.com/rmera/goconformers/masked"
)

//Transitions holds, for each conformer and each excited state, the orbital
//transitions contributing to the excitation: the ground and excited orbitals
//and the coefficient of each transition. Conformers and states differ in their
//number of transitions, so the arrays are always masked.
//Values for one conformer are a list of states, each a list of
//(ground, excited, coefficient) triplets.
type Transitions struct {
	DataArray
	ground  *masked.Array[int]
	excited *masked.Array[int]
	coefs   *masked.Array[float64]
}

//split separates the triplets of each conformer into three nested lists.
func split(vals []fields.Value) (ground, excited, coefs []fields.Value, err error) {
	for i, conf := range vals {
		if !conf.IsSeq() {
			return nil, nil, nil, errs.New(errs.ErrInconsistentData, "transitions of conformer %d are not a list of excited states", i)
		}
		var g, e, c []fields.Value
		for _, state := range conf.Elems() {
			if !state.IsSeq() {
				return nil, nil, nil, errs.New(errs.ErrInconsistentData, "transitions of conformer %d: excited state is not a list of transitions", i)
			}
			var sg, se, sc []fields.Value
			for _, t := range state.Elems() {
				tr := t.Elems()
				if len(tr) != 3 {
					return nil, nil, nil, errs.New(errs.ErrInconsistentData, "transitions of conformer %d: expected (ground, excited, coefficient), got %v", i, t)
				}
				sg = append(sg, tr[0])
				se = append(se, tr[1])
				sc = append(sc, tr[2])
			}
			g = append(g, fields.L(sg...))
			e = append(e, fields.L(se...))
			c = append(c, fields.L(sc...))
		}
		ground = append(ground, fields.L(g...))
		excited = append(excited, fields.L(e...))
		coefs = append(coefs, fields.L(c...))
	}
	return ground, excited, coefs, nil
}

//NewTransitions builds a Transitions array.
func NewTransitions(in Input) (Array, error) {
	errid := "NewTransitions"
	g, e, c, err := split(in.Values)
	if err != nil {
		return nil, errs.Decorate(err, errid)
	}
	ret := &Transitions{DataArray: newDataArray(in)}
	if ret.ground, err = masked.FromValues(g, masked.Int, 0); err != nil {
		return nil, errs.Decorate(err, errid)
	}
	if ret.excited, err = masked.FromValues(e, masked.Int, 0); err != nil {
		return nil, errs.Decorate(err, errid)
	}
	if ret.coefs, err = masked.FromValues(c, masked.Float, 0); err != nil {
		return nil, errs.Decorate(err, errid)
	}
	return ret, nil
}

//Ground returns the ground orbitals, shape (conformers, states, transitions).
func (T *Transitions) Ground() *masked.Array[int] { return T.ground.Copy() }

//Excited returns the excited orbitals, shape (conformers, states, transitions).
func (T *Transitions) Excited() *masked.Array[int] { return T.excited.Copy() }

//Values returns the coefficients of each transition, shape (conformers, states, transitions).
func (T *Transitions) Values() *masked.Array[float64] { return T.coefs.Copy() }

//Contribution returns the contribution of each transition to its excited state: 2*c^2.
func (T *Transitions) Contribution() *masked.Array[float64] {
	return masked.Map(T.coefs, func(c float64) float64 { return 2 * c * c })
}

//IndicesHighest returns, for each conformer and state, the index of the transition
//with the highest contribution. States with no transitions are masked.
func (T *Transitions) IndicesHighest() *masked.Array[int] {
	contrib := T.Contribution()
	shape := contrib.Shape()
	if len(shape) < 3 {
		states := 0
		if len(shape) > 1 {
			states = shape[1]
		}
		return masked.Zeros[int](shape[0], states)
	}
	n, states, trans := shape[0], shape[1], shape[2]
	data := make([]int, n*states)
	mask := make([]bool, n*states)
	for i := 0; i < n; i++ {
		for s := 0; s < states; s++ {
			best := -1
			for t := 0; t < trans; t++ {
				if contrib.MaskedAt(i, s, t) {
					continue
				}
				if best < 0 || contrib.At(i, s, t) > contrib.At(i, s, best) {
					best = t
				}
			}
			if best < 0 {
				mask[i*states+s] = true
				best = 0
			}
			data[i*states+s] = best
		}
	}
	ret, _ := masked.New([]int{n, states}, data, mask)
	return ret
}

func pick[E any](A *masked.Array[E], idx *masked.Array[int]) *masked.Array[E] {
	shape := idx.Shape()
	n, states := shape[0], shape[1]
	data := make([]E, n*states)
	mask := make([]bool, n*states)
	for i := 0; i < n; i++ {
		for s := 0; s < states; s++ {
			data[i*states+s] = A.At(i, s, idx.At(i, s))
			mask[i*states+s] = idx.MaskedAt(i, s)
		}
	}
	ret, _ := masked.New([]int{n, states}, data, mask)
	return ret
}

//HighestContribution returns the ground and excited orbitals, the coefficient and
//the contribution of the main transition of each conformer and state.
func (T *Transitions) HighestContribution() (ground, excited *masked.Array[int], values, contribution *masked.Array[float64]) {
	idx := T.IndicesHighest()
	if T.coefs.Ndim() < 3 || T.coefs.Shape()[2] == 0 {
		return masked.Zeros[int](idx.Shape()...), masked.Zeros[int](idx.Shape()...), masked.Zeros[float64](idx.Shape()...), masked.Zeros[float64](idx.Shape()...)
	}
	return pick(T.ground, idx), pick(T.excited, idx), pick(T.coefs, idx), pick(T.Contribution(), idx)
}
