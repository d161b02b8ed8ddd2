/*
 * base.go, part of goconformers.
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
//Package arrays turns the values of one genre, taken from many conformers, into
//typed arrays. Each genre is handled by a subtype that knows the type of its
//values and the other genres it needs, like the frequencies that go with
//vibrational activities. The Registry maps genres to subtypes.
package arrays

import (
	"github.com/rmera/goconformers/errs"
	"github.com/rmera/goconformers/fields"
	"github.com/rmera/goconformers/masked"
	"github.com/rmera/goconformers/spectral"
)

//Settings used when an array is built.
type Settings struct {
	AllowDataInconsistency bool
	Temperature            float64
	Laser                  float64
}

//DefaultSettings returns strict settings at room temperature.
func DefaultSettings() Settings {
	return Settings{Temperature: spectral.Temperature, Laser: spectral.Laser}
}

//Option modifies the settings used to build an array.
type Option func(*Settings)

//AllowDataInconsistency makes the array reconcile jagged values instead of failing.
func AllowDataInconsistency(allow bool) Option {
	return func(S *Settings) { S.AllowDataInconsistency = allow }
}

//WithTemperature sets the temperature, in K, of energies and scattering data.
func WithTemperature(t float64) Option {
	return func(S *Settings) { S.Temperature = t }
}

//WithLaser sets the wavelength, in nm, of the laser used in scattering experiments.
func WithLaser(l float64) Option {
	return func(S *Settings) { S.Laser = l }
}

//Input holds what a subtype needs to build an array: the genre's values and those
//of the required genres, one per conformer, in the order of filenames.
type Input struct {
	Genre     string
	Filenames []string
	Values    []fields.Value
	Aux       map[string][]fields.Value
	Settings
}

//Array is the common behavior of all the genre arrays.
type Array interface {
	Genre() string
	Filenames() []string
	Len() int
	FullName() string
	Units() string
}

//Attributer is implemented by arrays with numeric, per-conformer attributes, which
//can be used to filter conformers.
type Attributer interface {
	Array
	//Attribute returns the named attribute ("values" for the values themselves).
	Attribute(name string) (*masked.Array[float64], error)
}

//DataArray holds what all the genre arrays share.
type DataArray struct {
	genre     string
	filenames []string
	allow     bool
}

func newDataArray(in Input) DataArray {
	return DataArray{genre: in.Genre, filenames: append([]string(nil), in.Filenames...), allow: in.AllowDataInconsistency}
}

//Genre returns the name of the genre.
func (D *DataArray) Genre() string { return D.genre }

//Filenames returns a copy of the names of the conformers.
func (D *DataArray) Filenames() []string { return append([]string(nil), D.filenames...) }

//Len returns the number of conformers.
func (D *DataArray) Len() int { return len(D.filenames) }

//FullName returns a human-readable name for the genre.
func (D *DataArray) FullName() string { return FullName(D.genre) }

//Units returns the units of the values, or an empty string.
func (D *DataArray) Units() string { return Units(D.genre) }

//AllowsDataInconsistency returns true if the array was built in lenient mode.
func (D *DataArray) AllowsDataInconsistency() bool { return D.allow }

//typed is a DataArray with values of type T.
type typed[T any] struct {
	DataArray
	values *masked.Array[T]
}

func newTyped[T any](in Input, c Contract[T]) (typed[T], error) {
	c.Name = in.Genre
	c.CheckAgainst = "filenames"
	c.CheckDepth = 1
	v, err := c.Apply(in.Values, []int{len(in.Filenames)}, in.AllowDataInconsistency)
	if err != nil {
		return typed[T]{}, err
	}
	return typed[T]{DataArray: newDataArray(in), values: v}, nil
}

//Values returns a copy of the values. The first dimension runs over conformers.
func (A *typed[T]) Values() *masked.Array[T] { return A.values.Copy() }

//floatValues is a typed[float64] with support for Attribute.
type floatValues struct {
	typed[float64]
}

//Attribute returns the values for the name "values", and an error for anything else.
func (F *floatValues) Attribute(name string) (*masked.Array[float64], error) {
	if name == "values" || name == "" {
		return F.Values(), nil
	}
	return nil, errs.New(errs.ErrKey, "%s arrays have no %q attribute", F.genre, name)
}

func floatContract() Contract[float64] { return Contract[float64]{Conv: masked.Float} }

//IntegerArray holds integer genres, like charge and multiplicity.
type IntegerArray struct {
	typed[int]
}

//NewIntegerArray builds an IntegerArray.
func NewIntegerArray(in Input) (Array, error) {
	t, err := newTyped(in, Contract[int]{Conv: masked.Int})
	if err != nil {
		return nil, errs.Decorate(err, "NewIntegerArray")
	}
	return &IntegerArray{t}, nil
}

//Attribute returns the values, as float64, for the name "values".
func (I *IntegerArray) Attribute(name string) (*masked.Array[float64], error) {
	if name == "values" || name == "" {
		return masked.Map(I.values, func(i int) float64 { return float64(i) }), nil
	}
	return nil, errs.New(errs.ErrKey, "%s arrays have no %q attribute", I.genre, name)
}

//FloatArray holds generic float genres, like the thermochemistry corrections.
type FloatArray struct {
	floatValues
}

//NewFloatArray builds a FloatArray.
func NewFloatArray(in Input) (Array, error) {
	t, err := newTyped(in, floatContract())
	if err != nil {
		return nil, errs.Decorate(err, "NewFloatArray")
	}
	return &FloatArray{floatValues{t}}, nil
}

//InfoArray holds string genres, like the command or the stoichiometry.
type InfoArray struct {
	typed[string]
}

//NewInfoArray builds an InfoArray.
func NewInfoArray(in Input) (Array, error) {
	t, err := newTyped(in, Contract[string]{Conv: masked.String})
	if err != nil {
		return nil, errs.Decorate(err, "NewInfoArray")
	}
	return &InfoArray{t}, nil
}

//BooleanArray holds boolean genres, like normal_termination.
type BooleanArray struct {
	typed[bool]
}

//NewBooleanArray builds a BooleanArray.
func NewBooleanArray(in Input) (Array, error) {
	t, err := newTyped(in, Contract[bool]{Conv: masked.Bool})
	if err != nil {
		return nil, errs.Decorate(err, "NewBooleanArray")
	}
	return &BooleanArray{t}, nil
}

//FilenamesArray holds the names of the conformers as its values.
type FilenamesArray struct {
	DataArray
}

//NewFilenamesArray builds a FilenamesArray. Values in the input are ignored.
func NewFilenamesArray(in Input) (Array, error) {
	return &FilenamesArray{newDataArray(in)}, nil
}

//Values returns the filenames as a 1-D array.
func (F *FilenamesArray) Values() *masked.Array[string] { return masked.Vector(F.filenames) }
