/*
 * conformers.go, part of goconformers.
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
package conformers

import (
	"fmt"
	"log/slog"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/rmera/goconformers/arrays"
	"github.com/rmera/goconformers/errs"
	"github.com/rmera/goconformers/fields"
	"github.com/rmera/goconformers/spectral"
)

var logger = slog.Default()

//SetLogger sets the logger used for non-fatal notices.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.Default()
	}
	logger = l
}

//PrimaryGenres are the genres considered most important, used by default
//when checking whether conformers are complete.
var PrimaryGenres = []string{"dip", "rot", "vosc", "vrot", "losc", "lrot", "raman1", "roa1", "scf", "zpe", "ent", "ten", "gib"}

//Pair is a named conformer record.
type Pair struct {
	Name   string
	Record fields.Record
}

//Conformers is an ordered collection of conformer records, each identified
//by a unique name, usually the name of the file the data came from.
//Each conformer is also marked as kept or not kept. Conformers not kept
//are ignored when arrays are built, but they are never removed.
//A Conformers is not safe for concurrent use.
type Conformers struct {
	//AllowDataInconsistency makes arrays tolerate conformers with data of
	//different sizes, masking the missing values.
	AllowDataInconsistency bool
	//Temperature, in K, given to the arrays that need one.
	Temperature float64
	names       []string
	records     map[string]fields.Record
	indices     map[string]int
	kept        *roaring.Bitmap //positions of the kept conformers
	registry    *arrays.Registry
}

//Option sets a property of a new Conformers.
type Option func(*Conformers)

//WithDataInconsistency sets whether arrays built from the collection
//tolerate inconsistent data.
func WithDataInconsistency(allow bool) Option {
	return func(C *Conformers) { C.AllowDataInconsistency = allow }
}

//WithTemperature sets the temperature, in K.
func WithTemperature(t float64) Option {
	return func(C *Conformers) { C.Temperature = t }
}

//WithRegistry makes the collection build its arrays with r instead of
//the default array registry.
func WithRegistry(r *arrays.Registry) Option {
	return func(C *Conformers) { C.registry = r }
}

//New returns an empty collection.
func New(opts ...Option) *Conformers {
	C := &Conformers{
		Temperature: spectral.Temperature,
		records:     make(map[string]fields.Record),
		indices:     make(map[string]int),
		kept:        roaring.New(),
	}
	for _, o := range opts {
		o(C)
	}
	return C
}

//FromPairs returns a collection with the given conformers, in order.
//Repeated names are merged, as by Update.
func FromPairs(pairs []Pair, opts ...Option) *Conformers {
	C := New(opts...)
	C.UpdateAll(pairs...)
	return C
}

//Len returns the number of conformers, kept or not.
func (C *Conformers) Len() int { return len(C.names) }

//Update adds the conformer name with the data in rec. If name is already
//present, the data in rec is added to it, replacing the genres present in both.
//New conformers are kept.
func (C *Conformers) Update(name string, rec fields.Record) {
	if old, ok := C.records[name]; ok {
		old.Merge(rec)
		return
	}
	C.indices[name] = len(C.names)
	C.kept.Add(uint32(len(C.names)))
	C.names = append(C.names, name)
	C.records[name] = rec.Clone()
}

//UpdateAll calls Update on each pair, in order.
func (C *Conformers) UpdateAll(pairs ...Pair) {
	for _, p := range pairs {
		C.Update(p.Name, p.Record)
	}
}

//Get returns a copy of the data for conformer name.
func (C *Conformers) Get(name string) (fields.Record, bool) {
	r, ok := C.records[name]
	if !ok {
		return nil, false
	}
	return r.Clone(), true
}

//Contains returns true if name is in the collection.
func (C *Conformers) Contains(name string) bool {
	_, ok := C.records[name]
	return ok
}

//Names returns the names of all conformers, in order.
func (C *Conformers) Names() []string { return append([]string(nil), C.names...) }

//IndexOf returns the position of conformer name.
func (C *Conformers) IndexOf(name string) (int, error) {
	i, ok := C.indices[name]
	if !ok {
		return -1, errs.New(errs.ErrKey, "Conformers/IndexOf: no such conformer: %s", name)
	}
	return i, nil
}

//KeyOf returns the name of the conformer at position i.
func (C *Conformers) KeyOf(i int) (string, error) {
	if i < 0 || i >= len(C.names) {
		return "", errs.New(errs.ErrIndex, "Conformers/KeyOf: index %d out of range for %d conformers", i, len(C.names))
	}
	return C.names[i], nil
}

//ByIndex returns a copy of the data of the conformer at position i.
func (C *Conformers) ByIndex(i int) (fields.Record, error) {
	name, err := C.KeyOf(i)
	if err != nil {
		return nil, errs.Decorate(err, "Conformers/ByIndex")
	}
	return C.records[name].Clone(), nil
}

//reorder replaces the names with the given ones, which must be a subset
//(or a permutation) of the current names, keeping each one's kept status.
func (C *Conformers) reorder(names []string) {
	mask := C.mask()
	old := C.indices
	C.names = names
	C.indices = make(map[string]int, len(names))
	C.kept = roaring.New()
	for i, n := range names {
		C.indices[n] = i
		if mask[old[n]] {
			C.kept.Add(uint32(i))
		}
	}
}

//Delete removes conformer name.
func (C *Conformers) Delete(name string) error {
	i, err := C.IndexOf(name)
	if err != nil {
		return errs.Decorate(err, "Conformers/Delete")
	}
	names := make([]string, 0, len(C.names)-1)
	names = append(names, C.names[:i]...)
	names = append(names, C.names[i+1:]...)
	C.reorder(names)
	delete(C.records, name)
	return nil
}

//Pop removes the last conformer, or the first one if last is false, and returns it.
func (C *Conformers) Pop(last bool) (Pair, error) {
	if len(C.names) == 0 {
		return Pair{}, errs.New(errs.ErrKey, "Conformers/Pop: the collection is empty")
	}
	name := C.names[0]
	if last {
		name = C.names[len(C.names)-1]
	}
	p := Pair{Name: name, Record: C.records[name]}
	if err := C.Delete(name); err != nil {
		return Pair{}, err
	}
	return p, nil
}

//MoveToEnd moves conformer name to the end of the collection, or to its
//beginning if last is false. The conformer keeps its kept status.
func (C *Conformers) MoveToEnd(name string, last bool) error {
	i, err := C.IndexOf(name)
	if err != nil {
		return errs.Decorate(err, "Conformers/MoveToEnd")
	}
	names := make([]string, 0, len(C.names))
	if !last {
		names = append(names, name)
	}
	names = append(names, C.names[:i]...)
	names = append(names, C.names[i+1:]...)
	if last {
		names = append(names, name)
	}
	C.reorder(names)
	return nil
}

//Copy returns a deep copy of the collection.
func (C *Conformers) Copy() *Conformers {
	cp := New(WithDataInconsistency(C.AllowDataInconsistency), WithTemperature(C.Temperature), WithRegistry(C.registry))
	for _, n := range C.names {
		cp.Update(n, C.records[n])
	}
	cp.kept = C.kept.Clone()
	return cp
}

//Clear removes all conformers.
func (C *Conformers) Clear() {
	C.names = nil
	C.records = make(map[string]fields.Record)
	C.indices = make(map[string]int)
	C.kept.Clear()
}

//String returns a short description of the collection.
func (C *Conformers) String() string {
	return fmt.Sprintf("Conformers(%d conformers, %d kept, allow_data_inconsistency=%t)", C.Len(), C.kept.GetCardinality(), C.AllowDataInconsistency)
}

//HasGenre returns true if any conformer has data of genre. Only kept conformers
//are considered, unless ignoreTrimming is true.
func (C *Conformers) HasGenre(genre string, ignoreTrimming bool) bool {
	return C.HasAnyGenre([]string{genre}, ignoreTrimming)
}

//HasAnyGenre returns true if any conformer has data of any of the genres.
func (C *Conformers) HasAnyGenre(genres []string, ignoreTrimming bool) bool {
	for i, n := range C.names {
		if !ignoreTrimming && !C.kept.Contains(uint32(i)) {
			continue
		}
		for _, g := range genres {
			if _, ok := C.records[n][g]; ok {
				return true
			}
		}
	}
	return false
}

//AllHaveGenres returns true if every conformer has data of all the genres.
func (C *Conformers) AllHaveGenres(genres []string, ignoreTrimming bool) bool {
	for i, n := range C.names {
		if !ignoreTrimming && !C.kept.Contains(uint32(i)) {
			continue
		}
		if !C.records[n].Has(genres...) {
			return false
		}
	}
	return true
}
