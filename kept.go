/*
 * kept.go, part of goconformers.
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
	"iter"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/rmera/goconformers/errs"
	"github.com/rmera/goconformers/fields"
)

//Kept selects which conformers of a collection are kept.
//It is applied with SetKept or TrimmedTo.
type Kept func(C *Conformers) (*roaring.Bitmap, error)

//KeepAll keeps every conformer if keep is true, or none if it is false.
func KeepAll(keep bool) Kept {
	return func(C *Conformers) (*roaring.Bitmap, error) {
		b := roaring.New()
		if keep {
			b.AddRange(0, uint64(C.Len()))
		}
		return b, nil
	}
}

//KeepMask keeps the conformers for which mask is true. mask must have one
//element per conformer.
func KeepMask(mask []bool) Kept {
	return func(C *Conformers) (*roaring.Bitmap, error) {
		if len(mask) != C.Len() {
			return nil, errs.New(errs.ErrLength, "KeepMask: mask has %d elements for %d conformers", len(mask), C.Len())
		}
		return fromMask(mask), nil
	}
}

//KeepIndices keeps only the conformers in the given positions.
func KeepIndices(indices ...int) Kept {
	return func(C *Conformers) (*roaring.Bitmap, error) {
		b := roaring.New()
		for _, i := range indices {
			if i < 0 || i >= C.Len() {
				return nil, errs.New(errs.ErrIndex, "KeepIndices: index %d out of range for %d conformers", i, C.Len())
			}
			b.Add(uint32(i))
		}
		return b, nil
	}
}

//KeepNames keeps only the named conformers.
func KeepNames(names ...string) Kept {
	return func(C *Conformers) (*roaring.Bitmap, error) {
		b := roaring.New()
		for _, n := range names {
			i, err := C.IndexOf(n)
			if err != nil {
				return nil, errs.Decorate(err, "KeepNames")
			}
			b.Add(uint32(i))
		}
		return b, nil
	}
}

func fromMask(mask []bool) *roaring.Bitmap {
	b := roaring.New()
	for i, k := range mask {
		if k {
			b.Add(uint32(i))
		}
	}
	return b
}

func (C *Conformers) mask() []bool {
	ret := make([]bool, len(C.names))
	it := C.kept.Iterator()
	for it.HasNext() {
		if i := int(it.Next()); i < len(ret) {
			ret[i] = true
		}
	}
	return ret
}

//SetKept replaces the kept status of all conformers. On error, nothing changes.
func (C *Conformers) SetKept(k Kept) error {
	b, err := k(C)
	if err != nil {
		return errs.Decorate(err, "Conformers/SetKept")
	}
	C.kept = b
	return nil
}

//Kept returns whether each conformer is kept, in order.
func (C *Conformers) Kept() []bool { return C.mask() }

//IsKept returns whether the conformer at position i is kept.
func (C *Conformers) IsKept(i int) bool { return C.kept.Contains(uint32(i)) }

//NKept returns the number of kept conformers.
func (C *Conformers) NKept() int { return int(C.kept.GetCardinality()) }

//SelectAll marks all conformers as kept.
func (C *Conformers) SelectAll() { C.kept, _ = KeepAll(true)(C) }

//RejectAll marks all conformers as not kept.
func (C *Conformers) RejectAll() { C.kept, _ = KeepAll(false)(C) }

//trim marks as not kept the conformers for which keep returns false.
//Conformers already not kept stay that way.
func (C *Conformers) trim(name string, keep func(i int, rec fields.Record) bool) {
	blade := roaring.New()
	for i, n := range C.names {
		if keep(i, C.records[n]) {
			blade.Add(uint32(i))
		}
	}
	before := C.kept.GetCardinality()
	C.kept.And(blade)
	logger.Debug("conformers trimmed", "trim", name, "dropped", before-C.kept.GetCardinality(), "kept", C.kept.GetCardinality())
}

//Untrimmed runs f with all conformers temporarily kept. The previous kept
//status is restored afterwards, even if f panics.
func (C *Conformers) Untrimmed(f func()) {
	b, _ := KeepAll(true)(C)
	C.trimmedTo(b, f)
}

//TrimmedTo runs f with the kept status temporarily given by k. The previous
//kept status is restored afterwards, even if f panics. f is not run if k fails.
//The status is restored by name: conformers added by f are kept, and those
//removed or moved by f don't shift the status of the others.
func (C *Conformers) TrimmedTo(k Kept, f func()) error {
	b, err := k(C)
	if err != nil {
		return errs.Decorate(err, "Conformers/TrimmedTo")
	}
	C.trimmedTo(b, f)
	return nil
}

func (C *Conformers) trimmedTo(b *roaring.Bitmap, f func()) {
	before := make(map[string]bool, len(C.names))
	for i, n := range C.names {
		before[n] = C.kept.Contains(uint32(i))
	}
	C.kept = b
	defer C.restore(before)
	f()
}

//restore sets the kept status of each conformer to the one it had in before.
//Conformers not in before are kept.
func (C *Conformers) restore(before map[string]bool) {
	blade := roaring.New()
	for i, n := range C.names {
		if kept, ok := before[n]; kept || !ok {
			blade.Add(uint32(i))
		}
	}
	C.kept = blade
}

//Item is a kept conformer, with its position in the collection.
type Item struct {
	Index  int
	Name   string
	Record fields.Record
}

//KeptKeys returns the names of the kept conformers, in order.
func (C *Conformers) KeptKeys() []string {
	ret := make([]string, 0, C.NKept())
	for _, it := range C.KeptItems() {
		ret = append(ret, it.Name)
	}
	return ret
}

//KeptValues returns copies of the data of the kept conformers, in order.
func (C *Conformers) KeptValues() []fields.Record {
	ret := make([]fields.Record, 0, C.NKept())
	for _, it := range C.KeptItems() {
		ret = append(ret, it.Record)
	}
	return ret
}

//KeptItems returns the kept conformers, in order. Records are copies.
func (C *Conformers) KeptItems() []Item {
	ret := make([]Item, 0, C.NKept())
	it := C.kept.Iterator()
	for it.HasNext() {
		i := int(it.Next())
		if i >= len(C.names) {
			break
		}
		n := C.names[i]
		ret = append(ret, Item{Index: i, Name: n, Record: C.records[n].Clone()})
	}
	return ret
}

//All iterates over all the conformers, kept or not, in order. The records
//yielded are copies.
func (C *Conformers) All() iter.Seq2[string, fields.Record] {
	return func(yield func(string, fields.Record) bool) {
		for _, n := range C.names {
			if !yield(n, C.records[n].Clone()) {
				return
			}
		}
	}
}
