/*
 * trim.go, part of goconformers.
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
	"math"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/rmera/goconformers/arrays"
	"github.com/rmera/goconformers/errs"
	"github.com/rmera/goconformers/fields"
)

//Trims only ever mark conformers as not kept. Conformers already not kept
//are not affected by any of them.

//Unbounded is an open end for TrimToRange.
var Unbounded = math.Inf(1)

//TrimNotOptimized marks as not kept the conformers whose structure optimization
//failed. Conformers without optimization data are treated as optimized.
func (C *Conformers) TrimNotOptimized() {
	C.trim("not_optimized", func(_ int, rec fields.Record) bool {
		v, ok := rec["optimization_completed"]
		if !ok {
			return true
		}
		b, ok := v.Bool()
		return !ok || b
	})
}

//TrimNonNormalTermination marks as not kept the conformers whose calculation
//did not terminate normally. Conformers without termination data are treated
//as terminated abnormally.
func (C *Conformers) TrimNonNormalTermination() {
	C.trim("non_normal_termination", func(_ int, rec fields.Record) bool {
		b, ok := rec["normal_termination"].Bool()
		return ok && b
	})
}

//TrimImaginaryFrequencies marks as not kept the conformers with at least one
//imaginary (negative) frequency. Conformers without frequencies pass.
func (C *Conformers) TrimImaginaryFrequencies() {
	C.trim("imaginary_frequencies", func(_ int, rec fields.Record) bool {
		v, ok := rec["freq"]
		if !ok {
			return true
		}
		if f, ok := v.Number(); ok {
			return f >= 0
		}
		freqs, _ := v.Floats()
		for _, f := range freqs {
			if f < 0 {
				return false
			}
		}
		return true
	})
}

//mostCommon returns the value found most often in vals. Ties go to the value found first.
func mostCommon[T comparable](vals []T) (T, bool) {
	var best T
	if len(vals) == 0 {
		return best, false
	}
	counts := make(map[T]int)
	for _, v := range vals {
		counts[v]++
	}
	top := 0
	for _, v := range vals {
		if counts[v] > top {
			best, top = v, counts[v]
		}
	}
	return best, true
}

//TrimNonMatchingStoichiometry marks as not kept the conformers with a
//stoichiometry other than wanted. If wanted is empty, the most common
//stoichiometry among all conformers is used. Conformers without stoichiometry
//never match.
func (C *Conformers) TrimNonMatchingStoichiometry(wanted string) {
	if wanted == "" {
		var found []string
		for _, n := range C.names {
			if s, ok := C.records[n]["stoichiometry"].Str(); ok {
				found = append(found, s)
			}
		}
		wanted, _ = mostCommon(found)
	}
	C.trim("non_matching_stoichiometry", func(_ int, rec fields.Record) bool {
		s, ok := rec["stoichiometry"].Str()
		return ok && wanted != "" && s == wanted
	})
}

//TrimInconsistentSizes marks as not kept the conformers with sequence data
//(of any genre) of a length other than the most common one for that genre.
func (C *Conformers) TrimInconsistentSizes() {
	sizes := make(map[string][]int)
	for _, n := range C.names {
		for g, v := range C.records[n] {
			if v.IsSeq() {
				sizes[g] = append(sizes[g], v.Len())
			}
		}
	}
	common := make(map[string]int, len(sizes))
	for g, s := range sizes {
		common[g], _ = mostCommon(s)
	}
	C.trim("inconsistent_sizes", func(_ int, rec fields.Record) bool {
		for g, v := range rec {
			if v.IsSeq() && v.Len() != common[g] {
				return false
			}
		}
		return true
	})
}

//TrimToRange marks as not kept the conformers whose value of genre is
//outside [min, max]. The numbers compared are those of the given attribute
//of the genre's array ("values" if empty), which must be one-dimensional.
//Use -Unbounded or Unbounded for an open range. Conformers without the genre
//are marked as not kept.
func (C *Conformers) TrimToRange(genre string, min, max float64, attribute string) error {
	errid := "Conformers/TrimToRange"
	arr, err := C.Arrayed(genre)
	if err != nil {
		return errs.Decorate(err, errid)
	}
	at, ok := arr.(arrays.Attributer)
	if !ok {
		return errs.New(errs.ErrType, "%s: %s array (%T) holds no numeric values", errid, genre, arr)
	}
	if attribute == "" {
		attribute = "values"
	}
	vals, err := at.Attribute(attribute)
	if err != nil {
		return errs.Decorate(err, errid)
	}
	if vals.Ndim() != 1 {
		return errs.New(errs.ErrValue, "%s: invalid genre/attribute combination %s/%s: values must be one-dimensional, got shape %v", errid, genre, attribute, vals.Shape())
	}
	blade := roaring.New()
	for i, n := range arr.Filenames() {
		v := vals.At(i)
		if !vals.MaskedAt(i) && min <= v && v <= max {
			blade.Add(uint32(C.indices[n]))
		}
	}
	before := C.kept.GetCardinality()
	C.kept.And(blade)
	logger.Debug("conformers trimmed", "trim", "to_range", "genre", genre, "dropped", before-C.kept.GetCardinality())
	return nil
}

//TrimIncomplete marks as not kept the conformers that lack any of the wanted
//genres (PrimaryGenres if wanted is nil). If no conformer has all the wanted
//genres and strict is false, the conformers closest to the requirement are
//kept instead: those with the most wanted genres and, among them, those whose
//genres come first in wanted.
func (C *Conformers) TrimIncomplete(wanted []string, strict bool) {
	if wanted == nil {
		wanted = PrimaryGenres
	}
	if strict {
		C.trim("incomplete", func(_ int, rec fields.Record) bool { return rec.Has(wanted...) })
		return
	}
	if C.Len() == 0 {
		return
	}
	presence := make([][]bool, C.Len())
	counts := make([]int, C.Len())
	for i, n := range C.names {
		presence[i] = make([]bool, len(wanted))
		for j, g := range wanted {
			_, presence[i][j] = C.records[n][g]
			if presence[i][j] {
				counts[i]++
			}
		}
	}
	best := 0
	for i := range presence[1:] {
		if closer(counts[i+1], presence[i+1], counts[best], presence[best]) {
			best = i + 1
		}
	}
	C.trim("incomplete", func(i int, _ fields.Record) bool {
		return counts[i] == counts[best] && !closer(counts[best], presence[best], counts[i], presence[i])
	})
}

//closer returns true if a conformer with count wanted genres present as in a
//matches the requirement more closely than one with countb present as in b.
func closer(counta int, a []bool, countb int, b []bool) bool {
	if counta != countb {
		return counta > countb
	}
	for j := range a {
		if a[j] != b[j] {
			return a[j]
		}
	}
	return false
}
