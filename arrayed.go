/*
 * arrayed.go, part of goconformers.
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
	"context"
	"path/filepath"
	"strings"

	"github.com/rmera/goconformers/arrays"
	"github.com/rmera/goconformers/errs"
	"github.com/rmera/goconformers/extraction"
)

func (C *Conformers) arrayRegistry() *arrays.Registry {
	if C.registry != nil {
		return C.registry
	}
	return arrays.Default()
}

func (C *Conformers) arrayed(genre string, full bool, opts []arrays.Option) (arrays.Array, error) {
	sources := make([]arrays.Source, 0, C.Len())
	for i, n := range C.names {
		if full || C.kept.Contains(uint32(i)) {
			sources = append(sources, arrays.Source{Name: n, Record: C.records[n]})
		}
	}
	o := []arrays.Option{arrays.AllowDataInconsistency(C.AllowDataInconsistency), arrays.WithTemperature(C.Temperature)}
	arr, err := C.arrayRegistry().Build(genre, sources, append(o, opts...)...)
	if err != nil {
		return nil, errs.Decorate(err, "Conformers/Arrayed")
	}
	return arr, nil
}

//Arrayed returns the data of genre for the kept conformers that have it,
//as an array of the type registered for the genre. The array holds copies
//of the data. Options given override the settings of the collection.
func (C *Conformers) Arrayed(genre string, opts ...arrays.Option) (arrays.Array, error) {
	return C.arrayed(genre, false, opts)
}

//ArrayedFull is like Arrayed, but it takes every conformer, kept or not.
func (C *Conformers) ArrayedFull(genre string, opts ...arrays.Option) (arrays.Array, error) {
	return C.arrayed(genre, true, opts)
}

var compressionExt = []string{".gz", ".zst", ".lz4"}

//Stem returns the name given to the conformer read from file path: its base
//name without compression suffix or extension.
func Stem(path string) string {
	base := filepath.Base(path)
	for _, ext := range compressionExt {
		if strings.HasSuffix(base, ext) {
			base = strings.TrimSuffix(base, ext)
			break
		}
	}
	return strings.TrimSuffix(base, filepath.Ext(base))
}

//Extract reads the given files with b, and adds the data found to the
//collection, one conformer per file named after the file's stem. Files that
//can't be read are skipped. It returns the number of files added. An error is
//returned only if ctx is cancelled, in which case nothing is added.
func (C *Conformers) Extract(ctx context.Context, b *extraction.Batch, paths []string) (int, error) {
	res, err := b.Run(ctx, paths)
	if err != nil {
		return 0, errs.Decorate(err, "Conformers/Extract")
	}
	var added int
	for _, r := range res {
		if r.Err != nil {
			continue
		}
		C.Update(Stem(r.Name), r.Record)
		added++
	}
	return added, nil
}
