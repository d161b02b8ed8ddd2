/*
 * registry.go, part of goconformers.
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
	"sort"
	"sync"

	"github.com/rmera/goconformers/errs"
	"github.com/rmera/goconformers/fields"
)

//Source is one conformer: its name and its record.
type Source struct {
	Name   string
	Record fields.Record
}

//Constructor knows how to build the array for a genre.
type Constructor struct {
	//Type is the name of the subtype, used in messages.
	Type string
	//Requires returns the genres, other than the one requested, that every
	//conformer must have for the array to be built. It can be nil.
	Requires func(genre string) []string
	New      func(in Input) (Array, error)
}

func requires(genres ...string) func(string) []string {
	return func(string) []string { return genres }
}

//Registry maps genres to the constructors of their arrays.
type Registry struct {
	mu    sync.RWMutex
	ctors map[string]Constructor
}

//NewRegistry returns a registry with all the known genres.
func NewRegistry() *Registry {
	R := &Registry{ctors: make(map[string]Constructor)}
	integer := Constructor{Type: "IntegerArray", New: NewIntegerArray}
	float := Constructor{Type: "FloatArray", New: NewFloatArray}
	info := Constructor{Type: "InfoArray", New: NewInfoArray}
	boolean := Constructor{Type: "BooleanArray", New: NewBooleanArray}
	energies := Constructor{Type: "Energies", New: NewEnergies}
	bands := Constructor{Type: "Bands", New: NewBands}
	vibdata := Constructor{Type: "VibrationalData", New: NewVibrationalData, Requires: requires("freq")}
	scatdata := Constructor{Type: "ScatteringData", New: NewScatteringData, Requires: requires("freq")}
	eldata := Constructor{Type: "ElectronicData", New: NewElectronicData, Requires: requires("wavelen")}
	vibact := Constructor{Type: "VibrationalActivities", New: NewVibrationalActivities, Requires: requires("freq")}
	scatact := Constructor{Type: "ScatteringActivities", New: NewScatteringActivities, Requires: requires("freq")}
	elact := Constructor{Type: "ElectronicActivities", New: NewElectronicActivities, Requires: requires("wavelen")}
	geom := Constructor{Type: "Geometry", New: NewGeometry, Requires: func(g string) []string { return []string{AtomsGenre(g)} }}
	R.Register(Constructor{Type: "FilenamesArray", New: NewFilenamesArray}, "filenames")
	R.Register(integer, "charge", "multiplicity")
	R.Register(float, "zpecorr", "tencorr", "entcorr", "gibcorr")
	R.Register(info, "command", "stoichiometry", "version")
	R.Register(boolean, "normal_termination", "optimization_completed")
	R.Register(energies, "zpe", "ten", "ent", "gib", "scf")
	R.Register(bands, "freq", "wavelen", "ex_en")
	R.Register(vibdata, "mass", "frc", "emang")
	R.Register(scatdata, "depolarp", "depolaru", "depp", "depu", "alpha2", "beta2", "alphag", "gamma2", "delta2", "cid1", "cid2", "cid3", "rc180")
	R.Register(eldata, "eemang")
	R.Register(vibact, "iri", "dip", "rot")
	R.Register(scatact, "ramanactiv", "ramact", "raman1", "roa1", "raman2", "roa2", "raman3", "roa3")
	R.Register(elact, "vrot", "lrot", "vosc", "losc", "vdip", "ldip")
	R.Register(Constructor{Type: "Transitions", New: NewTransitions}, "transitions")
	R.Register(geom, "last_read_geom", "input_geom", "optimized_geom")
	return R
}

//Register sets c as the constructor for the given genres, replacing
//any previous one. It is safe to use while arrays are being built.
func (R *Registry) Register(c Constructor, genres ...string) {
	R.mu.Lock()
	defer R.mu.Unlock()
	for _, g := range genres {
		R.ctors[g] = c
	}
}

//Lookup returns the constructor for genre.
func (R *Registry) Lookup(genre string) (Constructor, error) {
	R.mu.RLock()
	defer R.mu.RUnlock()
	c, ok := R.ctors[genre]
	if !ok {
		return Constructor{}, errs.New(errs.ErrUnknownGenre, "unknown genre %q", genre)
	}
	return c, nil
}

//Genres returns the registered genres, sorted.
func (R *Registry) Genres() []string {
	R.mu.RLock()
	defer R.mu.RUnlock()
	ret := make([]string, 0, len(R.ctors))
	for g := range R.ctors {
		ret = append(ret, g)
	}
	sort.Strings(ret)
	return ret
}

//Build returns the array for genre, built from the sources that have it, in order.
//The values are copied, so the array never shares memory with the records.
//If no source has the genre, an empty array of the right type is returned.
//Every selected source must have the genres required by the constructor, or
//an ErrMissingGenre error is returned.
func (R *Registry) Build(genre string, sources []Source, opts ...Option) (Array, error) {
	errid := "Registry/Build"
	c, err := R.Lookup(genre)
	if err != nil {
		return nil, errs.Decorate(err, errid)
	}
	set := DefaultSettings()
	for _, o := range opts {
		o(&set)
	}
	in := Input{Genre: genre, Settings: set, Aux: make(map[string][]fields.Value)}
	var req []string
	if c.Requires != nil {
		req = c.Requires(genre)
	}
	for _, s := range sources {
		v, ok := s.Record[genre]
		if genre == "filenames" {
			v, ok = fields.S(s.Name), true
		}
		if !ok {
			continue
		}
		for _, r := range req {
			a, ok := s.Record[r]
			if !ok {
				return nil, errs.New(errs.ErrMissingGenre, "%s: %s genre is needed to build %s (%s) but is missing for %s", errid, r, genre, c.Type, s.Name)
			}
			in.Aux[r] = append(in.Aux[r], a.Clone())
		}
		in.Filenames = append(in.Filenames, s.Name)
		in.Values = append(in.Values, v.Clone())
	}
	if len(in.Filenames) == 0 {
		logger.Debug("no conformer has the genre, building an empty array", "genre", genre, "type", c.Type)
	}
	ret, err := c.New(in)
	if err != nil {
		return nil, errs.Decorate(err, errid)
	}
	return ret, nil
}

var (
	defaultMu       sync.Mutex
	defaultRegistry *Registry
)

//Default returns the process-wide registry, creating it if needed.
func Default() *Registry {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultRegistry == nil {
		defaultRegistry = NewRegistry()
	}
	return defaultRegistry
}

//ResetDefault discards the process-wide registry, so the next call to
//Default builds a new one. Genres registered with Register are lost.
func ResetDefault() {
	defaultMu.Lock()
	defaultRegistry = nil
	defaultMu.Unlock()
}
