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
package extraction

import (
	"sort"
	"sync"

	"github.com/rmera/goconformers/errs"
	"github.com/rmera/goconformers/fields"
)

//Parser extracts the data of one conformer from lines of text.
type Parser interface {
	Parse(src LineSource) (fields.Record, error)
}

//Factory returns a new Parser. Parsers are not safe for concurrent use, so
//each goroutine needs its own.
type Factory func() Parser

//Registry maps the kind of file a parser handles (its purpose, e.g. "gaussian")
//to the parser.
type Registry struct {
	mu      sync.RWMutex
	parsers map[string]Factory
}

//NewRegistry returns a registry with the parsers of this package.
func NewRegistry() *Registry {
	R := &Registry{parsers: make(map[string]Factory)}
	R.Register("gaussian", func() Parser { return NewGaussian() })
	return R
}

//Register sets f as the parser for purpose, replacing any previous one.
func (R *Registry) Register(purpose string, f Factory) {
	R.mu.Lock()
	R.parsers[purpose] = f
	R.mu.Unlock()
}

//Unregister removes the parser for purpose. It returns ErrKey if there is none.
func (R *Registry) Unregister(purpose string) error {
	R.mu.Lock()
	defer R.mu.Unlock()
	if _, ok := R.parsers[purpose]; !ok {
		return errs.New(errs.ErrKey, "Registry/Unregister: no parser registered for %q", purpose)
	}
	delete(R.parsers, purpose)
	return nil
}

//Lookup returns the parser factory registered for purpose.
func (R *Registry) Lookup(purpose string) (Factory, error) {
	R.mu.RLock()
	defer R.mu.RUnlock()
	f, ok := R.parsers[purpose]
	if !ok {
		return nil, errs.New(errs.ErrKey, "Registry/Lookup: no parser registered for %q", purpose)
	}
	return f, nil
}

//Purposes returns the registered purposes, sorted.
func (R *Registry) Purposes() []string {
	R.mu.RLock()
	defer R.mu.RUnlock()
	ret := make([]string, 0, len(R.parsers))
	for p := range R.parsers {
		ret = append(ret, p)
	}
	sort.Strings(ret)
	return ret
}

var (
	defaultMu       sync.Mutex
	defaultRegistry *Registry
)

//Default returns the process-wide parser registry, creating it if needed.
func Default() *Registry {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultRegistry == nil {
		defaultRegistry = NewRegistry()
	}
	return defaultRegistry
}

//ResetDefault discards the process-wide registry.
func ResetDefault() {
	defaultMu.Lock()
	defaultRegistry = nil
	defaultMu.Unlock()
}
