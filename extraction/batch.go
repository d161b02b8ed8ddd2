/*
 * batch.go, part of goconformers.
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
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/rmera/goconformers/errs"
	"github.com/rmera/goconformers/fields"
)

//Result is the outcome of extracting data from one file.
type Result struct {
	Name   string
	Record fields.Record
	Err    error
}

//Batch extracts data from many files concurrently.
type Batch struct {
	Factory Factory
	Workers int          //at most this many files are read at the same time. runtime.NumCPU() if < 1
	Options []OpenOption //passed to Open for each file
}

//NewBatch returns a Batch using the parser registered for purpose in the
//default registry.
func NewBatch(purpose string, workers int, opts ...OpenOption) (*Batch, error) {
	f, err := Default().Lookup(purpose)
	if err != nil {
		return nil, errs.Decorate(err, "NewBatch")
	}
	return &Batch{Factory: f, Workers: workers, Options: opts}, nil
}

func (B *Batch) workers() int {
	if B.Workers < 1 {
		return runtime.NumCPU()
	}
	return B.Workers
}

//extract parses one file with a parser of its own.
func (B *Batch) extract(name string) Result {
	res := Result{Name: name}
	F, err := Open(name, B.Options...)
	if err != nil {
		res.Err = err
		return res
	}
	defer F.Close()
	res.Record, res.Err = B.Factory().Parse(F.Lines())
	if res.Err != nil {
		res.Err = errs.Decorate(res.Err, "Batch: "+name)
	}
	return res
}

//Run extracts data from the given files, and returns the results in the same
//order as names. A file that can't be read or parsed doesn't stop the others:
//its error is in its Result. Run only returns an error if ctx is cancelled, in
//which case the files not processed yet have ctx's error in their results.
func (B *Batch) Run(ctx context.Context, names []string) ([]Result, error) {
	if B.Factory == nil {
		return nil, errs.New(errs.ErrInvalidState, "Batch/Run: no parser factory set")
	}
	ret := make([]Result, len(names))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(B.workers())
	for i, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				ret[i] = Result{Name: name, Err: err}
				return err
			}
			ret[i] = B.extract(name)
			if ret[i].Err != nil {
				logger.Warn("skipping file", "file", name, "error", ret[i].Err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return ret, errs.Decorate(err, "Batch/Run")
	}
	return ret, nil
}
