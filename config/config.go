/*
 * config.go, part of goconformers.
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

//Package config reads the settings of a goconformers run from TOML files,
//and the older free-form spectra parameters files.
package config

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"maps"
	"os"
	"slices"

	"github.com/pelletier/go-toml/v2"

	conformers "github.com/rmera/goconformers"
	"github.com/rmera/goconformers/errs"
	"github.com/rmera/goconformers/extraction"
	"github.com/rmera/goconformers/spectral"
)

var logger = slog.Default()

//SetLogger sets the logger used to report ignored settings.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.Default()
	}
	logger = l
}

//Settings for a run. The zero value is not useful, start from Default.
type Settings struct {
	AllowDataInconsistency bool                           `toml:"allow_data_inconsistency"`
	Temperature            float64                        `toml:"temperature"` //K
	Workers                int                            `toml:"workers"`     //files read concurrently. All CPUs if < 1
	Parser                 string                         `toml:"parser"`      //purpose of the output parser
	Charset                string                         `toml:"charset"`     //encoding of the output files, UTF-8 if empty
	Spectra                map[string]spectral.Parameters `toml:"spectra"`
}

//partial is a spectra table as found in a file, where any value may be missing.
type partial struct {
	Width   *float64 `toml:"width"`
	Start   *float64 `toml:"start"`
	Stop    *float64 `toml:"stop"`
	Step    *float64 `toml:"step"`
	Fitting *string  `toml:"fitting"`
}

func (p partial) over(P spectral.Parameters) spectral.Parameters {
	if p.Width != nil {
		P.Width = *p.Width
	}
	if p.Start != nil {
		P.Start = *p.Start
	}
	if p.Stop != nil {
		P.Stop = *p.Stop
	}
	if p.Step != nil {
		P.Step = *p.Step
	}
	if p.Fitting != nil {
		P.Fitting = *p.Fitting
	}
	return P
}

//file mirrors Settings, with the spectra tables left partial, so missing
//values keep their defaults.
type file struct {
	AllowDataInconsistency *bool              `toml:"allow_data_inconsistency"`
	Temperature            *float64           `toml:"temperature"`
	Workers                *int               `toml:"workers"`
	Parser                 *string            `toml:"parser"`
	Charset                *string            `toml:"charset"`
	Spectra                map[string]partial `toml:"spectra"`
}

//Default returns the settings used when nothing else is given.
func Default() *Settings {
	return &Settings{
		Temperature: spectral.Temperature,
		Parser:      "gaussian",
		Spectra:     spectral.StandardParameters(),
	}
}

//Decode reads TOML settings from r, over the defaults, and validates them.
//Unknown keys are an error.
func Decode(r io.Reader) (*Settings, error) {
	errid := "config/Decode"
	var f file
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, errs.New(errs.ErrKey, "%s: %s", errid, strict.String())
		}
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, errs.New(errs.ErrValue, "%s: line %d, column %d: %v", errid, row, col, derr)
		}
		return nil, errs.Decorate(err, errid)
	}
	S := Default()
	if f.AllowDataInconsistency != nil {
		S.AllowDataInconsistency = *f.AllowDataInconsistency
	}
	if f.Temperature != nil {
		S.Temperature = *f.Temperature
	}
	if f.Workers != nil {
		S.Workers = *f.Workers
	}
	if f.Parser != nil {
		S.Parser = *f.Parser
	}
	if f.Charset != nil {
		S.Charset = *f.Charset
	}
	for name, p := range f.Spectra {
		base, ok := S.Spectra[name]
		if !ok {
			return nil, errs.New(errs.ErrKey, "%s: unknown spectra type %q", errid, name)
		}
		S.Spectra[name] = p.over(base)
	}
	if err := S.Validate(); err != nil {
		return nil, errs.Decorate(err, errid)
	}
	return S, nil
}

//Load reads the settings in the TOML file path. If the file doesn't exist,
//the defaults are returned, and exists is false.
func Load(path string) (S *Settings, exists bool, err error) {
	fin, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Debug("no settings file, using defaults", "path", path)
		return Default(), false, nil
	}
	if err != nil {
		return nil, false, errs.Decorate(err, "config/Load")
	}
	defer fin.Close()
	S, err = Decode(fin)
	if err != nil {
		return nil, true, errs.Decorate(err, "config/Load: "+path)
	}
	return S, true, nil
}

//Encode writes the settings to w as TOML.
func (S *Settings) Encode(w io.Writer) error {
	enc := toml.NewEncoder(w)
	enc.SetIndentTables(true)
	if err := enc.Encode(S); err != nil {
		return errs.Decorate(err, "Settings/Encode")
	}
	return nil
}

//Validate checks that the settings can be used.
func (S *Settings) Validate() error {
	errid := "Settings/Validate"
	if S.Temperature <= 0 {
		return errs.New(errs.ErrValue, "%s: temperature must be positive, %g given", errid, S.Temperature)
	}
	if S.Parser == "" {
		return errs.New(errs.ErrValue, "%s: no parser given", errid)
	}
	for _, name := range slices.Sorted(maps.Keys(S.Spectra)) {
		if err := S.Spectra[name].Validate(); err != nil {
			return errs.Decorate(err, errid+": spectra "+name)
		}
	}
	return nil
}

//Options returns the options that set up a conformers collection with S.
func (S *Settings) Options() []conformers.Option {
	return []conformers.Option{
		conformers.WithDataInconsistency(S.AllowDataInconsistency),
		conformers.WithTemperature(S.Temperature),
	}
}

//Batch returns a Batch that reads files as given by S.
func (S *Settings) Batch() (*extraction.Batch, error) {
	var opts []extraction.OpenOption
	if S.Charset != "" {
		opts = append(opts, extraction.WithCharset(S.Charset))
	}
	b, err := extraction.NewBatch(S.Parser, S.Workers, opts...)
	if err != nil {
		return nil, errs.Decorate(err, "Settings/Batch")
	}
	return b, nil
}
