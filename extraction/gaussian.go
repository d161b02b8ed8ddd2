/*
 * gaussian.go, part of goconformers.
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
	"regexp"
	"strconv"
	"strings"

	"github.com/rmera/goconformers/errs"
	"github.com/rmera/goconformers/fields"
)

const (
	numberGroup = `\s*(-?\d+\.?\d*)`
	number      = `\s*-?\d+\.?\d*`
)

var (
	scfRe      = regexp.MustCompile(`SCF Done.*?=` + numberGroup)
	stoichRe   = regexp.MustCompile(`^ Stoichiometry\s*(\w*(?:\(\d+[+-]?,?\d*\))?)\s*$`)
	geomLineRe = regexp.MustCompile(`^\s*(\d+)\s+(\d+)\s+(\d+)` + strings.Repeat(numberGroup, 3))
	//blocks with less than three modes have less than three values
	vibrationalRe = regexp.MustCompile(`^\s\s?([a-zA-Z.\-]+[0-9]*(?:\s?[a-zA-Z.()]+)?)\s*(?:(?:Fr= \d+)?--)` +
		numberGroup + `(?:` + numberGroup + `)?(?:` + numberGroup + `)?`)
	excitedRe     = regexp.MustCompile(`^ Excited State\s+\d+:[a-zA-Z\-\s'"]*(-?\d+\.?\d*) eV\s+(-?\d+\.?\d*) nm`)
	transitionsRe = regexp.MustCompile(`(\d+)\s*->\s*(\d+)\s+(-?\d+\.\d+)`)
	numbersRe     = regexp.MustCompile(strings.Repeat(number, 4) + numberGroup + `\s*(-?\d+\.?\d*)?\s*$`)
	chargeRe      = regexp.MustCompile(`^ Charge =\s*(-?\d+) Multiplicity = (\d+)`)
	zmatRe        = regexp.MustCompile(`^(\w+)` + strings.Repeat(numberGroup, 3))
	numberRe      = regexp.MustCompile(`-?\d+\.?\d*`)
)

var vibrationalGenres = map[string]string{
	"Frequencies": "freq",
	"Red. masses": "mass",
	"Frc consts":  "frc",
	"IR Inten":    "iri",
	"Dip. str.":   "dip",
	"Rot. str.":   "rot",
	"E-M angle":   "emang",
	"Depolar (P)": "depolarp",
	"Depolar (U)": "depolaru",
	"RamAct":      "ramact",
	"Raman Activ": "ramanactiv",
	"Dep-P":       "depp",
	"Dep-U":       "depu",
	"Alpha2":      "alpha2",
	"Beta2":       "beta2",
	"AlphaG":      "alphag",
	"Gamma2":      "gamma2",
	"Delta2":      "delta2",
	"Raman1":      "raman1",
	"ROA1":        "roa1",
	"CID1":        "cid1",
	"Raman2":      "raman2",
	"ROA2":        "roa2",
	"CID2":        "cid2",
	"Raman3":      "raman3",
	"ROA3":        "roa3",
	"CID3":        "cid3",
	"RC180":       "rc180",
}

var thermochemistry = []string{"zpecorr", "tencorr", "entcorr", "gibcorr", "zpe", "ten", "ent", "gib"}

func parseFloats(s ...string) ([]float64, error) {
	ret := make([]float64, 0, len(s))
	for _, v := range s {
		if v == "" {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, errs.New(errs.ErrValue, "can't read number %q: %v", v, err)
		}
		ret = append(ret, f)
	}
	return ret, nil
}

//Gaussian extracts data from the human-readable output (.log and .out files) of
//the Gaussian program: the parameters of the calculation, energies, geometries,
//optimization status, and the vibrational and electronic properties.
//
//Genres found: normal_termination, version, command, charge, multiplicity,
//input_atoms, input_geom, stoichiometry, scf, last_read_atoms, last_read_geom,
//optimization_completed, optimized_atoms, optimized_geom, the thermochemistry
//genres (zpecorr, tencorr, entcorr, gibcorr, zpe, ten, ent, gib), the vibrational
//genres (freq, mass, frc, iri, dip, rot, emang and the Raman and ROA genres) and
//the electronic genres (ex_en, wavelen, vdip, ldip, vosc, losc, vrot, lrot, eemang,
//transitions).
type Gaussian struct {
	*Machine
}

func must(err error) {
	if err != nil {
		panic(err.Error())
	}
}

//NewGaussian returns a parser for Gaussian output files.
func NewGaussian() *Gaussian {
	G := &Gaussian{Machine: NewMachine()}
	must(G.Add(Initial, G.header, ""))
	must(G.Add("wait", G.wait, ""))
	must(G.Add("excited", G.excited, ` Excited states from`))
	must(G.Add("frequencies", G.frequencies, ` Harmonic frequencies`))
	must(G.Add("geometry", G.geometry, `\s+Standard orientation`))
	must(G.Add("optimization", G.optimization, ` Search for a local minimum\.`))
	return G
}

//Parse extracts the data in src. If the input ends while a job is still being
//read, the data found is returned with normal_termination set to false.
func (G *Gaussian) Parse(src LineSource) (fields.Record, error) {
	rec, err := G.Machine.Parse(src)
	if err != nil && IsPrematureEnd(err) {
		logger.Info("unexpected end of input, the job didn't finish or the content may be corrupted", "genres", len(rec))
		rec["normal_termination"] = fields.B(false)
		return rec, nil
	}
	return rec, err
}

//header reads the beginning of the file: version, command, charge, multiplicity
//and input geometry.
func (G *Gaussian) header(line string) (fields.Record, error) {
	rec := fields.Record{"normal_termination": fields.B(false)}
	var err error
	for line != " Cite this work as:" {
		if line, err = G.Next(); err != nil {
			return rec, err
		}
	}
	if line, err = G.Next(); err != nil {
		return rec, err
	}
	rec["version"] = fields.S(strings.Trim(line, " ,"))
	for !strings.HasPrefix(line, " #") {
		if line, err = G.Next(); err != nil {
			return rec, err
		}
	}
	var command []string
	for !strings.HasPrefix(line, " --") {
		command = append(command, strings.Trim(line, "# "))
		if line, err = G.Next(); err != nil {
			return rec, err
		}
	}
	cmd := strings.Join(command, " ")
	rec["command"] = fields.S(cmd)
	if strings.Contains(cmd, "opt") {
		rec["optimization_completed"] = fields.B(false)
	}
	for line != " Symbolic Z-matrix:" {
		if line, err = G.Next(); err != nil {
			return rec, err
		}
	}
	if line, err = G.Next(); err != nil {
		return rec, err
	}
	cm := chargeRe.FindStringSubmatch(line)
	if cm == nil {
		return rec, errs.New(errs.ErrValue, "Gaussian: can't read charge and multiplicity from %q", line)
	}
	charge, _ := strconv.Atoi(cm[1])
	mult, _ := strconv.Atoi(cm[2])
	rec["charge"], rec["multiplicity"] = fields.I(charge), fields.I(mult)
	var atoms []string
	var geom [][]float64
	for {
		if line, err = G.Next(); err != nil {
			return rec, err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			break
		}
		m := zmatRe.FindStringSubmatch(line)
		if m == nil {
			return rec, errs.New(errs.ErrValue, "Gaussian: can't read input geometry line %q", line)
		}
		c, err := parseFloats(m[2:]...)
		if err != nil {
			return rec, err
		}
		atoms = append(atoms, m[1])
		geom = append(geom, c)
	}
	rec["input_atoms"], rec["input_geom"] = fields.Strs(atoms...), fields.Rows(geom)
	return rec, G.Switch("wait")
}

//wait looks for the triggers of other states, and reads the
//single-line genres.
func (G *Gaussian) wait(line string) (fields.Record, error) {
	if G.Trigger(line) {
		return nil, nil
	}
	switch {
	case strings.Contains(line, "Error termination"):
		return fields.Record{"normal_termination": fields.B(false)}, nil
	case strings.Contains(line, "Normal termination"):
		return fields.Record{"normal_termination": fields.B(true)}, nil
	case strings.HasPrefix(line, " SCF Done:"):
		return scf(line)
	case strings.HasPrefix(line, " Stoichiometry"):
		return stoichiometry(line), nil
	case strings.Contains(line, "Proceeding to internal job step number"):
		return fields.Record{"normal_termination": fields.B(false)}, nil
	}
	return nil, nil
}

func scf(line string) (fields.Record, error) {
	m := scfRe.FindStringSubmatch(line)
	if m == nil {
		return nil, nil
	}
	f, err := parseFloats(m[1])
	if err != nil {
		return nil, err
	}
	return fields.Record{"scf": fields.F(f[0])}, nil
}

func stoichiometry(line string) fields.Record {
	m := stoichRe.FindStringSubmatch(line)
	if m == nil {
		return nil
	}
	return fields.Record{"stoichiometry": fields.S(m[1])}
}

//readGeometry reads a standard orientation table, starting at any line before it.
func (G *Gaussian) readGeometry(line string) (fields.Record, error) {
	var err error
	m := geomLineRe.FindStringSubmatch(line)
	for m == nil {
		if line, err = G.Next(); err != nil {
			return nil, err
		}
		m = geomLineRe.FindStringSubmatch(line)
	}
	var atoms []int
	var geom [][]float64
	for m != nil {
		a, _ := strconv.Atoi(m[2])
		c, err := parseFloats(m[4:]...)
		if err != nil {
			return nil, err
		}
		atoms = append(atoms, a)
		geom = append(geom, c)
		if line, err = G.Next(); err != nil {
			return nil, err
		}
		m = geomLineRe.FindStringSubmatch(line)
	}
	return fields.Record{"last_read_atoms": fields.Ints(atoms...), "last_read_geom": fields.Rows(geom)}, nil
}

func (G *Gaussian) geometry(line string) (fields.Record, error) {
	rec, err := G.readGeometry(line)
	if err != nil {
		return rec, err
	}
	return rec, G.Switch("wait")
}

//optimization follows an optimization job, until it ends.
func (G *Gaussian) optimization(line string) (fields.Record, error) {
	var rec fields.Record
	var err error
	switch {
	case G.Matches("geometry", line):
		return G.readGeometry(line)
	case strings.HasPrefix(line, " Stoichiometry"):
		rec = stoichiometry(line)
	case strings.HasPrefix(line, " SCF Done:"):
		rec, err = scf(line)
	case strings.HasPrefix(line, " Optimization completed."):
		rec = fields.Record{"optimization_completed": fields.B(true)}
		_, done := G.Get("optimized_geom")
		geom, ok := G.Get("last_read_geom")
		if !done && ok {
			at, _ := G.Get("last_read_atoms")
			rec["optimized_geom"] = geom.Clone()
			rec["optimized_atoms"] = at.Clone()
		}
	case strings.HasPrefix(line, " Optimization stopped."):
		rec = fields.Record{"optimization_completed": fields.B(false)}
	case strings.HasPrefix(line, " Error termination"):
		rec = fields.Record{"normal_termination": fields.B(false)}
	}
	if strings.HasPrefix(line, " Error termination") || strings.HasPrefix(line, " Job cpu time") {
		err = G.Switch("wait")
	}
	return rec, err
}

//frequencies reads the vibrational analysis and the thermochemistry that follows it.
func (G *Gaussian) frequencies(line string) (fields.Record, error) {
	rec := make(fields.Record)
	vib := make(map[string][]float64)
	flush := func() {
		for g, v := range vib {
			rec[g] = fields.Fs(v...)
		}
	}
	var err error
	for strings.TrimSpace(line) != "" {
		if m := vibrationalRe.FindStringSubmatch(line); m != nil {
			if genre, ok := vibrationalGenres[m[1]]; ok {
				v, err := parseFloats(m[2:]...)
				if err != nil {
					return nil, err
				}
				vib[genre] = append(vib[genre], v...)
			}
		}
		if line, err = G.Next(); err != nil {
			flush()
			return rec, err
		}
	}
	flush()
	for !strings.HasPrefix(line, " Zero-point correction=") {
		if line, err = G.Next(); err != nil {
			return rec, err
		}
	}
	for i, genre := range thermochemistry {
		if i > 0 {
			if line, err = G.Next(); err != nil {
				return rec, err
			}
		}
		v, err := parseFloats(numberRe.FindString(line))
		if err != nil || len(v) == 0 {
			return rec, errs.New(errs.ErrValue, "Gaussian: can't read %s from %q", genre, line)
		}
		rec[genre] = fields.F(v[0])
	}
	return rec, G.Switch("wait")
}

var electronicBlocks = []struct {
	genres [2]string
	header string
}{
	{[2]string{"ldip", "losc"}, "electric dipole"},
	{[2]string{"vdip", "vosc"}, "velocity dipole"},
	{[2]string{"vrot", "eemang"}, "Rotatory Strengths"},
	{[2]string{"lrot", ""}, "Rotatory Strengths"},
}

//excited reads the results of an excited states calculation.
func (G *Gaussian) excited(line string) (fields.Record, error) {
	rec := make(fields.Record)
	var err error
	for _, b := range electronicBlocks {
		for !strings.Contains(line, b.header) {
			if line, err = G.Next(); err != nil {
				return rec, err
			}
		}
		//column names
		if _, err = G.Next(); err != nil {
			return rec, err
		}
		if line, err = G.Next(); err != nil {
			return rec, err
		}
		var cols [2][]float64
		m := numbersRe.FindStringSubmatch(line)
		for m != nil {
			for j := range cols {
				if m[j+1] == "" {
					continue
				}
				v, err := parseFloats(m[j+1])
				if err != nil {
					return rec, err
				}
				cols[j] = append(cols[j], v[0])
			}
			if line, err = G.Next(); err != nil {
				return rec, err
			}
			m = numbersRe.FindStringSubmatch(line)
		}
		for j, g := range b.genres {
			if g != "" && len(cols[j]) > 0 {
				rec[g] = fields.Fs(cols[j]...)
			}
		}
	}
	var wavelen, energies []float64
	var transitions []fields.Value
states:
	for !strings.HasPrefix(line, " **") {
		for !strings.HasPrefix(line, " Excited State") {
			if strings.HasPrefix(line, " **") {
				break states
			}
			if line, err = G.Next(); err != nil {
				return rec, err
			}
		}
		m := excitedRe.FindStringSubmatch(line)
		if m == nil {
			return rec, errs.New(errs.ErrValue, "Gaussian: can't read excited state from %q", line)
		}
		v, err := parseFloats(m[1], m[2])
		if err != nil {
			return rec, err
		}
		energies = append(energies, v[0])
		wavelen = append(wavelen, v[1])
		var trans []fields.Value
		for strings.TrimSpace(line) != "" {
			if line, err = G.Next(); err != nil {
				return rec, err
			}
			if t := transitionsRe.FindStringSubmatch(line); t != nil {
				low, _ := strconv.Atoi(t[1])
				high, _ := strconv.Atoi(t[2])
				coef, _ := strconv.ParseFloat(t[3], 64)
				trans = append(trans, fields.L(fields.I(low), fields.I(high), fields.F(coef)))
			}
		}
		transitions = append(transitions, fields.L(trans...))
		if line, err = G.Next(); err != nil {
			return rec, err
		}
	}
	rec["ex_en"] = fields.Fs(energies...)
	rec["wavelen"] = fields.Fs(wavelen...)
	rec["transitions"] = fields.L(transitions...)
	return rec, G.Switch("wait")
}
