/*
 * parameters.go, part of goconformers.
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

package config

import (
	"bufio"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/rmera/goconformers/errs"
	"github.com/rmera/goconformers/spectral"
)

//aliases maps the names accepted in parameters files to the parameter they set.
var aliases = map[string]string{
	"half width of band in half height": "width",
	"hwhm":                              "width",
	"width":                             "width",
	"start range":                       "start",
	"start":                             "start",
	"stop range":                        "stop",
	"stop":                              "stop",
	"step":                              "step",
	"fitting function":                  "fitting",
	"fitting":                           "fitting",
}

//a number, possibly followed by its units.
var leadingNumber = regexp.MustCompile(`^[-+]?(\d+\.?\d*|\.\d+)([eE][-+]?\d+)?`)

//ParseParameters reads a parameters file: "name = value" (or "name: value")
//lines, with an optional section header. Values may be followed by units,
//which are ignored. Names are not case sensitive, and some longer forms are
//accepted ("hwhm", "start range", "fitting function"...). Parameters not in
//the file keep the value they have in base. Unknown names are logged and ignored.
func ParseParameters(r io.Reader, base spectral.Parameters) (spectral.Parameters, error) {
	errid := "config/ParseParameters"
	scan := bufio.NewScanner(r)
	sections := 0
	for lineno := 1; scan.Scan(); lineno++ {
		line := strings.TrimSpace(scan.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			if sections++; sections > 1 {
				return base, errs.New(errs.ErrValue, "%s: line %d: multiple sections are not supported", errid, lineno)
			}
			continue
		}
		i := strings.IndexAny(line, "=:")
		if i < 0 {
			return base, errs.New(errs.ErrValue, "%s: line %d: expected 'name = value', got %q", errid, lineno, line)
		}
		key := strings.ToLower(strings.Join(strings.Fields(line[:i]), " "))
		val := strings.TrimSpace(line[i+1:])
		name, ok := aliases[key]
		if !ok {
			logger.Warn("unknown parameter ignored", "name", key, "line", lineno)
			continue
		}
		if name == "fitting" {
			base.Fitting = strings.ToLower(val)
			continue
		}
		num := leadingNumber.FindString(val)
		f, err := strconv.ParseFloat(num, 64)
		if err != nil {
			return base, errs.New(errs.ErrValue, "%s: line %d: %s is not a number: %q", errid, lineno, name, val)
		}
		switch name {
		case "width":
			base.Width = f
		case "start":
			base.Start = f
		case "stop":
			base.Stop = f
		case "step":
			base.Step = f
		}
	}
	if err := scan.Err(); err != nil {
		return base, errs.Decorate(err, errid)
	}
	return base, nil
}
