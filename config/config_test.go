/*
 * config_test.go, part of goconformers.
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
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	conformers "github.com/rmera/goconformers"
	"github.com/rmera/goconformers/errs"
	"github.com/rmera/goconformers/spectral"
)

const settingsTOML = `
allow_data_inconsistency = true
temperature = 310.0
workers = 2
charset = "latin1"

[spectra.ir]
width = 4.5
fitting = "gaussian"

[spectra.ecd]
stop = 600
`

func TestDecode(Te *testing.T) {
	S, err := Decode(strings.NewReader(settingsTOML))
	require.NoError(Te, err)
	assert.True(Te, S.AllowDataInconsistency)
	assert.Equal(Te, 310.0, S.Temperature)
	assert.Equal(Te, 2, S.Workers)
	assert.Equal(Te, "gaussian", S.Parser)
	assert.Equal(Te, "latin1", S.Charset)
	assert.Equal(Te, spectral.Parameters{Width: 4.5, Start: 800, Stop: 2900, Step: 2, Fitting: "gaussian"}, S.Spectra["ir"])
	assert.Equal(Te, spectral.Parameters{Width: 0.35, Start: 150, Stop: 600, Step: 1, Fitting: "gaussian"}, S.Spectra["ecd"])
	assert.Equal(Te, spectral.StandardParameters()["vcd"], S.Spectra["vcd"])
	assert.Len(Te, S.Spectra, 6)
}

func TestDecodeErrors(Te *testing.T) {
	_, err := Decode(strings.NewReader("temperature = -3.0\n"))
	assert.True(Te, errors.Is(err, errs.ErrValue), "got %v", err)
	_, err = Decode(strings.NewReader("[spectra.ir]\nwidth = 0\n"))
	assert.True(Te, errors.Is(err, errs.ErrValue), "got %v", err)
	_, err = Decode(strings.NewReader("[spectra.nmr]\nwidth = 1\n"))
	assert.True(Te, errors.Is(err, errs.ErrKey), "got %v", err)
	_, err = Decode(strings.NewReader("colour = \"blue\"\n"))
	assert.Error(Te, err)
	_, err = Decode(strings.NewReader("workers = \n"))
	assert.Error(Te, err)
	fmt.Println(err)
}

func TestLoad(Te *testing.T) {
	dir := Te.TempDir()
	S, exists, err := Load(filepath.Join(dir, "absent.toml"))
	require.NoError(Te, err)
	assert.False(Te, exists)
	assert.Equal(Te, Default(), S)

	path := filepath.Join(dir, "goconformers.toml")
	require.NoError(Te, os.WriteFile(path, []byte(settingsTOML), 0o644))
	S, exists, err = Load(path)
	require.NoError(Te, err)
	assert.True(Te, exists)
	assert.Equal(Te, 310.0, S.Temperature)

	require.NoError(Te, os.WriteFile(path, []byte("temperature = 0.0\n"), 0o644))
	_, exists, err = Load(path)
	assert.True(Te, exists)
	assert.True(Te, errors.Is(err, errs.ErrValue), "got %v", err)
}

func TestEncodeRoundTrip(Te *testing.T) {
	S, err := Decode(strings.NewReader(settingsTOML))
	require.NoError(Te, err)
	var buf bytes.Buffer
	require.NoError(Te, S.Encode(&buf))
	fmt.Println(buf.String())
	back, err := Decode(&buf)
	require.NoError(Te, err)
	assert.Equal(Te, S, back)
}

func TestSettingsWiring(Te *testing.T) {
	S := Default()
	S.Temperature = 250
	S.AllowDataInconsistency = true
	C := conformers.New(S.Options()...)
	assert.Equal(Te, 250.0, C.Temperature)
	assert.True(Te, C.AllowDataInconsistency)

	S.Workers = 3
	b, err := S.Batch()
	require.NoError(Te, err)
	assert.Equal(Te, 3, b.Workers)
	assert.Empty(Te, b.Options)
	S.Charset = "latin1"
	b, err = S.Batch()
	require.NoError(Te, err)
	assert.Len(Te, b.Options, 1)

	S.Parser = "nwchem"
	_, err = S.Batch()
	assert.True(Te, errors.Is(err, errs.ErrKey), "got %v", err)
}

const parametersFile = `[PARAMETERS]
# band shape
HWHM = 5 cm-1
start range: 1000 cm-1
Stop  Range = 2000.5cm-1
step = 1
fitting function = Gaussian
colour = blue
`

func TestParseParameters(Te *testing.T) {
	base := spectral.StandardParameters()["ir"]
	P, err := ParseParameters(strings.NewReader(parametersFile), base)
	require.NoError(Te, err)
	assert.Equal(Te, spectral.Parameters{Width: 5, Start: 1000, Stop: 2000.5, Step: 1, Fitting: "gaussian"}, P)
	assert.NoError(Te, P.Validate())

	P, err = ParseParameters(strings.NewReader("half width of band in half height = 0.2 eV\n"), spectral.StandardParameters()["uv"])
	require.NoError(Te, err)
	assert.Equal(Te, 0.2, P.Width)
	assert.Equal(Te, 150.0, P.Start)

	_, err = ParseParameters(strings.NewReader("[A]\nwidth = 1\n[B]\nwidth = 2\n"), base)
	assert.True(Te, errors.Is(err, errs.ErrValue), "got %v", err)
	_, err = ParseParameters(strings.NewReader("width = wide\n"), base)
	assert.True(Te, errors.Is(err, errs.ErrValue), "got %v", err)
	_, err = ParseParameters(strings.NewReader("just a line\n"), base)
	assert.True(Te, errors.Is(err, errs.ErrValue), "got %v", err)
}
