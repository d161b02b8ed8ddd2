/*
 * reader.go, part of goconformers.
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
	"bufio"
	"bytes"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"golang.org/x/text/encoding/htmlindex"

	"github.com/rmera/goconformers/errs"
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
	lz4Magic  = []byte{0x04, 0x22, 0x4d, 0x18}
)

//zstd.Decoder's Close doesn't return an error, so it is not an io.ReadCloser.
type zstdCloser struct {
	*zstd.Decoder
}

func (z zstdCloser) Close() error {
	z.Decoder.Close()
	return nil
}

type openSettings struct {
	charset string
}

//OpenOption modifies how a file is opened.
type OpenOption func(*openSettings)

//WithCharset decodes the file from the given encoding (any name known by the WHATWG
//Encoding Standard, like "windows-1252" or "latin1") into UTF-8.
func WithCharset(name string) OpenOption {
	return func(o *openSettings) { o.charset = name }
}

//File is an opened output file, decompressed and decoded as needed.
type File struct {
	Name string
	io.Reader
	closers []io.Closer
}

//Close closes the file and its decompressor, if any.
func (F *File) Close() error {
	var first error
	for i := len(F.closers) - 1; i >= 0; i-- {
		if err := F.closers[i].Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

//Lines returns the lines of the file.
func (F *File) Lines() LineSource { return Lines(F.Reader) }

//Decompress returns a reader that transparently decompresses gzip, zstd and lz4
//streams, recognized by their magic numbers. Other input is returned as it is.
//The returned closer, if not nil, must be closed after use.
func Decompress(r io.Reader) (io.Reader, io.Closer, error) {
	br := bufio.NewReader(r)
	head, _ := br.Peek(4)
	switch {
	case bytes.HasPrefix(head, gzipMagic):
		g, err := gzip.NewReader(br)
		if err != nil {
			return nil, nil, errs.New(errs.ErrValue, "Decompress: can't read gzip header: %v", err)
		}
		return g, g, nil
	case bytes.HasPrefix(head, zstdMagic):
		z, err := zstd.NewReader(br)
		if err != nil {
			return nil, nil, errs.New(errs.ErrValue, "Decompress: can't read zstd stream: %v", err)
		}
		return z, zstdCloser{z}, nil
	case bytes.HasPrefix(head, lz4Magic):
		return lz4.NewReader(br), nil, nil
	}
	return br, nil, nil
}

//Open opens the named file for extraction.
func Open(name string, opts ...OpenOption) (*File, error) {
	errid := "extraction/Open"
	var set openSettings
	for _, o := range opts {
		o(&set)
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, errs.Decorate(err, errid)
	}
	F := &File{Name: name, closers: []io.Closer{f}}
	r, c, err := Decompress(f)
	if err != nil {
		f.Close()
		return nil, errs.Decorate(err, errid+": "+name)
	}
	if c != nil {
		F.closers = append(F.closers, c)
	}
	if set.charset != "" {
		enc, err := htmlindex.Get(set.charset)
		if err != nil {
			F.Close()
			return nil, errs.New(errs.ErrValue, "%s: unknown charset %q: %v", errid, set.charset, err)
		}
		r = enc.NewDecoder().Reader(r)
	}
	F.Reader = r
	return F, nil
}
