/*
 * files.go, part of DeDNA.
 *
 * Copyright 2026 The DeDNA Authors
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

package scenejson

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"strings"

	dna "github.com/Eldergenix/DeDNA"
	"github.com/klauspost/compress/zstd"
)

//Compression returns the compression used for a file called name:
//"zstd", "gzip" or "" for none.
func Compression(name string) string {
	lname := strings.ToLower(name)
	switch {
	case strings.HasSuffix(lname, ".zst"):
		return "zstd"
	case strings.HasSuffix(lname, ".gz"):
		return "gzip"
	default:
		return ""
	}
}

//nopCloser lets an uncompressed stream be handled as a compressed one.
type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

//zstdReadCloser makes a zstd decoder an io.ReadCloser.
type zstdReadCloser struct {
	*zstd.Decoder
}

func (z zstdReadCloser) Close() error {
	z.Decoder.Close()
	return nil
}

//WriteFile writes s to a file called name, which will be created or overwritten.
//The compression is chosen from the extension, see Compression.
func WriteFile(name string, s *dna.Scene) error {
	f, err := os.Create(name)
	if err != nil {
		return &Error{err.Error(), name, []string{"WriteFile"}}
	}
	defer f.Close()
	buf := bufio.NewWriter(f)
	var w io.WriteCloser
	switch Compression(name) {
	case "zstd":
		w, err = zstd.NewWriter(buf, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	case "gzip":
		w, err = gzip.NewWriterLevel(buf, gzip.BestCompression)
	default:
		w = nopCloser{buf}
	}
	if err != nil {
		return &Error{"can't compress: " + err.Error(), name, []string{"WriteFile"}}
	}
	if err = Write(w, s); err != nil {
		return errDecorate(withFile(err, name), "WriteFile")
	}
	if err = w.Close(); err != nil {
		return &Error{err.Error(), name, []string{"WriteFile"}}
	}
	if err = buf.Flush(); err != nil {
		return &Error{err.Error(), name, []string{"WriteFile"}}
	}
	if err = f.Close(); err != nil {
		return &Error{err.Error(), name, []string{"WriteFile"}}
	}
	return nil
}

//ReadFile reads the snapshot in the file called name. The compression is
//chosen from the extension, see Compression.
func ReadFile(name string) (*dna.Scene, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, &Error{err.Error(), name, []string{"ReadFile"}}
	}
	defer f.Close()
	var r io.ReadCloser
	buf := bufio.NewReader(f)
	switch Compression(name) {
	case "zstd":
		var d *zstd.Decoder
		d, err = zstd.NewReader(buf)
		if err == nil {
			r = zstdReadCloser{d}
		}
	case "gzip":
		r, err = gzip.NewReader(buf)
	default:
		r = io.NopCloser(buf)
	}
	if err != nil {
		return nil, &Error{"can't decompress: " + err.Error(), name, []string{"ReadFile"}}
	}
	defer r.Close()
	s, err := Read(r)
	if err != nil {
		return nil, errDecorate(withFile(err, name), "ReadFile")
	}
	return s, nil
}
