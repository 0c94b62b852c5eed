/*
 * json_test.go, part of DeDNA.
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
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	dna "github.com/Eldergenix/DeDNA"
)

func sameScene(Te *testing.T, a, b *dna.Scene) {
	Te.Helper()
	if a.Center != b.Center || a.Len() != b.Len() || len(a.Bonds) != len(b.Bonds) || len(a.Steps) != len(b.Steps) {
		Te.Fatalf("scenes differ in size: %d/%d atoms %d/%d bonds", a.Len(), b.Len(), len(a.Bonds), len(b.Bonds))
	}
	if *a.Variant != *b.Variant {
		Te.Errorf("variants differ: %v %v", a.Variant, b.Variant)
	}
	for i := range a.Atoms {
		if *a.Atoms[i] != *b.Atoms[i] {
			Te.Errorf("atom %d differs: %v %v", i, a.Atoms[i], b.Atoms[i])
		}
	}
	for i := range a.Bonds {
		x, y := a.Bonds[i], b.Bonds[i]
		if x.ID != y.ID || x.Kind != y.Kind || x.Start.ID != y.Start.ID || x.End.ID != y.End.ID {
			Te.Errorf("bond %d differs: %s %s", i, x.ID, y.ID)
		}
	}
	for i := range a.Steps {
		if a.Steps[i] != b.Steps[i] {
			Te.Errorf("step %d differs: %+v %+v", i, a.Steps[i], b.Steps[i])
		}
	}
}

func TestStream(Te *testing.T) {
	scene := dna.Generate(31337, &dna.Variant{Ref: "A", Alt: "G", Gene: "TP53"}, 6)
	var buf bytes.Buffer
	if err := Write(&buf, scene); err != nil {
		Te.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"Gene":"TP53"`) {
		Te.Errorf("the variant is missing from the snapshot")
	}
	back, err := Read(&buf)
	if err != nil {
		Te.Fatal(err)
	}
	sameScene(Te, scene, back)
	//Bonds point to the rebuilt atoms, not to copies.
	idx := back.Index()
	for _, b := range back.Bonds {
		if back.Atoms[idx[b.Start.ID]] != b.Start {
			Te.Fatalf("bond %s does not point into the scene", b.ID)
		}
	}
}

func TestFiles(Te *testing.T) {
	scene := dna.Generate(-20, &dna.Variant{Ref: "C", Alt: "CA"}, 9)
	dir := Te.TempDir()
	sizes := make(map[string]int64)
	for _, name := range []string{"helix.json", "helix.json.gz", "helix.json.zst"} {
		path := filepath.Join(dir, name)
		if err := WriteFile(path, scene); err != nil {
			Te.Fatal(err)
		}
		back, err := ReadFile(path)
		if err != nil {
			Te.Fatal(err)
		}
		sameScene(Te, scene, back)
		info, err := os.Stat(path)
		if err != nil {
			Te.Fatal(err)
		}
		sizes[Compression(name)] = info.Size()
	}
	if sizes["zstd"] >= sizes[""] || sizes["gzip"] >= sizes[""] {
		Te.Errorf("compressed snapshots should be smaller: %v", sizes)
	}
}

func TestErrors(Te *testing.T) {
	_, err := ReadFile(filepath.Join(Te.TempDir(), "missing.json"))
	if e, ok := err.(*Error); !ok || e.FileName() == "" {
		Te.Errorf("expected a file error, got %v", err)
	}
	bad := []string{
		`{"Atoms":[{"ID":"a","Element":"Unobtainium","Coords":[0,0,0]}]}`,
		`{"Atoms":[{"ID":"a","Element":"Carbon","Coords":[0,0]}]}`,
		`{"Atoms":[{"ID":"a","Element":"Carbon","Coords":[0,0,0]}],"Bonds":[{"ID":"x","Start":"a","End":"b","Kind":"single"}]}`,
		`{"Steps":[{"Base1":"AT","Base2":"T"}]}`,
		`{"Atoms":[{"ID":"a","Element":"Carbon","Coords":[0,0,0]},{"ID":"a","Element":"Carbon","Coords":[1,0,0]}]}`,
		`{"Atoms":`,
	}
	for _, b := range bad {
		_, err := Read(strings.NewReader(b))
		if err == nil {
			Te.Errorf("%s should not be read", b)
			continue
		}
		if e, ok := err.(dna.Error); !ok || len(e.Decorate("")) == 0 {
			Te.Errorf("error not decorated: %v", err)
		}
	}
	_, err = Read(strings.NewReader(`{"Atoms":[{"ID":"a","Element":"Carbon","Coords":[0,0,0]},{"ID":"b","Element":"Carbon","Coords":[0,0,0]},{"ID":"a","Element":"Carbon","Coords":[1,0,0]}]}`))
	if err == nil || !strings.Contains(err.Error(), "repeated") {
		Te.Errorf("a repeated atom ID should be reported, got %v", err)
	}
	if Compression("A.ZST") != "zstd" || Compression("a.gz") != "gzip" || Compression("a.json") != "" {
		Te.Error("wrong compression from extension")
	}
}
