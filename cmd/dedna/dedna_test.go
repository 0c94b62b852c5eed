/*
 * dedna_test.go, part of DeDNA.
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

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	dna "github.com/Eldergenix/DeDNA"
	"github.com/Eldergenix/DeDNA/render"
	"github.com/Eldergenix/DeDNA/scenejson"
	"github.com/Eldergenix/DeDNA/surface"
)

func run(t *testing.T, args ...string) {
	t.Helper()
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("dedna %s: %v", strings.Join(args, " "), err)
	}
}

func TestExportAndRender(t *testing.T) {
	dir := t.TempDir()
	snap := filepath.Join(dir, "helix.json.zst")
	run(t, "export", "-p", "100", "--ref", "G", "--alt", "A", "--gene", "TEST", "-w", "4", "-o", snap)
	s, err := scenejson.ReadFile(snap)
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Steps) != 4 || len(s.MutationSites()) != 1 || s.Variant.Gene != "TEST" {
		t.Errorf("unexpected snapshot: %d steps, %v", len(s.Steps), s.Variant)
	}

	xyz := filepath.Join(dir, "helix.xyz")
	run(t, "export", "-p", "100", "-w", "4", "-o", xyz)
	if _, err := os.Stat(xyz); err != nil {
		t.Error(err)
	}

	for _, name := range []string{"frame.svg", "frame.png"} {
		out := filepath.Join(dir, name)
		run(t, "render", "--from", snap, "--width", "200", "--height", "150", "-o", out)
		info, err := os.Stat(out)
		if err != nil || info.Size() == 0 {
			t.Errorf("%s was not written: %v", name, err)
		}
	}
	rootCmd.SetArgs([]string{"render", "-o", filepath.Join(dir, "frame.bmp")})
	if rootCmd.Execute() == nil {
		t.Error("an unknown image format should fail")
	}
}

func TestInspect(t *testing.T) {
	var buf bytes.Buffer
	s := dna.Generate(100, &dna.Variant{Ref: "G", Alt: "GA"}, 5)
	if err := inspect(&buf, s); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"indel site", "backbone continuous: true", "variant G>GA", "1 connected components", "geometric center:"} {
		if !strings.Contains(out, want) {
			t.Errorf("%q missing from:\n%s", want, out)
		}
	}
}

func TestGrabber(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	g := &grabber{canvas: surface.NewImage(50, 50, nil), want: 2, stop: cancel}
	vp := render.Viewport{Width: 50, Height: 50}
	prim := []render.Primitive{{Kind: render.AtomPrim, X: 25, Y: 25, Radius: 5, Opacity: 1}}
	g.Draw(nil, vp)
	g.Draw(prim, vp)
	if ctx.Err() != nil {
		t.Error("stopped too early")
	}
	g.Draw(prim, vp)
	g.Draw(prim, vp)
	if ctx.Err() == nil || len(g.canvas.Frames()) != 2 {
		t.Errorf("expected 2 frames and a stop, got %d frames", len(g.canvas.Frames()))
	}
}
