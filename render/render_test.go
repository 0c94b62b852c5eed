/*
 * render_test.go, part of DeDNA.
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

package render

import (
	"fmt"
	"math"
	"sort"
	"testing"

	dna "github.com/Eldergenix/DeDNA"
	"gonum.org/v1/gonum/floats/scalar"
)

func testScene() *dna.Scene {
	return dna.Generate(100, &dna.Variant{Ref: "G", Alt: "A", Gene: "TEST"}, 4)
}

func TestRenderEdgeCases(Te *testing.T) {
	opts := DefaultOptions()
	view := View{Zoom: 1}
	for _, vp := range []Viewport{{0, 300}, {300, 0}, {-1, 200}} {
		if p := Render(testScene(), view, vp, opts); p != nil {
			Te.Errorf("viewport %v should give no primitives, got %d", vp, len(p))
		}
	}
	p := Render(dna.Generate(100, nil, 0), view, Viewport{300, 300}, opts)
	if p == nil || len(p) != 0 {
		Te.Errorf("an empty scene should give an empty list, got %v", p)
	}
	if p := Render(nil, view, Viewport{300, 300}, opts); p == nil || len(p) != 0 {
		Te.Error("a nil scene should give an empty list")
	}
}

func TestRenderOrder(Te *testing.T) {
	scene := testScene()
	opts := DefaultOptions()
	views := []View{{0, 0, 1}, {0.3, 1.2, 1.5}, {-1, 4, 0.6}}
	for _, view := range views {
		prims := Render(scene, view, Viewport{800, 600}, opts)
		if len(prims) != scene.Len()+len(scene.Bonds) {
			Te.Errorf("view %v: expected %d primitives, got %d", view, scene.Len()+len(scene.Bonds), len(prims))
		}
		ok := sort.SliceIsSorted(prims, func(i, j int) bool { return prims[i].Depth > prims[j].Depth })
		if !ok {
			Te.Errorf("view %v: primitives not sorted far to near", view)
		}
		glows := 0
		for _, p := range prims {
			if p.Glow > 0 {
				glows++
			}
			if p.Opacity < 0.4-1e-9 || p.Opacity > 1 {
				Te.Errorf("opacity out of range: %v", p)
			}
		}
		if glows != 1 {
			Te.Errorf("view %v: %d glowing atoms, expected 1", view, glows)
		}
	}
}

func TestRenderProjection(Te *testing.T) {
	a := &dna.Atom{ID: "a", Point3D: dna.Point3D{X: 2, Y: -1, Z: 0}, Size: 1}
	b := &dna.Atom{ID: "b", Point3D: dna.Point3D{X: 0, Y: 0, Z: 20}, Size: 1, Charge: -0.8}
	scene := &dna.Scene{
		Atoms: []*dna.Atom{a, b},
		Bonds: []*dna.Bond{{ID: "ab", Start: a, End: b, Kind: dna.HydrogenBond}},
	}
	opts := Options{Focal: 60, BaseScale: 10, BondWidth: 1}
	vp := Viewport{200, 100}
	prims := Render(scene, View{Zoom: 2}, vp, opts)
	if len(prims) != 3 {
		Te.Fatalf("expected 3 primitives, got %d", len(prims))
	}
	//farthest first: b (20), then the bond (10), then a (0)
	if prims[0].ID != "b" || prims[1].ID != "ab" || prims[2].ID != "a" {
		Te.Errorf("wrong order: %s %s %s", prims[0].ID, prims[1].ID, prims[2].ID)
	}
	pa := prims[2]
	if !scalar.EqualWithinAbs(pa.X, 100+2*20, 1e-9) || !scalar.EqualWithinAbs(pa.Y, 50-20, 1e-9) || !scalar.EqualWithinAbs(pa.Radius, 20, 1e-9) {
		Te.Errorf("atom a projected at %f %f r %f", pa.X, pa.Y, pa.Radius)
	}
	pb := prims[0]
	if !scalar.EqualWithinAbs(pb.Radius, 15, 1e-9) || pb.Halo == 0 || pa.Halo != 0 {
		Te.Errorf("atom b: radius %f halo %f", pb.Radius, pb.Halo)
	}
	bond := prims[1]
	if bond.Style != Dashed || bond.X1 != pa.X || bond.X2 != pb.X || bond.Depth != 10 {
		Te.Errorf("bad bond primitive %+v", bond)
	}
	fmt.Println(bond.Kind, bond.Style, bond.Width)
}

func TestRenderCulling(Te *testing.T) {
	a := &dna.Atom{ID: "a", Size: 1}
	b := &dna.Atom{ID: "b", Point3D: dna.Point3D{Z: -70}, Size: 1}
	scene := &dna.Scene{
		Atoms: []*dna.Atom{a, b},
		Bonds: []*dna.Bond{{ID: "ab", Start: a, End: b, Kind: dna.SingleBond}},
	}
	prims := Render(scene, View{Zoom: 1}, Viewport{100, 100}, DefaultOptions())
	if len(prims) != 1 || prims[0].ID != "a" {
		Te.Errorf("the atom behind the eye and its bond should be dropped: %v", prims)
	}
}

func TestRenderRotation(Te *testing.T) {
	a := &dna.Atom{ID: "a", Point3D: dna.Point3D{X: 10}, Size: 1}
	scene := &dna.Scene{Atoms: []*dna.Atom{a}}
	opts := DefaultOptions()
	//a quarter turn around Y takes X into depth
	prims := Render(scene, View{RotationY: math.Pi / 2, Zoom: 1}, Viewport{100, 100}, opts)
	if math.Abs(math.Abs(prims[0].Depth)-10) > 1e-9 || math.Abs(prims[0].X-50) > 1e-9 {
		Te.Errorf("unexpected rotation result %+v", prims[0])
	}
}

//maxShift returns the largest screen displacement of an atom between two renders.
func maxShift(Te *testing.T, before, after []Primitive) float64 {
	pos := make(map[string][2]float64)
	for _, p := range before {
		if p.Kind == AtomPrim {
			pos[p.ID] = [2]float64{p.X, p.Y}
		}
	}
	shift := 0.0
	for _, p := range after {
		if p.Kind != AtomPrim {
			continue
		}
		q, ok := pos[p.ID]
		if !ok {
			Te.Fatalf("atom %s appeared between close views", p.ID)
		}
		shift = math.Max(shift, math.Hypot(p.X-q[0], p.Y-q[1]))
	}
	return shift
}

func TestRenderContinuity(Te *testing.T) {
	scene := testScene()
	opts := DefaultOptions()
	vp := Viewport{800, 600}
	view := View{RotationX: 0.2, RotationY: 0.7, Zoom: 1}
	base := Render(scene, view, vp, opts)
	prev := math.Inf(1)
	for _, delta := range []float64{0.1, 0.01, 0.001, 1e-6} {
		turned := view
		turned.RotationY += delta
		shift := maxShift(Te, base, Render(scene, turned, vp, opts))
		if shift > 400*delta {
			Te.Errorf("a turn of %g moved an atom by %f pixels", delta, shift)
		}
		if shift >= prev {
			Te.Errorf("a turn of %g moved atoms by %f, not less than %f for a larger turn", delta, shift, prev)
		}
		prev = shift
	}
}

func TestDecorations(Te *testing.T) {
	cases := [][2]float64{{-20, 1}, {-15, 1}, {0, 0.7}, {15, 0.4}, {40, 0.4}}
	for _, c := range cases {
		if f := Fade(c[0]); math.Abs(f-c[1]) > 1e-9 {
			Te.Errorf("Fade(%f)=%f, want %f", c[0], f, c[1])
		}
	}
	if g := GlowRadius(2, math.Pi/2); math.Abs(g-2*2.25) > 1e-9 {
		Te.Errorf("GlowRadius at the pulse peak is %f", g)
	}
	if g := GlowRadius(2, 0); math.Abs(g-3.8) > 1e-9 {
		Te.Errorf("GlowRadius at phase 0 is %f", g)
	}
	if HaloRadius(2, 0.4) != 0 || HaloRadius(2, -0.41) != 2*1.45 {
		Te.Error("wrong halo threshold")
	}
}

func TestFitZoom(Te *testing.T) {
	scene := dna.Generate(1000, nil, 12)
	opts := DefaultOptions()
	vp := Viewport{640, 480}
	zoom := FitZoom(scene, vp, opts)
	if zoom <= 0 {
		Te.Fatalf("bad zoom %f", zoom)
	}
	for _, view := range []View{{0, 0, zoom}, {1.1, 0.4, zoom}, {-0.7, 2.5, zoom}} {
		for _, p := range Render(scene, view, vp, opts) {
			if p.Kind != AtomPrim {
				continue
			}
			if p.X-p.Radius < 0 || p.X+p.Radius > vp.Width || p.Y-p.Radius < 0 || p.Y+p.Radius > vp.Height {
				Te.Errorf("atom %s out of the viewport at zoom %f: %f %f", p.ID, zoom, p.X, p.Y)
				break
			}
		}
	}
	if FitZoom(scene, Viewport{}, opts) != 1 || FitZoom(&dna.Scene{}, vp, opts) != 1 {
		Te.Error("empty inputs should give zoom 1")
	}
}
