/*
 * helix_test.go, part of DeDNA.
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

package dna

import (
	"fmt"
	"math"
	"testing"
)

func TestSequenceDeterminism(Te *testing.T) {
	a := Sequence(123456, 30)
	b := Sequence(123456, 30)
	if a != b {
		Te.Errorf("same window, different sequences: %s %s", a, b)
	}
	//Overlapping windows agree on the shared coordinates.
	c := Sequence(123456+5, 30)
	if a[5:] != c[:25] {
		Te.Errorf("background bases depend on the window: %s %s", a[5:], c[:25])
	}
	counts := make(map[rune]int)
	for _, r := range Sequence(1, 4000) {
		counts[r]++
	}
	for _, r := range "ACGT" {
		if counts[r] < 500 {
			Te.Errorf("base %c is too rare in the background: %v", r, counts)
		}
	}
	if Sequence(5, 0) != "" {
		Te.Error("an empty window should give an empty sequence")
	}
}

func TestGenerateEmpty(Te *testing.T) {
	for _, n := range []int{0, -3} {
		s := Generate(100, &Variant{Ref: "G", Alt: "A"}, n)
		if !s.Empty() || len(s.Bonds) != 0 || len(s.Steps) != 0 {
			Te.Errorf("window %d should give an empty scene, got %d atoms", n, s.Len())
		}
	}
}

func TestGenerateScenario(Te *testing.T) {
	variant := &Variant{Ref: "G", Alt: "A", Gene: "TEST"}
	scene := Generate(100, variant, 4)
	fmt.Println(sceneTitle(scene), scene.Len(), "atoms", len(scene.Bonds), "bonds")
	if len(scene.Steps) != 4 {
		Te.Fatalf("expected 4 steps, got %d", len(scene.Steps))
	}
	//backbone, sugar and base atoms for every step and strand.
	type key struct{ step, strand int }
	backbone := make(map[key]int)
	sugars := make(map[key]int)
	bases := make(map[key]int)
	for _, a := range scene.Atoms {
		k := key{a.Step, a.Strand}
		switch {
		case a.Element == Phosphate:
			backbone[k]++
		case a.Name == "S":
			sugars[k]++
		default:
			bases[k]++
		}
	}
	for i := 0; i < 4; i++ {
		for s := 1; s <= 2; s++ {
			k := key{i, s}
			if backbone[k] != 1 || sugars[k] != 1 || bases[k] < 8 {
				Te.Errorf("step %d strand %d: %d phosphates %d sugars %d base atoms", i, s, backbone[k], sugars[k], bases[k])
			}
		}
	}
	sites := scene.MutationSites()
	if len(sites) != 1 {
		Te.Fatalf("expected exactly one mutation site, got %d", len(sites))
	}
	site := sites[0]
	if site.Step != 2 || site.Strand != 1 || site.Element != Mutated {
		Te.Errorf("unexpected mutation site %v", site)
	}
	if b := scene.Steps[site.Step].Base1; b != 'A' {
		Te.Errorf("the mutation site shows %c, expected A", b)
	}
	perstep := make(map[int]int)
	for _, b := range scene.BondsOfKind(HydrogenBond) {
		perstep[b.Start.Step]++
	}
	for i, st := range scene.Steps {
		if st.MutationSite {
			continue
		}
		if perstep[i] == 0 {
			Te.Errorf("no hydrogen bonds at step %d (%c-%c)", i, st.Base1, st.Base2)
		}
	}
	//the mutated base is colored, its partner is not.
	for _, a := range scene.Atoms {
		if a.Step != 2 || a.Element == Phosphate || a.IsMutationSite {
			continue
		}
		if (a.Strand == 1) != (a.Color == MutationColor) {
			Te.Errorf("wrong color for %v: %v", a, a.Color)
		}
	}
}

func TestGenerateInvariants(Te *testing.T) {
	variants := []*Variant{nil, {Ref: "C", Alt: "T"}, {Ref: "C", Alt: "CTT"}, {Ref: "AG", Alt: ""}}
	for _, v := range variants {
		for _, n := range []int{1, 2, 7, 20} {
			scene := Generate(987654321, v, n)
			checkScene(Te, scene, v, n)
		}
	}
}

func checkScene(Te *testing.T, scene *Scene, v *Variant, n int) {
	Te.Helper()
	ids := make(map[string]bool)
	inscene := make(map[*Atom]bool)
	for _, a := range scene.Atoms {
		if ids[a.ID] {
			Te.Errorf("repeated atom ID %s", a.ID)
		}
		ids[a.ID] = true
		inscene[a] = true
	}
	bids := make(map[string]bool)
	for _, b := range scene.Bonds {
		if !inscene[b.Start] || !inscene[b.End] {
			Te.Errorf("bond %s joins atoms from outside the scene", b.ID)
		}
		if bids[b.ID] {
			Te.Errorf("repeated bond ID %s", b.ID)
		}
		bids[b.ID] = true
		if b.Kind == HydrogenBond && (b.Start.Strand == b.End.Strand || b.Start.Step != b.End.Step) {
			Te.Errorf("hydrogen bond %s does not join opposite strands at one step", b.ID)
		}
		if b.Kind == HydrogenBond && scene.Steps[b.Start.Step].Indel {
			Te.Errorf("hydrogen bond %s at an indel site", b.ID)
		}
	}
	//Symmetry.
	for _, st := range scene.Steps {
		if st.MutationSite {
			continue
		}
		if st.Base2 != Complement(st.Base1) {
			Te.Errorf("step %d: %c is not paired with its complement (%c)", st.Index, st.Base1, st.Base2)
		}
	}
	//Mutation site.
	sites := scene.MutationSites()
	if v == nil && len(sites) != 0 {
		Te.Errorf("%d mutation sites without a variant", len(sites))
	}
	if v != nil && len(sites) != 1 {
		Te.Errorf("%d mutation sites for variant %v", len(sites), v)
	}
	if v != nil && !v.IsSubstitution() {
		st := scene.Steps[sites[0].Step]
		if !st.Indel || st.Base1 != BackgroundBase(st.Position) {
			Te.Errorf("indel %v should keep the background base: %+v", v, st)
		}
	}
	//Backbone continuity.
	links := make(map[[2]int]int)
	for _, b := range scene.BondsOfKind(BackboneLink) {
		if b.Start.Name != "S" || b.End.Name != "S" || b.Start.Strand != b.End.Strand || b.Start.Step != b.End.Step+1 {
			Te.Errorf("bad backbone link %s", b.ID)
		}
		links[[2]int{b.Start.Strand, b.Start.Step}]++
	}
	for s := 1; s <= 2; s++ {
		if links[[2]int{s, 0}] != 0 {
			Te.Errorf("strand %d has a backbone link at step 0", s)
		}
		for i := 1; i < n; i++ {
			if links[[2]int{s, i}] != 1 {
				Te.Errorf("strand %d step %d has %d backbone links", s, i, links[[2]int{s, i}])
			}
		}
	}
}

func TestPairBasesMultiple(Te *testing.T) {
	a := &Atom{ID: "a", Point3D: Point3D{0, 0, 0}}
	b := &Atom{ID: "b", Point3D: Point3D{1, 50, 0}} //the helix axis does not count
	c := &Atom{ID: "c", Point3D: Point3D{0, 0, 1.5}}
	d := &Atom{ID: "d", Point3D: Point3D{10, 0, 0}}
	bonds := PairBases([]*Atom{a}, []*Atom{b, c, d}, 2)
	if len(bonds) != 2 {
		Te.Errorf("expected a to pair with b and c, got %d bonds", len(bonds))
	}
	if len(PairBases(nil, []*Atom{a}, 2)) != 0 {
		Te.Error("no candidates should give no bonds")
	}
}

func TestBackboneFrame(Te *testing.T) {
	scene := Generate(500, nil, 6)
	for _, a := range scene.Atoms {
		var radius float64
		switch a.Element {
		case Phosphate:
			radius = PhosphateRadius
		case Sugar:
			radius = SugarRadius
		default:
			continue
		}
		angle := Deg2Rad(float64(a.Step) * TwistDegrees)
		if a.Strand == 2 {
			angle += math.Pi
		}
		want := Point3D{X: radius * math.Cos(angle), Y: float64(scene.Steps[a.Step].Offset) * Rise, Z: radius * math.Sin(angle)}
		if math.Abs(a.X-want.X) > 1e-9 || math.Abs(a.Y-want.Y) > 1e-9 || math.Abs(a.Z-want.Z) > 1e-9 {
			Te.Errorf("%s at %v, expected %v", a.ID, a.Point3D, want)
		}
	}
	for _, b := range scene.BondsOfKind(SingleBond) {
		if b.Start.Element == Sugar && b.End.Element != Phosphate {
			//sugar and connector lie on the same radius.
			if d := b.Start.Planar(b.End.Point3D); math.Abs(d-(SugarRadius-BaseRadius)) > 1e-9 {
				Te.Errorf("sugar %s is %f from its base connector", b.Start.ID, d)
			}
		}
	}
}
