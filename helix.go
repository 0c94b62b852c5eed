/*
 * helix.go, part of DeDNA.
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

	v3 "github.com/Eldergenix/DeDNA/v3"
)

//Helix geometry, in helix units.
const (
	TwistDegrees    = 36.0 //rotation between consecutive steps
	Rise            = 4.0  //distance between consecutive steps along the axis
	PhosphateRadius = 12.0
	SugarRadius     = 9.5
	BaseRadius      = 5.6 //radius of the base connector atoms
	HBondCutoff     = 3.4 //maximum planar distance for a hydrogen bond
)

//Generate builds the scene for a window of windowSteps helix steps centered on position.
//If variant is not nil, the step at the center of the window is the mutation site. For
//substitutions the strand-1 base at that step shows the first base of the alternate allele.
//For insertions/deletions the background base is kept, the site is only flagged, and no
//hydrogen bonds are built at that step. A window of zero or less steps gives an empty scene.
//Generate has no side effects and can be called from any goroutine.
func Generate(position int64, variant *Variant, windowSteps int) *Scene {
	scene := &Scene{Center: position}
	if variant != nil {
		v := *variant
		scene.Variant = &v
	}
	if windowSteps <= 0 {
		return scene
	}
	scene.Steps = make([]Step, windowSteps)
	scene.Atoms = make([]*Atom, 0, windowSteps*26)
	scene.Bonds = make([]*Bond, 0, windowSteps*30)
	var prevsugar [2]*Atom
	for i := 0; i < windowSteps; i++ {
		step := newStep(i, windowSteps, position, scene.Variant)
		y := float64(step.Offset) * Rise
		angle1 := Deg2Rad(float64(i) * TwistDegrees)
		angles := [2]float64{angle1, angle1 + math.Pi}
		symbols := [2]byte{step.Base1, step.Base2}
		var hbonds [2][]*Atom
		for s := 0; s < 2; s++ {
			strand := s + 1
			prefix := fmt.Sprintf("s%d.%d", strand, i)
			frame := stepFrame(angles[s], y)
			phos := backboneAtom(prefix+".P", "P", Phosphate, frame.VecView(0))
			sugar := backboneAtom(prefix+".S", "S", Sugar, frame.VecView(1))
			if strand == 1 && step.MutationSite {
				sugar.Element = Mutated
				sugar.Size = Mutated.Size()
				sugar.Color = MutationColor
				sugar.IsMutationSite = true
			}
			anchor := pointOf(frame.VecView(2))
			mutated := strand == 1 && step.MutationSite && !step.Indel
			unit := BuildBase(symbols[s], anchor, angles[s], prefix, mutated)

			stepatoms := append([]*Atom{phos, sugar}, unit.Atoms...)
			for _, a := range stepatoms {
				a.Strand = strand
				a.Step = i
			}
			scene.Atoms = append(scene.Atoms, stepatoms...)
			scene.Bonds = append(scene.Bonds, newBond(phos, sugar, SingleBond))
			if prevsugar[s] != nil {
				scene.Bonds = append(scene.Bonds, newBond(sugar, prevsugar[s], BackboneLink))
			}
			prevsugar[s] = sugar
			scene.Bonds = append(scene.Bonds, newBond(sugar, unit.Connector, SingleBond))
			scene.Bonds = append(scene.Bonds, unit.Bonds...)
			hbonds[s] = unit.HBond
		}
		if !step.Indel {
			scene.Bonds = append(scene.Bonds, PairBases(hbonds[0], hbonds[1], HBondCutoff)...)
		}
		scene.Steps[i] = step
	}
	return scene
}

//newStep decides which bases are shown at the ith step of a window of n steps.
func newStep(i, n int, position int64, variant *Variant) Step {
	offset := StepOffset(i, n)
	step := Step{Index: i, Offset: offset, Position: position + int64(offset)}
	background := BackgroundBase(step.Position)
	step.Base1 = background
	step.Base2 = Complement(background)
	if variant == nil || offset != 0 {
		return step
	}
	step.MutationSite = true
	if variant.IsSubstitution() {
		//only strand 1 is substituted.
		step.Base1 = upper(variant.Alt[0])
	} else {
		step.Indel = true
	}
	return step
}

//stepFrame returns the phosphate, sugar and base anchor positions of one strand
//at the given angular position and height.
func stepFrame(angle, y float64) *v3.Matrix {
	F, _ := v3.NewMatrix([]float64{
		PhosphateRadius, 0, 0,
		SugarRadius, 0, 0,
		BaseRadius, 0, 0,
	})
	F.Rotate(F, v3.RotatorAroundY(-angle))
	F.AddVec(F, Point3D{Y: y}.Vec())
	return F
}

func pointOf(vec *v3.Matrix) Point3D {
	return Point3D{X: vec.At(0, 0), Y: vec.At(0, 1), Z: vec.At(0, 2)}
}

func backboneAtom(id, name string, el Element, pos *v3.Matrix) *Atom {
	return &Atom{
		Point3D: pointOf(pos),
		ID:      id,
		Name:    name,
		Element: el,
		Size:    el.Size(),
		Color:   el.Color(),
	}
}

//PairBases tests every atom in donors1 against every atom in donors2 and returns a
//hydrogen bond for each pair closer than cutoff in the plane perpendicular to the helix
//axis. An atom may pair with more than one partner.
func PairBases(donors1, donors2 []*Atom, cutoff float64) []*Bond {
	var ret []*Bond
	for _, a := range donors1 {
		for _, b := range donors2 {
			if a.Planar(b.Point3D) < cutoff {
				ret = append(ret, newBond(a, b, HydrogenBond))
			}
		}
	}
	return ret
}
