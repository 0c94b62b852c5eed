/*
 * bases.go, part of DeDNA.
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

import v3 "github.com/Eldergenix/DeDNA/v3"

//Magnification is the factor applied to the base layouts before placing them in the helix.
const Magnification = 1.6

//ringAtom is an atom of a base layout. d is the distance from the
//anchor towards the helix axis, w the lateral offset, both before magnification.
type ringAtom struct {
	name   string
	el     Element
	d, w   float64
	charge float64
	hbond  bool //donor or acceptor on the pairing edge
}

type ringBond struct {
	a, b string
	kind BondKind
}

type baseLayout struct {
	atoms     []ringAtom
	bonds     []ringBond
	connector string //the ring atom bonded to the sugar
}

//The imidazole ring and the N9 connector are shared by both purines.
var adenine = &baseLayout{
	connector: "N9",
	atoms: []ringAtom{
		{"N9", Nitrogen, 0.0, 0.0, -0.25, false},
		{"C8", Carbon, 0.5, 1.1, 0.15, false},
		{"N7", Nitrogen, 1.7, 0.9, -0.35, false},
		{"C5", Carbon, 1.9, -0.3, 0.05, false},
		{"C4", Carbon, 0.8, -0.8, 0.2, false},
		{"C6", Carbon, 3.1, 0.1, 0.3, false},
		{"N1", Nitrogen, 3.6, -1.1, -0.55, true},
		{"C2", Carbon, 2.9, -2.2, 0.25, false},
		{"N3", Nitrogen, 1.6, -2.0, -0.45, false},
		{"N6", Nitrogen, 3.9, 1.1, -0.8, true},
	},
	bonds: []ringBond{
		{"N9", "C8", SingleBond},
		{"C8", "N7", DoubleBond},
		{"N7", "C5", SingleBond},
		{"C5", "C4", DoubleBond},
		{"C4", "N9", SingleBond},
		{"C5", "C6", SingleBond},
		{"C6", "N1", DoubleBond},
		{"N1", "C2", SingleBond},
		{"C2", "N3", DoubleBond},
		{"N3", "C4", SingleBond},
		{"C6", "N6", SingleBond},
	},
}

var guanine = &baseLayout{
	connector: "N9",
	atoms: []ringAtom{
		{"N9", Nitrogen, 0.0, 0.0, -0.25, false},
		{"C8", Carbon, 0.5, 1.1, 0.15, false},
		{"N7", Nitrogen, 1.7, 0.9, -0.35, false},
		{"C5", Carbon, 1.9, -0.3, 0.05, false},
		{"C4", Carbon, 0.8, -0.8, 0.2, false},
		{"C6", Carbon, 3.1, 0.1, 0.45, false},
		{"N1", Nitrogen, 3.6, -1.1, -0.35, true},
		{"C2", Carbon, 2.9, -2.2, 0.5, false},
		{"N3", Nitrogen, 1.6, -2.0, -0.45, false},
		{"O6", Oxygen, 3.9, 1.1, -0.55, true},
		{"N2", Nitrogen, 3.7, -3.0, -0.85, true},
	},
	bonds: []ringBond{
		{"N9", "C8", SingleBond},
		{"C8", "N7", DoubleBond},
		{"N7", "C5", SingleBond},
		{"C5", "C4", DoubleBond},
		{"C4", "N9", SingleBond},
		{"C5", "C6", SingleBond},
		{"C6", "N1", SingleBond},
		{"N1", "C2", SingleBond},
		{"C2", "N3", DoubleBond},
		{"N3", "C4", SingleBond},
		{"C6", "O6", DoubleBond},
		{"C2", "N2", SingleBond},
	},
}

var cytosine = &baseLayout{
	connector: "N1",
	atoms: []ringAtom{
		{"N1", Nitrogen, 0.0, 0.0, -0.3, false},
		{"C2", Carbon, 0.8, 1.1, 0.45, false},
		{"N3", Nitrogen, 2.0, 0.9, -0.6, true},
		{"C4", Carbon, 2.5, -0.3, 0.4, false},
		{"C5", Carbon, 1.7, -1.3, -0.1, false},
		{"C6", Carbon, 0.5, -1.1, 0.1, false},
		{"O2", Oxygen, 1.6, 2.4, -0.55, true},
		{"N4", Nitrogen, 3.7, -0.5, -0.85, true},
	},
	bonds: []ringBond{
		{"N1", "C2", SingleBond},
		{"C2", "N3", SingleBond},
		{"N3", "C4", DoubleBond},
		{"C4", "C5", SingleBond},
		{"C5", "C6", DoubleBond},
		{"C6", "N1", SingleBond},
		{"C2", "O2", DoubleBond},
		{"C4", "N4", SingleBond},
	},
}

//Thymine is also the layout for unknown symbols.
var thymine = &baseLayout{
	connector: "N1",
	atoms: []ringAtom{
		{"N1", Nitrogen, 0.0, 0.0, -0.3, false},
		{"C2", Carbon, 0.8, 1.1, 0.45, false},
		{"N3", Nitrogen, 2.0, 0.9, -0.35, true},
		{"C4", Carbon, 2.5, -0.3, 0.45, false},
		{"C5", Carbon, 1.7, -1.3, 0.0, false},
		{"C6", Carbon, 0.5, -1.1, 0.1, false},
		{"O2", Oxygen, 1.6, 2.4, -0.55, true},
		{"O4", Oxygen, 3.7, -0.5, -0.5, true},
		{"C7", Carbon, 2.0, -2.6, 0.05, false},
	},
	bonds: []ringBond{
		{"N1", "C2", SingleBond},
		{"C2", "N3", SingleBond},
		{"N3", "C4", SingleBond},
		{"C4", "C5", SingleBond},
		{"C5", "C6", DoubleBond},
		{"C6", "N1", SingleBond},
		{"C2", "O2", DoubleBond},
		{"C4", "O4", DoubleBond},
		{"C5", "C7", SingleBond},
	},
}

func layoutFor(symbol byte) *baseLayout {
	switch upper(symbol) {
	case 'A':
		return adenine
	case 'G':
		return guanine
	case 'C':
		return cytosine
	default:
		return thymine
	}
}

//BaseUnit is the set of atoms and bonds making up one nucleobase.
type BaseUnit struct {
	Atoms     []*Atom
	Bonds     []*Bond
	Connector *Atom   //the ring atom that attaches to the sugar
	HBond     []*Atom //atoms that can take part in hydrogen bonds
}

//BuildBase builds the heavy atoms of the base with the given symbol (A, C, G or T, any other
//symbol gives a thymine) and the bonds among them. The planar layout is magnified, rotated by
//angle radians around the helix axis and translated so the connector lies on anchor; all atoms
//share the Y of the anchor. Local offsets point from the anchor towards the helix axis when angle
//is the angular position of the anchor. prefix is prepended to the atom IDs and must be unique within
//a scene. If mutation is true all atoms take the mutation color.
func BuildBase(symbol byte, anchor Point3D, angle float64, prefix string, mutation bool) *BaseUnit {
	layout := layoutFor(symbol)
	unit := &BaseUnit{
		Atoms: make([]*Atom, 0, len(layout.atoms)),
		Bonds: make([]*Bond, 0, len(layout.bonds)),
	}
	placed := placeLayout(layout, anchor, angle)
	byname := make(map[string]*Atom, len(layout.atoms))
	for i, r := range layout.atoms {
		pos := placed.RawRowView(i)
		at := &Atom{
			Point3D: Point3D{X: pos[0], Y: pos[1], Z: pos[2]},
			ID:      prefix + "." + r.name,
			Name:    r.name,
			Element: r.el,
			Size:    r.el.Size(),
			Color:   r.el.Color(),
			Charge:  r.charge,
		}
		if mutation {
			at.Color = MutationColor
		}
		unit.Atoms = append(unit.Atoms, at)
		byname[r.name] = at
		if r.hbond {
			unit.HBond = append(unit.HBond, at)
		}
	}
	for _, b := range layout.bonds {
		unit.Bonds = append(unit.Bonds, newBond(byname[b.a], byname[b.b], b.kind))
	}
	unit.Connector = byname[layout.connector]
	return unit
}

//placeLayout returns the magnified layout coordinates, turned by angle around the
//helix axis and translated to anchor, one vector per layout atom.
func placeLayout(layout *baseLayout, anchor Point3D, angle float64) *v3.Matrix {
	local := make([]float64, 0, 3*len(layout.atoms))
	for _, r := range layout.atoms {
		local = append(local, -r.d*Magnification, 0, r.w*Magnification)
	}
	L, err := v3.NewMatrix(local)
	if err != nil {
		panic(err.Error()) //every layout has atoms
	}
	L.Rotate(L, v3.RotatorAroundY(-angle))
	L.AddVec(L, anchor.Vec())
	return L
}
