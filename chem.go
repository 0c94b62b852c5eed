/*
 * chem.go, part of DeDNA.
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
	"image/color"

	v3 "github.com/Eldergenix/DeDNA/v3"
)

/**Note: Some functions here panic instead of returning errors. This is because they are "fundamental"
 * functions. If something goes wrong here, the program is most likely wrong and should
 * crash. Those panics are related to trying to access out-of bounds fields**/

//Point3D is a position in the helix-local frame. Y is the helix axis.
type Point3D struct {
	X, Y, Z float64
}

//Planar returns the distance between P and Q in the XZ plane, ignoring the helix axis.
func (P Point3D) Planar(Q Point3D) float64 {
	return planarDistance(P.X-Q.X, P.Z-Q.Z)
}

//Vec returns P as a 1-vector Matrix.
func (P Point3D) Vec() *v3.Matrix {
	ret := v3.Zeros(1)
	ret.Set(0, 0, P.X)
	ret.Set(0, 1, P.Y)
	ret.Set(0, 2, P.Z)
	return ret
}

//Atom is one atom (or pseudo-atom, for phosphates and sugars) of a scene.
//Atoms are never modified after a scene has been built.
type Atom struct {
	Point3D
	ID             string //unique within one scene
	Name           string //ring-position label, i.e. "N1", or "P"/"S" for the backbone.
	Element        Element
	Size           float64 //render radius
	Color          color.RGBA
	Charge         float64 //partial charge, 0 means none. Only used for rendering.
	IsMutationSite bool
	Strand         int //1 or 2
	Step           int
}

//String returns a short description of the atom.
func (A *Atom) String() string {
	return fmt.Sprintf("%s(%s %.2f %.2f %.2f)", A.ID, A.Element, A.X, A.Y, A.Z)
}

//Variant is a sequence change at the center of the window.
type Variant struct {
	Ref  string
	Alt  string
	Gene string
}

//IsSubstitution returns true if the reference and alternate alleles
//have the same, non-zero, length. Everything else is treated as an indel.
func (V *Variant) IsSubstitution() bool {
	return V != nil && len(V.Ref) == len(V.Alt) && len(V.Alt) > 0
}

//Step describes one position of the helix window, hosting one base pair.
type Step struct {
	Index        int
	Offset       int   //relative to the center of the window
	Position     int64 //absolute genomic coordinate
	Base1        byte  //displayed base on strand 1
	Base2        byte  //displayed base on strand 2
	MutationSite bool
	Indel        bool //the mutation site of an insertion/deletion. Never true otherwise.
}

//Scene contains the atoms and bonds for exactly one generated helix segment.
//A Scene is built at once by Generate and never changed afterwards.
type Scene struct {
	Atoms   []*Atom
	Bonds   []*Bond
	Steps   []Step
	Center  int64
	Variant *Variant //nil if no variant was given
}

//Scene methods

//Len returns the number of atoms in the scene.
func (S *Scene) Len() int {
	if S == nil {
		return 0
	}
	return len(S.Atoms)
}

//Empty returns true if the scene has no atoms.
func (S *Scene) Empty() bool {
	return S.Len() == 0
}

//Atom returns the Atom corresponding to the index i
//of the Atom slice in the Scene. Panics if
//out of range.
func (S *Scene) Atom(i int) *Atom {
	if i >= S.Len() || i < 0 {
		panic(fmt.Sprintf("Scene: Requested Atom (%d) out of bounds", i))
	}
	return S.Atoms[i]
}

//Coords returns a Nx3 matrix with the positions of all the atoms, in the
//same order as the Atoms slice. It returns nil for an empty scene.
func (S *Scene) Coords() *v3.Matrix {
	if S.Empty() {
		return nil
	}
	coords := v3.Zeros(S.Len())
	for i, a := range S.Atoms {
		coords.Set(i, 0, a.X)
		coords.Set(i, 1, a.Y)
		coords.Set(i, 2, a.Z)
	}
	return coords
}

//BondsOfKind returns the bonds of the given kind, in scene order.
func (S *Scene) BondsOfKind(kind BondKind) []*Bond {
	ret := make([]*Bond, 0, len(S.Bonds)/4)
	for _, b := range S.Bonds {
		if b.Kind == kind {
			ret = append(ret, b)
		}
	}
	return ret
}

//MutationSites returns all the atoms flagged as mutation site.
//For a scene built by Generate there is at most one.
func (S *Scene) MutationSites() []*Atom {
	var ret []*Atom
	for _, a := range S.Atoms {
		if a.IsMutationSite {
			ret = append(ret, a)
		}
	}
	return ret
}

//Index returns a map from atom ID to the position of the atom in the Atoms slice.
func (S *Scene) Index() map[string]int {
	ret := make(map[string]int, S.Len())
	for i, a := range S.Atoms {
		ret[a.ID] = i
	}
	return ret
}
