/*
 * bonds.go, part of DeDNA.
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

import "fmt"

//BondKind tells how a bond is drawn and what it stands for.
type BondKind int

const (
	SingleBond BondKind = iota
	DoubleBond
	HydrogenBond
	BackboneLink
)

var bondKindNames = [...]string{"single", "double", "hydrogen", "backbone"}

func (K BondKind) String() string {
	if K < 0 || int(K) >= len(bondKindNames) {
		return "unknown"
	}
	return bondKindNames[K]
}

//ParseBondKind returns the BondKind with the given name, as given by String.
func ParseBondKind(s string) (BondKind, error) {
	for i, v := range bondKindNames {
		if v == s {
			return BondKind(i), nil
		}
	}
	return SingleBond, &CError{fmt.Sprintf("Unknown bond kind %q", s), []string{"ParseBondKind"}}
}

//Bond joins two atoms of the same scene.
type Bond struct {
	ID    string
	Start *Atom
	End   *Atom
	Kind  BondKind
}

//Cross returns the atom at the other end of the bond from origin.
func (B *Bond) Cross(origin *Atom) *Atom {
	if origin == B.Start {
		return B.End
	}
	if origin == B.End {
		return B.Start
	}
	panic("Trying to cross a bond: The origin atom given is not present in the bond!") //programming error
}

//Has returns true if a is one of the ends of the bond.
func (B *Bond) Has(a *Atom) bool {
	return B.Start == a || B.End == a
}

//Length returns the distance between the two atoms of the bond.
func (B *Bond) Length() float64 {
	dx := B.Start.X - B.End.X
	dy := B.Start.Y - B.End.Y
	dz := B.Start.Z - B.End.Z
	return planarDistance(planarDistance(dx, dz), dy)
}

//newBond returns a bond between a and b. The ID is built from the
//kind and the atom IDs, so it is unique as long as each pair is bonded once per kind.
func newBond(a, b *Atom, kind BondKind) *Bond {
	return &Bond{ID: fmt.Sprintf("%s:%s-%s", kind, a.ID, b.ID), Start: a, End: b, Kind: kind}
}
