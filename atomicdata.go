/*
 * atomicdata.go, part of DeDNA.
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
)

//Element is the kind of an atom in a scene. Phosphate and Sugar are pseudo-atoms
//standing for a whole backbone group.
type Element int

const (
	Carbon Element = iota
	Nitrogen
	Oxygen
	Hydrogen
	Phosphate
	Sugar
	Mutated //the distinguished tag of the mutation site
)

var elementNames = [...]string{"Carbon", "Nitrogen", "Oxygen", "Hydrogen", "Phosphate", "Sugar", "Mutated"}

func (E Element) String() string {
	if E < 0 || int(E) >= len(elementNames) {
		return "Unknown"
	}
	return elementNames[E]
}

//A map for the symbol of each element in XYZ files.
//Pseudo-atoms get the symbol of their central atom, the mutation tag a dummy atom.
var elementSymbol = map[Element]string{
	Carbon:    "C",
	Nitrogen:  "N",
	Oxygen:    "O",
	Hydrogen:  "H",
	Phosphate: "P",
	Sugar:     "C",
	Mutated:   "X",
}

//Symbol returns the chemical symbol used for the element in files.
func (E Element) Symbol() string {
	s, ok := elementSymbol[E]
	if !ok {
		return "X"
	}
	return s
}

//A map for the render radius of each element, in helix units.
//The backbone groups are drawn larger than single atoms.
var elementSize = map[Element]float64{
	Carbon:    0.85,
	Nitrogen:  0.9,
	Oxygen:    0.95,
	Hydrogen:  0.5,
	Phosphate: 1.6,
	Sugar:     1.3,
	Mutated:   1.5,
}

//Size returns the render radius of the element.
func (E Element) Size() float64 {
	s, ok := elementSize[E]
	if !ok {
		return 0.85
	}
	return s
}

//A map for the colors of elements, close to the usual CPK scheme.
var elementColor = map[Element]color.RGBA{
	Carbon:    {90, 90, 90, 255},
	Nitrogen:  {80, 80, 255, 255},
	Oxygen:    {255, 50, 50, 255},
	Hydrogen:  {240, 240, 240, 255},
	Phosphate: {255, 165, 0, 255},
	Sugar:     {214, 180, 120, 255},
	Mutated:   MutationColor,
}

//MutationColor is the color of every atom of a mutated base and of the mutation site.
var MutationColor = color.RGBA{255, 0, 200, 255}

//Color returns the color of the element.
func (E Element) Color() color.RGBA {
	c, ok := elementColor[E]
	if !ok {
		return color.RGBA{200, 100, 200, 255}
	}
	return c
}

//ParseElement returns the Element with the given name, as given by String.
func ParseElement(s string) (Element, error) {
	for i, v := range elementNames {
		if v == s {
			return Element(i), nil
		}
	}
	return Carbon, &CError{fmt.Sprintf("Unknown element %q", s), []string{"ParseElement"}}
}
