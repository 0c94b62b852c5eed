/*
 * doc.go, part of DeDNA.
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

/*Package dna is the main package of the DeDNA module. It builds approximate
double-helix models of a short DNA window around a genomic coordinate, so a
variant can be shown in its molecular context.

Capabilities:

	Derives a deterministic background sequence from the genomic coordinate
	alone (no reference genome is needed), and pairs it with its Watson-Crick
	complement.

	Builds the heavy-atom skeleton of the four nucleobases from fixed planar
	layouts, with partial charges used as a rendering aid.

	Lays out two strands of phosphate, sugar and base units along a helix,
	chains consecutive sugars with backbone bonds, and pairs donor/acceptor
	atoms across strands with a proximity heuristic.

	Shows a substitution as the alternate base on strand 1 at the center of
	the window. Insertions and deletions are only flagged.

	Writes scenes as XYZ files.

The render package projects a Scene into a depth-sorted list of 2D primitives,
and the viewer package drives rotation, zoom and regeneration of scenes from
pointer and timer events.
*/
package dna
