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

//Package render projects a helix scene into a flat list of drawing primitives.
//
//The scene is rotated into view space with a single matrix product, projected with
//a simple perspective, and the resulting circles (atoms) and segments (bonds) are
//sorted back to front so a painter's algorithm can draw them in order. The package
//does not draw anything itself; see the surface package for that.
package render
