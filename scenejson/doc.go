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

//Package scenejson writes and reads snapshots of helix scenes as JSON.
//
//A snapshot holds every atom with its coordinates and render data, the bonds (referring
//to atoms by ID), the step records and the variant. Files whose names end in .zst are
//compressed with z-standard, files ending in .gz with gzip; anything else is plain JSON.
package scenejson
