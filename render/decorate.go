/*
 * decorate.go, part of DeDNA.
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

import "math"

//Depth range over which atoms fade, and how much they fade at most.
const (
	fadeNear  = -15.0
	fadeRange = 30.0
	fadeMax   = 0.6
)

//HaloCharge is the absolute partial charge above which an atom gets a halo.
const HaloCharge = 0.4

//Fade returns the opacity of something at the given depth. It goes from 1, for
//depth -15 and nearer, down to 0.4 for depth 15 and farther.
func Fade(depth float64) float64 {
	t := (depth - fadeNear) / fadeRange
	t = math.Max(0, math.Min(1, t))
	return 1 - fadeMax*t
}

//GlowRadius returns the radius of the pulsing glow around the mutation site
//for an atom of the given radius at the given pulse phase.
func GlowRadius(radius, phase float64) float64 {
	return radius * (1.9 + 0.35*math.Sin(phase))
}

//HaloRadius returns the radius of the charge halo of an atom, or 0
//if the charge is too small to deserve one.
func HaloRadius(radius, charge float64) float64 {
	if math.Abs(charge) <= HaloCharge {
		return 0
	}
	return radius * 1.45
}
