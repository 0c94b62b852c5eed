/*
 * fit.go, part of DeDNA.
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

import (
	"math"

	dna "github.com/Eldergenix/DeDNA"
	"gonum.org/v1/gonum/floats"
)

//FitMargin is the fraction of the half viewport that FitZoom fills.
const FitMargin = 0.9

//FitZoom returns the zoom at which the whole scene fits in vp whatever the orientation.
//The bounding sphere is taken around the origin, which is the rotation center, and its
//nearest point is projected at the largest perspective scale.
//It returns 1 for empty scenes and viewports. The caller is expected to clamp the result.
func FitZoom(scene *dna.Scene, vp Viewport, opts Options) float64 {
	if vp.Empty() || scene.Empty() {
		return 1
	}
	coords := scene.Coords()
	dists := make([]float64, scene.Len())
	for i, a := range scene.Atoms {
		dists[i] = floats.Norm(coords.RawRowView(i), 2) + a.Size
	}
	radius := floats.Max(dists)
	den := opts.Focal - radius
	if radius <= 0 || den <= 0 {
		return 1
	}
	half := math.Min(vp.Width, vp.Height) / 2 * FitMargin
	//the nearest point has depth -radius
	return half * den / (opts.Focal * opts.BaseScale * radius)
}
