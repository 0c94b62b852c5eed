/*
 * stats.go, part of DeDNA.
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

package helixgraph

import (
	"sort"

	dna "github.com/Eldergenix/DeDNA"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

//HBondSummary describes the hydrogen bonds of a scene. Distances are measured
//in the plane of the bases, as they are when the bonds are built.
type HBondSummary struct {
	Count   int
	Mean    float64
	StdDev  float64 //0 if there are less than 2 bonds
	Min     float64
	Max     float64
	PerStep []int //number of bonds at each step

	//Histogram[i] counts the bonds with distances in [Dividers[i], Dividers[i+1]).
	Dividers  []float64
	Histogram []float64
}

//HistogramWidth is the width of the bins of HBondSummary.Histogram.
const HistogramWidth = 0.5

//HBondStats returns the summary of the hydrogen bonds of scene.
func HBondStats(scene *dna.Scene) HBondSummary {
	ret := HBondSummary{PerStep: make([]int, len(scene.Steps))}
	var dists []float64
	for _, b := range scene.BondsOfKind(dna.HydrogenBond) {
		dists = append(dists, b.Start.Planar(b.End.Point3D))
		if s := b.Start.Step; s >= 0 && s < len(ret.PerStep) {
			ret.PerStep[s]++
		}
	}
	ret.Count = len(dists)
	switch ret.Count {
	case 0:
		return ret
	case 1:
		ret.Mean = dists[0]
	default:
		ret.Mean, ret.StdDev = stat.MeanStdDev(dists, nil)
	}
	ret.Min = floats.Min(dists)
	ret.Max = floats.Max(dists)
	nbins := int(ret.Max/HistogramWidth) + 1
	ret.Dividers = make([]float64, nbins+1)
	floats.Span(ret.Dividers, 0, float64(nbins)*HistogramWidth)
	sort.Float64s(dists)
	ret.Histogram = stat.Histogram(nil, ret.Dividers, dists, nil)
	return ret
}
