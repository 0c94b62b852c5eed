/*
 * render.go, part of DeDNA.
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
	"image/color"
	"sort"

	dna "github.com/Eldergenix/DeDNA"
	v3 "github.com/Eldergenix/DeDNA/v3"
)

//Kind tells whether a primitive is an atom or a bond.
type Kind int

const (
	AtomPrim Kind = iota
	BondPrim
)

func (K Kind) String() string {
	if K == BondPrim {
		return "bond"
	}
	return "atom"
}

//Style is the line style of a bond primitive.
type Style int

const (
	Solid Style = iota
	Double
	Dashed
)

func (S Style) String() string {
	switch S {
	case Double:
		return "double"
	case Dashed:
		return "dashed"
	default:
		return "solid"
	}
}

//View is the orientation and zoom the scene is seen with. Angles in radians.
type View struct {
	RotationX float64
	RotationY float64
	Zoom      float64
}

//Viewport is the size of the drawing area, in pixels.
type Viewport struct {
	Width  float64
	Height float64
}

//Empty returns true if nothing can be drawn in the viewport.
func (V Viewport) Empty() bool {
	return V.Width <= 0 || V.Height <= 0
}

//Options control the projection and the decorations.
type Options struct {
	Focal     float64 //distance from the eye to the projection plane, in helix units
	BaseScale float64 //pixels per helix unit at zoom 1 and depth 0
	BondWidth float64 //width of a single bond at zoom 1 and depth 0, in pixels
	Phase     float64 //phase of the mutation-site pulse, in radians
}

//DefaultOptions returns the options used when nothing else is given.
func DefaultOptions() Options {
	return Options{Focal: 60, BaseScale: 8, BondWidth: 1.5}
}

//Primitive is one thing to draw. Atoms use X, Y and Radius, bonds use X1, Y1, X2, Y2 and Width.
//Glow and Halo are radii, 0 when the decoration is absent.
type Primitive struct {
	Kind    Kind
	ID      string
	X, Y    float64
	Radius  float64
	X1, Y1  float64
	X2, Y2  float64
	Color   color.RGBA
	Style   Style
	Width   float64
	Opacity float64
	Depth   float64
	Glow    float64
	Halo    float64
}

//Bond colors that do not come from an atom.
var (
	HBondColor    = color.RGBA{120, 200, 255, 255}
	BackboneColor = color.RGBA{255, 190, 90, 255}
)

//projected is an atom in screen space.
type projected struct {
	x, y, scale, depth float64
	culled             bool
}

//Render rotates the scene by view, projects it into vp and returns the atom and bond
//primitives sorted from the farthest to the nearest. Primitives with the same depth keep
//the scene order, bonds before atoms. A viewport without area gives nil, an empty
//scene an empty, non-nil, slice. Atoms behind the eye are dropped, together with their bonds.
func Render(scene *dna.Scene, view View, vp Viewport, opts Options) []Primitive {
	if vp.Empty() {
		return nil
	}
	if scene.Empty() {
		return []Primitive{}
	}
	proj := project(scene, view, vp, opts)
	index := make(map[*dna.Atom]int, scene.Len())
	for i, a := range scene.Atoms {
		index[a] = i
	}
	prims := make([]Primitive, 0, scene.Len()+len(scene.Bonds))
	for _, b := range scene.Bonds {
		i, ok1 := index[b.Start]
		j, ok2 := index[b.End]
		if !ok1 || !ok2 {
			continue //not ours, can't place it
		}
		p1, p2 := proj[i], proj[j]
		if p1.culled || p2.culled {
			continue
		}
		prims = append(prims, bondPrimitive(b, p1, p2, opts))
	}
	for i, a := range scene.Atoms {
		p := proj[i]
		if p.culled {
			continue
		}
		prims = append(prims, atomPrimitive(a, p, opts))
	}
	sort.SliceStable(prims, func(i, j int) bool { return prims[i].Depth > prims[j].Depth })
	return prims
}

//project takes every atom of the scene to screen space.
func project(scene *dna.Scene, view View, vp Viewport, opts Options) []projected {
	coords := scene.Coords()
	rotated := v3.Zeros(coords.NVecs())
	rotated.Rotate(coords, v3.ViewRotator(view.RotationY, view.RotationX))
	cx, cy := vp.Width/2, vp.Height/2
	ret := make([]projected, coords.NVecs())
	for i := range ret {
		x, y, depth := rotated.At(i, 0), rotated.At(i, 1), rotated.At(i, 2)
		den := opts.Focal + depth
		if den <= 0 {
			ret[i] = projected{depth: depth, culled: true}
			continue
		}
		scale := opts.Focal / den * view.Zoom * opts.BaseScale
		ret[i] = projected{x: cx + x*scale, y: cy + y*scale, scale: scale, depth: depth}
	}
	return ret
}

func atomPrimitive(a *dna.Atom, p projected, opts Options) Primitive {
	r := a.Size * p.scale
	prim := Primitive{
		Kind:    AtomPrim,
		ID:      a.ID,
		X:       p.x,
		Y:       p.y,
		Radius:  r,
		Color:   a.Color,
		Opacity: Fade(p.depth),
		Depth:   p.depth,
		Halo:    HaloRadius(r, a.Charge),
	}
	if a.IsMutationSite {
		prim.Glow = GlowRadius(r, opts.Phase)
	}
	return prim
}

func bondPrimitive(b *dna.Bond, p1, p2 projected, opts Options) Primitive {
	depth := (p1.depth + p2.depth) / 2
	width := opts.BondWidth * (p1.scale + p2.scale) / 2 / opts.BaseScale
	prim := Primitive{
		Kind:    BondPrim,
		ID:      b.ID,
		X1:      p1.x,
		Y1:      p1.y,
		X2:      p2.x,
		Y2:      p2.y,
		Color:   b.Start.Color,
		Style:   Solid,
		Opacity: Fade(depth),
		Depth:   depth,
	}
	switch b.Kind {
	case dna.DoubleBond:
		prim.Style = Double
	case dna.HydrogenBond:
		prim.Style = Dashed
		prim.Color = HBondColor
		width *= 0.6
	case dna.BackboneLink:
		prim.Color = BackboneColor
		width *= 2
	}
	prim.Width = width
	return prim
}
