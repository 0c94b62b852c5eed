/*
 * canvas.go, part of DeDNA.
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

//Package surface draws the primitives produced by the render package on gonum/plot
//vector canvases, and writes the results as SVG, PNG or animated GIF.
package surface

import (
	"image"
	"image/color"
	"io"
	"math"

	"github.com/Eldergenix/DeDNA/render"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgsvg"
)

//DefaultBackground is the background of new canvases when none is given.
var DefaultBackground = color.RGBA{10, 12, 24, 255}

//Canvas is a fixed-size drawing area. It implements viewer.Surface.
//Canvases are not safe for concurrent use.
type Canvas struct {
	cv     vg.Canvas
	img    *vgimg.Canvas //nil for SVG canvases
	svg    *vgsvg.Canvas //nil for raster canvases
	width  float64
	height float64
	bg     color.Color

	//Record, if true, keeps a GIF frame of each raster Draw. See Frames.
	Record bool
	frames []*image.Paletted
}

//NewImage returns a raster canvas of width x height pixels filled with bg
//(DefaultBackground if nil).
func NewImage(width, height int, bg color.Color) *Canvas {
	if bg == nil {
		bg = DefaultBackground
	}
	w, h := vg.Length(width), vg.Length(height)
	img := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(72), vgimg.UseBackgroundColor(bg))
	return &Canvas{cv: img, img: img, width: float64(width), height: float64(height), bg: bg}
}

//NewSVG returns an SVG canvas of width x height pixels (points, in SVG terms)
//filled with bg (DefaultBackground if nil).
func NewSVG(width, height int, bg color.Color) *Canvas {
	if bg == nil {
		bg = DefaultBackground
	}
	C := &Canvas{width: float64(width), height: float64(height), bg: bg}
	C.clear()
	return C
}

//Size returns the size of the canvas in pixels.
func (C *Canvas) Size() (width, height float64) {
	return C.width, C.height
}

//Viewport returns the viewport that covers the whole canvas.
func (C *Canvas) Viewport() render.Viewport {
	return render.Viewport{Width: C.width, Height: C.height}
}

//Draw paints the background and then prims, in order. Primitive coordinates are in
//pixels with the origin at the top left, as render produces them. A nil list only clears
//the canvas.
func (C *Canvas) Draw(prims []render.Primitive, vp render.Viewport) error {
	C.clear()
	for _, p := range prims {
		switch p.Kind {
		case render.AtomPrim:
			C.atom(p)
		case render.BondPrim:
			C.bond(p)
		}
	}
	if C.Record && C.img != nil {
		C.frames = append(C.frames, Paletted(C.img.Image()))
	}
	return nil
}

//Frames returns the GIF frames recorded so far.
func (C *Canvas) Frames() []*image.Paletted {
	return C.frames
}

//Image returns the image of a raster canvas, or nil for SVG canvases.
func (C *Canvas) Image() image.Image {
	if C.img == nil {
		return nil
	}
	return C.img.Image()
}

//WritePNG writes a raster canvas to out as PNG.
func (C *Canvas) WritePNG(out io.Writer) error {
	if C.img == nil {
		return &Error{"WritePNG on an SVG canvas", []string{"WritePNG"}}
	}
	if _, err := (vgimg.PngCanvas{Canvas: C.img}).WriteTo(out); err != nil {
		return &Error{err.Error(), []string{"WritePNG"}}
	}
	return nil
}

//WriteSVG writes an SVG canvas to out.
func (C *Canvas) WriteSVG(out io.Writer) error {
	if C.svg == nil {
		return &Error{"WriteSVG on a raster canvas", []string{"WriteSVG"}}
	}
	if _, err := C.svg.WriteTo(out); err != nil {
		return &Error{err.Error(), []string{"WriteSVG"}}
	}
	return nil
}

//clear fills a raster canvas with the background. SVG canvases are replaced by a new
//one, so the written document only holds the last Draw.
func (C *Canvas) clear() {
	if C.img == nil {
		C.svg = vgsvg.New(vg.Length(C.width), vg.Length(C.height))
		C.cv = C.svg
	}
	var p vg.Path
	p.Move(vg.Point{X: 0, Y: 0})
	p.Line(vg.Point{X: vg.Length(C.width), Y: 0})
	p.Line(vg.Point{X: vg.Length(C.width), Y: vg.Length(C.height)})
	p.Line(vg.Point{X: 0, Y: vg.Length(C.height)})
	p.Close()
	C.cv.SetColor(C.bg)
	C.cv.Fill(p)
}

//pt takes a point from screen pixels to the canvas, whose origin is the bottom left.
func (C *Canvas) pt(x, y float64) vg.Point {
	return vg.Point{X: vg.Length(x), Y: vg.Length(C.height - y)}
}

func (C *Canvas) circle(x, y, r float64) vg.Path {
	var p vg.Path
	c := C.pt(x, y)
	p.Move(vg.Point{X: c.X + vg.Length(r), Y: c.Y})
	p.Arc(c, vg.Length(r), 0, 2*math.Pi)
	p.Close()
	return p
}

func (C *Canvas) atom(p render.Primitive) {
	if p.Radius <= 0 {
		return
	}
	if p.Glow > 0 {
		C.cv.SetColor(faded(p.Color, 0.35*p.Opacity))
		C.cv.Fill(C.circle(p.X, p.Y, p.Glow))
	}
	if p.Halo > 0 {
		C.cv.SetLineWidth(vg.Length(math.Max(1, p.Radius*0.15)))
		C.cv.SetColor(faded(p.Color, 0.5*p.Opacity))
		C.cv.Stroke(C.circle(p.X, p.Y, p.Halo))
	}
	circle := C.circle(p.X, p.Y, p.Radius)
	C.cv.SetColor(faded(p.Color, p.Opacity))
	C.cv.Fill(circle)
	C.cv.SetLineWidth(vg.Length(math.Max(0.5, p.Radius*0.08)))
	C.cv.SetColor(faded(darker(p.Color), p.Opacity))
	C.cv.Stroke(circle)
}

func (C *Canvas) bond(p render.Primitive) {
	col := faded(p.Color, p.Opacity)
	switch p.Style {
	case render.Double:
		//two thinner lines, one on each side of the axis
		dx, dy := p.X2-p.X1, p.Y2-p.Y1
		l := math.Hypot(dx, dy)
		if l == 0 {
			return
		}
		ox, oy := -dy/l*p.Width*0.6, dx/l*p.Width*0.6
		C.line(p.X1+ox, p.Y1+oy, p.X2+ox, p.Y2+oy, p.Width*0.6, col)
		C.line(p.X1-ox, p.Y1-oy, p.X2-ox, p.Y2-oy, p.Width*0.6, col)
	case render.Dashed:
		C.cv.SetLineDash([]vg.Length{vg.Length(3 * p.Width), vg.Length(2 * p.Width)}, 0)
		C.line(p.X1, p.Y1, p.X2, p.Y2, p.Width, col)
		C.cv.SetLineDash(nil, 0)
	default:
		C.line(p.X1, p.Y1, p.X2, p.Y2, p.Width, col)
	}
}

func (C *Canvas) line(x1, y1, x2, y2, width float64, col color.Color) {
	var path vg.Path
	path.Move(C.pt(x1, y1))
	path.Line(C.pt(x2, y2))
	C.cv.SetLineWidth(vg.Length(width))
	C.cv.SetColor(col)
	C.cv.Stroke(path)
}

//faded returns c with its alpha multiplied by opacity.
func faded(c color.RGBA, opacity float64) color.NRGBA {
	opacity = math.Max(0, math.Min(1, opacity))
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(float64(c.A) * opacity))}
}

func darker(c color.RGBA) color.RGBA {
	return color.RGBA{R: c.R / 2, G: c.G / 2, B: c.B / 2, A: c.A}
}
