/*
 * gif.go, part of DeDNA.
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

package surface

import (
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
)

//Paletted converts img to a paletted image with the Plan 9 palette, so it can be a GIF frame.
func Paletted(img image.Image) *image.Paletted {
	bounds := img.Bounds()
	pal := image.NewPaletted(bounds, palette.Plan9)
	draw.Draw(pal, bounds, img, bounds.Min, draw.Src)
	return pal
}

//WriteGIF writes frames to out as an endlessly looping animated GIF, with
//delay hundredths of a second between frames.
func WriteGIF(out io.Writer, frames []*image.Paletted, delay int) error {
	if len(frames) == 0 {
		return &Error{"no frames to write", []string{"WriteGIF"}}
	}
	anim := &gif.GIF{
		Image:     frames,
		Delay:     make([]int, len(frames)),
		LoopCount: 0,
	}
	for i := range anim.Delay {
		anim.Delay[i] = delay
	}
	if err := gif.EncodeAll(out, anim); err != nil {
		return &Error{err.Error(), []string{"WriteGIF"}}
	}
	return nil
}
