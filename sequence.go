/*
 * sequence.go, part of DeDNA.
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

import "math"

const bases = "ACGT"

//BackgroundBase returns the base shown at the absolute coordinate pos when no
//variant overrides it. It is derived from the fractional part of a sine transform
//of the coordinate, so the same coordinate always gives the same base and no
//reference genome is needed.
func BackgroundBase(pos int64) byte {
	x := math.Abs(math.Sin(float64(pos)*12.9898) * 43758.5453)
	f := x - math.Floor(x)
	bucket := int(f * 4)
	if bucket > 3 {
		bucket = 3
	}
	return bases[bucket]
}

var complement [256]byte

func init() {
	complement['A'] = 'T'
	complement['C'] = 'G'
	complement['G'] = 'C'
	complement['T'] = 'A'
	complement['a'] = 'T'
	complement['c'] = 'G'
	complement['g'] = 'C'
	complement['t'] = 'A'
}

//Complement returns the Watson-Crick partner of b (A-T, C-G). Symbols
//other than A, C, G and T give 'N'.
func Complement(b byte) byte {
	c := complement[b]
	if c == 0 {
		return 'N'
	}
	return c
}

//StepOffset returns the offset from the center of the window for the ith of n steps.
//The step with offset 0 is i=n/2.
func StepOffset(i, n int) int {
	return i - n/2
}

//Sequence returns the background bases of strand 1 for a window of n
//steps around position, in step order.
func Sequence(position int64, n int) string {
	if n <= 0 {
		return ""
	}
	seq := make([]byte, n)
	for i := range seq {
		seq[i] = BackgroundBase(position + int64(StepOffset(i, n)))
	}
	return string(seq)
}
