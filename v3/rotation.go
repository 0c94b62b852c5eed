/*
 * rotation.go, part of DeDNA.
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

package v3

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

//sincos returns the sine and cosine of angle with values within
//appzero of zero set to exactly zero.
func sincos(angle float64) (float64, float64) {
	s, c := math.Sincos(angle)
	if math.Abs(s) <= appzero {
		s = 0
	}
	if math.Abs(c) <= appzero {
		c = 0
	}
	return s, c
}

//RotatorAroundY returns the 3x3 matrix that rotates row vectors by angle
//radians around the Y (helix) axis: x'=cos·x+sin·z, z'=-sin·x+cos·z.
func RotatorAroundY(angle float64) *Matrix {
	s, c := sincos(angle)
	return &Matrix{mat.NewDense(3, 3, []float64{
		c, 0, -s,
		0, 1, 0,
		s, 0, c,
	})}
}

//RotatorAroundX returns the 3x3 matrix that rotates row vectors by angle
//radians around the X axis: y'=cos·y-sin·z, z'=sin·y+cos·z.
func RotatorAroundX(angle float64) *Matrix {
	s, c := sincos(angle)
	return &Matrix{mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, c, s,
		0, -s, c,
	})}
}

//ViewRotator returns the matrix that first rotates around Y by roty and
//then around X by rotx. Coordinates C are taken into view space with C·R.
func ViewRotator(roty, rotx float64) *Matrix {
	R := Zeros(3)
	R.Mul(RotatorAroundY(roty), RotatorAroundX(rotx))
	return R
}

//Rotate puts in F the coordinates of A multiplied by the rotator R.
//F and A must have the same number of vectors.
func (F *Matrix) Rotate(A, R *Matrix) {
	if F.NVecs() != A.NVecs() {
		panic(ErrShape)
	}
	if r, c := R.Dims(); r != 3 || c != 3 {
		panic(ErrShape)
	}
	F.Mul(A, R)
}

//Centroid returns a 1-vector Matrix with the geometric center of A.
func Centroid(A *Matrix) *Matrix {
	n := A.NVecs()
	ret := Zeros(1)
	for i := 0; i < n; i++ {
		for j := 0; j < 3; j++ {
			ret.Set(0, j, ret.At(0, j)+A.At(i, j))
		}
	}
	ret.Dense.Scale(1/float64(n), ret.Dense)
	return ret
}
