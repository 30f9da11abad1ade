// seehuhn.de/go/outline - stroke, offset and dash geometry for 2D paths
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package bezier

import (
	"seehuhn.de/go/geom/vec"
)

// QuadMaxCurvature returns the parameter in [0, 1] where the quadratic
// curve p has maximum curvature.  This is where F'(t)·F''(t) = 0.
func QuadMaxCurvature(p [3]vec.Vec2) float64 {
	ax := p[1].X - p[0].X
	ay := p[1].Y - p[0].Y
	bx := p[0].X - p[1].X - p[1].X + p[2].X
	by := p[0].Y - p[1].Y - p[1].Y + p[2].Y

	numer := -(ax*bx + ay*by)
	denom := bx*bx + by*by
	if numer <= 0 {
		return 0
	}
	if numer >= denom {
		return 1
	}
	return numer / denom
}

// ChopQuadAtMaxCurvature splits p at its point of maximum curvature,
// if this lies inside the curve.  The control points of the one or two
// resulting curves are appended to dst, with shared end points.
func ChopQuadAtMaxCurvature(p [3]vec.Vec2, dst []vec.Vec2) []vec.Vec2 {
	t := QuadMaxCurvature(p)
	if t == 0 || t == 1 {
		return append(dst, p[0], p[1], p[2])
	}
	q := ChopQuadAt(p, t)
	return append(dst, q[:]...)
}

// f1DotF2 adds the power basis coefficients of F'(t)·F''(t) for one
// coordinate of a cubic to coeff.  Common factors are dropped.
func f1DotF2(p0, p1, p2, p3 float64, coeff *[4]float64) {
	a := p1 - p0
	b := p2 - 2*p1 + p0
	c := p3 + 3*(p1-p2) - p0

	coeff[0] += c * c
	coeff[1] += 3 * b * c
	coeff[2] += 2*b*b + c*a
	coeff[3] += a * b
}

// CubicMaxCurvature appends to dst the parameters in (0, 1) where the
// curvature of the cubic curve p has a local extremum.
func CubicMaxCurvature(p [4]vec.Vec2, dst []float64) []float64 {
	var coeff [4]float64
	f1DotF2(p[0].X, p[1].X, p[2].X, p[3].X, &coeff)
	f1DotF2(p[0].Y, p[1].Y, p[2].Y, p[3].Y, &coeff)
	return UnitCubicRoots(coeff[0], coeff[1], coeff[2], coeff[3], dst)
}

// ChopCubicAtMaxCurvature splits p at the points returned by
// [CubicMaxCurvature].  The control points of the resulting curves are
// appended to dst; there are 3·n+1 of them for n pieces.
func ChopCubicAtMaxCurvature(p [4]vec.Vec2, dst []vec.Vec2) []vec.Vec2 {
	var buf [3]float64
	ts := CubicMaxCurvature(p, buf[:0])
	return ChopCubicAtMany(p, ts, dst)
}

// CubicInflections appends to dst the parameters in (0, 1) where the cubic
// curve p changes the direction in which it turns.  These are the zeros
// of F'(t)×F''(t).
func CubicInflections(p [4]vec.Vec2, dst []float64) []float64 {
	ax := p[1].X - p[0].X
	ay := p[1].Y - p[0].Y
	bx := p[2].X - 2*p[1].X + p[0].X
	by := p[2].Y - 2*p[1].Y + p[0].Y
	cx := p[3].X + 3*(p[1].X-p[2].X) - p[0].X
	cy := p[3].Y + 3*(p[1].Y-p[2].Y) - p[0].Y
	return UnitQuadRoots(bx*cy-by*cx, ax*cy-ay*cx, ax*by-ay*bx, dst)
}
