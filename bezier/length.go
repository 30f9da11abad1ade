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
	"math"

	"seehuhn.de/go/geom/vec"
)

// Gauss-Legendre nodes and weights on [-1, 1].
var (
	gl3 = [3][2]float64{
		{-0.7745966692414834, 0.5555555555555556},
		{0, 0.8888888888888888},
		{0.7745966692414834, 0.5555555555555556},
	}
	gl4 = [4][2]float64{
		{-0.8611363115940526, 0.3478548451374538},
		{-0.3399810435848563, 0.6521451548625461},
		{0.3399810435848563, 0.6521451548625461},
		{0.8611363115940526, 0.3478548451374538},
	}
)

// QuadLength estimates the arc length of the quadratic curve p using
// three point Gauss-Legendre quadrature.
func QuadLength(p [3]vec.Vec2) float64 {
	var sum float64
	for _, nw := range gl3 {
		t := (nw[0] + 1) / 2
		sum += nw[1] * QuadDerivative(p, t).Length()
	}
	return sum / 2
}

// CubicLength estimates the arc length of the cubic curve p using four
// point Gauss-Legendre quadrature.
func CubicLength(p [4]vec.Vec2) float64 {
	var sum float64
	for _, nw := range gl4 {
		t := (nw[0] + 1) / 2
		sum += nw[1] * CubicDerivative(p, t).Length()
	}
	return sum / 2
}

// MaxBisect is the maximal number of bisection steps used by
// [QuadParamAtLength] and [CubicParamAtLength].
const MaxBisect = 32

// QuadParamAtLength finds t such that the piece p[0..t] has arc length
// target, as estimated by [QuadLength].  The search stops once the length
// is within tol of the target, or after [MaxBisect] steps.
func QuadParamAtLength(p [3]vec.Vec2, target, tol float64) float64 {
	return bisect(target, tol, func(t float64) float64 {
		q := ChopQuadAt(p, t)
		return QuadLength([3]vec.Vec2{q[0], q[1], q[2]})
	})
}

// CubicParamAtLength is the cubic version of [QuadParamAtLength].
func CubicParamAtLength(p [4]vec.Vec2, target, tol float64) float64 {
	return bisect(target, tol, func(t float64) float64 {
		c := ChopCubicAt(p, t)
		return CubicLength([4]vec.Vec2{c[0], c[1], c[2], c[3]})
	})
}

func bisect(target, tol float64, length func(float64) float64) float64 {
	if !(target > 0) {
		return 0
	}
	lo, hi := 0.0, 1.0
	t := 0.5
	for range MaxBisect {
		t = (lo + hi) / 2
		l := length(t)
		if math.Abs(l-target) <= tol {
			break
		}
		if l < target {
			lo = t
		} else {
			hi = t
		}
	}
	return t
}
