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

	"seehuhn.de/go/outline/internal/planar"
)

// EvalQuad returns the point at parameter t on the quadratic curve p.
func EvalQuad(p [3]vec.Vec2, t float64) vec.Vec2 {
	s := 1 - t
	a := s * s
	b := 2 * s * t
	c := t * t
	return vec.Vec2{
		X: a*p[0].X + b*p[1].X + c*p[2].X,
		Y: a*p[0].Y + b*p[1].Y + c*p[2].Y,
	}
}

// EvalCubic returns the point at parameter t on the cubic curve p.
func EvalCubic(p [4]vec.Vec2, t float64) vec.Vec2 {
	s := 1 - t
	a := s * s * s
	b := 3 * s * s * t
	c := 3 * s * t * t
	d := t * t * t
	return vec.Vec2{
		X: a*p[0].X + b*p[1].X + c*p[2].X + d*p[3].X,
		Y: a*p[0].Y + b*p[1].Y + c*p[2].Y + d*p[3].Y,
	}
}

// QuadDerivative returns the derivative of the quadratic curve p at t.
func QuadDerivative(p [3]vec.Vec2, t float64) vec.Vec2 {
	a := p[1].Sub(p[0])
	b := p[2].Sub(p[1])
	return planar.Lerp(a, b, t).Mul(2)
}

// CubicDerivative returns the derivative of the cubic curve p at t.
func CubicDerivative(p [4]vec.Vec2, t float64) vec.Vec2 {
	a := p[1].Sub(p[0])
	b := p[2].Sub(p[1])
	c := p[3].Sub(p[2])
	s := 1 - t
	return vec.Vec2{
		X: 3 * (s*s*a.X + 2*s*t*b.X + t*t*c.X),
		Y: 3 * (s*s*a.Y + 2*s*t*b.Y + t*t*c.Y),
	}
}

// QuadTangent returns a direction vector of the quadratic curve p at t.
// Where the derivative vanishes because control points coincide, the
// chord is used instead.
func QuadTangent(p [3]vec.Vec2, t float64) vec.Vec2 {
	d := QuadDerivative(p, t)
	if planar.LengthSq(d) > planar.NearlyZero {
		return d
	}
	return p[2].Sub(p[0])
}

// CubicTangent returns a direction vector of the cubic curve p at t.
// At the end points, coincident control points are skipped.
func CubicTangent(p [4]vec.Vec2, t float64) vec.Vec2 {
	d := CubicDerivative(p, t)
	if planar.LengthSq(d) > planar.NearlyZero {
		return d
	}
	switch t {
	case 0:
		d = p[2].Sub(p[0])
	case 1:
		d = p[3].Sub(p[1])
	}
	if planar.LengthSq(d) > planar.NearlyZero {
		return d
	}
	return p[3].Sub(p[0])
}

// ChopQuadAt splits the quadratic curve p at parameter t.  The result
// holds the two halves as q[0:3] and q[2:5].
func ChopQuadAt(p [3]vec.Vec2, t float64) [5]vec.Vec2 {
	p01 := planar.Lerp(p[0], p[1], t)
	p12 := planar.Lerp(p[1], p[2], t)
	mid := planar.Lerp(p01, p12, t)
	return [5]vec.Vec2{p[0], p01, mid, p12, p[2]}
}

// ChopQuadAtHalf splits the quadratic curve p at t = 1/2.
func ChopQuadAtHalf(p [3]vec.Vec2) [5]vec.Vec2 {
	p01 := planar.Mid(p[0], p[1])
	p12 := planar.Mid(p[1], p[2])
	return [5]vec.Vec2{p[0], p01, planar.Mid(p01, p12), p12, p[2]}
}

// ChopCubicAt splits the cubic curve p at parameter t.  The result holds
// the two halves as c[0:4] and c[3:7].
func ChopCubicAt(p [4]vec.Vec2, t float64) [7]vec.Vec2 {
	ab := planar.Lerp(p[0], p[1], t)
	bc := planar.Lerp(p[1], p[2], t)
	cd := planar.Lerp(p[2], p[3], t)
	abc := planar.Lerp(ab, bc, t)
	bcd := planar.Lerp(bc, cd, t)
	mid := planar.Lerp(abc, bcd, t)
	return [7]vec.Vec2{p[0], ab, abc, mid, bcd, cd, p[3]}
}

// ChopCubicAtHalf splits the cubic curve p at t = 1/2.
func ChopCubicAtHalf(p [4]vec.Vec2) [7]vec.Vec2 {
	ab := planar.Mid(p[0], p[1])
	bc := planar.Mid(p[1], p[2])
	cd := planar.Mid(p[2], p[3])
	abc := planar.Mid(ab, bc)
	bcd := planar.Mid(bc, cd)
	return [7]vec.Vec2{p[0], ab, abc, planar.Mid(abc, bcd), bcd, cd, p[3]}
}

// ChopCubicAtMany splits the cubic curve p at the increasing parameters ts,
// all of which must lie in (0, 1).  The 3·len(ts)+4 resulting control
// points are appended to dst; consecutive pieces share their end points.
func ChopCubicAtMany(p [4]vec.Vec2, ts []float64, dst []vec.Vec2) []vec.Vec2 {
	dst = append(dst, p[0])
	rest := p
	prev := 0.0
	for _, t := range ts {
		// map t into the parameter range of the remaining piece
		local, ok := unitDivide(t-prev, 1-prev)
		if !ok {
			continue
		}
		c := ChopCubicAt(rest, local)
		dst = append(dst, c[1], c[2], c[3])
		rest = [4]vec.Vec2{c[3], c[4], c[5], c[6]}
		prev = t
	}
	return append(dst, rest[1], rest[2], rest[3])
}

// ChopQuadAtMany splits the quadratic curve p at the increasing parameters
// ts.  The 2·len(ts)+3 resulting control points are appended to dst.
func ChopQuadAtMany(p [3]vec.Vec2, ts []float64, dst []vec.Vec2) []vec.Vec2 {
	dst = append(dst, p[0])
	rest := p
	prev := 0.0
	for _, t := range ts {
		local, ok := unitDivide(t-prev, 1-prev)
		if !ok {
			continue
		}
		q := ChopQuadAt(rest, local)
		dst = append(dst, q[1], q[2])
		rest = [3]vec.Vec2{q[2], q[3], q[4]}
		prev = t
	}
	return append(dst, rest[1], rest[2])
}

// QuadExtremum returns the parameter in (0, 1) where the one-dimensional
// quadratic with coefficients a, b, c has a zero derivative.
func QuadExtremum(a, b, c float64) (float64, bool) {
	return unitDivide(a-b, a-b-b+c)
}

// CubicExtrema appends to dst the parameters in (0, 1) where the
// one-dimensional cubic with coefficients a, b, c, d has a zero
// derivative.
func CubicExtrema(a, b, c, d float64, dst []float64) []float64 {
	A := d - a + 3*(b-c)
	B := 2 * (a - b - b + c)
	C := b - a
	return UnitQuadRoots(A, B, C, dst)
}

// TruncateQuad returns the part of the quadratic curve p from its start
// to the point where it passes target.  The end point of the result is
// exactly target.  The parameter is found along the axis where target
// deviates more from the start point.  If the curve does not pass target,
// ok is false.
func TruncateQuad(p [3]vec.Vec2, target vec.Vec2) ([3]vec.Vec2, bool) {
	a, b, c, v := p[0].X, p[1].X, p[2].X, target.X
	if useY(p[0], target) {
		a, b, c, v = p[0].Y, p[1].Y, p[2].Y, target.Y
	}

	var buf [2]float64
	roots := UnitQuadRoots(a-2*b+c, 2*(b-a), a-v, buf[:0])
	t, ok := closestRoot(roots, target, func(t float64) vec.Vec2 { return EvalQuad(p, t) })
	if !ok {
		if planar.Close(p[2], target, truncateTolerance) {
			p[2] = target
			return p, true
		}
		return p, false
	}
	q := ChopQuadAt(p, t)
	return [3]vec.Vec2{q[0], q[1], target}, true
}

// TruncateCubic is the cubic version of [TruncateQuad].
func TruncateCubic(p [4]vec.Vec2, target vec.Vec2) ([4]vec.Vec2, bool) {
	a, b, c, d, v := p[0].X, p[1].X, p[2].X, p[3].X, target.X
	if useY(p[0], target) {
		a, b, c, d, v = p[0].Y, p[1].Y, p[2].Y, p[3].Y, target.Y
	}

	var buf [3]float64
	roots := UnitCubicRoots(-a+3*b-3*c+d, 3*a-6*b+3*c, 3*(b-a), a-v, buf[:0])
	t, ok := closestRoot(roots, target, func(t float64) vec.Vec2 { return EvalCubic(p, t) })
	if !ok {
		if planar.Close(p[3], target, truncateTolerance) {
			p[3] = target
			return p, true
		}
		return p, false
	}
	q := ChopCubicAt(p, t)
	return [4]vec.Vec2{q[0], q[1], q[2], target}, true
}

const truncateTolerance = 1e-9

func closestRoot(roots []float64, target vec.Vec2, eval func(float64) vec.Vec2) (float64, bool) {
	best := -1.0
	bestDist := 0.0
	for _, t := range roots {
		d := planar.LengthSq(eval(t).Sub(target))
		if best < 0 || d < bestDist {
			best = t
			bestDist = d
		}
	}
	return best, best >= 0
}

func useY(start, target vec.Vec2) bool {
	return math.Abs(target.Y-start.Y) > math.Abs(target.X-start.X)
}
