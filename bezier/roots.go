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

// Package bezier implements the curve mathematics needed by the outline
// engines: root finding, subdivision, curvature analysis, arc length
// estimation and the construction of circular arcs from cubic segments.
//
// Quadratic curves are given as three control points, cubic curves as four.
// All functions are pure and safe for concurrent use.
package bezier

import (
	"math"
	"slices"
)

// unitDivide returns numer/denom if the quotient lies strictly between 0
// and 1.  It never produces NaN or infinite values.
func unitDivide(numer, denom float64) (float64, bool) {
	if numer < 0 {
		numer = -numer
		denom = -denom
	}
	if denom == 0 || numer == 0 || numer >= denom {
		return 0, false
	}
	r := numer / denom
	if math.IsNaN(r) || r <= 0 || r >= 1 {
		return 0, false
	}
	return r, true
}

// UnitQuadRoots appends to dst the roots of a·t² + b·t + c which lie
// strictly inside the interval (0, 1).  The roots are appended in
// increasing order and a double root is reported once.
func UnitQuadRoots(a, b, c float64, dst []float64) []float64 {
	if a == 0 {
		if r, ok := unitDivide(-c, b); ok {
			dst = append(dst, r)
		}
		return dst
	}

	disc := b*b - 4*a*c
	if disc < 0 || math.IsNaN(disc) {
		return dst
	}
	disc = math.Sqrt(disc)

	// q has the sign of -b, avoiding cancellation in either root.
	var q float64
	if b < 0 {
		q = -(b - disc) / 2
	} else {
		q = -(b + disc) / 2
	}

	start := len(dst)
	if r, ok := unitDivide(q, a); ok {
		dst = append(dst, r)
	}
	if r, ok := unitDivide(c, q); ok {
		dst = append(dst, r)
	}
	if len(dst)-start == 2 {
		switch {
		case dst[start] > dst[start+1]:
			dst[start], dst[start+1] = dst[start+1], dst[start]
		case dst[start] == dst[start+1]:
			dst = dst[:start+1]
		}
	}
	return dst
}

// SolveQuad appends all real roots of a·t² + b·t + c to dst, in
// increasing order.  If all coefficients vanish, no roots are reported.
func SolveQuad(a, b, c float64, dst []float64) []float64 {
	if a == 0 {
		if b != 0 {
			dst = append(dst, -c/b)
		}
		return dst
	}
	disc := b*b - 4*a*c
	if disc < 0 || math.IsNaN(disc) {
		return dst
	}
	if disc == 0 {
		return append(dst, -b/(2*a))
	}
	disc = math.Sqrt(disc)
	var q float64
	if b < 0 {
		q = -(b - disc) / 2
	} else {
		q = -(b + disc) / 2
	}
	r0 := q / a
	r1 := c / q
	if r0 > r1 {
		r0, r1 = r1, r0
	}
	return append(dst, r0, r1)
}

// SolveCubic appends all real roots of a·t³ + b·t² + c·t + d to dst, in
// increasing order and with duplicates removed.  Three real roots are
// found with the trigonometric method, a single one with Cardano's
// formula.  A vanishing leading coefficient falls back to [SolveQuad].
func SolveCubic(a, b, c, d float64, dst []float64) []float64 {
	scale := max(math.Abs(b), math.Abs(c), math.Abs(d))
	if math.Abs(a) <= 1e-12*scale || a == 0 {
		return SolveQuad(b, c, d, dst)
	}

	A := b / a
	B := c / a
	C := d / a

	Q := (A*A - 3*B) / 9
	R := (2*A*A*A - 9*A*B + 27*C) / 54
	Q3 := Q * Q * Q
	R2MinusQ3 := R*R - Q3
	adiv3 := A / 3

	start := len(dst)
	if R2MinusQ3 < 0 {
		ratio := R / math.Sqrt(Q3)
		ratio = max(-1, min(1, ratio))
		theta := math.Acos(ratio)
		neg2RootQ := -2 * math.Sqrt(Q)
		dst = append(dst,
			neg2RootQ*math.Cos(theta/3)-adiv3,
			neg2RootQ*math.Cos((theta+2*math.Pi)/3)-adiv3,
			neg2RootQ*math.Cos((theta-2*math.Pi)/3)-adiv3)
	} else {
		r := math.Cbrt(math.Abs(R) + math.Sqrt(R2MinusQ3))
		if R > 0 {
			r = -r
		}
		if r != 0 {
			r += Q / r
		}
		dst = append(dst, r-adiv3)
	}

	roots := dst[start:]
	slices.Sort(roots)
	roots = slices.Compact(roots)
	return dst[:start+len(roots)]
}

// UnitCubicRoots appends to dst the roots of a·t³ + b·t² + c·t + d which
// lie strictly inside (0, 1), in increasing order.
func UnitCubicRoots(a, b, c, d float64, dst []float64) []float64 {
	start := len(dst)
	dst = SolveCubic(a, b, c, d, dst)
	out := dst[:start]
	for _, t := range dst[start:] {
		if t > 0 && t < 1 {
			out = append(out, t)
		}
	}
	return out
}
