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

// Package planar holds the small vector helpers shared by the geometry
// packages.  Points and directions are both represented as [vec.Vec2].
package planar

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// NearlyZero is the squared length below which a vector is treated as
// having no direction.
const NearlyZero = 1e-20

// Cross returns the z component of the cross product a×b.
// The result is positive if b is counter-clockwise from a.
func Cross(a, b vec.Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

// Perp returns v rotated by 90° counter-clockwise.
func Perp(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: -v.Y, Y: v.X}
}

// LengthSq returns the squared length of v.
func LengthSq(v vec.Vec2) float64 {
	return v.X*v.X + v.Y*v.Y
}

// Unit returns v scaled to length one.  The second return value is false,
// and the zero vector is returned, if v is too short to have a direction.
func Unit(v vec.Vec2) (vec.Vec2, bool) {
	l2 := LengthSq(v)
	if !(l2 > NearlyZero) || math.IsInf(l2, 0) {
		return vec.Vec2{}, false
	}
	l := math.Sqrt(l2)
	return vec.Vec2{X: v.X / l, Y: v.Y / l}, true
}

// SetLength returns v scaled to length l.  If v has no direction, the
// second return value is false.
func SetLength(v vec.Vec2, l float64) (vec.Vec2, bool) {
	u, ok := Unit(v)
	if !ok {
		return vec.Vec2{}, false
	}
	return u.Mul(l), true
}

// Lerp interpolates linearly between a (t=0) and b (t=1).
func Lerp(a, b vec.Vec2, t float64) vec.Vec2 {
	return vec.Vec2{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
}

// Mid returns the midpoint of a and b.
func Mid(a, b vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// Close reports whether a and b are within tol of each other in both
// coordinates.
func Close(a, b vec.Vec2, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}

// Dist returns the Euclidean distance between a and b.
func Dist(a, b vec.Vec2) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}
