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

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/outline/internal/planar"
)

// Direction gives the winding sense of an arc.
type Direction int

// These are the possible winding senses.  With the y-axis pointing up,
// CCW arcs turn left.
const (
	CCW Direction = iota
	CW
)

func (d Direction) String() string {
	switch d {
	case CCW:
		return "CCW"
	case CW:
		return "CW"
	default:
		return "Direction(?)"
	}
}

// kappa places the control points of a cubic quarter circle.
const kappa = 0.5522847498307936

// quadrantArc holds the unit circle from angle 0 to 90°, as a cubic.
var quadrantArc = [4]vec.Vec2{
	{X: 1, Y: 0},
	{X: 1, Y: kappa},
	{X: kappa, Y: 1},
	{X: 0, Y: 1},
}

// ArcTolerance is the maximal radial error of a unit circle arc
// constructed by [BuildArc].
const ArcTolerance = 2.8e-4

// BuildArc appends cubic segments approximating the arc of the unit circle
// from direction start to direction stop, both unit vectors, turning in
// the direction dir.  Each segment is given by its two control points and
// its end point; the arc begins at m applied to start.  All points are
// transformed by m before they are stored.
//
// Whole quadrants are taken from a fixed table, the last segment is
// truncated so that it ends exactly at stop.  If start and stop are
// (nearly) the same, no segments are appended and the arc degenerates to
// a single point.
func BuildArc(start, stop vec.Vec2, dir Direction, m matrix.Matrix, dst [][3]vec.Vec2) [][3]vec.Vec2 {
	dot := start.Dot(stop)
	cross := planar.Cross(start, stop)
	if dir == CW {
		cross = -cross
	}
	if math.Abs(cross) <= arcNearlyZero && dot > 0 {
		return dst
	}
	theta := math.Atan2(cross, dot)
	if theta < 0 {
		theta += 2 * math.Pi
	}

	// local frame: x along start, y towards the turning side
	side := planar.Perp(start)
	if dir == CW {
		side = side.Mul(-1)
	}
	toUser := func(p vec.Vec2) vec.Vec2 {
		q := start.Mul(p.X).Add(side.Mul(p.Y))
		return apply(m, q)
	}

	quadrants := int(theta / (math.Pi / 2))
	rest := theta - float64(quadrants)*math.Pi/2
	if rest <= arcNearlyZero && quadrants > 0 {
		rest = 0
	}
	if quadrants > 4 {
		quadrants = 4
	}

	for i := range quadrants {
		var seg [3]vec.Vec2
		for j := 1; j < 4; j++ {
			seg[j-1] = toUser(rotQuarter(quadrantArc[j], i))
		}
		dst = append(dst, seg)
	}
	if rest > 0 {
		target := vec.Vec2{X: math.Cos(rest), Y: math.Sin(rest)}
		part, ok := TruncateCubic(quadrantArc, target)
		if !ok {
			part = [4]vec.Vec2{quadrantArc[0], quadrantArc[0], target, target}
		}
		var seg [3]vec.Vec2
		for j := 1; j < 4; j++ {
			seg[j-1] = toUser(rotQuarter(part[j], quadrants))
		}
		dst = append(dst, seg)
	}

	// pin the end point to the requested direction
	if n := len(dst); n > 0 {
		dst[n-1][2] = apply(m, stop)
	}
	return dst
}

const arcNearlyZero = 1e-12

// rotQuarter rotates p counter-clockwise by n quarter turns.
func rotQuarter(p vec.Vec2, n int) vec.Vec2 {
	switch n & 3 {
	case 1:
		return vec.Vec2{X: -p.Y, Y: p.X}
	case 2:
		return vec.Vec2{X: -p.X, Y: -p.Y}
	case 3:
		return vec.Vec2{X: p.Y, Y: -p.X}
	}
	return p
}

// apply maps p through the affine transformation m.
func apply(m matrix.Matrix, p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}
