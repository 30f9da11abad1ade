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
	"testing"

	"github.com/stretchr/testify/assert"
	"seehuhn.de/go/geom/vec"
)

func TestLengthStraight(t *testing.T) {
	q := [3]vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}
	assert.InDelta(t, 2, QuadLength(q), 1e-12)

	c := [4]vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3}}
	assert.InDelta(t, 3*math.Sqrt2, CubicLength(c), 1e-12)
}

func TestLengthQuarterCircle(t *testing.T) {
	assert.InDelta(t, math.Pi/2, CubicLength(quadrantArc), 1e-3)
}

func TestLengthMonotone(t *testing.T) {
	prev := 0.0
	for i := 1; i <= 20; i++ {
		tt := float64(i) / 20
		c := ChopCubicAt(testCubic, tt)
		l := CubicLength([4]vec.Vec2{c[0], c[1], c[2], c[3]})
		assert.Greater(t, l, prev, "t=%g", tt)
		prev = l

		q := ChopQuadAt(testQuad, tt)
		assert.Greater(t, QuadLength([3]vec.Vec2{q[0], q[1], q[2]}), 0.0)
	}
}

func TestParamAtLength(t *testing.T) {
	c := [4]vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}}
	assert.InDelta(t, 0.5, CubicParamAtLength(c, 1.5, 1e-9), 1e-8)
	assert.InDelta(t, 0.25, CubicParamAtLength(c, 0.75, 1e-9), 1e-8)
	assert.Equal(t, 0.0, CubicParamAtLength(c, 0, 1e-9))

	q := [3]vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}
	assert.InDelta(t, 0.5, QuadParamAtLength(q, 1, 1e-9), 1e-8)

	// result satisfies the length target on a curved segment
	target := CubicLength(testCubic) / 3
	tt := CubicParamAtLength(testCubic, target, 1e-9)
	part := ChopCubicAt(testCubic, tt)
	assert.InDelta(t, target, CubicLength([4]vec.Vec2{part[0], part[1], part[2], part[3]}), 1e-6)
}
