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

package testcases

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf/graphics"
)

// kappa for cubic Bezier approximation of a quarter circle
const kappa = 0.5522847498307936

var curveCases = []TestCase{
	{
		Name:   "quadratic",
		Path:   (&path.Data{}).MoveTo(pt(10, 50)).QuadTo(pt(32, 10), pt(54, 50)),
		Width:  64,
		Height: 64,
		Op:     solid(4, graphics.LineCapRound, graphics.LineJoinRound),
	},
	{
		Name:   "quadratic_shallow",
		Path:   (&path.Data{}).MoveTo(pt(10, 32)).QuadTo(pt(32, 28), pt(54, 32)),
		Width:  64,
		Height: 64,
		Op:     solid(4, graphics.LineCapButt, graphics.LineJoinMiter),
	},
	{
		// the curve turns back on itself at its apex
		Name:   "quadratic_cusp",
		Path:   (&path.Data{}).MoveTo(pt(10, 32)).QuadTo(pt(54, 32), pt(32, 32)),
		Width:  64,
		Height: 64,
		Op:     solid(4, graphics.LineCapButt, graphics.LineJoinMiter),
	},
	{
		Name:   "quadratic_degenerate",
		Path:   (&path.Data{}).MoveTo(pt(10, 32)).QuadTo(pt(10, 32), pt(54, 32)),
		Width:  64,
		Height: 64,
		Op:     solid(4, graphics.LineCapButt, graphics.LineJoinMiter),
		Area:   44 * 4,
	},
	{
		Name:   "cubic",
		Path:   cubic(10, 50, 20, 10, 44, 10, 54, 50),
		Width:  64,
		Height: 64,
		Op:     solid(4, graphics.LineCapRound, graphics.LineJoinRound),
	},
	{
		Name:   "cubic_scurve",
		Path:   cubic(10, 50, 10, 10, 54, 54, 54, 14),
		Width:  64,
		Height: 64,
		Op:     solid(4, graphics.LineCapRound, graphics.LineJoinRound),
	},
	{
		Name:   "cubic_loop",
		Path:   cubic(10, 32, 60, 5, 4, 59, 54, 32),
		Width:  64,
		Height: 64,
		Op:     solid(3, graphics.LineCapButt, graphics.LineJoinRound),
	},
	{
		Name:   "cubic_cusp",
		Path:   cubic(10, 50, 54, 10, 10, 10, 54, 50),
		Width:  64,
		Height: 64,
		Op:     solid(4, graphics.LineCapButt, graphics.LineJoinMiter),
	},
	{
		Name:   "cubic_nearly_straight",
		Path:   cubic(10, 32, 24, 31.5, 40, 31.5, 54, 32),
		Width:  64,
		Height: 64,
		Op:     solid(4, graphics.LineCapSquare, graphics.LineJoinMiter),
	},
	{
		// all control points coincide
		Name:   "cubic_degenerate",
		Path:   cubic(32, 32, 32, 32, 32, 32, 32, 32),
		Width:  64,
		Height: 64,
		Op:     solid(8, graphics.LineCapRound, graphics.LineJoinRound),
		Area:   16 * math.Pi,
	},
	{
		Name:   "circle",
		Path:   circle(32, 32, 25),
		Width:  64,
		Height: 64,
		Op:     solid(3, graphics.LineCapButt, graphics.LineJoinRound),
		Area:   2 * math.Pi * 25 * 3,
	},
	{
		Name:   "circle_thick",
		Path:   circle(32, 32, 16),
		Width:  64,
		Height: 64,
		Op:     solid(20, graphics.LineCapButt, graphics.LineJoinMiter),
		Area:   2 * math.Pi * 16 * 20,
	},
	{
		Name:   "ellipse",
		Path:   ellipse(32, 32, 28, 14),
		Width:  64,
		Height: 64,
		Op:     solid(2, graphics.LineCapButt, graphics.LineJoinRound),
	},
	{
		Name:   "arc",
		Path:   arc(32, 32, 20, 3),
		Width:  64,
		Height: 64,
		Op:     solid(4, graphics.LineCapRound, graphics.LineJoinRound),
		Area:   0.75*2*math.Pi*20*4 + 4*math.Pi,
	},
}

func cubic(x1, y1, c1x, c1y, c2x, c2y, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		CubeTo(pt(c1x, c1y), pt(c2x, c2y), pt(x2, y2))
}

// circle builds an approximate circle using four cubic Bezier curves.
func circle(cx, cy, r float64) *path.Data {
	return ellipse(cx, cy, r, r)
}

// ellipse builds an approximate ellipse using four cubic Bezier curves.
func ellipse(cx, cy, rx, ry float64) *path.Data {
	kx := rx * kappa
	ky := ry * kappa

	return (&path.Data{}).
		MoveTo(pt(cx+rx, cy)).
		CubeTo(pt(cx+rx, cy-ky), pt(cx+kx, cy-ry), pt(cx, cy-ry)).
		CubeTo(pt(cx-kx, cy-ry), pt(cx-rx, cy-ky), pt(cx-rx, cy)).
		CubeTo(pt(cx-rx, cy+ky), pt(cx-kx, cy+ry), pt(cx, cy+ry)).
		CubeTo(pt(cx+kx, cy+ry), pt(cx+rx, cy+ky), pt(cx+rx, cy)).
		Close()
}

// arc builds an open circular arc made of the given number of quadrants,
// starting at the right of the circle.
func arc(cx, cy, r float64, quadrants int) *path.Data {
	k := r * kappa
	p := (&path.Data{}).MoveTo(pt(cx+r, cy))
	for i := range quadrants {
		// rotate the first quadrant by i quarter turns
		rot := func(x, y float64) (float64, float64) {
			for range i {
				x, y = y, -x
			}
			return x, y
		}
		c1x, c1y := rot(r, -k)
		c2x, c2y := rot(k, -r)
		ex, ey := rot(0, -r)
		p = p.CubeTo(pt(cx+c1x, cy+c1y), pt(cx+c2x, cy+c2y), pt(cx+ex, cy+ey))
	}
	return p
}
