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

var complexCases = []TestCase{
	{
		Name:   "mixed_lines_curves",
		Path:   mixedLinesCurves(),
		Width:  64,
		Height: 64,
		Op:     solid(3, graphics.LineCapRound, graphics.LineJoinRound),
	},
	{
		Name:   "mixed_miter",
		Path:   mixedLinesCurves(),
		Width:  64,
		Height: 64,
		Op:     solid(3, graphics.LineCapButt, graphics.LineJoinMiter),
	},
	{
		Name:   "spiral_overlap",
		Path:   spiral(32, 32, 5, 25, 3),
		Width:  64,
		Height: 64,
		Op:     solid(4, graphics.LineCapRound, graphics.LineJoinRound),
	},
	{
		Name:   "figure_eight",
		Path:   figureEight(32, 32, 20),
		Width:  64,
		Height: 64,
		Op:     solid(4, graphics.LineCapRound, graphics.LineJoinRound),
	},
	{
		// the inner radius of the turn is smaller than half the width
		Name:   "thick_tight_curve",
		Path:   tightCurve(32, 32, 15),
		Width:  64,
		Height: 64,
		Op:     solid(10, graphics.LineCapRound, graphics.LineJoinRound),
	},
	{
		Name:   "zigzag_thick",
		Path:   zigzag(10, 32, 54, 20, 5),
		Width:  64,
		Height: 64,
		Op:     solid(8, graphics.LineCapRound, graphics.LineJoinRound),
	},
	{
		Name:   "zigzag_dashed",
		Path:   zigzag(10, 32, 54, 20, 5),
		Width:  64,
		Height: 64,
		Op:     dashed(3, graphics.LineCapSquare, 2, 7, 3),
	},
}

// mixedLinesCurves builds a closed figure combining line segments and
// Bezier curves.
func mixedLinesCurves() *path.Data {
	return (&path.Data{}).
		MoveTo(pt(10, 50)).
		LineTo(pt(20, 30)).
		QuadTo(pt(32, 10), pt(44, 30)).
		LineTo(pt(54, 50)).
		CubeTo(pt(48, 60), pt(16, 60), pt(10, 50)).
		Close()
}

// spiral builds an Archimedean spiral from line segments, with 32
// segments per turn.
func spiral(cx, cy, rMin, rMax, turns float64) *path.Data {
	steps := max(int(turns*32), 8)
	total := turns * 2 * math.Pi
	growth := (rMax - rMin) / total

	p := (&path.Data{}).MoveTo(pt(cx+rMin, cy))
	for i := 1; i <= steps; i++ {
		angle := float64(i) / float64(steps) * total
		r := rMin + growth*angle
		p = p.LineTo(pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle)))
	}
	return p
}

// figureEight builds two loops which meet at (cx, cy).  The figure
// crosses itself at the meeting point.
func figureEight(cx, cy, size float64) *path.Data {
	r := size / 2
	k := r * kappa
	top := cy - r/2
	bot := cy + r/2

	return (&path.Data{}).
		MoveTo(pt(cx, cy)).
		CubeTo(pt(cx+k, cy-r/4), pt(cx+r, top-k/2), pt(cx+r, top)).
		CubeTo(pt(cx+r, top-k), pt(cx+k, top-r), pt(cx, top-r)).
		CubeTo(pt(cx-k, top-r), pt(cx-r, top-k), pt(cx-r, top)).
		CubeTo(pt(cx-r, top+k/2), pt(cx-k, cy-r/4), pt(cx, cy)).
		CubeTo(pt(cx-k, cy+r/4), pt(cx-r, bot-k/2), pt(cx-r, bot)).
		CubeTo(pt(cx-r, bot+k), pt(cx-k, bot+r), pt(cx, bot+r)).
		CubeTo(pt(cx+k, bot+r), pt(cx+r, bot+k), pt(cx+r, bot)).
		CubeTo(pt(cx+r, bot-k/2), pt(cx+k, cy+r/4), pt(cx, cy))
}

// tightCurve builds a U-turn of radius r between two vertical lines.
func tightCurve(cx, cy, r float64) *path.Data {
	k := r * kappa
	return (&path.Data{}).
		MoveTo(pt(cx-r, cy-r)).
		LineTo(pt(cx-r, cy)).
		CubeTo(pt(cx-r, cy+k), pt(cx-k, cy+r), pt(cx, cy+r)).
		CubeTo(pt(cx+k, cy+r), pt(cx+r, cy+k), pt(cx+r, cy)).
		LineTo(pt(cx+r, cy-r))
}

// zigzag builds a line from x1 to x2 which alternates between
// cy-amplitude and cy+amplitude.
func zigzag(x1, cy, x2, amplitude float64, segments int) *path.Data {
	step := (x2 - x1) / float64(segments)
	p := (&path.Data{}).MoveTo(pt(x1, cy))
	for i := 1; i <= segments; i++ {
		y := cy + amplitude
		if i%2 == 1 {
			y = cy - amplitude
		}
		p = p.LineTo(pt(x1+float64(i)*step, y))
	}
	return p
}
