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

var strokeCases = []TestCase{
	{
		Name:   "line_butt",
		Path:   polyline(false, 10, 32, 54, 32),
		Width:  64,
		Height: 64,
		Op:     solid(8, graphics.LineCapButt, graphics.LineJoinMiter),
		Area:   44 * 8,
	},
	{
		Name:   "line_round",
		Path:   polyline(false, 10, 32, 54, 32),
		Width:  64,
		Height: 64,
		Op:     solid(8, graphics.LineCapRound, graphics.LineJoinMiter),
		Area:   44*8 + 16*math.Pi,
	},
	{
		Name:   "line_square",
		Path:   polyline(false, 10, 32, 54, 32),
		Width:  64,
		Height: 64,
		Op:     solid(8, graphics.LineCapSquare, graphics.LineJoinMiter),
		Area:   52 * 8,
	},
	{
		Name:   "corner_miter",
		Path:   polyline(false, 10, 50, 32, 14, 54, 50),
		Width:  64,
		Height: 64,
		Op:     solid(6, graphics.LineCapButt, graphics.LineJoinMiter),
	},
	{
		Name:   "corner_round",
		Path:   polyline(false, 10, 50, 32, 14, 54, 50),
		Width:  64,
		Height: 64,
		Op:     solid(6, graphics.LineCapButt, graphics.LineJoinRound),
	},
	{
		Name:   "corner_bevel",
		Path:   polyline(false, 10, 50, 32, 14, 54, 50),
		Width:  64,
		Height: 64,
		Op:     solid(6, graphics.LineCapButt, graphics.LineJoinBevel),
	},
	{
		// the miter is longer than the limit and is cut off
		Name:   "corner_sharp",
		Path:   polyline(false, 10, 54, 32, 10, 36, 54),
		Width:  64,
		Height: 64,
		Op: Stroke{
			Width:      4,
			Cap:        graphics.LineCapButt,
			Join:       graphics.LineJoinMiter,
			MiterLimit: 2,
		},
	},
	{
		Name:   "square_ring_miter",
		Path:   square(12, 12, 40),
		Width:  64,
		Height: 64,
		Op:     solid(6, graphics.LineCapButt, graphics.LineJoinMiter),
		Area:   46*46 - 34*34,
	},
	{
		Name:   "square_ring_bevel",
		Path:   square(12, 12, 40),
		Width:  64,
		Height: 64,
		Op:     solid(6, graphics.LineCapButt, graphics.LineJoinBevel),
		Area:   46*46 - 34*34 - 4*4.5,
	},
	{
		Name:   "square_ring_round",
		Path:   square(12, 12, 40),
		Width:  64,
		Height: 64,
		Op:     solid(6, graphics.LineCapButt, graphics.LineJoinRound),
		Area:   46*46 - 34*34 - 4*(9-9*math.Pi/4),
	},
	{
		Name:   "dot_round",
		Path:   (&path.Data{}).MoveTo(pt(32, 32)).Close(),
		Width:  64,
		Height: 64,
		Op:     solid(10, graphics.LineCapRound, graphics.LineJoinMiter),
		Area:   25 * math.Pi,
	},
	{
		Name:   "dot_square",
		Path:   polyline(false, 32, 32, 32, 32),
		Width:  64,
		Height: 64,
		Op:     solid(10, graphics.LineCapSquare, graphics.LineJoinMiter),
		Area:   100,
	},
	{
		Name:   "dot_butt",
		Path:   polyline(false, 32, 32, 32, 32),
		Width:  64,
		Height: 64,
		Op:     solid(10, graphics.LineCapButt, graphics.LineJoinMiter),
		Empty:  true,
	},
	{
		Name:   "zero_width",
		Path:   polyline(false, 10, 32, 54, 32),
		Width:  64,
		Height: 64,
		Op:     solid(0, graphics.LineCapRound, graphics.LineJoinRound),
		Empty:  true,
	},
	{
		Name:   "two_figures",
		Path:   polyline(false, 10, 20, 54, 20).MoveTo(pt(10, 44)).LineTo(pt(54, 44)),
		Width:  64,
		Height: 64,
		Op:     solid(4, graphics.LineCapButt, graphics.LineJoinMiter),
		Area:   2 * 44 * 4,
	},
}

// solid returns an undashed stroke operation with miter limit 10.
func solid(width float64, lineCap graphics.LineCapStyle, join graphics.LineJoinStyle) Stroke {
	return Stroke{
		Width:      width,
		Cap:        lineCap,
		Join:       join,
		MiterLimit: 10,
	}
}

// polyline builds a figure through the points (xy[0], xy[1]),
// (xy[2], xy[3]), ...
func polyline(closed bool, xy ...float64) *path.Data {
	p := (&path.Data{}).MoveTo(pt(xy[0], xy[1]))
	for i := 2; i+1 < len(xy); i += 2 {
		p = p.LineTo(pt(xy[i], xy[i+1]))
	}
	if closed {
		p = p.Close()
	}
	return p
}

// square builds a closed square with lower left corner (x, y).  The
// square is traversed so that its outside is to the left.
func square(x, y, side float64) *path.Data {
	return polyline(true, x, y, x, y+side, x+side, y+side, x+side, y)
}
