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

	"seehuhn.de/go/pdf/graphics"
)

var offsetCases = []TestCase{
	{
		Name:   "square_miter",
		Path:   square(12, 12, 40),
		Width:  64,
		Height: 64,
		Op:     Offset{Distance: 4, Join: graphics.LineJoinMiter, MiterLimit: 10},
		Area:   48 * 48,
	},
	{
		Name:   "square_bevel",
		Path:   square(12, 12, 40),
		Width:  64,
		Height: 64,
		Op:     Offset{Distance: 4, Join: graphics.LineJoinBevel, MiterLimit: 10},
		Area:   48*48 - 4*8,
	},
	{
		Name:   "square_round",
		Path:   square(12, 12, 40),
		Width:  64,
		Height: 64,
		Op:     Offset{Distance: 4, Join: graphics.LineJoinRound, MiterLimit: 10},
		Area:   48*48 - 4*(16-4*math.Pi),
	},
	{
		// a miter limit below sqrt(2) turns right angles into bevels
		Name:   "square_limit",
		Path:   square(12, 12, 40),
		Width:  64,
		Height: 64,
		Op:     Offset{Distance: 4, Join: graphics.LineJoinMiter, MiterLimit: 1.2},
		Area:   48*48 - 4*8,
	},
	{
		Name:   "square_inward",
		Path:   square(12, 12, 40),
		Width:  64,
		Height: 64,
		Op:     Offset{Distance: -4, Join: graphics.LineJoinMiter, MiterLimit: 10},
		Area:   32 * 32,
	},
	{
		Name:   "circle_outward",
		Path:   circle(32, 32, 20),
		Width:  64,
		Height: 64,
		Op:     Offset{Distance: 4, Join: graphics.LineJoinRound, MiterLimit: 10},
		Area:   24 * 24 * math.Pi,
	},
	{
		Name:   "circle_inward",
		Path:   circle(32, 32, 20),
		Width:  64,
		Height: 64,
		Op:     Offset{Distance: -4, Join: graphics.LineJoinRound, MiterLimit: 10},
		Area:   16 * 16 * math.Pi,
	},
	{
		Name:   "open_polyline",
		Path:   polyline(false, 10, 20, 54, 20, 54, 50),
		Width:  64,
		Height: 64,
		Op:     Offset{Distance: 3, Join: graphics.LineJoinRound, MiterLimit: 10},
	},
	{
		Name:   "zero_distance",
		Path:   square(12, 12, 40),
		Width:  64,
		Height: 64,
		Op:     Offset{Distance: 0, Join: graphics.LineJoinMiter, MiterLimit: 10},
		Empty:  true,
	},
}
