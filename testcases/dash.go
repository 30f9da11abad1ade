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

var dashCases = []TestCase{
	// Single-element pattern [10] (becomes [10, 10])
	{
		Name:   "single_element",
		Path:   polyline(false, 5, 32, 59, 32),
		Width:  64,
		Height: 64,
		Op:     dashed(4, graphics.LineCapButt, 0, 10),
		Area:   30 * 4,
	},
	// Three-element pattern [5, 3, 8] (becomes [5, 3, 8, 5, 3, 8])
	{
		Name:   "three_element",
		Path:   polyline(false, 5, 32, 59, 32),
		Width:  64,
		Height: 64,
		Op:     dashed(4, graphics.LineCapButt, 0, 5, 3, 8),
		Area:   30 * 4,
	},
	{
		Name:   "long_short",
		Path:   polyline(false, 5, 32, 59, 32),
		Width:  64,
		Height: 64,
		Op:     dashed(4, graphics.LineCapButt, 0, 20, 2),
		Area:   50 * 4,
	},
	{
		Name:   "phase_half",
		Path:   polyline(false, 5, 32, 59, 32),
		Width:  64,
		Height: 64,
		Op:     dashed(4, graphics.LineCapButt, 5, 10, 5),
		Area:   35 * 4,
	},
	{
		Name:   "phase_negative",
		Path:   polyline(false, 5, 32, 59, 32),
		Width:  64,
		Height: 64,
		Op:     dashed(4, graphics.LineCapButt, -5, 10, 5),
		Area:   34 * 4,
	},
	{
		Name:   "phase_large",
		Path:   polyline(false, 5, 32, 59, 32),
		Width:  64,
		Height: 64,
		Op:     dashed(4, graphics.LineCapButt, 5+15*7, 10, 5),
		Area:   35 * 4,
	},

	// Zero-length dashes become dots, drawn according to the cap style.
	{
		Name:   "zero_round",
		Path:   polyline(false, 5, 32, 59, 32),
		Width:  64,
		Height: 64,
		Op:     dashed(4, graphics.LineCapRound, 0, 0, 5),
		Area:   11 * 4 * math.Pi,
	},
	{
		Name:   "zero_square",
		Path:   polyline(false, 5, 32, 59, 32),
		Width:  64,
		Height: 64,
		Op:     dashed(4, graphics.LineCapSquare, 0, 0, 5),
		Area:   11 * 16,
	},
	{
		Name:   "zero_butt",
		Path:   polyline(false, 5, 32, 59, 32),
		Width:  64,
		Height: 64,
		Op:     dashed(4, graphics.LineCapButt, 0, 0, 5),
		Empty:  true,
	},

	// Dashes and corners
	{
		Name:   "corner_in_dash",
		Path:   polyline(false, 10, 50, 32, 14, 54, 50),
		Width:  64,
		Height: 64,
		Op:     dashed(4, graphics.LineCapButt, 0, 40, 5),
	},
	{
		Name:   "corner_in_gap",
		Path:   polyline(false, 10, 50, 32, 14, 54, 50),
		Width:  64,
		Height: 64,
		Op:     dashed(4, graphics.LineCapButt, 0, 5, 40),
	},
	{
		Name:   "closed_square",
		Path:   square(12, 12, 40),
		Width:  64,
		Height: 64,
		Op:     dashed(4, graphics.LineCapButt, 0, 10, 5),
	},
	{
		// the last dash continues into the first one
		Name:   "closed_join",
		Path:   square(16, 16, 32),
		Width:  64,
		Height: 64,
		Op:     dashed(4, graphics.LineCapButt, 8, 16, 8),
	},
	{
		Name:   "curve",
		Path:   circle(32, 32, 20),
		Width:  64,
		Height: 64,
		Op:     dashed(3, graphics.LineCapRound, 0, 6, 4),
	},
}

// dashed returns a dashed stroke operation with miter joins.
func dashed(width float64, lineCap graphics.LineCapStyle, phase float64, pattern ...float64) Stroke {
	op := solid(width, lineCap, graphics.LineJoinMiter)
	op.Dash = pattern
	op.DashPhase = phase
	return op
}
