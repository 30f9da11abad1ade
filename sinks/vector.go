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

package sinks

import (
	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Vector adds figures to a [vector.Rasterizer].
//
// All figures are closed before being added, since the rasteriser only
// fills areas.  Overlapping figures with the same orientation do not
// increase the coverage beyond one.
type Vector struct {
	r *vector.Rasterizer

	// CTM maps path coordinates to pixel coordinates.
	CTM matrix.Matrix
}

// NewVector returns a Vector sink for r, with the identity transformation.
func NewVector(r *vector.Rasterizer) *Vector {
	return &Vector{r: r, CTM: matrix.Identity}
}

func (s *Vector) xy(p vec.Vec2) (float32, float32) {
	m := s.CTM
	x := m[0]*p.X + m[2]*p.Y + m[4]
	y := m[1]*p.X + m[3]*p.Y + m[5]
	return float32(x), float32(y)
}

// MoveTo implements the outline.Sink interface.
func (s *Vector) MoveTo(p vec.Vec2) {
	s.r.MoveTo(s.xy(p))
}

// LineTo implements the outline.Sink interface.
func (s *Vector) LineTo(p vec.Vec2) {
	s.r.LineTo(s.xy(p))
}

// QuadTo implements the outline.Sink interface.
func (s *Vector) QuadTo(c, p vec.Vec2) {
	cx, cy := s.xy(c)
	x, y := s.xy(p)
	s.r.QuadTo(cx, cy, x, y)
}

// CubicTo implements the outline.Sink interface.
func (s *Vector) CubicTo(c1, c2, p vec.Vec2) {
	ax, ay := s.xy(c1)
	bx, by := s.xy(c2)
	x, y := s.xy(p)
	s.r.CubeTo(ax, ay, bx, by, x, y)
}

// EndOpen implements the outline.Sink interface.
func (s *Vector) EndOpen() {
	s.r.ClosePath()
}

// EndClosed implements the outline.Sink interface.
func (s *Vector) EndClosed() {
	s.r.ClosePath()
}
