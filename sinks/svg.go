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
	"bytes"
	"strconv"

	"seehuhn.de/go/geom/vec"
)

// SVG builds the "d" attribute of an SVG path element.
//
// All commands are written in absolute form.  Open figures are left
// unterminated, closed figures end with "Z".
type SVG struct {
	// Prec is the number of digits after the decimal point.  Trailing
	// zeros are omitted.  If Prec is negative, the shortest representation
	// which reads back exactly is used.
	Prec int

	buf []byte
}

// NewSVG returns an SVG sink which writes coordinates with prec digits
// after the decimal point.
func NewSVG(prec int) *SVG {
	return &SVG{Prec: prec}
}

// String returns the path data written so far.
func (s *SVG) String() string {
	return string(s.buf)
}

// Reset discards all path data.
func (s *SVG) Reset() {
	s.buf = s.buf[:0]
}

func (s *SVG) cmd(c byte, pts ...vec.Vec2) {
	if len(s.buf) > 0 {
		s.buf = append(s.buf, ' ')
	}
	s.buf = append(s.buf, c)
	for i, p := range pts {
		if i > 0 {
			s.buf = append(s.buf, ' ')
		}
		s.buf = s.num(p.X)
		s.buf = append(s.buf, ',')
		s.buf = s.num(p.Y)
	}
}

func (s *SVG) num(x float64) []byte {
	start := len(s.buf)
	buf := strconv.AppendFloat(s.buf, x, 'f', s.Prec, 64)
	if s.Prec > 0 {
		buf = bytes.TrimRight(buf, "0")
		buf = bytes.TrimSuffix(buf, []byte("."))
	}
	if string(buf[start:]) == "-0" {
		buf = append(buf[:start], '0')
	}
	return buf
}

// MoveTo implements the outline.Sink interface.
func (s *SVG) MoveTo(p vec.Vec2) { s.cmd('M', p) }

// LineTo implements the outline.Sink interface.
func (s *SVG) LineTo(p vec.Vec2) { s.cmd('L', p) }

// QuadTo implements the outline.Sink interface.
func (s *SVG) QuadTo(c, p vec.Vec2) { s.cmd('Q', c, p) }

// CubicTo implements the outline.Sink interface.
func (s *SVG) CubicTo(c1, c2, p vec.Vec2) { s.cmd('C', c1, c2, p) }

// EndOpen implements the outline.Sink interface.
func (s *SVG) EndOpen() {}

// EndClosed implements the outline.Sink interface.
func (s *SVG) EndClosed() { s.cmd('Z') }
