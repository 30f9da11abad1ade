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

// Package sinks contains consumers for the command streams produced by
// the outline package.
//
// Every type in this package implements the outline.Sink interface, so
// that the result of a stroke or dash operation can be written to a PDF
// content stream, a rasteriser, or an SVG path, without first collecting
// it in an outline.Path.
package sinks

import "seehuhn.de/go/geom/vec"

// PDFWriter is the part of a PDF content stream writer needed by [PDF].
// The page objects of seehuhn.de/go/pdf/document implement this
// interface.
type PDFWriter interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CurveTo(x1, y1, x2, y2, x3, y3 float64)
	ClosePath()
}

// PDF writes path construction operators to a content stream.
//
// PDF has no quadratic segments; these are converted to cubic Bezier
// curves.  Open figures are left without a closing operator.  The caller
// must add a painting operator (for example "f") after the path.
type PDF struct {
	w   PDFWriter
	cur vec.Vec2
}

// NewPDF returns a PDF sink which writes to w.
func NewPDF(w PDFWriter) *PDF {
	return &PDF{w: w}
}

// MoveTo implements the outline.Sink interface.
func (s *PDF) MoveTo(p vec.Vec2) {
	s.w.MoveTo(p.X, p.Y)
	s.cur = p
}

// LineTo implements the outline.Sink interface.
func (s *PDF) LineTo(p vec.Vec2) {
	s.w.LineTo(p.X, p.Y)
	s.cur = p
}

// QuadTo implements the outline.Sink interface.
func (s *PDF) QuadTo(c, p vec.Vec2) {
	c1, c2 := elevate(s.cur, c, p)
	s.CubicTo(c1, c2, p)
}

// CubicTo implements the outline.Sink interface.
func (s *PDF) CubicTo(c1, c2, p vec.Vec2) {
	s.w.CurveTo(c1.X, c1.Y, c2.X, c2.Y, p.X, p.Y)
	s.cur = p
}

// EndOpen implements the outline.Sink interface.
func (s *PDF) EndOpen() {}

// EndClosed implements the outline.Sink interface.
func (s *PDF) EndClosed() {
	s.w.ClosePath()
}

// elevate returns the control points of the cubic Bezier curve which
// traces the same curve as the quadratic (p0, c, p1).
func elevate(p0, c, p1 vec.Vec2) (vec.Vec2, vec.Vec2) {
	c1 := p0.Add(c.Sub(p0).Mul(2.0 / 3))
	c2 := p1.Add(c.Sub(p1).Mul(2.0 / 3))
	return c1, c2
}
