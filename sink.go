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

// Package outline converts 2D vector paths into the outlines of their
// strokes, parallel offsets and dash patterns.
//
// Paths are exchanged as command streams through the [Sink] interface.
// [Path] stores such a stream compactly and can replay it forwards or
// backwards.  [Stroker] and [Dasher] are themselves sinks, so engines can
// be chained, for example to stroke a dashed path.
package outline

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Sink receives a path as a stream of drawing commands.
//
// Every figure starts with MoveTo, continues with zero or more segments and
// is terminated by exactly one call to EndOpen or EndClosed.  EndClosed
// implies a straight segment back to the start point of the figure.
// Calling a segment or end method while no figure is open is a programming
// error; implementations may panic.
type Sink interface {
	MoveTo(p vec.Vec2)
	LineTo(p vec.Vec2)
	QuadTo(c, p vec.Vec2)
	CubicTo(c1, c2, p vec.Vec2)
	EndOpen()
	EndClosed()
}

// Replayer is implemented by objects which can replay a path into a Sink.
type Replayer interface {
	Replay(s Sink)
}

// ReverseReplayer is a Replayer which can also replay the path backwards.
// Reverse replay visits the figures in reverse order, and each figure from
// its last point to its first.  Curve control points are reversed and each
// figure keeps its end tag.
type ReverseReplayer interface {
	Replayer
	ReplayReverse(s Sink)
}

// Drive replays a path from the seehuhn.de/go/geom/path package into s.
//
// Figures which are not closed are terminated with EndOpen.  Segments
// following a ClosePath start a new figure at the start point of the
// closed one, as in PDF.
func Drive(p path.Path, s Sink) {
	var start vec.Vec2
	open := false
	ensureOpen := func() {
		if !open {
			s.MoveTo(start)
			open = true
		}
	}
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			if open {
				s.EndOpen()
			}
			start = pts[0]
			s.MoveTo(start)
			open = true
		case path.CmdLineTo:
			ensureOpen()
			s.LineTo(pts[0])
		case path.CmdQuadTo:
			ensureOpen()
			s.QuadTo(pts[0], pts[1])
		case path.CmdCubeTo:
			ensureOpen()
			s.CubicTo(pts[0], pts[1], pts[2])
		case path.CmdClose:
			if open {
				s.EndClosed()
				open = false
			}
		}
	}
	if open {
		s.EndOpen()
	}
}
