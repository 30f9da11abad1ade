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
	"fmt"
	"strings"

	"seehuhn.de/go/geom/vec"
)

// Op identifies a method of the outline.Sink interface.
type Op byte

// These are the possible values of Op.
const (
	OpMoveTo    Op = 'M'
	OpLineTo    Op = 'L'
	OpQuadTo    Op = 'Q'
	OpCubicTo   Op = 'C'
	OpEndOpen   Op = 'O'
	OpEndClosed Op = 'Z'
)

// Command is one recorded method call.
type Command struct {
	Op  Op
	Pts []vec.Vec2
}

func (c Command) String() string {
	var b strings.Builder
	b.WriteByte(byte(c.Op))
	for _, p := range c.Pts {
		fmt.Fprintf(&b, " %g,%g", p.X, p.Y)
	}
	return b.String()
}

// Recorder stores every command it receives.
type Recorder struct {
	Cmds []Command
}

func (r *Recorder) add(op Op, pts ...vec.Vec2) {
	r.Cmds = append(r.Cmds, Command{Op: op, Pts: pts})
}

// MoveTo implements the outline.Sink interface.
func (r *Recorder) MoveTo(p vec.Vec2) { r.add(OpMoveTo, p) }

// LineTo implements the outline.Sink interface.
func (r *Recorder) LineTo(p vec.Vec2) { r.add(OpLineTo, p) }

// QuadTo implements the outline.Sink interface.
func (r *Recorder) QuadTo(c, p vec.Vec2) { r.add(OpQuadTo, c, p) }

// CubicTo implements the outline.Sink interface.
func (r *Recorder) CubicTo(c1, c2, p vec.Vec2) { r.add(OpCubicTo, c1, c2, p) }

// EndOpen implements the outline.Sink interface.
func (r *Recorder) EndOpen() { r.add(OpEndOpen) }

// EndClosed implements the outline.Sink interface.
func (r *Recorder) EndClosed() { r.add(OpEndClosed) }

// Reset discards all recorded commands.
func (r *Recorder) Reset() {
	r.Cmds = r.Cmds[:0]
}

// NumFigures returns the number of figures which have been terminated.
func (r *Recorder) NumFigures() int {
	n := 0
	for _, c := range r.Cmds {
		if c.Op == OpEndOpen || c.Op == OpEndClosed {
			n++
		}
	}
	return n
}

// String returns the recorded commands, separated by semicolons.
func (r *Recorder) String() string {
	parts := make([]string, len(r.Cmds))
	for i, c := range r.Cmds {
		parts[i] = c.String()
	}
	return strings.Join(parts, "; ")
}
