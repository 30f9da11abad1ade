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

// Package testcases holds a catalogue of named stroke, offset and dash
// operations.  The cases are used by the tests of this module, and by
// the tools in the subdirectories to export and visualise the outlines.
package testcases

import (
	"fmt"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/outline"
)

// TestCase defines a single outline computation.
type TestCase struct {
	Name   string     // lowercase a-z, 0-9 and _ only
	Path   *path.Data // the input geometry
	Width  int        // canvas width
	Height int        // canvas height
	Op     Operation  // stroke or offset

	// Area is the exact area covered by the outline, or 0 if no
	// closed form is known.
	Area float64

	// Empty is set if the operation produces no output.
	Empty bool
}

// Operation is the outline operation to apply to the path.
type Operation interface {
	isOperation()
}

// Stroke specifies a stroke operation.
type Stroke struct {
	Width      float64                // line width (>0)
	Cap        graphics.LineCapStyle  // LineCapButt, LineCapRound, LineCapSquare
	Join       graphics.LineJoinStyle // LineJoinMiter, LineJoinRound, LineJoinBevel
	MiterLimit float64                // miter limit
	Dash       []float64              // dash pattern (nil for solid)
	DashPhase  float64                // dash phase offset
}

func (Stroke) isOperation() {}

// Style returns the stroke style of the operation.
func (op Stroke) Style() outline.Style {
	return outline.Style{
		Width:      op.Width,
		Cap:        op.Cap,
		Join:       op.Join,
		MiterLimit: op.MiterLimit,
	}
}

// Offset specifies an offset operation.  Positive distances offset to
// the left of the direction of travel.
type Offset struct {
	Distance   float64
	Join       graphics.LineJoinStyle
	MiterLimit float64
}

func (Offset) isOperation() {}

// Outline applies the operation of tc to its path.
func (tc TestCase) Outline() (*outline.Path, error) {
	src := &outline.Path{}
	outline.Drive(tc.Path.Iter(), src)

	switch op := tc.Op.(type) {
	case Stroke:
		style := op.Style()
		if err := style.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", tc.Name, err)
		}
		if len(op.Dash) == 0 {
			return outline.Stroke(src, style), nil
		}
		s := outline.NewStroker(style)
		d, err := outline.NewDasher(s, outline.DashPattern{Lengths: op.Dash, Phase: op.DashPhase})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", tc.Name, err)
		}
		src.Replay(d)
		return s.Result(), nil
	case Offset:
		return outline.Offset(src, op.Distance, op.Join, op.MiterLimit), nil
	default:
		return nil, fmt.Errorf("%s: unknown operation %T", tc.Name, tc.Op)
	}
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
