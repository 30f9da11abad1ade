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

package outline

import (
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// ErrInvalidStyle is returned (wrapped) by [Style.Validate].
var ErrInvalidStyle = errors.New("invalid stroke style")

// Style describes how a path is stroked.
type Style struct {
	// Width is the line width.  The outline extends Width/2 to either
	// side of the path.  A width of zero produces no output.
	Width float64

	Cap        graphics.LineCapStyle
	Join       graphics.LineJoinStyle
	MiterLimit float64
}

// DefaultStyle returns the PDF default stroke style: width 1, butt caps,
// miter joins and a miter limit of 10.
func DefaultStyle() Style {
	return Style{
		Width:      1,
		Cap:        graphics.LineCapButt,
		Join:       graphics.LineJoinMiter,
		MiterLimit: defaultMiterLimit,
	}
}

// Validate checks that the style describes a valid stroke.
func (s Style) Validate() error {
	if s.Width < 0 || math.IsNaN(s.Width) || math.IsInf(s.Width, 0) {
		return fmt.Errorf("line width %g: %w", s.Width, ErrInvalidStyle)
	}
	if s.Join == graphics.LineJoinMiter && !(s.MiterLimit >= 1) {
		return fmt.Errorf("miter limit %g: %w", s.MiterLimit, ErrInvalidStyle)
	}
	if newCapper(s.Cap) == nil {
		return fmt.Errorf("line cap %d: %w", s.Cap, ErrInvalidStyle)
	}
	if newJoiner(s.Join) == nil {
		return fmt.Errorf("line join %d: %w", s.Join, ErrInvalidStyle)
	}
	return nil
}

const (
	// zeroLength is the distance below which two points are considered
	// equal.  Segments shorter than this have no direction.
	zeroLength = 1e-10

	defaultMiterLimit = 10

	// maxQuadSubdivide and maxCubicSubdivide bound the recursion depth
	// used when offsetting curves.
	maxQuadSubdivide  = 5
	maxCubicSubdivide = 7

	// tooCurvy is the cosine of the angle between unit normals above
	// which a curve piece is offset directly, rather than subdivided.
	tooCurvy = math.Sqrt2/2 + 0.1

	// tooPinchy is the cosine below which the tangent is considered to
	// reverse, as at a cusp.
	tooPinchy = -0.999
)

func normalsTooCurvy(a, b vec.Vec2) bool {
	return a.Dot(b) <= tooCurvy
}

func normalsTooPinchy(a, b vec.Vec2) bool {
	return a.Dot(b) <= tooPinchy
}
