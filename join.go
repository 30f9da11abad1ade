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
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/outline/bezier"
	"seehuhn.de/go/outline/internal/planar"
)

// joint describes a corner between two segments of a figure.
type joint struct {
	pivot         vec.Vec2
	before, after vec.Vec2 // unit normals of the adjoining segments
	radius        float64
	invMiterLimit float64

	// side is +1 if the outer rail lies to the left of the path, -1 if
	// it lies to the right.
	side float64

	prevIsLine, currIsLine bool

	// minLenSq is the smaller squared chord length of the two segments.
	minLenSq float64

	// meetRail is set by innerJoin if the concave rail was collapsed to
	// the single point meet.
	meetRail *Path
	meet     vec.Vec2
}

// A joiner adds the geometry of a line join to both rails.
type joiner interface {
	join(outer, inner *Path, j *joint)
}

func newJoiner(style graphics.LineJoinStyle) joiner {
	switch style {
	case graphics.LineJoinMiter:
		return miterJoiner{}
	case graphics.LineJoinRound:
		return roundJoiner{}
	case graphics.LineJoinBevel:
		return bevelJoiner{}
	default:
		return nil
	}
}

type angleType int

const (
	angleNearly180 angleType = iota
	angleSharp
	angleShallow
	angleNearlyLine
)

const angleEpsilon = 1.0 / 4096

func dotToAngleType(dot float64) angleType {
	if dot >= 0 {
		if 1-dot <= angleEpsilon {
			return angleNearlyLine
		}
		return angleShallow
	}
	if 1+dot <= angleEpsilon {
		return angleNearly180
	}
	return angleSharp
}

// orient swaps the rails if the outer rail is on the inside of the turn,
// so that outer always refers to the convex side.  The normals are negated
// accordingly.  At a reversal of direction both sides are convex and the
// rails are kept.
func orient(outer, inner *Path, j *joint) (convex, concave *Path, before, after vec.Vec2) {
	before, after = j.before, j.after
	if planar.Cross(before, after)*j.side <= 0 {
		return outer, inner, before, after
	}
	return inner, outer, before.Mul(-1), after.Mul(-1)
}

// innerJoin connects the concave rail across the corner.  The rail is
// cut back to the point where the two offset lines meet, at distance
// r·tan(θ/2) from the ends of the offset segments.  When the segments are
// shorter than this, the rail is routed through the pivot instead.
// The normals are the unit normals of the convex side.
func innerJoin(inner *Path, j *joint, before, after vec.Vec2) {
	cos := before.Dot(after)
	r2 := j.radius * j.radius
	if j.minLenSq*(1+cos) < r2*(1-cos) {
		inner.LineTo(j.pivot)
		inner.LineTo(j.pivot.Sub(after.Mul(j.radius)))
		return
	}

	meet := j.pivot.Sub(before.Add(after).Mul(j.radius / (1 + cos)))
	if j.prevIsLine {
		inner.setLastPoint(meet)
	} else {
		inner.LineTo(meet)
	}
	j.meetRail = inner
	j.meet = meet
}

type bevelJoiner struct{}

func (bevelJoiner) join(outer, inner *Path, j *joint) {
	if dotToAngleType(j.before.Dot(j.after)) == angleNearlyLine {
		return
	}
	outer, inner, before, after := orient(outer, inner, j)
	outer.LineTo(j.pivot.Add(after.Mul(j.radius)))
	innerJoin(inner, j, before, after)
}

type roundJoiner struct{}

func (roundJoiner) join(outer, inner *Path, j *joint) {
	if dotToAngleType(j.before.Dot(j.after)) == angleNearlyLine {
		return
	}
	outer, inner, before, after := orient(outer, inner, j)

	dir := bezier.CW
	switch cross := planar.Cross(before, after); {
	case cross > 0:
		dir = bezier.CCW
	case cross == 0:
		// reversal: the arc passes through the incoming direction
		tangent := planar.Perp(j.before).Mul(-j.side)
		if planar.Cross(before, tangent) > 0 {
			dir = bezier.CCW
		}
	}
	m := matrix.Matrix{j.radius, 0, 0, j.radius, j.pivot.X, j.pivot.Y}
	var buf [5][3]vec.Vec2
	segs := bezier.BuildArc(before, after, dir, m, buf[:0])
	for _, s := range segs {
		outer.CubicTo(s[0], s[1], s[2])
	}
	if len(segs) == 0 {
		outer.LineTo(j.pivot.Add(after.Mul(j.radius)))
	}
	innerJoin(inner, j, before, after)
}

type miterJoiner struct{}

func (miterJoiner) join(outer, inner *Path, j *joint) {
	dot := j.before.Dot(j.after)
	kind := dotToAngleType(dot)
	if kind == angleNearlyLine {
		return
	}

	outer, inner, before, after := orient(outer, inner, j)
	currIsLine := j.currIsLine

	var mid vec.Vec2
	miter := true
	switch {
	case kind == angleNearly180:
		miter = false

	case dot == 0 && j.invMiterLimit <= 1/math.Sqrt2:
		// right angle: the apex is at distance r·√2
		mid = before.Add(after).Mul(j.radius)

	default:
		// The miter length is r/sin(θ/2), where θ is the angle between
		// the segments.
		sinHalf := math.Sqrt((1 + dot) / 2)
		if sinHalf < j.invMiterLimit {
			miter = false
			break
		}
		if kind == angleSharp {
			mid = planar.Perp(after.Sub(before))
			if planar.Cross(before, after) > 0 {
				mid = mid.Mul(-1)
			}
		} else {
			mid = before.Add(after)
		}
		mid, miter = planar.SetLength(mid, j.radius/sinHalf)
	}

	switch {
	case !miter:
		currIsLine = false
	case j.prevIsLine:
		outer.setLastPoint(j.pivot.Add(mid))
	default:
		outer.LineTo(j.pivot.Add(mid))
	}

	if !currIsLine {
		outer.LineTo(j.pivot.Add(after.Mul(j.radius)))
	}
	innerJoin(inner, j, before, after)
}

// A capper closes the end of an open figure.  The outline currently ends
// at pivot+normal and the cap must end at stop, normally pivot-normal.
// If extend is true, the last node of p lies on a straight segment and may
// be moved along it.
type capper interface {
	cap(p *Path, pivot, normal, stop vec.Vec2, extend bool)

	// dot adds the outline of a figure consisting of a single point.
	dot(p *Path, center vec.Vec2, radius float64)
}

func newCapper(style graphics.LineCapStyle) capper {
	switch style {
	case graphics.LineCapButt:
		return buttCapper{}
	case graphics.LineCapRound:
		return roundCapper{}
	case graphics.LineCapSquare:
		return squareCapper{}
	default:
		return nil
	}
}

type buttCapper struct{}

func (buttCapper) cap(p *Path, _, _, stop vec.Vec2, _ bool) {
	p.LineTo(stop)
}

func (buttCapper) dot(*Path, vec.Vec2, float64) {}

type roundCapper struct{}

func (roundCapper) cap(p *Path, pivot, normal, stop vec.Vec2, _ bool) {
	r := normal.Length()
	u, ok := planar.Unit(normal)
	if !ok {
		p.LineTo(stop)
		return
	}
	m := matrix.Matrix{r, 0, 0, r, pivot.X, pivot.Y}
	var buf [3][3]vec.Vec2
	for _, s := range bezier.BuildArc(u, u.Mul(-1), bezier.CW, m, buf[:0]) {
		p.CubicTo(s[0], s[1], s[2])
	}
	p.setLastPoint(stop)
}

func (roundCapper) dot(p *Path, center vec.Vec2, radius float64) {
	addCircle(p, center, radius, bezier.CW)
}

type squareCapper struct{}

func (squareCapper) cap(p *Path, pivot, normal, stop vec.Vec2, extend bool) {
	parallel := vec.Vec2{X: normal.Y, Y: -normal.X}
	if extend {
		p.setLastPoint(pivot.Add(normal).Add(parallel))
		p.LineTo(pivot.Sub(normal).Add(parallel))
		return
	}
	p.LineTo(pivot.Add(normal).Add(parallel))
	p.LineTo(pivot.Sub(normal).Add(parallel))
	p.LineTo(stop)
}

func (squareCapper) dot(p *Path, center vec.Vec2, radius float64) {
	p.MoveTo(vec.Vec2{X: center.X - radius, Y: center.Y - radius})
	p.LineTo(vec.Vec2{X: center.X - radius, Y: center.Y + radius})
	p.LineTo(vec.Vec2{X: center.X + radius, Y: center.Y + radius})
	p.LineTo(vec.Vec2{X: center.X + radius, Y: center.Y - radius})
	p.EndClosed()
}

// addCircle adds a full circle as a closed figure to p.
func addCircle(p *Path, center vec.Vec2, radius float64, dir bezier.Direction) {
	m := matrix.Matrix{radius, 0, 0, radius, center.X, center.Y}
	east := vec.Vec2{X: 1}
	west := vec.Vec2{X: -1}
	var buf [4][3]vec.Vec2
	segs := bezier.BuildArc(east, west, dir, m, buf[:0])
	segs = bezier.BuildArc(west, east, dir, m, segs)
	p.MoveTo(vec.Vec2{X: center.X + radius, Y: center.Y})
	for _, s := range segs {
		p.CubicTo(s[0], s[1], s[2])
	}
	p.EndClosed()
}
