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
	"log/slog"
	"math"
	"slices"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/outline/bezier"
	"seehuhn.de/go/outline/internal/planar"
)

// Stroker converts the figures it receives into their stroke outline, or
// into a parallel offset curve.  Stroker implements [Sink]; the result is
// collected internally and can be retrieved with [Stroker.Finish].
//
// For every figure two rails are built, one on each side of the path at
// distance r.  For a full stroke, the rails of an open figure are joined
// by caps into a single closed figure; the rails of a closed figure are
// spliced into one ring.  In offset mode only the outer rail is kept.
//
// A Stroker must not be used concurrently.
type Stroker struct {
	radius        float64
	side          float64
	invMiterLimit float64
	joiner        joiner
	capper        capper // nil in offset mode

	outer Path // finished figures, plus the outer rail being built
	inner Path // inner rail of the current figure
	extra Path // additional figures, e.g. circles around cusps

	open         bool
	segmentCount int // 0 = nothing yet, -1 = single point, >0 = segments

	firstPt, prevPt                 vec.Vec2
	firstOuterPt                    vec.Vec2
	firstNormal, prevNormal         vec.Vec2
	firstUnitNormal, prevUnitNormal vec.Vec2
	firstIsLine, prevIsLine         bool
	firstLenSq, prevLenSq           float64
}

// NewStroker returns a Stroker which computes the outline of a stroke in
// the given style.  Unknown cap or join styles are replaced by butt caps
// and miter joins.
func NewStroker(style Style) *Stroker {
	s := &Stroker{
		radius: math.Abs(style.Width) / 2,
		side:   1,
		joiner: newJoiner(style.Join),
		capper: newCapper(style.Cap),
	}
	if s.joiner == nil {
		s.joiner = miterJoiner{}
	}
	if s.capper == nil {
		s.capper = buttCapper{}
	}
	s.setMiterLimit(style.MiterLimit)
	return s
}

// NewOffsetter returns a Stroker which computes the curve parallel to each
// figure at the given distance.  Positive distances offset to the left of
// the direction of travel (with the y-axis pointing up), negative ones to
// the right.
func NewOffsetter(distance float64, join graphics.LineJoinStyle, miterLimit float64) *Stroker {
	s := &Stroker{
		radius: math.Abs(distance),
		side:   1,
		joiner: newJoiner(join),
	}
	if distance < 0 {
		s.side = -1
	}
	if s.joiner == nil {
		s.joiner = miterJoiner{}
	}
	s.setMiterLimit(miterLimit)
	return s
}

func (s *Stroker) setMiterLimit(limit float64) {
	if !(limit >= 1) {
		limit = defaultMiterLimit
	}
	s.invMiterLimit = 1 / limit
}

// Reset discards all output, so that s can be reused.
func (s *Stroker) Reset() {
	s.outer.Reset()
	s.inner.Reset()
	s.extra.Reset()
	s.open = false
	s.segmentCount = 0
}

// MoveTo implements the [Sink] interface.
func (s *Stroker) MoveTo(p vec.Vec2) {
	if s.open {
		s.finishFigure(false)
	}
	s.open = true
	s.segmentCount = 0
	s.firstPt = p
	s.prevPt = p
}

// LineTo implements the [Sink] interface.
func (s *Stroker) LineTo(p vec.Vec2) {
	s.mustBeOpen("LineTo")
	if s.radius == 0 {
		return
	}
	unit, ok := s.unitNormal(s.prevPt, p)
	if !ok {
		// degenerate segment: keep the previous normal
		if s.segmentCount == 0 {
			s.segmentCount = -1
		}
		return
	}
	normal := unit.Mul(s.radius)
	s.preJoin(unit, planar.LengthSq(p.Sub(s.prevPt)), true)
	s.lineOffset(p, normal)
	s.postJoin(p, normal, unit)
}

// QuadTo implements the [Sink] interface.
func (s *Stroker) QuadTo(c, p vec.Vec2) {
	s.mustBeOpen("QuadTo")
	if s.radius == 0 {
		return
	}
	unitAB, okAB := s.unitNormal(s.prevPt, c)
	unitBC, okBC := s.unitNormal(c, p)
	if !okAB || !okBC {
		s.LineTo(p)
		return
	}

	s.preJoin(unitAB, planar.LengthSq(p.Sub(s.prevPt)), false)
	normalAB := unitAB.Mul(s.radius)
	pts := [3]vec.Vec2{s.prevPt, c, p}

	var buf [5]vec.Vec2
	chopped := bezier.ChopQuadAtMaxCurvature(pts, buf[:0])

	var normal, unit vec.Vec2
	switch {
	case len(chopped) == 5 && normalsTooPinchy(unitAB, unitBC):
		// The curve reverses direction at its point of maximum
		// curvature.  Connect the rails by straight lines and cover the
		// cusp with a circle.
		cusp := chopped[2]
		unit = unitBC
		normal = unitBC.Mul(s.radius)
		s.outer.LineTo(cusp.Add(normalAB))
		s.outer.LineTo(cusp.Add(normal))
		s.outer.LineTo(p.Add(normal))
		s.inner.LineTo(cusp.Sub(normalAB))
		s.inner.LineTo(cusp.Sub(normal))
		s.inner.LineTo(p.Sub(normal))
		s.addCusp(cusp)

	case len(chopped) == 5:
		normal, unit = s.quadPiece([3]vec.Vec2(chopped[0:3]), normalAB, unitAB, maxQuadSubdivide)
		normal, unit = s.quadPiece([3]vec.Vec2(chopped[2:5]), normal, unit, maxQuadSubdivide)

	default:
		normal, unit = s.quadPiece(pts, normalAB, unitAB, maxQuadSubdivide)
	}
	s.postJoin(p, normal, unit)
}

// CubicTo implements the [Sink] interface.
func (s *Stroker) CubicTo(c1, c2, p vec.Vec2) {
	s.mustBeOpen("CubicTo")
	if s.radius == 0 {
		return
	}
	degAB := planar.Dist(s.prevPt, c1) <= zeroLength
	degBC := planar.Dist(c1, c2) <= zeroLength
	degCD := planar.Dist(c2, p) <= zeroLength
	if count(degAB, degBC, degCD) >= 2 {
		s.LineTo(p)
		return
	}

	next := c1
	if degAB {
		next = c2
	}
	unitAB, ok := s.unitNormal(s.prevPt, next)
	if !ok {
		s.LineTo(p)
		return
	}
	s.preJoin(unitAB, planar.LengthSq(p.Sub(s.prevPt)), false)

	pts := [4]vec.Vec2{s.prevPt, c1, c2, p}
	var buf [19]vec.Vec2
	chopped := bezier.ChopCubicAtMany(pts, offsetSplits(pts), buf[:0])

	normal, unit := unitAB.Mul(s.radius), unitAB
	for i := 0; i+3 < len(chopped); i += 3 {
		piece := [4]vec.Vec2(chopped[i : i+4])
		if i > 0 {
			normal, unit = s.checkCusp(piece, normal, unit)
		}
		normal, unit = s.cubicPiece(piece, normal, unit, maxCubicSubdivide)
	}
	s.postJoin(p, normal, unit)
}

// offsetSplits returns the parameters where a cubic is split before
// offsetting: its points of extreme curvature and its inflections.
func offsetSplits(pts [4]vec.Vec2) []float64 {
	ts := bezier.CubicMaxCurvature(pts, make([]float64, 0, 5))
	ts = bezier.CubicInflections(pts, ts)
	slices.Sort(ts)

	res := ts[:0]
	for _, t := range ts {
		if len(res) == 0 || t-res[len(res)-1] > minSplitGap {
			res = append(res, t)
		}
	}
	return res
}

// minSplitGap is the smallest parameter distance between two splits.
const minSplitGap = 1e-6

func count(flags ...bool) int {
	n := 0
	for _, f := range flags {
		if f {
			n++
		}
	}
	return n
}

// checkCusp handles a reversal of direction between two pieces of a cubic.
func (s *Stroker) checkCusp(piece [4]vec.Vec2, normal, unit vec.Vec2) (vec.Vec2, vec.Vec2) {
	start, ok := s.unitNormal(vec.Vec2{}, bezier.CubicTangent(piece, 0))
	if !ok || !normalsTooPinchy(unit, start) {
		return normal, unit
	}
	cusp := piece[0]
	startNormal := start.Mul(s.radius)
	s.outer.LineTo(cusp.Add(startNormal))
	s.inner.LineTo(cusp.Sub(startNormal))
	s.addCusp(cusp)
	return startNormal, start
}

func (s *Stroker) addCusp(p vec.Vec2) {
	if s.capper == nil {
		return
	}
	Logger().Debug("stroke: covering cusp", slog.Float64("x", p.X), slog.Float64("y", p.Y))
	addCircle(&s.extra, p, s.radius, bezier.CW)
}

// quadPiece offsets a piece of a quadratic curve, subdividing it while the
// normals at both ends differ too much.  It returns the normal at the end
// of the piece.
func (s *Stroker) quadPiece(pts [3]vec.Vec2, normalAB, unitAB vec.Vec2, depth int) (vec.Vec2, vec.Vec2) {
	unitBC, ok := s.unitNormal(pts[1], pts[2])
	if !ok {
		s.lineOffset(pts[2], normalAB)
		return normalAB, unitAB
	}
	normalBC := unitBC.Mul(s.radius)

	if normalsTooCurvy(unitAB, unitBC) {
		if depth > 0 {
			q := bezier.ChopQuadAtHalf(pts)
			n, u := s.quadPiece([3]vec.Vec2(q[0:3]), normalAB, unitAB, depth-1)
			return s.quadPiece([3]vec.Vec2(q[2:5]), n, u, depth-1)
		}
		Logger().Debug("stroke: quadratic subdivision limit reached")
	}

	// The offset control point lies on the bisector of the two end
	// normals, at the distance which keeps the offset tangents parallel
	// to the original ones.
	dot := unitAB.Dot(unitBC)
	normalB, ok := s.unitNormal(pts[0], pts[2])
	if !ok {
		normalB, ok = planar.Unit(unitAB.Add(unitBC))
	}
	if !ok {
		normalB = unitAB
	}
	normalB = normalB.Mul(s.radius / math.Sqrt(max((1+dot)/2, minHalfCos)))

	s.outer.QuadTo(pts[1].Add(normalB), pts[2].Add(normalBC))
	s.inner.QuadTo(pts[1].Sub(normalB), pts[2].Sub(normalBC))
	return normalBC, unitBC
}

// minHalfCos bounds the scale factor applied to offset control points.
const minHalfCos = 1e-3

// cubicPiece offsets a piece of a cubic curve.  This works like quadPiece,
// but the two control points are offset separately.
func (s *Stroker) cubicPiece(pts [4]vec.Vec2, normalAB, unitAB vec.Vec2, depth int) (vec.Vec2, vec.Vec2) {
	ab := pts[1].Sub(pts[0])
	cd := pts[3].Sub(pts[2])
	degAB := planar.LengthSq(ab) <= zeroLength*zeroLength
	degCD := planar.LengthSq(cd) <= zeroLength*zeroLength
	if degAB && degCD {
		s.lineOffset(pts[3], normalAB)
		return normalAB, unitAB
	}
	if degAB {
		ab = pts[2].Sub(pts[0])
		degAB = planar.LengthSq(ab) <= zeroLength*zeroLength
	}
	if degCD {
		cd = pts[3].Sub(pts[1])
		degCD = planar.LengthSq(cd) <= zeroLength*zeroLength
	}
	if degAB || degCD {
		s.lineOffset(pts[3], normalAB)
		return normalAB, unitAB
	}

	unitCD, _ := s.unitNormal(vec.Vec2{}, cd)
	normalCD := unitCD.Mul(s.radius)
	unitBC, okBC := s.unitNormal(pts[1], pts[2])

	if !okBC || normalsTooCurvy(unitAB, unitBC) || normalsTooCurvy(unitBC, unitCD) {
		if depth > 0 {
			c := bezier.ChopCubicAtHalf(pts)
			n, u := s.cubicPiece([4]vec.Vec2(c[0:4]), normalAB, unitAB, depth-1)
			s.cubicPiece([4]vec.Vec2(c[3:7]), n, u, depth-1)
			// the normal computed from the whole piece is more accurate
			return normalCD, unitCD
		}
		Logger().Debug("stroke: cubic subdivision limit reached")
		s.lineOffset(pts[3], normalCD)
		return normalCD, unitCD
	}

	normalB, okB := planar.Unit(unitAB.Add(unitBC))
	normalC, okC := planar.Unit(unitCD.Add(unitBC))
	if !okB || !okC {
		s.lineOffset(pts[3], normalCD)
		return normalCD, unitCD
	}
	normalB = normalB.Mul(s.radius / math.Sqrt(max((1+unitAB.Dot(unitBC))/2, minHalfCos)))
	normalC = normalC.Mul(s.radius / math.Sqrt(max((1+unitCD.Dot(unitBC))/2, minHalfCos)))

	s.outer.CubicTo(pts[1].Add(normalB), pts[2].Add(normalC), pts[3].Add(normalCD))
	s.inner.CubicTo(pts[1].Sub(normalB), pts[2].Sub(normalC), pts[3].Sub(normalCD))
	return normalCD, unitCD
}

// EndOpen implements the [Sink] interface.
func (s *Stroker) EndOpen() {
	s.mustBeOpen("EndOpen")
	s.finishFigure(false)
}

// EndClosed implements the [Sink] interface.
func (s *Stroker) EndClosed() {
	s.mustBeOpen("EndClosed")
	if s.radius != 0 {
		if s.prevPt != s.firstPt {
			s.LineTo(s.firstPt)
		} else if s.segmentCount == 0 {
			s.segmentCount = -1
		}
	}
	s.finishFigure(true)
}

func (s *Stroker) mustBeOpen(op string) {
	if !s.open {
		panic("outline: " + op + " without MoveTo")
	}
}

// unitNormal returns the unit normal on the outer side of the direction
// from a to b.
func (s *Stroker) unitNormal(a, b vec.Vec2) (vec.Vec2, bool) {
	d := b.Sub(a)
	if planar.LengthSq(d) <= zeroLength*zeroLength {
		return vec.Vec2{}, false
	}
	u, ok := planar.Unit(planar.Perp(d))
	if !ok {
		return vec.Vec2{}, false
	}
	return u.Mul(s.side), true
}

// lineOffset extends both rails by a straight segment ending at p±normal.
func (s *Stroker) lineOffset(p, normal vec.Vec2) {
	s.outer.LineTo(p.Add(normal))
	s.inner.LineTo(p.Sub(normal))
}

// preJoin starts the rails, or joins the segment starting at the current
// point to the previous one.
func (s *Stroker) preJoin(unit vec.Vec2, lenSq float64, isLine bool) {
	normal := unit.Mul(s.radius)
	if s.segmentCount <= 0 {
		s.firstNormal = normal
		s.firstUnitNormal = unit
		s.firstIsLine = isLine
		s.firstLenSq = lenSq
		s.firstOuterPt = s.prevPt.Add(normal)
		s.outer.MoveTo(s.firstOuterPt)
		s.inner.Reset()
		s.inner.MoveTo(s.prevPt.Sub(normal))
		s.segmentCount = 0
	} else {
		s.join(s.prevPt, s.prevUnitNormal, unit, s.prevIsLine, isLine, min(s.prevLenSq, lenSq))
	}
	s.prevIsLine = isLine
	s.prevLenSq = lenSq
}

func (s *Stroker) postJoin(p, normal, unit vec.Vec2) {
	s.prevPt = p
	s.prevNormal = normal
	s.prevUnitNormal = unit
	s.segmentCount++
}

func (s *Stroker) join(pivot, before, after vec.Vec2, prevIsLine, currIsLine bool, minLenSq float64) *joint {
	j := &joint{
		pivot:         pivot,
		before:        before,
		after:         after,
		radius:        s.radius,
		invMiterLimit: s.invMiterLimit,
		side:          s.side,
		prevIsLine:    prevIsLine,
		currIsLine:    currIsLine,
		minLenSq:      minLenSq,
	}
	s.joiner.join(&s.outer, &s.inner, j)
	return j
}

// finishFigure completes the outline of the current figure.
func (s *Stroker) finishFigure(closed bool) {
	s.open = false
	switch {
	case s.radius == 0:
		// nothing to do

	case s.segmentCount < 0:
		if s.capper != nil {
			Logger().Debug("stroke: figure collapsed to a dot",
				slog.Float64("x", s.firstPt.X), slog.Float64("y", s.firstPt.Y))
			s.capper.dot(&s.outer, s.firstPt, s.radius)
		}

	case s.segmentCount == 0:
		// a lone MoveTo

	case closed:
		j := s.join(s.firstPt, s.prevUnitNormal, s.firstUnitNormal,
			s.prevIsLine, s.firstIsLine, min(s.prevLenSq, s.firstLenSq))
		if j.meetRail != nil && s.firstIsLine {
			// the first segment starts at the collapsed corner, too
			j.meetRail.setFigureStart(j.meet)
		}
		if s.capper == nil {
			s.outer.trimClosingPoint()
			s.outer.EndClosed()
			break
		}
		start, _ := s.outer.FigureStart()
		if last, _ := s.outer.LastPoint(); last != start {
			s.outer.LineTo(start)
		}
		s.inner.ReplayReverse(&splice{dst: &s.outer, bridge: true})
		s.outer.trimClosingPoint()
		s.outer.EndClosed()

	default:
		if s.capper == nil {
			s.outer.EndOpen()
			break
		}
		innerEnd, _ := s.inner.LastPoint()
		s.capper.cap(&s.outer, s.prevPt, s.prevNormal, innerEnd, s.prevIsLine)
		s.inner.ReplayReverse(&splice{dst: &s.outer})
		s.capper.cap(&s.outer, s.firstPt, s.firstNormal.Mul(-1), s.firstOuterPt, s.firstIsLine)
		s.outer.trimClosingPoint()
		s.outer.EndClosed()
	}
	s.inner.Reset()
	s.segmentCount = 0
}

// Finish terminates the current figure, if any, and replays the
// accumulated outline into dst.  If reversed is true, the outline is
// replayed backwards.  The Stroker keeps its output; call [Stroker.Reset]
// to start over.
func (s *Stroker) Finish(dst Sink, reversed bool) {
	s.flush()
	if reversed {
		s.outer.ReplayReverse(dst)
	} else {
		s.outer.Replay(dst)
	}
}

// Result terminates the current figure, if any, and returns the path
// holding the outline.  The returned path is owned by s and is only valid
// until s is modified.
func (s *Stroker) Result() *Path {
	s.flush()
	return &s.outer
}

func (s *Stroker) flush() {
	if s.open {
		s.finishFigure(false)
	}
	if !s.extra.IsEmpty() {
		s.extra.Replay(&s.outer)
		s.extra.Reset()
	}
}

// splice appends a replayed figure to the open figure of dst.  The start
// point of the replayed figure is either dropped or connected by a
// straight line.
type splice struct {
	dst    *Path
	bridge bool
}

func (sp *splice) MoveTo(p vec.Vec2) {
	if sp.bridge {
		sp.dst.LineTo(p)
	}
}
func (sp *splice) LineTo(p vec.Vec2)          { sp.dst.LineTo(p) }
func (sp *splice) QuadTo(c, p vec.Vec2)       { sp.dst.QuadTo(c, p) }
func (sp *splice) CubicTo(c1, c2, p vec.Vec2) { sp.dst.CubicTo(c1, c2, p) }
func (sp *splice) EndOpen()                   {}
func (sp *splice) EndClosed()                 {}

// Stroke returns the outline of src, stroked in the given style.
func Stroke(src Replayer, style Style) *Path {
	s := NewStroker(style)
	src.Replay(s)
	return s.Result()
}

// Offset returns the curves parallel to the figures of src at distance d.
func Offset(src Replayer, d float64, join graphics.LineJoinStyle, miterLimit float64) *Path {
	s := NewOffsetter(d, join, miterLimit)
	src.Replay(s)
	return s.Result()
}
