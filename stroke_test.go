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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/outline/sinks"
)

func style(width float64, cp graphics.LineCapStyle, join graphics.LineJoinStyle) Style {
	return Style{Width: width, Cap: cp, Join: join, MiterLimit: 10}
}

// square is a clockwise square, so that positive offsets point outwards.
func square() *Path {
	return polyline(true, pt(0, 0), pt(0, 10), pt(10, 10), pt(10, 0))
}

func TestStrokeButtLine(t *testing.T) {
	line := polyline(false, pt(0, 0), pt(10, 0))
	res := Stroke(line, style(2, graphics.LineCapButt, graphics.LineJoinMiter))
	assert.Equal(t, []vec.Vec2{pt(0, 1), pt(10, 1), pt(10, -1), pt(0, -1)}, res.Nodes())
	assert.Equal(t, []Marker{{Index: 4, Tag: TagClosed}}, res.Markers())
}

func TestStrokeSquareCapLine(t *testing.T) {
	line := polyline(false, pt(0, 0), pt(10, 0))
	res := Stroke(line, style(2, graphics.LineCapSquare, graphics.LineJoinMiter))
	assert.Equal(t, []vec.Vec2{pt(0, 1), pt(11, 1), pt(11, -1), pt(-1, -1), pt(-1, 1)}, res.Nodes())
	assert.Equal(t, 1, res.NumFigures())
}

func TestStrokeRoundCapLine(t *testing.T) {
	line := polyline(false, pt(0, 0), pt(10, 0))
	res := Stroke(line, style(2, graphics.LineCapRound, graphics.LineJoinMiter))
	require.Equal(t, 1, res.NumFigures())

	b := res.TightBounds()
	assert.InDelta(t, -1, b.LLx, 1e-3)
	assert.InDelta(t, 11, b.URx, 1e-3)
	assert.InDelta(t, -1, b.LLy, 1e-3)
	assert.InDelta(t, 1, b.URy, 1e-3)

	mask := coverage(res, 64, 16, 4, 2, 2)
	assert.InDelta(t, 20+math.Pi, area(mask, 4), 0.5)
}

func TestOffsetBevelSquare(t *testing.T) {
	res := Offset(square(), 1, graphics.LineJoinBevel, 10)
	assert.Equal(t, []vec.Vec2{
		pt(-1, 0), pt(-1, 10), pt(0, 11), pt(10, 11),
		pt(11, 10), pt(11, 0), pt(10, -1), pt(0, -1),
	}, res.Nodes())
	assert.Equal(t, []Marker{{Index: 8, Tag: TagClosed}}, res.Markers())
}

func TestOffsetMiterSquare(t *testing.T) {
	res := Offset(square(), 1, graphics.LineJoinMiter, 10)
	assert.Equal(t, []vec.Vec2{
		pt(-1, 0), pt(-1, 11), pt(11, 11), pt(11, -1), pt(-1, -1),
	}, res.Nodes())
}

func TestOffsetMiterLimit(t *testing.T) {
	// a 90° corner needs a miter limit of √2
	res := Offset(square(), 1, graphics.LineJoinMiter, 1.2)
	assert.Len(t, res.Nodes(), 8)
}

func TestOffsetRoundSquare(t *testing.T) {
	res := Offset(square(), 1, graphics.LineJoinRound, 10)
	require.Equal(t, 1, res.NumFigures())
	b := res.TightBounds()
	assert.InDelta(t, -1, b.LLx, 1e-9)
	assert.InDelta(t, 11, b.URy, 1e-9)

	// every node lies at distance 1 from the square
	for _, p := range res.Nodes() {
		dx := max(-p.X, p.X-10, 0)
		dy := max(-p.Y, p.Y-10, 0)
		d := math.Hypot(dx, dy)
		assert.LessOrEqual(t, d, 1.0+0.6, "%v", p)
	}
}

func TestOffsetInward(t *testing.T) {
	// on the concave side, the offset lines are cut where they meet
	for _, join := range []graphics.LineJoinStyle{graphics.LineJoinBevel, graphics.LineJoinMiter, graphics.LineJoinRound} {
		res := Offset(square(), -1, join, 10)
		assert.Equal(t, []vec.Vec2{pt(1, 1), pt(1, 9), pt(9, 9), pt(9, 1)}, res.Nodes(), join.String())
		assert.Equal(t, []Marker{{Index: 4, Tag: TagClosed}}, res.Markers(), join.String())
	}
}

func TestOffsetOpen(t *testing.T) {
	line := polyline(false, pt(0, 0), pt(10, 0), pt(10, 10))
	res := Offset(line, 2, graphics.LineJoinBevel, 10)
	assert.Equal(t, []string{"M 0,2", "L 8,2", "L 8,10", "O"}, record(res))
}

func TestOffsetShortSegments(t *testing.T) {
	// the offset lines would meet outside the 1-unit segment, so the
	// rail is taken through the corner
	line := polyline(false, pt(0, 0), pt(10, 0), pt(10, 1))
	res := Offset(line, 2, graphics.LineJoinBevel, 10)
	assert.Equal(t, []string{"M 0,2", "L 10,2", "L 10,0", "L 8,0", "L 8,1", "O"}, record(res))
}

// distToPolygon returns the distance from p to the boundary of the closed
// polygon through pts.
func distToPolygon(p vec.Vec2, pts []vec.Vec2) float64 {
	d := math.Inf(1)
	for i, a := range pts {
		b := pts[(i+1)%len(pts)]
		ab := b.Sub(a)
		t := max(0, min(1, p.Sub(a).Dot(ab)/ab.Dot(ab)))
		d = min(d, p.Sub(a.Add(ab.Mul(t))).Length())
	}
	return d
}

func TestOffsetPolygonDistance(t *testing.T) {
	// an L-shape has corners of both orientations
	corners := []vec.Vec2{pt(0, 0), pt(0, 20), pt(10, 20), pt(10, 10), pt(20, 10), pt(20, 0)}
	lShape := polyline(true, corners...)

	for _, d := range []float64{1, -1, 2.5, -2.5} {
		res := Offset(lShape, d, graphics.LineJoinBevel, 10)
		require.Equal(t, 1, res.NumFigures())
		for _, p := range res.Nodes() {
			assert.InDelta(t, math.Abs(d), distToPolygon(p, corners), 1e-9, "d=%g %v", d, p)
		}

		res = Offset(lShape, d, graphics.LineJoinMiter, 10)
		for _, p := range res.Nodes() {
			dist := distToPolygon(p, corners)
			assert.GreaterOrEqual(t, dist, math.Abs(d)-1e-9, "d=%g %v", d, p)
			assert.LessOrEqual(t, dist, math.Abs(d)*math.Sqrt2+1e-9, "d=%g %v", d, p)
		}
	}
}

func TestStrokeClosedRing(t *testing.T) {
	res := Stroke(square(), style(2, graphics.LineCapButt, graphics.LineJoinMiter))
	require.Equal(t, 1, res.NumFigures())
	assert.Equal(t, TagClosed, res.Markers()[len(res.Markers())-1].Tag)
	assert.Equal(t, rect.Rect{LLx: -1, LLy: -1, URx: 11, URy: 11}, res.Bounds())

	mask := coverage(res, 64, 64, 4, 2, 2)
	assert.InDelta(t, 12*12-8*8, area(mask, 4), 1)
	assert.False(t, covered(mask, pt(5, 5), 4, 2, 2))
	assert.True(t, covered(mask, pt(0, 5), 4, 2, 2))
	assert.True(t, covered(mask, pt(10.8, 10.8), 4, 2, 2))
}

func TestStrokeCircle(t *testing.T) {
	const k = 0.5522847498307936
	c := &Path{}
	c.MoveTo(pt(10, 0))
	c.CubicTo(pt(10, 10*k), pt(10*k, 10), pt(0, 10))
	c.CubicTo(pt(-10*k, 10), pt(-10, 10*k), pt(-10, 0))
	c.CubicTo(pt(-10, -10*k), pt(-10*k, -10), pt(0, -10))
	c.CubicTo(pt(10*k, -10), pt(10, -10*k), pt(10, 0))
	c.EndClosed()

	res := Stroke(c, style(2, graphics.LineCapButt, graphics.LineJoinRound))
	mask := coverage(res, 100, 100, 4, 12, 12)
	want := math.Pi * (11*11 - 9*9)
	assert.InDelta(t, want, area(mask, 4), want*0.02)
	assert.False(t, covered(mask, pt(0, 0), 4, 12, 12))
	assert.True(t, covered(mask, pt(0, 10), 4, 12, 12))
	assert.True(t, covered(mask, pt(-7.07, -7.07), 4, 12, 12))
}

func TestStrokeBoundsContainment(t *testing.T) {
	shapes := []*Path{square(), samplePath()}
	caps := []graphics.LineCapStyle{graphics.LineCapButt, graphics.LineCapRound, graphics.LineCapSquare}
	joins := []graphics.LineJoinStyle{graphics.LineJoinMiter, graphics.LineJoinRound, graphics.LineJoinBevel}
	const width = 3.0
	const r = width / 2
	for _, shape := range shapes {
		src := shape.TightBounds()
		for _, cp := range caps {
			for _, j := range joins {
				st := style(width, cp, j)
				res := Stroke(shape, st)
				got := res.TightBounds()

				slack := r
				if cp == graphics.LineCapSquare {
					slack = r * math.Sqrt2
				}
				if j == graphics.LineJoinMiter {
					slack = max(slack, r*st.MiterLimit)
				}
				// curve offsets and arcs are approximations
				slack += 0.02 * r

				assert.GreaterOrEqual(t, got.LLx, src.LLx-slack, "%s %s", cp, j)
				assert.GreaterOrEqual(t, got.LLy, src.LLy-slack, "%s %s", cp, j)
				assert.LessOrEqual(t, got.URx, src.URx+slack, "%s %s", cp, j)
				assert.LessOrEqual(t, got.URy, src.URy+slack, "%s %s", cp, j)

				// both shapes have straight edges at their lower left
				assert.LessOrEqual(t, got.LLx, src.LLx-width/2+1e-3)
				assert.LessOrEqual(t, got.LLy, src.LLy-width/2+1e-3)

				for _, m := range res.Markers() {
					assert.NotEqual(t, TagOpen, m.Tag)
				}
			}
		}
	}
}

func TestStrokeRoundReversal(t *testing.T) {
	// the path turns back on itself, so the join is a half circle
	line := polyline(false, pt(0, 0), pt(10, 0), pt(0, 0))
	res := Stroke(line, style(2, graphics.LineCapButt, graphics.LineJoinRound))
	require.Equal(t, 1, res.NumFigures())
	assert.InDelta(t, 11, res.TightBounds().URx, 1e-9)

	mask := coverage(res, 64, 16, 4, 2, 2)
	assert.True(t, covered(mask, pt(10.6, 0), 4, 2, 2))
	assert.False(t, covered(mask, pt(11.2, 0), 4, 2, 2))
	assert.InDelta(t, 20+math.Pi/2, area(mask, 4), 0.3)

	for _, d := range []float64{1, -1} {
		off := Offset(line, d, graphics.LineJoinRound, 10)
		assert.InDelta(t, 11, off.TightBounds().URx, 1e-9, "d=%g", d)
	}
}

func TestStrokeDot(t *testing.T) {
	dot := polyline(false, pt(5, 5), pt(5, 5))

	res := Stroke(dot, style(2, graphics.LineCapRound, graphics.LineJoinMiter))
	require.Equal(t, 1, res.NumFigures())
	b := res.TightBounds()
	assert.InDelta(t, 4, b.LLx, 1e-9)
	assert.InDelta(t, 6, b.URy, 1e-9)

	res = Stroke(dot, style(2, graphics.LineCapSquare, graphics.LineJoinMiter))
	assert.Equal(t, rect.Rect{LLx: 4, LLy: 4, URx: 6, URy: 6}, res.Bounds())
	assert.Len(t, res.Nodes(), 4)

	res = Stroke(dot, style(2, graphics.LineCapButt, graphics.LineJoinMiter))
	assert.True(t, res.IsEmpty())

	// a degenerate cubic is a dot, too
	c := &Path{}
	c.MoveTo(pt(1, 1))
	c.CubicTo(pt(1, 1), pt(1, 1), pt(1, 1))
	res = Stroke(c, style(2, graphics.LineCapRound, graphics.LineJoinMiter))
	assert.Equal(t, 1, res.NumFigures())
}

func TestStrokeNothing(t *testing.T) {
	p := &Path{}
	p.MoveTo(pt(1, 1))
	p.EndOpen()
	assert.True(t, Stroke(p, style(2, graphics.LineCapRound, graphics.LineJoinRound)).IsEmpty())

	line := polyline(false, pt(0, 0), pt(10, 0))
	assert.True(t, Stroke(line, style(0, graphics.LineCapRound, graphics.LineJoinRound)).IsEmpty())
	assert.True(t, Offset(line, 0, graphics.LineJoinRound, 10).IsEmpty())
}

func TestStrokeDegenerateSegments(t *testing.T) {
	a := polyline(false, pt(0, 0), pt(5, 0), pt(5, 0), pt(10, 0))
	b := polyline(false, pt(0, 0), pt(5, 0), pt(10, 0))
	sa := Stroke(a, style(2, graphics.LineCapButt, graphics.LineJoinMiter))
	sb := Stroke(b, style(2, graphics.LineCapButt, graphics.LineJoinMiter))
	assert.Equal(t, sb.Nodes(), sa.Nodes())
}

func TestStrokeReversedFinish(t *testing.T) {
	s := NewStroker(style(2, graphics.LineCapButt, graphics.LineJoinBevel))
	square().Replay(s)

	fwd := &Path{}
	s.Finish(fwd, false)
	rev := &sinks.Recorder{}
	s.Finish(rev, true)

	want := &sinks.Recorder{}
	fwd.ReplayReverse(want)
	assert.Equal(t, want.Cmds, rev.Cmds)
}

func TestStrokeCusp(t *testing.T) {
	// the control point lies beyond the end point, so the curve turns back
	q := &Path{}
	q.MoveTo(pt(0, 0))
	q.QuadTo(pt(20, 0), pt(10, 0))
	q.EndOpen()

	res := Stroke(q, style(2, graphics.LineCapButt, graphics.LineJoinMiter))
	assert.Equal(t, 2, res.NumFigures())
	mask := coverage(res, 100, 20, 4, 2, 2)
	assert.True(t, covered(mask, pt(13.8, 0.3), 4, 2, 2))
	assert.True(t, covered(mask, pt(5, 0), 4, 2, 2))

	off := Offset(q, 1, graphics.LineJoinMiter, 10)
	assert.Equal(t, 1, off.NumFigures())
}

func TestStrokeQuadCurve(t *testing.T) {
	q := &Path{}
	q.MoveTo(pt(0, 0))
	q.QuadTo(pt(10, 20), pt(20, 0))
	q.EndOpen()

	res := Stroke(q, style(2, graphics.LineCapButt, graphics.LineJoinMiter))
	require.Equal(t, 1, res.NumFigures())
	mask := coverage(res, 100, 60, 4, 2, 2)
	top := pt(10, 10)
	assert.True(t, covered(mask, top, 4, 2, 2))
	assert.True(t, covered(mask, pt(10, 10.8), 4, 2, 2))
	assert.False(t, covered(mask, pt(10, 11.3), 4, 2, 2))
	assert.False(t, covered(mask, pt(10, 8.7), 4, 2, 2))
}

func TestOffsetSplitsAtInflection(t *testing.T) {
	c := &Path{}
	c.MoveTo(pt(0, 10))
	c.CubicTo(pt(15, -5), pt(15, 25), pt(30, 10))
	c.EndOpen()

	// the curve passes (15, 10) in direction (1, 1) at its inflection
	res := Offset(c, 2, graphics.LineJoinMiter, 10)
	want := pt(15-math.Sqrt2, 10+math.Sqrt2)
	found := false
	for _, p := range res.Nodes() {
		if p.Sub(want).Length() < 1e-9 {
			found = true
		}
	}
	assert.True(t, found, "no node at %v", want)
}

func TestStrokerMisuse(t *testing.T) {
	s := NewStroker(DefaultStyle())
	assert.Panics(t, func() { s.LineTo(pt(1, 1)) })
	assert.Panics(t, func() { s.EndClosed() })
}

func TestStrokerReset(t *testing.T) {
	s := NewStroker(DefaultStyle())
	square().Replay(s)
	require.False(t, s.Result().IsEmpty())
	s.Reset()
	assert.True(t, s.Result().IsEmpty())
}

func TestStyleValidate(t *testing.T) {
	assert.NoError(t, DefaultStyle().Validate())

	bad := []Style{
		{Width: -1, MiterLimit: 10},
		{Width: math.NaN(), MiterLimit: 10},
		{Width: 1, Join: graphics.LineJoinMiter, MiterLimit: 0.5},
		{Width: 1, Cap: graphics.LineCapStyle(17), MiterLimit: 10},
		{Width: 1, Join: graphics.LineJoinStyle(17), MiterLimit: 10},
	}
	for _, s := range bad {
		err := s.Validate()
		assert.True(t, errors.Is(err, ErrInvalidStyle), "%+v", s)
	}
}
