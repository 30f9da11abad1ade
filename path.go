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
	"fmt"
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/outline/bezier"
)

// Tag gives the meaning of a [Marker].
type Tag uint8

// These are the possible marker tags.
const (
	// TagClosed ends a figure with an implied segment back to its start.
	TagClosed Tag = iota + 1

	// TagOpen ends a figure without closing it.
	TagOpen

	// TagQuad marks the node at its index as the control point of a
	// quadratic segment ending at the following node.
	TagQuad

	// TagCubic marks the node at its index and the following one as the
	// control points of a cubic segment ending at the third node.
	TagCubic
)

func (t Tag) String() string {
	switch t {
	case TagClosed:
		return "closed"
	case TagOpen:
		return "open"
	case TagQuad:
		return "quad"
	case TagCubic:
		return "cubic"
	default:
		return fmt.Sprintf("Tag(%d)", t)
	}
}

// Marker annotates the node sequence of a [Path].
//
// End markers consume no nodes; their index is the index of the first node
// following the figure.  Curve markers sit on the first control point of
// the segment.
type Marker struct {
	Index int
	Tag   Tag
}

// Path stores a sequence of figures compactly.
//
// All coordinates are kept in a single node array.  A node which is not
// claimed by a marker is the end point of a straight segment, or the start
// point if it begins a figure.  Markers are stored in increasing order of
// their index, so that replay is a single forward scan.
//
// A Path implements [Sink], so engines can write their results into a
// Path.  The zero value is an empty path, ready to use.
type Path struct {
	nodes   []vec.Vec2
	markers []Marker

	// figureStart is the index of the first node of the figure currently
	// being built, or -1 if no figure is open.
	figureStart int
	open        bool
}

// NewPath allocates an empty path with room for the given number of nodes.
func NewPath(nodeCap int) *Path {
	return &Path{
		nodes: make([]vec.Vec2, 0, nodeCap),
	}
}

// Reset removes all figures from p, keeping the allocated storage.
func (p *Path) Reset() {
	p.nodes = p.nodes[:0]
	p.markers = p.markers[:0]
	p.open = false
}

// Len returns the number of nodes in p.
func (p *Path) Len() int {
	return len(p.nodes)
}

// Nodes returns the node array of p.  The caller must not modify it.
func (p *Path) Nodes() []vec.Vec2 {
	return p.nodes
}

// Markers returns the marker array of p.  The caller must not modify it.
func (p *Path) Markers() []Marker {
	return p.markers
}

// IsEmpty reports whether p contains no nodes.
func (p *Path) IsEmpty() bool {
	return len(p.nodes) == 0
}

// HasTail reports whether the last figure of p has not been terminated.
func (p *Path) HasTail() bool {
	return p.open
}

// LastPoint returns the last node of p.  If p is empty, ok is false.
func (p *Path) LastPoint() (pt vec.Vec2, ok bool) {
	if len(p.nodes) == 0 {
		return vec.Vec2{}, false
	}
	return p.nodes[len(p.nodes)-1], true
}

// setLastPoint replaces the last node of the open figure.
func (p *Path) setLastPoint(pt vec.Vec2) {
	p.nodes[len(p.nodes)-1] = pt
}

// setFigureStart replaces the first node of the open figure.
func (p *Path) setFigureStart(pt vec.Vec2) {
	p.nodes[p.figureStart] = pt
}

// FigureStart returns the first point of the figure currently being built.
func (p *Path) FigureStart() (pt vec.Vec2, ok bool) {
	if !p.open {
		return vec.Vec2{}, false
	}
	return p.nodes[p.figureStart], true
}

// trimClosingPoint removes the last node of the open figure if it is a
// straight segment ending at the figure's start point, since EndClosed
// implies that segment anyway.
func (p *Path) trimClosingPoint() {
	n := len(p.nodes)
	if !p.open || n-p.figureStart < 3 || p.nodes[n-1] != p.nodes[p.figureStart] {
		return
	}
	if k := len(p.markers); k > 0 {
		m := p.markers[k-1]
		if m.Tag == TagQuad && m.Index+1 == n-1 || m.Tag == TagCubic && m.Index+2 == n-1 {
			return
		}
	}
	p.nodes = p.nodes[:n-1]
}

// MoveTo starts a new figure.  An unterminated previous figure is ended
// with EndOpen.
func (p *Path) MoveTo(pt vec.Vec2) {
	if p.open {
		p.EndOpen()
	}
	p.figureStart = len(p.nodes)
	p.open = true
	p.nodes = append(p.nodes, pt)
}

// LineTo appends a straight segment.
func (p *Path) LineTo(pt vec.Vec2) {
	p.mustBeOpen("LineTo")
	p.nodes = append(p.nodes, pt)
}

// QuadTo appends a quadratic Bézier segment.
func (p *Path) QuadTo(c, pt vec.Vec2) {
	p.mustBeOpen("QuadTo")
	p.markers = append(p.markers, Marker{Index: len(p.nodes), Tag: TagQuad})
	p.nodes = append(p.nodes, c, pt)
}

// CubicTo appends a cubic Bézier segment.
func (p *Path) CubicTo(c1, c2, pt vec.Vec2) {
	p.mustBeOpen("CubicTo")
	p.markers = append(p.markers, Marker{Index: len(p.nodes), Tag: TagCubic})
	p.nodes = append(p.nodes, c1, c2, pt)
}

// EndOpen terminates the current figure without closing it.
func (p *Path) EndOpen() {
	p.end(TagOpen)
}

// EndClosed terminates the current figure, closing it.
func (p *Path) EndClosed() {
	p.end(TagClosed)
}

func (p *Path) end(tag Tag) {
	p.mustBeOpen(tag.String())
	p.markers = append(p.markers, Marker{Index: len(p.nodes), Tag: tag})
	p.open = false
	p.figureStart = -1
}

func (p *Path) mustBeOpen(op string) {
	if !p.open {
		panic("outline: " + op + " without MoveTo")
	}
}

// Replay sends all figures of p to s.  An unterminated trailing figure is
// replayed as an open figure.
func (p *Path) Replay(s Sink) {
	p.replay(s, len(p.nodes))
	if p.open {
		s.EndOpen()
	}
}

// ReplayComplete sends only the terminated figures of p to s.
func (p *Path) ReplayComplete(s Sink) {
	n := len(p.nodes)
	if p.open {
		n = p.figureStart
	}
	p.replay(s, n)
}

// replay walks the nodes before index n.  It does not emit the end of an
// unterminated figure.
func (p *Path) replay(s Sink, n int) {
	m := 0
	start := true
	i := 0
	for {
		if m < len(p.markers) && p.markers[m].Index == i {
			tag := p.markers[m].Tag
			m++
			switch tag {
			case TagClosed:
				s.EndClosed()
				start = true
				continue
			case TagOpen:
				s.EndOpen()
				start = true
				continue
			case TagQuad:
				s.QuadTo(p.nodes[i], p.nodes[i+1])
				i += 2
				continue
			case TagCubic:
				s.CubicTo(p.nodes[i], p.nodes[i+1], p.nodes[i+2])
				i += 3
				continue
			}
		}
		if i >= n {
			break
		}
		if start {
			s.MoveTo(p.nodes[i])
			start = false
		} else {
			s.LineTo(p.nodes[i])
		}
		i++
	}
}

// Tail returns the unterminated trailing figure of p as a new path.
// The figure is still open in the result.  If p has no such figure,
// the result is empty.
func (p *Path) Tail() *Path {
	res := &Path{figureStart: -1}
	if !p.open {
		return res
	}
	res.nodes = append(res.nodes, p.nodes[p.figureStart:]...)
	for _, m := range p.markers {
		if m.Index > p.figureStart {
			res.markers = append(res.markers, Marker{Index: m.Index - p.figureStart, Tag: m.Tag})
		}
	}
	res.figureStart = 0
	res.open = true
	return res
}

// figure describes the nodes [first, end) and the curve markers
// [m0, m1) of one figure.
type figure struct {
	first, end int
	m0, m1     int
	tag        Tag
}

func (p *Path) figures() []figure {
	var res []figure
	cur := figure{m0: 0}
	for k, m := range p.markers {
		if m.Tag != TagClosed && m.Tag != TagOpen {
			continue
		}
		cur.end = m.Index
		cur.m1 = k
		cur.tag = m.Tag
		res = append(res, cur)
		cur = figure{first: m.Index, m0: k + 1}
	}
	if p.open {
		cur.end = len(p.nodes)
		cur.m1 = len(p.markers)
		cur.tag = TagOpen
		res = append(res, cur)
	}
	return res
}

// ReplayReverse sends the figures of p to s in reverse order, each one
// traversed from its last point to its first.
func (p *Path) ReplayReverse(s Sink) {
	figs := p.figures()
	for f := len(figs) - 1; f >= 0; f-- {
		fig := figs[f]
		cur := fig.end - 1
		s.MoveTo(p.nodes[cur])
		k := fig.m1 - 1
		for cur > fig.first {
			if k >= fig.m0 {
				m := p.markers[k]
				if m.Tag == TagQuad && m.Index+1 == cur {
					s.QuadTo(p.nodes[cur-1], p.nodes[cur-2])
					cur -= 2
					k--
					continue
				}
				if m.Tag == TagCubic && m.Index+2 == cur {
					s.CubicTo(p.nodes[cur-1], p.nodes[cur-2], p.nodes[cur-3])
					cur -= 3
					k--
					continue
				}
			}
			s.LineTo(p.nodes[cur-1])
			cur--
		}
		if fig.tag == TagClosed {
			s.EndClosed()
		} else {
			s.EndOpen()
		}
	}
}

// NumFigures returns the number of figures in p, including an
// unterminated trailing figure.
func (p *Path) NumFigures() int {
	n := 0
	for _, m := range p.markers {
		if m.Tag == TagClosed || m.Tag == TagOpen {
			n++
		}
	}
	if p.open {
		n++
	}
	return n
}

// Bounds returns the bounding box of all nodes of p, including curve
// control points.  The result contains the path.
func (p *Path) Bounds() rect.Rect {
	if len(p.nodes) == 0 {
		return rect.Rect{}
	}
	b := rect.Rect{
		LLx: math.Inf(1), LLy: math.Inf(1),
		URx: math.Inf(-1), URy: math.Inf(-1),
	}
	for _, pt := range p.nodes {
		extend(&b, pt)
	}
	return b
}

// TightBounds returns the smallest axis-aligned rectangle containing p.
// Unlike [Path.Bounds], control points outside the curves are not
// included.
func (p *Path) TightBounds() rect.Rect {
	if len(p.nodes) == 0 {
		return rect.Rect{}
	}
	tb := &boundsSink{
		r: rect.Rect{
			LLx: math.Inf(1), LLy: math.Inf(1),
			URx: math.Inf(-1), URy: math.Inf(-1),
		},
	}
	p.Replay(tb)
	return tb.r
}

func extend(r *rect.Rect, pt vec.Vec2) {
	r.LLx = min(r.LLx, pt.X)
	r.LLy = min(r.LLy, pt.Y)
	r.URx = max(r.URx, pt.X)
	r.URy = max(r.URy, pt.Y)
}

// boundsSink accumulates the exact bounding box of the curves it is given.
type boundsSink struct {
	r   rect.Rect
	cur vec.Vec2
	buf [4]float64
}

func (b *boundsSink) MoveTo(p vec.Vec2) {
	extend(&b.r, p)
	b.cur = p
}

func (b *boundsSink) LineTo(p vec.Vec2) {
	extend(&b.r, p)
	b.cur = p
}

func (b *boundsSink) QuadTo(c, p vec.Vec2) {
	q := [3]vec.Vec2{b.cur, c, p}
	if t, ok := bezier.QuadExtremum(q[0].X, q[1].X, q[2].X); ok {
		extend(&b.r, bezier.EvalQuad(q, t))
	}
	if t, ok := bezier.QuadExtremum(q[0].Y, q[1].Y, q[2].Y); ok {
		extend(&b.r, bezier.EvalQuad(q, t))
	}
	extend(&b.r, p)
	b.cur = p
}

func (b *boundsSink) CubicTo(c1, c2, p vec.Vec2) {
	c := [4]vec.Vec2{b.cur, c1, c2, p}
	ts := bezier.CubicExtrema(c[0].X, c[1].X, c[2].X, c[3].X, b.buf[:0])
	ts = bezier.CubicExtrema(c[0].Y, c[1].Y, c[2].Y, c[3].Y, ts)
	for _, t := range ts {
		extend(&b.r, bezier.EvalCubic(c, t))
	}
	extend(&b.r, p)
	b.cur = p
}

func (b *boundsSink) EndOpen()   {}
func (b *boundsSink) EndClosed() {}

// Iter returns p as a path in the format of the seehuhn.de/go/geom/path
// package.  Figures ending with EndClosed are followed by a ClosePath
// command.
func (p *Path) Iter() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		y := &yieldSink{yield: yield}
		p.Replay(y)
	}
}

// Data converts p into a [path.Data] value.
func (p *Path) Data() *path.Data {
	d := &path.Data{}
	for cmd, pts := range p.Iter() {
		d.Cmds = append(d.Cmds, cmd)
		d.Coords = append(d.Coords, pts...)
	}
	return d
}

// yieldSink forwards commands to an iterator callback, until the callback
// asks to stop.
type yieldSink struct {
	yield   func(path.Command, []vec.Vec2) bool
	stopped bool
	buf     [3]vec.Vec2
}

func (y *yieldSink) emit(cmd path.Command, pts ...vec.Vec2) {
	if y.stopped {
		return
	}
	n := copy(y.buf[:], pts)
	if !y.yield(cmd, y.buf[:n]) {
		y.stopped = true
	}
}

func (y *yieldSink) MoveTo(p vec.Vec2)          { y.emit(path.CmdMoveTo, p) }
func (y *yieldSink) LineTo(p vec.Vec2)          { y.emit(path.CmdLineTo, p) }
func (y *yieldSink) QuadTo(c, p vec.Vec2)       { y.emit(path.CmdQuadTo, c, p) }
func (y *yieldSink) CubicTo(c1, c2, p vec.Vec2) { y.emit(path.CmdCubeTo, c1, c2, p) }
func (y *yieldSink) EndOpen()                   {}
func (y *yieldSink) EndClosed()                 { y.emit(path.CmdClose) }
