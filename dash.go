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
	"log/slog"
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/outline/bezier"
	"seehuhn.de/go/outline/internal/planar"
)

// ErrInvalidDash is returned (wrapped) by [NewDasher] if the dash pattern
// cannot be used.
var ErrInvalidDash = errors.New("invalid dash pattern")

// DashPattern describes an on/off pattern applied along a path.
type DashPattern struct {
	// Lengths alternates between the lengths of "on" and "off" parts,
	// starting with "on".  The pattern repeats.  A pattern with an odd
	// number of entries is repeated twice, so that [5] means [5 5].
	Lengths []float64

	// Phase is the distance into the pattern at which each figure starts.
	Phase float64

	// Weight, if not nil, scales the pattern along the path.  When an
	// entry of the pattern starts at point p, its length is multiplied by
	// Weight(p).
	Weight func(p vec.Vec2) float64
}

// Dasher splits figures into the "on" parts of a dash pattern.  Dasher
// implements [Sink]: every run of the pattern which lies on the path is
// sent to the downstream sink as an open figure.  Runs of zero length are
// sent as a single degenerate line segment, so that a stroker can draw
// them as dots.
//
// The pattern restarts at the beginning of every figure.
//
// A Dasher must not be used concurrently.
type Dasher struct {
	dst     Sink
	pattern []float64
	weight  func(vec.Vec2) float64

	startIdx    int
	startRemain float64

	open    bool
	empty   bool // no segment in the current figure yet
	firstPt vec.Vec2
	cur     vec.Vec2

	idx    int
	remain float64
	on     bool
	stall  int

	run Path // the run currently being collected

	// When a figure starts inside an "on" entry, its first run is held
	// back, so that it can be joined to the last run if the figure is
	// closed.  Runs completed in the meantime are kept in pending.
	holding bool
	held    Path
	pending Path
}

// NewDasher returns a Dasher which sends the "on" parts of every figure
// to dst.
func NewDasher(dst Sink, dp DashPattern) (*Dasher, error) {
	if len(dp.Lengths) == 0 {
		return nil, fmt.Errorf("empty pattern: %w", ErrInvalidDash)
	}
	var total float64
	for i, l := range dp.Lengths {
		if l < 0 || math.IsNaN(l) || math.IsInf(l, 0) {
			return nil, fmt.Errorf("entry %d has length %g: %w", i, l, ErrInvalidDash)
		}
		total += l
	}
	if total <= 0 {
		return nil, fmt.Errorf("pattern has zero length: %w", ErrInvalidDash)
	}
	if math.IsNaN(dp.Phase) || math.IsInf(dp.Phase, 0) {
		return nil, fmt.Errorf("phase %g: %w", dp.Phase, ErrInvalidDash)
	}

	pattern := dp.Lengths
	if len(pattern)%2 == 1 {
		Logger().Debug("dash: repeating odd-length pattern", slog.Int("entries", len(pattern)))
		pattern = append(append(make([]float64, 0, 2*len(pattern)), pattern...), pattern...)
		total *= 2
	} else {
		pattern = append([]float64(nil), pattern...)
	}

	d := &Dasher{
		dst:     dst,
		pattern: pattern,
		weight:  dp.Weight,
	}
	d.startIdx, d.startRemain = walkPhase(pattern, total, dp.Phase)
	return d, nil
}

// walkPhase finds the pattern entry at distance phase from the start of
// the pattern, and the length remaining in that entry.
func walkPhase(pattern []float64, total, phase float64) (int, float64) {
	phase = math.Mod(phase, total)
	if phase < 0 {
		phase += total
	}
	i := 0
	for range 2 * len(pattern) {
		e := pattern[i]
		if phase < e || e == 0 && phase == 0 {
			break
		}
		phase -= e
		i = (i + 1) % len(pattern)
	}
	return i, max(pattern[i]-phase, 0)
}

// MoveTo implements the [Sink] interface.
func (d *Dasher) MoveTo(p vec.Vec2) {
	if d.open {
		d.endFigure(false)
	}
	d.open = true
	d.empty = true
	d.firstPt = p
	d.cur = p

	d.idx = d.startIdx
	d.on = d.idx%2 == 0
	d.remain = d.startRemain * d.weightAt(p)
	d.stall = 0
	d.run.Reset()
	d.held.Reset()
	d.pending.Reset()
	d.holding = d.on
	if d.on {
		d.run.MoveTo(p)
	}
}

// LineTo implements the [Sink] interface.
func (d *Dasher) LineTo(p vec.Vec2) {
	d.mustBeOpen("LineTo")
	d.segment(&lineActor{a: d.cur, b: p})
}

// QuadTo implements the [Sink] interface.
func (d *Dasher) QuadTo(c, p vec.Vec2) {
	d.mustBeOpen("QuadTo")
	d.segment(&quadActor{p: [3]vec.Vec2{d.cur, c, p}})
}

// CubicTo implements the [Sink] interface.
func (d *Dasher) CubicTo(c1, c2, p vec.Vec2) {
	d.mustBeOpen("CubicTo")
	d.segment(&cubicActor{p: [4]vec.Vec2{d.cur, c1, c2, p}})
}

// EndOpen implements the [Sink] interface.
func (d *Dasher) EndOpen() {
	d.mustBeOpen("EndOpen")
	d.endFigure(false)
}

// EndClosed implements the [Sink] interface.
func (d *Dasher) EndClosed() {
	d.mustBeOpen("EndClosed")
	if d.cur != d.firstPt {
		d.segment(&lineActor{a: d.cur, b: d.firstPt})
	}
	d.endFigure(true)
}

func (d *Dasher) mustBeOpen(op string) {
	if !d.open {
		panic("outline: " + op + " without MoveTo")
	}
}

func (d *Dasher) weightAt(p vec.Vec2) float64 {
	if d.weight == nil {
		return 1
	}
	w := d.weight(p)
	if !(w > 0) || math.IsInf(w, 0) {
		return 0
	}
	return w
}

// maxStall limits the number of zero-length pattern entries which can be
// crossed at a single point.
const maxStall = 64

// segment feeds one segment of the path through the dash pattern.
func (d *Dasher) segment(seg actor) {
	d.empty = false
	L := seg.length()
	for L > d.remain {
		if d.remain <= 0 {
			d.stall++
			if d.stall > maxStall {
				// the weights make no progress possible
				d.remain = L
				break
			}
		} else {
			d.stall = 0
			var head actor
			head, seg = seg.split(d.remain, L)
			if d.on {
				head.appendTo(&d.run)
			}
			L -= d.remain
		}
		d.nextEntry(seg.start())
	}
	d.remain -= L
	if d.on {
		seg.appendTo(&d.run)
	}
	d.cur = seg.end()
}

// nextEntry ends the current pattern entry at p and starts the next one.
func (d *Dasher) nextEntry(p vec.Vec2) {
	if d.on {
		d.flushRun()
	}
	d.idx = (d.idx + 1) % len(d.pattern)
	d.on = d.idx%2 == 0
	d.remain = d.pattern[d.idx] * d.weightAt(p)
	if d.on {
		d.run.MoveTo(p)
	}
}

// flushRun completes the current run.
func (d *Dasher) flushRun() {
	switch {
	case d.holding && d.held.IsEmpty():
		d.held, d.run = d.run, d.held
	case d.holding:
		emitRun(&d.pending, &d.run)
	default:
		emitRun(d.dst, &d.run)
	}
	d.run.Reset()
}

func (d *Dasher) endFigure(closed bool) {
	d.open = false
	if d.empty && !closed {
		// a lone MoveTo has no extent
		d.run.Reset()
		return
	}
	if !d.holding {
		if d.on {
			emitRun(d.dst, &d.run)
		}
		d.run.Reset()
		return
	}

	switch {
	case d.held.IsEmpty():
		// no boundary was crossed
		if d.on {
			emitRun(d.dst, &d.run)
		}
	case closed && d.on:
		// the last run ends where the first one started
		d.pending.Replay(d.dst)
		d.held.Replay(&splice{dst: &d.run})
		emitRun(d.dst, &d.run)
	default:
		emitRun(d.dst, &d.held)
		d.pending.Replay(d.dst)
		if d.on {
			emitRun(d.dst, &d.run)
		}
	}
	d.run.Reset()
	d.held.Reset()
	d.pending.Reset()
}

// emitRun sends a run to dst as an open figure.  A run without segments
// is sent as a zero-length line.
func emitRun(dst Sink, run *Path) {
	if run.IsEmpty() {
		return
	}
	if run.Len() == 1 {
		p := run.nodes[0]
		dst.MoveTo(p)
		dst.LineTo(p)
		dst.EndOpen()
		return
	}
	run.Replay(dst)
}

// Dash applies a dash pattern to src and returns the resulting runs.
func Dash(src Replayer, dp DashPattern) (*Path, error) {
	res := &Path{}
	d, err := NewDasher(res, dp)
	if err != nil {
		return nil, err
	}
	src.Replay(d)
	if d.open {
		d.endFigure(false)
	}
	return res, nil
}

// An actor measures, splits and emits one kind of segment for the dasher.
type actor interface {
	start() vec.Vec2
	end() vec.Vec2
	length() float64

	// split cuts the segment at arc length l, where 0 < l < total and
	// total is the length of the segment.
	split(l, total float64) (head, tail actor)

	// appendTo adds the segment to the open figure of p.
	appendTo(p *Path)
}

type lineActor struct {
	a, b vec.Vec2
}

func (s *lineActor) start() vec.Vec2  { return s.a }
func (s *lineActor) end() vec.Vec2    { return s.b }
func (s *lineActor) length() float64  { return planar.Dist(s.a, s.b) }
func (s *lineActor) appendTo(p *Path) { p.LineTo(s.b) }

func (s *lineActor) split(l, total float64) (actor, actor) {
	m := planar.Lerp(s.a, s.b, l/total)
	return &lineActor{a: s.a, b: m}, &lineActor{a: m, b: s.b}
}

type quadActor struct {
	p [3]vec.Vec2
}

func (s *quadActor) start() vec.Vec2  { return s.p[0] }
func (s *quadActor) end() vec.Vec2    { return s.p[2] }
func (s *quadActor) length() float64  { return bezier.QuadLength(s.p) }
func (s *quadActor) appendTo(p *Path) { p.QuadTo(s.p[1], s.p[2]) }

func (s *quadActor) split(l, total float64) (actor, actor) {
	t := bezier.QuadParamAtLength(s.p, l, lengthTolerance(total))
	q := bezier.ChopQuadAt(s.p, t)
	return &quadActor{p: [3]vec.Vec2(q[0:3])}, &quadActor{p: [3]vec.Vec2(q[2:5])}
}

type cubicActor struct {
	p [4]vec.Vec2
}

func (s *cubicActor) start() vec.Vec2  { return s.p[0] }
func (s *cubicActor) end() vec.Vec2    { return s.p[3] }
func (s *cubicActor) length() float64  { return bezier.CubicLength(s.p) }
func (s *cubicActor) appendTo(p *Path) { p.CubicTo(s.p[1], s.p[2], s.p[3]) }

func (s *cubicActor) split(l, total float64) (actor, actor) {
	t := bezier.CubicParamAtLength(s.p, l, lengthTolerance(total))
	c := bezier.ChopCubicAt(s.p, t)
	return &cubicActor{p: [4]vec.Vec2(c[0:4])}, &cubicActor{p: [4]vec.Vec2(c[3:7])}
}

func lengthTolerance(total float64) float64 {
	return 1e-9 * max(total, 1)
}
