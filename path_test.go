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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/outline/sinks"
)

// samplePath has a closed figure with all segment types, followed by an
// open two-point figure.
func samplePath() *Path {
	p := &Path{}
	p.MoveTo(pt(0, 0))
	p.LineTo(pt(10, 0))
	p.QuadTo(pt(15, 5), pt(10, 10))
	p.CubicTo(pt(7, 12), pt(3, 12), pt(0, 10))
	p.EndClosed()
	p.MoveTo(pt(20, 0))
	p.LineTo(pt(30, 0))
	p.EndOpen()
	return p
}

func TestPathEncoding(t *testing.T) {
	p := samplePath()
	assert.Equal(t, 9, p.Len())
	assert.Equal(t, []Marker{
		{Index: 2, Tag: TagQuad},
		{Index: 4, Tag: TagCubic},
		{Index: 7, Tag: TagClosed},
		{Index: 9, Tag: TagOpen},
	}, p.Markers())
	assert.Equal(t, 2, p.NumFigures())
	assert.False(t, p.HasTail())
}

func TestPathReplay(t *testing.T) {
	assert.Equal(t, []string{
		"M 0,0", "L 10,0", "Q 15,5 10,10", "C 7,12 3,12 0,10", "Z",
		"M 20,0", "L 30,0", "O",
	}, record(samplePath()))
}

func TestPathRoundTrip(t *testing.T) {
	p := samplePath()
	q := &Path{}
	p.Replay(q)
	assert.Equal(t, p.Nodes(), q.Nodes())
	assert.Equal(t, p.Markers(), q.Markers())
}

func TestPathReverse(t *testing.T) {
	p := samplePath()
	r := &sinks.Recorder{}
	p.ReplayReverse(r)
	assert.Equal(t, []string{
		"M 30,0", "L 20,0", "O",
		"M 0,10", "C 3,12 7,12 10,10", "Q 15,5 10,0", "L 0,0", "Z",
	}, commands(r))
}

func TestPathReverseInvolution(t *testing.T) {
	p := samplePath()
	p.MoveTo(pt(1, 1))
	p.CubicTo(pt(2, 2), pt(3, 2), pt(4, 1))
	p.LineTo(pt(5, 5))

	once := &Path{}
	p.ReplayReverse(once)
	twice := &Path{}
	once.ReplayReverse(twice)

	// the tail is terminated by the replay
	want := &Path{}
	p.Replay(want)
	assert.Equal(t, want.Nodes(), twice.Nodes())
	assert.Equal(t, want.Markers(), twice.Markers())
}

func TestPathTail(t *testing.T) {
	p := samplePath()
	p.MoveTo(pt(40, 0))
	p.QuadTo(pt(45, 5), pt(50, 0))
	require.True(t, p.HasTail())
	assert.Equal(t, 3, p.NumFigures())

	full := record(p)
	assert.Equal(t, "O", full[len(full)-1])
	assert.Len(t, full, 11)

	complete := &sinks.Recorder{}
	p.ReplayComplete(complete)
	assert.Equal(t, record(samplePath()), commands(complete))

	tail := p.Tail()
	assert.Equal(t, []string{"M 40,0", "Q 45,5 50,0", "O"}, record(tail))
	assert.Empty(t, samplePath().Tail().Nodes())

	start, ok := p.FigureStart()
	assert.True(t, ok)
	assert.Equal(t, pt(40, 0), start)
}

func TestPathMoveToEndsFigure(t *testing.T) {
	p := &Path{}
	p.MoveTo(pt(0, 0))
	p.LineTo(pt(1, 0))
	p.MoveTo(pt(5, 5))
	p.EndClosed()
	assert.Equal(t, []string{"M 0,0", "L 1,0", "O", "M 5,5", "Z"}, record(p))
}

func TestPathMisuse(t *testing.T) {
	p := &Path{}
	assert.Panics(t, func() { p.LineTo(pt(1, 1)) })
	assert.Panics(t, func() { p.QuadTo(pt(1, 1), pt(2, 2)) })
	assert.Panics(t, func() { p.CubicTo(pt(1, 1), pt(2, 2), pt(3, 3)) })
	assert.Panics(t, func() { p.EndOpen() })
	p.MoveTo(pt(0, 0))
	p.EndClosed()
	assert.Panics(t, func() { p.EndClosed() })
}

func TestPathReset(t *testing.T) {
	p := samplePath()
	p.MoveTo(pt(1, 1))
	p.Reset()
	assert.True(t, p.IsEmpty())
	assert.False(t, p.HasTail())
	assert.Empty(t, record(p))
	_, ok := p.LastPoint()
	assert.False(t, ok)
}

func TestPathBounds(t *testing.T) {
	p := &Path{}
	p.MoveTo(pt(0, 0))
	p.QuadTo(pt(1, 2), pt(2, 0))
	p.EndOpen()

	b := p.Bounds()
	assert.Equal(t, 2.0, b.URy)
	tb := p.TightBounds()
	assert.InDelta(t, 1.0, tb.URy, 1e-12)
	assert.Equal(t, 0.0, tb.LLx)
	assert.Equal(t, 2.0, tb.URx)

	c := &Path{}
	c.MoveTo(pt(0, 0))
	c.CubicTo(pt(0, 1), pt(1, 1), pt(1, 0))
	tb = c.TightBounds()
	assert.InDelta(t, 0.75, tb.URy, 1e-12)
	assert.Equal(t, 0.0, tb.LLy)

	assert.Zero(t, (&Path{}).Bounds())
}

func TestPathIter(t *testing.T) {
	p := samplePath()
	var cmds []path.Command
	for cmd := range p.Iter() {
		cmds = append(cmds, cmd)
	}
	assert.Equal(t, []path.Command{
		path.CmdMoveTo, path.CmdLineTo, path.CmdQuadTo, path.CmdCubeTo, path.CmdClose,
		path.CmdMoveTo, path.CmdLineTo,
	}, cmds)

	// early exit
	n := 0
	for range p.Iter() {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)

	d := p.Data()
	assert.Equal(t, cmds, d.Cmds)
	assert.Len(t, d.Coords, 9)
}

func TestDrive(t *testing.T) {
	p := samplePath()
	q := &Path{}
	Drive(p.Iter(), q)
	assert.Equal(t, p.Nodes(), q.Nodes())
	assert.Equal(t, p.Markers(), q.Markers())
}

func TestDriveAfterClose(t *testing.T) {
	d := &path.Data{
		Cmds: []path.Command{
			path.CmdMoveTo, path.CmdLineTo, path.CmdLineTo, path.CmdClose,
			path.CmdLineTo,
		},
		Coords: []vec.Vec2{pt(0, 0), pt(1, 0), pt(1, 1), pt(0, 5)},
	}
	r := &sinks.Recorder{}
	Drive(d.Iter(), r)
	assert.Equal(t, []string{
		"M 0,0", "L 1,0", "L 1,1", "Z",
		"M 0,0", "L 0,5", "O",
	}, commands(r))
}

func TestTagString(t *testing.T) {
	assert.Equal(t, "closed", TagClosed.String())
	assert.Equal(t, "cubic", TagCubic.String())
	assert.Equal(t, "Tag(9)", Tag(9).String())
}
