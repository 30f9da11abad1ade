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

package main

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/outline"
	"seehuhn.de/go/outline/sinks"
)

const lineJob = `
width: 12
height: 4
figures:
  - M 0 2 L 10 2
stroke:
  width: 2
  cap: butt
`

func TestReadJob(t *testing.T) {
	j, err := readJob(strings.NewReader(lineJob))
	require.NoError(t, err)
	assert.Equal(t, 12.0, j.Width)
	assert.Equal(t, 1.0, j.Scale)
	assert.Equal(t, []string{"M 0 2 L 10 2"}, j.Figures)

	style, err := j.style()
	require.NoError(t, err)
	assert.Equal(t, outline.Style{
		Width:      2,
		Cap:        graphics.LineCapButt,
		Join:       graphics.LineJoinMiter,
		MiterLimit: 10,
	}, style)
}

func TestReadJobErrors(t *testing.T) {
	cases := map[string]string{
		"unknown key": "width: 10\nheight: 10\ncolour: red\n",
		"no size":     "figures: [M 0 0 L 1 1]\n",
		"two modes":   "width: 10\nheight: 10\nstroke: {width: 1}\noffset: {distance: 1}\n",
		"dash offset": "width: 10\nheight: 10\ndash: {lengths: [1]}\noffset: {distance: 1}\n",
		"bad scale":   "width: 10\nheight: 10\nscale: -1\n",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := readJob(strings.NewReader(src))
			assert.Error(t, err)
		})
	}
}

func TestParseFigure(t *testing.T) {
	p := &outline.Path{}
	err := parseFigure(p, "M 0 0 L 10,0 Q 15 5 10 10 Z M 20 0 C 21 1 22 1 23 0")
	require.NoError(t, err)

	rec := &sinks.Recorder{}
	p.Replay(rec)
	assert.Equal(t, "M 0,0; L 10,0; Q 15,5 10,10; Z; M 20,0; C 21,1 22,1 23,0; O", rec.String())
}

func TestParseFigureErrors(t *testing.T) {
	for _, s := range []string{
		"L 1 2",
		"M 1",
		"M 0 0 Z L 1 1",
		"Z",
		"M 0 0 X 1 1",
		"M a b",
	} {
		err := parseFigure(&outline.Path{}, s)
		assert.Error(t, err, s)
	}
}

func TestJobStroke(t *testing.T) {
	j, err := readJob(strings.NewReader(lineJob))
	require.NoError(t, err)
	res, err := j.run()
	require.NoError(t, err)
	assert.Equal(t, 1, res.NumFigures())
	assert.Equal(t, 4, res.Len())
}

func TestJobDash(t *testing.T) {
	j, err := readJob(strings.NewReader(lineJob + "dash:\n  lengths: [3, 2]\n"))
	require.NoError(t, err)
	res, err := j.run()
	require.NoError(t, err)
	assert.Equal(t, 2, res.NumFigures())

	j.Dash.Lengths = []float64{-1}
	_, err = j.run()
	assert.ErrorIs(t, err, outline.ErrInvalidDash)
}

func TestJobOffset(t *testing.T) {
	src := `
width: 20
height: 20
figures:
  - M 5 5 L 5 15 L 15 15 L 15 5 Z
offset:
  distance: 1
  join: bevel
`
	j, err := readJob(strings.NewReader(src))
	require.NoError(t, err)
	res, err := j.run()
	require.NoError(t, err)
	assert.Equal(t, 1, res.NumFigures())
	assert.Equal(t, 8, res.Len())
}

func TestJobBadStyle(t *testing.T) {
	j, err := readJob(strings.NewReader(lineJob))
	require.NoError(t, err)

	j.Stroke.Cap = "pointy"
	_, err = j.run()
	assert.ErrorIs(t, err, errJob)

	j.Stroke.Cap = ""
	j.Stroke.Width = -1
	_, err = j.run()
	assert.ErrorIs(t, err, outline.ErrInvalidStyle)
}

func TestWriteSVG(t *testing.T) {
	j, err := readJob(strings.NewReader(lineJob))
	require.NoError(t, err)
	res, err := j.run()
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	require.NoError(t, writeSVG(buf, res, j))
	assert.Contains(t, buf.String(), `<path d="M0,3 L10,3 L10,1 L0,1 Z"`)
	assert.Contains(t, buf.String(), `viewBox="0 0 12 4"`)
}

func TestWritePNG(t *testing.T) {
	j, err := readJob(strings.NewReader(lineJob))
	require.NoError(t, err)
	j.Scale = 2
	res, err := j.run()
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	require.NoError(t, writePNG(buf, res, j))
	img, err := png.Decode(buf)
	require.NoError(t, err)
	assert.Equal(t, 24, img.Bounds().Dx())
	assert.Equal(t, 8, img.Bounds().Dy())

	r, _, _, _ := img.At(4, 4).RGBA()
	assert.Equal(t, uint32(0), r)
	r, _, _, _ = img.At(22, 4).RGBA()
	assert.Equal(t, uint32(0xffff), r)
}

func TestWriteFileFormat(t *testing.T) {
	err := writeFile("out.gif", ".gif", &outline.Path{}, &job{Width: 1, Height: 1, Scale: 1})
	assert.Error(t, err)
}
