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

// Command export writes the test cases, together with the outlines
// computed for them, to JSON.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/outline/sinks"
	"seehuhn.de/go/outline/testcases"
)

const outFile = "testdata/testcases.json"

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc, err := toJSON(category, tc)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	if err := write(outFile, out); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func write(fname string, v any) (err error) {
	if err := os.MkdirAll(filepath.Dir(fname), 0755); err != nil {
		return err
	}
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

type jsonTestCase struct {
	Name       string        `json:"name"`
	Width      int           `json:"width"`
	Height     int           `json:"height"`
	Path       []jsonSegment `json:"path"`
	Op         string        `json:"op"`
	LineWidth  float64       `json:"line_width,omitempty"`
	LineCap    string        `json:"line_cap,omitempty"`
	LineJoin   string        `json:"line_join,omitempty"`
	MiterLimit float64       `json:"miter_limit,omitempty"`
	Dash       []float64     `json:"dash,omitempty"`
	DashPhase  float64       `json:"dash_phase,omitempty"`
	Distance   float64       `json:"distance,omitempty"`
	Area       float64       `json:"area,omitempty"`
	Outline    []jsonSegment `json:"outline"`
}

type jsonSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

func toJSON(category string, tc testcases.TestCase) (jsonTestCase, error) {
	jtc := jsonTestCase{
		Name:   category + "_" + tc.Name,
		Width:  tc.Width,
		Height: tc.Height,
		Path:   pathToJSON(tc.Path.Iter()),
		Area:   tc.Area,
	}

	switch op := tc.Op.(type) {
	case testcases.Stroke:
		jtc.Op = "stroke"
		jtc.LineWidth = op.Width
		jtc.LineCap = op.Cap.String()
		jtc.LineJoin = op.Join.String()
		jtc.MiterLimit = op.MiterLimit
		jtc.Dash = op.Dash
		jtc.DashPhase = op.DashPhase
	case testcases.Offset:
		jtc.Op = "offset"
		jtc.Distance = op.Distance
		jtc.LineJoin = op.Join.String()
		jtc.MiterLimit = op.MiterLimit
	}

	res, err := tc.Outline()
	if err != nil {
		return jtc, err
	}
	rec := &sinks.Recorder{}
	res.Replay(rec)
	jtc.Outline = recordingToJSON(rec)
	return jtc, nil
}

func pathToJSON(p path.Path) []jsonSegment {
	var segs []jsonSegment
	for cmd, pts := range p {
		var name string
		switch cmd {
		case path.CmdMoveTo:
			name = "M"
		case path.CmdLineTo:
			name = "L"
		case path.CmdQuadTo:
			name = "Q"
		case path.CmdCubeTo:
			name = "C"
		case path.CmdClose:
			name = "Z"
		}
		segs = append(segs, segment(name, pts))
	}
	return segs
}

func recordingToJSON(rec *sinks.Recorder) []jsonSegment {
	segs := make([]jsonSegment, 0, len(rec.Cmds))
	for _, c := range rec.Cmds {
		if c.Op == sinks.OpEndOpen {
			continue
		}
		segs = append(segs, segment(string(rune(c.Op)), c.Pts))
	}
	return segs
}

func segment(cmd string, pts []vec.Vec2) jsonSegment {
	seg := jsonSegment{Cmd: cmd, Pts: make([][]float64, len(pts))}
	for i, pt := range pts {
		seg.Pts[i] = []float64{pt.X, pt.Y}
	}
	return seg
}
