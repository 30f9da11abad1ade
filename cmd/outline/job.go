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
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/outline"
)

// job describes one outline computation.
type job struct {
	Width   float64     `yaml:"width"`
	Height  float64     `yaml:"height"`
	Scale   float64     `yaml:"scale"`
	Figures []string    `yaml:"figures"`
	Stroke  *strokeSpec `yaml:"stroke"`
	Dash    *dashSpec   `yaml:"dash"`
	Offset  *offsetSpec `yaml:"offset"`
	Reverse bool        `yaml:"reverse"`
}

type strokeSpec struct {
	Width      float64 `yaml:"width"`
	Cap        string  `yaml:"cap"`
	Join       string  `yaml:"join"`
	MiterLimit float64 `yaml:"miter_limit"`
}

type dashSpec struct {
	Lengths []float64 `yaml:"lengths"`
	Phase   float64   `yaml:"phase"`
}

type offsetSpec struct {
	Distance   float64 `yaml:"distance"`
	Join       string  `yaml:"join"`
	MiterLimit float64 `yaml:"miter_limit"`
}

var errJob = errors.New("invalid job")

// readJob decodes a job from YAML.  Unknown keys are an error.
func readJob(r io.Reader) (*job, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	j := &job{}
	if err := dec.Decode(j); err != nil {
		return nil, fmt.Errorf("decoding job: %w", err)
	}

	if j.Width <= 0 || j.Height <= 0 {
		return nil, fmt.Errorf("canvas size %gx%g: %w", j.Width, j.Height, errJob)
	}
	if j.Scale == 0 {
		j.Scale = 1
	} else if j.Scale < 0 {
		return nil, fmt.Errorf("scale %g: %w", j.Scale, errJob)
	}
	if j.Stroke != nil && j.Offset != nil {
		return nil, fmt.Errorf("both stroke and offset given: %w", errJob)
	}
	if j.Dash != nil && j.Offset != nil {
		return nil, fmt.Errorf("dash patterns need a stroke: %w", errJob)
	}
	return j, nil
}

// style returns the stroke style of the job.  Missing values are taken
// from [outline.DefaultStyle].
func (j *job) style() (outline.Style, error) {
	style := outline.DefaultStyle()
	if j.Stroke == nil {
		return style, nil
	}
	if j.Stroke.Width != 0 {
		style.Width = j.Stroke.Width
	}
	if j.Stroke.MiterLimit != 0 {
		style.MiterLimit = j.Stroke.MiterLimit
	}
	var err error
	if j.Stroke.Cap != "" {
		style.Cap, err = parseCap(j.Stroke.Cap)
		if err != nil {
			return style, err
		}
	}
	if j.Stroke.Join != "" {
		style.Join, err = parseJoin(j.Stroke.Join)
		if err != nil {
			return style, err
		}
	}
	return style, style.Validate()
}

func parseCap(s string) (graphics.LineCapStyle, error) {
	switch s {
	case "butt":
		return graphics.LineCapButt, nil
	case "round":
		return graphics.LineCapRound, nil
	case "square":
		return graphics.LineCapSquare, nil
	}
	return 0, fmt.Errorf("unknown cap %q: %w", s, errJob)
}

func parseJoin(s string) (graphics.LineJoinStyle, error) {
	switch s {
	case "miter":
		return graphics.LineJoinMiter, nil
	case "round":
		return graphics.LineJoinRound, nil
	case "bevel":
		return graphics.LineJoinBevel, nil
	}
	return 0, fmt.Errorf("unknown join %q: %w", s, errJob)
}

// source builds the input path of the job.
func (j *job) source() (*outline.Path, error) {
	p := &outline.Path{}
	for i, fig := range j.Figures {
		if err := parseFigure(p, fig); err != nil {
			return nil, fmt.Errorf("figure %d: %w", i+1, err)
		}
	}
	return p, nil
}

// parseFigure appends the figures described by s to p.  The syntax is
// a subset of SVG path data: the absolute commands M, L, Q, C and Z,
// with all numbers separated by white space or commas.
func parseFigure(p *outline.Path, s string) error {
	tokens := strings.Fields(strings.ReplaceAll(s, ",", " "))
	open := false
	for len(tokens) > 0 {
		cmd := tokens[0]
		tokens = tokens[1:]

		var n int
		switch cmd {
		case "M":
			n = 1
		case "L":
			n = 1
		case "Q":
			n = 2
		case "C":
			n = 3
		case "Z":
			if !open {
				return fmt.Errorf("Z without M: %w", errJob)
			}
			p.EndClosed()
			open = false
			continue
		default:
			return fmt.Errorf("unknown command %q: %w", cmd, errJob)
		}

		if len(tokens) < 2*n {
			return fmt.Errorf("%s needs %d numbers: %w", cmd, 2*n, errJob)
		}
		pts := make([]vec.Vec2, n)
		for k := range pts {
			x, err := strconv.ParseFloat(tokens[2*k], 64)
			if err != nil {
				return fmt.Errorf("%s: %w", cmd, err)
			}
			y, err := strconv.ParseFloat(tokens[2*k+1], 64)
			if err != nil {
				return fmt.Errorf("%s: %w", cmd, err)
			}
			pts[k] = vec.Vec2{X: x, Y: y}
		}
		tokens = tokens[2*n:]

		if cmd == "M" {
			p.MoveTo(pts[0])
			open = true
			continue
		}
		if !open {
			return fmt.Errorf("%s without M: %w", cmd, errJob)
		}
		switch cmd {
		case "L":
			p.LineTo(pts[0])
		case "Q":
			p.QuadTo(pts[0], pts[1])
		case "C":
			p.CubicTo(pts[0], pts[1], pts[2])
		}
	}
	if open {
		p.EndOpen()
	}
	return nil
}

// run computes the outline described by the job.
func (j *job) run() (*outline.Path, error) {
	src, err := j.source()
	if err != nil {
		return nil, err
	}

	var s *outline.Stroker
	if j.Offset != nil {
		join := graphics.LineJoinMiter
		if j.Offset.Join != "" {
			join, err = parseJoin(j.Offset.Join)
			if err != nil {
				return nil, err
			}
		}
		limit := j.Offset.MiterLimit
		if limit == 0 {
			limit = outline.DefaultStyle().MiterLimit
		}
		s = outline.NewOffsetter(j.Offset.Distance, join, limit)
	} else {
		style, err := j.style()
		if err != nil {
			return nil, err
		}
		s = outline.NewStroker(style)
	}

	if j.Dash != nil {
		d, err := outline.NewDasher(s, outline.DashPattern{Lengths: j.Dash.Lengths, Phase: j.Dash.Phase})
		if err != nil {
			return nil, err
		}
		src.Replay(d)
	} else {
		src.Replay(s)
	}

	res := &outline.Path{}
	s.Finish(res, j.Reverse)
	return res, nil
}
