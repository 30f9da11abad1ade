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
	"image"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/outline/sinks"
)

// commands returns the recorded commands in text form.
func commands(r *sinks.Recorder) []string {
	res := make([]string, len(r.Cmds))
	for i, c := range r.Cmds {
		res[i] = c.String()
	}
	return res
}

// record replays p and returns the commands it produces.
func record(p Replayer) []string {
	r := &sinks.Recorder{}
	p.Replay(r)
	return commands(r)
}

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// polyline builds a path with one figure through the given points.
func polyline(closed bool, pts ...vec.Vec2) *Path {
	p := &Path{}
	p.MoveTo(pts[0])
	for _, q := range pts[1:] {
		p.LineTo(q)
	}
	if closed {
		p.EndClosed()
	} else {
		p.EndOpen()
	}
	return p
}

// coverage rasterises p at the given scale, after translating by (dx, dy),
// and returns the resulting alpha mask.
func coverage(p Replayer, w, h int, scale, dx, dy float64) *image.Alpha {
	r := vector.NewRasterizer(w, h)
	s := sinks.NewVector(r)
	s.CTM = matrix.Matrix{scale, 0, 0, scale, dx * scale, dy * scale}
	p.Replay(s)
	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	r.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	return dst
}

// area returns the covered area of a mask, in units of the path before
// scaling.
func area(mask *image.Alpha, scale float64) float64 {
	var sum float64
	for _, a := range mask.Pix {
		sum += float64(a) / 255
	}
	return sum / (scale * scale)
}

// covered reports whether the point p of the path is covered in mask.
func covered(mask *image.Alpha, p vec.Vec2, scale, dx, dy float64) bool {
	x := int((p.X + dx) * scale)
	y := int((p.Y + dy) * scale)
	return mask.AlphaAt(x, y).A > 127
}
