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
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/outline"
	"seehuhn.de/go/outline/sinks"
)

// writePNG renders p in black on a white canvas.
func writePNG(w io.Writer, p *outline.Path, j *job) error {
	width := int(math.Ceil(j.Width * j.Scale))
	height := int(math.Ceil(j.Height * j.Scale))

	r := vector.NewRasterizer(width, height)
	s := sinks.NewVector(r)
	s.CTM = matrix.Matrix{j.Scale, 0, 0, j.Scale, 0, 0}
	p.Replay(s)

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	r.Draw(img, img.Bounds(), image.NewUniform(color.Black), image.Point{})
	return png.Encode(w, img)
}

// writeSVG writes p as the only element of an SVG image.
func writeSVG(w io.Writer, p *outline.Path, j *job) error {
	s := sinks.NewSVG(3)
	p.Replay(s)
	_, err := fmt.Fprintf(w, `<svg xmlns="http://www.w3.org/2000/svg" width="%g" height="%g" viewBox="0 0 %g %g">
<path d="%s" fill="black" fill-rule="nonzero"/>
</svg>
`, j.Width*j.Scale, j.Height*j.Scale, j.Width, j.Height, s.String())
	return err
}

// writePDF writes p to a single page PDF file.
func writePDF(fname string, p *outline.Path, j *job) error {
	paper := &pdf.Rectangle{
		URx: j.Width * j.Scale,
		URy: j.Height * j.Scale,
	}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// The job uses a y-axis pointing down.
	page.Transform(matrix.Matrix{j.Scale, 0, 0, -j.Scale, 0, j.Height * j.Scale})
	if !p.IsEmpty() {
		page.SetFillColor(pdfcolor.DeviceGray(0))
		p.Replay(sinks.NewPDF(page))
		page.Fill()
	}
	return page.Close()
}

// writeFile writes p to fname, in the format given by the file name
// extension.
func writeFile(fname, format string, p *outline.Path, j *job) (err error) {
	var write func(io.Writer, *outline.Path, *job) error
	switch format {
	case ".png":
		write = writePNG
	case ".svg":
		write = writeSVG
	case ".pdf":
		return writePDF(fname, p, j)
	default:
		return fmt.Errorf("unsupported output format %q", format)
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
	return write(f, p, j)
}
