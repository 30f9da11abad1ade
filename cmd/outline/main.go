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

// Command outline computes the stroke, dash or offset outline described
// by a YAML job file, and writes the result as PNG, SVG or PDF.
//
// Usage:
//
//	outline [-v] -o out.png job.yaml
//
// A job file looks like this:
//
//	width: 100
//	height: 60
//	figures:
//	  - M 10 50 L 50 10 L 90 50
//	stroke:
//	  width: 6
//	  cap: round
//	  join: miter
//	  miter_limit: 4
//	dash:
//	  lengths: [12, 4]
//
// Instead of "stroke", an "offset" section with keys "distance", "join"
// and "miter_limit" computes a one-sided offset curve.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"seehuhn.de/go/outline"
)

func main() {
	out := flag.String("o", "out.png", "output file (.png, .svg or .pdf)")
	verbose := flag.Bool("v", false, "log details of the computation")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [-v] [-o file] job.yaml\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	outline.SetLogger(logger)

	if err := run(flag.Arg(0), *out, logger); err != nil {
		fmt.Fprintln(os.Stderr, "outline:", err)
		os.Exit(1)
	}
}

func run(jobFile, outFile string, logger *slog.Logger) error {
	f, err := os.Open(jobFile)
	if err != nil {
		return err
	}
	j, err := readJob(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("%s: %w", jobFile, err)
	}

	res, err := j.run()
	if err != nil {
		return fmt.Errorf("%s: %w", jobFile, err)
	}

	format := strings.ToLower(filepath.Ext(outFile))
	if err := writeFile(outFile, format, res, j); err != nil {
		return err
	}
	logger.Info("outline written",
		slog.String("file", outFile),
		slog.Int("figures", res.NumFigures()),
		slog.Int("nodes", res.Len()))
	return nil
}
