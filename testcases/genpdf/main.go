// seehuhn.de/go/shapes - parametric outlines for the drawing demos
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

// Command genpdf draws every gallery shape into its own PDF file and
// renders the PDFs to PNGs using Ghostscript.  The outlines are written
// from the shape primitives, so that rectangles use the PDF rectangle
// operator and only ellipses and arcs are approximated by curves.
//
// Run from the module root directory.
package main

import (
	"flag"
	"fmt"
	"log"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/shapes"
	"seehuhn.de/go/shapes/testcases"
)

func main() {
	outDir := flag.String("o", "testdata/reference", "output directory")
	noPNG := flag.Bool("no-png", false, "only write the PDF files")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		log.Fatal(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			base := filepath.Join(*outDir, category+"_"+tc.Name)
			if err := writePDF(tc, base+".pdf"); err != nil {
				log.Fatalf("%s: %v", base, err)
			}
			if *noPNG {
				continue
			}
			if err := ghostscript(base+".pdf", base+".png"); err != nil {
				log.Fatalf("%s: %v", base, err)
			}
		}
	}
}

// writePDF draws tc in white on a black page of the canvas size, so that
// the gray levels of the rendered page are coverage values.
func writePDF(tc testcases.TestCase, fname string) error {
	w, h := float64(tc.Width), float64(tc.Height)
	page, err := document.CreateSinglePage(fname, &pdf.Rectangle{URx: w, URy: h}, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, w, h)
	page.Fill()

	// shape coordinates have the y axis pointing down
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, h})
	if tc.CTM != (matrix.Matrix{}) && tc.CTM != matrix.Identity {
		page.Transform(tc.CTM)
	}
	page.SetFillColor(color.DeviceGray(1))
	page.SetStrokeColor(color.DeviceGray(1))

	stroke, isStroke := tc.Op.(testcases.Stroke)
	if isStroke {
		page.SetLineWidth(stroke.Width)
		page.SetLineCap(stroke.Cap)
		page.SetLineJoin(stroke.Join)
		page.SetMiterLimit(stroke.MiterLimit)
	}

	writePrims(page, tc.Path().Prims, shapes.DefaultTolerance)

	fill, _ := tc.Op.(testcases.Fill)
	switch {
	case isStroke:
		page.Stroke()
	case fill.Rule == testcases.EvenOdd:
		page.FillEvenOdd()
	default:
		page.Fill()
	}
	return page.Close()
}

// pathWriter receives PDF path construction operators.
type pathWriter interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CurveTo(x1, y1, x2, y2, x3, y3 float64)
	ClosePath()
	Rectangle(x, y, w, h float64)
}

// writePrims emits the path construction operators for prims.  The
// current point is tracked the same way as in [shapes.Path.Data]: after
// a rectangle, an ellipse or a close it is the start of that subpath, and
// an arc begins with a line from the current point if there is one.
func writePrims(w pathWriter, prims []shapes.Primitive, tolerance float64) {
	open := false
	for _, prim := range prims {
		switch prim.Op {
		case shapes.OpMoveTo:
			w.MoveTo(prim.Point.X, prim.Point.Y)
			open = true

		case shapes.OpLineTo:
			if open {
				w.LineTo(prim.Point.X, prim.Point.Y)
			} else {
				w.MoveTo(prim.Point.X, prim.Point.Y)
				open = true
			}

		case shapes.OpClose:
			if open {
				w.ClosePath()
			}

		case shapes.OpRect:
			r := prim.Rect
			if r.Width >= 0 && r.Height >= 0 {
				w.Rectangle(r.X, r.Y, r.Width, r.Height)
				open = true
			}

		case shapes.OpEllipse, shapes.OpArc:
			one := &shapes.Path{Prims: []shapes.Primitive{prim}}
			if writeCurves(w, one.Data(tolerance), open && prim.Op == shapes.OpArc) {
				open = true
			}
		}
	}
}

// writeCurves emits the lowered outline of a single ellipse or arc.  If
// connect is set, the initial move is replaced by a line.  The return
// value reports whether anything was written.
func writeCurves(w pathWriter, d *path.Data, connect bool) bool {
	written := false
	for cmd, pts := range d.Iter().ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			if connect && !written {
				w.LineTo(pts[0].X, pts[0].Y)
			} else {
				w.MoveTo(pts[0].X, pts[0].Y)
			}
		case path.CmdLineTo:
			w.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			w.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			w.ClosePath()
		}
		written = true
	}
	return written
}

func ghostscript(pdfName, pngName string) error {
	// one PDF point per pixel
	cmd := exec.Command("gs", "-q", "-sDEVICE=pnggray", "-r72",
		"-dGraphicsAlphaBits=4", "-o", pngName, pdfName)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("ghostscript: %w", err)
	}
	return nil
}
