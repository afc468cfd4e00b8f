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

// Command genpng paints every gallery shape with the raster package and
// writes the images as PNG files, together with a contact sheet of all
// shapes.  The rings of color cycling rectangles are painted with their
// gradient colors, everything else in black on white.
// Run from the module root directory.
package main

import (
	"fmt"
	"image"
	"image/color"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/disintegration/imaging"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/shapes"
	"seehuhn.de/go/shapes/raster"
	"seehuhn.de/go/shapes/testcases"
)

const (
	outDir    = "testdata/preview"
	thumbSize = 128
	columns   = 8
)

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	var thumbs []*image.NRGBA
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			img := render(tc)
			if err := imaging.Save(img, filepath.Join(outDir, name+".png")); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			thumbs = append(thumbs, imaging.Fit(img, thumbSize, thumbSize, imaging.Lanczos))
		}
	}

	if err := imaging.Save(contactSheet(thumbs), filepath.Join(outDir, "all.png")); err != nil {
		panic(err)
	}
}

func render(tc testcases.TestCase) *image.NRGBA {
	img := imaging.New(tc.Width, tc.Height, color.White)

	r := raster.NewRasterizer(rect.Rect{URx: float64(tc.Width), URy: float64(tc.Height)})
	if tc.CTM != (matrix.Matrix{}) {
		r.CTM = tc.CTM
	}

	if c, ok := tc.Shape.(shapes.ColorCyclingRectangle); ok {
		// rings are stroked inside their outline
		frame := tc.Bounds
		if s, ok := tc.Op.(testcases.Stroke); ok {
			frame = frame.Inset(s.Width / 2)
		}
		for _, ring := range c.Rings(frame) {
			paint(r, tc.Op, ring.Outline.Data(shapes.DefaultTolerance), img, func(y int) color.Color {
				return ring.Gradient(float64(y)+0.5, tc.Bounds)
			})
		}
		return img
	}

	paint(r, tc.Op, tc.Data(), img, func(int) color.Color { return color.Black })
	return img
}

// paint fills or strokes p into img.  The paint color may vary between
// scanlines.
func paint(r *raster.Rasterizer, op testcases.Operation, p *path.Data, img *image.NRGBA, col func(y int) color.Color) {
	emit := func(y, xMin int, coverage []float32) {
		cr, cg, cb, _ := col(y).RGBA()
		for i, c := range coverage {
			pix := img.Pix[img.PixOffset(xMin+i, y):]
			a := float64(c)
			pix[0] = uint8(float64(pix[0])*(1-a) + float64(cr>>8)*a + 0.5)
			pix[1] = uint8(float64(pix[1])*(1-a) + float64(cg>>8)*a + 0.5)
			pix[2] = uint8(float64(pix[2])*(1-a) + float64(cb>>8)*a + 0.5)
		}
	}

	switch op := op.(type) {
	case testcases.Fill:
		if op.Rule == testcases.EvenOdd {
			r.FillEvenOdd(p, emit)
		} else {
			r.FillNonZero(p, emit)
		}
	case testcases.Stroke:
		r.Stroke(p, raster.Style{
			Width:      op.Width,
			Cap:        op.Cap,
			Join:       op.Join,
			MiterLimit: op.MiterLimit,
		}, emit)
	}
}

// contactSheet arranges the thumbnails in a grid, in order.
func contactSheet(thumbs []*image.NRGBA) *image.NRGBA {
	rows := (len(thumbs) + columns - 1) / columns
	sheet := imaging.New(columns*thumbSize, max(rows, 1)*thumbSize, color.Gray{Y: 0xe0})
	for i, thumb := range thumbs {
		b := thumb.Bounds()
		pos := image.Pt(
			(i%columns)*thumbSize+(thumbSize-b.Dx())/2,
			(i/columns)*thumbSize+(thumbSize-b.Dy())/2,
		)
		sheet = imaging.Paste(sheet, thumb, pos)
	}
	return sheet
}
