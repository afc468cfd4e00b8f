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

package raster

import (
	"image"
	"math"
	"testing"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/shapes"
	"seehuhn.de/go/shapes/testcases"
)

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// area returns the total coverage of p on a w×h canvas.
func area(r *Rasterizer, p *path.Data, rule Rule) float64 {
	var total float64
	r.Fill(p, rule, func(y, xMin int, coverage []float32) {
		for _, c := range coverage {
			total += float64(c)
		}
	})
	return total
}

func square(x, y, size float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x, y)).
		LineTo(pt(x+size, y)).
		LineTo(pt(x+size, y+size)).
		LineTo(pt(x, y+size)).
		Close()
}

// TestTriangleCoverage checks exact coverage values for a thin triangle.
// The edge y = x/10 gives pixel X the coverage (2X+1)/20.
func TestTriangleCoverage(t *testing.T) {
	p := (&path.Data{}).
		MoveTo(pt(0, 0)).
		LineTo(pt(10, 0)).
		LineTo(pt(10, 1)).
		Close()

	r := NewRasterizer(rect.Rect{URx: 10, URy: 1})
	coverage := make([]float32, 10)
	r.FillNonZero(p, func(y, xMin int, cov []float32) {
		if y == 0 {
			copy(coverage[xMin:], cov)
		}
	})

	for x := range 10 {
		want := float32(2*x+1) / 20
		if math.Abs(float64(coverage[x]-want)) > 1e-6 {
			t.Errorf("pixel %d: coverage %.4f, want %.4f", x, coverage[x], want)
		}
	}
}

func TestSquareArea(t *testing.T) {
	cases := []struct {
		name string
		p    *path.Data
		want float64
	}{
		{"aligned", square(2, 2, 10), 100},
		{"offset", square(2.5, 3.25, 10), 100},
		{"tiny", square(4.2, 4.2, 0.5), 0.25},
		{"clipped", square(-5, -5, 10), 25},
	}
	r := NewRasterizer(rect.Rect{URx: 16, URy: 16})
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if a := area(r, c.p, NonZero); math.Abs(a-c.want) > 1e-3 {
				t.Errorf("area %g, want %g", a, c.want)
			}
		})
	}
}

func TestFillRules(t *testing.T) {
	// two overlapping squares with the same orientation
	p := square(0, 0, 10)
	p.MoveTo(pt(5, 5)).
		LineTo(pt(15, 5)).
		LineTo(pt(15, 15)).
		LineTo(pt(5, 15)).
		Close()

	r := NewRasterizer(rect.Rect{URx: 20, URy: 20})
	if a := area(r, p, NonZero); math.Abs(a-175) > 1e-3 {
		t.Errorf("nonzero area %g, want 175", a)
	}
	if a := area(r, p, EvenOdd); math.Abs(a-150) > 1e-3 {
		t.Errorf("even-odd area %g, want 150", a)
	}
}

func TestImplicitClose(t *testing.T) {
	open := (&path.Data{}).
		MoveTo(pt(0, 10)).
		LineTo(pt(5, 0)).
		LineTo(pt(10, 10))

	r := NewRasterizer(rect.Rect{URx: 10, URy: 10})
	if a := area(r, open, NonZero); math.Abs(a-50) > 1e-3 {
		t.Errorf("area %g, want 50", a)
	}
}

func TestCTM(t *testing.T) {
	r := NewRasterizer(rect.Rect{URx: 64, URy: 64})
	r.CTM = matrix.Matrix{2, 0, 0, 2, 10, 10}
	if a := area(r, square(0, 0, 10), NonZero); math.Abs(a-400) > 1e-3 {
		t.Errorf("area %g, want 400", a)
	}

	r.Reset(rect.Rect{URx: 64, URy: 64})
	if r.CTM != matrix.Identity {
		t.Error("Reset did not restore the CTM")
	}
}

func TestEmpty(t *testing.T) {
	r := NewRasterizer(rect.Rect{URx: 10, URy: 10})
	called := false
	emit := func(y, xMin int, coverage []float32) { called = true }

	r.FillNonZero(nil, emit)
	r.FillNonZero(&path.Data{}, emit)
	r.FillNonZero(square(20, 20, 5), emit) // outside the clip
	if called {
		t.Error("emit called for an empty path")
	}
}

func TestMask(t *testing.T) {
	img := Mask(square(1, 1, 2), 4, 4, NonZero)
	want := []uint8{
		0, 0, 0, 0,
		0, 255, 255, 0,
		0, 255, 255, 0,
		0, 0, 0, 0,
	}
	for i, v := range want {
		if img.Pix[i] != v {
			t.Fatalf("pixel %d: %d, want %d", i, img.Pix[i], v)
		}
	}
}

// TestAgainstVector compares the nonzero coverage of polygonal shapes with
// golang.org/x/image/vector.
func TestAgainstVector(t *testing.T) {
	const size = 64
	bounds := shapes.Rect{X: 4, Y: 4, Width: 50, Height: 40}
	cases := []shapes.Params{
		shapes.Triangle{},
		shapes.Trapezoid{InsetAmount: 12.5},
		shapes.Checkerboard{Rows: 3, Columns: 5},
		shapes.ColorCyclingRectangle{Steps: 1},
	}
	for _, params := range cases {
		t.Run(params.Kind().String(), func(t *testing.T) {
			d := shapes.Generate(params, bounds).Data(0)

			got := Mask(d, size, size, NonZero)
			want := vectorMask(d, size, size)

			for i := range got.Pix {
				delta := int(got.Pix[i]) - int(want.Pix[i])
				if delta < -2 || delta > 2 {
					t.Fatalf("pixel (%d, %d): %d, x/image/vector gives %d",
						i%size, i/size, got.Pix[i], want.Pix[i])
				}
			}
		})
	}
}

// vectorMask fills p with x/image/vector.
func vectorMask(p *path.Data, w, h int) *image.Alpha {
	v := vector.NewRasterizer(w, h)
	addToVector(v, p)
	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	v.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	return dst
}

// TestGallery paints every gallery case and checks that all coverage values
// are valid and stay on the canvas.
func TestGallery(t *testing.T) {
	for category, cases := range testcases.All {
		for _, tc := range cases {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				r := NewRasterizer(rect.Rect{URx: float64(tc.Width), URy: float64(tc.Height)})
				if tc.CTM != (matrix.Matrix{}) {
					r.CTM = tc.CTM
				}
				check := func(y, xMin int, coverage []float32) {
					if y < 0 || y >= tc.Height || xMin < 0 || xMin+len(coverage) > tc.Width {
						t.Fatalf("row %d [%d,%d) outside %dx%d canvas",
							y, xMin, xMin+len(coverage), tc.Width, tc.Height)
					}
					for i, c := range coverage {
						if math.IsNaN(float64(c)) || c < 0 || c > 1 {
							t.Fatalf("coverage[%d,%d] = %g", xMin+i, y, c)
						}
					}
				}

				switch op := tc.Op.(type) {
				case testcases.Fill:
					rule := NonZero
					if op.Rule == testcases.EvenOdd {
						rule = EvenOdd
					}
					r.Fill(tc.Data(), rule, check)
				case testcases.Stroke:
					style := Style{
						Width:      op.Width,
						Cap:        op.Cap,
						Join:       op.Join,
						MiterLimit: op.MiterLimit,
					}
					r.Stroke(tc.Data(), style, check)
				}
			})
		}
	}
}
