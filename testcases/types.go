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

// Package testcases lists named shape configurations for tests,
// benchmarks and reference output.
package testcases

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/shapes"
)

// TestCase defines a single shape to render.
type TestCase struct {
	Name   string        // lowercase a-z, 0-9 and _ only
	Shape  shapes.Params // the shape parameters
	Bounds shapes.Rect   // the rectangle the shape is generated in
	Width  int           // canvas width in pixels
	Height int           // canvas height in pixels
	Op     Operation     // fill or stroke
	CTM    matrix.Matrix // transformation matrix (zero-value means no transform)
}

// Path returns the generated outline of the test case.
func (tc TestCase) Path() *shapes.Path {
	return shapes.Generate(tc.Shape, tc.Bounds)
}

// Data returns the outline converted to lines and curves.
func (tc TestCase) Data() *path.Data {
	return tc.Path().Data(shapes.DefaultTolerance)
}

// Operation is the rendering operation to apply to the path.
type Operation interface {
	isOperation()
}

// FillRule specifies the rule for determining interior points.
type FillRule int

const (
	NonZero FillRule = iota
	EvenOdd
)

func (r FillRule) String() string {
	if r == EvenOdd {
		return "evenodd"
	}
	return "nonzero"
}

// Fill specifies a fill operation.
type Fill struct {
	Rule FillRule
}

func (Fill) isOperation() {}

// Stroke specifies a stroke operation.
type Stroke struct {
	Width      float64                // line width (>0)
	Cap        graphics.LineCapStyle  // LineCapButt, LineCapRound, LineCapSquare
	Join       graphics.LineJoinStyle // LineJoinMiter, LineJoinRound, LineJoinBevel
	MiterLimit float64                // miter limit
}

func (Stroke) isOperation() {}

// roundStroke is the stroke style of the demo application.
func roundStroke(width float64) Stroke {
	return Stroke{
		Width:      width,
		Cap:        graphics.LineCapRound,
		Join:       graphics.LineJoinRound,
		MiterLimit: 10,
	}
}

// square returns a canvas-sized bounding rectangle with the given margin.
func square(size int, margin float64) shapes.Rect {
	s := float64(size)
	return shapes.Rect{X: margin, Y: margin, Width: s - 2*margin, Height: s - 2*margin}
}
