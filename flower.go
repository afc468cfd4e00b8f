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

package shapes

import (
	"math"

	"seehuhn.de/go/geom/matrix"
)

// PetalCount is the number of petals of a [Flower].
const PetalCount = 16

// Flower is a ring of ellipses rotated around the center of the
// bounding rectangle.  Filled with the even-odd rule, the overlapping
// petals form the flower pattern.
type Flower struct {
	// PetalOffset moves each petal along its own x axis, away from the
	// center for positive values.  Negative values are allowed.
	PetalOffset float64

	// PetalWidth is the width of each petal before rotation.  The length
	// of a petal is half the width of the bounding rectangle.
	PetalWidth float64
}

// DefaultFlower holds the parameters used by the demo application.
var DefaultFlower = Flower{PetalOffset: -20, PetalWidth: 100}

// Kind implements [Params].
func (Flower) Kind() Kind { return KindFlower }

func (Flower) isParams() {}

// Path returns the outline of the flower inside r.
// Petals are emitted in order of increasing rotation angle, starting at 0
// and advancing by π/8.  A zero PetalWidth gives zero-area ellipses.
func (f Flower) Path(r Rect) *Path {
	petal := Rect{
		X:      f.PetalOffset,
		Y:      0,
		Width:  f.PetalWidth,
		Height: r.Width / 2,
	}
	c := r.Center()

	p := &Path{Prims: make([]Primitive, 0, PetalCount)}
	for i := range PetalCount {
		theta := float64(i) * math.Pi / 8
		p.AddEllipse(petal, rotateTranslate(theta, c.X, c.Y))
	}
	return p
}

// rotateTranslate returns the transformation which first rotates by theta
// radians and then translates by (tx, ty).
func rotateTranslate(theta, tx, ty float64) matrix.Matrix {
	if theta == 0 {
		return matrix.Matrix{1, 0, 0, 1, tx, ty}
	}
	sin, cos := math.Sincos(theta)
	return matrix.Matrix{cos, sin, -sin, cos, tx, ty}
}
