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

import "seehuhn.de/go/geom/vec"

// Size of the shaft of an [Arrow].  The shaft is not scaled with the
// bounding rectangle.
const (
	ArrowShaftWidth  = 30
	ArrowShaftHeight = 60
)

// Triangle is an isosceles triangle with its apex at the top center of the
// bounding rectangle.
type Triangle struct{}

// Kind implements [Params].
func (Triangle) Kind() Kind { return KindTriangle }

func (Triangle) isParams() {}

// Path returns the outline of the triangle.  The outline returns to the
// apex with a line segment, there is no close primitive.
func (Triangle) Path(r Rect) *Path {
	return trianglePath(r)
}

func trianglePath(r Rect) *Path {
	apex := vec.Vec2{X: r.MidX(), Y: r.MinY()}
	return (&Path{}).
		MoveTo(apex).
		LineTo(vec.Vec2{X: r.MinX(), Y: r.MaxY()}).
		LineTo(vec.Vec2{X: r.MaxX(), Y: r.MaxY()}).
		LineTo(apex)
}

// Arrow is a [Triangle] with a fixed-size shaft below its base.
type Arrow struct{}

// Kind implements [Params].
func (Arrow) Kind() Kind { return KindArrow }

func (Arrow) isParams() {}

// Path returns the triangle outline of r followed by the shaft rectangle,
// which is centered horizontally and starts at the bottom edge of r.
func (Arrow) Path(r Rect) *Path {
	return trianglePath(r).AddRect(Rect{
		X:      r.MidX() - ArrowShaftWidth/2,
		Y:      r.MaxY(),
		Width:  ArrowShaftWidth,
		Height: ArrowShaftHeight,
	})
}

// Trapezoid has its long side at the bottom of the bounding rectangle and
// its short side at the top, inset by InsetAmount from both ends.
type Trapezoid struct {
	// InsetAmount is the value animated by callers, see [Interpolate].
	// Any value is accepted; values above half the width give a
	// self-intersecting outline.
	InsetAmount float64
}

// Kind implements [Params].
func (Trapezoid) Kind() Kind { return KindTrapezoid }

func (Trapezoid) isParams() {}

// Path returns the open outline bottom-left, top-left, top-right,
// bottom-right.  The outline is not closed; a renderer filling it closes it
// implicitly.
//
// The bottom-left corner is at x = 0, regardless of r.X.
func (t Trapezoid) Path(r Rect) *Path {
	return (&Path{}).
		MoveTo(vec.Vec2{X: 0, Y: r.MaxY()}).
		LineTo(vec.Vec2{X: t.InsetAmount, Y: r.MinY()}).
		LineTo(vec.Vec2{X: r.MaxX() - t.InsetAmount, Y: r.MinY()}).
		LineTo(vec.Vec2{X: r.MaxX(), Y: r.MaxY()})
}
