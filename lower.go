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

	"honnef.co/go/curve"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// DefaultTolerance is the maximum distance, in path units, between an
// ellipse or arc and the Bézier curves approximating it.
const DefaultTolerance = 0.1

// Data converts the path into straight lines and cubic Bézier curves.
// Ellipses and arcs are approximated to within tolerance; a non-positive
// tolerance selects [DefaultTolerance].
//
// Rectangles with negative width or height, and arcs with negative radius,
// are left out.  Zero-area ellipses and rectangles are kept as degenerate
// subpaths.
//
// Rectangles and ellipses always start subpaths of their own.  Like a
// closed subpath, they leave the current point at their starting point.
// An arc starting while there is a current point is connected to it by a
// straight line.
func (p *Path) Data(tolerance float64) *path.Data {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}

	d := &path.Data{}
	if p == nil {
		return d
	}

	open := false // whether there is a current point to continue from
	for _, prim := range p.Prims {
		switch prim.Op {
		case OpMoveTo:
			d.MoveTo(prim.Point)
			open = true

		case OpLineTo:
			if open {
				d.LineTo(prim.Point)
			} else {
				d.MoveTo(prim.Point)
				open = true
			}

		case OpClose:
			if open {
				d.Close()
			}

		case OpRect:
			if appendRect(d, prim.Rect) {
				open = true
			}

		case OpEllipse:
			appendEllipse(d, prim.Rect, prim.Transform, tolerance)
			open = true

		case OpArc:
			if appendArc(d, prim, open, tolerance) {
				open = true
			}
		}
	}
	return d
}

// appendRect adds the outline of r and reports whether anything was added.
func appendRect(d *path.Data, r Rect) bool {
	if r.Width < 0 || r.Height < 0 {
		return false
	}
	d.MoveTo(vec.Vec2{X: r.MinX(), Y: r.MinY()}).
		LineTo(vec.Vec2{X: r.MaxX(), Y: r.MinY()}).
		LineTo(vec.Vec2{X: r.MaxX(), Y: r.MaxY()}).
		LineTo(vec.Vec2{X: r.MinX(), Y: r.MaxY()}).
		Close()
	return true
}

func appendEllipse(d *path.Data, r Rect, m matrix.Matrix, tolerance float64) {
	if m == (matrix.Matrix{}) {
		m = matrix.Identity
	}
	aff := curve.NewAffine([6]float64(m))

	e := curve.Arc{
		Center:     curve.Pt(r.MidX(), r.MidY()),
		Radii:      curve.Vec(math.Abs(r.Width/2), math.Abs(r.Height/2)),
		StartAngle: 0,
		SweepAngle: 2 * math.Pi,
	}
	for el := range e.PathElements(tolerance) {
		appendElement(d, el.Transform(aff), false)
	}
	d.Close()
}

// appendArc adds the arc described by prim and reports whether anything
// was added.
func appendArc(d *path.Data, prim Primitive, open bool, tolerance float64) bool {
	if prim.Radius < 0 || math.IsNaN(prim.Radius) {
		return false
	}

	a := curve.Arc{
		Center:     curve.Pt(prim.Center.X, prim.Center.Y),
		Radii:      curve.Vec(prim.Radius, prim.Radius),
		StartAngle: prim.StartAngle * math.Pi / 180,
		SweepAngle: arcSweep(prim.StartAngle, prim.EndAngle, prim.Clockwise) * math.Pi / 180,
	}
	for el := range a.PathElements(tolerance) {
		appendElement(d, el, open)
	}
	return true
}

// arcSweep returns the signed sweep angle in degrees of an arc from start
// to end.  Clockwise arcs run towards decreasing angles and have a
// non-positive sweep; counter-clockwise arcs have a non-negative sweep.
// Differences of 360 degrees or more in the direction of travel give a
// full circle.
func arcSweep(start, end float64, clockwise bool) float64 {
	diff := end - start
	if clockwise {
		diff = -diff
	}

	var sweep float64
	if diff >= 360 {
		sweep = 360
	} else {
		sweep = math.Mod(diff, 360)
		if sweep < 0 {
			sweep += 360
		}
	}

	if clockwise {
		return -sweep
	}
	return sweep
}

// appendElement adds a single curve element to d.  If connect is set, a
// leading move is turned into a line.
func appendElement(d *path.Data, el curve.PathElement, connect bool) {
	switch el.Kind {
	case curve.MoveToKind:
		if connect {
			d.LineTo(toVec(el.P0))
		} else {
			d.MoveTo(toVec(el.P0))
		}
	case curve.LineToKind:
		d.LineTo(toVec(el.P0))
	case curve.QuadToKind:
		d.QuadTo(toVec(el.P0), toVec(el.P1))
	case curve.CubicToKind:
		d.CubeTo(toVec(el.P0), toVec(el.P1), toVec(el.P2))
	case curve.ClosePathKind:
		d.Close()
	}
}

func toVec(pt curve.Point) vec.Vec2 {
	return vec.Vec2{X: pt.X, Y: pt.Y}
}
