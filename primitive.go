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
	"fmt"
	"slices"
	"strings"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Op identifies the kind of a path primitive.
type Op uint8

const (
	OpMoveTo  Op = iota + 1 // start a new subpath at Point
	OpLineTo                // straight line to Point
	OpEllipse               // closed ellipse inscribed in Rect, mapped by Transform
	OpRect                  // closed axis-aligned rectangle Rect
	OpArc                   // circular arc around Center
	OpClose                 // close the current subpath
)

func (op Op) String() string {
	switch op {
	case OpMoveTo:
		return "MoveTo"
	case OpLineTo:
		return "LineTo"
	case OpEllipse:
		return "AddEllipse"
	case OpRect:
		return "AddRect"
	case OpArc:
		return "AddArc"
	case OpClose:
		return "ClosePath"
	default:
		return fmt.Sprintf("Op(%d)", uint8(op))
	}
}

// Primitive is a single drawing instruction.
// Only the fields relevant for Op are set; all others are zero.
type Primitive struct {
	Op Op

	// Point is the target of OpMoveTo and OpLineTo.
	Point vec.Vec2

	// Rect is the rectangle of OpRect, or the bounding box of the
	// untransformed ellipse for OpEllipse.
	Rect Rect

	// Transform maps the ellipse of OpEllipse into path coordinates.
	// The zero value means no transformation.
	Transform matrix.Matrix

	// Center, Radius and the angles describe OpArc.  Angles are in degrees,
	// measured from the positive x axis towards the positive y axis.
	Center     vec.Vec2
	Radius     float64
	StartAngle float64
	EndAngle   float64
	Clockwise  bool
}

func (p Primitive) String() string {
	switch p.Op {
	case OpMoveTo, OpLineTo:
		return fmt.Sprintf("%s(%g, %g)", p.Op, p.Point.X, p.Point.Y)
	case OpEllipse:
		if p.Transform == (matrix.Matrix{}) {
			return fmt.Sprintf("%s%s", p.Op, p.Rect)
		}
		return fmt.Sprintf("%s%s %v", p.Op, p.Rect, [6]float64(p.Transform))
	case OpRect:
		return fmt.Sprintf("%s%s", p.Op, p.Rect)
	case OpArc:
		return fmt.Sprintf("%s(c=(%g, %g) r=%g %g°→%g° cw=%t)",
			p.Op, p.Center.X, p.Center.Y, p.Radius, p.StartAngle, p.EndAngle, p.Clockwise)
	default:
		return p.Op.String()
	}
}

// Path is an ordered sequence of primitives.
// The order matters for rendering, for example under the even-odd rule.
//
// The builder methods append to the path and return it, so that calls
// can be chained.
type Path struct {
	Prims []Primitive
}

// MoveTo starts a new subpath at pt.
func (p *Path) MoveTo(pt vec.Vec2) *Path {
	p.Prims = append(p.Prims, Primitive{Op: OpMoveTo, Point: pt})
	return p
}

// LineTo appends a straight line to pt.
func (p *Path) LineTo(pt vec.Vec2) *Path {
	p.Prims = append(p.Prims, Primitive{Op: OpLineTo, Point: pt})
	return p
}

// AddEllipse appends the ellipse inscribed in r, mapped by m.
// A zero matrix leaves the ellipse untransformed.
func (p *Path) AddEllipse(r Rect, m matrix.Matrix) *Path {
	if m == matrix.Identity {
		m = matrix.Matrix{}
	}
	p.Prims = append(p.Prims, Primitive{Op: OpEllipse, Rect: r, Transform: m})
	return p
}

// AddRect appends the closed outline of r.
func (p *Path) AddRect(r Rect) *Path {
	p.Prims = append(p.Prims, Primitive{Op: OpRect, Rect: r})
	return p
}

// AddArc appends a circular arc.  Angles are in degrees.
func (p *Path) AddArc(center vec.Vec2, radius, startAngle, endAngle float64, clockwise bool) *Path {
	p.Prims = append(p.Prims, Primitive{
		Op:         OpArc,
		Center:     center,
		Radius:     radius,
		StartAngle: startAngle,
		EndAngle:   endAngle,
		Clockwise:  clockwise,
	})
	return p
}

// Close closes the current subpath.
func (p *Path) Close() *Path {
	p.Prims = append(p.Prims, Primitive{Op: OpClose})
	return p
}

// Append appends all primitives of q to p.
func (p *Path) Append(q *Path) *Path {
	if q != nil {
		p.Prims = append(p.Prims, q.Prims...)
	}
	return p
}

// Len returns the number of primitives in the path.
func (p *Path) Len() int {
	if p == nil {
		return 0
	}
	return len(p.Prims)
}

// Count returns the number of primitives with the given op.
func (p *Path) Count(op Op) int {
	if p == nil {
		return 0
	}
	n := 0
	for _, prim := range p.Prims {
		if prim.Op == op {
			n++
		}
	}
	return n
}

// Equal reports whether p and q consist of identical primitives.
func (p *Path) Equal(q *Path) bool {
	var a, b []Primitive
	if p != nil {
		a = p.Prims
	}
	if q != nil {
		b = q.Prims
	}
	return slices.Equal(a, b)
}

func (p *Path) String() string {
	if p.Len() == 0 {
		return "<empty path>"
	}
	parts := make([]string, len(p.Prims))
	for i, prim := range p.Prims {
		parts[i] = prim.String()
	}
	return strings.Join(parts, " ")
}
