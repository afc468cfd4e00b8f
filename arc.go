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

// arcRotation turns angle 0 from the positive x axis to the top of the
// circle.
const arcRotation = 90

// Arc is a circular arc centered in the bounding rectangle.
// The radius is half the rectangle width, reduced by InsetAmount.
type Arc struct {
	// InsetAmount shrinks the radius.  This is the value animated by
	// callers, see [Interpolate].
	InsetAmount float64

	// StartAngle and EndAngle are in degrees; 0 points up.
	StartAngle float64
	EndAngle   float64

	Clockwise bool
}

// Kind implements [Params].
func (Arc) Kind() Kind { return KindArc }

func (Arc) isParams() {}

// Path returns a single arc primitive inside r.  The stored angles are
// StartAngle-90 and EndAngle-90.
func (a Arc) Path(r Rect) *Path {
	radius := r.Width/2 - a.InsetAmount
	return (&Path{}).AddArc(r.Center(), radius,
		a.StartAngle-arcRotation, a.EndAngle-arcRotation, a.Clockwise)
}

// Inset returns a copy of the arc with InsetAmount increased by amount.
// Insets accumulate: a.Inset(x).Inset(y) equals a.Inset(x + y).
func (a Arc) Inset(amount float64) Params {
	return a.InsetBy(amount)
}

// InsetBy is like [Arc.Inset] but returns an Arc.
func (a Arc) InsetBy(amount float64) Arc {
	a.InsetAmount += amount
	return a
}
