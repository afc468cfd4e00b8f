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

package testcases

import (
	"fmt"

	"seehuhn.de/go/shapes"
)

// animationCases are snapshots of shapes whose animated value is
// interpolated between two parameter sets.
var animationCases = concat(
	frames("trapezoid", shapes.Trapezoid{InsetAmount: 10}, shapes.Trapezoid{InsetAmount: 90},
		shapes.Rect{Width: 200, Height: 100}, Fill{Rule: NonZero}),
	frames("arc_inset",
		shapes.Arc{StartAngle: 0, EndAngle: 110, Clockwise: true},
		shapes.Arc{InsetAmount: 60, StartAngle: 0, EndAngle: 110, Clockwise: true},
		square(200, 10), roundStroke(10)),
	frames("colorcycle",
		shapes.ColorCyclingRectangle{Amount: 0, Steps: 10},
		shapes.ColorCyclingRectangle{Amount: 0.8, Steps: 10},
		square(64, 8), Stroke{Width: 1, MiterLimit: 10}),
)

// frameTimes are the interpolation parameters of the animation snapshots.
var frameTimes = []float64{0, 0.25, 0.5, 0.75, 1}

func frames(name string, from, to shapes.Params, bounds shapes.Rect, op Operation) []TestCase {
	w := int(bounds.MaxX() + bounds.MinX())
	h := int(bounds.MaxY() + bounds.MinY())

	res := make([]TestCase, 0, len(frameTimes))
	for _, t := range frameTimes {
		p, err := shapes.Interpolate(from, to, t)
		if err != nil {
			panic(fmt.Errorf("%s: %w", name, err))
		}
		res = append(res, TestCase{
			Name:   fmt.Sprintf("%s_t%03d", name, int(t*100)),
			Shape:  p,
			Bounds: bounds,
			Width:  w,
			Height: h,
			Op:     op,
		})
	}
	return res
}

func concat(lists ...[]TestCase) []TestCase {
	var res []TestCase
	for _, l := range lists {
		res = append(res, l...)
	}
	return res
}
