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

import "seehuhn.de/go/shapes"

var polygonCases = []TestCase{
	// ========================================
	// Triangle and arrow
	// ========================================
	{
		Name:   "triangle_stroke",
		Shape:  shapes.Triangle{},
		Bounds: square(150, 10),
		Width:  150,
		Height: 150,
		Op:     roundStroke(10),
	},
	{
		Name:   "triangle_fill",
		Shape:  shapes.Triangle{},
		Bounds: square(64, 4),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "arrow_stroke",
		Shape:  shapes.Arrow{},
		Bounds: shapes.Rect{X: 50, Y: 20, Width: 100, Height: 100},
		Width:  200,
		Height: 200,
		Op:     roundStroke(10),
	},
	{
		Name:   "arrow_fill",
		Shape:  shapes.Arrow{},
		Bounds: shapes.Rect{X: 50, Y: 20, Width: 100, Height: 100},
		Width:  200,
		Height: 200,
		Op:     Fill{Rule: NonZero},
	},

	// ========================================
	// Trapezoid
	// ========================================
	{
		Name:   "trapezoid_50",
		Shape:  shapes.Trapezoid{InsetAmount: 50},
		Bounds: shapes.Rect{Width: 200, Height: 100},
		Width:  200,
		Height: 100,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "trapezoid_10",
		Shape:  shapes.Trapezoid{InsetAmount: 10},
		Bounds: shapes.Rect{Width: 200, Height: 100},
		Width:  200,
		Height: 100,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "trapezoid_collapsed",
		Shape:  shapes.Trapezoid{InsetAmount: 100},
		Bounds: shapes.Rect{Width: 200, Height: 100},
		Width:  200,
		Height: 100,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "trapezoid_crossed",
		Shape:  shapes.Trapezoid{InsetAmount: 150},
		Bounds: shapes.Rect{Width: 200, Height: 100},
		Width:  200,
		Height: 100,
		Op:     Fill{Rule: EvenOdd},
	},
}
