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

var flowerCases = []TestCase{
	{
		Name:   "default_evenodd",
		Shape:  shapes.DefaultFlower,
		Bounds: square(200, 0),
		Width:  200,
		Height: 200,
		Op:     Fill{Rule: EvenOdd},
	},
	{
		Name:   "default_nonzero",
		Shape:  shapes.DefaultFlower,
		Bounds: square(200, 0),
		Width:  200,
		Height: 200,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "narrow_petals",
		Shape:  shapes.Flower{PetalOffset: -40, PetalWidth: 20},
		Bounds: square(200, 0),
		Width:  200,
		Height: 200,
		Op:     Fill{Rule: EvenOdd},
	},
	{
		Name:   "outward_offset",
		Shape:  shapes.Flower{PetalOffset: 40, PetalWidth: 60},
		Bounds: square(256, 0),
		Width:  256,
		Height: 256,
		Op:     Fill{Rule: EvenOdd},
	},
	{
		Name:   "zero_width",
		Shape:  shapes.Flower{PetalOffset: -20, PetalWidth: 0},
		Bounds: square(200, 0),
		Width:  200,
		Height: 200,
		Op:     Fill{Rule: EvenOdd},
	},
}
