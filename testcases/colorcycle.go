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

var colorCycleCases = []TestCase{
	{
		Name:   "steps100",
		Shape:  shapes.ColorCyclingRectangle{Amount: 0, Steps: shapes.DefaultSteps},
		Bounds: square(300, 0),
		Width:  300,
		Height: 300,
		Op:     Stroke{Width: 1, MiterLimit: 10},
	},
	{
		Name:   "steps20_amount_half",
		Shape:  shapes.ColorCyclingRectangle{Amount: 0.5, Steps: 20},
		Bounds: square(64, 0),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 1, MiterLimit: 10},
	},
	{
		// most rings are inverted and draw nothing
		Name:   "inverted_rings",
		Shape:  shapes.ColorCyclingRectangle{Amount: 0.9, Steps: shapes.DefaultSteps},
		Bounds: square(64, 0),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: EvenOdd},
	},
}
