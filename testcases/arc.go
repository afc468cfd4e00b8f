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

var arcCases = []TestCase{
	{
		Name:   "clockwise_110",
		Shape:  shapes.Arc{StartAngle: 0, EndAngle: 110, Clockwise: true},
		Bounds: square(300, 10),
		Width:  300,
		Height: 300,
		Op:     roundStroke(10),
	},
	{
		Name:   "counterclockwise_110",
		Shape:  shapes.Arc{StartAngle: 0, EndAngle: 110},
		Bounds: square(300, 10),
		Width:  300,
		Height: 300,
		Op:     roundStroke(10),
	},
	{
		// stroke border: the arc is inset by half the line width so that
		// the stroke stays inside the frame
		Name:   "stroke_border",
		Shape:  shapes.Arc{StartAngle: 0, EndAngle: 270, Clockwise: true}.InsetBy(20),
		Bounds: square(300, 0),
		Width:  300,
		Height: 300,
		Op:     roundStroke(40),
	},
	{
		Name:   "full_circle",
		Shape:  shapes.Arc{StartAngle: 0, EndAngle: 360},
		Bounds: square(128, 4),
		Width:  128,
		Height: 128,
		Op:     Fill{Rule: NonZero},
	},
}
