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
	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/shapes"
)

var checkerboardCases = []TestCase{
	{
		Name:   "rows4_cols4",
		Shape:  shapes.Checkerboard{Rows: 4, Columns: 4},
		Bounds: square(200, 0),
		Width:  200,
		Height: 200,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "rows8_cols16",
		Shape:  shapes.Checkerboard{Rows: 8, Columns: 16},
		Bounds: shapes.Rect{Width: 256, Height: 128},
		Width:  256,
		Height: 128,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "single_cell",
		Shape:  shapes.Checkerboard{Rows: 1, Columns: 1},
		Bounds: square(32, 4),
		Width:  32,
		Height: 32,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "odd_grid_offset",
		Shape:  shapes.Checkerboard{Rows: 3, Columns: 5},
		Bounds: shapes.Rect{X: 3.5, Y: 2.25, Width: 57, Height: 40},
		Width:  64,
		Height: 48,
		Op:     Fill{Rule: EvenOdd},
	},
	{
		Name:   "rotated",
		Shape:  shapes.Checkerboard{Rows: 4, Columns: 4},
		Bounds: shapes.Rect{X: -40, Y: -40, Width: 80, Height: 80},
		Width:  128,
		Height: 128,
		Op:     Fill{Rule: NonZero},
		CTM:    matrix.RotateDeg(30).Translate(64, 64),
	},
}
