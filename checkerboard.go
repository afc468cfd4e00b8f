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

import "math"

// Checkerboard fills every other cell of a Rows×Columns grid.
type Checkerboard struct {
	Rows    int
	Columns int
}

// Kind implements [Params].
func (Checkerboard) Kind() Kind { return KindCheckerboard }

func (Checkerboard) isParams() {}

// Cells returns the number of rectangles [Checkerboard.Path] emits.
// Boards whose number of cells does not fit into an int have no cells.
func (c Checkerboard) Cells() int {
	if c.Rows <= 0 || c.Columns <= 0 || c.Columns > (math.MaxInt-1)/c.Rows {
		return 0
	}
	return (c.Rows*c.Columns + 1) / 2
}

// Path returns one rectangle for each cell (row, col) where row+col is
// even, in row-major order.  The cell at row 0, column 0 is at the top-left
// corner of r.  If Rows or Columns is not positive, or if [Checkerboard.Cells]
// is zero, the path is empty.
func (c Checkerboard) Path(r Rect) *Path {
	n := c.Cells()
	if n == 0 {
		return &Path{}
	}

	cellW := r.Width / float64(c.Columns)
	cellH := r.Height / float64(c.Rows)

	p := &Path{Prims: make([]Primitive, 0, n)}
	for row := range c.Rows {
		for col := range c.Columns {
			if (row+col)%2 != 0 {
				continue
			}
			p.AddRect(Rect{
				X:      r.X + cellW*float64(col),
				Y:      r.Y + cellH*float64(row),
				Width:  cellW,
				Height: cellH,
			})
		}
	}
	return p
}
