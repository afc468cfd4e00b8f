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

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Rect is the bounding rectangle a shape is drawn into.
// The origin is the top-left corner and y grows downwards.
//
// Width and Height may be negative after an inset; such a rectangle
// is empty and renderers draw nothing for it.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// MinX returns the x coordinate of the left edge.
func (r Rect) MinX() float64 { return r.X }

// MidX returns the x coordinate of the center.
func (r Rect) MidX() float64 { return r.X + r.Width/2 }

// MaxX returns the x coordinate of the right edge.
func (r Rect) MaxX() float64 { return r.X + r.Width }

// MinY returns the y coordinate of the top edge.
func (r Rect) MinY() float64 { return r.Y }

// MidY returns the y coordinate of the center.
func (r Rect) MidY() float64 { return r.Y + r.Height/2 }

// MaxY returns the y coordinate of the bottom edge.
func (r Rect) MaxY() float64 { return r.Y + r.Height }

// Center returns the center point of the rectangle.
func (r Rect) Center() vec.Vec2 {
	return vec.Vec2{X: r.MidX(), Y: r.MidY()}
}

// Inset returns the rectangle shrunk by d on every side.
// The result is not clamped: insetting by more than half the
// width or height gives a rectangle with negative size.
func (r Rect) Inset(d float64) Rect {
	return Rect{
		X:      r.X + d,
		Y:      r.Y + d,
		Width:  r.Width - 2*d,
		Height: r.Height - 2*d,
	}
}

// IsEmpty reports whether the rectangle encloses no area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Bounds converts r to a geom rectangle.
// For empty rectangles with negative size, the corners are swapped so
// that LLx <= URx and LLy <= URy.
func (r Rect) Bounds() rect.Rect {
	return rect.Rect{
		LLx: min(r.MinX(), r.MaxX()),
		LLy: min(r.MinY(), r.MaxY()),
		URx: max(r.MinX(), r.MaxX()),
		URy: max(r.MinY(), r.MaxY()),
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("(%g, %g, %g×%g)", r.X, r.Y, r.Width, r.Height)
}
