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
	"image/color"
	"math"
)

// DefaultSteps is the number of rings used by the demo application.
const DefaultSteps = 100

// Gradient stop brightness values for the rings of a
// [ColorCyclingRectangle].  The first stop is at the center of the
// rectangle, the second at its edge.
const (
	InnerBrightness = 1.0
	OuterBrightness = 0.5
)

// ColorCyclingRectangle is a stack of Steps concentric rectangle outlines,
// each inset one unit further than the previous one.  Every ring is
// stroked with a gradient whose hue depends on the ring index and on
// Amount.
type ColorCyclingRectangle struct {
	// Amount shifts all hues; it is meant to be in [0, 1).  This is the
	// value animated by callers, see [Interpolate].
	Amount float64

	// Steps is the number of rings.
	Steps int
}

// Kind implements [Params].
func (ColorCyclingRectangle) Kind() Kind { return KindColorCyclingRectangle }

func (ColorCyclingRectangle) isParams() {}

// ColorAt returns the color of ring index at the given brightness.
func (c ColorCyclingRectangle) ColorAt(index int, brightness float64) HueColor {
	return ColorAt(index, c.Amount, c.Steps, brightness)
}

// RingPath returns the outline of ring index: r inset by index units on
// every side.  The rectangle is not clamped and has negative size once
// index exceeds half the width or height of r.
func (c ColorCyclingRectangle) RingPath(index int, r Rect) *Path {
	return RingPath(index, r)
}

// Ring describes one ring of a [ColorCyclingRectangle].
type Ring struct {
	Index   int
	Outline *Path

	// Inner and Outer are the gradient stops, from the center of the
	// rectangle towards its bottom edge.
	Inner, Outer HueColor
}

// Gradient returns the color of the ring at height y, where r is the
// frame of the whole shape.  The gradient runs from Inner at the vertical
// center of r to Outer at its bottom edge.  Above the center the color is
// Inner, below the bottom edge it is Outer.
func (g Ring) Gradient(y float64, r Rect) HueColor {
	t := 0.0
	if h := r.MaxY() - r.MidY(); h > 0 {
		t = clamp01((y - r.MidY()) / h)
	} else if y > r.MidY() {
		t = 1
	}
	return HueColor{
		Hue:        lerp(g.Inner.Hue, g.Outer.Hue, t),
		Saturation: lerp(g.Inner.Saturation, g.Outer.Saturation, t),
		Brightness: lerp(g.Inner.Brightness, g.Outer.Brightness, t),
	}
}

// Rings returns the Steps rings, innermost inset first.
// If Steps is not positive, the result is nil.
func (c ColorCyclingRectangle) Rings(r Rect) []Ring {
	if c.Steps <= 0 {
		return nil
	}
	rings := make([]Ring, c.Steps)
	for i := range rings {
		rings[i] = Ring{
			Index:   i,
			Outline: RingPath(i, r),
			Inner:   c.ColorAt(i, InnerBrightness),
			Outer:   c.ColorAt(i, OuterBrightness),
		}
	}
	return rings
}

// Path returns the outlines of all rings, in index order.
func (c ColorCyclingRectangle) Path(r Rect) *Path {
	if c.Steps <= 0 {
		return &Path{}
	}
	p := &Path{Prims: make([]Primitive, 0, c.Steps)}
	for i := range c.Steps {
		p.Append(RingPath(i, r))
	}
	return p
}

// ColorAt computes the color of ring index out of steps.  The hue is
// index/steps + amount, reduced by one if it exceeds one.  Amount is
// expected to be non-negative and below one, so that a single reduction
// suffices.  For steps <= 0 the zero HueColor is returned.
func ColorAt(index int, amount float64, steps int, brightness float64) HueColor {
	if steps <= 0 {
		return HueColor{}
	}
	hue := float64(index)/float64(steps) + amount
	if hue > 1 {
		hue -= 1
	}
	return HueColor{Hue: hue, Saturation: 1, Brightness: brightness}
}

// RingPath returns a single rectangle: r inset by index on every side.
func RingPath(index int, r Rect) *Path {
	return (&Path{}).AddRect(r.Inset(float64(index)))
}

// HueColor is a color in the hue, saturation, brightness model.
// All components are in [0, 1].
//
// HueColor implements [color.Color].
type HueColor struct {
	Hue        float64
	Saturation float64
	Brightness float64
}

var _ color.Color = HueColor{}

// RGB converts the color to red, green and blue components in [0, 1].
func (c HueColor) RGB() (r, g, b float64) {
	v := clamp01(c.Brightness)
	s := clamp01(c.Saturation)
	if s == 0 {
		return v, v, v
	}

	h := c.Hue - math.Floor(c.Hue)
	h6 := h * 6
	sector := math.Floor(h6)
	f := h6 - sector

	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))

	switch int(sector) % 6 {
	case 0:
		return v, t, p
	case 1:
		return q, v, p
	case 2:
		return p, v, t
	case 3:
		return p, q, v
	case 4:
		return t, p, v
	default:
		return v, p, q
	}
}

// RGBA implements [color.Color].
func (c HueColor) RGBA() (r, g, b, a uint32) {
	rf, gf, bf := c.RGB()
	return uint32(rf*0xffff + 0.5), uint32(gf*0xffff + 0.5), uint32(bf*0xffff + 0.5), 0xffff
}

func (c HueColor) String() string {
	return fmt.Sprintf("hsb(%.4g, %.4g, %.4g)", c.Hue, c.Saturation, c.Brightness)
}

func clamp01(x float64) float64 {
	return min(max(x, 0), 1)
}
