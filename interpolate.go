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
	"errors"
	"fmt"
)

// ErrKindMismatch is returned by [Interpolate] when the two parameter sets
// describe different shapes.
var ErrKindMismatch = errors.New("cannot interpolate between different shape kinds")

// Interpolate returns the parameters at time t between from and to.
//
// Only one value per shape is animated: InsetAmount for [Arc] and
// [Trapezoid], and Amount for [ColorCyclingRectangle].  It is interpolated
// linearly; t is not clamped, so t outside [0, 1] extrapolates.  All other
// values, and all parameters of the remaining shapes, are taken from to.
func Interpolate(from, to Params, t float64) (Params, error) {
	from, to = deref(from), deref(to)
	if from == nil || to == nil {
		return nil, fmt.Errorf("interpolate: %w", ErrKindMismatch)
	}
	if from.Kind() != to.Kind() {
		return nil, fmt.Errorf("interpolate %s → %s: %w", from.Kind(), to.Kind(), ErrKindMismatch)
	}

	a, ok := AnimatableData(from)
	if !ok {
		return to, nil
	}
	b, _ := AnimatableData(to)
	return WithAnimatableData(to, lerp(a, b, t)), nil
}

// AnimatableData returns the animated value of p.  The second result is
// false for shapes which have no animated value.
func AnimatableData(p Params) (float64, bool) {
	switch p := deref(p).(type) {
	case Arc:
		return p.InsetAmount, true
	case Trapezoid:
		return p.InsetAmount, true
	case ColorCyclingRectangle:
		return p.Amount, true
	default:
		return 0, false
	}
}

// WithAnimatableData returns a copy of p with its animated value set to v.
// Shapes without an animated value are returned unchanged.
func WithAnimatableData(p Params, v float64) Params {
	switch p := deref(p).(type) {
	case Arc:
		p.InsetAmount = v
		return p
	case Trapezoid:
		p.InsetAmount = v
		return p
	case ColorCyclingRectangle:
		p.Amount = v
		return p
	default:
		return p
	}
}

func lerp(a, b, t float64) float64 {
	if t == 0 {
		return a
	}
	if t == 1 {
		return b
	}
	return a + (b-a)*t
}

// deref replaces pointers to parameter structs by the values they point
// to, so that callers may pass either.  A nil pointer gives nil.
func deref(p Params) Params {
	switch p := p.(type) {
	case *Flower:
		return value(p)
	case *Arc:
		return value(p)
	case *Triangle:
		return value(p)
	case *Arrow:
		return value(p)
	case *Trapezoid:
		return value(p)
	case *Checkerboard:
		return value(p)
	case *ColorCyclingRectangle:
		return value(p)
	}
	return p
}

func value[T Params](p *T) Params {
	if p == nil {
		return nil
	}
	return *p
}
