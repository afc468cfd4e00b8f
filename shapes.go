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

// Package shapes generates the outlines of a small family of parametric
// shapes: a flower made of rotated ellipses, an insettable arc, a triangle,
// an arrow, a trapezoid, a checkerboard and a set of color cycling rings.
//
// Every generator is a pure function of its parameters and a bounding
// [Rect].  The result is a [Path], an ordered list of primitives which a
// renderer can fill or stroke.  [Path.Data] converts a path into the
// representation used by seehuhn.de/go/geom.
//
// Parameters are plain values.  Callers that animate a shape keep the
// parameters themselves and call [Interpolate] and [Generate] once per
// frame; nothing in this package holds state between calls.
package shapes

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpdf
//go:generate go run ./testcases/genpng

import (
	"errors"
	"fmt"
	"strings"
)

// Kind identifies a shape.
type Kind int

const (
	KindFlower Kind = iota
	KindArc
	KindTriangle
	KindArrow
	KindTrapezoid
	KindCheckerboard
	KindColorCyclingRectangle

	numKinds
)

var kindNames = [numKinds]string{
	KindFlower:                "flower",
	KindArc:                   "arc",
	KindTriangle:              "triangle",
	KindArrow:                 "arrow",
	KindTrapezoid:             "trapezoid",
	KindCheckerboard:          "checkerboard",
	KindColorCyclingRectangle: "color_cycling_rectangle",
}

func (k Kind) String() string {
	if k >= 0 && k < numKinds {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Kinds returns all shape kinds in declaration order.
func Kinds() []Kind {
	res := make([]Kind, numKinds)
	for i := range res {
		res[i] = Kind(i)
	}
	return res
}

// ErrUnknownKind is returned by [ParseKind] for names which do not
// identify a shape.
var ErrUnknownKind = errors.New("unknown shape kind")

// ParseKind returns the kind with the given name.
// Names are matched case-insensitively.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if strings.EqualFold(n, name) {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%q: %w", name, ErrUnknownKind)
}

// Params holds the parameters of one shape.
// The concrete types are [Flower], [Arc], [Triangle], [Arrow], [Trapezoid],
// [Checkerboard] and [ColorCyclingRectangle].
type Params interface {
	Kind() Kind
	isParams()
}

// Insettable is implemented by shapes which can produce a copy of
// themselves shrunk by a margin on every side.
type Insettable interface {
	Params
	Inset(amount float64) Params
}

// generators maps each kind to its path function.
var generators = [numKinds]func(Params, Rect) *Path{
	KindFlower:                generate[Flower],
	KindArc:                   generate[Arc],
	KindTriangle:              generate[Triangle],
	KindArrow:                 generate[Arrow],
	KindTrapezoid:             generate[Trapezoid],
	KindCheckerboard:          generate[Checkerboard],
	KindColorCyclingRectangle: generate[ColorCyclingRectangle],
}

type pather interface {
	Path(r Rect) *Path
}

func generate[T pather](p Params, r Rect) *Path {
	if v, ok := p.(T); ok {
		return v.Path(r)
	}
	return &Path{}
}

// Generate returns the outline of the shape described by p inside r.
// Parameters may be passed by value or by pointer.  A nil p, or a nil
// pointer, gives an empty path.
func Generate(p Params, r Rect) *Path {
	p = deref(p)
	if p == nil {
		return &Path{}
	}
	k := p.Kind()
	if k < 0 || k >= numKinds {
		return &Path{}
	}
	return generators[k](p, r)
}
