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

package raster

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Style describes the pen used by [Rasterizer.Stroke].
// All lengths are in path coordinates.
type Style struct {
	// Width is the line width.  Must be positive.
	Width float64

	// Cap is the shape of the ends of open subpaths.
	Cap graphics.LineCapStyle

	// Join is the shape of corners.
	Join graphics.LineJoinStyle

	// MiterLimit is the largest ratio between miter length and line width
	// for which a miter join is drawn.  Longer miters are beveled.
	MiterLimit float64
}

// DefaultStyle is a one unit wide line with butt caps and miter joins.
var DefaultStyle = Style{
	Width:      1,
	Cap:        graphics.LineCapButt,
	Join:       graphics.LineJoinMiter,
	MiterLimit: defaultMiterLimit,
}

// segment is a piece of a flattened subpath.
type segment struct {
	A, B vec.Vec2
	T    vec.Vec2 // unit tangent from A to B
	N    vec.Vec2 // T rotated by +90°
}

func (s segment) reversed() segment {
	return segment{A: s.B, B: s.A, T: s.T.Mul(-1), N: s.N.Mul(-1)}
}

// Stroke paints the outline of p with the given pen.  Overlapping parts of
// the stroke are painted once.  The emit callback is used as in
// [Rasterizer.FillNonZero].
func (r *Rasterizer) Stroke(p *path.Data, s Style, emit func(y, xMin int, coverage []float32)) {
	if p == nil || !(s.Width > 0) {
		return
	}
	r.style = s
	r.flattenSubpaths(p)

	r.outline.Cmds = r.outline.Cmds[:0]
	r.outline.Coords = r.outline.Coords[:0]
	d := s.Width / 2

	if s.Cap == graphics.LineCapRound {
		for _, pt := range r.dots {
			r.addArc(pt, d, vec.Vec2{X: 1}, 2*math.Pi)
			r.outline.Close()
		}
	}

	for i, start := range r.subpathStart {
		end := len(r.segs)
		if i+1 < len(r.subpathStart) {
			end = r.subpathStart[i+1]
		}
		segs := r.segs[start:end]

		r.rev = r.rev[:0]
		for j := len(segs) - 1; j >= 0; j-- {
			r.rev = append(r.rev, segs[j].reversed())
		}

		if r.subpathClosed[i] {
			// two loops of opposite orientation, one on each side
			r.addSide(segs, true, d)
			r.outline.Close()
			r.addSide(r.rev, true, d)
			r.outline.Close()
		} else {
			first := segs[0]
			last := segs[len(segs)-1]
			r.addCap(first.A, first.T.Mul(-1), d)
			r.addSide(segs, false, d)
			r.addCap(last.B, last.T, d)
			r.addSide(r.rev, false, d)
			r.outline.Close()
		}
	}

	r.Fill(&r.outline, NonZero, emit)
}

// flattenSubpaths splits p into flattened subpaths.  Subpaths without any
// extent are collected in r.dots.  After a close, drawing without a move
// starts a new open subpath at the start point of the closed one.
func (r *Rasterizer) flattenSubpaths(p *path.Data) {
	r.segs = r.segs[:0]
	r.subpathStart = r.subpathStart[:0]
	r.subpathClosed = r.subpathClosed[:0]
	r.dots = r.dots[:0]

	var current, start vec.Vec2
	first := 0
	open := false
	drawn := false
	closed := false

	finish := func(closed bool) {
		if !open || !drawn {
			return
		}
		if len(r.segs) == first {
			r.dots = append(r.dots, start)
		} else {
			r.subpathStart = append(r.subpathStart, first)
			r.subpathClosed = append(r.subpathClosed, closed)
		}
	}

	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			finish(false)
			current = p.Coords[k]
			start = current
			first = len(r.segs)
			open = true
			drawn = false
			closed = false
			k++
		case path.CmdLineTo:
			if open {
				r.addSegment(current, p.Coords[k])
				current = p.Coords[k]
				drawn = true
			}
			k++
		case path.CmdQuadTo:
			if open {
				r.flattenQuadratic(current, p.Coords[k], p.Coords[k+1], r.addSegment)
				current = p.Coords[k+1]
				drawn = true
			}
			k += 2
		case path.CmdCubeTo:
			if open {
				r.flattenCubic(current, p.Coords[k], p.Coords[k+1], p.Coords[k+2], r.addSegment)
				current = p.Coords[k+2]
				drawn = true
			}
			k += 3
		case path.CmdClose:
			if open && (drawn || !closed) {
				r.addSegment(current, start)
				drawn = true
				finish(true)
			}
			// a new subpath continues from the start of the closed one
			current = start
			first = len(r.segs)
			drawn = false
			closed = true
		}
	}
	finish(false)
}

func (r *Rasterizer) addSegment(a, b vec.Vec2) {
	d := b.Sub(a)
	l := d.Length()
	if l < minSegmentLength {
		return
	}
	t := d.Mul(1 / l)
	r.segs = append(r.segs, segment{A: a, B: b, T: t, N: vec.Vec2{X: -t.Y, Y: t.X}})
}

// addSide appends the offset of segs on the +N side to the outline,
// including the joins between consecutive segments.  For closed subpaths
// the corner between the last and the first segment is included.
func (r *Rasterizer) addSide(segs []segment, closed bool, d float64) {
	for i, seg := range segs {
		r.lineTo(seg.A.Add(seg.N.Mul(d)))

		var next segment
		switch {
		case i+1 < len(segs):
			next = segs[i+1]
		case closed:
			next = segs[0]
		default:
			r.lineTo(seg.B.Add(seg.N.Mul(d)))
			continue
		}
		r.addCorner(seg.B, seg, next, d)
	}
}

// addCorner appends the outline points where seg turns into next.
// The next segment's offset start point is added by the caller.
func (r *Rasterizer) addCorner(P vec.Vec2, seg, next segment, d float64) {
	sin := seg.T.X*next.T.Y - seg.T.Y*next.T.X
	cos := seg.T.Dot(next.T)

	r.lineTo(P.Add(seg.N.Mul(d)))
	switch {
	case math.Abs(sin) < collinearThreshold && cos > 0:
		// straight continuation
	case math.Abs(sin) < collinearThreshold:
		// the path reverses direction
		r.addCap(P, seg.T, d)
	case sin > 0:
		// inner side of the turn: go through the pivot
		r.lineTo(P)
	default:
		r.addJoin(P, seg, next, sin, cos, d)
	}
}

// addJoin appends the outer part of a corner.
func (r *Rasterizer) addJoin(P vec.Vec2, seg, next segment, sin, cos, d float64) {
	switch r.style.Join {
	case graphics.LineJoinRound:
		r.addArc(P, d, seg.N, math.Atan2(sin, cos))
	case graphics.LineJoinMiter:
		cosHalf := math.Sqrt((1 + cos) / 2)
		if cosHalf > 0 && 1/cosHalf <= r.style.MiterLimit+1e-10 {
			bisector := seg.N.Add(next.N)
			if l := bisector.Length(); l > minSegmentLength {
				r.lineTo(P.Add(bisector.Mul(d / (l * cosHalf))))
			}
		}
	}
	// bevel joins need no extra points
}

// addCap appends the cap at the end P of a subpath.  T points away from
// the subpath.
func (r *Rasterizer) addCap(P, T vec.Vec2, d float64) {
	N := vec.Vec2{X: -T.Y, Y: T.X}
	switch r.style.Cap {
	case graphics.LineCapSquare:
		ext := P.Add(T.Mul(d))
		r.lineTo(ext.Add(N.Mul(d)))
		r.lineTo(ext.Sub(N.Mul(d)))
	case graphics.LineCapRound:
		r.addArc(P, d, N, -math.Pi)
	}
}

// addArc appends points on the circle around center, starting in direction
// dir and turning by sweep radians.
func (r *Rasterizer) addArc(center vec.Vec2, radius float64, dir vec.Vec2, sweep float64) {
	devRadius := max(
		r.deviceLength(vec.Vec2{X: radius}),
		r.deviceLength(vec.Vec2{Y: radius}),
	)

	n := 1
	if devRadius > r.Flatness {
		step := 2 * math.Acos(1-r.Flatness/devRadius)
		n = max(1, int(math.Ceil(math.Abs(sweep)/step)))
	}
	for i := 0; i <= n; i++ {
		sin, cos := math.Sincos(sweep * float64(i) / float64(n))
		u := vec.Vec2{X: dir.X*cos - dir.Y*sin, Y: dir.X*sin + dir.Y*cos}
		r.lineTo(center.Add(u.Mul(radius)))
	}
}

// lineTo appends a vertex to the current outline polygon.
func (r *Rasterizer) lineTo(pt vec.Vec2) {
	o := &r.outline
	if len(o.Cmds) == 0 || o.Cmds[len(o.Cmds)-1] == path.CmdClose {
		o.MoveTo(pt)
	} else {
		o.LineTo(pt)
	}
}
