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

// Package raster computes anti-aliased pixel coverage for filled and
// stroked paths.
//
// It is the reference consumer of the outlines produced by
// seehuhn.de/go/shapes: a path is converted to device space by the
// current transformation matrix, flattened to line segments and
// accumulated into per-pixel signed areas.
package raster

import (
	"image"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Rule selects how overlapping subpaths are combined.
type Rule int

const (
	// NonZero treats a point as inside if the winding number is not zero.
	NonZero Rule = iota

	// EvenOdd treats a point as inside if a ray from the point crosses
	// the outline an odd number of times.
	EvenOdd
)

func (r Rule) String() string {
	if r == EvenOdd {
		return "evenodd"
	}
	return "nonzero"
}

// edge is a line segment in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

// Rasterizer converts paths to pixel coverage values between 0 (outside)
// and 1 (inside).  Internal buffers are reused between calls.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// CTM maps path coordinates to device pixels.  Must be non-singular.
	CTM matrix.Matrix

	// Clip restricts the output to this device rectangle.
	// Coordinates must be integers.
	Clip rect.Rect

	// Flatness is the maximum distance in device pixels between a curve
	// and the line segments replacing it.  Must be positive.
	Flatness float64

	cover []float32 // change of winding per pixel
	area  []float32 // signed area inside the pixel
	edges []edge

	hasEdges bool
	devXMin  float64
	devXMax  float64
	devYMin  float64
	devYMax  float64

	// stroking state
	style         Style
	segs          []segment
	rev           []segment
	subpathStart  []int
	subpathClosed []bool
	dots          []vec.Vec2
	outline       path.Data
}

// NewRasterizer returns a Rasterizer for the given clip rectangle with the
// identity transformation and default flatness.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	return &Rasterizer{
		CTM:      matrix.Identity,
		Clip:     clip,
		Flatness: defaultFlatness,
	}
}

// Reset restores the default settings for a new clip rectangle, keeping
// the allocated buffers.
func (r *Rasterizer) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
}

// FillNonZero fills p using the nonzero winding rule.  The emit callback
// is called once per scanline with non-zero coverage; the slice is only
// valid during the call.
func (r *Rasterizer) FillNonZero(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.Fill(p, NonZero, emit)
}

// FillEvenOdd fills p using the even-odd rule.  See
// [Rasterizer.FillNonZero] for the emit callback.
func (r *Rasterizer) FillEvenOdd(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.Fill(p, EvenOdd, emit)
}

// Fill fills p using the given rule.
func (r *Rasterizer) Fill(p *path.Data, rule Rule, emit func(y, xMin int, coverage []float32)) {
	xMin, xMax, yMin, yMax, ok := r.collectEdges(p)
	if !ok {
		return
	}

	width := xMax - xMin
	height := yMax - yMin
	size := width * height
	r.cover = slices.Grow(r.cover[:0], size)[:size]
	r.area = slices.Grow(r.area[:0], size)[:size]
	clear(r.cover)
	clear(r.area)

	for i := range r.edges {
		e := &r.edges[i]
		top := max(int(math.Floor(min(e.y0, e.y1))), yMin)
		bot := min(int(math.Floor(max(e.y0, e.y1)))+1, yMax)
		for y := top; y < bot; y++ {
			off := (y - yMin) * width
			accumulate(e, y, r.cover[off:off+width], r.area[off:off+width], xMin, xMax)
		}
	}

	for row := range height {
		off := row * width
		coverage := r.cover[off : off+width]
		integrate(coverage, r.area[off:off+width], rule)
		if trimmed, lo := trimZeros(coverage); trimmed != nil {
			emit(yMin+row, xMin+lo, trimmed)
		}
	}
}

// collectEdges flattens p into r.edges and returns the device bounding box
// of the edges, clamped to the clip rectangle.
func (r *Rasterizer) collectEdges(p *path.Data) (xMin, xMax, yMin, yMax int, ok bool) {
	r.edges = r.edges[:0]
	r.hasEdges = false
	if p == nil {
		return 0, 0, 0, 0, false
	}

	var current, start vec.Vec2
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if current != start {
				r.addEdge(current, start) // implicit close
			}
			current = p.Coords[k]
			start = current
			k++
		case path.CmdLineTo:
			r.addEdge(current, p.Coords[k])
			current = p.Coords[k]
			k++
		case path.CmdQuadTo:
			r.flattenQuadratic(current, p.Coords[k], p.Coords[k+1], r.addEdge)
			current = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			r.flattenCubic(current, p.Coords[k], p.Coords[k+1], p.Coords[k+2], r.addEdge)
			current = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if current != start {
				r.addEdge(current, start)
			}
			current = start
		}
	}
	if current != start {
		r.addEdge(current, start)
	}

	if !r.hasEdges {
		return 0, 0, 0, 0, false
	}

	xMin = max(int(math.Floor(r.devXMin)), int(r.Clip.LLx))
	xMax = min(int(math.Floor(r.devXMax))+1, int(r.Clip.URx))
	yMin = max(int(math.Floor(r.devYMin)), int(r.Clip.LLy))
	yMax = min(int(math.Floor(r.devYMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// addEdge transforms a segment to device space and records it.
func (r *Rasterizer) addEdge(p0, p1 vec.Vec2) {
	m := r.CTM
	x0 := m[0]*p0.X + m[2]*p0.Y + m[4]
	y0 := m[1]*p0.X + m[3]*p0.Y + m[5]
	x1 := m[0]*p1.X + m[2]*p1.Y + m[4]
	y1 := m[1]*p1.X + m[3]*p1.Y + m[5]

	if !r.hasEdges {
		r.devXMin, r.devXMax = min(x0, x1), max(x0, x1)
		r.devYMin, r.devYMax = min(y0, y1), max(y0, y1)
		r.hasEdges = true
	} else {
		r.devXMin = min(r.devXMin, x0, x1)
		r.devXMax = max(r.devXMax, x0, x1)
		r.devYMin = min(r.devYMin, y0, y1)
		r.devYMax = max(r.devYMax, y0, y1)
	}

	dy := y1 - y0
	if math.Abs(dy) < horizontalEdgeThreshold {
		return // horizontal edges carry no coverage
	}
	r.edges = append(r.edges, edge{x0: x0, y0: y0, x1: x1, y1: y1, dxdy: (x1 - x0) / dy})
}

// deviceLength returns the device space length of the user space vector v,
// ignoring translation.
func (r *Rasterizer) deviceLength(v vec.Vec2) float64 {
	m := r.CTM
	return math.Hypot(m[0]*v.X+m[2]*v.Y, m[1]*v.X+m[3]*v.Y)
}

// flattenQuadratic replaces a quadratic Bézier curve by line segments,
// which are passed to emit in order.
func (r *Rasterizer) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(a, b vec.Vec2)) {
	dev := r.deviceLength(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25))
	n := 1
	if dev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / r.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic is like flattenQuadratic for cubic curves.  The number of
// segments is chosen using Wang's formula.
func (r *Rasterizer) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(a, b vec.Vec2)) {
	dev := max(
		r.deviceLength(p0.Sub(p1.Mul(2)).Add(p2)),
		r.deviceLength(p1.Sub(p2.Mul(2)).Add(p3)),
	)
	n := 1
	if nf := math.Sqrt(3 * dev / (4 * r.Flatness)); nf > 1 {
		n = int(math.Ceil(nf))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		emit(prev, pt)
		prev = pt
	}
}

// Coverage model: every edge piece crossing a pixel adds its signed height
// to cover, and that height weighted by the part of the pixel to the right
// of the edge to area.  Summing cover from the left and adding area gives
// the signed covered fraction of each pixel.

// accumulate adds the part of e inside scanline y to the row buffers.
// Index 0 of the buffers corresponds to pixel column xMin; contributions
// left of xMin are folded into column 0.
func accumulate(e *edge, y int, cover, area []float32, xMin, xMax int) {
	yTop := max(float64(y), min(e.y0, e.y1))
	yBot := min(float64(y+1), max(e.y0, e.y1))
	if yBot <= yTop {
		return
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xTop := e.x0 + e.dxdy*(yTop-e.y0)
	xBot := e.x0 + e.dxdy*(yBot-e.y0)
	left := int(math.Floor(min(xTop, xBot)))
	right := int(math.Floor(max(xTop, xBot)))

	if left >= xMax {
		return
	}

	for pix := left; pix <= right; pix++ {
		segTop, segBot := yTop, yBot
		if left != right {
			// y range of the edge within this pixel column
			ya := e.y0 + (float64(pix)-e.x0)/e.dxdy
			yb := e.y0 + (float64(pix+1)-e.x0)/e.dxdy
			segTop = max(min(ya, yb), yTop)
			segBot = min(max(ya, yb), yBot)
		}
		dy := segBot - segTop
		if dy <= 0 {
			continue
		}

		c := sign * float32(dy)
		if pix < xMin {
			cover[0] += c
			area[0] += c
			continue
		}
		if pix >= xMax {
			break
		}

		xMid := e.x0 + e.dxdy*((segTop+segBot)/2-e.y0)
		frac := xMid - float64(pix)
		i := pix - xMin
		cover[i] += c
		area[i] += c * float32(1-frac)
	}
}

// integrate turns the accumulated row buffers into coverage values,
// overwriting cover.
func integrate(cover, area []float32, rule Rule) {
	var acc float32
	for i := range cover {
		raw := acc + area[i]
		acc += cover[i]
		if raw < 0 {
			raw = -raw
		}

		var c float32
		if rule == EvenOdd {
			m := raw - 2*float32(int(raw/2))
			c = 1 - abs32(1-m)
		} else {
			c = min(raw, 1)
		}
		cover[i] = c
	}
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// trimZeros returns the part of coverage between the first and the last
// non-zero value, together with its offset.  The result is nil if all
// values are zero.
func trimZeros(coverage []float32) ([]float32, int) {
	lo, hi := 0, len(coverage)
	for lo < hi && coverage[lo] == 0 {
		lo++
	}
	if lo == hi {
		return nil, 0
	}
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}

// Mask fills p into a new w×h alpha image.
func Mask(p *path.Data, w, h int, rule Rule) *image.Alpha {
	img := image.NewAlpha(image.Rect(0, 0, w, h))
	r := NewRasterizer(rect.Rect{URx: float64(w), URy: float64(h)})
	r.Fill(p, rule, func(y, xMin int, coverage []float32) {
		row := img.Pix[y*img.Stride+xMin:]
		for i, c := range coverage {
			row[i] = uint8(min(255, int(c*255+0.5)))
		}
	})
	return img
}

const (
	// defaultFlatness is the default flattening tolerance in device pixels.
	defaultFlatness = 0.25

	// horizontalEdgeThreshold is the smallest vertical extent of an edge
	// which contributes to coverage.
	horizontalEdgeThreshold = 1e-10

	defaultMiterLimit = 10

	// minSegmentLength is the shortest segment considered when stroking.
	minSegmentLength = 1e-10

	// collinearThreshold is the largest sine of the turning angle for
	// which two segments are treated as parallel.
	collinearThreshold = 1e-9
)
