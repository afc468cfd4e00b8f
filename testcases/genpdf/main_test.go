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

package main

import (
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/shapes"
	"seehuhn.de/go/shapes/testcases"
)

// recorder logs the operators it receives, with rectangles spelled out
// the way the PDF rectangle operator defines them.
type recorder struct {
	cmds  []path.Command
	pts   []vec.Vec2
	rects int
}

func (r *recorder) MoveTo(x, y float64) {
	r.cmds = append(r.cmds, path.CmdMoveTo)
	r.pts = append(r.pts, vec.Vec2{X: x, Y: y})
}

func (r *recorder) LineTo(x, y float64) {
	r.cmds = append(r.cmds, path.CmdLineTo)
	r.pts = append(r.pts, vec.Vec2{X: x, Y: y})
}

func (r *recorder) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	r.cmds = append(r.cmds, path.CmdCubeTo)
	r.pts = append(r.pts, vec.Vec2{X: x1, Y: y1}, vec.Vec2{X: x2, Y: y2}, vec.Vec2{X: x3, Y: y3})
}

func (r *recorder) ClosePath() {
	r.cmds = append(r.cmds, path.CmdClose)
}

func (r *recorder) Rectangle(x, y, w, h float64) {
	r.rects++
	r.MoveTo(x, y)
	r.LineTo(x+w, y)
	r.LineTo(x+w, y+h)
	r.LineTo(x, y+h)
	r.ClosePath()
}

func lowered(d *path.Data) ([]path.Command, []vec.Vec2) {
	var cmds []path.Command
	var pts []vec.Vec2
	for cmd, p := range d.Iter().ToCubic() {
		cmds = append(cmds, cmd)
		pts = append(pts, p...)
	}
	return cmds, pts
}

// TestWritePrimsMatchesData checks that the operators written for every
// gallery shape describe the same outline as the lowered path.
func TestWritePrimsMatchesData(t *testing.T) {
	for category, cases := range testcases.All {
		for _, tc := range cases {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				p := tc.Path()
				r := &recorder{}
				writePrims(r, p.Prims, shapes.DefaultTolerance)

				cmds, pts := lowered(p.Data(shapes.DefaultTolerance))
				if d := cmp.Diff(cmds, r.cmds); d != "" {
					t.Fatalf("commands differ (-want +got):\n%s", d)
				}
				if d := cmp.Diff(pts, r.pts, cmpopts.EquateApprox(0, 1e-9)); d != "" {
					t.Errorf("points differ (-want +got):\n%s", d)
				}
			})
		}
	}
}

func TestCheckerboardUsesRectangles(t *testing.T) {
	board := shapes.Checkerboard{Rows: 3, Columns: 4}
	p := board.Path(shapes.Rect{Width: 40, Height: 30})

	r := &recorder{}
	writePrims(r, p.Prims, shapes.DefaultTolerance)
	if r.rects != board.Cells() {
		t.Errorf("got %d rectangles, want %d", r.rects, board.Cells())
	}
	for i, cmd := range r.cmds {
		if cmd == path.CmdCubeTo {
			t.Fatalf("command %d is a curve", i)
		}
	}
}

func TestWritePrimsCurrentPoint(t *testing.T) {
	cases := []struct {
		p    *shapes.Path
		want []path.Command
	}{
		{ // a line without current point starts a subpath
			p:    (&shapes.Path{}).LineTo(vec.Vec2{X: 1, Y: 1}).LineTo(vec.Vec2{X: 2, Y: 1}),
			want: []path.Command{path.CmdMoveTo, path.CmdLineTo},
		},
		{ // rectangles with negative size and closes without subpath are dropped
			p: (&shapes.Path{}).
				Close().
				AddRect(shapes.Rect{Width: -1, Height: 5}).
				LineTo(vec.Vec2{X: 1, Y: 1}),
			want: []path.Command{path.CmdMoveTo},
		},
		{ // an arc with negative radius leaves no current point
			p: (&shapes.Path{}).
				AddArc(vec.Vec2{X: 20, Y: 20}, -5, 0, 90, false).
				LineTo(vec.Vec2{X: 1, Y: 1}),
			want: []path.Command{path.CmdMoveTo},
		},
	}
	for i, tc := range cases {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			r := &recorder{}
			writePrims(r, tc.p.Prims, shapes.DefaultTolerance)
			if d := cmp.Diff(tc.want, r.cmds); d != "" {
				t.Errorf("commands differ (-want +got):\n%s", d)
			}
		})
	}
}

func TestWritePrimsArcAfterRect(t *testing.T) {
	p := (&shapes.Path{}).
		AddRect(shapes.Rect{Width: 5, Height: 5}).
		AddArc(vec.Vec2{X: 20, Y: 20}, 5, 0, 90, false)

	r := &recorder{}
	writePrims(r, p.Prims, shapes.DefaultTolerance)

	if len(r.cmds) < 7 || r.rects != 1 {
		t.Fatalf("got %v with %d rectangles", r.cmds, r.rects)
	}
	if r.cmds[5] != path.CmdLineTo {
		t.Errorf("arc starts with %v, want a line from the rectangle corner", r.cmds[5])
	}
	if got := r.pts[4]; math.Abs(got.X-25) > 1e-9 || math.Abs(got.Y-20) > 1e-9 {
		t.Errorf("arc starts at %v, want (25, 20)", got)
	}
	for _, cmd := range r.cmds[6:] {
		if cmd != path.CmdCubeTo {
			t.Errorf("unexpected %v in arc", cmd)
		}
	}
}
