package shapes

import (
	"math"
	"testing"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/shapes/raster"
)

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

func TestTriangle(t *testing.T) {
	p := Triangle{}.Path(Rect{X: 10, Y: 20, Width: 40, Height: 30})
	want := (&Path{}).
		MoveTo(pt(30, 20)).
		LineTo(pt(10, 50)).
		LineTo(pt(50, 50)).
		LineTo(pt(30, 20))
	diff(t, want, p)
}

func TestTriangleArea(t *testing.T) {
	p := Triangle{}.Path(Rect{Width: 20, Height: 20})
	if a := coveredArea(p, 32, 32, raster.NonZero); math.Abs(a-200) > 0.1 {
		t.Errorf("triangle covers %g pixels, want 200", a)
	}
}

func TestArrow(t *testing.T) {
	r := Rect{Width: 200, Height: 200}
	p := Arrow{}.Path(r)

	tri := Triangle{}.Path(r)
	if p.Len() != tri.Len()+1 {
		t.Fatalf("expected %d primitives, got %d", tri.Len()+1, p.Len())
	}
	diff(t, tri.Prims, p.Prims[:tri.Len()])

	shaft := p.Prims[tri.Len()]
	diff(t, Primitive{Op: OpRect, Rect: Rect{X: 85, Y: 200, Width: 30, Height: 60}}, shaft)

	// The shaft size does not depend on the bounding rectangle.
	small := Arrow{}.Path(Rect{Width: 10, Height: 10})
	last := small.Prims[small.Len()-1].Rect
	if last.Width != ArrowShaftWidth || last.Height != ArrowShaftHeight {
		t.Errorf("shaft was scaled: %s", last)
	}
}

func TestTrapezoid(t *testing.T) {
	p := Trapezoid{InsetAmount: 20}.Path(Rect{Width: 100, Height: 50})
	want := (&Path{}).
		MoveTo(pt(0, 50)).
		LineTo(pt(20, 0)).
		LineTo(pt(80, 0)).
		LineTo(pt(100, 50))
	diff(t, want, p)

	if p.Count(OpClose) != 0 {
		t.Error("trapezoid outline must not be closed")
	}
}

func TestTrapezoidCollapsed(t *testing.T) {
	p := Trapezoid{InsetAmount: 50}.Path(Rect{Width: 100, Height: 50})
	if p.Prims[1].Point != p.Prims[2].Point {
		t.Errorf("top edge did not collapse: %v %v", p.Prims[1].Point, p.Prims[2].Point)
	}
	if p.Prims[1].Point != pt(50, 0) {
		t.Errorf("apex at %v, want (50, 0)", p.Prims[1].Point)
	}

	// A filled collapsed trapezoid is a triangle.
	if a := coveredArea(p, 128, 64, raster.NonZero); math.Abs(a-2500) > 0.5 {
		t.Errorf("collapsed trapezoid covers %g pixels, want 2500", a)
	}
}

func TestTrapezoidSelfIntersecting(t *testing.T) {
	p := Trapezoid{InsetAmount: 70}.Path(Rect{Width: 100, Height: 50})
	if p.Prims[1].Point.X <= p.Prims[2].Point.X {
		t.Errorf("expected crossed top edge, got %v and %v", p.Prims[1].Point, p.Prims[2].Point)
	}
	if p.Len() != 4 {
		t.Errorf("expected 4 primitives, got %d", p.Len())
	}
}
