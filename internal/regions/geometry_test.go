package regions

import (
	"math"
	"testing"
)

func TestBoxMetrics(t *testing.T) {
	b := Box{MinX: 10, MinY: 20, MaxX: 70, MaxY: 30}
	if b.Width() != 60 || b.Height() != 10 || b.Area() != 600 {
		t.Errorf("box metrics wrong: %dx%d area %d", b.Width(), b.Height(), b.Area())
	}
	if got := b.AspectRatio(); got != 6 {
		t.Errorf("aspect = %v, want 6 (orientation-independent)", got)
	}
	tall := Box{MinX: 0, MinY: 0, MaxX: 10, MaxY: 60}
	if got := tall.AspectRatio(); got != 6 {
		t.Errorf("tall aspect = %v, want 6", got)
	}
}

func TestBoxAspectRatioDegenerate(t *testing.T) {
	b := Box{MinX: 5, MinY: 5, MaxX: 5, MaxY: 10}
	if got := b.AspectRatio(); !math.IsInf(got, 1) {
		t.Errorf("zero-width aspect = %v, want +Inf", got)
	}
}

func TestIoU(t *testing.T) {
	a := Box{MinX: 0, MinY: 0, MaxX: 100, MaxY: 100}
	if got := IoU(a, a); got != 1 {
		t.Errorf("self IoU = %v, want 1", got)
	}

	disjoint := Box{MinX: 200, MinY: 200, MaxX: 300, MaxY: 300}
	if got := IoU(a, disjoint); got != 0 {
		t.Errorf("disjoint IoU = %v, want 0", got)
	}

	half := Box{MinX: 0, MinY: 50, MaxX: 100, MaxY: 150}
	want := 5000.0 / 15000.0
	if got := IoU(a, half); math.Abs(got-want) > 1e-9 {
		t.Errorf("IoU = %v, want %v", got, want)
	}
	if IoU(a, half) != IoU(half, a) {
		t.Error("IoU must be symmetric")
	}
}

func TestHullAreaOfFilledRectangle(t *testing.T) {
	// Boundary pixels of a 10x10 filled block. The hull over pixel centers
	// spans 9x9; the lattice correction restores pixel-count semantics so
	// solidity of a solid rectangle lands at ~1.
	var pts []Point
	for i := 0; i < 10; i++ {
		pts = append(pts,
			Point{X: i, Y: 0}, Point{X: i, Y: 9},
			Point{X: 0, Y: i}, Point{X: 9, Y: i})
	}
	got := hullArea(pts)
	if math.Abs(got-100) > 1 {
		t.Errorf("hull area = %v, want ~100", got)
	}
}

func TestHullAreaDegenerate(t *testing.T) {
	if got := hullArea([]Point{{X: 1, Y: 1}, {X: 2, Y: 2}}); got != 0 {
		t.Errorf("hull of 2 points = %v, want 0", got)
	}
	// Collinear points have no interior.
	line := []Point{{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 9, Y: 0}}
	if got := hullArea(line); got != 0 {
		t.Errorf("hull of collinear points = %v, want 0", got)
	}
}

func TestConvexHullSquare(t *testing.T) {
	pts := []Point{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10},
		{X: 5, Y: 5}, // interior point must not appear on the hull
	}
	hull := convexHull(pts)
	if len(hull) != 4 {
		t.Fatalf("hull size = %d, want 4", len(hull))
	}
	if got := polygonArea(hull); got != 100 {
		t.Errorf("hull area = %v, want 100", got)
	}
}
