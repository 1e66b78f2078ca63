package regions

import (
	"math"
	"sort"
)

// Point is a 2D pixel coordinate, origin at the top-left.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Box is an axis-aligned pixel bounding box, half-open like image.Rectangle:
// MinX/MinY inclusive, MaxX/MaxY exclusive.
type Box struct {
	MinX int `json:"min_x"`
	MinY int `json:"min_y"`
	MaxX int `json:"max_x"`
	MaxY int `json:"max_y"`
}

func (b Box) Width() int  { return b.MaxX - b.MinX }
func (b Box) Height() int { return b.MaxY - b.MinY }
func (b Box) Area() int   { return b.Width() * b.Height() }

// AspectRatio is the longer side over the shorter side (always >= 1).
func (b Box) AspectRatio() float64 {
	w, h := float64(b.Width()), float64(b.Height())
	if w <= 0 || h <= 0 {
		return math.Inf(1)
	}
	return math.Max(w, h) / math.Min(w, h)
}

// IoU computes the intersection-over-union of two boxes, the overlap measure
// used for duplicate suppression.
func IoU(a, b Box) float64 {
	ix := math.Min(float64(a.MaxX), float64(b.MaxX)) - math.Max(float64(a.MinX), float64(b.MinX))
	iy := math.Min(float64(a.MaxY), float64(b.MaxY)) - math.Max(float64(a.MinY), float64(b.MinY))
	if ix <= 0 || iy <= 0 {
		return 0
	}
	inter := ix * iy
	union := float64(a.Area()) + float64(b.Area()) - inter
	if union <= 0 {
		return 0
	}
	return inter / union
}

// convexHull returns the convex hull of the points in counterclockwise order
// using Andrew's monotone chain. Fewer than three distinct points yield a
// degenerate hull.
func convexHull(pts []Point) []Point {
	if len(pts) < 3 {
		return nil
	}
	sorted := make([]Point, len(pts))
	copy(sorted, pts)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].X != sorted[j].X {
			return sorted[i].X < sorted[j].X
		}
		return sorted[i].Y < sorted[j].Y
	})

	cross := func(o, a, b Point) int {
		return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
	}

	var lower []Point
	for _, p := range sorted {
		for len(lower) >= 2 && cross(lower[len(lower)-2], lower[len(lower)-1], p) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}
	var upper []Point
	for i := len(sorted) - 1; i >= 0; i-- {
		p := sorted[i]
		for len(upper) >= 2 && cross(upper[len(upper)-2], upper[len(upper)-1], p) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}
	return append(lower[:len(lower)-1], upper[:len(upper)-1]...)
}

// polygonArea is the shoelace area of a simple polygon.
func polygonArea(poly []Point) float64 {
	if len(poly) < 3 {
		return 0
	}
	sum := 0.0
	for i := range poly {
		j := (i + 1) % len(poly)
		sum += float64(poly[i].X)*float64(poly[j].Y) - float64(poly[j].X)*float64(poly[i].Y)
	}
	return math.Abs(sum) / 2
}

// hullArea returns the convex hull area of a point cloud in square pixels.
// Because points are pixel centers, a filled w x h rectangle hulls to
// (w-1)(h-1); the +1 expansion per axis restores pixel-count semantics.
func hullArea(pts []Point) float64 {
	hull := convexHull(pts)
	if len(hull) < 3 {
		return 0
	}
	a := polygonArea(hull)
	// Approximate the half-pixel border the centers leave off.
	perimeter := 0.0
	for i := range hull {
		j := (i + 1) % len(hull)
		perimeter += math.Hypot(float64(hull[j].X-hull[i].X), float64(hull[j].Y-hull[i].Y))
	}
	return a + perimeter/2 + 1
}
