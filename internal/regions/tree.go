package regions

import (
	"github.com/mfuechec/RoomView/internal/preprocess"
)

// RegionNode is one region in the containment tree: a maximal connected run
// of same-valued pixels, with a weak back-reference to the region that
// spatially encloses it. Nodes live in the tree's flat arena and refer to
// each other by index only, so the structure has no pointer cycles and
// serializes trivially.
type RegionNode struct {
	ID  int  `json:"id"`
	Ink bool `json:"ink"` // true for dark (wall) regions, false for light

	// Parent is the arena index of the immediately enclosing region, or -1
	// for regions touching the image border (nothing encloses them).
	Parent int `json:"parent"`

	// AreaPx is the region's own pixel count.
	AreaPx int `json:"area_px"`

	// FilledAreaPx is the pixel count of the full subtree: the region plus
	// everything nested inside it. This matches the filled-contour area the
	// parent/child ratio test is defined over: a wall's filled area
	// includes the rooms it encloses.
	FilledAreaPx int `json:"filled_area_px"`

	BBox Box `json:"bbox"`

	// Boundary holds the region's boundary pixels (those with a 4-neighbor
	// outside the region). Its length approximates the perimeter.
	Boundary []Point `json:"-"`

	TouchesBorder bool `json:"touches_border"`
}

// Tree is the containment hierarchy of every enclosed light and dark region
// in a binary image, walls containing rooms containing furniture. Nodes are
// stored in a flat arena; a node's parent always has a smaller index.
type Tree struct {
	Nodes []RegionNode
	W, H  int
}

// BuildTree labels every connected region of the bitmap (ink regions
// 8-connected, light regions 4-connected; the complementary connectivities
// keep nesting topologically consistent) and links each region to the one
// that encloses it.
//
// Parent discovery rides on the raster scan: the first pixel a scan meets in
// a region is its topmost-leftmost one, and the pixel directly above that
// (already labeled, opposite-valued) belongs to the enclosing region. Regions
// whose first pixel sits on the top row are roots.
func BuildTree(b *preprocess.Bitmap) *Tree {
	w, h := b.W, b.H
	labels := make([]int32, w*h)
	for i := range labels {
		labels[i] = -1
	}

	t := &Tree{W: w, H: h}
	stack := make([]Point, 0, 256)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if labels[y*w+x] >= 0 {
				continue
			}
			id := len(t.Nodes)
			parent := -1
			if y > 0 {
				parent = int(labels[(y-1)*w+x])
			}
			node := fillRegion(b, labels, x, y, int32(id), &stack)
			node.ID = id
			node.Parent = parent
			t.Nodes = append(t.Nodes, node)
		}
	}

	// Accumulate filled areas bottom-up; children always follow parents in
	// the arena, so one reverse pass suffices.
	for i := len(t.Nodes) - 1; i >= 0; i-- {
		if p := t.Nodes[i].Parent; p >= 0 {
			t.Nodes[p].FilledAreaPx += t.Nodes[i].FilledAreaPx
		}
	}

	return t
}

// fillRegion flood-fills one region starting at (sx, sy), labeling its pixels
// and gathering its statistics. Iterative with an explicit stack since
// recursion would overflow on large rooms.
func fillRegion(b *preprocess.Bitmap, labels []int32, sx, sy int, id int32, stack *[]Point) RegionNode {
	w, h := b.W, b.H
	ink := b.Pix[sy*w+sx] != 0

	node := RegionNode{
		Ink:  ink,
		BBox: Box{MinX: sx, MinY: sy, MaxX: sx + 1, MaxY: sy + 1},
	}

	// Ink regions connect diagonally; light regions do not. Using the same
	// connectivity for both would let a region "leak" through a one-pixel
	// diagonal wall joint.
	neighbors := neighbors4
	if ink {
		neighbors = neighbors8
	}

	*stack = (*stack)[:0]
	*stack = append(*stack, Point{X: sx, Y: sy})
	labels[sy*w+sx] = id

	for len(*stack) > 0 {
		p := (*stack)[len(*stack)-1]
		*stack = (*stack)[:len(*stack)-1]

		node.AreaPx++
		if p.X < node.BBox.MinX {
			node.BBox.MinX = p.X
		}
		if p.Y < node.BBox.MinY {
			node.BBox.MinY = p.Y
		}
		if p.X+1 > node.BBox.MaxX {
			node.BBox.MaxX = p.X + 1
		}
		if p.Y+1 > node.BBox.MaxY {
			node.BBox.MaxY = p.Y + 1
		}
		if p.X == 0 || p.Y == 0 || p.X == w-1 || p.Y == h-1 {
			node.TouchesBorder = true
		}

		// Boundary pixel: any 4-neighbor missing or differently valued.
		boundary := false
		for _, d := range neighbors4 {
			nx, ny := p.X+d[0], p.Y+d[1]
			if nx < 0 || ny < 0 || nx >= w || ny >= h {
				boundary = true
				continue
			}
			if (b.Pix[ny*w+nx] != 0) != ink {
				boundary = true
			}
		}
		if boundary {
			node.Boundary = append(node.Boundary, p)
		}

		for _, d := range neighbors {
			nx, ny := p.X+d[0], p.Y+d[1]
			if nx < 0 || ny < 0 || nx >= w || ny >= h {
				continue
			}
			ni := ny*w + nx
			if labels[ni] >= 0 || (b.Pix[ni] != 0) != ink {
				continue
			}
			labels[ni] = id
			*stack = append(*stack, Point{X: nx, Y: ny})
		}
	}

	node.FilledAreaPx = node.AreaPx
	return node
}

var neighbors4 = [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

var neighbors8 = [][2]int{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}
