package regions

import (
	"math"

	"github.com/mfuechec/RoomView/internal/params"
)

// Candidate is a region provisionally considered a room: an enclosed light
// area promoted out of the containment tree, annotated with the geometric
// metrics the shape filter and scorer consume. Candidates are created here
// and either discarded by filtering or promoted to rooms; they never outlive
// the invocation.
type Candidate struct {
	Node int `json:"node"`

	// AreaPx is the candidate's filled area in processed-resolution pixels
	// (furniture islands inside the room count toward the room).
	AreaPx float64 `json:"area_px"`

	BBox Box `json:"bbox"`

	Solidity    float64 `json:"solidity"`
	Extent      float64 `json:"extent"`
	AspectRatio float64 `json:"aspect_ratio"`
	PerimeterPx float64 `json:"perimeter_px"`
	IsEnclosed  bool    `json:"is_enclosed"`
}

// ExtractCandidates walks the containment tree and promotes every region
// that could plausibly be a room:
//
//   - it is light (rooms are background-colored floor, not wall ink),
//   - it has a parent and does not touch the image border (a region with no
//     enclosing wall is not an enclosed space),
//   - its filled area is within the configured fraction band of its parent's
//     filled area. The band is the key mechanism separating rooms from
//     furniture and from near-duplicate nested contours: fixtures are tiny
//     relative to the enclosing wall structure, duplicates nearly fill it.
//
// All qualifying children of a parent are retained as independent candidates.
// A malformed region (degenerate boundary, zero-area parent) is skipped,
// never fatal: one broken contour must not abort the whole image.
func ExtractCandidates(t *Tree, cfg params.Config) []Candidate {
	var out []Candidate
	for i := range t.Nodes {
		n := &t.Nodes[i]
		if n.Ink || n.Parent < 0 || n.TouchesBorder {
			continue
		}
		parent := &t.Nodes[n.Parent]
		if parent.FilledAreaPx <= 0 {
			continue
		}
		ratio := float64(n.FilledAreaPx) / float64(parent.FilledAreaPx)
		if ratio <= cfg.MinAreaRatio || ratio >= cfg.MaxAreaRatio {
			continue
		}
		c, ok := measure(n)
		if !ok {
			continue
		}
		out = append(out, c)
	}
	return out
}

// measure computes the shape metrics for one region. ok is false for
// degenerate geometry the rest of the pipeline should skip.
func measure(n *RegionNode) (Candidate, bool) {
	area := float64(n.FilledAreaPx)
	bboxArea := float64(n.BBox.Area())
	if area <= 0 || bboxArea <= 0 {
		return Candidate{}, false
	}

	hull := hullArea(n.Boundary)
	if hull <= 0 {
		return Candidate{}, false
	}

	return Candidate{
		Node:        n.ID,
		AreaPx:      area,
		BBox:        n.BBox,
		Solidity:    math.Min(area/hull, 1.0),
		Extent:      math.Min(area/bboxArea, 1.0),
		AspectRatio: n.BBox.AspectRatio(),
		PerimeterPx: float64(len(n.Boundary)),
		IsEnclosed:  true,
	}, true
}
