package rooms

import (
	"fmt"
	"math"
	"sort"

	"github.com/mfuechec/RoomView/internal/params"
	"github.com/mfuechec/RoomView/internal/regions"
)

// Type hints for detected regions.
const (
	TypeRoom    = "room"
	TypeHallway = "hallway"
	TypeUnknown = "unknown"
)

// Room is a final detection result. Coordinates are resolution-independent:
// the normalized box divides original-image pixel coordinates by the original
// width and height and is rounded to four decimal places. A Room is immutable
// once emitted; ownership passes to the caller.
type Room struct {
	// ID is stable and position-derived: room_NNN in output order, which is
	// deterministic for identical input and configuration.
	ID string `json:"id"`

	// BoundingBoxNormalized is [x_min, y_min, x_max, y_max], each in [0,1].
	BoundingBoxNormalized [4]float64 `json:"bounding_box_normalized"`

	// BoundingBoxPx is the same box in original-image pixels.
	BoundingBoxPx [4]int `json:"bounding_box_pixels"`

	ConfidenceScore float64 `json:"confidence_score"`
	TypeHint        string  `json:"type_hint"`

	// AreaNormalized is the normalized box area, rounded to six decimals.
	AreaNormalized float64 `json:"area_normalized"`

	// Label is an optional OCR-extracted name hint; empty unless label
	// reading was requested and text was found inside the room.
	Label string `json:"label,omitempty"`
}

// Confidence blend weights: rooms are rectangular (extent), solid shapes
// (solidity), sized consistently with their floor plan (triangular score
// peaking at the median candidate area), and compact (4πA/P²).
const (
	weightRectangularity = 0.30
	weightSolidity       = 0.25
	weightSize           = 0.25
	weightCompactness    = 0.20
)

// Build converts deduplicated candidates into the final Room list: sorted by
// area descending, capped at cfg.MaxRooms, with pixel geometry mapped back to
// original-image resolution and normalized.
//
// medianArea is the median candidate area from scale filtering; it anchors
// the size-appropriateness component of the confidence score.
func Build(cands []regions.Candidate, medianArea float64, procW, procH, origW, origH int, cfg params.Config) []Room {
	if procW <= 0 || procH <= 0 || origW <= 0 || origH <= 0 {
		return nil
	}

	sorted := make([]regions.Candidate, len(cands))
	copy(sorted, cands)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].AreaPx > sorted[j].AreaPx
	})
	if cfg.MaxRooms > 0 && len(sorted) > cfg.MaxRooms {
		sorted = sorted[:cfg.MaxRooms]
	}

	sx := float64(origW) / float64(procW)
	sy := float64(origH) / float64(procH)

	out := make([]Room, 0, len(sorted))
	for i, c := range sorted {
		// Pixel box at original resolution.
		px := [4]int{
			int(math.Round(float64(c.BBox.MinX) * sx)),
			int(math.Round(float64(c.BBox.MinY) * sy)),
			int(math.Round(float64(c.BBox.MaxX) * sx)),
			int(math.Round(float64(c.BBox.MaxY) * sy)),
		}

		norm := [4]float64{
			round4(float64(px[0]) / float64(origW)),
			round4(float64(px[1]) / float64(origH)),
			round4(float64(px[2]) / float64(origW)),
			round4(float64(px[3]) / float64(origH)),
		}
		if norm[0] >= norm[2] || norm[1] >= norm[3] {
			continue // degenerate after rounding
		}

		out = append(out, Room{
			ID:                    fmt.Sprintf("room_%03d", i),
			BoundingBoxNormalized: norm,
			BoundingBoxPx:         px,
			ConfidenceScore:       Confidence(c, medianArea),
			TypeHint:              typeHint(c, cfg),
			AreaNormalized:        round6((norm[2] - norm[0]) * (norm[3] - norm[1])),
		})
	}
	return out
}

// Confidence is the composite quality score for a candidate, in [0,1]:
// 30% rectangularity, 25% solidity, 25% size appropriateness, 20%
// compactness. Rounded to two decimals.
func Confidence(c regions.Candidate, medianArea float64) float64 {
	rect := clamp01(c.Extent)
	sol := clamp01(c.Solidity)

	// Triangular size score: 1.0 at the median candidate area, falling
	// linearly to 0 at zero and at twice the median.
	size := 0.5
	if medianArea > 0 {
		size = clamp01(1 - math.Abs(c.AreaPx-medianArea)/medianArea)
	}

	comp := 0.0
	if c.PerimeterPx > 0 {
		comp = clamp01(4 * math.Pi * c.AreaPx / (c.PerimeterPx * c.PerimeterPx))
	}

	score := weightRectangularity*rect +
		weightSolidity*sol +
		weightSize*size +
		weightCompactness*comp
	return math.Round(clamp01(score)*100) / 100
}

func typeHint(c regions.Candidate, cfg params.Config) string {
	if math.IsInf(c.AspectRatio, 0) || math.IsNaN(c.AspectRatio) {
		return TypeUnknown
	}
	if c.AspectRatio > cfg.HallwayAspect {
		return TypeHallway
	}
	return TypeRoom
}

// Denormalize maps a normalized box back to pixel coordinates on a target
// canvas, the inverse of the normalization applied by Build.
func Denormalize(norm [4]float64, targetW, targetH int) [4]int {
	return [4]int{
		int(math.Round(norm[0] * float64(targetW))),
		int(math.Round(norm[1] * float64(targetH))),
		int(math.Round(norm[2] * float64(targetW))),
		int(math.Round(norm[3] * float64(targetH))),
	}
}

func round4(v float64) float64 { return math.Round(v*10000) / 10000 }
func round6(v float64) float64 { return math.Round(v*1000000) / 1000000 }

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
