package regions

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/mfuechec/RoomView/internal/params"
)

// minPopulationForScale is the smallest surviving population over which a
// median is considered reliable; below it, scale filtering is a no-op.
const minPopulationForScale = 4

// FilterShapes applies the per-candidate scalar filters. A candidate passes
// only if every geometric-quality threshold holds: area band, minimum
// bounding-box dimensions, solidity, extent, and aspect-ratio band.
func FilterShapes(cands []Candidate, cfg params.Config) []Candidate {
	out := make([]Candidate, 0, len(cands))
	for _, c := range cands {
		if c.AreaPx < cfg.MinRoomAreaPx || c.AreaPx > cfg.MaxRoomAreaPx {
			continue
		}
		if c.BBox.Width() < cfg.MinRoomDimPx || c.BBox.Height() < cfg.MinRoomDimPx {
			continue
		}
		if c.Solidity < cfg.MinSolidity {
			continue
		}
		if c.Extent < cfg.MinExtent {
			continue
		}
		if c.AspectRatio < cfg.MinAspectRatio || c.AspectRatio > cfg.MaxAspectRatio {
			continue
		}
		out = append(out, c)
	}
	return out
}

// FilterScale rejects statistical size outliers: candidates whose area falls
// below OutlierAreaFraction of the population median. This catches large
// furniture (beds, counters) that individually pass the scalar filters but
// are inconsistent with the size distribution of the blueprint's real rooms.
//
// With fewer than four candidates a reliable median cannot be estimated and
// the set passes through unchanged. The median is returned either way; the
// scorer uses it as the peak of its size-appropriateness curve.
func FilterScale(cands []Candidate, cfg params.Config) ([]Candidate, float64) {
	median := MedianArea(cands)
	if len(cands) < minPopulationForScale || cfg.OutlierAreaFraction <= 0 || median <= 0 {
		return cands, median
	}

	floor := cfg.OutlierAreaFraction * median
	out := make([]Candidate, 0, len(cands))
	for _, c := range cands {
		if c.AreaPx >= floor {
			out = append(out, c)
		}
	}
	return out, median
}

// MedianArea returns the median candidate area, or 0 for an empty set.
func MedianArea(cands []Candidate) float64 {
	if len(cands) == 0 {
		return 0
	}
	areas := make([]float64, len(cands))
	for i, c := range cands {
		areas[i] = c.AreaPx
	}
	sort.Float64s(areas)
	return stat.Quantile(0.5, stat.Empirical, areas, nil)
}
