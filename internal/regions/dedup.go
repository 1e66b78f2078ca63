package regions

import "sort"

// ResolveDuplicates removes overlapping candidates by non-maximum
// suppression on bounding-box IoU. Candidates are sorted by area descending
// and kept greedily: a candidate survives only if its IoU against every
// already-kept candidate is below the threshold, so larger, generally more
// complete detections win over fragments.
//
// The operation is idempotent: no surviving pair overlaps at or above the
// threshold, so a second pass returns the same set.
func ResolveDuplicates(cands []Candidate, iouThreshold float64) []Candidate {
	if len(cands) <= 1 {
		return cands
	}

	sorted := make([]Candidate, len(cands))
	copy(sorted, cands)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].AreaPx != sorted[j].AreaPx {
			return sorted[i].AreaPx > sorted[j].AreaPx
		}
		// Position tie-break keeps the order deterministic for equal areas.
		if sorted[i].BBox.MinY != sorted[j].BBox.MinY {
			return sorted[i].BBox.MinY < sorted[j].BBox.MinY
		}
		return sorted[i].BBox.MinX < sorted[j].BBox.MinX
	})

	kept := make([]Candidate, 0, len(sorted))
	for _, c := range sorted {
		duplicate := false
		for _, k := range kept {
			if IoU(c.BBox, k.BBox) >= iouThreshold {
				duplicate = true
				break
			}
		}
		if !duplicate {
			kept = append(kept, c)
		}
	}
	return kept
}
