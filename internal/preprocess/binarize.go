package preprocess

// Otsu computes the global binarization threshold that maximizes
// between-class variance of the grayscale histogram. Wall/background contrast
// varies widely across blueprint styles, so a fixed constant is never used.
//
// For a degenerate (single-valued) histogram it falls back to 127 so a blank
// white image stays background and a blank black image stays ink.
func Otsu(gray []uint8) uint8 {
	var hist [256]int
	for _, v := range gray {
		hist[v]++
	}
	total := len(gray)
	if total == 0 {
		return 127
	}

	var sum float64
	for i, c := range hist {
		sum += float64(i) * float64(c)
	}

	var sumB, wB float64
	bestVar := -1.0
	threshold := 127
	for t := 0; t < 256; t++ {
		wB += float64(hist[t])
		if wB == 0 {
			continue
		}
		wF := float64(total) - wB
		if wF == 0 {
			break
		}
		sumB += float64(t) * float64(hist[t])
		mB := sumB / wB
		mF := (sum - sumB) / wF
		between := wB * wF * (mB - mF) * (mB - mF)
		if between > bestVar {
			bestVar = between
			threshold = t
		}
	}
	if bestVar <= 0 {
		return 127
	}
	return uint8(threshold)
}

// Binarize thresholds a grayscale buffer into an ink bitmap: pixels at or
// below the threshold become ink (walls are dark), the rest background.
func Binarize(gray []uint8, w, h int, threshold uint8) *Bitmap {
	b := NewBitmap(w, h)
	for i, v := range gray {
		if v <= threshold {
			b.Pix[i] = 1
		}
	}
	return b
}
