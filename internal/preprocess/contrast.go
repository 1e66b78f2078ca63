package preprocess

// Local contrast enhancement in the CLAHE style: the image is divided into a
// grid of tiles, each tile gets a clip-limited histogram equalization lookup
// table, and every pixel is remapped by bilinearly interpolating the tables
// of its four nearest tile centers. Clipping keeps near-uniform tiles (empty
// background) from having their noise amplified into false structure.

const contrastTileGrid = 8

// EnhanceContrast returns a contrast-enhanced copy of the grayscale buffer.
// clipLimit is the histogram clip factor relative to a uniform distribution;
// values at or below zero disable enhancement.
func EnhanceContrast(gray []uint8, w, h int, clipLimit float64) []uint8 {
	if clipLimit <= 0 || w < contrastTileGrid || h < contrastTileGrid {
		out := make([]uint8, len(gray))
		copy(out, gray)
		return out
	}

	tileW := (w + contrastTileGrid - 1) / contrastTileGrid
	tileH := (h + contrastTileGrid - 1) / contrastTileGrid

	// Per-tile clipped equalization tables.
	luts := make([][256]uint8, contrastTileGrid*contrastTileGrid)
	for ty := 0; ty < contrastTileGrid; ty++ {
		for tx := 0; tx < contrastTileGrid; tx++ {
			x0, y0 := tx*tileW, ty*tileH
			x1, y1 := min(x0+tileW, w), min(y0+tileH, h)
			luts[ty*contrastTileGrid+tx] = tileLUT(gray, w, x0, y0, x1, y1, clipLimit)
		}
	}

	// Bilinear interpolation between neighboring tile tables.
	out := make([]uint8, len(gray))
	for y := 0; y < h; y++ {
		fy := (float64(y)+0.5)/float64(tileH) - 0.5
		ty0 := clampInt(int(fy), 0, contrastTileGrid-1)
		ty1 := clampInt(ty0+1, 0, contrastTileGrid-1)
		wy := fy - float64(ty0)
		if wy < 0 {
			wy = 0
		}
		for x := 0; x < w; x++ {
			fx := (float64(x)+0.5)/float64(tileW) - 0.5
			tx0 := clampInt(int(fx), 0, contrastTileGrid-1)
			tx1 := clampInt(tx0+1, 0, contrastTileGrid-1)
			wx := fx - float64(tx0)
			if wx < 0 {
				wx = 0
			}

			v := gray[y*w+x]
			v00 := float64(luts[ty0*contrastTileGrid+tx0][v])
			v01 := float64(luts[ty0*contrastTileGrid+tx1][v])
			v10 := float64(luts[ty1*contrastTileGrid+tx0][v])
			v11 := float64(luts[ty1*contrastTileGrid+tx1][v])

			top := v00*(1-wx) + v01*wx
			bot := v10*(1-wx) + v11*wx
			out[y*w+x] = uint8(top*(1-wy) + bot*wy + 0.5)
		}
	}
	return out
}

// tileLUT builds a clip-limited equalization table for one tile.
func tileLUT(gray []uint8, stride, x0, y0, x1, y1 int, clipLimit float64) [256]uint8 {
	var hist [256]int
	n := 0
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			hist[gray[y*stride+x]]++
			n++
		}
	}

	var lut [256]uint8
	if n == 0 {
		for i := range lut {
			lut[i] = uint8(i)
		}
		return lut
	}

	// Clip and redistribute the excess uniformly.
	limit := int(clipLimit * float64(n) / 256.0)
	if limit < 1 {
		limit = 1
	}
	excess := 0
	for i := range hist {
		if hist[i] > limit {
			excess += hist[i] - limit
			hist[i] = limit
		}
	}
	share := excess / 256
	for i := range hist {
		hist[i] += share
	}

	// Cumulative distribution to intensity map.
	cum := 0
	scale := 255.0 / float64(n)
	for i := range hist {
		cum += hist[i]
		v := float64(cum) * scale
		if v > 255 {
			v = 255
		}
		lut[i] = uint8(v)
	}
	return lut
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
