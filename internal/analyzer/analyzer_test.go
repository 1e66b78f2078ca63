package analyzer

import (
	"image"
	"image/color"
	"testing"
)

// newWhiteImage creates a white RGBA test image.
func newWhiteImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.White)
		}
	}
	return img
}

// fillRect paints a black axis-aligned rectangle, max-exclusive.
func fillRect(img *image.RGBA, x0, y0, x1, y1 int) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			img.Set(x, y, color.Black)
		}
	}
}

func TestAnalyzeRejectsTinyImage(t *testing.T) {
	img := newWhiteImage(50, 50)
	if _, err := Analyze(img); err == nil {
		t.Fatal("expected error for image below minimum pixel count")
	}
}

func TestAnalyzeWallThickness(t *testing.T) {
	// A grid of 4px bars. Every measurable dark run crosses a bar
	// perpendicular to the scan line, so the median run length is the bar
	// thickness exactly; runs along a bar span the whole image and are
	// excluded by the run cap.
	img := newWhiteImage(200, 200)
	for _, pos := range []int{40, 80, 120, 160} {
		fillRect(img, pos, 0, pos+4, 200) // vertical bars
		fillRect(img, 0, pos, 200, pos+4) // horizontal bars
	}

	ch, err := Analyze(img)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if ch.WallThicknessPx != 4 {
		t.Errorf("WallThicknessPx = %v, want 4", ch.WallThicknessPx)
	}
	if ch.LineDensity <= 0 {
		t.Errorf("LineDensity = %v, want > 0", ch.LineDensity)
	}
	if ch.Contrast <= 0 {
		t.Errorf("Contrast = %v, want > 0", ch.Contrast)
	}
}

func TestAnalyzeCleanLineworkScoresLowNoise(t *testing.T) {
	img := newWhiteImage(200, 200)
	fillRect(img, 20, 20, 28, 180)
	fillRect(img, 20, 20, 180, 28)
	fillRect(img, 172, 20, 180, 180)
	fillRect(img, 20, 172, 180, 180)

	ch, err := Analyze(img)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if ch.NoiseLevel > 0.1 {
		t.Errorf("NoiseLevel = %v for crisp linework, want <= 0.1", ch.NoiseLevel)
	}
}

func TestAnalyzeSpeckleScoresHighNoise(t *testing.T) {
	img := newWhiteImage(200, 200)
	// Deterministic salt-and-pepper speckle at roughly 5% density.
	seed := uint32(12345)
	for y := 0; y < 200; y++ {
		for x := 0; x < 200; x++ {
			seed = seed*1664525 + 1013904223
			if seed%100 < 5 {
				img.Set(x, y, color.Black)
			}
		}
	}

	ch, err := Analyze(img)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if ch.NoiseLevel <= 0.3 {
		t.Errorf("NoiseLevel = %v for speckled image, want > 0.3", ch.NoiseLevel)
	}
}

func TestAnalyzeUniformImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 150, 150))
	for y := 0; y < 150; y++ {
		for x := 0; x < 150; x++ {
			img.Set(x, y, color.Gray{Y: 128})
		}
	}

	ch, err := Analyze(img)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if ch.Contrast > 0.01 {
		t.Errorf("Contrast = %v for uniform image, want ~0", ch.Contrast)
	}
	// No dark runs to measure; the fallback thickness applies.
	if ch.WallThicknessPx != fallbackThicknessPx {
		t.Errorf("WallThicknessPx = %v, want fallback %v", ch.WallThicknessPx, fallbackThicknessPx)
	}
	if ch.NoiseLevel != 0 {
		t.Errorf("NoiseLevel = %v for uniform image, want 0", ch.NoiseLevel)
	}
}

func TestMedian9(t *testing.T) {
	m := median9([9]uint8{9, 1, 8, 2, 7, 3, 6, 4, 5})
	if m != 5 {
		t.Errorf("median9 = %d, want 5", m)
	}
	m = median9([9]uint8{0, 0, 0, 0, 0, 255, 255, 255, 255})
	if m != 0 {
		t.Errorf("median9 = %d, want 0", m)
	}
}
