package preprocess

import (
	"image"
	"image/color"
	"testing"

	"github.com/mfuechec/RoomView/internal/params"
)

func newWhiteImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.White)
		}
	}
	return img
}

func fillRect(img *image.RGBA, x0, y0, x1, y1 int) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			img.Set(x, y, color.Black)
		}
	}
}

func TestResizeToLimitDownscales(t *testing.T) {
	img := newWhiteImage(4000, 2000)
	out := ResizeToLimit(img, 2000)
	if out.Bounds().Dx() != 2000 || out.Bounds().Dy() != 1000 {
		t.Errorf("resized to %dx%d, want 2000x1000", out.Bounds().Dx(), out.Bounds().Dy())
	}
}

func TestResizeToLimitPassesSmallImagesThrough(t *testing.T) {
	img := newWhiteImage(300, 200)
	out := ResizeToLimit(img, 2000)
	if out != image.Image(img) {
		t.Error("small image should pass through without copying")
	}
}

func TestOtsuSplitsBimodalHistogram(t *testing.T) {
	gray := make([]uint8, 10000)
	for i := range gray {
		if i < 5000 {
			gray[i] = 50
		} else {
			gray[i] = 200
		}
	}
	th := Otsu(gray)
	if th < 50 || th >= 200 {
		t.Errorf("Otsu = %d, want within [50, 200)", th)
	}

	b := Binarize(gray, 100, 100, th)
	if got := b.InkCount(); got != 5000 {
		t.Errorf("ink count = %d, want 5000", got)
	}
}

func TestOtsuDegenerateHistogramFallsBack(t *testing.T) {
	gray := make([]uint8, 10000)
	for i := range gray {
		gray[i] = 255
	}
	if th := Otsu(gray); th != 127 {
		t.Errorf("Otsu on uniform white = %d, want 127 fallback", th)
	}

	// The fallback keeps a blank white page free of ink.
	b := Binarize(gray, 100, 100, 127)
	if got := b.InkCount(); got != 0 {
		t.Errorf("blank page ink count = %d, want 0", got)
	}
}

func TestEnhanceContrastPreservesInkBackgroundSeparation(t *testing.T) {
	// Left half black, right half white. Whatever the equalization does,
	// ink must stay darker than background or binarization breaks.
	w, h := 256, 256
	gray := make([]uint8, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x >= w/2 {
				gray[y*w+x] = 255
			}
		}
	}

	out := EnhanceContrast(gray, w, h, 2.0)
	var maxDark, minLight uint8 = 0, 255
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := out[y*w+x]
			if x < w/2 {
				if v > maxDark {
					maxDark = v
				}
			} else if v < minLight {
				minLight = v
			}
		}
	}
	if maxDark >= minLight {
		t.Errorf("separation lost: brightest ink %d >= darkest background %d", maxDark, minLight)
	}
}

func TestEnhanceContrastDisabled(t *testing.T) {
	gray := []uint8{10, 20, 30, 40}
	out := EnhanceContrast(gray, 2, 2, 0)
	for i := range gray {
		if out[i] != gray[i] {
			t.Fatalf("clipLimit 0 must be a no-op, got %v", out)
		}
	}
}

func TestDenoiseSkipsWeakStrength(t *testing.T) {
	img := newWhiteImage(50, 50)
	if out := Denoise(img, 1.0); out != image.Image(img) {
		t.Error("sub-kernel strength should pass the image through")
	}
}

func TestToGray(t *testing.T) {
	img := newWhiteImage(20, 10)
	fillRect(img, 0, 0, 10, 10)
	gray := ToGray(img)
	if len(gray) != 200 {
		t.Fatalf("len = %d, want 200", len(gray))
	}
	if gray[5] > 10 {
		t.Errorf("black pixel = %d, want near 0", gray[5])
	}
	if gray[15] < 245 {
		t.Errorf("white pixel = %d, want near 255", gray[15])
	}
}

func TestRunProducesScaledBitmap(t *testing.T) {
	img := newWhiteImage(400, 400)
	// Closed square of 10px walls.
	fillRect(img, 20, 20, 380, 30)
	fillRect(img, 20, 370, 380, 380)
	fillRect(img, 20, 20, 30, 380)
	fillRect(img, 370, 20, 380, 380)

	cfg := params.Default()
	cfg.DenoiseStrength = 0

	res := Run(img, cfg)
	if res.OrigW != 400 || res.OrigH != 400 {
		t.Errorf("original dims = %dx%d, want 400x400", res.OrigW, res.OrigH)
	}
	if res.ProcW != 400 || res.ProcH != 400 {
		t.Errorf("processed dims = %dx%d, want unchanged 400x400", res.ProcW, res.ProcH)
	}
	if res.ScaleFactor != 1.0 {
		t.Errorf("scale factor = %v, want 1.0", res.ScaleFactor)
	}
	if res.Bitmap.InkCount() == 0 {
		t.Error("walls vanished during preprocessing")
	}
	// Wall pixel well inside a band survives morphology.
	if !res.Bitmap.At(200, 25) {
		t.Error("expected ink at (200,25) inside the top wall band")
	}
	// Room interior stays background.
	if res.Bitmap.At(200, 200) {
		t.Error("unexpected ink in the room interior")
	}
}
