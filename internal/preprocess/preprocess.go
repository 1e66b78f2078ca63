package preprocess

import (
	"image"

	"github.com/anthonynsimon/bild/blur"
	"github.com/disintegration/imaging"

	"github.com/mfuechec/RoomView/internal/params"
)

// Result is the output of the preprocessing pipeline: a binary ink bitmap at
// processed resolution plus the geometry needed to map detections back to the
// original image.
type Result struct {
	Bitmap *Bitmap

	// ScaleFactor is the ratio of original to processed resolution (>= 1;
	// images already within MaxDimension are not resized).
	ScaleFactor float64

	OrigW, OrigH int
	ProcW, ProcH int
}

// Run executes the full preprocessing chain: resize, grayscale, denoise,
// local contrast enhancement, Otsu binarization, and morphological cleanup.
// Each stage is a pure transform exposed on its own so it can be replaced or
// tested individually.
func Run(img image.Image, cfg params.Config) *Result {
	origW := img.Bounds().Dx()
	origH := img.Bounds().Dy()

	resized := ResizeToLimit(img, cfg.MaxDimension)
	procW := resized.Bounds().Dx()
	procH := resized.Bounds().Dy()

	denoised := Denoise(resized, cfg.DenoiseStrength)
	gray := ToGray(denoised)
	gray = EnhanceContrast(gray, procW, procH, cfg.ContrastClip)

	bitmap := Binarize(gray, procW, procH, Otsu(gray))
	bitmap = ApplyMorphology(bitmap, cfg)

	scale := 1.0
	if procH > 0 {
		scale = float64(origH) / float64(procH)
	}

	return &Result{
		Bitmap:      bitmap,
		ScaleFactor: scale,
		OrigW:       origW,
		OrigH:       origH,
		ProcW:       procW,
		ProcH:       procH,
	}
}

// ResizeToLimit scales the image down so its longest side does not exceed
// maxDimension, preserving aspect ratio. Smaller images pass through
// untouched; upscaling never happens.
func ResizeToLimit(img image.Image, maxDimension int) image.Image {
	b := img.Bounds()
	if maxDimension <= 0 || (b.Dx() <= maxDimension && b.Dy() <= maxDimension) {
		return img
	}
	return imaging.Fit(img, maxDimension, maxDimension, imaging.Lanczos)
}

// Denoise applies a Gaussian blur whose radius follows the configured
// strength (the 0-20 scale maps to roughly a 0-4 pixel radius). Strengths
// too small to produce a meaningful kernel pass the image through.
func Denoise(img image.Image, strength float64) image.Image {
	radius := strength / 5.0
	if radius < 0.5 {
		return img
	}
	return blur.Gaussian(img, radius)
}

// ToGray flattens an image to an 8-bit luminance buffer in row-major order.
func ToGray(img image.Image) []uint8 {
	g := imaging.Grayscale(img)
	b := g.Bounds()
	w, h := b.Dx(), b.Dy()
	out := make([]uint8, w*h)
	for y := 0; y < h; y++ {
		row := g.Pix[y*g.Stride : y*g.Stride+w*4]
		for x := 0; x < w; x++ {
			out[y*w+x] = row[x*4] // grayscale NRGBA has R == G == B
		}
	}
	return out
}

// ApplyMorphology runs the close → open → dilate sequence from the config.
// Ordering is load-bearing: close reconnects broken wall segments first, so
// the open step can erode furniture and fixture strokes without severing
// walls; the final dilate reinforces wall continuity.
func ApplyMorphology(b *Bitmap, cfg params.Config) *Bitmap {
	b = Close(b, cfg.MorphCloseSize)
	b = Open(b, cfg.MorphOpenSize)
	if cfg.MorphDilateSize > 1 {
		b = Dilate(b, cfg.MorphDilateSize)
	}
	return b
}
