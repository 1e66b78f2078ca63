package analyzer

import (
	"fmt"
	"image"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// MinPixels is the smallest image the analyzer accepts (100x100 equivalent).
const MinPixels = 10000

// Measurement tunables. The edge gradient threshold matches the one used for
// shape detection; the run cap keeps filled areas (title blocks, solid
// shading) out of the wall-thickness sample.
const (
	edgeGradientThreshold = 30.0
	maxWallRunPx          = 40
	fallbackThicknessPx   = 5.0
	noiseNormalization    = 1000.0
)

// Analyze measures wall thickness, line density, contrast and noise from a
// raw blueprint image. It is a pure function of its input: no side effects,
// no retained state.
//
// It fails only when the image carries fewer than MinPixels pixels, which is
// too little signal for any of the measurements to be meaningful.
func Analyze(img image.Image) (Characteristics, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w*h < MinPixels {
		return Characteristics{}, fmt.Errorf("image too small for analysis: %dx%d (%d px, need %d)", w, h, w*h, MinPixels)
	}

	gray := toGray(img)

	mean, stddev := meanStddev(gray)

	return Characteristics{
		WallThicknessPx: wallThickness(gray, w, h, darkThreshold(mean)),
		LineDensity:     lineDensity(gray, w, h),
		Contrast:        stddev / 128.0,
		NoiseLevel:      noiseLevel(gray, w, h),
	}, nil
}

// toGray converts to 8-bit luminance using ITU-R BT.601 weights.
func toGray(img image.Image) []uint8 {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	gray := make([]uint8, w*h)
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			gray[i] = uint8(float64(r>>8)*0.299 + float64(g>>8)*0.587 + float64(b>>8)*0.114)
			i++
		}
	}
	return gray
}

func meanStddev(gray []uint8) (float64, float64) {
	var sum, sumSq float64
	for _, v := range gray {
		f := float64(v)
		sum += f
		sumSq += f * f
	}
	n := float64(len(gray))
	mean := sum / n
	variance := sumSq/n - mean*mean
	if variance < 0 {
		variance = 0
	}
	return mean, math.Sqrt(variance)
}

// darkThreshold picks the ink/background cutoff relative to the image mean,
// clamped so both very light and very dark scans still separate.
func darkThreshold(mean float64) uint8 {
	t := mean * 0.6
	if t < 40 {
		t = 40
	}
	if t > 160 {
		t = 160
	}
	return uint8(t)
}

// wallThickness measures dark-run lengths along horizontal and vertical scan
// lines and takes the median. Runs longer than maxWallRunPx are filled areas,
// not walls, and are excluded from the sample.
func wallThickness(gray []uint8, w, h int, dark uint8) float64 {
	runs := make([]float64, 0, 1024)

	// Horizontal scan lines.
	for y := 0; y < h; y++ {
		run := 0
		for x := 0; x < w; x++ {
			if gray[y*w+x] < dark {
				run++
				continue
			}
			if run > 0 && run <= maxWallRunPx {
				runs = append(runs, float64(run))
			}
			run = 0
		}
		if run > 0 && run <= maxWallRunPx {
			runs = append(runs, float64(run))
		}
	}

	// Vertical scan lines.
	for x := 0; x < w; x++ {
		run := 0
		for y := 0; y < h; y++ {
			if gray[y*w+x] < dark {
				run++
				continue
			}
			if run > 0 && run <= maxWallRunPx {
				runs = append(runs, float64(run))
			}
			run = 0
		}
		if run > 0 && run <= maxWallRunPx {
			runs = append(runs, float64(run))
		}
	}

	if len(runs) == 0 {
		return fallbackThicknessPx
	}
	sort.Float64s(runs)
	return stat.Quantile(0.5, stat.Empirical, runs, nil)
}

// lineDensity is the fraction of pixels that sit on an intensity edge.
func lineDensity(gray []uint8, w, h int) float64 {
	edges := 0
	for y := 0; y < h-1; y++ {
		for x := 0; x < w-1; x++ {
			c := float64(gray[y*w+x])
			dx := math.Abs(c - float64(gray[y*w+x+1]))
			dy := math.Abs(c - float64(gray[(y+1)*w+x]))
			if dx > edgeGradientThreshold || dy > edgeGradientThreshold {
				edges++
			}
		}
	}
	return float64(edges) / float64(w*h)
}

// noiseLevel is the variance of the high-frequency residual left after a 3x3
// median smoothing pass, normalized to [0,1]. The median is the reference
// smoother because it preserves line structure: crisp CAD linework leaves no
// residual and scores near zero, while scanner speckle is suppressed by the
// median and shows up fully in the residual.
func noiseLevel(gray []uint8, w, h int) float64 {
	var sum, sumSq float64
	n := 0
	var window [9]uint8
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			k := 0
			for ky := -1; ky <= 1; ky++ {
				for kx := -1; kx <= 1; kx++ {
					window[k] = gray[(y+ky)*w+x+kx]
					k++
				}
			}
			residual := float64(gray[y*w+x]) - float64(median9(window))
			sum += residual
			sumSq += residual * residual
			n++
		}
	}
	if n == 0 {
		return 0
	}
	mean := sum / float64(n)
	variance := sumSq/float64(n) - mean*mean
	if variance < 0 {
		variance = 0
	}
	return math.Min(variance/noiseNormalization, 1.0)
}

// median9 returns the median of a 3x3 window by insertion sort; the window
// is tiny enough that this beats any cleverer scheme.
func median9(w [9]uint8) uint8 {
	for i := 1; i < len(w); i++ {
		v := w[i]
		j := i - 1
		for j >= 0 && w[j] > v {
			w[j+1] = w[j]
			j--
		}
		w[j+1] = v
	}
	return w[4]
}
