package params

import (
	"math"

	"github.com/mfuechec/RoomView/internal/analyzer"
)

// Classification thresholds. Thick vs thin walls, dense vs sparse linework,
// noisy vs clean capture.
const (
	thickWallPx      = 8.0
	denseLinework    = 0.05
	noisyCapture     = 0.3
	veryDenseLines   = 0.08
	verySparseLines  = 0.03
)

// Classify maps measured blueprint characteristics to one of the six style
// buckets. Noise is checked first so a noisy scan is never mistaken for a
// line drawing; the thickness/density grid covers the rest. Every input maps
// to some style; StyleMixed is the fallback, never an error.
func Classify(ch analyzer.Characteristics) Style {
	if ch.NoiseLevel > noisyCapture {
		return StyleScanned
	}
	thick := ch.WallThicknessPx > thickWallPx
	dense := ch.LineDensity >= denseLinework
	switch {
	case thick && !dense:
		return StyleCleanCAD
	case thick && dense:
		return StyleDetailedCAD
	case !thick && !dense:
		return StyleSimpleLine
	case !thick && dense:
		return StyleDetailedLine
	}
	return StyleMixed
}

// Select produces the detection configuration for the given characteristics.
//
// The discrete style bucket picks a base configuration, then the raw
// measurements scale the thresholds continuously so behavior has no visible
// cliff at a bucket boundary: the minimum room area follows the square of the
// wall thickness, the open kernel follows line density, and the denoise
// strength follows the noise level.
func Select(ch analyzer.Characteristics) (Config, Style) {
	style := Classify(ch)
	c := baseForStyle(style)

	// Minimum room area scales with wall thickness squared: thicker walls
	// mean a coarser drawing scale, where even small rooms cover many pixels.
	areaScale := clamp(ch.WallThicknessPx*ch.WallThicknessPx/(thickWallPx*thickWallPx), 0.6, 1.5)
	c.MinRoomAreaPx = math.Round(c.MinRoomAreaPx * areaScale)

	// Open kernel grows with line density: busier drawings need more
	// aggressive sub-room detail removal.
	switch {
	case ch.LineDensity > veryDenseLines:
		c.MorphOpenSize = min(c.MorphOpenSize+2, 11)
	case ch.LineDensity < verySparseLines:
		c.MorphOpenSize = max(c.MorphOpenSize-2, 2)
	}

	// Denoise strength tracks measured noise on top of the bucket base.
	c.DenoiseStrength = clamp(c.DenoiseStrength*(0.5+ch.NoiseLevel), 2, 20)

	return c, style
}

func baseForStyle(style Style) Config {
	c := Default()
	switch style {
	case StyleCleanCAD:
		c.MorphOpenSize = 3
		c.MorphCloseSize = 7 // reconnect thick hollow wall outlines
		c.MinRoomAreaPx = 4000
		c.DenoiseStrength = 5
		c.MinSolidity = 0.2 // rooms may survive as hollow outlines
	case StyleDetailedCAD:
		c.MorphOpenSize = 9
		c.MinRoomAreaPx = 8000
		c.MinSolidity = 0.2
	case StyleSimpleLine:
		c.MorphOpenSize = 2 // do not erode thin walls
		c.MorphCloseSize = 5
		c.MinRoomAreaPx = 3000
		c.DenoiseStrength = 5
		c.MinSolidity = 0.3
	case StyleDetailedLine:
		c.MorphOpenSize = 5
		c.MorphCloseSize = 4
		c.MinSolidity = 0.3
	case StyleScanned:
		c.MorphOpenSize = 6
		c.DenoiseStrength = 15
		c.MinRoomAreaPx = 6000
		c.MinSolidity = 0.3
	default:
		c.MinSolidity = 0.3
	}
	return c
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
