package analyzer

// Characteristics holds the measured properties of a blueprint image.
//
// Values are computed once per image by Analyze and are immutable afterwards;
// the parameter selector is their only consumer.
type Characteristics struct {
	// WallThicknessPx is the robust (median) width of dark line runs,
	// in pixels at the analyzed resolution.
	WallThicknessPx float64 `json:"wall_thickness_px"`

	// LineDensity is the fraction of pixels that are edge pixels, in [0,1].
	// High density means furniture, fixtures and annotations; low density
	// means clean walls only.
	LineDensity float64 `json:"line_density"`

	// Contrast is the normalized intensity spread (stddev / 128).
	Contrast float64 `json:"contrast"`

	// NoiseLevel is the normalized high-frequency variance remaining after a
	// reference smoothing pass, in [0,1]. Scanned or photographed blueprints
	// score high.
	NoiseLevel float64 `json:"noise_level"`
}
