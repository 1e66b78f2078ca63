package params

// Style is a coarse classification of a blueprint's visual characteristics,
// used to pick a base detection configuration.
type Style string

const (
	StyleCleanCAD     Style = "clean_cad"
	StyleDetailedCAD  Style = "detailed_cad"
	StyleSimpleLine   Style = "simple_line"
	StyleDetailedLine Style = "detailed_line"
	StyleScanned      Style = "scanned"
	StyleMixed        Style = "mixed"
)

// Config holds every tunable used by the detection pipeline.
//
// A Config is produced once per invocation (adaptively, from a preset, or from
// caller overrides) and passed by value through every stage. It is never
// mutated after creation; derive a new value instead of patching one, so
// concurrent invocations cannot interfere and tests can inject arbitrary
// configurations.
type Config struct {
	// Preprocessing.
	MaxDimension    int     `json:"max_dimension"`    // longest side after resize
	DenoiseStrength float64 `json:"denoise_strength"` // 0-20, higher = more smoothing
	ContrastClip    float64 `json:"contrast_clip"`    // histogram clip limit for local contrast
	MorphCloseSize  int     `json:"morph_close_size"` // close wall gaps
	MorphOpenSize   int     `json:"morph_open_size"`  // strip sub-room detail
	MorphDilateSize int     `json:"morph_dilate_size"`

	// Candidate size constraints, in pixels at processed resolution.
	MinRoomAreaPx  float64 `json:"min_room_area_px"`
	MaxRoomAreaPx  float64 `json:"max_room_area_px"`
	MinRoomDimPx   int     `json:"min_room_dimension_px"`
	MinAreaRatio   float64 `json:"min_area_ratio_to_parent"`
	MaxAreaRatio   float64 `json:"max_area_ratio_to_parent"`

	// Shape quality.
	MinSolidity    float64 `json:"min_solidity"`
	MinExtent      float64 `json:"min_extent"`
	MinAspectRatio float64 `json:"min_aspect_ratio"`
	MaxAspectRatio float64 `json:"max_aspect_ratio"`
	HallwayAspect  float64 `json:"hallway_aspect_ratio"` // type hint boundary

	// Duplicate and outlier suppression.
	IoUMergeThreshold   float64 `json:"iou_merge_threshold"`
	OutlierAreaFraction float64 `json:"outlier_area_fraction"` // reject < fraction*median

	MaxRooms int `json:"max_rooms"`
}

// Default returns the conservative baseline configuration. Every style bucket
// and preset starts from this value.
func Default() Config {
	return Config{
		MaxDimension:        2000,
		DenoiseStrength:     10,
		ContrastClip:        2.0,
		MorphCloseSize:      3,
		MorphOpenSize:       5,
		MorphDilateSize:     2,
		MinRoomAreaPx:       5000,
		MaxRoomAreaPx:       500000,
		MinRoomDimPx:        50,
		MinAreaRatio:        0.05,
		MaxAreaRatio:        0.85,
		MinSolidity:         0.6,
		MinExtent:           0.5,
		MinAspectRatio:      0.2,
		MaxAspectRatio:      8.0,
		HallwayAspect:       4.0,
		IoUMergeThreshold:   0.7,
		OutlierAreaFraction: 0.25,
		MaxRooms:            50,
	}
}

// Presets are the named manual-tuning configurations callers may request
// instead of adaptive analysis.
var presets = map[string]func() Config{
	"clean_cad": func() Config {
		c := Default()
		c.MorphOpenSize = 3
		c.MorphCloseSize = 7
		c.MinRoomAreaPx = 4000
		c.DenoiseStrength = 5
		c.MinSolidity = 0.2
		return c
	},
	"detailed_cad": func() Config {
		c := Default()
		c.MorphOpenSize = 9
		c.MinRoomAreaPx = 8000
		c.MinSolidity = 0.2
		c.MinAreaRatio = 0.10
		return c
	},
	"scanned": func() Config {
		c := Default()
		c.DenoiseStrength = 15
		c.MorphOpenSize = 6
		c.MinRoomAreaPx = 6000
		c.MinSolidity = 0.3
		return c
	},
	"hand_drawn": func() Config {
		c := Default()
		c.MorphOpenSize = 4
		c.MinRoomAreaPx = 4000
		c.MinSolidity = 0.3
		c.MinExtent = 0.4
		return c
	},
}

// Preset returns the named configuration, or ok=false if the name is unknown.
func Preset(name string) (Config, bool) {
	f, ok := presets[name]
	if !ok {
		return Config{}, false
	}
	return f(), true
}

// PresetNames lists the available preset names in stable order.
func PresetNames() []string {
	return []string{"clean_cad", "detailed_cad", "scanned", "hand_drawn"}
}
