package params

import (
	"testing"

	"github.com/mfuechec/RoomView/internal/analyzer"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		ch   analyzer.Characteristics
		want Style
	}{
		{"noisy scan beats linework grid", analyzer.Characteristics{WallThicknessPx: 10, LineDensity: 0.02, NoiseLevel: 0.5}, StyleScanned},
		{"thick sparse", analyzer.Characteristics{WallThicknessPx: 10, LineDensity: 0.02}, StyleCleanCAD},
		{"thick dense", analyzer.Characteristics{WallThicknessPx: 10, LineDensity: 0.08}, StyleDetailedCAD},
		{"thin sparse", analyzer.Characteristics{WallThicknessPx: 4, LineDensity: 0.02}, StyleSimpleLine},
		{"thin dense", analyzer.Characteristics{WallThicknessPx: 4, LineDensity: 0.08}, StyleDetailedLine},
		{"boundary thickness is thin", analyzer.Characteristics{WallThicknessPx: 8, LineDensity: 0.02}, StyleSimpleLine},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.ch); got != tt.want {
				t.Errorf("Classify(%+v) = %v, want %v", tt.ch, got, tt.want)
			}
		})
	}
}

func TestSelectScalesAreaWithWallThickness(t *testing.T) {
	thin := analyzer.Characteristics{WallThicknessPx: 9, LineDensity: 0.04}
	thick := analyzer.Characteristics{WallThicknessPx: 11, LineDensity: 0.04}

	cfgThin, styleThin := Select(thin)
	cfgThick, styleThick := Select(thick)

	if styleThin != StyleCleanCAD || styleThick != StyleCleanCAD {
		t.Fatalf("styles = %v, %v, want both clean_cad", styleThin, styleThick)
	}
	if cfgThick.MinRoomAreaPx <= cfgThin.MinRoomAreaPx {
		t.Errorf("MinRoomAreaPx did not grow with wall thickness: %v vs %v",
			cfgThin.MinRoomAreaPx, cfgThick.MinRoomAreaPx)
	}
}

func TestSelectOpenKernelFollowsLineDensity(t *testing.T) {
	base := analyzer.Characteristics{WallThicknessPx: 10, LineDensity: 0.06}
	sparse := analyzer.Characteristics{WallThicknessPx: 10, LineDensity: 0.02}
	dense := analyzer.Characteristics{WallThicknessPx: 10, LineDensity: 0.09}

	// Same thickness keeps sparse in a different bucket; compare within the
	// dense CAD bucket only where the base open size is shared.
	cfgBase, _ := Select(base)
	cfgDense, _ := Select(dense)
	if cfgDense.MorphOpenSize <= cfgBase.MorphOpenSize {
		t.Errorf("MorphOpenSize did not grow with density: %d vs %d",
			cfgBase.MorphOpenSize, cfgDense.MorphOpenSize)
	}

	cfgSparse, style := Select(sparse)
	if style != StyleCleanCAD {
		t.Fatalf("style = %v, want clean_cad", style)
	}
	if cfgSparse.MorphOpenSize >= cfgBase.MorphOpenSize {
		t.Errorf("sparse MorphOpenSize = %d, want below dense-bucket %d",
			cfgSparse.MorphOpenSize, cfgBase.MorphOpenSize)
	}
}

func TestSelectDenoiseTracksNoise(t *testing.T) {
	calm := analyzer.Characteristics{WallThicknessPx: 10, LineDensity: 0.02, NoiseLevel: 0.4}
	wild := analyzer.Characteristics{WallThicknessPx: 10, LineDensity: 0.02, NoiseLevel: 0.9}

	cfgCalm, _ := Select(calm)
	cfgWild, _ := Select(wild)
	if cfgWild.DenoiseStrength <= cfgCalm.DenoiseStrength {
		t.Errorf("DenoiseStrength did not grow with noise: %v vs %v",
			cfgCalm.DenoiseStrength, cfgWild.DenoiseStrength)
	}
	if cfgWild.DenoiseStrength > 20 {
		t.Errorf("DenoiseStrength = %v exceeds cap", cfgWild.DenoiseStrength)
	}
}

func TestSelectAlwaysProducesConfig(t *testing.T) {
	// Zero-valued characteristics still map to a usable configuration.
	cfg, style := Select(analyzer.Characteristics{})
	if style == "" {
		t.Error("empty style for zero characteristics")
	}
	if cfg.MinRoomAreaPx <= 0 || cfg.MaxDimension <= 0 {
		t.Errorf("implausible config: %+v", cfg)
	}
}

func TestPreset(t *testing.T) {
	for _, name := range PresetNames() {
		if _, ok := Preset(name); !ok {
			t.Errorf("Preset(%q) not found", name)
		}
	}
	if _, ok := Preset("bogus"); ok {
		t.Error("Preset(\"bogus\") unexpectedly found")
	}
}

func TestDefaultIsSane(t *testing.T) {
	c := Default()
	if c.MinAreaRatio >= c.MaxAreaRatio {
		t.Errorf("area ratio band inverted: %v >= %v", c.MinAreaRatio, c.MaxAreaRatio)
	}
	if c.MinRoomAreaPx >= c.MaxRoomAreaPx {
		t.Errorf("room area band inverted: %v >= %v", c.MinRoomAreaPx, c.MaxRoomAreaPx)
	}
	if c.IoUMergeThreshold <= 0 || c.IoUMergeThreshold > 1 {
		t.Errorf("IoUMergeThreshold = %v out of range", c.IoUMergeThreshold)
	}
}
