package pipeline

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mfuechec/RoomView/internal/analyzer"
	"github.com/mfuechec/RoomView/internal/params"
	"github.com/mfuechec/RoomView/internal/preprocess"
	"github.com/mfuechec/RoomView/internal/regions"
	"github.com/mfuechec/RoomView/internal/rooms"
)

// Result statuses. NoRegionsFound is a successful empty result, never an
// error: the caller gets a clean empty state to present with tuning
// suggestions instead of a crash.
const (
	StatusSuccess        = "success"
	StatusNoRegionsFound = "no_regions_found"
)

// Options control a single detection invocation.
type Options struct {
	// Preset names a manual-tuning configuration (see params.PresetNames)
	// that replaces the adaptively selected one.
	Preset string

	// Config, when non-nil, overrides everything including the preset.
	Config *params.Config

	// Budget is the wall-clock allowance for the whole pipeline. The
	// pipeline checks elapsed time between stages and aborts with a
	// TimeoutError before exceeding it. Zero means no limit.
	Budget time.Duration
}

// Result is the output contract handed to the transport layer: the ordered
// room list plus measurement metadata. The caller owns it.
type Result struct {
	Status          string                   `json:"status"`
	Rooms           []rooms.Room             `json:"rooms"`
	TotalRooms      int                      `json:"total_rooms_detected"`
	Style           params.Style             `json:"blueprint_style"`
	Characteristics *analyzer.Characteristics `json:"characteristics,omitempty"`
	Config          params.Config            `json:"config"`
	ImageWidth      int                      `json:"image_width"`
	ImageHeight     int                      `json:"image_height"`
	ScaleFactor     float64                  `json:"scale_factor"`
	ProcessingTime  time.Duration            `json:"-"`
}

// Detect runs the full adaptive detection pipeline on one decoded image.
//
// The computation is synchronous, stateless and free of I/O: every data
// structure is local to the call, so any number of invocations may run
// concurrently. Identical input and configuration yield byte-identical
// output; no stage uses randomness.
func Detect(ctx context.Context, img image.Image, opts Options) (*Result, error) {
	start := time.Now()
	log := logrus.WithField("component", "pipeline")

	if img == nil {
		return nil, fmt.Errorf("%w: nil image", ErrInvalidImage)
	}
	bounds := img.Bounds()
	if bounds.Dx()*bounds.Dy() < analyzer.MinPixels {
		return nil, fmt.Errorf("%w: %dx%d below minimum pixel count %d",
			ErrInvalidImage, bounds.Dx(), bounds.Dy(), analyzer.MinPixels)
	}

	deadline := newBudget(start, opts.Budget, ctx)

	// Stage 1: measure blueprint characteristics at working resolution.
	working := preprocess.ResizeToLimit(img, params.Default().MaxDimension)
	ch, err := analyzer.Analyze(working)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	if stage := deadline.exceeded("analyze"); stage != nil {
		return nil, &TimeoutError{Stage: stage.name, Characteristics: &ch}
	}

	// Stage 2: select a configuration, adaptive unless overridden.
	cfg, style := selectConfig(ch, opts)
	log.WithFields(logrus.Fields{
		"style":          style,
		"wall_thickness": ch.WallThicknessPx,
		"line_density":   ch.LineDensity,
		"noise":          ch.NoiseLevel,
	}).Debug("blueprint analyzed")
	if stage := deadline.exceeded("select"); stage != nil {
		return nil, &TimeoutError{Stage: stage.name, Characteristics: &ch}
	}

	// Stage 3: preprocess to a binary ink bitmap.
	pre := preprocess.Run(img, cfg)
	if stage := deadline.exceeded("preprocess"); stage != nil {
		return nil, &TimeoutError{Stage: stage.name, Characteristics: &ch}
	}

	// Stage 4: containment tree and room candidates.
	tree := regions.BuildTree(pre.Bitmap)
	cands := regions.ExtractCandidates(tree, cfg)
	log.WithFields(logrus.Fields{
		"regions":    len(tree.Nodes),
		"candidates": len(cands),
	}).Debug("containment tree built")
	if stage := deadline.exceeded("detect"); stage != nil {
		return nil, &TimeoutError{Stage: stage.name, Characteristics: &ch}
	}

	// Stage 5: shape and scale filtering.
	cands = regions.FilterShapes(cands, cfg)
	cands, medianArea := regions.FilterScale(cands, cfg)
	if stage := deadline.exceeded("filter"); stage != nil {
		return nil, &TimeoutError{Stage: stage.name, Characteristics: &ch}
	}

	// Stage 6: duplicate suppression.
	cands = regions.ResolveDuplicates(cands, cfg.IoUMergeThreshold)
	if stage := deadline.exceeded("dedup"); stage != nil {
		return nil, &TimeoutError{Stage: stage.name, Characteristics: &ch}
	}

	// Stage 7: normalize and score.
	list := rooms.Build(cands, medianArea, pre.ProcW, pre.ProcH, pre.OrigW, pre.OrigH, cfg)

	status := StatusSuccess
	if len(list) == 0 {
		status = StatusNoRegionsFound
	}

	elapsed := time.Since(start)
	log.WithFields(logrus.Fields{
		"status":  status,
		"rooms":   len(list),
		"elapsed": elapsed,
	}).Info("detection complete")

	return &Result{
		Status:          status,
		Rooms:           list,
		TotalRooms:      len(list),
		Style:           style,
		Characteristics: &ch,
		Config:          cfg,
		ImageWidth:      pre.OrigW,
		ImageHeight:     pre.OrigH,
		ScaleFactor:     pre.ScaleFactor,
		ProcessingTime:  elapsed,
	}, nil
}

// selectConfig resolves the configuration precedence: explicit config
// override, then named preset, then full adaptive selection.
func selectConfig(ch analyzer.Characteristics, opts Options) (params.Config, params.Style) {
	style := params.Classify(ch)
	if opts.Config != nil {
		return *opts.Config, style
	}
	if opts.Preset != "" {
		if cfg, ok := params.Preset(opts.Preset); ok {
			return cfg, style
		}
	}
	return params.Select(ch)
}

// budget tracks the elapsed-time allowance checked between stages.
type budget struct {
	start time.Time
	limit time.Duration
	ctx   context.Context
}

type exceededStage struct{ name string }

func newBudget(start time.Time, limit time.Duration, ctx context.Context) *budget {
	return &budget{start: start, limit: limit, ctx: ctx}
}

// exceeded returns a non-nil stage marker when the budget or context is
// spent, naming the stage that just completed.
func (b *budget) exceeded(stage string) *exceededStage {
	if b.ctx != nil {
		select {
		case <-b.ctx.Done():
			return &exceededStage{name: stage}
		default:
		}
	}
	if b.limit > 0 && time.Since(b.start) > b.limit {
		return &exceededStage{name: stage}
	}
	return nil
}
