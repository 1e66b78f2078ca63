package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/mfuechec/RoomView/internal/labels"
	"github.com/mfuechec/RoomView/internal/overlay"
	"github.com/mfuechec/RoomView/internal/params"
	"github.com/mfuechec/RoomView/internal/pipeline"
	"github.com/mfuechec/RoomView/internal/rooms"
)

// DetectResponse is the JSON body returned for a successful detection run,
// including runs that found no rooms.
type DetectResponse struct {
	Status           string            `json:"status"`
	ProcessingTimeMs int64             `json:"processing_time_ms"`
	ImageDimensions  Dimensions        `json:"image_dimensions"`
	TotalRooms       int               `json:"total_rooms_detected"`
	Metadata         DetectionMetadata `json:"detection_metadata"`
	Rooms            []rooms.Room      `json:"rooms"`
	Suggestions      []string          `json:"suggestions,omitempty"`
	DebugOverlay     *overlay.Result   `json:"debug_overlay,omitempty"`
}

// Dimensions reports the source image size in pixels.
type Dimensions struct {
	WidthPixels  int `json:"width_pixels"`
	HeightPixels int `json:"height_pixels"`
}

// DetectionMetadata summarizes how the pipeline interpreted the upload.
type DetectionMetadata struct {
	BlueprintStyle    string  `json:"blueprint_style"`
	AverageConfidence float64 `json:"average_confidence"`
}

// ErrorResponse is the JSON body returned for request failures.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func (s *Server) routes() {
	s.engine.GET("/health", s.handleHealth)
	s.engine.GET("/presets", s.handlePresets)
	s.engine.POST("/detect", s.handleDetect)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "available",
		"version": s.version,
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handlePresets(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"presets": params.PresetNames()})
}

// handleDetect accepts a floor plan as a multipart "image" field or as a raw
// request body and runs room detection on it.
func (s *Server) handleDetect(c *gin.Context) {
	start := time.Now()
	log := logrus.WithFields(logrus.Fields{
		"component": "server",
		"ip":        c.ClientIP(),
	})

	data, err := readUpload(c)
	if err != nil {
		log.WithError(err).Warn("Failed to read upload")
		respondError(c, http.StatusBadRequest, "failed to read upload", err)
		return
	}

	img, format, err := validateUpload(data, s.cfg.MinUploadBytes, s.cfg.MaxUploadBytes)
	if err != nil {
		log.WithError(err).Warn("Upload rejected")
		respondError(c, http.StatusBadRequest, "invalid upload", err)
		return
	}

	opts := pipeline.Options{Budget: s.cfg.DetectTimeout}
	if preset := c.Query("preset"); preset != "" {
		if _, ok := params.Preset(preset); !ok {
			respondError(c, http.StatusBadRequest, "unknown preset",
				fmt.Errorf("preset %q not recognized, see GET /presets", preset))
			return
		}
		opts.Preset = preset
	}

	log.WithFields(logrus.Fields{
		"format": format,
		"bytes":  len(data),
		"preset": opts.Preset,
	}).Info("Processing detection request")

	result, err := pipeline.Detect(c.Request.Context(), img, opts)
	if err != nil {
		s.respondPipelineError(c, log, err)
		return
	}

	if c.Query("labels") == "true" && len(result.Rooms) > 0 {
		if lerr := labels.Annotate(img, result.Rooms, labels.Options{}); lerr != nil {
			// Labels are best-effort. Keep the detection result.
			log.WithError(lerr).Warn("Room label recognition unavailable")
		}
	}

	resp := DetectResponse{
		Status:           result.Status,
		ProcessingTimeMs: time.Since(start).Milliseconds(),
		ImageDimensions: Dimensions{
			WidthPixels:  result.ImageWidth,
			HeightPixels: result.ImageHeight,
		},
		TotalRooms: len(result.Rooms),
		Metadata: DetectionMetadata{
			BlueprintStyle:    string(result.Style),
			AverageConfidence: averageConfidence(result.Rooms),
		},
		Rooms: result.Rooms,
	}

	if result.Status == pipeline.StatusNoRegionsFound {
		resp.Suggestions = buildSuggestions(result)
	}

	if c.Query("debug") == "true" && len(result.Rooms) > 0 {
		ov, oerr := overlay.Render(img, result.Rooms)
		if oerr != nil {
			log.WithError(oerr).Warn("Failed to render debug overlay")
		} else {
			resp.DebugOverlay = ov
		}
	}

	log.WithFields(logrus.Fields{
		"status":             resp.Status,
		"rooms":              resp.TotalRooms,
		"style":              resp.Metadata.BlueprintStyle,
		"processing_time_ms": resp.ProcessingTimeMs,
	}).Info("Detection request completed")

	c.JSON(http.StatusOK, resp)
}

func (s *Server) respondPipelineError(c *gin.Context, log *logrus.Entry, err error) {
	switch {
	case errors.Is(err, pipeline.ErrInvalidImage):
		log.WithError(err).Warn("Image rejected by pipeline")
		respondError(c, http.StatusBadRequest, "invalid image", err)
	case errors.Is(err, pipeline.ErrTimeout):
		log.WithError(err).Error("Detection timed out")
		respondError(c, http.StatusGatewayTimeout, "detection timed out, try a smaller image", err)
	default:
		log.WithError(err).Error("Detection failed")
		respondError(c, http.StatusInternalServerError, "detection failed", err)
	}
}

// readUpload returns the uploaded image bytes from either the multipart
// "image" field or the raw request body.
func readUpload(c *gin.Context) ([]byte, error) {
	if file, err := c.FormFile("image"); err == nil {
		f, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open multipart file: %w", err)
		}
		defer f.Close()
		return io.ReadAll(f)
	}
	data, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}
	if len(data) == 0 {
		return nil, errors.New("empty request body")
	}
	return data, nil
}

// buildSuggestions turns pipeline measurements into actionable advice for
// uploads where no rooms were found.
func buildSuggestions(result *pipeline.Result) []string {
	var out []string
	if result.ImageWidth < 800 || result.ImageHeight < 800 {
		out = append(out, "Image resolution is low (< 800px). Try a higher resolution scan")
	}
	if result.ScaleFactor > 2 {
		out = append(out, fmt.Sprintf("Image was heavily downscaled (%.1fx). Original detail may be lost", result.ScaleFactor))
	}
	if result.Characteristics != nil {
		if result.Characteristics.Contrast < 0.3 {
			out = append(out, "Low contrast detected. Try scanning with higher contrast settings")
		}
		if result.Style == params.StyleScanned {
			out = append(out, "Scanned blueprint detected. Ensure scan is clean without artifacts")
		}
	}
	if len(out) == 0 {
		out = []string{
			"Ensure blueprint has clear, continuous wall lines",
			"Try a higher resolution image (recommended: 1500x1500px or larger)",
			"Verify blueprint is not a multi-floor plan (process each floor separately)",
		}
	}
	return out
}

func averageConfidence(list []rooms.Room) float64 {
	if len(list) == 0 {
		return 0
	}
	var sum float64
	for _, r := range list {
		sum += r.ConfidenceScore
	}
	avg := sum / float64(len(list))
	return float64(int(avg*100+0.5)) / 100
}

func respondError(c *gin.Context, code int, message string, err error) {
	c.AbortWithStatusJSON(code, ErrorResponse{
		Error:   http.StatusText(code),
		Message: fmt.Sprintf("%s: %v", message, err),
	})
}
