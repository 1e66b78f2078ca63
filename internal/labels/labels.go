// Package labels recognizes room name annotations printed inside detected
// rooms ("KITCHEN", "BED 2", ...) using Tesseract OCR.
//
// Tesseract and its language data must be installed on the system. OCR is
// optional in the pipeline: callers that do not need labels never pay for it,
// and a recognition failure on one room never fails the whole request.
package labels

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/otiai10/gosseract/v2"
	"github.com/sirupsen/logrus"

	"github.com/mfuechec/RoomView/internal/rooms"
)

// minConfidence is the mean word confidence below which recognized text is
// discarded as noise. Blueprint hatching and dimension lines trip Tesseract
// easily, so this is deliberately strict.
const minConfidence = 55.0

// Options controls label recognition.
type Options struct {
	// Language is the Tesseract language code, e.g. "eng". Defaults to "eng".
	Language string
}

// Annotate runs OCR over the interior of each room's pixel bounding box and
// fills Room.Label for rooms where confident text was found. Rooms without
// readable text keep an empty label. The slice is modified in place.
func Annotate(img image.Image, list []rooms.Room, opts Options) error {
	if len(list) == 0 {
		return nil
	}
	lang := opts.Language
	if lang == "" {
		lang = "eng"
	}

	client := gosseract.NewClient()
	defer client.Close()
	if err := client.SetLanguage(lang); err != nil {
		return fmt.Errorf("failed to set OCR language %q: %w", lang, err)
	}
	// Treat each crop as a sparse block of text rather than a full page.
	if err := client.SetPageSegMode(gosseract.PSM_SPARSE_TEXT); err != nil {
		return fmt.Errorf("failed to configure OCR: %w", err)
	}

	log := logrus.WithField("component", "labels")
	for i := range list {
		label, err := recognize(client, img, list[i].BoundingBoxPx)
		if err != nil {
			log.WithError(err).WithField("room", list[i].ID).Debug("label recognition failed")
			continue
		}
		list[i].Label = label
	}
	return nil
}

// recognize crops one room from the source image, hands the crop to
// Tesseract, and returns the cleaned text if its confidence clears the bar.
func recognize(client *gosseract.Client, img image.Image, box [4]int) (string, error) {
	rect := image.Rect(box[0], box[1], box[2], box[3])
	rect = rect.Intersect(img.Bounds())
	if rect.Empty() {
		return "", nil
	}
	crop := imaging.Crop(img, rect)

	var buf bytes.Buffer
	if err := png.Encode(&buf, crop); err != nil {
		return "", fmt.Errorf("failed to encode room crop: %w", err)
	}
	if err := client.SetImageFromBytes(buf.Bytes()); err != nil {
		return "", fmt.Errorf("failed to load room crop: %w", err)
	}

	words, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		// Fall back to plain text without per-word confidence.
		text, terr := client.Text()
		if terr != nil {
			return "", fmt.Errorf("OCR failed: %w", terr)
		}
		return clean(text), nil
	}

	var parts []string
	var confSum float64
	for _, w := range words {
		word := strings.TrimSpace(w.Word)
		if word == "" {
			continue
		}
		parts = append(parts, word)
		confSum += w.Confidence
	}
	if len(parts) == 0 {
		return "", nil
	}
	if confSum/float64(len(parts)) < minConfidence {
		return "", nil
	}
	return clean(strings.Join(parts, " ")), nil
}

// clean collapses whitespace and strips characters Tesseract commonly
// hallucinates on line art.
func clean(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	s = strings.Trim(s, "|_-~· ")
	return s
}
