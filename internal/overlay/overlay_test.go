package overlay

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/mfuechec/RoomView/internal/rooms"
)

func TestRenderAnnotatesImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 120, 120))
	for y := 0; y < 120; y++ {
		for x := 0; x < 120; x++ {
			img.Set(x, y, color.White)
		}
	}

	list := []rooms.Room{
		{ID: "room_000", BoundingBoxPx: [4]int{10, 10, 60, 60}},
		{ID: "room_001", BoundingBoxPx: [4]int{70, 10, 110, 110}},
	}

	res, err := Render(img, list)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if res.Width != 120 || res.Height != 120 {
		t.Errorf("result dims = %dx%d, want 120x120", res.Width, res.Height)
	}
	if res.MimeType != "image/png" {
		t.Errorf("mime = %q, want image/png", res.MimeType)
	}

	raw, err := base64.StdEncoding.DecodeString(res.ImageBase64)
	if err != nil {
		t.Fatalf("invalid base64: %v", err)
	}
	decoded, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("invalid PNG payload: %v", err)
	}
	if decoded.Bounds().Dx() != 120 {
		t.Errorf("decoded width = %d, want 120", decoded.Bounds().Dx())
	}

	// The box outline must have been painted over the white canvas.
	r, g, b, _ := decoded.At(10, 30).RGBA()
	if r>>8 == 255 && g>>8 == 255 && b>>8 == 255 {
		t.Error("expected a colored box edge at (10,30)")
	}
	// Room interiors stay untouched.
	r, g, b, _ = decoded.At(35, 40).RGBA()
	if r>>8 != 255 || g>>8 != 255 || b>>8 != 255 {
		t.Error("room interior should remain white")
	}
}

func TestRenderEmptyRoomList(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 50, 50))
	res, err := Render(img, nil)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if res.ImageBase64 == "" {
		t.Error("even an unannotated render must return the encoded image")
	}
}

func TestRoomPaletteDistinctHues(t *testing.T) {
	p := roomPalette(6)
	if len(p) != 6 {
		t.Fatalf("palette size = %d, want 6", len(p))
	}
	seen := map[color.RGBA]bool{}
	for _, c := range p {
		if seen[c] {
			t.Errorf("duplicate palette color %v", c)
		}
		seen[c] = true
	}
}
