// Package overlay renders detection results onto the source image for
// debugging and UI preview: one distinctly colored bounding box per room,
// with the room id drawn at the top-left corner.
package overlay

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/mfuechec/RoomView/internal/rooms"
)

// Result contains the annotated image encoded as base64 PNG.
type Result struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

const boxThickness = 3

// Render draws every room's pixel bounding box over the source image.
// Colors are evenly spaced hues so adjacent rooms stay distinguishable.
func Render(img image.Image, list []rooms.Room) (*Result, error) {
	bounds := img.Bounds()
	canvas := image.NewRGBA(bounds)
	draw.Draw(canvas, bounds, img, bounds.Min, draw.Src)

	palette := roomPalette(len(list))
	for i, r := range list {
		c := palette[i]
		drawBox(canvas, r.BoundingBoxPx, c)
		drawLabel(canvas, r.BoundingBoxPx[0]+boxThickness+1, r.BoundingBoxPx[1]+boxThickness+1, r.ID, c)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return nil, fmt.Errorf("failed to encode overlay image: %w", err)
	}
	return &Result{
		Width:       bounds.Dx(),
		Height:      bounds.Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

// roomPalette returns n saturated, evenly spaced hues. Hue stepping is
// deterministic so repeated renders of the same result look identical.
func roomPalette(n int) []color.RGBA {
	out := make([]color.RGBA, n)
	for i := 0; i < n; i++ {
		hue := float64(i) * 360.0 / float64(max(n, 1))
		r, g, b := colorful.Hsv(hue, 0.85, 0.9).RGB255()
		out[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return out
}

func drawBox(img *image.RGBA, box [4]int, c color.RGBA) {
	x0, y0, x1, y1 := box[0], box[1], box[2], box[3]
	for t := 0; t < boxThickness; t++ {
		hline(img, x0, x1, y0+t, c)
		hline(img, x0, x1, y1-1-t, c)
		vline(img, x0+t, y0, y1, c)
		vline(img, x1-1-t, y0, y1, c)
	}
}

func hline(img *image.RGBA, x0, x1, y int, c color.RGBA) {
	b := img.Bounds()
	if y < b.Min.Y || y >= b.Max.Y {
		return
	}
	for x := max(x0, b.Min.X); x < min(x1, b.Max.X); x++ {
		img.SetRGBA(x, y, c)
	}
}

func vline(img *image.RGBA, x, y0, y1 int, c color.RGBA) {
	b := img.Bounds()
	if x < b.Min.X || x >= b.Max.X {
		return
	}
	for y := max(y0, b.Min.Y); y < min(y1, b.Max.Y); y++ {
		img.SetRGBA(x, y, c)
	}
}

// drawLabel renders text with the fixed 7x13 basicfont over a dark backing
// strip so ids stay readable on busy blueprints.
func drawLabel(img *image.RGBA, x, y int, text string, c color.RGBA) {
	face := basicfont.Face7x13
	w := len(text) * face.Advance
	h := face.Height

	backing := color.RGBA{A: 180}
	for dy := 0; dy < h+2; dy++ {
		for dx := 0; dx < w+4; dx++ {
			px, py := x+dx-2, y+dy-1
			if image.Pt(px, py).In(img.Bounds()) {
				img.SetRGBA(px, py, blend(img.RGBAAt(px, py), backing))
			}
		}
	}

	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y+face.Ascent),
	}
	d.DrawString(text)
}

func blend(dst, src color.RGBA) color.RGBA {
	a := float64(src.A) / 255
	mix := func(d, s uint8) uint8 {
		return uint8(float64(d)*(1-a) + float64(s)*a)
	}
	return color.RGBA{
		R: mix(dst.R, src.R),
		G: mix(dst.G, src.G),
		B: mix(dst.B, src.B),
		A: 255,
	}
}
