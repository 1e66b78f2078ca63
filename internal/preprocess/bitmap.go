package preprocess

// Bitmap is a single-channel two-valued image. Pix holds one byte per pixel
// in row-major order: 1 for ink (walls and other dark structure), 0 for
// background. Ink is the foreground for all morphological operations.
type Bitmap struct {
	W, H int
	Pix  []uint8
}

// NewBitmap returns an all-background bitmap of the given size.
func NewBitmap(w, h int) *Bitmap {
	return &Bitmap{W: w, H: h, Pix: make([]uint8, w*h)}
}

// At reports whether (x, y) is an ink pixel. Out-of-bounds reads are
// background, which keeps kernel loops free of edge special cases.
func (b *Bitmap) At(x, y int) bool {
	if x < 0 || y < 0 || x >= b.W || y >= b.H {
		return false
	}
	return b.Pix[y*b.W+x] != 0
}

// Set marks (x, y) as ink (v true) or background.
func (b *Bitmap) Set(x, y int, v bool) {
	if x < 0 || y < 0 || x >= b.W || y >= b.H {
		return
	}
	if v {
		b.Pix[y*b.W+x] = 1
	} else {
		b.Pix[y*b.W+x] = 0
	}
}

// Clone returns a deep copy.
func (b *Bitmap) Clone() *Bitmap {
	out := &Bitmap{W: b.W, H: b.H, Pix: make([]uint8, len(b.Pix))}
	copy(out.Pix, b.Pix)
	return out
}

// InkCount returns the number of ink pixels.
func (b *Bitmap) InkCount() int {
	n := 0
	for _, v := range b.Pix {
		if v != 0 {
			n++
		}
	}
	return n
}
