package preprocess

// Morphological operations over Bitmap ink. Kernel sizes follow the OpenCV
// convention of a full side length; a size k kernel covers offsets within
// radius k/2. Close and dilate use square kernels; open uses a disk kernel so
// it erodes isotropically and does not nibble wall corners.

// Dilate grows ink regions by a square kernel of the given size.
func Dilate(b *Bitmap, size int) *Bitmap {
	return apply(b, squareOffsets(size), true)
}

// Erode shrinks ink regions by a square kernel of the given size.
func Erode(b *Bitmap, size int) *Bitmap {
	return apply(b, squareOffsets(size), false)
}

// Close fills small background gaps in the ink structure: dilate then erode.
// Broken wall segments thinner than the kernel are reconnected.
func Close(b *Bitmap, size int) *Bitmap {
	if size <= 1 {
		return b
	}
	off := squareOffsets(size)
	return applyOffsets(applyOffsets(b, off, true), off, false)
}

// Open strips ink detail thinner than the kernel: erode then dilate.
// This is the primary false-positive suppressor: furniture strokes,
// fixtures and annotation lines vanish while walls survive. It must run
// after Close, which first reconnects broken walls so erosion cannot
// sever them further.
func Open(b *Bitmap, size int) *Bitmap {
	if size <= 1 {
		return b
	}
	off := diskOffsets(size)
	return applyOffsets(applyOffsets(b, off, false), off, true)
}

func apply(b *Bitmap, off [][2]int, dilate bool) *Bitmap {
	if len(off) <= 1 {
		return b
	}
	return applyOffsets(b, off, dilate)
}

// applyOffsets computes the neighborhood max (dilate) or min (erode) of the
// ink mask. Pixels outside the image count as background.
func applyOffsets(b *Bitmap, off [][2]int, dilate bool) *Bitmap {
	out := NewBitmap(b.W, b.H)
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			v := !dilate
			for _, o := range off {
				hit := b.At(x+o[0], y+o[1])
				if dilate && hit {
					v = true
					break
				}
				if !dilate && !hit {
					v = false
					break
				}
			}
			out.Set(x, y, v)
		}
	}
	return out
}

func squareOffsets(size int) [][2]int {
	r := size / 2
	if r < 1 {
		return [][2]int{{0, 0}}
	}
	off := make([][2]int, 0, (2*r+1)*(2*r+1))
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			off = append(off, [2]int{dx, dy})
		}
	}
	return off
}

func diskOffsets(size int) [][2]int {
	r := size / 2
	if r < 1 {
		return [][2]int{{0, 0}}
	}
	off := make([][2]int, 0, (2*r+1)*(2*r+1))
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				off = append(off, [2]int{dx, dy})
			}
		}
	}
	return off
}
