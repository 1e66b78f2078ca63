// Package preprocess converts a raw floor plan image into a clean binary
// ink bitmap ready for region extraction.
//
// The chain is resize → denoise → grayscale → local contrast enhancement →
// Otsu binarization → morphological cleanup (close, open, dilate). Every
// stage is a pure transform exposed on its own for testing. Ink (dark wall
// structure) is the morphological foreground throughout.
package preprocess
