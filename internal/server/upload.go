package server

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
)

var (
	pngMagic  = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}
	jpegMagic = []byte{0xFF, 0xD8, 0xFF}
)

// uploadError marks a validation failure the client can fix. Handlers map
// it to a 400 response.
type uploadError struct {
	msg string
}

func (e *uploadError) Error() string { return e.msg }

// validateUpload checks the raw bytes of an upload against the configured
// size bounds and the PNG/JPEG magic numbers, then decodes the image.
// File extension and declared content type are ignored on purpose.
func validateUpload(data []byte, minBytes, maxBytes int64) (image.Image, string, error) {
	n := int64(len(data))
	if n < minBytes {
		return nil, "", &uploadError{msg: fmt.Sprintf("upload too small (%d bytes, minimum %d)", n, minBytes)}
	}
	if n > maxBytes {
		return nil, "", &uploadError{msg: fmt.Sprintf("upload too large (%d bytes, maximum %d)", n, maxBytes)}
	}
	if !bytes.HasPrefix(data, pngMagic) && !bytes.HasPrefix(data, jpegMagic) {
		return nil, "", &uploadError{msg: "upload must be a PNG or JPEG image"}
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", &uploadError{msg: fmt.Sprintf("failed to decode image: %v", err)}
	}
	return img, format, nil
}
