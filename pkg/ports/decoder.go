package ports

import (
	"image"
	"io"
)

// FrameDecoder abstracts still image decoding operations.
type FrameDecoder interface {
	// DecodeFile reads and decodes a single image file.
	DecodeFile(path string) (image.Image, error)

	// Decode decodes a single image from a reader.
	Decode(r io.Reader) (image.Image, error)

	// Formats returns the image format names the decoder understands.
	Formats() []string
}
