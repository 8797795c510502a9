// Package imagedecoder provides a FrameDecoder for still image files.
//
// The decoder understands every format registered with image.Decode,
// which here means PNG, JPEG, GIF, BMP, TIFF and WebP. Frames are
// matched by content sniffing, not by file extension.
package imagedecoder

import (
	"fmt"
	"image"
	"io"
	"os"

	// Register stdlib and extended image formats.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/user/framereel/pkg/ports"
)

// Decoder implements ports.FrameDecoder on top of image.Decode.
type Decoder struct{}

// New creates a new Decoder.
func New() *Decoder {
	return &Decoder{}
}

// DecodeFile reads and decodes a single image file.
func (d *Decoder) DecodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	img, err := d.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// Decode decodes a single image from a reader.
func (d *Decoder) Decode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}
	return img, nil
}

// Formats returns the image format names the decoder understands.
func (d *Decoder) Formats() []string {
	return []string{"bmp", "gif", "jpeg", "png", "tiff", "webp"}
}

// Ensure Decoder implements ports.FrameDecoder
var _ ports.FrameDecoder = (*Decoder)(nil)
