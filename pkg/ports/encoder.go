package ports

import (
	"image"
)

// VideoEncoder abstracts video encoding operations.
type VideoEncoder interface {
	// Begin initializes the encoder with the specified dimensions and frame rate.
	// Width and height are fixed for the lifetime of the stream.
	Begin(width, height int, fps float64, opts EncoderOptions) error

	// EncodeFrame encodes a single frame at the specified timestamp.
	EncodeFrame(img image.Image, timestampMs int) error

	// End finalizes encoding and returns the container data.
	End() ([]byte, error)
}

// EncoderOptions configures video encoding parameters.
type EncoderOptions struct {
	Bitrate     int // Target bitrate in kbps. 0 selects quality-based rate control.
	Quality     int // CRF value: 0-51 (lower is higher quality)
	JPEGQuality int // JPEG quality for MJPEG backends: 1-100
}
