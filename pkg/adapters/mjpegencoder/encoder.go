// Package mjpegencoder provides a pure Go Motion JPEG video encoder.
//
// Each frame is compressed as an independent JPEG image and the
// sequence is muxed into a fragmented MP4 container with a 'jpeg'
// visual sample entry. No external tools or cgo are required, which
// makes this the fallback path when ffmpeg is not installed. Files
// are larger than H.264 output but play in ffmpeg-based players,
// QuickTime and VLC.
package mjpegencoder

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/jpeg"
	"sync"

	"github.com/user/framereel/pkg/ports"
)

// defaultJPEGQuality is used when EncoderOptions carries no JPEG quality.
const defaultJPEGQuality = 80

// encodedFrame represents a single compressed JPEG frame.
type encodedFrame struct {
	data        []byte
	timestampUs int64
}

// Encoder implements ports.VideoEncoder using image/jpeg and mp4ff.
type Encoder struct {
	mu sync.Mutex

	width   int
	height  int
	fps     float64
	options ports.EncoderOptions

	frames     []encodedFrame
	frameCount int
	began      bool
}

// New creates a new MJPEG encoder.
func New() *Encoder {
	return &Encoder{}
}

// Begin initializes the encoder.
func (e *Encoder) Begin(width, height int, fps float64, opts ports.EncoderOptions) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.width = width
	e.height = height
	e.fps = fps
	e.options = opts
	e.frames = nil
	e.frameCount = 0
	e.began = true

	return nil
}

// EncodeFrame compresses a single frame.
//
// The frame is composited onto a fixed-size RGBA buffer matching the
// dimensions given to Begin, so larger frames are cropped and smaller
// ones are padded.
func (e *Encoder) EncodeFrame(img image.Image, timestampMs int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.began {
		return ErrNotInitialized
	}

	// Convert image to RGBA at stream dimensions
	bounds := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, e.width, e.height))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)

	quality := e.options.JPEGQuality
	if quality <= 0 || quality > 100 {
		quality = defaultJPEGQuality
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, rgba, &jpeg.Options{Quality: quality}); err != nil {
		return fmt.Errorf("compress frame: %w", err)
	}

	e.frames = append(e.frames, encodedFrame{
		data:        buf.Bytes(),
		timestampUs: int64(timestampMs) * 1000,
	})
	e.frameCount++

	return nil
}

// End finalizes encoding and returns the MP4 data.
func (e *Encoder) End() ([]byte, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.began {
		return nil, ErrNotInitialized
	}

	data, err := e.buildMP4()
	if err != nil {
		return nil, err
	}

	e.frames = nil
	e.began = false

	return data, nil
}

// Ensure Encoder implements ports.VideoEncoder
var _ ports.VideoEncoder = (*Encoder)(nil)
