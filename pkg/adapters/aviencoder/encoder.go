// Package aviencoder provides a pure Go Motion JPEG encoder writing
// AVI containers.
//
// The icza/mjpeg writer works on files, so frames are written to a
// temporary AVI that End reads back into memory. Pick this encoder
// when the destination asks for the legacy .avi format.
package aviencoder

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/jpeg"
	"math"
	"os"
	"sync"

	"github.com/icza/mjpeg"

	"github.com/user/framereel/pkg/ports"
)

// defaultJPEGQuality is used when EncoderOptions carries no JPEG quality.
const defaultJPEGQuality = 80

// Encoder implements ports.VideoEncoder using the icza/mjpeg AVI writer.
type Encoder struct {
	mu sync.Mutex

	width   int
	height  int
	fps     float64
	options ports.EncoderOptions

	aw         mjpeg.AviWriter
	tempPath   string
	frameCount int
}

// New creates a new AVI encoder.
func New() *Encoder {
	return &Encoder{}
}

// Begin initializes the encoder and opens the temporary AVI file.
func (e *Encoder) Begin(width, height int, fps float64, opts ports.EncoderOptions) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.width = width
	e.height = height
	e.fps = fps
	e.options = opts
	e.frameCount = 0

	tmpFile, err := os.CreateTemp("", "framereel_*.avi")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	e.tempPath = tmpFile.Name()
	tmpFile.Close()

	// The AVI header stores an integer frame rate
	aw, err := mjpeg.New(e.tempPath, int32(width), int32(height), int32(math.Round(fps)))
	if err != nil {
		os.Remove(e.tempPath)
		e.tempPath = ""
		return fmt.Errorf("create AVI writer: %w", err)
	}
	e.aw = aw

	return nil
}

// EncodeFrame compresses a single frame and appends it to the AVI.
func (e *Encoder) EncodeFrame(img image.Image, timestampMs int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.aw == nil {
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

	if err := e.aw.AddFrame(buf.Bytes()); err != nil {
		return fmt.Errorf("add frame: %w", err)
	}
	e.frameCount++

	return nil
}

// End finalizes the AVI and returns its data.
func (e *Encoder) End() ([]byte, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.aw == nil {
		return nil, ErrNotInitialized
	}

	err := e.aw.Close()
	e.aw = nil
	if err != nil {
		os.Remove(e.tempPath)
		e.tempPath = ""
		return nil, fmt.Errorf("close AVI writer: %w", err)
	}

	if e.frameCount == 0 {
		os.Remove(e.tempPath)
		e.tempPath = ""
		return nil, ErrNoFrames
	}

	data, err := os.ReadFile(e.tempPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read output: %w", err)
	}

	os.Remove(e.tempPath)
	e.tempPath = ""

	return data, nil
}

// Ensure Encoder implements ports.VideoEncoder
var _ ports.VideoEncoder = (*Encoder)(nil)
