package h264encoder

import (
	"image"
	"image/color"
	"testing"

	"github.com/user/framereel/pkg/ports"
)

// createTestImage creates a simple test image with gradient
func createTestImage(width, height int, frameNum int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	// Create a gradient that changes with frame number
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r := uint8((x*255/width + frameNum*10) % 256)
			g := uint8((y*255/height + frameNum*5) % 256)
			b := uint8((x + y + frameNum*3) % 256)
			img.Set(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}

	return img
}

func requireFFmpeg(t *testing.T) {
	t.Helper()
	if !IsAvailable() {
		t.Skip("ffmpeg not available")
	}
}

func TestEncoderBasic(t *testing.T) {
	requireFFmpeg(t)

	enc := New()

	width := 320
	height := 240
	fps := 30.0
	opts := ports.EncoderOptions{
		Quality: 25, // Medium quality
	}

	// Initialize encoder
	if err := enc.Begin(width, height, fps, opts); err != nil {
		t.Fatalf("Begin failed: %v", err)
	}

	// Encode some frames
	numFrames := 30
	for i := 0; i < numFrames; i++ {
		img := createTestImage(width, height, i)
		timestampMs := i * 1000 / int(fps)

		if err := enc.EncodeFrame(img, timestampMs); err != nil {
			t.Fatalf("EncodeFrame failed at frame %d: %v", i, err)
		}
	}

	// Finalize and get output
	data, err := enc.End()
	if err != nil {
		t.Fatalf("End failed: %v", err)
	}

	if len(data) == 0 {
		t.Fatal("No data produced")
	}

	t.Logf("Encoded %d frames to %d bytes", numFrames, len(data))

	// Verify it starts with ftyp box (MP4 signature)
	if len(data) < 8 {
		t.Fatal("Output too small")
	}
	if string(data[4:8]) != "ftyp" {
		t.Errorf("Expected ftyp box, got: %s", string(data[4:8]))
	}
}

func TestEncoderBitrateMode(t *testing.T) {
	requireFFmpeg(t)

	enc := New()

	width := 320
	height := 240

	if err := enc.Begin(width, height, 30.0, ports.EncoderOptions{Bitrate: 800}); err != nil {
		t.Fatalf("Begin failed: %v", err)
	}

	for i := 0; i < 10; i++ {
		img := createTestImage(width, height, i)
		if err := enc.EncodeFrame(img, i*33); err != nil {
			t.Fatalf("EncodeFrame failed: %v", err)
		}
	}

	data, err := enc.End()
	if err != nil {
		t.Fatalf("End failed: %v", err)
	}

	t.Logf("Bitrate mode output: %d bytes", len(data))
}

func TestEncoderCroppedAndPaddedFrames(t *testing.T) {
	requireFFmpeg(t)

	enc := New()

	// Stream dimensions come from Begin; frames of other sizes are
	// cropped or padded onto the fixed buffer.
	if err := enc.Begin(100, 100, 10.0, ports.EncoderOptions{Quality: 30}); err != nil {
		t.Fatalf("Begin failed: %v", err)
	}

	sizes := [][2]int{{100, 100}, {200, 150}, {40, 60}}
	for i, s := range sizes {
		img := createTestImage(s[0], s[1], i)
		if err := enc.EncodeFrame(img, i*100); err != nil {
			t.Fatalf("EncodeFrame failed for %dx%d: %v", s[0], s[1], err)
		}
	}

	data, err := enc.End()
	if err != nil {
		t.Fatalf("End failed: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("No data produced")
	}
}

func TestEncoderSingleFrame(t *testing.T) {
	requireFFmpeg(t)

	enc := New()

	if err := enc.Begin(100, 100, 1.0, ports.EncoderOptions{}); err != nil {
		t.Fatalf("Begin failed: %v", err)
	}

	img := createTestImage(100, 100, 0)
	if err := enc.EncodeFrame(img, 0); err != nil {
		t.Fatalf("EncodeFrame failed: %v", err)
	}

	data, err := enc.End()
	if err != nil {
		t.Fatalf("End failed: %v", err)
	}

	if len(data) == 0 {
		t.Fatal("No data produced for single frame")
	}

	t.Logf("Single frame output: %d bytes", len(data))
}

func TestEncoderNoFrames(t *testing.T) {
	requireFFmpeg(t)

	enc := New()

	if err := enc.Begin(100, 100, 30.0, ports.EncoderOptions{}); err != nil {
		t.Fatalf("Begin failed: %v", err)
	}

	_, err := enc.End()
	if err != ErrNoFrames {
		t.Errorf("expected ErrNoFrames, got: %v", err)
	}
}

func TestEncoderNotInitialized(t *testing.T) {
	enc := New()

	// Try to encode without initialization
	img := createTestImage(100, 100, 0)
	err := enc.EncodeFrame(img, 0)
	if err != ErrNotInitialized {
		t.Errorf("Expected ErrNotInitialized, got: %v", err)
	}

	// Try to end without initialization
	_, err = enc.End()
	if err != ErrNotInitialized {
		t.Errorf("Expected ErrNotInitialized, got: %v", err)
	}
}

func TestSetFFmpegPath_Invalid(t *testing.T) {
	SetFFmpegPath("/nonexistent/ffmpeg")
	defer SetFFmpegPath("")

	_, err := FindFFmpeg()
	if err == nil {
		t.Fatal("expected error for invalid custom path")
	}
}
