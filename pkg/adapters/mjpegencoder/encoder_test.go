package mjpegencoder

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/Eyevinn/mp4ff/mp4"

	"github.com/user/framereel/pkg/ports"
)

// createTestImage creates a solid color test image
func createTestImage(width, height int, c color.RGBA) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestNew(t *testing.T) {
	encoder := New()
	if encoder == nil {
		t.Fatal("expected encoder to be created")
	}
}

func TestEncoder_EncodeFrame(t *testing.T) {
	encoder := New()

	err := encoder.Begin(64, 64, 30.0, ports.EncoderOptions{JPEGQuality: 80})
	if err != nil {
		t.Fatalf("Begin failed: %v", err)
	}

	img := createTestImage(64, 64, color.RGBA{R: 255, A: 255})

	err = encoder.EncodeFrame(img, 0)
	if err != nil {
		t.Fatalf("EncodeFrame failed: %v", err)
	}

	if encoder.frameCount != 1 {
		t.Errorf("expected frameCount 1, got %d", encoder.frameCount)
	}
}

func TestEncoder_End(t *testing.T) {
	encoder := New()

	err := encoder.Begin(64, 64, 30.0, ports.EncoderOptions{})
	if err != nil {
		t.Fatalf("Begin failed: %v", err)
	}

	for i := 0; i < 5; i++ {
		img := createTestImage(64, 64, color.RGBA{
			R: uint8(i * 50),
			G: uint8(255 - i*50),
			B: 128,
			A: 255,
		})
		if err := encoder.EncodeFrame(img, i*33); err != nil {
			t.Fatalf("EncodeFrame %d failed: %v", i, err)
		}
	}

	mp4Data, err := encoder.End()
	if err != nil {
		t.Fatalf("End failed: %v", err)
	}

	if len(mp4Data) < 8 {
		t.Fatal("MP4 data too short")
	}

	// MP4 files start with ftyp box
	if string(mp4Data[4:8]) != "ftyp" {
		t.Errorf("expected ftyp signature, got %q", string(mp4Data[4:8]))
	}
}

func TestEncoder_OutputParsesAsMP4(t *testing.T) {
	encoder := New()

	const frames = 12
	if err := encoder.Begin(50, 100, 30.0, ports.EncoderOptions{JPEGQuality: 75}); err != nil {
		t.Fatalf("Begin failed: %v", err)
	}

	for i := 0; i < frames; i++ {
		img := createTestImage(50, 100, color.RGBA{R: uint8(20 * i), G: 100, B: 50, A: 255})
		if err := encoder.EncodeFrame(img, i*1000/30); err != nil {
			t.Fatalf("EncodeFrame %d failed: %v", i, err)
		}
	}

	data, err := encoder.End()
	if err != nil {
		t.Fatalf("End failed: %v", err)
	}

	parsed, err := mp4.DecodeFile(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output does not parse as MP4: %v", err)
	}

	if !parsed.IsFragmented() {
		t.Error("expected fragmented MP4")
	}

	// Track header carries the stream dimensions as 16.16 fixed point
	tkhd := parsed.Moov.Trak.Tkhd
	if uint32(tkhd.Width)>>16 != 50 || uint32(tkhd.Height)>>16 != 100 {
		t.Errorf("expected 50x100 track, got %dx%d",
			uint32(tkhd.Width)>>16, uint32(tkhd.Height)>>16)
	}

	// All frames must survive as samples
	total := 0
	for _, seg := range parsed.Segments {
		for _, frag := range seg.Fragments {
			total += len(frag.Moof.Traf.Trun.Samples)
		}
	}
	if total != frames {
		t.Errorf("expected %d samples, got %d", frames, total)
	}
}

func TestEncoder_SamplesAreJPEG(t *testing.T) {
	encoder := New()

	if err := encoder.Begin(32, 32, 10.0, ports.EncoderOptions{}); err != nil {
		t.Fatalf("Begin failed: %v", err)
	}

	img := createTestImage(32, 32, color.RGBA{B: 255, A: 255})
	if err := encoder.EncodeFrame(img, 0); err != nil {
		t.Fatalf("EncodeFrame failed: %v", err)
	}

	// Peek at the stored frame before End consumes it
	frame := encoder.frames[0]
	if len(frame.data) < 2 || frame.data[0] != 0xFF || frame.data[1] != 0xD8 {
		t.Error("expected frame data to start with JPEG SOI marker")
	}

	if _, err := encoder.End(); err != nil {
		t.Fatalf("End failed: %v", err)
	}
}

func TestEncoder_EndWithoutFrames(t *testing.T) {
	encoder := New()

	if err := encoder.Begin(64, 64, 30.0, ports.EncoderOptions{}); err != nil {
		t.Fatalf("Begin failed: %v", err)
	}

	_, err := encoder.End()
	if err != ErrNoFrames {
		t.Errorf("expected ErrNoFrames, got %v", err)
	}
}

func TestEncoder_EncodeWithoutBegin(t *testing.T) {
	encoder := New()

	img := createTestImage(64, 64, color.RGBA{R: 255, A: 255})
	err := encoder.EncodeFrame(img, 0)
	if err != ErrNotInitialized {
		t.Errorf("expected ErrNotInitialized, got %v", err)
	}
}

func TestEncoder_DifferentResolutions(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		height int
	}{
		{"small", 64, 64},
		{"wide", 320, 180},
		{"tall", 180, 320},
		{"odd", 33, 47},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoder := New()

			err := encoder.Begin(tt.width, tt.height, 30.0, ports.EncoderOptions{})
			if err != nil {
				t.Fatalf("Begin failed: %v", err)
			}

			img := createTestImage(tt.width, tt.height, color.RGBA{R: 100, G: 150, B: 200, A: 255})
			if err := encoder.EncodeFrame(img, 0); err != nil {
				t.Fatalf("EncodeFrame failed: %v", err)
			}

			mp4Data, err := encoder.End()
			if err != nil {
				t.Fatalf("End failed: %v", err)
			}

			if len(mp4Data) == 0 {
				t.Error("expected non-empty MP4 data")
			}
		})
	}
}

func BenchmarkEncoder_EncodeFrame(b *testing.B) {
	encoder := New()
	if err := encoder.Begin(256, 256, 30.0, ports.EncoderOptions{JPEGQuality: 80}); err != nil {
		b.Fatalf("Begin failed: %v", err)
	}

	img := createTestImage(256, 256, color.RGBA{R: 128, G: 128, B: 128, A: 255})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := encoder.EncodeFrame(img, i*33); err != nil {
			b.Fatalf("EncodeFrame failed: %v", err)
		}
	}
}
