// Package h264encoder provides H.264 video encoding through an external
// ffmpeg process.
//
// Frames are streamed to ffmpeg as raw RGBA data over stdin and the
// finished MP4 is read back from a temporary file once the process
// exits. The encoder produces baseline profile output with faststart
// so the result plays everywhere.
package h264encoder

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"io"
	"os"
	"os/exec"
	"strconv"
	"sync"

	"github.com/user/framereel/pkg/ports"
)

// Encoder implements ports.VideoEncoder using an ffmpeg subprocess.
type Encoder struct {
	ffmpegPath string
	width      int
	height     int
	fps        float64
	opts       ports.EncoderOptions

	mu         sync.Mutex
	cmd        *exec.Cmd
	stdin      io.WriteCloser
	stderr     bytes.Buffer
	tempPath   string
	frameCount int
	closed     bool
}

// New creates a new H.264 encoder.
func New() *Encoder {
	return &Encoder{}
}

// Begin initializes the encoder and starts the ffmpeg process.
func (e *Encoder) Begin(width, height int, fps float64, opts ports.EncoderOptions) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	ffmpegPath, err := FindFFmpeg()
	if err != nil {
		return err
	}
	e.ffmpegPath = ffmpegPath

	e.width = width
	e.height = height
	e.fps = fps
	e.opts = opts
	e.frameCount = 0
	e.closed = false

	// Create temporary output file
	tmpFile, err := os.CreateTemp("", "framereel_*.mp4")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	e.tempPath = tmpFile.Name()
	tmpFile.Close()

	// Build ffmpeg arguments
	args := []string{
		"-y",             // Overwrite output
		"-f", "rawvideo", // Input format
		"-pix_fmt", "rgba", // Input pixel format
		"-s", fmt.Sprintf("%dx%d", width, height), // Input size
		"-r", fmt.Sprintf("%.2f", fps), // Input frame rate
		"-i", "pipe:0", // Read from stdin
		"-c:v", "libx264", // Use libx264
		"-preset", "fast", // Encoding preset
		"-pix_fmt", "yuv420p", // Output pixel format
	}

	// Rate control: explicit bitrate wins, otherwise CRF
	if opts.Bitrate > 0 {
		args = append(args, "-b:v", fmt.Sprintf("%dk", opts.Bitrate))
	} else {
		crf := 23
		if opts.Quality > 0 && opts.Quality <= 51 {
			crf = opts.Quality
		}
		args = append(args, "-crf", strconv.Itoa(crf))
	}

	// Profile for compatibility
	args = append(args,
		"-profile:v", "baseline",
		"-level", "3.1",
		"-movflags", "+faststart",
		e.tempPath,
	)

	// Start ffmpeg
	e.cmd = exec.Command(e.ffmpegPath, args...)
	e.cmd.Stderr = &e.stderr

	stdin, err := e.cmd.StdinPipe()
	if err != nil {
		os.Remove(e.tempPath)
		return fmt.Errorf("failed to get stdin pipe: %w", err)
	}
	e.stdin = stdin

	if err := e.cmd.Start(); err != nil {
		os.Remove(e.tempPath)
		return fmt.Errorf("failed to start ffmpeg: %w", err)
	}

	return nil
}

// EncodeFrame encodes a single frame.
//
// The frame is composited onto a fixed-size RGBA buffer matching the
// dimensions given to Begin, so larger frames are cropped and smaller
// ones are padded with transparent black.
func (e *Encoder) EncodeFrame(img image.Image, timestampMs int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.stdin == nil || e.closed {
		return ErrNotInitialized
	}

	// Convert image to RGBA
	bounds := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, e.width, e.height))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)

	// Write raw RGBA data to ffmpeg stdin
	_, err := e.stdin.Write(rgba.Pix)
	if err != nil {
		return fmt.Errorf("failed to write frame: %w", err)
	}

	e.frameCount++
	return nil
}

// End finalizes encoding and returns the MP4 data.
func (e *Encoder) End() ([]byte, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.stdin == nil || e.closed {
		return nil, ErrNotInitialized
	}

	if e.frameCount == 0 {
		e.stdin.Close()
		e.stdin = nil
		e.closed = true
		e.cmd.Process.Kill()
		e.cmd.Wait()
		os.Remove(e.tempPath)
		e.tempPath = ""
		return nil, ErrNoFrames
	}

	// Close stdin to signal end of input
	e.stdin.Close()
	e.stdin = nil
	e.closed = true

	// Wait for ffmpeg to finish
	if err := e.cmd.Wait(); err != nil {
		stderrOutput := e.stderr.String()
		os.Remove(e.tempPath)
		e.tempPath = ""
		return nil, fmt.Errorf("ffmpeg encoding failed: %w\nstderr: %s", err, stderrOutput)
	}

	// Read the output file
	data, err := os.ReadFile(e.tempPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read output: %w", err)
	}

	// Clean up temp file
	os.Remove(e.tempPath)
	e.tempPath = ""

	return data, nil
}

// Ensure Encoder implements ports.VideoEncoder
var _ ports.VideoEncoder = (*Encoder)(nil)
