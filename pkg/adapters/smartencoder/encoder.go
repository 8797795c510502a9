// Package smartencoder provides a video encoder that automatically
// selects the best available backend with fallback support.
package smartencoder

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/user/framereel/pkg/adapters/aviencoder"
	"github.com/user/framereel/pkg/adapters/h264encoder"
	"github.com/user/framereel/pkg/adapters/mjpegencoder"
	"github.com/user/framereel/pkg/ports"
)

// Codec represents the video codec type.
type Codec string

const (
	// CodecAuto selects the best codec for the destination.
	CodecAuto Codec = "auto"
	// CodecH264 represents H.264/AVC encoding via ffmpeg.
	CodecH264 Codec = "h264"
	// CodecMJPEG represents Motion JPEG encoding in pure Go.
	CodecMJPEG Codec = "mjpeg"
)

// Backend represents the encoding backend used.
type Backend string

const (
	// BackendFFmpeg represents the external ffmpeg process.
	BackendFFmpeg Backend = "ffmpeg"
	// BackendMP4FF represents the pure Go MJPEG-in-MP4 muxer.
	BackendMP4FF Backend = "mp4ff"
	// BackendAVI represents the pure Go AVI writer.
	BackendAVI Backend = "avi"
)

// Container represents the output container format.
type Container string

const (
	// ContainerMP4 is the default MP4 container.
	ContainerMP4 Container = "mp4"
	// ContainerAVI is the legacy AVI container.
	ContainerAVI Container = "avi"
)

// Info contains information about the selected encoder.
type Info struct {
	// Container is the output container format.
	Container Container
	// Codec is the actual codec being used.
	Codec Codec
	// Backend is the encoding backend being used.
	Backend Backend
	// RequestedCodec is the codec that was originally requested.
	RequestedCodec Codec
	// FallbackUsed indicates whether a fallback occurred.
	FallbackUsed bool
}

// Options configures the smart encoder behavior.
type Options struct {
	// FFmpegPath is an optional custom path to the ffmpeg binary.
	FFmpegPath string
	// Logger is used to log fallback warnings.
	Logger ports.Logger
}

var (
	// ErrNoEncoderAvailable is returned when the requested codec has no
	// usable backend and fallback is disabled.
	ErrNoEncoderAvailable = errors.New("smartencoder: no encoder available")
)

// ParseCodec parses a codec name. An empty string selects CodecAuto.
func ParseCodec(s string) (Codec, error) {
	switch strings.ToLower(s) {
	case "", string(CodecAuto):
		return CodecAuto, nil
	case string(CodecH264):
		return CodecH264, nil
	case string(CodecMJPEG):
		return CodecMJPEG, nil
	default:
		return "", fmt.Errorf("smartencoder: unknown codec %q", s)
	}
}

// New creates a video encoder for the destination path.
//
// The selection flow:
//  1. A .avi destination always gets the pure Go AVI writer.
//  2. For MP4, H.264 via ffmpeg is preferred.
//  3. Without ffmpeg the encoder falls back to MJPEG-in-MP4 and logs
//     a warning, the output stays playable but grows in size.
func New(dest string, preferred Codec, opts Options) (ports.VideoEncoder, Info, error) {
	return newInternal(dest, preferred, opts, true)
}

// NewWithoutFallback creates an encoder without fallback capability.
// Returns ErrNoEncoderAvailable if the requested codec is not available.
func NewWithoutFallback(dest string, preferred Codec, opts Options) (ports.VideoEncoder, Info, error) {
	return newInternal(dest, preferred, opts, false)
}

func newInternal(dest string, preferred Codec, opts Options, allowFallback bool) (ports.VideoEncoder, Info, error) {
	if opts.FFmpegPath != "" {
		h264encoder.SetFFmpegPath(opts.FFmpegPath)
	}

	info := Info{
		RequestedCodec: preferred,
	}

	// The AVI container only carries MJPEG here, regardless of the
	// requested codec.
	if strings.EqualFold(filepath.Ext(dest), ".avi") {
		info.Container = ContainerAVI
		info.Codec = CodecMJPEG
		info.Backend = BackendAVI
		return aviencoder.New(), info, nil
	}

	info.Container = ContainerMP4

	switch preferred {
	case CodecMJPEG:
		info.Codec = CodecMJPEG
		info.Backend = BackendMP4FF
		return mjpegencoder.New(), info, nil
	case CodecH264, CodecAuto, "":
		return selectH264Encoder(opts, info, allowFallback)
	default:
		return selectH264Encoder(opts, info, allowFallback)
	}
}

func selectH264Encoder(opts Options, info Info, allowFallback bool) (ports.VideoEncoder, Info, error) {
	if h264encoder.IsAvailable() {
		info.Codec = CodecH264
		info.Backend = BackendFFmpeg
		return h264encoder.New(), info, nil
	}

	if !allowFallback {
		return nil, Info{}, ErrNoEncoderAvailable
	}

	// Log fallback warning
	if opts.Logger != nil {
		opts.Logger.Warn("ffmpeg not found, falling back to MJPEG")
	}

	info.Codec = CodecMJPEG
	info.Backend = BackendMP4FF
	info.FallbackUsed = true
	return mjpegencoder.New(), info, nil
}

// IsH264Available checks if H.264 encoding is available (requires ffmpeg).
func IsH264Available() bool {
	return h264encoder.IsAvailable()
}

// IsMJPEGAvailable always returns true, both MJPEG backends are pure Go.
func IsMJPEGAvailable() bool {
	return true
}
