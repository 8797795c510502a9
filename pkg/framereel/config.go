// Package framereel provides a high-level API for converting image sequences into videos.
package framereel

import (
	"github.com/user/framereel/pkg/adapters/smartencoder"
	"github.com/user/framereel/pkg/orchestrator"
)

// QualityPreset represents a video quality preset name.
type QualityPreset string

const (
	QualityLow    QualityPreset = "low"
	QualityMedium QualityPreset = "medium"
	QualityHigh   QualityPreset = "high"
)

// QualitySettings contains quality parameters for video encoding.
type QualitySettings struct {
	VideoCRF    int // MP4 CRF value (0-51, lower is better)
	JPEGQuality int // JPEG quality for MJPEG frames (0-100)
}

// GetQualitySettings returns quality settings for the given preset.
func GetQualitySettings(preset QualityPreset) QualitySettings {
	switch preset {
	case QualityLow:
		return QualitySettings{
			VideoCRF:    35,
			JPEGQuality: 70,
		}
	case QualityHigh:
		return QualitySettings{
			VideoCRF:    15,
			JPEGQuality: 90,
		}
	default: // medium
		return QualitySettings{
			VideoCRF:    25,
			JPEGQuality: 80,
		}
	}
}

// Config represents the configuration for framereel video generation.
type Config struct {
	// Input
	Pattern string  // Glob pattern for matching images (default: "*")
	FPS     float64 // Playback frame rate (default: 30)
	Rotate  bool    // Rotate portrait frames 90 degrees counter-clockwise

	// Encoding
	Codec       smartencoder.Codec // Preferred codec (auto, h264, mjpeg)
	VideoCRF    int                // MP4 CRF value (0-51, lower is better)
	Bitrate     int                // Target bitrate in kbps (0 = CRF mode)
	JPEGQuality int                // JPEG quality for MJPEG frames (0-100)
	OutroMs     int                // Duration to hold the final frame in milliseconds

	// Stamp overlay
	StampEnabled  bool    // Draw the frame index and file name on each frame
	StampFontSize float64 // Stamp font size in points
	StampFontPath string  // TrueType font file ("" = built-in font)

	// FFmpeg
	FFmpegPath string // Explicit ffmpeg binary ("" = search PATH)
}

// ConfigBuilder provides a fluent interface for building Config.
type ConfigBuilder struct {
	config Config
}

// NewConfigBuilder creates a new ConfigBuilder with default settings.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		config: defaults(),
	}
}

// defaults returns the default configuration.
func defaults() Config {
	return Config{
		// Input
		Pattern: "*",
		FPS:     30.0,
		Rotate:  true,

		// Encoding (medium quality preset)
		Codec:       smartencoder.CodecAuto,
		VideoCRF:    25,
		Bitrate:     0,
		JPEGQuality: 80,
		OutroMs:     0,

		// Stamp overlay
		StampEnabled:  false,
		StampFontSize: 16,
	}
}

// Build returns the final Config, applying validation and constraints.
func (b *ConfigBuilder) Build() Config {
	cfg := b.config

	// A non-positive frame rate falls back to the default
	if cfg.FPS <= 0 {
		cfg.FPS = 30.0
	}

	// An empty pattern would match nothing, treat it as match-all
	if cfg.Pattern == "" {
		cfg.Pattern = "*"
	}

	return cfg
}

// WithPattern sets the glob pattern for matching images.
func (b *ConfigBuilder) WithPattern(pattern string) *ConfigBuilder {
	b.config.Pattern = pattern
	return b
}

// WithFPS sets the playback frame rate.
// Non-positive values will be replaced with the default of 30.
func (b *ConfigBuilder) WithFPS(fps float64) *ConfigBuilder {
	b.config.FPS = fps
	return b
}

// WithRotate enables or disables rotating portrait frames counter-clockwise.
func (b *ConfigBuilder) WithRotate(rotate bool) *ConfigBuilder {
	b.config.Rotate = rotate
	return b
}

// WithCodec sets the preferred video codec.
func (b *ConfigBuilder) WithCodec(codec smartencoder.Codec) *ConfigBuilder {
	b.config.Codec = codec
	return b
}

// WithVideoCRF sets the MP4 CRF value (0-51, lower is better).
func (b *ConfigBuilder) WithVideoCRF(crf int) *ConfigBuilder {
	b.config.VideoCRF = crf
	return b
}

// WithBitrate sets the target bitrate in kbps.
// Use 0 for CRF mode.
func (b *ConfigBuilder) WithBitrate(bitrate int) *ConfigBuilder {
	b.config.Bitrate = bitrate
	return b
}

// WithJPEGQuality sets the JPEG quality for MJPEG frames (0-100).
func (b *ConfigBuilder) WithJPEGQuality(quality int) *ConfigBuilder {
	b.config.JPEGQuality = quality
	return b
}

// WithQualityPreset applies a quality preset (low, medium, high).
func (b *ConfigBuilder) WithQualityPreset(preset QualityPreset) *ConfigBuilder {
	settings := GetQualitySettings(preset)
	b.config.VideoCRF = settings.VideoCRF
	b.config.JPEGQuality = settings.JPEGQuality
	return b
}

// WithOutroMs sets the duration to hold the final frame in milliseconds.
func (b *ConfigBuilder) WithOutroMs(ms int) *ConfigBuilder {
	b.config.OutroMs = ms
	return b
}

// WithStamp enables or disables the frame stamp overlay.
func (b *ConfigBuilder) WithStamp(enabled bool) *ConfigBuilder {
	b.config.StampEnabled = enabled
	return b
}

// WithStampFontSize sets the stamp font size in points.
func (b *ConfigBuilder) WithStampFontSize(size float64) *ConfigBuilder {
	b.config.StampFontSize = size
	return b
}

// WithStampFontPath sets the TrueType font file used for the stamp.
func (b *ConfigBuilder) WithStampFontPath(path string) *ConfigBuilder {
	b.config.StampFontPath = path
	return b
}

// WithFFmpegPath sets an explicit ffmpeg binary path.
func (b *ConfigBuilder) WithFFmpegPath(path string) *ConfigBuilder {
	b.config.FFmpegPath = path
	return b
}

// ToOrchestratorConfig converts Config to orchestrator.Config.
// Codec and FFmpegPath are not part of the orchestrator configuration;
// pass them to smartencoder.New when constructing the pipeline.
func (c Config) ToOrchestratorConfig(sourceDir, outputPath string) orchestrator.Config {
	return orchestrator.Config{
		SourceDir:  sourceDir,
		OutputPath: outputPath,

		// Input
		Pattern: c.Pattern,
		FPS:     c.FPS,
		Rotate:  c.Rotate,

		// Stamp overlay
		StampEnabled:  c.StampEnabled,
		StampFontSize: c.StampFontSize,
		StampFontPath: c.StampFontPath,

		// Encoding
		VideoCRF:    c.VideoCRF,
		Bitrate:     c.Bitrate,
		JPEGQuality: c.JPEGQuality,
		OutroMs:     c.OutroMs,
	}
}
