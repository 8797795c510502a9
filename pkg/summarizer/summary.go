// Package summarizer provides summary generation for conversion results.
package summarizer

import "time"

// Summary contains all data collected during a conversion run.
type Summary struct {
	// Metadata
	GeneratedAt time.Time

	// Source image sequence
	Source SourceInfo

	// Conversion settings
	Settings Settings

	// Video output details
	Video VideoInfo
}

// SourceInfo contains information about the scanned image sequence.
type SourceInfo struct {
	Dir     string
	Pattern string
	Matched int
	Skipped int
}

// Settings contains the conversion configuration.
type Settings struct {
	FPS     float64
	Rotate  bool
	OutroMs int

	// Encoder selection
	Codec     string
	Container string
	Backend   string

	// Quality (CRF for H.264, JPEG quality for MJPEG)
	Quality int
}

// VideoInfo contains information about the output video.
type VideoInfo struct {
	OutputPath string
	FrameCount int
	DurationMs int
	FileSize   int64
	Width      int
	Height     int
}

// NewSummary creates a new Summary with the current timestamp.
func NewSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Now(),
	}
}

// Builder provides a fluent interface for building a Summary.
type Builder struct {
	summary *Summary
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{
		summary: NewSummary(),
	}
}

// WithSource sets source sequence information.
func (b *Builder) WithSource(dir, pattern string, matched, skipped int) *Builder {
	b.summary.Source = SourceInfo{
		Dir:     dir,
		Pattern: pattern,
		Matched: matched,
		Skipped: skipped,
	}
	return b
}

// WithSettings sets conversion settings.
func (b *Builder) WithSettings(settings Settings) *Builder {
	b.summary.Settings = settings
	return b
}

// WithVideo sets video output information.
func (b *Builder) WithVideo(video VideoInfo) *Builder {
	b.summary.Video = video
	return b
}

// Build returns the constructed Summary.
func (b *Builder) Build() *Summary {
	return b.summary
}
