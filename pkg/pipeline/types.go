package pipeline

// =============================================================================
// Common Types
// =============================================================================

// Dimension represents width and height.
type Dimension struct {
	Width  int
	Height int
}

// =============================================================================
// Scan Stage Types
// =============================================================================

// ScanInput contains parameters for locating the source images.
type ScanInput struct {
	SourceDir string // Folder containing the image sequence
	Pattern   string // Shell file name pattern matched against base names
}

// DefaultScanInput returns ScanInput with default values. The default
// pattern matches every file, the CLI narrows it to *.png.
func DefaultScanInput() ScanInput {
	return ScanInput{
		Pattern: "*",
	}
}

// ScanResult contains the matched image paths in playback order.
type ScanResult struct {
	SourceDir string
	Pattern   string
	Paths     []string
}

// =============================================================================
// Assemble Stage Types
// =============================================================================

// AssembleInput contains parameters for building the video stream.
type AssembleInput struct {
	Paths       []string // Image files in playback order
	FPS         float64  // Frames per second
	Rotate      bool     // Rotate each frame 90 degrees counterclockwise
	Stamp       StampOptions
	OutroMs     int // Duration to hold the last frame
	Quality     int // CRF: 0-51 (lower is higher quality)
	Bitrate     int // Target bitrate in kbps; 0 selects quality-based rate control
	JPEGQuality int // JPEG quality for MJPEG backends: 1-100
}

// DefaultAssembleInput returns AssembleInput with default values.
func DefaultAssembleInput() AssembleInput {
	return AssembleInput{
		FPS:         30.0,
		Rotate:      true,
		OutroMs:     0,
		Quality:     25,
		Bitrate:     0,
		JPEGQuality: 80,
	}
}

// StampOptions configures the optional frame counter overlay.
type StampOptions struct {
	Enabled  bool
	FontSize float64
	FontPath string // Path to a TTF file; empty selects the built-in font
}

// DefaultStampOptions returns StampOptions with default values.
// The overlay is disabled by default so that source pixels pass
// through to the encoder untouched.
func DefaultStampOptions() StampOptions {
	return StampOptions{
		Enabled:  false,
		FontSize: 16,
	}
}

// AssembleResult contains the encoded video and conversion counters.
type AssembleResult struct {
	VideoData  []byte
	Size       Dimension // Frame dimensions after rotation
	FrameCount int       // Frames written to the encoder, outro excluded
	Skipped    []string  // Source paths that failed to decode
	DurationMs int
}
