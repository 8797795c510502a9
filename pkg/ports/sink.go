package ports

import (
	"image"
)

// DebugSink abstracts debug output for intermediate results.
// It allows saving intermediate processing results for debugging purposes.
type DebugSink interface {
	// Enabled returns true if debug output is enabled.
	Enabled() bool

	// SaveScanJSON saves the scan result as JSON.
	SaveScanJSON(data []byte) error

	// SaveFrame saves a processed frame before it goes to the encoder.
	SaveFrame(index int, img image.Image) error

	// SaveRunJSON saves the conversion run metadata as JSON.
	SaveRunJSON(data []byte) error
}
