// Package consoleprogress provides a progress reporter that prints to the console.
package consoleprogress

import (
	"fmt"
	"io"
	"os"

	"github.com/ideamans/go-l10n"

	"github.com/user/framereel/pkg/ports"
)

// Reporter prints conversion progress to a writer.
//
// A line is printed for every tenth position and for the final one.
// Frames skipped because of decode failures produce no line, so a
// corrupt file can also suppress the line its position would have
// triggered.
type Reporter struct {
	out   io.Writer
	total int
}

// New creates a Reporter that prints to stdout.
func New() *Reporter {
	return &Reporter{out: os.Stdout}
}

// NewWithWriter creates a Reporter that prints to the given writer.
func NewWithWriter(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

// Begin announces the total number of matched images.
func (r *Reporter) Begin(total int) {
	r.total = total
}

// Step reports an encoded frame at the given 1-based position.
func (r *Reporter) Step(position int) {
	if r.total <= 0 {
		return
	}
	if position%10 != 0 && position != r.total {
		return
	}
	percent := float64(position) / float64(r.total) * 100
	fmt.Fprintln(r.out, l10n.F("Processing: %d/%d images (%.1f%%)", position, r.total, percent))
}

// Done reports the final counts. The last Step line already covers the
// common case, so nothing is printed here.
func (r *Reporter) Done(encoded, skipped int) {}

// Ensure Reporter implements ports.ProgressReporter
var _ ports.ProgressReporter = (*Reporter)(nil)
