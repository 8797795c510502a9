package ports

// ProgressReporter receives conversion progress events.
//
// Step is reported only for frames that were actually encoded. A source
// image that fails to decode is skipped without a Step, which matches
// the reporting cadence users of the CLI rely on.
type ProgressReporter interface {
	// Begin announces the total number of matched images.
	Begin(total int)

	// Step reports that the frame at the given 1-based position among
	// the matched images has been encoded.
	Step(position int)

	// Done reports the final counts once all images have been visited.
	Done(encoded, skipped int)
}
