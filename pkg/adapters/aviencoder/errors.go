package aviencoder

import "errors"

var (
	// ErrNotInitialized is returned when encoder methods are called before Begin.
	ErrNotInitialized = errors.New("aviencoder: encoder not initialized")

	// ErrNoFrames is returned when End is called without any encoded frames.
	ErrNoFrames = errors.New("aviencoder: no frames to encode")
)
