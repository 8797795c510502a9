package mjpegencoder

import "errors"

var (
	// ErrNotInitialized is returned when encoder methods are called before Begin.
	ErrNotInitialized = errors.New("mjpegencoder: encoder not initialized")

	// ErrNoFrames is returned when End is called without any encoded frames.
	ErrNoFrames = errors.New("mjpegencoder: no frames to encode")
)
