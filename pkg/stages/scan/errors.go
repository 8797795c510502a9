package scan

import "errors"

// ErrNoImages is returned when the glob pattern matches no files.
var ErrNoImages = errors.New("scan: no images found")
