package pixelgrid

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientSteps - fewer than two step images, so nothing new was drawn
	ErrInsufficientSteps = errors.New("need a background and at least one step image")
	// ErrSizeMismatch - a step image differs in size from the background
	ErrSizeMismatch = errors.New("step image size differs from background")
	// ErrUnsupportedFormat - no encoder for the output file extension
	ErrUnsupportedFormat = errors.New("unsupported output format")
	// ErrInvalidOptions - an Options field is out of range
	ErrInvalidOptions = errors.New("invalid options")
)

// AssetLoadError - an image or font file could not be opened or decoded
type AssetLoadError struct {
	Path string
	Err  error
}

func (e *AssetLoadError) Error() string {
	return fmt.Sprintf("cannot load %s: %v", e.Path, e.Err)
}

func (e *AssetLoadError) Unwrap() error {
	return e.Err
}
