package renderer

import "errors"

var (
	ErrInvalidResolution = errors.New("renderer: image width and height must be positive")
	ErrInvalidSampling   = errors.New("renderer: samples per pixel and max depth must be positive")
	ErrNoCamera          = errors.New("renderer: scene has no camera")
	ErrNoWorld           = errors.New("renderer: scene has no world")
	ErrUnsupportedFormat = errors.New("renderer: unsupported output format")
)
