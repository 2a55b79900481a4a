package custombar

import "errors"

var (
	// ErrUnsupportedMode is returned when a mode has no payload encoder.
	ErrUnsupportedMode = errors.New("unsupported mode")

	// ErrInvalidSurface is returned when a raster target has no drawing context.
	ErrInvalidSurface = errors.New("invalid surface")

	// ErrInvalidOptions is returned when render options fail validation.
	ErrInvalidOptions = errors.New("invalid options")
)
