package custombar

import (
	"fmt"
	"math"
)

// Options configures encoding and rendering. Start from VectorDefaults or
// RasterDefaults and override fields as needed; renderers never modify the
// options they are given.
type Options struct {
	// Mode selects how characters map to bits.
	Mode Mode `yaml:"mode" toml:"mode"`

	// ModuleWidth is the pixel width of one bit.
	ModuleWidth float64 `yaml:"moduleWidth" toml:"moduleWidth"`

	// Height is the bar height in pixels.
	Height float64 `yaml:"height" toml:"height"`

	// Margin is the quiet zone in pixels on the left and right.
	Margin float64 `yaml:"margin" toml:"margin"`

	// Background and LineColor are CSS colors for the background and bars.
	Background string `yaml:"background" toml:"background"`
	LineColor  string `yaml:"lineColor" toml:"lineColor"`

	// IncludeText renders the contents as a label beneath the bars.
	IncludeText bool `yaml:"includeText" toml:"includeText"`

	// Font is the label font, e.g. "12px monospace".
	Font string `yaml:"font" toml:"font"`

	// Checksum appends the 8-bit additive checksum before the stop guard.
	Checksum bool `yaml:"checksum" toml:"checksum"`

	// Width overrides the computed total width when positive.
	Width float64 `yaml:"width" toml:"width"`

	// CharacterSet names the charset character codes are taken from.
	// Empty means UTF-16 code units.
	CharacterSet string `yaml:"characterSet" toml:"characterSet"`
}

// labelBand is the vertical space reserved below the bars for the label.
const labelBand = 24

// VectorDefaults returns the default options for SVG output.
func VectorDefaults() Options {
	return Options{
		Mode:        ModeAlphanumeric,
		ModuleWidth: 2,
		Height:      60,
		Margin:      6,
		Background:  "#ffffff",
		LineColor:   "#000000",
		IncludeText: true,
		Font:        "12px monospace",
	}
}

// RasterDefaults returns the default options for raster output.
func RasterDefaults() Options {
	return Options{
		Mode:        ModeAlphanumeric,
		ModuleWidth: 1,
		Height:      60,
		Margin:      6,
		Background:  "#fff",
		LineColor:   "#000",
		IncludeText: true,
		Font:        "12px monospace",
	}
}

// Validate checks that the numeric options describe a drawable symbol.
// The mode is checked by the encoder.
func (o *Options) Validate() error {
	switch {
	case !positive(o.ModuleWidth):
		return fmt.Errorf("module width %v must be positive: %w", o.ModuleWidth, ErrInvalidOptions)
	case !positive(o.Height):
		return fmt.Errorf("height %v must be positive: %w", o.Height, ErrInvalidOptions)
	case o.Margin < 0 || math.IsNaN(o.Margin) || math.IsInf(o.Margin, 0):
		return fmt.Errorf("margin %v must not be negative: %w", o.Margin, ErrInvalidOptions)
	case o.Width < 0 || math.IsNaN(o.Width) || math.IsInf(o.Width, 0):
		return fmt.Errorf("width %v must not be negative: %w", o.Width, ErrInvalidOptions)
	}
	return nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

// resolve returns opts, or the given defaults when opts is nil, after
// validating it.
func resolve(opts *Options, defaults func() Options) (*Options, error) {
	if opts == nil {
		d := defaults()
		opts = &d
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return opts, nil
}
