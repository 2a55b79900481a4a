// Package custombar encodes text into a simple linear barcode and renders it
// as SVG markup or onto a raster canvas.
//
// Text is converted to character codes, packed into a bit sequence framed by
// fixed start and stop guards, compressed into runs of equal bits, laid out
// into bar geometry and finally drawn.
package custombar

import (
	"fmt"

	"github.com/ericlevine/custombar/bitutil"
	"github.com/ericlevine/custombar/charset"
)

// Mode selects how character codes are packed into bits.
type Mode string

const (
	// ModeAlphanumeric packs every character code as its binary value,
	// most significant bit first, at least 8 bits wide.
	ModeAlphanumeric Mode = "alphanumeric"

	// ModeBinary is reserved for a denser packing and is not implemented.
	ModeBinary Mode = "binary"
)

// String returns the name of the mode.
func (m Mode) String() string {
	return string(m)
}

// Barcode is an encoded symbol: its bit sequence and the runs it compresses to.
type Barcode struct {
	Contents string
	Mode     Mode
	Checksum bool
	Bits     *bitutil.BitArray
	Runs     []bitutil.Run
}

// Build encodes contents according to opts. A nil opts uses VectorDefaults.
func Build(contents string, opts *Options) (*Barcode, error) {
	if opts == nil {
		d := VectorDefaults()
		opts = &d
	}
	codes, err := charset.Codes(contents, opts.CharacterSet)
	if err != nil {
		return nil, fmt.Errorf("build %q: %w", contents, err)
	}
	bits, err := EncodeCodes(codes, opts.Mode, opts.Checksum)
	if err != nil {
		return nil, err
	}
	runs := bitutil.ToRuns(bits)
	Logger().Debug("custombar: encoded",
		"mode", opts.Mode, "chars", len(codes), "bits", bits.Size(), "runs", len(runs))
	return &Barcode{
		Contents: contents,
		Mode:     opts.Mode,
		Checksum: opts.Checksum,
		Bits:     bits,
		Runs:     runs,
	}, nil
}
