package custombar

import (
	"fmt"
	"math/bits"

	"github.com/ericlevine/custombar/bitutil"
	"github.com/ericlevine/custombar/charset"
)

// Guard patterns framing every symbol.
const (
	startGuard     = 0x5 // 101
	startGuardBits = 3
	stopGuard      = 0x1D // 11101
	stopGuardBits  = 5
	checksumBits   = 8
	minCodeBits    = 8
)

// payloadEncoder appends the payload bits for codes to dst.
type payloadEncoder func(codes []uint32, dst *bitutil.BitArray)

var payloadEncoders = map[Mode]payloadEncoder{
	ModeAlphanumeric: appendAlphanumeric,
}

// Encode encodes contents into a framed bit sequence. Character codes are
// the UTF-16 code units of contents.
func Encode(contents string, mode Mode, withChecksum bool) (*bitutil.BitArray, error) {
	codes, err := charset.UTF16.Codes(contents)
	if err != nil {
		return nil, err
	}
	return EncodeCodes(codes, mode, withChecksum)
}

// EncodeCodes encodes character codes into a framed bit sequence:
// start guard, payload, optional checksum byte, stop guard.
func EncodeCodes(codes []uint32, mode Mode, withChecksum bool) (*bitutil.BitArray, error) {
	encode, ok := payloadEncoders[mode]
	if !ok {
		if mode == ModeBinary {
			return nil, fmt.Errorf("mode %q is reserved: %w", mode, ErrUnsupportedMode)
		}
		return nil, fmt.Errorf("mode %q: %w", mode, ErrUnsupportedMode)
	}

	result := &bitutil.BitArray{}
	result.AppendBits(startGuard, startGuardBits)
	encode(codes, result)
	if withChecksum {
		result.AppendBits(uint32(Checksum(codes)), checksumBits)
	}
	result.AppendBits(stopGuard, stopGuardBits)
	return result, nil
}

// Checksum returns the additive checksum of codes: their sum modulo 256.
func Checksum(codes []uint32) byte {
	var sum byte
	for _, c := range codes {
		sum += byte(c)
	}
	return sum
}

func appendAlphanumeric(codes []uint32, dst *bitutil.BitArray) {
	for _, c := range codes {
		n := bits.Len32(c)
		if n < minCodeBits {
			n = minCodeBits
		}
		dst.AppendBits(c, n)
	}
}
