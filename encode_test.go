package custombar

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/ericlevine/custombar/bitutil"
)

func mustEncode(t *testing.T, contents string, mode Mode, checksum bool) *bitutil.BitArray {
	t.Helper()
	bits, err := Encode(contents, mode, checksum)
	if err != nil {
		t.Fatalf("Encode(%q) error: %v", contents, err)
	}
	return bits
}

func TestEncodeSingleCharacter(t *testing.T) {
	bits := mustEncode(t, "A", ModeAlphanumeric, false)
	if got, want := bits.String(), "101"+"01000001"+"11101"; got != want {
		t.Errorf("bits = %s, want %s", got, want)
	}
	if bits.Size() != 16 {
		t.Errorf("size = %d, want 16", bits.Size())
	}
	if runs := bitutil.ToRuns(bits); len(runs) != 9 {
		t.Errorf("got %d runs, want 9", len(runs))
	}
}

func TestEncodeGuards(t *testing.T) {
	tests := []string{"", "A", "HELLO123", "hello world", "<script>&\"'</script>", "é€😀"}
	for _, contents := range tests {
		for _, checksum := range []bool{false, true} {
			t.Run(fmt.Sprintf("%s/checksum=%v", contents, checksum), func(t *testing.T) {
				s := mustEncode(t, contents, ModeAlphanumeric, checksum).String()
				if !strings.HasPrefix(s, "101") {
					t.Errorf("bits %s do not start with the start guard", s)
				}
				if !strings.HasSuffix(s, "11101") {
					t.Errorf("bits %s do not end with the stop guard", s)
				}
			})
		}
	}
}

func TestEncodeEmpty(t *testing.T) {
	bits := mustEncode(t, "", ModeAlphanumeric, false)
	if got := bits.String(); got != "10111101" {
		t.Errorf("bits = %s, want 10111101", got)
	}
	bits = mustEncode(t, "", ModeAlphanumeric, true)
	if got := bits.String(); got != "101"+"00000000"+"11101" {
		t.Errorf("bits with checksum = %s", got)
	}
}

func TestEncodeLength(t *testing.T) {
	tests := []string{"", "A", "AB", "HELLO123", "The quick brown fox", "ÿ"}
	for _, contents := range tests {
		for _, checksum := range []bool{false, true} {
			bits := mustEncode(t, contents, ModeAlphanumeric, checksum)
			want := 8 + 8*len([]rune(contents))
			if checksum {
				want += 8
			}
			if bits.Size() != want {
				t.Errorf("Encode(%q, checksum=%v) size = %d, want %d", contents, checksum, bits.Size(), want)
			}
		}
	}
}

func TestEncodePayloadOrder(t *testing.T) {
	bits := mustEncode(t, "Hi!", ModeAlphanumeric, false)
	for i, want := range []uint32{'H', 'i', '!'} {
		if got := bits.Uint(3+8*i, 8); got != want {
			t.Errorf("payload byte %d = %#x, want %#x", i, got, want)
		}
	}
}

func TestEncodeChecksum(t *testing.T) {
	tests := []struct {
		contents string
		want     byte
	}{
		{"", 0},
		{"A", 65},
		{"AB", 131},
		{"HELLO123", byte(('H' + 'E' + 'L' + 'L' + 'O' + '1' + '2' + '3') % 256)},
		{"zzz", byte((3 * 'z') % 256)},
	}
	for _, tc := range tests {
		t.Run(tc.contents, func(t *testing.T) {
			first := mustEncode(t, tc.contents, ModeAlphanumeric, true)
			second := mustEncode(t, tc.contents, ModeAlphanumeric, true)
			if !first.Equal(second) {
				t.Fatal("encoding is not deterministic")
			}
			offset := first.Size() - stopGuardBits - checksumBits
			if got := first.Uint(offset, checksumBits); got != uint32(tc.want) {
				t.Errorf("checksum = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestChecksumWraps(t *testing.T) {
	codes := []uint32{200, 100, 0x20AC}
	want := byte((200 + 100 + 0x20AC) % 256)
	if got := Checksum(codes); got != want {
		t.Errorf("Checksum = %d, want %d", got, want)
	}
}

func TestEncodeWideCodes(t *testing.T) {
	// U+20AC needs 14 bits and keeps them all.
	bits := mustEncode(t, "€", ModeAlphanumeric, false)
	if bits.Size() != 8+14 {
		t.Fatalf("size = %d, want 22", bits.Size())
	}
	if got := bits.Uint(3, 14); got != 0x20AC {
		t.Errorf("payload = %#x, want 0x20ac", got)
	}
}

func TestEncodeUnsupportedMode(t *testing.T) {
	for _, mode := range []Mode{"unicode", ModeBinary, ""} {
		t.Run(string(mode), func(t *testing.T) {
			bits, err := Encode("A", mode, false)
			if !errors.Is(err, ErrUnsupportedMode) {
				t.Errorf("err = %v, want ErrUnsupportedMode", err)
			}
			if bits != nil {
				t.Errorf("bits = %s, want nil", bits)
			}
		})
	}
}

func TestBuild(t *testing.T) {
	opts := VectorDefaults()
	opts.Checksum = true
	bc, err := Build("AB", &opts)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if bc.Bits.Size() != 8+16+8 {
		t.Errorf("bits = %d, want 32", bc.Bits.Size())
	}
	if !bitutil.ExpandRuns(bc.Runs).Equal(bc.Bits) {
		t.Error("runs do not expand back to the bit sequence")
	}
}

func TestBuildCharacterSet(t *testing.T) {
	opts := VectorDefaults()
	opts.CharacterSet = "UTF-8"
	bc, err := Build("é", &opts)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if bc.Bits.Size() != 8+16 {
		t.Fatalf("bits = %d, want 24", bc.Bits.Size())
	}
	if got := bc.Bits.Uint(3, 16); got != 0xC3A9 {
		t.Errorf("payload = %#x, want 0xc3a9", got)
	}

	opts.CharacterSet = "no-such-charset"
	if _, err := Build("é", &opts); err == nil {
		t.Error("expected error for unknown character set")
	}
}
