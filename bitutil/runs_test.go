package bitutil

import (
	"math/rand/v2"
	"testing"
)

func bitsFromString(t *testing.T, s string) *BitArray {
	t.Helper()
	ba := &BitArray{}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '1':
			ba.AppendBit(true)
		case '0':
			ba.AppendBit(false)
		default:
			t.Fatalf("invalid bit character %q", s[i])
		}
	}
	return ba
}

func TestToRuns(t *testing.T) {
	tests := []struct {
		bits string
		want []Run
	}{
		{"", nil},
		{"1", []Run{{true, 1}}},
		{"0000", []Run{{false, 4}}},
		{"10111", []Run{{true, 1}, {false, 1}, {true, 3}}},
		{
			"1010100000111101",
			[]Run{
				{true, 1}, {false, 1}, {true, 1}, {false, 1}, {true, 1},
				{false, 5}, {true, 4}, {false, 1}, {true, 1},
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.bits, func(t *testing.T) {
			got := ToRuns(bitsFromString(t, tc.bits))
			if len(got) != len(tc.want) {
				t.Fatalf("got %d runs %v, want %d runs %v", len(got), got, len(tc.want), tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("run %d = %+v, want %+v", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestToRunsAcrossWordBoundary(t *testing.T) {
	ba := NewBitArray(100)
	for i := 20; i < 70; i++ {
		ba.Set(i)
	}
	got := ToRuns(ba)
	want := []Run{{false, 20}, {true, 50}, {false, 30}}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("run %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestRunsRoundTrip(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for n := 0; n < 200; n++ {
		ba := &BitArray{}
		size := r.IntN(300)
		for i := 0; i < size; i++ {
			// bias towards long runs every other sequence
			if n%2 == 0 {
				ba.AppendBit(r.IntN(2) == 1)
			} else {
				ba.AppendBit(r.IntN(8) == 0)
			}
		}
		runs := ToRuns(ba)
		for i, run := range runs {
			if run.Len < 1 {
				t.Fatalf("sequence %d: run %d has length %d", n, i, run.Len)
			}
			if i > 0 && runs[i-1].Bit == run.Bit {
				t.Fatalf("sequence %d: adjacent runs %d and %d share a value", n, i-1, i)
			}
		}
		if got := Modules(runs); got != size {
			t.Errorf("sequence %d: Modules = %d, want %d", n, got, size)
		}
		if back := ExpandRuns(runs); !back.Equal(ba) {
			t.Errorf("sequence %d: round trip mismatch\n got %s\nwant %s", n, back, ba)
		}
	}
}
