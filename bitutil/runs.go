package bitutil

// Run is a stretch of equal bits: Len consecutive copies of Bit.
type Run struct {
	Bit bool
	Len int
}

// ToRuns compresses a bit sequence into runs of equal bits, in order.
// An empty sequence yields no runs.
func ToRuns(ba *BitArray) []Run {
	var runs []Run
	for i := 0; i < ba.size; {
		bit := ba.Get(i)
		var end int
		if bit {
			end = ba.GetNextUnset(i)
		} else {
			end = ba.GetNextSet(i)
		}
		runs = append(runs, Run{Bit: bit, Len: end - i})
		i = end
	}
	return runs
}

// ExpandRuns rebuilds the bit sequence a run list was compressed from.
func ExpandRuns(runs []Run) *BitArray {
	ba := &BitArray{}
	for _, r := range runs {
		for j := 0; j < r.Len; j++ {
			ba.AppendBit(r.Bit)
		}
	}
	return ba
}

// Modules returns the total number of bits covered by runs.
func Modules(runs []Run) int {
	n := 0
	for _, r := range runs {
		n += r.Len
	}
	return n
}
