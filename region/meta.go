package region

import "iter"

// BitLength returns L, the number of logical bits in r.
func BitLength(r Region) int {
	return r.bits
}

// ByteLength returns the ceil(L/8) whole bytes needed to hold r's bits.
func ByteLength(r Region) int {
	return (r.bits + 7) / 8
}

// IterateLogicalBits yields exactly BitLength(r) bit values (0 or 1) in
// identity order, ignoring None padding. The sequence is finite and, per the
// algebra's contract, not guaranteed restartable — a fresh call always
// starts over, but a caller should not assume a single returned iter.Seq can
// be range'd more than once.
func IterateLogicalBits(r Region) iter.Seq[int] {
	return func(yield func(int) bool) {
		emitted := 0
		for _, c := range r.cells {
			for _, s := range c {
				if s == None || emitted >= r.bits {
					return
				}
				v := 0
				if s == One {
					v = 1
				}
				if !yield(v) {
					return
				}
				emitted++
			}
		}
	}
}
