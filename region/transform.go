package region

// Identity returns a structurally independent copy of r with no shared
// mutable storage.
func Identity(r Region) Region {
	return build(append([]Cell(nil), r.cells...))
}

// ReverseBits reverses the 8 bit slots within each cell, preserving cell
// order. On the final cell, only the populated prefix participates: those
// bits are reversed among themselves and stay left-packed, so padding stays
// in the same suffix positions. This is a per-byte reversal; it never moves
// bits across cell boundaries.
func ReverseBits(r Region) Region {
	cells := make([]Cell, len(r.cells))
	for i, c := range r.cells {
		p := 8
		if i == len(r.cells)-1 {
			p = populated(c)
		}

		var nc Cell
		for k := 0; k < p; k++ {
			nc[k] = c[p-1-k]
		}
		for k := p; k < 8; k++ {
			nc[k] = c[k]
		}
		cells[i] = nc
	}
	return build(cells)
}

// ReverseBytes reverses the order of cells, leaving each cell's internal bit
// order unchanged. Formally: split the logical bit sequence into groups of 8
// (the last group possibly short), reverse the group order, concatenate,
// and re-pack left-aligned — which is exactly what's needed to keep the
// None-padding-is-suffix-of-final-cell invariant when L isn't a multiple
// of 8.
func ReverseBytes(r Region) Region {
	bits := logicalBits(r)
	groups := chunk(bits, 8)

	out := make([]uint8, 0, len(bits))
	for i := len(groups) - 1; i >= 0; i-- {
		out = append(out, groups[i]...)
	}
	return build(packBits(out))
}

// Reverse reverses the full logical bit sequence: bit i becomes bit L-1-i.
// It equals ReverseBits(ReverseBytes(r)) only when L is a multiple of 8;
// otherwise it is defined directly on the logical sequence, which is what
// this implementation does unconditionally.
func Reverse(r Region) Region {
	bits := logicalBits(r)
	out := make([]uint8, len(bits))
	for i, b := range bits {
		out[len(bits)-1-i] = b
	}
	return build(packBits(out))
}

func chunk(bits []uint8, size int) [][]uint8 {
	if len(bits) == 0 {
		return nil
	}
	out := make([][]uint8, 0, (len(bits)+size-1)/size)
	for i := 0; i < len(bits); i += size {
		end := i + size
		if end > len(bits) {
			end = len(bits)
		}
		out = append(out, bits[i:end])
	}
	return out
}
