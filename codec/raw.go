// Package codec bridges host-language primitives (integers, byte slices,
// bit arrays, text) and region.Region under one of two explicit
// orientations: raw/identity (left-to-right on both axes) or numeric
// (right-to-left bits, declared byte order). Every From* codec builds a
// Region; every Into* codec is its inverse. Names never start with "op_" —
// that prefix is reserved for the algebra's pure Region->Region operations.
package codec

import (
	"github.com/tidbytes/tidbytes/memerr"
	"github.com/tidbytes/tidbytes/region"
)

// cellFromByteMSB builds a Cell from a byte value, slot 0 holding the most
// significant bit — the conventional, human-readable way of writing a byte's
// bits left to right. Used by the raw/identity codec family (FromBytes,
// FromByteList) where the input is an opaque byte VALUE with no inherent
// memory layout of its own, so the natural reading order is the one chosen.
func cellFromByteMSB(b byte) region.Cell {
	var c region.Cell
	for i := 0; i < 8; i++ {
		if b&(1<<(7-i)) != 0 {
			c[i] = region.One
		} else {
			c[i] = region.Zero
		}
	}
	return c
}

func byteFromCellMSB(c region.Cell) byte {
	var b byte
	for i := 0; i < 8; i++ {
		if c[i] == region.One {
			b |= 1 << (7 - i)
		}
	}
	return b
}

// FromBitList builds a Region from a flat slice of 0/1 values, already in
// identity order.
func FromBitList(bits []int) (region.Region, error) {
	raw := make([]uint8, len(bits))
	for i, b := range bits {
		if b != 0 && b != 1 {
			return region.Region{}, memerr.Invalid("bit %d is not 0 or 1: %d", i, b)
		}
		raw[i] = uint8(b)
	}
	return region.New(packRawBits(raw))
}

// FromByteList builds a Region from a slice of already-grouped bit groups
// (each up to 8 bits, 0 or 1), left-packed the way the final cell of a
// Region is. bitLength, if non-negative, truncates/extends the result.
func FromByteList(groups [][]int, bitLength int) (region.Region, error) {
	cells := make([]region.Cell, len(groups))
	for gi, group := range groups {
		if len(group) > 8 {
			return region.Region{}, memerr.Invalid("group %d has more than 8 bits", gi)
		}
		var c region.Cell
		for bi, b := range group {
			if b != 0 && b != 1 {
				return region.Region{}, memerr.Invalid("group %d bit %d is not 0 or 1", gi, bi)
			}
			if b != 0 {
				c[bi] = region.One
			} else {
				c[bi] = region.Zero
			}
		}
		cells[gi] = c
	}

	r, err := region.New(cells)
	if err != nil {
		return region.Region{}, err
	}
	if bitLength < 0 {
		return r, nil
	}
	return region.EnsureBitLength(r, bitLength, false)
}

// FromBytes builds a Region from whole byte values (0..255), loaded left to
// right; the bit axis within each byte is read left to right too (identity
// order on both axes, per spec.md §4.F).
func FromBytes(bytes []byte) (region.Region, error) {
	cells := make([]region.Cell, len(bytes))
	for i, b := range bytes {
		cells[i] = cellFromByteMSB(b)
	}
	return region.New(cells)
}

// IntoBitList is the inverse of FromBitList.
func IntoBitList(r region.Region) []int {
	out := make([]int, 0, region.BitLength(r))
	for b := range region.IterateLogicalBits(r) {
		out = append(out, b)
	}
	return out
}

// IntoBytes is the inverse of FromBytes. The region's bit length must be a
// whole number of bytes, or ByteAlignmentError is signaled.
func IntoBytes(r region.Region) ([]byte, error) {
	if region.BitLength(r)%8 != 0 {
		return nil, memerr.ByteAlignment("into_bytes: length %d is not a multiple of 8", region.BitLength(r))
	}
	cells := region.Cells(r)
	out := make([]byte, len(cells))
	for i, c := range cells {
		out[i] = byteFromCellMSB(c)
	}
	return out, nil
}

func packRawBits(bits []uint8) []region.Cell {
	if len(bits) == 0 {
		return nil
	}
	n := (len(bits) + 7) / 8
	cells := make([]region.Cell, n)
	for i, b := range bits {
		s := region.Zero
		if b != 0 {
			s = region.One
		}
		cells[i/8][i%8] = s
	}
	return cells
}
