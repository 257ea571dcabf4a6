package region

import (
	"slices"

	"github.com/tidbytes/tidbytes/memerr"
)

// GetBits extracts the half-open range [start, stop) of logical bits from r.
// The result is in identity order with length stop-start.
func GetBits(r Region, start, stop int) (Region, error) {
	if start < 0 || stop < start || stop > r.bits {
		return Region{}, memerr.Bounds("get_bits [%d, %d) out of range for length %d", start, stop, r.bits)
	}
	return build(packBits(logicalBits(r)[start:stop])), nil
}

// GetBit is the length-1 specialization of GetBits.
func GetBit(r Region, index int) (Region, error) {
	out, err := GetBits(r, index, index+1)
	if err != nil {
		return Region{}, memerr.Bounds("get_bit %d out of range for length %d", index, r.bits)
	}
	return out, nil
}

// GetByte requires that the i-th group of 8 bits lies wholly within L; a
// partial-byte read signals ByteAlignmentError rather than silently
// returning a short result.
func GetByte(r Region, index int) (Region, error) {
	if index < 0 {
		return Region{}, memerr.Bounds("get_byte index %d is negative", index)
	}
	start := index * 8
	stop := start + 8
	if stop > r.bits {
		return Region{}, memerr.ByteAlignment("byte %d is not wholly within bit length %d", index, r.bits)
	}
	return GetBits(r, start, stop)
}

// GetBytes returns a Region spanning the j-i whole cells starting at cell i.
func GetBytes(r Region, i, j int) (Region, error) {
	n := len(r.cells)
	if i < 0 || j < i || j > n {
		return Region{}, memerr.Bounds("get_bytes [%d, %d) out of range for %d cells", i, j, n)
	}
	return build(slices.Clone(r.cells[i:j])), nil
}

// SetBits returns a copy of destination with the logical bits
// [offset, offset+bit_length(source)) overwritten by source's logical bits.
// destination is never extended: an overrun signals BoundsError.
func SetBits(destination Region, offset int, source Region) (Region, error) {
	end := offset + source.bits
	if offset < 0 || end > destination.bits {
		return Region{}, memerr.Bounds(
			"set_bits offset %d length %d overruns destination length %d", offset, source.bits, destination.bits)
	}

	bits := logicalBits(destination)
	copy(bits[offset:end], logicalBits(source))
	return build(packBits(bits)), nil
}

// SetBit is the length-1 specialization of SetBits.
func SetBit(destination Region, offset int, source Region) (Region, error) {
	if source.bits != 1 {
		return Region{}, memerr.Bounds("set_bit source must be exactly 1 bit, got %d", source.bits)
	}
	return SetBits(destination, offset, source)
}

// SetByte is the byte-aligned specialization of SetBits: source must be
// exactly one byte (8 bits) and offset is a byte index.
func SetByte(destination Region, offset int, source Region) (Region, error) {
	if source.bits != 8 {
		return Region{}, memerr.ByteAlignment("set_byte source must be exactly 8 bits, got %d", source.bits)
	}
	if offset < 0 {
		return Region{}, memerr.Bounds("set_byte offset %d is negative", offset)
	}
	return SetBits(destination, offset*8, source)
}

// SetBytes is the byte-aligned specialization of SetBits: source's bit
// length must be a multiple of 8 and offset is a byte index.
func SetBytes(destination Region, offset int, source Region) (Region, error) {
	if source.bits%8 != 0 {
		return Region{}, memerr.ByteAlignment("set_bytes source length %d is not a multiple of 8", source.bits)
	}
	if offset < 0 {
		return Region{}, memerr.Bounds("set_bytes offset %d is negative", offset)
	}
	return SetBits(destination, offset*8, source)
}
