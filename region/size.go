package region

import "github.com/tidbytes/tidbytes/memerr"

// Truncate drops logical bits beyond newLength. It never extends: if
// newLength exceeds BitLength(r), it signals BoundsError.
func Truncate(r Region, newLength int) (Region, error) {
	if newLength < 0 || newLength > r.bits {
		return Region{}, memerr.Bounds("truncate to %d exceeds length %d", newLength, r.bits)
	}
	if newLength == 0 {
		return Region{}, nil
	}
	return build(packBits(logicalBits(r)[:newLength])), nil
}

// Extend appends fillBit until r's length equals newLength. It never
// shrinks: if newLength is less than BitLength(r), it signals BoundsError.
func Extend(r Region, newLength int, fillBit bool) (Region, error) {
	if newLength < r.bits {
		return Region{}, memerr.Bounds("extend to %d is shorter than length %d", newLength, r.bits)
	}
	if newLength == r.bits {
		return Identity(r), nil
	}

	fill := uint8(0)
	if fillBit {
		fill = 1
	}

	bits := logicalBits(r)
	for len(bits) < newLength {
		bits = append(bits, fill)
	}
	return build(packBits(bits)), nil
}

// EnsureBitLength dispatches to Truncate or Extend as needed to reach
// exactly newLength bits.
func EnsureBitLength(r Region, newLength int, fillBit bool) (Region, error) {
	switch {
	case newLength < r.bits:
		return Truncate(r, newLength)
	case newLength > r.bits:
		return Extend(r, newLength, fillBit)
	default:
		return Identity(r), nil
	}
}

// EnsureByteLength is the byte-granular variant of EnsureBitLength.
func EnsureByteLength(r Region, newByteLength int, fillBit bool) (Region, error) {
	if newByteLength < 0 {
		return Region{}, memerr.Bounds("byte length %d is negative", newByteLength)
	}
	return EnsureBitLength(r, newByteLength*8, fillBit)
}

// Concatenate returns a Region of length BitLength(a)+BitLength(b), with a's
// bits first in identity order.
func Concatenate(a, b Region) Region {
	bits := make([]uint8, 0, a.bits+b.bits)
	bits = append(bits, logicalBits(a)...)
	bits = append(bits, logicalBits(b)...)
	return build(packBits(bits))
}
