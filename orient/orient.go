// Package orient implements the orientation adapter (spec component G): it
// turns a foreign-ordered region into its identity-ordered equivalent, and
// back again, given the foreign region's declared bit order and byte order.
//
// The design insight it encodes: applying a foreign region's own declared
// bit+byte order as a transformation upon itself yields identity order. The
// same table runs both directions because the transformations are their own
// inverses; ReverseBytes (the L2R/R2L entry) is so only when the region's
// bit length is at most 8 or a multiple of 8.
package orient

import "github.com/tidbytes/tidbytes/region"

// BitOrder is the direction bits within a byte are read.
type BitOrder int

const (
	LeftToRight BitOrder = iota
	RightToLeft
)

// ByteOrder is the direction bytes within a region are read.
type ByteOrder int

const (
	BytesLeftToRight ByteOrder = iota
	BytesRightToLeft
)

// Transform applies the op_* transform that corresponds to the given
// bit/byte order declaration, per the spec §4.G table:
//
//	L2R/L2R -> Identity      R2L/L2R -> ReverseBits
//	L2R/R2L -> ReverseBytes  R2L/R2L -> Reverse
func Transform(r region.Region, bits BitOrder, bytes ByteOrder) region.Region {
	switch {
	case bits == LeftToRight && bytes == BytesLeftToRight:
		return region.Identity(r)
	case bits == RightToLeft && bytes == BytesLeftToRight:
		return region.ReverseBits(r)
	case bits == LeftToRight && bytes == BytesRightToLeft:
		return region.ReverseBytes(r)
	default: // RightToLeft, BytesRightToLeft
		return region.Reverse(r)
	}
}

// ToIdentity maps a foreign region (declared under bits/bytes orientation)
// into identity order.
func ToIdentity(foreign region.Region, bits BitOrder, bytes ByteOrder) region.Region {
	return Transform(foreign, bits, bytes)
}

// FromIdentity maps an identity-ordered region back out into a foreign
// bits/bytes orientation. It's the same table: the transforms are
// involutions (ReverseBytes only for bit lengths of at most 8 or a multiple
// of 8), so the reverse direction needs no separate logic.
func FromIdentity(identity region.Region, bits BitOrder, bytes ByteOrder) region.Region {
	return Transform(identity, bits, bytes)
}

// Numeric is the orientation used by every numeric codec: bits read right to
// left, bytes read according to the declared endianness.
func Numeric(littleEndian bool) (BitOrder, ByteOrder) {
	if littleEndian {
		return RightToLeft, BytesLeftToRight
	}
	return RightToLeft, BytesRightToLeft
}

// Raw is the orientation used by identity/raw-memory codecs: both axes left
// to right.
func Raw() (BitOrder, ByteOrder) {
	return LeftToRight, BytesLeftToRight
}
