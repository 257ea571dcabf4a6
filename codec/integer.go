package codec

import (
	"encoding/binary"
	"math/big"

	"github.com/tidbytes/tidbytes/memerr"
	"github.com/tidbytes/tidbytes/orient"
	"github.com/tidbytes/tidbytes/region"
)

// cellFromByteLSB builds a Cell from a byte value, slot 0 holding the least
// significant bit. Used by the natural/raw-memory integer codecs, which
// reflect a host integer's in-memory byte layout literally: each byte's
// bits are read in the order they'd be tested (bit 0 first), not the
// conventional left-to-right written order.
func cellFromByteLSB(b byte) region.Cell {
	var c region.Cell
	for i := 0; i < 8; i++ {
		if b&(1<<i) != 0 {
			c[i] = region.One
		} else {
			c[i] = region.Zero
		}
	}
	return c
}

func naturalFromLEBytes(raw []byte, bitLength, width int) (region.Region, error) {
	cells := make([]region.Cell, len(raw))
	for i, b := range raw {
		cells[i] = cellFromByteLSB(b)
	}
	r, err := region.New(cells)
	if err != nil {
		return region.Region{}, err
	}
	if bitLength == DefaultLength {
		bitLength = width
	}
	return region.EnsureBitLength(r, bitLength, false)
}

func numericFromLEBytes(raw []byte, bitLength, width int, littleEndian bool) (region.Region, error) {
	natural, err := naturalFromLEBytes(raw, width, width)
	if err != nil {
		return region.Region{}, err
	}
	if bitLength == DefaultLength {
		bitLength = width
	}
	if !littleEndian && bitLength%8 != 0 {
		return region.Region{}, memerr.Orientation(
			"big-endian numeric byte order requires a byte-aligned length, got %d bits", bitLength)
	}
	bits, bytes := orient.Numeric(littleEndian)
	numeric := orient.Transform(natural, bits, bytes)
	return region.EnsureBitLength(numeric, bitLength, false)
}

// intoCanonicalBigInt undoes a region's declared numeric orientation,
// yielding a conventional most-significant-bit-first magnitude regardless
// of littleEndian: it maps r back to natural (host) layout, then reverses
// the full logical sequence, which is the big-endian/MSB-first form
// IntoNumericBigInteger expects — the same transform used by
// FromNumericBigInteger, composed with the orientation adapter.
//
// Declaring big-endian byte order (littleEndian=false) over a region whose
// length isn't a whole number of bytes is rejected: byte order is only a
// meaningful axis when there's more than one whole byte to order, so a
// trailing partial byte makes "which end is significant" undefined.
func intoCanonicalBigInt(r region.Region, littleEndian, signed bool) (*big.Int, error) {
	if !littleEndian && region.BitLength(r)%8 != 0 {
		return nil, memerr.Orientation(
			"big-endian numeric byte order requires a byte-aligned length, got %d bits", region.BitLength(r))
	}
	bits, bytes := orient.Numeric(littleEndian)
	natural := orient.ToIdentity(r, bits, bytes)
	canonical := region.Reverse(natural)
	return IntoNumericBigInteger(canonical, signed), nil
}

func rangeCheckedInt64(v *big.Int, lo, hi int64) (int64, error) {
	if v.Cmp(big.NewInt(lo)) < 0 || v.Cmp(big.NewInt(hi)) > 0 {
		return 0, memerr.NumericRange("value %s out of range %d..%d", v, lo, hi)
	}
	return v.Int64(), nil
}

func rangeCheckedUint64(v *big.Int, hi uint64) (uint64, error) {
	if v.Sign() < 0 || v.Cmp(new(big.Int).SetUint64(hi)) > 0 {
		return 0, memerr.NumericRange("value %s out of range 0..%d", v, hi)
	}
	return v.Uint64(), nil
}

// FromNaturalU8 treats value as raw memory rather than numeric data: bit
// order within the byte follows the host representation literally.
func FromNaturalU8(value uint8, bitLength int) (region.Region, error) {
	return naturalFromLEBytes([]byte{value}, bitLength, 8)
}

func FromNaturalU16(value uint16, bitLength int) (region.Region, error) {
	raw := make([]byte, 2)
	binary.LittleEndian.PutUint16(raw, value)
	return naturalFromLEBytes(raw, bitLength, 16)
}

func FromNaturalU32(value uint32, bitLength int) (region.Region, error) {
	raw := make([]byte, 4)
	binary.LittleEndian.PutUint32(raw, value)
	return naturalFromLEBytes(raw, bitLength, 32)
}

func FromNaturalU64(value uint64, bitLength int) (region.Region, error) {
	raw := make([]byte, 8)
	binary.LittleEndian.PutUint64(raw, value)
	return naturalFromLEBytes(raw, bitLength, 64)
}

func FromNaturalI8(value int8, bitLength int) (region.Region, error) {
	return naturalFromLEBytes([]byte{byte(value)}, bitLength, 8)
}

func FromNaturalI16(value int16, bitLength int) (region.Region, error) {
	raw := make([]byte, 2)
	binary.LittleEndian.PutUint16(raw, uint16(value))
	return naturalFromLEBytes(raw, bitLength, 16)
}

func FromNaturalI32(value int32, bitLength int) (region.Region, error) {
	raw := make([]byte, 4)
	binary.LittleEndian.PutUint32(raw, uint32(value))
	return naturalFromLEBytes(raw, bitLength, 32)
}

func FromNaturalI64(value int64, bitLength int) (region.Region, error) {
	raw := make([]byte, 8)
	binary.LittleEndian.PutUint64(raw, uint64(value))
	return naturalFromLEBytes(raw, bitLength, 64)
}

// FromNumericU8 treats value as numeric data: bit order is right to left
// (most significant bit first in identity order).
func FromNumericU8(value uint8, bitLength int, littleEndian bool) (region.Region, error) {
	return numericFromLEBytes([]byte{value}, bitLength, 8, littleEndian)
}

func FromNumericU16(value uint16, bitLength int, littleEndian bool) (region.Region, error) {
	raw := make([]byte, 2)
	binary.LittleEndian.PutUint16(raw, value)
	return numericFromLEBytes(raw, bitLength, 16, littleEndian)
}

func FromNumericU32(value uint32, bitLength int, littleEndian bool) (region.Region, error) {
	raw := make([]byte, 4)
	binary.LittleEndian.PutUint32(raw, value)
	return numericFromLEBytes(raw, bitLength, 32, littleEndian)
}

func FromNumericU64(value uint64, bitLength int, littleEndian bool) (region.Region, error) {
	raw := make([]byte, 8)
	binary.LittleEndian.PutUint64(raw, value)
	return numericFromLEBytes(raw, bitLength, 64, littleEndian)
}

func FromNumericI8(value int8, bitLength int, littleEndian bool) (region.Region, error) {
	return numericFromLEBytes([]byte{byte(value)}, bitLength, 8, littleEndian)
}

func FromNumericI16(value int16, bitLength int, littleEndian bool) (region.Region, error) {
	raw := make([]byte, 2)
	binary.LittleEndian.PutUint16(raw, uint16(value))
	return numericFromLEBytes(raw, bitLength, 16, littleEndian)
}

func FromNumericI32(value int32, bitLength int, littleEndian bool) (region.Region, error) {
	raw := make([]byte, 4)
	binary.LittleEndian.PutUint32(raw, uint32(value))
	return numericFromLEBytes(raw, bitLength, 32, littleEndian)
}

func FromNumericI64(value int64, bitLength int, littleEndian bool) (region.Region, error) {
	raw := make([]byte, 8)
	binary.LittleEndian.PutUint64(raw, uint64(value))
	return numericFromLEBytes(raw, bitLength, 64, littleEndian)
}

func IntoNumericU8(r region.Region, littleEndian bool) (uint8, error) {
	c, err := intoCanonicalBigInt(r, littleEndian, false)
	if err != nil {
		return 0, err
	}
	v, err := rangeCheckedUint64(c, 0xFF)
	return uint8(v), err
}

func IntoNumericU16(r region.Region, littleEndian bool) (uint16, error) {
	c, err := intoCanonicalBigInt(r, littleEndian, false)
	if err != nil {
		return 0, err
	}
	v, err := rangeCheckedUint64(c, 0xFFFF)
	return uint16(v), err
}

func IntoNumericU32(r region.Region, littleEndian bool) (uint32, error) {
	c, err := intoCanonicalBigInt(r, littleEndian, false)
	if err != nil {
		return 0, err
	}
	v, err := rangeCheckedUint64(c, 0xFFFFFFFF)
	return uint32(v), err
}

func IntoNumericU64(r region.Region, littleEndian bool) (uint64, error) {
	c, err := intoCanonicalBigInt(r, littleEndian, false)
	if err != nil {
		return 0, err
	}
	v, err := rangeCheckedUint64(c, ^uint64(0))
	return v, err
}

func IntoNumericI8(r region.Region, littleEndian bool) (int8, error) {
	c, err := intoCanonicalBigInt(r, littleEndian, true)
	if err != nil {
		return 0, err
	}
	v, err := rangeCheckedInt64(c, -128, 127)
	return int8(v), err
}

func IntoNumericI16(r region.Region, littleEndian bool) (int16, error) {
	c, err := intoCanonicalBigInt(r, littleEndian, true)
	if err != nil {
		return 0, err
	}
	v, err := rangeCheckedInt64(c, -32768, 32767)
	return int16(v), err
}

func IntoNumericI32(r region.Region, littleEndian bool) (int32, error) {
	c, err := intoCanonicalBigInt(r, littleEndian, true)
	if err != nil {
		return 0, err
	}
	v, err := rangeCheckedInt64(c, -2147483648, 2147483647)
	return int32(v), err
}

func IntoNumericI64(r region.Region, littleEndian bool) (int64, error) {
	v, err := intoCanonicalBigInt(r, littleEndian, true)
	if err != nil {
		return 0, err
	}
	lo := new(big.Int).Lsh(big.NewInt(-1), 63)
	hi := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 63), big.NewInt(1))
	if v.Cmp(lo) < 0 || v.Cmp(hi) > 0 {
		return 0, memerr.NumericRange("value %s out of range %s..%s", v, lo, hi)
	}
	return v.Int64(), nil
}
