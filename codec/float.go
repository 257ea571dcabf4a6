package codec

import (
	"math"

	"github.com/tidbytes/tidbytes/region"
)

// FromNaturalF32 builds a Region from the IEEE 754 bit pattern of value in
// host (little-endian) byte order, the same raw-memory convention as
// FromNaturalU32.
func FromNaturalF32(value float32) (region.Region, error) {
	return FromNaturalU32(math.Float32bits(value), DefaultLength)
}

func FromNaturalF64(value float64) (region.Region, error) {
	return FromNaturalU64(math.Float64bits(value), DefaultLength)
}

// FromNumericF32 builds a Region from value's IEEE 754 bit pattern under
// numeric orientation (right-to-left bits, declared byte order).
func FromNumericF32(value float32, littleEndian bool) (region.Region, error) {
	return FromNumericU32(math.Float32bits(value), DefaultLength, littleEndian)
}

func FromNumericF64(value float64, littleEndian bool) (region.Region, error) {
	return FromNumericU64(math.Float64bits(value), DefaultLength, littleEndian)
}

// IntoNumericF32 is the inverse of FromNumericF32.
func IntoNumericF32(r region.Region, littleEndian bool) (float32, error) {
	c, err := intoCanonicalBigInt(r, littleEndian, false)
	if err != nil {
		return 0, err
	}
	bits, err := rangeCheckedUint64(c, 0xFFFFFFFF)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(uint32(bits)), nil
}

func IntoNumericF64(r region.Region, littleEndian bool) (float64, error) {
	c, err := intoCanonicalBigInt(r, littleEndian, false)
	if err != nil {
		return 0, err
	}
	bits, err := rangeCheckedUint64(c, ^uint64(0))
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(bits), nil
}
