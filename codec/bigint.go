package codec

import (
	"math/big"

	"github.com/tidbytes/tidbytes/memerr"
	"github.com/tidbytes/tidbytes/region"
)

// DefaultLength is the sentinel bitLength meaning "use the value's natural
// width", mirroring the Python reference's bit_length=None.
const DefaultLength = -1

// FromNumericBigInteger builds a Region from a signed big integer using
// two's-complement encoding at exactly bitLength bits, identity order
// reading as a conventional most-significant-bit-first number. If
// bitLength is DefaultLength, one more bit than value.BitLen() is used so
// the sign has room.
func FromNumericBigInteger(value *big.Int, bitLength int) (region.Region, error) {
	if bitLength == 0 {
		return region.Region{}, nil
	}
	if bitLength == DefaultLength {
		bitLength = value.BitLen() + 1
	} else if bitLength <= 1 {
		return region.Region{}, memerr.NumericRange(
			"bit length %d cannot hold a signed value using two's complement", bitLength)
	}

	minSigned := new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), uint(bitLength-1)))
	maxSigned := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(bitLength-1)), big.NewInt(1))
	if value.Cmp(minSigned) < 0 || value.Cmp(maxSigned) > 0 {
		return region.Region{}, memerr.NumericRange(
			"value %s does not fit into signed range of bit length %d (%s..%s)",
			value, bitLength, minSigned, maxSigned)
	}

	mod := new(big.Int).Lsh(big.NewInt(1), uint(bitLength))
	twos := new(big.Int).Mod(value, mod)

	bits := make([]int, bitLength)
	for i := 0; i < bitLength; i++ {
		bits[bitLength-1-i] = int(twos.Bit(i))
	}
	return FromBitList(bits)
}

// IntoNumericBigInteger interprets r as either a signed (two's complement)
// or unsigned big integer, reading identity order as a conventional
// most-significant-bit-first number.
func IntoNumericBigInteger(r region.Region, signed bool) *big.Int {
	v := new(big.Int)
	first := true
	signBit := 0

	for bit := range region.IterateLogicalBits(r) {
		if first {
			signBit = bit
			first = false
		}
		v.Lsh(v, 1)
		if bit == 1 {
			v.Or(v, big.NewInt(1))
		}
	}

	if !signed || signBit == 0 || region.BitLength(r) == 0 {
		return v
	}

	mod := new(big.Int).Lsh(big.NewInt(1), uint(region.BitLength(r)))
	return new(big.Int).Sub(v, mod)
}

// FromNaturalBigInteger builds a Region from value the same way
// FromNumericBigInteger does, but leaves it in raw identity bit order
// rather than the conventional most-significant-bit-first numeric reading:
// from_numeric_big_integer(v) = op_reverse(from_natural_big_integer(v)) in
// the reference implementation, and op_reverse is its own inverse, so
// building the numeric region first and reversing it once is exactly
// from_natural_big_integer.
func FromNaturalBigInteger(value *big.Int, bitLength int) (region.Region, error) {
	numeric, err := FromNumericBigInteger(value, bitLength)
	if err != nil {
		return region.Region{}, err
	}
	return region.Reverse(numeric), nil
}

// IntoNaturalBigInteger is the inverse of FromNaturalBigInteger: it undoes
// the same reversal before handing off to the numeric reader, rather than
// reading identity order directly.
func IntoNaturalBigInteger(r region.Region, signed bool) *big.Int {
	return IntoNumericBigInteger(region.Reverse(r), signed)
}
