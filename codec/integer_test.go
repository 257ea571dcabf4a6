package codec_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tidbytes/tidbytes/codec"
	"github.com/tidbytes/tidbytes/memerr"
)

func TestFromNumericU16_BigEndianBytes(t *testing.T) {
	req := require.New(t)

	r, err := codec.FromNumericU16(275, codec.DefaultLength, false)
	req.NoError(err)

	out, err := codec.IntoBytes(r)
	req.NoError(err)
	req.Equal([]byte{0x01, 0x13}, out)
}

func TestNumericU16_RoundTrip_BigEndian(t *testing.T) {
	req := require.New(t)

	for _, v := range []uint16{0, 1, 275, 0xFFFF, 0x8000} {
		r, err := codec.FromNumericU16(v, codec.DefaultLength, false)
		req.NoError(err)

		back, err := codec.IntoNumericU16(r, false)
		req.NoError(err)
		req.Equal(v, back)
	}
}

func TestNumericU16_RoundTrip_LittleEndian(t *testing.T) {
	req := require.New(t)

	for _, v := range []uint16{0, 1, 275, 0xFFFF, 0x8000} {
		r, err := codec.FromNumericU16(v, codec.DefaultLength, true)
		req.NoError(err)

		back, err := codec.IntoNumericU16(r, true)
		req.NoError(err)
		req.Equal(v, back)
	}
}

func TestNumericI32_RoundTrip_NegativeValues(t *testing.T) {
	req := require.New(t)

	for _, v := range []int32{0, -1, -2147483648, 2147483647, 12345} {
		for _, le := range []bool{true, false} {
			r, err := codec.FromNumericI32(v, codec.DefaultLength, le)
			req.NoError(err)

			back, err := codec.IntoNumericI32(r, le)
			req.NoError(err)
			req.Equal(v, back)
		}
	}
}

func TestNumericU64_RoundTrip(t *testing.T) {
	req := require.New(t)

	for _, v := range []uint64{0, 1, 0xFFFFFFFFFFFFFFFF, 0x0102030405060708} {
		r, err := codec.FromNumericU64(v, codec.DefaultLength, false)
		req.NoError(err)

		back, err := codec.IntoNumericU64(r, false)
		req.NoError(err)
		req.Equal(v, back)
	}
}

func TestNaturalU32_MatchesHostByteLayout(t *testing.T) {
	req := require.New(t)

	r, err := codec.FromNaturalU32(0x01020304, codec.DefaultLength)
	req.NoError(err)

	// Host (little-endian) raw memory: the lowest-order byte comes first.
	out, err := codec.IntoBytes(r)
	req.NoError(err)
	req.Len(out, 4)

	low, err := codec.FromNaturalU8(0x04, codec.DefaultLength)
	req.NoError(err)
	lowOut, err := codec.IntoBytes(low)
	req.NoError(err)
	req.Equal(lowOut[0], out[0])
}

func TestNumericI8_Overflow(t *testing.T) {
	req := require.New(t)

	r, err := codec.FromNumericU16(200, 9, true)
	req.NoError(err)

	_, err = codec.IntoNumericI8(r, true)
	req.Error(err)
}

func TestNumericU16_BigEndian_RejectsUnalignedLength(t *testing.T) {
	req := require.New(t)

	_, err := codec.FromNumericU16(0xFF, 9, false)
	req.ErrorIs(err, memerr.ErrOrientationError)
}

func TestIntoNumericI8_BigEndian_RejectsUnalignedLength(t *testing.T) {
	req := require.New(t)

	r, err := codec.FromNumericBigInteger(big.NewInt(5), 9)
	req.NoError(err)

	_, err = codec.IntoNumericI8(r, false)
	req.ErrorIs(err, memerr.ErrOrientationError)
}
