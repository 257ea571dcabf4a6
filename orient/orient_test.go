package orient_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tidbytes/tidbytes/codec"
	"github.com/tidbytes/tidbytes/orient"
	"github.com/tidbytes/tidbytes/region"
)

func TestTransform_Table(t *testing.T) {
	req := require.New(t)

	r, err := codec.FromBytes([]byte{0x12, 0x34})
	req.NoError(err)

	req.True(region.Equal(orient.Transform(r, orient.LeftToRight, orient.BytesLeftToRight), region.Identity(r)))
	req.True(region.Equal(orient.Transform(r, orient.RightToLeft, orient.BytesLeftToRight), region.ReverseBits(r)))
	req.True(region.Equal(orient.Transform(r, orient.LeftToRight, orient.BytesRightToLeft), region.ReverseBytes(r)))
	req.True(region.Equal(orient.Transform(r, orient.RightToLeft, orient.BytesRightToLeft), region.Reverse(r)))
}

func TestToIdentity_FromIdentity_Involution(t *testing.T) {
	req := require.New(t)

	r, err := codec.FromBytes([]byte{0x12, 0x34, 0x56})
	req.NoError(err)

	for _, tc := range []struct {
		bits  orient.BitOrder
		bytes orient.ByteOrder
	}{
		{orient.LeftToRight, orient.BytesLeftToRight},
		{orient.RightToLeft, orient.BytesLeftToRight},
		{orient.LeftToRight, orient.BytesRightToLeft},
		{orient.RightToLeft, orient.BytesRightToLeft},
	} {
		foreign := orient.FromIdentity(r, tc.bits, tc.bytes)
		back := orient.ToIdentity(foreign, tc.bits, tc.bytes)
		req.True(region.Equal(r, back))
	}
}

func TestNumeric_BigEndianIsReverse(t *testing.T) {
	req := require.New(t)

	bits, bytes := orient.Numeric(false)
	req.Equal(orient.RightToLeft, bits)
	req.Equal(orient.BytesRightToLeft, bytes)
}

func TestNumeric_LittleEndianIsReverseBits(t *testing.T) {
	req := require.New(t)

	bits, bytes := orient.Numeric(true)
	req.Equal(orient.RightToLeft, bits)
	req.Equal(orient.BytesLeftToRight, bytes)
}

func TestRaw_IsIdentity(t *testing.T) {
	req := require.New(t)

	bits, bytes := orient.Raw()
	req.Equal(orient.LeftToRight, bits)
	req.Equal(orient.BytesLeftToRight, bytes)
}
