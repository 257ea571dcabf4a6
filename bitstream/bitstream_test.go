package bitstream_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tidbytes/tidbytes/bitstream"
	"github.com/tidbytes/tidbytes/codec"
	"github.com/tidbytes/tidbytes/region"
)

func TestWriteRegion_ReadRegion_RoundTrip_ByteAligned(t *testing.T) {
	req := require.New(t)

	r, err := codec.FromBytes([]byte("a string"))
	req.NoError(err)

	buf := bytes.NewBuffer(nil)
	req.NoError(bitstream.NewWriter(buf).WriteRegion(r))

	back, err := bitstream.NewReader(buf).ReadRegion(region.BitLength(r))
	req.NoError(err)
	req.True(region.Equal(r, back))
}

func TestWriteRegion_ReadRegion_RoundTrip_Unaligned(t *testing.T) {
	req := require.New(t)

	r, err := codec.FromBitList([]int{1, 0, 1, 1, 0, 1, 0})
	req.NoError(err)

	buf := bytes.NewBuffer(nil)
	req.NoError(bitstream.NewWriter(buf).WriteRegion(r))
	req.Len(buf.Bytes(), 1)

	back, err := bitstream.NewReader(buf).ReadRegion(region.BitLength(r))
	req.NoError(err)
	req.True(region.Equal(r, back))
}

func TestWriteRegion_PadsFinalByteWithZero(t *testing.T) {
	req := require.New(t)

	r, err := codec.FromBitList([]int{1, 1, 1})
	req.NoError(err)

	buf := bytes.NewBuffer(nil)
	req.NoError(bitstream.NewWriter(buf).WriteRegion(r))
	req.Equal(byte(0x07), buf.Bytes()[0])
}

func TestReadRegion_ZeroLength(t *testing.T) {
	req := require.New(t)

	r, err := bitstream.NewReader(bytes.NewReader(nil)).ReadRegion(0)
	req.NoError(err)
	req.Equal(0, region.BitLength(r))
}

func TestReadRegion_EOF(t *testing.T) {
	req := require.New(t)

	_, err := bitstream.NewReader(bytes.NewReader(nil)).ReadRegion(8)
	req.Equal(io.EOF, err)
}

func TestMultipleRegions_SequentialRoundTrip(t *testing.T) {
	req := require.New(t)

	a, err := codec.FromBitList([]int{1, 0, 1})
	req.NoError(err)
	b, err := codec.FromBitList([]int{1, 1, 0, 1, 0})
	req.NoError(err)

	buf := bytes.NewBuffer(nil)
	w := bitstream.NewWriter(buf)
	req.NoError(w.WriteRegion(a))
	req.NoError(w.WriteRegion(b))

	r := bitstream.NewReader(buf)
	backA, err := r.ReadRegion(region.BitLength(a))
	req.NoError(err)
	backB, err := r.ReadRegion(region.BitLength(b))
	req.NoError(err)

	req.True(region.Equal(a, backA))
	req.True(region.Equal(b, backB))
}
