package region_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tidbytes/tidbytes/codec"
	"github.com/tidbytes/tidbytes/region"
)

func TestIterateLogicalBits(t *testing.T) {
	req := require.New(t)

	r, err := codec.FromBitList([]int{1, 0, 1})
	req.NoError(err)

	var got []int
	for b := range region.IterateLogicalBits(r) {
		got = append(got, b)
	}
	req.Equal([]int{1, 0, 1}, got)
}

func TestIterateLogicalBits_EarlyStop(t *testing.T) {
	req := require.New(t)

	r, err := codec.FromBitList([]int{1, 1, 1, 1, 1})
	req.NoError(err)

	var got []int
	for b := range region.IterateLogicalBits(r) {
		got = append(got, b)
		if len(got) == 2 {
			break
		}
	}
	req.Equal([]int{1, 1}, got)
}

func TestBitLengthByteLength_BoundaryLengths(t *testing.T) {
	req := require.New(t)

	for _, n := range []int{0, 1, 7, 8, 9} {
		bits := make([]int, n)
		r, err := codec.FromBitList(bits)
		req.NoError(err)
		req.Equal(n, region.BitLength(r))
		req.Equal((n+7)/8, region.ByteLength(r))
	}
}
