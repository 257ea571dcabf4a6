package region_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tidbytes/tidbytes/codec"
	"github.com/tidbytes/tidbytes/memerr"
	"github.com/tidbytes/tidbytes/region"
)

func TestTruncate(t *testing.T) {
	req := require.New(t)

	r, err := codec.FromBitList([]int{1, 0, 1, 1, 0, 1})
	req.NoError(err)

	truncated, err := region.Truncate(r, 3)
	req.NoError(err)
	req.Equal([]int{1, 0, 1}, codec.IntoBitList(truncated))
}

func TestTruncate_ToZeroIsEmpty(t *testing.T) {
	req := require.New(t)

	r, err := codec.FromBitList([]int{1, 0, 1})
	req.NoError(err)

	truncated, err := region.Truncate(r, 0)
	req.NoError(err)
	req.Equal(0, region.BitLength(truncated))
}

func TestTruncate_CannotExtend(t *testing.T) {
	req := require.New(t)

	r, err := codec.FromBitList([]int{1, 0, 1})
	req.NoError(err)

	_, err = region.Truncate(r, 5)
	req.Error(err)
	req.True(errors.Is(err, memerr.ErrBoundsError))
}

func TestExtend(t *testing.T) {
	req := require.New(t)

	r, err := codec.FromBitList([]int{1, 0, 1})
	req.NoError(err)

	extended, err := region.Extend(r, 5, true)
	req.NoError(err)
	req.Equal([]int{1, 0, 1, 1, 1}, codec.IntoBitList(extended))
}

func TestExtend_CannotShrink(t *testing.T) {
	req := require.New(t)

	r, err := codec.FromBitList([]int{1, 0, 1})
	req.NoError(err)

	_, err = region.Extend(r, 1, false)
	req.Error(err)
	req.True(errors.Is(err, memerr.ErrBoundsError))
}

func TestEnsureBitLength_Dispatches(t *testing.T) {
	req := require.New(t)

	r, err := codec.FromBitList([]int{1, 0, 1})
	req.NoError(err)

	same, err := region.EnsureBitLength(r, 3, false)
	req.NoError(err)
	req.True(region.Equal(r, same))

	shorter, err := region.EnsureBitLength(r, 1, false)
	req.NoError(err)
	req.Equal(1, region.BitLength(shorter))

	longer, err := region.EnsureBitLength(r, 5, false)
	req.NoError(err)
	req.Equal(5, region.BitLength(longer))
}

func TestEnsureByteLength(t *testing.T) {
	req := require.New(t)

	r, err := codec.FromBytes([]byte{0xAB})
	req.NoError(err)

	extended, err := region.EnsureByteLength(r, 2, false)
	req.NoError(err)
	req.Equal(16, region.BitLength(extended))
}

func TestConcatenate(t *testing.T) {
	req := require.New(t)

	a, err := codec.FromBitList([]int{1, 0, 1})
	req.NoError(err)
	b, err := codec.FromBitList([]int{1, 0, 1})
	req.NoError(err)

	c := region.Concatenate(a, b)
	req.Equal(6, region.BitLength(c))
	req.Equal([]int{1, 0, 1, 1, 0, 1}, codec.IntoBitList(c))
}

func TestConcatenate_Additivity(t *testing.T) {
	req := require.New(t)

	a, err := codec.FromBitList([]int{1, 0, 1, 1, 0})
	req.NoError(err)
	b, err := codec.FromBitList([]int{1, 1})
	req.NoError(err)

	c := region.Concatenate(a, b)
	req.Equal(region.BitLength(a)+region.BitLength(b), region.BitLength(c))
}

func TestConcatenateTruncate_RoundTrip_SpecExample(t *testing.T) {
	req := require.New(t)

	a, err := codec.FromBitList([]int{1, 0, 1})
	req.NoError(err)
	concatenated := region.Concatenate(a, a)
	req.Equal(6, region.BitLength(concatenated))

	truncated, err := region.Truncate(concatenated, 3)
	req.NoError(err)
	req.True(region.Equal(a, truncated))
}
