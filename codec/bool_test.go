package codec_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tidbytes/tidbytes/codec"
	"github.com/tidbytes/tidbytes/region"
)

func TestFromBool_IntoBool_RoundTrip(t *testing.T) {
	req := require.New(t)

	for _, v := range []bool{true, false} {
		r, err := codec.FromBool(v)
		req.NoError(err)
		req.Equal(1, region.BitLength(r))

		back, err := codec.IntoBool(r)
		req.NoError(err)
		req.Equal(v, back)
	}
}

func TestIntoBool_RejectsWrongLength(t *testing.T) {
	req := require.New(t)

	r, err := codec.FromBitList([]int{1, 0})
	req.NoError(err)

	_, err = codec.IntoBool(r)
	req.Error(err)
}
