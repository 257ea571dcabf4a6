package codec_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tidbytes/tidbytes/codec"
)

func TestFromASCII_IntoASCII_RoundTrip(t *testing.T) {
	req := require.New(t)

	s := "hello, tidbytes"
	r, err := codec.FromASCII(s)
	req.NoError(err)

	back, err := codec.IntoASCII(r)
	req.NoError(err)
	req.Equal(s, back)
}

func TestFromUTF8_IntoUTF8_RoundTrip(t *testing.T) {
	req := require.New(t)

	s := "bit-addressable éèê 文字"
	r, err := codec.FromUTF8(s)
	req.NoError(err)

	back, err := codec.IntoUTF8(r)
	req.NoError(err)
	req.Equal(s, back)
}

func TestFromASCII_Empty(t *testing.T) {
	req := require.New(t)

	r, err := codec.FromASCII("")
	req.NoError(err)

	back, err := codec.IntoASCII(r)
	req.NoError(err)
	req.Equal("", back)
}
