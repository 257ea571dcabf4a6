package codec

import (
	"io"

	"github.com/tidbytes/tidbytes/bitstream"
	"github.com/tidbytes/tidbytes/region"
)

// FromBitReader reads numBits bits from r and builds a Region from them.
func FromBitReader(r io.Reader, numBits int) (region.Region, error) {
	return bitstream.NewReader(r).ReadRegion(numBits)
}

// IntoBitWriter streams reg's logical bits out to w.
func IntoBitWriter(w io.Writer, reg region.Region) error {
	return bitstream.NewWriter(w).WriteRegion(reg)
}
