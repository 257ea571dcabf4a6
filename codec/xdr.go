package codec

import (
	"bytes"
	"fmt"

	"github.com/nullstyle/go-xdr/xdr3"
	"github.com/tidbytes/tidbytes/region"
)

// wireRegion is the XDR wire representation of a Region: the exact bit
// length followed by its identity-order bytes, zero-padded in the final
// byte the same way a Region's final cell pads with NONE.
type wireRegion struct {
	BitLength uint32
	Bytes     []byte
}

// FromXDR decodes a Region previously produced by IntoXDR.
func FromXDR(data []byte) (region.Region, error) {
	var w wireRegion
	if _, err := xdr.Unmarshal(bytes.NewReader(data), &w); err != nil {
		return region.Region{}, fmt.Errorf("xdr decode: %w", err)
	}

	r, err := FromBytes(w.Bytes)
	if err != nil {
		return region.Region{}, err
	}
	return region.EnsureBitLength(r, int(w.BitLength), false)
}

// IntoXDR marshals r to its RFC 4506 wire encoding.
func IntoXDR(r region.Region) ([]byte, error) {
	padded, err := region.EnsureByteLength(r, region.ByteLength(r), false)
	if err != nil {
		return nil, err
	}
	rawBytes, err := IntoBytes(padded)
	if err != nil {
		return nil, err
	}

	w := wireRegion{
		BitLength: uint32(region.BitLength(r)),
		Bytes:     rawBytes,
	}

	var buf bytes.Buffer
	if _, err := xdr.Marshal(&buf, &w); err != nil {
		return nil, fmt.Errorf("xdr encode: %w", err)
	}
	return buf.Bytes(), nil
}
