package codec

import (
	"github.com/tidbytes/tidbytes/memerr"
	"github.com/tidbytes/tidbytes/region"
)

// FromBool builds a single-bit Region: 1 for true, 0 for false.
func FromBool(value bool) (region.Region, error) {
	if value {
		return FromBitList([]int{1})
	}
	return FromBitList([]int{0})
}

// IntoBool is the inverse of FromBool. r must be exactly one bit.
func IntoBool(r region.Region) (bool, error) {
	if region.BitLength(r) != 1 {
		return false, memerr.Invalid("into_bool: region has %d bits, expected 1", region.BitLength(r))
	}
	return IntoBitList(r)[0] == 1, nil
}
