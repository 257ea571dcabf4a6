package codec

import "github.com/tidbytes/tidbytes/region"

// FromASCII builds a Region from the code-unit bytes of an ASCII string, in
// identity order.
func FromASCII(s string) (region.Region, error) {
	return FromBytes([]byte(s))
}

// FromUTF8 builds a Region from the UTF-8 code-unit bytes of s, in identity
// order.
func FromUTF8(s string) (region.Region, error) {
	return FromBytes([]byte(s))
}

// IntoASCII is the inverse of FromASCII.
func IntoASCII(r region.Region) (string, error) {
	b, err := IntoBytes(r)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// IntoUTF8 is the inverse of FromUTF8.
func IntoUTF8(r region.Region) (string, error) {
	b, err := IntoBytes(r)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
