package bitstream

import (
	"io"

	"github.com/tidbytes/tidbytes/region"
)

// BitReader reads a Region's logical bits from an io.Reader, LSB first per
// byte. Each Region starts on a byte boundary, as BitWriter writes them.
type BitReader struct {
	stream    io.Reader
	pending   [1]byte
	alignment uint8
}

// NewReader returns a new instance of BitReader.
func NewReader(r io.Reader) *BitReader {
	return &BitReader{stream: r, alignment: 8}
}

// readBit reads the next single bit from the stream, LSB first, as a
// region.Slot (always Zero or One; None never comes off the wire).
func (br *BitReader) readBit() (region.Slot, error) {
	if br.alignment == 8 {
		n, err := br.stream.Read(br.pending[:])
		if n != 1 || (err != nil && err != io.EOF) {
			return region.None, err
		}
		br.alignment = 0
	}
	br.alignment++

	slot := region.Zero
	if br.pending[0]&1 == 1 {
		slot = region.One
	}
	br.pending[0] >>= 1
	return slot, nil
}

// ReadRegion reads the next numBits bits from the stream, LSB first per
// byte, and returns them as a Region of exactly that bit length. The unread
// rest of a partially consumed final byte is the writer's zero padding and
// is discarded, so the next ReadRegion starts at the following byte.
func (br *BitReader) ReadRegion(numBits int) (region.Region, error) {
	if numBits <= 0 {
		return region.New(nil)
	}

	cells := make([]region.Cell, (numBits+7)/8)
	remaining := numBits
	for i := range cells {
		for bit := 0; bit < 8 && remaining > 0; bit++ {
			slot, err := br.readBit()
			if err != nil {
				return region.Region{}, err
			}
			cells[i][bit] = slot
			remaining--
		}
	}
	br.alignment = 8

	return region.New(cells)
}
