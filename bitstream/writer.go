package bitstream

import (
	"io"

	"github.com/tidbytes/tidbytes/region"
)

// BitWriter writes a Region's logical bits to an io.Writer, LSB first per
// byte. Each Region starts on a byte boundary.
type BitWriter struct {
	stream    io.Writer
	pending   [1]byte
	alignment uint8
}

// NewWriter returns a new instance of BitWriter.
func NewWriter(w io.Writer) *BitWriter {
	return &BitWriter{stream: w}
}

// writeBit writes a single slot's bit to the stream, LSB first.
func (bw *BitWriter) writeBit(s region.Slot) error {
	if s == region.One {
		bw.pending[0] |= 1 << bw.alignment
	}

	bw.alignment++
	if bw.alignment == 8 {
		if n, err := bw.stream.Write(bw.pending[:]); n != 1 || err != nil {
			return err
		}
		bw.pending[0] = 0
		bw.alignment = 0
	}

	return nil
}

// WriteRegion writes r's logical bits to the stream, LSB first per byte,
// zero-padding the final byte if r's length isn't a multiple of 8.
func (bw *BitWriter) WriteRegion(r region.Region) error {
	bits := region.BitLength(r)
	written := 0

outer:
	for _, c := range region.Cells(r) {
		for _, s := range c {
			if written >= bits {
				break outer
			}
			if err := bw.writeBit(s); err != nil {
				return err
			}
			written++
		}
	}

	for bw.alignment != 0 {
		if err := bw.writeBit(region.Zero); err != nil {
			return err
		}
	}
	return nil
}
