// Package region implements the bit-addressed memory algebra: a single
// opaque Region value type plus a closed set of pure operations that map
// regions to regions. Every operation here is orientation-free — it works
// purely on the region's own identity-ordered logical bit sequence. Foreign
// bit/byte order is a codec or orient concern, never an algebra concern.
package region

import (
	"slices"

	"github.com/tidbytes/tidbytes/memerr"
)

// Slot is the state of one bit position within a Cell. None is the zero
// value so a freshly zeroed Cell is "all padding" by default.
type Slot uint8

const (
	None Slot = iota
	Zero
	One
)

// Cell is an 8-slot unit of Region storage.
type Cell [8]Slot

// Region is the opaque bit-addressed memory value. The zero Region is the
// empty, zero-length region.
type Region struct {
	cells []Cell
	bits  int
}

// New validates a raw cell sequence and returns the Region it describes.
// Codecs use this as their entry point into the algebra.
func New(cells []Cell) (Region, error) {
	if err := validateCells(cells); err != nil {
		return Region{}, err
	}
	return build(cells), nil
}

// Validate reports whether r satisfies the Region invariants: every cell has
// 8 slots, every slot is None/Zero/One, None slots form a contiguous suffix
// of the final cell only, and a zero-length region has no cells at all.
func Validate(r Region) error {
	return validateCells(r.cells)
}

// Cells returns a copy of r's raw cell sequence, for callers (codecs,
// conformance tooling) that need to inspect storage directly.
func Cells(r Region) []Cell {
	return slices.Clone(r.cells)
}

// Equal reports whether a and b have the same logical bit sequence. Two
// regions with different internal cell counts but the same bits are never
// possible by construction, so this is also a cheap structural comparison.
func Equal(a, b Region) bool {
	if a.bits != b.bits {
		return false
	}
	return slices.Equal(a.cells, b.cells)
}

// build constructs a Region from cells that are already known to satisfy the
// invariants by correct-by-construction reasoning (every pure operation in
// this package builds its result this way). It never fails.
func build(cells []Cell) Region {
	return Region{cells: cells, bits: countBits(cells)}
}

func countBits(cells []Cell) int {
	if len(cells) == 0 {
		return 0
	}
	n := (len(cells) - 1) * 8
	for _, s := range cells[len(cells)-1] {
		if s == None {
			break
		}
		n++
	}
	return n
}

func populated(c Cell) int {
	for i, s := range c {
		if s == None {
			return i
		}
	}
	return 8
}

func validateCells(cells []Cell) error {
	for i, c := range cells {
		last := i == len(cells)-1
		seenNone := false

		for j, s := range c {
			switch s {
			case None:
				seenNone = true
				if !last {
					return memerr.Invalid("cell %d: None slot in non-final cell", i)
				}
			case Zero, One:
				if seenNone {
					return memerr.Invalid("cell %d slot %d: populated slot after None padding", i, j)
				}
			default:
				return memerr.Invalid("cell %d slot %d: invalid slot value %d", i, j, s)
			}
		}

		if last && populated(c) == 0 {
			return memerr.Invalid("final cell %d has no populated slots; it should not exist", i)
		}
	}
	return nil
}

// logicalBits returns the L logical bits of r as 0/1 values, ignoring
// padding, in identity order.
func logicalBits(r Region) []uint8 {
	bits := make([]uint8, 0, r.bits)
	for _, c := range r.cells {
		for _, s := range c {
			if s == None {
				return bits
			}
			if len(bits) >= r.bits {
				return bits
			}
			if s == One {
				bits = append(bits, 1)
			} else {
				bits = append(bits, 0)
			}
		}
	}
	return bits
}

// packBits repacks a flat 0/1 bit sequence into cells, left-aligned, with
// None padding only as a suffix of the final cell.
func packBits(bits []uint8) []Cell {
	if len(bits) == 0 {
		return nil
	}
	n := (len(bits) + 7) / 8
	cells := make([]Cell, n)
	for i, b := range bits {
		s := Zero
		if b != 0 {
			s = One
		}
		cells[i/8][i%8] = s
	}
	return cells
}
