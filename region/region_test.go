package region_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tidbytes/tidbytes/memerr"
	"github.com/tidbytes/tidbytes/region"
)

func cell(slots ...region.Slot) region.Cell {
	var c region.Cell
	copy(c[:], slots)
	for i := len(slots); i < 8; i++ {
		c[i] = region.None
	}
	return c
}

func TestNew_ValidCells(t *testing.T) {
	req := require.New(t)

	r, err := region.New([]region.Cell{
		cell(region.One, region.Zero, region.One, region.None, region.None, region.None, region.None, region.None),
	})
	req.NoError(err)
	req.Equal(3, region.BitLength(r))
	req.Equal(1, region.ByteLength(r))
}

func TestNew_EmptyCellsIsEmptyRegion(t *testing.T) {
	req := require.New(t)

	r, err := region.New(nil)
	req.NoError(err)
	req.Equal(0, region.BitLength(r))
}

func TestNew_RejectsGapInNonePadding(t *testing.T) {
	req := require.New(t)

	_, err := region.New([]region.Cell{
		cell(region.One, region.None, region.One, region.None, region.None, region.None, region.None, region.None),
	})
	req.Error(err)
	req.True(errors.Is(err, memerr.ErrInvalidMemoryRegion))
}

func TestNew_RejectsNoneInNonFinalCell(t *testing.T) {
	req := require.New(t)

	_, err := region.New([]region.Cell{
		cell(region.One, region.None, region.None, region.None, region.None, region.None, region.None, region.None),
		cell(region.One, region.One, region.None, region.None, region.None, region.None, region.None, region.None),
	})
	req.Error(err)
	req.True(errors.Is(err, memerr.ErrInvalidMemoryRegion))
}

func TestNew_RejectsTrailingEmptyCell(t *testing.T) {
	req := require.New(t)

	_, err := region.New([]region.Cell{
		cell(region.One, region.One, region.One, region.One, region.One, region.One, region.One, region.One),
		cell(region.None, region.None, region.None, region.None, region.None, region.None, region.None, region.None),
	})
	req.Error(err)
}

func TestEqual(t *testing.T) {
	req := require.New(t)

	a, err := region.New([]region.Cell{cell(region.One, region.Zero)})
	req.NoError(err)
	b, err := region.New([]region.Cell{cell(region.One, region.Zero)})
	req.NoError(err)
	c, err := region.New([]region.Cell{cell(region.Zero, region.One)})
	req.NoError(err)

	req.True(region.Equal(a, b))
	req.False(region.Equal(a, c))
}

func TestCells_ReturnsIndependentCopy(t *testing.T) {
	req := require.New(t)

	r, err := region.New([]region.Cell{cell(region.One)})
	req.NoError(err)

	cells := region.Cells(r)
	cells[0][0] = region.Zero

	req.Equal(1, region.BitLength(r))
	req.Equal(region.One, region.Cells(r)[0][0])
}
