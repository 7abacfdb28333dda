package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-9

func TestGridTilesPage(t *testing.T) {
	g := Default()

	w := g.CellW*float64(g.Cols) + g.Gap*float64(g.Cols-1) + 2*Margin
	h := g.CellH*float64(g.Rows) + g.Gap*float64(g.Rows-1) + 2*Margin
	assert.InDelta(t, g.PageW, w, tolerance)
	assert.InDelta(t, g.PageH, h, tolerance)
}

func TestGridA4Points(t *testing.T) {
	g := Default()
	assert.InDelta(t, 595.2756, g.PageW, 1e-4)
	assert.InDelta(t, 841.8898, g.PageH, 1e-4)
	assert.Equal(t, 10, g.Len())
}

func TestGridCellOrigins(t *testing.T) {
	g := Default()

	top := g.Cell(CellAddress{Col: 0, Row: 0})
	assert.InDelta(t, Margin, top.X, tolerance)
	assert.InDelta(t, g.PageH-Margin, top.Top(), tolerance)

	bottomRight := g.Cell(CellAddress{Col: 1, Row: 4})
	assert.InDelta(t, g.PageW-Margin, bottomRight.Right(), tolerance)
	assert.InDelta(t, Margin, bottomRight.Y, tolerance)

	below := g.Cell(CellAddress{Col: 0, Row: 1})
	assert.InDelta(t, Gap, top.Y-below.Top(), tolerance, "rows are one gap apart")
}

func TestGridCellsDoNotOverlapAndStayInside(t *testing.T) {
	g := Default()
	cells := g.Cells()
	require.Len(t, cells, g.Len())

	bounds := g.Bounds()
	for i, a := range cells {
		assert.True(t, bounds.Contains(a), "cell %d outside printable area", i)
		for j := i + 1; j < len(cells); j++ {
			assert.False(t, a.Overlaps(cells[j]), "cells %d and %d overlap", i, j)
		}
	}
}

func TestGridCellsSlotOrder(t *testing.T) {
	g := Default()
	cells := g.Cells()
	assert.Equal(t, g.Cell(CellAddress{Col: 1, Row: 0}), cells[1])
	assert.Equal(t, g.Cell(CellAddress{Col: 0, Row: 2}), cells[4])
}

func TestComputeGeneralizes(t *testing.T) {
	g := Compute(Constants{Page: Size{W: 300, H: 200}, Margin: 10, Gap: 5, Cols: 3, Rows: 2})
	assert.InDelta(t, (300-20-10)/3.0, g.CellW, tolerance)
	assert.InDelta(t, (200-20-5)/2.0, g.CellH, tolerance)
}

func TestDuplexVerticalMirrorsColumns(t *testing.T) {
	d := NewDuplex(Default(), FlipVertical)
	for i := 0; i < 10; i++ {
		col, row := i%2, i/2
		assert.Equal(t, CellAddress{Col: col, Row: row}, d.Front(i), "front %d", i)
		assert.Equal(t, CellAddress{Col: 1 - col, Row: row}, d.Back(i), "back %d", i)
	}
}

func TestDuplexHorizontalMirrorsRows(t *testing.T) {
	d := NewDuplex(Default(), FlipHorizontal)
	for i := 0; i < 10; i++ {
		col, row := i%2, i/2
		assert.Equal(t, CellAddress{Col: col, Row: 4 - row}, d.Back(i), "back %d", i)
	}
}

func TestDuplexBackIsBijective(t *testing.T) {
	for _, axis := range []FlipAxis{FlipVertical, FlipHorizontal} {
		d := NewDuplex(Default(), axis)
		seen := make(map[CellAddress]bool)
		for i := 0; i < 10; i++ {
			seen[d.Back(i)] = true
		}
		assert.Len(t, seen, 10, axis.String())
	}
}

func TestParseFlipAxis(t *testing.T) {
	for in, want := range map[string]FlipAxis{
		"":             FlipVertical,
		"Vertical":     FlipVertical,
		" horizontal ": FlipHorizontal,
	} {
		got, err := ParseFlipAxis(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, in := range []string{"long-edge", "short-edge", "columns", "rows"} {
		_, err := ParseFlipAxis(in)
		assert.Error(t, err, in)
	}
}

func TestRectInset(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 100, H: 50}.Inset(6)
	assert.Equal(t, Rect{X: 16, Y: 26, W: 88, H: 38}, r)
}
