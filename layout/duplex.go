package layout

import (
	"fmt"
	"strings"
)

// FlipAxis is the axis the sheet is turned around between printing the
// front and the back page.
type FlipAxis int

const (
	// FlipVertical turns the sheet left-to-right: back cells mirror columns.
	FlipVertical FlipAxis = iota
	// FlipHorizontal turns the sheet top-to-bottom: back cells mirror rows.
	FlipHorizontal
)

func (a FlipAxis) String() string {
	switch a {
	case FlipVertical:
		return "vertical"
	case FlipHorizontal:
		return "horizontal"
	default:
		return fmt.Sprintf("FlipAxis(%d)", int(a))
	}
}

// ParseFlipAxis accepts "vertical" or "horizontal". An empty string is
// FlipVertical.
func ParseFlipAxis(s string) (FlipAxis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "vertical":
		return FlipVertical, nil
	case "horizontal":
		return FlipHorizontal, nil
	default:
		return 0, fmt.Errorf("layout: unknown flip axis %q (want vertical or horizontal)", s)
	}
}

// Duplex maps deck slots to cells on the front and back pages.
type Duplex struct {
	Cols, Rows int
	Axis       FlipAxis
}

// NewDuplex returns the slot mapping for g.
func NewDuplex(g Grid, axis FlipAxis) Duplex {
	return Duplex{Cols: g.Cols, Rows: g.Rows, Axis: axis}
}

// Slot returns the row-major address of slot i.
func (d Duplex) Slot(i int) CellAddress {
	return CellAddress{Col: i % d.Cols, Row: i / d.Cols}
}

// Front returns the front-page cell of slot i.
func (d Duplex) Front(i int) CellAddress {
	return d.Slot(i)
}

// Back returns the back-page cell of slot i, mirrored so it lands behind the
// front cell once the sheet is flipped.
func (d Duplex) Back(i int) CellAddress {
	a := d.Slot(i)
	if d.Axis == FlipHorizontal {
		return CellAddress{Col: a.Col, Row: d.Rows - 1 - a.Row}
	}
	return CellAddress{Col: d.Cols - 1 - a.Col, Row: a.Row}
}
