// Package layout computes the card grid of a printed sheet and the mapping
// of deck slots to front and back cells for duplex printing.
//
// All lengths are PDF points. Rectangles use a y-up page model: Y is the
// distance from the bottom of the page to the bottom edge of the rectangle.
package layout

import "fmt"

// Cm is one centimeter in points.
const Cm = 72.0 / 2.54

// Sheet constants.
const (
	Cols   = 2
	Rows   = 5
	Margin = 1.0 * Cm
	Gap    = 0.35 * Cm
)

// A4 page size in points.
var A4 = Size{W: 21.0 * Cm, H: 29.7 * Cm}

// Size is a width and height pair.
type Size struct {
	W, H float64
}

// Rect is an axis-aligned rectangle in the y-up page model.
type Rect struct {
	X, Y, W, H float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Top returns the y coordinate of the top edge.
func (r Rect) Top() float64 { return r.Y + r.H }

// Inset shrinks r by d on every side.
func (r Rect) Inset(d float64) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
}

// Overlaps reports whether r and o share interior area.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Top() && o.Y < r.Top()
}

// Contains reports whether o lies within r.
func (r Rect) Contains(o Rect) bool {
	const eps = 1e-9
	return o.X >= r.X-eps && o.Y >= r.Y-eps && o.Right() <= r.Right()+eps && o.Top() <= r.Top()+eps
}

// CellAddress is a zero-indexed grid position, row 0 at the top.
type CellAddress struct {
	Col, Row int
}

func (a CellAddress) String() string {
	return fmt.Sprintf("(%d,%d)", a.Col, a.Row)
}

// Constants are the inputs of the grid computation.
type Constants struct {
	Page   Size
	Margin float64
	Gap    float64
	Cols   int
	Rows   int
}

// DefaultConstants is the fixed sheet: A4, 1 cm margin, 0.35 cm gap, 2 x 5.
func DefaultConstants() Constants {
	return Constants{Page: A4, Margin: Margin, Gap: Gap, Cols: Cols, Rows: Rows}
}

// Grid is the geometry of every cell of a sheet.
type Grid struct {
	PageW, PageH float64
	CellW, CellH float64
	X0, Y0       float64
	Gap          float64
	Cols, Rows   int
}

// Compute derives the grid from c. Cells tile the area inside the margins
// exactly, separated by c.Gap.
func Compute(c Constants) Grid {
	usableW := c.Page.W - 2*c.Margin - float64(c.Cols-1)*c.Gap
	usableH := c.Page.H - 2*c.Margin - float64(c.Rows-1)*c.Gap
	return Grid{
		PageW: c.Page.W,
		PageH: c.Page.H,
		CellW: usableW / float64(c.Cols),
		CellH: usableH / float64(c.Rows),
		X0:    c.Margin,
		Y0:    c.Margin,
		Gap:   c.Gap,
		Cols:  c.Cols,
		Rows:  c.Rows,
	}
}

// Default is Compute(DefaultConstants()).
func Default() Grid {
	return Compute(DefaultConstants())
}

// Len returns the number of cells.
func (g Grid) Len() int {
	return g.Cols * g.Rows
}

// Cell returns the rectangle of the cell at a.
func (g Grid) Cell(a CellAddress) Rect {
	x := g.X0 + float64(a.Col)*(g.CellW+g.Gap)
	yTop := g.PageH - g.Y0 - float64(a.Row)*(g.CellH+g.Gap)
	return Rect{X: x, Y: yTop - g.CellH, W: g.CellW, H: g.CellH}
}

// Cells returns every cell rectangle in slot order (row-major).
func (g Grid) Cells() []Rect {
	out := make([]Rect, 0, g.Len())
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			out = append(out, g.Cell(CellAddress{Col: col, Row: row}))
		}
	}
	return out
}

// Bounds returns the printable area inside the margins.
func (g Grid) Bounds() Rect {
	return Rect{X: g.X0, Y: g.Y0, W: g.PageW - 2*g.X0, H: g.PageH - 2*g.Y0}
}
