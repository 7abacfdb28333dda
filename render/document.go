package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/lvillar/cardsheet/layout"
	"github.com/lvillar/cardsheet/style"
)

// CoreFamilies are the font families available without embedding a font.
var CoreFamilies = []string{"Helvetica", "Arial", "Times", "Courier"}

// ValidFamily reports whether family names a core font, ignoring case.
func ValidFamily(family string) bool {
	for _, f := range CoreFamilies {
		if strings.EqualFold(f, family) {
			return true
		}
	}
	return false
}

// Document is a PDF being drawn with fixed-size pages.
type Document struct {
	pdf   *gofpdf.Fpdf
	page  layout.Size
	tr    func(string) string
	pages int
}

// NewDocument creates an empty document whose pages measure page, in
// points. title is stored in the document metadata when non-empty.
func NewDocument(page layout.Size, title string) *Document {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: page.W, Ht: page.H},
	})
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(0, 0, 0)
	pdf.SetCellMargin(0)
	pdf.SetCreator("cardsheet", true)
	if title != "" {
		pdf.SetTitle(title, true)
	}

	return &Document{
		pdf:  pdf,
		page: page,
		tr:   pdf.UnicodeTranslatorFromDescriptor(""),
	}
}

// AddPage starts a new page.
func (d *Document) AddPage() {
	d.pdf.AddPage()
	d.pages++
}

// PageCount returns the number of pages added so far.
func (d *Document) PageCount() int {
	return d.pages
}

// Execute runs ops on the current page. It stops at the first instruction
// gofpdf rejects, clears the error so the document stays usable and returns
// it.
func (d *Document) Execute(ops []Op) error {
	if d.pages == 0 {
		return fmt.Errorf("render: no page to draw on")
	}
	for _, op := range ops {
		switch o := op.(type) {
		case FillRect:
			d.fillRect(o)
		case StrokeRect:
			d.strokeRect(o)
		case DrawImage:
			d.drawImage(o)
		case DrawText:
			d.drawText(o)
		default:
			return fmt.Errorf("render: unknown instruction %T", op)
		}
		if d.pdf.Err() {
			err := d.pdf.Error()
			d.pdf.ClearError()
			d.reset()
			return fmt.Errorf("render: %s: %w", op.Kind(), err)
		}
	}
	d.reset()
	return nil
}

// top converts a y-up rectangle to the y-down coordinate of its top edge.
func (d *Document) top(r layout.Rect) float64 {
	return d.page.H - (r.Y + r.H)
}

func (d *Document) fillRect(o FillRect) {
	d.pdf.SetFillColor(o.Color.R, o.Color.G, o.Color.B)
	d.pdf.Rect(o.Rect.X, d.top(o.Rect), o.Rect.W, o.Rect.H, "F")
}

func (d *Document) strokeRect(o StrokeRect) {
	if o.Border.Width <= 0 {
		return
	}
	d.pdf.SetDrawColor(o.Border.Color.R, o.Border.Color.G, o.Border.Color.B)
	d.pdf.SetLineWidth(o.Border.Width)
	d.pdf.Rect(o.Rect.X, d.top(o.Rect), o.Rect.W, o.Rect.H, "D")
}

func (d *Document) drawImage(o DrawImage) {
	opts := gofpdf.ImageOptions{ImageType: o.Type}
	d.pdf.ImageOptions(o.Path, o.Rect.X, d.top(o.Rect), o.Rect.W, o.Rect.H, false, opts, 0, "")
}

func (d *Document) drawText(o DrawText) {
	b := o.Block
	st := b.Style
	d.pdf.SetFont(st.Font.Family, st.Font.Style, st.Font.Size)
	d.pdf.SetTextColor(st.Color.R, st.Color.G, st.Color.B)

	align := string(st.Align)
	if align == "" {
		align = string(style.AlignCenter)
	}

	y := d.page.H - b.Top()
	for _, line := range b.Lines {
		d.pdf.SetXY(b.X, y)
		d.pdf.CellFormat(b.W, st.Leading, d.tr(line), "", 0, align, false, 0, "")
		y += st.Leading
	}
}

// reset restores the neutral drawing state so one instruction list never
// leaks colors into the next.
func (d *Document) reset() {
	d.pdf.SetDrawColor(0, 0, 0)
	d.pdf.SetFillColor(0, 0, 0)
	d.pdf.SetTextColor(0, 0, 0)
}

// Output writes the finished document to w.
func (d *Document) Output(w io.Writer) error {
	if d.pdf.Err() {
		return fmt.Errorf("render: %w", d.pdf.Error())
	}
	if err := d.pdf.Output(w); err != nil {
		return fmt.Errorf("render: writing pdf: %w", err)
	}
	return nil
}
