// Package render executes draw instructions against a gofpdf document.
//
// Instructions use a y-up page model: a rectangle's Y is the distance from
// the bottom of the page to its bottom edge. The Document converts to
// gofpdf's top-left origin when it runs them.
package render

import (
	"fmt"
	"strings"

	"github.com/lvillar/cardsheet/layout"
	"github.com/lvillar/cardsheet/style"
	"github.com/lvillar/cardsheet/textfit"
)

// Op is a single draw instruction.
type Op interface {
	// Kind names the instruction in errors and logs.
	Kind() string
}

// FillRect paints a solid rectangle.
type FillRect struct {
	Rect  layout.Rect
	Color style.RGBColor
}

// StrokeRect outlines a rectangle.
type StrokeRect struct {
	Rect   layout.Rect
	Border style.BorderStyle
}

// DrawImage places the image file at Path, scaled to Rect.
type DrawImage struct {
	Path string
	Rect layout.Rect
	// Type is the gofpdf image type ("PNG", "JPG", ...). Empty means derive
	// it from the file extension.
	Type string
}

// DrawText draws a fitted text block.
type DrawText struct {
	Block textfit.Block
}

func (FillRect) Kind() string   { return "fill" }
func (StrokeRect) Kind() string { return "stroke" }
func (DrawImage) Kind() string  { return "image" }
func (DrawText) Kind() string   { return "text" }

// Describe renders ops as one short line each, for debug logs and reports.
func Describe(ops []Op) []string {
	out := make([]string, 0, len(ops))
	for _, op := range ops {
		switch o := op.(type) {
		case FillRect:
			out = append(out, fmt.Sprintf("fill %s rgb(%d,%d,%d)", rectString(o.Rect), o.Color.R, o.Color.G, o.Color.B))
		case StrokeRect:
			out = append(out, fmt.Sprintf("stroke %s %.1fpt", rectString(o.Rect), o.Border.Width))
		case DrawImage:
			out = append(out, fmt.Sprintf("image %s", rectString(o.Rect)))
		case DrawText:
			out = append(out, fmt.Sprintf("text %d line(s) %.1fpt %q",
				len(o.Block.Lines), o.Block.Style.Font.Size, strings.Join(o.Block.Lines, " / ")))
		default:
			out = append(out, op.Kind())
		}
	}
	return out
}

func rectString(r layout.Rect) string {
	return fmt.Sprintf("[%.1f %.1f %.1fx%.1f]", r.X, r.Y, r.W, r.H)
}
