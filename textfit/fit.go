// Package textfit places text inside a fixed box: padded, wrapped to the
// box width, centered vertically, and capped to the box height.
package textfit

import (
	"fmt"
	"strings"

	"github.com/lvillar/cardsheet/layout"
	"github.com/lvillar/cardsheet/style"
)

// Padding is the inner padding applied on each side of a box.
const Padding = 6.0

// Placeholder is drawn for blank text so an empty box still gets a
// well-defined line to center.
const Placeholder = "\u00a0"

// Overflow selects what happens to text taller than its box.
type Overflow int

const (
	// OverflowClamp drops the lines that do not fit.
	OverflowClamp Overflow = iota
	// OverflowShrink reduces the font size down to MinFontSize, then clamps.
	OverflowShrink
)

func (o Overflow) String() string {
	if o == OverflowShrink {
		return "shrink"
	}
	return "clamp"
}

// ParseOverflow accepts "clamp" (or "") and "shrink".
func ParseOverflow(s string) (Overflow, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "clamp":
		return OverflowClamp, nil
	case "shrink":
		return OverflowShrink, nil
	default:
		return 0, fmt.Errorf("textfit: unknown overflow policy %q (want clamp or shrink)", s)
	}
}

// Measurer wraps one paragraph into lines no wider than width when set in
// font.
type Measurer interface {
	WrapLines(text string, width float64, font style.FontSpec) []string
}

// Block is a fitted piece of text ready to be drawn.
type Block struct {
	// X and Y locate the bottom-left corner of the text block, W is the
	// width lines are aligned in.
	X, Y, W float64
	Lines   []string
	Style   style.TextStyle
	// Natural is the height the wrapped text would need.
	Natural   float64
	Truncated bool
}

// Height returns the height of the drawn lines.
func (b Block) Height() float64 {
	return float64(len(b.Lines)) * b.Style.Leading
}

// Top returns the y coordinate of the first line's top edge.
func (b Block) Top() float64 {
	return b.Y + b.Height()
}

// Fitter fits text into boxes.
type Fitter struct {
	Measurer    Measurer
	Padding     float64
	Overflow    Overflow
	MinFontSize float64
}

// DefaultMinFontSize bounds OverflowShrink.
const DefaultMinFontSize = 8.0

// New returns a Fitter with the standard padding and clamp policy.
func New(m Measurer) Fitter {
	return Fitter{Measurer: m, Padding: Padding, Overflow: OverflowClamp, MinFontSize: DefaultMinFontSize}
}

// Fit places text in box using st.
func (f Fitter) Fit(box layout.Rect, text string, st style.TextStyle) Block {
	inner := box.Inset(f.Padding)
	paras := paragraphs(text)

	lines := f.wrap(paras, inner.W, st.Font)
	natural := float64(len(lines)) * st.Leading

	if f.Overflow == OverflowShrink {
		minSize := f.MinFontSize
		if minSize <= 0 {
			minSize = DefaultMinFontSize
		}
		for natural > inner.H && st.Font.Size-0.5 >= minSize {
			st = st.WithSize(st.Font.Size - 0.5)
			lines = f.wrap(paras, inner.W, st.Font)
			natural = float64(len(lines)) * st.Leading
		}
	}

	b := Block{X: inner.X, W: inner.W, Style: st, Natural: natural}
	if natural > inner.H {
		keep := 1
		if st.Leading > 0 {
			keep = max(int(inner.H/st.Leading), 1)
		}
		if keep < len(lines) {
			lines = lines[:keep]
			b.Truncated = true
		}
	}
	b.Lines = lines

	offset := max((inner.H-min(b.Height(), inner.H))/2, 0)
	b.Y = inner.Y + offset
	return b
}

func (f Fitter) wrap(paras []string, width float64, font style.FontSpec) []string {
	var out []string
	for _, p := range paras {
		if p == "" {
			out = append(out, "")
			continue
		}
		wrapped := f.Measurer.WrapLines(p, width, font)
		if len(wrapped) == 0 {
			wrapped = []string{""}
		}
		out = append(out, wrapped...)
	}
	return out
}

// paragraphs splits text on explicit line breaks. Blank text becomes the
// single placeholder paragraph.
func paragraphs(text string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{Placeholder}
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}
