// Package style holds the visual attributes shared by the text fitter and
// the rendering backend: colors, fonts, text styles and borders.
package style

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBColor represents an RGB color value with 0-255 components.
type RGBColor struct {
	R, G, B int
}

// Common colors.
var (
	Black     = RGBColor{0, 0, 0}
	White     = RGBColor{255, 255, 255}
	LightGray = RGBColor{211, 211, 211}
)

// FromColorful converts a go-colorful color, clamping it into gamut.
func FromColorful(c colorful.Color) RGBColor {
	r, g, b := c.Clamped().RGB255()
	return RGBColor{int(r), int(g), int(b)}
}

// Colorful converts c to a go-colorful color with [0,1] components.
func (c RGBColor) Colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// RGBA implements color.Color so the value can be used with image/draw.
func (c RGBColor) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: uint8(c.R), G: uint8(c.G), B: uint8(c.B), A: 0xff}.RGBA()
}

// FontSpec defines font properties for text rendering.
type FontSpec struct {
	Family string
	Style  string  // "", "B", "I", "BI"
	Size   float64 // in points
}

// Align is a horizontal text alignment understood by gofpdf.
type Align string

const (
	AlignLeft   Align = "L"
	AlignCenter Align = "C"
	AlignRight  Align = "R"
)

// TextStyle is the style of a block of text.
type TextStyle struct {
	Font    FontSpec
	Leading float64 // line height in points
	Align   Align
	Color   RGBColor
}

// WithSize returns a copy of s at a new font size, the leading scaled by the
// same ratio.
func (s TextStyle) WithSize(size float64) TextStyle {
	if s.Font.Size > 0 {
		s.Leading = s.Leading * size / s.Font.Size
	}
	s.Font.Size = size
	return s
}

// BorderStyle defines the appearance of cell borders.
type BorderStyle struct {
	Width float64
	Color RGBColor
}

// Hairline is the border drawn around every card.
var Hairline = BorderStyle{Width: 1, Color: LightGray}

// DefaultFamily is the core font used for card text.
const DefaultFamily = "Helvetica"

// Front returns the front-face question style: 16 pt on 18 pt leading.
func Front(family string, fg RGBColor) TextStyle {
	return TextStyle{
		Font:    FontSpec{Family: family, Size: 16},
		Leading: 18,
		Align:   AlignCenter,
		Color:   fg,
	}
}

// Back returns the back-face answer style: 12.5 pt on 14.5 pt leading,
// black.
func Back(family string) TextStyle {
	return TextStyle{
		Font:    FontSpec{Family: family, Size: 12.5},
		Leading: 14.5,
		Align:   AlignCenter,
		Color:   Black,
	}
}
