package textfit

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lvillar/cardsheet/style"
)

// DarkThreshold is the luminance below which a background counts as dark.
const DarkThreshold = 0.55

// Luminance returns 0.2126r + 0.7152g + 0.0722b of c, components in [0,1].
func Luminance(c colorful.Color) float64 {
	return 0.2126*c.R + 0.7152*c.G + 0.0722*c.B
}

// IsDarkLuminance reports whether lum is below DarkThreshold.
func IsDarkLuminance(lum float64) bool {
	return lum < DarkThreshold
}

// IsDark reports whether text on bg should be light.
func IsDark(bg colorful.Color) bool {
	return IsDarkLuminance(Luminance(bg))
}

// Foreground picks white text on dark backgrounds and black otherwise.
func Foreground(bg colorful.Color) style.RGBColor {
	if IsDark(bg) {
		return style.White
	}
	return style.Black
}
