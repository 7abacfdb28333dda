package card

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ColorKey names one of the recognized card colors. The zero value means no
// color was given.
type ColorKey string

// Recognized colors, in the order the filename heuristic tries them.
const (
	Blue   ColorKey = "bleu"
	Red    ColorKey = "rouge"
	Pink   ColorKey = "rose"
	Green  ColorKey = "vert"
	Yellow ColorKey = "jaune"
)

// DefaultColor is used when neither the card nor the filename names a color.
const DefaultColor = Blue

// ColorKeys lists the recognized colors in priority order.
var ColorKeys = []ColorKey{Blue, Red, Pink, Green, Yellow}

var palette = map[ColorKey]colorful.Color{
	Blue:   mustHex("#2D6CDF"),
	Red:    mustHex("#D64541"),
	Pink:   mustHex("#E85D9E"),
	Green:  mustHex("#2ECC71"),
	Yellow: mustHex("#F1C40F"),
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(fmt.Sprintf("card: bad palette entry %q: %v", s, err))
	}
	return c
}

// ParseColorKey matches name (case-insensitive, surrounding whitespace
// ignored) against the recognized colors.
func ParseColorKey(name string) (ColorKey, bool) {
	k := ColorKey(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := palette[k]; ok {
		return k, true
	}
	return "", false
}

// Valid reports whether k is a recognized color.
func (k ColorKey) Valid() bool {
	_, ok := palette[k]
	return ok
}

// Color returns the palette color for k, or the default color when k is
// empty or unknown.
func (k ColorKey) Color() colorful.Color {
	if c, ok := palette[k]; ok {
		return c
	}
	return palette[DefaultColor]
}

// Hex returns the palette color of k as "#rrggbb".
func (k ColorKey) Hex() string {
	return k.Color().Hex()
}

// Resolve returns the key that applies to a card: its own color when set,
// otherwise fallback.
func Resolve(own, fallback ColorKey) ColorKey {
	if own.Valid() {
		return own
	}
	if fallback.Valid() {
		return fallback
	}
	return DefaultColor
}

// ColorFromFilename picks the deck default color from a file name: the first
// recognized color (in ColorKeys order) contained in the lowercased name, or
// blue when none is.
func ColorFromFilename(filename string) ColorKey {
	low := strings.ToLower(filename)
	for _, k := range ColorKeys {
		if strings.Contains(low, string(k)) {
			return k
		}
	}
	return DefaultColor
}
