package render

import (
	"strings"
	"unicode/utf8"

	"github.com/lvillar/cardsheet/style"
)

// WrapLines implements textfit.Measurer with the document's core font
// metrics. Lines break on spaces; a word wider than width is split between
// runes.
func (d *Document) WrapLines(text string, width float64, font style.FontSpec) []string {
	d.pdf.SetFont(font.Family, font.Style, font.Size)

	var lines []string
	cur := ""
	for _, word := range strings.Split(text, " ") {
		if word == "" {
			continue
		}
		candidate := word
		if cur != "" {
			candidate = cur + " " + word
		}
		if d.width(candidate) <= width {
			cur = candidate
			continue
		}
		if cur != "" {
			lines = append(lines, cur)
			cur = ""
		}
		for utf8.RuneCountInString(word) > 1 && d.width(word) > width {
			head, rest := d.splitWord(word, width)
			lines = append(lines, head)
			word = rest
		}
		cur = word
	}
	if cur != "" || len(lines) == 0 {
		lines = append(lines, cur)
	}
	return lines
}

func (d *Document) width(s string) float64 {
	return d.pdf.GetStringWidth(d.tr(s))
}

// splitWord returns the longest prefix of word that fits width (at least
// one rune) and the remainder.
func (d *Document) splitWord(word string, width float64) (string, string) {
	runes := []rune(word)
	n := 1
	for n < len(runes) && d.width(string(runes[:n+1])) <= width {
		n++
	}
	return string(runes[:n]), string(runes[n:])
}
