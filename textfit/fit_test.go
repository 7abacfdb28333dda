package textfit

import (
	"strings"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvillar/cardsheet/layout"
	"github.com/lvillar/cardsheet/style"
)

// monoMeasurer gives every rune an advance of half the font size and wraps
// greedily on ASCII spaces.
type monoMeasurer struct{}

func (monoMeasurer) WrapLines(text string, width float64, font style.FontSpec) []string {
	adv := font.Size / 2
	perLine := max(int(width/adv), 1)

	var lines []string
	var cur string
	for _, word := range strings.Split(text, " ") {
		switch {
		case word == "":
			continue
		case cur == "":
			cur = word
		case len([]rune(cur))+1+len([]rune(word)) <= perLine:
			cur += " " + word
		default:
			lines = append(lines, cur)
			cur = word
		}
	}
	if cur != "" || len(lines) == 0 {
		lines = append(lines, cur)
	}
	return lines
}

var box = layout.Rect{X: 100, Y: 200, W: 212, H: 112}

func frontStyle() style.TextStyle {
	return style.Front(style.DefaultFamily, style.Black)
}

func TestFitCentersSingleLine(t *testing.T) {
	b := New(monoMeasurer{}).Fit(box, "Hello", frontStyle())

	require.Equal(t, []string{"Hello"}, b.Lines)
	assert.Equal(t, 106.0, b.X)
	assert.Equal(t, 200.0, b.W)
	// inner box is 100 high: (100 - 18) / 2 above the padded bottom.
	assert.InDelta(t, 206+41, b.Y, 1e-9)
	assert.False(t, b.Truncated)
}

func TestFitBlankUsesPlaceholder(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t"} {
		b := New(monoMeasurer{}).Fit(box, text, frontStyle())
		assert.Equal(t, []string{Placeholder}, b.Lines)
		assert.InDelta(t, 18.0, b.Height(), 1e-9)
	}
}

func TestFitExplicitLineBreaks(t *testing.T) {
	b := New(monoMeasurer{}).Fit(box, "one\r\ntwo\n\nthree\rfour", frontStyle())
	assert.Equal(t, []string{"one", "two", "", "three", "four"}, b.Lines)
	assert.InDelta(t, 5*18.0, b.Natural, 1e-9)
}

func TestFitWrapsToInnerWidth(t *testing.T) {
	// 200pt inner width at 8pt per rune gives 25 runes per line.
	text := strings.Repeat("abcd ", 12)
	b := New(monoMeasurer{}).Fit(box, text, frontStyle())
	for _, l := range b.Lines {
		assert.LessOrEqual(t, len(l), 25)
	}
	assert.Len(t, b.Lines, 3)
}

func TestFitClampsOverflow(t *testing.T) {
	text := strings.Repeat("line\n", 20)
	b := New(monoMeasurer{}).Fit(box, text, frontStyle())

	// 100pt of inner height holds 5 lines of 18pt.
	assert.True(t, b.Truncated)
	assert.Len(t, b.Lines, 5)
	assert.LessOrEqual(t, b.Height(), 100.0)
	assert.InDelta(t, 21*18.0, b.Natural, 1e-9)
	assert.GreaterOrEqual(t, b.Y, 206.0)
	assert.LessOrEqual(t, b.Top(), 306.0)
}

func TestFitKeepsOneLineInTinyBox(t *testing.T) {
	tiny := layout.Rect{X: 0, Y: 0, W: 200, H: 6}
	b := New(monoMeasurer{}).Fit(tiny, "Question\nsecond line", frontStyle())
	assert.Equal(t, []string{"Question"}, b.Lines)
	assert.True(t, b.Truncated)
	assert.Equal(t, 6.0, b.Y, "offset never goes negative")
}

func TestFitShrinkToFit(t *testing.T) {
	f := New(monoMeasurer{})
	f.Overflow = OverflowShrink

	text := strings.Repeat("line\n", 6) + "line"
	b := f.Fit(box, text, frontStyle())

	assert.False(t, b.Truncated)
	assert.Len(t, b.Lines, 7)
	assert.Less(t, b.Style.Font.Size, 16.0)
	assert.LessOrEqual(t, b.Height(), 100.0+1e-9)
	assert.InDelta(t, b.Style.Font.Size*18/16, b.Style.Leading, 1e-9)
}

func TestFitShrinkStopsAtMinimum(t *testing.T) {
	f := New(monoMeasurer{})
	f.Overflow = OverflowShrink
	f.MinFontSize = 12

	b := f.Fit(box, strings.Repeat("x\n", 40), frontStyle())
	assert.Equal(t, 12.0, b.Style.Font.Size)
	assert.True(t, b.Truncated)
}

func TestParseOverflow(t *testing.T) {
	o, err := ParseOverflow("Shrink")
	require.NoError(t, err)
	assert.Equal(t, OverflowShrink, o)

	o, err = ParseOverflow("")
	require.NoError(t, err)
	assert.Equal(t, OverflowClamp, o)

	_, err = ParseOverflow("ellipsis")
	assert.Error(t, err)
}

func TestContrast(t *testing.T) {
	assert.Equal(t, style.White, Foreground(colorful.Color{R: 0, G: 0, B: 0}))
	assert.Equal(t, style.Black, Foreground(colorful.Color{R: 1, G: 1, B: 1}))

	assert.True(t, IsDarkLuminance(0.5499))
	assert.False(t, IsDarkLuminance(0.55), "threshold itself is not dark")
	assert.False(t, IsDarkLuminance(0.56))

	assert.InDelta(t, 0.7152, Luminance(colorful.Color{G: 1}), 1e-12)
}

func TestContrastPalette(t *testing.T) {
	blue, _ := colorful.Hex("#2D6CDF")
	green, _ := colorful.Hex("#2ECC71")
	yellow, _ := colorful.Hex("#F1C40F")
	assert.True(t, IsDark(blue))
	assert.False(t, IsDark(green))
	assert.False(t, IsDark(yellow))
}
