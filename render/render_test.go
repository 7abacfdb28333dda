package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvillar/cardsheet/layout"
	"github.com/lvillar/cardsheet/style"
	"github.com/lvillar/cardsheet/textfit"
)

func newDoc(t *testing.T) *Document {
	t.Helper()
	d := NewDocument(layout.A4, "test sheet")
	d.AddPage()
	return d
}

func writePNG(t *testing.T) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})
	path := filepath.Join(t.TempDir(), "dot.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return path
}

func TestExecuteAndOutput(t *testing.T) {
	d := newDoc(t)
	cell := layout.Default().Cell(layout.CellAddress{Col: 0, Row: 0})
	block := textfit.New(d).Fit(cell, "Capital of France", style.Front(style.DefaultFamily, style.White))

	err := d.Execute([]Op{
		FillRect{Rect: cell, Color: style.RGBColor{R: 45, G: 108, B: 223}},
		DrawImage{Path: writePNG(t), Rect: layout.Rect{X: cell.X, Y: cell.Y, W: 20, H: 20}},
		DrawText{Block: block},
		StrokeRect{Rect: cell, Border: style.Hairline},
	})
	require.NoError(t, err)

	d.AddPage()
	require.NoError(t, d.Execute([]Op{StrokeRect{Rect: cell, Border: style.Hairline}}))
	assert.Equal(t, 2, d.PageCount())

	var buf bytes.Buffer
	require.NoError(t, d.Output(&buf))
	assert.True(t, strings.HasPrefix(buf.String(), "%PDF-"))
}

func TestExecuteRecoversFromImageError(t *testing.T) {
	d := newDoc(t)
	cell := layout.Default().Cell(layout.CellAddress{Col: 1, Row: 2})

	err := d.Execute([]Op{DrawImage{Path: filepath.Join(t.TempDir(), "missing.png"), Rect: cell}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "render: image")

	// The document is still usable afterwards.
	require.NoError(t, d.Execute([]Op{FillRect{Rect: cell, Color: style.LightGray}}))
	var buf bytes.Buffer
	require.NoError(t, d.Output(&buf))
	assert.NotZero(t, buf.Len())
}

func TestExecuteNeedsPage(t *testing.T) {
	d := NewDocument(layout.A4, "")
	assert.Error(t, d.Execute([]Op{FillRect{}}))
}

func TestWrapLines(t *testing.T) {
	d := newDoc(t)
	font := style.FontSpec{Family: style.DefaultFamily, Size: 16}

	assert.Equal(t, []string{"Hello"}, d.WrapLines("Hello", 200, font))

	lines := d.WrapLines(strings.Repeat("word ", 40), 150, font)
	require.Greater(t, len(lines), 1)
	for _, l := range lines {
		assert.LessOrEqual(t, d.width(l), 150.0)
	}

	long := d.WrapLines(strings.Repeat("x", 200), 100, font)
	require.Greater(t, len(long), 1)
	assert.Equal(t, strings.Repeat("x", 200), strings.Join(long, ""))

	assert.Equal(t, []string{""}, d.WrapLines("   ", 100, font))
}

func TestValidFamily(t *testing.T) {
	assert.True(t, ValidFamily("helvetica"))
	assert.True(t, ValidFamily("Courier"))
	assert.False(t, ValidFamily("Comic Sans"))
}

func TestDescribe(t *testing.T) {
	lines := Describe([]Op{
		FillRect{Rect: layout.Rect{W: 10, H: 10}},
		DrawText{Block: textfit.Block{Lines: []string{"a", "b"}}},
	})
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "fill "))
	assert.Contains(t, lines[1], `"a / b"`)
}
