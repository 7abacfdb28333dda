package cardsheet

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/lvillar/cardsheet/card"
	"github.com/lvillar/cardsheet/deck"
	"github.com/lvillar/cardsheet/layout"
	"github.com/lvillar/cardsheet/sheet"
	"github.com/lvillar/cardsheet/textfit"
)

const capitals = "question;reponse\n" +
	"Capital of France (rouge);Paris\n" +
	"Capital of Italy;Rome\n" +
	"Capital of Spain (vert);Madrid\n"

func pngImage(t *testing.T) *bytes.Reader {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 32, 32))
	for i := 0; i < 32; i++ {
		img.Set(i, i, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return bytes.NewReader(buf.Bytes())
}

func TestGenerate(t *testing.T) {
	defer goleak.VerifyNone(t)

	var buf bytes.Buffer
	rep, err := New().Generate(&buf, Input{Content: capitals, Filename: "jaune_capitals.csv"})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(buf.String(), "%PDF-"))
	assert.Equal(t, 2, rep.Pages)
	assert.Equal(t, ';', rep.Dialect.Delimiter)
	assert.True(t, rep.Header)
	assert.Equal(t, deck.Summary{Parsed: 3, Used: 3, Blank: 7}, rep.Deck)
	assert.Equal(t, card.Yellow, rep.DefaultColor)
	assert.Len(t, rep.Cards, 2*deck.Size)
	assert.Empty(t, rep.Degraded())
	assert.Empty(t, rep.CardErrors())

	front, ok := rep.Face(0, sheet.FaceFront)
	require.True(t, ok)
	assert.Equal(t, card.Red, front.Color)
	front, _ = rep.Face(1, sheet.FaceFront)
	assert.Equal(t, card.Yellow, front.Color)
}

func TestGenerateHeaderlessMatchesHeadered(t *testing.T) {
	g := New()
	headered, err := g.Generate(&bytes.Buffer{}, Input{Content: "question;reponse\nHello;World\n"})
	require.NoError(t, err)
	headerless, err := g.Generate(&bytes.Buffer{}, Input{Content: "Hello;World\n"})
	require.NoError(t, err)

	assert.True(t, headered.Header)
	assert.False(t, headerless.Header)
	assert.Equal(t, headered.Deck, headerless.Deck)
}

func TestGenerateNoCards(t *testing.T) {
	for _, content := range []string{"", "question;reponse\n", "\n\n;\n"} {
		var buf bytes.Buffer
		rep, err := New().Generate(&buf, Input{Content: content})
		assert.ErrorIs(t, err, ErrNoCards)
		assert.Nil(t, rep)
		assert.Zero(t, buf.Len(), "nothing written for %q", content)
	}
}

func TestGenerateInvalidOptions(t *testing.T) {
	cases := []Option{
		WithDefaultColor("violet"),
		WithFontFamily("Comic Sans"),
		WithOverflow(textfit.OverflowShrink),
	}
	for i, opt := range cases {
		opts := []Option{opt}
		if i == 2 {
			opts = append(opts, WithMinFontSize(0))
		}
		var buf bytes.Buffer
		_, err := New(opts...).Generate(&buf, Input{Content: capitals})
		assert.ErrorIs(t, err, ErrInvalidOption)
		assert.Zero(t, buf.Len())
	}
}

func TestGenerateWithOptions(t *testing.T) {
	var buf bytes.Buffer
	rep, err := New(
		WithDefaultColor(card.Green),
		WithFlipAxis(layout.FlipHorizontal),
		WithOverflow(textfit.OverflowShrink),
		WithFontFamily("Times"),
		WithBorders(false),
		WithTitle("Capitals"),
	).Generate(&buf, Input{Content: capitals, Filename: "rouge.csv"})
	require.NoError(t, err)

	assert.Equal(t, card.Green, rep.DefaultColor)
	back, _ := rep.Face(0, sheet.FaceBack)
	assert.Equal(t, layout.CellAddress{Col: 0, Row: 4}, back.Cell)
}

func TestGenerateWithImage(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	var buf bytes.Buffer
	rep, err := New(WithTempDir(dir), WithImageMaxPixels(16)).
		Generate(&buf, Input{Content: capitals, Filename: "deck.csv", Image: pngImage(t)})
	require.NoError(t, err)

	assert.True(t, rep.ImageUsed)
	assert.Empty(t, rep.Degraded())
	assert.Empty(t, rep.Warnings)

	left, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, left, "temp images removed")
}

func TestGenerateUndecodableImage(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	var buf bytes.Buffer
	rep, err := New(WithLogger(zap.New(core))).Generate(&buf, Input{
		Content: capitals,
		Image:   strings.NewReader("definitely not an image"),
	})
	require.NoError(t, err)

	assert.False(t, rep.ImageUsed)
	assert.Len(t, rep.Warnings, 1)
	assert.Equal(t, 1, logs.FilterMessage("image ignored").Len())
	assert.True(t, strings.HasPrefix(buf.String(), "%PDF-"))
}

func TestGenerateFile(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "cards.pdf")

	_, err := New().GenerateFile(out, Input{Content: capitals})
	require.NoError(t, err)
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))

	empty := filepath.Join(dir, "empty.pdf")
	_, err = New().GenerateFile(empty, Input{Content: "question\n"})
	assert.ErrorIs(t, err, ErrNoCards)
	_, err = os.Stat(empty)
	assert.True(t, os.IsNotExist(err))
}

func TestDefaultColorFromFilename(t *testing.T) {
	g := New()
	assert.Equal(t, card.Pink, g.DefaultColor("/tmp/bleu/cartes_rose.csv"))
	assert.Equal(t, card.Blue, g.DefaultColor("cards.csv"))
	assert.Equal(t, card.Red, New(WithDefaultColor(card.Red)).DefaultColor("vert.csv"))
}

func TestCardError(t *testing.T) {
	cause := errors.New("corrupt png")
	err := &CardError{Slot: 2, Face: "front", Op: "image", Err: cause}
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "cardsheet: card 3 front image: corrupt png", err.Error())

	var target *CardError
	assert.True(t, errors.As(error(err), &target))
	assert.Contains(t, (&CardError{Op: "draw"}).Error(), "unknown error")
}
