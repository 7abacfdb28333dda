package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseColorKey(t *testing.T) {
	tests := []struct {
		in   string
		want ColorKey
		ok   bool
	}{
		{"rouge", Red, true},
		{" Rouge ", Red, true},
		{"JAUNE", Yellow, true},
		{"violet", "", false},
		{"", "", false},
		{"red", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseColorKey(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestColorFromFilename(t *testing.T) {
	assert.Equal(t, Red, ColorFromFilename("Cartes_ROUGE_chapitre1.csv"))
	assert.Equal(t, Green, ColorFromFilename("vert.csv"))
	assert.Equal(t, Blue, ColorFromFilename("questions.csv"))
	// bleu is tried before jaune regardless of position in the name.
	assert.Equal(t, Blue, ColorFromFilename("jaune-bleu.csv"))
	assert.Equal(t, Blue, ColorFromFilename(""))
}

func TestResolve(t *testing.T) {
	assert.Equal(t, Pink, Resolve(Pink, Green))
	assert.Equal(t, Green, Resolve("", Green))
	assert.Equal(t, Blue, Resolve("", ""))
	assert.Equal(t, Blue, Resolve("violet", "noir"))
}

func TestPaletteHex(t *testing.T) {
	assert.Equal(t, "#2d6cdf", Blue.Hex())
	assert.Equal(t, "#f1c40f", Yellow.Hex())
	assert.Equal(t, Blue.Hex(), ColorKey("").Hex())
}

func TestRecordIsBlank(t *testing.T) {
	assert.True(t, Blank.IsBlank())
	assert.True(t, Record{Color: Red}.IsBlank())
	assert.False(t, Record{Back: "x"}.IsBlank())
}
