package tabular

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSniffDelimiters(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    rune
	}{
		{"semicolon", "a;b\nc;d\n", ';'},
		{"comma", "a,b\nc,d\n", ','},
		{"pipe", "a|b\nc|d\n", '|'},
		{"tab", "a\tb\nc\td\n", '\t'},
		{"space", "a b\nc d\n", ' '},
		{"semicolon over ragged spaces", "Capital of France (rouge);Paris\nLargest planet;Jupiter\n", ';'},
		{"semicolon beats space on a tie", "Hello world;Bonjour\n", ';'},
		{"quoted delimiters ignored", "\"a,b,c\";x\n\"d,e\";y\n", ';'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Sniff(tt.content)
			require.NoError(t, err)
			assert.True(t, d.Sniffed)
			assert.Equal(t, string(tt.want), string(d.Delimiter))
		})
	}
}

func TestSniffFailureFallsBack(t *testing.T) {
	_, err := Sniff("justoneword\nanother\n")
	assert.ErrorIs(t, err, ErrNoDelimiter)

	d := Detect("justoneword\nanother\n")
	assert.Equal(t, DefaultDialect, d)
	assert.False(t, d.Sniffed)

	assert.Equal(t, DefaultDialect, Detect(""))
}

func TestSniffRejectsProse(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"single column with header", "question\nOnly a question\n"},
		{"ragged prose", "What is two plus two?\nName the capital of France please\n"},
		{"prose with equal word counts", "What is two plus two?\nName the capital of France\n"},
		{"comma in one line out of three", "Who wrote Candide?\nName a river, any river\nLargest ocean\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Sniff(tt.content)
			assert.ErrorIs(t, err, ErrNoDelimiter)
			assert.Equal(t, DefaultDialect, Detect(tt.content))
		})
	}
}

func TestSniffQuotedLineBreaks(t *testing.T) {
	d, err := Sniff("\"Line one\nLine two\";x\nNext;y\n")
	require.NoError(t, err)
	assert.Equal(t, ';', d.Delimiter)
}

func TestSampleRecords(t *testing.T) {
	assert.Equal(t, []string{"a;b", "\"c\nd\";e"}, sampleRecords("a;b\r\n\n\"c\nd\";e\n", false))
	assert.Equal(t, []string{"a;b"}, sampleRecords("a;b\nc;", true))
}

func TestSniffUsesBoundedSample(t *testing.T) {
	// Semicolon rows fill the sample; the comma rows after it are never seen.
	var b strings.Builder
	for b.Len() < SampleSize+100 {
		b.WriteString("abc;def\n")
	}
	for i := 0; i < 500; i++ {
		b.WriteString("a,b,c\n")
	}
	d, err := Sniff(b.String())
	require.NoError(t, err)
	assert.Equal(t, ';', d.Delimiter)
}

func TestHeadCountsRunes(t *testing.T) {
	s, cut := head("ééé", 2)
	assert.Equal(t, "éé", s)
	assert.True(t, cut)

	s, cut = head("ab", 5)
	assert.Equal(t, "ab", s)
	assert.False(t, cut)
}

func TestDialectName(t *testing.T) {
	assert.Equal(t, "tab", Dialect{Delimiter: '\t'}.Name())
	assert.Equal(t, "space", Dialect{Delimiter: ' '}.Name())
	assert.Equal(t, ";", Dialect{Delimiter: ';'}.Name())
}
