package tabular

import (
	"errors"
	"sort"
	"strings"
	"unicode/utf8"
)

// SampleSize is the number of characters inspected by Sniff.
const SampleSize = 4096

// Candidates are the delimiters Sniff chooses from, in tie-break order.
var Candidates = []rune{',', '\t', ';', ' ', '|'}

// ErrNoDelimiter is returned by Sniff when no candidate delimiter appears
// consistently in the sample.
var ErrNoDelimiter = errors.New("tabular: could not determine delimiter")

// Dialect describes how a tabular text is split into fields.
type Dialect struct {
	Delimiter rune
	// Sniffed is false when the dialect is the comma fallback.
	Sniffed bool
}

// DefaultDialect is used when sniffing fails.
var DefaultDialect = Dialect{Delimiter: ','}

// Name returns a printable name for the delimiter.
func (d Dialect) Name() string {
	switch d.Delimiter {
	case '\t':
		return "tab"
	case ' ':
		return "space"
	default:
		return string(d.Delimiter)
	}
}

// Detect sniffs content and falls back to DefaultDialect. It never fails.
func Detect(content string) Dialect {
	d, err := Sniff(content)
	if err != nil {
		return DefaultDialect
	}
	return d
}

// MinPresence is the share of sampled records a delimiter must appear in.
const MinPresence = 0.9

// maxSpaceFields caps the fields a space-delimited record may hold. Prose
// questions contain many spaces on every line; a space-separated card table
// carries at most a question, a back text and one spare column.
const maxSpaceFields = 3

// Sniff infers the delimiter from the first SampleSize characters of
// content. Every candidate is counted per record, outside double quotes.
// A candidate must occur in at least MinPresence of the records and one
// count must hold for most of them; among those, the one whose modal count
// is shared by the largest part of the records wins.
func Sniff(content string) (Dialect, error) {
	sample, cut := head(content, SampleSize)
	records := sampleRecords(sample, cut)
	if len(records) == 0 {
		return Dialect{}, ErrNoDelimiter
	}

	best := rune(0)
	bestScore := 0.0
	for _, cand := range Candidates {
		score := consistency(records, cand)
		if score > bestScore {
			best, bestScore = cand, score
		}
	}
	if best == 0 {
		return Dialect{}, ErrNoDelimiter
	}
	return Dialect{Delimiter: best, Sniffed: true}, nil
}

// head returns the first n runes of s and whether s was longer.
func head(s string, n int) (string, bool) {
	if utf8.RuneCountInString(s) <= n {
		return s, false
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos], true
		}
		i++
	}
	return s, false
}

// sampleRecords splits sample into non-blank records. Line breaks inside
// double quotes do not end a record. When the sample was cut, the trailing
// partial record is dropped.
func sampleRecords(sample string, cut bool) []string {
	sample = strings.ReplaceAll(sample, "\r\n", "\n")
	var raw []string
	quoted := false
	start := 0
	for i, r := range sample {
		switch {
		case r == '"':
			quoted = !quoted
		case r == '\n' && !quoted:
			raw = append(raw, sample[start:i])
			start = i + 1
		}
	}
	if !cut || len(raw) == 0 {
		raw = append(raw, sample[start:])
	}

	records := raw[:0]
	for _, r := range raw {
		if strings.TrimSpace(r) != "" {
			records = append(records, r)
		}
	}
	return records
}

// consistency scores delim against records: the share of records holding
// its modal non-zero count. It is 0 when delim is missing from more than
// 1-MinPresence of the records, when no count is shared by a majority of
// the records, or when a space would split records into more than
// maxSpaceFields fields.
func consistency(records []string, delim rune) float64 {
	freq := make(map[int]int)
	present := 0
	for _, r := range records {
		if n := countOutsideQuotes(r, delim); n > 0 {
			freq[n]++
			present++
		}
	}
	if present == 0 || float64(present) < MinPresence*float64(len(records)) {
		return 0
	}

	counts := make([]int, 0, len(freq))
	for n := range freq {
		counts = append(counts, n)
	}
	sort.Ints(counts)
	modal := counts[0]
	for _, n := range counts[1:] {
		if freq[n] > freq[modal] {
			modal = n
		}
	}
	if 2*freq[modal] <= len(records) {
		return 0
	}
	if delim == ' ' && modal+1 > maxSpaceFields {
		return 0
	}
	return float64(freq[modal]) / float64(len(records))
}

func countOutsideQuotes(line string, delim rune) int {
	n := 0
	quoted := false
	for _, r := range line {
		switch {
		case r == '"':
			quoted = !quoted
		case r == delim && !quoted:
			n++
		}
	}
	return n
}
