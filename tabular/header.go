package tabular

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Field is the semantic meaning of a header column.
type Field int

const (
	FieldNone Field = iota
	FieldQuestion
	FieldBack
)

type headerEntry struct {
	field Field
	rank  int // lower wins when several columns map to the same field
}

// headerVocabulary maps a normalized header name to its field. Ranks follow
// the lookup order: question before q; texte, text, reponse, réponse,
// answer, verso, reponseverso for the back text.
var headerVocabulary = map[string]headerEntry{
	"question":     {FieldQuestion, 0},
	"q":            {FieldQuestion, 1},
	"texte":        {FieldBack, 0},
	"text":         {FieldBack, 1},
	"reponse":      {FieldBack, 2},
	"réponse":      {FieldBack, 3},
	"answer":       {FieldBack, 4},
	"verso":        {FieldBack, 5},
	"reponseverso": {FieldBack, 6},
}

// NormalizeHeader trims, lowercases and removes every whitespace rune from a
// header cell. Accented letters are composed first so "réponse" and
// "réponse" compare equal.
func NormalizeHeader(h string) string {
	h = strings.ToLower(norm.NFC.String(strings.TrimSpace(h)))
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, h)
}

// HasHeader reports whether row is a header row, i.e. at least one of its
// normalized cells belongs to the header vocabulary.
func HasHeader(row []string) bool {
	for _, cell := range row {
		if _, ok := headerVocabulary[NormalizeHeader(cell)]; ok {
			return true
		}
	}
	return false
}

// columnMap holds the column index of each field, -1 when absent.
type columnMap struct {
	question int
	back     int
}

// resolveColumns maps the fields of a header row to column indexes, once per
// file. A repeated header name resolves to its last column.
func resolveColumns(header []string) columnMap {
	byName := make(map[string]int, len(header))
	for i, cell := range header {
		byName[NormalizeHeader(cell)] = i
	}

	cols := columnMap{question: -1, back: -1}
	bestQ, bestB := len(headerVocabulary), len(headerVocabulary)
	for name, idx := range byName {
		entry, ok := headerVocabulary[name]
		if !ok {
			continue
		}
		switch entry.field {
		case FieldQuestion:
			if entry.rank < bestQ {
				cols.question, bestQ = idx, entry.rank
			}
		case FieldBack:
			if entry.rank < bestB {
				cols.back, bestB = idx, entry.rank
			}
		}
	}
	return cols
}
