// Package tabular reads loosely formatted tabular text (CSV-like files with
// an unknown delimiter and an optional header row) into card records.
package tabular

import (
	"encoding/csv"
	"errors"
	"io"
	"regexp"
	"strings"

	"github.com/lvillar/cardsheet/card"
)

const bom = "\ufeff"

// colorTag matches a parenthesized group at the very end of a question.
var colorTag = regexp.MustCompile(`(?i)\s*\(([^)]+)\)\s*$`)

// Result is the outcome of parsing one tabular text.
type Result struct {
	Records []card.Record
	Dialect Dialect
	Header  bool
	// Err is the reader error that stopped parsing early, if any. Rows read
	// before it are kept in Records.
	Err error
}

// Parse sniffs the dialect of content and returns its card records in row
// order. Blank rows are skipped.
func Parse(content string) []card.Record {
	return ParseResult(content).Records
}

// ParseResult is Parse with the detected dialect, header flag and reader
// error exposed.
func ParseResult(content string) Result {
	content = strings.TrimPrefix(content, bom)
	return ParseWithDialect(content, Detect(content))
}

// ParseWithDialect parses content with a known dialect.
func ParseWithDialect(content string, d Dialect) Result {
	content = strings.TrimPrefix(content, bom)
	res := Result{Dialect: d}

	rows, err := readRows(content, d)
	res.Err = err
	if len(rows) == 0 {
		return res
	}

	if HasHeader(rows[0]) {
		res.Header = true
		cols := resolveColumns(rows[0])
		for _, row := range rows[1:] {
			if blankRow(row) {
				continue
			}
			res.Records = append(res.Records, newRecord(cell(row, cols.question), cell(row, cols.back)))
		}
		return res
	}

	for _, row := range rows {
		if blankRow(row) {
			continue
		}
		back := cell(row, 1)
		if back == "" && len(row) > 2 {
			back = cell(row, 2)
		}
		res.Records = append(res.Records, newRecord(cell(row, 0), back))
	}
	return res
}

func readRows(content string, d Dialect) ([][]string, error) {
	r := csv.NewReader(strings.NewReader(content))
	r.Comma = d.Delimiter
	r.LazyQuotes = true
	r.FieldsPerRecord = -1

	var rows [][]string
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return rows, err
		}
		rows = append(rows, row)
	}
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func blankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func newRecord(question, back string) card.Record {
	q, color := ExtractColorTag(question)
	return card.Record{Question: q, Back: back, Color: color}
}

// ExtractColorTag splits a trailing "(color)" off a question. When the
// parenthesized text is not a recognized color the question is returned
// unchanged with an empty key.
func ExtractColorTag(question string) (string, card.ColorKey) {
	q := strings.TrimSpace(question)
	m := colorTag.FindStringSubmatchIndex(q)
	if m == nil {
		return q, ""
	}
	key, ok := card.ParseColorKey(q[m[2]:m[3]])
	if !ok {
		return q, ""
	}
	return strings.TrimSpace(q[:m[0]]), key
}
