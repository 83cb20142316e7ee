package dataset

import (
	"fmt"
	"strconv"
	"strings"
)

// Canonical column names carried by every company dataset. Files may carry
// extra columns; those pass through untouched.
const (
	ColID         = "ID"
	ColTitle      = "Title"
	ColAcceptance = "Acceptance"
	ColDifficulty = "Difficulty"
	ColFrequency  = "Frequency"
	ColLink       = "Leetcode Question Link"
)

// Table is one parsed company dataset: the header row and the data rows,
// in file order. Cell values stay raw strings; consumers coerce on read.
type Table struct {
	Header []string
	Rows   []Row
}

// Row holds one data row's cell values in header order.
type Row []string

// Cell returns the value at column i, or "" when the row is shorter than
// the header (short rows render blank rather than failing).
func (r Row) Cell(i int) string {
	if i < 0 || i >= len(r) {
		return ""
	}
	return r[i]
}

// Parse splits raw comma-delimited text into a Table. Blank lines are
// dropped and the first non-blank line becomes the header.
func Parse(raw string) (*Table, error) {
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("empty dataset")
	}

	t := &Table{Header: strings.Split(lines[0], ",")}
	for _, line := range lines[1:] {
		t.Rows = append(t.Rows, Row(strings.Split(line, ",")))
	}
	return t, nil
}

// Index returns the position of the named column, or -1. Header cells are
// trimmed before comparing.
func (t *Table) Index(name string) int {
	for i, col := range t.Header {
		if strings.TrimSpace(col) == name {
			return i
		}
	}
	return -1
}

// Question is the typed view of one row, decoded by column name.
type Question struct {
	ID         string
	Title      string
	Acceptance string
	Difficulty string
	Frequency  float64
	Link       string
}

// Question decodes row i into its typed form. Missing columns decode to
// zero values.
func (t *Table) Question(i int) Question {
	row := t.Rows[i]
	q := Question{
		ID:         strings.TrimSpace(row.Cell(t.Index(ColID))),
		Title:      strings.TrimSpace(row.Cell(t.Index(ColTitle))),
		Acceptance: strings.TrimSpace(row.Cell(t.Index(ColAcceptance))),
		Difficulty: strings.TrimSpace(row.Cell(t.Index(ColDifficulty))),
		Link:       strings.TrimSpace(row.Cell(t.Index(ColLink))),
	}
	q.Frequency, _ = strconv.ParseFloat(strings.TrimSpace(row.Cell(t.Index(ColFrequency))), 64)
	return q
}

// Questions decodes every row.
func (t *Table) Questions() []Question {
	out := make([]Question, len(t.Rows))
	for i := range t.Rows {
		out[i] = t.Question(i)
	}
	return out
}
