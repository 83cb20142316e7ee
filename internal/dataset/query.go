package dataset

import (
	"log"
	"sort"
	"strconv"
	"strings"
)

// difficultyRank fixes the ordinal ordering used when sorting by Difficulty.
var difficultyRank = map[string]int{
	"Easy":   1,
	"Medium": 2,
	"Hard":   3,
}

// Apply returns a new table with sortSpec and the difficulty filter
// applied, in that order. The input table is never mutated. An empty
// sortSpec or difficulty skips that step.
func Apply(t *Table, sortSpec, difficulty string) *Table {
	out := &Table{
		Header: t.Header,
		Rows:   append([]Row(nil), t.Rows...),
	}
	if sortSpec != "" {
		sortRows(out, sortSpec)
	}
	if difficulty != "" {
		out.Rows = filterRows(out, difficulty)
	}
	return out
}

// sortRows orders rows in place per a "<column>-<asc|desc>" spec. The
// column keyword is title-cased before matching the header; an unknown
// key logs and leaves the rows untouched.
func sortRows(t *Table, spec string) {
	key := titleCase(strings.TrimSpace(strings.SplitN(spec, "-", 2)[0]))
	col := t.Index(key)
	if col < 0 {
		log.Printf("sort key %q not found in header %v", key, t.Header)
		return
	}

	dir := -1
	if strings.Contains(spec, "asc") {
		dir = 1
	}

	sort.SliceStable(t.Rows, func(i, j int) bool {
		return dir*compareCells(key, t.Rows[i].Cell(col), t.Rows[j].Cell(col)) < 0
	})
}

// compareCells compares two cell values under the named column's rules:
// Frequency numerically, Difficulty by its fixed ranking, everything else
// lexicographically on the trimmed text.
func compareCells(column, a, b string) int {
	a = strings.TrimSpace(a)
	b = strings.TrimSpace(b)

	switch column {
	case ColFrequency:
		fa, _ := strconv.ParseFloat(a, 64)
		fb, _ := strconv.ParseFloat(b, 64)
		switch {
		case fa < fb:
			return -1
		case fa > fb:
			return 1
		}
		return 0
	case ColDifficulty:
		ra, rb := difficultyRank[a], difficultyRank[b]
		switch {
		case ra < rb:
			return -1
		case ra > rb:
			return 1
		}
		return 0
	default:
		return strings.Compare(a, b)
	}
}

// filterRows keeps only rows whose Difficulty cell equals difficulty
// exactly (post-trim), preserving row order.
func filterRows(t *Table, difficulty string) []Row {
	col := t.Index(ColDifficulty)
	if col < 0 {
		log.Printf("difficulty column not found in header %v", t.Header)
		return t.Rows
	}

	var kept []Row
	for _, row := range t.Rows {
		if strings.TrimSpace(row.Cell(col)) == difficulty {
			kept = append(kept, row)
		}
	}
	return kept
}

// titleCase uppercases the first byte and lowercases the rest, matching
// how sort keywords are normalized against the header.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
