package summary

import (
	"strings"

	"github.com/nmehta/leetrack/internal/catalog"
	"github.com/nmehta/leetrack/internal/storage"
)

// ReviewRow is one tracked question joined against the problem catalog.
type ReviewRow struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Link       string `json:"link"`
	Difficulty string `json:"difficulty"`
	Companies  string `json:"companies"`
	DateSolved string `json:"date_solved"`
}

// Review translates tracked question ids back into human-readable rows.
// Ids the problem catalog does not know are skipped.
func Review(store *storage.Store, problems catalog.ProblemSet) ([]ReviewRow, error) {
	entries, err := store.Entries()
	if err != nil {
		return nil, err
	}

	var rows []ReviewRow
	for _, e := range entries {
		p, ok := problems[e.ID]
		if !ok {
			continue
		}
		rows = append(rows, ReviewRow{
			ID:         e.ID,
			Name:       p.Name,
			Link:       ProblemLink(p.Name),
			Difficulty: p.Difficulty,
			Companies:  e.Companies,
			DateSolved: e.DateSolved,
		})
	}
	return rows, nil
}

// ProblemLink derives the question URL from a problem name.
func ProblemLink(name string) string {
	slug := strings.ToLower(strings.Join(strings.Fields(name), "-"))
	return "https://leetcode.com/problems/" + slug
}
