// Package aggregate answers "which companies asked this question, and how
// often" by merging frequency data across every dataset in the catalog.
package aggregate

import (
	"context"
	"log"
	"strconv"
	"strings"
	"sync"

	"github.com/nmehta/leetrack/internal/catalog"
	"github.com/nmehta/leetrack/internal/dataset"
)

// Fetcher is the slice of the catalog client the aggregator needs.
type Fetcher interface {
	Dataset(ctx context.Context, company, duration string) (*dataset.Table, error)
}

// Result holds the merged per-company frequency totals for one question id.
// Companies keep catalog order and only appear with a strictly positive
// total.
type Result struct {
	ID        string
	Title     string
	Link      string
	Companies []CompanyFrequency
}

// CompanyFrequency is one company's accumulated frequency, per duration
// and in total.
type CompanyFrequency struct {
	Company   string
	Durations map[string]float64
	Total     float64
}

// Found reports whether the id matched at least one dataset row.
func (r *Result) Found() bool {
	return r.Title != "" || len(r.Companies) > 0
}

// Search fetches every company/duration dataset concurrently, waits for
// all fetches to finish, then merges once. Datasets that fail to load are
// logged and contribute nothing; the merged result is complete with
// respect to every fetch that succeeded.
func Search(ctx context.Context, f Fetcher, cat *catalog.Catalog, id string) (*Result, error) {
	id = strings.TrimSpace(id)
	res := &Result{ID: id}

	var (
		mu     sync.Mutex
		wg     sync.WaitGroup
		totals = make(map[string]map[string]float64)
	)

	for _, company := range cat.Companies {
		for _, duration := range cat.Durations[company] {
			wg.Add(1)
			go func(company, duration string) {
				defer wg.Done()

				t, err := f.Dataset(ctx, company, duration)
				if err != nil {
					log.Printf("skipping %s/%s: %v", company, duration, err)
					return
				}

				sum, title, link, found := scan(t, id)
				if !found {
					return
				}

				mu.Lock()
				defer mu.Unlock()
				if totals[company] == nil {
					totals[company] = make(map[string]float64)
				}
				totals[company][duration] += sum
				if res.Title == "" {
					res.Title = title
					res.Link = link
				}
			}(company, duration)
		}
	}
	wg.Wait()

	for _, company := range cat.Companies {
		durations := totals[company]
		if durations == nil {
			continue
		}
		var total float64
		for _, v := range durations {
			total += v
		}
		if total <= 0 {
			continue
		}
		res.Companies = append(res.Companies, CompanyFrequency{
			Company:   company,
			Durations: durations,
			Total:     total,
		})
	}

	return res, nil
}

// scan sums the frequency of every row matching id. Frequency snapshots
// can repeat an id within one file, so all matches accumulate. The first
// match's title and link are reported.
func scan(t *dataset.Table, id string) (sum float64, title, link string, found bool) {
	idCol := t.Index(dataset.ColID)
	freqCol := t.Index(dataset.ColFrequency)
	titleCol := t.Index(dataset.ColTitle)
	linkCol := t.Index(dataset.ColLink)
	if idCol < 0 || freqCol < 0 {
		return 0, "", "", false
	}

	for _, row := range t.Rows {
		if strings.TrimSpace(row.Cell(idCol)) != id {
			continue
		}
		if !found {
			found = true
			title = strings.TrimSpace(row.Cell(titleCol))
			link = strings.TrimSpace(row.Cell(linkCol))
		}
		if f, err := strconv.ParseFloat(strings.TrimSpace(row.Cell(freqCol)), 64); err == nil {
			sum += f
		}
	}
	return sum, title, link, found
}
