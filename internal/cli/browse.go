package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/nmehta/leetrack/internal/catalog"
	"github.com/nmehta/leetrack/internal/dataset"
	"github.com/nmehta/leetrack/internal/storage"
)

// browseRow is one rendered table row: the question plus its tracked state.
type browseRow struct {
	dataset.Question
	Attempted  bool
	DateSolved string
}

// Execute implements the go-flags Commander interface for BrowseCommand.
func (c *BrowseCommand) Execute(args []string) error {
	if c.Company == "" || c.Duration == "" {
		return fmt.Errorf("--company and --duration are required")
	}

	cfg, err := loadConfig(c.globals)
	if err != nil {
		return err
	}

	store, db, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer db.Close()
	defer store.Close()

	return c.executeWith(catalog.NewClient(cfg.Data.BaseURL), store)
}

// executeWith runs browse against a provided client and store (for testing).
func (c *BrowseCommand) executeWith(client *catalog.Client, store *storage.Store) error {
	ctx := context.Background()

	t, err := client.Dataset(ctx, c.Company, c.Duration)
	if err != nil {
		return fmt.Errorf("load questions: %w", err)
	}

	t = dataset.Apply(t, c.Sort, c.Difficulty)

	solved := 0
	rows := make([]browseRow, 0, len(t.Rows))
	for i := range t.Rows {
		q := t.Question(i)

		attempted, err := store.Attempted(q.ID)
		if err != nil {
			return err
		}
		date, err := store.DateSolved(q.ID)
		if err != nil {
			return err
		}
		if attempted {
			solved++
		}
		rows = append(rows, browseRow{Question: q, Attempted: attempted, DateSolved: date})
	}

	if c.globals != nil && c.globals.JSON {
		return c.printJSON(rows, solved)
	}
	return c.printHuman(rows, solved)
}

func (c *BrowseCommand) printHuman(rows []browseRow, solved int) error {
	fmt.Printf("%s - %s Problems\n", catalog.FormatCompany(c.Company), catalog.FormatDuration(c.Duration))
	fmt.Printf("Solved: %d / %d\n\n", solved, len(rows))

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTitle\tAcceptance\tDifficulty\tFrequency\tAttempted\tDate Solved")
	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.2f%%\t%s\t%s\n",
			r.ID, r.Title, r.Acceptance, r.Difficulty, r.Frequency,
			checkbox(r.Attempted), r.DateSolved)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if c.globals != nil && c.globals.Verbose {
		fmt.Println()
		for _, r := range rows {
			fmt.Printf("%s: %s\n", r.ID, r.Link)
		}
	}
	return nil
}

type browseRowJSON struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	Acceptance string  `json:"acceptance"`
	Difficulty string  `json:"difficulty"`
	Frequency  float64 `json:"frequency"`
	Link       string  `json:"link"`
	Attempted  bool    `json:"attempted"`
	DateSolved string  `json:"date_solved,omitempty"`
}

func (c *BrowseCommand) printJSON(rows []browseRow, solved int) error {
	out := struct {
		Company   string          `json:"company"`
		Duration  string          `json:"duration"`
		Solved    int             `json:"solved"`
		Total     int             `json:"total"`
		Questions []browseRowJSON `json:"questions"`
	}{
		Company:   c.Company,
		Duration:  c.Duration,
		Solved:    solved,
		Total:     len(rows),
		Questions: make([]browseRowJSON, len(rows)),
	}

	for i, r := range rows {
		out.Questions[i] = browseRowJSON{
			ID:         r.ID,
			Title:      r.Title,
			Acceptance: r.Acceptance,
			Difficulty: r.Difficulty,
			Frequency:  r.Frequency,
			Link:       r.Link,
			Attempted:  r.Attempted,
			DateSolved: r.DateSolved,
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
