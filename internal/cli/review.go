package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/nmehta/leetrack/internal/catalog"
	"github.com/nmehta/leetrack/internal/storage"
	"github.com/nmehta/leetrack/internal/summary"
)

// Execute implements the go-flags Commander interface for ReviewCommand.
func (c *ReviewCommand) Execute(args []string) error {
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

func (c *ReviewCommand) executeWith(client *catalog.Client, store *storage.Store) error {
	problems, err := client.Problems(context.Background())
	if err != nil {
		return fmt.Errorf("load problem data: %w", err)
	}

	rows, err := summary.Review(store, problems)
	if err != nil {
		return err
	}

	if c.globals != nil && c.globals.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}
	return c.printHuman(rows)
}

func (c *ReviewCommand) printHuman(rows []summary.ReviewRow) error {
	if len(rows) == 0 {
		fmt.Println("No tracked questions to review yet.")
		return nil
	}

	fmt.Printf("Review List (%d questions)\n\n", len(rows))

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tName\tDifficulty\tCompanies\tDate Solved")
	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", r.ID, r.Name, r.Difficulty, r.Companies, r.DateSolved)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if c.globals != nil && c.globals.Verbose {
		fmt.Println()
		for _, r := range rows {
			fmt.Printf("  %s: %s\n", r.ID, r.Link)
		}
	}
	return nil
}
