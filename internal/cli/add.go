package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/nmehta/leetrack/internal/storage"
)

// Execute implements the go-flags Commander interface for AddCommand.
func (c *AddCommand) Execute(args []string) error {
	if c.ID == "" {
		return fmt.Errorf("--id is required for add command")
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

	return c.executeWith(store)
}

// executeWith runs the add logic against a provided store (for testing).
func (c *AddCommand) executeWith(store *storage.Store) error {
	if err := store.CreateEntry(c.ID, c.Companies); err != nil {
		return err
	}

	date, err := store.DateSolved(c.ID)
	if err != nil {
		return err
	}

	if c.globals != nil && c.globals.JSON {
		out := map[string]interface{}{
			"id":          c.ID,
			"companies":   c.Companies,
			"date_solved": date,
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Printf("Recorded question %s (%s)\n", c.ID, date)
	fmt.Printf("  Companies: %s\n", strings.Join(c.Companies, ", "))
	return nil
}
