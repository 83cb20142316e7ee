package cli

import (
	"fmt"

	"github.com/nmehta/leetrack/internal/storage"
)

// Execute implements the go-flags Commander interface for AttemptCommand.
func (c *AttemptCommand) Execute(args []string) error {
	if c.ID == "" {
		return fmt.Errorf("--id is required for attempt command")
	}
	if c.Undone && c.Date != "" {
		return fmt.Errorf("--undone and --date are mutually exclusive")
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

// executeWith runs the attempt logic against a provided store (for testing).
func (c *AttemptCommand) executeWith(store *storage.Store) error {
	switch {
	case c.Date != "":
		// Direct date overwrite accepts any text verbatim.
		if err := store.SetDateSolved(c.ID, c.Date); err != nil {
			return fmt.Errorf("set solve date: %w", err)
		}
		fmt.Printf("Question %s solve date set to %q\n", c.ID, c.Date)
	case c.Undone:
		if err := store.SetAttempted(c.ID, false); err != nil {
			return fmt.Errorf("unmark attempt: %w", err)
		}
		fmt.Printf("Question %s unmarked (solve date cleared)\n", c.ID)
	default:
		if err := store.SetAttempted(c.ID, true); err != nil {
			return fmt.Errorf("mark attempt: %w", err)
		}
		date, err := store.DateSolved(c.ID)
		if err != nil {
			return err
		}
		fmt.Printf("Question %s marked attempted (%s)\n", c.ID, date)
	}
	return nil
}
