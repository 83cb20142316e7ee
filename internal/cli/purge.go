package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/nmehta/leetrack/internal/storage"
)

// setStore allows tests to inject a store.
func (c *PurgeCommand) setStore(store *storage.Store) {
	c.store = store
}

// Execute implements the go-flags Commander interface for PurgeCommand.
func (c *PurgeCommand) Execute(args []string) error {
	if !c.All {
		return fmt.Errorf("purge requires --all flag for safety")
	}

	// Confirmation prompt unless --force
	if !c.Force {
		fmt.Println("⚠ WARNING: This will permanently delete ALL tracked progress.")
		fmt.Println("  - All attempted flags")
		fmt.Println("  - All solve dates")
		fmt.Println("  - All recorded company lists")
		fmt.Println()
		fmt.Println("This action cannot be undone.")
		fmt.Println()
		fmt.Print(`Type "PURGE" to confirm: `)

		scanner := bufio.NewScanner(os.Stdin)
		if !scanner.Scan() {
			return fmt.Errorf("aborted: no input received")
		}
		input := strings.TrimSpace(scanner.Text())
		if input != "PURGE" {
			return fmt.Errorf("aborted: confirmation text did not match")
		}
	}

	// Open or use injected store
	store := c.store
	if store == nil {
		cfg, err := loadConfig(c.globals)
		if err != nil {
			return err
		}
		opened, db, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer db.Close()
		defer opened.Close()
		store = opened
	}

	if err := store.Purge(); err != nil {
		return fmt.Errorf("purge failed: %w", err)
	}

	if c.globals != nil && c.globals.JSON {
		out := map[string]interface{}{
			"purged":  true,
			"message": "all progress deleted",
		}
		enc := json.NewEncoder(os.Stdout)
		return enc.Encode(out)
	}

	fmt.Println("Purged all progress. Leetrack is empty.")
	return nil
}
