package cli

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/nmehta/leetrack/internal/config"
	"github.com/nmehta/leetrack/internal/storage"
)

// loadConfig resolves the config from --config or the default path.
func loadConfig(globals *GlobalFlags) (*config.Config, error) {
	if globals != nil && globals.Config != "" {
		return config.Load(globals.Config)
	}
	return config.LoadOrCreate()
}

// openStore opens the configured SQLite-backed annotation store with
// migrations applied. The caller closes both the store and the db.
func openStore(cfg *config.Config) (*storage.Store, *sql.DB, error) {
	dbPath, err := cfg.DBPath()
	if err != nil {
		return nil, nil, err
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, nil, fmt.Errorf("create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}

	runner := storage.NewMigrationRunner(db)
	if err := runner.Run(); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("run migrations: %w", err)
	}

	backend, err := storage.NewSQLiteBackend(db)
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("init store: %w", err)
	}

	return storage.NewStore(backend), db, nil
}

// checkbox renders an attempted flag the way the table shows it.
func checkbox(attempted bool) string {
	if attempted {
		return "[x]"
	}
	return "[ ]"
}

// bar renders count as a proportional block bar, capped at width.
func bar(count, max, width int) string {
	if count <= 0 || max <= 0 {
		return ""
	}
	n := count * width / max
	if n == 0 {
		n = 1
	}
	return strings.Repeat("█", n)
}
