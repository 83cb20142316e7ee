package cli

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/nmehta/leetrack/internal/config"
	"github.com/nmehta/leetrack/internal/storage"
)

// statusJSON is the JSON output structure for the status command.
type statusJSON struct {
	Version           string             `json:"version"`
	DatabasePath      string             `json:"database_path"`
	DatabaseSizeBytes int64              `json:"database_size_bytes"`
	TotalTracked      int                `json:"total_tracked"`
	TotalSolved       int                `json:"total_solved"`
	FirstSolve        string             `json:"first_solve,omitempty"`
	LastSolve         string             `json:"last_solve,omitempty"`
	PerCompany        []companyCountJSON `json:"per_company"`
	ServerRunning     bool               `json:"server_running"`
}

type companyCountJSON struct {
	Company string `json:"company"`
	Count   int    `json:"count"`
}

// Execute implements the go-flags Commander interface for StatusCommand.
func (c *StatusCommand) Execute(args []string) error {
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

	dbPath, err := cfg.DBPath()
	if err != nil {
		return err
	}

	return c.executeWith(store, db, dbPath, checkServer(cfg))
}

// executeWith runs status against a provided store and db (for testing).
func (c *StatusCommand) executeWith(store *storage.Store, db *sql.DB, dbPath string, serverRunning bool) error {
	stats, err := store.Stats()
	if err != nil {
		return fmt.Errorf("get stats: %w", err)
	}

	dbSize := databaseSize(db, dbPath)

	if c.globals != nil && c.globals.JSON {
		return c.printJSON(stats, dbPath, dbSize, serverRunning)
	}
	return c.printHuman(stats, dbPath, dbSize, serverRunning)
}

func (c *StatusCommand) printHuman(stats *storage.Stats, dbPath string, dbSize int64, serverRunning bool) error {
	fmt.Println("Leetrack Status")
	fmt.Println("===============")
	fmt.Printf("Version:       %s\n", c.version)
	fmt.Printf("Database:      %s (%s)\n", dbPath, formatBytes(dbSize))
	fmt.Printf("Tracked:       %d\n", stats.TotalTracked)

	// Solved with percentage
	if stats.TotalTracked > 0 {
		pct := float64(stats.TotalSolved) / float64(stats.TotalTracked) * 100
		fmt.Printf("Solved:        %d (%.1f%%)\n", stats.TotalSolved, pct)
	} else {
		fmt.Printf("Solved:        %d\n", stats.TotalSolved)
	}

	// Time range
	if stats.TotalSolved > 0 {
		fmt.Printf("First solve:   %s\n", stats.FirstSolve.Local().Format("2006-01-02"))
		fmt.Printf("Last solve:    %s\n", stats.LastSolve.Local().Format("2006-01-02"))
	}

	if len(stats.PerCompany) > 0 {
		fmt.Println()
		fmt.Println("Companies:")
		for _, cc := range stats.PerCompany {
			fmt.Printf("  %-20s %d\n", cc.Company, cc.Count)
		}
	}

	fmt.Println()
	if serverRunning {
		fmt.Println("Server:        running")
	} else {
		fmt.Println("Server:        not running")
	}

	return nil
}

func (c *StatusCommand) printJSON(stats *storage.Stats, dbPath string, dbSize int64, serverRunning bool) error {
	out := statusJSON{
		Version:           c.version,
		DatabasePath:      dbPath,
		DatabaseSizeBytes: dbSize,
		TotalTracked:      stats.TotalTracked,
		TotalSolved:       stats.TotalSolved,
		PerCompany:        make([]companyCountJSON, len(stats.PerCompany)),
		ServerRunning:     serverRunning,
	}

	if stats.TotalSolved > 0 {
		out.FirstSolve = stats.FirstSolve.UTC().Format(time.RFC3339)
		out.LastSolve = stats.LastSolve.UTC().Format(time.RFC3339)
	}

	for i, cc := range stats.PerCompany {
		out.PerCompany[i] = companyCountJSON{Company: cc.Company, Count: cc.Count}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// databaseSize returns the database file size in bytes.
// For on-disk databases, it uses os.Stat. For in-memory databases,
// it queries page_count * page_size.
func databaseSize(db *sql.DB, dbPath string) int64 {
	if info, err := os.Stat(dbPath); err == nil {
		return info.Size()
	}

	var pageCount, pageSize int64
	if err := db.QueryRow("PRAGMA page_count").Scan(&pageCount); err != nil {
		return 0
	}
	if err := db.QueryRow("PRAGMA page_size").Scan(&pageSize); err != nil {
		return 0
	}
	return pageCount * pageSize
}

// checkServer attempts an HTTP GET against the configured API address.
// Returns true if the server responds within 1 second.
func checkServer(cfg *config.Config) bool {
	client := &http.Client{Timeout: 1 * time.Second}
	url := fmt.Sprintf("http://%s:%d/health", cfg.Server.Host, cfg.Server.Port)
	resp, err := client.Get(url)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// formatBytes formats a byte count into a human-readable string.
func formatBytes(b int64) string {
	switch {
	case b >= 1<<30:
		return fmt.Sprintf("%.1f GB", float64(b)/float64(1<<30))
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/float64(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/float64(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}
