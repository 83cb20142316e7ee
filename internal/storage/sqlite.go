package storage

import (
	"database/sql"
	"fmt"
)

// SQLiteBackend implements Backend on top of a single annotations table.
type SQLiteBackend struct {
	db *sql.DB

	// Prepared statements
	getStmt    *sql.Stmt
	setStmt    *sql.Stmt
	deleteStmt *sql.Stmt
	keysStmt   *sql.Stmt
}

// NewSQLiteBackend creates a SQLiteBackend from an already-opened and
// migrated database.
func NewSQLiteBackend(db *sql.DB) (*SQLiteBackend, error) {
	b := &SQLiteBackend{db: db}
	if err := b.prepareStatements(); err != nil {
		return nil, fmt.Errorf("prepare statements: %w", err)
	}
	return b, nil
}

func (b *SQLiteBackend) prepareStatements() error {
	var err error

	b.getStmt, err = b.db.Prepare(`SELECT value FROM annotations WHERE key = ?`)
	if err != nil {
		return err
	}

	b.setStmt, err = b.db.Prepare(`
		INSERT INTO annotations (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`)
	if err != nil {
		return err
	}

	b.deleteStmt, err = b.db.Prepare(`DELETE FROM annotations WHERE key = ?`)
	if err != nil {
		return err
	}

	b.keysStmt, err = b.db.Prepare(`SELECT key FROM annotations WHERE key LIKE ? || '%' ORDER BY key`)
	if err != nil {
		return err
	}

	return nil
}

func (b *SQLiteBackend) Get(key string) (string, bool, error) {
	var value string
	err := b.getStmt.QueryRow(key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %s: %w", key, err)
	}
	return value, true, nil
}

func (b *SQLiteBackend) Set(key, value string) error {
	if _, err := b.setStmt.Exec(key, value); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

func (b *SQLiteBackend) Delete(key string) error {
	if _, err := b.deleteStmt.Exec(key); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

func (b *SQLiteBackend) Keys(prefix string) ([]string, error) {
	rows, err := b.keysStmt.Query(prefix)
	if err != nil {
		return nil, fmt.Errorf("keys %s: %w", prefix, err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("scan key: %w", err)
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

// Close releases all prepared statements. The underlying *sql.DB is NOT
// closed; that is the caller's responsibility.
func (b *SQLiteBackend) Close() error {
	stmts := []*sql.Stmt{b.getStmt, b.setStmt, b.deleteStmt, b.keysStmt}
	for _, stmt := range stmts {
		if stmt != nil {
			stmt.Close()
		}
	}
	return nil
}
