// Package store provides a SQLite-backed memory of the last cursor position
// per file.
package store

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/xonecas/jot/internal/text"
	_ "modernc.org/sqlite" // register sqlite driver
)

const schema = `
CREATE TABLE IF NOT EXISTS cursor_positions (
	path     TEXT PRIMARY KEY,
	line     INTEGER NOT NULL,
	col      INTEGER NOT NULL,
	updated  INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_cursor_updated ON cursor_positions(updated);
`

// DefaultRetention is how long an untouched file's cursor is kept.
const DefaultRetention = 90 * 24 * time.Hour

// Cursors remembers cursor positions keyed by absolute file path.
type Cursors struct {
	mu        sync.Mutex
	db        *sql.DB
	retention time.Duration
}

// Open creates or opens the database at dbPath. Entries not updated within
// retention are purged; zero means DefaultRetention.
func Open(dbPath string, retention time.Duration) (*Cursors, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open cursor db: %w", err)
	}

	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("pragma %q: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	if retention <= 0 {
		retention = DefaultRetention
	}
	c := &Cursors{db: db, retention: retention}
	c.purgeStale()
	return c, nil
}

// Close closes the database. Safe on a nil receiver.
func (c *Cursors) Close() error {
	if c == nil {
		return nil
	}
	return c.db.Close()
}

// Recall returns the remembered cursor for path. Safe to call on a nil
// receiver (returns miss).
func (c *Cursors) Recall(path string) (text.Position, bool) {
	if c == nil {
		return text.Position{}, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	var p text.Position
	err := c.db.QueryRow(
		"SELECT line, col FROM cursor_positions WHERE path = ?",
		key(path),
	).Scan(&p.Line, &p.Col)
	if err != nil {
		if err != sql.ErrNoRows {
			log.Warn().Err(err).Str("path", path).Msg("failed to recall cursor")
		}
		return text.Position{}, false
	}
	return p, true
}

// Remember stores the cursor for path. No-op on nil receiver.
func (c *Cursors) Remember(path string, p text.Position) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	_, err := c.db.Exec(
		"INSERT OR REPLACE INTO cursor_positions (path, line, col, updated) VALUES (?, ?, ?, ?)",
		key(path), p.Line, p.Col, time.Now().Unix(),
	)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("failed to remember cursor")
	}
}

// Forget drops the entry for path. No-op on nil receiver.
func (c *Cursors) Forget(path string) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := c.db.Exec("DELETE FROM cursor_positions WHERE path = ?", key(path)); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("failed to forget cursor")
	}
}

// --- Helpers ---

// key makes the lookup independent of the working directory.
func key(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}

// purgeStale removes entries older than the retention period.
func (c *Cursors) purgeStale() {
	cutoff := time.Now().Add(-c.retention).Unix()
	res, err := c.db.Exec("DELETE FROM cursor_positions WHERE updated <= ?", cutoff)
	if err != nil {
		log.Warn().Err(err).Msg("failed to purge stale cursors")
		return
	}
	if n, _ := res.RowsAffected(); n > 0 {
		log.Info().Int64("deleted", n).Msg("purged stale cursor entries")
	}
}
