package store

import (
	"bytes"
	"database/sql"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/johsve/pachist/internal/pacman"
)

const offsetKey = "log_offset"

// IndexLog appends any log bytes written since the last run to the events
// table. The byte offset of the last indexed line is stored in the meta
// table and advanced in the same transaction as the inserts, so a crash
// never double-indexes or skips lines. A shrunken log (rotation or
// truncation) drops the index and rebuilds from the start.
//
// Only complete lines are indexed: a trailing partial line is assumed to
// be a write in progress and is left for the next run. Returns the number
// of events added. A missing log is a no-op, not an error.
func (s *Store) IndexLog(logPath string) (int, error) {
	f, err := os.Open(logPath)
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("indexer: open log: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return 0, fmt.Errorf("indexer: stat log: %w", err)
	}

	offset, err := s.readOffset()
	if err != nil {
		return 0, fmt.Errorf("indexer: read offset: %w", err)
	}

	if offset > info.Size() {
		// Stored offset points past the end of the file — the log was
		// rotated. Rebuild from scratch.
		if err := s.resetIndex(); err != nil {
			return 0, fmt.Errorf("indexer: reset after rotation: %w", err)
		}
		offset = 0
	}

	if offset > 0 {
		if _, err := f.Seek(offset, io.SeekStart); err != nil {
			return 0, fmt.Errorf("indexer: seek to offset %d: %w", offset, err)
		}
	}

	data, err := io.ReadAll(f)
	if err != nil {
		return 0, fmt.Errorf("indexer: read log: %w", err)
	}

	// Index up to the last complete line only.
	end := bytes.LastIndexByte(data, '\n')
	if end < 0 {
		return 0, nil
	}
	newOffset := offset + int64(end) + 1

	var entries []pacman.LogEntry
	for _, line := range strings.Split(string(data[:end]), "\n") {
		if entry, ok := pacman.ParseLine(line); ok {
			entries = append(entries, entry)
		}
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("indexer: begin transaction: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO events (package, action, version, date) VALUES (?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback() //nolint:errcheck
		return 0, fmt.Errorf("indexer: prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, e := range entries {
		if _, err := stmt.Exec(e.Package, e.Action, e.Version, e.Date); err != nil {
			tx.Rollback() //nolint:errcheck
			return 0, fmt.Errorf("indexer: insert event for %s: %w", e.Package, err)
		}
	}

	if _, err := tx.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES (?, ?)`,
		offsetKey, strconv.FormatInt(newOffset, 10)); err != nil {
		tx.Rollback() //nolint:errcheck
		return 0, fmt.Errorf("indexer: store offset: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("indexer: commit: %w", err)
	}
	return len(entries), nil
}

// readOffset returns the stored byte offset, or 0 if none has been
// recorded yet.
func (s *Store) readOffset() (int64, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM meta WHERE key = ?`, offsetKey).Scan(&value)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	offset, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse offset %q: %w", value, err)
	}
	return offset, nil
}

// resetIndex drops all indexed events and the stored offset.
func (s *Store) resetIndex() error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM events`); err != nil {
		tx.Rollback() //nolint:errcheck
		return err
	}
	if _, err := tx.Exec(`DELETE FROM meta WHERE key = ?`, offsetKey); err != nil {
		tx.Rollback() //nolint:errcheck
		return err
	}
	return tx.Commit()
}
