package store

import (
	"database/sql"
	"fmt"
)

// HistoryEvent is one indexed operation from the pacman log. Unlike the
// timeline cache, every operation is kept, not just the latest per
// package.
type HistoryEvent struct {
	ID      int64
	Package string
	Action  string
	Version string
	Date    string
}

// EventsForPackage returns every indexed event for the named package in
// log order, oldest first.
func (s *Store) EventsForPackage(name string) ([]HistoryEvent, error) {
	rows, err := s.db.Query(
		`SELECT id, package, action, version, date FROM events WHERE package = ? ORDER BY id`,
		name,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query events for %s: %w", name, err)
	}
	defer rows.Close()
	return scanEvents(rows)
}

// RecentEvents returns the most recent limit events across all packages
// in log order, oldest first. A limit of 0 returns everything.
func (s *Store) RecentEvents(limit int) ([]HistoryEvent, error) {
	var rows *sql.Rows
	var err error
	if limit > 0 {
		// Take the newest N, then flip back to log order.
		rows, err = s.db.Query(
			`SELECT id, package, action, version, date FROM
				(SELECT id, package, action, version, date FROM events ORDER BY id DESC LIMIT ?)
			ORDER BY id`,
			limit,
		)
	} else {
		rows, err = s.db.Query(
			`SELECT id, package, action, version, date FROM events ORDER BY id`)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query recent events: %w", err)
	}
	defer rows.Close()
	return scanEvents(rows)
}

// CountEvents returns the number of indexed events.
func (s *Store) CountEvents() (int, error) {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM events`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count events: %w", err)
	}
	return count, nil
}

func scanEvents(rows *sql.Rows) ([]HistoryEvent, error) {
	var events []HistoryEvent
	for rows.Next() {
		var e HistoryEvent
		var version sql.NullString
		if err := rows.Scan(&e.ID, &e.Package, &e.Action, &version, &e.Date); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		e.Version = version.String
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read events: %w", err)
	}
	return events, nil
}
