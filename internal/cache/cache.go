// Package cache persists the parsed pacman log between runs.
//
// The cache is a single JSON file holding the installed-set fingerprint,
// the log byte length both were derived from, and the latest event per
// package. It is regenerated wholesale whenever either validity signal
// disagrees with current reality — never patched incrementally, since the
// log is append-and-rotate and a partial merge could resurrect an entry
// whose correction was truncated away.
package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/johsve/pachist/internal/pacman"
)

// Record is the sole persisted entity.
type Record struct {
	Fingerprint uint64                  `json:"pkg_fingerprint"`
	LogSize     int64                   `json:"log_size"`
	Packages    map[string]pacman.Event `json:"packages"`
}

// Load reads a cache record from path. It returns nil if the file is
// absent, unreadable, or fails to decode — callers must treat all three
// identically and re-derive from the log. Unknown JSON fields are
// ignored, so newer cache files stay loadable.
func Load(path string) *Record {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil
	}
	if rec.Packages == nil {
		rec.Packages = make(map[string]pacman.Event)
	}
	return &rec
}

// Save writes the record to path via a temporary sibling file and an
// atomic rename, so a concurrent reader or a crash mid-write never sees
// a partially written cache. Concurrent writers race on the rename and
// the last one wins; the loser's data is recomputable next run.
func Save(path string, rec *Record) error {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("encode cache: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".packages-*.json.tmp")
	if err != nil {
		return fmt.Errorf("create temp cache file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write temp cache file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp cache file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("chmod temp cache file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename cache file: %w", err)
	}
	return nil
}

// Stale reports whether the record must be regenerated: it is stale when
// absent, or when either the installed-set fingerprint or the log byte
// length disagrees with the current values. Safe to call on a nil record.
func (r *Record) Stale(fingerprint uint64, logSize int64) bool {
	return r == nil || r.Fingerprint != fingerprint || r.LogSize != logSize
}
