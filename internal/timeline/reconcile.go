// Package timeline merges the cached log history with the live installed
// set into the ordered view that gets printed.
package timeline

import (
	"sort"

	"github.com/johsve/pachist/internal/pacman"
)

// SentinelDate sorts lexicographically before any real log timestamp, so
// packages that are installed but have no logged history surface at the
// top of the timeline.
const SentinelDate = "0000-00-00T00:00:00+0000"

// Entry is one row of the reconciled timeline.
type Entry struct {
	Package string
	Date    string
	Status  pacman.Status
}

// Reconcile merges cached events with the currently installed package
// list. Precedence: presence in the installed set wins for existence, but
// recorded history wins for date and status — a package that is installed
// and has a logged event keeps that event, while one with no history gets
// the sentinel date and INS. Packages with history that are no longer
// installed (typically REM) are retained; removal history is never
// dropped.
//
// The result is sorted ascending by date string (the log's timestamp
// format is lexically sortable), with package name as tiebreak so output
// is deterministic run-to-run.
func Reconcile(events map[string]pacman.Event, installed []string) []Entry {
	merged := make(map[string]pacman.Event, len(events)+len(installed))
	for pkg, ev := range events {
		merged[pkg] = ev
	}
	for _, pkg := range installed {
		if _, ok := merged[pkg]; !ok {
			merged[pkg] = pacman.Event{Date: SentinelDate, Status: pacman.StatusInstalled}
		}
	}

	entries := make([]Entry, 0, len(merged))
	for pkg, ev := range merged {
		entries = append(entries, Entry{Package: pkg, Date: ev.Date, Status: ev.Status})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Date != entries[j].Date {
			return entries[i].Date < entries[j].Date
		}
		return entries[i].Package < entries[j].Package
	})
	return entries
}
