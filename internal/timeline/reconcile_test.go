package timeline

import (
	"sort"
	"testing"

	"github.com/johsve/pachist/internal/pacman"
)

func TestReconcile_HistoryWinsOverSentinel(t *testing.T) {
	events := map[string]pacman.Event{
		"foo": {Date: "2024-01-01T10:00:00+0000", Status: pacman.StatusUpgraded},
	}
	entries := Reconcile(events, []string{"foo"})

	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	e := entries[0]
	if e.Date != "2024-01-01T10:00:00+0000" || e.Status != pacman.StatusUpgraded {
		t.Errorf("entry = %+v, want recorded UPG, not a synthetic sentinel", e)
	}
}

func TestReconcile_SentinelForUnloggedInstalled(t *testing.T) {
	entries := Reconcile(map[string]pacman.Event{}, []string{"bar"})

	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	e := entries[0]
	if e.Package != "bar" || e.Date != SentinelDate || e.Status != pacman.StatusInstalled {
		t.Errorf("entry = %+v, want bar with sentinel date and INS", e)
	}
}

func TestReconcile_RemovedHistoryRetained(t *testing.T) {
	events := map[string]pacman.Event{
		"baz": {Date: "2024-03-01T00:00:00+0000", Status: pacman.StatusRemoved},
	}
	entries := Reconcile(events, []string{"other"})

	var found bool
	for _, e := range entries {
		if e.Package == "baz" {
			found = true
			if e.Status != pacman.StatusRemoved || e.Date != "2024-03-01T00:00:00+0000" {
				t.Errorf("baz = %+v, want REM with original date", e)
			}
		}
	}
	if !found {
		t.Error("removed package baz dropped from reconciled output")
	}
}

func TestReconcile_SortedByDateAscending(t *testing.T) {
	events := map[string]pacman.Event{
		"c": {Date: "2024-03-01T00:00:00+0000", Status: pacman.StatusInstalled},
		"a": {Date: "2024-01-01T00:00:00+0000", Status: pacman.StatusInstalled},
		"b": {Date: "2024-02-01T00:00:00+0000", Status: pacman.StatusUpgraded},
	}
	entries := Reconcile(events, []string{"a", "b", "c", "unlogged"})

	if !sort.SliceIsSorted(entries, func(i, j int) bool {
		return entries[i].Date < entries[j].Date
	}) {
		t.Errorf("entries not sorted by date: %+v", entries)
	}
	// The sentinel sorts first.
	if entries[0].Package != "unlogged" || entries[0].Date != SentinelDate {
		t.Errorf("first entry = %+v, want the sentinel-dated package", entries[0])
	}
}

func TestReconcile_InstalledSetWinsForExistence(t *testing.T) {
	entries := Reconcile(nil, []string{"x", "y"})
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
}

func TestReconcile_Empty(t *testing.T) {
	if entries := Reconcile(nil, nil); len(entries) != 0 {
		t.Errorf("got %d entries for empty inputs, want 0", len(entries))
	}
}
