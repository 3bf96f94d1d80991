package output

import (
	"testing"

	"github.com/johsve/pachist/internal/pacman"
	"github.com/johsve/pachist/internal/store"
	"github.com/johsve/pachist/internal/timeline"
)

func TestRenderTimeline_PlainWhenPiped(t *testing.T) {
	// Tests never run on a TTY stdout, but NO_COLOR pins it down anyway.
	t.Setenv("NO_COLOR", "1")

	entries := []timeline.Entry{
		{Package: "foo", Date: "2024-01-01T10:00:00+0000", Status: pacman.StatusInstalled},
		{Package: "bar", Date: "2024-02-01T10:00:00+0000", Status: pacman.StatusRemoved},
	}
	got := RenderTimeline(entries)
	want := "2024-01-01T10:00:00+0000 :: INS :: foo\n" +
		"2024-02-01T10:00:00+0000 :: REM :: bar\n"
	if got != want {
		t.Errorf("RenderTimeline() =\n%q\nwant\n%q", got, want)
	}
}

func TestRenderTimeline_Empty(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	if got := RenderTimeline(nil); got != "" {
		t.Errorf("RenderTimeline(nil) = %q, want empty", got)
	}
}

func TestRenderHistory(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	events := []store.HistoryEvent{
		{Package: "foo", Action: "installed", Version: "1.0-1", Date: "2024-01-01T10:00:00+0000"},
		{Package: "foo", Action: "upgraded", Version: "1.0-1 -> 1.1-1", Date: "2024-01-02T10:00:00+0000"},
		{Package: "bar", Action: "removed", Date: "2024-01-03T10:00:00+0000"},
	}
	got := RenderHistory(events)
	want := "2024-01-01T10:00:00+0000 :: INS :: foo (1.0-1)\n" +
		"2024-01-02T10:00:00+0000 :: UPG :: foo (1.0-1 -> 1.1-1)\n" +
		"2024-01-03T10:00:00+0000 :: REM :: bar\n"
	if got != want {
		t.Errorf("RenderHistory() =\n%q\nwant\n%q", got, want)
	}
}

func TestIsColorEnabled_RespectsNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	if IsColorEnabled() {
		t.Error("IsColorEnabled() = true with NO_COLOR set")
	}
}
