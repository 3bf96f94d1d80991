package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/johsve/pachist/internal/cache"
	"github.com/johsve/pachist/internal/output"
	"github.com/johsve/pachist/internal/pacman"
	"github.com/johsve/pachist/internal/timeline"
)

// runTimeline implements the default command: query the installed set,
// refresh the cache when stale, reconcile and print. Nothing on this path
// is fatal — a missing log, a corrupt cache or a failed cache write all
// degrade, and an empty installed set exits silently.
func runTimeline(cmd *cobra.Command, args []string) error {
	printTimeline()
	return nil
}

// printTimeline renders the reconciled timeline to stdout. Shared between
// the default command and watch mode.
func printTimeline() {
	cp, err := getCachePath()
	if err != nil {
		// Can't resolve a cache location — run uncached.
		cp = ""
	}

	entries, ok := buildTimeline(pacman.QueryExplicit(), logPath, cp)
	if !ok {
		return
	}
	fmt.Print(output.RenderTimeline(entries))
}

// buildTimeline is the core cache/parse/reconcile flow. It returns
// (nil, false) when the installed set is empty, in which case the caller
// prints nothing. An empty cachePath disables caching for the run.
func buildTimeline(installed []string, logPath, cachePath string) ([]timeline.Entry, bool) {
	if len(installed) == 0 {
		return nil, false
	}

	fingerprint := cache.Fingerprint(installed)
	logSize := pacman.LogSize(logPath)

	var rec *cache.Record
	if cachePath != "" {
		rec = cache.Load(cachePath)
	}

	if rec.Stale(fingerprint, logSize) {
		content, size := pacman.ReadLog(logPath)
		rec = &cache.Record{
			Fingerprint: fingerprint,
			LogSize:     size,
			Packages:    pacman.LatestEvents(content),
		}
		if cachePath != "" {
			if err := cache.Save(cachePath, rec); err != nil {
				// Caching is best-effort: this run's output is still
				// correct, the next run just re-parses.
				fmt.Fprintf(os.Stderr, "pachist: cache not saved: %v\n", err)
			}
		}
	}

	return timeline.Reconcile(rec.Packages, installed), true
}
