package pacman

import (
	"regexp"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"
)

// entryRe matches pacman's ALPM operation lines:
//
//	[2024-01-01T10:00:00+0000] [ALPM] installed foo (1.0-1)
//	[2024-01-01T10:05:00+0000] [ALPM] upgraded bar (1.0-1 -> 1.0-2)
//
// The package name runs up to the first whitespace or opening parenthesis.
// The action alternation is a closed set: any other action keyword simply
// never matches and the line is skipped with the rest of the noise.
var entryRe = regexp.MustCompile(`^\[([0-9T:+-]+)\] \[ALPM\] (installed|upgraded|removed) ([^\s(]+)(?: \(([^)]*)\))?`)

// minEntryLen is a cheap rejection filter: no operation line can be
// shorter than "[t] [ALPM] removed x".
const minEntryLen = 20

// parallelLineThreshold is the line count below which a sequential scan
// is used. Small logs are not worth the goroutine fan-out.
const parallelLineThreshold = 2048

// ParseLine extracts one operation entry from a log line. The second
// return value is false for the many unrelated lines in the log; that is
// not an error.
func ParseLine(line string) (LogEntry, bool) {
	if len(line) < minEntryLen || line[0] != '[' {
		return LogEntry{}, false
	}
	m := entryRe.FindStringSubmatch(line)
	if m == nil {
		return LogEntry{}, false
	}
	return LogEntry{
		Date:    m[1],
		Action:  m[2],
		Package: m[3],
		Version: m[4],
	}, true
}

// LatestEvents scans the full log content and returns the most recent
// event per package. Later lines overwrite earlier ones by log order, not
// by timestamp comparison: pacman's log is append-only, so line order is
// the authority even where timestamps repeat.
//
// Large logs are scanned in parallel chunks; the merge is keyed on the
// original line index, so the result is identical to a sequential scan.
func LatestEvents(content []byte) map[string]Event {
	lines := strings.Split(string(content), "\n")
	if len(lines) < parallelLineThreshold {
		return scanLines(lines)
	}
	return scanLinesParallel(lines)
}

// scanLines is the sequential scan: later lines simply overwrite.
func scanLines(lines []string) map[string]Event {
	events := make(map[string]Event)
	for _, line := range lines {
		entry, ok := ParseLine(line)
		if !ok {
			continue
		}
		events[entry.Package] = Event{Date: entry.Date, Status: ActionStatus(entry.Action)}
	}
	return events
}

// indexedEvent tags an event with the line index it came from, so chunk
// results can be merged deterministically.
type indexedEvent struct {
	event Event
	line  int
}

// scanLinesParallel fans the line slice out over one chunk per CPU. Each
// worker keeps the latest event per package within its chunk; the merge
// then keeps the event with the highest original line index, reproducing
// the sequential last-write-wins result regardless of scan order.
func scanLinesParallel(lines []string) map[string]Event {
	workers := runtime.GOMAXPROCS(0)
	if workers > len(lines) {
		workers = len(lines)
	}
	chunkSize := (len(lines) + workers - 1) / workers

	results := make([]map[string]indexedEvent, workers)
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		start := w * chunkSize
		end := start + chunkSize
		if end > len(lines) {
			end = len(lines)
		}
		slot := w
		g.Go(func() error {
			chunk := make(map[string]indexedEvent)
			for i := start; i < end; i++ {
				entry, ok := ParseLine(lines[i])
				if !ok {
					continue
				}
				// Within a chunk the index only increases, so plain
				// overwrite preserves last-write-wins.
				chunk[entry.Package] = indexedEvent{
					event: Event{Date: entry.Date, Status: ActionStatus(entry.Action)},
					line:  i,
				}
			}
			results[slot] = chunk
			return nil
		})
	}
	_ = g.Wait() // workers never return errors

	events := make(map[string]Event)
	latest := make(map[string]int)
	for _, chunk := range results {
		for pkg, ie := range chunk {
			if seen, ok := latest[pkg]; ok && seen > ie.line {
				continue
			}
			latest[pkg] = ie.line
			events[pkg] = ie.event
		}
	}
	return events
}
