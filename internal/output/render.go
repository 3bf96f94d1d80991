// Package output renders the reconciled timeline and history listings.
//
// Each row is `date :: TAG :: package`, optionally colorized per field
// when stdout is a TTY. Colorization is cosmetic: the machine-parseable
// content is identical when piped.
package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/johsve/pachist/internal/pacman"
	"github.com/johsve/pachist/internal/store"
	"github.com/johsve/pachist/internal/timeline"
)

// 24-bit ANSI codes, one per field/status.
const (
	colorReset = "\033[0m"
	colorDate  = "\033[38;2;203;166;247m"
	colorPkg   = "\033[38;2;137;180;250m"
	colorIns   = "\033[38;2;166;227;161m"
	colorUpg   = "\033[38;2;249;226;175m"
	colorRem   = "\033[38;2;250;179;135m"
	colorErr   = "\033[38;2;243;139;168m"
)

// IsColorEnabled returns true if ANSI color codes should be emitted.
// It checks that os.Stdout is a TTY and that the NO_COLOR env var is not set.
func IsColorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd())
}

// colorize wraps text in the given ANSI color code if color is enabled,
// otherwise returns the plain text.
func colorize(color, text string) string {
	if IsColorEnabled() {
		return color + text + colorReset
	}
	return text
}

// statusColor returns the ANSI color for a status tag.
func statusColor(status pacman.Status) string {
	switch status {
	case pacman.StatusInstalled:
		return colorIns
	case pacman.StatusUpgraded:
		return colorUpg
	case pacman.StatusRemoved:
		return colorRem
	default:
		return colorErr
	}
}

// RenderTimeline renders one line per reconciled entry.
func RenderTimeline(entries []timeline.Entry) string {
	var sb strings.Builder
	for _, e := range entries {
		sb.WriteString(fmt.Sprintf("%s :: %s :: %s\n",
			colorize(colorDate, e.Date),
			colorize(statusColor(e.Status), string(e.Status)),
			colorize(colorPkg, e.Package)))
	}
	return sb.String()
}

// RenderHistory renders indexed history events, oldest first, including
// the version field when the log line carried one.
func RenderHistory(events []store.HistoryEvent) string {
	var sb strings.Builder
	for _, e := range events {
		status := pacman.ActionStatus(e.Action)
		sb.WriteString(fmt.Sprintf("%s :: %s :: %s",
			colorize(colorDate, e.Date),
			colorize(statusColor(status), string(status)),
			colorize(colorPkg, e.Package)))
		if e.Version != "" {
			sb.WriteString(" (" + e.Version + ")")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
