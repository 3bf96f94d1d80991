package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/johsve/pachist/internal/pacman"
)

var (
	logPath   string
	cachePath string

	// RootCmd is the root command for pachist
	RootCmd = &cobra.Command{
		Use:   "pachist",
		Short: "Chronological timeline of pacman package operations",
		Long: `pachist reconstructs a chronological timeline of package install,
upgrade and removal events by parsing the pacman operation log and
merging it with the currently installed explicit package set.

The parsed log is cached, so repeated invocations are fast: the cache
is reused until the installed set or the log size changes, and is
rewritten atomically when it goes stale.

Removed packages keep their place in the timeline; installed packages
with no logged history sort first under a zeroed date.

Examples:
  # Print the full timeline
  pachist

  # Every logged operation for one package
  pachist history linux

  # Re-render whenever pacman writes to the log
  pachist watch

  # Inspect or drop the cache
  pachist cache
  pachist cache --clear`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runTimeline,
	}
)

func init() {
	// Global flags
	RootCmd.PersistentFlags().StringVar(&logPath, "log", pacman.DefaultLogPath, "pacman log path")
	RootCmd.PersistentFlags().StringVar(&cachePath, "cache", "", "cache file path (default: ~/.cache/pachist/packages.json)")

	// Enable cobra's built-in suggestion feature for unknown subcommands
	RootCmd.SuggestionsMinimumDistance = 2

	// Register subcommands
	RootCmd.AddCommand(historyCmd)
	RootCmd.AddCommand(watchCmd)
	RootCmd.AddCommand(cacheCmd)
}

// Execute runs the root command
func Execute() error {
	return RootCmd.Execute()
}

// cacheDir returns the pachist cache directory, respecting XDG_CACHE_HOME.
// Defaults to ~/.cache/pachist if XDG_CACHE_HOME is not set.
func cacheDir() (string, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user home directory: %w", err)
		}
		base = filepath.Join(home, ".cache")
	}
	return filepath.Join(base, "pachist"), nil
}

// getCachePath returns the cache file path, using the flag value or default.
func getCachePath() (string, error) {
	if cachePath != "" {
		return cachePath, nil
	}
	dir, err := cacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "packages.json"), nil
}

// getHistoryDBPath returns the history database path, creating the cache
// directory if needed.
func getHistoryDBPath() (string, error) {
	dir, err := cacheDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create cache directory: %w", err)
	}
	return filepath.Join(dir, "history.db"), nil
}
