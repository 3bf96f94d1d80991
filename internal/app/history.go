package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/johsve/pachist/internal/output"
	"github.com/johsve/pachist/internal/store"
)

var (
	historyLimit int

	historyCmd = &cobra.Command{
		Use:   "history [package]",
		Short: "Show the full operation history from the log index",
		Long: `Show every logged install, upgrade and removal, not just the latest
event per package.

The log is indexed into a local SQLite database; only bytes appended
since the previous invocation are parsed, and a rotated log is detected
and reindexed from the start.`,
		Example: `  # Everything, oldest first
  pachist history

  # One package
  pachist history linux

  # The last 20 operations
  pachist history --limit 20`,
		Args: cobra.MaximumNArgs(1),
		RunE: runHistory,
	}
)

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 0, "maximum number of events to show (0 = all)")
}

func runHistory(cmd *cobra.Command, args []string) error {
	dbPath, err := getHistoryDBPath()
	if err != nil {
		return err
	}

	st, err := store.New(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer st.Close()

	if err := st.CreateSchema(); err != nil {
		return fmt.Errorf("failed to create history schema: %w", err)
	}

	if _, err := st.IndexLog(logPath); err != nil {
		return fmt.Errorf("failed to index log: %w", err)
	}

	var events []store.HistoryEvent
	if len(args) == 1 {
		events, err = st.EventsForPackage(args[0])
	} else {
		events, err = st.RecentEvents(historyLimit)
	}
	if err != nil {
		return fmt.Errorf("failed to query history: %w", err)
	}

	if len(events) == 0 {
		fmt.Println("No events recorded.")
		return nil
	}

	fmt.Print(output.RenderHistory(events))
	return nil
}
