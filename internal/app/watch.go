package app

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/johsve/pachist/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-render the timeline whenever the log changes",
	Long: `Render the timeline, then keep watching the pacman log and re-render
after every append. Stop with Ctrl-C.`,
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	w, err := watcher.New(logPath, func() {
		fmt.Println()
		printTimeline()
	})
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", logPath, err)
	}
	w.Start()
	defer w.Stop()

	printTimeline()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
	return nil
}
