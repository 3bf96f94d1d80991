package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/johsve/pachist/internal/cache"
)

var (
	cacheClear bool

	cacheCmd = &cobra.Command{
		Use:   "cache",
		Short: "Show or clear the parsed-log cache",
		RunE:  runCache,
	}
)

func init() {
	cacheCmd.Flags().BoolVar(&cacheClear, "clear", false, "remove the cache file")
}

func runCache(cmd *cobra.Command, args []string) error {
	cp, err := getCachePath()
	if err != nil {
		return err
	}

	if cacheClear {
		if err := os.Remove(cp); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove cache: %w", err)
		}
		fmt.Println("Cache cleared.")
		return nil
	}

	rec := cache.Load(cp)
	if rec == nil {
		fmt.Printf("No cache at %s\n", cp)
		return nil
	}

	fmt.Printf("Cache:       %s\n", cp)
	fmt.Printf("Fingerprint: %016x\n", rec.Fingerprint)
	fmt.Printf("Log size:    %d bytes\n", rec.LogSize)
	fmt.Printf("Packages:    %d\n", len(rec.Packages))
	return nil
}
