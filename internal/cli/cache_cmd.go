package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/zmzehd/markdown2html/internal/cache"
	"github.com/zmzehd/markdown2html/internal/config"
)

func newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the render cache",
	}
	cmd.AddCommand(newCachePurgeCmd())
	return cmd
}

func newCachePurgeCmd() *cobra.Command {
	var olderThan time.Duration
	cmd := &cobra.Command{
		Use:   "purge",
		Short: "Drop cached renders older than a cutoff",
		RunE: func(cmd *cobra.Command, args []string) error {
			v := getConfig(cmd)
			store, err := cache.Open(cmd.Context(), config.CachePath(v))
			if err != nil {
				return err
			}
			defer store.Close()

			n, err := store.Purge(cmd.Context(), time.Now().Add(-olderThan))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "cache: purged %d entries\n", n)
			return nil
		},
	}
	cmd.Flags().DurationVar(&olderThan, "older-than", 0, "only purge entries older than this (0 purges everything)")
	return cmd
}
