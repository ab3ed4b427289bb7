package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/carllerche/minifmt/internal/driver"
)

func newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the formatting result cache",
	}
	cmd.AddCommand(newCacheCleanCmd())
	cmd.AddCommand(newCachePathCmd())
	return cmd
}

func newCacheCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Remove all cached formatting results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFor(cmd)
			p := newProgress(logger)
			cache, err := driver.OpenDiskCache(cacheApp)
			if err != nil {
				return fmt.Errorf("open cache: %w", err)
			}
			if err := cache.DropAll(); err != nil {
				return fmt.Errorf("clean cache: %w", err)
			}
			p.done("cleared " + cache.Dir())
			if quiet, _ := cmd.Flags().GetBool("quiet"); !quiet {
				fmt.Fprintf(cmd.OutOrStdout(), "cleared %s\n", cache.Dir())
			}
			return nil
		},
	}
}

func newCachePathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cache, err := driver.OpenDiskCache(cacheApp)
			if err != nil {
				return fmt.Errorf("open cache: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), cache.Dir())
			return nil
		},
	}
}
