package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/carllerche/minifmt/internal/driver"
)

var errCheckFailed = errors.New("check: some files do not round-trip")

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [flags] <path> [path...]",
		Short: "Verify that formatting is stable after re-parsing",
		Long: `check formats every file, parses the result and formats it again.
A file passes when both passes produce identical output. Files are not modified.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runCheck,
	}
	addRunFlags(cmd.Flags())
	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	opts := s.driverOptions()
	opts.Cache = nil

	results, err := driver.CheckPaths(cmd.Context(), args, opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	failed := 0
	for _, res := range results {
		switch {
		case res.Err != nil:
			failed++
			fmt.Fprintf(out, "%s: %v\n", res.Path, res.Err)
		case !res.OK:
			failed++
			fmt.Fprintf(out, "%s: %s\n", res.Path, res.Message)
		}
	}
	if !s.quiet {
		useColor, err := colorEnabled(cmd, out)
		if err != nil {
			return err
		}
		styles := newSummaryStyles(out, useColor)
		fmt.Fprintf(out, "checked %d file(s), %s\n", len(results), styles.count(failed, fmt.Sprintf("%d failed", failed)))
	}
	if failed > 0 {
		return errCheckFailed
	}
	return nil
}
