package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/carllerche/minifmt/internal/diagfmt"
	"github.com/carllerche/minifmt/internal/driver"
)

var (
	errFmtFailed         = errors.New("fmt: failed to format some files")
	errFmtChangesPending = errors.New("fmt: formatting changes required")
)

func newFmtCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fmt [flags] <path> [path...]",
		Short: "Format source files",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runFmt,
	}
	cmd.Flags().Bool("check", false, "check if files are properly formatted")
	cmd.Flags().String("format", "text", "output format (text|json)")
	cmd.Flags().Bool("stdout", false, "print formatted code to stdout instead of rewriting files")
	addRunFlags(cmd.Flags())
	return cmd
}

func runFmt(cmd *cobra.Command, args []string) error {
	check, err := cmd.Flags().GetBool("check")
	if err != nil {
		return err
	}
	outputFormat, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	writeToStdout, err := cmd.Flags().GetBool("stdout")
	if err != nil {
		return err
	}

	if writeToStdout && check {
		return errors.New("fmt: --stdout cannot be used with --check")
	}
	if writeToStdout && outputFormat != "text" {
		return errors.New("fmt: --stdout is only supported with text output")
	}
	if outputFormat != "text" && outputFormat != "json" {
		return fmt.Errorf("fmt: unsupported output format %q", outputFormat)
	}

	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	opts := s.driverOptions()
	opts.Check = check
	opts.Stdout = writeToStdout

	results, err := driver.FormatPaths(cmd.Context(), args, opts)
	if err != nil {
		return err
	}

	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()
	var hasErrors, hasChanges bool
	switch {
	case outputFormat == "json":
		if err := renderFmtJSON(stdout, results, check, s); err != nil {
			return err
		}
		for _, res := range results {
			hasErrors = hasErrors || res.Err != nil
			hasChanges = hasChanges || res.Changed
		}
	case writeToStdout:
		hasErrors = renderFmtStdout(stdout, stderr, results, s)
	default:
		hasErrors, hasChanges = renderFmtText(stdout, stderr, results, check, s)
	}

	if hasErrors {
		return errFmtFailed
	}
	if check && hasChanges {
		return errFmtChangesPending
	}
	return nil
}

// reportFailure prints the parse diagnostics of res when it has any, then a
// one-line summary of its error.
func reportFailure(w io.Writer, res driver.FormatResult, s settings) {
	if res.Diagnostics != nil && res.FileSet != nil {
		bag := res.Diagnostics
		bag.Sort()
		diagfmt.Pretty(w, bag, res.FileSet, diagfmt.PrettyOpts{
			Color:     s.color,
			Context:   1,
			PathMode:  diagfmt.PathModeAuto,
			ShowNotes: true,
		})
	}
	fmt.Fprintf(w, "fmt: %s: %v\n", res.Path, res.Err)
}

func renderFmtStdout(stdout, stderr io.Writer, results []driver.FormatResult, s settings) (hasErrors bool) {
	for _, res := range results {
		if res.Err != nil {
			hasErrors = true
			reportFailure(stderr, res, s)
			continue
		}
		_, _ = stdout.Write(res.Formatted)
	}
	return hasErrors
}

func renderFmtText(stdout, stderr io.Writer, results []driver.FormatResult, check bool, s settings) (hasErrors, hasChanges bool) {
	for _, res := range results {
		if res.Err != nil {
			hasErrors = true
			reportFailure(stderr, res, s)
			continue
		}
		if !res.Changed {
			continue
		}
		hasChanges = true
		if s.quiet {
			continue
		}
		if check {
			fmt.Fprintln(stdout, res.Path)
		} else {
			fmt.Fprintf(stdout, "reformatted %s\n", res.Path)
		}
	}
	return hasErrors, hasChanges
}

type fmtJSONResult struct {
	Path        string                     `json:"path"`
	Changed     bool                       `json:"changed"`
	Cached      bool                       `json:"cached,omitempty"`
	Error       string                     `json:"error,omitempty"`
	CheckRun    bool                       `json:"check"`
	Diagnostics *diagfmt.DiagnosticsOutput `json:"diagnostics,omitempty"`
}

func renderFmtJSON(w io.Writer, results []driver.FormatResult, check bool, s settings) error {
	payload := make([]fmtJSONResult, 0, len(results))
	for _, res := range results {
		jr := fmtJSONResult{Path: res.Path, Changed: res.Changed, Cached: res.Cached, CheckRun: check}
		if res.Err != nil {
			jr.Error = res.Err.Error()
		}
		if res.Diagnostics != nil && res.FileSet != nil {
			out := diagfmt.BuildDiagnosticsOutput(res.Diagnostics, res.FileSet, diagfmt.JSONOpts{
				IncludePositions: true,
				PathMode:         diagfmt.PathModeAuto,
				Max:              s.maxDiagnostics,
				IncludeNotes:     true,
			})
			jr.Diagnostics = &out
		}
		payload = append(payload, jr)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
