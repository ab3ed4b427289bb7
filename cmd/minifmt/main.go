// Command minifmt rewrites Rust-like source files into their canonical layout.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/carllerche/minifmt/internal/config"
	"github.com/carllerche/minifmt/internal/version"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "minifmt",
		Short:         "Canonical formatter for Rust-like source files",
		Long:          `minifmt parses source files and prints them back in one canonical layout.`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			enabled, err := colorEnabled(cmd, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			color.NoColor = !enabled
			return nil
		},
	}

	root.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	root.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	root.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
	root.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")
	root.PersistentFlags().String("config", "", "path to "+config.FileName+" (default: searched upward from the working directory)")

	root.AddCommand(newFmtCmd())
	root.AddCommand(newCheckCmd())
	root.AddCommand(newVersionCmd())
	root.AddCommand(newCacheCmd())
	return root
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "minifmt: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return root.ExecuteContext(ctx)
}

// colorEnabled resolves --color for output written to w.
func colorEnabled(cmd *cobra.Command, w io.Writer) (bool, error) {
	mode, err := cmd.Flags().GetString("color")
	if err != nil {
		return false, err
	}
	switch mode {
	case "on":
		return true, nil
	case "off":
		return false, nil
	case "auto":
		if os.Getenv("NO_COLOR") != "" {
			return false, nil
		}
		f, ok := w.(*os.File)
		return ok && isTerminal(f), nil
	default:
		return false, fmt.Errorf("unsupported color mode %q (must be auto, on or off)", mode)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
