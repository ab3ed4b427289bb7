package main

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// newLogger creates a logger with "HH:MM:SS.ms" timestamps writing to w.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// loggerFor builds the stderr logger of cmd: debug with --verbose, errors
// only with --quiet, warnings otherwise.
func loggerFor(cmd *cobra.Command) *log.Logger {
	level := log.WarnLevel
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = log.DebugLevel
	} else if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
		level = log.ErrorLevel
	}
	return newLogger(cmd.ErrOrStderr(), level)
}

// progress logs completion of an operation with its elapsed time.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}
