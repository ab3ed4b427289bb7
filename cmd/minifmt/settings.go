package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/carllerche/minifmt/internal/config"
	"github.com/carllerche/minifmt/internal/driver"
	"github.com/carllerche/minifmt/internal/format"
)

const cacheApp = "minifmt"

// settings is the merged view of minifmt.toml and command-line flags.
type settings struct {
	cfg            config.Config
	cfgPath        string
	maxDiagnostics int
	quiet          bool
	color          bool
	logger         *log.Logger
}

// addRunFlags registers the flags shared by fmt and check that override
// config file values.
func addRunFlags(flags *pflag.FlagSet) {
	flags.Int("indent-width", 0, "spaces per indentation level (overrides config)")
	flags.Bool("tabs", false, "indent with tabs (overrides config)")
	flags.Int("jobs", 0, "files formatted concurrently, 0 = GOMAXPROCS (overrides config)")
	flags.Bool("no-cache", false, "do not read or write the result cache")
}

func loadSettings(cmd *cobra.Command) (settings, error) {
	var s settings
	flags := cmd.Flags()

	cfgPath, err := flags.GetString("config")
	if err != nil {
		return s, err
	}
	if cfgPath != "" {
		s.cfg, err = config.Load(cfgPath)
		s.cfgPath = cfgPath
	} else {
		s.cfg, s.cfgPath, err = config.Discover(".")
	}
	if err != nil {
		return s, err
	}

	if changed(flags, "indent-width") {
		if s.cfg.Format.IndentWidth, err = flags.GetInt("indent-width"); err != nil {
			return s, err
		}
	}
	if changed(flags, "tabs") {
		if s.cfg.Format.UseTabs, err = flags.GetBool("tabs"); err != nil {
			return s, err
		}
	}
	if changed(flags, "jobs") {
		if s.cfg.Run.Jobs, err = flags.GetInt("jobs"); err != nil {
			return s, err
		}
	}
	if noCache, _ := flags.GetBool("no-cache"); noCache {
		s.cfg.Run.Cache = false
	}
	if err := s.cfg.Validate(); err != nil {
		return s, fmt.Errorf("invalid settings: %w", err)
	}

	if s.maxDiagnostics, err = flags.GetInt("max-diagnostics"); err != nil {
		return s, err
	}
	if s.quiet, err = flags.GetBool("quiet"); err != nil {
		return s, err
	}
	if s.color, err = colorEnabled(cmd, cmd.ErrOrStderr()); err != nil {
		return s, err
	}
	s.logger = loggerFor(cmd)
	if s.cfgPath != "" {
		s.logger.Debug("loaded config", "path", s.cfgPath)
	}
	return s, nil
}

func changed(flags *pflag.FlagSet, name string) bool {
	f := flags.Lookup(name)
	return f != nil && f.Changed
}

// driverOptions converts settings into driver options. A cache that
// cannot be opened is logged and skipped.
func (s settings) driverOptions() driver.FormatOptions {
	opts := driver.FormatOptions{
		MaxDiagnostics: s.maxDiagnostics,
		Options: format.Options{
			IndentWidth: s.cfg.Format.IndentWidth,
			UseTabs:     s.cfg.Format.UseTabs,
		},
		Jobs:       s.cfg.Run.Jobs,
		Extensions: s.cfg.Files.Extensions,
		Exclude:    s.cfg.Files.Exclude,
		Logger:     s.logger,
	}
	if s.cfg.Run.Cache {
		cache, err := driver.OpenDiskCache(cacheApp)
		if err != nil {
			s.logger.Warn("cache disabled", "err", err)
		} else {
			opts.Cache = cache
		}
	}
	return opts
}
