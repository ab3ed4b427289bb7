// Package config loads minifmt.toml project settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileName is the name of the configuration file searched for.
const FileName = "minifmt.toml"

// Config is the decoded form of minifmt.toml.
type Config struct {
	Format FormatConfig `toml:"format"`
	Files  FilesConfig  `toml:"files"`
	Run    RunConfig    `toml:"run"`
}

type FormatConfig struct {
	IndentWidth int  `toml:"indent_width"`
	UseTabs     bool `toml:"use_tabs"`
}

type FilesConfig struct {
	Extensions []string `toml:"extensions"`
	Exclude    []string `toml:"exclude"`
}

type RunConfig struct {
	// Jobs is the number of files formatted concurrently; 0 means GOMAXPROCS.
	Jobs  int  `toml:"jobs"`
	Cache bool `toml:"cache"`
}

// Default returns the settings used when no config file exists.
func Default() Config {
	return Config{
		Format: FormatConfig{IndentWidth: 4},
		Files: FilesConfig{
			Extensions: []string{".rs"},
			Exclude:    []string{"target"},
		},
		Run: RunConfig{Cache: true},
	}
}

// Find walks up from startDir looking for minifmt.toml.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("config: failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("config: failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load decodes the file at path on top of Default. Unknown keys are an error.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("config: %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Discover finds and loads the config file above startDir. Without one it
// returns Default and an empty path.
func Discover(startDir string) (Config, string, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, "", err
	}
	if !ok {
		return Default(), "", nil
	}
	cfg, err := Load(path)
	if err != nil {
		return Config{}, "", err
	}
	return cfg, path, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Format.IndentWidth < 1 || c.Format.IndentWidth > 16 {
		return fmt.Errorf("format.indent_width must be between 1 and 16, got %d", c.Format.IndentWidth)
	}
	if c.Run.Jobs < 0 {
		return fmt.Errorf("run.jobs must not be negative, got %d", c.Run.Jobs)
	}
	for _, ext := range c.Files.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("files.extensions entry %q must start with '.'", ext)
		}
	}
	return nil
}
