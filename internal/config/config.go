package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileName is the manifest discovered by walking up from the working
// directory.
const FileName = "sparkfmt.toml"

// Config mirrors sparkfmt.toml.
type Config struct {
	Format FormatSection `toml:"format"`
	Run    RunSection    `toml:"run"`
}

// FormatSection is the [format] table.
type FormatSection struct {
	IndentWidth int  `toml:"indent_width"`
	UseTabs     bool `toml:"use_tabs"`
	MaxDepth    int  `toml:"max_depth"`
}

// RunSection is the [run] table.
type RunSection struct {
	Jobs  int    `toml:"jobs"`  // 0 means one worker per CPU
	Cache bool   `toml:"cache"` // enable the on-disk result cache
	Ext   string `toml:"ext"`   // source extension collected from directories
}

// Default returns the configuration used when no manifest exists.
func Default() Config {
	return Config{
		Format: FormatSection{IndentWidth: 4},
		Run:    RunSection{Ext: ".sql"},
	}
}

func (c Config) withDefaults() Config {
	d := Default()
	if c.Format.IndentWidth <= 0 {
		c.Format.IndentWidth = d.Format.IndentWidth
	}
	if c.Run.Ext == "" {
		c.Run.Ext = d.Run.Ext
	}
	return c
}

// Find walks up from startDir to locate the manifest.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load parses a manifest file and fills in defaults for omitted keys.
func Load(path string) (Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	return cfg.withDefaults(), nil
}

// Discover finds and loads the nearest manifest; absent a manifest it returns
// the defaults and an empty path.
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
		return Config{}, path, err
	}
	return cfg, path, nil
}
