// Package config loads cbind.toml, the generation configuration. The emitter
// consumes the text-block options at write time; the ignore list and prebuilt
// entries are extracted by the CLI and fed to ingestion.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileName is the manifest the CLI searches for upward from the target
// directory when --config is not given.
const FileName = "cbind.toml"

// Config is the full generation configuration. All fields are optional.
type Config struct {
	// Header is written verbatim at the very top of the output.
	Header string `toml:"header"`
	// AutogenWarning is injected three times: before the items, between
	// items and functions, and after the functions.
	AutogenWarning string `toml:"autogen_warning"`
	// Trailer is written verbatim at the very bottom.
	Trailer string `toml:"trailer"`

	// Ignore lists declaration names dropped before classification.
	Ignore []string `toml:"ignore"`
	// Prebuilt entries override any derived entity of the same name.
	Prebuilt []PrebuiltEntry `toml:"prebuilt"`
}

// PrebuiltEntry is one caller-supplied literal override.
type PrebuiltEntry struct {
	Name   string `toml:"name"`
	Source string `toml:"source"`
}

// Default returns the configuration used when no cbind.toml exists.
func Default() *Config {
	return &Config{}
}

// Load parses a cbind.toml file. Unknown keys are an error so that typos in
// an option name do not silently disable it.
func Load(path string) (*Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%s: unknown option %q", path, undecoded[0].String())
	}
	for i, p := range cfg.Prebuilt {
		if p.Name == "" {
			return nil, fmt.Errorf("%s: prebuilt entry %d has no name", path, i)
		}
	}
	return &cfg, nil
}

// Find searches for cbind.toml in startDir and its ancestors.
func Find(startDir string) (string, bool, error) {
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

// IgnoreSet returns the ignore list as a set.
func (c *Config) IgnoreSet() map[string]struct{} {
	set := make(map[string]struct{}, len(c.Ignore))
	for _, name := range c.Ignore {
		set[name] = struct{}{}
	}
	return set
}
