// Package config loads the lvtree CLI configuration from a TOML file.
//
// The file is optional. Lookup order:
//
//   - the path given with --config (must exist);
//   - $XDG_CONFIG_HOME/lvtree/config.toml;
//   - ~/.config/lvtree/config.toml.
//
// A missing file at one of the default locations yields Default(). Flags
// given on the command line override file values.
//
// Example:
//
//	delimiter = ","
//	color     = false
//	log_level = "debug"
//
//	[graphviz]
//	rankdir = "LR"
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

const (
	appName  = "lvtree"
	fileName = "config.toml"
)

// Config is the resolved CLI configuration.
type Config struct {
	// Delimiter separates parent and child on an edge line.
	Delimiter string `toml:"delimiter"`

	// Color enables lipgloss styling of terminal output.
	Color bool `toml:"color"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level"`

	// Graphviz configures the dot command.
	Graphviz Graphviz `toml:"graphviz"`
}

// Graphviz holds node-link diagram settings.
type Graphviz struct {
	// RankDir is the layout direction: TB, LR, BT or RL.
	RankDir string `toml:"rankdir"`
}

var rankDirs = []string{"TB", "LR", "BT", "RL"}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Delimiter: " ",
		Color:     true,
		LogLevel:  "info",
		Graphviz:  Graphviz{RankDir: "TB"},
	}
}

// Level returns the parsed log level.
func (c Config) Level() (log.Level, error) {
	return log.ParseLevel(c.LogLevel)
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Delimiter == "" {
		return errors.New("config: delimiter must not be empty")
	}
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("config: log_level %q: %w", c.LogLevel, err)
	}
	if err := ValidateRankDir(c.Graphviz.RankDir); err != nil {
		return fmt.Errorf("config: graphviz.rankdir %w", err)
	}
	return nil
}

// ValidateRankDir reports whether dir is a Graphviz layout direction this
// tool accepts.
func ValidateRankDir(dir string) error {
	if !slices.Contains(rankDirs, dir) {
		return fmt.Errorf("%q: want one of %s", dir, strings.Join(rankDirs, ", "))
	}
	return nil
}

// DefaultPath returns the XDG location of the config file.
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, fileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, fileName), nil
}

// Load reads the file at path on top of Default. Keys the file sets override
// defaults; unknown keys are an error.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return Parse(data)
}

// Parse decodes TOML data on top of Default and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("config: unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Resolve loads the configuration for a CLI run and returns it with the path
// it came from ("" when defaults were used). An explicit path must exist; the
// default path is optional.
func Resolve(explicit string) (Config, string, error) {
	if explicit != "" {
		cfg, err := Load(explicit)
		return cfg, explicit, err
	}

	path, err := DefaultPath()
	if err != nil {
		return Default(), "", nil
	}
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), "", nil
	}
	if err != nil {
		return Config{}, path, err
	}
	return cfg, path, nil
}
