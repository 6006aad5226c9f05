// Package config loads the defaults that the cat command applies before its
// command-line arguments: a TOML file and the CAT_OPTIONS environment
// variable.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"fortio.org/safecast"
	"github.com/BurntSushi/toml"
	"mvdan.cc/sh/v3/shell"
)

const (
	// EnvConfig names the environment variable holding an explicit config
	// file path.
	EnvConfig = "CAT_CONFIG"
	// EnvOptions names the environment variable holding default flags.
	EnvOptions = "CAT_OPTIONS"
)

// ColorMode controls colouring of diagnostics.
type ColorMode int

const (
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

// ParseColorMode parses "auto", "always" or "never". The empty string means
// auto.
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	}
	return ColorAuto, fmt.Errorf("invalid color mode %q (must be auto, always or never)", s)
}

// File is the on-disk form of the config file.
type File struct {
	Options    string `toml:"options"`
	BufferSize int64  `toml:"buffer_size"`
	Color      string `toml:"color"`
}

// Config is the resolved set of defaults.
type Config struct {
	// Args are default flags, to be placed before the command line's own.
	Args []string
	// BufferSize is the requested chunk size, or 0 for the library default.
	BufferSize int
	Color      ColorMode
}

// Read decodes the config file at path. Unknown keys are an error, so that a
// misspelt setting is not silently ignored.
func Read(path string) (File, error) {
	var f File
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return File{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return File{}, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	return f, nil
}

// DefaultPath returns where the config file lives when EnvConfig is unset,
// or "" if there is no user config directory.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "cat", "config.toml")
}

// Load resolves the defaults, looking up environment variables with getenv.
// A missing file at the default location is not an error; a missing file
// named by EnvConfig is.
func Load(getenv func(string) string) (Config, error) {
	var f File
	path := getenv(EnvConfig)
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if path != "" {
		var err error
		f, err = Read(path)
		if err != nil && (explicit || !errors.Is(err, fs.ErrNotExist)) {
			return Config{}, err
		}
	}
	return resolve(f, getenv(EnvOptions), getenv)
}

func resolve(f File, envOptions string, getenv func(string) string) (Config, error) {
	var cfg Config
	fileArgs, err := SplitOptions(f.Options, getenv)
	if err != nil {
		return Config{}, fmt.Errorf("options: %w", err)
	}
	envArgs, err := SplitOptions(envOptions, getenv)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", EnvOptions, err)
	}
	cfg.Args = append(fileArgs, envArgs...)
	if f.BufferSize < 0 {
		return Config{}, fmt.Errorf("buffer_size must not be negative, got %d", f.BufferSize)
	}
	cfg.BufferSize, err = safecast.Conv[int](f.BufferSize)
	if err != nil {
		return Config{}, fmt.Errorf("buffer_size: %w", err)
	}
	cfg.Color, err = ParseColorMode(f.Color)
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// SplitOptions splits s into arguments using shell quoting rules, expanding
// variables through getenv.
func SplitOptions(s string, getenv func(string) string) ([]string, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	return shell.Fields(s, getenv)
}
