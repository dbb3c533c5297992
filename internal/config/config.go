// Package config loads the settings of the sticky header demo.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// FileExtTOML is the extension of configuration files.
const FileExtTOML = ".toml"

// EnvConfigPath overrides the default configuration file location.
const EnvConfigPath = "STICKYDEMO_CONFIG_PATH"

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

// Config describes the demo catalog and how the list presents it.
type Config struct {
	// Sections is the number of header-led sections in the catalog.
	Sections int `toml:"sections"`
	// ItemsPerSection is the number of rows under each header.
	ItemsPerSection int `toml:"items_per_section"`
	// Leading and Trailing are decoration rows around the catalog.
	Leading  int `toml:"leading"`
	Trailing int `toml:"trailing"`
	// HeaderHeight fixes the pinned header height. Zero uses the natural
	// height of the header text.
	HeaderHeight int `toml:"header_height"`
	// Gap is the number of blank rows between list items.
	Gap int `toml:"gap"`

	Log Log `toml:"log"`
}

// Log configures the file logger. The terminal belongs to the UI, so logs
// only go to a file.
type Log struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

var logLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Sections:        12,
		ItemsPerSection: 6,
		Leading:         1,
		Trailing:        1,
		Log: Log{
			Level: "info",
		},
	}
}

// DefaultPath returns the configuration path: $STICKYDEMO_CONFIG_PATH when
// set, otherwise stickydemo/config.toml under the XDG config directory.
func DefaultPath() string {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return path
	}
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "stickydemo", "config"+FileExtTOML)
}

// Load reads the configuration at path over the defaults. A missing file is
// not an error when allowMissing is set.
func Load(path string, allowMissing bool) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if allowMissing && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if ext := strings.ToLower(filepath.Ext(path)); ext != FileExtTOML {
		return Config{}, fmt.Errorf("read config %s: unsupported extension %q", path, ext)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML data over the defaults and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first setting out of range.
func (c Config) Validate() error {
	switch {
	case c.Sections <= 0:
		return fmt.Errorf("%w: sections must be positive, got %d", ErrInvalid, c.Sections)
	case c.ItemsPerSection < 0:
		return fmt.Errorf("%w: items_per_section must not be negative, got %d", ErrInvalid, c.ItemsPerSection)
	case c.Leading < 0:
		return fmt.Errorf("%w: leading must not be negative, got %d", ErrInvalid, c.Leading)
	case c.Trailing < 0:
		return fmt.Errorf("%w: trailing must not be negative, got %d", ErrInvalid, c.Trailing)
	case c.HeaderHeight < 0:
		return fmt.Errorf("%w: header_height must not be negative, got %d", ErrInvalid, c.HeaderHeight)
	case c.Gap < 0:
		return fmt.Errorf("%w: gap must not be negative, got %d", ErrInvalid, c.Gap)
	case !logLevels[c.Log.Level]:
		return fmt.Errorf("%w: log level %q must be one of debug, info, warn, error", ErrInvalid, c.Log.Level)
	}
	return nil
}

// Marshal encodes c as TOML, for writing a sample file.
func (c Config) Marshal() ([]byte, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return data, nil
}
