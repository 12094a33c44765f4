// Package config loads the optional YAML settings file for the tool itself.
// Nothing a teacher types into the forms is ever written here.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/julianstephens/lessonprompt/internal/constants"
)

// Themes accepted for dialogs and forms
const (
	ThemeDracula    = "dracula"
	ThemeCharm      = "charm"
	ThemeBase16     = "base16"
	ThemeCatppuccin = "catppuccin"
)

var (
	ClipboardModes = []string{constants.ClipboardAuto, constants.ClipboardSystem, constants.ClipboardOSC52}
	Themes         = []string{ThemeDracula, ThemeCharm, ThemeBase16, ThemeCatppuccin}
)

// Config is the contents of <config-dir>/config.yaml
type Config struct {
	Debug     bool   `yaml:"debug"`
	Clipboard string `yaml:"clipboard"`
	Theme     string `yaml:"theme"`

	// Dir is the directory the file was read from
	Dir string `yaml:"-"`
}

// Overrides carries command-line flags; nil fields were not given
type Overrides struct {
	Debug     *bool
	Clipboard *string
	Theme     *string
}

// Default returns the configuration used when no file exists
func Default() Config {
	return Config{
		Clipboard: constants.ClipboardAuto,
		Theme:     ThemeDracula,
	}
}

// Path returns the config file location under dir
func Path(dir string) string {
	return filepath.Join(dir, constants.ConfigFileName)
}

// Load reads the config file in dir. A missing file yields the defaults.
func Load(dir string) (Config, error) {
	cfg := Default()
	cfg.Dir = dir

	data, err := os.ReadFile(Path(dir))
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", Path(dir), err)
	}
	if cfg.Clipboard == "" {
		cfg.Clipboard = constants.ClipboardAuto
	}
	if cfg.Theme == "" {
		cfg.Theme = ThemeDracula
	}

	return cfg, cfg.Validate()
}

// Merge applies flags on top of the file values
func (c Config) Merge(o Overrides) Config {
	if o.Debug != nil {
		c.Debug = *o.Debug
	}
	if o.Clipboard != nil {
		c.Clipboard = *o.Clipboard
	}
	if o.Theme != nil {
		c.Theme = *o.Theme
	}
	return c
}

// Validate checks the enumerated settings
func (c Config) Validate() error {
	if !slices.Contains(ClipboardModes, c.Clipboard) {
		return fmt.Errorf("invalid clipboard mode %q (valid: %v)", c.Clipboard, ClipboardModes)
	}
	if !slices.Contains(Themes, c.Theme) {
		return fmt.Errorf("invalid theme %q (valid: %v)", c.Theme, Themes)
	}
	return nil
}

// Save writes c to dir, creating the directory if needed
func Save(dir string, c Config) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(Path(dir), data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
