// Package config handles the bibnames configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds defaults for the bibnames formatting flags. It is stored in
// ~/.config/bibnames/config.yml.
type Config struct {
	Style       string `yaml:"style,omitempty"`        // natbib, last-first, first-last, last-names, bibtex, alpha
	Abbreviate  bool   `yaml:"abbreviate,omitempty"`   // reduce given names to initials
	OxfordComma bool   `yaml:"oxford_comma,omitempty"` // comma before the final "and"
	LatexFree   bool   `yaml:"latex_free,omitempty"`   // render TeX accents as Unicode
}

const (
	// ConfigDir is the directory name under XDG_CONFIG_HOME.
	ConfigDir = "bibnames"
	// ConfigFile is the config file name.
	ConfigFile = "config.yml"
	// PathEnv overrides the config file path.
	PathEnv = "BIBNAMES_CONFIG"
	// DefaultStyle is used when the config sets no style.
	DefaultStyle = "bibtex"
)

// Styles lists the supported formatting styles.
var Styles = []string{"natbib", "last-first", "first-last", "last-names", "bibtex", "alpha"}

// Path returns the path to the config file. BIBNAMES_CONFIG takes
// precedence, then XDG_CONFIG_HOME, then ~/.config.
func Path() string {
	if p := os.Getenv(PathEnv); p != "" {
		return ExpandTilde(p)
	}
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, ConfigDir, ConfigFile)
}

// Load reads the config file. A missing file yields the defaults.
func Load() (*Config, error) {
	cfg := &Config{Style: DefaultStyle}
	path := Path()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if cfg.Style == "" {
		cfg.Style = DefaultStyle
	}
	if err := ValidateStyle(cfg.Style); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// ValidateStyle checks that style is one of Styles.
func ValidateStyle(style string) error {
	for _, s := range Styles {
		if style == s {
			return nil
		}
	}
	return fmt.Errorf("invalid style: %s (valid: %v)", style, Styles)
}

// ExpandTilde expands a leading ~ to the user's home directory.
// Returns the original path unchanged if it doesn't start with ~.
func ExpandTilde(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
