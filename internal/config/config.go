// Package config provides layout file loading for dskup.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"gopkg.in/yaml.v3"
)

// Split directions understood by iTerm2.
const (
	SplitVertical   = "vertical"
	SplitHorizontal = "horizontal"
)

var (
	// ErrNotFound is returned by Load when the path does not name a regular file.
	ErrNotFound = errors.New("config file not found")
	// ErrNoTabs is returned when the layout has no tabs key or an empty one.
	ErrNoTabs = errors.New("config must contain a 'tabs' key with at least one tab")
)

// Config is the top-level layout, loaded from a YAML, TOML or HCL file.
type Config struct {
	Root string      `yaml:"root" toml:"root" hcl:"root,optional"`
	Tabs []TabConfig `yaml:"tabs" toml:"tabs" hcl:"tab,block"`
}

// TabConfig describes one iTerm2 tab.
type TabConfig struct {
	Name  string       `yaml:"name" toml:"name" hcl:"name,optional"`
	Dir   string       `yaml:"dir" toml:"dir" hcl:"dir,optional"`
	Panes []PaneConfig `yaml:"panes" toml:"panes" hcl:"pane,block"`
}

// PaneConfig describes one session inside a tab. Split and SplitFrom are
// ignored for the first pane.
type PaneConfig struct {
	Dir       string   `yaml:"dir" toml:"dir" hcl:"dir,optional"`
	Commands  []string `yaml:"commands" toml:"commands" hcl:"commands,optional"`
	Split     string   `yaml:"split" toml:"split" hcl:"split,optional"`
	SplitFrom int      `yaml:"split_from" toml:"split_from" hcl:"split_from,optional"`
}

// Load reads a layout file from path and returns a validated Config.
// A leading ~ in path is expanded to the user's home directory.
func Load(path string) (*Config, error) {
	home, _ := os.UserHomeDir()
	path = ExpandHome(path, home)

	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return ParseFormat(data, DetectFormat(path))
}

// Parse unmarshals YAML bytes into a validated Config.
func Parse(data []byte) (*Config, error) {
	return ParseFormat(data, FormatYAML)
}

// ParseFormat unmarshals data in the given format into a validated Config.
func ParseFormat(data []byte, format Format) (*Config, error) {
	var cfg Config
	if err := decode(data, format, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyDefaults fills in default values. Split is left alone so that
// Lint can still see what the user wrote.
func (c *Config) applyDefaults() {
	if c.Root == "" {
		c.Root = "~"
	}
	for i := range c.Tabs {
		for j := range c.Tabs[i].Panes {
			if c.Tabs[i].Panes[j].SplitFrom == 0 {
				c.Tabs[i].Panes[j].SplitFrom = 1
			}
		}
	}
}

func (c *Config) validate() error {
	if len(c.Tabs) == 0 {
		return fmt.Errorf("config: %w", ErrNoTabs)
	}
	return nil
}

// ExpandHome replaces a leading "~" or "~/" in path with home. Paths of the
// form "~user" and paths without a tilde are returned unchanged, as is
// everything when home is empty.
func ExpandHome(path, home string) string {
	if home == "" || !strings.HasPrefix(path, "~") {
		return path
	}
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}

func decode(data []byte, format Format, cfg *Config) error {
	switch format {
	case FormatTOML:
		return toml.Unmarshal(data, cfg)
	case FormatHCL:
		// hclsimple picks native syntax from the .hcl suffix.
		return hclsimple.Decode("layout.hcl", data, nil, cfg)
	default:
		return yaml.Unmarshal(data, cfg)
	}
}
