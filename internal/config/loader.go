package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"flipd/internal/window"
)

// Defaults applied by ApplyDefaults for unset fields.
const (
	DefaultAddr       = ":8080"
	DefaultItemsDir   = "."
	DefaultWindowSize = 3
	DefaultLogLevel   = "info"
	DefaultLogFormat  = "console"
)

// Config holds runtime parameters for the service.
// Zero values mean "unspecified" and are replaced by ApplyDefaults.
type Config struct {
	Addr         string   `json:"addr" yaml:"addr" toml:"addr"`
	ItemsDir     string   `json:"items_dir" yaml:"items_dir" toml:"items_dir"`
	ItemsExt     string   `json:"items_ext" yaml:"items_ext" toml:"items_ext"`
	WindowSize   int      `json:"window_size" yaml:"window_size" toml:"window_size"`
	ActiveOffset int      `json:"active_offset" yaml:"active_offset" toml:"active_offset"`
	Loop         bool     `json:"loop" yaml:"loop" toml:"loop"`
	AnimateFirst bool     `json:"animate_first" yaml:"animate_first" toml:"animate_first"`
	LogLevel     string   `json:"log_level" yaml:"log_level" toml:"log_level"`
	LogFormat    string   `json:"log_format" yaml:"log_format" toml:"log_format"`
	CORSOrigins  []string `json:"cors_origins" yaml:"cors_origins" toml:"cors_origins"`
	MaxBodyBytes int64    `json:"max_body_bytes" yaml:"max_body_bytes" toml:"max_body_bytes"`
}

// Load reads a configuration file based on its extension.
// Supports: .yaml/.yml, .json, .toml
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, fmt.Errorf("empty config path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	return cfg, nil
}

// ApplyDefaults fills unset fields.
func (c *Config) ApplyDefaults() {
	if c.Addr == "" {
		c.Addr = DefaultAddr
	}
	if c.ItemsDir == "" {
		c.ItemsDir = DefaultItemsDir
	}
	if c.WindowSize == 0 {
		c.WindowSize = DefaultWindowSize
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.LogFormat == "" {
		c.LogFormat = DefaultLogFormat
	}
}

// Window returns the window shape described by c.
func (c Config) Window() window.Config {
	return window.Config{Size: c.WindowSize, ActiveOffset: c.ActiveOffset, Loop: c.Loop}
}

// Validate checks the window shape and the log settings.
func (c Config) Validate() error {
	if err := c.Window().Validate(); err != nil {
		return err
	}
	switch strings.ToLower(c.LogFormat) {
	case "", "console", "json":
	default:
		return fmt.Errorf("unsupported log format: %s", c.LogFormat)
	}
	return nil
}
