// Package config handles TOML-based configuration loading and validation.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
)

// AppName names the config directory.
const AppName = "nonton"

// Config holds all application configuration.
type Config struct {
	Base        string `toml:"base"`
	Port        int    `toml:"port"`
	OpenBrowser bool   `toml:"open_browser"`
	Browser     string `toml:"browser"`
	Debug       bool   `toml:"debug"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Base:        "v5.animasu.cc",
		Port:        3000,
		OpenBrowser: true,
		Browser:     "",
		Debug:       false,
	}
}

// ConfigPath returns the path to the config file.
func ConfigPath() string {
	return filepath.Join(xdg.ConfigHome, AppName, "config.toml")
}

// Load reads the config file and merges with defaults.
// If the config file doesn't exist, defaults are returned.
func Load() (*Config, error) {
	return LoadFile(ConfigPath())
}

// LoadFile reads the config at path over the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate checks config values are within acceptable bounds.
func (c *Config) Validate() error {
	base := strings.TrimSpace(c.Base)
	if base == "" {
		return fmt.Errorf("base host cannot be empty")
	}
	if strings.HasPrefix(base, "http://") {
		return fmt.Errorf("base %q must be served over HTTPS", c.Base)
	}
	if strings.ContainsAny(base, " ?#") {
		return fmt.Errorf("base %q must be a host name", c.Base)
	}

	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range (1-65535)", c.Port)
	}

	return nil
}

// ListenAddr returns the loopback address the relay binds to.
func (c *Config) ListenAddr() string {
	return fmt.Sprintf("127.0.0.1:%d", c.Port)
}
