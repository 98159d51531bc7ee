// Package config handles TOML-based configuration loading and validation.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"reelfetch/internal/httputil"
)

// Config holds all application configuration.
type Config struct {
	BaseURL          string `toml:"base_url"`
	SolverURL        string `toml:"solver_url"`
	SolverTimeoutMS  int    `toml:"solver_timeout_ms"`
	Engine           string `toml:"engine"`
	StaticOrigin     string `toml:"static_origin"`
	Launcher         string `toml:"launcher"`
	Headless         bool   `toml:"headless"`
	BrowserTimeoutMS int    `toml:"browser_timeout_ms"`
	Debug            bool   `toml:"debug"`
}

// Engines that can resolve redirector links.
const (
	EngineSolver  = "solver"
	EngineBrowser = "browser"
)

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		BaseURL:          "https://channelmyanmar.to/",
		SolverURL:        "http://localhost:8191/v1",
		SolverTimeoutMS:  60000,
		Engine:           EngineSolver,
		StaticOrigin:     "https://dns700.userdrive.org",
		Launcher:         "auto",
		Headless:         true,
		BrowserTimeoutMS: 30000,
		Debug:            false,
	}
}

// configDir returns the XDG-compliant config directory.
func configDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "reelfetch"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".config", "reelfetch"), nil
}

// ConfigPath returns the path to the config file.
func ConfigPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the config file and merges with defaults.
// If the config file doesn't exist, defaults are returned.
func Load() (*Config, error) {
	cfg := Default()

	path, err := ConfigPath()
	if err != nil {
		return cfg, nil
	}

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
	if c.BaseURL == "" {
		return fmt.Errorf("base URL cannot be empty")
	}
	if err := httputil.ValidateURL(c.BaseURL); err != nil {
		return fmt.Errorf("base_url: %w", err)
	}

	if err := httputil.ValidateURL(c.StaticOrigin); err != nil {
		return fmt.Errorf("static_origin: %w", err)
	}

	switch strings.ToLower(c.Engine) {
	case EngineSolver:
		if err := httputil.ValidateEndpoint(c.SolverURL); err != nil {
			return fmt.Errorf("solver_url: %w", err)
		}
	case EngineBrowser:
	default:
		return fmt.Errorf("unsupported engine %q (valid: solver, browser)", c.Engine)
	}

	// The solver itself caps maxTimeout; anything under a second cannot pass a challenge.
	if c.SolverTimeoutMS < 1000 || c.SolverTimeoutMS > 300000 {
		return fmt.Errorf("solver_timeout_ms %d out of range (1000-300000)", c.SolverTimeoutMS)
	}
	if c.BrowserTimeoutMS < 1000 || c.BrowserTimeoutMS > 300000 {
		return fmt.Errorf("browser_timeout_ms %d out of range (1000-300000)", c.BrowserTimeoutMS)
	}

	validLaunchers := map[string]bool{
		"auto": true, "desktop": true, "termux": true, "none": true,
	}
	if !validLaunchers[strings.ToLower(c.Launcher)] {
		return fmt.Errorf("unsupported launcher %q (valid: auto, desktop, termux, none)", c.Launcher)
	}

	return nil
}

// SolverTimeout returns the solver budget as a duration.
func (c *Config) SolverTimeout() time.Duration {
	return time.Duration(c.SolverTimeoutMS) * time.Millisecond
}

// BrowserTimeout returns the browser wait budget as a duration.
func (c *Config) BrowserTimeout() time.Duration {
	return time.Duration(c.BrowserTimeoutMS) * time.Millisecond
}
