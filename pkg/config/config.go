// Package config loads webagent settings from a YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/entrhq/webagent/pkg/browser"
)

// Config holds browser session settings. Zero values fall back to the
// browser package defaults when converted with Options.
type Config struct {
	// Headless controls whether the browser runs without a visible window.
	Headless *bool `yaml:"headless"`

	// ActionTimeoutMs bounds the actionable wait on click/fill, in
	// milliseconds. Default: 5000.
	ActionTimeoutMs float64 `yaml:"action_timeout_ms"`

	// NavigationTimeoutMs bounds page loads, in milliseconds.
	NavigationTimeoutMs float64 `yaml:"navigation_timeout_ms"`

	// MaxContentLength caps extracted readable content, in characters.
	MaxContentLength int `yaml:"max_content_length"`

	// AllowedHosts optionally restricts navigation to matching host
	// globs. Empty allows every host not explicitly denied.
	AllowedHosts []string `yaml:"allowed_hosts"`

	// DeniedHosts blocks navigation to matching host globs.
	DeniedHosts []string `yaml:"denied_hosts"`
}

// Default returns the configuration used when no file is provided.
func Default() Config {
	headless := true
	return Config{
		Headless:            &headless,
		ActionTimeoutMs:     browser.DefaultActionTimeout,
		NavigationTimeoutMs: browser.DefaultNavigationTimeout,
		MaxContentLength:    browser.DefaultMaxContentLength,
	}
}

// Load reads a YAML configuration file, filling unset fields with
// defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.Headless == nil {
		headless := true
		cfg.Headless = &headless
	}
	if cfg.ActionTimeoutMs <= 0 {
		cfg.ActionTimeoutMs = browser.DefaultActionTimeout
	}
	if cfg.NavigationTimeoutMs <= 0 {
		cfg.NavigationTimeoutMs = browser.DefaultNavigationTimeout
	}
	if cfg.MaxContentLength <= 0 {
		cfg.MaxContentLength = browser.DefaultMaxContentLength
	}

	return cfg, nil
}

// Options converts the configuration into browser session options.
func (c Config) Options() browser.Options {
	headless := true
	if c.Headless != nil {
		headless = *c.Headless
	}
	return browser.Options{
		Headless:          headless,
		ActionTimeout:     c.ActionTimeoutMs,
		NavigationTimeout: c.NavigationTimeoutMs,
		AllowedHosts:      c.AllowedHosts,
		DeniedHosts:       c.DeniedHosts,
	}
}
