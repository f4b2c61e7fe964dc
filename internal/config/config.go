package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
)

// Output formats understood by the renderer
const (
	FormatTerminal = "terminal"
	FormatGlamour  = "glamour"
	FormatMarkdown = "markdown"
)

// Config represents the lessontex configuration
type Config struct {
	ContentRoot  string        `json:"content_root"` // Directory or http(s) URL serving /content/...
	CatalogFile  string        `json:"catalog_file,omitempty"`
	LogFile      string        `json:"log_file"`
	Format       string        `json:"format"`
	Width        int           `json:"width"`
	CodeStyle    string        `json:"code_style"`
	FetchTimeout time.Duration `json:"-"` // Custom JSON handling below
}

// fileConfig is the on-disk form of Config with durations as strings
type fileConfig struct {
	ContentRoot  string `json:"content_root"`
	CatalogFile  string `json:"catalog_file,omitempty"`
	LogFile      string `json:"log_file"`
	Format       string `json:"format,omitempty"`
	Width        int    `json:"width,omitempty"`
	CodeStyle    string `json:"code_style,omitempty"`
	FetchTimeout string `json:"fetch_timeout,omitempty"`
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		ContentRoot:  filepath.Join(home, "lessons"),
		CatalogFile:  "", // Built-in catalog
		LogFile:      "/tmp/lessontex.log",
		Format:       FormatTerminal,
		Width:        100,
		CodeStyle:    "monokai",
		FetchTimeout: 10 * time.Second,
	}
}

// ConfigPath returns the path to the config file
// Uses ~/.config on all platforms for consistency
// Can be overridden for testing
var ConfigPath = func() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to XDG if home dir unavailable
		return filepath.Join(xdg.ConfigHome, "lessontex", "config.json")
	}
	return filepath.Join(home, ".config", "lessontex", "config.json")
}

// StateFilePath returns the path to the reading progress file
// Uses platform-specific XDG data directory
// Can be overridden for testing
var StateFilePath = func() string {
	return filepath.Join(xdg.DataHome, "lessontex", "state.json")
}

// Load reads configuration from the config directory
func Load() (*Config, error) {
	configPath := ConfigPath()
	data, err := os.ReadFile(configPath)
	if err != nil {
		// Return default config if file doesn't exist
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	var raw fileConfig
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	defaults := DefaultConfig()
	cfg := &Config{
		ContentRoot:  raw.ContentRoot,
		CatalogFile:  raw.CatalogFile,
		LogFile:      raw.LogFile,
		Format:       raw.Format,
		Width:        raw.Width,
		CodeStyle:    raw.CodeStyle,
		FetchTimeout: defaults.FetchTimeout,
	}

	// Fill optional fields
	if cfg.Format == "" {
		cfg.Format = defaults.Format
	}
	if cfg.Width == 0 {
		cfg.Width = defaults.Width
	}
	if cfg.CodeStyle == "" {
		cfg.CodeStyle = defaults.CodeStyle
	}
	if raw.FetchTimeout != "" {
		timeout, err := time.ParseDuration(raw.FetchTimeout)
		if err != nil {
			return nil, fmt.Errorf("invalid fetch_timeout format '%s': %w", raw.FetchTimeout, err)
		}
		cfg.FetchTimeout = timeout
	}

	// Validate config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	// Expand paths
	if err := cfg.ExpandPaths(); err != nil {
		return nil, fmt.Errorf("failed to expand paths: %w", err)
	}

	return cfg, nil
}

// Save writes configuration to the config directory
func (c *Config) Save() error {
	configPath := ConfigPath()
	configDir := filepath.Dir(configPath)

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	raw := fileConfig{
		ContentRoot:  c.ContentRoot,
		CatalogFile:  c.CatalogFile,
		LogFile:      c.LogFile,
		Format:       c.Format,
		Width:        c.Width,
		CodeStyle:    c.CodeStyle,
		FetchTimeout: c.FetchTimeout.String(),
	}

	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.ContentRoot == "" {
		return fmt.Errorf("content_root cannot be empty")
	}
	if c.LogFile == "" {
		return fmt.Errorf("log_file cannot be empty")
	}
	if c.Width < 20 {
		return fmt.Errorf("width must be at least 20, got %d", c.Width)
	}
	if c.FetchTimeout <= 0 {
		return fmt.Errorf("fetch_timeout must be positive")
	}

	validFormats := map[string]bool{
		FormatTerminal: true,
		FormatGlamour:  true,
		FormatMarkdown: true,
	}
	if !validFormats[c.Format] {
		return fmt.Errorf("invalid format '%s': must be one of: terminal, glamour, markdown", c.Format)
	}

	return nil
}

// IsRemote reports whether content is served over HTTP
func (c *Config) IsRemote() bool {
	return strings.HasPrefix(c.ContentRoot, "http://") || strings.HasPrefix(c.ContentRoot, "https://")
}

// ExpandPaths expands any ~ or relative paths to absolute paths
func (c *Config) ExpandPaths() error {
	var err error

	if !c.IsRemote() {
		c.ContentRoot, err = expandPath(c.ContentRoot)
		if err != nil {
			return fmt.Errorf("failed to expand content_root: %w", err)
		}
	}

	c.CatalogFile, err = expandPath(c.CatalogFile)
	if err != nil {
		return fmt.Errorf("failed to expand catalog_file: %w", err)
	}

	c.LogFile, err = expandPath(c.LogFile)
	if err != nil {
		return fmt.Errorf("failed to expand log_file: %w", err)
	}

	return nil
}

// expandPath expands ~ to home directory and converts to absolute path
func expandPath(path string) (string, error) {
	if path == "" {
		return path, nil
	}

	// Expand ~ to home directory
	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if len(path) == 1 {
			return homeDir, nil
		}
		path = filepath.Join(homeDir, path[1:])
	}

	// Convert to absolute path
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	return absPath, nil
}
