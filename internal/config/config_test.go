package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// useConfigPath points ConfigPath at path for the duration of the test
func useConfigPath(t *testing.T, path string) {
	t.Helper()
	originalConfigPath := ConfigPath
	ConfigPath = func() string {
		return path
	}
	t.Cleanup(func() {
		ConfigPath = originalConfigPath
	})
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.ContentRoot == "" {
		t.Error("Expected ContentRoot to be set")
	}
	if cfg.LogFile == "" {
		t.Error("Expected LogFile to be set")
	}
	if cfg.Format != FormatTerminal {
		t.Errorf("Expected terminal format, got %q", cfg.Format)
	}
	if cfg.FetchTimeout != 10*time.Second {
		t.Errorf("Expected FetchTimeout to be 10s, got %v", cfg.FetchTimeout)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config should be valid: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			ContentRoot:  "/srv/lessons",
			LogFile:      "/tmp/test.log",
			Format:       FormatGlamour,
			Width:        80,
			CodeStyle:    "monokai",
			FetchTimeout: time.Second,
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{
			name:    "valid config",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "empty content_root",
			mutate:  func(c *Config) { c.ContentRoot = "" },
			wantErr: true,
		},
		{
			name:    "empty log_file",
			mutate:  func(c *Config) { c.LogFile = "" },
			wantErr: true,
		},
		{
			name:    "unknown format",
			mutate:  func(c *Config) { c.Format = "html" },
			wantErr: true,
		},
		{
			name:    "narrow width",
			mutate:  func(c *Config) { c.Width = 10 },
			wantErr: true,
		},
		{
			name:    "zero timeout",
			mutate:  func(c *Config) { c.FetchTimeout = 0 },
			wantErr: true,
		},
		{
			name:    "negative timeout",
			mutate:  func(c *Config) { c.FetchTimeout = -5 * time.Second },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	useConfigPath(t, filepath.Join(tmpDir, "config.json"))

	testCfg := &Config{
		ContentRoot:  "https://lessons.example.com",
		LogFile:      "/tmp/lessontex-test.log",
		Format:       FormatMarkdown,
		Width:        72,
		CodeStyle:    "dracula",
		FetchTimeout: 45 * time.Second,
	}

	if err := testCfg.Save(); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	if _, err := os.Stat(ConfigPath()); os.IsNotExist(err) {
		t.Fatal("Config file was not created")
	}

	loadedCfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if loadedCfg.FetchTimeout != testCfg.FetchTimeout {
		t.Errorf("FetchTimeout mismatch: got %v, want %v", loadedCfg.FetchTimeout, testCfg.FetchTimeout)
	}
	if loadedCfg.ContentRoot != testCfg.ContentRoot {
		t.Errorf("Remote content_root should be kept as is, got %q", loadedCfg.ContentRoot)
	}
	if loadedCfg.Format != FormatMarkdown || loadedCfg.Width != 72 || loadedCfg.CodeStyle != "dracula" {
		t.Errorf("Unexpected loaded config: %+v", loadedCfg)
	}
}

func TestLoadFillsOptionalFields(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.json")
	useConfigPath(t, path)

	data := `{"content_root": "/srv/lessons", "log_file": "/tmp/l.log"}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	defaults := DefaultConfig()
	if cfg.Format != defaults.Format || cfg.Width != defaults.Width || cfg.FetchTimeout != defaults.FetchTimeout {
		t.Errorf("Expected defaults for optional fields, got %+v", cfg)
	}
}

func TestLoadInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed json", `{"content_root": `},
		{"bad timeout", `{"content_root": "/srv", "log_file": "/tmp/l.log", "fetch_timeout": "soon"}`},
		{"bad format", `{"content_root": "/srv", "log_file": "/tmp/l.log", "format": "pdf"}`},
		{"missing root", `{"log_file": "/tmp/l.log"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.json")
			useConfigPath(t, path)
			if err := os.WriteFile(path, []byte(tt.data), 0644); err != nil {
				t.Fatalf("Failed to write config: %v", err)
			}

			if _, err := Load(); err == nil {
				t.Error("Expected Load to fail")
			}
		})
	}
}

func TestLoadNonExistentConfig(t *testing.T) {
	tmpDir := t.TempDir()
	useConfigPath(t, filepath.Join(tmpDir, "nonexistent.json"))

	// Load should return default config when file doesn't exist
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() should not error on missing file: %v", err)
	}

	if cfg.Width != 100 {
		t.Errorf("Expected default width 100, got %d", cfg.Width)
	}
}

func TestExpandPath(t *testing.T) {
	homeDir, _ := os.UserHomeDir()

	tests := []struct {
		name     string
		input    string
		contains string // The output should contain this
	}{
		{
			name:     "tilde expansion",
			input:    "~/test",
			contains: homeDir,
		},
		{
			name:     "tilde only",
			input:    "~",
			contains: homeDir,
		},
		{
			name:     "absolute path",
			input:    "/tmp/test",
			contains: "/tmp/test",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := expandPath(tt.input)
			if err != nil {
				t.Fatalf("expandPath() error = %v", err)
			}
			if result == "" {
				t.Error("expandPath() returned empty string")
			}
			// Just verify it's not the original unexpanded path
			if tt.input[0] == '~' && result == tt.input {
				t.Errorf("Path was not expanded: %s", result)
			}
		})
	}

	if result, err := expandPath(""); err != nil || result != "" {
		t.Errorf("expandPath(\"\") = %q, %v", result, err)
	}
}

func TestConfigPathsExpanded(t *testing.T) {
	tmpDir := t.TempDir()
	useConfigPath(t, filepath.Join(tmpDir, "config.json"))

	testCfg := &Config{
		ContentRoot:  "~/lessons",
		CatalogFile:  "~/lessons/catalog.yaml",
		LogFile:      "~/lessontex.log",
		Format:       FormatTerminal,
		Width:        100,
		CodeStyle:    "monokai",
		FetchTimeout: 30 * time.Second,
	}

	if err := testCfg.Save(); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	loadedCfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	// Verify paths are expanded (no longer contain ~)
	if loadedCfg.ContentRoot[0] == '~' {
		t.Error("ContentRoot was not expanded")
	}
	if loadedCfg.CatalogFile[0] == '~' {
		t.Error("CatalogFile was not expanded")
	}
	if loadedCfg.LogFile[0] == '~' {
		t.Error("LogFile was not expanded")
	}
}
