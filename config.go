package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

const (
	defaultWindowWidth  = 800
	defaultWindowHeight = 600
)

// AppConfig holds all persistent user settings.
type AppConfig struct {
	LogLevel     string `json:"logLevel"`
	WindowWidth  int    `json:"windowWidth"`
	WindowHeight int    `json:"windowHeight"`
	StartHidden  bool   `json:"startHidden"`
	NotifyOnHide *bool  `json:"notifyOnHide"` // nil = true (default on)
}

// IsNotifyOnHide reports whether hiding the window should raise a desktop notification.
func (c *AppConfig) IsNotifyOnHide() bool {
	return c.NotifyOnHide == nil || *c.NotifyOnHide
}

var (
	appDataDir     string
	appDataDirOnce sync.Once
)

// DefaultConfig returns config with default values.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		LogLevel:     "error",
		WindowWidth:  defaultWindowWidth,
		WindowHeight: defaultWindowHeight,
	}
}

// AppDataDir returns the path to ~/.pomotray/, creating it if needed.
func AppDataDir() string {
	appDataDirOnce.Do(func() {
		home, err := os.UserHomeDir()
		if err != nil {
			// Fallback to exe directory
			if exe, err2 := os.Executable(); err2 == nil {
				appDataDir = filepath.Dir(exe)
			} else {
				appDataDir = "."
			}
			return
		}
		appDataDir = filepath.Join(home, ".pomotray")
		os.MkdirAll(appDataDir, 0755)
	})
	return appDataDir
}

// DataPath returns the full path for a file inside the data directory.
func DataPath(elem ...string) string {
	parts := append([]string{AppDataDir()}, elem...)
	return filepath.Join(parts...)
}

func configPath() string {
	return DataPath("config.json")
}

// LoadConfig reads config from ~/.pomotray/config.json.
func LoadConfig() *AppConfig {
	return LoadConfigFrom(configPath())
}

// LoadConfigFrom reads config from path.
// Returns default config if the file doesn't exist or can't be parsed.
func LoadConfigFrom(path string) *AppConfig {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		Log.Warn("config parse failed, using defaults", "path", path, "error", err)
		return DefaultConfig()
	}

	// Ensure window size has valid defaults
	if cfg.WindowWidth <= 0 {
		cfg.WindowWidth = defaultWindowWidth
	}
	if cfg.WindowHeight <= 0 {
		cfg.WindowHeight = defaultWindowHeight
	}

	return cfg
}

// SaveConfig writes the config to ~/.pomotray/config.json.
func SaveConfig(cfg *AppConfig) error {
	return SaveConfigTo(configPath(), cfg)
}

// SaveConfigTo writes the config to path, creating its directory if needed.
func SaveConfigTo(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
