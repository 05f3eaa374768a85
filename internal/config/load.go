package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	cfg := Default()

	// Explicit --config path takes priority over the search locations
	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	applyFlags(cfg)
	cfg.Clamp()

	return cfg, nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./skydome.yaml",
		filepath.Join(ConfigDir(), "skydome.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "Skydome")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "Skydome")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "skydome")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "skydome")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// Clamp forces out-of-range values back into their documented domains.
// The formulas downstream would not crash on bad input, but extrapolated
// trig values and negative point counts render nonsense.
func (c *Config) Clamp() {
	d := &c.Dome
	if d.StarCount < 0 {
		d.StarCount = 0
	}
	if d.StarSize < 0 {
		d.StarSize = 0
	}
	if d.SunAltitude > 90 {
		d.SunAltitude = 90
	}
	if d.SunAltitude < -90 {
		d.SunAltitude = -90
	}
	if d.SunSize < 0 {
		d.SunSize = 0
	}
	if d.SunIntensity < 0 {
		d.SunIntensity = 0
	}
	if d.GalaxyBrightness < 0 {
		d.GalaxyBrightness = 0
	}
}
