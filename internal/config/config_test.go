package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Graphics.Height)
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}

	d := cfg.Dome
	if d.StarCount != 4000 {
		t.Errorf("expected star_count 4000, got %d", d.StarCount)
	}
	if d.StarSize != 2.0 {
		t.Errorf("expected star_size 2.0, got %f", d.StarSize)
	}
	if d.SunEnabled {
		t.Error("expected sun disabled by default")
	}
	if d.SunAzimuth != 180 || d.SunAltitude != 45 {
		t.Errorf("expected sun at (180, 45), got (%f, %f)", d.SunAzimuth, d.SunAltitude)
	}
	if d.SunSize != 100 {
		t.Errorf("expected sun_size 100, got %f", d.SunSize)
	}
	if d.SunIntensity != 1.5 {
		t.Errorf("expected sun_intensity 1.5, got %f", d.SunIntensity)
	}
	if d.GalaxyBrightness != 0.35 {
		t.Errorf("expected galaxy_brightness 0.35, got %f", d.GalaxyBrightness)
	}
	if !d.AutoFade() {
		t.Error("expected auto_fade_stars true by default")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "skydome.yaml")

	yamlContent := `
graphics:
  width: 1920
  height: 1080
  vsync: false

dome:
  star_count: 1500
  star_size: 3.5
  sun_enabled: true
  sun_azimuth: 90
  sun_altitude: -12
  galaxy_texture_url: "https://example.com/milkyway.jpg"
  auto_fade_stars: false

logging:
  level: debug
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("writing temp config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("loadFromFile: %v", err)
	}

	if cfg.Graphics.Width != 1920 || cfg.Graphics.Height != 1080 {
		t.Errorf("graphics not merged: %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if cfg.Graphics.VSync {
		t.Error("vsync should be overridden to false")
	}
	if cfg.Dome.StarCount != 1500 {
		t.Errorf("star_count not merged: %d", cfg.Dome.StarCount)
	}
	if !cfg.Dome.SunEnabled {
		t.Error("sun_enabled not merged")
	}
	if cfg.Dome.SunAltitude != -12 {
		t.Errorf("sun_altitude not merged: %f", cfg.Dome.SunAltitude)
	}
	if cfg.Dome.GalaxyTextureURL != "https://example.com/milkyway.jpg" {
		t.Errorf("galaxy_texture_url not merged: %s", cfg.Dome.GalaxyTextureURL)
	}
	if cfg.Dome.AutoFade() {
		t.Error("auto_fade_stars: explicit false should win over default true")
	}
	// Unset values keep defaults
	if cfg.Dome.SunIntensity != 1.5 {
		t.Errorf("sun_intensity should keep default: %f", cfg.Dome.SunIntensity)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("log level not merged: %s", cfg.Logging.Level)
	}
}

func TestClamp(t *testing.T) {
	cfg := Default()
	cfg.Dome.StarCount = -50
	cfg.Dome.SunAltitude = 120
	cfg.Dome.SunIntensity = -1
	cfg.Dome.GalaxyBrightness = -0.5
	cfg.Clamp()

	if cfg.Dome.StarCount != 0 {
		t.Errorf("negative star_count should clamp to 0, got %d", cfg.Dome.StarCount)
	}
	if cfg.Dome.SunAltitude != 90 {
		t.Errorf("altitude should clamp to 90, got %f", cfg.Dome.SunAltitude)
	}
	if cfg.Dome.SunIntensity != 0 {
		t.Errorf("intensity should clamp to 0, got %f", cfg.Dome.SunIntensity)
	}
	if cfg.Dome.GalaxyBrightness != 0 {
		t.Errorf("brightness should clamp to 0, got %f", cfg.Dome.GalaxyBrightness)
	}

	cfg.Dome.SunAltitude = -95
	cfg.Clamp()
	if cfg.Dome.SunAltitude != -90 {
		t.Errorf("altitude should clamp to -90, got %f", cfg.Dome.SunAltitude)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "sub", "skydome.yaml")

	cfg := Default()
	cfg.Dome.StarCount = 777
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("loadFromFile: %v", err)
	}
	if loaded.Dome.StarCount != 777 {
		t.Errorf("round trip star_count: got %d, want 777", loaded.Dome.StarCount)
	}
}
