// Package config handles viewer and dome configuration loading.
package config

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Dome     DomeConfig     `yaml:"dome"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings for the demo viewer.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// RGB is a color triple with channels in [0, 1].
type RGB struct {
	R float32 `yaml:"r"`
	G float32 `yaml:"g"`
	B float32 `yaml:"b"`
}

// DomeConfig holds the celestial dome settings.
type DomeConfig struct {
	StarCount        int     `yaml:"star_count"`
	StarSize         float64 `yaml:"star_size"`
	StarColor        RGB     `yaml:"star_color"`
	GalaxyTextureURL string  `yaml:"galaxy_texture_url"`
	GalaxyBrightness float64 `yaml:"galaxy_brightness"`
	SunEnabled       bool    `yaml:"sun_enabled"`
	SunAzimuth       float64 `yaml:"sun_azimuth"`
	SunAltitude      float64 `yaml:"sun_altitude"`
	SunSize          float64 `yaml:"sun_size"`
	SunColor         RGB     `yaml:"sun_color"`
	SunIntensity     float64 `yaml:"sun_intensity"`
	AutoFadeStars    *bool   `yaml:"auto_fade_stars"` // pointer so YAML false is distinguishable from unset
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	autoFade := true
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Dome: DomeConfig{
			StarCount:        4000,
			StarSize:         2.0,
			StarColor:        RGB{R: 1, G: 1, B: 1},
			GalaxyBrightness: 0.35,
			SunEnabled:       false,
			SunAzimuth:       180,
			SunAltitude:      45,
			SunSize:          100,
			SunColor:         RGB{R: 1, G: 0.95, B: 0.85},
			SunIntensity:     1.5,
			AutoFadeStars:    &autoFade,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// AutoFade resolves the auto_fade_stars setting, defaulting to true.
func (d *DomeConfig) AutoFade() bool {
	if d.AutoFadeStars == nil {
		return true
	}
	return *d.AutoFadeStars
}
