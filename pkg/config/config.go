// Package config provides configuration loading and management.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/user/framereel/pkg/orchestrator"
)

// Config represents the full configuration for framereel.
type Config struct {
	// Input/Output
	SourceDir  string `yaml:"input"`
	OutputPath string `yaml:"output"`
	Pattern    string `yaml:"pattern"`

	// Conversion
	FPS     float64 `yaml:"fps"`
	Rotate  bool    `yaml:"rotate"`
	OutroMs int     `yaml:"outro_ms"`

	// Stamp overlay
	Stamp StampConfig `yaml:"stamp"`

	// Encoding
	Codec       string `yaml:"codec"`
	Quality     int    `yaml:"quality"`
	Bitrate     int    `yaml:"bitrate"`
	JPEGQuality int    `yaml:"jpeg_quality"`
	FFmpegPath  string `yaml:"ffmpeg_path"`

	// Debug
	Debug    bool   `yaml:"debug"`
	DebugDir string `yaml:"debug_dir"`
}

// StampConfig represents the frame stamp overlay settings.
type StampConfig struct {
	Enabled  bool    `yaml:"enabled"`
	FontSize float64 `yaml:"font_size"`
	FontPath string  `yaml:"font_path"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		Pattern: "*",

		FPS:     30.0,
		Rotate:  true,
		OutroMs: 0,

		Stamp: StampConfig{
			FontSize: 16,
		},

		Codec:       "auto",
		Quality:     25,
		JPEGQuality: 80,

		DebugDir: "./debug",
	}
}

// LoadFromFile loads configuration from a YAML file. Keys absent from
// the file keep their default values.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// ToOrchestratorConfig converts Config to orchestrator.Config.
func (c Config) ToOrchestratorConfig() orchestrator.Config {
	return orchestrator.Config{
		SourceDir:  c.SourceDir,
		OutputPath: c.OutputPath,
		Pattern:    c.Pattern,

		FPS:     c.FPS,
		Rotate:  c.Rotate,
		OutroMs: c.OutroMs,

		StampEnabled:  c.Stamp.Enabled,
		StampFontSize: c.Stamp.FontSize,
		StampFontPath: c.Stamp.FontPath,

		VideoCRF:    c.Quality,
		Bitrate:     c.Bitrate,
		JPEGQuality: c.JPEGQuality,
	}
}
