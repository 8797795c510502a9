package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	if cfg.Pattern != "*" {
		t.Errorf("expected pattern *, got %s", cfg.Pattern)
	}
	if cfg.FPS != 30.0 {
		t.Errorf("expected fps 30, got %v", cfg.FPS)
	}
	if !cfg.Rotate {
		t.Error("expected rotation enabled by default")
	}
	if cfg.Codec != "auto" {
		t.Errorf("expected codec auto, got %s", cfg.Codec)
	}
	if cfg.Quality != 25 {
		t.Errorf("expected quality 25, got %d", cfg.Quality)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "framereel.yaml")

	yaml := `
fps: 12.5
pattern: "*.jpg"
rotate: false
codec: mjpeg
outro_ms: 1500
stamp:
  enabled: true
  font_size: 24
`
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.FPS != 12.5 {
		t.Errorf("expected fps 12.5, got %v", cfg.FPS)
	}
	if cfg.Pattern != "*.jpg" {
		t.Errorf("expected pattern *.jpg, got %s", cfg.Pattern)
	}
	if cfg.Rotate {
		t.Error("expected rotation disabled")
	}
	if cfg.Codec != "mjpeg" {
		t.Errorf("expected codec mjpeg, got %s", cfg.Codec)
	}
	if cfg.OutroMs != 1500 {
		t.Errorf("expected outro 1500, got %d", cfg.OutroMs)
	}
	if !cfg.Stamp.Enabled || cfg.Stamp.FontSize != 24 {
		t.Errorf("unexpected stamp config: %+v", cfg.Stamp)
	}

	// Keys absent from the file keep their defaults
	if cfg.Quality != 25 {
		t.Errorf("expected default quality 25, got %d", cfg.Quality)
	}
	if cfg.JPEGQuality != 80 {
		t.Errorf("expected default jpeg quality 80, got %d", cfg.JPEGQuality)
	}
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := LoadFromFile("/nonexistent/framereel.yaml")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadFromFile_Invalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("fps: [not a number"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := LoadFromFile(path); err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestToOrchestratorConfig(t *testing.T) {
	cfg := Defaults()
	cfg.SourceDir = "/shots"
	cfg.OutputPath = "out.mp4"
	cfg.Quality = 18
	cfg.Stamp.Enabled = true

	oc := cfg.ToOrchestratorConfig()

	if oc.SourceDir != "/shots" || oc.OutputPath != "out.mp4" {
		t.Errorf("unexpected paths: %+v", oc)
	}
	if oc.VideoCRF != 18 {
		t.Errorf("expected CRF 18, got %d", oc.VideoCRF)
	}
	if !oc.StampEnabled {
		t.Error("expected stamp enabled")
	}
	if !oc.Rotate {
		t.Error("expected rotation enabled")
	}
}
