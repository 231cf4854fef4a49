package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"sineplot/export"
)

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.Width != 480 || cfg.Height != 272 || cfg.Depth != 32 {
		t.Fatalf("defaults %dx%d@%d", cfg.Width, cfg.Height, cfg.Depth)
	}
	if cfg.XMin != -2*math.Pi || cfg.XMax != 2*math.Pi {
		t.Fatalf("x domain [%v, %v]", cfg.XMin, cfg.XMax)
	}
}

func TestLoadKeepsDefaultsForMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sineplot.json")
	if err := os.WriteFile(path, []byte(`{"width": 320, "depth": 8, "hud": true}`), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Width != 320 || cfg.Depth != 8 || !cfg.HUD {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.Height != 272 || cfg.Samples != Default().Samples {
		t.Fatalf("defaults lost: %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(filepath.Join(dir, "missing.json")); err == nil {
		t.Fatal("Load accepted a missing file")
	}
	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"width": "wide"}`), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Load(bad); err == nil {
		t.Fatal("Load accepted malformed JSON")
	}
}

func TestLoadDefaultUsesEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "env.json")
	if err := os.WriteFile(path, []byte(`{"title": "from env"}`), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	t.Setenv(EnvPath, path)
	cfg, err := LoadDefault("")
	if err != nil {
		t.Fatalf("LoadDefault: %v", err)
	}
	if cfg.Title != "from env" {
		t.Fatalf("title %q", cfg.Title)
	}

	t.Setenv(EnvPath, "")
	cfg, err = LoadDefault("")
	if err != nil {
		t.Fatalf("LoadDefault: %v", err)
	}
	if cfg.Title != Default().Title {
		t.Fatalf("title %q", cfg.Title)
	}
}

func TestResolveFlagsWin(t *testing.T) {
	cfg := Default()
	cfg.Resolve(Flags{Width: 100, Depth: 24, HUD: true, ExportFormat: "webp", LogLevel: "debug"})
	if cfg.Width != 100 || cfg.Height != 272 || cfg.Depth != 24 || !cfg.HUD {
		t.Fatalf("resolved %+v", cfg)
	}
	if cfg.ExportOptions().Format != export.FormatWebP {
		t.Fatalf("export format %q", cfg.ExportOptions().Format)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("log level %q", cfg.LogLevel)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"short stride", func(c *Config) { c.Stride = 10 }},
		{"depth 16", func(c *Config) { c.Depth = 16 }},
		{"flat x", func(c *Config) { c.XMax = c.XMin }},
		{"inverted y", func(c *Config) { c.YMin, c.YMax = c.YMax, c.YMin }},
		{"one sample", func(c *Config) { c.Samples = 1 }},
		{"zero tps", func(c *Config) { c.TPS = 0 }},
		{"zero window scale", func(c *Config) { c.Scale = 0 }},
		{"gif export", func(c *Config) { c.ExportFormat = "gif" }},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }},
	}
	for _, tt := range tests {
		cfg := Default()
		tt.mod(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Fatalf("%s: Validate accepted %+v", tt.name, cfg)
		}
	}
}

func TestSceneParams(t *testing.T) {
	cfg := Default()
	cfg.Samples = 64
	cfg.Amplitude = 0.5
	p := cfg.SceneParams()
	if p.Samples != 64 || p.Amplitude != 0.5 || p.XMin != cfg.XMin || p.XMax != cfg.XMax {
		t.Fatalf("params %+v", p)
	}
	if len(p.Waves) != 3 {
		t.Fatalf("got %d waves", len(p.Waves))
	}
}
