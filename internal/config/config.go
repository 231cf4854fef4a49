package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"sineplot/export"
	"sineplot/pixbuf"
	"sineplot/scene"
)

// EnvPath names the environment variable holding a default config file path.
const EnvPath = "SINEPLOT_CONFIG"

// Config holds the window, buffer, plot domain and output settings.
type Config struct {
	Title string `json:"title"`

	// Buffer
	Width  int `json:"width"`
	Height int `json:"height"`
	Stride int `json:"stride"`
	Depth  int `json:"depth"`

	// Plot domain
	XMin      float64 `json:"xmin"`
	YMin      float64 `json:"ymin"`
	XMax      float64 `json:"xmax"`
	YMax      float64 `json:"ymax"`
	Samples   int     `json:"samples"`
	Amplitude float64 `json:"amplitude"`

	// Window
	TPS   int  `json:"tps"`
	Scale int  `json:"window_scale"`
	HUD   bool `json:"hud"`

	// Export
	SnapshotDir  string `json:"snapshot_dir"`
	ExportFormat string `json:"export_format"`
	ExportScale  int    `json:"export_scale"`

	// Logging
	LogLevel string `json:"log_level"`
	LogFile  string `json:"log_file"`
}

// Default returns the 480x272 RGBA plot of [-2π, 2π] x [-2, 2].
func Default() Config {
	return Config{
		Title:        "sineplot",
		Width:        480,
		Height:       272,
		Depth:        int(pixbuf.Depth32),
		XMin:         -2 * math.Pi,
		YMin:         -2,
		XMax:         2 * math.Pi,
		YMax:         2,
		Samples:      scene.DefaultSamples,
		Amplitude:    1.5,
		TPS:          60,
		Scale:        2,
		SnapshotDir:  ".",
		ExportFormat: string(export.FormatPNG),
		ExportScale:  1,
		LogLevel:     "info",
	}
}

// Load reads a JSON config file over the defaults.
// Fields not set in the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// LoadDefault loads path, or the file named by $SINEPLOT_CONFIG when path is
// empty, or returns the defaults when neither is set.
func LoadDefault(path string) (Config, error) {
	if path == "" {
		path = os.Getenv(EnvPath)
	}
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// Flags carries command-line overrides. Zero values mean "not given".
type Flags struct {
	Width        int
	Height       int
	Depth        int
	Samples      int
	TPS          int
	Scale        int
	HUD          bool
	SnapshotDir  string
	ExportFormat string
	ExportScale  int
	LogLevel     string
	LogFile      string
}

// Resolve applies non-zero flags over c. CLI flags take priority over the file.
func (c *Config) Resolve(f Flags) {
	if f.Width > 0 {
		c.Width = f.Width
	}
	if f.Height > 0 {
		c.Height = f.Height
	}
	if f.Depth > 0 {
		c.Depth = f.Depth
	}
	if f.Samples > 0 {
		c.Samples = f.Samples
	}
	if f.TPS > 0 {
		c.TPS = f.TPS
	}
	if f.Scale > 0 {
		c.Scale = f.Scale
	}
	if f.HUD {
		c.HUD = true
	}
	if f.SnapshotDir != "" {
		c.SnapshotDir = f.SnapshotDir
	}
	if f.ExportFormat != "" {
		c.ExportFormat = f.ExportFormat
	}
	if f.ExportScale > 0 {
		c.ExportScale = f.ExportScale
	}
	if f.LogLevel != "" {
		c.LogLevel = f.LogLevel
	}
	if f.LogFile != "" {
		c.LogFile = f.LogFile
	}
}

// Validate reports every invalid field.
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("config: invalid size %dx%d", c.Width, c.Height))
	}
	if c.Stride != 0 && c.Stride < c.Width {
		errs = append(errs, fmt.Errorf("config: stride %d < width %d", c.Stride, c.Width))
	}
	if !pixbuf.Depth(c.Depth).Valid() {
		errs = append(errs, fmt.Errorf("config: depth %d not one of 8, 24, 32", c.Depth))
	}
	if !(c.XMax > c.XMin) || !(c.YMax > c.YMin) {
		errs = append(errs, fmt.Errorf("config: degenerate domain x [%g, %g] y [%g, %g]", c.XMin, c.XMax, c.YMin, c.YMax))
	}
	if c.Samples < 2 {
		errs = append(errs, fmt.Errorf("config: samples %d < 2", c.Samples))
	}
	if c.TPS <= 0 {
		errs = append(errs, fmt.Errorf("config: tps %d <= 0", c.TPS))
	}
	if c.Scale <= 0 {
		errs = append(errs, fmt.Errorf("config: window scale %d <= 0", c.Scale))
	}
	if c.ExportScale < 0 {
		errs = append(errs, fmt.Errorf("config: export scale %d < 0", c.ExportScale))
	}
	if _, err := export.ParseFormat(c.ExportFormat); err != nil {
		errs = append(errs, fmt.Errorf("config: export format: %w", err))
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel)); err != nil {
		errs = append(errs, fmt.Errorf("config: log level: %w", err))
	}
	return errors.Join(errs...)
}

// SceneParams converts the plot settings to scene parameters.
func (c Config) SceneParams() scene.Params {
	p := scene.DefaultParams()
	p.XMin = c.XMin
	p.XMax = c.XMax
	p.Samples = c.Samples
	p.Amplitude = c.Amplitude
	return p
}

// ExportOptions converts the export settings. The format is left empty when
// unparsable so callers fall back to the file extension.
func (c Config) ExportOptions() export.Options {
	f, _ := export.ParseFormat(c.ExportFormat)
	return export.Options{Format: f, Scale: c.ExportScale}
}
