package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"sineplot/internal/config"
)

func TestRenderWritesFrames(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Width, cfg.Height = 96, 54
	out := filepath.Join(dir, "plot.png")

	opts := options{frames: 6, dt: 0.1, every: 3, out: out}
	if err := render(nil, cfg, opts, zerolog.Nop()); err != nil {
		t.Fatalf("render: %v", err)
	}

	for _, name := range []string{"plot.png", "plot-0003.png", "plot-0006.png"} {
		f, err := os.Open(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("open %s: %v", name, err)
		}
		cfgImg, err := png.DecodeConfig(f)
		_ = f.Close()
		if err != nil {
			t.Fatalf("decode %s: %v", name, err)
		}
		if cfgImg.Width != 96 || cfgImg.Height != 54 {
			t.Fatalf("%s is %dx%d", name, cfgImg.Width, cfgImg.Height)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "plot-0001.png")); !os.IsNotExist(err) {
		t.Fatalf("unexpected frame 1 file: %v", err)
	}
}

func TestRenderText(t *testing.T) {
	cfg := config.Default()
	var buf bytes.Buffer
	opts := options{frames: 1, dt: 0, text: true, cols: 40}
	if err := render(&buf, cfg, opts, zerolog.Nop()); err != nil {
		t.Fatalf("render: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) == 0 || len(lines[len(lines)-1]) != 40 {
		t.Fatalf("unexpected text output:\n%s", buf.String())
	}
}

func TestRenderRejectsZeroFrames(t *testing.T) {
	if err := render(nil, config.Default(), options{frames: 0, out: "x.png"}, zerolog.Nop()); err == nil {
		t.Fatal("render accepted 0 frames")
	}
}

func TestNumbered(t *testing.T) {
	if got := numbered("out/plot.webp", 42); got != "out/plot-0042.webp" {
		t.Fatalf("numbered=%q", got)
	}
	if got := numbered("plot", 7); got != "plot-0007" {
		t.Fatalf("numbered=%q", got)
	}
}
