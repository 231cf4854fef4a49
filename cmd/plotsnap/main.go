// Command plotsnap renders the animation offscreen and writes frames to image
// files or the terminal.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"sineplot/app"
	"sineplot/export"
	"sineplot/hal"
	"sineplot/internal/config"
	"sineplot/pixbuf"
)

type options struct {
	frames int
	dt     float64
	every  int
	out    string
	text   bool
	cols   int
}

func main() {
	var (
		configPath = flag.String("config", "", "JSON config file.")
		frames     = flag.Int("frames", 1, "Frames to render.")
		dt         = flag.Float64("dt", 1.0/60, "Seconds per frame.")
		every      = flag.Int("every", 0, "Also write every Nth frame as a numbered file next to -out.")
		out        = flag.String("out", "sineplot.png", "Output image; the extension picks the format.")
		text       = flag.Bool("text", false, "Print the final frame as ASCII art instead of writing -out.")
		cols       = flag.Int("cols", 80, "Text width in columns.")
		depth      = flag.Int("depth", 0, "Bits per pixel: 8, 24 or 32.")
		scale      = flag.Int("scale", 0, "Integer upscale factor for images.")
		verbose    = flag.Bool("v", false, "Log each written file.")
	)
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.LoadDefault(*configPath)
	if err != nil {
		fatalf("%v", err)
	}
	cfg.Resolve(config.Flags{Depth: *depth, ExportScale: *scale})
	if err := cfg.Validate(); err != nil {
		fatalf("%v", err)
	}

	opts := options{frames: *frames, dt: *dt, every: *every, out: *out, text: *text, cols: *cols}
	if err := render(os.Stdout, cfg, opts, log.Logger); err != nil {
		fatalf("plotsnap: %v", err)
	}
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}

// render steps a fresh app opts.frames times with a fixed clock and writes
// the result.
func render(stdout io.Writer, cfg config.Config, opts options, logger zerolog.Logger) error {
	if opts.frames < 1 {
		return fmt.Errorf("frames must be >= 1, got %d", opts.frames)
	}
	h, err := hal.New(hal.FramebufferConfig{
		Width:  cfg.Width,
		Height: cfg.Height,
		Stride: cfg.Stride,
		Depth:  pixbuf.Depth(cfg.Depth),
	}, hal.FixedTime(opts.dt))
	if err != nil {
		return err
	}
	a, err := app.New(h, cfg, logger)
	if err != nil {
		return err
	}

	for i := 1; i <= opts.frames; i++ {
		if err := a.Step(); err != nil {
			return err
		}
		if opts.every > 0 && i%opts.every == 0 && !opts.text {
			path := numbered(opts.out, i)
			if err := a.Snapshot(path); err != nil {
				return err
			}
		}
	}

	if opts.text {
		return export.WriteText(stdout, a.Framebuffer().View(), export.TextOptions{Cols: opts.cols})
	}
	return a.Snapshot(opts.out)
}

// numbered turns "dir/plot.png" into "dir/plot-0042.png".
func numbered(path string, frame int) string {
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s-%04d%s", strings.TrimSuffix(path, ext), frame, ext)
}
