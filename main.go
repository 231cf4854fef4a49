package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"sineplot/app"
	"sineplot/export"
	"sineplot/hal"
	"sineplot/internal/buildinfo"
	"sineplot/internal/config"
	"sineplot/pixbuf"
)

func main() {
	var headless hal.HeadlessConfig
	var f config.Flags
	var configPath, outPath string
	var text, version bool

	flag.StringVar(&configPath, "config", "", "JSON config file (default $"+config.EnvPath+").")
	flag.BoolVar(&headless.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&headless.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&headless.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run until interrupted).")
	flag.StringVar(&outPath, "out", "", "Write the last frame to this image file on exit.")
	flag.BoolVar(&text, "text", false, "Print the last frame as ASCII art on exit.")
	flag.IntVar(&f.Width, "width", 0, "Framebuffer width.")
	flag.IntVar(&f.Height, "height", 0, "Framebuffer height.")
	flag.IntVar(&f.Depth, "depth", 0, "Bits per pixel: 8, 24 or 32.")
	flag.IntVar(&f.Samples, "samples", 0, "Sample positions per wave.")
	flag.IntVar(&f.TPS, "tps", 0, "Window ticks per second.")
	flag.IntVar(&f.Scale, "scale", 0, "Window scale factor.")
	flag.BoolVar(&f.HUD, "hud", false, "Overlay version, fps and frame count.")
	flag.StringVar(&f.SnapshotDir, "snapdir", "", "Directory for 's' key snapshots.")
	flag.StringVar(&f.ExportFormat, "format", "", "Snapshot format: png, webp, tga or bmp.")
	flag.IntVar(&f.ExportScale, "export-scale", 0, "Integer upscale factor for exported images.")
	flag.StringVar(&f.LogLevel, "loglevel", "", "Log level: debug, info, warn or error.")
	flag.StringVar(&f.LogFile, "logfile", "", "Append logs to this file instead of stderr.")
	flag.BoolVar(&version, "version", false, "Print version and exit.")
	flag.Parse()

	if version {
		fmt.Println(buildinfo.String())
		return
	}

	if os.Getenv("DEBUG") != "" {
		f.LogLevel = "debug"
	}

	cfg, err := config.LoadDefault(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cfg.Resolve(f)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	closeLog, err := setupLogging(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closeLog()

	log.Info().
		Str("version", buildinfo.String()).
		Bool("headless", headless.Enabled).
		Str("loglevel", zerolog.GlobalLevel().String()).
		Msg("starting sineplot")
	log.Debug().Msg("config:\n" + spew.Sdump(cfg))

	fb := hal.FramebufferConfig{
		Width:  cfg.Width,
		Height: cfg.Height,
		Stride: cfg.Stride,
		Depth:  pixbuf.Depth(cfg.Depth),
	}

	var a *app.App
	newApp := func(h hal.HAL) (func() error, error) {
		var err error
		a, err = app.New(h, cfg, log.Logger)
		if err != nil {
			return nil, err
		}
		return a.Step, nil
	}

	if headless.Enabled {
		headless.Framebuffer = fb
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		err = hal.RunHeadless(ctx, newApp, headless)
		stop()
		if errors.Is(err, context.Canceled) {
			err = nil
		}
	} else {
		err = hal.RunWindow(hal.WindowConfig{
			Title:       cfg.Title,
			Scale:       cfg.Scale,
			TPS:         cfg.TPS,
			Framebuffer: fb,
		}, newApp)
	}
	if err != nil {
		log.Error().Err(err).Msg("run failed")
		closeLog()
		os.Exit(1)
	}

	if a == nil {
		return
	}
	log.Info().Uint64("frames", a.Frames()).Msg("stopped")

	if outPath != "" {
		if err := a.Snapshot(outPath); err != nil {
			log.Error().Err(err).Str("path", outPath).Msg("export failed")
			closeLog()
			os.Exit(1)
		}
	}
	if text {
		if err := export.WriteText(os.Stdout, a.Framebuffer().View(), export.TextOptions{}); err != nil {
			log.Error().Err(err).Msg("text export failed")
			closeLog()
			os.Exit(1)
		}
	}
}

// setupLogging applies the configured level and output. The returned func
// closes the log file, if any.
func setupLogging(cfg config.Config) (func(), error) {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		return nil, err
	}
	zerolog.SetGlobalLevel(level)

	if cfg.LogFile == "" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		return func() {}, nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o666)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.Logger = log.Output(f)
	return func() { _ = f.Close() }, nil
}
