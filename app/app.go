package app

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"

	"sineplot/export"
	"sineplot/graph"
	"sineplot/hal"
	"sineplot/hud"
	"sineplot/internal/config"
	"sineplot/pixbuf"
	"sineplot/scene"
)

// fpsSmoothing weights the newest frame in the exponential fps average.
const fpsSmoothing = 0.1

// App animates the scene into the HAL framebuffer, one frame per Step.
type App struct {
	h     hal.HAL
	buf   *pixbuf.Buffer
	graph *graph.Graph
	scene *scene.State
	log   zerolog.Logger

	hud     bool
	paused  bool
	frames  uint64
	fps     float64
	snaps   int
	snapDir string
	export  export.Options
}

// New binds the plot domain to the HAL framebuffer and builds the scene from cfg.
func New(h hal.HAL, cfg config.Config, logger zerolog.Logger) (*App, error) {
	buf := h.Display().Framebuffer()
	g, err := graph.New(cfg.XMin, cfg.YMin, cfg.XMax, cfg.YMax, buf)
	if err != nil {
		return nil, fmt.Errorf("app: graph: %w", err)
	}
	s, err := scene.New(cfg.SceneParams())
	if err != nil {
		return nil, fmt.Errorf("app: scene: %w", err)
	}

	logger.Debug().
		Int("width", buf.Width()).
		Int("height", buf.Height()).
		Int("depth", int(buf.Depth())).
		Int("samples", s.Samples()).
		Msg("scene ready")

	return &App{
		h:       h,
		buf:     buf,
		graph:   g,
		scene:   s,
		log:     logger,
		hud:     cfg.HUD,
		snapDir: cfg.SnapshotDir,
		export:  cfg.ExportOptions(),
	}, nil
}

// Step handles pending keys, advances the animation by the HAL's frame delta,
// redraws and presents. It returns hal.ErrQuit when the user asks to quit.
func (a *App) Step() error {
	if err := a.handleKeys(); err != nil {
		return err
	}

	dt := a.h.Time().Delta()
	if dt > 0 {
		a.fps = a.fps*(1-fpsSmoothing) + (1/dt)*fpsSmoothing
	}
	if !a.paused {
		a.scene.Update(dt)
	}

	a.scene.Draw(a.graph)
	if a.hud {
		hud.Draw(a.buf, hud.Lines(a.frames, a.fps), hud.Color)
	}
	a.frames++
	return a.h.Display().Present()
}

func (a *App) handleKeys() error {
	kbd := a.h.Input().Keyboard()
	if kbd == nil {
		return nil
	}
	ch := kbd.Events()
	for {
		select {
		case ev := <-ch:
			if !ev.Press {
				continue
			}
			switch {
			case ev.Code == hal.KeyEscape, ev.Rune == 'q', ev.Rune == 'Q':
				a.log.Info().Uint64("frames", a.frames).Msg("quit requested")
				return hal.ErrQuit
			case ev.Code == hal.KeySpace:
				a.paused = !a.paused
				a.log.Debug().Bool("paused", a.paused).Msg("toggle pause")
			case ev.Rune == 'h', ev.Rune == 'H':
				a.hud = !a.hud
			case ev.Rune == 's', ev.Rune == 'S':
				if _, err := a.SaveSnapshot(); err != nil {
					a.log.Error().Err(err).Msg("snapshot failed")
				}
			}
		default:
			return nil
		}
	}
}

// SaveSnapshot writes the current frame to the next numbered file in the
// snapshot directory and returns its path.
func (a *App) SaveSnapshot() (string, error) {
	f := a.export.Format
	if f == "" {
		f = export.FormatPNG
	}
	a.snaps++
	path := filepath.Join(a.snapDir, fmt.Sprintf("sineplot-%04d.%s", a.snaps, f))
	if err := a.Snapshot(path); err != nil {
		return "", err
	}
	return path, nil
}

// Snapshot writes the current frame to path, in the format named by its extension.
func (a *App) Snapshot(path string) error {
	opts := a.export
	opts.Format = ""
	if err := export.SaveFile(path, a.buf.View(), opts); err != nil {
		return err
	}
	a.log.Info().Str("path", path).Uint64("frame", a.frames).Msg("snapshot saved")
	return nil
}

// Frames returns the number of frames presented so far.
func (a *App) Frames() uint64 { return a.frames }

// Paused reports whether the animation clock is stopped.
func (a *App) Paused() bool { return a.paused }

// Scene returns the animation state.
func (a *App) Scene() *scene.State { return a.scene }

// Framebuffer returns the buffer the app draws into.
func (a *App) Framebuffer() *pixbuf.Buffer { return a.buf }
