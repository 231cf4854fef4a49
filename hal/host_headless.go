package hal

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled     bool
	Hz          int
	Ticks       uint64
	Framebuffer FramebufferConfig
}

// RunHeadless runs the app without opening a window, one step per tick.
// Frame time advances by exactly 1/Hz per step, so runs are reproducible.
// It returns nil after cfg.Ticks steps (0 = run until ctx is done) or when the
// step returns ErrQuit.
func RunHeadless(ctx context.Context, newApp func(HAL) (func() error, error), cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	h, err := newHost(cfg.Framebuffer, FixedTimeHz(cfg.Hz))
	if err != nil {
		return err
	}
	step, err := newApp(h)
	if err != nil {
		return err
	}

	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if step != nil {
				if err := step(); err != nil {
					if errors.Is(err, ErrQuit) {
						return nil
					}
					return err
				}
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}
