//go:build cgo

package hal

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"sineplot/internal/buildinfo"
)

// WindowConfig controls the desktop window runner.
type WindowConfig struct {
	Title       string
	Scale       int
	TPS         int
	Framebuffer FramebufferConfig
}

// RunWindow starts a desktop window that displays the framebuffer and forwards keyboard input.
// It blocks until the window closes or the step returns ErrQuit.
func RunWindow(cfg WindowConfig, newApp func(HAL) (func() error, error)) error {
	h, err := newHost(cfg.Framebuffer, nil)
	if err != nil {
		return err
	}
	step, err := newApp(h)
	if err != nil {
		return err
	}

	if cfg.Scale <= 0 {
		cfg.Scale = 1
	}
	if cfg.TPS <= 0 {
		cfg.TPS = 60
	}
	fb := h.disp.fb
	g := &hostGame{h: h, step: step}
	ebiten.SetWindowTitle(cfg.Title + " (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(fb.Width()*cfg.Scale, fb.Height()*cfg.Scale)
	ebiten.SetTPS(cfg.TPS)
	err = ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

type hostGame struct {
	h     *hostHAL
	pix   []byte
	fbImg *ebiten.Image
	step  func() error
}

func (g *hostGame) Update() error {
	g.h.kbd.poll()
	if g.step != nil {
		if err := g.step(); err != nil {
			if errors.Is(err, ErrQuit) {
				return ebiten.Termination
			}
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	v := g.h.disp.fb.View()
	if g.fbImg == nil || len(g.pix) != v.Width*v.Height*4 {
		g.pix = make([]byte, v.Width*v.Height*4)
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(v.Width, v.Height)
	}

	expandRGBA(g.pix, v)
	g.fbImg.WritePixels(g.pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	fb := g.h.disp.fb
	return fb.Width(), fb.Height()
}
