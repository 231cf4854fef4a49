package hal

import (
	"fmt"

	"sineplot/pixbuf"
)

type hostHAL struct {
	disp *hostDisplay
	kbd  *hostKeyboard
	t    Time
}

// New returns a host HAL with a freshly allocated framebuffer. A nil t uses
// the wall clock.
func New(fb FramebufferConfig, t Time) (HAL, error) {
	return newHost(fb, t)
}

func newHost(fb FramebufferConfig, t Time) (*hostHAL, error) {
	buf, err := pixbuf.New(fb.Width, fb.Height, fb.Stride, fb.Depth, nil)
	if err != nil {
		return nil, fmt.Errorf("hal: framebuffer: %w", err)
	}
	if t == nil {
		t = NewHostTime()
	}
	return &hostHAL{
		disp: &hostDisplay{fb: buf},
		kbd:  newHostKeyboard(),
		t:    t,
	}, nil
}

func (h *hostHAL) Display() Display { return h.disp }
func (h *hostHAL) Input() Input     { return hostInput{kbd: h.kbd} }
func (h *hostHAL) Time() Time       { return h.t }

type hostDisplay struct {
	fb     *pixbuf.Buffer
	frames uint64
}

func (d *hostDisplay) Framebuffer() *pixbuf.Buffer { return d.fb }

func (d *hostDisplay) Present() error {
	d.frames++
	return nil
}

type hostInput struct {
	kbd *hostKeyboard
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }
