package hal

import (
	"errors"

	"sineplot/pixbuf"
)

// ErrQuit is returned by an app step to end the run loop without error.
var ErrQuit = errors.New("quit")

// FramebufferConfig describes the pixel buffer the host allocates.
type FramebufferConfig struct {
	Width  int
	Height int
	Stride int
	Depth  pixbuf.Depth
}

// Display owns the frame presented each tick.
type Display interface {
	Framebuffer() *pixbuf.Buffer
	// Present marks the framebuffer contents as a finished frame.
	Present() error
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyEscape
	KeySpace
)

// KeyEvent is a keyboard event. Text input arrives as Rune with KeyUnknown.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
}

// Time supplies frame timing.
type Time interface {
	// Delta returns the seconds elapsed since the previous call. It is never
	// negative; the first call returns 0.
	Delta() float64
}

// HAL is the app's only contact with the host platform.
type HAL interface {
	Display() Display
	Input() Input
	Time() Time
}
