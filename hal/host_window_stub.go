//go:build !cgo

package hal

import "errors"

// WindowConfig controls the desktop window runner.
type WindowConfig struct {
	Title       string
	Scale       int
	TPS         int
	Framebuffer FramebufferConfig
}

func RunWindow(_ WindowConfig, _ func(HAL) (func() error, error)) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")
}
