//go:build cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type hostKeyboard struct {
	ch chan KeyEvent
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{ch: make(chan KeyEvent, 64)}
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.ch }

func (k *hostKeyboard) emit(ev KeyEvent) {
	select {
	case k.ch <- ev:
	default:
	}
}

func (k *hostKeyboard) poll() {
	for _, r := range ebiten.AppendInputChars(nil) {
		k.emit(KeyEvent{Press: true, Rune: r})
	}

	keys := [...]struct {
		key  ebiten.Key
		code KeyCode
	}{
		{ebiten.KeyEscape, KeyEscape},
		{ebiten.KeySpace, KeySpace},
	}
	for _, kc := range keys {
		if inpututil.IsKeyJustPressed(kc.key) {
			k.emit(KeyEvent{Code: kc.code, Press: true})
		}
		if inpututil.IsKeyJustReleased(kc.key) {
			k.emit(KeyEvent{Code: kc.code, Press: false})
		}
	}
}
