//go:build !tinygo && cgo

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

// hostKeymap maps window keys onto handheld buttons. Several keys may share a
// code; the handheld has one A button but players reach for Z or Space.
var hostKeymap = []struct {
	key  ebiten.Key
	code KeyCode
}{
	{ebiten.KeyArrowUp, KeyUp},
	{ebiten.KeyArrowDown, KeyDown},
	{ebiten.KeyArrowLeft, KeyLeft},
	{ebiten.KeyArrowRight, KeyRight},
	{ebiten.KeyZ, KeyA},
	{ebiten.KeySpace, KeyA},
	{ebiten.KeyX, KeyB},
	{ebiten.KeyEnter, KeyStart},
	{ebiten.KeyBackspace, KeySelect},
	{ebiten.KeyEscape, KeyEscape},
	{ebiten.KeyF1, KeyF1},
}

func (k *hostKeyboard) poll() {
	emit := func(code KeyCode, press bool) {
		select {
		case k.ch <- KeyEvent{Code: code, Press: press}:
		default:
		}
	}

	for _, m := range hostKeymap {
		if inpututil.IsKeyJustPressed(m.key) {
			emit(m.code, true)
		}
		if inpututil.IsKeyJustReleased(m.key) && !k.stillHeld(m.code, m.key) {
			emit(m.code, false)
		}
	}
}

// stillHeld reports whether another key mapped to code remains down.
func (k *hostKeyboard) stillHeld(code KeyCode, released ebiten.Key) bool {
	for _, m := range hostKeymap {
		if m.code == code && m.key != released && ebiten.IsKeyPressed(m.key) {
			return true
		}
	}
	return false
}
