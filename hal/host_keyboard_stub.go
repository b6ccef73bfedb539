//go:build !tinygo && !cgo

package hal

// hostKeyboard has no key source without cgo. Headless runs read a Lua
// script and -term reads keys through tcell.
type hostKeyboard struct {
	ch chan KeyEvent
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{ch: make(chan KeyEvent, 1)}
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.ch }
