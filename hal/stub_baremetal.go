//go:build tinygo && baremetal

package hal

// headlessFramebuffer flips pages without any panel behind them.
type headlessFramebuffer struct {
	*pagedFramebuffer
}

func newHeadlessFramebuffer(w, h int) *headlessFramebuffer {
	return &headlessFramebuffer{pagedFramebuffer: newPagedFramebuffer(w, h)}
}

func (f *headlessFramebuffer) Present() error {
	f.flip()
	return nil
}

type stubKeyboard struct{}

func (k *stubKeyboard) Events() <-chan KeyEvent { return nil }
