//go:build !tinygo

package hal

type hostFramebuffer struct {
	*pagedFramebuffer
}

func newHostFramebuffer(width, height int) *hostFramebuffer {
	return &hostFramebuffer{pagedFramebuffer: newPagedFramebuffer(width, height)}
}

// Present flips pages. The runner picks up the new front page on its next draw.
func (f *hostFramebuffer) Present() error {
	f.flip()
	return nil
}
