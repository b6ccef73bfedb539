//go:build tinygo && !baremetal

package hal

type tinyGoHostFramebuffer struct {
	*pagedFramebuffer
}

func newTinyGoHostFramebuffer(w, h int) *tinyGoHostFramebuffer {
	return &tinyGoHostFramebuffer{pagedFramebuffer: newPagedFramebuffer(w, h)}
}

// Present flips pages. There is no panel to push to on tinygo host targets.
func (f *tinyGoHostFramebuffer) Present() error {
	f.flip()
	return nil
}
