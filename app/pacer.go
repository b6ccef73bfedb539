package app

import "voxelspace/hal"

// Pacer releases one frame every Every ticks of a hal tick stream.
type Pacer struct {
	ticks <-chan uint64
	every uint64
	next  uint64
}

// NewPacer returns a Pacer over t. A nil t or a zero interval never waits.
func NewPacer(t hal.Time, every uint64) *Pacer {
	p := &Pacer{every: every}
	if t != nil {
		p.ticks = t.Ticks()
	}
	return p
}

// Wait blocks until the next frame boundary. Frames that overran are not
// made up; the next boundary is measured from the tick that released this one.
func (p *Pacer) Wait() {
	if p.ticks == nil || p.every == 0 {
		return
	}
	for seq := range p.ticks {
		if p.next == 0 || seq >= p.next {
			p.next = seq + p.every
			return
		}
	}
}
