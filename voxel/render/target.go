package render

import "fmt"

const (
	// Width and Height are the frame dimensions in pixels.
	Width  = 240
	Height = 160
)

// Target is an 8-bit indexed pixel surface. Pix holds Height rows of at least
// Width bytes, Stride bytes apart.
type Target struct {
	Pix    []byte
	Stride int
}

// NewTarget wraps an indexed surface. The renderer writes without clipping, so
// the surface must be large enough up front.
func NewTarget(pix []byte, stride int) (*Target, error) {
	if stride < Width {
		return nil, fmt.Errorf("render: stride %d < width %d", stride, Width)
	}
	if need := stride*(Height-1) + Width; len(pix) < need {
		return nil, fmt.Errorf("render: surface has %d bytes, need %d", len(pix), need)
	}
	return &Target{Pix: pix, Stride: stride}, nil
}

// Clear fills the visible area with palette index c.
func (t *Target) Clear(c uint8) {
	for y := 0; y < Height; y++ {
		row := t.Pix[y*t.Stride : y*t.Stride+Width]
		for i := range row {
			row[i] = c
		}
	}
}

// At returns the palette index at (x, y).
func (t *Target) At(x, y int) uint8 {
	return t.Pix[y*t.Stride+x]
}
