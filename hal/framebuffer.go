package hal

import (
	"image"
	"sync"
)

// pagedFramebuffer is the shared indexed implementation behind every target.
type pagedFramebuffer struct {
	mu      sync.Mutex
	width   int
	height  int
	stride  int
	pages   [2][]byte
	overlay [2][]byte
	back    int
	pal     [2][256]uint16
	flips   uint64
}

func newPagedFramebuffer(width, height int) *pagedFramebuffer {
	f := &pagedFramebuffer{width: width, height: height, stride: width}
	for i := range f.pages {
		f.pages[i] = make([]byte, width*height)
		f.overlay[i] = make([]byte, width*height)
	}
	return f
}

func (f *pagedFramebuffer) Width() int          { return f.width }
func (f *pagedFramebuffer) Height() int         { return f.height }
func (f *pagedFramebuffer) Format() PixelFormat { return PixelFormatIndexed8 }
func (f *pagedFramebuffer) StrideBytes() int    { return f.stride }

func (f *pagedFramebuffer) Buffer() []byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pages[f.back]
}

func (f *pagedFramebuffer) Overlay() []byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.overlay[f.back]
}

func (f *pagedFramebuffer) SetPalette(l Layer, p *[256]uint16) {
	if p == nil || int(l) >= len(f.pal) {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pal[l] = *p
}

func (f *pagedFramebuffer) ClearIndex(c uint8) {
	buf := f.Buffer()
	for i := range buf {
		buf[i] = c
	}
}

// flip makes the back page visible. It does not touch any display hardware.
func (f *pagedFramebuffer) flip() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.back ^= 1
	f.flips++
}

// Flips reports how many times the pages were swapped.
func (f *pagedFramebuffer) Flips() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.flips
}

// frontRow converts row y of the visible page into RGB565, overlay first.
// Caller holds mu.
func (f *pagedFramebuffer) frontRow(y int, dst []uint16) {
	front := f.back ^ 1
	page := f.pages[front][y*f.stride : y*f.stride+f.width]
	over := f.overlay[front][y*f.stride : y*f.stride+f.width]
	for x, c := range page {
		if o := over[x]; o != 0 {
			dst[x] = f.pal[LayerOverlay][o]
			continue
		}
		dst[x] = f.pal[LayerBackground][c]
	}
}

func (f *pagedFramebuffer) snapshotRGBA(dst *image.RGBA) {
	f.mu.Lock()
	defer f.mu.Unlock()

	row := make([]uint16, f.width)
	for y := 0; y < f.height; y++ {
		f.frontRow(y, row)
		off := y * dst.Stride
		for x, p := range row {
			r, g, b := rgb888From565(p)
			j := off + x*4
			dst.Pix[j+0] = r
			dst.Pix[j+1] = g
			dst.Pix[j+2] = b
			dst.Pix[j+3] = 0xFF
		}
	}
}

type snapshotter interface {
	Width() int
	Height() int
	snapshotRGBA(dst *image.RGBA)
}

// Snapshot returns the visible page composed through both palettes.
func Snapshot(fb Framebuffer) (*image.RGBA, error) {
	s, ok := fb.(snapshotter)
	if !ok {
		return nil, ErrNotImplemented
	}
	img := image.NewRGBA(image.Rect(0, 0, s.Width(), s.Height()))
	s.snapshotRGBA(img)
	return img, nil
}
