package hal

import (
	"errors"
	"time"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var ErrNotImplemented = errors.New("not implemented")

// ErrStopped is returned by a step function to end a runner cleanly.
var ErrStopped = errors.New("stopped")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
	// PixelFormatIndexed8 is one palette index per byte.
	PixelFormatIndexed8
)

// Layer selects which palette SetPalette replaces.
type Layer uint8

const (
	LayerBackground Layer = iota
	// LayerOverlay is drawn over the background; index 0 is transparent.
	LayerOverlay
)

// Display dimensions of the indexed surface.
const (
	ScreenWidth  = 240
	ScreenHeight = 160
)

// Framebuffer is a double-buffered indexed surface with an overlay layer.
//
// Buffer and Overlay always return the off-screen page. Present flips pages:
// the page just drawn becomes visible and the other one is handed out on the
// next call to Buffer.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	Overlay() []byte
	SetPalette(l Layer, p *[256]uint16)
	ClearIndex(c uint8)
	Present() error
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyA
	KeyB
	KeyStart
	KeySelect
	KeyEscape
	KeyF1
)

// KeyEvent is a keyboard event.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
}

// TickDuration is the period of the Time tick stream on every target.
const TickDuration = time.Millisecond

// Time provides a base tick stream.
type Time interface {
	Ticks() <-chan uint64
}

// HAL provides the only contact point between the engine and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
	Time() Time
}
