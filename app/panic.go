package app

import (
	"fmt"
	"image/color"
	"runtime/debug"
	"strings"
	"unicode/utf8"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"voxelspace/hal"
)

// Panic screen palette indices.
const (
	panicBackground uint8 = 0
	panicForeground uint8 = 1
)

// safeStep runs one frame and turns a panic into an error after reporting it.
func (e *engine) safeStep() (err error) {
	defer func() {
		if v := recover(); v != nil {
			stack := debug.Stack()
			reportPanic(e.h, v, stack)
			err = fmt.Errorf("app: panic: %v", v)
		}
	}()
	return e.step()
}

// reportPanic logs the panic and paints it on the display.
func reportPanic(h hal.HAL, v any, stack []byte) {
	var lines []string
	for _, line := range strings.Split(string(stack), "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}

	if l := h.Logger(); l != nil {
		l.WriteLineString(fmt.Sprintf("app: panic: %v", v))
		for _, line := range lines {
			l.WriteLineString(line)
		}
	}

	disp := h.Display()
	if disp == nil {
		return
	}
	fb := disp.Framebuffer()
	if fb == nil {
		return
	}

	text := []string{"voxelspace panic:", fmt.Sprintf("%v", v)}
	if len(lines) > 0 {
		text = append(text, "stack:")
		text = append(text, lines...)
	} else {
		text = append(text, "stack: unavailable")
	}
	drawTextScreen(fb, text)
}

// drawTextScreen shows black-on-white text on its own page and palette,
// wrapping long lines at the screen edge.
func drawTextScreen(fb hal.Framebuffer, lines []string) {
	var pal [256]uint16
	pal[panicBackground] = 0xFFFF
	pal[panicForeground] = 0x0000
	fb.SetPalette(hal.LayerBackground, &pal)
	fb.ClearIndex(panicBackground)
	over := fb.Overlay()
	for i := range over {
		over[i] = 0
	}

	font := &proggy.TinySZ8pt7b
	const fontHeight, fontOffset = int16(8), int16(6)
	_, outboxWidth := tinyfont.LineWidth(font, "0")
	fontWidth := int16(outboxWidth)
	if fontWidth <= 0 {
		_ = fb.Present()
		return
	}

	d := indexDisplay{fb: fb, index: panicForeground}
	cols := int16(fb.Width()) / fontWidth
	if cols <= 0 {
		cols = 1
	}

	y := int16(0)
	maxH := int16(fb.Height())
wrap:
	for _, line := range lines {
		if line == "" {
			y += fontHeight
			continue
		}
		for len(line) > 0 {
			if y+fontHeight > maxH {
				break wrap
			}
			chunk, rest := takeRunes(line, cols)
			drawTextLine(d, font, fontWidth, fontOffset, 0, y, chunk)
			y += fontHeight
			line = strings.TrimLeft(rest, " \t")
		}
	}

	_ = fb.Present()
}

func drawTextLine(d drivers.Displayer, font tinyfont.Fonter, fontWidth, fontOffset, x0, y0 int16, s string) {
	x := x0
	for _, r := range s {
		if r == '\t' {
			r = ' '
		}
		tinyfont.DrawChar(d, font, x, y0+fontOffset, r, color.RGBA{A: 0xFF})
		x += fontWidth
	}
}

// indexDisplay writes one palette index into the back page for every pixel
// tinyfont sets.
type indexDisplay struct {
	fb    hal.Framebuffer
	index uint8
}

var _ drivers.Displayer = indexDisplay{}

func (d indexDisplay) Size() (x, y int16) {
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d indexDisplay) SetPixel(x, y int16, _ color.RGBA) {
	buf := d.fb.Buffer()
	ix, iy := int(x), int(y)
	if ix < 0 || ix >= d.fb.Width() || iy < 0 || iy >= d.fb.Height() {
		return
	}
	off := iy*d.fb.StrideBytes() + ix
	if off >= len(buf) {
		return
	}
	buf[off] = d.index
}

func (d indexDisplay) Display() error { return nil }

func takeRunes(s string, n int16) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if int64(len(s)) <= int64(n) {
		return s, ""
	}
	var i int
	var count int16
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		if size <= 0 {
			break
		}
		i += size
		count++
	}
	if i >= len(s) {
		return s, ""
	}
	return s[:i], s[i:]
}
