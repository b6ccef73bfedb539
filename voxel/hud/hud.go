// Package hud draws the diagnostics overlay: camera position, frame rate and
// render time.
//
// Text is laid out as one 8×8 sprite per character in a fixed table of packed
// sprite records, then rasterised into a separate overlay layer. The terrain
// renderer never touches either.
package hud

import (
	"fmt"
	"image/color"
	"time"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"voxelspace/voxel/terrain"
)

const (
	// MaxSprites is the number of sprite records, one per text byte.
	MaxSprites = 128
	// CellSize is the glyph cell width and line height.
	CellSize = 8

	// tileBase is the tile of the first printable glyph (' ').
	tileBase  = 0x200
	firstChar = 0x20

	// Overlay palette indices. 0 is transparent.
	Transparent uint8 = 0
	glyphIndex  uint8 = 5
	shadowIndex uint8 = 6

	baseline = 6
)

// HUD owns the sprite table for the overlay text.
type HUD struct {
	sprites [MaxSprites]Sprite
	font    tinyfont.Fonter
	text    string
}

func New() *HUD {
	h := &HUD{font: &proggy.TinySZ8pt7b}
	for i := range h.sprites {
		s := &h.sprites[i]
		s.SetX(uint16(i * CellSize))
		s.SetY(0)
		s.SetAffineMode(AffineDisabled)
		s.SetTileNum(tileBase)
	}
	return h
}

// Palette returns the overlay palette: an orange ramp at 1..5 and a black
// shadow at 6.
func Palette() *terrain.Palette {
	p := new(terrain.Palette)
	p[0] = terrain.RGB565(255, 255, 255)
	p.Set(1, 255, 130, 0)
	p.Set(2, 255, 165, 0)
	p.Set(3, 255, 198, 0)
	p.Set(4, 255, 231, 0)
	p.Set(5, 255, 255, 0)
	p.Set(6, 0, 0, 0)
	return p
}

// Format builds the overlay text.
func Format(x, y, height int32, fps int, render time.Duration) string {
	return fmt.Sprintf("pos: %d,%d,%d\nFPS: %d\nrender: %d us", x, y, height, fps, render.Microseconds())
}

// Text returns the text last passed to SetText.
func (h *HUD) Text() string { return h.text }

// Sprite returns record i.
func (h *HUD) Sprite(i int) *Sprite { return &h.sprites[i] }

// SetText lays s out one sprite per byte. A newline starts a new 8-pixel row;
// records past the end of s are hidden. Bytes beyond MaxSprites are dropped.
func (h *HUD) SetText(s string) {
	h.text = s
	x, y := 0, 0
	i := 0
	for ; i < len(s) && i < MaxSprites; i++ {
		c := s[i]
		sp := &h.sprites[i]
		if c == '\n' {
			sp.SetAffineMode(AffineDisabled)
			x = 0
			y += CellSize
			continue
		}
		sp.SetAffineMode(AffineOff)
		sp.SetX(uint16(x))
		sp.SetY(uint8(y))
		sp.SetTileNum(tileBase + uint16(c) - firstChar)
		x += CellSize
	}
	for ; i < MaxSprites; i++ {
		h.sprites[i].SetAffineMode(AffineDisabled)
	}
}

// Compose clears the overlay layer and draws every visible sprite into it.
func (h *HUD) Compose(overlay []byte, w, ht, stride int) {
	for y := 0; y < ht; y++ {
		row := overlay[y*stride : y*stride+w]
		for i := range row {
			row[i] = Transparent
		}
	}
	d := &layer{pix: overlay, w: w, h: ht, stride: stride}
	for pass, idx := range [2]uint8{shadowIndex, glyphIndex} {
		d.index = idx
		off := int16(1 - pass)
		for i := range h.sprites {
			sp := &h.sprites[i]
			if sp.Hidden() {
				continue
			}
			r := rune(sp.TileNum()) - tileBase + firstChar
			if r == ' ' {
				continue
			}
			tinyfont.DrawChar(d, h.font, int16(sp.X())+off, int16(sp.Y())+baseline+off, r, color.RGBA{A: 0xFF})
		}
	}
}

// layer adapts an indexed overlay to drivers.Displayer. Every pixel set gets
// the current index; the RGBA color is ignored.
type layer struct {
	pix    []byte
	w, h   int
	stride int
	index  uint8
}

var _ drivers.Displayer = (*layer)(nil)

func (l *layer) Size() (x, y int16) { return int16(l.w), int16(l.h) }

func (l *layer) SetPixel(x, y int16, _ color.RGBA) {
	ix, iy := int(x), int(y)
	if ix < 0 || iy < 0 || ix >= l.w || iy >= l.h {
		return
	}
	l.pix[iy*l.stride+ix] = l.index
}

func (l *layer) Display() error { return nil }
