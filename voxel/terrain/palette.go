package terrain

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Background is the palette index the renderer clears the frame to.
const Background uint8 = 251

// PaletteFileSize is the size of a palette file: 256 RGB triplets.
const PaletteFileSize = 256 * 3

var ErrPaletteSize = errors.New("terrain: palette must hold 256 RGB triplets")

// Palette maps color indices to RGB565 display colors.
type Palette [256]uint16

// RGB565 packs 8-bit channels into rrrrrggggggbbbbb.
func RGB565(r, g, b uint8) uint16 {
	return uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3)
}

// Set stores an 8-bit RGB color at index i.
func (p *Palette) Set(i uint8, r, g, b uint8) { p[i] = RGB565(r, g, b) }

// ReadPalette reads 256 RGB triplets.
func ReadPalette(r io.Reader) (*Palette, error) {
	var raw [PaletteFileSize]byte
	if _, err := io.ReadFull(r, raw[:]); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: short read", ErrPaletteSize)
		}
		return nil, fmt.Errorf("terrain: read palette: %w", err)
	}
	p := new(Palette)
	for i := 0; i < 256; i++ {
		p.Set(uint8(i), raw[i*3], raw[i*3+1], raw[i*3+2])
	}
	return p, nil
}

// LoadPalette reads a palette file from disk.
func LoadPalette(path string) (*Palette, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("terrain: open %q: %w", path, err)
	}
	defer f.Close()
	return ReadPalette(f)
}
