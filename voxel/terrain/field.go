// Package terrain holds the read-only height/color field the renderer samples
// and the palette that maps its color indices to display colors.
package terrain

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unsafe"

	"voxelspace/voxel/fixed"
)

const (
	// Size is the edge length of the field in cells.
	Size = 1024
	// Mask wraps a cell coordinate onto the torus.
	Mask = Size - 1
	// FileSize is the size of a terrain file: one (color, height) pair per cell.
	FileSize = Size * Size * 2
)

var ErrFieldSize = errors.New("terrain: field data must be 1024x1024 color/height pairs")

// Field is an immutable 1024×1024 toroidal grid of (color, height) samples.
//
// Cells are stored interleaved, row-major: cells[2*i] is the palette index and
// cells[2*i+1] the height of cell i = y*Size + x.
type Field struct {
	cells []byte
}

// FromBytes wraps b as a field. b must hold exactly FileSize bytes and must not
// be modified afterwards.
func FromBytes(b []byte) (*Field, error) {
	if len(b) != FileSize {
		return nil, fmt.Errorf("%w: got %d bytes", ErrFieldSize, len(b))
	}
	return &Field{cells: b}, nil
}

// FromString wraps the bytes of s as a field without copying them. On TinyGo
// an embedded string stays in flash, so the field costs no RAM.
func FromString(s string) (*Field, error) {
	if len(s) != FileSize {
		return nil, fmt.Errorf("%w: got %d bytes", ErrFieldSize, len(s))
	}
	return &Field{cells: unsafe.Slice(unsafe.StringData(s), len(s))}, nil
}

// ReadField reads a terrain file from r.
func ReadField(r io.Reader) (*Field, error) {
	b := make([]byte, FileSize)
	if _, err := io.ReadFull(r, b); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: short read", ErrFieldSize)
		}
		return nil, fmt.Errorf("terrain: read field: %w", err)
	}
	var extra [1]byte
	if n, _ := r.Read(extra[:]); n != 0 {
		return nil, fmt.Errorf("%w: trailing data", ErrFieldSize)
	}
	return &Field{cells: b}, nil
}

// Load reads a terrain file from disk.
func Load(path string) (*Field, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("terrain: open %q: %w", path, err)
	}
	defer f.Close()
	return ReadField(f)
}

// Flat returns a field with the same color and height in every cell.
func Flat(color, height uint8) *Field {
	b := make([]byte, FileSize)
	for i := 0; i < len(b); i += 2 {
		b[i] = color
		b[i+1] = height
	}
	return &Field{cells: b}
}

// Index returns the cell index for a Q16.16 world position, wrapping each axis
// modulo Size.
func Index(x, y fixed.Fixed) uint32 {
	return (uint32(y>>fixed.Shift)&Mask)*Size + (uint32(x>>fixed.Shift) & Mask)
}

// Sample returns the cell under the Q16.16 world position (x, y).
func (f *Field) Sample(x, y fixed.Fixed) (color, height uint8) {
	i := Index(x, y) * 2
	return f.cells[i], f.cells[i+1]
}

// At returns the cell at integer coordinates, wrapped onto the torus.
func (f *Field) At(x, y int) (color, height uint8) {
	i := ((y&Mask)*Size + (x & Mask)) * 2
	return f.cells[i], f.cells[i+1]
}

// Bytes exposes the raw interleaved cells. Callers must not modify them.
func (f *Field) Bytes() []byte { return f.cells }
