//go:build voxel_packed

package render

import "encoding/binary"

// columnPixels is the on-screen width of one rendered column.
const columnPixels = 2

// FillColumnRun writes c into rows [top, bottom) of the two-pixel column col,
// one 16-bit store per row.
//
// No clipping is done; the renderer guarantees 0 <= top <= bottom <= Height.
func (t *Target) FillColumnRun(col, top, bottom int, c uint8) {
	pair := uint16(c) | uint16(c)<<8
	off := top*t.Stride + col*2
	for y := top; y < bottom; y++ {
		binary.LittleEndian.PutUint16(t.Pix[off:off+2], pair)
		off += t.Stride
	}
}
