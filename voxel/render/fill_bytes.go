//go:build !voxel_packed

package render

// columnPixels is the on-screen width of one rendered column.
const columnPixels = 1

// FillColumnRun writes c into rows [top, bottom) of column col.
//
// No clipping is done; the renderer guarantees 0 <= top <= bottom <= Height.
func (t *Target) FillColumnRun(col, top, bottom int, c uint8) {
	off := top*t.Stride + col
	for y := top; y < bottom; y++ {
		t.Pix[off] = c
		off += t.Stride
	}
}
