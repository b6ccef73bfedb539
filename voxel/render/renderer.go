package render

import (
	"voxelspace/voxel/camera"
	"voxelspace/voxel/fixed"
	"voxelspace/voxel/terrain"
)

// Columns is the number of rendered columns.
const Columns = Width / columnPixels

const (
	// projectionScale is the screen-space height of one world unit at z=1,
	// before the 1/z scale.
	projectionScale = 128
	// widthShift approximates division by Width in the per-column step.
	widthShift = 8
)

// Renderer draws frames. Create it once; it does not allocate per frame.
type Renderer struct {
	Background uint8

	// OnSlice, if set, is called after every slice with its depth and the
	// occlusion buffer (topmost drawn row per column). The slice must not be
	// modified or retained.
	OnSlice func(z uint32, occlusion []int32)

	ybuf [Columns]int32
}

func New() *Renderer {
	return &Renderer{Background: terrain.Background}
}

// Render clears t and draws the terrain as seen from cam.
func (r *Renderer) Render(t *Target, cam *camera.Camera, f *terrain.Field) {
	t.Clear(r.Background)
	for i := range r.ybuf {
		r.ybuf[i] = Height
	}

	s, c := cam.SinYaw, cam.CosYaw
	for z := uint32(1); z < DrawDistance; z = nextDepth(z) {
		zi := int32(z)

		// Frustum edges at depth z, 90 degree field of view.
		lx := -c*zi - s*zi
		ly := s*zi - c*zi
		rx := c*zi - s*zi
		ry := -s*zi - c*zi

		dx := ((rx - lx) >> widthShift) * columnPixels
		dy := ((ry - ly) >> widthShift) * columnPixels

		lx += cam.X
		ly += cam.Y

		invz := fixed.Reciprocal(z)

		for i := 0; i < Columns; i++ {
			color, h := f.Sample(lx, ly)
			row := projectRow(cam.Height-int32(h), cam.Horizon, invz)
			if row < r.ybuf[i] {
				t.FillColumnRun(i, int(row), int(r.ybuf[i]), color)
				r.ybuf[i] = row
			}
			lx += dx
			ly += dy
		}

		if r.OnSlice != nil {
			r.OnSlice(z, r.ybuf[:])
		}
	}
}

// projectRow returns the screen row of a point dh below the eye at inverse
// depth invz, clamped to the top of the screen.
func projectRow(dh, horizon int32, invz fixed.Fixed) int32 {
	row := ((projectionScale * dh * invz) >> fixed.Shift) + horizon
	if row < 0 {
		row = 0
	}
	return row
}
