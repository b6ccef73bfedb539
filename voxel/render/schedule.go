package render

import "voxelspace/voxel/fixed"

const (
	// DrawDistance is the exclusive upper bound of the slice depth.
	DrawDistance uint32 = 512

	// SliceCount is the number of slices per frame at DrawDistance:
	// 64 at step 2 (z=1..127), 32 at step 4 (z=129..253), 32 at step 8
	// (z=257..505).
	SliceCount = 128
)

// Every slice depth must index the reciprocal table.
const _ = uint32(fixed.ReciprocalLen) - DrawDistance

// nextDepth advances a slice depth. Spacing grows with distance to bound the
// work per frame.
func nextDepth(z uint32) uint32 {
	switch {
	case z < 128:
		return z + 2
	case z < 256:
		return z + 4
	default:
		return z + 8
	}
}

// Schedule returns the slice depths of one frame, nearest first.
func Schedule() []uint32 {
	zs := make([]uint32, 0, SliceCount)
	for z := uint32(1); z < DrawDistance; z = nextDepth(z) {
		zs = append(zs, z)
	}
	return zs
}
