// Package render draws a first-person view of a terrain.Field into a 240×160
// indexed frame.
//
// The renderer marches depth slices from near to far. For each slice it
// projects the terrain under every screen column and fills the column from the
// projected row down to the topmost row already drawn. A per-column occlusion
// buffer keeps farther slices from overdrawing nearer ones, so no per-pixel
// depth buffer is needed.
//
// Everything is fixed point: camera trig comes from the Q8.8 sine table, 1/z
// from the reciprocal table, and the per-column step is the frustum width
// shifted right by 8 rather than divided by 240.
//
// Column fill backend:
//
// By default each column is one byte-wide pixel. The build tag `voxel_packed`
// selects a backend that renders 120 columns two pixels wide, writing each row
// with one 16-bit store. Both backends are deterministic and keep the
// occlusion buffer monotonic.
package render
