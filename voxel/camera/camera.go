// Package camera holds the viewpoint the terrain renderer projects from.
package camera

import (
	"voxelspace/voxel/fixed"
	"voxelspace/voxel/input"
)

// Per-frame control deltas. Frame rate is assumed constant, so these are not
// scaled by elapsed time.
const (
	YawStep     int32       = 1000
	HorizonStep int32       = 10
	Speed       fixed.Fixed = 4

	// NeutralHorizon is the horizon row at which forward flight keeps altitude.
	NeutralHorizon int32 = 100
	// climbDiv divides (horizon - NeutralHorizon) into a per-frame climb.
	climbDiv int32 = 16
)

// Start position.
const (
	StartX       int32 = 512
	StartY       int32 = 800
	StartHeight  int32 = 70
	StartHorizon int32 = 100
)

// Camera is the viewpoint. SinYaw/CosYaw always match Yaw after SetYaw or
// Update.
type Camera struct {
	X, Y    fixed.Fixed
	Height  int32
	Horizon int32
	Yaw     fixed.Angle

	SinYaw fixed.Fixed
	CosYaw fixed.Fixed
}

// New returns a camera at the start position looking along yaw 0.
func New() *Camera {
	c := &Camera{
		X:       fixed.FromInt(StartX),
		Y:       fixed.FromInt(StartY),
		Height:  StartHeight,
		Horizon: StartHorizon,
	}
	c.SetYaw(0)
	return c
}

// SetYaw sets the yaw and refreshes the cached trig.
func (c *Camera) SetYaw(a fixed.Angle) {
	c.Yaw = a
	c.SinYaw, c.CosYaw = fixed.SineCosine(a)
}

// Update applies one frame of held input.
//
// Left/Right turn by YawStep, Up/Down move the horizon by HorizonStep, and
// Forward moves Speed world units along the view direction while climbing or
// sinking by (Horizon-NeutralHorizon)/16. If both buttons of a pair are held,
// Right and Down win.
func (c *Camera) Update(held input.Buttons) {
	var turn, vert int32
	var forward fixed.Fixed

	if held.Has(input.Left) {
		turn = -YawStep
	}
	if held.Has(input.Right) {
		turn = YawStep
	}
	if held.Has(input.Up) {
		vert = -HorizonStep
	}
	if held.Has(input.Down) {
		vert = HorizonStep
	}
	if held.Has(input.Forward) {
		forward = 1
	}

	// Trig is refreshed every frame, turned or not.
	c.SetYaw(c.Yaw - fixed.Angle(turn))
	c.X -= forward * c.SinYaw * Speed
	c.Y -= forward * c.CosYaw * Speed
	c.Horizon -= vert
	c.Height += int32(forward) * (c.Horizon - NeutralHorizon) / climbDiv
}

// Position returns the integer world position.
func (c *Camera) Position() (x, y int32) {
	return fixed.ToInt(c.X), fixed.ToInt(c.Y)
}
