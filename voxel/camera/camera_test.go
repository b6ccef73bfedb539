package camera

import (
	"testing"

	"voxelspace/voxel/fixed"
	"voxelspace/voxel/input"
)

func TestNewStartState(t *testing.T) {
	c := New()
	if x, y := c.Position(); x != 512 || y != 800 {
		t.Fatalf("Position() = (%d,%d), want (512,800)", x, y)
	}
	if c.Height != 70 || c.Horizon != 100 || c.Yaw != 0 {
		t.Fatalf("got height=%d horizon=%d yaw=%d, want 70 100 0", c.Height, c.Horizon, c.Yaw)
	}
	if c.SinYaw != 0 || c.CosYaw != fixed.One {
		t.Fatalf("trig = (%d,%d), want (0,%d)", c.SinYaw, c.CosYaw, fixed.One)
	}
}

func TestUpdateKeepsTrigInSync(t *testing.T) {
	c := New()
	seq := []input.Buttons{
		input.Left, input.Left, input.Right | input.Forward, 0,
		input.Right, input.Left | input.Right, input.Up | input.Forward, input.Down,
	}
	for i := 0; i < 200; i++ {
		c.Update(seq[i%len(seq)])
		if c.SinYaw != fixed.Sine(c.Yaw) || c.CosYaw != fixed.Cosine(c.Yaw) {
			t.Fatalf("frame %d: trig (%d,%d) != (%d,%d) for yaw %d", i, c.SinYaw, c.CosYaw, fixed.Sine(c.Yaw), fixed.Cosine(c.Yaw), c.Yaw)
		}
	}
}

func TestUpdateTurnAndHorizon(t *testing.T) {
	tests := []struct {
		name        string
		held        input.Buttons
		wantYaw     fixed.Angle
		wantHorizon int32
	}{
		{"none", 0, 0, 100},
		{"left", input.Left, 1000, 100},
		{"right wraps", input.Right, 64536, 100},
		{"left and right", input.Left | input.Right, 64536, 100},
		{"up", input.Up, 0, 110},
		{"down", input.Down, 0, 90},
		{"up and down", input.Up | input.Down, 0, 90},
	}
	for _, tt := range tests {
		c := New()
		c.Update(tt.held)
		if c.Yaw != tt.wantYaw || c.Horizon != tt.wantHorizon {
			t.Errorf("%s: yaw=%d horizon=%d, want %d %d", tt.name, c.Yaw, c.Horizon, tt.wantYaw, tt.wantHorizon)
		}
	}
}

func TestIdleLeavesPositionAndHeight(t *testing.T) {
	c := New()
	c.Horizon = 160
	x, y, h := c.X, c.Y, c.Height
	for i := 0; i < 10; i++ {
		c.Update(input.Left | input.Up)
	}
	if c.X != x || c.Y != y || c.Height != h {
		t.Fatalf("moved without forward: (%d,%d,%d) -> (%d,%d,%d)", x, y, h, c.X, c.Y, c.Height)
	}
}

func TestForwardMovesAlongYaw(t *testing.T) {
	for _, yaw := range []fixed.Angle{0, 8192, fixed.QuarterTurn, 40000, fixed.HalfTurn + 300} {
		c := New()
		c.SetYaw(yaw)
		x0, y0 := c.X, c.Y
		const n = 25
		for i := 0; i < n; i++ {
			c.Update(input.Forward)
		}
		wantX := x0 - n*4*fixed.Sine(yaw)
		wantY := y0 - n*4*fixed.Cosine(yaw)
		if c.X != wantX || c.Y != wantY {
			t.Errorf("yaw %d: pos (%d,%d), want (%d,%d)", yaw, c.X, c.Y, wantX, wantY)
		}
		if c.Height != StartHeight {
			t.Errorf("yaw %d: height %d at neutral horizon, want %d", yaw, c.Height, StartHeight)
		}
	}
}

func TestForwardClimbsWithHorizon(t *testing.T) {
	c := New()
	c.Horizon = 140
	c.Update(input.Forward)
	if c.Height != 72 {
		t.Fatalf("Height = %d, want 72", c.Height)
	}
	// Horizon moves before the climb is applied.
	c.Update(input.Forward | input.Down)
	if c.Horizon != 130 || c.Height != 73 {
		t.Fatalf("horizon=%d height=%d, want 130 73", c.Horizon, c.Height)
	}
	c.Horizon = 80
	c.Update(input.Forward)
	if c.Height != 72 {
		t.Fatalf("Height = %d, want 72 after descent", c.Height)
	}
}
