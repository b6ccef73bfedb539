package app

import "voxelspace/voxel/terrain"

// Config selects assets, input and diagnostics for a run.
type Config struct {
	// Field and Palette are preloaded assets. When Field is set it is used
	// instead of TerrainPath and generation, and Palette must be set too.
	Field   *terrain.Field
	Palette *terrain.Palette

	// TerrainPath and PalettePath name a 2 MiB field file and a 768-byte
	// palette. Both empty means a generated landscape.
	TerrainPath string
	PalettePath string
	// Seed drives the generated landscape. Every value, 0 included, is a
	// distinct landscape.
	Seed int64

	// ScriptPath names a Lua file defining input(frame). Empty reads the
	// keyboard.
	ScriptPath string

	// HUD shows the diagnostics overlay at start. Select toggles it.
	HUD bool
	// StatsEvery logs frame statistics every N frames. 0 disables.
	StatsEvery uint64

	// FrameTicks is the hal tick count between frames in Run.
	FrameTicks uint64
	// MaxFrames stops the step function after N frames. 0 runs forever.
	MaxFrames uint64
}

const defaultFrameTicks = 16

func (c Config) withDefaults() Config {
	if c.FrameTicks == 0 {
		c.FrameTicks = defaultFrameTicks
	}
	return c
}
