package app

import (
	"voxelspace/hal"
	"voxelspace/internal/buildinfo"
)

// splash shows a status message while the engine starts.
func splash(fb hal.Framebuffer, msg string) {
	drawTextScreen(fb, []string{"voxelspace " + buildinfo.Short(), "", msg})
}
