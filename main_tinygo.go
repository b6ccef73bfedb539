//go:build tinygo

package main

import (
	"voxelspace/app"
	"voxelspace/assets"
	"voxelspace/hal"
)

func main() {
	h := hal.New()
	field, pal, err := assets.Terrain()
	if err != nil {
		if l := h.Logger(); l != nil {
			l.WriteLineString(err.Error())
		}
		select {}
	}
	app.RunWithConfig(h, app.Config{Field: field, Palette: pal, HUD: true})
}
