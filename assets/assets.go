// Package assets carries the terrain and palette linked into device images.
//
// terrain.bin and terrain.pal are in the format cmd/mkterrain writes.
package assets

import (
	_ "embed"
	"fmt"
	"strings"

	"voxelspace/voxel/terrain"
)

//go:embed terrain.bin
var fieldData string

//go:embed terrain.pal
var paletteData string

// Terrain returns the built-in field and its palette. The field aliases the
// embedded data, which TinyGo keeps in flash.
func Terrain() (*terrain.Field, *terrain.Palette, error) {
	f, err := terrain.FromString(fieldData)
	if err != nil {
		return nil, nil, fmt.Errorf("assets: %w", err)
	}
	p, err := terrain.ReadPalette(strings.NewReader(paletteData))
	if err != nil {
		return nil, nil, fmt.Errorf("assets: %w", err)
	}
	return f, p, nil
}
