package app

import (
	"errors"
	"fmt"

	"voxelspace/voxel/terrain"
)

var errPaletteRequired = errors.New("app: terrain and palette must be given together")

// loadAssets returns the field and palette for cfg and a description of
// where they came from.
func loadAssets(cfg Config) (*terrain.Field, *terrain.Palette, string, error) {
	if cfg.Field != nil || cfg.Palette != nil {
		if cfg.Field == nil || cfg.Palette == nil {
			return nil, nil, "", errPaletteRequired
		}
		return cfg.Field, cfg.Palette, "built-in", nil
	}
	if cfg.TerrainPath == "" && cfg.PalettePath == "" {
		f, p := terrain.Generate(cfg.Seed)
		return f, p, fmt.Sprintf("generated seed=%d", cfg.Seed), nil
	}
	if cfg.TerrainPath == "" || cfg.PalettePath == "" {
		return nil, nil, "", errPaletteRequired
	}

	f, err := terrain.Load(cfg.TerrainPath)
	if err != nil {
		return nil, nil, "", fmt.Errorf("app: %w", err)
	}
	p, err := terrain.LoadPalette(cfg.PalettePath)
	if err != nil {
		return nil, nil, "", fmt.Errorf("app: %w", err)
	}
	return f, p, cfg.TerrainPath + " + " + cfg.PalettePath, nil
}
