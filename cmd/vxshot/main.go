//go:build !tinygo

// Command vxshot renders frames without a window and writes the last one as
// a PNG, scaled up with nearest-neighbour sampling.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"

	"golang.org/x/image/draw"

	"voxelspace/app"
	"voxelspace/hal"
)

func main() {
	var cfg app.Config
	out := flag.String("o", "shot.png", "Output PNG path.")
	scale := flag.Int("scale", 3, "Integer upscale factor.")
	flag.Uint64Var(&cfg.MaxFrames, "frames", 1, "Frames to run before the snapshot.")
	flag.StringVar(&cfg.TerrainPath, "terrain", "", "Terrain file (1024x1024 color/height pairs).")
	flag.StringVar(&cfg.PalettePath, "palette", "", "Palette file (256 RGB triplets).")
	flag.Int64Var(&cfg.Seed, "seed", 1, "Seed for the generated landscape.")
	flag.StringVar(&cfg.ScriptPath, "script", "", "Lua input script defining input(frame).")
	flag.BoolVar(&cfg.HUD, "hud", false, "Draw the diagnostics overlay.")
	flag.Parse()

	img, err := shoot(hal.New(), cfg, *scale)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	if err := writePNG(*out, img); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// shoot runs cfg.MaxFrames frames on h and returns the visible page scaled
// by scale.
func shoot(h hal.HAL, cfg app.Config, scale int) (image.Image, error) {
	if cfg.MaxFrames == 0 {
		return nil, errors.New("vxshot: need at least one frame")
	}
	if scale < 1 {
		return nil, fmt.Errorf("vxshot: invalid scale %d", scale)
	}

	step := app.NewWithConfig(h, cfg)
	for {
		err := step()
		if errors.Is(err, hal.ErrStopped) {
			break
		}
		if err != nil {
			return nil, err
		}
	}

	src, err := hal.Snapshot(h.Display().Framebuffer())
	if err != nil {
		return nil, fmt.Errorf("vxshot: %w", err)
	}
	if scale == 1 {
		return src, nil
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst, nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %q: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %q: %w", path, err)
	}
	return f.Close()
}
