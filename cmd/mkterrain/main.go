//go:build !tinygo

// Command mkterrain interleaves a colormap and a heightmap into a terrain
// file, and optionally writes the colormap's palette.
//
//	mkterrain colormap.png heightmap.png out.bin [out.pal]
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"voxelspace/voxel/terrain"
)

func main() {
	strict := flag.Bool("strict", true, "Require the engine's 1024x1024 field size.")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: mkterrain [-strict=false] colormap.png heightmap.png out.bin [out.pal]")
		flag.PrintDefaults()
	}
	flag.Parse()

	args := flag.Args()
	if len(args) != 3 && len(args) != 4 {
		flag.Usage()
		os.Exit(2)
	}
	if err := run(args[0], args[1], args[2], optional(args, 3), *strict); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func optional(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

func run(cmapPath, hmapPath, outPath, palPath string, strict bool) error {
	cimg, err := decodePNG(cmapPath)
	if err != nil {
		return err
	}
	himg, err := decodePNG(hmapPath)
	if err != nil {
		return err
	}

	cmap, ok := cimg.(*image.Paletted)
	if !ok {
		return fmt.Errorf("%s: colormap must be an 8-bit paletted image", cmapPath)
	}
	hmap, ok := himg.(*image.Gray)
	if !ok {
		return fmt.Errorf("%s: heightmap must be an 8-bit grayscale image", hmapPath)
	}
	if err := checkSize(cmapPath, cmap.Bounds()); err != nil {
		return err
	}
	if err := checkSize(hmapPath, hmap.Bounds()); err != nil {
		return err
	}
	if strict && (cmap.Bounds().Dx() != terrain.Size || cmap.Bounds().Dy() != terrain.Size) {
		return fmt.Errorf("%s: engine needs %dx%d, got %dx%d", cmapPath,
			terrain.Size, terrain.Size, cmap.Bounds().Dx(), cmap.Bounds().Dy())
	}

	data, err := interleave(cmap, hmap)
	if err != nil {
		return err
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("write %q: %w", outPath, err)
	}
	if palPath == "" {
		return nil
	}
	if err := os.WriteFile(palPath, paletteBytes(cmap.Palette), 0o644); err != nil {
		return fmt.Errorf("write %q: %w", palPath, err)
	}
	return nil
}

func decodePNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

func isPow2(n int) bool { return n > 0 && n&(n-1) == 0 }

func checkSize(path string, r image.Rectangle) error {
	if !isPow2(r.Dx()) {
		return fmt.Errorf("%s: width must be a power of two", path)
	}
	if !isPow2(r.Dy()) {
		return fmt.Errorf("%s: height must be a power of two", path)
	}
	return nil
}

var errDimensions = errors.New("heightmap and colormap must have the same dimensions")

// interleave writes (color, height) byte pairs row by row.
func interleave(cmap *image.Paletted, hmap *image.Gray) ([]byte, error) {
	cb, hb := cmap.Bounds(), hmap.Bounds()
	if cb.Dx() != hb.Dx() || cb.Dy() != hb.Dy() {
		return nil, errDimensions
	}
	w, h := cb.Dx(), cb.Dy()
	out := make([]byte, 0, w*h*2)
	for y := 0; y < h; y++ {
		crow := cmap.Pix[y*cmap.Stride : y*cmap.Stride+w]
		hrow := hmap.Pix[y*hmap.Stride : y*hmap.Stride+w]
		for x := 0; x < w; x++ {
			out = append(out, crow[x], hrow[x])
		}
	}
	return out, nil
}

// paletteBytes flattens p into 256 RGB triplets. Missing entries are black.
func paletteBytes(p color.Palette) []byte {
	out := make([]byte, terrain.PaletteFileSize)
	for i, c := range p {
		if i >= 256 {
			break
		}
		rgba := color.RGBAModel.Convert(c).(color.RGBA)
		out[i*3+0] = rgba.R
		out[i*3+1] = rgba.G
		out[i*3+2] = rgba.B
	}
	return out
}
