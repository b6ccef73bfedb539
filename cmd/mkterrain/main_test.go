//go:build !tinygo

package main

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"voxelspace/voxel/terrain"
)

func testMaps(w, h int) (*image.Paletted, *image.Gray) {
	pal := color.Palette{color.RGBA{A: 0xFF}, color.RGBA{R: 0xFF, A: 0xFF}, color.RGBA{G: 0x80, B: 0x40, A: 0xFF}}
	cmap := image.NewPaletted(image.Rect(0, 0, w, h), pal)
	hmap := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cmap.SetColorIndex(x, y, uint8((x+y)%len(pal)))
			hmap.SetGray(x, y, color.Gray{Y: uint8(x*16 + y)})
		}
	}
	return cmap, hmap
}

func TestInterleave(t *testing.T) {
	cmap, hmap := testMaps(4, 2)
	got, err := interleave(cmap, hmap)
	if err != nil {
		t.Fatalf("interleave: %v", err)
	}
	want := []byte{
		0, 0, 1, 16, 2, 32, 0, 48,
		1, 1, 2, 17, 0, 33, 1, 49,
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("interleave = %v, want %v", got, want)
	}
}

func TestInterleaveDimensionMismatch(t *testing.T) {
	cmap, _ := testMaps(4, 4)
	_, hmap := testMaps(4, 2)
	if _, err := interleave(cmap, hmap); !errors.Is(err, errDimensions) {
		t.Fatalf("err = %v, want errDimensions", err)
	}
}

func TestPaletteBytes(t *testing.T) {
	cmap, _ := testMaps(1, 1)
	b := paletteBytes(cmap.Palette)
	if len(b) != terrain.PaletteFileSize {
		t.Fatalf("len = %d, want %d", len(b), terrain.PaletteFileSize)
	}
	if b[3] != 0xFF || b[4] != 0 || b[7] != 0x80 || b[8] != 0x40 {
		t.Fatalf("palette bytes = %v", b[:9])
	}
	if b[9] != 0 || b[767] != 0 {
		t.Fatalf("missing entries not black")
	}
}

func TestIsPow2(t *testing.T) {
	for n, want := range map[int]bool{0: false, 1: true, 2: true, 3: false, 1024: true, 1000: false} {
		if got := isPow2(n); got != want {
			t.Errorf("isPow2(%d) = %v, want %v", n, got, want)
		}
	}
}

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	cmap, hmap := testMaps(8, 4)
	cpath := filepath.Join(dir, "c.png")
	hpath := filepath.Join(dir, "h.png")
	writePNG(t, cpath, cmap)
	writePNG(t, hpath, hmap)

	out := filepath.Join(dir, "out.bin")
	pal := filepath.Join(dir, "out.pal")
	if err := run(cpath, hpath, out, pal, false); err != nil {
		t.Fatalf("run: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(data) != 8*4*2 {
		t.Fatalf("out.bin has %d bytes, want %d", len(data), 8*4*2)
	}
	p, err := terrain.LoadPalette(pal)
	if err != nil {
		t.Fatalf("LoadPalette: %v", err)
	}
	if p[1] != terrain.RGB565(0xFF, 0, 0) {
		t.Fatalf("palette[1] = %#04x, want red", p[1])
	}

	err = run(cpath, hpath, out, "", true)
	if err == nil || !strings.Contains(err.Error(), "engine needs 1024x1024") {
		t.Fatalf("strict run = %v, want a size error", err)
	}
}

func TestRunRejectsWrongKinds(t *testing.T) {
	dir := t.TempDir()
	cmap, hmap := testMaps(4, 4)
	cpath := filepath.Join(dir, "c.png")
	hpath := filepath.Join(dir, "h.png")
	writePNG(t, cpath, cmap)
	writePNG(t, hpath, hmap)
	out := filepath.Join(dir, "out.bin")

	if err := run(hpath, hpath, out, "", false); err == nil || !strings.Contains(err.Error(), "paletted") {
		t.Fatalf("gray colormap: err = %v", err)
	}
	if err := run(cpath, cpath, out, "", false); err == nil || !strings.Contains(err.Error(), "grayscale") {
		t.Fatalf("paletted heightmap: err = %v", err)
	}

	odd := filepath.Join(dir, "odd.png")
	writePNG(t, odd, image.NewPaletted(image.Rect(0, 0, 3, 4), cmap.Palette))
	if err := run(odd, hpath, out, "", false); err == nil || !strings.Contains(err.Error(), "power of two") {
		t.Fatalf("odd width: err = %v", err)
	}
}
