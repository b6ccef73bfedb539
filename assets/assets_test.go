package assets

import (
	"testing"
	"unsafe"

	"voxelspace/voxel/terrain"
)

func TestTerrain(t *testing.T) {
	f, p, err := Terrain()
	if err != nil {
		t.Fatalf("Terrain: %v", err)
	}
	if &f.Bytes()[0] != unsafe.StringData(fieldData) {
		t.Fatalf("field copied out of the embedded data")
	}
	if len(paletteData) != terrain.PaletteFileSize {
		t.Fatalf("palette is %d bytes, want %d", len(paletteData), terrain.PaletteFileSize)
	}
	if p[terrain.Background] == 0 {
		t.Fatalf("sky color is black")
	}
}

func TestTerrainNeverUsesBackground(t *testing.T) {
	f, _, err := Terrain()
	if err != nil {
		t.Fatalf("Terrain: %v", err)
	}
	b := f.Bytes()
	for i := 0; i < len(b); i += 2 {
		if b[i] == terrain.Background {
			t.Fatalf("cell %d uses the background index", i/2)
		}
	}
}
