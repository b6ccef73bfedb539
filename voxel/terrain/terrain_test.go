package terrain

import (
	"bytes"
	"errors"
	"testing"
	"unsafe"

	"voxelspace/voxel/fixed"
)

func TestSampleIsToroidal(t *testing.T) {
	f, _ := Generate(7)
	period := fixed.FromInt(Size)
	points := [][2]fixed.Fixed{
		{fixed.FromInt(512), fixed.FromInt(800)},
		{0, 0},
		{fixed.FromInt(1023) + fixed.One/2, fixed.FromInt(3)},
		{-fixed.FromInt(5), fixed.FromInt(17)},
	}
	for _, p := range points {
		c0, h0 := f.Sample(p[0], p[1])
		c1, h1 := f.Sample(p[0]+period, p[1])
		c2, h2 := f.Sample(p[0], p[1]-period)
		if c0 != c1 || h0 != h1 || c0 != c2 || h0 != h2 {
			t.Fatalf("Sample(%d,%d) not periodic: (%d,%d) (%d,%d) (%d,%d)", p[0], p[1], c0, h0, c1, h1, c2, h2)
		}
	}
}

func TestIndexWraps(t *testing.T) {
	if got := Index(-fixed.One, 0); got != Mask {
		t.Fatalf("Index(-1,0) = %d, want %d", got, Mask)
	}
	if got := Index(fixed.FromInt(3), fixed.FromInt(Size+2)); got != 2*Size+3 {
		t.Fatalf("Index(3,1026) = %d, want %d", got, 2*Size+3)
	}
}

func TestAtMatchesSample(t *testing.T) {
	f, _ := Generate(3)
	for _, xy := range [][2]int{{0, 0}, {5, 9}, {1023, 1023}, {-1, 2048}} {
		c0, h0 := f.At(xy[0], xy[1])
		c1, h1 := f.Sample(fixed.FromInt(int32(xy[0])), fixed.FromInt(int32(xy[1])))
		if c0 != c1 || h0 != h1 {
			t.Fatalf("At(%d,%d) = (%d,%d), Sample = (%d,%d)", xy[0], xy[1], c0, h0, c1, h1)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a, pa := Generate(42)
	b, pb := Generate(42)
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Fatalf("Generate(42) differs between calls")
	}
	if *pa != *pb {
		t.Fatalf("palette differs between calls")
	}
	c, _ := Generate(43)
	if bytes.Equal(a.Bytes(), c.Bytes()) {
		t.Fatalf("Generate(42) == Generate(43)")
	}
}

func TestGenerateNeverUsesBackground(t *testing.T) {
	f, _ := Generate(1)
	b := f.Bytes()
	var minH uint8 = 255
	for i := 0; i < len(b); i += 2 {
		if b[i] == Background {
			t.Fatalf("cell %d uses the background index", i/2)
		}
		minH = min(minH, b[i+1])
	}
	if minH < seaLevel {
		t.Fatalf("min height = %d, want >= sea level %d", minH, seaLevel)
	}
}

func TestFromBytesSize(t *testing.T) {
	if _, err := FromBytes(make([]byte, 10)); !errors.Is(err, ErrFieldSize) {
		t.Fatalf("FromBytes(short) err = %v, want ErrFieldSize", err)
	}
	f, err := FromBytes(Flat(9, 4).Bytes())
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	if c, h := f.At(100, 200); c != 9 || h != 4 {
		t.Fatalf("At = (%d,%d), want (9,4)", c, h)
	}
}

func TestFromStringSharesStorage(t *testing.T) {
	if _, err := FromString("short"); !errors.Is(err, ErrFieldSize) {
		t.Fatalf("FromString(short) err = %v, want ErrFieldSize", err)
	}
	s := string(Flat(9, 4).Bytes())
	f, err := FromString(s)
	if err != nil {
		t.Fatalf("FromString: %v", err)
	}
	if &f.Bytes()[0] != unsafe.StringData(s) {
		t.Fatalf("FromString copied the data")
	}
	if c, h := f.At(-1, 1024); c != 9 || h != 4 {
		t.Fatalf("At = (%d,%d), want (9,4)", c, h)
	}
}

func TestReadField(t *testing.T) {
	src := Flat(1, 2).Bytes()
	f, err := ReadField(bytes.NewReader(src))
	if err != nil {
		t.Fatalf("ReadField: %v", err)
	}
	if !bytes.Equal(f.Bytes(), src) {
		t.Fatalf("ReadField content mismatch")
	}
	if _, err := ReadField(bytes.NewReader(src[:100])); !errors.Is(err, ErrFieldSize) {
		t.Fatalf("ReadField(short) err = %v, want ErrFieldSize", err)
	}
	long := append(append([]byte{}, src...), 0)
	if _, err := ReadField(bytes.NewReader(long)); !errors.Is(err, ErrFieldSize) {
		t.Fatalf("ReadField(long) err = %v, want ErrFieldSize", err)
	}
}

func TestReadPalette(t *testing.T) {
	raw := make([]byte, PaletteFileSize)
	raw[0], raw[1], raw[2] = 255, 255, 255
	raw[3*251], raw[3*251+1], raw[3*251+2] = 255, 0, 0
	p, err := ReadPalette(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("ReadPalette: %v", err)
	}
	if p[0] != 0xFFFF {
		t.Fatalf("p[0] = %#04x, want 0xffff", p[0])
	}
	if p[251] != 0xF800 {
		t.Fatalf("p[251] = %#04x, want 0xf800", p[251])
	}
	if _, err := ReadPalette(bytes.NewReader(raw[:10])); !errors.Is(err, ErrPaletteSize) {
		t.Fatalf("ReadPalette(short) err = %v, want ErrPaletteSize", err)
	}
}
