package terrain

import "math/rand"

// Palette layout used by Generate.
const (
	waterFirst = 0
	waterLen   = 48
	sandFirst  = waterFirst + waterLen
	sandLen    = 16
	grassFirst = sandFirst + sandLen
	grassLen   = 80
	rockFirst  = grassFirst + grassLen
	rockLen    = 64
	snowFirst  = rockFirst + rockLen
	snowLen    = 40

	seaLevel  = 56
	sandLevel = 64
	rockLevel = 150
	snowLevel = 205

	roughness = 0.55
)

type band struct {
	first, n   int
	low, high  float64
	dark, lite [3]uint8
}

var bands = [...]band{
	{first: waterFirst, n: waterLen, low: 0, high: seaLevel, dark: [3]uint8{8, 24, 72}, lite: [3]uint8{40, 110, 170}},
	{first: sandFirst, n: sandLen, low: seaLevel, high: sandLevel, dark: [3]uint8{150, 130, 80}, lite: [3]uint8{230, 210, 150}},
	{first: grassFirst, n: grassLen, low: sandLevel, high: rockLevel, dark: [3]uint8{20, 60, 16}, lite: [3]uint8{120, 180, 60}},
	{first: rockFirst, n: rockLen, low: rockLevel, high: snowLevel, dark: [3]uint8{60, 52, 48}, lite: [3]uint8{170, 160, 150}},
	{first: snowFirst, n: snowLen, low: snowLevel, high: 256, dark: [3]uint8{170, 180, 200}, lite: [3]uint8{255, 255, 255}},
}

// Generate builds a deterministic toroidal landscape and a palette for it.
//
// Heights come from diamond-square midpoint displacement on the 1024×1024
// torus, so the field tiles without seams. Colors are picked from height bands
// and shaded by the local slope. Water is flattened to sea level.
func Generate(seed int64) (*Field, *Palette) {
	rng := rand.New(rand.NewSource(seed))
	h := diamondSquare(rng)

	cells := make([]byte, FileSize)
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			v := h[y*Size+x]
			slope := v - h[((y-1)&Mask)*Size+((x-1)&Mask)]
			color := colorFor(v, slope)
			height := v
			if height < seaLevel {
				height = seaLevel
			}
			i := (y*Size + x) * 2
			cells[i] = color
			cells[i+1] = uint8(height)
		}
	}
	return &Field{cells: cells}, generatedPalette()
}

func diamondSquare(rng *rand.Rand) []float64 {
	h := make([]float64, Size*Size)
	at := func(x, y int) float64 { return h[(y&Mask)*Size+(x&Mask)] }

	amp := 1.0
	for step := Size; step > 1; step /= 2 {
		half := step / 2
		for y := 0; y < Size; y += step {
			for x := 0; x < Size; x += step {
				avg := (at(x, y) + at(x+step, y) + at(x, y+step) + at(x+step, y+step)) / 4
				h[(y+half)*Size+(x+half)] = avg + (rng.Float64()*2-1)*amp
			}
		}
		for y := 0; y < Size; y += half {
			x0 := half
			if (y/half)%2 == 1 {
				x0 = 0
			}
			for x := x0; x < Size; x += step {
				avg := (at(x-half, y) + at(x+half, y) + at(x, y-half) + at(x, y+half)) / 4
				h[y*Size+x] = avg + (rng.Float64()*2-1)*amp
			}
		}
		amp *= roughness
	}

	lo, hi := h[0], h[0]
	for _, v := range h {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}
	for i, v := range h {
		h[i] = (v - lo) / span * 255
	}
	return h
}

func colorFor(v, slope float64) uint8 {
	for _, b := range bands {
		if v >= b.high {
			continue
		}
		t := (v - b.low) / (b.high - b.low)
		if b.first != waterFirst {
			t += slope / 24
		}
		idx := int(t * float64(b.n))
		idx = max(0, min(b.n-1, idx))
		return uint8(b.first + idx)
	}
	last := bands[len(bands)-1]
	return uint8(last.first + last.n - 1)
}

func generatedPalette() *Palette {
	p := new(Palette)
	for _, b := range bands {
		for i := 0; i < b.n; i++ {
			t := float64(i) / float64(b.n-1)
			p.Set(uint8(b.first+i), lerp(b.dark[0], b.lite[0], t), lerp(b.dark[1], b.lite[1], t), lerp(b.dark[2], b.lite[2], t))
		}
	}
	// Sky.
	for i := snowFirst + snowLen; i < 256; i++ {
		p.Set(uint8(i), 110, 160, 225)
	}
	p.Set(Background, 135, 190, 240)
	return p
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
}
