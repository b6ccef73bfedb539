// Command mksine writes the Q8.8 sine table used by voxel/fixed.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"math"
	"os"
)

func main() {
	out := flag.String("o", "sine_table.go", "Output file.")
	n := flag.Int("n", 320, "Number of table entries.")
	flag.Parse()

	src, err := generate(*n)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, src, 0o644); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func generate(n int) ([]byte, error) {
	if n < 256 {
		return nil, fmt.Errorf("mksine: table needs at least 256 entries, got %d", n)
	}
	var b bytes.Buffer
	b.WriteString("// Code generated by mksine; DO NOT EDIT.\n\n")
	b.WriteString("package fixed\n\n")
	fmt.Fprintf(&b, "// sineTable holds sin(x*pi/128) in Q8.8, truncated toward zero, for x in [0,%d).\n", n)
	b.WriteString("var sineTable = [sineTableLen]Fixed8{\n")
	for x := 0; x < n; x++ {
		if x%8 == 0 {
			b.WriteByte('\t')
		}
		fmt.Fprintf(&b, "%d,", sineQ88(x))
		if x%8 == 7 || x == n-1 {
			b.WriteByte('\n')
		} else {
			b.WriteByte(' ')
		}
	}
	b.WriteString("}\n")
	return format.Source(b.Bytes())
}

// sineQ88 matches a (s16)(v * 256) cast: truncation toward zero.
func sineQ88(x int) int16 {
	return int16(math.Sin(float64(x)*math.Pi/128) * 256)
}
