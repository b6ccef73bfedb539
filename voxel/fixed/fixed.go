// Package fixed provides the fixed-point arithmetic used by the terrain renderer.
//
// Positions and most intermediate values are signed Q16.16 (Fixed). The sine
// table is stored in Q8.8 (Fixed8). Angles are 16-bit: 65536 units per turn,
// and all angle arithmetic wraps.
//
// Overflow in intermediate products wraps like any Go integer. The renderer
// samples a toroidal height field, so a wrapped coordinate still lands on a
// valid cell.
package fixed

//go:generate go run ../../cmd/mksine -o sine_table.go

// Fixed is a signed Q16.16 fixed-point number.
type Fixed = int32

// Fixed8 is a signed Q8.8 fixed-point number.
type Fixed8 = int16

// Angle is a 16-bit angle; 65536 units make one full turn.
type Angle uint16

const (
	Shift        = 16
	One    Fixed = 1 << Shift
	shift8       = 8

	// QuarterTurn is 90 degrees.
	QuarterTurn Angle = 1 << 14
	// HalfTurn is 180 degrees.
	HalfTurn Angle = 1 << 15
)

const sineTableLen = 320

// FromInt converts an integer to Q16.16.
func FromInt(v int32) Fixed { return v << Shift }

// ToInt truncates a Q16.16 value toward negative infinity.
func ToInt(v Fixed) int32 { return v >> Shift }
