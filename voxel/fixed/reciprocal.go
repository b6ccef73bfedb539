package fixed

import "fmt"

// ReciprocalLen is the number of entries in the reciprocal table. Valid
// arguments to Reciprocal are 1..ReciprocalLen-1.
const ReciprocalLen = 512

// reciprocalTable[z] = floor(65536/z). Entry 0 is unused.
var reciprocalTable = buildReciprocalTable()

func buildReciprocalTable() (t [ReciprocalLen]uint32) {
	for z := uint32(1); z < ReciprocalLen; z++ {
		t[z] = uint32(One) / z
	}
	return t
}

// Reciprocal returns 1/z in Q16.16 for z in [1, ReciprocalLen).
//
// z outside that range is a caller bug and panics.
func Reciprocal(z uint32) Fixed {
	if z == 0 || z >= ReciprocalLen {
		panic(fmt.Sprintf("fixed: reciprocal of %d out of range [1,%d)", z, ReciprocalLen))
	}
	return Fixed(reciprocalTable[z])
}
