package fixed

// Sine returns sin(a*2π/65536) in Q16.16.
//
// The lookup uses the top 8 bits of the angle and widens the Q8.8 table entry
// by 8 bits. There is no interpolation: angular resolution is 1/256 turn and
// amplitude resolution is 1/256.
func Sine(a Angle) Fixed {
	s := Fixed(sineTable[(a>>8)&0xFF])
	return s << shift8
}

// Cosine returns cos(a*2π/65536) in Q16.16, computed as Sine(a + QuarterTurn).
func Cosine(a Angle) Fixed {
	return Sine(a + QuarterTurn)
}

// SineCosine returns both Sine(a) and Cosine(a).
func SineCosine(a Angle) (s, c Fixed) {
	return Sine(a), Cosine(a)
}
