package cards

const aceBit = 1 << Ace

// TopBit keeps only the most significant set bit of x. TopBit(0) is 0.
func TopBit(x uint16) uint16 {
	x |= x >> 1
	x |= x >> 2
	x |= x >> 4
	x |= x >> 8
	return x - (x >> 1)
}

// Max returns the larger of a and b without branching.
func Max(a, b uint32) uint32 {
	// all ones when a < b; the 64-bit difference only goes negative then
	lt := -uint32((uint64(a) - uint64(b)) >> 63)
	return a ^ ((a ^ b) & lt)
}

// Min returns the smaller of a and b without branching.
func Min(a, b uint32) uint32 {
	gt := -uint32((uint64(b) - uint64(a)) >> 63)
	return a ^ ((a ^ b) & gt)
}

// rotateAceLow shifts the ranks up one position and copies the Ace into
// bit 0, so the wheel lines up as five adjacent bits like any other
// straight. The result spans 14 bits.
func rotateAceLow(x uint16) uint16 {
	return x<<1 | (x&aceBit)>>Ace
}

// topN keeps the n highest set bits of x.
func topN(x uint16, n int) uint16 {
	var out uint16
	for ; n > 0; n-- {
		b := TopBit(x)
		out |= b
		x &^= b
	}
	return out
}
