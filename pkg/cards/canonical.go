package cards

import "math/bits"

// NumCanonical is the number of preflop starting-hand classes.
const NumCanonical = NumRanks * NumRanks

// CanonicalIndex maps a two-card set to its starting-hand class in [0,168].
// Classes form a 13x13 matrix with rows and columns counted down from the
// Ace: row == col is a pocket pair, row < col suited, row > col offsuit.
// AA is 0, AKs is 1, AKo is 13, 22 is 168.
//
// h must hold exactly two cards; anything else gives an unspecified index.
func CanonicalIndex(h CardSet) int {
	lo := bits.TrailingZeros64(uint64(h))
	hi := bits.TrailingZeros64(uint64(h & (h - 1)))

	// distance from the Ace; lo sits in a lower or equal lane than hi
	rlo := int(Ace) - lo%laneWidth
	rhi := int(Ace) - hi%laneWidth
	row, col := min(rlo, rhi), max(rlo, rhi)
	if lo/laneWidth != hi/laneWidth {
		row, col = col, row
	}
	return row*NumRanks + col
}

// CanonicalIndexOf maps two explicit cards to their starting-hand class.
// It agrees with CanonicalIndex for any two distinct cards.
func CanonicalIndexOf(a, b Card) int {
	ra := int(Ace - a.Rank)
	rb := int(Ace - b.Rank)
	if ra > rb {
		ra, rb = rb, ra
	}
	if a.Suit != b.Suit {
		return rb*NumRanks + ra
	}
	return ra*NumRanks + rb
}
