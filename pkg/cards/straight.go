package cards

import "math/bits"

// straightMask marks the top rank of every five-rank run in ranks,
// including the wheel (A-2-3-4-5 marks Five). It is suit-neutral: pass one
// lane for straight flushes or the OR of all lanes for plain straights.
func straightMask(ranks uint16) uint16 {
	r := rotateAceLow(ranks)
	// bit i survives when bits i..i+4 of the rotated ranks are all set
	run := r & (r >> 1) & (r >> 2) & (r >> 3) & (r >> 4)
	// window top is i+4 in rotated space, i+3 once the rotation is undone
	return run << 3
}

// flushMask returns the top five ranks of one suit, or 0 when the suit
// holds fewer than five cards.
func flushMask(ranks uint16) uint16 {
	n := bits.OnesCount16(ranks)
	if n < 5 {
		return 0
	}
	for ; n > 5; n-- {
		ranks &= ranks - 1
	}
	return ranks
}

// straightFlushValue scores the straight flush, flush and straight
// categories. It returns 0 when none of them is present. None of these
// categories carry kickers.
func straightFlushValue(h CardSet) HandValue {
	var merged, sf, flush uint16
	for suit := Spades; suit <= Clubs; suit++ {
		lane := h.Lane(suit)
		merged |= lane
		sf |= straightMask(lane)
		flush = uint16(Max(uint32(flush), uint32(flushMask(lane))))
	}

	if sf = TopBit(sf); sf != 0 {
		return newValue(prefixStraightFlush|sf, 0)
	}
	if flush != 0 {
		return newValue(prefixFlush|flush, 0)
	}
	if straight := TopBit(straightMask(merged)); straight != 0 {
		return newValue(prefixStraight|straight, 0)
	}
	return 0
}
