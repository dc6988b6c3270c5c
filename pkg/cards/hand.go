package cards

// HandRank represents the category of a poker hand
type HandRank uint8

const (
	HighCard HandRank = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// Category prefixes occupy the top three bits of the high half of a
// HandValue. Pair and high card share the zero prefix.
const (
	prefixStraightFlush uint16 = 0xE000
	prefixQuads         uint16 = 0xC000
	prefixFullHouse     uint16 = 0xA000
	prefixFlush         uint16 = 0x8000
	prefixStraight      uint16 = 0x6000
	prefixTrips         uint16 = 0x4000
	prefixTwoPair       uint16 = 0x2000
)

// HandValue is the strength of a card set. Plain unsigned comparison orders
// hands: the high 16 bits hold the category prefix OR'd with the primary
// rank mask, the low 16 bits hold the kicker rank mask.
type HandValue uint32

func newValue(high, low uint16) HandValue {
	return HandValue(uint32(high)<<16 | uint32(low))
}

// Category decodes the hand category from the value's prefix.
func (h HandValue) Category() HandRank {
	switch uint16(h>>16) &^ rankMask {
	case prefixStraightFlush:
		return StraightFlush
	case prefixQuads:
		return FourOfAKind
	case prefixFullHouse:
		return FullHouse
	case prefixFlush:
		return Flush
	case prefixStraight:
		return Straight
	case prefixTrips:
		return ThreeOfAKind
	case prefixTwoPair:
		return TwoPair
	}
	if h.Primary() != 0 {
		return OnePair
	}
	return HighCard
}

// Primary returns the rank mask of the hand's scoring group: the straight's
// top rank, the five flush ranks, the quad/trip/pair ranks.
func (h HandValue) Primary() uint16 {
	return uint16(h>>16) & rankMask
}

// Kickers returns the tie-breaking rank mask. For a full house it is the
// pair rank.
func (h HandValue) Kickers() uint16 {
	return uint16(h)
}

// Compare returns -1 if h < other, 0 if equal, 1 if h > other
func (h HandValue) Compare(other HandValue) int {
	switch {
	case h < other:
		return -1
	case h > other:
		return 1
	}
	return 0
}

// Evaluate returns the value of the best five-card hand in h. It is meant
// for sets of five to seven distinct cards; other inputs give deterministic
// but meaningless values.
func Evaluate(h CardSet) HandValue {
	sf := uint32(straightFlushValue(h))
	quads := uint32(quadsValue(h))
	tripsPairs := uint32(tripsPairsValue(h))
	return HandValue(Max(sf, Max(quads, tripsPairs)))
}

// EvaluateCards evaluates a slice of cards.
func EvaluateCards(cs []Card) HandValue {
	return Evaluate(NewCardSet(cs...))
}

// quadsValue scores four of a kind with its single kicker, or returns 0.
func quadsValue(h CardSet) HandValue {
	s1, s2, s3, s4 := h.lanes()
	quads := TopBit(s1 & s2 & s3 & s4)
	if quads == 0 {
		return 0
	}
	kicker := TopBit((s1 | s2 | s3 | s4) &^ quads)
	return newValue(prefixQuads|quads, kicker)
}

// tripsPairsValue scores full house, trips, two pair, one pair and high
// card. Every result accounts for exactly five cards.
func tripsPairsValue(h CardSet) HandValue {
	s1, s2, s3, s4 := h.lanes()
	all := s1 | s2 | s3 | s4

	// a second set of trips is demoted to a pair
	trips := TopBit(s1&s2&s3 | s1&s2&s4 | s1&s3&s4 | s2&s3&s4)
	pairs := (s1&s2 | s1&s3 | s1&s4 | s2&s3 | s2&s4 | s3&s4) &^ trips

	if trips != 0 {
		if pairs != 0 {
			return newValue(prefixFullHouse|trips, TopBit(pairs))
		}
		return newValue(prefixTrips|trips, topN(all&^trips, 2))
	}

	top := TopBit(pairs)
	bottom := TopBit(pairs &^ top)
	kickers := all &^ (top | bottom)

	// one kicker behind two pair, three behind a pair, five for high card
	n := 1
	prefix := prefixTwoPair
	if bottom == 0 {
		n += 2
		prefix = 0
	}
	if top == 0 {
		n += 2
	}
	return newValue(prefix|top|bottom, topN(kickers, n))
}

// String returns a human-readable representation of the hand rank
func (r HandRank) String() string {
	switch r {
	case HighCard:
		return "High Card"
	case OnePair:
		return "One Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	default:
		return "Unknown"
	}
}
