package cards

import (
	"fmt"
	"math/bits"
	"strings"
)

// CardSet is a set of distinct cards packed into four 16-bit suit lanes.
// Bit rank+16*suit is set when the card is present. The top three bits of
// every lane are always zero.
type CardSet uint64

const (
	laneWidth = 16
	rankMask  = 0x1FFF
	// FullDeck holds all 52 cards.
	FullDeck CardSet = rankMask | rankMask<<16 | rankMask<<32 | rankMask<<48
)

// NewCardSet builds a set from the given cards. Duplicates collapse.
func NewCardSet(cs ...Card) CardSet {
	var s CardSet
	for _, c := range cs {
		s |= c.Bit()
	}
	return s
}

// ParseCardSet parses concatenated card notation (e.g. "AhKd Qs") into a set.
// Unlike ParseCards it rejects a card that appears twice.
func ParseCardSet(s string) (CardSet, error) {
	cs, err := ParseCards(s)
	if err != nil {
		return 0, err
	}

	var set CardSet
	for _, c := range cs {
		if set.Has(c) {
			return 0, fmt.Errorf("%w: %s", ErrDuplicateCard, c)
		}
		set |= c.Bit()
	}
	return set, nil
}

// MustParseCardSet is like ParseCardSet but panics on error.
func MustParseCardSet(s string) CardSet {
	set, err := ParseCardSet(s)
	if err != nil {
		panic(err)
	}
	return set
}

// Add returns the set with c included.
func (s CardSet) Add(c Card) CardSet {
	return s | c.Bit()
}

// Has reports whether c is in the set.
func (s CardSet) Has(c Card) bool {
	return s&c.Bit() != 0
}

// Count returns the number of cards in the set.
func (s CardSet) Count() int {
	return bits.OnesCount64(uint64(s))
}

// Lane returns the rank bitmask of one suit.
func (s CardSet) Lane(suit Suit) uint16 {
	return uint16(s>>(uint(suit)*laneWidth)) & rankMask
}

// lanes splits the set into its four suit rank masks.
func (s CardSet) lanes() (uint16, uint16, uint16, uint16) {
	return uint16(s) & rankMask,
		uint16(s>>16) & rankMask,
		uint16(s>>32) & rankMask,
		uint16(s>>48) & rankMask
}

// Cards returns the cards in the set, highest rank first. Within a rank the
// lane order (s, h, d, c) is kept.
func (s CardSet) Cards() []Card {
	out := make([]Card, 0, s.Count())
	for r := int(Ace); r >= int(Two); r-- {
		for suit := Spades; suit <= Clubs; suit++ {
			c := Card{Rank: Rank(r), Suit: suit}
			if s.Has(c) {
				out = append(out, c)
			}
		}
	}
	return out
}

// String returns the set in card notation, e.g. "AhAdKs".
func (s CardSet) String() string {
	var sb strings.Builder
	for _, c := range s.Cards() {
		sb.WriteString(c.String())
	}
	return sb.String()
}
