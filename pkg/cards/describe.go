package cards

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"
)

// ErrMalformedValue is returned by Describe when a value's rank bits do not
// fit its category.
var ErrMalformedValue = errors.New("malformed hand value")

// ranksOf lists the ranks in mask, highest first.
func ranksOf(mask uint16) []Rank {
	out := make([]Rank, 0, bits.OnesCount16(mask))
	for mask != 0 {
		top := TopBit(mask)
		out = append(out, Rank(bits.TrailingZeros16(top)))
		mask &^= top
	}
	return out
}

func joinRanks(rs []Rank) string {
	names := make([]string, len(rs))
	for i, r := range rs {
		names[i] = r.String()
	}
	if len(names) <= 1 {
		return strings.Join(names, "")
	}
	return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
}

// shape is the number of primary and kicker ranks a category must carry.
type shape struct {
	primary, kickers int
}

var shapes = map[HandRank]shape{
	StraightFlush: {1, 0},
	FourOfAKind:   {1, 1},
	FullHouse:     {1, 1},
	Flush:         {5, 0},
	Straight:      {1, 0},
	ThreeOfAKind:  {1, 2},
	TwoPair:       {2, 1},
	OnePair:       {1, 3},
	HighCard:      {0, 5},
}

// Describe renders a hand value as text, e.g. "Two Pair: K and 7 with
// kicker 9". It checks that the value carries exactly the ranks its
// category requires and returns ErrMalformedValue otherwise.
func Describe(v HandValue) (string, error) {
	cat := v.Category()
	primary := ranksOf(v.Primary())
	kickers := ranksOf(v.Kickers())

	want := shapes[cat]
	if len(primary) != want.primary || len(kickers) != want.kickers {
		return "", fmt.Errorf("%w: %s with %d primary and %d kicker ranks (want %d and %d)",
			ErrMalformedValue, cat, len(primary), len(kickers), want.primary, want.kickers)
	}

	switch cat {
	case StraightFlush, Straight:
		return fmt.Sprintf("%s: %s high", cat, primary[0]), nil
	case FourOfAKind, ThreeOfAKind, OnePair:
		return fmt.Sprintf("%s: %s with kicker %s", cat, primary[0], joinRanks(kickers)), nil
	case FullHouse:
		return fmt.Sprintf("%s: %s over %s", cat, primary[0], kickers[0]), nil
	case Flush:
		return fmt.Sprintf("%s: %s", cat, joinRanks(primary)), nil
	case TwoPair:
		return fmt.Sprintf("%s: %s with kicker %s", cat, joinRanks(primary), kickers[0]), nil
	default:
		return fmt.Sprintf("%s: %s", cat, joinRanks(kickers)), nil
	}
}

// String implements fmt.Stringer. Malformed values print as hex.
func (h HandValue) String() string {
	s, err := Describe(h)
	if err != nil {
		return fmt.Sprintf("HandValue(%#08x)", uint32(h))
	}
	return s
}
