package notation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/behrlich/bitpoker/pkg/cards"
)

// ErrInvalidHand is returned when a hand or range string cannot be parsed.
var ErrInvalidHand = errors.New("invalid hand notation")

// rankAt returns the rank at a matrix row or column.
func rankAt(i int) cards.Rank {
	return cards.Ace - cards.Rank(i)
}

// classIndex returns the matrix index of a starting-hand class. hi must not
// be lower than lo.
func classIndex(hi, lo cards.Rank, suited bool) int {
	row, col := int(cards.Ace-hi), int(cards.Ace-lo)
	if hi != lo && !suited {
		row, col = col, row
	}
	return row*cards.NumRanks + col
}

// classRanks is the inverse of classIndex.
func classRanks(idx int) (hi, lo cards.Rank, suited bool) {
	row, col := idx/cards.NumRanks, idx%cards.NumRanks
	if row > col {
		return rankAt(col), rankAt(row), false
	}
	return rankAt(row), rankAt(col), row < col
}

// Label returns the conventional name of a starting-hand class, e.g. "AA",
// "AKs" or "AKo". It returns "" for an index outside [0,168].
func Label(idx int) string {
	if idx < 0 || idx >= cards.NumCanonical {
		return ""
	}
	hi, lo, suited := classRanks(idx)
	switch {
	case hi == lo:
		return hi.String() + lo.String()
	case suited:
		return hi.String() + lo.String() + "s"
	default:
		return hi.String() + lo.String() + "o"
	}
}

// Classes returns the labels of all 169 classes in matrix order.
func Classes() []string {
	out := make([]string, cards.NumCanonical)
	for i := range out {
		out[i] = Label(i)
	}
	return out
}

// ParseClass parses a class label into its matrix index. Ranks may be given
// in either order and either case, so "KAs" and "aks" both name AKs.
func ParseClass(label string) (int, error) {
	hi, lo, suited, err := parseHandComponents(label)
	if err != nil {
		return 0, err
	}
	return classIndex(hi, lo, suited), nil
}

// NormalizeClass returns the canonical spelling of a class label.
func NormalizeClass(label string) (string, error) {
	idx, err := ParseClass(label)
	if err != nil {
		return "", err
	}
	return Label(idx), nil
}

// ClassCombos returns every concrete combo of a class: 6 for a pair, 4
// suited, 12 offsuit.
func ClassCombos(idx int) []Combo {
	if idx < 0 || idx >= cards.NumCanonical {
		return nil
	}
	hi, lo, suited := classRanks(idx)
	return generateCombos(hi, lo, suited)
}

// ClassWeight returns the number of combos in a class.
func ClassWeight(idx int) int {
	hi, lo, suited := classRanks(idx)
	switch {
	case hi == lo:
		return 6
	case suited:
		return 4
	}
	return 12
}

// parseHandComponents parses hand notation and returns (high rank, low rank,
// suited, error)
func parseHandComponents(hand string) (cards.Rank, cards.Rank, bool, error) {
	hand = strings.TrimSpace(hand)
	if len(hand) < 2 || len(hand) > 3 {
		return 0, 0, false, fmt.Errorf("%w: %q", ErrInvalidHand, hand)
	}

	rank1, err := parseRankChar(hand[0])
	if err != nil {
		return 0, 0, false, err
	}
	rank2, err := parseRankChar(hand[1])
	if err != nil {
		return 0, 0, false, err
	}
	if rank1 < rank2 {
		rank1, rank2 = rank2, rank1
	}

	if len(hand) == 2 {
		if rank1 != rank2 {
			return 0, 0, false, fmt.Errorf("%w: ambiguous hand %q (use 's' for suited or 'o' for offsuit)", ErrInvalidHand, hand)
		}
		return rank1, rank2, false, nil
	}

	if rank1 == rank2 {
		return 0, 0, false, fmt.Errorf("%w: pair %q cannot have suited/offsuit indicator", ErrInvalidHand, hand)
	}
	switch hand[2] {
	case 's', 'S':
		return rank1, rank2, true, nil
	case 'o', 'O':
		return rank1, rank2, false, nil
	}
	return 0, 0, false, fmt.Errorf("%w: invalid suited/offsuit indicator %q (expected 's' or 'o')", ErrInvalidHand, hand[2])
}

// parseRankChar converts a character to a Rank
func parseRankChar(b byte) (cards.Rank, error) {
	r, err := cards.ParseRank(b)
	if err != nil {
		return 0, fmt.Errorf("%w: rank %q", ErrInvalidHand, b)
	}
	return r, nil
}
