package notation

import (
	"fmt"
	"strings"

	"github.com/behrlich/bitpoker/pkg/cards"
)

// Combo represents a specific 2-card combination (hole cards)
type Combo struct {
	Card1 cards.Card
	Card2 cards.Card
}

// String returns the combo in standard notation (e.g., "AsKh")
func (c Combo) String() string {
	return c.Card1.String() + c.Card2.String()
}

// Set returns the combo as a card set.
func (c Combo) Set() cards.CardSet {
	return cards.NewCardSet(c.Card1, c.Card2)
}

// Class returns the combo's starting-hand class index.
func (c Combo) Class() int {
	return cards.CanonicalIndex(c.Set())
}

// ComboFromSet converts a two-card set into a combo, higher rank first.
func ComboFromSet(s cards.CardSet) (Combo, error) {
	cs := s.Cards()
	if len(cs) != 2 {
		return Combo{}, fmt.Errorf("%w: %q holds %d cards, want 2", ErrInvalidHand, s, len(cs))
	}
	return Combo{Card1: cs[0], Card2: cs[1]}, nil
}

// ParseRange parses a range string and returns all possible combos
// Examples:
//   - "AA" → 6 combos (AsAh, AsAd, AsAc, AhAd, AhAc, AdAc)
//   - "AKs" → 4 combos (AsKs, AhKh, AdKd, AcKc)
//   - "AKo" → 12 combos (all offsuit combinations)
//   - "KK-JJ" → 18 combos (KK, QQ, JJ)
//   - "AA,KK,AKs" → 6+6+4 = 16 combos
func ParseRange(rangeStr string) ([]Combo, error) {
	rangeStr = strings.TrimSpace(rangeStr)
	if rangeStr == "" {
		return nil, fmt.Errorf("%w: empty range string", ErrInvalidHand)
	}

	var allCombos []Combo
	for _, part := range strings.Split(rangeStr, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		classes, err := parseRangePart(part)
		if err != nil {
			return nil, fmt.Errorf("error parsing range %q: %w", part, err)
		}
		for _, idx := range classes {
			allCombos = append(allCombos, ClassCombos(idx)...)
		}
	}

	return allCombos, nil
}

// parseRangePart expands one comma-separated component into class indices.
func parseRangePart(part string) ([]int, error) {
	if !strings.Contains(part, "-") {
		idx, err := ParseClass(part)
		if err != nil {
			return nil, err
		}
		return []int{idx}, nil
	}

	bounds := strings.Split(part, "-")
	if len(bounds) != 2 {
		return nil, fmt.Errorf("%w: %q (expected format: AA-KK)", ErrInvalidHand, part)
	}

	startHi, startLo, startSuited, err := parseHandComponents(bounds[0])
	if err != nil {
		return nil, fmt.Errorf("invalid start hand %q: %w", bounds[0], err)
	}
	endHi, endLo, endSuited, err := parseHandComponents(bounds[1])
	if err != nil {
		return nil, fmt.Errorf("invalid end hand %q: %w", bounds[1], err)
	}
	if startSuited != endSuited {
		return nil, fmt.Errorf("%w: mismatched suited/offsuit in range %q", ErrInvalidHand, part)
	}

	// bounds may be given low to high ("JJ-KK")
	if startHi < endHi || (startHi == endHi && startLo < endLo) {
		startHi, startLo, endHi, endLo = endHi, endLo, startHi, startLo
	}

	var classes []int

	// Pair ranges (e.g., "KK-JJ") walk both ranks down together
	if startHi == startLo && endHi == endLo {
		for r := int(startHi); r >= int(endHi); r-- {
			classes = append(classes, classIndex(cards.Rank(r), cards.Rank(r), false))
		}
		return classes, nil
	}

	// Non-pair ranges (e.g., "AKs-ATs") keep the top rank and walk the kicker
	if startHi != endHi {
		return nil, fmt.Errorf("%w: range %q (first rank must match)", ErrInvalidHand, part)
	}
	for r := int(startLo); r >= int(endLo); r-- {
		classes = append(classes, classIndex(startHi, cards.Rank(r), startSuited))
	}
	return classes, nil
}

// generateCombos generates all possible card combinations for a given hand
func generateCombos(hi, lo cards.Rank, suited bool) []Combo {
	var combos []Combo

	switch {
	case hi == lo:
		// Pair: generate all 6 combinations
		for s1 := cards.Spades; s1 <= cards.Clubs; s1++ {
			for s2 := s1 + 1; s2 <= cards.Clubs; s2++ {
				combos = append(combos, Combo{cards.NewCard(hi, s1), cards.NewCard(lo, s2)})
			}
		}
	case suited:
		for s := cards.Spades; s <= cards.Clubs; s++ {
			combos = append(combos, Combo{cards.NewCard(hi, s), cards.NewCard(lo, s)})
		}
	default:
		for s1 := cards.Spades; s1 <= cards.Clubs; s1++ {
			for s2 := cards.Spades; s2 <= cards.Clubs; s2++ {
				if s1 != s2 {
					combos = append(combos, Combo{cards.NewCard(hi, s1), cards.NewCard(lo, s2)})
				}
			}
		}
	}

	return combos
}
