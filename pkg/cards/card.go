package cards

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Rank represents a card rank (2-A). The value is the rank's bit position
// inside a suit lane of a CardSet.
type Rank uint8

const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// NumRanks is the number of distinct ranks in a suit.
const NumRanks = 13

// Suit represents a card suit. The value is the suit's 16-bit lane index
// inside a CardSet.
type Suit uint8

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// NumSuits is the number of suits in a deck.
const NumSuits = 4

const (
	rankChars = "23456789TJQKA"
	suitChars = "shdc"
)

var (
	// ErrInvalidCard is returned when a card string cannot be parsed.
	ErrInvalidCard = errors.New("invalid card")
	// ErrDuplicateCard is returned when the same card appears twice in a set.
	ErrDuplicateCard = errors.New("duplicate card")
)

// Card represents a single playing card
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a card from rank and suit
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// Bit returns the card as a single-card CardSet.
func (c Card) Bit() CardSet {
	return CardSet(1) << (uint(c.Suit)*laneWidth + uint(c.Rank))
}

// Index returns the card's position in a 52-card deck ordered by rank then
// suit (2s=0, 2h=1, ..., Ac=51).
func (c Card) Index() int {
	return int(c.Rank)*NumSuits + int(c.Suit)
}

// CardFromIndex is the inverse of Card.Index.
func CardFromIndex(i int) Card {
	return Card{Rank: Rank(i / NumSuits), Suit: Suit(i % NumSuits)}
}

// ParseCard parses a card from string notation (e.g., "As", "Kh", "Td")
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	if len(s) != 2 {
		return Card{}, fmt.Errorf("%w: %q (must be 2 characters)", ErrInvalidCard, s)
	}

	rank, err := ParseRank(s[0])
	if err != nil {
		return Card{}, err
	}

	suit, err := parseSuit(s[1])
	if err != nil {
		return Card{}, err
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// ParseRank parses a rank character ("2".."9", "T", "J", "Q", "K", "A"),
// in either case.
func ParseRank(b byte) (Rank, error) {
	i := strings.IndexRune(rankChars, unicode.ToUpper(rune(b)))
	if i < 0 {
		return 0, fmt.Errorf("%w: rank %q", ErrInvalidCard, b)
	}
	return Rank(i), nil
}

func parseSuit(b byte) (Suit, error) {
	i := strings.IndexRune(suitChars, unicode.ToLower(rune(b)))
	if i < 0 {
		return 0, fmt.Errorf("%w: suit %q", ErrInvalidCard, b)
	}
	return Suit(i), nil
}

// String returns the card in standard notation (e.g., "As", "Kh")
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// String returns the rank as a single character
func (r Rank) String() string {
	if r > Ace {
		return "?"
	}
	return rankChars[r : r+1]
}

// String returns the suit as a single character
func (s Suit) String() string {
	if s > Clubs {
		return "?"
	}
	return suitChars[s : s+1]
}

// ParseCards parses multiple cards from a string (e.g., "AsKhQd").
// Spaces are ignored.
func ParseCards(s string) ([]Card, error) {
	s = strings.ReplaceAll(s, " ", "")
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: %q (must have even length)", ErrInvalidCard, s)
	}

	cards := make([]Card, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		card, err := ParseCard(s[i : i+2])
		if err != nil {
			return nil, fmt.Errorf("error parsing card at position %d: %w", i, err)
		}
		cards = append(cards, card)
	}

	return cards, nil
}
