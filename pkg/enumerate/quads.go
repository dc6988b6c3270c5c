// Package enumerate fans exhaustive heads-up enumerations out over a pool of
// workers and hands the results to sinks.
package enumerate

import (
	"iter"

	"github.com/behrlich/bitpoker/pkg/cards"
)

// Quad is four distinct hole cards plus the fixed board they are run on.
type Quad struct {
	Cards [4]cards.Card
	Board cards.CardSet
}

// AllQuads yields every 4-card subset of the cards not on board, in
// ascending deck index order. With an empty board that is C(52,4) quads.
func AllQuads(board cards.CardSet) iter.Seq[Quad] {
	var deck []cards.Card
	for i := 0; i < 52; i++ {
		c := cards.CardFromIndex(i)
		if !board.Has(c) {
			deck = append(deck, c)
		}
	}

	return func(yield func(Quad) bool) {
		n := len(deck)
		for a := 0; a < n; a++ {
			for b := a + 1; b < n; b++ {
				for c := b + 1; c < n; c++ {
					for d := c + 1; d < n; d++ {
						q := Quad{Cards: [4]cards.Card{deck[a], deck[b], deck[c], deck[d]}, Board: board}
						if !yield(q) {
							return
						}
					}
				}
			}
		}
	}
}

// Count returns the number of quads AllQuads(board) yields.
func Count(board cards.CardSet) int {
	n := 52 - board.Count()
	return n * (n - 1) * (n - 2) * (n - 3) / 24
}
