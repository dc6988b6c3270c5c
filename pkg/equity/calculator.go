package equity

import (
	"context"
	"errors"
	"fmt"

	"github.com/behrlich/bitpoker/pkg/cards"
	"github.com/behrlich/bitpoker/pkg/notation"
)

const boardSize = 5

var (
	// ErrInvalidHand is returned when a hand does not hold exactly two cards
	// or a board holds more than five.
	ErrInvalidHand = errors.New("invalid hand")
	// ErrCardConflict is returned when the same card is in two places.
	ErrCardConflict = errors.New("card conflict")
)

// Tally counts showdown outcomes from the hero's point of view.
type Tally struct {
	Win  uint64
	Loss uint64
	Tie  uint64
}

// Total returns the number of boards counted.
func (t Tally) Total() uint64 {
	return t.Win + t.Loss + t.Tie
}

// Add accumulates o into t.
func (t *Tally) Add(o Tally) {
	t.Win += o.Win
	t.Loss += o.Loss
	t.Tie += o.Tie
}

// Flip returns the tally from the villain's point of view.
func (t Tally) Flip() Tally {
	return Tally{Win: t.Loss, Loss: t.Win, Tie: t.Tie}
}

// WinPct returns the fraction of boards won.
func (t Tally) WinPct() float64 { return t.frac(t.Win) }

// LossPct returns the fraction of boards lost.
func (t Tally) LossPct() float64 { return t.frac(t.Loss) }

// TiePct returns the fraction of boards tied.
func (t Tally) TiePct() float64 { return t.frac(t.Tie) }

// Equity returns win% + tie%/2, or 0.5 when nothing was counted.
func (t Tally) Equity() float64 {
	if t.Total() == 0 {
		return 0.5
	}
	return t.WinPct() + t.TiePct()/2
}

func (t Tally) frac(n uint64) float64 {
	total := t.Total()
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total)
}

// Matchup is the result of one heads-up enumeration.
type Matchup struct {
	Hero    cards.CardSet
	Villain cards.CardSet
	Board   cards.CardSet
	Tally
}

// EquityResult represents the outcome of an equity calculation
type EquityResult struct {
	WinPct float64 // Fraction of boards hero wins
	TiePct float64 // Fraction of boards hero ties
	Equity float64 // Overall equity (win% + tie%/2)
	Counts Tally
}

// Calculator enumerates boards and compares hand values. It holds no state
// and is safe for concurrent use.
type Calculator struct{}

// NewCalculator creates a new equity calculator
func NewCalculator() *Calculator {
	return &Calculator{}
}

// Enumerate walks every completion of board to five cards from the unused
// deck and counts hero's wins, losses and ties against villain.
func (c *Calculator) Enumerate(ctx context.Context, hero, villain, board cards.CardSet) (Tally, error) {
	if err := validate(board, hero, villain); err != nil {
		return Tally{}, err
	}

	var t Tally
	err := walkBoards(ctx, hero|villain, board, func(full cards.CardSet) {
		h := cards.Evaluate(hero | full)
		v := cards.Evaluate(villain | full)
		switch {
		case h > v:
			t.Win++
		case h < v:
			t.Loss++
		default:
			t.Tie++
		}
	})
	return t, err
}

// EnumerateQuad splits four hole cards into the three possible heads-up
// pairings and enumerates all of them over one walk of the boards. Pairings
// are (0,1 v 2,3), (0,2 v 1,3) and (0,3 v 1,2).
func (c *Calculator) EnumerateQuad(ctx context.Context, hole [4]cards.Card, board cards.CardSet) ([3]Matchup, error) {
	var out [3]Matchup
	b := [4]cards.CardSet{hole[0].Bit(), hole[1].Bit(), hole[2].Bit(), hole[3].Bit()}
	out[0].Hero, out[0].Villain = b[0]|b[1], b[2]|b[3]
	out[1].Hero, out[1].Villain = b[0]|b[2], b[1]|b[3]
	out[2].Hero, out[2].Villain = b[0]|b[3], b[1]|b[2]

	if err := validate(board, out[0].Hero, out[0].Villain); err != nil {
		return out, err
	}

	err := walkBoards(ctx, out[0].Hero|out[0].Villain, board, func(full cards.CardSet) {
		for i := range out {
			h := cards.Evaluate(out[i].Hero | full)
			v := cards.Evaluate(out[i].Villain | full)
			switch {
			case h > v:
				out[i].Win++
			case h < v:
				out[i].Loss++
			default:
				out[i].Tie++
			}
		}
	})
	for i := range out {
		out[i].Board = board
	}
	return out, err
}

// CalculateEquity computes hero's equity against opponent's range.
// hero: 2 cards
// board: 0-5 cards
// Opponent combos that share a card with hero or the board are skipped.
func (c *Calculator) CalculateEquity(ctx context.Context, hero, board cards.CardSet, opponentRange []notation.Combo) (EquityResult, error) {
	var total Tally
	for _, combo := range opponentRange {
		opp := combo.Set()
		if opp&(hero|board) != 0 {
			continue
		}
		t, err := c.Enumerate(ctx, hero, opp, board)
		if err != nil {
			return EquityResult{}, fmt.Errorf("against %s: %w", combo, err)
		}
		total.Add(t)
	}

	return EquityResult{
		WinPct: total.WinPct(),
		TiePct: total.TiePct(),
		Equity: total.Equity(),
		Counts: total,
	}, nil
}

func validate(board cards.CardSet, hands ...cards.CardSet) error {
	if board.Count() > boardSize {
		return fmt.Errorf("%w: board %s holds %d cards", ErrInvalidHand, board, board.Count())
	}
	used := board
	for _, h := range hands {
		if h.Count() != 2 {
			return fmt.Errorf("%w: %q holds %d cards, want 2", ErrInvalidHand, h, h.Count())
		}
		if used&h != 0 {
			return fmt.Errorf("%w: %s", ErrCardConflict, used&h)
		}
		used |= h
	}
	return nil
}

// walkBoards calls visit with every five-card board that extends board
// using cards outside dead. The context is checked once per outer card.
func walkBoards(ctx context.Context, dead, board cards.CardSet, visit func(cards.CardSet)) error {
	need := boardSize - board.Count()
	if need == 0 {
		visit(board)
		return ctx.Err()
	}

	deck := make([]cards.CardSet, 0, 52)
	for i := 0; i < 52; i++ {
		bit := cards.CardFromIndex(i).Bit()
		if bit&(dead|board) == 0 {
			deck = append(deck, bit)
		}
	}

	for i := 0; i+need <= len(deck); i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		extend(deck[i+1:], need-1, board|deck[i], visit)
	}
	return nil
}

func extend(deck []cards.CardSet, need int, board cards.CardSet, visit func(cards.CardSet)) {
	if need == 0 {
		visit(board)
		return
	}
	for i := 0; i+need <= len(deck); i++ {
		extend(deck[i+1:], need-1, board|deck[i], visit)
	}
}
