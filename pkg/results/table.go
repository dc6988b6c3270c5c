package results

import (
	"sync"

	"github.com/behrlich/bitpoker/pkg/cards"
	"github.com/behrlich/bitpoker/pkg/equity"
	"github.com/behrlich/bitpoker/pkg/notation"
)

// Table accumulates tallies per pair of starting-hand classes. It is safe
// for concurrent use and satisfies the enumerate Sink interface.
type Table struct {
	mu      sync.Mutex
	tallies [cards.NumCanonical][cards.NumCanonical]equity.Tally
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{}
}

// Record adds a matchup to both its own cell and the mirrored one.
func (t *Table) Record(m equity.Matchup) error {
	i, j := cards.CanonicalIndex(m.Hero), cards.CanonicalIndex(m.Villain)

	t.mu.Lock()
	defer t.mu.Unlock()
	t.tallies[i][j].Add(m.Tally)
	t.tallies[j][i].Add(m.Flip())
	return nil
}

// Tally returns the accumulated counts for class i against class j.
func (t *Table) Tally(i, j int) equity.Tally {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.tallies[i][j]
}

// Probabilities returns the win percentage of every class against every
// class it has been recorded against.
func (t *Table) Probabilities() Probabilities {
	t.mu.Lock()
	defer t.mu.Unlock()

	p := make(Probabilities, cards.NumCanonical)
	for i := range t.tallies {
		for j, tally := range t.tallies[i] {
			if tally.Total() == 0 {
				continue
			}
			hero := notation.Label(i)
			if p[hero] == nil {
				p[hero] = make(map[string]float64)
			}
			p[hero][notation.Label(j)] = 100 * tally.WinPct()
		}
	}
	return p
}
