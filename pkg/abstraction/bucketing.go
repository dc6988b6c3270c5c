// Package abstraction groups preflop starting-hand classes into equity
// buckets using a precomputed heads-up probability table.
package abstraction

import (
	"errors"
	"fmt"

	"github.com/behrlich/bitpoker/pkg/cards"
	"github.com/behrlich/bitpoker/pkg/notation"
	"github.com/behrlich/bitpoker/pkg/results"
)

// ErrNoMatchups is returned when a class has no recorded opponents.
var ErrNoMatchups = errors.New("no matchups for class")

// Bucketer assigns starting-hand classes to buckets based on their equity
// against a uniformly random opponent class. It is not safe for concurrent
// use.
type Bucketer struct {
	table      results.Probabilities
	numBuckets int

	// Cache for performance
	cache map[string]float64
}

// NewBucketer creates a bucketer over a probability table
// numBuckets: number of equal-width equity bins (typically 5-20)
func NewBucketer(table results.Probabilities, numBuckets int) *Bucketer {
	if numBuckets <= 0 {
		numBuckets = 1
	}
	return &Bucketer{
		table:      table,
		numBuckets: numBuckets,
		cache:      make(map[string]float64),
	}
}

// Equity returns the class's equity in [0,1]: win plus half the ties,
// averaged over every opponent class in the table and weighted by the
// number of combos in that class.
func (b *Bucketer) Equity(label string) (float64, error) {
	hero, err := notation.NormalizeClass(label)
	if err != nil {
		return 0, err
	}
	if eq, ok := b.cache[hero]; ok {
		return eq, nil
	}

	var sum, weight float64
	for villain := range b.table[hero] {
		q, err := b.table.Query(hero, villain)
		if err != nil {
			return 0, err
		}
		idx, err := notation.ParseClass(villain)
		if err != nil {
			return 0, err
		}
		w := float64(notation.ClassWeight(idx))
		sum += w * q.Equity()
		weight += w
	}
	if weight == 0 {
		return 0, fmt.Errorf("%w: %s", ErrNoMatchups, hero)
	}

	eq := sum / weight / 100
	b.cache[hero] = eq
	return eq, nil
}

// Bucket assigns a class to a bucket ID (0 to numBuckets-1)
func (b *Bucketer) Bucket(label string) (int, error) {
	eq, err := b.Equity(label)
	if err != nil {
		return 0, err
	}

	bucketID := int(eq * float64(b.numBuckets))

	// Clamp to valid range
	if bucketID >= b.numBuckets {
		bucketID = b.numBuckets - 1
	}
	if bucketID < 0 {
		bucketID = 0
	}
	return bucketID, nil
}

// BucketCombo is a convenience wrapper for notation.Combo
func (b *Bucketer) BucketCombo(combo notation.Combo) (int, error) {
	return b.Bucket(notation.Label(combo.Class()))
}

// Grid returns the bucket of every class laid out as the 13x13
// starting-hand matrix: pairs on the diagonal, suited above it.
func (b *Bucketer) Grid() ([cards.NumRanks][cards.NumRanks]int, error) {
	var grid [cards.NumRanks][cards.NumRanks]int
	for i := 0; i < cards.NumCanonical; i++ {
		bucket, err := b.Bucket(notation.Label(i))
		if err != nil {
			return grid, err
		}
		grid[i/cards.NumRanks][i%cards.NumRanks] = bucket
	}
	return grid, nil
}

// GetBucketInfo returns human-readable info about a bucket
func (b *Bucketer) GetBucketInfo(bucketID int) string {
	equityMin := float64(bucketID) / float64(b.numBuckets)
	equityMax := float64(bucketID+1) / float64(b.numBuckets)

	return fmt.Sprintf("Bucket %d: Equity [%.2f-%.2f]", bucketID, equityMin, equityMax)
}

// NumBuckets returns the total number of buckets
func (b *Bucketer) NumBuckets() int {
	return b.numBuckets
}

// ClearCache clears the equity cache (useful if the table changes)
func (b *Bucketer) ClearCache() {
	b.cache = make(map[string]float64)
}
