package cards

import (
	"math/rand/v2"
	"sort"
	"testing"

	"github.com/paulhankin/poker"
	"github.com/stretchr/testify/require"
)

// refValue is a straightforward best-of-21 evaluator used as an oracle.
type refValue struct {
	rank   HandRank
	values [5]Rank
}

func (h refValue) compare(other refValue) int {
	if h.rank != other.rank {
		if h.rank < other.rank {
			return -1
		}
		return 1
	}
	for i := 0; i < 5; i++ {
		if h.values[i] != other.values[i] {
			if h.values[i] < other.values[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

func refEvaluate(cs []Card) refValue {
	best := refValue{rank: HighCard}
	n := len(cs)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for k := j + 1; k < n; k++ {
				for l := k + 1; l < n; l++ {
					for m := l + 1; m < n; m++ {
						v := refEvaluate5([]Card{cs[i], cs[j], cs[k], cs[l], cs[m]})
						if v.compare(best) > 0 {
							best = v
						}
					}
				}
			}
		}
	}
	return best
}

type rankGroup struct {
	rank  Rank
	count int
}

func refEvaluate5(cs []Card) refValue {
	var rankCounts [NumRanks]int
	var suitCounts [NumSuits]int
	for _, c := range cs {
		rankCounts[c.Rank]++
		suitCounts[c.Suit]++
	}

	isFlush := false
	for _, count := range suitCounts {
		if count == 5 {
			isFlush = true
		}
	}

	straightHigh, isStraight := Rank(0), false
	for h := int(Ace); h >= int(Six) && !isStraight; h-- {
		isStraight = true
		for i := 0; i < 5; i++ {
			if rankCounts[h-i] == 0 {
				isStraight = false
				break
			}
		}
		straightHigh = Rank(h)
	}
	if !isStraight && rankCounts[Ace] > 0 && rankCounts[Two] > 0 && rankCounts[Three] > 0 &&
		rankCounts[Four] > 0 && rankCounts[Five] > 0 {
		isStraight, straightHigh = true, Five
	}

	var groups []rankGroup
	for r := int(Ace); r >= int(Two); r-- {
		if rankCounts[r] > 0 {
			groups = append(groups, rankGroup{Rank(r), rankCounts[r]})
		}
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].count > groups[j].count
	})
	var values [5]Rank
	for i, g := range groups {
		values[i] = g.rank
	}

	switch {
	case isFlush && isStraight:
		return refValue{StraightFlush, [5]Rank{straightHigh}}
	case groups[0].count == 4:
		return refValue{FourOfAKind, values}
	case groups[0].count == 3 && groups[1].count == 2:
		return refValue{FullHouse, values}
	case isFlush:
		return refValue{Flush, values}
	case isStraight:
		return refValue{Straight, [5]Rank{straightHigh}}
	case groups[0].count == 3:
		return refValue{ThreeOfAKind, values}
	case groups[0].count == 2 && groups[1].count == 2:
		return refValue{TwoPair, values}
	case groups[0].count == 2:
		return refValue{OnePair, values}
	}
	return refValue{HighCard, values}
}

var refSuits = [NumSuits]poker.Suit{poker.Spade, poker.Heart, poker.Diamond, poker.Club}

// toPoker converts to the paulhankin representation, where the ace is rank 1.
func toPoker(t *testing.T, cs []Card) [7]poker.Card {
	t.Helper()
	var out [7]poker.Card
	for i, c := range cs {
		r := poker.Rank(c.Rank + 2)
		if c.Rank == Ace {
			r = 1
		}
		pc, err := poker.MakeCard(refSuits[c.Suit], r)
		require.NoError(t, err)
		out[i] = pc
	}
	return out
}

func randomHand(r *rand.Rand, n int) []Card {
	perm := r.Perm(52)
	cs := make([]Card, n)
	for i := range cs {
		cs[i] = CardFromIndex(perm[i])
	}
	return cs
}

func sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}

func TestEvaluateMatchesBruteForce(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	for _, n := range []int{5, 6, 7} {
		for i := 0; i < 3000; i++ {
			a, b := randomHand(r, n), randomHand(r, n)
			va, vb := EvaluateCards(a), EvaluateCards(b)
			ra, rb := refEvaluate(a), refEvaluate(b)

			if va.Category() != ra.rank {
				t.Fatalf("%v: category %v, reference %v", NewCardSet(a...), va.Category(), ra.rank)
			}
			if got, want := va.Compare(vb), ra.compare(rb); got != want {
				t.Fatalf("%v (%v) vs %v (%v): compare = %d, reference %d",
					NewCardSet(a...), va, NewCardSet(b...), vb, got, want)
			}
		}
	}
}

func TestEvaluateMatchesTableEvaluator(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 5))
	for i := 0; i < 5000; i++ {
		a, b := randomHand(r, 7), randomHand(r, 7)
		pa, pb := toPoker(t, a), toPoker(t, b)
		want := sign(int(poker.Eval7(&pa)) - int(poker.Eval7(&pb)))
		got := EvaluateCards(a).Compare(EvaluateCards(b))
		if got != want {
			t.Fatalf("%v vs %v: compare = %d, table evaluator %d",
				NewCardSet(a...), NewCardSet(b...), got, want)
		}
	}
}

func TestEvaluateValuesAreWellFormed(t *testing.T) {
	r := rand.New(rand.NewPCG(13, 17))
	for i := 0; i < 20000; i++ {
		h := NewCardSet(randomHand(r, 5+i%3)...)
		v := Evaluate(h)
		if _, err := Describe(v); err != nil {
			t.Fatalf("%v: %v", h, err)
		}
	}
}
