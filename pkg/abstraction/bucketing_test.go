package abstraction

import (
	"testing"

	"github.com/behrlich/bitpoker/pkg/cards"
	"github.com/behrlich/bitpoker/pkg/notation"
	"github.com/behrlich/bitpoker/pkg/results"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// smallTable holds AA, KK and 72o only.
func smallTable() results.Probabilities {
	return results.Probabilities{
		"AA":  {"KK": 80, "72o": 88},
		"KK":  {"AA": 18, "72o": 86},
		"72o": {"AA": 11.5, "KK": 13},
	}
}

// fullTable gives every class a fixed 2% tie rate and a win rate that
// falls with its matrix index, so AA is strongest and 22 is weakest.
func fullTable() results.Probabilities {
	p := make(results.Probabilities, cards.NumCanonical)
	for h := 0; h < cards.NumCanonical; h++ {
		row := make(map[string]float64, cards.NumCanonical)
		for v := 0; v < cards.NumCanonical; v++ {
			row[notation.Label(v)] = 49 + float64(v-h)*0.25
		}
		p[notation.Label(h)] = row
	}
	return p
}

func TestNewBucketer(t *testing.T) {
	bucketer := NewBucketer(smallTable(), 10)
	require.NotNil(t, bucketer)
	assert.Equal(t, 10, bucketer.NumBuckets())

	assert.Equal(t, 1, NewBucketer(smallTable(), 0).NumBuckets())
}

func TestEquity_WeightsByCombos(t *testing.T) {
	bucketer := NewBucketer(smallTable(), 10)

	// vs KK: 80 win, 2 tie; vs 72o: 88 win, 0.5 tie. KK has 6 combos, 72o 12.
	eq, err := bucketer.Equity("AA")
	require.NoError(t, err)
	assert.InDelta(t, (6*81+12*88.25)/18/100, eq, 1e-9)

	bucket, err := bucketer.Bucket("aa")
	require.NoError(t, err)
	assert.Equal(t, 8, bucket)
}

func TestEquity_Errors(t *testing.T) {
	bucketer := NewBucketer(smallTable(), 10)

	_, err := bucketer.Equity("AK")
	assert.ErrorIs(t, err, notation.ErrInvalidHand)

	_, err = bucketer.Equity("QQ")
	assert.ErrorIs(t, err, ErrNoMatchups)

	// AA lists JJ but JJ has no row back
	broken := smallTable()
	broken["AA"]["JJ"] = 80
	_, err = NewBucketer(broken, 10).Equity("AA")
	assert.ErrorIs(t, err, results.ErrUnknownClass)
}

func TestBucket_DifferentHandTypes(t *testing.T) {
	bucketer := NewBucketer(smallTable(), 10)

	bucketAA, err := bucketer.Bucket("AA")
	require.NoError(t, err)
	bucketAir, err := bucketer.Bucket("72o")
	require.NoError(t, err)

	// Strong pair vs weak air should be far apart
	assert.GreaterOrEqual(t, bucketAA-bucketAir, 5, "AA %d, 72o %d", bucketAA, bucketAir)
}

func TestBucket_Clamped(t *testing.T) {
	table := results.Probabilities{
		"AA": {"KK": 100},
		"KK": {"AA": 0},
	}
	bucketer := NewBucketer(table, 4)

	top, err := bucketer.Bucket("AA")
	require.NoError(t, err)
	assert.Equal(t, 3, top)

	bottom, err := bucketer.Bucket("KK")
	require.NoError(t, err)
	assert.Equal(t, 0, bottom)
}

func TestBucketCombo(t *testing.T) {
	bucketer := NewBucketer(smallTable(), 10)

	combo := notation.Combo{
		Card1: cards.Card{Rank: cards.King, Suit: cards.Diamonds},
		Card2: cards.Card{Rank: cards.King, Suit: cards.Clubs},
	}
	bucket, err := bucketer.BucketCombo(combo)
	require.NoError(t, err)

	want, err := bucketer.Bucket("KK")
	require.NoError(t, err)
	assert.Equal(t, want, bucket)
}

func TestGrid(t *testing.T) {
	bucketer := NewBucketer(fullTable(), 10)

	grid, err := bucketer.Grid()
	require.NoError(t, err)

	for i := 0; i < cards.NumCanonical; i++ {
		want, err := bucketer.Bucket(notation.Label(i))
		require.NoError(t, err)
		assert.Equal(t, want, grid[i/cards.NumRanks][i%cards.NumRanks], notation.Label(i))
	}
	assert.Greater(t, grid[0][0], grid[12][12], "AA should outrank 22")

	_, err = NewBucketer(smallTable(), 10).Grid()
	assert.ErrorIs(t, err, ErrNoMatchups)
}

func TestGetBucketInfo(t *testing.T) {
	bucketer := NewBucketer(smallTable(), 10)

	assert.Equal(t, "Bucket 0: Equity [0.00-0.10]", bucketer.GetBucketInfo(0))
	assert.Equal(t, "Bucket 9: Equity [0.90-1.00]", bucketer.GetBucketInfo(9))
}

func TestBucket_Cache(t *testing.T) {
	table := smallTable()
	bucketer := NewBucketer(table, 10)

	bucket1, err := bucketer.Bucket("AA")
	require.NoError(t, err)

	// cached value survives a table change until the cache is cleared
	table["AA"]["KK"] = 0
	table["AA"]["72o"] = 0
	bucket2, err := bucketer.Bucket("AA")
	require.NoError(t, err)
	assert.Equal(t, bucket1, bucket2)

	bucketer.ClearCache()
	bucket3, err := bucketer.Bucket("AA")
	require.NoError(t, err)
	assert.Less(t, bucket3, bucket1)
}

// Benchmark bucketing performance
func BenchmarkBucket(b *testing.B) {
	bucketer := NewBucketer(fullTable(), 10)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bucketer.Bucket("AKs")
	}
}

// Benchmark bucketing without cache
func BenchmarkBucket_NoCache(b *testing.B) {
	bucketer := NewBucketer(fullTable(), 10)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bucketer.ClearCache()
		_, _ = bucketer.Bucket("AKs")
	}
}
