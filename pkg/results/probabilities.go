package results

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/behrlich/bitpoker/pkg/notation"
)

// ErrUnknownClass is returned by Query when a class has no entry.
var ErrUnknownClass = errors.New("class not in table")

// Probabilities maps hero class label to villain class label to the hero's
// win percentage, e.g. p["AA"]["KK"] is about 82.
type Probabilities map[string]map[string]float64

// QueryResult is one class-vs-class lookup, in percent.
type QueryResult struct {
	Hero    string
	Villain string
	Win     float64
	Lose    float64
	Tie     float64
}

// String renders the result the way the query command prints it.
func (q QueryResult) String() string {
	return fmt.Sprintf("%s vs %s\nWin : %7.4f%%\nLose: %7.4f%%\nTie : %7.4f%%",
		q.Hero, q.Villain, q.Win, q.Lose, q.Tie)
}

// Equity returns win plus half the ties, in percent.
func (q QueryResult) Equity() float64 {
	return q.Win + q.Tie/2
}

// Query looks up hero against villain. Labels are normalised first, so
// "kaS" finds AKs. The loss is the villain's win and ties are what is left.
func (p Probabilities) Query(hero, villain string) (QueryResult, error) {
	h, err := notation.NormalizeClass(hero)
	if err != nil {
		return QueryResult{}, err
	}
	v, err := notation.NormalizeClass(villain)
	if err != nil {
		return QueryResult{}, err
	}

	win, ok := p[h][v]
	if !ok {
		return QueryResult{}, fmt.Errorf("%w: %s vs %s", ErrUnknownClass, h, v)
	}
	lose, ok := p[v][h]
	if !ok {
		return QueryResult{}, fmt.Errorf("%w: %s vs %s", ErrUnknownClass, v, h)
	}
	return QueryResult{Hero: h, Villain: v, Win: win, Lose: lose, Tie: 100 - win - lose}, nil
}

// ToJSON serializes the table to indented JSON bytes
func (p Probabilities) ToJSON() ([]byte, error) {
	return json.MarshalIndent(p, "", "  ")
}

// FromJSON deserializes JSON bytes into a table
func FromJSON(data []byte) (Probabilities, error) {
	var p Probabilities
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decode probabilities: %w", err)
	}
	return p, nil
}

// SaveToFile saves the table to a JSON file
func (p Probabilities) SaveToFile(filename string) error {
	data, err := p.ToJSON()
	if err != nil {
		return err
	}

	return os.WriteFile(filename, data, 0644)
}

// LoadFromFile loads a table from a JSON file
func LoadFromFile(filename string) (Probabilities, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	return FromJSON(data)
}
