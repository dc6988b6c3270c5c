//go:build js && wasm
// +build js,wasm

package main

import (
	"context"
	"fmt"
	"syscall/js"

	"github.com/behrlich/bitpoker/pkg/cards"
	"github.com/behrlich/bitpoker/pkg/equity"
	"github.com/behrlich/bitpoker/pkg/notation"
)

func main() {
	// Register JavaScript functions
	js.Global().Set("bitpoker", makeBitpokerAPI())

	// Prevent the Go program from exiting
	select {}
}

// makeBitpokerAPI creates the JavaScript API object
func makeBitpokerAPI() js.Value {
	api := make(map[string]interface{})

	api["evaluate"] = js.FuncOf(evaluateWrapper)
	api["describe"] = js.FuncOf(describeWrapper)
	api["canonical"] = js.FuncOf(canonicalWrapper)
	api["matchup"] = js.FuncOf(matchupWrapper)
	api["version"] = "1.0.0"

	return js.ValueOf(api)
}

func errorValue(format string, args ...interface{}) js.Value {
	return js.ValueOf(map[string]interface{}{
		"error": fmt.Sprintf(format, args...),
	})
}

// evaluateWrapper evaluates a card string such as "AsKsQsJsTs9h2c"
// Returns: {value, category, description}
func evaluateWrapper(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return errorValue("Usage: evaluate(cards)")
	}

	set, err := cards.ParseCardSet(args[0].String())
	if err != nil {
		return errorValue("%v", err)
	}
	if set.Count() < 5 {
		return errorValue("need at least 5 cards, got %d", set.Count())
	}

	v := cards.Evaluate(set)
	return js.ValueOf(map[string]interface{}{
		"value":       int(v),
		"category":    v.Category().String(),
		"description": v.String(),
	})
}

// describeWrapper renders a raw hand value
func describeWrapper(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return errorValue("Usage: describe(value)")
	}

	s, err := cards.Describe(cards.HandValue(uint32(args[0].Int())))
	if err != nil {
		return errorValue("%v", err)
	}
	return js.ValueOf(s)
}

// canonicalWrapper maps two hole cards to their 13x13 matrix cell
// Returns: {index, label, row, col}
func canonicalWrapper(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return errorValue("Usage: canonical(holeCards)")
	}

	set, err := cards.ParseCardSet(args[0].String())
	if err != nil {
		return errorValue("%v", err)
	}
	combo, err := notation.ComboFromSet(set)
	if err != nil {
		return errorValue("%v", err)
	}

	idx := combo.Class()
	return js.ValueOf(map[string]interface{}{
		"index": idx,
		"label": notation.Label(idx),
		"row":   idx / cards.NumRanks,
		"col":   idx % cards.NumRanks,
	})
}

// matchupWrapper enumerates one heads-up matchup off the main thread
// Arguments: hero (string), villain (string), board (string, optional)
// Returns: Promise that resolves to {win, loss, tie, total, equity}
func matchupWrapper(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return errorValue("Usage: matchup(hero, villain, board?)")
	}

	heroStr, villainStr := args[0].String(), args[1].String()
	boardStr := ""
	if len(args) >= 3 && !args[2].IsNull() && !args[2].IsUndefined() {
		boardStr = args[2].String()
	}

	// Create a promise
	promiseConstructor := js.Global().Get("Promise")
	handler := js.FuncOf(func(this js.Value, promiseArgs []js.Value) interface{} {
		resolve := promiseArgs[0]
		reject := promiseArgs[1]

		go func() {
			defer func() {
				if r := recover(); r != nil {
					reject.Invoke(js.ValueOf(fmt.Sprintf("matchup panicked: %v", r)))
				}
			}()

			result, err := runMatchup(heroStr, villainStr, boardStr)
			if err != nil {
				reject.Invoke(js.ValueOf(err.Error()))
				return
			}

			resolve.Invoke(js.ValueOf(result))
		}()

		return nil
	})

	return promiseConstructor.New(handler)
}

func runMatchup(heroStr, villainStr, boardStr string) (map[string]interface{}, error) {
	hero, err := cards.ParseCardSet(heroStr)
	if err != nil {
		return nil, fmt.Errorf("hero: %w", err)
	}
	villain, err := cards.ParseCardSet(villainStr)
	if err != nil {
		return nil, fmt.Errorf("villain: %w", err)
	}
	board, err := cards.ParseCardSet(boardStr)
	if err != nil {
		return nil, fmt.Errorf("board: %w", err)
	}

	t, err := equity.NewCalculator().Enumerate(context.Background(), hero, villain, board)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"win":    t.WinPct(),
		"loss":   t.LossPct(),
		"tie":    t.TiePct(),
		"total":  int(t.Total()),
		"equity": t.Equity(),
	}, nil
}
