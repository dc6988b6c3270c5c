package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/behrlich/bitpoker/pkg/results"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("BITPOKER_CONFIG_FILE", filepath.Join(t.TempDir(), "none.yaml"))

	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestEval(t *testing.T) {
	out, err := run(t, "eval", "AsKsQsJsTs9h2c")
	require.NoError(t, err)
	assert.Contains(t, out, "Straight Flush: A high")

	out, err = run(t, "eval", "Ah", "Kd", "7c", "7d", "2s")
	require.NoError(t, err)
	assert.Contains(t, out, "One Pair: 7 with kicker A, K and 2")

	_, err = run(t, "eval", "AhKd")
	assert.Error(t, err)

	_, err = run(t, "eval", "AhKdXx")
	assert.Error(t, err)
}

func TestCanonical(t *testing.T) {
	out, err := run(t, "canonical", "KhAh")
	require.NoError(t, err)
	assert.Equal(t, "AhKh 1 AKs\n", out)

	out, err = run(t, "canonical", "2c", "2d")
	require.NoError(t, err)
	assert.Equal(t, "2d2c 168 22\n", out)

	_, err = run(t, "canonical", "AhKhQh")
	assert.Error(t, err)
}

func TestMatchup(t *testing.T) {
	out, err := run(t, "matchup", "AdAc", "QdQh", "Kh9s4c7d")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "AdAc vs QhQd\nWin:  95.4545% (42/44)\n"), out)
	assert.Contains(t, out, "Equity: 95.4545%")

	_, err = run(t, "matchup", "AdAc", "AdQh")
	assert.Error(t, err)
}

func TestEnumerateAndQuery(t *testing.T) {
	dir := t.TempDir()
	tablePath := filepath.Join(dir, "table.json")
	resultsDir := filepath.Join(dir, "results")

	_, err := run(t, "enumerate", "--board", "AsKhQd7c3s", "--limit", "20", "-w", "2",
		"--results-dir", resultsDir, "--table", tablePath, "--log-level", "warn")
	require.NoError(t, err)

	p, err := results.LoadFromFile(tablePath)
	require.NoError(t, err)
	require.Contains(t, p, "22")

	out, err := run(t, "query", "--table", tablePath, "22", "22")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "22 vs 22\n"), out)

	// rebuilding from the files gives the same table
	rebuilt := filepath.Join(dir, "rebuilt.json")
	_, err = run(t, "collect", "--table", rebuilt, resultsDir)
	require.NoError(t, err)
	q, err := results.LoadFromFile(rebuilt)
	require.NoError(t, err)
	assert.Equal(t, p, q)

	// twenty quads cover only a few classes
	_, err = run(t, "grid", "--table", tablePath)
	assert.Error(t, err)
}

func TestBadLogLevel(t *testing.T) {
	_, err := run(t, "--log-level", "loud", "canonical", "AhKh")
	assert.Error(t, err)
}
