// Package results stores enumeration output: one text file per concrete
// matchup, and a JSON table of win percentages per starting-hand class.
package results

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/behrlich/bitpoker/pkg/cards"
	"github.com/behrlich/bitpoker/pkg/equity"
)

// ErrMalformedResult is returned when a result file cannot be parsed.
var ErrMalformedResult = errors.New("malformed result file")

// DirWriter writes one file per matchup under Root, as
// <Root>/<hero>/<villain>.txt, plus the mirrored file for the villain.
// Distinct matchups touch distinct files, so Record may be called
// concurrently.
type DirWriter struct {
	Root string
}

// Record writes m and its mirror.
func (w *DirWriter) Record(m equity.Matchup) error {
	hero, villain := m.Hero.String(), m.Villain.String()
	if err := w.write(hero, villain, m.Tally); err != nil {
		return err
	}
	return w.write(villain, hero, m.Flip())
}

func (w *DirWriter) write(hero, villain string, t equity.Tally) error {
	dir := filepath.Join(w.Root, hero)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	path := filepath.Join(dir, villain+".txt")
	if err := os.WriteFile(path, []byte(Format(hero, villain, t)), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Format renders a tally in the result file layout:
//
//	AsAh vs KsKh
//	Win:  81.9477% (1403194/1712304)
//	Loss: 17.6076% (301496/1712304)
//	Tie:  0.4447% (7614/1712304)
func Format(hero, villain string, t equity.Tally) string {
	total := t.Total()
	var b strings.Builder
	fmt.Fprintf(&b, "%s vs %s\n", hero, villain)
	fmt.Fprintf(&b, "Win:  %.4f%% (%d/%d)\n", 100*t.WinPct(), t.Win, total)
	fmt.Fprintf(&b, "Loss: %.4f%% (%d/%d)\n", 100*t.LossPct(), t.Loss, total)
	fmt.Fprintf(&b, "Tie:  %.4f%% (%d/%d)\n", 100*t.TiePct(), t.Tie, total)
	return b.String()
}

// Parse reads a result file back into a matchup. The board is not stored
// and is left empty.
func Parse(r io.Reader) (equity.Matchup, error) {
	var m equity.Matchup
	sc := bufio.NewScanner(r)

	if !sc.Scan() {
		return m, fmt.Errorf("%w: missing header", ErrMalformedResult)
	}
	hero, villain, ok := strings.Cut(sc.Text(), " vs ")
	if !ok {
		return m, fmt.Errorf("%w: header %q", ErrMalformedResult, sc.Text())
	}
	var err error
	if m.Hero, err = cards.ParseCardSet(hero); err != nil {
		return m, fmt.Errorf("%w: %v", ErrMalformedResult, err)
	}
	if m.Villain, err = cards.ParseCardSet(villain); err != nil {
		return m, fmt.Errorf("%w: %v", ErrMalformedResult, err)
	}

	var total uint64
	for _, line := range []struct {
		prefix string
		dst    *uint64
	}{
		{"Win:", &m.Win},
		{"Loss:", &m.Loss},
		{"Tie:", &m.Tie},
	} {
		if !sc.Scan() {
			return m, fmt.Errorf("%w: missing %s line", ErrMalformedResult, line.prefix)
		}
		rest, ok := strings.CutPrefix(sc.Text(), line.prefix)
		if !ok {
			return m, fmt.Errorf("%w: want %s, got %q", ErrMalformedResult, line.prefix, sc.Text())
		}
		var pct float64
		if _, err := fmt.Sscanf(strings.TrimSpace(rest), "%f%% (%d/%d)", &pct, line.dst, &total); err != nil {
			return m, fmt.Errorf("%w: %s line: %v", ErrMalformedResult, line.prefix, err)
		}
	}
	if err := sc.Err(); err != nil {
		return m, err
	}
	if m.Total() != total {
		return m, fmt.Errorf("%w: counts sum to %d, file says %d", ErrMalformedResult, m.Total(), total)
	}
	return m, nil
}

// Collect reads every result file under root into table. Each file is one
// direction of a matchup, so only one of each mirrored pair is recorded.
func Collect(root string, table *Table) (int, error) {
	n := 0
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".txt" {
			return nil
		}
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()

		m, err := Parse(f)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		// the mirror carries the same counts from the other side
		if m.Hero > m.Villain {
			return nil
		}
		table.Record(m)
		n++
		return nil
	})
	return n, err
}
