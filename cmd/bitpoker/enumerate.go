package main

import (
	"fmt"
	"iter"
	"os"
	"os/signal"

	"github.com/behrlich/bitpoker/pkg/cards"
	"github.com/behrlich/bitpoker/pkg/enumerate"
	"github.com/behrlich/bitpoker/pkg/equity"
	"github.com/behrlich/bitpoker/pkg/results"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newEnumerateCmd(a *app) *cobra.Command {
	var (
		workers    int
		resultsDir string
		tablePath  string
		boardStr   string
		limit      int
		noFiles    bool
	)

	cmd := &cobra.Command{
		Use:   "enumerate",
		Short: "Enumerate every pair of hole-card combos over all boards",
		Long: "Runs every 4-card quadruple of the deck as its three heads-up pairings\n" +
			"over all 1,712,304 boards, writing one result file per matchup and the\n" +
			"class-vs-class win table as JSON.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			fallback(flags, "workers", &workers, a.cfg.Enumerate.Workers)
			fallback(flags, "results-dir", &resultsDir, a.cfg.Enumerate.ResultsDir)
			fallback(flags, "table", &tablePath, a.cfg.TablePath)

			board, err := cards.ParseCardSet(boardStr)
			if err != nil {
				return fmt.Errorf("board: %w", err)
			}

			table := results.NewTable()
			sinks := []enumerate.Sink{table}
			if !noFiles {
				sinks = append(sinks, &results.DirWriter{Root: resultsDir})
			}

			seq := enumerate.AllQuads(board)
			total := enumerate.Count(board)
			if limit > 0 && limit < total {
				seq, total = first(seq, limit), limit
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			a.log.WithFields(logrus.Fields{
				"workers": workers,
				"quads":   total,
				"board":   board.String(),
			}).Info("enumerating")

			d := &enumerate.Driver{
				Workers:    workers,
				Calculator: equity.NewCalculator(),
				Sinks:      sinks,
				Log:        a.log,
			}
			if err := d.Run(ctx, seq); err != nil {
				return err
			}

			if err := table.Probabilities().SaveToFile(tablePath); err != nil {
				return err
			}
			a.log.WithField("path", tablePath).Info("wrote probability table")
			return nil
		},
	}

	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "parallel quads (default from config)")
	cmd.Flags().StringVar(&resultsDir, "results-dir", "", "directory for per-matchup files (default from config)")
	cmd.Flags().StringVar(&tablePath, "table", "", "JSON table output path (default from config)")
	cmd.Flags().StringVar(&boardStr, "board", "", "fixed board cards to enumerate on")
	cmd.Flags().IntVar(&limit, "limit", 0, "stop after this many quads (0 = all)")
	cmd.Flags().BoolVar(&noFiles, "no-files", false, "skip per-matchup result files")
	return cmd
}

func newCollectCmd(a *app) *cobra.Command {
	var tablePath string

	cmd := &cobra.Command{
		Use:   "collect <results-dir>",
		Short: "Rebuild the JSON table from per-matchup result files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fallback(cmd.Flags(), "table", &tablePath, a.cfg.TablePath)

			table := results.NewTable()
			n, err := results.Collect(args[0], table)
			if err != nil {
				return err
			}
			if err := table.Probabilities().SaveToFile(tablePath); err != nil {
				return err
			}
			a.log.WithFields(logrus.Fields{"matchups": n, "path": tablePath}).Info("wrote probability table")
			return nil
		},
	}

	cmd.Flags().StringVar(&tablePath, "table", "", "JSON table output path (default from config)")
	return cmd
}

// first stops seq after n quads.
func first(seq iter.Seq[enumerate.Quad], n int) iter.Seq[enumerate.Quad] {
	return func(yield func(enumerate.Quad) bool) {
		i := 0
		for q := range seq {
			if i == n || !yield(q) {
				return
			}
			i++
		}
	}
}
