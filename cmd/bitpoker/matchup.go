package main

import (
	"fmt"

	"github.com/behrlich/bitpoker/pkg/cards"
	"github.com/behrlich/bitpoker/pkg/equity"
	"github.com/behrlich/bitpoker/pkg/results"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newMatchupCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "matchup <hero> <villain> [board]",
		Short:   "Enumerate every board for one heads-up matchup",
		Example: "  bitpoker matchup AsAh KsKh\n  bitpoker matchup AhKh AsAd Th9h2c",
		Args:    cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			hero, err := cards.ParseCardSet(args[0])
			if err != nil {
				return fmt.Errorf("hero: %w", err)
			}
			villain, err := cards.ParseCardSet(args[1])
			if err != nil {
				return fmt.Errorf("villain: %w", err)
			}
			var board cards.CardSet
			if len(args) == 3 {
				if board, err = cards.ParseCardSet(args[2]); err != nil {
					return fmt.Errorf("board: %w", err)
				}
			}

			t, err := equity.NewCalculator().Enumerate(cmd.Context(), hero, villain, board)
			if err != nil {
				return err
			}
			a.log.WithFields(logrus.Fields{
				"hero":    hero.String(),
				"villain": villain.String(),
				"boards":  t.Total(),
			}).Debug("matchup enumerated")

			out := cmd.OutOrStdout()
			fmt.Fprint(out, results.Format(hero.String(), villain.String(), t))
			fmt.Fprintf(out, "Equity: %.4f%%\n", 100*t.Equity())
			return nil
		},
	}
}
