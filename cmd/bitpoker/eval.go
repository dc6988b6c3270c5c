package main

import (
	"fmt"
	"strings"

	"github.com/behrlich/bitpoker/pkg/cards"
	"github.com/behrlich/bitpoker/pkg/notation"
	"github.com/spf13/cobra"
)

func newEvalCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "eval <cards>",
		Short:   "Evaluate the best five-card hand in a set of cards",
		Example: "  bitpoker eval AsKsQsJsTs9h2c\n  bitpoker eval Ah Kd 7c 7d 2s",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := cards.ParseCardSet(strings.Join(args, ""))
			if err != nil {
				return err
			}
			if set.Count() < 5 {
				return fmt.Errorf("%w: need at least 5 cards, got %d", cards.ErrInvalidCard, set.Count())
			}

			v := cards.Evaluate(set)
			a.log.WithField("cards", set.String()).Debug("evaluated")
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n%#08x\n%s\n", set, uint32(v), v)
			return nil
		},
	}
}

func newCanonicalCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "canonical <two cards>",
		Short:   "Print the starting-hand class of two hole cards",
		Example: "  bitpoker canonical AhKh",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := cards.ParseCardSet(strings.Join(args, ""))
			if err != nil {
				return err
			}
			combo, err := notation.ComboFromSet(set)
			if err != nil {
				return err
			}

			idx := combo.Class()
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d %s\n", combo, idx, notation.Label(idx))
			return nil
		},
	}
}
