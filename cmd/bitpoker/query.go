package main

import (
	"fmt"
	"strings"

	"github.com/behrlich/bitpoker/pkg/abstraction"
	"github.com/behrlich/bitpoker/pkg/notation"
	"github.com/behrlich/bitpoker/pkg/results"
	"github.com/spf13/cobra"
)

func newQueryCmd(a *app) *cobra.Command {
	var tablePath string

	cmd := &cobra.Command{
		Use:     "query <hero class> <villain class>",
		Short:   "Look up a class-vs-class matchup in the probability table",
		Example: "  bitpoker query AKs QQ",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fallback(cmd.Flags(), "table", &tablePath, a.cfg.TablePath)
			p, err := results.LoadFromFile(tablePath)
			if err != nil {
				return err
			}
			a.log.WithField("path", tablePath).Debug("loaded probability table")

			q, err := p.Query(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), q)
			return nil
		},
	}

	cmd.Flags().StringVar(&tablePath, "table", "", "JSON table path (default from config)")
	return cmd
}

func newGridCmd(a *app) *cobra.Command {
	var (
		tablePath string
		buckets   int
	)

	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Print the 13x13 starting-hand matrix of equity buckets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fallback(cmd.Flags(), "table", &tablePath, a.cfg.TablePath)
			fallback(cmd.Flags(), "buckets", &buckets, a.cfg.Buckets)
			p, err := results.LoadFromFile(tablePath)
			if err != nil {
				return err
			}

			grid, err := abstraction.NewBucketer(p, buckets).Grid()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			var b strings.Builder
			b.WriteString("    ")
			for col := range grid {
				fmt.Fprintf(&b, "%4s", notation.Label(col*len(grid) + col)[:1])
			}
			fmt.Fprintln(out, b.String())
			for row := range grid {
				b.Reset()
				fmt.Fprintf(&b, "%4s", notation.Label(row*len(grid) + row)[:1])
				for col := range grid[row] {
					fmt.Fprintf(&b, "%4d", grid[row][col])
				}
				fmt.Fprintln(out, b.String())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&tablePath, "table", "", "JSON table path (default from config)")
	cmd.Flags().IntVar(&buckets, "buckets", 0, "number of equity buckets (default from config)")
	return cmd
}
