// Command bitpoker evaluates hands, enumerates heads-up matchups and queries
// the resulting preflop probability table.
package main

import (
	"os"
	"strings"

	"github.com/behrlich/bitpoker/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	configFile string
	logLevel   string

	cfg config.Config
	log *logrus.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{log: logrus.New()}

	root := &cobra.Command{
		Use:          "bitpoker",
		Short:        "Bitwise Texas Hold'em hand evaluation and heads-up enumeration",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.configFile, "config", "", "config file (default $BITPOKER_CONFIG_FILE or "+config.DefaultFile+")")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level, overrides the config file")

	root.AddCommand(
		newEvalCmd(a),
		newCanonicalCmd(a),
		newMatchupCmd(a),
		newEnumerateCmd(a),
		newCollectCmd(a),
		newQueryCmd(a),
		newGridCmd(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	a.log.SetOutput(cmd.ErrOrStderr())
	lvl := cfg.Log.Level
	if a.logLevel != "" {
		lvl = a.logLevel
	}
	if lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			return err
		}
		a.log.SetLevel(level)
	}

	if strings.ToLower(cfg.Log.Format) == "json" {
		a.log.SetFormatter(&logrus.JSONFormatter{})
	}
	return nil
}

// fallback sets *dst to val unless the named flag was given.
func fallback[T any](flags *pflag.FlagSet, name string, dst *T, val T) {
	if !flags.Changed(name) {
		*dst = val
	}
}
