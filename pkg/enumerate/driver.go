package enumerate

import (
	"context"
	"fmt"
	"iter"
	"runtime"
	"sync/atomic"

	"github.com/behrlich/bitpoker/pkg/equity"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Sink receives finished matchups. Record is called from many goroutines.
type Sink interface {
	Record(m equity.Matchup) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(m equity.Matchup) error

// Record calls f(m).
func (f SinkFunc) Record(m equity.Matchup) error {
	return f(m)
}

// Driver runs one EnumerateQuad per quad with at most Workers in flight.
type Driver struct {
	Workers    int
	Calculator *equity.Calculator
	Sinks      []Sink
	Log        logrus.FieldLogger
}

// Run enumerates every quad in seq. The first error from the calculator or
// a sink cancels the remaining work and is returned.
func (d *Driver) Run(ctx context.Context, seq iter.Seq[Quad]) error {
	workers := d.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	calc := d.Calculator
	if calc == nil {
		calc = equity.NewCalculator()
	}
	log := d.Log
	if log == nil {
		log = logrus.StandardLogger()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	var done atomic.Int64
	lead := -1
	for q := range seq {
		if gctx.Err() != nil {
			break
		}
		if idx := q.Cards[0].Index(); idx != lead {
			lead = idx
			log.WithFields(logrus.Fields{
				"lead":     q.Cards[0].String(),
				"finished": done.Load(),
			}).Info("starting quads")
		}

		g.Go(func() error {
			ms, err := calc.EnumerateQuad(gctx, q.Cards, q.Board)
			if err != nil {
				return fmt.Errorf("quad %v: %w", q.Cards, err)
			}
			for _, m := range ms {
				for _, s := range d.Sinks {
					if err := s.Record(m); err != nil {
						return fmt.Errorf("record %s vs %s: %w", m.Hero, m.Villain, err)
					}
				}
			}
			done.Add(1)
			log.WithField("quad", fmt.Sprint(q.Cards)).Debug("quad finished")
			return nil
		})
	}

	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	log.WithField("finished", done.Load()).Info("enumeration done")
	return err
}
