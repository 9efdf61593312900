package batch

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"github.com/c9s/indicatorkit/pkg/config"
	"github.com/c9s/indicatorkit/pkg/types"
)

var log = logrus.WithField("component", "batch")

// Runner evaluates indicator jobs over the same bars
type Runner struct {
	// Parallelism bounds the number of jobs evaluated at the same time, defaults to 1
	Parallelism int
}

func NewRunner(parallelism int) *Runner {
	return &Runner{Parallelism: parallelism}
}

// Run evaluates every job and returns the results in job order.
//
// A failing job leaves a nil result at its position and its error is combined with the
// errors of the other jobs; the remaining jobs still run. Cancelling the context stops
// the jobs that have not started yet.
func (r *Runner) Run(ctx context.Context, candles []types.Candlestick, jobs []config.IndicatorConfig) ([]*Result, error) {
	parallelism := r.Parallelism
	if parallelism < 1 {
		parallelism = 1
	}

	results := make([]*Result, len(jobs))

	var mu sync.Mutex
	var errs error

	g, subCtx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)
	for i, job := range jobs {
		// allocate a copy of the iteration variables
		idx := i
		conf := job
		g.Go(func() error {
			if err := subCtx.Err(); err != nil {
				return err
			}

			result, err := evaluate(candles, conf)
			if err != nil {
				mu.Lock()
				errs = multierr.Append(errs, errors.Wrapf(err, "indicator %s", conf.Label()))
				mu.Unlock()
				return nil
			}

			results[idx] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		errs = multierr.Append(errs, err)
	}

	return results, errs
}

func evaluate(candles []types.Candlestick, conf config.IndicatorConfig) (*Result, error) {
	evaluator, ok := LoadedEvaluators[conf.ID]
	if !ok {
		return nil, &UnknownIndicatorError{ID: conf.ID}
	}

	// the evaluators may project the bars onto a single column, so every field is
	// validated here before any projection
	if err := types.ValidateCandlesticks(candles); err != nil {
		return nil, err
	}

	// every job works on its own copy of the bars
	ks := make([]types.Candlestick, len(candles))
	copy(ks, candles)

	start := time.Now()
	columns, rows, err := evaluator(ks, conf)
	if err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"indicator": conf.Label(),
		"rows":      len(rows),
		"elapsed":   time.Since(start),
	}).Debugf("evaluated %s", conf.ID)

	return &Result{
		ID:      conf.ID,
		Name:    conf.Label(),
		Columns: columns,
		Rows:    rows,
	}, nil
}
