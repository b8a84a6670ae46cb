package search

import (
	"context"
	"fmt"
	"time"

	"github.com/e12tools/resistor-combinator/internal/config"
	"github.com/e12tools/resistor-combinator/pkg/mathutil"
	"github.com/e12tools/resistor-combinator/pkg/resistor"
	"go.uber.org/zap"
)

// RecordWriter receives the report produced by Engine.Run.
type RecordWriter interface {
	WriteHeader() error
	WriteRecord(Record) error
}

// Engine runs the best-match search over a fixed candidate table. The best
// match lives on the Engine and, unless ResetBetweenTargets is set, carries
// over from one target to the next.
type Engine struct {
	logger     *zap.Logger
	conf       config.SearchConfig
	candidates []float64
	best       Match
}

// NewEngine builds the candidate table once for the given settings.
func NewEngine(logger *zap.Logger, conf config.SearchConfig) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}

	candidates := resistor.Candidates(conf.BaseValues, conf.Decades, conf.EndValue)
	logger.Debug(fmt.Sprintf("generated %d candidate values", len(candidates)),
		zap.String("op", "search.NewEngine"),
		zap.Int("decades", conf.Decades),
		zap.Float64("endValue", conf.EndValue),
	)

	return &Engine{
		logger:     logger,
		conf:       conf,
		candidates: candidates,
	}
}

// Candidates returns the candidate table in search order.
func (e *Engine) Candidates() []float64 {
	return e.candidates
}

// Best returns the current best match.
func (e *Engine) Best() Match {
	return e.best
}

// Step searches target with every operator, starting from the carried best
// match (or an empty one when ResetBetweenTargets is set), and returns the
// resulting report row.
func (e *Engine) Step(target float64) Record {
	if e.conf.ResetBetweenTargets {
		e.best = emptyMatch()
	}
	for _, op := range resistor.Operators {
		Combine(op, e.candidates, target, e.conf.Tolerance, &e.best)
	}
	return NewRecord(target, e.best)
}

// Lookup runs a fresh search for a single target. It does not disturb the
// best match carried by Run or Step.
func (e *Engine) Lookup(target float64) Record {
	best := emptyMatch()
	for _, op := range resistor.Operators {
		Combine(op, e.candidates, target, e.conf.Tolerance, &best)
	}
	return NewRecord(target, best)
}

// Run writes the header, then searches every configured target in order and
// writes one record per target. The context is checked once per target; on
// cancellation the records written so far stand and the context error is
// returned along with the partial summary.
func (e *Engine) Run(ctx context.Context, w RecordWriter) (summary Summary, err error) {
	start := time.Now()
	defer func() {
		summary.Elapsed = time.Since(start)
	}()

	if err = w.WriteHeader(); err != nil {
		return summary, fmt.Errorf("failed to write report header: %w", err)
	}

	visit := func(target float64) error {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("search interrupted before target %g: %w", target, err)
		}

		record := e.Step(target)
		if err := w.WriteRecord(record); err != nil {
			return fmt.Errorf("failed to write record for target %g: %w", target, err)
		}
		summary.add(record, e.conf.Tolerance)

		if e.conf.ProgressEvery > 0 && summary.Targets%e.conf.ProgressEvery == 0 {
			e.logger.Info("search progress",
				zap.String("op", "search.Run"),
				zap.Int64("targets", summary.Targets),
				zap.Float64("target", target),
				zap.Int64("exactMatches", summary.ExactMatches),
			)
		}
		return nil
	}

	if len(e.conf.Targets) > 0 {
		for _, target := range e.conf.Targets {
			if err = visit(target); err != nil {
				return summary, err
			}
		}
		return summary, nil
	}

	for target := e.conf.TargetStart; target <= e.conf.TargetEnd; target++ {
		if err = visit(target); err != nil {
			return summary, err
		}
	}
	return summary, nil
}

// Summary holds run totals.
type Summary struct {
	Targets          int64
	ExactMatches     int64
	WorstPercentDiff float64
	WorstTarget      float64
	MeanPercentDiff  float64
	Elapsed          time.Duration

	percentSum float64
}

func (s *Summary) add(record Record, tolerance float64) {
	s.Targets++
	if mathutil.BelowTolerance(record.Diff, tolerance) {
		s.ExactMatches++
	}
	if s.Targets == 1 || record.PercentDiff > s.WorstPercentDiff {
		s.WorstPercentDiff = record.PercentDiff
		s.WorstTarget = record.Target
	}
	s.percentSum += record.PercentDiff
	s.MeanPercentDiff = s.percentSum / float64(s.Targets)
}
