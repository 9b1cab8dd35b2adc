// Package sweep runs many independently seeded boards until each one loops
// or hits a turn cap, and summarises how long they took to settle.
package sweep

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"slices"

	"torus-life/internal/sims/life"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"golang.org/x/sync/errgroup"
)

// Config controls a sweep. Board i is seeded with Seed+i. MaxTurns caps the
// number of turn advances per board.
type Config struct {
	Boards   int
	Size     int
	Density  float64
	Seed     int64
	MaxTurns int
	Workers  int
}

// DefaultConfig returns the standard sweep settings.
func DefaultConfig() Config {
	return Config{
		Boards:   64,
		Size:     32,
		Density:  0.3,
		Seed:     1,
		MaxTurns: 5000,
		Workers:  runtime.NumCPU(),
	}
}

// Validate reports the first unusable setting.
func (c Config) Validate() error {
	switch {
	case c.Boards <= 0:
		return fmt.Errorf("sweep: boards must be positive, got %d", c.Boards)
	case c.Size <= 0:
		return fmt.Errorf("sweep: %w: got %d", life.ErrInvalidSize, c.Size)
	case c.Density < 0 || c.Density > 1:
		return fmt.Errorf("sweep: density %v outside [0,1]", c.Density)
	case c.MaxTurns <= 0:
		return fmt.Errorf("sweep: max turns must be positive, got %d", c.MaxTurns)
	}
	return nil
}

// Result describes a single board run.
type Result struct {
	Seed      int64
	Looped    bool
	Loop      life.Loop
	Turns     int
	FinalLive int
	Snapshots int
}

// Runner executes sweeps.
type Runner struct {
	cfg    Config
	tracer trace.Tracer
	log    *slog.Logger
}

// NewRunner returns a Runner. A nil tracer or logger disables that output.
func NewRunner(cfg Config, tracer trace.Tracer, log *slog.Logger) *Runner {
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("sweep")
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	return &Runner{cfg: cfg, tracer: tracer, log: log}
}

// Run simulates every board, at most Workers at a time. Results are in seed
// order. Cancelling ctx stops all boards between turns.
func (r *Runner) Run(ctx context.Context) ([]Result, error) {
	if err := r.cfg.Validate(); err != nil {
		return nil, err
	}
	ctx, span := r.tracer.Start(ctx, "sweep", trace.WithAttributes(
		attribute.Int("sweep.boards", r.cfg.Boards),
		attribute.Int("sweep.size", r.cfg.Size),
		attribute.Int("sweep.workers", r.cfg.Workers),
	))
	defer span.End()

	results := make([]Result, r.cfg.Boards)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Workers)
	for i := range results {
		seed := r.cfg.Seed + int64(i)
		g.Go(func() error {
			res, err := r.RunBoard(gctx, seed)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return results, nil
}

// RunBoard simulates one board seeded with seed.
func (r *Runner) RunBoard(ctx context.Context, seed int64) (Result, error) {
	ctx, span := r.tracer.Start(ctx, "board", trace.WithAttributes(
		attribute.Int64("board.seed", seed),
		attribute.Int("board.size", r.cfg.Size),
	))
	defer span.End()

	b, err := life.NewBoard(r.cfg.Size)
	if err == nil {
		err = b.Populate()
	}
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return Result{}, err
	}
	life.FillRandom(b, seed, r.cfg.Density)

	looped := false
	for calls := 0; calls < r.cfg.MaxTurns && !looped; calls++ {
		if err := ctx.Err(); err != nil {
			span.SetStatus(codes.Error, err.Error())
			return Result{}, err
		}
		if looped, err = b.AdvanceTurn(); err != nil {
			span.SetStatus(codes.Error, err.Error())
			return Result{}, err
		}
	}

	res := Result{
		Seed:      seed,
		Looped:    looped,
		Turns:     b.Turn(),
		FinalLive: b.LiveCount(),
		Snapshots: b.History().Snapshots(),
	}
	if loop, ok := b.Loop(); ok {
		res.Loop = loop
	}
	span.SetAttributes(
		attribute.Bool("board.looped", res.Looped),
		attribute.Int("board.turns", res.Turns),
		attribute.Int("board.period", res.Loop.Period()),
		attribute.Int("board.live", res.FinalLive),
	)
	r.log.Debug("board finished",
		slog.Int64("seed", seed),
		slog.Bool("looped", res.Looped),
		slog.Int("turns", res.Turns),
		slog.Int("period", res.Loop.Period()),
	)
	return res, nil
}

// Summary aggregates a sweep.
type Summary struct {
	Boards        int
	Looped        int
	MeanTransient float64
	MaxTransient  int
	Periods       map[int]int
	Unsettled     []int64
}

// Summarize aggregates results. Transient is the turn on which the repeated
// state first appeared.
func Summarize(results []Result) Summary {
	s := Summary{Boards: len(results), Periods: map[int]int{}}
	total := 0
	for _, r := range results {
		if !r.Looped {
			s.Unsettled = append(s.Unsettled, r.Seed)
			continue
		}
		s.Looped++
		total += r.Loop.First
		s.MaxTransient = max(s.MaxTransient, r.Loop.First)
		s.Periods[r.Loop.Period()]++
	}
	if s.Looped > 0 {
		s.MeanTransient = float64(total) / float64(s.Looped)
	}
	return s
}

// PeriodKeys returns the observed periods in ascending order.
func (s Summary) PeriodKeys() []int {
	keys := make([]int, 0, len(s.Periods))
	for p := range s.Periods {
		keys = append(keys, p)
	}
	slices.Sort(keys)
	return keys
}

// IsCancelled reports whether err came from context cancellation.
func IsCancelled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
