package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"torus-life/internal/logging"
	"torus-life/internal/sweep"
	"torus-life/internal/telemetry"
)

func main() {
	cfg := sweep.DefaultConfig()
	flag.IntVar(&cfg.Boards, "boards", cfg.Boards, "number of boards to simulate")
	flag.IntVar(&cfg.Size, "size", cfg.Size, "board edge length in cells")
	flag.Float64Var(&cfg.Density, "density", cfg.Density, "chance a cell starts alive")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "seed of the first board; board i uses seed+i")
	flag.IntVar(&cfg.MaxTurns, "max-turns", cfg.MaxTurns, "turn cap per board")
	flag.IntVar(&cfg.Workers, "workers", cfg.Workers, "parallel board simulations")
	verbose := flag.Bool("v", false, "log every board")
	flag.Parse()

	log := logging.New(os.Stderr, "loop-sweep", *verbose)
	if err := run(cfg, log); err != nil {
		if sweep.IsCancelled(err) {
			log.Warn("sweep interrupted")
			os.Exit(130)
		}
		log.Error("sweep failed", slog.Any("err", err))
		os.Exit(1)
	}
}

func run(cfg sweep.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	tp, err := telemetry.Setup(ctx, "loop-sweep")
	if err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			log.Warn("flush traces", slog.Any("err", err))
		}
	}()

	start := time.Now()
	log.Info("sweep starting",
		slog.Int("boards", cfg.Boards),
		slog.Int("size", cfg.Size),
		slog.Int("workers", cfg.Workers),
		slog.Bool("tracing", tp.Enabled()),
	)
	results, err := sweep.NewRunner(cfg, tp.Tracer(), log).Run(ctx)
	if err != nil {
		return err
	}
	summary := sweep.Summarize(results)
	log.Info("sweep finished", slog.Duration("elapsed", time.Since(start)))

	fmt.Printf("Boards: %d, looped: %d, unsettled after %d turns: %d\n",
		summary.Boards, summary.Looped, cfg.MaxTurns, len(summary.Unsettled))
	fmt.Printf("Transient: mean %.1f turns, max %d turns\n", summary.MeanTransient, summary.MaxTransient)
	fmt.Println("Periods:")
	for _, p := range summary.PeriodKeys() {
		fmt.Printf("  %4d: %d\n", p, summary.Periods[p])
	}
	if len(summary.Unsettled) > 0 {
		fmt.Printf("Unsettled seeds: %v\n", summary.Unsettled)
	}
	return nil
}
