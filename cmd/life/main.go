//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"torus-life/internal/app"
	"torus-life/internal/core"
	"torus-life/internal/logging"
	_ "torus-life/internal/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	log := logging.New(os.Stderr, "life", cfg.Verbose)
	os.Exit(run(cfg, log))
}

func run(cfg *app.Config, log *slog.Logger) int {
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", slog.Any("err", err))
		return 2
	}

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Error("unknown sim", slog.String("sim", cfg.Sim), slog.Any("available", core.SimNames()))
		return 2
	}
	sim, err := factory(cfg.SimOptions())
	if err != nil {
		log.Error("invalid board", slog.Any("err", err))
		return 2
	}

	game := app.New(sim, cfg, log)
	size := sim.Size()

	ebiten.SetWindowTitle("torus-life — " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.HUDWidth, size.H*cfg.Scale)

	log.Info("starting", slog.Int("size", size.W), slog.Int64("seed", cfg.Seed), slog.String("pattern", cfg.Pattern))
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Error("game stopped", slog.Any("err", err))
		return 1
	}
	return 0
}
