package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"torus-life/internal/logging"
	"torus-life/internal/sims/life"
	"torus-life/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
)

type options struct {
	board    life.Config
	interval time.Duration
	logPath  string
	verbose  bool
}

func main() {
	opts := options{board: life.DefaultConfig()}
	opts.board.Size = 24
	flag.IntVar(&opts.board.Size, "size", opts.board.Size, "board edge length in cells")
	flag.Int64Var(&opts.board.Seed, "seed", opts.board.Seed, "seed for random boards")
	flag.Float64Var(&opts.board.Density, "density", opts.board.Density, "chance a cell starts alive on a random board")
	flag.StringVar(&opts.board.Pattern, "pattern", "", "catalog pattern to place instead of a random board")
	flag.DurationVar(&opts.interval, "interval", 150*time.Millisecond, "time between generations")
	flag.StringVar(&opts.logPath, "log", "", "write logs to this file")
	flag.BoolVar(&opts.verbose, "v", false, "enable debug logging")
	list := flag.Bool("patterns", false, "list catalog patterns and exit")
	flag.Parse()

	if *list {
		fmt.Println(strings.Join(life.PatternNames(), "\n"))
		return
	}
	os.Exit(run(opts))
}

// run owns the log file so it is closed before main exits.
func run(opts options) int {
	var out io.Writer = io.Discard
	if opts.logPath != "" {
		f, err := os.OpenFile(opts.logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open log: %v\n", err)
			return 1
		}
		defer f.Close()
		out = f
	}
	log := logging.New(out, "life-tui", opts.verbose)

	cfg := opts.board
	sim, err := life.New(cfg)
	if err != nil {
		log.Error("invalid board", slog.Any("err", err))
		fmt.Fprintf(os.Stderr, "invalid board: %v\n", err)
		return 2
	}
	log.Info("starting", slog.Int("size", cfg.Size), slog.Int64("seed", cfg.Seed), slog.String("pattern", cfg.Pattern))

	model := tui.NewModel(sim, cfg.Seed, opts.interval, log)
	if _, err := tea.NewProgram(model).Run(); err != nil {
		log.Error("program stopped", slog.Any("err", err))
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}
