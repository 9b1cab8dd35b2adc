package life

import (
	"fmt"

	"torus-life/internal/core"
)

// Life adapts a loop-detecting Board to the core.Sim contract used by the
// drivers. Step stops advancing once the board has looped.
type Life struct {
	cfg   Config
	seed  int64
	board *Board
	grid  *core.ByteGrid
	err   error
}

// New validates cfg and returns a seeded simulation.
func New(cfg Config) (*Life, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	l := &Life{cfg: cfg, grid: core.NewByteGrid(cfg.Size, cfg.Size)}
	l.Reset(0)
	if l.err != nil {
		return nil, l.err
	}
	return l, nil
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.cfg.Size, H: l.cfg.Size} }

// Cells exposes the current grid values row by row (1 alive, 0 dead).
func (l *Life) Cells() []uint8 { return l.grid.Cells() }

// Board returns the underlying board.
func (l *Life) Board() *Board { return l.board }

// Config returns the configuration the sim was built with.
func (l *Life) Config() Config { return l.cfg }

// Seed returns the seed used by the last Reset.
func (l *Life) Seed() int64 { return l.seed }

// Err returns the last error hit while resetting or stepping.
func (l *Life) Err() error { return l.err }

// Halted reports whether the board has looped.
func (l *Life) Halted() bool {
	return l.board != nil && l.board.Phase() == PhaseLooped
}

// Reset replaces the board with a freshly populated one. A zero seed reuses
// the configured seed. With a pattern configured the seed is unused.
func (l *Life) Reset(seed int64) {
	if seed == 0 {
		seed = l.cfg.Seed
	}
	l.seed = seed
	l.err = nil

	board, err := NewBoard(l.cfg.Size)
	if err == nil {
		err = board.Populate()
	}
	if err == nil {
		err = l.seedBoard(board, seed)
	}
	if err != nil {
		l.err = fmt.Errorf("reset: %w", err)
		return
	}
	l.board = board
	l.sync()
}

func (l *Life) seedBoard(b *Board, seed int64) error {
	if l.cfg.Pattern != "" {
		p, err := LookupPattern(l.cfg.Pattern)
		if err != nil {
			return err
		}
		if l.cfg.X < 0 || l.cfg.Y < 0 {
			return PlaceCentred(b, p)
		}
		return Place(b, p, l.cfg.X, l.cfg.Y)
	}
	FillRandom(b, seed, l.cfg.Density)
	return nil
}

// FillRandom sets each cell alive with probability density using a
// deterministic generator seeded with seed.
func FillRandom(b *Board, seed int64, density float64) {
	rng := core.NewRNG(seed)
	for _, c := range b.Cells() {
		c.SetAlive(rng.Chance(density))
	}
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	if l.board == nil || l.Halted() {
		return
	}
	if _, err := l.board.AdvanceTurn(); err != nil {
		l.err = err
		return
	}
	l.sync()
}

// Toggle flips the cell at (x, y). Edits are only accepted before the first
// generation.
func (l *Life) Toggle(x, y int) error {
	if l.board == nil {
		return ErrNotPopulated
	}
	if l.board.Phase() != PhasePopulated {
		return ErrStarted
	}
	c, err := l.board.CellAt(x, y)
	if err != nil {
		return err
	}
	c.FlipState()
	l.sync()
	return nil
}

func (l *Life) sync() {
	for _, c := range l.board.Cells() {
		var v uint8
		if c.IsAlive() {
			v = 1
		}
		l.grid.Set(c.X(), c.Y(), v)
	}
}

func init() {
	core.Register("life", func(opts map[string]string) (core.Sim, error) {
		cfg, err := FromMap(opts)
		if err != nil {
			return nil, err
		}
		l, err := New(cfg)
		if err != nil {
			return nil, err
		}
		return l, nil
	})
}
