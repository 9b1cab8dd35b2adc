package ui

import (
	"errors"
	"testing"

	"torus-life/internal/core"
	"torus-life/internal/sims/life"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLife(t *testing.T, pattern string) *life.Life {
	t.Helper()
	cfg := life.DefaultConfig()
	cfg.Size = 6
	cfg.Pattern = pattern
	sim, err := life.New(cfg)
	require.NoError(t, err)
	return sim
}

func TestSnapshotLines(t *testing.T) {
	sim := newLife(t, "block")
	lines := SnapshotLines(Title(sim), sim.Parameters())

	require.NotEmpty(t, lines)
	assert.Equal(t, Line{Text: "Life Status", Header: true}, lines[0])
	assert.Contains(t, lines, Line{Text: "Board", Header: true})
	assert.Contains(t, lines, Line{Text: "Pattern: block"})
	assert.Contains(t, lines, Line{Text: "Turn: 0"})
}

func TestLoopBanner(t *testing.T) {
	sim := newLife(t, "blinker")
	assert.Empty(t, LoopBanner(sim))

	for i := 0; i < 3; i++ {
		sim.Step()
	}
	require.True(t, sim.Halted())
	assert.Equal(t, "LOOP DETECTED: repeats turn 0 every 2", LoopBanner(sim))
}

func TestTitleWithoutSim(t *testing.T) {
	assert.Equal(t, "Status", Title(nil))
}

type failingSim struct {
	core.Sim
	err error
}

func (f failingSim) Err() error { return f.err }

func TestSimErr(t *testing.T) {
	sim := newLife(t, "block")
	assert.NoError(t, SimErr(sim))

	boom := errors.New("boom")
	got := SimErr(failingSim{Sim: sim, err: boom})
	assert.ErrorIs(t, got, boom)
	assert.Equal(t, Line{Text: "Error: boom", Header: true}, ErrorLine(got))
}
