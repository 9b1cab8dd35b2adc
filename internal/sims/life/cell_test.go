package life

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newPopulated returns a populated size×size board with the given cells alive.
func newPopulated(t *testing.T, size int, alive ...Coord) *Board {
	t.Helper()
	b, err := NewBoard(size)
	require.NoError(t, err)
	require.NoError(t, b.Populate())
	for _, c := range alive {
		cell, err := b.CellAt(c.X, c.Y)
		require.NoError(t, err)
		cell.SetAlive(true)
	}
	return b
}

func TestSetNextStateRule(t *testing.T) {
	// On a 3x3 torus every other cell is a neighbour of the centre, so the
	// live neighbour count can be dialled from 0 to 8.
	others := []Coord{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}

	for live := 0; live <= NumNeighbours; live++ {
		for _, alive := range []bool{false, true} {
			t.Run(fmt.Sprintf("neighbours=%d/alive=%v", live, alive), func(t *testing.T) {
				b := newPopulated(t, 3, others[:live]...)
				centre, err := b.CellAt(1, 1)
				require.NoError(t, err)
				centre.SetAlive(alive)

				centre.SetNextState(b)

				var want bool
				switch live {
				case 2:
					want = alive
				case 3:
					want = true
				}
				assert.Equal(t, want, centre.IsAliveNextRound())
				assert.Equal(t, alive, centre.IsAlive(), "SetNextState must not commit")
			})
		}
	}
}

func TestSetNeighboursWrapsCorners(t *testing.T) {
	b := newPopulated(t, 3)
	corner, err := b.CellAt(0, 0)
	require.NoError(t, err)

	got := map[Coord]bool{}
	for _, idx := range corner.Neighbours() {
		got[b.cells[idx].Coord()] = true
	}
	assert.True(t, got[Coord{2, 2}], "opposite corner")
	assert.True(t, got[Coord{2, 0}], "opposite edge along x")
	assert.True(t, got[Coord{0, 2}], "opposite edge along y")
	assert.False(t, got[Coord{0, 0}], "cell is not its own neighbour")
	assert.Len(t, got, NumNeighbours)
}

func TestSetNeighboursOrder(t *testing.T) {
	b := newPopulated(t, 5)
	c, err := b.CellAt(2, 2)
	require.NoError(t, err)

	want := []Coord{{1, 1}, {1, 2}, {1, 3}, {2, 1}, {2, 3}, {3, 1}, {3, 2}, {3, 3}}
	for i, idx := range c.Neighbours() {
		assert.Equal(t, want[i], b.cells[idx].Coord(), "neighbour %d", i)
	}
}

func TestSetNeighboursRejectsCellOutsideBoard(t *testing.T) {
	b := newPopulated(t, 3)
	stray := newCell(5, 1)
	err := stray.SetNeighbours(b)
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestFlipStateBypassesPending(t *testing.T) {
	b := newPopulated(t, 3)
	c, err := b.CellAt(1, 1)
	require.NoError(t, err)

	c.FlipState()
	assert.True(t, c.IsAlive())
	assert.False(t, c.IsAliveNextRound())

	c.Update()
	assert.False(t, c.IsAlive(), "update commits the pending state, not the flip")
}

func TestCellEqual(t *testing.T) {
	a := newCell(1, 2)
	b := newCell(1, 2)
	assert.True(t, a.Equal(&b))

	b.FlipState()
	assert.False(t, a.Equal(&b))

	c := newCell(2, 1)
	assert.False(t, a.Equal(&c))
	assert.False(t, a.Equal(nil))
	assert.Equal(t, "(1,2) dead", a.String())
}
