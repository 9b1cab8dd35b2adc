package life

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoardRejectsNonPositiveSize(t *testing.T) {
	for _, size := range []int{0, -1, -64} {
		b, err := NewBoard(size)
		assert.ErrorIs(t, err, ErrInvalidSize, "size %d", size)
		assert.Nil(t, b)
	}
}

func TestPopulateBuildsTorus(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4, 7} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			b := newPopulated(t, n)
			cells := b.Cells()
			require.Len(t, cells, n*n)

			seen := map[Coord]bool{}
			for _, c := range cells {
				require.False(t, seen[c.Coord()], "duplicate cell %v", c.Coord())
				seen[c.Coord()] = true

				at, err := b.CellAt(c.X(), c.Y())
				require.NoError(t, err)
				assert.Same(t, c, at)

				if n < 3 {
					continue
				}
				nb := map[Coord]bool{}
				for _, idx := range c.Neighbours() {
					nb[b.cells[idx].Coord()] = true
				}
				assert.Len(t, nb, NumNeighbours, "cell %v", c.Coord())
				assert.False(t, nb[c.Coord()])
			}
		})
	}
}

func TestPopulateTwiceFails(t *testing.T) {
	b := newPopulated(t, 4)
	assert.ErrorIs(t, b.Populate(), ErrPopulated)
}

func TestCellAtOutOfRange(t *testing.T) {
	const n = 4
	b := newPopulated(t, n)
	for _, c := range []Coord{{-1, 0}, {n, 0}, {0, -1}, {0, n}, {n, n}} {
		cell, err := b.CellAt(c.X, c.Y)
		assert.ErrorIs(t, err, ErrOutOfRange, "coord %v", c)
		assert.Nil(t, cell)
	}
}

func TestUnpopulatedBoard(t *testing.T) {
	b, err := NewBoard(3)
	require.NoError(t, err)
	assert.Equal(t, PhaseEmpty, b.Phase())

	_, err = b.CellAt(0, 0)
	assert.ErrorIs(t, err, ErrNotPopulated)

	looped, err := b.AdvanceTurn()
	assert.ErrorIs(t, err, ErrNotPopulated)
	assert.False(t, looped)
}

func TestBlockIsStillLife(t *testing.T) {
	block := []Coord{{2, 2}, {2, 3}, {3, 2}, {3, 3}}
	b := newPopulated(t, 6, block...)

	looped, err := b.AdvanceTurn()
	require.NoError(t, err)
	require.False(t, looped, "first comparison has no history")

	looped, err = b.AdvanceTurn()
	require.NoError(t, err)
	require.True(t, looped, "block repeats on the second comparison")

	loop, ok := b.Loop()
	require.True(t, ok)
	assert.Equal(t, Loop{First: 0, Repeat: 1}, loop)
	assert.Equal(t, 1, loop.Period())
	assert.Equal(t, block, b.Capture().LiveCells())
}

func TestBlinkerLoopDetected(t *testing.T) {
	b := newPopulated(t, 5, Coord{1, 2}, Coord{2, 2}, Coord{3, 2})

	calls := 0
	for ; calls < 3; calls++ {
		looped, err := b.AdvanceTurn()
		require.NoError(t, err)
		if looped {
			break
		}
	}
	require.Equal(t, 2, calls, "blinker should loop on the third call")

	loop, ok := b.Loop()
	require.True(t, ok)
	assert.Equal(t, Loop{First: 0, Repeat: 2}, loop)
	assert.Equal(t, 2, b.Turn())
}

func TestGliderDoesNotLoopEarly(t *testing.T) {
	glider, err := LookupPattern("glider")
	require.NoError(t, err)
	b := newPopulated(t, 6)
	require.NoError(t, Place(b, glider, 0, 0))

	for i := 0; i < 4; i++ {
		looped, err := b.AdvanceTurn()
		require.NoError(t, err)
		require.False(t, looped, "glider reported a loop on call %d", i+1)
		assert.Equal(t, 5, b.LiveCount())
	}
	assert.Equal(t, PhaseRunning, b.Phase())
}

func TestGliderWrapsAroundSmallTorus(t *testing.T) {
	glider, err := LookupPattern("glider")
	require.NoError(t, err)
	b := newPopulated(t, 6)
	require.NoError(t, Place(b, glider, 0, 0))

	looped := false
	for i := 0; i < 30 && !looped; i++ {
		looped, err = b.AdvanceTurn()
		require.NoError(t, err)
	}
	require.True(t, looped)

	// Four generations move the glider one cell diagonally; six of those
	// bring it home on a 6x6 torus.
	loop, _ := b.Loop()
	assert.Equal(t, Loop{First: 0, Repeat: 24}, loop)
}

func TestEmptyBoardLoopsOnSecondCall(t *testing.T) {
	b := newPopulated(t, 4)
	looped, err := b.AdvanceTurn()
	require.NoError(t, err)
	assert.False(t, looped)

	looped, err = b.AdvanceTurn()
	require.NoError(t, err)
	assert.True(t, looped)
}

func TestLoopedBoardIsTerminal(t *testing.T) {
	b := newPopulated(t, 4, Coord{1, 1}, Coord{1, 2}, Coord{2, 1}, Coord{2, 2})
	for {
		looped, err := b.AdvanceTurn()
		require.NoError(t, err)
		if looped {
			break
		}
	}
	turn := b.Turn()
	snapshots := b.History().Snapshots()
	before := b.Capture()

	for i := 0; i < 3; i++ {
		looped, err := b.AdvanceTurn()
		require.NoError(t, err)
		assert.True(t, looped)
	}
	assert.Equal(t, turn, b.Turn())
	assert.Equal(t, snapshots, b.History().Snapshots())
	assert.True(t, before.IsIdentical(b.Capture()))
	assert.Equal(t, PhaseLooped, b.Phase())
}

func TestPhaseTransitions(t *testing.T) {
	b, err := NewBoard(5)
	require.NoError(t, err)
	assert.Equal(t, PhaseEmpty, b.Phase())

	require.NoError(t, b.Populate())
	assert.Equal(t, PhasePopulated, b.Phase())

	for _, c := range []Coord{{1, 2}, {2, 2}, {3, 2}} {
		cell, err := b.CellAt(c.X, c.Y)
		require.NoError(t, err)
		cell.FlipState()
	}

	_, err = b.AdvanceTurn()
	require.NoError(t, err)
	assert.Equal(t, PhaseRunning, b.Phase())

	for b.Phase() != PhaseLooped {
		_, err = b.AdvanceTurn()
		require.NoError(t, err)
	}
	assert.Equal(t, "looped", b.Phase().String())
}

func TestCaptureTagsTurn(t *testing.T) {
	b := newPopulated(t, 5, Coord{3, 2}, Coord{1, 2}, Coord{2, 2})
	s := b.Capture()
	assert.Equal(t, 0, s.Turn())
	assert.Equal(t, []Coord{{1, 2}, {2, 2}, {3, 2}}, s.LiveCells())

	_, err := b.AdvanceTurn()
	require.NoError(t, err)
	s = b.Capture()
	assert.Equal(t, 1, s.Turn())
	assert.Equal(t, []Coord{{2, 1}, {2, 2}, {2, 3}}, s.LiveCells())
}
