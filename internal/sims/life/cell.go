package life

import "fmt"

// NumNeighbours is the size of every cell's neighbourhood.
const NumNeighbours = 8

const (
	neighboursToSurvive = 2
	neighboursToBreed   = 3
)

// Cell is a single square of the board. Neighbour links are indices into the
// owning Board's cell arena and are wired exactly once by Board.Populate.
type Cell struct {
	x, y           int
	alive          bool
	aliveNextRound bool
	neighbours     [NumNeighbours]int
}

func newCell(x, y int) Cell {
	return Cell{x: x, y: y}
}

// X returns the cell's column.
func (c *Cell) X() int { return c.x }

// Y returns the cell's row.
func (c *Cell) Y() int { return c.y }

// Coord returns the cell position.
func (c *Cell) Coord() Coord { return Coord{X: c.x, Y: c.y} }

// IsAlive reports the committed state for the current turn.
func (c *Cell) IsAlive() bool { return c.alive }

// IsAliveNextRound reports the pending state computed by SetNextState.
func (c *Cell) IsAliveNextRound() bool { return c.aliveNextRound }

// SetAlive overwrites the committed state. Used when seeding a board.
func (c *Cell) SetAlive(alive bool) { c.alive = alive }

// Neighbours returns the arena indices of the eight neighbours.
func (c *Cell) Neighbours() [NumNeighbours]int { return c.neighbours }

// FlipState immediately toggles the committed state, bypassing the pending
// state entirely.
func (c *Cell) FlipState() { c.alive = !c.alive }

// Update commits the pending state. Every cell on the board must have run
// SetNextState for the round before any cell is updated.
func (c *Cell) Update() { c.alive = c.aliveNextRound }

// SetNextState computes the pending state from the committed state of the
// neighbours: two live neighbours keep the current state, three make the
// cell alive, anything else kills it.
func (c *Cell) SetNextState(b *Board) {
	live := 0
	for _, idx := range c.neighbours {
		if b.cells[idx].alive {
			live++
		}
	}
	switch live {
	case neighboursToSurvive:
		c.aliveNextRound = c.alive
	case neighboursToBreed:
		c.aliveNextRound = true
	default:
		c.aliveNextRound = false
	}
}

// SetNeighbours wires the eight toroidal neighbours of c on b. Cells on an
// edge are adjacent to cells on the opposite edge.
func (c *Cell) SetNeighbours(b *Board) error {
	n := b.Size()
	if c.x < 0 || c.x >= n || c.y < 0 || c.y >= n {
		return fmt.Errorf("%w: cell (%d,%d) on board of size %d", ErrOutOfRange, c.x, c.y, n)
	}
	prevX, nextX := c.x-1, c.x+1
	if prevX < 0 {
		prevX = n - 1
	}
	if nextX >= n {
		nextX = 0
	}
	prevY, nextY := c.y-1, c.y+1
	if prevY < 0 {
		prevY = n - 1
	}
	if nextY >= n {
		nextY = 0
	}

	coords := [NumNeighbours]Coord{
		{prevX, prevY}, {prevX, c.y}, {prevX, nextY},
		{c.x, prevY}, {c.x, nextY},
		{nextX, prevY}, {nextX, c.y}, {nextX, nextY},
	}
	for i, at := range coords {
		idx, err := b.index(at.X, at.Y)
		if err != nil {
			return err
		}
		c.neighbours[i] = idx
	}
	return nil
}

// Equal reports whether other sits at the same position with the same
// committed state.
func (c *Cell) Equal(other *Cell) bool {
	if other == nil {
		return false
	}
	return c.x == other.x && c.y == other.y && c.alive == other.alive
}

func (c *Cell) String() string {
	state := "dead"
	if c.alive {
		state = "alive"
	}
	return fmt.Sprintf("(%d,%d) %s", c.x, c.y, state)
}
