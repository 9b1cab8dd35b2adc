package life

import (
	"cmp"
	"slices"
)

// Coord is a board position.
type Coord struct {
	X, Y int
}

func compareCoord(a, b Coord) int {
	if c := cmp.Compare(a.X, b.X); c != 0 {
		return c
	}
	return cmp.Compare(a.Y, b.Y)
}

// BoardState is an immutable snapshot of the live cells on a board at a given
// turn. The zero value is an empty board at turn 0.
type BoardState struct {
	turn int
	live []Coord // sorted, unique
}

// NewBoardState builds a snapshot from live cell positions in any order.
// Duplicate positions are collapsed.
func NewBoardState(live []Coord, turn int) BoardState {
	cells := slices.Clone(live)
	slices.SortFunc(cells, compareCoord)
	cells = slices.Compact(cells)
	return BoardState{turn: turn, live: cells}
}

// Turn returns the turn the snapshot was captured on.
func (s BoardState) Turn() int { return s.turn }

// LiveCount returns the number of live cells.
func (s BoardState) LiveCount() int { return len(s.live) }

// LiveCells returns a sorted copy of the live positions.
func (s BoardState) LiveCells() []Coord { return slices.Clone(s.live) }

// Contains reports whether the cell at c was alive.
func (s BoardState) Contains(c Coord) bool {
	_, found := slices.BinarySearchFunc(s.live, c, compareCoord)
	return found
}

// IsIdentical reports whether both snapshots hold exactly the same set of live
// cells. Turn numbers are ignored.
func (s BoardState) IsIdentical(other BoardState) bool {
	if s.LiveCount() != other.LiveCount() {
		return false
	}
	return slices.Equal(s.live, other.live)
}
