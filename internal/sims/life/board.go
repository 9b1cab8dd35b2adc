package life

import "fmt"

// Phase is the lifecycle stage of a Board.
type Phase int

const (
	// PhaseEmpty is a board that has not been populated yet.
	PhaseEmpty Phase = iota
	// PhasePopulated is a populated board on turn 0 that has not advanced.
	PhasePopulated
	// PhaseRunning is a board that has advanced at least once without looping.
	PhaseRunning
	// PhaseLooped is terminal: the board repeated an earlier state.
	PhaseLooped
)

func (p Phase) String() string {
	switch p {
	case PhaseEmpty:
		return "empty"
	case PhasePopulated:
		return "populated"
	case PhaseRunning:
		return "running"
	case PhaseLooped:
		return "looped"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Board is a square toroidal grid of cells. The board owns its cells in a
// flat arena indexed x*size+y; cells refer to each other by arena index.
type Board struct {
	size      int
	cells     []Cell
	populated bool
	turn      int
	history   *LoopDetector
	loop      *Loop
}

// NewBoard returns an unpopulated board of size×size cells.
func NewBoard(size int) (*Board, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	return &Board{size: size, history: NewLoopDetector()}, nil
}

// Populate creates every cell and then wires each cell's neighbours. It may
// only be called once per board.
func (b *Board) Populate() error {
	if b.populated {
		return ErrPopulated
	}
	b.cells = make([]Cell, 0, b.size*b.size)
	for x := 0; x < b.size; x++ {
		for y := 0; y < b.size; y++ {
			b.cells = append(b.cells, newCell(x, y))
		}
	}
	b.populated = true
	for i := range b.cells {
		if err := b.cells[i].SetNeighbours(b); err != nil {
			b.cells, b.populated = nil, false
			return fmt.Errorf("wire neighbours: %w", err)
		}
	}
	return nil
}

// Size returns the grid dimension.
func (b *Board) Size() int { return b.size }

// Turn returns the number of generations committed so far.
func (b *Board) Turn() int { return b.turn }

// Phase reports the lifecycle stage of the board.
func (b *Board) Phase() Phase {
	switch {
	case !b.populated:
		return PhaseEmpty
	case b.loop != nil:
		return PhaseLooped
	case b.turn == 0:
		return PhasePopulated
	default:
		return PhaseRunning
	}
}

func (b *Board) index(x, y int) (int, error) {
	if !b.populated {
		return 0, ErrNotPopulated
	}
	if x < 0 || x >= b.size || y < 0 || y >= b.size {
		return 0, fmt.Errorf("%w: (%d,%d) not in [0,%d)", ErrOutOfRange, x, y, b.size)
	}
	return x*b.size + y, nil
}

// CellAt returns the cell at (x, y).
func (b *Board) CellAt(x, y int) (*Cell, error) {
	idx, err := b.index(x, y)
	if err != nil {
		return nil, err
	}
	return &b.cells[idx], nil
}

// Cells returns every cell in arena order (column by column).
func (b *Board) Cells() []*Cell {
	out := make([]*Cell, len(b.cells))
	for i := range b.cells {
		out[i] = &b.cells[i]
	}
	return out
}

// LiveCount returns the number of cells currently alive.
func (b *Board) LiveCount() int {
	n := 0
	for i := range b.cells {
		if b.cells[i].alive {
			n++
		}
	}
	return n
}

// Capture snapshots the currently live cells, tagged with the current turn.
func (b *Board) Capture() BoardState {
	live := make([]Coord, 0)
	for i := range b.cells {
		if b.cells[i].alive {
			live = append(live, b.cells[i].Coord())
		}
	}
	// Arena order is already sorted by (x, y).
	return BoardState{turn: b.turn, live: live}
}

// History exposes the loop detector for inspection.
func (b *Board) History() *LoopDetector { return b.history }

// Loop returns the detected loop, if any.
func (b *Board) Loop() (Loop, bool) {
	if b.loop == nil {
		return Loop{}, false
	}
	return *b.loop, true
}

// AdvanceTurn runs one simulation cycle. The current state is checked against
// history first; if it repeats an earlier state the board stops and true is
// returned. Otherwise the state is archived, every cell computes its next
// state, every cell commits, and the turn counter increments.
//
// Once a loop has been reported further calls return true without touching
// the board.
func (b *Board) AdvanceTurn() (bool, error) {
	if !b.populated {
		return false, ErrNotPopulated
	}
	if b.loop != nil {
		return true, nil
	}
	if loop, found := b.history.Observe(b.Capture()); found {
		b.loop = &loop
		return true, nil
	}
	for i := range b.cells {
		b.cells[i].SetNextState(b)
	}
	for i := range b.cells {
		b.cells[i].Update()
	}
	b.turn++
	return false, nil
}
