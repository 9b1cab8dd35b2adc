package life

import "errors"

var (
	// ErrOutOfRange is returned by coordinate lookups outside [0, size).
	ErrOutOfRange = errors.New("life: coordinate outside grid")
	// ErrInvalidSize is returned when a board is requested with a non-positive size.
	ErrInvalidSize = errors.New("life: grid size must be positive")
	// ErrPopulated is returned by a second call to Board.Populate.
	ErrPopulated = errors.New("life: board already populated")
	// ErrNotPopulated is returned when a board is used before Populate.
	ErrNotPopulated = errors.New("life: board not populated")
	// ErrStarted is returned when an edit is attempted after the first generation.
	ErrStarted = errors.New("life: simulation already started")

	// ErrUnknownPattern is returned for pattern names missing from the catalog.
	ErrUnknownPattern = errors.New("life: unknown pattern")
	// ErrBadPattern is returned when plaintext pattern input cannot be parsed.
	ErrBadPattern = errors.New("life: malformed pattern")
	// ErrPatternTooLarge is returned when a pattern does not fit on the board.
	ErrPatternTooLarge = errors.New("life: pattern larger than board")
)
