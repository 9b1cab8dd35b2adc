package life

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"sort"
	"strings"
)

// Pattern is a named arrangement of live cells relative to its top-left
// corner.
type Pattern struct {
	Name  string
	W, H  int
	Cells []Coord
}

// NewPattern normalises cells so the bounding box starts at (0, 0).
func NewPattern(name string, cells []Coord) Pattern {
	p := Pattern{Name: name}
	if len(cells) == 0 {
		return p
	}
	minX, minY := cells[0].X, cells[0].Y
	maxX, maxY := minX, minY
	for _, c := range cells[1:] {
		minX, maxX = min(minX, c.X), max(maxX, c.X)
		minY, maxY = min(minY, c.Y), max(maxY, c.Y)
	}
	p.Cells = make([]Coord, 0, len(cells))
	for _, c := range cells {
		p.Cells = append(p.Cells, Coord{X: c.X - minX, Y: c.Y - minY})
	}
	slices.SortFunc(p.Cells, compareCoord)
	p.Cells = slices.Compact(p.Cells)
	p.W = maxX - minX + 1
	p.H = maxY - minY + 1
	return p
}

// ParsePlaintext reads a pattern in the Life "plaintext" format: lines
// starting with '!' are comments, '.' is a dead cell and 'O' or '*' a live
// one. A "!Name:" comment overrides name.
func ParsePlaintext(name string, r io.Reader) (Pattern, error) {
	var cells []Coord
	scanner := bufio.NewScanner(r)
	row, line := 0, 0
	for scanner.Scan() {
		line++
		text := strings.TrimRight(scanner.Text(), " \t\r")
		if strings.HasPrefix(text, "!") {
			if v, ok := strings.CutPrefix(text, "!Name:"); ok {
				name = strings.TrimSpace(v)
			}
			continue
		}
		for col, ch := range text {
			switch ch {
			case '.':
			case 'O', '*':
				cells = append(cells, Coord{X: col, Y: row})
			default:
				return Pattern{}, fmt.Errorf("%w: line %d: unexpected %q", ErrBadPattern, line, ch)
			}
		}
		row++
	}
	if err := scanner.Err(); err != nil {
		return Pattern{}, fmt.Errorf("read pattern: %w", err)
	}
	if len(cells) == 0 {
		return Pattern{}, fmt.Errorf("%w: no live cells", ErrBadPattern)
	}
	return NewPattern(name, cells), nil
}

// Place sets the pattern's cells alive with its top-left corner at (x, y).
// Offsets wrap around the torus.
func Place(b *Board, p Pattern, x, y int) error {
	n := b.Size()
	if p.W > n || p.H > n {
		return fmt.Errorf("%w: %s is %dx%d, board is %dx%d", ErrPatternTooLarge, p.Name, p.W, p.H, n, n)
	}
	for _, c := range p.Cells {
		cell, err := b.CellAt(wrap(x+c.X, n), wrap(y+c.Y, n))
		if err != nil {
			return err
		}
		cell.SetAlive(true)
	}
	return nil
}

// PlaceCentred places p in the middle of the board.
func PlaceCentred(b *Board, p Pattern) error {
	return Place(b, p, (b.Size()-p.W)/2, (b.Size()-p.H)/2)
}

func wrap(v, n int) int {
	return (v%n + n) % n
}

var patterns = map[string]Pattern{}

// RegisterPattern adds p to the catalog, replacing any pattern of the same name.
func RegisterPattern(p Pattern) {
	if p.Name == "" {
		return
	}
	patterns[p.Name] = p
}

// LookupPattern returns a catalog pattern by name.
func LookupPattern(name string) (Pattern, error) {
	p, ok := patterns[name]
	if !ok {
		return Pattern{}, fmt.Errorf("%w: %q", ErrUnknownPattern, name)
	}
	return p, nil
}

// PatternNames lists the catalog in sorted order.
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var builtinPatterns = map[string]string{
	"block":       "OO\nOO",
	"beehive":     ".OO.\nO..O\n.OO.",
	"blinker":     "OOO",
	"toad":        ".OOO\nOOO.",
	"beacon":      "OO..\nOO..\n..OO\n..OO",
	"glider":      ".O.\n..O\nOOO",
	"r-pentomino": ".OO\nOO.\n.O.",
	"lwss":        ".O..O\nO....\nO...O\nOOOO.",
}

func init() {
	for name, src := range builtinPatterns {
		p, err := ParsePlaintext(name, strings.NewReader(src))
		if err != nil {
			panic(fmt.Sprintf("builtin pattern %s: %v", name, err))
		}
		RegisterPattern(p)
	}
}
