package mines

import (
	"fmt"
	"math/rand/v2"
)

// Board is the state of a single game. It is not safe for concurrent use;
// whoever constructs a Board owns it for the lifetime of the game.
type Board struct {
	cells   [Rows * Cols]Cell
	outcome Outcome
	laid    bool
}

// NewBoard returns an empty board: every cell hidden, unflagged and
// mine-free. Mines must be laid and counts computed before the first reveal.
func NewBoard() *Board {
	return &Board{}
}

// NewGame returns a board ready to play, with mines drawn from r.
func NewGame(r *rand.Rand) *Board {
	b := NewBoard()
	b.LayMines(r)
	b.ComputeNeighborCounts()
	return b
}

// LayMines places [MineCount] mines by drawing random coordinates and
// rejecting those that already hold a mine.
//
// panics [AssertionError] if mines were already laid
func (b *Board) LayMines(r *rand.Rand) {
	assertf(!b.laid, "%s", ErrMinesLaid)

	for placed := 0; placed < MineCount; {
		c := b.cell(Point{Row: r.IntN(Rows), Col: r.IntN(Cols)})
		if !c.Mine {
			c.Mine = true
			placed++
		}
	}
	b.laid = true
}

// PlaceMines lays a known layout. The board is left untouched on error.
func (b *Board) PlaceMines(points ...Point) error {
	if b.laid {
		return ErrMinesLaid
	}
	if len(points) != MineCount {
		return fmt.Errorf("%w, got %d", ErrMineCount, len(points))
	}

	seen := make(map[Point]bool, len(points))
	for _, p := range points {
		if !p.InBounds() {
			return fmt.Errorf("%w: %s", ErrOutOfBounds, p)
		}
		if seen[p] {
			return fmt.Errorf("%w: %s", ErrDuplicateMine, p)
		}
		seen[p] = true
	}

	for _, p := range points {
		b.cell(p).Mine = true
	}
	b.laid = true
	return nil
}

func (b *Board) ComputeNeighborCounts() {
	for i := range b.cells {
		c := &b.cells[i]
		if c.Mine {
			continue
		}
		c.NeighborMines = 0
		for n := range pointAt(i).Neighbors() {
			if b.cell(n).Mine {
				c.NeighborMines++
			}
		}
	}
}

// Reveal opens the cell at p. Opening a mine loses the game; opening a cell
// with no mined neighbours opens the whole zero region around it together
// with its numbered border. Calls after the game has ended are ignored.
//
// panics [AssertionError] if p is out of bounds
func (b *Board) Reveal(p Point) {
	c := b.mustCell(p)
	if b.outcome.Terminal() {
		return
	}

	if c.Mine {
		// The mine is not marked revealed; it shows up in the snapshot
		// because the game is over.
		b.outcome = Lost
		return
	}

	open(c)
	if c.NeighborMines == 0 {
		b.flood(p)
	}

	b.evaluateOutcome()
}

// flood opens everything reachable from start through zero-count cells.
// Cells are opened when pushed, so each is expanded at most once.
func (b *Board) flood(start Point) {
	stack := []Point{start}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for n := range p.Neighbors() {
			c := b.cell(n)
			if c.Revealed || c.Mine {
				continue
			}
			open(c)
			if c.NeighborMines == 0 {
				stack = append(stack, n)
			}
		}
	}
}

func open(c *Cell) {
	c.Revealed = true
	c.Flagged = false
}

// Flag marks a hidden cell. There is no unflag; a flag goes away only when
// the cell is revealed.
//
// panics [AssertionError] if p is out of bounds
func (b *Board) Flag(p Point) {
	c := b.mustCell(p)
	if b.outcome.Terminal() {
		return
	}
	if !c.Revealed {
		c.Flagged = true
	}
}

func (b *Board) evaluateOutcome() {
	if b.outcome == Lost {
		return
	}
	if b.Unrevealed() == MineCount {
		b.outcome = Won
	}
}

// Unrevealed counts the cells that are still covered.
func (b *Board) Unrevealed() int {
	n := 0
	for i := range b.cells {
		if !b.cells[i].Revealed {
			n++
		}
	}
	return n
}

func (b *Board) Outcome() Outcome {
	return b.outcome
}

func (b *Board) Won() bool {
	return b.outcome == Won
}

func (b *Board) Lost() bool {
	return b.outcome == Lost
}

// Cell returns a copy of the cell at p.
//
// panics [AssertionError] if p is out of bounds
func (b *Board) Cell(p Point) Cell {
	return *b.mustCell(p)
}

func (b *Board) cell(p Point) *Cell {
	return &b.cells[p.index()]
}

func (b *Board) mustCell(p Point) *Cell {
	assertf(p.InBounds(), "%s: %s", ErrOutOfBounds, p)
	return b.cell(p)
}
