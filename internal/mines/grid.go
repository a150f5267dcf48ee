package mines

import (
	"fmt"
	"iter"
)

const (
	Rows      = 8
	Cols      = 8
	MineCount = 10
)

// Point addresses a cell by zero-based row and column.
type Point struct {
	Row, Col int
}

func (p Point) InBounds() bool {
	return 0 <= p.Row && p.Row < Rows && 0 <= p.Col && p.Col < Cols
}

// Point implements [fmt.Stringer]
func (p Point) String() string {
	return fmt.Sprintf("%d:%d", p.Row, p.Col)
}

func (p Point) index() int {
	return p.Row*Cols + p.Col
}

func pointAt(i int) Point {
	return Point{Row: i / Cols, Col: i % Cols}
}

// Neighbors yields the up to 8 in-bounds cells around p. Corners have 3,
// edges 5.
func (p Point) Neighbors() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				if dr == 0 && dc == 0 {
					continue
				}
				n := Point{Row: p.Row + dr, Col: p.Col + dc}
				if !n.InBounds() {
					continue
				}
				if !yield(n) {
					return
				}
			}
		}
	}
}

// Move is one validated player action.
type Move struct {
	Point
	Flag bool
}

func (m Move) String() string {
	if m.Flag {
		return "flag " + m.Point.String()
	}
	return "open " + m.Point.String()
}

type Cell struct {
	Mine, Revealed, Flagged bool
	NeighborMines           int /* only meaningful when !Mine */
}
