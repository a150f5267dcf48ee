package mines

import (
	"strconv"
	"strings"
)

// CellView is what a player is allowed to see of a cell.
type CellView int8

const (
	Hidden  CellView = -2
	Flagged CellView = -1
	Mine    CellView = 64
	/*
	 * 0 to 8 mean the cell is shown open with that many mined
	 * neighbours. Once the game is over every non-mine cell is shown
	 * that way, opened or not.
	 */
)

// Count reports the neighbour count of an open cell.
func (v CellView) Count() (int, bool) {
	if 0 <= v && v <= 8 {
		return int(v), true
	}
	return 0, false
}

// CellView implements [fmt.Stringer]
func (v CellView) String() string {
	switch v {
	case Hidden:
		return "#"
	case Flagged:
		return ">"
	case Mine:
		return "*"
	case 0, 1, 2, 3, 4, 5, 6, 7, 8:
		return strconv.Itoa(int(v))
	default:
		return "!"
	}
}

// CellView implements [encoding.TextMarshaler]
func (v CellView) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

type Snapshot struct {
	Cells   [Rows][Cols]CellView
	Outcome Outcome
}

func (s Snapshot) At(p Point) CellView {
	return s.Cells[p.Row][p.Col]
}

// Snapshot implements [fmt.Stringer]
func (s Snapshot) String() string {
	var b strings.Builder
	for _, row := range s.Cells {
		for _, v := range row {
			b.WriteString(v.String())
			b.WriteString("  ")
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Snapshot classifies every cell for rendering. Flags and covered cells
// are only shown while the game runs; mines only once it has ended.
func (b *Board) Snapshot() Snapshot {
	s := Snapshot{Outcome: b.outcome}
	running := b.outcome == Running
	for i := range b.cells {
		c := &b.cells[i]
		p := pointAt(i)

		var v CellView
		switch {
		case c.Flagged && running:
			v = Flagged
		case !c.Revealed && running:
			v = Hidden
		case c.Mine:
			v = Mine
		default:
			v = CellView(c.NeighborMines)
		}
		s.Cells[p.Row][p.Col] = v
	}
	return s
}
