package game

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper-console/internal/mines"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

var wall = []mines.Point{
	{Row: 0, Col: 5}, {Row: 1, Col: 5}, {Row: 2, Col: 5}, {Row: 3, Col: 5},
	{Row: 4, Col: 5}, {Row: 5, Col: 5}, {Row: 5, Col: 1}, {Row: 5, Col: 2},
	{Row: 5, Col: 3}, {Row: 5, Col: 4},
}

type script struct {
	moves []mines.Move
	err   error
}

func (s *script) NextMove(ctx context.Context) (mines.Move, error) {
	if len(s.moves) == 0 {
		if s.err != nil {
			return mines.Move{}, s.err
		}
		return mines.Move{}, io.EOF
	}
	m := s.moves[0]
	s.moves = s.moves[1:]
	return m, nil
}

type recorder struct {
	boards   []mines.Snapshot
	outcomes []mines.Outcome
	err      error
}

func (r *recorder) RenderBoard(s mines.Snapshot) error {
	r.boards = append(r.boards, s)
	return r.err
}

func (r *recorder) RenderOutcome(o mines.Outcome) error {
	r.outcomes = append(r.outcomes, o)
	return r.err
}

func open(row, col int) mines.Move {
	return mines.Move{Point: mines.Point{Row: row, Col: col}}
}

func flag(row, col int) mines.Move {
	return mines.Move{Point: mines.Point{Row: row, Col: col}, Flag: true}
}

func newBoard(t *testing.T) *mines.Board {
	t.Helper()
	b := mines.NewBoard()
	require.NoError(t, b.PlaceMines(wall...))
	b.ComputeNeighborCounts()
	return b
}

func TestRunLost(t *testing.T) {
	moves := &script{moves: []mines.Move{flag(3, 3), open(0, 0), open(5, 5)}}
	rec := &recorder{}
	c := NewController(discard, newBoard(t), moves, rec)

	outcome, err := c.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, mines.Lost, outcome)
	assert.Equal(t, mines.Lost, c.Outcome())

	// initial render plus one per move
	require.Len(t, rec.boards, 4)
	assert.Equal(t, mines.Hidden, rec.boards[0].At(mines.Point{Row: 3, Col: 3}))
	assert.Equal(t, mines.Flagged, rec.boards[1].At(mines.Point{Row: 3, Col: 3}))
	assert.Equal(t, mines.CellView(0), rec.boards[2].At(mines.Point{Row: 3, Col: 3}))
	assert.Equal(t, mines.Mine, rec.boards[3].At(mines.Point{Row: 5, Col: 5}))
	assert.Equal(t, []mines.Outcome{mines.Lost}, rec.outcomes)
	assert.Empty(t, moves.moves)
}

func TestRunWon(t *testing.T) {
	moves := &script{moves: []mines.Move{
		open(0, 0), open(7, 7), open(5, 0),
		open(6, 6), // never read
	}}
	rec := &recorder{}
	c := NewController(discard, newBoard(t), moves, rec)

	outcome, err := c.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, mines.Won, outcome)
	assert.Len(t, rec.boards, 4)
	assert.Equal(t, []mines.Outcome{mines.Won}, rec.outcomes)
	assert.Len(t, moves.moves, 1, "loop stops as soon as the game is over")
}

func TestRunSourceError(t *testing.T) {
	boom := errors.New("boom")
	moves := &script{moves: []mines.Move{open(4, 4)}, err: boom}
	rec := &recorder{}
	c := NewController(discard, newBoard(t), moves, rec)

	outcome, err := c.Run(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, mines.Running, outcome)
	assert.Len(t, rec.boards, 2)
	assert.Empty(t, rec.outcomes)
}

func TestRunRenderError(t *testing.T) {
	boom := errors.New("boom")
	rec := &recorder{err: boom}
	c := NewController(discard, newBoard(t), &script{}, rec)

	_, err := c.Run(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Len(t, rec.boards, 1)
}

func TestRunAlreadyOver(t *testing.T) {
	b := newBoard(t)
	b.Reveal(mines.Point{Row: 0, Col: 5})
	rec := &recorder{}
	c := NewController(discard, b, &script{}, rec)

	outcome, err := c.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, mines.Lost, outcome)
	assert.Len(t, rec.boards, 1)
	assert.Equal(t, []mines.Outcome{mines.Lost}, rec.outcomes)
}
