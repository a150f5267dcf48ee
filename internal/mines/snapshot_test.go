package mines

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotWhileRunning(t *testing.T) {
	b := newTestBoard(t, wall)
	b.Flag(Point{5, 5}) // a mine
	b.Flag(Point{7, 7}) // not a mine
	b.Reveal(Point{4, 4})

	s := b.Snapshot()
	assert.Equal(t, Running, s.Outcome)
	assert.Equal(t, Flagged, s.At(Point{5, 5}))
	assert.Equal(t, Flagged, s.At(Point{7, 7}))
	assert.Equal(t, CellView(5), s.At(Point{4, 4}))
	assert.Equal(t, Hidden, s.At(Point{0, 0}))
	assert.Equal(t, Hidden, s.At(Point{0, 5}), "mines stay hidden while running")
}

func TestSnapshotAfterLoss(t *testing.T) {
	b := newTestBoard(t, wall)
	b.Flag(Point{5, 5})
	b.Flag(Point{7, 7})
	b.Reveal(Point{0, 5})
	require.Equal(t, Lost, b.Outcome())

	s := b.Snapshot()
	assert.Equal(t, Lost, s.Outcome)
	for _, p := range wall {
		assert.Equal(t, Mine, s.At(p), "mine at %s", p)
	}
	// Flags and covers are dropped once the game is over.
	assert.Equal(t, CellView(0), s.At(Point{7, 7}))
	assert.Equal(t, CellView(5), s.At(Point{4, 4}))
	assert.Equal(t, CellView(0), s.At(Point{0, 0}))
}

func TestSnapshotAfterWin(t *testing.T) {
	b := newTestBoard(t, wall)
	b.Flag(Point{0, 5})
	for i := range b.cells {
		if !b.cells[i].Mine {
			b.Reveal(pointAt(i))
		}
	}
	require.Equal(t, Won, b.Outcome())

	s := b.Snapshot()
	for _, p := range wall {
		assert.Equal(t, Mine, s.At(p), "mine at %s", p)
	}
}

func TestSnapshotString(t *testing.T) {
	b := newTestBoard(t, wall)
	b.Reveal(Point{0, 0})
	b.Flag(Point{7, 7})

	want := "" +
		"0  0  0  0  2  #  #  #  \n" +
		"0  0  0  0  3  #  #  #  \n" +
		"0  0  0  0  3  #  #  #  \n" +
		"0  0  0  0  3  #  #  #  \n" +
		"1  2  3  3  5  #  #  #  \n" +
		"#  #  #  #  #  #  #  #  \n" +
		"#  #  #  #  #  #  #  #  \n" +
		"#  #  #  #  #  #  #  >  \n"
	assert.Equal(t, want, b.Snapshot().String())
}

func TestCellView(t *testing.T) {
	tests := []struct {
		view  CellView
		str   string
		count int
		ok    bool
	}{
		{Hidden, "#", 0, false},
		{Flagged, ">", 0, false},
		{Mine, "*", 0, false},
		{CellView(0), "0", 0, true},
		{CellView(8), "8", 8, true},
		{CellView(9), "!", 0, false},
	}
	for _, test := range tests {
		assert.Equal(t, test.str, test.view.String())
		count, ok := test.view.Count()
		assert.Equal(t, test.count, count)
		assert.Equal(t, test.ok, ok)
	}
}

func TestSnapshotJSON(t *testing.T) {
	b := newTestBoard(t, wall)
	b.Reveal(Point{4, 4})

	data, err := json.Marshal(b.Snapshot())
	require.NoError(t, err)

	var decoded struct {
		Cells   [][]string
		Outcome string
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "running", decoded.Outcome)
	require.Len(t, decoded.Cells, Rows)
	assert.Equal(t, "5", decoded.Cells[4][4])
	assert.Equal(t, "#", decoded.Cells[0][0])
}
