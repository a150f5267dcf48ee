package mines

import (
	"errors"
	"fmt"
)

// AssertionError is the panic value used when a caller breaks the board's
// contract, e.g. by passing coordinates outside the grid.
type AssertionError struct {
	message string
}

// [AssertionError] implements [error]
func (e AssertionError) Error() string {
	return e.message
}

func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(AssertionError{fmt.Sprintf(format, args...)})
	}
}

var (
	ErrMineCount     = fmt.Errorf("board must hold exactly %d mines", MineCount)
	ErrDuplicateMine = errors.New("duplicate mine position")
	ErrOutOfBounds   = errors.New("position out of bounds")
	ErrMinesLaid     = errors.New("mines already laid")
)
