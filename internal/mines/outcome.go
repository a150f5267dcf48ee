package mines

import "fmt"

type Outcome uint8

const (
	Running Outcome = iota
	Won
	Lost
)

func (o Outcome) Terminal() bool {
	return o != Running
}

// Outcome implements [fmt.Stringer]
func (o Outcome) String() string {
	switch o {
	case Running:
		return "running"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return fmt.Sprintf("Outcome(%d)", uint8(o))
	}
}

// Outcome implements [encoding.TextMarshaler]
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}
