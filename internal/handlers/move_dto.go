package handlers

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/gorilla/schema"

	"github.com/vancomm/minesweeper-console/internal/mines"
)

type MoveKind uint8

const (
	Open MoveKind = iota + 1
	Flag
)

func (k MoveKind) String() string {
	switch k {
	case Open:
		return "open"
	case Flag:
		return "flag"
	default:
		return fmt.Sprintf("MoveKind(%d)", uint8(k))
	}
}

var (
	ErrBadMove     = fmt.Errorf("move must be one of '%s', '%s'", Open, Flag)
	ErrBadPosition = fmt.Errorf("row and col must be within 0-%d", mines.Rows-1)
	ErrBadFrame    = errors.New("moves must be sent as text frames")
)

func decodeMoveKind(s string) (kind MoveKind, err error) {
	switch strings.ToLower(s) {
	case "open":
		kind = Open
	case "flag":
		kind = Flag
	default:
		err = ErrBadMove
	}
	return
}

// MoveDTO is a url-encoded move such as "move=open&row=3&col=4".
// Coordinates are 0-based.
type MoveDTO struct {
	Move string `schema:"move,required"`
	Row  int    `schema:"row,required"`
	Col  int    `schema:"col,required"`
}

var moveDecoder = func() *schema.Decoder {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	return dec
}()

func ParseMove(text string) (mines.Move, error) {
	query, err := url.ParseQuery(strings.TrimSpace(text))
	if err != nil {
		return mines.Move{}, fmt.Errorf("unable to parse move: %w", err)
	}

	var dto MoveDTO
	if err := moveDecoder.Decode(&dto, query); err != nil {
		return mines.Move{}, fmt.Errorf("unable to decode move: %w", err)
	}

	kind, err := decodeMoveKind(dto.Move)
	if err != nil {
		return mines.Move{}, err
	}

	p := mines.Point{Row: dto.Row, Col: dto.Col}
	if !p.InBounds() {
		return mines.Move{}, ErrBadPosition
	}

	return mines.Move{Point: p, Flag: kind == Flag}, nil
}
