package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/vancomm/minesweeper-console/internal/mines"
)

var ErrUnexpectedOutcome = errors.New("game ended in an unexpected state")

// MoveSource supplies validated moves. Retrying on bad input is the
// source's job; a returned error ends the game.
type MoveSource interface {
	NextMove(ctx context.Context) (mines.Move, error)
}

type Renderer interface {
	RenderBoard(s mines.Snapshot) error
	RenderOutcome(o mines.Outcome) error
}

// Controller drives a single game from first render to final outcome. It
// owns its board exclusively.
type Controller struct {
	logger   *slog.Logger
	board    *mines.Board
	moves    MoveSource
	renderer Renderer
}

func NewController(
	logger *slog.Logger,
	board *mines.Board,
	moves MoveSource,
	renderer Renderer,
) *Controller {
	c := &Controller{
		logger:   logger,
		board:    board,
		moves:    moves,
		renderer: renderer,
	}

	return c
}

func (c *Controller) Outcome() mines.Outcome {
	return c.board.Outcome()
}

// Run plays until the board reaches a terminal outcome and returns it.
func (c *Controller) Run(ctx context.Context) (mines.Outcome, error) {
	if err := c.renderer.RenderBoard(c.board.Snapshot()); err != nil {
		return c.board.Outcome(), fmt.Errorf("unable to render board: %w", err)
	}

	for c.board.Outcome() == mines.Running {
		move, err := c.moves.NextMove(ctx)
		if err != nil {
			return c.board.Outcome(), fmt.Errorf("unable to read move: %w", err)
		}

		c.apply(move)

		if err := c.renderer.RenderBoard(c.board.Snapshot()); err != nil {
			return c.board.Outcome(), fmt.Errorf("unable to render board: %w", err)
		}
	}

	outcome := c.board.Outcome()
	switch outcome {
	case mines.Won, mines.Lost:
		c.logger.Info("game over", slog.String("outcome", outcome.String()))
	default:
		c.logger.Error("game loop exited", slog.String("outcome", outcome.String()))
		return outcome, fmt.Errorf("%w: %s", ErrUnexpectedOutcome, outcome)
	}

	if err := c.renderer.RenderOutcome(outcome); err != nil {
		return outcome, fmt.Errorf("unable to render outcome: %w", err)
	}

	return outcome, nil
}

func (c *Controller) apply(move mines.Move) {
	c.logger.Debug("move", slog.String("move", move.String()))
	if move.Flag {
		c.board.Flag(move.Point)
	} else {
		c.board.Reveal(move.Point)
	}
}
