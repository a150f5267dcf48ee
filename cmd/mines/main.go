// Command mines plays a single game of minesweeper in the terminal.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/vancomm/minesweeper-console/internal/config"
	"github.com/vancomm/minesweeper-console/internal/console"
	"github.com/vancomm/minesweeper-console/internal/game"
	"github.com/vancomm/minesweeper-console/internal/logging"
	"github.com/vancomm/minesweeper-console/internal/mines"
)

func main() {
	logFile, err := config.NewLogFile()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to read log config:", err)
		os.Exit(1)
	}

	logger, closer := logging.NewFile(logFile, config.Development())
	defer closer.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx, logger); err != nil {
		logger.Error("game aborted", slog.Any("error", err))
		closer.Close()
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	c := console.New(logger, os.Stdin, os.Stdout)
	if err := c.Banner(); err != nil {
		return err
	}

	board := mines.NewGame(mines.NewRand())
	logger.Debug("new game")

	outcome, err := game.NewController(logger, board, c, c).Run(ctx)
	if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
		logger.Info("player quit", slog.String("outcome", outcome.String()))
		return nil
	}
	if err != nil {
		return err
	}

	// keep the final board on screen until the player is done with it
	if err := c.Pause(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
