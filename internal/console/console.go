// Package console is the line-oriented terminal front end: it prompts for
// moves on one stream and prints boards on another.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/vancomm/minesweeper-console/internal/mines"
)

type Console struct {
	logger *slog.Logger
	in     *bufio.Scanner
	out    io.Writer

	startReader sync.Once
	lines       chan line
}

type line struct {
	text string
	err  error
}

func New(logger *slog.Logger, in io.Reader, out io.Writer) *Console {
	c := &Console{
		logger: logger,
		in:     bufio.NewScanner(in),
		out:    out,
		lines:  make(chan line),
	}

	return c
}

func (c *Console) Banner() error {
	_, err := fmt.Fprint(c.out, "\n\nStarting Minesweeper...\n")
	return err
}

// NextMove asks for a row, a column and whether to flag. Coordinates are
// entered 1-based and asked for again until they are in range.
func (c *Console) NextMove(ctx context.Context) (mines.Move, error) {
	row, err := c.readNumber(ctx, "row", mines.Rows)
	if err != nil {
		return mines.Move{}, err
	}
	col, err := c.readNumber(ctx, "column", mines.Cols)
	if err != nil {
		return mines.Move{}, err
	}
	flag, err := c.readFlag(ctx)
	if err != nil {
		return mines.Move{}, err
	}

	move := mines.Move{
		Point: mines.Point{Row: row - 1, Col: col - 1},
		Flag:  flag,
	}
	return move, nil
}

func (c *Console) readNumber(ctx context.Context, name string, limit int) (int, error) {
	for {
		if _, err := fmt.Fprintf(c.out, "Enter %s (1-%d): \n", name, limit); err != nil {
			return 0, err
		}
		line, err := c.readLine(ctx)
		if err != nil {
			return 0, err
		}

		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil && 1 <= n && n <= limit {
			return n, nil
		}
		c.logger.Debug("rejected input", slog.String("field", name), slog.String("input", line))
	}
}

func (c *Console) readFlag(ctx context.Context) (bool, error) {
	_, err := fmt.Fprint(c.out, "Enter 'y' if you want to flag this square, otherwise press enter\n")
	if err != nil {
		return false, err
	}
	line, err := c.readLine(ctx)
	if err != nil {
		return false, err
	}
	return line != "" && (line[0] == 'y' || line[0] == 'Y'), nil
}

// readLine returns as soon as ctx is done, even while the reader is
// blocked on input.
func (c *Console) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	c.startReader.Do(func() { go c.read() })

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l := <-c.lines:
		return l.text, l.err
	}
}

// read feeds c.lines until the input ends, then keeps reporting why.
func (c *Console) read() {
	for c.in.Scan() {
		c.lines <- line{text: c.in.Text()}
	}
	err := c.in.Err()
	if err == nil {
		err = io.EOF
	}
	for {
		c.lines <- line{err: err}
	}
}

// Pause waits for the player to press enter. The end of input counts as
// enter.
func (c *Console) Pause(ctx context.Context) error {
	_, err := c.readLine(ctx)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// [Console] implements [game.Renderer]
func (c *Console) RenderBoard(s mines.Snapshot) error {
	_, err := fmt.Fprint(c.out, s.String()+"\n")
	return err
}

func (c *Console) RenderOutcome(o mines.Outcome) error {
	message := "GAME OVER"
	switch o {
	case mines.Won:
		message += " - You Won!"
	case mines.Lost:
		message += " - You Lost!"
	default:
		message += " - Something Went Terribly Wrong!"
	}
	_, err := fmt.Fprintln(c.out, message)
	return err
}
