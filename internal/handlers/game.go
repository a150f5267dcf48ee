package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vancomm/minesweeper-console/internal/config"
	"github.com/vancomm/minesweeper-console/internal/game"
	"github.com/vancomm/minesweeper-console/internal/middleware"
	"github.com/vancomm/minesweeper-console/internal/mines"
)

// GameHandler plays one private game per websocket connection. Boards are
// never shared between connections.
type GameHandler struct {
	logger   *slog.Logger
	ws       *config.WebSocket
	newBoard func() *mines.Board
}

func NewGameHandler(
	logger *slog.Logger,
	ws *config.WebSocket,
	newBoard func() *mines.Board,
) *GameHandler {
	if newBoard == nil {
		newBoard = func() *mines.Board {
			return mines.NewGame(mines.NewRand())
		}
	}

	handler := &GameHandler{
		logger:   logger,
		ws:       ws,
		newBoard: newBoard,
	}

	return handler
}

func (g GameHandler) Play(w http.ResponseWriter, r *http.Request) {
	logger := g.logger.With(slog.String("requestId", middleware.RequestID(r.Context())))

	c, err := g.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Error("unable to upgrade", slog.Any("error", err))
		return
	}
	defer c.Close()

	// Unblocks the pending read when the server shuts down.
	stop := context.AfterFunc(r.Context(), func() { c.Close() })
	defer stop()

	s := &session{logger: logger, conn: c, idle: g.ws.IdleTimeout}
	logger.Debug("game started")

	outcome, err := game.NewController(logger, g.newBoard(), s, s).Run(r.Context())
	if err != nil {
		var closeErr *websocket.CloseError
		switch {
		case r.Context().Err() != nil:
			logger.Debug("game interrupted by shutdown")
		case errors.As(err, &closeErr) &&
			(closeErr.Code == websocket.CloseNormalClosure ||
				closeErr.Code == websocket.CloseGoingAway):
			logger.Debug("player left", slog.String("outcome", outcome.String()))
		default:
			logger.Warn("game aborted", slog.Any("error", err))
		}
		return
	}

	err = c.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, outcome.String()),
		time.Now().Add(time.Second),
	)
	if err != nil {
		logger.Debug("unable to close websocket", slog.Any("error", err))
	}
}

type boardFrame struct {
	Type    string                                 `json:"type"`
	Outcome mines.Outcome                          `json:"outcome"`
	Cells   [mines.Rows][mines.Cols]mines.CellView `json:"cells"`
}

type outcomeFrame struct {
	Type    string        `json:"type"`
	Outcome mines.Outcome `json:"outcome"`
}

type errorFrame struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}

// session adapts a websocket connection to [game.MoveSource] and
// [game.Renderer].
type session struct {
	logger *slog.Logger
	conn   *websocket.Conn
	idle   time.Duration
}

func (s *session) NextMove(ctx context.Context) (mines.Move, error) {
	for {
		if err := ctx.Err(); err != nil {
			return mines.Move{}, err
		}
		if s.idle > 0 {
			if err := s.conn.SetReadDeadline(time.Now().Add(s.idle)); err != nil {
				return mines.Move{}, err
			}
		}

		mt, message, err := s.conn.ReadMessage()
		if err != nil {
			return mines.Move{}, err
		}
		if mt != websocket.TextMessage {
			return mines.Move{}, ErrBadFrame
		}
		s.logger.Debug("\t> " + string(message))

		move, err := ParseMove(string(message))
		if err != nil {
			s.logger.Debug("rejected move", slog.Any("error", err))
			if werr := s.conn.WriteJSON(errorFrame{Type: "error", Error: err.Error()}); werr != nil {
				return mines.Move{}, werr
			}
			continue
		}
		return move, nil
	}
}

func (s *session) RenderBoard(snap mines.Snapshot) error {
	return s.conn.WriteJSON(boardFrame{
		Type:    "board",
		Outcome: snap.Outcome,
		Cells:   snap.Cells,
	})
}

func (s *session) RenderOutcome(o mines.Outcome) error {
	return s.conn.WriteJSON(outcomeFrame{Type: "outcome", Outcome: o})
}
