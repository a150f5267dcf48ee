package app

import (
	"github.com/vancomm/minesweeper-console/internal/handlers"
)

func (a *App) loadRoutes() {
	game := handlers.NewGameHandler(a.logger, a.ws, nil)

	a.router.HandleFunc("GET /status", handlers.Status(a.logger))
	a.router.HandleFunc("GET /game/connect", game.Play)
}
