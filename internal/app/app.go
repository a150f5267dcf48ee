package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper-console/internal/config"
	"github.com/vancomm/minesweeper-console/internal/middleware"
)

const shutdownTimeout = 30 * time.Second

type App struct {
	logger  *slog.Logger
	router  *http.ServeMux
	ws      *config.WebSocket
	origins []string
}

func New(logger *slog.Logger, ws *config.WebSocket, origins []string) *App {
	router := http.NewServeMux()

	app := &App{
		logger:  logger,
		router:  router,
		ws:      ws,
		origins: origins,
	}

	app.loadRoutes()

	return app
}

// Handler is the router wrapped in the request middleware.
func (a *App) Handler() http.Handler {
	return middleware.Wrap(
		a.router,
		middleware.Logging(a.logger),
		middleware.Cors(a.origins),
	)
}

// Start serves on addr until ctx is cancelled, then stops accepting
// connections and waits for plain requests to finish. Games in progress
// are ended by their handlers, which close the socket once ctx is done.
func (a *App) Start(ctx context.Context, addr string) error {
	server := &http.Server{
		Addr:    addr,
		Handler: a.Handler(),
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.logger.Info("server listening", slog.String("addr", addr))
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("unable to listen and serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		a.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
