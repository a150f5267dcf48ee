package config

import (
	"fmt"
	"net/http"
	"os"
	"slices"
	"time"

	"github.com/gorilla/websocket"
)

type WebSocket struct {
	Upgrader websocket.Upgrader
	// IdleTimeout bounds how long a game waits for the next move.
	IdleTimeout time.Duration
}

// NewWebSocket reads WS_IDLE_TIMEOUT. Upgrades are limited to the
// CORS_ORIGINS list; requests without an Origin header come from
// non-browser clients and are always allowed.
func NewWebSocket() (*WebSocket, error) {
	origins := CorsOrigins()
	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			if len(origins) == 0 {
				return true
			}
			origin := r.Header.Get("Origin")
			return origin == "" || slices.Contains(origins, origin)
		},
	}

	idle := 10 * time.Minute
	if idleStr, ok := os.LookupEnv("WS_IDLE_TIMEOUT"); ok {
		d, err := time.ParseDuration(idleStr)
		if err != nil {
			return nil, fmt.Errorf("unable to parse WS_IDLE_TIMEOUT: %w", err)
		}
		idle = d
	}

	ws := &WebSocket{
		Upgrader:    upgrader,
		IdleTimeout: idle,
	}

	return ws, nil
}
