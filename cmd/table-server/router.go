package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog/v3"

	"holdem-console/internal/logging"
)

func newRouter(srv *server) *chi.Mux {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(requestLogMiddleware())

	r.Get("/health", srv.healthHandler)
	r.Post("/start_game", srv.startGameHandler)
	r.Get("/game_state", srv.gameStateHandler)
	r.Post("/player_action", srv.playerActionHandler)
	r.Post("/next_round", srv.nextRoundHandler)
	return r
}

func requestLogMiddleware() func(http.Handler) http.Handler {
	return httplog.RequestLogger(
		slog.New(slog.NewJSONHandler(logging.Writer(), &slog.HandlerOptions{})),
		&httplog.Options{
			Level:  slog.LevelInfo,
			Schema: httplog.Schema{ResponseStatus: "status", ResponseDuration: "duration_ms"},
			LogExtraAttrs: func(req *http.Request, _ string, _ int) []slog.Attr {
				return []slog.Attr{
					slog.String("request_id", chimw.GetReqID(req.Context())),
					slog.String("client_request_id", req.Header.Get("X-Request-ID")),
					slog.String("session_id", req.Header.Get("X-Session-ID")),
					slog.String("method", req.Method),
					slog.String("path", req.URL.Path),
				}
			},
		},
	)
}
