package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/preston-bernstein/nba-stats-service/internal/http/handlers"
	"github.com/preston-bernstein/nba-stats-service/internal/http/middleware"
	"github.com/preston-bernstein/nba-stats-service/internal/http/requestutil"
	"github.com/preston-bernstein/nba-stats-service/internal/metrics"
)

// RouterOptions carries the cross-cutting pieces the router wraps around handlers.
type RouterOptions struct {
	Logger         *slog.Logger
	Recorder       *metrics.Recorder
	AllowedOrigins []string
}

// NewRouter registers HTTP routes on a chi router.
func NewRouter(handler *handlers.Handler, opts RouterOptions) nethttp.Handler {
	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(opts.Logger, opts.Recorder))
	r.Use(middleware.Recover(opts.Logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{nethttp.MethodGet, nethttp.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", requestutil.HeaderRequestID},
		ExposedHeaders: []string{requestutil.HeaderRequestID},
		MaxAge:         300,
	}))

	r.NotFound(handler.NotFound)
	r.MethodNotAllowed(handler.MethodNotAllowed)

	r.Get("/health", handler.Health)
	r.Get("/teams", handler.Teams)
	r.Get("/teams/{teamId}", handler.TeamByID)
	r.Get("/players", handler.Players)
	r.Get("/player-info", handler.PlayerInfo)
	r.Get("/player-awards", handler.PlayerAwards)
	r.Get("/stats/players", handler.PlayerStats)
	r.Get("/stats/teams", handler.TeamStats)
	r.Get("/live-games", handler.LiveGames)
	r.Get("/boxscore", handler.BoxScore)
	r.Get("/standings", handler.Standings)
	r.Get("/schedule", handler.Schedule)
	r.Get("/games", handler.Games)
	r.Get("/seasons", handler.Seasons)

	return r
}
