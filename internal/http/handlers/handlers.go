package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/preston-bernstein/nba-stats-service/internal/app/defaults"
	"github.com/preston-bernstein/nba-stats-service/internal/app/games"
	"github.com/preston-bernstein/nba-stats-service/internal/app/league"
	"github.com/preston-bernstein/nba-stats-service/internal/app/players"
	"github.com/preston-bernstein/nba-stats-service/internal/app/seasonstats"
	"github.com/preston-bernstein/nba-stats-service/internal/app/teams"
	"github.com/preston-bernstein/nba-stats-service/internal/logging"
)

const msgGamesUnavailable = "An error occurred while fetching games data."

// Services groups the application services the handlers call into.
type Services struct {
	Teams       *teams.Service
	Players     *players.Service
	SeasonStats *seasonstats.Service
	Games       *games.Service
	League      *league.Service
}

// Handler wires HTTP routes to the application services.
type Handler struct {
	svc      Services
	defaults defaults.Resolver
	logger   *slog.Logger
	validate *validator.Validate
}

// NewHandler constructs a Handler. The resolver supplies season, league and date defaults.
func NewHandler(svc Services, resolver defaults.Resolver, logger *slog.Logger) *Handler {
	return &Handler{
		svc:      svc,
		defaults: resolver,
		logger:   logger,
		validate: newValidator(),
	}
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// NotFound answers unknown paths.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusNotFound, "not found", h.logger)
}

// MethodNotAllowed answers known paths hit with a non-GET method.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
}

// Teams lists every team in the static catalog.
func (h *Handler) Teams(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Teams.Teams(), h.logger)
}

// TeamByID returns one team from the catalog.
func (h *Handler) TeamByID(w http.ResponseWriter, r *http.Request) {
	h.handle(h.teamByID)(w, r)
}

func (h *Handler) teamByID(w http.ResponseWriter, r *http.Request) error {
	id, err := strconv.Atoi(chi.URLParam(r, "teamId"))
	if err != nil {
		return badRequest(fmt.Sprintf(msgIntegerFmt, "teamId"), err)
	}
	team, ok := h.svc.Teams.TeamByID(id)
	if !ok {
		return notFound("team not found")
	}
	writeJSON(w, http.StatusOK, team, h.logger)
	return nil
}

// Players lists active players, optionally filtered by teamId and playerName.
func (h *Handler) Players(w http.ResponseWriter, r *http.Request) {
	h.handle(h.listPlayers)(w, r)
}

func (h *Handler) listPlayers(w http.ResponseWriter, r *http.Request) error {
	var q playersQuery
	if err := h.bindQuery(r.URL.Query(), &q); err != nil {
		return err
	}
	items, err := h.svc.Players.ActivePlayers(r.Context(), players.Filter{TeamID: q.TeamID, Name: q.PlayerName})
	if err != nil {
		return err
	}
	logging.Debug(loggerFromContext(r, h.logger), "players filtered", slog.Int(logging.FieldCount, len(items)))
	writeJSON(w, http.StatusOK, items, h.logger)
	return nil
}

// PlayerInfo returns biographical and headline data for one player.
func (h *Handler) PlayerInfo(w http.ResponseWriter, r *http.Request) {
	h.handle(h.playerInfo)(w, r)
}

func (h *Handler) playerInfo(w http.ResponseWriter, r *http.Request) error {
	var q playerQuery
	if err := h.bindQuery(r.URL.Query(), &q); err != nil {
		return err
	}
	dict, err := h.svc.Players.PlayerInfo(r.Context(), q.PlayerID)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, dict, h.logger)
	return nil
}

// PlayerAwards returns the award history for one player.
func (h *Handler) PlayerAwards(w http.ResponseWriter, r *http.Request) {
	h.handle(h.playerAwards)(w, r)
}

func (h *Handler) playerAwards(w http.ResponseWriter, r *http.Request) error {
	var q playerQuery
	if err := h.bindQuery(r.URL.Query(), &q); err != nil {
		return err
	}
	dict, err := h.svc.Players.PlayerAwards(r.Context(), q.PlayerID)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, dict, h.logger)
	return nil
}

// PlayerStats returns the league player dashboard for a season.
func (h *Handler) PlayerStats(w http.ResponseWriter, r *http.Request) {
	h.handle(h.playerStats)(w, r)
}

func (h *Handler) playerStats(w http.ResponseWriter, r *http.Request) error {
	q, err := h.seasonStatsQuery(r.URL.Query())
	if err != nil {
		return err
	}
	dict, err := h.svc.SeasonStats.PlayerStats(r.Context(), q)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, dict, h.logger)
	return nil
}

// TeamStats returns the league team dashboard for a season.
func (h *Handler) TeamStats(w http.ResponseWriter, r *http.Request) {
	h.handle(h.teamStats)(w, r)
}

func (h *Handler) teamStats(w http.ResponseWriter, r *http.Request) error {
	q, err := h.seasonStatsQuery(r.URL.Query())
	if err != nil {
		return err
	}
	dict, err := h.svc.SeasonStats.TeamStats(r.Context(), q)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, dict, h.logger)
	return nil
}

func (h *Handler) seasonStatsQuery(values url.Values) (seasonstats.Query, error) {
	q := seasonStatsQuery{
		Season:     h.defaults.Season(),
		PerMode:    defaults.PerMode,
		SeasonType: defaults.SeasonType,
	}
	if err := h.bindQuery(values, &q); err != nil {
		return seasonstats.Query{}, err
	}
	return seasonstats.Query{
		LeagueID:   h.defaults.LeagueID(),
		Season:     q.Season,
		SeasonType: q.SeasonType,
		PerMode:    q.PerMode,
	}, nil
}

// LiveGames returns today's live scoreboard games.
func (h *Handler) LiveGames(w http.ResponseWriter, r *http.Request) {
	h.handle(h.liveGames)(w, r)
}

func (h *Handler) liveGames(w http.ResponseWriter, r *http.Request) error {
	items, err := h.svc.Games.LiveGames(r.Context())
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, items, h.logger)
	return nil
}

// BoxScore returns the traditional box score for gameId.
func (h *Handler) BoxScore(w http.ResponseWriter, r *http.Request) {
	h.handle(h.boxScore)(w, r)
}

func (h *Handler) boxScore(w http.ResponseWriter, r *http.Request) error {
	var q boxScoreQuery
	if err := h.bindQuery(r.URL.Query(), &q); err != nil {
		return err
	}
	dict, err := h.svc.Games.BoxScore(r.Context(), q.GameID)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, dict, h.logger)
	return nil
}

// Standings returns conference standings.
func (h *Handler) Standings(w http.ResponseWriter, r *http.Request) {
	h.handle(h.standings)(w, r)
}

func (h *Handler) standings(w http.ResponseWriter, r *http.Request) error {
	q := standingsQuery{
		LeagueID:   h.defaults.LeagueID(),
		Season:     h.defaults.Season(),
		SeasonType: defaults.SeasonType,
	}
	if err := h.bindQuery(r.URL.Query(), &q); err != nil {
		return err
	}
	dict, err := h.svc.League.Standings(r.Context(), league.StandingsQuery{
		LeagueID:   q.LeagueID,
		Season:     q.Season,
		SeasonType: q.SeasonType,
	})
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, dict, h.logger)
	return nil
}

// Schedule returns a season's team games, optionally bounded by StartDate and EndDate.
func (h *Handler) Schedule(w http.ResponseWriter, r *http.Request) {
	h.handle(h.schedule)(w, r)
}

func (h *Handler) schedule(w http.ResponseWriter, r *http.Request) error {
	q := scheduleQuery{
		Season:   h.defaults.Season(),
		LeagueID: h.defaults.LeagueID(),
	}
	if err := h.bindQuery(r.URL.Query(), &q); err != nil {
		return err
	}
	rows, err := h.svc.Games.Schedule(r.Context(), games.ScheduleQuery{
		LeagueID:  q.LeagueID,
		Season:    q.Season,
		TeamID:    q.TeamID,
		StartDate: q.StartDate,
		EndDate:   q.EndDate,
	})
	if err != nil {
		return err
	}
	logging.Debug(loggerFromContext(r, h.logger), "schedule filtered", slog.Int(logging.FieldCount, len(rows)))
	writeJSON(w, http.StatusOK, rows, h.logger)
	return nil
}

// Games returns the scoreboard for GameDate, defaulting to today in the league timezone.
func (h *Handler) Games(w http.ResponseWriter, r *http.Request) {
	h.handle(h.scoreboard)(w, r)
}

func (h *Handler) scoreboard(w http.ResponseWriter, r *http.Request) error {
	q := gamesQuery{
		LeagueID:  h.defaults.LeagueID(),
		DayOffset: "0",
		GameDate:  h.defaults.Today(),
	}
	if err := h.bindQuery(r.URL.Query(), &q); err != nil {
		return err
	}
	// A non-numeric DayOffset fails like an upstream error, before any call is made.
	offset, err := strconv.Atoi(q.DayOffset)
	if err != nil {
		return hideCause(msgGamesUnavailable, err)
	}

	dict, err := h.svc.Games.Scoreboard(r.Context(), games.ScoreboardQuery{
		LeagueID:  q.LeagueID,
		DayOffset: offset,
		GameDate:  q.GameDate,
	})
	if err != nil {
		return hideCause(msgGamesUnavailable, err)
	}
	writeJSON(w, http.StatusOK, dict, h.logger)
	return nil
}

// Seasons lists every league season, newest first, with the current one marked.
func (h *Handler) Seasons(w http.ResponseWriter, r *http.Request) {
	h.handle(h.seasons)(w, r)
}

func (h *Handler) seasons(w http.ResponseWriter, r *http.Request) error {
	q := seasonsQuery{LeagueID: h.defaults.LeagueID()}
	if err := h.bindQuery(r.URL.Query(), &q); err != nil {
		return err
	}
	out, err := h.svc.League.Seasons(r.Context(), q.LeagueID)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, out, h.logger)
	return nil
}
