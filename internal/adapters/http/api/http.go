// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/okian/pavilion/internal/adapters/repository"
	"github.com/okian/pavilion/internal/domain/view"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Pre-assembled dashboard pages.
	Overview(ctx context.Context) view.Overview
	Teams(ctx context.Context) view.Teams
	Players(ctx context.Context, limit int) view.Players
	Venues(ctx context.Context, limit int) view.Venues

	// Drill-down pages. Unknown selections surface not-found errors.
	Season(ctx context.Context, year int) (view.SeasonDetail, error)
	Team(ctx context.Context, name string) (view.TeamDetail, error)
	HeadToHead(ctx context.Context, team1, team2 string) (view.Rivalry, error)

	// Enumerations for selector widgets.
	Seasons(ctx context.Context) []int
	TeamNames(ctx context.Context) []string

	// MaxLimit reports the largest ranking length a request may ask for.
	MaxLimit() int
}

// Server wires HTTP routes for the analytics API.
type Server struct {
	healthHandler     *HealthHandler
	statsHandler      *StatsHandler
	overviewHandler   *OverviewHandler
	teamsHandler      *TeamsHandler
	playersHandler    *PlayersHandler
	seasonsHandler    *SeasonsHandler
	venuesHandler     *VenuesHandler
	headToHeadHandler *HeadToHeadHandler
	chartsHandler     *ChartsHandler
	dashboardHandler  *dashboardHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:     NewHealthHandler(),
		statsHandler:      NewStatsHandler(statsProvider),
		overviewHandler:   NewOverviewHandler(deps),
		teamsHandler:      NewTeamsHandler(deps),
		playersHandler:    NewPlayersHandler(deps),
		seasonsHandler:    NewSeasonsHandler(deps),
		venuesHandler:     NewVenuesHandler(deps),
		headToHeadHandler: NewHeadToHeadHandler(deps),
		chartsHandler:     NewChartsHandler(deps),
		dashboardHandler:  newDashboardHandler(),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	// Specific paths first (most specific to least specific)
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/dashboard", s.dashboardHandler.HandleDashboard)
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/api/overview", MetricsMiddleware(s.overviewHandler.HandleGetOverview, "overview"))
	mux.HandleFunc("/api/teams", MetricsMiddleware(s.teamsHandler.HandleGetTeams, "teams"))
	mux.HandleFunc("/api/teams/", MetricsMiddleware(s.teamsHandler.HandleGetTeam, "team"))
	mux.HandleFunc("/api/players", MetricsMiddleware(s.playersHandler.HandleGetPlayers, "players"))
	mux.HandleFunc("/api/seasons", MetricsMiddleware(s.seasonsHandler.HandleGetSeasons, "seasons"))
	mux.HandleFunc("/api/seasons/", MetricsMiddleware(s.seasonsHandler.HandleGetSeason, "season"))
	mux.HandleFunc("/api/venues", MetricsMiddleware(s.venuesHandler.HandleGetVenues, "venues"))
	mux.HandleFunc("/api/head-to-head", MetricsMiddleware(s.headToHeadHandler.HandleGetHeadToHead, "head_to_head"))
	mux.HandleFunc("/api/charts/", MetricsMiddleware(s.chartsHandler.HandleGetChart, "charts"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// isNotFound translates upstream not-found errors to 404.
func isNotFound(err error) bool {
	return errors.Is(err, repository.ErrSeasonNotFound) ||
		errors.Is(err, repository.ErrTeamNotFound)
}

// parseLimit reads the optional limit query parameter. Absent means zero,
// letting the service apply its default; present values must fall in
// 1..max.
func parseLimit(r *http.Request, max int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("limit"))
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 || n > max {
		return 0, ErrBadRequest
	}
	return n, nil
}
