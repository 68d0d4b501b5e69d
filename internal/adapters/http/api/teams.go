// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/okian/pavilion/internal/domain/view"
)

// TeamsDependencies defines the interface for team analysis operations.
type TeamsDependencies interface {
	Teams(ctx context.Context) view.Teams
	Team(ctx context.Context, name string) (view.TeamDetail, error)
	TeamNames(ctx context.Context) []string
}

// TeamsHandler handles team analysis requests.
type TeamsHandler struct {
	deps TeamsDependencies
}

// NewTeamsHandler creates a new teams handler.
func NewTeamsHandler(deps TeamsDependencies) *TeamsHandler {
	return &TeamsHandler{deps: deps}
}

// teamsResponse bundles the league-wide page with the selector list.
type teamsResponse struct {
	Teams view.Teams `json:"analysis"`
	Names []string   `json:"names"`
}

// HandleGetTeams handles GET /api/teams requests.
func (h *TeamsHandler) HandleGetTeams(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, teamsResponse{
		Teams: h.deps.Teams(r.Context()),
		Names: h.deps.TeamNames(r.Context()),
	})
}

// HandleGetTeam handles GET /api/teams/{name} requests.
func (h *TeamsHandler) HandleGetTeam(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	// Extract path parameter after /api/teams/
	raw := strings.TrimPrefix(r.URL.Path, "/api/teams/")
	if raw == "" || strings.Contains(raw, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	name, err := url.PathUnescape(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	detail, err := h.deps.Team(r.Context(), name)
	if err != nil {
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}
