// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/okian/pavilion/internal/domain/model"
	"github.com/okian/pavilion/internal/domain/view"
)

// HeadToHeadDependencies defines the interface for rivalry operations.
type HeadToHeadDependencies interface {
	HeadToHead(ctx context.Context, team1, team2 string) (view.Rivalry, error)
}

// HeadToHeadHandler handles rivalry requests.
type HeadToHeadHandler struct {
	deps HeadToHeadDependencies
}

// NewHeadToHeadHandler creates a new head-to-head handler.
func NewHeadToHeadHandler(deps HeadToHeadDependencies) *HeadToHeadHandler {
	return &HeadToHeadHandler{deps: deps}
}

// HandleGetHeadToHead handles GET /api/head-to-head?team1=A&team2=B requests.
func (h *HeadToHeadHandler) HandleGetHeadToHead(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	// Canonicalize before the same-team check so two aliases of one
	// franchise do not pass as a rivalry.
	team1 := model.CanonicalTeam(r.URL.Query().Get("team1"))
	team2 := model.CanonicalTeam(r.URL.Query().Get("team2"))
	if team1 == "" || team2 == "" || strings.EqualFold(team1, team2) {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	rivalry, err := h.deps.HeadToHead(r.Context(), team1, team2)
	if err != nil {
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, rivalry)
}
