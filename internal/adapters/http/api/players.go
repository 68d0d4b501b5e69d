// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/okian/pavilion/internal/domain/view"
)

// PlayersDependencies defines the interface for player ranking operations.
type PlayersDependencies interface {
	Players(ctx context.Context, limit int) view.Players
	MaxLimit() int
}

// PlayersHandler handles player ranking requests.
type PlayersHandler struct {
	deps PlayersDependencies
}

// NewPlayersHandler creates a new players handler.
func NewPlayersHandler(deps PlayersDependencies) *PlayersHandler {
	return &PlayersHandler{deps: deps}
}

// HandleGetPlayers handles GET /api/players?limit=N requests.
func (h *PlayersHandler) HandleGetPlayers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	limit, err := parseLimit(r, h.deps.MaxLimit())
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.Players(r.Context(), limit))
}
