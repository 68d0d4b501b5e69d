// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/okian/pavilion/internal/domain/view"
)

// VenuesDependencies defines the interface for venue operations.
type VenuesDependencies interface {
	Venues(ctx context.Context, limit int) view.Venues
	MaxLimit() int
}

// VenuesHandler handles venue ranking requests.
type VenuesHandler struct {
	deps VenuesDependencies
}

// NewVenuesHandler creates a new venues handler.
func NewVenuesHandler(deps VenuesDependencies) *VenuesHandler {
	return &VenuesHandler{deps: deps}
}

// HandleGetVenues handles GET /api/venues?limit=N requests.
func (h *VenuesHandler) HandleGetVenues(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	limit, err := parseLimit(r, h.deps.MaxLimit())
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.Venues(r.Context(), limit))
}
