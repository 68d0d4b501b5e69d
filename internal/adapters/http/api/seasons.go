// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/okian/pavilion/internal/domain/view"
)

// SeasonsDependencies defines the interface for season operations.
type SeasonsDependencies interface {
	Seasons(ctx context.Context) []int
	Season(ctx context.Context, year int) (view.SeasonDetail, error)
}

// SeasonsHandler handles season requests.
type SeasonsHandler struct {
	deps SeasonsDependencies
}

// NewSeasonsHandler creates a new seasons handler.
func NewSeasonsHandler(deps SeasonsDependencies) *SeasonsHandler {
	return &SeasonsHandler{deps: deps}
}

// HandleGetSeasons handles GET /api/seasons requests.
func (h *SeasonsHandler) HandleGetSeasons(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.Seasons(r.Context()))
}

// HandleGetSeason handles GET /api/seasons/{year} requests.
func (h *SeasonsHandler) HandleGetSeason(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	// Extract path parameter after /api/seasons/
	raw := strings.TrimPrefix(r.URL.Path, "/api/seasons/")
	year, err := strconv.Atoi(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	detail, err := h.deps.Season(r.Context(), year)
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
