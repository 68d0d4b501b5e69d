// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/okian/pavilion/internal/domain/view"
)

// OverviewDependencies defines the interface for overview operations.
type OverviewDependencies interface {
	Overview(ctx context.Context) view.Overview
}

// OverviewHandler handles overview requests.
type OverviewHandler struct {
	deps OverviewDependencies
}

// NewOverviewHandler creates a new overview handler.
func NewOverviewHandler(deps OverviewDependencies) *OverviewHandler {
	return &OverviewHandler{deps: deps}
}

// HandleGetOverview handles GET /api/overview requests.
func (h *OverviewHandler) HandleGetOverview(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.Overview(r.Context()))
}
