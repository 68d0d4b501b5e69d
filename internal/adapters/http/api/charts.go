// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"bytes"
	"context"
	"net/http"
	"strings"
	"time"

	chartrender "github.com/wcharczuk/go-chart/v2"

	"github.com/okian/pavilion/internal/domain/view"
	"github.com/okian/pavilion/pkg/metrics"
)

// Chart names servable as PNG.
const (
	ChartTeamWins   = "team-wins"
	ChartTopBatters = "top-batters"
	ChartTopBowlers = "top-bowlers"
	ChartVenues     = "venues"
)

// pngBarLimit caps the bars on a rendered image so labels stay legible.
const pngBarLimit = 10

// ChartsDependencies defines the interface for chart rendering operations.
type ChartsDependencies interface {
	Teams(ctx context.Context) view.Teams
	Players(ctx context.Context, limit int) view.Players
	Venues(ctx context.Context, limit int) view.Venues
}

// ChartsHandler renders selected rankings as PNG images.
type ChartsHandler struct {
	deps ChartsDependencies
}

// NewChartsHandler creates a new charts handler.
func NewChartsHandler(deps ChartsDependencies) *ChartsHandler {
	return &ChartsHandler{deps: deps}
}

// HandleGetChart handles GET /api/charts/{name}.png requests.
func (h *ChartsHandler) HandleGetChart(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	name := strings.TrimPrefix(r.URL.Path, "/api/charts/")
	name = strings.TrimSuffix(name, ".png")

	source, ok := h.chartSource(r.Context(), name)
	if !ok {
		writeError(w, http.StatusNotFound, "not_found", ErrUnknownChart)
		return
	}
	if source.Empty() {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	began := time.Now()
	png, err := renderChartPNG(source)
	if err != nil {
		metrics.RecordChartRenderError()
		writeError(w, http.StatusInternalServerError, "render_failed", err)
		return
	}
	metrics.RecordChartRender()
	metrics.RecordChartRenderLatency(float64(time.Since(began).Milliseconds()))

	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(png)
}

// renderChartPNG renders source into an in-memory PNG. Buffering keeps the
// response writable when the renderer fails partway through.
func renderChartPNG(source view.Chart) ([]byte, error) {
	bars := make([]chartrender.Value, 0, pngBarLimit)
	for _, p := range source.Series[0].Data {
		if len(bars) == pngBarLimit {
			break
		}
		bars = append(bars, chartrender.Value{Label: p.Label, Value: p.Value})
	}

	graph := chartrender.BarChart{
		Title:    source.Title,
		Width:    1024,
		Height:   512,
		BarWidth: 60,
		Bars:     bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chartrender.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// chartSource maps a chart name to its ranking.
func (h *ChartsHandler) chartSource(ctx context.Context, name string) (view.Chart, bool) {
	switch name {
	case ChartTeamWins:
		return h.deps.Teams(ctx).WinsPerTeam, true
	case ChartTopBatters:
		return h.deps.Players(ctx, pngBarLimit).TopRunScorers, true
	case ChartTopBowlers:
		return h.deps.Players(ctx, pngBarLimit).TopWicketTakers, true
	case ChartVenues:
		return h.deps.Venues(ctx, pngBarLimit).MatchesPerVenue, true
	default:
		return view.Chart{}, false
	}
}
