package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/smartystreets/goconvey/convey"

	"github.com/okian/pavilion/internal/adapters/repository"
	"github.com/okian/pavilion/internal/domain/stats"
	"github.com/okian/pavilion/internal/domain/view"
)

type fakeDeps struct{}

func rankingChart(title string) view.Chart {
	return view.BarChart(title, "X", "Y", []stats.Count{
		{Label: "Mumbai Indians", Value: 5},
		{Label: "Chennai Super Kings", Value: 4},
	})
}

func (fakeDeps) Overview(context.Context) view.Overview {
	return view.Overview{
		Figures:     []view.Figure{{Label: "Matches", Value: "3"}},
		WinsPerTeam: rankingChart("Matches Won"),
	}
}

func (fakeDeps) Teams(context.Context) view.Teams {
	return view.Teams{WinsPerTeam: rankingChart("Matches Won")}
}

func (fakeDeps) Players(_ context.Context, limit int) view.Players {
	return view.Players{
		TopRunScorers:   rankingChart(fmt.Sprintf("Most Runs (%d)", limit)),
		TopWicketTakers: rankingChart("Most Wickets"),
	}
}

func (fakeDeps) Venues(context.Context, int) view.Venues {
	return view.Venues{MatchesPerVenue: rankingChart("Matches Hosted")}
}

func (fakeDeps) Season(_ context.Context, year int) (view.SeasonDetail, error) {
	if year != 2008 {
		return view.SeasonDetail{}, repository.ErrSeasonNotFound
	}
	return view.SeasonDetail{Season: 2008, Winner: "Chennai Super Kings"}, nil
}

func (fakeDeps) Team(_ context.Context, name string) (view.TeamDetail, error) {
	if name != "Chennai Super Kings" {
		return view.TeamDetail{}, repository.ErrTeamNotFound
	}
	return view.TeamDetail{Team: name}, nil
}

func (fakeDeps) HeadToHead(_ context.Context, team1, team2 string) (view.Rivalry, error) {
	return view.Rivalry{Summary: stats.HeadToHead{Team1: team1, Team2: team2, Matches: 3}}, nil
}

func (fakeDeps) Seasons(context.Context) []int      { return []int{2008, 2009} }
func (fakeDeps) TeamNames(context.Context) []string { return []string{"Chennai Super Kings"} }
func (fakeDeps) MaxLimit() int                      { return 100 }

type fakeStats struct{}

func (fakeStats) GetStats() map[string]interface{} {
	return map[string]interface{}{"started": true}
}

func newTestMux() *http.ServeMux {
	mux := http.NewServeMux()
	NewServer(fakeDeps{}, fakeStats{}).Register(context.Background(), mux)
	return mux
}

func get(mux *http.ServeMux, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestAPIRoutes(t *testing.T) {
	mux := newTestMux()

	convey.Convey("Given the registered API routes", t, func() {
		convey.Convey("the overview returns the assembled page", func() {
			rec := get(mux, "/api/overview")
			convey.So(rec.Code, convey.ShouldEqual, http.StatusOK)
			convey.So(rec.Header().Get("Content-Type"), convey.ShouldContainSubstring, "application/json")

			var page view.Overview
			convey.So(json.Unmarshal(rec.Body.Bytes(), &page), convey.ShouldBeNil)
			convey.So(page.Figures[0].Value, convey.ShouldEqual, "3")
		})

		convey.Convey("the teams route bundles analysis with the selector list", func() {
			rec := get(mux, "/api/teams")
			convey.So(rec.Code, convey.ShouldEqual, http.StatusOK)

			var page teamsResponse
			convey.So(json.Unmarshal(rec.Body.Bytes(), &page), convey.ShouldBeNil)
			convey.So(page.Names, convey.ShouldResemble, []string{"Chennai Super Kings"})
		})

		convey.Convey("the team route resolves names and rejects unknowns", func() {
			convey.So(get(mux, "/api/teams/Chennai%20Super%20Kings").Code, convey.ShouldEqual, http.StatusOK)
			convey.So(get(mux, "/api/teams/Fictional%20XI").Code, convey.ShouldEqual, http.StatusNotFound)
			convey.So(get(mux, "/api/teams/a/b").Code, convey.ShouldEqual, http.StatusBadRequest)
		})

		convey.Convey("the players route validates the limit", func() {
			convey.So(get(mux, "/api/players").Code, convey.ShouldEqual, http.StatusOK)
			convey.So(get(mux, "/api/players?limit=5").Code, convey.ShouldEqual, http.StatusOK)
			convey.So(get(mux, "/api/players?limit=abc").Code, convey.ShouldEqual, http.StatusBadRequest)
			convey.So(get(mux, "/api/players?limit=0").Code, convey.ShouldEqual, http.StatusBadRequest)
			convey.So(get(mux, "/api/players?limit=100").Code, convey.ShouldEqual, http.StatusOK)
			convey.So(get(mux, "/api/players?limit=101").Code, convey.ShouldEqual, http.StatusBadRequest)
			convey.So(get(mux, "/api/venues?limit=101").Code, convey.ShouldEqual, http.StatusBadRequest)
		})

		convey.Convey("the season routes enumerate and drill down", func() {
			rec := get(mux, "/api/seasons")
			convey.So(rec.Code, convey.ShouldEqual, http.StatusOK)

			var seasons []int
			convey.So(json.Unmarshal(rec.Body.Bytes(), &seasons), convey.ShouldBeNil)
			convey.So(seasons, convey.ShouldResemble, []int{2008, 2009})

			convey.So(get(mux, "/api/seasons/2008").Code, convey.ShouldEqual, http.StatusOK)
			convey.So(get(mux, "/api/seasons/1999").Code, convey.ShouldEqual, http.StatusNotFound)
			convey.So(get(mux, "/api/seasons/abc").Code, convey.ShouldEqual, http.StatusBadRequest)
		})

		convey.Convey("head-to-head requires two distinct teams", func() {
			convey.So(get(mux, "/api/head-to-head?team1=A&team2=B").Code, convey.ShouldEqual, http.StatusOK)
			convey.So(get(mux, "/api/head-to-head?team1=A").Code, convey.ShouldEqual, http.StatusBadRequest)
			convey.So(get(mux, "/api/head-to-head?team1=A&team2=a").Code, convey.ShouldEqual, http.StatusBadRequest)

			alias := "/api/head-to-head?team1=Delhi%20Daredevils&team2=Delhi%20Capitals"
			convey.So(get(mux, alias).Code, convey.ShouldEqual, http.StatusBadRequest)
		})

		convey.Convey("chart rendering is buffered before the response", func() {
			png, err := renderChartPNG(rankingChart("Matches Won"))
			convey.So(err, convey.ShouldBeNil)
			convey.So(len(png), convey.ShouldBeGreaterThan, 0)

			blank := view.Chart{Title: "empty", Series: []view.Series{{Name: "wins"}}}
			png, err = renderChartPNG(blank)
			convey.So(err, convey.ShouldNotBeNil)
			convey.So(png, convey.ShouldBeNil)
		})

		convey.Convey("charts render PNG for known names only", func() {
			rec := get(mux, "/api/charts/team-wins.png")
			convey.So(rec.Code, convey.ShouldEqual, http.StatusOK)
			convey.So(rec.Header().Get("Content-Type"), convey.ShouldEqual, "image/png")
			convey.So(rec.Body.Len(), convey.ShouldBeGreaterThan, 0)

			convey.So(get(mux, "/api/charts/nonsense.png").Code, convey.ShouldEqual, http.StatusNotFound)
		})

		convey.Convey("stats and health endpoints answer", func() {
			convey.So(get(mux, "/stats").Code, convey.ShouldEqual, http.StatusOK)
			convey.So(get(mux, "/healthz").Code, convey.ShouldEqual, http.StatusOK)
		})

		convey.Convey("write methods are rejected", func() {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/overview", nil))
			convey.So(rec.Code, convey.ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestRequestIDMiddleware(t *testing.T) {
	convey.Convey("Given a wrapped handler", t, func() {
		handler := RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

		convey.Convey("a missing request id is generated", func() {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
			convey.So(rec.Header().Get(RequestIDHeader), convey.ShouldNotBeEmpty)
		})

		convey.Convey("a supplied request id is echoed", func() {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(RequestIDHeader, "abc-123")
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			convey.So(rec.Header().Get(RequestIDHeader), convey.ShouldEqual, "abc-123")
		})
	})
}
