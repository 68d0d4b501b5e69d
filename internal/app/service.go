// Package service provides the core analytics service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/okian/pavilion/internal/adapters/ingest"
	"github.com/okian/pavilion/internal/adapters/repository"
	"github.com/okian/pavilion/internal/domain/model"
	"github.com/okian/pavilion/internal/domain/stats"
	"github.com/okian/pavilion/internal/domain/view"
	"github.com/okian/pavilion/pkg/logger"
	"github.com/okian/pavilion/pkg/metrics"
)

// Service assembles dashboard views over the loaded dataset. The
// dataset never changes after Start, so views are built lazily and
// cached forever.
type Service struct {
	mu sync.RWMutex

	// Core components
	store repository.Store

	// Configuration
	matchesPath    string
	deliveriesPath string
	defaultLimit   int
	maxLimit       int

	// State
	started bool
	cache   map[string]any

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithDatasetPaths sets the CSV file locations.
func WithDatasetPaths(matches, deliveries string) Option {
	return func(s *Service) {
		if matches != "" {
			s.matchesPath = matches
		}
		if deliveries != "" {
			s.deliveriesPath = deliveries
		}
	}
}

// WithDefaultLimit sets the ranking length used when a request names none.
func WithDefaultLimit(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.defaultLimit = n
		}
	}
}

// WithMaxLimit caps the ranking length a request may ask for.
func WithMaxLimit(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxLimit = n
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithStore injects a pre-built store, skipping the CSV load on Start.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		s.store = store
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		matchesPath:    "data/matches.csv",
		deliveriesPath: "data/deliveries.csv",
		defaultLimit:   10,
		maxLimit:       100,
		cache:          make(map[string]any),
		logger:         nil, // Will be replaced when service starts
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start loads the dataset and builds the store. A load failure is fatal
// to the caller: the service has nothing to serve without its data.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting analytics service...")

	if s.store == nil {
		began := time.Now()
		dataset, err := ingest.Load(ctx, s.matchesPath, s.deliveriesPath)
		if err != nil {
			return fmt.Errorf("load dataset: %w", err)
		}
		metrics.RecordDatasetLoadDuration(float64(time.Since(began).Milliseconds()))
		metrics.RecordDatasetOrphanRows(dataset.OrphanDeliveries)
		s.store = repository.NewMemStore(ctx, dataset.Matches, dataset.Deliveries,
			repository.WithLogger(s.logger))
	}

	metrics.UpdateDatasetCounts(
		s.store.MatchCount(ctx),
		s.store.DeliveryCount(ctx),
		len(s.store.Seasons(ctx)),
	)

	s.started = true
	s.logger.Info(ctx, "analytics service started",
		logger.Int("matches", s.store.MatchCount(ctx)),
		logger.Int("deliveries", s.store.DeliveryCount(ctx)),
		logger.Int("seasons", len(s.store.Seasons(ctx))),
	)

	return nil
}

// Stop releases the service. The store is immutable, so there is
// nothing to flush; this exists for symmetry with Start.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "analytics service stopped")
}

// MaxLimit reports the configured ranking length cap.
func (s *Service) MaxLimit() int {
	return s.maxLimit
}

// ClampLimit resolves a requested ranking length against the configured
// default and cap. Zero or negative means "use the default".
func (s *Service) ClampLimit(n int) int {
	if n <= 0 {
		return s.defaultLimit
	}
	if n > s.maxLimit {
		return s.maxLimit
	}
	return n
}

// cachedView returns the cached payload under key, building and storing
// it on first use. The dataset is immutable, so entries never expire.
func cachedView[T any](s *Service, key string, build func() T) T {
	s.mu.RLock()
	if v, ok := s.cache[key]; ok {
		s.mu.RUnlock()
		metrics.RecordViewCacheHit()
		return v.(T)
	}
	s.mu.RUnlock()

	began := time.Now()
	built := build()
	metrics.RecordViewBuild(key)
	metrics.RecordViewBuildLatency(key, float64(time.Since(began).Milliseconds()))

	s.mu.Lock()
	s.cache[key] = built
	s.mu.Unlock()
	return built
}

// Overview returns the landing page payload.
func (s *Service) Overview(ctx context.Context) view.Overview {
	return cachedView(s, "overview", func() view.Overview {
		matches := s.store.Matches(ctx)
		deliveries := s.store.Deliveries(ctx)
		return view.Overview{
			Figures: []view.Figure{
				{Label: "Matches", Value: strconv.Itoa(stats.TotalMatches(matches))},
				{Label: "Deliveries", Value: strconv.Itoa(len(deliveries))},
				{Label: "Seasons", Value: strconv.Itoa(len(s.store.Seasons(ctx)))},
				{Label: "Teams", Value: strconv.Itoa(len(s.store.Teams(ctx)))},
				{Label: "Runs Scored", Value: strconv.Itoa(stats.TotalRuns(deliveries))},
				{Label: "Wickets Taken", Value: strconv.Itoa(stats.TotalWickets(deliveries))},
			},
			SeasonWinners:  view.WinnerTable("Season Champions", stats.SeasonWinners(matches)),
			Titles:         view.PieChart("Titles Won", stats.TitlesPerTeam(matches)),
			WinsPerTeam:    view.BarChart("Matches Won", "Team", "Wins", stats.WinsPerTeam(matches)),
			CumulativeRuns: view.LineChart("Cumulative Runs by Season", "Season", "Runs", stats.CumulativeRuns(deliveries, 5)),
		}
	})
}

// Teams returns the league-wide team analysis payload.
func (s *Service) Teams(ctx context.Context) view.Teams {
	return cachedView(s, "teams", func() view.Teams {
		matches := s.store.Matches(ctx)
		deliveries := s.store.Deliveries(ctx)
		return view.Teams{
			MatchesPerTeam:    view.BarChart("Matches Played", "Team", "Matches", stats.MatchesPerTeam(matches)),
			WinsPerTeam:       view.BarChart("Matches Won", "Team", "Wins", stats.WinsPerTeam(matches)),
			LossesPerTeam:     view.BarChart("Matches Lost", "Team", "Losses", stats.LossesPerTeam(matches)),
			WinPercentages:    view.PercentageBarChart("Win Percentage", "Team", "Win %", stats.WinPercentages(matches)),
			TossWins:          view.BarChart("Tosses Won", "Team", "Tosses", stats.TossWinsPerTeam(matches)),
			TossOutcomes:      view.TossTable("Toss Decision Outcomes", stats.TossDecisionOutcomes(matches)),
			FinalsAppearances: view.BarChart("Finals Reached", "Team", "Finals", stats.FinalsAppearances(matches)),
			HighestTotals:     view.TotalsTable("Highest Innings Totals", stats.HighestTeamTotals(matches, deliveries, s.defaultLimit)),
		}
	})
}

// Players returns the career leaderboard payload for the given limit.
func (s *Service) Players(ctx context.Context, limit int) view.Players {
	limit = s.ClampLimit(limit)
	key := "players:" + strconv.Itoa(limit)
	return cachedView(s, key, func() view.Players {
		matches := s.store.Matches(ctx)
		deliveries := s.store.Deliveries(ctx)
		orange := stats.OrangeCaps(deliveries)
		purple := stats.PurpleCaps(deliveries)
		return view.Players{
			TopRunScorers:   view.BarChart("Most Runs", "Batter", "Runs", stats.TopRunScorers(deliveries, limit)),
			TopWicketTakers: view.BarChart("Most Wickets", "Bowler", "Wickets", stats.TopWicketTakers(deliveries, limit)),
			MostSixes:       view.BarChart("Most Sixes", "Batter", "Sixes", stats.TopSixHitters(deliveries, limit)),
			MostFours:       view.BarChart("Most Fours", "Batter", "Fours", stats.TopFourHitters(deliveries, limit)),
			MostCatches:     view.BarChart("Most Catches", "Fielder", "Catches", stats.TopCatchTakers(deliveries, limit)),
			MostStumpings:   view.BarChart("Most Stumpings", "Keeper", "Stumpings", stats.TopStumpings(deliveries, limit)),
			MostRunOuts:     view.BarChart("Most Run Outs", "Fielder", "Run Outs", stats.TopRunOuts(deliveries, limit)),
			MostMatches:     view.BarChart("Most Matches", "Batter", "Matches", stats.MostMatchesPlayed(deliveries, limit)),
			PlayerOfMatch:   view.BarChart("Player of the Match Awards", "Player", "Awards", stats.PlayerOfMatchAwards(matches, limit)),
			OrangeCaps:      view.LeaderTable("Orange Cap Holders", "Runs", orange),
			PurpleCaps:      view.LeaderTable("Purple Cap Holders", "Wickets", purple),
			OrangeCapCounts: view.BarChart("Orange Caps Won", "Batter", "Caps", stats.LeaderCounts(orange)),
			PurpleCapCounts: view.BarChart("Purple Caps Won", "Bowler", "Caps", stats.LeaderCounts(purple)),
			SixLeaders:      view.LeaderTable("Season Six Leaders", "Sixes", stats.SeasonSixLeaders(deliveries)),
			FourLeaders:     view.LeaderTable("Season Four Leaders", "Fours", stats.SeasonFourLeaders(deliveries)),
			CumulativeRuns:  view.LineChart("Cumulative Runs by Season", "Season", "Runs", stats.CumulativeRuns(deliveries, 5)),
		}
	})
}

// Seasons returns the distinct seasons in ascending order.
func (s *Service) Seasons(ctx context.Context) []int {
	return s.store.Seasons(ctx)
}

// Teams lists are served from the store directly.
func (s *Service) TeamNames(ctx context.Context) []string {
	return s.store.Teams(ctx)
}

// Season returns one season's page. Unknown seasons propagate
// repository.ErrSeasonNotFound.
func (s *Service) Season(ctx context.Context, year int) (view.SeasonDetail, error) {
	deliveries, err := s.store.DeliveriesForSeason(ctx, year)
	if err != nil {
		return view.SeasonDetail{}, err
	}
	key := "season:" + strconv.Itoa(year)
	return cachedView(s, key, func() view.SeasonDetail {
		matches := make([]model.Match, 0)
		for _, m := range s.store.Matches(ctx) {
			if m.Season == year {
				matches = append(matches, m)
			}
		}
		winner := ""
		for _, w := range stats.SeasonWinners(matches) {
			if w.Season == year {
				winner = w.Winner
			}
		}
		detail := view.SeasonDetail{
			Season: year,
			Winner: winner,
			Figures: []view.Figure{
				{Label: "Matches", Value: strconv.Itoa(len(matches))},
				{Label: "Runs Scored", Value: strconv.Itoa(stats.TotalRuns(deliveries))},
				{Label: "Wickets Taken", Value: strconv.Itoa(stats.TotalWickets(deliveries))},
			},
			TopRunScorers:   view.BarChart("Most Runs", "Batter", "Runs", stats.TopRunScorers(deliveries, s.defaultLimit)),
			TopWicketTakers: view.BarChart("Most Wickets", "Bowler", "Wickets", stats.TopWicketTakers(deliveries, s.defaultLimit)),
			MostSixes:       view.BarChart("Most Sixes", "Batter", "Sixes", stats.TopSixHitters(deliveries, s.defaultLimit)),
			MostFours:       view.BarChart("Most Fours", "Batter", "Fours", stats.TopFourHitters(deliveries, s.defaultLimit)),
			MostCatches:     view.BarChart("Most Catches", "Fielder", "Catches", stats.TopCatchTakers(deliveries, s.defaultLimit)),
			MostStumpings:   view.BarChart("Most Stumpings", "Keeper", "Stumpings", stats.TopStumpings(deliveries, s.defaultLimit)),
			MostRunOuts:     view.BarChart("Most Run Outs", "Fielder", "Run Outs", stats.TopRunOuts(deliveries, s.defaultLimit)),
			Venues:          view.CountTable("Matches by Venue", "Venue", "Matches", stats.VenueMatches(matches, 0)),
		}
		if detail.TopRunScorers.Empty() {
			metrics.RecordViewEmptyResult(key)
		}
		return detail
	}), nil
}

// Team returns one team's page. Unknown teams propagate
// repository.ErrTeamNotFound.
func (s *Service) Team(ctx context.Context, name string) (view.TeamDetail, error) {
	name = model.CanonicalTeam(name)
	deliveries, err := s.store.DeliveriesForTeam(ctx, name)
	if err != nil {
		return view.TeamDetail{}, err
	}
	key := "team:" + name
	return cachedView(s, key, func() view.TeamDetail {
		matches := make([]model.Match, 0)
		for _, m := range s.store.Matches(ctx) {
			if m.Involves(name) {
				matches = append(matches, m)
			}
		}

		played, wins, losses := 0, 0, 0
		opponentWins := make(map[string]int)
		for _, m := range matches {
			played++
			if !m.Decided() {
				continue
			}
			if m.Winner == name {
				wins++
				opponentWins[m.Opponent(name)]++
			} else {
				losses++
			}
		}
		winPct := stats.Percentage{Label: name}
		if wins+losses > 0 {
			winPct.Value = float64(wins) / float64(wins+losses) * 100
		}

		h2h := make([]stats.Count, 0, len(opponentWins))
		for opp, n := range opponentWins {
			h2h = append(h2h, stats.Count{Label: opp, Value: n})
		}
		sort.Slice(h2h, func(i, j int) bool {
			if h2h[i].Value != h2h[j].Value {
				return h2h[i].Value > h2h[j].Value
			}
			return h2h[i].Label < h2h[j].Label
		})

		batting := stats.FilterBatting(deliveries, name)
		fielding := stats.FilterFielding(deliveries, name)

		detail := view.TeamDetail{
			Team: name,
			Figures: []view.Figure{
				{Label: "Matches", Value: strconv.Itoa(played)},
				{Label: "Wins", Value: strconv.Itoa(wins)},
				{Label: "Losses", Value: strconv.Itoa(losses)},
			},
			TopRunScorers:   view.BarChart("Most Runs for "+name, "Batter", "Runs", stats.TopRunScorers(batting, s.defaultLimit)),
			TopWicketTakers: view.BarChart("Most Wickets for "+name, "Bowler", "Wickets", stats.TopWicketTakers(fielding, s.defaultLimit)),
			MostSixes:       view.BarChart("Most Sixes for "+name, "Batter", "Sixes", stats.TopSixHitters(batting, s.defaultLimit)),
			MostFours:       view.BarChart("Most Fours for "+name, "Batter", "Fours", stats.TopFourHitters(batting, s.defaultLimit)),
			MostCatches:     view.BarChart("Most Catches for "+name, "Fielder", "Catches", stats.TopCatchTakers(fielding, s.defaultLimit)),
			MostStumpings:   view.BarChart("Most Stumpings for "+name, "Keeper", "Stumpings", stats.TopStumpings(fielding, s.defaultLimit)),
			MostRunOuts:     view.BarChart("Most Run Outs for "+name, "Fielder", "Run Outs", stats.TopRunOuts(fielding, s.defaultLimit)),
			SeasonResults:   view.WinnerTable("Season Champions", stats.SeasonWinners(matches)),
			HeadToHead:      h2h,
			WinPercentage:   winPct,
		}
		return detail
	}), nil
}

// Venues returns the grounds page for the given limit.
func (s *Service) Venues(ctx context.Context, limit int) view.Venues {
	limit = s.ClampLimit(limit)
	key := "venues:" + strconv.Itoa(limit)
	return cachedView(s, key, func() view.Venues {
		counts := stats.VenueMatches(s.store.Matches(ctx), limit)
		return view.Venues{
			MatchesPerVenue: view.BarChart("Matches Hosted", "Venue", "Matches", counts),
			VenueTable:      view.CountTable("Matches by Venue", "Venue", "Matches", counts),
		}
	})
}

// HeadToHead returns the rivalry page for two sides. Team names pass
// through alias canonicalization, so historical names resolve.
func (s *Service) HeadToHead(ctx context.Context, team1, team2 string) (view.Rivalry, error) {
	team1 = model.CanonicalTeam(team1)
	team2 = model.CanonicalTeam(team2)
	matches, err := s.store.MatchesBetween(ctx, team1, team2)
	if err != nil {
		return view.Rivalry{}, err
	}
	key := "h2h:" + team1 + "|" + team2
	return cachedView(s, key, func() view.Rivalry {
		summary := stats.MatchesBetween(matches, team1, team2)
		r := view.Rivalry{
			Summary: summary,
			Wins:    view.PieChart(team1+" vs "+team2, summary.Wins),
		}
		if summary.Matches == 0 {
			metrics.RecordViewEmptyResult(key)
		}
		return r
	}), nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	out := map[string]interface{}{
		"started":      s.started,
		"defaultLimit": s.defaultLimit,
		"maxLimit":     s.maxLimit,
		"cachedViews":  len(s.cache),
	}

	if s.started {
		out["matches"] = s.store.MatchCount(ctx)
		out["deliveries"] = s.store.DeliveryCount(ctx)
		out["seasons"] = len(s.store.Seasons(ctx))
		out["teams"] = len(s.store.Teams(ctx))
	}

	return out
}
