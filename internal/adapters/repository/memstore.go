package repository

import (
	"context"
	"fmt"
	"sort"

	"github.com/okian/pavilion/internal/domain/model"
	"github.com/okian/pavilion/pkg/logger"
)

// MemStore is the in-memory Store implementation. Indexes are built once
// at construction; all reads afterwards are lock-free because nothing
// mutates.
type MemStore struct {
	matches    []model.Match
	deliveries []model.Delivery

	deliveriesBySeason map[int][]model.Delivery
	deliveriesByTeam   map[string][]model.Delivery
	seasons            []int
	teams              []string
	seasonSet          map[int]bool
	teamSet            map[string]bool

	logger logger.Logger
}

// NewMemStore builds a store and its indexes from the cleaned record sets.
func NewMemStore(ctx context.Context, matches []model.Match, deliveries []model.Delivery, opts ...Option) *MemStore {
	s := &MemStore{
		matches:            matches,
		deliveries:         deliveries,
		deliveriesBySeason: make(map[int][]model.Delivery),
		deliveriesByTeam:   make(map[string][]model.Delivery),
		seasonSet:          make(map[int]bool),
		teamSet:            make(map[string]bool),
	}

	for _, opt := range opts {
		opt(s)
	}

	for _, m := range matches {
		for _, t := range []string{m.Team1, m.Team2} {
			if t != "" && !s.teamSet[t] {
				s.teamSet[t] = true
				s.teams = append(s.teams, t)
			}
		}
	}
	sort.Strings(s.teams)

	for _, m := range matches {
		if !s.seasonSet[m.Season] {
			s.seasonSet[m.Season] = true
			s.seasons = append(s.seasons, m.Season)
		}
	}
	sort.Ints(s.seasons)

	for _, d := range deliveries {
		s.deliveriesBySeason[d.Season] = append(s.deliveriesBySeason[d.Season], d)
		if d.BattingTeam != "" {
			s.deliveriesByTeam[d.BattingTeam] = append(s.deliveriesByTeam[d.BattingTeam], d)
		}
		if d.BowlingTeam != "" && d.BowlingTeam != d.BattingTeam {
			s.deliveriesByTeam[d.BowlingTeam] = append(s.deliveriesByTeam[d.BowlingTeam], d)
		}
	}

	if s.logger != nil {
		s.logger.Debug(ctx, "store indexes built",
			logger.Int("matches", len(s.matches)),
			logger.Int("deliveries", len(s.deliveries)),
			logger.Int("seasons", len(s.seasons)),
			logger.Int("teams", len(s.teams)),
		)
	}

	return s
}

// Matches returns all match records.
func (s *MemStore) Matches(_ context.Context) []model.Match {
	return s.matches
}

// Deliveries returns all delivery records.
func (s *MemStore) Deliveries(_ context.Context) []model.Delivery {
	return s.deliveries
}

// DeliveriesForSeason returns the deliveries of one season via the index.
// Known-ness comes from the match table: a season that played matches but
// left no delivery rows yields an empty set, not an error.
func (s *MemStore) DeliveriesForSeason(_ context.Context, season int) ([]model.Delivery, error) {
	if !s.seasonSet[season] {
		return nil, fmt.Errorf("%w: %d", ErrSeasonNotFound, season)
	}
	return s.deliveriesBySeason[season], nil
}

// DeliveriesForTeam returns deliveries where team batted or bowled.
func (s *MemStore) DeliveriesForTeam(_ context.Context, team string) ([]model.Delivery, error) {
	if !s.teamSet[team] {
		return nil, fmt.Errorf("%w: %s", ErrTeamNotFound, team)
	}
	return s.deliveriesByTeam[team], nil
}

// MatchesBetween returns the fixtures contested by the two teams.
func (s *MemStore) MatchesBetween(_ context.Context, team1, team2 string) ([]model.Match, error) {
	if !s.teamSet[team1] {
		return nil, fmt.Errorf("%w: %s", ErrTeamNotFound, team1)
	}
	if !s.teamSet[team2] {
		return nil, fmt.Errorf("%w: %s", ErrTeamNotFound, team2)
	}
	var out []model.Match
	for _, m := range s.matches {
		if (m.Team1 == team1 && m.Team2 == team2) || (m.Team1 == team2 && m.Team2 == team1) {
			out = append(out, m)
		}
	}
	return out, nil
}

// Seasons returns the distinct seasons in ascending order.
func (s *MemStore) Seasons(_ context.Context) []int {
	return s.seasons
}

// Teams returns the distinct canonical team names in ascending order.
func (s *MemStore) Teams(_ context.Context) []string {
	return s.teams
}

// MatchCount reports the number of match records.
func (s *MemStore) MatchCount(_ context.Context) int {
	return len(s.matches)
}

// DeliveryCount reports the number of delivery records.
func (s *MemStore) DeliveryCount(_ context.Context) int {
	return len(s.deliveries)
}
