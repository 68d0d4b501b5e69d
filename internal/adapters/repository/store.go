// Package repository defines the dataset store interface and errors.
package repository

import (
	"context"

	"github.com/okian/pavilion/internal/domain/model"
)

// Store provides read access to the immutable dataset. Everything is
// loaded once at startup; there is no write path.
type Store interface {
	// Matches returns all match records.
	Matches(ctx context.Context) []model.Match

	// Deliveries returns all delivery records.
	Deliveries(ctx context.Context) []model.Delivery

	// DeliveriesForSeason returns the deliveries of one season.
	// Returns ErrSeasonNotFound for a season absent from the dataset.
	DeliveriesForSeason(ctx context.Context, season int) ([]model.Delivery, error)

	// DeliveriesForTeam returns deliveries where team batted or bowled.
	// Returns ErrTeamNotFound for a team absent from the dataset.
	DeliveriesForTeam(ctx context.Context, team string) ([]model.Delivery, error)

	// MatchesBetween returns the fixtures contested by the two teams.
	MatchesBetween(ctx context.Context, team1, team2 string) ([]model.Match, error)

	// Seasons returns the distinct seasons in ascending order.
	Seasons(ctx context.Context) []int

	// Teams returns the distinct canonical team names in ascending order.
	Teams(ctx context.Context) []string

	// MatchCount and DeliveryCount report dataset sizes.
	MatchCount(ctx context.Context) int
	DeliveryCount(ctx context.Context) int
}
