package repository_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/okian/pavilion/internal/adapters/repository"
	"github.com/okian/pavilion/internal/domain/model"
	"github.com/okian/pavilion/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMain(m *testing.M) {
	if err := logger.Init(); err != nil {
		os.Exit(1)
	}
	_ = logger.SetLevelString("error")
	os.Exit(m.Run())
}

func sampleMatches() []model.Match {
	return []model.Match{
		{ID: 1, Season: 2008, Team1: "Mumbai Indians", Team2: "Chennai Super Kings", Winner: "Mumbai Indians", Venue: "Wankhede Stadium"},
		{ID: 2, Season: 2008, Team1: "Chennai Super Kings", Team2: "Rajasthan Royals", Winner: "Rajasthan Royals", Venue: "MA Chidambaram Stadium"},
		{ID: 3, Season: 2009, Team1: "Mumbai Indians", Team2: "Chennai Super Kings", Winner: "Chennai Super Kings", Venue: "Wankhede Stadium"},
	}
}

func sampleDeliveries() []model.Delivery {
	return []model.Delivery{
		{MatchID: 1, Season: 2008, BattingTeam: "Mumbai Indians", BowlingTeam: "Chennai Super Kings", Batter: "ST Jayasuriya", Bowler: "M Muralitharan", BatterRuns: 4, TotalRuns: 4},
		{MatchID: 1, Season: 2008, BattingTeam: "Chennai Super Kings", BowlingTeam: "Mumbai Indians", Batter: "MS Dhoni", Bowler: "SM Pollock", BatterRuns: 6, TotalRuns: 6},
		{MatchID: 2, Season: 2008, BattingTeam: "Rajasthan Royals", BowlingTeam: "Chennai Super Kings", Batter: "SR Watson", Bowler: "M Muralitharan", BatterRuns: 1, TotalRuns: 1},
		{MatchID: 3, Season: 2009, BattingTeam: "Chennai Super Kings", BowlingTeam: "Mumbai Indians", Batter: "SK Raina", Bowler: "Harbhajan Singh", BatterRuns: 2, TotalRuns: 2},
	}
}

func TestMemStore(t *testing.T) {
	ctx := context.Background()

	Convey("Given a store built from sample records", t, func() {
		store := repository.NewMemStore(ctx, sampleMatches(), sampleDeliveries())

		Convey("Then counts should match the inputs", func() {
			So(store.MatchCount(ctx), ShouldEqual, 3)
			So(store.DeliveryCount(ctx), ShouldEqual, 4)
			So(store.Matches(ctx), ShouldHaveLength, 3)
			So(store.Deliveries(ctx), ShouldHaveLength, 4)
		})

		Convey("Then seasons should be distinct and sorted", func() {
			So(store.Seasons(ctx), ShouldResemble, []int{2008, 2009})
		})

		Convey("Then teams should be distinct and sorted", func() {
			So(store.Teams(ctx), ShouldResemble, []string{
				"Chennai Super Kings", "Mumbai Indians", "Rajasthan Royals",
			})
		})

		Convey("When fetching deliveries for a season", func() {
			ds, err := store.DeliveriesForSeason(ctx, 2008)
			So(err, ShouldBeNil)
			So(ds, ShouldHaveLength, 3)

			Convey("And an unknown season returns ErrSeasonNotFound", func() {
				_, err := store.DeliveriesForSeason(ctx, 1999)
				So(errors.Is(err, repository.ErrSeasonNotFound), ShouldBeTrue)
			})
		})

		Convey("When a season played matches but has no delivery rows", func() {
			matches := append(sampleMatches(), model.Match{
				ID: 4, Season: 2010, Team1: "Mumbai Indians", Team2: "Rajasthan Royals",
				Winner: "Mumbai Indians", Venue: "Wankhede Stadium",
			})
			sparse := repository.NewMemStore(ctx, matches, sampleDeliveries())

			Convey("Then the season is enumerated and drills down to an empty set", func() {
				So(sparse.Seasons(ctx), ShouldResemble, []int{2008, 2009, 2010})
				ds, err := sparse.DeliveriesForSeason(ctx, 2010)
				So(err, ShouldBeNil)
				So(ds, ShouldBeEmpty)
			})
		})

		Convey("When fetching deliveries for a team", func() {
			ds, err := store.DeliveriesForTeam(ctx, "Chennai Super Kings")
			So(err, ShouldBeNil)
			So(ds, ShouldHaveLength, 4) // batted or bowled in every sample ball

			Convey("And an unknown team returns ErrTeamNotFound", func() {
				_, err := store.DeliveriesForTeam(ctx, "Somerset")
				So(errors.Is(err, repository.ErrTeamNotFound), ShouldBeTrue)
			})
		})

		Convey("When fetching head-to-head fixtures", func() {
			ms, err := store.MatchesBetween(ctx, "Mumbai Indians", "Chennai Super Kings")
			So(err, ShouldBeNil)
			So(ms, ShouldHaveLength, 2)

			Convey("And the order of teams does not matter", func() {
				rev, err := store.MatchesBetween(ctx, "Chennai Super Kings", "Mumbai Indians")
				So(err, ShouldBeNil)
				So(rev, ShouldResemble, ms)
			})

			Convey("And an unknown team returns ErrTeamNotFound", func() {
				_, err := store.MatchesBetween(ctx, "Mumbai Indians", "Somerset")
				So(errors.Is(err, repository.ErrTeamNotFound), ShouldBeTrue)
			})

			Convey("And teams that never met return an empty set", func() {
				ms, err := store.MatchesBetween(ctx, "Mumbai Indians", "Rajasthan Royals")
				So(err, ShouldBeNil)
				So(ms, ShouldBeEmpty)
			})
		})
	})
}

func TestMemStoreOptions(t *testing.T) {
	ctx := context.Background()

	Convey("Given a store built with a logger option", t, func() {
		store := repository.NewMemStore(ctx, sampleMatches(), sampleDeliveries(),
			repository.WithLogger(logger.Get()))

		Convey("Then the store behaves the same as an unconfigured one", func() {
			So(store.MatchCount(ctx), ShouldEqual, 3)
			So(store.Seasons(ctx), ShouldResemble, []int{2008, 2009})
		})

		Convey("And a nil logger is ignored", func() {
			plain := repository.NewMemStore(ctx, sampleMatches(), sampleDeliveries(),
				repository.WithLogger(nil))
			So(plain.DeliveryCount(ctx), ShouldEqual, 4)
		})
	})
}
