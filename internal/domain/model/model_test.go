package model_test

import (
	"testing"

	"github.com/okian/pavilion/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestParseSeason(t *testing.T) {
	Convey("Given season labels from the dataset", t, func() {
		cases := []struct {
			in   string
			want int
		}{
			{"2008", 2008},
			{"2013", 2013},
			{"2007/08", 2008},
			{"2009/10", 2010},
			{"2009-10", 2010},
			{"2020/21", 2020}, // pandemic season recorded as 2020
			{"2020-21", 2020},
			{" 2011 ", 2011},
		}

		Convey("Then each should normalize to a single year", func() {
			for _, c := range cases {
				got, err := model.ParseSeason(c.in)
				So(err, ShouldBeNil)
				So(got, ShouldEqual, c.want)
			}
		})

		Convey("And garbage should return an error", func() {
			_, err := model.ParseSeason("final")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestCanonicalTeam(t *testing.T) {
	Convey("Given raw team names", t, func() {
		Convey("Then renamed franchises resolve through the alias table", func() {
			So(model.CanonicalTeam("Delhi Daredevils"), ShouldEqual, "Delhi Capitals")
			So(model.CanonicalTeam("Kings XI Punjab"), ShouldEqual, "Punjab Kings")
			So(model.CanonicalTeam("Deccan Chargers"), ShouldEqual, "Sunrisers Hyderabad")
			So(model.CanonicalTeam("Gujarat Lions"), ShouldEqual, "Gujarat Titans")
			So(model.CanonicalTeam("Pune Warriors"), ShouldEqual, "Rising Pune Supergiants")
		})

		Convey("And spelling variants collapse to one name", func() {
			So(model.CanonicalTeam("Royal Challengers Bengaluru"), ShouldEqual, "Royal Challengers Bangalore")
			So(model.CanonicalTeam("rising pune supergaints"), ShouldEqual, "Rising Pune Supergiants")
			So(model.CanonicalTeam("Rising Pune Supergiant"), ShouldEqual, "Rising Pune Supergiants")
		})

		Convey("And whitespace and casing are normalized", func() {
			So(model.CanonicalTeam("  mumbai indians "), ShouldEqual, "Mumbai Indians")
			So(model.CanonicalTeam("CHENNAI SUPER KINGS"), ShouldEqual, "Chennai Super Kings")
		})

		Convey("And unknown names pass through title-cased", func() {
			So(model.CanonicalTeam("kochi tuskers kerala"), ShouldEqual, "Kochi Tuskers Kerala")
			So(model.CanonicalTeam(""), ShouldEqual, "")
		})
	})
}

func TestMatchHelpers(t *testing.T) {
	Convey("Given a decided match", t, func() {
		m := model.Match{Team1: "Mumbai Indians", Team2: "Chennai Super Kings", Winner: "Mumbai Indians"}

		So(m.Decided(), ShouldBeTrue)
		So(m.Involves("Mumbai Indians"), ShouldBeTrue)
		So(m.Involves("Rajasthan Royals"), ShouldBeFalse)
		So(m.Opponent("Mumbai Indians"), ShouldEqual, "Chennai Super Kings")
		So(m.Opponent("Chennai Super Kings"), ShouldEqual, "Mumbai Indians")
		So(m.Opponent("Rajasthan Royals"), ShouldEqual, "")
	})

	Convey("Given an abandoned match", t, func() {
		m := model.Match{Winner: model.NoResult}
		So(m.Decided(), ShouldBeFalse)
	})
}

func TestDeliveryHelpers(t *testing.T) {
	Convey("Given deliveries with various outcomes", t, func() {
		Convey("Then boundary helpers reflect batter runs", func() {
			So(model.Delivery{BatterRuns: 6}.IsSix(), ShouldBeTrue)
			So(model.Delivery{BatterRuns: 4}.IsFour(), ShouldBeTrue)
			So(model.Delivery{BatterRuns: 4}.IsSix(), ShouldBeFalse)
		})

		Convey("Then only bowler-credited kinds count as bowler wickets", func() {
			So(model.Delivery{IsWicket: true, DismissalKind: model.DismissalCaught}.BowlerWicket(), ShouldBeTrue)
			So(model.Delivery{IsWicket: true, DismissalKind: model.DismissalRunOut}.BowlerWicket(), ShouldBeFalse)
			So(model.Delivery{IsWicket: false, DismissalKind: model.DismissalCaught}.BowlerWicket(), ShouldBeFalse)
		})

		Convey("And BowlerCredited covers the full set", func() {
			for _, kind := range []string{
				model.DismissalCaught,
				model.DismissalBowled,
				model.DismissalLBW,
				model.DismissalStumped,
				model.DismissalCaughtAndBowled,
				model.DismissalHitWicket,
			} {
				So(model.BowlerCredited(kind), ShouldBeTrue)
			}
			So(model.BowlerCredited(model.DismissalRunOut), ShouldBeFalse)
			So(model.BowlerCredited("retired hurt"), ShouldBeFalse)
		})
	})
}
