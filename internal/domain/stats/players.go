package stats

import (
	"sort"

	"github.com/okian/pavilion/internal/domain/model"
)

// TopRunScorers ranks batters by runs off the bat.
func TopRunScorers(deliveries []model.Delivery, limit int) []Count {
	tally := make(map[string]int)
	for _, d := range deliveries {
		tally[d.Batter] += d.BatterRuns
	}
	return rankedCounts(tally, limit)
}

// TopWicketTakers ranks bowlers by wickets credited to them.
func TopWicketTakers(deliveries []model.Delivery, limit int) []Count {
	tally := make(map[string]int)
	for _, d := range deliveries {
		if d.BowlerWicket() {
			tally[d.Bowler]++
		}
	}
	return rankedCounts(tally, limit)
}

// TopSixHitters ranks batters by sixes struck.
func TopSixHitters(deliveries []model.Delivery, limit int) []Count {
	tally := make(map[string]int)
	for _, d := range deliveries {
		if d.IsSix() {
			tally[d.Batter]++
		}
	}
	return rankedCounts(tally, limit)
}

// TopFourHitters ranks batters by fours struck.
func TopFourHitters(deliveries []model.Delivery, limit int) []Count {
	tally := make(map[string]int)
	for _, d := range deliveries {
		if d.IsFour() {
			tally[d.Batter]++
		}
	}
	return rankedCounts(tally, limit)
}

// TopCatchTakers ranks fielders by catches held. Deliveries should be
// pre-filtered to the fielding side when scoping to one team.
func TopCatchTakers(deliveries []model.Delivery, limit int) []Count {
	tally := make(map[string]int)
	for _, d := range deliveries {
		if d.IsWicket && d.DismissalKind == model.DismissalCaught && validFielder(d.Fielder) {
			tally[d.Fielder]++
		}
	}
	return rankedCounts(tally, limit)
}

// TopStumpings ranks keepers by stumpings completed.
func TopStumpings(deliveries []model.Delivery, limit int) []Count {
	tally := make(map[string]int)
	for _, d := range deliveries {
		if d.IsWicket && d.DismissalKind == model.DismissalStumped && validFielder(d.Fielder) {
			tally[d.Fielder]++
		}
	}
	return rankedCounts(tally, limit)
}

// TopRunOuts ranks fielders by run outs effected.
func TopRunOuts(deliveries []model.Delivery, limit int) []Count {
	tally := make(map[string]int)
	for _, d := range deliveries {
		if d.IsWicket && d.DismissalKind == model.DismissalRunOut && validFielder(d.Fielder) {
			tally[d.Fielder]++
		}
	}
	return rankedCounts(tally, limit)
}

func validFielder(f string) bool {
	return f != "" && f != model.NonePlayer
}

// MostMatchesPlayed ranks batters by distinct matches batted in.
func MostMatchesPlayed(deliveries []model.Delivery, limit int) []Count {
	seen := make(map[string]map[int]bool)
	for _, d := range deliveries {
		ms, ok := seen[d.Batter]
		if !ok {
			ms = make(map[int]bool)
			seen[d.Batter] = ms
		}
		ms[d.MatchID] = true
	}
	tally := make(map[string]int, len(seen))
	for batter, ms := range seen {
		tally[batter] = len(ms)
	}
	return rankedCounts(tally, limit)
}

// seasonLeaders reduces a per-season, per-player tally to the leader of
// each season, ordered by season ascending. Ties resolve to the
// lexically smaller player name.
func seasonLeaders(tally map[int]map[string]int) []SeasonLeader {
	out := make([]SeasonLeader, 0, len(tally))
	for season, players := range tally {
		best := SeasonLeader{Season: season}
		for player, value := range players {
			if value > best.Value || (value == best.Value && (best.Player == "" || player < best.Player)) {
				best.Player = player
				best.Value = value
			}
		}
		if best.Player != "" {
			out = append(out, best)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Season < out[j].Season })
	return out
}

// OrangeCaps reports each season's leading run scorer.
func OrangeCaps(deliveries []model.Delivery) []SeasonLeader {
	tally := make(map[int]map[string]int)
	for _, d := range deliveries {
		if d.BatterRuns == 0 {
			continue
		}
		addSeasonTally(tally, d.Season, d.Batter, d.BatterRuns)
	}
	return seasonLeaders(tally)
}

// PurpleCaps reports each season's leading wicket taker.
func PurpleCaps(deliveries []model.Delivery) []SeasonLeader {
	tally := make(map[int]map[string]int)
	for _, d := range deliveries {
		if d.BowlerWicket() {
			addSeasonTally(tally, d.Season, d.Bowler, 1)
		}
	}
	return seasonLeaders(tally)
}

// SeasonSixLeaders reports each season's leading six hitter.
func SeasonSixLeaders(deliveries []model.Delivery) []SeasonLeader {
	tally := make(map[int]map[string]int)
	for _, d := range deliveries {
		if d.IsSix() {
			addSeasonTally(tally, d.Season, d.Batter, 1)
		}
	}
	return seasonLeaders(tally)
}

// SeasonFourLeaders reports each season's leading four hitter.
func SeasonFourLeaders(deliveries []model.Delivery) []SeasonLeader {
	tally := make(map[int]map[string]int)
	for _, d := range deliveries {
		if d.IsFour() {
			addSeasonTally(tally, d.Season, d.Batter, 1)
		}
	}
	return seasonLeaders(tally)
}

func addSeasonTally(tally map[int]map[string]int, season int, player string, n int) {
	players, ok := tally[season]
	if !ok {
		players = make(map[string]int)
		tally[season] = players
	}
	players[player] += n
}

// LeaderCounts counts how often each player topped a season, e.g. how
// many orange caps a batter holds.
func LeaderCounts(leaders []SeasonLeader) []Count {
	tally := make(map[string]int)
	for _, l := range leaders {
		tally[l.Player]++
	}
	return rankedCounts(tally, 0)
}

// CumulativeRuns builds per-season cumulative run series for the top
// batters by career runs. Each series covers every season present in
// the data, carrying the running total through seasons the batter sat out.
func CumulativeRuns(deliveries []model.Delivery, top int) []BatterSeries {
	perSeason := make(map[string]map[int]int)
	career := make(map[string]int)
	seasonSet := make(map[int]bool)
	for _, d := range deliveries {
		seasonSet[d.Season] = true
		if d.BatterRuns == 0 {
			continue
		}
		bySeason, ok := perSeason[d.Batter]
		if !ok {
			bySeason = make(map[int]int)
			perSeason[d.Batter] = bySeason
		}
		bySeason[d.Season] += d.BatterRuns
		career[d.Batter] += d.BatterRuns
	}

	leaders := rankedCounts(career, top)
	seasons := make([]int, 0, len(seasonSet))
	for s := range seasonSet {
		seasons = append(seasons, s)
	}
	sort.Ints(seasons)

	out := make([]BatterSeries, 0, len(leaders))
	for _, leader := range leaders {
		series := BatterSeries{Batter: leader.Label, Points: make([]SeasonValue, 0, len(seasons))}
		running := 0
		for _, season := range seasons {
			running += perSeason[leader.Label][season]
			series.Points = append(series.Points, SeasonValue{Season: season, Value: running})
		}
		out = append(out, series)
	}
	return out
}

// TotalRuns sums every run scored, extras included.
func TotalRuns(deliveries []model.Delivery) int {
	total := 0
	for _, d := range deliveries {
		total += d.TotalRuns
	}
	return total
}

// TotalWickets counts every delivery on which a wicket fell.
func TotalWickets(deliveries []model.Delivery) int {
	total := 0
	for _, d := range deliveries {
		if d.IsWicket {
			total++
		}
	}
	return total
}

// FilterFielding keeps the deliveries where team was the fielding side.
func FilterFielding(deliveries []model.Delivery, team string) []model.Delivery {
	out := make([]model.Delivery, 0)
	for _, d := range deliveries {
		if d.BowlingTeam == team {
			out = append(out, d)
		}
	}
	return out
}

// FilterBatting keeps the deliveries where team was the batting side.
func FilterBatting(deliveries []model.Delivery, team string) []model.Delivery {
	out := make([]model.Delivery, 0)
	for _, d := range deliveries {
		if d.BattingTeam == team {
			out = append(out, d)
		}
	}
	return out
}
