package stats

import (
	"math"
	"sort"

	"github.com/okian/pavilion/internal/domain/model"
)

// TotalMatches reports the number of match records.
func TotalMatches(matches []model.Match) int {
	return len(matches)
}

// MatchesPerTeam counts the fixtures each side appeared in.
func MatchesPerTeam(matches []model.Match) []Count {
	tally := make(map[string]int)
	for _, m := range matches {
		tally[m.Team1]++
		tally[m.Team2]++
	}
	return rankedCounts(tally, 0)
}

// WinsPerTeam counts decided matches won by each side. Abandoned
// fixtures carry no winner and contribute nothing, so the values sum
// to the number of decided matches.
func WinsPerTeam(matches []model.Match) []Count {
	tally := make(map[string]int)
	for _, m := range matches {
		if m.Decided() {
			tally[m.Winner]++
		}
	}
	return rankedCounts(tally, 0)
}

// LossesPerTeam counts decided matches each side lost.
func LossesPerTeam(matches []model.Match) []Count {
	tally := make(map[string]int)
	for _, m := range matches {
		if !m.Decided() {
			continue
		}
		if loser := m.Opponent(m.Winner); loser != "" {
			tally[loser]++
		}
	}
	return rankedCounts(tally, 0)
}

// WinPercentages reports each side's wins over decided matches played,
// as a 0-100 figure rounded to two decimals. Teams without a decided
// match are omitted.
func WinPercentages(matches []model.Match) []Percentage {
	played := make(map[string]int)
	wins := make(map[string]int)
	for _, m := range matches {
		if !m.Decided() {
			continue
		}
		played[m.Team1]++
		played[m.Team2]++
		wins[m.Winner]++
	}
	out := make([]Percentage, 0, len(played))
	for team, p := range played {
		pct := float64(wins[team]) / float64(p) * 100
		out = append(out, Percentage{Label: team, Value: math.Round(pct*100) / 100})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Value != out[j].Value {
			return out[i].Value > out[j].Value
		}
		return out[i].Label < out[j].Label
	})
	return out
}

// TossWinsPerTeam counts tosses won by each side.
func TossWinsPerTeam(matches []model.Match) []Count {
	tally := make(map[string]int)
	for _, m := range matches {
		if m.TossWinner == "" {
			continue
		}
		tally[m.TossWinner]++
	}
	return rankedCounts(tally, 0)
}

// TossDecisionOutcomes groups decided matches by the toss decision and
// reports how often the toss winner went on to win the match.
func TossDecisionOutcomes(matches []model.Match) []TossOutcome {
	total := make(map[string]int)
	won := make(map[string]int)
	for _, m := range matches {
		if !m.Decided() || m.TossDecision == "" {
			continue
		}
		total[m.TossDecision]++
		if m.TossWinner == m.Winner {
			won[m.TossDecision]++
		}
	}
	out := make([]TossOutcome, 0, len(total))
	for decision, n := range total {
		pct := float64(won[decision]) / float64(n) * 100
		out = append(out, TossOutcome{
			Decision:      decision,
			Matches:       n,
			TossWinnerWon: won[decision],
			WinPercent:    math.Round(pct*100) / 100,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Decision < out[j].Decision })
	return out
}

// finals returns the last match of each season, taking the highest
// match ID within the season as the final.
func finals(matches []model.Match) map[int]model.Match {
	out := make(map[int]model.Match)
	for _, m := range matches {
		last, ok := out[m.Season]
		if !ok || m.ID > last.ID {
			out[m.Season] = m
		}
	}
	return out
}

// SeasonWinners reports the winner of each season's final, ordered by
// season ascending. Abandoned finals appear with the no-result marker.
func SeasonWinners(matches []model.Match) []SeasonWinner {
	out := make([]SeasonWinner, 0)
	for season, final := range finals(matches) {
		out = append(out, SeasonWinner{Season: season, Winner: final.Winner})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Season < out[j].Season })
	return out
}

// TitlesPerTeam counts season finals won by each side.
func TitlesPerTeam(matches []model.Match) []Count {
	tally := make(map[string]int)
	for _, final := range finals(matches) {
		if final.Decided() {
			tally[final.Winner]++
		}
	}
	return rankedCounts(tally, 0)
}

// FinalsAppearances counts how often each side reached a season final.
func FinalsAppearances(matches []model.Match) []Count {
	tally := make(map[string]int)
	for _, final := range finals(matches) {
		tally[final.Team1]++
		tally[final.Team2]++
	}
	return rankedCounts(tally, 0)
}

// PlayerOfMatchAwards ranks players by player-of-the-match awards.
func PlayerOfMatchAwards(matches []model.Match, limit int) []Count {
	tally := make(map[string]int)
	for _, m := range matches {
		if m.PlayerOfMatch == "" || m.PlayerOfMatch == model.NonePlayer {
			continue
		}
		tally[m.PlayerOfMatch]++
	}
	return rankedCounts(tally, limit)
}

// VenueMatches ranks venues by matches hosted.
func VenueMatches(matches []model.Match, limit int) []Count {
	tally := make(map[string]int)
	for _, m := range matches {
		if m.Venue == "" || m.Venue == model.UnknownPlace {
			continue
		}
		tally[m.Venue]++
	}
	return rankedCounts(tally, limit)
}

// HighestTeamTotals ranks innings totals across all matches, resolving
// the opposing side through the match record.
func HighestTeamTotals(matches []model.Match, deliveries []model.Delivery, limit int) []TeamTotal {
	type key struct {
		matchID int
		team    string
	}
	runs := make(map[key]int)
	for _, d := range deliveries {
		runs[key{d.MatchID, d.BattingTeam}] += d.TotalRuns
	}
	byID := make(map[int]model.Match, len(matches))
	for _, m := range matches {
		byID[m.ID] = m
	}
	out := make([]TeamTotal, 0, len(runs))
	for k, total := range runs {
		opponent := ""
		if m, ok := byID[k.matchID]; ok {
			opponent = m.Opponent(k.team)
		}
		out = append(out, TeamTotal{MatchID: k.matchID, Team: k.team, Opponent: opponent, Runs: total})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Runs != out[j].Runs {
			return out[i].Runs > out[j].Runs
		}
		if out[i].Team != out[j].Team {
			return out[i].Team < out[j].Team
		}
		return out[i].MatchID < out[j].MatchID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// MatchesBetween counts fixtures and wins between two sides.
func MatchesBetween(matches []model.Match, team1, team2 string) HeadToHead {
	h2h := HeadToHead{Team1: team1, Team2: team2}
	wins := map[string]int{team1: 0, team2: 0}
	for _, m := range matches {
		if !m.Involves(team1) || !m.Involves(team2) {
			continue
		}
		h2h.Matches++
		if !m.Decided() {
			h2h.NoResults++
			continue
		}
		wins[m.Winner]++
	}
	h2h.Wins = []Count{
		{Label: team1, Value: wins[team1]},
		{Label: team2, Value: wins[team2]},
	}
	return h2h
}
